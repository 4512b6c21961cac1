package bookinstances

import (
	"github.com/AntonStoeckl/library-circulation-go/library/core"
)

const (
	queryType = "BookInstances"
)

// Query represents the intent to list the copies of a book.
type Query struct {
	BookID core.BookID `validate:"gt=0"`
}

// BuildQuery creates a new Query with the provided book ID.
func BuildQuery(bookID core.BookID) Query {
	return Query{
		BookID: bookID,
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
