package instanceavailability

import (
	"github.com/AntonStoeckl/library-circulation-go/library/core"
)

const (
	queryType = "InstanceAvailability"
)

// Query represents the intent to count the available copies of a book.
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
