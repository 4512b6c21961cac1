package readerloans

import (
	"time"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
)

const (
	queryType = "ReaderLoans"
)

// Query represents the intent to list the loans of a reader.
// A zero Now means the time the query is handled.
type Query struct {
	ReaderID core.ReaderID `validate:"gt=0"`
	Now      time.Time
}

// BuildQuery creates a new Query with the provided reader ID and reference time.
func BuildQuery(readerID core.ReaderID, now time.Time) Query {
	return Query{
		ReaderID: readerID,
		Now:      now,
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
