package overdueloans

import (
	"time"
)

const (
	queryType = "OverdueLoans"
)

// Query represents the intent to list loans needing attention.
// A zero Now means the time the query is handled.
type Query struct {
	Now time.Time
}

// BuildQuery creates a new Query with the provided reference time.
func BuildQuery(now time.Time) Query {
	return Query{
		Now: now,
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
