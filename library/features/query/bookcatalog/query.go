package bookcatalog

import (
	"strings"
)

const (
	queryType = "BookCatalog"
)

// Query represents the intent to list the catalog. An empty Search lists every book.
type Query struct {
	Search string
}

// BuildQuery creates a new Query with the provided search text.
func BuildQuery(search string) Query {
	return Query{
		Search: strings.TrimSpace(search),
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
