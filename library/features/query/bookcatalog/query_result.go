package bookcatalog

import (
	"github.com/AntonStoeckl/library-circulation-go/library/core"
)

// BookInfo is one catalog line.
type BookInfo struct {
	BookID      core.BookID
	Title       string
	Year        int
	Authors     string
	UDKCode     string
	Description string
	Available   int
	Total       int
}

// Catalog represents the query result.
type Catalog struct {
	Books []BookInfo
	Count int
}

// Len returns the number of listed books.
func (c Catalog) Len() int {
	return c.Count
}
