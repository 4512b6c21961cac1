package authors

import (
	"github.com/AntonStoeckl/library-circulation-go/library/core"
)

// Authors represents the query result.
type Authors struct {
	Authors []core.Author
	Count   int
}

// Len returns the number of listed authors.
func (a Authors) Len() int {
	return a.Count
}
