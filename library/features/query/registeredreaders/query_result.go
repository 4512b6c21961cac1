package registeredreaders

import (
	"github.com/AntonStoeckl/library-circulation-go/library/core"
)

// RegisteredReaders represents the query result.
type RegisteredReaders struct {
	Readers []core.Reader
	Count   int
}

// Len returns the number of listed readers.
func (r RegisteredReaders) Len() int {
	return r.Count
}
