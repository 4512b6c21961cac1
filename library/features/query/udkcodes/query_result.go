package udkcodes

import (
	"github.com/AntonStoeckl/library-circulation-go/library/core"
)

// UDKCodes represents the query result.
type UDKCodes struct {
	Codes []core.UDKCode
	Count int
}

// Len returns the number of listed codes.
func (u UDKCodes) Len() int {
	return u.Count
}
