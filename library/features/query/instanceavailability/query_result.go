package instanceavailability

import (
	"github.com/AntonStoeckl/library-circulation-go/library/core"
)

// Availability represents the query result: copies on the shelf and copies owned.
type Availability struct {
	BookID    core.BookID
	Available int
	Total     int
}
