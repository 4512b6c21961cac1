package instanceavailability

import (
	"github.com/AntonStoeckl/library-circulation-go/library/core"
	"github.com/AntonStoeckl/library-circulation-go/library/shell/repository"
)

// Project implements the query logic to report the availability of a book.
//
// Query Logic:
//
//	GIVEN: A cataloged book
//	WHEN: InstanceAvailability query is executed
//	THEN: Availability is returned with the OnShelf and total instance counts
//	ERROR: BookNotFound if the book does not exist
func Project(book *core.Book, counts repository.InstanceCounts) core.DecisionResult[Availability] {
	if book == nil {
		return core.ErrorDecision[Availability](core.ErrBookNotFound)
	}

	return core.SuccessDecision(Availability{
		BookID:    book.ID,
		Available: counts.OnShelf,
		Total:     counts.Total,
	})
}
