package removereader

import (
	"github.com/AntonStoeckl/library-circulation-go/library/core"
)

// Current is what the handler read from storage before deciding. Nil means not found.
type Current struct {
	Reader      *core.Reader
	ActiveLoans int
}

// Decide implements the business logic to determine whether a reader may be removed.
//
// Business Rules:
//
//	GIVEN: A registered reader without active loans
//	WHEN: RemoveReader command is received
//	THEN: The reader and their returned loans are deleted
//	ERROR: ReaderNotFound if the reader does not exist
//	ERROR: ReaderHasActiveLoans if the reader holds a book
func Decide(current Current) core.DecisionResult[core.Reader] {
	if current.Reader == nil {
		return core.ErrorDecision[core.Reader](core.ErrReaderNotFound)
	}

	if current.ActiveLoans > 0 {
		return core.ErrorDecision[core.Reader](core.ErrReaderHasActiveLoans)
	}

	return core.SuccessDecision(*current.Reader)
}
