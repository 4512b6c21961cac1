package registerreader

import (
	"github.com/AntonStoeckl/library-circulation-go/library/core"
)

// Decide implements the business logic to determine whether a reader can be registered.
//
// Business Rules:
//
//	GIVEN: No reader with the same full name and phone
//	WHEN: RegisterReader command is received
//	THEN: The reader is stored
//	ERROR: ReaderAlreadyExists if a reader with this name and phone is registered
func Decide(duplicate *core.Reader, command Command) core.DecisionResult[core.Reader] {
	if duplicate != nil {
		return core.ErrorDecision[core.Reader](core.ErrReaderAlreadyExists)
	}

	return core.SuccessDecision(command.reader())
}
