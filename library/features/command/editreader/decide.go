package editreader

import (
	"github.com/AntonStoeckl/library-circulation-go/library/core"
)

// Current is what the handler read from storage before deciding. Nil means not found.
type Current struct {
	Reader    *core.Reader
	Duplicate *core.Reader
}

// Decide implements the business logic to determine whether a reader can be edited.
//
// Business Rules:
//
//	GIVEN: A registered reader
//	WHEN: EditReader command is received
//	THEN: All attributes are overwritten
//	ERROR: ReaderNotFound if the reader does not exist
//	ERROR: ReaderAlreadyExists if another reader has the same name and phone
func Decide(current Current, command Command) core.DecisionResult[core.Reader] {
	if current.Reader == nil {
		return core.ErrorDecision[core.Reader](core.ErrReaderNotFound)
	}

	if current.Duplicate != nil && current.Duplicate.ID != command.ReaderID {
		return core.ErrorDecision[core.Reader](core.ErrReaderAlreadyExists)
	}

	return core.SuccessDecision(core.Reader{
		ID:               command.ReaderID,
		FullName:         command.FullName,
		Phone:            command.Phone,
		Address:          command.Address,
		BirthDate:        command.BirthDate,
		RegistrationDate: command.RegistrationDate,
	})
}
