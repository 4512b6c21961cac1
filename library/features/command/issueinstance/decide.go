package issueinstance

import (
	"github.com/AntonStoeckl/library-circulation-go/library/core"
)

// Current is what the handler read from storage before deciding. Nil means not found.
type Current struct {
	Instance *core.BookInstance
	Reader   *core.Reader
}

type state struct {
	instanceNotFound  bool
	readerNotFound    bool
	instanceAvailable bool
}

// Decide implements the business logic to determine whether a book instance may be lent to a reader.
// This is a pure function with no side effects.
//
// Business Rules:
//
//	GIVEN: A book instance with InstanceID and a reader with ReaderID
//	WHEN: IssueInstance command is received
//	THEN: A new active loan is created and the instance is marked as Issued
//	ERROR: InvalidDateRange if the planned return date precedes the issue date
//	ERROR: InstanceNotFound / ReaderNotFound if either does not exist
//	ERROR: InstanceUnavailable if the instance is not on the shelf
func Decide(current Current, command Command) core.DecisionResult[core.Loan] {
	if err := command.Validate(); err != nil {
		return core.ErrorDecision[core.Loan](err)
	}

	s := project(current)

	if s.instanceNotFound {
		return core.ErrorDecision[core.Loan](core.ErrInstanceNotFound)
	}

	if s.readerNotFound {
		return core.ErrorDecision[core.Loan](core.ErrReaderNotFound)
	}

	if !s.instanceAvailable {
		return core.ErrorDecision[core.Loan](core.ErrInstanceUnavailable)
	}

	return core.SuccessDecision(core.Loan{
		InstanceID:        command.InstanceID,
		ReaderID:          command.ReaderID,
		IssueDate:         command.IssueDate,
		PlannedReturnDate: command.PlannedReturnDate,
		Status:            core.LoanIssued,
	})
}

func project(current Current) state {
	return state{
		instanceNotFound:  current.Instance == nil,
		readerNotFound:    current.Reader == nil,
		instanceAvailable: current.Instance != nil && current.Instance.IsOnShelf(),
	}
}
