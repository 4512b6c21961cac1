package addauthor

import (
	"github.com/AntonStoeckl/library-circulation-go/library/core"
)

// Decide implements the business logic to determine whether an author can be registered.
//
// Business Rules:
//
//	GIVEN: No author with the same full name
//	WHEN: AddAuthor command is received
//	THEN: The author is stored
//	ERROR: AuthorAlreadyExists if the name is taken
func Decide(existing *core.Author, command Command) core.DecisionResult[core.Author] {
	if existing != nil {
		return core.ErrorDecision[core.Author](core.ErrAuthorAlreadyExists)
	}

	return core.SuccessDecision(core.Author{FullName: command.FullName})
}
