package renameauthor

import (
	"github.com/AntonStoeckl/library-circulation-go/library/core"
)

// Current is what the handler read from storage before deciding. Nil means not found.
type Current struct {
	Author *core.Author
	Holder *core.Author
}

// Decide implements the business logic to determine whether an author can be renamed.
//
// Business Rules:
//
//	GIVEN: A registered author
//	WHEN: RenameAuthor command is received
//	THEN: The author carries the new name
//	ERROR: AuthorNotFound if the author does not exist
//	ERROR: AuthorAlreadyExists if another author holds the new name
func Decide(current Current, command Command) core.DecisionResult[core.Author] {
	if current.Author == nil {
		return core.ErrorDecision[core.Author](core.ErrAuthorNotFound)
	}

	if current.Holder != nil && current.Holder.ID != command.AuthorID {
		return core.ErrorDecision[core.Author](core.ErrAuthorAlreadyExists)
	}

	return core.SuccessDecision(core.Author{ID: command.AuthorID, FullName: command.FullName})
}
