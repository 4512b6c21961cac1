package removebookinstance

import (
	"github.com/AntonStoeckl/library-circulation-go/library/core"
)

// Current is what the handler read from storage before deciding. Nil means not found.
type Current struct {
	Book     *core.Book
	Instance *core.BookInstance
}

// Decide implements the business logic to determine whether a copy may be withdrawn.
//
// Business Rules:
//
//	GIVEN: A cataloged book with a copy on the shelf
//	WHEN: RemoveBookInstance command is received
//	THEN: The copy and its returned loans are deleted
//	ERROR: BookNotFound if the book does not exist
//	ERROR: InstanceNotFound if the named copy does not exist or belongs to another book
//	ERROR: NoInstanceOnShelf if no copy was named and none is on the shelf
//	ERROR: InstanceNotOnShelf if the named copy is issued
func Decide(current Current, command Command) core.DecisionResult[core.BookInstance] {
	if current.Book == nil {
		return core.ErrorDecision[core.BookInstance](core.ErrBookNotFound)
	}

	if current.Instance == nil {
		if command.picksAnyInstance() {
			return core.ErrorDecision[core.BookInstance](core.ErrNoInstanceOnShelf)
		}

		return core.ErrorDecision[core.BookInstance](core.ErrInstanceNotFound)
	}

	if current.Instance.BookID != command.BookID {
		return core.ErrorDecision[core.BookInstance](core.ErrInstanceNotFound)
	}

	if !current.Instance.IsOnShelf() {
		return core.ErrorDecision[core.BookInstance](core.ErrInstanceNotOnShelf)
	}

	return core.SuccessDecision(*current.Instance)
}
