package removeauthor

import (
	"github.com/AntonStoeckl/library-circulation-go/library/core"
)

// Current is what the handler read from storage before deciding. Nil means not found.
type Current struct {
	Author *core.Author
	Books  int
}

// Decide implements the business logic to determine whether an author may be removed.
//
// Business Rules:
//
//	GIVEN: A registered author credited on no book
//	WHEN: RemoveAuthor command is received
//	THEN: The author is deleted
//	ERROR: AuthorNotFound if the author does not exist
//	ERROR: AuthorInUse if a book credits the author
func Decide(current Current) core.DecisionResult[core.Author] {
	if current.Author == nil {
		return core.ErrorDecision[core.Author](core.ErrAuthorNotFound)
	}

	if current.Books > 0 {
		return core.ErrorDecision[core.Author](core.ErrAuthorInUse)
	}

	return core.SuccessDecision(*current.Author)
}
