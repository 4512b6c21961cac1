package editbook

import (
	"fmt"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
)

// Current is what the handler read from storage before deciding. Nil means not found.
type Current struct {
	Book    *core.Book
	Authors []core.Author
	UDK     *core.UDKCode
}

// Decision is the changed book and the ids of its authors in command order.
type Decision struct {
	Book      core.Book
	AuthorIDs []core.AuthorID
}

// Decide implements the business logic to determine whether a book may be changed.
//
// Business Rules:
//
//	GIVEN: A cataloged book
//	WHEN: EditBook command is received
//	THEN: The book attributes are overwritten and its author links are replaced
//	ERROR: BookNotFound if the book does not exist
//	ERROR: AuthorNotFound if a named author does not exist
//	ERROR: UDKCodeNotFound if the given UDK code does not exist
func Decide(current Current, command Command) core.DecisionResult[Decision] {
	if current.Book == nil {
		return core.ErrorDecision[Decision](core.ErrBookNotFound)
	}

	authorIDs := make([]core.AuthorID, 0, len(command.AuthorNames))

	for _, name := range command.AuthorNames {
		i := indexByName(current.Authors, name)
		if i < 0 {
			return core.ErrorDecision[Decision](fmt.Errorf("%w: %s", core.ErrAuthorNotFound, name))
		}

		authorIDs = append(authorIDs, current.Authors[i].ID)
	}

	if command.UDKID != nil && current.UDK == nil {
		return core.ErrorDecision[Decision](core.ErrUDKCodeNotFound)
	}

	return core.SuccessDecision(Decision{
		Book: core.Book{
			ID:          command.BookID,
			Title:       command.Title,
			Year:        command.Year,
			UDKID:       command.UDKID,
			Description: command.Description,
		},
		AuthorIDs: authorIDs,
	})
}

func indexByName(authors []core.Author, name string) int {
	for i, author := range authors {
		if author.FullName == name {
			return i
		}
	}

	return -1
}
