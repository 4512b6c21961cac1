package addbook

import (
	"fmt"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
)

// Current is what the handler read from storage before deciding.
type Current struct {
	BookExists bool
	Authors    []core.Author
	UDK        *core.UDKCode
}

// Decision is the book to store and the ids of its authors in command order.
type Decision struct {
	Book      core.Book
	AuthorIDs []core.AuthorID
}

type state struct {
	bookExists      bool
	authorIDsByName map[string]core.AuthorID
	udkNotFound     bool
}

// Decide implements the business logic to determine whether a book may be cataloged.
//
// Business Rules:
//
//	GIVEN: A book identifier that is not cataloged yet
//	WHEN: AddBook command is received
//	THEN: The book is stored, linked to its authors, and the requested number of instances is put on the shelf
//	ERROR: BookAlreadyExists if the identifier is taken
//	ERROR: AuthorNotFound if a named author does not exist
//	ERROR: UDKCodeNotFound if the given UDK code does not exist
func Decide(current Current, command Command) core.DecisionResult[Decision] {
	s := project(current, command)

	if s.bookExists {
		return core.ErrorDecision[Decision](core.ErrBookAlreadyExists)
	}

	authorIDs := make([]core.AuthorID, 0, len(command.AuthorNames))

	for _, name := range command.AuthorNames {
		id, ok := s.authorIDsByName[name]
		if !ok {
			return core.ErrorDecision[Decision](fmt.Errorf("%w: %s", core.ErrAuthorNotFound, name))
		}

		authorIDs = append(authorIDs, id)
	}

	if s.udkNotFound {
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

func project(current Current, command Command) state {
	s := state{
		bookExists:      current.BookExists,
		authorIDsByName: make(map[string]core.AuthorID, len(current.Authors)),
		udkNotFound:     command.UDKID != nil && current.UDK == nil,
	}

	for _, author := range current.Authors {
		s.authorIDsByName[author.FullName] = author.ID
	}

	return s
}
