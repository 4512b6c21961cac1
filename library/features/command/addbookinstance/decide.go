package addbookinstance

import (
	"time"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
)

// Decide implements the business logic to determine whether a copy can be added to a book.
//
// Business Rules:
//
//	GIVEN: A cataloged book
//	WHEN: AddBookInstance command is received
//	THEN: A new OnShelf instance with a fresh inventory number is created
//	ERROR: BookNotFound if the book does not exist
func Decide(book *core.Book, acquiredAt time.Time) core.DecisionResult[core.BookInstance] {
	if book == nil {
		return core.ErrorDecision[core.BookInstance](core.ErrBookNotFound)
	}

	return core.SuccessDecision(core.NewInstances(book.ID, 1, acquiredAt)[0])
}
