package removebook

import (
	"github.com/AntonStoeckl/library-circulation-go/library/core"
	"github.com/AntonStoeckl/library-circulation-go/library/shell/repository"
)

// Current is what the handler read from storage before deciding. Nil means not found.
type Current struct {
	Book      *core.Book
	Instances repository.InstanceCounts
}

// Decide implements the business logic to determine whether a book may be removed.
//
// Business Rules:
//
//	GIVEN: A cataloged book
//	WHEN: RemoveBook command is received
//	THEN: The book, its instances, their returned loans and its author links are deleted
//	ERROR: BookNotFound if the book does not exist
//	ERROR: BookHasIssuedInstances if any instance is lent out
func Decide(current Current) core.DecisionResult[core.Book] {
	if current.Book == nil {
		return core.ErrorDecision[core.Book](core.ErrBookNotFound)
	}

	if current.Instances.Total > current.Instances.OnShelf {
		return core.ErrorDecision[core.Book](core.ErrBookHasIssuedInstances)
	}

	return core.SuccessDecision(*current.Book)
}
