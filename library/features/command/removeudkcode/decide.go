package removeudkcode

import (
	"github.com/AntonStoeckl/library-circulation-go/library/core"
)

// Current is what the handler read from storage before deciding. Nil means not found.
type Current struct {
	UDK   *core.UDKCode
	Books int
}

// Decide implements the business logic to determine whether a UDK code may be removed.
//
// Business Rules:
//
//	GIVEN: A UDK code no book references
//	WHEN: RemoveUDKCode command is received
//	THEN: The code is deleted
//	ERROR: UDKCodeNotFound if the UDK code does not exist
//	ERROR: UDKCodeInUse if a book references it
func Decide(current Current) core.DecisionResult[core.UDKCode] {
	if current.UDK == nil {
		return core.ErrorDecision[core.UDKCode](core.ErrUDKCodeNotFound)
	}

	if current.Books > 0 {
		return core.ErrorDecision[core.UDKCode](core.ErrUDKCodeInUse)
	}

	return core.SuccessDecision(*current.UDK)
}
