package editudkcode

import (
	"github.com/AntonStoeckl/library-circulation-go/library/core"
)

// Current is what the handler read from storage before deciding. Nil means not found.
type Current struct {
	UDK    *core.UDKCode
	Holder *core.UDKCode
}

// Decide implements the business logic to determine whether a UDK code can be changed.
//
// Business Rules:
//
//	GIVEN: A stored UDK code
//	WHEN: EditUDKCode command is received
//	THEN: Code and description are overwritten
//	ERROR: UDKCodeNotFound if the UDK code does not exist
//	ERROR: UDKCodeAlreadyExists if another entry holds the new code
func Decide(current Current, command Command) core.DecisionResult[core.UDKCode] {
	if current.UDK == nil {
		return core.ErrorDecision[core.UDKCode](core.ErrUDKCodeNotFound)
	}

	if current.Holder != nil && current.Holder.ID != command.UDKID {
		return core.ErrorDecision[core.UDKCode](core.ErrUDKCodeAlreadyExists)
	}

	return core.SuccessDecision(core.UDKCode{
		ID:          command.UDKID,
		Code:        command.Code,
		Description: command.Description,
	})
}
