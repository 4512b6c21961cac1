package addudkcode

import (
	"github.com/AntonStoeckl/library-circulation-go/library/core"
)

// Decide implements the business logic to determine whether a UDK code can be added.
//
// Business Rules:
//
//	GIVEN: No UDK code with the same code
//	WHEN: AddUDKCode command is received
//	THEN: The code is stored
//	ERROR: UDKCodeAlreadyExists if the code is taken
func Decide(existing *core.UDKCode, command Command) core.DecisionResult[core.UDKCode] {
	if existing != nil {
		return core.ErrorDecision[core.UDKCode](core.ErrUDKCodeAlreadyExists)
	}

	return core.SuccessDecision(core.UDKCode{Code: command.Code, Description: command.Description})
}
