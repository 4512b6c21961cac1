package returninstance

import (
	"time"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
)

// Outcome is the completed loan together with the classification of the return.
type Outcome struct {
	Loan   core.Loan
	Return core.ReturnClassification
}

// Decide implements the business logic to determine whether a loan can be completed.
// loan is nil when no loan with the command's id exists. returnDate must not be zero.
//
// Business Rules:
//
//	GIVEN: An active loan with LoanID
//	WHEN: ReturnInstance command is received
//	THEN: The loan becomes Returned with actual return date and on-time flag, the instance goes back on the shelf
//	ERROR: LoanNotFound if the loan does not exist
//	ERROR: LoanAlreadyReturned if the loan is already returned
func Decide(loan *core.Loan, returnDate time.Time) core.DecisionResult[Outcome] {
	if loan == nil {
		return core.ErrorDecision[Outcome](core.ErrLoanNotFound)
	}

	if !loan.IsActive() {
		return core.ErrorDecision[Outcome](core.ErrLoanAlreadyReturned)
	}

	returned := core.ToDate(returnDate)
	onTime := core.IsOnTime(loan.PlannedReturnDate, returned)

	completed := *loan
	completed.Status = core.LoanReturned
	completed.ActualReturnDate = &returned
	completed.OnTime = &onTime

	return core.SuccessDecision(Outcome{
		Loan:   completed,
		Return: core.ClassifyReturn(loan.PlannedReturnDate, returned),
	})
}
