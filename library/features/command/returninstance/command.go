package returninstance

import (
	"time"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
)

const (
	commandType = "ReturnInstance"
)

// Command represents the intent to take back the instance of a loan.
// A zero ReturnDate means the day the command is handled.
type Command struct {
	LoanID     core.LoanID `validate:"gt=0"`
	ReturnDate time.Time
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(loanID core.LoanID, returnDate time.Time) Command {
	if !returnDate.IsZero() {
		returnDate = core.ToDate(returnDate)
	}

	return Command{
		LoanID:     loanID,
		ReturnDate: returnDate,
	}
}
