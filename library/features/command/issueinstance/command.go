package issueinstance

import (
	"time"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
)

const (
	commandType = "IssueInstance"
)

// Command represents the intent to lend a book instance to a reader.
type Command struct {
	InstanceID        core.InstanceID `validate:"gt=0"`
	ReaderID          core.ReaderID   `validate:"gt=0"`
	IssueDate         time.Time       `validate:"required"`
	PlannedReturnDate time.Time       `validate:"required"`
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters. Dates are truncated to calendar days.
func BuildCommand(
	instanceID core.InstanceID,
	readerID core.ReaderID,
	issueDate time.Time,
	plannedReturnDate time.Time,
) Command {
	return Command{
		InstanceID:        instanceID,
		ReaderID:          readerID,
		IssueDate:         core.ToDate(issueDate),
		PlannedReturnDate: core.ToDate(plannedReturnDate),
	}
}

// Validate checks the command without looking at any stored state.
func (c Command) Validate() error {
	if err := core.Validate(c); err != nil {
		return err
	}

	return core.ValidateLoanPeriod(c.IssueDate, c.PlannedReturnDate)
}
