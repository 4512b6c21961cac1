package addbookinstance

import (
	"time"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
)

const (
	commandType = "AddBookInstance"
)

// Command represents the intent to add a copy of a book.
// A zero AcquisitionDate means the day the command is handled.
type Command struct {
	BookID          core.BookID `validate:"gt=0"`
	AcquisitionDate time.Time
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(bookID core.BookID, acquisitionDate time.Time) Command {
	return Command{
		BookID:          bookID,
		AcquisitionDate: acquisitionDate,
	}
}
