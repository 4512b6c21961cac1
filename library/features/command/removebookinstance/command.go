package removebookinstance

import (
	"github.com/AntonStoeckl/library-circulation-go/library/core"
)

const (
	commandType = "RemoveBookInstance"
)

// Command represents the intent to withdraw a copy of a book.
// A zero InstanceID picks the copy on the shelf with the lowest id.
type Command struct {
	BookID     core.BookID     `validate:"gt=0"`
	InstanceID core.InstanceID `validate:"gte=0"`
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(bookID core.BookID, instanceID core.InstanceID) Command {
	return Command{
		BookID:     bookID,
		InstanceID: instanceID,
	}
}

// picksAnyInstance reports whether the handler chooses the instance.
func (c Command) picksAnyInstance() bool {
	return c.InstanceID == 0
}
