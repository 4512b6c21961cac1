package removereader

import (
	"github.com/AntonStoeckl/library-circulation-go/library/core"
)

const (
	commandType = "RemoveReader"
)

// Command represents the intent to remove a reader.
type Command struct {
	ReaderID core.ReaderID `validate:"gt=0"`
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(readerID core.ReaderID) Command {
	return Command{ReaderID: readerID}
}
