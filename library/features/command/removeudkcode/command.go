package removeudkcode

import (
	"github.com/AntonStoeckl/library-circulation-go/library/core"
)

const (
	commandType = "RemoveUDKCode"
)

// Command represents the intent to remove a UDK code.
type Command struct {
	UDKID core.UDKID `validate:"gt=0"`
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(udkID core.UDKID) Command {
	return Command{UDKID: udkID}
}
