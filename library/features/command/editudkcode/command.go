package editudkcode

import (
	"strings"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
)

const (
	commandType = "EditUDKCode"
)

// Command represents the intent to change a UDK code.
type Command struct {
	UDKID       core.UDKID `validate:"gt=0"`
	Code        string     `validate:"notblank,max=50"`
	Description string     `validate:"notblank"`
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(udkID core.UDKID, code, description string) Command {
	return Command{
		UDKID:       udkID,
		Code:        strings.TrimSpace(code),
		Description: strings.TrimSpace(description),
	}
}
