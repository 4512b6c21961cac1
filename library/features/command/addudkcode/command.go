package addudkcode

import (
	"strings"
)

const (
	commandType = "AddUDKCode"
)

// Command represents the intent to add a UDK code.
type Command struct {
	Code        string `validate:"notblank,max=50"`
	Description string `validate:"notblank"`
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(code, description string) Command {
	return Command{
		Code:        strings.TrimSpace(code),
		Description: strings.TrimSpace(description),
	}
}
