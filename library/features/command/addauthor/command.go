package addauthor

import (
	"strings"
)

const (
	commandType = "AddAuthor"
)

// Command represents the intent to register an author.
type Command struct {
	FullName string `validate:"notblank,max=255"`
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(fullName string) Command {
	return Command{FullName: strings.TrimSpace(fullName)}
}
