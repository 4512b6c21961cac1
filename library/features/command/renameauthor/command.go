package renameauthor

import (
	"strings"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
)

const (
	commandType = "RenameAuthor"
)

// Command represents the intent to change an author's name.
type Command struct {
	AuthorID core.AuthorID `validate:"gt=0"`
	FullName string        `validate:"notblank,max=255"`
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(authorID core.AuthorID, fullName string) Command {
	return Command{
		AuthorID: authorID,
		FullName: strings.TrimSpace(fullName),
	}
}
