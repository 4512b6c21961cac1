package removeauthor

import (
	"github.com/AntonStoeckl/library-circulation-go/library/core"
)

const (
	commandType = "RemoveAuthor"
)

// Command represents the intent to remove an author.
type Command struct {
	AuthorID core.AuthorID `validate:"gt=0"`
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(authorID core.AuthorID) Command {
	return Command{AuthorID: authorID}
}
