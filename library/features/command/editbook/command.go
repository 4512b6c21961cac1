package editbook

import (
	"slices"
	"strings"
	"time"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
)

const (
	commandType = "EditBook"
)

// Command represents the intent to change a cataloged book.
type Command struct {
	BookID      core.BookID `validate:"gt=0"`
	Title       string      `validate:"notblank"`
	Year        int
	UDKID       *core.UDKID
	Description string
	AuthorNames []string `validate:"min=1,dive,notblank"`
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(
	bookID core.BookID,
	title string,
	year int,
	udkID *core.UDKID,
	description string,
	authorNames []string,
) Command {
	names := make([]string, 0, len(authorNames))
	for _, name := range authorNames {
		name = strings.TrimSpace(name)
		if !slices.Contains(names, name) {
			names = append(names, name)
		}
	}

	return Command{
		BookID:      bookID,
		Title:       strings.TrimSpace(title),
		Year:        year,
		UDKID:       udkID,
		Description: strings.TrimSpace(description),
		AuthorNames: names,
	}
}

// Validate checks the command without looking at any stored state.
func (c Command) Validate(now time.Time) error {
	if err := core.Validate(c); err != nil {
		return err
	}

	return core.ValidateYear(c.Year, now)
}
