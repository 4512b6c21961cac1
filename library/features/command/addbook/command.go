package addbook

import (
	"slices"
	"strings"
	"time"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
)

const (
	commandType = "AddBook"
)

// Command represents the intent to catalog a new book.
// A zero AcquisitionDate means the day the command is handled.
type Command struct {
	BookID          core.BookID `validate:"gt=0"`
	Title           string      `validate:"notblank"`
	Year            int
	UDKID           *core.UDKID
	Description     string
	AuthorNames     []string `validate:"min=1,dive,notblank"`
	Quantity        int      `validate:"gte=0,lte=1000"`
	AcquisitionDate time.Time
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
// Text is trimmed and repeated author names are dropped.
func BuildCommand(
	bookID core.BookID,
	title string,
	year int,
	udkID *core.UDKID,
	description string,
	authorNames []string,
	quantity int,
	acquisitionDate time.Time,
) Command {
	return Command{
		BookID:          bookID,
		Title:           strings.TrimSpace(title),
		Year:            year,
		UDKID:           udkID,
		Description:     strings.TrimSpace(description),
		AuthorNames:     normalizeNames(authorNames),
		Quantity:        quantity,
		AcquisitionDate: acquisitionDate,
	}
}

// Validate checks the command without looking at any stored state.
func (c Command) Validate(now time.Time) error {
	if err := core.Validate(c); err != nil {
		return err
	}

	return core.ValidateYear(c.Year, now)
}

func normalizeNames(names []string) []string {
	normalized := make([]string, 0, len(names))

	for _, name := range names {
		name = strings.TrimSpace(name)
		if !slices.Contains(normalized, name) {
			normalized = append(normalized, name)
		}
	}

	return normalized
}
