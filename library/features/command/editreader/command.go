package editreader

import (
	"strings"
	"time"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
)

const (
	commandType = "EditReader"
)

// Command represents the intent to overwrite a reader's attributes.
type Command struct {
	ReaderID         core.ReaderID `validate:"gt=0"`
	FullName         string        `validate:"notblank,max=255"`
	Phone            string        `validate:"phone"`
	Address          string        `validate:"max=500"`
	BirthDate        time.Time     `validate:"required"`
	RegistrationDate time.Time     `validate:"required"`
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(
	readerID core.ReaderID,
	fullName, phone, address string,
	birthDate, registrationDate time.Time,
) Command {
	command := Command{
		ReaderID: readerID,
		FullName: strings.TrimSpace(fullName),
		Phone:    strings.TrimSpace(phone),
		Address:  strings.TrimSpace(address),
	}

	if !birthDate.IsZero() {
		command.BirthDate = core.ToDate(birthDate)
	}

	if !registrationDate.IsZero() {
		command.RegistrationDate = core.ToDate(registrationDate)
	}

	return command
}

// Validate checks the command without looking at any stored state.
func (c Command) Validate(now time.Time) error {
	if err := core.Validate(c); err != nil {
		return err
	}

	return core.ValidateReaderDates(c.BirthDate, c.RegistrationDate, now)
}
