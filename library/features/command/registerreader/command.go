package registerreader

import (
	"strings"
	"time"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
)

const (
	commandType = "RegisterReader"
)

// Command represents the intent to register a reader.
// A zero RegistrationDate means the day the command is handled.
type Command struct {
	FullName         string    `validate:"notblank,max=255"`
	Phone            string    `validate:"phone"`
	Address          string    `validate:"max=500"`
	BirthDate        time.Time `validate:"required"`
	RegistrationDate time.Time
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(fullName, phone, address string, birthDate, registrationDate time.Time) Command {
	command := Command{
		FullName:  strings.TrimSpace(fullName),
		Phone:     strings.TrimSpace(phone),
		Address:   strings.TrimSpace(address),
		BirthDate: core.ToDate(birthDate),
	}

	if !registrationDate.IsZero() {
		command.RegistrationDate = core.ToDate(registrationDate)
	}

	return command
}

// Validate checks the command without looking at any stored state.
// RegistrationDate must be set before.
func (c Command) Validate(now time.Time) error {
	if err := core.Validate(c); err != nil {
		return err
	}

	return core.ValidateReaderDates(c.BirthDate, c.RegistrationDate, now)
}

func (c Command) reader() core.Reader {
	return core.Reader{
		FullName:         c.FullName,
		Phone:            c.Phone,
		Address:          c.Address,
		BirthDate:        c.BirthDate,
		RegistrationDate: c.RegistrationDate,
	}
}
