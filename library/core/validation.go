package core

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	// MinBookYear is the earliest accepted publication year.
	MinBookYear = 1000

	// MaxBookYearAhead is how many years past the current year a publication year may lie.
	MaxBookYearAhead = 5

	// MaxInstancesPerRequest bounds how many instances one request may create.
	MaxInstancesPerRequest = 1000

	tagNotBlank = "notblank"
	tagPhone    = "phone"
)

var phonePattern = regexp.MustCompile(`^\+375\d{9}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	_ = v.RegisterValidation(tagNotBlank, func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	_ = v.RegisterValidation(tagPhone, func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})

	return v
}

// Validate checks the `validate` struct tags of input and returns a *ValidationError for the first failing field.
// Besides the built-in tags it understands notblank (non-whitespace text) and phone (+375 followed by 9 digits).
func Validate(input any) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
		return NewValidationError(fieldErrors[0].Field(), reasonFor(fieldErrors[0]))
	}

	return errors.Join(ErrValidation, err)
}

func reasonFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", tagNotBlank:
		return "is required"
	case tagPhone:
		return "must be +375 followed by 9 digits"
	case "min":
		return fmt.Sprintf("must have at least %s entries", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	default:
		return "failed the " + fe.Tag() + " check"
	}
}

// ValidateYear checks that year lies in [MinBookYear, current year + MaxBookYearAhead].
func ValidateYear(year int, now time.Time) error {
	maxYear := now.Year() + MaxBookYearAhead

	if year < MinBookYear || year > maxYear {
		return NewValidationError("Year", fmt.Sprintf("must be between %d and %d", MinBookYear, maxYear))
	}

	return nil
}

// ValidateReaderDates checks that neither date lies in the future and registration is not before birth.
func ValidateReaderDates(birthDate, registrationDate, now time.Time) error {
	today := ToDate(now)

	if ToDate(birthDate).After(today) {
		return NewValidationError("BirthDate", "must not be in the future")
	}

	if ToDate(registrationDate).After(today) {
		return NewValidationError("RegistrationDate", "must not be in the future")
	}

	if ToDate(registrationDate).Before(ToDate(birthDate)) {
		return NewValidationError("RegistrationDate", "must not be before the birth date")
	}

	return nil
}

// ValidateLoanPeriod checks that the planned return date does not precede the issue date.
func ValidateLoanPeriod(issueDate, plannedReturnDate time.Time) error {
	if ToDate(plannedReturnDate).Before(ToDate(issueDate)) {
		return ErrInvalidDateRange
	}

	return nil
}
