package core_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
)

type readerInput struct {
	FullName string `validate:"notblank"`
	Phone    string `validate:"phone"`
}

type bookInput struct {
	Title       string   `validate:"notblank"`
	AuthorNames []string `validate:"min=1,dive,notblank"`
	Quantity    int      `validate:"gte=0,lte=1000"`
}

func Test_Validate_AcceptsValidInput(t *testing.T) {
	err := core.Validate(readerInput{FullName: "Ivan Petrov", Phone: "+375291234567"})

	assert.NoError(t, err)
}

func Test_Validate_ReportsFirstFailingField(t *testing.T) {
	testCases := []struct {
		name          string
		input         any
		expectedField string
	}{
		{name: "blank name", input: readerInput{FullName: "   ", Phone: "+375291234567"}, expectedField: "FullName"},
		{name: "phone without country code", input: readerInput{FullName: "Ivan", Phone: "291234567"}, expectedField: "Phone"},
		{name: "phone with too few digits", input: readerInput{FullName: "Ivan", Phone: "+37529123456"}, expectedField: "Phone"},
		{name: "no authors", input: bookInput{Title: "Go", AuthorNames: nil}, expectedField: "AuthorNames"},
		{name: "blank author", input: bookInput{Title: "Go", AuthorNames: []string{"A. Author", " "}}, expectedField: "AuthorNames[1]"},
		{name: "too many instances", input: bookInput{Title: "Go", AuthorNames: []string{"A"}, Quantity: 1001}, expectedField: "Quantity"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			err := core.Validate(tc.input)

			// assert
			require.Error(t, err)
			assert.ErrorIs(t, err, core.ErrValidation)

			var validationErr *core.ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tc.expectedField, validationErr.Field)
		})
	}
}

func Test_ValidateReaderDates(t *testing.T) {
	now := givenDate(t, "2024-06-01")

	testCases := []struct {
		name          string
		birth         time.Time
		registration  time.Time
		expectedField string
	}{
		{name: "valid", birth: givenDate(t, "1990-04-12"), registration: givenDate(t, "2020-01-01")},
		{name: "registered on the birth day", birth: givenDate(t, "2010-04-12"), registration: givenDate(t, "2010-04-12")},
		{name: "registered before birth", birth: givenDate(t, "1990-04-12"), registration: givenDate(t, "1989-01-01"), expectedField: "RegistrationDate"},
		{name: "born in the future", birth: givenDate(t, "2024-06-02"), registration: givenDate(t, "2024-06-02"), expectedField: "BirthDate"},
		{name: "registered in the future", birth: givenDate(t, "1990-04-12"), registration: givenDate(t, "2024-06-02"), expectedField: "RegistrationDate"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			err := core.ValidateReaderDates(tc.birth, tc.registration, now)

			// assert
			if tc.expectedField == "" {
				assert.NoError(t, err)
				return
			}

			var validationErr *core.ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tc.expectedField, validationErr.Field)
		})
	}
}

func Test_ValidateYear(t *testing.T) {
	now := givenDate(t, "2024-06-01")

	assert.NoError(t, core.ValidateYear(1000, now))
	assert.NoError(t, core.ValidateYear(2029, now))
	assert.ErrorIs(t, core.ValidateYear(999, now), core.ErrValidation)
	assert.ErrorIs(t, core.ValidateYear(2030, now), core.ErrValidation)
}

func Test_ValidateLoanPeriod(t *testing.T) {
	issue := givenDate(t, "2024-01-01")

	assert.NoError(t, core.ValidateLoanPeriod(issue, issue))
	assert.NoError(t, core.ValidateLoanPeriod(issue, givenDate(t, "2024-01-15")))
	assert.ErrorIs(t, core.ValidateLoanPeriod(issue, givenDate(t, "2023-12-31")), core.ErrInvalidDateRange)
	assert.ErrorIs(t, core.ValidateLoanPeriod(issue, givenDate(t, "2023-12-31")), core.ErrValidation)
}
