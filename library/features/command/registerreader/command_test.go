package registerreader_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
	"github.com/AntonStoeckl/library-circulation-go/library/features/command/registerreader"
)

func Test_Command_Validate(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	birth := time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC)
	registered := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		description   string
		command       registerreader.Command
		expectedField string
	}{
		{
			description: "valid reader",
			command:     registerreader.BuildCommand("Ivan Petrov", "+375291234567", "Minsk", birth, registered),
		},
		{
			description:   "blank name",
			command:       registerreader.BuildCommand("  ", "+375291234567", "Minsk", birth, registered),
			expectedField: "FullName",
		},
		{
			description:   "phone without country code",
			command:       registerreader.BuildCommand("Ivan Petrov", "80291234567", "Minsk", birth, registered),
			expectedField: "Phone",
		},
		{
			description:   "phone too short",
			command:       registerreader.BuildCommand("Ivan Petrov", "+37529123456", "Minsk", birth, registered),
			expectedField: "Phone",
		},
		{
			description:   "missing birth date",
			command:       registerreader.BuildCommand("Ivan Petrov", "+375291234567", "Minsk", time.Time{}, registered),
			expectedField: "BirthDate",
		},
		{
			description:   "registration before birth",
			command:       registerreader.BuildCommand("Ivan Petrov", "+375291234567", "Minsk", registered, birth),
			expectedField: "RegistrationDate",
		},
		{
			description:   "birth date in the future",
			command:       registerreader.BuildCommand("Ivan Petrov", "+375291234567", "Minsk", now.AddDate(0, 0, 1), now),
			expectedField: "BirthDate",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			// act
			err := tc.command.Validate(now)

			// assert
			if tc.expectedField == "" {
				assert.NoError(t, err)

				return
			}

			var validationErr *core.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tc.expectedField, validationErr.Field)
		})
	}
}
