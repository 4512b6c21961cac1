package addbook_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
	"github.com/AntonStoeckl/library-circulation-go/library/features/command/addbook"
)

func Test_Decide_Success_KeepsAuthorOrderOfTheCommand(t *testing.T) {
	// arrange
	current := addbook.Current{
		Authors: []core.Author{{ID: 1, FullName: "Arkady Strugatsky"}, {ID: 2, FullName: "Boris Strugatsky"}},
	}
	command := givenCommand([]string{"Boris Strugatsky", "Arkady Strugatsky"}, nil)

	// act
	result := addbook.Decide(current, command)

	// assert
	require.NoError(t, result.HasError())
	assert.Equal(t, []core.AuthorID{2, 1}, result.Value.AuthorIDs)
	assert.Equal(t, "Roadside Picnic", result.Value.Book.Title)
}

func Test_Decide_Error(t *testing.T) {
	udkID := core.UDKID(4)
	author := core.Author{ID: 1, FullName: "Arkady Strugatsky"}

	testCases := []struct {
		description string
		current     addbook.Current
		command     addbook.Command
		expected    error
	}{
		{
			description: "identifier taken",
			current:     addbook.Current{BookExists: true, Authors: []core.Author{author}},
			command:     givenCommand([]string{author.FullName}, nil),
			expected:    core.ErrBookAlreadyExists,
		},
		{
			description: "unknown author",
			current:     addbook.Current{Authors: []core.Author{author}},
			command:     givenCommand([]string{author.FullName, "Nobody"}, nil),
			expected:    core.ErrAuthorNotFound,
		},
		{
			description: "unknown UDK code",
			current:     addbook.Current{Authors: []core.Author{author}},
			command:     givenCommand([]string{author.FullName}, &udkID),
			expected:    core.ErrUDKCodeNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			// act
			result := addbook.Decide(tc.current, tc.command)

			// assert
			assert.ErrorIs(t, result.HasError(), tc.expected)
		})
	}
}

func Test_Command_Validate(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		description   string
		mutate        func(c *addbook.Command)
		expectedField string
	}{
		{description: "missing title", mutate: func(c *addbook.Command) { c.Title = "" }, expectedField: "Title"},
		{description: "no authors", mutate: func(c *addbook.Command) { c.AuthorNames = nil }, expectedField: "AuthorNames"},
		{description: "year too early", mutate: func(c *addbook.Command) { c.Year = 999 }, expectedField: "Year"},
		{description: "year too far ahead", mutate: func(c *addbook.Command) { c.Year = 2030 }, expectedField: "Year"},
		{description: "too many instances", mutate: func(c *addbook.Command) { c.Quantity = 1001 }, expectedField: "Quantity"},
		{description: "identifier not positive", mutate: func(c *addbook.Command) { c.BookID = 0 }, expectedField: "BookID"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			// arrange
			command := givenCommand([]string{"Arkady Strugatsky"}, nil)
			tc.mutate(&command)

			// act
			err := command.Validate(now)

			// assert
			var validationErr *core.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tc.expectedField, validationErr.Field)
		})
	}
}

func Test_Command_Validate_AcceptsYearFiveYearsAhead(t *testing.T) {
	// arrange
	command := givenCommand([]string{"Arkady Strugatsky"}, nil)
	command.Year = 2029

	// act
	err := command.Validate(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))

	// assert
	assert.NoError(t, err)
}

func Test_BuildCommand_NormalizesAuthorNames(t *testing.T) {
	// act
	command := givenCommand([]string{" Arkady Strugatsky ", "Arkady Strugatsky", "Boris Strugatsky"}, nil)

	// assert
	assert.Equal(t, []string{"Arkady Strugatsky", "Boris Strugatsky"}, command.AuthorNames)
}

func givenCommand(authorNames []string, udkID *core.UDKID) addbook.Command {
	return addbook.BuildCommand(
		42,
		"Roadside Picnic",
		1972,
		udkID,
		"First contact, as seen by a stalker.",
		authorNames,
		3,
		time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	)
}
