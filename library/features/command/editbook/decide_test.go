package editbook_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
	"github.com/AntonStoeckl/library-circulation-go/library/features/command/editbook"
)

func Test_Decide_Success(t *testing.T) {
	// arrange
	current := editbook.Current{
		Book:    &core.Book{ID: 42, Title: "Roadside Picnik", Year: 1972},
		Authors: []core.Author{{ID: 1, FullName: "Arkady Strugatsky"}},
	}
	command := editbook.BuildCommand(42, " Roadside Picnic ", 1972, nil, "", []string{"Arkady Strugatsky"})

	// act
	result := editbook.Decide(current, command)

	// assert
	require.NoError(t, result.HasError())
	assert.Equal(t, "Roadside Picnic", result.Value.Book.Title)
	assert.Equal(t, []core.AuthorID{1}, result.Value.AuthorIDs)
}

func Test_Decide_Error(t *testing.T) {
	udkID := core.UDKID(4)
	book := &core.Book{ID: 42, Title: "Roadside Picnic", Year: 1972}
	author := core.Author{ID: 1, FullName: "Arkady Strugatsky"}

	testCases := []struct {
		description string
		current     editbook.Current
		command     editbook.Command
		expected    error
	}{
		{
			description: "book does not exist",
			current:     editbook.Current{Authors: []core.Author{author}},
			command:     editbook.BuildCommand(42, "Roadside Picnic", 1972, nil, "", []string{author.FullName}),
			expected:    core.ErrBookNotFound,
		},
		{
			description: "unknown author",
			current:     editbook.Current{Book: book},
			command:     editbook.BuildCommand(42, "Roadside Picnic", 1972, nil, "", []string{"Nobody"}),
			expected:    core.ErrAuthorNotFound,
		},
		{
			description: "unknown UDK code",
			current:     editbook.Current{Book: book, Authors: []core.Author{author}},
			command:     editbook.BuildCommand(42, "Roadside Picnic", 1972, &udkID, "", []string{author.FullName}),
			expected:    core.ErrUDKCodeNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			// act
			result := editbook.Decide(tc.current, tc.command)

			// assert
			assert.ErrorIs(t, result.HasError(), tc.expected)
		})
	}
}
