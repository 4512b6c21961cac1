package removebookinstance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
	"github.com/AntonStoeckl/library-circulation-go/library/features/command/removebookinstance"
)

func Test_Decide(t *testing.T) {
	book := &core.Book{ID: 42, Title: "Dune", Year: 1965}
	onShelf := &core.BookInstance{ID: 7, BookID: 42, Status: core.InstanceOnShelf}
	issued := &core.BookInstance{ID: 8, BookID: 42, Status: core.InstanceIssued}
	otherBook := &core.BookInstance{ID: 9, BookID: 43, Status: core.InstanceOnShelf}

	testCases := []struct {
		description string
		current     removebookinstance.Current
		command     removebookinstance.Command
		expected    error
	}{
		{
			description: "named instance on the shelf",
			current:     removebookinstance.Current{Book: book, Instance: onShelf},
			command:     removebookinstance.BuildCommand(42, 7),
		},
		{
			description: "any instance on the shelf",
			current:     removebookinstance.Current{Book: book, Instance: onShelf},
			command:     removebookinstance.BuildCommand(42, 0),
		},
		{
			description: "book does not exist",
			current:     removebookinstance.Current{},
			command:     removebookinstance.BuildCommand(42, 7),
			expected:    core.ErrBookNotFound,
		},
		{
			description: "named instance does not exist",
			current:     removebookinstance.Current{Book: book},
			command:     removebookinstance.BuildCommand(42, 7),
			expected:    core.ErrInstanceNotFound,
		},
		{
			description: "no instance on the shelf",
			current:     removebookinstance.Current{Book: book},
			command:     removebookinstance.BuildCommand(42, 0),
			expected:    core.ErrNoInstanceOnShelf,
		},
		{
			description: "named instance belongs to another book",
			current:     removebookinstance.Current{Book: book, Instance: otherBook},
			command:     removebookinstance.BuildCommand(42, 9),
			expected:    core.ErrInstanceNotFound,
		},
		{
			description: "named instance is issued",
			current:     removebookinstance.Current{Book: book, Instance: issued},
			command:     removebookinstance.BuildCommand(42, 8),
			expected:    core.ErrInstanceNotOnShelf,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			// act
			result := removebookinstance.Decide(tc.current, tc.command)

			// assert
			if tc.expected == nil {
				assert.NoError(t, result.HasError())
				assert.Equal(t, *tc.current.Instance, result.Value)

				return
			}

			assert.ErrorIs(t, result.HasError(), tc.expected)
		})
	}
}
