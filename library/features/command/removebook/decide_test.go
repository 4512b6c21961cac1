package removebook_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
	"github.com/AntonStoeckl/library-circulation-go/library/features/command/removebook"
	"github.com/AntonStoeckl/library-circulation-go/library/shell/repository"
)

func Test_Decide(t *testing.T) {
	book := &core.Book{ID: 42, Title: "Dune", Year: 1965}

	testCases := []struct {
		description string
		current     removebook.Current
		expected    error
	}{
		{
			description: "all instances on the shelf",
			current:     removebook.Current{Book: book, Instances: repository.InstanceCounts{OnShelf: 2, Total: 2}},
		},
		{
			description: "no instances",
			current:     removebook.Current{Book: book},
		},
		{
			description: "one instance issued",
			current:     removebook.Current{Book: book, Instances: repository.InstanceCounts{OnShelf: 1, Total: 2}},
			expected:    core.ErrBookHasIssuedInstances,
		},
		{
			description: "book does not exist",
			current:     removebook.Current{},
			expected:    core.ErrBookNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			// act
			result := removebook.Decide(tc.current)

			// assert
			if tc.expected == nil {
				assert.NoError(t, result.HasError())
				assert.Equal(t, *book, result.Value)

				return
			}

			assert.ErrorIs(t, result.HasError(), tc.expected)
		})
	}
}
