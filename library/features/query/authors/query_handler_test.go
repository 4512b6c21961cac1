package authors_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-circulation-go/library/features/query/authors"
	"github.com/AntonStoeckl/library-circulation-go/testutil/memrepo"
)

func Test_QueryHandler_Handle_ListsAuthorsByName(t *testing.T) {
	// arrange
	ctx := context.Background()
	repo := memrepo.New()
	repo.GivenAuthor(t, "Stanislaw Lem")
	repo.GivenAuthor(t, "Frank Herbert")
	handler := authors.NewQueryHandler(repo, repo)

	// act
	result, err := handler.Handle(ctx, authors.BuildQuery())

	// assert
	require.NoError(t, err)
	require.Equal(t, 2, result.Len())
	assert.Equal(t, "Frank Herbert", result.Authors[0].FullName)
	assert.Equal(t, "Stanislaw Lem", result.Authors[1].FullName)
}
