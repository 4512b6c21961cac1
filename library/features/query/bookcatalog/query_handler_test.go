package bookcatalog_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
	"github.com/AntonStoeckl/library-circulation-go/library/features/query/bookcatalog"
	"github.com/AntonStoeckl/library-circulation-go/testutil/memrepo"
)

func Test_QueryHandler_Handle_ListsBooksByIdentifier(t *testing.T) {
	// arrange
	ctx := context.Background()
	repo := memrepo.New()
	udk := repo.GivenUDKCode(t, "821.162.1", "Polish literature")
	repo.GivenBook(t, core.Book{ID: 7, Title: "Solaris", Year: 1961, UDKID: &udk.ID}, "Stanislaw Lem")
	repo.GivenBook(t, core.Book{ID: 3, Title: "Roadside Picnic", Year: 1972}, "Boris Strugatsky", "Arkady Strugatsky")
	repo.GivenInstances(t, 3, 2, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	handler := bookcatalog.NewQueryHandler(repo, repo)

	// act
	catalog, err := handler.Handle(ctx, bookcatalog.BuildQuery(""))

	// assert
	require.NoError(t, err)
	require.Equal(t, 2, catalog.Len())
	assert.Equal(t, core.BookID(3), catalog.Books[0].BookID)
	assert.Equal(t, "Arkady Strugatsky, Boris Strugatsky", catalog.Books[0].Authors)
	assert.Equal(t, 2, catalog.Books[0].Available)
	assert.Equal(t, core.BookID(7), catalog.Books[1].BookID)
	assert.Equal(t, "821.162.1", catalog.Books[1].UDKCode)
}

func Test_QueryHandler_Handle_EmptyCatalog(t *testing.T) {
	// arrange
	ctx := context.Background()
	repo := memrepo.New()
	handler := bookcatalog.NewQueryHandler(repo, repo)

	// act
	catalog, err := handler.Handle(ctx, bookcatalog.BuildQuery("anything"))

	// assert
	require.NoError(t, err)
	assert.Empty(t, catalog.Books)
}
