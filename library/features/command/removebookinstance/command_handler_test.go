package removebookinstance_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
	"github.com/AntonStoeckl/library-circulation-go/library/features/command/removebookinstance"
	"github.com/AntonStoeckl/library-circulation-go/testutil/memrepo"
)

func Test_CommandHandler_Handle_RemovesTheLowestOnShelfInstance(t *testing.T) {
	// arrange
	ctx := context.Background()
	repo, reader := givenRepositoryWithReader(t)
	instances := givenBookWithInstances(t, repo, 3)
	repo.GivenLoan(t, instances[0].ID, reader.ID, givenDay(2), givenDay(10))
	handler := removebookinstance.NewCommandHandler(repo, repo)

	// act
	removed, err := handler.Handle(ctx, removebookinstance.BuildCommand(42, 0))

	// assert
	require.NoError(t, err)
	assert.Equal(t, instances[1].ID, removed.ID)

	remaining, err := repo.ListInstances(ctx, repo, 42)
	require.NoError(t, err)
	require.Len(t, remaining, 2)
	assert.Equal(t, instances[0].ID, remaining[0].ID)
	assert.Equal(t, instances[2].ID, remaining[1].ID)
}

func Test_CommandHandler_Handle_RemovesTheNamedInstanceWithItsReturnedLoans(t *testing.T) {
	// arrange
	ctx := context.Background()
	repo, reader := givenRepositoryWithReader(t)
	instances := givenBookWithInstances(t, repo, 2)
	repo.GivenReturnedLoan(t, instances[1].ID, reader.ID, givenDay(2), givenDay(10), givenDay(8))
	handler := removebookinstance.NewCommandHandler(repo, repo)

	// act
	removed, err := handler.Handle(ctx, removebookinstance.BuildCommand(42, instances[1].ID))

	// assert
	require.NoError(t, err)
	assert.Equal(t, instances[1].ID, removed.ID)
	assert.Empty(t, repo.LoansOfReader(t, reader.ID))

	_, found, err := repo.FindInstance(ctx, repo, instances[1].ID)
	require.NoError(t, err)
	assert.False(t, found)
}

func Test_CommandHandler_Handle_Error_InstanceNotOnShelf(t *testing.T) {
	// arrange
	ctx := context.Background()
	repo, reader := givenRepositoryWithReader(t)
	instances := givenBookWithInstances(t, repo, 1)
	repo.GivenLoan(t, instances[0].ID, reader.ID, givenDay(2), givenDay(10))
	handler := removebookinstance.NewCommandHandler(repo, repo)

	// act
	_, err := handler.Handle(ctx, removebookinstance.BuildCommand(42, instances[0].ID))

	// assert
	assert.ErrorIs(t, err, core.ErrInstanceNotOnShelf)
	assert.Len(t, repo.LoansOfReader(t, reader.ID), 1)
}

func Test_CommandHandler_Handle_Error_NoInstanceOnShelf(t *testing.T) {
	// arrange
	ctx := context.Background()
	repo, reader := givenRepositoryWithReader(t)
	instances := givenBookWithInstances(t, repo, 1)
	repo.GivenLoan(t, instances[0].ID, reader.ID, givenDay(2), givenDay(10))
	handler := removebookinstance.NewCommandHandler(repo, repo)

	// act
	_, err := handler.Handle(ctx, removebookinstance.BuildCommand(42, 0))

	// assert
	assert.ErrorIs(t, err, core.ErrNoInstanceOnShelf)
}

func Test_CommandHandler_Handle_Error_InstanceOfAnotherBook(t *testing.T) {
	// arrange
	ctx := context.Background()
	repo, _ := givenRepositoryWithReader(t)
	givenBookWithInstances(t, repo, 1)
	repo.GivenBook(t, core.Book{ID: 43, Title: "Solaris", Year: 1961}, "Stanislaw Lem")
	other := repo.GivenInstances(t, 43, 1, givenDay(1))
	handler := removebookinstance.NewCommandHandler(repo, repo)

	// act
	_, err := handler.Handle(ctx, removebookinstance.BuildCommand(42, other[0].ID))

	// assert
	assert.ErrorIs(t, err, core.ErrInstanceNotFound)
	assert.True(t, repo.Instance(t, other[0].ID).IsOnShelf())
}

func givenBookWithInstances(t *testing.T, repo *memrepo.Repository, quantity int) []core.BookInstance {
	t.Helper()

	repo.GivenBook(t, core.Book{ID: 42, Title: "Dune", Year: 1965}, "Frank Herbert")

	return repo.GivenInstances(t, 42, quantity, givenDay(1))
}

func givenRepositoryWithReader(t *testing.T) (*memrepo.Repository, core.Reader) {
	t.Helper()

	repo := memrepo.New()
	reader := repo.GivenReader(t, core.Reader{
		FullName:         "Ivan Petrov",
		Phone:            "+375291234567",
		BirthDate:        time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC),
		RegistrationDate: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	})

	return repo, reader
}

func givenDay(day int) time.Time {
	return time.Date(2024, 3, day, 0, 0, 0, 0, time.UTC)
}
