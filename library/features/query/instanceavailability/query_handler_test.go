package instanceavailability_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
	"github.com/AntonStoeckl/library-circulation-go/library/features/command/issueinstance"
	"github.com/AntonStoeckl/library-circulation-go/library/features/query/instanceavailability"
	"github.com/AntonStoeckl/library-circulation-go/testutil/memrepo"
)

func Test_QueryHandler_Handle_CountsInstancesOnTheShelf(t *testing.T) {
	// arrange
	ctx := context.Background()
	repo := memrepo.New()
	repo.GivenBook(t, core.Book{ID: 42, Title: "Dune", Year: 1965}, "Frank Herbert")
	instances := repo.GivenInstances(t, 42, 2, givenDay(1))
	reader := givenReader(t, repo)
	handler := instanceavailability.NewQueryHandler(repo, repo)

	_, err := issueinstance.NewCommandHandler(repo, repo).Handle(
		ctx,
		issueinstance.BuildCommand(instances[0].ID, reader.ID, givenDay(1), givenDay(15)),
	)
	require.NoError(t, err)

	// act
	availability, err := handler.Handle(ctx, instanceavailability.BuildQuery(42))

	// assert
	require.NoError(t, err)
	assert.Equal(t, instanceavailability.Availability{BookID: 42, Available: 1, Total: 2}, availability)
}

func Test_QueryHandler_Handle_BookWithoutInstances(t *testing.T) {
	// arrange
	ctx := context.Background()
	repo := memrepo.New()
	repo.GivenBook(t, core.Book{ID: 42, Title: "Dune", Year: 1965}, "Frank Herbert")
	handler := instanceavailability.NewQueryHandler(repo, repo)

	// act
	availability, err := handler.Handle(ctx, instanceavailability.BuildQuery(42))

	// assert
	require.NoError(t, err)
	assert.Zero(t, availability.Available)
	assert.Zero(t, availability.Total)
}

func Test_QueryHandler_Handle_Error_BookNotFound(t *testing.T) {
	// arrange
	ctx := context.Background()
	repo := memrepo.New()
	handler := instanceavailability.NewQueryHandler(repo, repo)

	// act
	_, err := handler.Handle(ctx, instanceavailability.BuildQuery(42))

	// assert
	assert.ErrorIs(t, err, core.ErrBookNotFound)
}

func Test_QueryHandler_Handle_Error_Canceled(t *testing.T) {
	// arrange
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	repo := memrepo.New()
	handler := instanceavailability.NewQueryHandler(repo, repo)

	// act
	_, err := handler.Handle(ctx, instanceavailability.BuildQuery(42))

	// assert
	assert.ErrorIs(t, err, context.Canceled)
}

func givenReader(t *testing.T, repo *memrepo.Repository) core.Reader {
	t.Helper()

	return repo.GivenReader(t, core.Reader{
		FullName:         "Ivan Petrov",
		Phone:            "+375291234567",
		BirthDate:        time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC),
		RegistrationDate: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	})
}

func givenDay(day int) time.Time {
	return time.Date(2024, 1, day, 0, 0, 0, 0, time.UTC)
}
