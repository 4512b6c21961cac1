package addbookinstance_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
	"github.com/AntonStoeckl/library-circulation-go/library/features/command/addbookinstance"
	"github.com/AntonStoeckl/library-circulation-go/testutil/memrepo"
)

func fixedClock() time.Time {
	return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
}

func Test_CommandHandler_Handle_StoresANewInstance(t *testing.T) {
	// arrange
	ctx := context.Background()
	repo := memrepo.New()
	repo.GivenBook(t, core.Book{ID: 42, Title: "Dune", Year: 1965}, "Frank Herbert")
	repo.GivenInstances(t, 42, 1, fixedClock())
	handler := addbookinstance.NewCommandHandler(repo, repo, addbookinstance.WithClock(fixedClock))

	// act
	instance, err := handler.Handle(ctx, addbookinstance.BuildCommand(42, time.Time{}))

	// assert
	require.NoError(t, err)
	assert.NotZero(t, instance.ID)
	assert.True(t, instance.IsOnShelf())
	assert.Equal(t, core.ToDate(fixedClock()), instance.AcquisitionDate)
	assert.Equal(t, instance, repo.Instance(t, instance.ID))

	counts, err := repo.CountInstances(ctx, repo, 42)
	require.NoError(t, err)
	assert.Equal(t, 2, counts.OnShelf)
}

func Test_CommandHandler_Handle_UsesTheGivenAcquisitionDate(t *testing.T) {
	// arrange
	ctx := context.Background()
	repo := memrepo.New()
	repo.GivenBook(t, core.Book{ID: 42, Title: "Dune", Year: 1965}, "Frank Herbert")
	handler := addbookinstance.NewCommandHandler(repo, repo, addbookinstance.WithClock(fixedClock))
	acquiredAt := time.Date(2023, 11, 20, 0, 0, 0, 0, time.UTC)

	// act
	instance, err := handler.Handle(ctx, addbookinstance.BuildCommand(42, acquiredAt))

	// assert
	require.NoError(t, err)
	assert.Equal(t, acquiredAt, instance.AcquisitionDate)
}

func Test_CommandHandler_Handle_Error_BookNotFound(t *testing.T) {
	// arrange
	ctx := context.Background()
	repo := memrepo.New()
	handler := addbookinstance.NewCommandHandler(repo, repo, addbookinstance.WithClock(fixedClock))

	// act
	_, err := handler.Handle(ctx, addbookinstance.BuildCommand(42, time.Time{}))

	// assert
	assert.ErrorIs(t, err, core.ErrBookNotFound)
}

func Test_CommandHandler_Handle_Error_InvalidBookID(t *testing.T) {
	// arrange
	ctx := context.Background()
	repo := memrepo.New()
	handler := addbookinstance.NewCommandHandler(repo, repo)

	// act
	_, err := handler.Handle(ctx, addbookinstance.BuildCommand(0, time.Time{}))

	// assert
	assert.ErrorIs(t, err, core.ErrValidation)
	assert.Zero(t, repo.Commits()+repo.Rollbacks())
}

func Test_CommandHandler_Handle_Error_StorageFailure(t *testing.T) {
	// arrange
	ctx := context.Background()
	repo := memrepo.New()
	repo.GivenBook(t, core.Book{ID: 42, Title: "Dune", Year: 1965}, "Frank Herbert")
	repo.FailOn("InsertInstances", errors.Join(core.ErrStorage, errors.New("disk full")))
	handler := addbookinstance.NewCommandHandler(repo, repo, addbookinstance.WithClock(fixedClock))

	// act
	_, err := handler.Handle(ctx, addbookinstance.BuildCommand(42, time.Time{}))

	// assert
	assert.ErrorIs(t, err, core.ErrStorage)
	assert.Equal(t, 1, repo.Rollbacks())
}
