package addbook_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
	"github.com/AntonStoeckl/library-circulation-go/library/features/command/addbook"
	"github.com/AntonStoeckl/library-circulation-go/testutil/memrepo"
)

func Test_CommandHandler_Handle_Success(t *testing.T) {
	// arrange
	ctx := context.Background()
	repo := memrepo.New()
	repo.GivenAuthor(t, "Arkady Strugatsky")
	repo.GivenAuthor(t, "Boris Strugatsky")
	udk := repo.GivenUDKCode(t, "821.161.1", "Russian literature")
	handler := addbook.NewCommandHandler(repo, repo, addbook.WithClock(fixedClock))
	command := givenCommand([]string{"Arkady Strugatsky", "Boris Strugatsky"}, &udk.ID)

	// act
	result, err := handler.Handle(ctx, command)

	// assert
	require.NoError(t, err)
	require.Len(t, result.Instances, 3)

	for _, instance := range result.Instances {
		assert.NotZero(t, instance.ID)
		assert.Equal(t, core.InstanceOnShelf, instance.Status)
		assert.Regexp(t, `^BK-42-20240301-100000-[0-9a-f]{8}$`, instance.InventoryNumber)
	}

	catalog, err := repo.ListCatalog(ctx, repo)
	require.NoError(t, err)
	require.Len(t, catalog, 1)
	assert.Equal(t, []string{"Arkady Strugatsky", "Boris Strugatsky"}, catalog[0].Authors)
	assert.Equal(t, "821.161.1", catalog[0].UDKCode)
	assert.Equal(t, 3, catalog[0].Instances.OnShelf)
}

func Test_CommandHandler_Handle_UsesTheClockWithoutAcquisitionDate(t *testing.T) {
	// arrange
	ctx := context.Background()
	repo := memrepo.New()
	repo.GivenAuthor(t, "Arkady Strugatsky")
	handler := addbook.NewCommandHandler(repo, repo, addbook.WithClock(fixedClock))
	command := givenCommand([]string{"Arkady Strugatsky"}, nil)
	command.AcquisitionDate = time.Time{}
	command.Quantity = 1

	// act
	result, err := handler.Handle(ctx, command)

	// assert
	require.NoError(t, err)
	require.Len(t, result.Instances, 1)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), result.Instances[0].AcquisitionDate)
}

func Test_CommandHandler_Handle_Error_AuthorNotFound(t *testing.T) {
	// arrange
	ctx := context.Background()
	repo := memrepo.New()
	handler := addbook.NewCommandHandler(repo, repo, addbook.WithClock(fixedClock))

	// act
	_, err := handler.Handle(ctx, givenCommand([]string{"Nobody"}, nil))

	// assert
	assert.ErrorIs(t, err, core.ErrAuthorNotFound)
	_, found, findErr := repo.FindBook(ctx, repo, 42)
	require.NoError(t, findErr)
	assert.False(t, found)
}

func Test_CommandHandler_Handle_Error_BookAlreadyExists(t *testing.T) {
	// arrange
	ctx := context.Background()
	repo := memrepo.New()
	repo.GivenBook(t, core.Book{ID: 42, Title: "Something else", Year: 2000}, "Arkady Strugatsky")
	handler := addbook.NewCommandHandler(repo, repo, addbook.WithClock(fixedClock))

	// act
	_, err := handler.Handle(ctx, givenCommand([]string{"Arkady Strugatsky"}, nil))

	// assert
	assert.ErrorIs(t, err, core.ErrBookAlreadyExists)
}

func Test_CommandHandler_Handle_RollsBackWhenInstancesCannotBeStored(t *testing.T) {
	// arrange
	ctx := context.Background()
	repo := memrepo.New()
	repo.GivenAuthor(t, "Arkady Strugatsky")
	repo.FailOn("InsertInstances", errors.Join(core.ErrStorage, errors.New("connection lost")))
	handler := addbook.NewCommandHandler(repo, repo, addbook.WithClock(fixedClock))

	// act
	_, err := handler.Handle(ctx, givenCommand([]string{"Arkady Strugatsky"}, nil))

	// assert
	assert.ErrorIs(t, err, core.ErrStorage)
	_, found, findErr := repo.FindBook(ctx, repo, 42)
	require.NoError(t, findErr)
	assert.False(t, found)
}

func fixedClock() time.Time {
	return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
}
