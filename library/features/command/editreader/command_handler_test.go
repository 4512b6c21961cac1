package editreader_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
	"github.com/AntonStoeckl/library-circulation-go/library/features/command/editreader"
	"github.com/AntonStoeckl/library-circulation-go/testutil/memrepo"
)

var (
	birth      = time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC)
	registered = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
)

func fixedClock() time.Time {
	return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
}

func Test_CommandHandler_Handle_OverwritesTheReader(t *testing.T) {
	// arrange
	ctx := context.Background()
	repo := memrepo.New()
	reader := givenReader(t, repo, "Ivan Petrov", "+375291234567")
	handler := editreader.NewCommandHandler(repo, repo, editreader.WithClock(fixedClock))

	// act
	edited, err := handler.Handle(ctx, editreader.BuildCommand(reader.ID, "Ivan Petrov", "+375291234567", "Brest", birth, registered))

	// assert
	require.NoError(t, err)
	assert.Equal(t, "Brest", edited.Address)

	stored, _, err := repo.FindReader(ctx, repo, reader.ID)
	require.NoError(t, err)
	assert.Equal(t, edited, stored)
}

func Test_CommandHandler_Handle_Error_ReaderAlreadyExists(t *testing.T) {
	// arrange
	ctx := context.Background()
	repo := memrepo.New()
	reader := givenReader(t, repo, "Ivan Petrov", "+375291234567")
	givenReader(t, repo, "Anna Petrova", "+375447654321")
	handler := editreader.NewCommandHandler(repo, repo, editreader.WithClock(fixedClock))

	// act
	_, err := handler.Handle(ctx, editreader.BuildCommand(reader.ID, "Anna Petrova", "+375447654321", "", birth, registered))

	// assert
	assert.ErrorIs(t, err, core.ErrReaderAlreadyExists)
}

func Test_CommandHandler_Handle_Error_ReaderNotFound(t *testing.T) {
	// arrange
	ctx := context.Background()
	repo := memrepo.New()
	handler := editreader.NewCommandHandler(repo, repo, editreader.WithClock(fixedClock))

	// act
	_, err := handler.Handle(ctx, editreader.BuildCommand(99, "Ivan Petrov", "+375291234567", "", birth, registered))

	// assert
	assert.ErrorIs(t, err, core.ErrReaderNotFound)
}

func Test_CommandHandler_Handle_Error_RegistrationBeforeBirth(t *testing.T) {
	// arrange
	ctx := context.Background()
	repo := memrepo.New()
	reader := givenReader(t, repo, "Ivan Petrov", "+375291234567")
	handler := editreader.NewCommandHandler(repo, repo, editreader.WithClock(fixedClock))

	// act
	_, err := handler.Handle(ctx, editreader.BuildCommand(reader.ID, "Ivan Petrov", "+375291234567", "", registered, birth))

	// assert
	assert.ErrorIs(t, err, core.ErrValidation)
}

func givenReader(t *testing.T, repo *memrepo.Repository, fullName, phone string) core.Reader {
	t.Helper()

	return repo.GivenReader(t, core.Reader{
		FullName:         fullName,
		Phone:            phone,
		Address:          "Minsk",
		BirthDate:        birth,
		RegistrationDate: registered,
	})
}
