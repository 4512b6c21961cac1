package overdueloans_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
	"github.com/AntonStoeckl/library-circulation-go/library/features/query/overdueloans"
	"github.com/AntonStoeckl/library-circulation-go/testutil/memrepo"
)

func Test_QueryHandler_Handle_ReportsOverdueLoansWithReaderContact(t *testing.T) {
	// arrange
	ctx := context.Background()
	repo := memrepo.New()
	reader := repo.GivenReader(t, core.Reader{
		FullName:         "Ivan Petrov",
		Phone:            "+375291234567",
		BirthDate:        time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC),
		RegistrationDate: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	repo.GivenBook(t, core.Book{ID: 42, Title: "Dune", Year: 1965}, "Frank Herbert")
	instances := repo.GivenInstances(t, 42, 2, day(1))
	repo.GivenLoan(t, instances[0].ID, reader.ID, day(1), day(5))
	repo.GivenLoan(t, instances[1].ID, reader.ID, day(1), day(30))
	handler := overdueloans.NewQueryHandler(repo, repo, overdueloans.WithClock(func() time.Time { return day(8) }))

	// act
	result, err := handler.Handle(ctx, overdueloans.BuildQuery(time.Time{}))

	// assert
	require.NoError(t, err)
	require.Equal(t, 1, result.Count)
	assert.Equal(t, "+375291234567", result.Loans[0].ReaderPhone)
	assert.Equal(t, instances[0].InventoryNumber, result.Loans[0].InventoryNumber)
	assert.Equal(t, -3, result.Loans[0].DaysLeft)
}

func Test_QueryHandler_Handle_Error_StorageFailure(t *testing.T) {
	// arrange
	ctx := context.Background()
	repo := memrepo.New()
	repo.FailOn("ListActiveLoans", errors.Join(core.ErrStorage, errors.New("connection refused")))
	handler := overdueloans.NewQueryHandler(repo, repo)

	// act
	_, err := handler.Handle(ctx, overdueloans.BuildQuery(day(8)))

	// assert
	assert.ErrorIs(t, err, core.ErrStorage)
}
