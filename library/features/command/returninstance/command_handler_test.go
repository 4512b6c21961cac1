package returninstance_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
	"github.com/AntonStoeckl/library-circulation-go/library/features/command/returninstance"
	"github.com/AntonStoeckl/library-circulation-go/testutil/memrepo"
)

func Test_CommandHandler_Handle_Success_Late(t *testing.T) {
	// arrange
	ctx := context.Background()
	repo, loan := givenActiveLoanInRepository(t)
	handler := returninstance.NewCommandHandler(repo, repo)

	// act
	outcome, err := handler.Handle(ctx, returninstance.BuildCommand(loan.ID, givenDate(t, "2024-03-20")))

	// assert
	require.NoError(t, err)
	assert.Equal(t, core.ReturnedLate, outcome.Return.Timing)
	assert.Equal(t, 5, outcome.Return.Days)

	stored := repo.LoansOfReader(t, loan.ReaderID)[0]
	assert.Equal(t, core.LoanReturned, stored.Status)
	require.NotNil(t, stored.OnTime)
	assert.False(t, *stored.OnTime)
	assert.Equal(t, core.InstanceOnShelf, repo.Instance(t, loan.InstanceID).Status)
}

func Test_CommandHandler_Handle_UsesTheClockWithoutReturnDate(t *testing.T) {
	// arrange
	ctx := context.Background()
	repo, loan := givenActiveLoanInRepository(t)
	clock := func() time.Time { return time.Date(2024, 3, 15, 18, 45, 0, 0, time.UTC) }
	handler := returninstance.NewCommandHandler(repo, repo, returninstance.WithClock(clock))

	// act
	outcome, err := handler.Handle(ctx, returninstance.BuildCommand(loan.ID, time.Time{}))

	// assert
	require.NoError(t, err)
	assert.Equal(t, core.ReturnedOnTime, outcome.Return.Timing)
	assert.Equal(t, givenDate(t, "2024-03-15"), *outcome.Loan.ActualReturnDate)
}

func Test_CommandHandler_Handle_Error_SecondReturnIsRejected(t *testing.T) {
	// arrange
	ctx := context.Background()
	repo, loan := givenActiveLoanInRepository(t)
	handler := returninstance.NewCommandHandler(repo, repo)
	_, err := handler.Handle(ctx, returninstance.BuildCommand(loan.ID, givenDate(t, "2024-03-10")))
	require.NoError(t, err)

	// act
	_, err = handler.Handle(ctx, returninstance.BuildCommand(loan.ID, givenDate(t, "2024-03-12")))

	// assert
	assert.ErrorIs(t, err, core.ErrLoanAlreadyReturned)
	stored := repo.LoansOfReader(t, loan.ReaderID)[0]
	assert.Equal(t, givenDate(t, "2024-03-10"), *stored.ActualReturnDate)
}

func Test_CommandHandler_Handle_Error_LoanNotFound(t *testing.T) {
	// arrange
	ctx := context.Background()
	repo, _ := givenActiveLoanInRepository(t)
	handler := returninstance.NewCommandHandler(repo, repo)

	// act
	_, err := handler.Handle(ctx, returninstance.BuildCommand(404, givenDate(t, "2024-03-10")))

	// assert
	assert.ErrorIs(t, err, core.ErrLoanNotFound)
}

func Test_CommandHandler_Handle_RollsBackWhenTheInstanceCannotBeUpdated(t *testing.T) {
	// arrange
	ctx := context.Background()
	repo, loan := givenActiveLoanInRepository(t)
	repo.FailOn("SetInstanceStatus", errors.Join(core.ErrStorage, errors.New("connection lost")))
	handler := returninstance.NewCommandHandler(repo, repo)

	// act
	_, err := handler.Handle(ctx, returninstance.BuildCommand(loan.ID, givenDate(t, "2024-03-10")))

	// assert
	assert.ErrorIs(t, err, core.ErrStorage)
	stored := repo.LoansOfReader(t, loan.ReaderID)[0]
	assert.True(t, stored.IsActive())
	assert.Nil(t, stored.ActualReturnDate)
	assert.Equal(t, core.InstanceIssued, repo.Instance(t, loan.InstanceID).Status)
}

func Test_CommandHandler_Handle_Error_InstanceOfTheLoanIsNotIssued(t *testing.T) {
	// arrange
	ctx := context.Background()
	repo, loan := givenActiveLoanInRepository(t)
	givenInstanceBackOnShelf(t, repo, loan.InstanceID)
	handler := returninstance.NewCommandHandler(repo, repo)

	// act
	_, err := handler.Handle(ctx, returninstance.BuildCommand(loan.ID, givenDate(t, "2024-03-10")))

	// assert
	assert.ErrorIs(t, err, core.ErrStorage)
	assert.ErrorIs(t, err, core.ErrLentInstanceNotIssued)
	stored := repo.LoansOfReader(t, loan.ReaderID)[0]
	assert.Equal(t, core.LoanIssued, stored.Status)
	assert.Nil(t, stored.ActualReturnDate)
	assert.Equal(t, 1, repo.Rollbacks())
}

func givenInstanceBackOnShelf(t *testing.T, repo *memrepo.Repository, id core.InstanceID) {
	t.Helper()

	changed, err := repo.SetInstanceStatus(context.Background(), repo, id, core.InstanceIssued, core.InstanceOnShelf)
	require.NoError(t, err, "error in arranging test data")
	require.True(t, changed, "error in arranging test data")
}

func givenActiveLoanInRepository(t *testing.T) (*memrepo.Repository, core.Loan) {
	t.Helper()

	repo := memrepo.New()
	book := repo.GivenBook(t, core.Book{ID: 1, Title: "Dune", Year: 1965}, "Frank Herbert")
	instance := repo.GivenInstances(t, book.ID, 1, givenDate(t, "2024-01-10"))[0]
	reader := repo.GivenReader(t, core.Reader{
		FullName:         "Ivan Petrov",
		Phone:            "+375291234567",
		BirthDate:        givenDate(t, "1990-05-01"),
		RegistrationDate: givenDate(t, "2020-01-01"),
	})
	loan := repo.GivenLoan(t, instance.ID, reader.ID, givenDate(t, "2024-03-01"), givenDate(t, "2024-03-15"))

	return repo, loan
}
