package repository_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
	"github.com/AntonStoeckl/library-circulation-go/library/features/command/issueinstance"
	"github.com/AntonStoeckl/library-circulation-go/library/features/command/returninstance"
	"github.com/AntonStoeckl/library-circulation-go/library/features/query/instanceavailability"
	"github.com/AntonStoeckl/library-circulation-go/library/shell/repository"
	"github.com/AntonStoeckl/library-circulation-go/store/postgresengine"
	"github.com/AntonStoeckl/library-circulation-go/testutil/helper"
	"github.com/AntonStoeckl/library-circulation-go/testutil/helper/postgreswrapper"
)

type givenShelf struct {
	book      core.Book
	instances []core.InstanceID
	reader    core.ReaderID
}

func givenBookWithInstancesAndReader(t *testing.T, db postgresengine.Store, repo repository.Repository) givenShelf {
	t.Helper()
	ctx := context.Background()

	book := helper.FixtureBook(helper.GivenUniqueBookID(t), "Solaris")
	require.NoError(t, repo.InsertBook(ctx, db, book), "error in arranging test data")

	instanceIDs, err := repo.InsertInstances(ctx, db, core.NewInstances(book.ID, 2, helper.GivenDate(t, "2023-12-01")))
	require.NoError(t, err, "error in arranging test data")

	readerID, err := repo.InsertReader(ctx, db, helper.FixtureReader(t, "Stanislaw Lem"))
	require.NoError(t, err, "error in arranging test data")

	return givenShelf{book: book, instances: instanceIDs, reader: readerID}
}

func Test_Integration_LoanLifecycle(t *testing.T) {
	// arrange
	ctx := context.Background()
	logSpy := helper.NewLogHandlerSpy(false)
	wrapper := postgreswrapper.CreateWrapperWithTestConfig(t, postgresengine.WithLogger(slog.New(logSpy)))
	db := wrapper.GetStore()
	repo := repository.New()
	shelf := givenBookWithInstancesAndReader(t, db, repo)

	issue := issueinstance.NewCommandHandler(db, repo)
	takeBack := returninstance.NewCommandHandler(db, repo)
	availability := instanceavailability.NewQueryHandler(db, repo)

	issueCommand := issueinstance.BuildCommand(
		shelf.instances[0],
		shelf.reader,
		helper.GivenDate(t, "2024-01-01"),
		helper.GivenDate(t, "2024-01-15"),
	)

	// act
	loan, issueErr := issue.Handle(ctx, issueCommand)
	availableAfterIssue, availabilityErr := availability.Handle(ctx, instanceavailability.BuildQuery(shelf.book.ID))
	_, secondIssueErr := issue.Handle(ctx, issueCommand)
	outcome, returnErr := takeBack.Handle(ctx, returninstance.BuildCommand(loan.ID, helper.GivenDate(t, "2024-01-20")))
	_, secondReturnErr := takeBack.Handle(ctx, returninstance.BuildCommand(loan.ID, helper.GivenDate(t, "2024-01-21")))

	// assert
	require.NoError(t, issueErr)
	assert.Equal(t, core.LoanIssued, loan.Status)
	assert.Nil(t, loan.ActualReturnDate)

	require.NoError(t, availabilityErr)
	assert.Equal(t, 1, availableAfterIssue.Available)
	assert.Equal(t, 2, availableAfterIssue.Total)

	assert.ErrorIs(t, secondIssueErr, core.ErrInstanceUnavailable)

	require.NoError(t, returnErr)
	assert.Equal(t, core.ReturnClassification{Timing: core.ReturnedLate, Days: 5}, outcome.Return)
	assert.Equal(t, core.LoanReturned, outcome.Loan.Status)
	require.NotNil(t, outcome.Loan.OnTime)
	assert.False(t, *outcome.Loan.OnTime)

	assert.ErrorIs(t, secondReturnErr, core.ErrLoanAlreadyReturned)

	instance, found, err := repo.FindInstance(ctx, db, shelf.instances[0])
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, core.InstanceOnShelf, instance.Status)

	assert.True(t, logSpy.HasInfoLogWithMessage("store operation: transaction committed").WithDurationMS().Assert())
	assert.True(t, logSpy.HasInfoLogWithMessage("store operation: transaction rolled back").Assert())
}

func Test_Integration_ListLoansOfReader(t *testing.T) {
	// arrange
	ctx := context.Background()
	wrapper := postgreswrapper.CreateWrapperWithTestConfig(t)
	db := wrapper.GetStore()
	repo := repository.New()
	shelf := givenBookWithInstancesAndReader(t, db, repo)

	_, err := issueinstance.NewCommandHandler(db, repo).Handle(ctx, issueinstance.BuildCommand(
		shelf.instances[1],
		shelf.reader,
		helper.GivenDate(t, "2024-02-01"),
		helper.GivenDate(t, "2024-02-15"),
	))
	require.NoError(t, err, "error in arranging test data")

	// act
	rows, err := repo.ListLoansOfReader(ctx, db, shelf.reader)

	// assert
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, shelf.instances[1], rows[0].Loan.InstanceID)
	assert.Equal(t, core.LoanIssued, rows[0].Loan.Status)
}
