package overdueloans_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
	"github.com/AntonStoeckl/library-circulation-go/library/features/query/overdueloans"
	"github.com/AntonStoeckl/library-circulation-go/library/shell/repository"
)

func Test_Project_SelectsOverdueAndWarningLoansMostUrgentFirst(t *testing.T) {
	// arrange
	now := time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC)
	returnedAt := day(8)
	rows := []repository.LoanRow{
		givenActiveLoan(1, day(25)),
		givenActiveLoan(2, day(12)),
		givenActiveLoan(3, day(4)),
		givenActiveLoan(4, day(10)),
		givenActiveLoan(5, day(9)),
		{Loan: core.Loan{ID: 6, PlannedReturnDate: day(1), ActualReturnDate: &returnedAt, Status: core.LoanReturned}},
	}

	// act
	result := overdueloans.Project(rows, now)

	// assert
	require.Equal(t, 4, result.Count)
	assert.Equal(t, 3, result.OverdueCount)
	assert.Equal(t, 1, result.WarningCount)

	ids := make([]core.LoanID, 0, result.Count)
	for _, loan := range result.Loans {
		ids = append(ids, loan.LoanID)
	}

	assert.Equal(t, []core.LoanID{3, 5, 4, 2}, ids)
	assert.Equal(t, -6, result.Loans[0].DaysLeft)
	assert.Equal(t, core.DueOverdue, result.Loans[0].Status)
	assert.Equal(t, core.DueOverdue, result.Loans[2].Status)
	assert.Equal(t, 0, result.Loans[2].DaysLeft)
	assert.Equal(t, core.DueWarning, result.Loans[3].Status)
}

func Test_Project_NothingNeedsAttention(t *testing.T) {
	// act
	result := overdueloans.Project([]repository.LoanRow{givenActiveLoan(1, day(25))}, day(1))

	// assert
	assert.Empty(t, result.Loans)
	assert.Zero(t, result.Len())
}

func givenActiveLoan(id core.LoanID, planned time.Time) repository.LoanRow {
	return repository.LoanRow{
		Loan: core.Loan{
			ID:                id,
			ReaderID:          7,
			IssueDate:         day(1),
			PlannedReturnDate: planned,
			Status:            core.LoanIssued,
		},
		BookTitle:  "Dune",
		ReaderName: "Ivan Petrov",
	}
}

func day(d int) time.Time {
	return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC)
}
