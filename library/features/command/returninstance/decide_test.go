package returninstance_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
	"github.com/AntonStoeckl/library-circulation-go/library/features/command/returninstance"
)

func Test_Decide_ClassifiesTheReturn(t *testing.T) {
	testCases := []struct {
		description    string
		returnDate     string
		expectedTiming core.ReturnTiming
		expectedDays   int
		expectedOnTime bool
	}{
		{description: "two days early", returnDate: "2024-03-13", expectedTiming: core.ReturnedEarly, expectedDays: 2, expectedOnTime: true},
		{description: "on the planned day", returnDate: "2024-03-15", expectedTiming: core.ReturnedOnTime, expectedDays: 0, expectedOnTime: true},
		{description: "five days late", returnDate: "2024-03-20", expectedTiming: core.ReturnedLate, expectedDays: 5, expectedOnTime: false},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			// arrange
			loan := givenActiveLoan(t, "2024-03-01", "2024-03-15")
			returnDate := givenDate(t, tc.returnDate)

			// act
			result := returninstance.Decide(&loan, returnDate)

			// assert
			require.NoError(t, result.HasError())
			assert.Equal(t, tc.expectedTiming, result.Value.Return.Timing)
			assert.Equal(t, tc.expectedDays, result.Value.Return.Days)
			assert.Equal(t, core.LoanReturned, result.Value.Loan.Status)
			require.NotNil(t, result.Value.Loan.OnTime)
			assert.Equal(t, tc.expectedOnTime, *result.Value.Loan.OnTime)
			require.NotNil(t, result.Value.Loan.ActualReturnDate)
			assert.Equal(t, returnDate, *result.Value.Loan.ActualReturnDate)
		})
	}
}

func Test_Decide_DoesNotModifyTheInputLoan(t *testing.T) {
	// arrange
	loan := givenActiveLoan(t, "2024-03-01", "2024-03-15")

	// act
	_ = returninstance.Decide(&loan, givenDate(t, "2024-03-10"))

	// assert
	assert.True(t, loan.IsActive())
	assert.Nil(t, loan.ActualReturnDate)
}

func Test_Decide_Error_LoanNotFound(t *testing.T) {
	// act
	result := returninstance.Decide(nil, givenDate(t, "2024-03-10"))

	// assert
	assert.ErrorIs(t, result.HasError(), core.ErrLoanNotFound)
	assert.ErrorIs(t, result.HasError(), core.ErrNotFound)
}

func Test_Decide_Error_LoanAlreadyReturned(t *testing.T) {
	// arrange
	loan := givenActiveLoan(t, "2024-03-01", "2024-03-15")
	loan.Status = core.LoanReturned

	// act
	result := returninstance.Decide(&loan, givenDate(t, "2024-03-10"))

	// assert
	assert.ErrorIs(t, result.HasError(), core.ErrLoanAlreadyReturned)
	assert.ErrorIs(t, result.HasError(), core.ErrConflict)
}

func givenDate(t *testing.T, value string) time.Time {
	t.Helper()

	date, err := core.ParseDate(value)
	require.NoError(t, err)

	return date
}

func givenActiveLoan(t *testing.T, issueDate, plannedReturnDate string) core.Loan {
	t.Helper()

	return core.Loan{
		ID:                3,
		InstanceID:        7,
		ReaderID:          5,
		IssueDate:         givenDate(t, issueDate),
		PlannedReturnDate: givenDate(t, plannedReturnDate),
		Status:            core.LoanIssued,
	}
}
