package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
	"github.com/AntonStoeckl/library-circulation-go/library/features/command/returninstance"
	"github.com/AntonStoeckl/library-circulation-go/library/features/query/overdueloans"
	"github.com/AntonStoeckl/library-circulation-go/library/features/query/readerloans"
	"github.com/AntonStoeckl/library-circulation-go/library/features/query/udkcodes"
	"github.com/AntonStoeckl/library-circulation-go/library/shell/config"
)

func givenDate(t *testing.T, value string) time.Time {
	t.Helper()

	d, err := core.ParseDate(value)
	require.NoError(t, err)

	return d
}

func renderToString(t *testing.T, format string, v any) string {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, render(&buf, format, v))

	return buf.String()
}

func Test_Render_Table_ListsRowsAndCount(t *testing.T) {
	// arrange
	codes := udkcodes.UDKCodes{
		Codes: []core.UDKCode{
			{ID: 1, Code: "004.43", Description: "Programming languages"},
			{ID: 2, Code: "821.161.1", Description: "Russian literature"},
		},
		Count: 2,
	}

	// act
	output := renderToString(t, config.OutputTable, codes)

	// assert
	assert.Contains(t, output, "ID  CODE       DESCRIPTION")
	assert.Contains(t, output, "1   004.43     Programming languages")
	assert.Contains(t, output, "2   821.161.1  Russian literature")
	assert.Contains(t, output, "2 codes")
}

func Test_Render_Table_ReturnOutcome(t *testing.T) {
	// arrange
	returned := givenDate(t, "2025-03-20")
	outcome := returninstance.Outcome{
		Loan: core.Loan{
			ID:                7,
			InstanceID:        3,
			ReaderID:          5,
			IssueDate:         givenDate(t, "2025-03-01"),
			PlannedReturnDate: givenDate(t, "2025-03-15"),
			ActualReturnDate:  &returned,
			Status:            core.LoanReturned,
		},
		Return: core.ReturnClassification{Timing: core.ReturnedLate, Days: 5},
	}

	// act
	output := renderToString(t, config.OutputTable, outcome)

	// assert
	assert.Contains(t, output, "2025-03-20")
	assert.Contains(t, output, string(core.LoanReturned))
	assert.Contains(t, output, "returned 5 days late")
}

func Test_Render_Table_ReaderLoanStates(t *testing.T) {
	// arrange
	returned := givenDate(t, "2025-03-14")
	loans := readerloans.ReaderLoans{
		ReaderID:   5,
		ReaderName: "Ivan Petrov",
		Loans: []readerloans.LoanInfo{
			{
				LoanID:            1,
				Title:             "Dead Souls",
				Status:            core.LoanIssued,
				PlannedReturnDate: givenDate(t, "2025-04-01"),
				Due:               &core.DueClassification{Status: core.DueWarning, DaysLeft: 2},
			},
			{
				LoanID:           2,
				Title:            "The Overcoat",
				Status:           core.LoanReturned,
				ActualReturnDate: &returned,
				Return:           &core.ReturnClassification{Timing: core.ReturnedEarly, Days: 1},
			},
		},
		ActiveCount: 1,
		Count:       2,
	}

	// act
	output := renderToString(t, config.OutputTable, loans)

	// assert
	assert.Contains(t, output, "Warning (2 days left)")
	assert.Contains(t, output, "returned 1 day early")
	assert.Contains(t, output, "Ivan Petrov: 1 active of 2 loans")
}

func Test_Render_JSON(t *testing.T) {
	// arrange
	overdue := overdueloans.OverdueLoans{
		Loans: []overdueloans.LoanInfo{
			{LoanID: 9, Title: "Dead Souls", ReaderName: "Ivan Petrov", Status: core.DueOverdue, DaysLeft: -3},
		},
		OverdueCount: 1,
		Count:        1,
	}

	// act
	output := renderToString(t, config.OutputJSON, overdue)

	// assert
	assert.Contains(t, output, `"OverdueCount": 1`)
	assert.Contains(t, output, `"Status": "Overdue"`)
	assert.Contains(t, output, `"DaysLeft": -3`)
}

func Test_Render_Message(t *testing.T) {
	// act
	output := renderToString(t, config.OutputTable, message{Message: "schema is up to date"})

	// assert
	assert.Equal(t, "schema is up to date\n", output)
}

func Test_Plural(t *testing.T) {
	assert.Equal(t, "0 books", plural(0, "book"))
	assert.Equal(t, "1 book", plural(1, "book"))
	assert.Equal(t, "3 books", plural(3, "book"))
}
