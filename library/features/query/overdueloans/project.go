package overdueloans

import (
	"cmp"
	"slices"
	"time"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
	"github.com/AntonStoeckl/library-circulation-go/library/shell/repository"
)

// Project implements the query logic to select the active loans needing attention.
// This is a pure function of the stored rows and the reference time.
//
// Query Logic:
//
//	GIVEN: All active loans
//	WHEN: OverdueLoans query is executed
//	THEN: OverdueLoans is returned ordered by days left, fewest first, then by loan id
//	INCLUDES: Loans classified Overdue or Warning at the reference time
//	EXCLUDES: Loans classified OnTrack and returned loans
func Project(rows []repository.LoanRow, now time.Time) OverdueLoans {
	result := OverdueLoans{Loans: make([]LoanInfo, 0)}

	for _, row := range rows {
		if !row.Loan.IsActive() {
			continue
		}

		due := core.ClassifyDue(row.Loan.PlannedReturnDate, now)

		switch due.Status {
		case core.DueOverdue:
			result.OverdueCount++
		case core.DueWarning:
			result.WarningCount++
		default:
			continue
		}

		result.Loans = append(result.Loans, LoanInfo{
			LoanID:            row.Loan.ID,
			BookID:            row.BookID,
			Title:             row.BookTitle,
			InventoryNumber:   row.InventoryNumber,
			ReaderID:          row.Loan.ReaderID,
			ReaderName:        row.ReaderName,
			ReaderPhone:       row.ReaderPhone,
			IssueDate:         row.Loan.IssueDate,
			PlannedReturnDate: row.Loan.PlannedReturnDate,
			Status:            due.Status,
			DaysLeft:          due.DaysLeft,
		})
	}

	slices.SortStableFunc(result.Loans, func(a, b LoanInfo) int {
		return cmp.Or(cmp.Compare(a.DaysLeft, b.DaysLeft), cmp.Compare(a.LoanID, b.LoanID))
	})

	result.Count = len(result.Loans)

	return result
}
