package readerloans

import (
	"time"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
	"github.com/AntonStoeckl/library-circulation-go/library/shell/repository"
)

// Project implements the query logic to list and classify the loans of a reader.
// This is a pure function of the stored rows and the reference time.
//
// Query Logic:
//
//	GIVEN: A registered reader
//	WHEN: ReaderLoans query is executed
//	THEN: ReaderLoans is returned with every loan of the reader in storage order
//	INCLUDES: Due classification for active loans, return timing for returned loans
//	ERROR: ReaderNotFound if the reader does not exist
func Project(reader *core.Reader, rows []repository.LoanRow, now time.Time) core.DecisionResult[ReaderLoans] {
	if reader == nil {
		return core.ErrorDecision[ReaderLoans](core.ErrReaderNotFound)
	}

	result := ReaderLoans{
		ReaderID:   reader.ID,
		ReaderName: reader.FullName,
		Loans:      make([]LoanInfo, 0, len(rows)),
	}

	for _, row := range rows {
		info := LoanInfo{
			LoanID:            row.Loan.ID,
			BookID:            row.BookID,
			Title:             row.BookTitle,
			InventoryNumber:   row.InventoryNumber,
			IssueDate:         row.Loan.IssueDate,
			PlannedReturnDate: row.Loan.PlannedReturnDate,
			ActualReturnDate:  row.Loan.ActualReturnDate,
			Status:            row.Loan.Status,
		}

		switch {
		case row.Loan.IsActive():
			due := core.ClassifyDue(row.Loan.PlannedReturnDate, now)
			info.Due = &due
			result.ActiveCount++

		case row.Loan.ActualReturnDate != nil:
			ret := core.ClassifyReturn(row.Loan.PlannedReturnDate, *row.Loan.ActualReturnDate)
			info.Return = &ret
		}

		result.Loans = append(result.Loans, info)
	}

	result.Count = len(result.Loans)

	return core.SuccessDecision(result)
}
