package readerloans

import (
	"time"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
)

// LoanInfo is one loan of the reader.
// Due is set for active loans, Return for returned ones.
type LoanInfo struct {
	LoanID            core.LoanID
	BookID            core.BookID
	Title             string
	InventoryNumber   string
	IssueDate         time.Time
	PlannedReturnDate time.Time
	ActualReturnDate  *time.Time
	Status            core.LoanStatus
	Due               *core.DueClassification
	Return            *core.ReturnClassification
}

// ReaderLoans represents the query result.
type ReaderLoans struct {
	ReaderID    core.ReaderID
	ReaderName  string
	Loans       []LoanInfo
	ActiveCount int
	Count       int
}

// Len returns the number of listed loans.
func (r ReaderLoans) Len() int {
	return r.Count
}
