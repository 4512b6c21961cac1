package overdueloans

import (
	"time"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
)

// LoanInfo is one loan needing attention.
type LoanInfo struct {
	LoanID            core.LoanID
	BookID            core.BookID
	Title             string
	InventoryNumber   string
	ReaderID          core.ReaderID
	ReaderName        string
	ReaderPhone       string
	IssueDate         time.Time
	PlannedReturnDate time.Time
	Status            core.DueStatus
	DaysLeft          int
}

// OverdueLoans represents the query result.
type OverdueLoans struct {
	Loans        []LoanInfo
	OverdueCount int
	WarningCount int
	Count        int
}

// Len returns the number of listed loans.
func (o OverdueLoans) Len() int {
	return o.Count
}
