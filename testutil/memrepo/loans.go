package memrepo

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
	"github.com/AntonStoeckl/library-circulation-go/library/shell/repository"
	"github.com/AntonStoeckl/library-circulation-go/store"
)

// InsertLoan stores a new active loan and returns its id.
func (r *Repository) InsertLoan(ctx context.Context, _ store.Session, loan core.Loan) (core.LoanID, error) {
	if err := r.enter(ctx, "InsertLoan"); err != nil {
		return 0, err
	}
	defer r.dataMu.Unlock()

	if _, ok := r.data.instances[loan.InstanceID]; !ok {
		return 0, foreignKeyViolation("issued_books.instance_id")
	}

	if _, ok := r.data.readers[loan.ReaderID]; !ok {
		return 0, foreignKeyViolation("issued_books.reader_id")
	}

	for _, existing := range r.data.loans {
		if existing.InstanceID == loan.InstanceID && existing.IsActive() {
			return 0, uniqueViolation("issued_books_one_active_loan_per_instance")
		}
	}

	r.data.lastLoanID++
	loan.ID = r.data.lastLoanID
	loan.IssueDate = core.ToDate(loan.IssueDate)
	loan.PlannedReturnDate = core.ToDate(loan.PlannedReturnDate)
	loan.ActualReturnDate = nil
	loan.OnTime = nil
	loan.Status = core.LoanIssued
	r.data.loans[loan.ID] = loan

	return loan.ID, nil
}

// LockLoan reads a loan.
func (r *Repository) LockLoan(ctx context.Context, _ store.Session, id core.LoanID) (core.Loan, bool, error) {
	if err := r.enter(ctx, "LockLoan"); err != nil {
		return core.Loan{}, false, err
	}
	defer r.dataMu.Unlock()

	loan, ok := r.data.loans[id]

	return loan, ok, nil
}

// CompleteLoan marks an active loan as returned.
func (r *Repository) CompleteLoan(
	ctx context.Context,
	_ store.Session,
	id core.LoanID,
	returnDate time.Time,
	onTime bool,
) (bool, error) {
	if err := r.enter(ctx, "CompleteLoan"); err != nil {
		return false, err
	}
	defer r.dataMu.Unlock()

	loan, ok := r.data.loans[id]
	if !ok || !loan.IsActive() {
		return false, nil
	}

	returned := core.ToDate(returnDate)
	loan.ActualReturnDate = &returned
	loan.OnTime = &onTime
	loan.Status = core.LoanReturned
	r.data.loans[id] = loan

	return true, nil
}

// CountActiveLoansOfReader counts the loans a reader has not returned yet.
func (r *Repository) CountActiveLoansOfReader(ctx context.Context, _ store.Session, readerID core.ReaderID) (int, error) {
	if err := r.enter(ctx, "CountActiveLoansOfReader"); err != nil {
		return 0, err
	}
	defer r.dataMu.Unlock()

	n := 0
	for _, loan := range r.data.loans {
		if loan.ReaderID == readerID && loan.IsActive() {
			n++
		}
	}

	return n, nil
}

// DeleteReturnedLoansOfReader removes the returned loans of a reader.
func (r *Repository) DeleteReturnedLoansOfReader(ctx context.Context, _ store.Session, readerID core.ReaderID) error {
	if err := r.enter(ctx, "DeleteReturnedLoansOfReader"); err != nil {
		return err
	}
	defer r.dataMu.Unlock()

	for id, loan := range r.data.loans {
		if loan.ReaderID == readerID && !loan.IsActive() {
			delete(r.data.loans, id)
		}
	}

	return nil
}

// DeleteReturnedLoansOfInstance removes the returned loans of one instance.
func (r *Repository) DeleteReturnedLoansOfInstance(ctx context.Context, _ store.Session, instanceID core.InstanceID) error {
	if err := r.enter(ctx, "DeleteReturnedLoansOfInstance"); err != nil {
		return err
	}
	defer r.dataMu.Unlock()

	for id, loan := range r.data.loans {
		if loan.InstanceID == instanceID && !loan.IsActive() {
			delete(r.data.loans, id)
		}
	}

	return nil
}

// DeleteReturnedLoansOfBook removes the returned loans of all instances of a book.
func (r *Repository) DeleteReturnedLoansOfBook(ctx context.Context, _ store.Session, bookID core.BookID) error {
	if err := r.enter(ctx, "DeleteReturnedLoansOfBook"); err != nil {
		return err
	}
	defer r.dataMu.Unlock()

	for id, loan := range r.data.loans {
		if r.data.instances[loan.InstanceID].BookID == bookID && !loan.IsActive() {
			delete(r.data.loans, id)
		}
	}

	return nil
}

// ListLoansOfReader returns all loans of a reader, newest issue date first.
func (r *Repository) ListLoansOfReader(ctx context.Context, _ store.Session, readerID core.ReaderID) ([]repository.LoanRow, error) {
	if err := r.enter(ctx, "ListLoansOfReader"); err != nil {
		return nil, err
	}
	defer r.dataMu.Unlock()

	rows := r.loanRows(func(loan core.Loan) bool { return loan.ReaderID == readerID })

	slices.SortFunc(rows, func(a, b repository.LoanRow) int {
		return cmp.Or(b.Loan.IssueDate.Compare(a.Loan.IssueDate), cmp.Compare(b.Loan.ID, a.Loan.ID))
	})

	return rows, nil
}

// ListActiveLoans returns all loans that are not returned yet, earliest planned return date first.
func (r *Repository) ListActiveLoans(ctx context.Context, _ store.Session) ([]repository.LoanRow, error) {
	if err := r.enter(ctx, "ListActiveLoans"); err != nil {
		return nil, err
	}
	defer r.dataMu.Unlock()

	rows := r.loanRows(core.Loan.IsActive)

	slices.SortFunc(rows, func(a, b repository.LoanRow) int {
		return cmp.Or(a.Loan.PlannedReturnDate.Compare(b.Loan.PlannedReturnDate), cmp.Compare(a.Loan.ID, b.Loan.ID))
	})

	return rows, nil
}

func (r *Repository) loanRows(include func(core.Loan) bool) []repository.LoanRow {
	rows := make([]repository.LoanRow, 0)

	for _, loan := range r.data.loans {
		if !include(loan) {
			continue
		}

		instance := r.data.instances[loan.InstanceID]
		reader := r.data.readers[loan.ReaderID]

		rows = append(rows, repository.LoanRow{
			Loan:            loan,
			InventoryNumber: instance.InventoryNumber,
			BookID:          instance.BookID,
			BookTitle:       r.data.books[instance.BookID].Title,
			ReaderName:      reader.FullName,
			ReaderPhone:     reader.Phone,
		})
	}

	return rows
}
