package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
	"github.com/AntonStoeckl/library-circulation-go/store"
)

const (
	aliasLoan     = "l"
	aliasInstance = "i"
	aliasBook     = "b"
	aliasReader   = "r"
)

// LoanRow is a loan joined with what a librarian needs to see next to it.
type LoanRow struct {
	Loan            core.Loan
	InventoryNumber string
	BookID          core.BookID
	BookTitle       string
	ReaderName      string
	ReaderPhone     string
}

func loanColumns() []any {
	return []any{
		colID, colInstanceID, colReaderID, colIssueDate, colPlannedReturnDate,
		colActualReturnDate, colStatus, colOnTime,
	}
}

func scanLoan(row store.Row, loan *core.Loan, extra ...any) error {
	var issued, planned time.Time
	var returned sql.NullTime
	var status string
	var onTime sql.NullBool

	dest := append([]any{
		&loan.ID, &loan.InstanceID, &loan.ReaderID, &issued, &planned, &returned, &status, &onTime,
	}, extra...)

	if err := row.Scan(dest...); err != nil {
		return err
	}

	loan.IssueDate = core.ToDate(issued)
	loan.PlannedReturnDate = core.ToDate(planned)
	loan.ActualReturnDate = dateFromNull(returned)
	loan.Status = core.LoanStatus(status)
	loan.OnTime = boolFromNull(onTime)

	return nil
}

// InsertLoan stores a new loan and returns its id.
func (r Repository) InsertLoan(ctx context.Context, s store.Session, loan core.Loan) (core.LoanID, error) {
	ds := r.dialect.Insert(tableIssuedBooks).
		Rows(goqu.Record{
			colInstanceID:        loan.InstanceID,
			colReaderID:          loan.ReaderID,
			colIssueDate:         core.ToDate(loan.IssueDate),
			colPlannedReturnDate: core.ToDate(loan.PlannedReturnDate),
			colStatus:            string(core.LoanIssued),
		}).
		Returning(colID).
		Prepared(true)

	var id core.LoanID

	if _, err := r.queryRow(ctx, s, ds, func(row store.Row) error { return row.Scan(&id) }); err != nil {
		return 0, err
	}

	return id, nil
}

// LockLoan reads a loan and locks its row until the surrounding transaction ends.
func (r Repository) LockLoan(ctx context.Context, s store.Session, id core.LoanID) (core.Loan, bool, error) {
	ds := r.dialect.From(tableIssuedBooks).
		Select(loanColumns()...).
		Where(goqu.C(colID).Eq(id)).
		ForUpdate(exp.Wait).
		Prepared(true)

	var loan core.Loan

	found, err := r.queryRow(ctx, s, ds, func(row store.Row) error { return scanLoan(row, &loan) })
	if err != nil || !found {
		return core.Loan{}, false, err
	}

	return loan, true, nil
}

// CompleteLoan marks an active loan as returned. It reports false when the loan is not active.
func (r Repository) CompleteLoan(
	ctx context.Context,
	s store.Session,
	id core.LoanID,
	returnDate time.Time,
	onTime bool,
) (bool, error) {
	ds := r.dialect.Update(tableIssuedBooks).
		Set(goqu.Record{
			colStatus:           string(core.LoanReturned),
			colActualReturnDate: core.ToDate(returnDate),
			colOnTime:           onTime,
		}).
		Where(
			goqu.C(colID).Eq(id),
			goqu.C(colStatus).Eq(string(core.LoanIssued)),
		).
		Prepared(true)

	rowsAffected, err := r.exec(ctx, s, ds)
	if err != nil {
		return false, err
	}

	return rowsAffected == 1, nil
}

// CountActiveLoansOfReader counts the loans a reader has not returned yet.
func (r Repository) CountActiveLoansOfReader(ctx context.Context, s store.Session, readerID core.ReaderID) (int, error) {
	ds := r.dialect.From(tableIssuedBooks).
		Select(goqu.COUNT("*")).
		Where(
			goqu.C(colReaderID).Eq(readerID),
			goqu.C(colStatus).Eq(string(core.LoanIssued)),
		).
		Prepared(true)

	return r.count(ctx, s, ds)
}

// DeleteReturnedLoansOfReader removes the returned loans of a reader. Active loans are kept.
func (r Repository) DeleteReturnedLoansOfReader(ctx context.Context, s store.Session, readerID core.ReaderID) error {
	ds := r.dialect.Delete(tableIssuedBooks).
		Where(
			goqu.C(colReaderID).Eq(readerID),
			goqu.C(colStatus).Eq(string(core.LoanReturned)),
		).
		Prepared(true)

	_, err := r.exec(ctx, s, ds)

	return err
}

// DeleteReturnedLoansOfInstance removes the returned loans of one instance. Active loans are kept.
func (r Repository) DeleteReturnedLoansOfInstance(ctx context.Context, s store.Session, instanceID core.InstanceID) error {
	ds := r.dialect.Delete(tableIssuedBooks).
		Where(
			goqu.C(colInstanceID).Eq(instanceID),
			goqu.C(colStatus).Eq(string(core.LoanReturned)),
		).
		Prepared(true)

	_, err := r.exec(ctx, s, ds)

	return err
}

// DeleteReturnedLoansOfBook removes the returned loans of all instances of a book. Active loans are kept.
func (r Repository) DeleteReturnedLoansOfBook(ctx context.Context, s store.Session, bookID core.BookID) error {
	instancesOfBook := r.dialect.From(tableBookInstances).
		Select(colID).
		Where(goqu.C(colBookID).Eq(bookID))

	ds := r.dialect.Delete(tableIssuedBooks).
		Where(
			goqu.C(colInstanceID).In(instancesOfBook),
			goqu.C(colStatus).Eq(string(core.LoanReturned)),
		).
		Prepared(true)

	_, err := r.exec(ctx, s, ds)

	return err
}

// ListLoansOfReader returns all loans of a reader, newest issue date first.
func (r Repository) ListLoansOfReader(ctx context.Context, s store.Session, readerID core.ReaderID) ([]LoanRow, error) {
	ds := r.selectLoanRows().
		Where(goqu.I(aliasLoan+"."+colReaderID).Eq(readerID)).
		Order(
			goqu.I(aliasLoan+"."+colIssueDate).Desc(),
			goqu.I(aliasLoan+"."+colID).Desc(),
		).
		Prepared(true)

	return r.listLoanRows(ctx, s, ds)
}

// ListActiveLoans returns all loans that are not returned yet, earliest planned return date first.
func (r Repository) ListActiveLoans(ctx context.Context, s store.Session) ([]LoanRow, error) {
	ds := r.selectLoanRows().
		Where(goqu.I(aliasLoan+"."+colStatus).Eq(string(core.LoanIssued))).
		Order(
			goqu.I(aliasLoan+"."+colPlannedReturnDate).Asc(),
			goqu.I(aliasLoan+"."+colID).Asc(),
		).
		Prepared(true)

	return r.listLoanRows(ctx, s, ds)
}

func (r Repository) selectLoanRows() *goqu.SelectDataset {
	columns := make([]any, 0, len(loanColumns())+5)
	for _, column := range loanColumns() {
		columns = append(columns, goqu.I(aliasLoan+"."+column.(string)))
	}

	columns = append(columns,
		goqu.I(aliasInstance+"."+colInventoryNumber),
		goqu.I(aliasBook+"."+colIdentifier),
		goqu.I(aliasBook+"."+colTitle),
		goqu.I(aliasReader+"."+colFullName),
		goqu.I(aliasReader+"."+colPhone),
	)

	return r.dialect.From(goqu.T(tableIssuedBooks).As(aliasLoan)).
		Select(columns...).
		Join(
			goqu.T(tableBookInstances).As(aliasInstance),
			goqu.On(goqu.I(aliasInstance+"."+colID).Eq(goqu.I(aliasLoan+"."+colInstanceID))),
		).
		Join(
			goqu.T(tableBooks).As(aliasBook),
			goqu.On(goqu.I(aliasBook+"."+colIdentifier).Eq(goqu.I(aliasInstance+"."+colBookID))),
		).
		Join(
			goqu.T(tableReaders).As(aliasReader),
			goqu.On(goqu.I(aliasReader+"."+colID).Eq(goqu.I(aliasLoan+"."+colReaderID))),
		)
}

func (r Repository) listLoanRows(ctx context.Context, s store.Session, ds sqlBuilder) ([]LoanRow, error) {
	loans := make([]LoanRow, 0)

	err := r.query(ctx, s, ds, func(rows store.Rows) error {
		var row LoanRow

		err := scanLoan(rows, &row.Loan,
			&row.InventoryNumber, &row.BookID, &row.BookTitle, &row.ReaderName, &row.ReaderPhone)
		if err != nil {
			return err
		}

		loans = append(loans, row)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return loans, nil
}
