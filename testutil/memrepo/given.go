package memrepo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
)

// GivenAuthor stores an author, or returns the existing one with this name.
func (r *Repository) GivenAuthor(t testing.TB, fullName string) core.Author {
	t.Helper()
	ctx := context.Background()

	author, found, err := r.FindAuthorByName(ctx, r, fullName)
	require.NoError(t, err)

	if found {
		return author
	}

	id, err := r.InsertAuthor(ctx, r, fullName)
	require.NoError(t, err)

	return core.Author{ID: id, FullName: fullName}
}

// GivenUDKCode stores a UDK code.
func (r *Repository) GivenUDKCode(t testing.TB, code, description string) core.UDKCode {
	t.Helper()

	udk := core.UDKCode{Code: code, Description: description}

	id, err := r.InsertUDKCode(context.Background(), r, udk)
	require.NoError(t, err)

	udk.ID = id

	return udk
}

// GivenBook stores a book linked to the named authors, creating missing authors.
func (r *Repository) GivenBook(t testing.TB, book core.Book, authorNames ...string) core.Book {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, r.InsertBook(ctx, r, book))

	authorIDs := make([]core.AuthorID, 0, len(authorNames))
	for _, name := range authorNames {
		authorIDs = append(authorIDs, r.GivenAuthor(t, name).ID)
	}

	require.NoError(t, r.ReplaceBookAuthors(ctx, r, book.ID, authorIDs))

	return book
}

// GivenInstances stores quantity OnShelf instances of a book.
func (r *Repository) GivenInstances(t testing.TB, bookID core.BookID, quantity int, acquiredAt time.Time) []core.BookInstance {
	t.Helper()

	instances := core.NewInstances(bookID, quantity, acquiredAt)

	ids, err := r.InsertInstances(context.Background(), r, instances)
	require.NoError(t, err)

	for i := range instances {
		instances[i].ID = ids[i]
	}

	return instances
}

// GivenReader stores a reader.
func (r *Repository) GivenReader(t testing.TB, reader core.Reader) core.Reader {
	t.Helper()

	id, err := r.InsertReader(context.Background(), r, reader)
	require.NoError(t, err)

	stored, _, err := r.FindReader(context.Background(), r, id)
	require.NoError(t, err)

	return stored
}

// GivenLoan lends an OnShelf instance to a reader.
func (r *Repository) GivenLoan(
	t testing.TB,
	instanceID core.InstanceID,
	readerID core.ReaderID,
	issueDate time.Time,
	plannedReturnDate time.Time,
) core.Loan {
	t.Helper()
	ctx := context.Background()

	changed, err := r.SetInstanceStatus(ctx, r, instanceID, core.InstanceOnShelf, core.InstanceIssued)
	require.NoError(t, err)
	require.True(t, changed, "instance %d must be on the shelf", instanceID)

	id, err := r.InsertLoan(ctx, r, core.Loan{
		InstanceID:        instanceID,
		ReaderID:          readerID,
		IssueDate:         issueDate,
		PlannedReturnDate: plannedReturnDate,
	})
	require.NoError(t, err)

	loan, _, err := r.LockLoan(ctx, r, id)
	require.NoError(t, err)

	return loan
}

// GivenReturnedLoan lends an instance and takes it back on returnDate.
func (r *Repository) GivenReturnedLoan(
	t testing.TB,
	instanceID core.InstanceID,
	readerID core.ReaderID,
	issueDate time.Time,
	plannedReturnDate time.Time,
	returnDate time.Time,
) core.Loan {
	t.Helper()
	ctx := context.Background()

	loan := r.GivenLoan(t, instanceID, readerID, issueDate, plannedReturnDate)

	completed, err := r.CompleteLoan(ctx, r, loan.ID, returnDate, core.IsOnTime(plannedReturnDate, returnDate))
	require.NoError(t, err)
	require.True(t, completed)

	changed, err := r.SetInstanceStatus(ctx, r, instanceID, core.InstanceIssued, core.InstanceOnShelf)
	require.NoError(t, err)
	require.True(t, changed)

	loan, _, err = r.LockLoan(ctx, r, loan.ID)
	require.NoError(t, err)

	return loan
}

// Instance reads an instance and fails the test when it does not exist.
func (r *Repository) Instance(t testing.TB, id core.InstanceID) core.BookInstance {
	t.Helper()

	instance, found, err := r.FindInstance(context.Background(), r, id)
	require.NoError(t, err)
	require.True(t, found, "instance %d must exist", id)

	return instance
}

// LoansOfReader lists the loans of a reader.
func (r *Repository) LoansOfReader(t testing.TB, readerID core.ReaderID) []core.Loan {
	t.Helper()

	rows, err := r.ListLoansOfReader(context.Background(), r, readerID)
	require.NoError(t, err)

	loans := make([]core.Loan, 0, len(rows))
	for _, row := range rows {
		loans = append(loans, row.Loan)
	}

	return loans
}
