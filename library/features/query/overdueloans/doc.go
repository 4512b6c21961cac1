// Package overdueloans implements the Overdue Loans query use case.
//
// It lists the active loans that are overdue or due within the warning window, most urgent first, so that the
// librarian can contact the readers.
package overdueloans
