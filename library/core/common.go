package core

import (
	"time"
)

// Instead of implementing full value objects, I'm using some alias types and helper functions here ...

// BookID is the externally assigned identifier of a Book.
type BookID = int64

// AuthorID identifies an Author.
type AuthorID = int64

// UDKID identifies a UDK classification code.
type UDKID = int64

// InstanceID identifies a physical BookInstance.
type InstanceID = int64

// ReaderID identifies a Reader.
type ReaderID = int64

// LoanID identifies a loan record.
type LoanID = int64

// InstanceStatus is the circulation state of a BookInstance, persisted verbatim.
type InstanceStatus string

const (
	// InstanceOnShelf means the instance is available for lending.
	InstanceOnShelf InstanceStatus = "OnShelf"

	// InstanceIssued means the instance is lent to a reader.
	InstanceIssued InstanceStatus = "Issued"
)

// LoanStatus is the state of a loan record, persisted verbatim.
type LoanStatus string

const (
	// LoanIssued marks an active loan.
	LoanIssued LoanStatus = "Issued"

	// LoanReturned marks a finished loan. It is terminal.
	LoanReturned LoanStatus = "Returned"
)

// DateLayout is the layout used to parse and print calendar dates.
const DateLayout = time.DateOnly

// ToDate returns UTC midnight of the calendar day of t, as seen in t's location.
func ToDate(t time.Time) time.Time {
	year, month, day := t.Date()

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of calendar days from from to to, negative when to is earlier.
func DaysBetween(from, to time.Time) int {
	return int(ToDate(to).Sub(ToDate(from)).Hours() / 24)
}

// ParseDate parses a calendar date in DateLayout.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, err
	}

	return ToDate(t), nil
}
