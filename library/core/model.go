package core

import (
	"time"
)

// Book is a cataloged title. Its physical copies are BookInstances.
type Book struct {
	ID          BookID
	Title       string
	Year        int
	UDKID       *UDKID
	Description string
}

// Author is a person credited on books, unique by full name.
type Author struct {
	ID       AuthorID
	FullName string
}

// UDKCode is a subject classification code.
type UDKCode struct {
	ID          UDKID
	Code        string
	Description string
}

// BookInstance is one physical copy of a Book.
type BookInstance struct {
	ID              InstanceID
	BookID          BookID
	InventoryNumber string
	Status          InstanceStatus
	AcquisitionDate time.Time
}

// IsOnShelf reports whether the instance can be lent or removed.
func (i BookInstance) IsOnShelf() bool {
	return i.Status == InstanceOnShelf
}

// Reader is a registered library user.
type Reader struct {
	ID               ReaderID
	FullName         string
	Phone            string
	Address          string
	BirthDate        time.Time
	RegistrationDate time.Time
}

// Loan is the record of one BookInstance lent to one Reader.
// ActualReturnDate and OnTime stay nil while the loan is active.
type Loan struct {
	ID                LoanID
	InstanceID        InstanceID
	ReaderID          ReaderID
	IssueDate         time.Time
	PlannedReturnDate time.Time
	ActualReturnDate  *time.Time
	Status            LoanStatus
	OnTime            *bool
}

// IsActive reports whether the loan has not been returned yet.
func (l Loan) IsActive() bool {
	return l.Status == LoanIssued
}
