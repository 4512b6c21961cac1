package core

import (
	"context"
	"errors"
	"fmt"
)

// Error kinds. Every error returned by a command or query handler matches one of them via errors.Is,
// except context cancellation and deadline errors, which are passed through.
var (
	// ErrValidation marks invalid input. Nothing was changed.
	ErrValidation = errors.New("validation failed")

	// ErrConflict marks a request that contradicts the current state, e.g. lending an issued instance.
	ErrConflict = errors.New("conflict")

	// ErrNotFound marks a request that references something that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrStorage marks a failure of the underlying database.
	ErrStorage = errors.New("storage failure")
)

// Loan lifecycle errors.
var (
	ErrInvalidDateRange    = fmt.Errorf("%w: planned return date precedes issue date", ErrValidation)
	ErrInstanceUnavailable = fmt.Errorf("%w: book instance is not on the shelf", ErrConflict)
	ErrLoanAlreadyReturned = fmt.Errorf("%w: loan is already returned", ErrConflict)
	ErrLoanNotFound        = fmt.Errorf("%w: loan", ErrNotFound)
	ErrInstanceNotFound    = fmt.Errorf("%w: book instance", ErrNotFound)
	ErrReaderNotFound      = fmt.Errorf("%w: reader", ErrNotFound)

	// ErrLentInstanceNotIssued marks an active loan whose instance is not recorded as issued.
	ErrLentInstanceNotIssued = fmt.Errorf("%w: instance of an active loan is not issued", ErrStorage)
)

// Catalog errors.
var (
	ErrBookAlreadyExists      = fmt.Errorf("%w: a book with this identifier already exists", ErrConflict)
	ErrBookNotFound           = fmt.Errorf("%w: book", ErrNotFound)
	ErrBookHasIssuedInstances = fmt.Errorf("%w: book has issued instances", ErrConflict)
	ErrInstanceNotOnShelf     = fmt.Errorf("%w: book instance is issued", ErrConflict)
	ErrNoInstanceOnShelf      = fmt.Errorf("%w: no book instance on the shelf", ErrNotFound)
	ErrAuthorAlreadyExists    = fmt.Errorf("%w: an author with this name already exists", ErrConflict)
	ErrAuthorNotFound         = fmt.Errorf("%w: author", ErrNotFound)
	ErrAuthorInUse            = fmt.Errorf("%w: author is linked to books", ErrConflict)
	ErrUDKCodeAlreadyExists   = fmt.Errorf("%w: a UDK code with this code already exists", ErrConflict)
	ErrUDKCodeNotFound        = fmt.Errorf("%w: UDK code", ErrNotFound)
	ErrUDKCodeInUse           = fmt.Errorf("%w: UDK code is referenced by books", ErrConflict)
)

// Reader errors.
var (
	ErrReaderAlreadyExists  = fmt.Errorf("%w: a reader with this name and phone already exists", ErrConflict)
	ErrReaderHasActiveLoans = fmt.Errorf("%w: reader has active loans", ErrConflict)
)

// ValidationError carries the field that failed validation. It matches ErrValidation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrValidation.Error(), e.Field, e.Reason)
}

// Unwrap makes errors.Is(err, ErrValidation) hold.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a ValidationError for field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// ErrorKind is the coarse classification of an error.
type ErrorKind string

const (
	KindNone       ErrorKind = ""
	KindValidation ErrorKind = "validation"
	KindConflict   ErrorKind = "conflict"
	KindNotFound   ErrorKind = "not_found"
	KindCanceled   ErrorKind = "canceled"
	KindTimeout    ErrorKind = "timeout"
	KindStorage    ErrorKind = "storage"
)

// KindOf classifies err. Unknown errors are reported as KindStorage.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, context.Canceled):
		return KindCanceled
	case errors.Is(err, context.DeadlineExceeded):
		return KindTimeout
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrConflict):
		return KindConflict
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	default:
		return KindStorage
	}
}

// IsDomainError reports whether err is a business rule violation rather than a technical failure.
func IsDomainError(err error) bool {
	switch KindOf(err) {
	case KindValidation, KindConflict, KindNotFound:
		return true
	default:
		return false
	}
}
