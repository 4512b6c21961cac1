package core

// DecisionResult represents the outcome of a business decision in a Decide function.
// On success it carries the value the handler has to persist, on failure the business rule violation.
//
// IMPORTANT: DecisionResult should only be constructed using the provided factory functions
// SuccessDecision(value) or ErrorDecision(err).
type DecisionResult[T any] struct {
	Outcome string // "success" or "error"
	Value   T
	Err     error
}

const (
	successOutcome = "success"
	errorOutcome   = "error"
)

// SuccessDecision creates a DecisionResult indicating that the state change is allowed.
func SuccessDecision[T any](value T) DecisionResult[T] {
	return DecisionResult[T]{
		Outcome: successOutcome,
		Value:   value,
	}
}

// ErrorDecision creates a DecisionResult indicating a business rule violation.
func ErrorDecision[T any](err error) DecisionResult[T] {
	return DecisionResult[T]{
		Outcome: errorOutcome,
		Err:     err,
	}
}

// HasError returns the error if there is one, otherwise nil.
func (r DecisionResult[T]) HasError() error {
	if r.Outcome == errorOutcome {
		return r.Err
	}

	return nil
}
