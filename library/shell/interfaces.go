package shell

import (
	"context"
)

// Command represents the contract for all command types.
// Each command encapsulates the intent and parameters needed to execute a specific business operation.
// The CommandType method enables observability instrumentation and must work on the zero value.
type Command interface {
	CommandType() string
}

// CommandHandler defines the contract for components that process commands.
// R is the outcome reported back to the caller, e.g. the created loan record.
type CommandHandler[C Command, R any] interface {
	Handle(ctx context.Context, command C) (R, error)
}

// Query represents the contract for all query types.
// The QueryType method enables observability instrumentation and must work on the zero value.
type Query interface {
	QueryType() string
}

// QueryHandler defines the contract for components that process queries and return read models.
type QueryHandler[Q Query, R any] interface {
	Handle(ctx context.Context, query Q) (R, error)
}
