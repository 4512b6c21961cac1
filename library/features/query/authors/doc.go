// Package authors implements the Authors query use case: all authors ordered by name.
package authors
