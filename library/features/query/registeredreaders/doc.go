// Package registeredreaders implements the Registered Readers query use case: all readers ordered by name.
package registeredreaders
