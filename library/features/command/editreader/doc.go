// Package editreader implements the Edit Reader use case. The same rules as for registration apply, and the
// duplicate check ignores the reader being edited.
package editreader
