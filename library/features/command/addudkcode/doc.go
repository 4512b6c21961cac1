// Package addudkcode implements the Add UDK Code use case: extending the subject classification scheme.
package addudkcode
