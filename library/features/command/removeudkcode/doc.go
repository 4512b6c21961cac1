// Package removeudkcode implements the Remove UDK Code use case. Codes referenced by a book stay.
package removeudkcode
