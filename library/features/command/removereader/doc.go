// Package removereader implements the Remove Reader use case. Readers holding a book cannot be removed. The loan
// history of a removed reader is deleted with it.
package removereader
