// Package addbook implements the Add Book use case: cataloging a new title with its authors
// and an initial number of physical instances.
package addbook
