// Package removebook implements the Remove Book use case: deleting a book from the catalog together with its
// instances, their returned loans and its author links. A book with an issued instance cannot be removed.
package removebook
