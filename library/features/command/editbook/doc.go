// Package editbook implements the Edit Book use case: changing the attributes and authors of a cataloged book.
//
// The book row and its author links are replaced in one transaction.
package editbook
