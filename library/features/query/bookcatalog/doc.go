// Package bookcatalog implements the Book Catalog query use case.
//
// The catalog lists every book with its authors, its UDK code and how many of its copies are on the shelf.
// An optional search text narrows the list to books whose title, authors, UDK code or description contain it,
// ignoring case.
package bookcatalog
