// Package removeauthor implements the Remove Author use case. Authors still credited on a book stay.
package removeauthor
