// Package removebookinstance implements the Remove Book Instance use case: withdrawing one physical copy of a book.
// Only copies on the shelf can be withdrawn. Without an explicit instance the lowest-numbered copy on the shelf goes.
package removebookinstance
