// Package core contains the domain model of the library circulation system:
// books and their physical instances, authors, UDK classification codes, readers, and loan records.
//
// It holds everything that is a pure function of its inputs: the loan timing classification
// (early/on-time/late returns, on-track/warning/overdue active loans), input validation rules,
// inventory number generation, and the error taxonomy every other layer maps its failures to.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would be
// called the 'domain' layer.
package core
