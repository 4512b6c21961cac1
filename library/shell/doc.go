// Package shell provides the shared infrastructure of the library circulation features:
// the command and query handler contracts and the observability helpers used by the handler decorators.
//
// This package implements the "imperative shell" around the functional core in package core.
// Storage access lives in the repository subpackage, observability decorators in observable,
// and database and application configuration in config.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would be
// called the 'infrastructure' layer.
package shell
