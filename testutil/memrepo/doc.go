// Package memrepo provides an in-memory stand-in for the PostgreSQL store and repository.
//
// A Repository is a store.DB and offers the same table access methods as repository.Repository, so command
// and query handlers can be tested without a database. Transactions are serialized; Begin snapshots the
// data and Rollback restores it. FailOn injects errors into single methods.
package memrepo
