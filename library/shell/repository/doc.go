// Package repository implements the Catalog Store, Reader Store and Loan Ledger on top of store.Session.
//
// Every method takes the session it runs on explicitly: the pool-level store.DB for single reads,
// or the store.Tx handed out by store.WithinTx when an operation has to see and change several rows
// atomically. SQL is built with goqu (postgres dialect, prepared placeholders).
//
// Storage failures are returned joined with core.ErrStorage; unique and foreign key violations
// reported by the storage engine are returned joined with core.ErrConflict.
package repository
