// Package readerloans implements the Reader Loans query use case.
//
// It lists every loan of one reader, newest first. Active loans carry their due classification relative to the
// query time, returned loans carry whether they came back early, on time or late.
package readerloans
