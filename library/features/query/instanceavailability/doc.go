// Package instanceavailability implements the Instance Availability query use case.
//
// It answers how many copies of a book are on the shelf right now, together with the total number of copies.
// It is a pure read and never locks rows.
package instanceavailability
