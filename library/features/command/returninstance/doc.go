// Package returninstance implements the Return Instance use case: taking a lent book instance back.
//
// The loan is completed with its actual return date and on-time flag, and the instance goes back on the shelf,
// both in one transaction. The result classifies the return as early, on time or late.
package returninstance
