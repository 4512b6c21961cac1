// Package issueinstance implements the Issue Instance use case: lending one physical book instance to a reader.
//
// The handler locks the instance row, decides on the current state with the pure Decide function and then
// marks the instance as Issued and creates the loan record in the same transaction.
// The instance status is changed with a conditional update, so two concurrent requests for the same instance
// can never both succeed.
package issueinstance
