// Package bookinstances implements the Book Instances query use case: the copies of one book with their
// inventory numbers and circulation status.
package bookinstances
