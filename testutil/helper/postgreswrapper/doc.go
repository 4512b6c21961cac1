// Package postgreswrapper connects integration tests to a real PostgreSQL database
// through any of the supported database adapters.
package postgreswrapper
