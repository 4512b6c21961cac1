// Package udkcodes implements the UDK Codes query use case: the classification scheme ordered by code.
package udkcodes
