// Package editudkcode implements the Edit UDK Code use case. The code must stay unique.
package editudkcode
