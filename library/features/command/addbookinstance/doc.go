// Package addbookinstance implements the Add Book Instance use case: registering one more physical copy of a
// cataloged book. The new instance starts on the shelf.
package addbookinstance
