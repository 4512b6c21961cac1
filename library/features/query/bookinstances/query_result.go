package bookinstances

import (
	"time"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
)

// InstanceInfo is one copy of the book.
type InstanceInfo struct {
	InstanceID      core.InstanceID
	InventoryNumber string
	Status          core.InstanceStatus
	AcquisitionDate time.Time
}

// BookInstances represents the query result.
type BookInstances struct {
	BookID    core.BookID
	Title     string
	Instances []InstanceInfo
	Count     int
}

// Len returns the number of listed copies.
func (b BookInstances) Len() int {
	return b.Count
}
