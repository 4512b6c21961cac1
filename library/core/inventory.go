package core

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const inventoryTimestampLayout = "20060102-150405"

// NewInventoryNumber builds the inventory number of a new instance: BK-{bookID}-{yyyyMMdd-HHmmss}-{8 hex digits}.
func NewInventoryNumber(bookID BookID, createdAt time.Time, suffix uuid.UUID) string {
	hex := strings.ReplaceAll(suffix.String(), "-", "")

	return fmt.Sprintf("BK-%d-%s-%s", bookID, createdAt.Format(inventoryTimestampLayout), hex[:8])
}

// NewInstances creates quantity OnShelf instances of a book with fresh inventory numbers.
func NewInstances(bookID BookID, quantity int, acquiredAt time.Time) []BookInstance {
	instances := make([]BookInstance, 0, quantity)

	for range quantity {
		instances = append(instances, BookInstance{
			BookID:          bookID,
			InventoryNumber: NewInventoryNumber(bookID, acquiredAt, uuid.New()),
			Status:          InstanceOnShelf,
			AcquisitionDate: ToDate(acquiredAt),
		})
	}

	return instances
}
