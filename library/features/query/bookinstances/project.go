package bookinstances

import (
	"github.com/AntonStoeckl/library-circulation-go/library/core"
)

// Project implements the query logic to list the copies of a book.
//
// Query Logic:
//
//	GIVEN: A cataloged book
//	WHEN: BookInstances query is executed
//	THEN: BookInstances is returned with all copies ordered by id
//	ERROR: BookNotFound if the book does not exist
func Project(book *core.Book, instances []core.BookInstance) core.DecisionResult[BookInstances] {
	if book == nil {
		return core.ErrorDecision[BookInstances](core.ErrBookNotFound)
	}

	infos := make([]InstanceInfo, 0, len(instances))
	for _, instance := range instances {
		infos = append(infos, InstanceInfo{
			InstanceID:      instance.ID,
			InventoryNumber: instance.InventoryNumber,
			Status:          instance.Status,
			AcquisitionDate: instance.AcquisitionDate,
		})
	}

	return core.SuccessDecision(BookInstances{
		BookID:    book.ID,
		Title:     book.Title,
		Instances: infos,
		Count:     len(infos),
	})
}
