package memrepo

import (
	"cmp"
	"context"
	"slices"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
	"github.com/AntonStoeckl/library-circulation-go/library/shell/repository"
	"github.com/AntonStoeckl/library-circulation-go/store"
)

// FindInstance reads an instance.
func (r *Repository) FindInstance(ctx context.Context, _ store.Session, id core.InstanceID) (core.BookInstance, bool, error) {
	if err := r.enter(ctx, "FindInstance"); err != nil {
		return core.BookInstance{}, false, err
	}
	defer r.dataMu.Unlock()

	instance, ok := r.data.instances[id]

	return instance, ok, nil
}

// LockInstance reads an instance. Transactions are serialized, so no row lock is needed.
func (r *Repository) LockInstance(ctx context.Context, _ store.Session, id core.InstanceID) (core.BookInstance, bool, error) {
	if err := r.enter(ctx, "LockInstance"); err != nil {
		return core.BookInstance{}, false, err
	}
	defer r.dataMu.Unlock()

	instance, ok := r.data.instances[id]

	return instance, ok, nil
}

// FirstOnShelfInstance returns the on-shelf instance of a book with the lowest id.
func (r *Repository) FirstOnShelfInstance(ctx context.Context, _ store.Session, bookID core.BookID) (core.BookInstance, bool, error) {
	if err := r.enter(ctx, "FirstOnShelfInstance"); err != nil {
		return core.BookInstance{}, false, err
	}
	defer r.dataMu.Unlock()

	for _, instance := range r.instancesOfBook(bookID) {
		if instance.IsOnShelf() {
			return instance, true, nil
		}
	}

	return core.BookInstance{}, false, nil
}

// InsertInstances stores new instances and returns their ids in input order.
func (r *Repository) InsertInstances(ctx context.Context, _ store.Session, instances []core.BookInstance) ([]core.InstanceID, error) {
	if err := r.enter(ctx, "InsertInstances"); err != nil {
		return nil, err
	}
	defer r.dataMu.Unlock()

	ids := make([]core.InstanceID, 0, len(instances))

	for _, instance := range instances {
		if _, ok := r.data.books[instance.BookID]; !ok {
			return nil, foreignKeyViolation("book_instances.book_id")
		}

		for _, existing := range r.data.instances {
			if existing.InventoryNumber == instance.InventoryNumber {
				return nil, uniqueViolation("book_instances.inventory_number")
			}
		}

		r.data.lastInstanceID++
		instance.ID = r.data.lastInstanceID
		instance.AcquisitionDate = core.ToDate(instance.AcquisitionDate)
		r.data.instances[instance.ID] = instance
		ids = append(ids, instance.ID)
	}

	return ids, nil
}

// SetInstanceStatus moves an instance from one status to another.
func (r *Repository) SetInstanceStatus(
	ctx context.Context,
	_ store.Session,
	id core.InstanceID,
	from core.InstanceStatus,
	to core.InstanceStatus,
) (bool, error) {
	if err := r.enter(ctx, "SetInstanceStatus"); err != nil {
		return false, err
	}
	defer r.dataMu.Unlock()

	instance, ok := r.data.instances[id]
	if !ok || instance.Status != from {
		return false, nil
	}

	instance.Status = to
	r.data.instances[id] = instance

	return true, nil
}

// DeleteInstance removes an instance that is on the shelf and has no loans.
func (r *Repository) DeleteInstance(ctx context.Context, _ store.Session, id core.InstanceID) (bool, error) {
	if err := r.enter(ctx, "DeleteInstance"); err != nil {
		return false, err
	}
	defer r.dataMu.Unlock()

	instance, ok := r.data.instances[id]
	if !ok || !instance.IsOnShelf() {
		return false, nil
	}

	if r.hasLoans(id) {
		return false, foreignKeyViolation("issued_books.instance_id")
	}

	delete(r.data.instances, id)

	return true, nil
}

// DeleteInstancesOfBook removes all instances of a book.
func (r *Repository) DeleteInstancesOfBook(ctx context.Context, _ store.Session, bookID core.BookID) error {
	if err := r.enter(ctx, "DeleteInstancesOfBook"); err != nil {
		return err
	}
	defer r.dataMu.Unlock()

	for _, instance := range r.instancesOfBook(bookID) {
		if r.hasLoans(instance.ID) {
			return foreignKeyViolation("issued_books.instance_id")
		}
	}

	for _, instance := range r.instancesOfBook(bookID) {
		delete(r.data.instances, instance.ID)
	}

	return nil
}

// CountInstances counts the instances of a book.
func (r *Repository) CountInstances(ctx context.Context, _ store.Session, bookID core.BookID) (repository.InstanceCounts, error) {
	if err := r.enter(ctx, "CountInstances"); err != nil {
		return repository.InstanceCounts{}, err
	}
	defer r.dataMu.Unlock()

	return r.countInstances(bookID), nil
}

// ListInstances returns the instances of a book ordered by id.
func (r *Repository) ListInstances(ctx context.Context, _ store.Session, bookID core.BookID) ([]core.BookInstance, error) {
	if err := r.enter(ctx, "ListInstances"); err != nil {
		return nil, err
	}
	defer r.dataMu.Unlock()

	return r.instancesOfBook(bookID), nil
}

func (r *Repository) instancesOfBook(bookID core.BookID) []core.BookInstance {
	instances := make([]core.BookInstance, 0)
	for _, instance := range r.data.instances {
		if instance.BookID == bookID {
			instances = append(instances, instance)
		}
	}

	slices.SortFunc(instances, func(a, b core.BookInstance) int { return cmp.Compare(a.ID, b.ID) })

	return instances
}

func (r *Repository) hasLoans(instanceID core.InstanceID) bool {
	for _, loan := range r.data.loans {
		if loan.InstanceID == instanceID {
			return true
		}
	}

	return false
}
