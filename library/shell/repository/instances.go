package repository

import (
	"context"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
	"github.com/AntonStoeckl/library-circulation-go/store"
)

// InstanceCounts is the number of instances of one book, split by availability.
type InstanceCounts struct {
	OnShelf int
	Total   int
}

func instanceColumns() []any {
	return []any{colID, colBookID, colInventoryNumber, colStatus, colAcquisitionDate}
}

func scanInstance(row store.Row, instance *core.BookInstance) error {
	var status string
	var acquired time.Time

	if err := row.Scan(&instance.ID, &instance.BookID, &instance.InventoryNumber, &status, &acquired); err != nil {
		return err
	}

	instance.Status = core.InstanceStatus(status)
	instance.AcquisitionDate = core.ToDate(acquired)

	return nil
}

func (r Repository) selectInstances() *goqu.SelectDataset {
	return r.dialect.From(tableBookInstances).Select(instanceColumns()...)
}

// FindInstance reads an instance without locking it.
func (r Repository) FindInstance(ctx context.Context, s store.Session, id core.InstanceID) (core.BookInstance, bool, error) {
	ds := r.selectInstances().Where(goqu.C(colID).Eq(id)).Prepared(true)

	return r.findInstance(ctx, s, ds)
}

// LockInstance reads an instance and locks its row until the surrounding transaction ends.
func (r Repository) LockInstance(ctx context.Context, s store.Session, id core.InstanceID) (core.BookInstance, bool, error) {
	ds := r.selectInstances().
		Where(goqu.C(colID).Eq(id)).
		ForUpdate(exp.Wait).
		Prepared(true)

	return r.findInstance(ctx, s, ds)
}

// FirstOnShelfInstance locks and returns the on-shelf instance of a book with the lowest id.
func (r Repository) FirstOnShelfInstance(ctx context.Context, s store.Session, bookID core.BookID) (core.BookInstance, bool, error) {
	ds := r.selectInstances().
		Where(
			goqu.C(colBookID).Eq(bookID),
			goqu.C(colStatus).Eq(string(core.InstanceOnShelf)),
		).
		Order(goqu.C(colID).Asc()).
		Limit(1).
		ForUpdate(exp.Wait).
		Prepared(true)

	return r.findInstance(ctx, s, ds)
}

func (r Repository) findInstance(ctx context.Context, s store.Session, ds sqlBuilder) (core.BookInstance, bool, error) {
	var instance core.BookInstance

	found, err := r.queryRow(ctx, s, ds, func(row store.Row) error { return scanInstance(row, &instance) })
	if err != nil || !found {
		return core.BookInstance{}, false, err
	}

	return instance, true, nil
}

// InsertInstances stores new instances and returns their ids in input order.
func (r Repository) InsertInstances(ctx context.Context, s store.Session, instances []core.BookInstance) ([]core.InstanceID, error) {
	ids := make([]core.InstanceID, 0, len(instances))

	for _, instance := range instances {
		ds := r.dialect.Insert(tableBookInstances).
			Rows(goqu.Record{
				colBookID:          instance.BookID,
				colInventoryNumber: instance.InventoryNumber,
				colStatus:          string(instance.Status),
				colAcquisitionDate: core.ToDate(instance.AcquisitionDate),
			}).
			Returning(colID).
			Prepared(true)

		var id core.InstanceID

		if _, err := r.queryRow(ctx, s, ds, func(row store.Row) error { return row.Scan(&id) }); err != nil {
			return nil, err
		}

		ids = append(ids, id)
	}

	return ids, nil
}

// SetInstanceStatus moves an instance from one status to another.
// It reports false when the instance does not exist or is not in status from.
func (r Repository) SetInstanceStatus(
	ctx context.Context,
	s store.Session,
	id core.InstanceID,
	from core.InstanceStatus,
	to core.InstanceStatus,
) (bool, error) {
	ds := r.dialect.Update(tableBookInstances).
		Set(goqu.Record{colStatus: string(to)}).
		Where(
			goqu.C(colID).Eq(id),
			goqu.C(colStatus).Eq(string(from)),
		).
		Prepared(true)

	rowsAffected, err := r.exec(ctx, s, ds)
	if err != nil {
		return false, err
	}

	return rowsAffected == 1, nil
}

// DeleteInstance removes an instance that is on the shelf. It reports false when nothing was deleted.
func (r Repository) DeleteInstance(ctx context.Context, s store.Session, id core.InstanceID) (bool, error) {
	ds := r.dialect.Delete(tableBookInstances).
		Where(
			goqu.C(colID).Eq(id),
			goqu.C(colStatus).Eq(string(core.InstanceOnShelf)),
		).
		Prepared(true)

	rowsAffected, err := r.exec(ctx, s, ds)
	if err != nil {
		return false, err
	}

	return rowsAffected == 1, nil
}

// DeleteInstancesOfBook removes all instances of a book regardless of their status.
func (r Repository) DeleteInstancesOfBook(ctx context.Context, s store.Session, bookID core.BookID) error {
	ds := r.dialect.Delete(tableBookInstances).Where(goqu.C(colBookID).Eq(bookID)).Prepared(true)

	_, err := r.exec(ctx, s, ds)

	return err
}

// CountInstances counts the instances of a book.
func (r Repository) CountInstances(ctx context.Context, s store.Session, bookID core.BookID) (InstanceCounts, error) {
	ds := r.dialect.From(tableBookInstances).
		Select(colStatus, goqu.COUNT("*")).
		Where(goqu.C(colBookID).Eq(bookID)).
		GroupBy(colStatus).
		Prepared(true)

	var counts InstanceCounts

	err := r.query(ctx, s, ds, func(rows store.Rows) error {
		var status string
		var n int64

		if err := rows.Scan(&status, &n); err != nil {
			return err
		}

		counts.Total += int(n)
		if core.InstanceStatus(status) == core.InstanceOnShelf {
			counts.OnShelf += int(n)
		}

		return nil
	})
	if err != nil {
		return InstanceCounts{}, err
	}

	return counts, nil
}

// ListInstances returns the instances of a book ordered by id.
func (r Repository) ListInstances(ctx context.Context, s store.Session, bookID core.BookID) ([]core.BookInstance, error) {
	ds := r.selectInstances().
		Where(goqu.C(colBookID).Eq(bookID)).
		Order(goqu.C(colID).Asc()).
		Prepared(true)

	instances := make([]core.BookInstance, 0)

	err := r.query(ctx, s, ds, func(rows store.Rows) error {
		var instance core.BookInstance
		if err := scanInstance(rows, &instance); err != nil {
			return err
		}

		instances = append(instances, instance)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return instances, nil
}
