package repository

import (
	"context"
	"time"

	"github.com/doug-martin/goqu/v9"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
	"github.com/AntonStoeckl/library-circulation-go/store"
)

func (r Repository) selectReaders() *goqu.SelectDataset {
	return r.dialect.From(tableReaders).
		Select(colID, colFullName, colPhone, colAddress, colBirthDate, colRegistrationDate)
}

func scanReader(row store.Row, reader *core.Reader) error {
	var birth, registered time.Time

	if err := row.Scan(&reader.ID, &reader.FullName, &reader.Phone, &reader.Address, &birth, &registered); err != nil {
		return err
	}

	reader.BirthDate = core.ToDate(birth)
	reader.RegistrationDate = core.ToDate(registered)

	return nil
}

func readerRecord(reader core.Reader) goqu.Record {
	return goqu.Record{
		colFullName:         reader.FullName,
		colPhone:            reader.Phone,
		colAddress:          reader.Address,
		colBirthDate:        core.ToDate(reader.BirthDate),
		colRegistrationDate: core.ToDate(reader.RegistrationDate),
	}
}

// FindReader reads a reader by id.
func (r Repository) FindReader(ctx context.Context, s store.Session, id core.ReaderID) (core.Reader, bool, error) {
	ds := r.selectReaders().Where(goqu.C(colID).Eq(id)).Prepared(true)

	return r.findReader(ctx, s, ds)
}

// FindReaderByNameAndPhone reads the reader registered under this full name and phone.
func (r Repository) FindReaderByNameAndPhone(
	ctx context.Context,
	s store.Session,
	fullName string,
	phone string,
) (core.Reader, bool, error) {
	ds := r.selectReaders().
		Where(
			goqu.C(colFullName).Eq(fullName),
			goqu.C(colPhone).Eq(phone),
		).
		Order(goqu.C(colID).Asc()).
		Limit(1).
		Prepared(true)

	return r.findReader(ctx, s, ds)
}

func (r Repository) findReader(ctx context.Context, s store.Session, ds sqlBuilder) (core.Reader, bool, error) {
	var reader core.Reader

	found, err := r.queryRow(ctx, s, ds, func(row store.Row) error { return scanReader(row, &reader) })
	if err != nil || !found {
		return core.Reader{}, false, err
	}

	return reader, true, nil
}

// InsertReader stores a new reader and returns its id.
func (r Repository) InsertReader(ctx context.Context, s store.Session, reader core.Reader) (core.ReaderID, error) {
	ds := r.dialect.Insert(tableReaders).
		Rows(readerRecord(reader)).
		Returning(colID).
		Prepared(true)

	var id core.ReaderID

	if _, err := r.queryRow(ctx, s, ds, func(row store.Row) error { return row.Scan(&id) }); err != nil {
		return 0, err
	}

	return id, nil
}

// UpdateReader overwrites the attributes of a reader. It reports false when the reader does not exist.
func (r Repository) UpdateReader(ctx context.Context, s store.Session, reader core.Reader) (bool, error) {
	ds := r.dialect.Update(tableReaders).
		Set(readerRecord(reader)).
		Where(goqu.C(colID).Eq(reader.ID)).
		Prepared(true)

	rowsAffected, err := r.exec(ctx, s, ds)
	if err != nil {
		return false, err
	}

	return rowsAffected == 1, nil
}

// DeleteReader removes a reader. Its loans must be removed first.
func (r Repository) DeleteReader(ctx context.Context, s store.Session, id core.ReaderID) error {
	ds := r.dialect.Delete(tableReaders).Where(goqu.C(colID).Eq(id)).Prepared(true)

	_, err := r.exec(ctx, s, ds)

	return err
}

// ListReaders returns all readers ordered by name.
func (r Repository) ListReaders(ctx context.Context, s store.Session) ([]core.Reader, error) {
	ds := r.selectReaders().
		Order(goqu.C(colFullName).Asc(), goqu.C(colID).Asc()).
		Prepared(true)

	readers := make([]core.Reader, 0)

	err := r.query(ctx, s, ds, func(rows store.Rows) error {
		var reader core.Reader
		if err := scanReader(rows, &reader); err != nil {
			return err
		}

		readers = append(readers, reader)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return readers, nil
}
