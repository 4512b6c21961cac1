package repository

import (
	"context"

	"github.com/doug-martin/goqu/v9"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
	"github.com/AntonStoeckl/library-circulation-go/store"
)

func (r Repository) selectUDKCodes() *goqu.SelectDataset {
	return r.dialect.From(tableUDK).Select(colID, colCode, colDescription)
}

func scanUDKCode(row store.Row, code *core.UDKCode) error {
	return row.Scan(&code.ID, &code.Code, &code.Description)
}

// FindUDKCode reads a UDK code by id.
func (r Repository) FindUDKCode(ctx context.Context, s store.Session, id core.UDKID) (core.UDKCode, bool, error) {
	ds := r.selectUDKCodes().Where(goqu.C(colID).Eq(id)).Prepared(true)

	return r.findUDKCode(ctx, s, ds)
}

// FindUDKCodeByCode reads a UDK code by its code.
func (r Repository) FindUDKCodeByCode(ctx context.Context, s store.Session, code string) (core.UDKCode, bool, error) {
	ds := r.selectUDKCodes().Where(goqu.C(colCode).Eq(code)).Prepared(true)

	return r.findUDKCode(ctx, s, ds)
}

func (r Repository) findUDKCode(ctx context.Context, s store.Session, ds sqlBuilder) (core.UDKCode, bool, error) {
	var code core.UDKCode

	found, err := r.queryRow(ctx, s, ds, func(row store.Row) error { return scanUDKCode(row, &code) })
	if err != nil || !found {
		return core.UDKCode{}, false, err
	}

	return code, true, nil
}

// InsertUDKCode stores a new UDK code and returns its id.
func (r Repository) InsertUDKCode(ctx context.Context, s store.Session, code core.UDKCode) (core.UDKID, error) {
	ds := r.dialect.Insert(tableUDK).
		Rows(goqu.Record{colCode: code.Code, colDescription: code.Description}).
		Returning(colID).
		Prepared(true)

	var id core.UDKID

	if _, err := r.queryRow(ctx, s, ds, func(row store.Row) error { return row.Scan(&id) }); err != nil {
		return 0, err
	}

	return id, nil
}

// UpdateUDKCode overwrites code and description. It reports false when the UDK code does not exist.
func (r Repository) UpdateUDKCode(ctx context.Context, s store.Session, code core.UDKCode) (bool, error) {
	ds := r.dialect.Update(tableUDK).
		Set(goqu.Record{colCode: code.Code, colDescription: code.Description}).
		Where(goqu.C(colID).Eq(code.ID)).
		Prepared(true)

	rowsAffected, err := r.exec(ctx, s, ds)
	if err != nil {
		return false, err
	}

	return rowsAffected == 1, nil
}

// DeleteUDKCode removes a UDK code.
func (r Repository) DeleteUDKCode(ctx context.Context, s store.Session, id core.UDKID) error {
	ds := r.dialect.Delete(tableUDK).Where(goqu.C(colID).Eq(id)).Prepared(true)

	_, err := r.exec(ctx, s, ds)

	return err
}

// ListUDKCodes returns all UDK codes ordered by code.
func (r Repository) ListUDKCodes(ctx context.Context, s store.Session) ([]core.UDKCode, error) {
	ds := r.selectUDKCodes().Order(goqu.C(colCode).Asc()).Prepared(true)

	codes := make([]core.UDKCode, 0)

	err := r.query(ctx, s, ds, func(rows store.Rows) error {
		var code core.UDKCode
		if err := scanUDKCode(rows, &code); err != nil {
			return err
		}

		codes = append(codes, code)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return codes, nil
}
