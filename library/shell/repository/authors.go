package repository

import (
	"context"

	"github.com/doug-martin/goqu/v9"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
	"github.com/AntonStoeckl/library-circulation-go/store"
)

func (r Repository) selectAuthors() *goqu.SelectDataset {
	return r.dialect.From(tableAuthors).Select(colID, colFullName)
}

// FindAuthor reads an author by id.
func (r Repository) FindAuthor(ctx context.Context, s store.Session, id core.AuthorID) (core.Author, bool, error) {
	ds := r.selectAuthors().Where(goqu.C(colID).Eq(id)).Prepared(true)

	return r.findAuthor(ctx, s, ds)
}

// FindAuthorByName reads an author by exact full name.
func (r Repository) FindAuthorByName(ctx context.Context, s store.Session, fullName string) (core.Author, bool, error) {
	ds := r.selectAuthors().Where(goqu.C(colFullName).Eq(fullName)).Prepared(true)

	return r.findAuthor(ctx, s, ds)
}

func (r Repository) findAuthor(ctx context.Context, s store.Session, ds sqlBuilder) (core.Author, bool, error) {
	var author core.Author

	found, err := r.queryRow(ctx, s, ds, func(row store.Row) error {
		return row.Scan(&author.ID, &author.FullName)
	})
	if err != nil || !found {
		return core.Author{}, false, err
	}

	return author, true, nil
}

// FindAuthorsByNames returns the authors whose full name is in names. Unknown names are skipped.
func (r Repository) FindAuthorsByNames(ctx context.Context, s store.Session, names []string) ([]core.Author, error) {
	if len(names) == 0 {
		return []core.Author{}, nil
	}

	ds := r.selectAuthors().
		Where(goqu.C(colFullName).In(names)).
		Order(goqu.C(colFullName).Asc()).
		Prepared(true)

	return r.listAuthors(ctx, s, ds)
}

// InsertAuthor stores a new author and returns its id.
func (r Repository) InsertAuthor(ctx context.Context, s store.Session, fullName string) (core.AuthorID, error) {
	ds := r.dialect.Insert(tableAuthors).
		Rows(goqu.Record{colFullName: fullName}).
		Returning(colID).
		Prepared(true)

	var id core.AuthorID

	if _, err := r.queryRow(ctx, s, ds, func(row store.Row) error { return row.Scan(&id) }); err != nil {
		return 0, err
	}

	return id, nil
}

// RenameAuthor changes the full name of an author. It reports false when the author does not exist.
func (r Repository) RenameAuthor(ctx context.Context, s store.Session, id core.AuthorID, fullName string) (bool, error) {
	ds := r.dialect.Update(tableAuthors).
		Set(goqu.Record{colFullName: fullName}).
		Where(goqu.C(colID).Eq(id)).
		Prepared(true)

	rowsAffected, err := r.exec(ctx, s, ds)
	if err != nil {
		return false, err
	}

	return rowsAffected == 1, nil
}

// DeleteAuthor removes an author.
func (r Repository) DeleteAuthor(ctx context.Context, s store.Session, id core.AuthorID) error {
	ds := r.dialect.Delete(tableAuthors).Where(goqu.C(colID).Eq(id)).Prepared(true)

	_, err := r.exec(ctx, s, ds)

	return err
}

// CountBooksOfAuthor counts the books an author is linked to.
func (r Repository) CountBooksOfAuthor(ctx context.Context, s store.Session, id core.AuthorID) (int, error) {
	ds := r.dialect.From(tableBookAuthors).
		Select(goqu.COUNT("*")).
		Where(goqu.C(colAuthorID).Eq(id)).
		Prepared(true)

	return r.count(ctx, s, ds)
}

// ListAuthors returns all authors ordered by name.
func (r Repository) ListAuthors(ctx context.Context, s store.Session) ([]core.Author, error) {
	ds := r.selectAuthors().Order(goqu.C(colFullName).Asc()).Prepared(true)

	return r.listAuthors(ctx, s, ds)
}

func (r Repository) listAuthors(ctx context.Context, s store.Session, ds sqlBuilder) ([]core.Author, error) {
	authors := make([]core.Author, 0)

	err := r.query(ctx, s, ds, func(rows store.Rows) error {
		var author core.Author
		if err := rows.Scan(&author.ID, &author.FullName); err != nil {
			return err
		}

		authors = append(authors, author)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return authors, nil
}
