package repository

import (
	"context"
	"database/sql"

	"github.com/doug-martin/goqu/v9"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
	"github.com/AntonStoeckl/library-circulation-go/store"
)

const (
	aliasUDK        = "u"
	aliasAuthor     = "a"
	aliasBookAuthor = "ba"
)

// CatalogRow is a book with its classification, its authors and its instance counts.
type CatalogRow struct {
	Book      core.Book
	UDKCode   string
	Authors   []string
	Instances InstanceCounts
}

func bookColumns() []any {
	return []any{colIdentifier, colTitle, colYear, colUDKID, colDescription}
}

func scanBook(row store.Row, book *core.Book, extra ...any) error {
	var udkID sql.NullInt64

	dest := append([]any{&book.ID, &book.Title, &book.Year, &udkID, &book.Description}, extra...)
	if err := row.Scan(dest...); err != nil {
		return err
	}

	book.UDKID = idFromNull(udkID)

	return nil
}

// FindBook reads a book by its identifier.
func (r Repository) FindBook(ctx context.Context, s store.Session, id core.BookID) (core.Book, bool, error) {
	ds := r.dialect.From(tableBooks).
		Select(bookColumns()...).
		Where(goqu.C(colIdentifier).Eq(id)).
		Prepared(true)

	var book core.Book

	found, err := r.queryRow(ctx, s, ds, func(row store.Row) error { return scanBook(row, &book) })
	if err != nil || !found {
		return core.Book{}, false, err
	}

	return book, true, nil
}

// InsertBook stores a new book under its externally assigned identifier.
func (r Repository) InsertBook(ctx context.Context, s store.Session, book core.Book) error {
	ds := r.dialect.Insert(tableBooks).
		Rows(goqu.Record{
			colIdentifier:  book.ID,
			colTitle:       book.Title,
			colYear:        book.Year,
			colUDKID:       nullableID(book.UDKID),
			colDescription: book.Description,
		}).
		Prepared(true)

	_, err := r.exec(ctx, s, ds)

	return err
}

// UpdateBook overwrites the attributes of a book. It reports false when the book does not exist.
func (r Repository) UpdateBook(ctx context.Context, s store.Session, book core.Book) (bool, error) {
	ds := r.dialect.Update(tableBooks).
		Set(goqu.Record{
			colTitle:       book.Title,
			colYear:        book.Year,
			colUDKID:       nullableID(book.UDKID),
			colDescription: book.Description,
		}).
		Where(goqu.C(colIdentifier).Eq(book.ID)).
		Prepared(true)

	rowsAffected, err := r.exec(ctx, s, ds)
	if err != nil {
		return false, err
	}

	return rowsAffected == 1, nil
}

// DeleteBook removes a book. Its instances, loans and author links must be removed first.
func (r Repository) DeleteBook(ctx context.Context, s store.Session, id core.BookID) error {
	ds := r.dialect.Delete(tableBooks).Where(goqu.C(colIdentifier).Eq(id)).Prepared(true)

	_, err := r.exec(ctx, s, ds)

	return err
}

// ReplaceBookAuthors links a book to exactly the given authors.
func (r Repository) ReplaceBookAuthors(
	ctx context.Context,
	s store.Session,
	bookID core.BookID,
	authorIDs []core.AuthorID,
) error {
	if err := r.DeleteBookAuthors(ctx, s, bookID); err != nil {
		return err
	}

	if len(authorIDs) == 0 {
		return nil
	}

	records := make([]any, 0, len(authorIDs))
	for _, authorID := range authorIDs {
		records = append(records, goqu.Record{colBookID: bookID, colAuthorID: authorID})
	}

	ds := r.dialect.Insert(tableBookAuthors).Rows(records...).Prepared(true)

	_, err := r.exec(ctx, s, ds)

	return err
}

// DeleteBookAuthors removes all author links of a book.
func (r Repository) DeleteBookAuthors(ctx context.Context, s store.Session, bookID core.BookID) error {
	ds := r.dialect.Delete(tableBookAuthors).Where(goqu.C(colBookID).Eq(bookID)).Prepared(true)

	_, err := r.exec(ctx, s, ds)

	return err
}

// FindBookAuthors returns the authors of a book ordered by name.
func (r Repository) FindBookAuthors(ctx context.Context, s store.Session, bookID core.BookID) ([]core.Author, error) {
	ds := r.dialect.From(goqu.T(tableBookAuthors).As(aliasBookAuthor)).
		Select(goqu.I(aliasAuthor+"."+colID), goqu.I(aliasAuthor+"."+colFullName)).
		Join(
			goqu.T(tableAuthors).As(aliasAuthor),
			goqu.On(goqu.I(aliasAuthor+"."+colID).Eq(goqu.I(aliasBookAuthor+"."+colAuthorID))),
		).
		Where(goqu.I(aliasBookAuthor + "." + colBookID).Eq(bookID)).
		Order(goqu.I(aliasAuthor + "." + colFullName).Asc()).
		Prepared(true)

	return r.listAuthors(ctx, s, ds)
}

// CountBooksWithUDK counts the books classified under a UDK code.
func (r Repository) CountBooksWithUDK(ctx context.Context, s store.Session, udkID core.UDKID) (int, error) {
	ds := r.dialect.From(tableBooks).
		Select(goqu.COUNT("*")).
		Where(goqu.C(colUDKID).Eq(udkID)).
		Prepared(true)

	return r.count(ctx, s, ds)
}

// ListCatalog returns every book with its UDK code, its authors and its instance counts, ordered by identifier.
func (r Repository) ListCatalog(ctx context.Context, s store.Session) ([]CatalogRow, error) {
	catalog, err := r.listCatalogBooks(ctx, s)
	if err != nil {
		return nil, err
	}

	index := make(map[core.BookID]int, len(catalog))
	for i := range catalog {
		index[catalog[i].Book.ID] = i
	}

	if err = r.attachCatalogAuthors(ctx, s, catalog, index); err != nil {
		return nil, err
	}

	if err = r.attachCatalogInstanceCounts(ctx, s, catalog, index); err != nil {
		return nil, err
	}

	return catalog, nil
}

func (r Repository) listCatalogBooks(ctx context.Context, s store.Session) ([]CatalogRow, error) {
	columns := make([]any, 0, len(bookColumns())+1)
	for _, column := range bookColumns() {
		columns = append(columns, goqu.I(aliasBook+"."+column.(string)))
	}

	columns = append(columns, goqu.I(aliasUDK+"."+colCode))

	ds := r.dialect.From(goqu.T(tableBooks).As(aliasBook)).
		Select(columns...).
		LeftJoin(
			goqu.T(tableUDK).As(aliasUDK),
			goqu.On(goqu.I(aliasUDK+"."+colID).Eq(goqu.I(aliasBook+"."+colUDKID))),
		).
		Order(goqu.I(aliasBook + "." + colIdentifier).Asc()).
		Prepared(true)

	catalog := make([]CatalogRow, 0)

	err := r.query(ctx, s, ds, func(rows store.Rows) error {
		var row CatalogRow
		var code sql.NullString

		if err := scanBook(rows, &row.Book, &code); err != nil {
			return err
		}

		row.UDKCode = code.String
		row.Authors = []string{}
		catalog = append(catalog, row)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return catalog, nil
}

func (r Repository) attachCatalogAuthors(
	ctx context.Context,
	s store.Session,
	catalog []CatalogRow,
	index map[core.BookID]int,
) error {
	ds := r.dialect.From(goqu.T(tableBookAuthors).As(aliasBookAuthor)).
		Select(goqu.I(aliasBookAuthor+"."+colBookID), goqu.I(aliasAuthor+"."+colFullName)).
		Join(
			goqu.T(tableAuthors).As(aliasAuthor),
			goqu.On(goqu.I(aliasAuthor+"."+colID).Eq(goqu.I(aliasBookAuthor+"."+colAuthorID))),
		).
		Order(goqu.I(aliasAuthor + "." + colFullName).Asc()).
		Prepared(true)

	return r.query(ctx, s, ds, func(rows store.Rows) error {
		var bookID core.BookID
		var name string

		if err := rows.Scan(&bookID, &name); err != nil {
			return err
		}

		if i, ok := index[bookID]; ok {
			catalog[i].Authors = append(catalog[i].Authors, name)
		}

		return nil
	})
}

func (r Repository) attachCatalogInstanceCounts(
	ctx context.Context,
	s store.Session,
	catalog []CatalogRow,
	index map[core.BookID]int,
) error {
	ds := r.dialect.From(tableBookInstances).
		Select(colBookID, colStatus, goqu.COUNT("*")).
		GroupBy(colBookID, colStatus).
		Prepared(true)

	return r.query(ctx, s, ds, func(rows store.Rows) error {
		var bookID core.BookID
		var status string
		var n int64

		if err := rows.Scan(&bookID, &status, &n); err != nil {
			return err
		}

		i, ok := index[bookID]
		if !ok {
			return nil
		}

		catalog[i].Instances.Total += int(n)
		if core.InstanceStatus(status) == core.InstanceOnShelf {
			catalog[i].Instances.OnShelf += int(n)
		}

		return nil
	})
}
