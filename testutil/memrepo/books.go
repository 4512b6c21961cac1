package memrepo

import (
	"context"
	"slices"
	"sort"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
	"github.com/AntonStoeckl/library-circulation-go/library/shell/repository"
	"github.com/AntonStoeckl/library-circulation-go/store"
)

// FindBook reads a book by its identifier.
func (r *Repository) FindBook(ctx context.Context, _ store.Session, id core.BookID) (core.Book, bool, error) {
	if err := r.enter(ctx, "FindBook"); err != nil {
		return core.Book{}, false, err
	}
	defer r.dataMu.Unlock()

	book, ok := r.data.books[id]

	return book, ok, nil
}

// InsertBook stores a new book.
func (r *Repository) InsertBook(ctx context.Context, _ store.Session, book core.Book) error {
	if err := r.enter(ctx, "InsertBook"); err != nil {
		return err
	}
	defer r.dataMu.Unlock()

	if _, exists := r.data.books[book.ID]; exists {
		return uniqueViolation("books.identifier")
	}

	if book.UDKID != nil {
		if _, ok := r.data.udkCodes[*book.UDKID]; !ok {
			return foreignKeyViolation("books.udk_id")
		}
	}

	r.data.books[book.ID] = book

	return nil
}

// UpdateBook overwrites the attributes of a book.
func (r *Repository) UpdateBook(ctx context.Context, _ store.Session, book core.Book) (bool, error) {
	if err := r.enter(ctx, "UpdateBook"); err != nil {
		return false, err
	}
	defer r.dataMu.Unlock()

	if _, exists := r.data.books[book.ID]; !exists {
		return false, nil
	}

	if book.UDKID != nil {
		if _, ok := r.data.udkCodes[*book.UDKID]; !ok {
			return false, foreignKeyViolation("books.udk_id")
		}
	}

	r.data.books[book.ID] = book

	return true, nil
}

// DeleteBook removes a book that has neither instances nor author links.
func (r *Repository) DeleteBook(ctx context.Context, _ store.Session, id core.BookID) error {
	if err := r.enter(ctx, "DeleteBook"); err != nil {
		return err
	}
	defer r.dataMu.Unlock()

	if len(r.data.bookAuthors[id]) > 0 {
		return foreignKeyViolation("book_authors.book_id")
	}

	for _, instance := range r.data.instances {
		if instance.BookID == id {
			return foreignKeyViolation("book_instances.book_id")
		}
	}

	delete(r.data.books, id)

	return nil
}

// ReplaceBookAuthors links a book to exactly the given authors.
func (r *Repository) ReplaceBookAuthors(
	ctx context.Context,
	_ store.Session,
	bookID core.BookID,
	authorIDs []core.AuthorID,
) error {
	if err := r.enter(ctx, "ReplaceBookAuthors"); err != nil {
		return err
	}
	defer r.dataMu.Unlock()

	if _, ok := r.data.books[bookID]; !ok {
		return foreignKeyViolation("book_authors.book_id")
	}

	for _, authorID := range authorIDs {
		if _, ok := r.data.authors[authorID]; !ok {
			return foreignKeyViolation("book_authors.author_id")
		}
	}

	if len(authorIDs) == 0 {
		delete(r.data.bookAuthors, bookID)
		return nil
	}

	r.data.bookAuthors[bookID] = slices.Clone(authorIDs)

	return nil
}

// DeleteBookAuthors removes all author links of a book.
func (r *Repository) DeleteBookAuthors(ctx context.Context, _ store.Session, bookID core.BookID) error {
	if err := r.enter(ctx, "DeleteBookAuthors"); err != nil {
		return err
	}
	defer r.dataMu.Unlock()

	delete(r.data.bookAuthors, bookID)

	return nil
}

// FindBookAuthors returns the authors of a book ordered by name.
func (r *Repository) FindBookAuthors(ctx context.Context, _ store.Session, bookID core.BookID) ([]core.Author, error) {
	if err := r.enter(ctx, "FindBookAuthors"); err != nil {
		return nil, err
	}
	defer r.dataMu.Unlock()

	return r.authorsOfBook(bookID), nil
}

func (r *Repository) authorsOfBook(bookID core.BookID) []core.Author {
	authors := make([]core.Author, 0, len(r.data.bookAuthors[bookID]))
	for _, authorID := range r.data.bookAuthors[bookID] {
		authors = append(authors, r.data.authors[authorID])
	}

	sort.Slice(authors, func(i, j int) bool { return authors[i].FullName < authors[j].FullName })

	return authors
}

// CountBooksWithUDK counts the books classified under a UDK code.
func (r *Repository) CountBooksWithUDK(ctx context.Context, _ store.Session, udkID core.UDKID) (int, error) {
	if err := r.enter(ctx, "CountBooksWithUDK"); err != nil {
		return 0, err
	}
	defer r.dataMu.Unlock()

	n := 0
	for _, book := range r.data.books {
		if book.UDKID != nil && *book.UDKID == udkID {
			n++
		}
	}

	return n, nil
}

// ListCatalog returns every book with its UDK code, its authors and its instance counts, ordered by identifier.
func (r *Repository) ListCatalog(ctx context.Context, _ store.Session) ([]repository.CatalogRow, error) {
	if err := r.enter(ctx, "ListCatalog"); err != nil {
		return nil, err
	}
	defer r.dataMu.Unlock()

	catalog := make([]repository.CatalogRow, 0, len(r.data.books))

	for _, book := range r.data.books {
		row := repository.CatalogRow{Book: book, Authors: []string{}}

		if book.UDKID != nil {
			row.UDKCode = r.data.udkCodes[*book.UDKID].Code
		}

		for _, author := range r.authorsOfBook(book.ID) {
			row.Authors = append(row.Authors, author.FullName)
		}

		row.Instances = r.countInstances(book.ID)
		catalog = append(catalog, row)
	}

	sort.Slice(catalog, func(i, j int) bool { return catalog[i].Book.ID < catalog[j].Book.ID })

	return catalog, nil
}

func (r *Repository) countInstances(bookID core.BookID) repository.InstanceCounts {
	var counts repository.InstanceCounts

	for _, instance := range r.data.instances {
		if instance.BookID != bookID {
			continue
		}

		counts.Total++
		if instance.IsOnShelf() {
			counts.OnShelf++
		}
	}

	return counts
}
