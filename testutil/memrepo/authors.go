package memrepo

import (
	"cmp"
	"context"
	"slices"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
	"github.com/AntonStoeckl/library-circulation-go/store"
)

func byAuthorName(a, b core.Author) int {
	return cmp.Or(cmp.Compare(a.FullName, b.FullName), cmp.Compare(a.ID, b.ID))
}

// FindAuthor reads an author by id.
func (r *Repository) FindAuthor(ctx context.Context, _ store.Session, id core.AuthorID) (core.Author, bool, error) {
	if err := r.enter(ctx, "FindAuthor"); err != nil {
		return core.Author{}, false, err
	}
	defer r.dataMu.Unlock()

	author, ok := r.data.authors[id]

	return author, ok, nil
}

// FindAuthorByName reads an author by exact full name.
func (r *Repository) FindAuthorByName(ctx context.Context, _ store.Session, fullName string) (core.Author, bool, error) {
	if err := r.enter(ctx, "FindAuthorByName"); err != nil {
		return core.Author{}, false, err
	}
	defer r.dataMu.Unlock()

	author, ok := r.authorByName(fullName)

	return author, ok, nil
}

func (r *Repository) authorByName(fullName string) (core.Author, bool) {
	for _, author := range r.data.authors {
		if author.FullName == fullName {
			return author, true
		}
	}

	return core.Author{}, false
}

// FindAuthorsByNames returns the authors whose full name is in names.
func (r *Repository) FindAuthorsByNames(ctx context.Context, _ store.Session, names []string) ([]core.Author, error) {
	if err := r.enter(ctx, "FindAuthorsByNames"); err != nil {
		return nil, err
	}
	defer r.dataMu.Unlock()

	authors := make([]core.Author, 0, len(names))
	for _, author := range r.data.authors {
		if slices.Contains(names, author.FullName) {
			authors = append(authors, author)
		}
	}

	slices.SortFunc(authors, byAuthorName)

	return authors, nil
}

// InsertAuthor stores a new author and returns its id.
func (r *Repository) InsertAuthor(ctx context.Context, _ store.Session, fullName string) (core.AuthorID, error) {
	if err := r.enter(ctx, "InsertAuthor"); err != nil {
		return 0, err
	}
	defer r.dataMu.Unlock()

	if _, exists := r.authorByName(fullName); exists {
		return 0, uniqueViolation("authors.full_name")
	}

	r.data.lastAuthorID++
	id := r.data.lastAuthorID
	r.data.authors[id] = core.Author{ID: id, FullName: fullName}

	return id, nil
}

// RenameAuthor changes the full name of an author.
func (r *Repository) RenameAuthor(ctx context.Context, _ store.Session, id core.AuthorID, fullName string) (bool, error) {
	if err := r.enter(ctx, "RenameAuthor"); err != nil {
		return false, err
	}
	defer r.dataMu.Unlock()

	if _, exists := r.data.authors[id]; !exists {
		return false, nil
	}

	if other, exists := r.authorByName(fullName); exists && other.ID != id {
		return false, uniqueViolation("authors.full_name")
	}

	r.data.authors[id] = core.Author{ID: id, FullName: fullName}

	return true, nil
}

// DeleteAuthor removes an author that is not linked to any book.
func (r *Repository) DeleteAuthor(ctx context.Context, _ store.Session, id core.AuthorID) error {
	if err := r.enter(ctx, "DeleteAuthor"); err != nil {
		return err
	}
	defer r.dataMu.Unlock()

	if r.booksOfAuthor(id) > 0 {
		return foreignKeyViolation("book_authors.author_id")
	}

	delete(r.data.authors, id)

	return nil
}

// CountBooksOfAuthor counts the books an author is linked to.
func (r *Repository) CountBooksOfAuthor(ctx context.Context, _ store.Session, id core.AuthorID) (int, error) {
	if err := r.enter(ctx, "CountBooksOfAuthor"); err != nil {
		return 0, err
	}
	defer r.dataMu.Unlock()

	return r.booksOfAuthor(id), nil
}

func (r *Repository) booksOfAuthor(id core.AuthorID) int {
	n := 0
	for _, authorIDs := range r.data.bookAuthors {
		if slices.Contains(authorIDs, id) {
			n++
		}
	}

	return n
}

// ListAuthors returns all authors ordered by name.
func (r *Repository) ListAuthors(ctx context.Context, _ store.Session) ([]core.Author, error) {
	if err := r.enter(ctx, "ListAuthors"); err != nil {
		return nil, err
	}
	defer r.dataMu.Unlock()

	authors := make([]core.Author, 0, len(r.data.authors))
	for _, author := range r.data.authors {
		authors = append(authors, author)
	}

	slices.SortFunc(authors, byAuthorName)

	return authors, nil
}
