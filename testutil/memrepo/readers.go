package memrepo

import (
	"cmp"
	"context"
	"slices"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
	"github.com/AntonStoeckl/library-circulation-go/store"
)

// FindReader reads a reader by id.
func (r *Repository) FindReader(ctx context.Context, _ store.Session, id core.ReaderID) (core.Reader, bool, error) {
	if err := r.enter(ctx, "FindReader"); err != nil {
		return core.Reader{}, false, err
	}
	defer r.dataMu.Unlock()

	reader, ok := r.data.readers[id]

	return reader, ok, nil
}

// FindReaderByNameAndPhone reads the reader with the lowest id registered under this full name and phone.
func (r *Repository) FindReaderByNameAndPhone(
	ctx context.Context,
	_ store.Session,
	fullName string,
	phone string,
) (core.Reader, bool, error) {
	if err := r.enter(ctx, "FindReaderByNameAndPhone"); err != nil {
		return core.Reader{}, false, err
	}
	defer r.dataMu.Unlock()

	var found core.Reader
	ok := false

	for _, reader := range r.data.readers {
		if reader.FullName != fullName || reader.Phone != phone {
			continue
		}

		if !ok || reader.ID < found.ID {
			found, ok = reader, true
		}
	}

	return found, ok, nil
}

// InsertReader stores a new reader and returns its id.
func (r *Repository) InsertReader(ctx context.Context, _ store.Session, reader core.Reader) (core.ReaderID, error) {
	if err := r.enter(ctx, "InsertReader"); err != nil {
		return 0, err
	}
	defer r.dataMu.Unlock()

	r.data.lastReaderID++
	reader.ID = r.data.lastReaderID
	r.data.readers[reader.ID] = normalizedReader(reader)

	return reader.ID, nil
}

// UpdateReader overwrites the attributes of a reader.
func (r *Repository) UpdateReader(ctx context.Context, _ store.Session, reader core.Reader) (bool, error) {
	if err := r.enter(ctx, "UpdateReader"); err != nil {
		return false, err
	}
	defer r.dataMu.Unlock()

	if _, exists := r.data.readers[reader.ID]; !exists {
		return false, nil
	}

	r.data.readers[reader.ID] = normalizedReader(reader)

	return true, nil
}

func normalizedReader(reader core.Reader) core.Reader {
	reader.BirthDate = core.ToDate(reader.BirthDate)
	reader.RegistrationDate = core.ToDate(reader.RegistrationDate)

	return reader
}

// DeleteReader removes a reader that has no loans.
func (r *Repository) DeleteReader(ctx context.Context, _ store.Session, id core.ReaderID) error {
	if err := r.enter(ctx, "DeleteReader"); err != nil {
		return err
	}
	defer r.dataMu.Unlock()

	for _, loan := range r.data.loans {
		if loan.ReaderID == id {
			return foreignKeyViolation("issued_books.reader_id")
		}
	}

	delete(r.data.readers, id)

	return nil
}

// ListReaders returns all readers ordered by name.
func (r *Repository) ListReaders(ctx context.Context, _ store.Session) ([]core.Reader, error) {
	if err := r.enter(ctx, "ListReaders"); err != nil {
		return nil, err
	}
	defer r.dataMu.Unlock()

	readers := make([]core.Reader, 0, len(r.data.readers))
	for _, reader := range r.data.readers {
		readers = append(readers, reader)
	}

	slices.SortFunc(readers, func(a, b core.Reader) int {
		return cmp.Or(cmp.Compare(a.FullName, b.FullName), cmp.Compare(a.ID, b.ID))
	})

	return readers, nil
}
