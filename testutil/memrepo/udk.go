package memrepo

import (
	"cmp"
	"context"
	"slices"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
	"github.com/AntonStoeckl/library-circulation-go/store"
)

// FindUDKCode reads a UDK code by id.
func (r *Repository) FindUDKCode(ctx context.Context, _ store.Session, id core.UDKID) (core.UDKCode, bool, error) {
	if err := r.enter(ctx, "FindUDKCode"); err != nil {
		return core.UDKCode{}, false, err
	}
	defer r.dataMu.Unlock()

	code, ok := r.data.udkCodes[id]

	return code, ok, nil
}

// FindUDKCodeByCode reads a UDK code by its code.
func (r *Repository) FindUDKCodeByCode(ctx context.Context, _ store.Session, code string) (core.UDKCode, bool, error) {
	if err := r.enter(ctx, "FindUDKCodeByCode"); err != nil {
		return core.UDKCode{}, false, err
	}
	defer r.dataMu.Unlock()

	found, ok := r.udkByCode(code)

	return found, ok, nil
}

func (r *Repository) udkByCode(code string) (core.UDKCode, bool) {
	for _, udk := range r.data.udkCodes {
		if udk.Code == code {
			return udk, true
		}
	}

	return core.UDKCode{}, false
}

// InsertUDKCode stores a new UDK code and returns its id.
func (r *Repository) InsertUDKCode(ctx context.Context, _ store.Session, code core.UDKCode) (core.UDKID, error) {
	if err := r.enter(ctx, "InsertUDKCode"); err != nil {
		return 0, err
	}
	defer r.dataMu.Unlock()

	if _, exists := r.udkByCode(code.Code); exists {
		return 0, uniqueViolation("udk.code")
	}

	r.data.lastUDKID++
	code.ID = r.data.lastUDKID
	r.data.udkCodes[code.ID] = code

	return code.ID, nil
}

// UpdateUDKCode overwrites code and description.
func (r *Repository) UpdateUDKCode(ctx context.Context, _ store.Session, code core.UDKCode) (bool, error) {
	if err := r.enter(ctx, "UpdateUDKCode"); err != nil {
		return false, err
	}
	defer r.dataMu.Unlock()

	if _, exists := r.data.udkCodes[code.ID]; !exists {
		return false, nil
	}

	if other, exists := r.udkByCode(code.Code); exists && other.ID != code.ID {
		return false, uniqueViolation("udk.code")
	}

	r.data.udkCodes[code.ID] = code

	return true, nil
}

// DeleteUDKCode removes a UDK code that no book references.
func (r *Repository) DeleteUDKCode(ctx context.Context, _ store.Session, id core.UDKID) error {
	if err := r.enter(ctx, "DeleteUDKCode"); err != nil {
		return err
	}
	defer r.dataMu.Unlock()

	for _, book := range r.data.books {
		if book.UDKID != nil && *book.UDKID == id {
			return foreignKeyViolation("books.udk_id")
		}
	}

	delete(r.data.udkCodes, id)

	return nil
}

// ListUDKCodes returns all UDK codes ordered by code.
func (r *Repository) ListUDKCodes(ctx context.Context, _ store.Session) ([]core.UDKCode, error) {
	if err := r.enter(ctx, "ListUDKCodes"); err != nil {
		return nil, err
	}
	defer r.dataMu.Unlock()

	codes := make([]core.UDKCode, 0, len(r.data.udkCodes))
	for _, code := range r.data.udkCodes {
		codes = append(codes, code)
	}

	slices.SortFunc(codes, func(a, b core.UDKCode) int { return cmp.Compare(a.Code, b.Code) })

	return codes, nil
}
