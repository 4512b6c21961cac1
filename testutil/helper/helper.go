package helper

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
)

// GivenUniqueBookID returns a positive book identifier that is unique with high probability,
// so tests against a shared database do not collide.
func GivenUniqueBookID(t testing.TB) core.BookID {
	t.Helper()

	id := core.BookID(uuid.New().ID())
	if id == 0 {
		id = 1
	}

	return id
}

// GivenDate parses a yyyy-mm-dd date.
func GivenDate(t testing.TB, value string) time.Time {
	t.Helper()

	date, err := time.Parse(time.DateOnly, value)
	require.NoError(t, err, "error in arranging test data")

	return date
}

// FixtureBook returns a catalog book without UDK code.
func FixtureBook(id core.BookID, title string) core.Book {
	return core.Book{
		ID:          id,
		Title:       title,
		Year:        1965,
		Description: "fixture book " + title,
	}
}

// FixtureReader returns a valid adult reader registered on 2024-01-01.
func FixtureReader(t testing.TB, fullName string) core.Reader {
	t.Helper()

	return core.Reader{
		FullName:         fullName,
		Phone:            "+375291234567",
		Address:          "Minsk, Nezavisimosti 4",
		BirthDate:        GivenDate(t, "1990-05-17"),
		RegistrationDate: GivenDate(t, "2024-01-01"),
	}
}
