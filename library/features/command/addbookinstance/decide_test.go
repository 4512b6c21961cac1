package addbookinstance_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
	"github.com/AntonStoeckl/library-circulation-go/library/features/command/addbookinstance"
)

func Test_Decide_CreatesAnInstanceOnTheShelf(t *testing.T) {
	// arrange
	book := &core.Book{ID: 42, Title: "Dune", Year: 1965}
	acquiredAt := time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC)

	// act
	result := addbookinstance.Decide(book, acquiredAt)

	// assert
	assert.NoError(t, result.HasError())
	assert.Equal(t, core.BookID(42), result.Value.BookID)
	assert.Equal(t, core.InstanceOnShelf, result.Value.Status)
	assert.Equal(t, core.ToDate(acquiredAt), result.Value.AcquisitionDate)
	assert.Contains(t, result.Value.InventoryNumber, "BK-42-20240305-143000-")
}

func Test_Decide_Error_BookNotFound(t *testing.T) {
	// act
	result := addbookinstance.Decide(nil, time.Now())

	// assert
	assert.ErrorIs(t, result.HasError(), core.ErrBookNotFound)
}
