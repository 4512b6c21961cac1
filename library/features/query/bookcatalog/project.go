package bookcatalog

import (
	"strings"

	"github.com/AntonStoeckl/library-circulation-go/library/shell/repository"
)

const authorSeparator = ", "

// Project implements the query logic to build the catalog from the stored rows.
// This is a pure function with no side effects.
//
// Query Logic:
//
//	GIVEN: All books ordered by identifier
//	WHEN: BookCatalog query is executed
//	THEN: Catalog is returned with one line per book, authors joined by ", "
//	INCLUDES: Books whose title, authors, UDK code or description contain the search text, ignoring case
//	EXCLUDES: Nothing when the search text is empty
func Project(rows []repository.CatalogRow, query Query) Catalog {
	needle := strings.ToLower(query.Search)
	books := make([]BookInfo, 0, len(rows))

	for _, row := range rows {
		info := BookInfo{
			BookID:      row.Book.ID,
			Title:       row.Book.Title,
			Year:        row.Book.Year,
			Authors:     strings.Join(row.Authors, authorSeparator),
			UDKCode:     row.UDKCode,
			Description: row.Book.Description,
			Available:   row.Instances.OnShelf,
			Total:       row.Instances.Total,
		}

		if needle != "" && !matches(info, needle) {
			continue
		}

		books = append(books, info)
	}

	return Catalog{
		Books: books,
		Count: len(books),
	}
}

func matches(info BookInfo, needle string) bool {
	for _, field := range []string{info.Title, info.Authors, info.UDKCode, info.Description} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}

	return false
}
