package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
	"github.com/AntonStoeckl/library-circulation-go/library/features/command/addbook"
	"github.com/AntonStoeckl/library-circulation-go/library/features/command/editbook"
	"github.com/AntonStoeckl/library-circulation-go/library/features/command/removebook"
	"github.com/AntonStoeckl/library-circulation-go/library/features/query/bookcatalog"
	"github.com/AntonStoeckl/library-circulation-go/library/features/query/instanceavailability"
	"github.com/AntonStoeckl/library-circulation-go/library/shell"
)

var bookCmd = &cobra.Command{
	Use:   "book",
	Short: "Maintain the book catalog",
}

var bookAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Catalog a book with its authors and initial instances",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		attrs, err := bookAttributesFrom(cmd)
		if err != nil {
			return err
		}

		quantity, _ := cmd.Flags().GetInt("quantity")

		acquired, err := dateFlag(cmd, "acquired", time.Time{})
		if err != nil {
			return err
		}

		command := addbook.BuildCommand(
			attrs.id, attrs.title, attrs.year, attrs.udkID, attrs.description, attrs.authors, quantity, acquired,
		)

		return runCommand(cmd, command, func(a *app) shell.CommandHandler[addbook.Command, addbook.Result] {
			return addbook.NewCommandHandler(a.store, a.repo)
		})
	},
}

var bookEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Overwrite a book's attributes and author list",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		attrs, err := bookAttributesFrom(cmd)
		if err != nil {
			return err
		}

		command := editbook.BuildCommand(attrs.id, attrs.title, attrs.year, attrs.udkID, attrs.description, attrs.authors)

		return runCommand(cmd, command, func(a *app) shell.CommandHandler[editbook.Command, core.Book] {
			return editbook.NewCommandHandler(a.store, a.repo)
		})
	},
}

var bookRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove a book with all its instances, as long as none is lent",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		bookID, _ := cmd.Flags().GetInt64("id")
		command := removebook.BuildCommand(bookID)

		return runCommand(cmd, command, func(a *app) shell.CommandHandler[removebook.Command, core.Book] {
			return removebook.NewCommandHandler(a.store, a.repo)
		})
	},
}

var bookCatalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the catalog, optionally filtered by title or author",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		search, _ := cmd.Flags().GetString("search")
		query := bookcatalog.BuildQuery(search)

		return runQuery(cmd, query, func(a *app) shell.QueryHandler[bookcatalog.Query, bookcatalog.Catalog] {
			return bookcatalog.NewQueryHandler(a.store, a.repo)
		})
	},
}

var bookAvailabilityCmd = &cobra.Command{
	Use:   "availability",
	Short: "Count the instances of a book on the shelf",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		bookID, _ := cmd.Flags().GetInt64("id")
		query := instanceavailability.BuildQuery(bookID)

		return runQuery(
			cmd,
			query,
			func(a *app) shell.QueryHandler[instanceavailability.Query, instanceavailability.Availability] {
				return instanceavailability.NewQueryHandler(a.store, a.repo)
			},
		)
	},
}

type bookAttributes struct {
	id          core.BookID
	title       string
	year        int
	udkID       *core.UDKID
	description string
	authors     []string
}

func bookAttributesFrom(cmd *cobra.Command) (bookAttributes, error) {
	udkID, err := udkFlag(cmd, "udk")
	if err != nil {
		return bookAttributes{}, err
	}

	attrs := bookAttributes{udkID: udkID}
	attrs.id, _ = cmd.Flags().GetInt64("id")
	attrs.title, _ = cmd.Flags().GetString("title")
	attrs.year, _ = cmd.Flags().GetInt("year")
	attrs.description, _ = cmd.Flags().GetString("description")
	attrs.authors, _ = cmd.Flags().GetStringArray("author")

	return attrs, nil
}

func addBookAttributeFlags(cmd *cobra.Command) {
	cmd.Flags().Int64("id", 0, "Book ID")
	cmd.Flags().String("title", "", "Title")
	cmd.Flags().Int("year", 0, "Publication year, 0 when unknown")
	cmd.Flags().Int64("udk", 0, "UDK code ID, 0 for none")
	cmd.Flags().String("description", "", "Description")
	cmd.Flags().StringArray("author", nil, "Author full name, repeatable")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("title")
}

func init() {
	addBookAttributeFlags(bookAddCmd)
	bookAddCmd.Flags().Int("quantity", 1, "Number of instances to create")
	bookAddCmd.Flags().String("acquired", "", "Acquisition date (yyyy-mm-dd), defaults to today")

	addBookAttributeFlags(bookEditCmd)

	bookRemoveCmd.Flags().Int64("id", 0, "Book ID")
	_ = bookRemoveCmd.MarkFlagRequired("id")

	bookCatalogCmd.Flags().String("search", "", "Case-insensitive match on title or author name")

	bookAvailabilityCmd.Flags().Int64("id", 0, "Book ID")
	_ = bookAvailabilityCmd.MarkFlagRequired("id")

	bookCmd.AddCommand(bookAddCmd, bookEditCmd, bookRemoveCmd, bookCatalogCmd, bookAvailabilityCmd)
	RootCmd.AddCommand(bookCmd)
}
