package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
	"github.com/AntonStoeckl/library-circulation-go/library/features/command/addbookinstance"
	"github.com/AntonStoeckl/library-circulation-go/library/features/command/removebookinstance"
	"github.com/AntonStoeckl/library-circulation-go/library/features/query/bookinstances"
	"github.com/AntonStoeckl/library-circulation-go/library/shell"
)

var instanceCmd = &cobra.Command{
	Use:   "instance",
	Short: "Maintain the physical copies of a book",
}

var instanceAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add one copy of a book",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		bookID, _ := cmd.Flags().GetInt64("book")

		acquired, err := dateFlag(cmd, "acquired", time.Time{})
		if err != nil {
			return err
		}

		command := addbookinstance.BuildCommand(bookID, acquired)

		return runCommand(cmd, command, func(a *app) shell.CommandHandler[addbookinstance.Command, core.BookInstance] {
			return addbookinstance.NewCommandHandler(a.store, a.repo)
		})
	},
}

var instanceRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove a copy that is on the shelf, by default any of them",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		bookID, _ := cmd.Flags().GetInt64("book")
		instanceID, _ := cmd.Flags().GetInt64("instance")
		command := removebookinstance.BuildCommand(bookID, instanceID)

		return runCommand(cmd, command, func(a *app) shell.CommandHandler[removebookinstance.Command, core.BookInstance] {
			return removebookinstance.NewCommandHandler(a.store, a.repo)
		})
	},
}

var instanceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the copies of a book",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		bookID, _ := cmd.Flags().GetInt64("book")
		query := bookinstances.BuildQuery(bookID)

		return runQuery(cmd, query, func(a *app) shell.QueryHandler[bookinstances.Query, bookinstances.BookInstances] {
			return bookinstances.NewQueryHandler(a.store, a.repo)
		})
	},
}

func init() {
	instanceAddCmd.Flags().Int64("book", 0, "Book ID")
	instanceAddCmd.Flags().String("acquired", "", "Acquisition date (yyyy-mm-dd), defaults to today")
	_ = instanceAddCmd.MarkFlagRequired("book")

	instanceRemoveCmd.Flags().Int64("book", 0, "Book ID")
	instanceRemoveCmd.Flags().Int64("instance", 0, "Instance ID, 0 picks any copy on the shelf")
	_ = instanceRemoveCmd.MarkFlagRequired("book")

	instanceListCmd.Flags().Int64("book", 0, "Book ID")
	_ = instanceListCmd.MarkFlagRequired("book")

	instanceCmd.AddCommand(instanceAddCmd, instanceRemoveCmd, instanceListCmd)
	RootCmd.AddCommand(instanceCmd)
}
