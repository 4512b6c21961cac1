package main

import (
	"github.com/spf13/cobra"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
	"github.com/AntonStoeckl/library-circulation-go/library/features/command/addauthor"
	"github.com/AntonStoeckl/library-circulation-go/library/features/command/removeauthor"
	"github.com/AntonStoeckl/library-circulation-go/library/features/command/renameauthor"
	"github.com/AntonStoeckl/library-circulation-go/library/features/query/authors"
	"github.com/AntonStoeckl/library-circulation-go/library/shell"
)

var authorCmd = &cobra.Command{
	Use:   "author",
	Short: "Maintain authors",
}

var authorAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an author",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		name, _ := cmd.Flags().GetString("name")
		command := addauthor.BuildCommand(name)

		return runCommand(cmd, command, func(a *app) shell.CommandHandler[addauthor.Command, core.Author] {
			return addauthor.NewCommandHandler(a.store, a.repo)
		})
	},
}

var authorRenameCmd = &cobra.Command{
	Use:   "rename",
	Short: "Change an author's name",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		authorID, _ := cmd.Flags().GetInt64("id")
		name, _ := cmd.Flags().GetString("name")
		command := renameauthor.BuildCommand(authorID, name)

		return runCommand(cmd, command, func(a *app) shell.CommandHandler[renameauthor.Command, core.Author] {
			return renameauthor.NewCommandHandler(a.store, a.repo)
		})
	},
}

var authorRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove an author that is not credited on any book",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		authorID, _ := cmd.Flags().GetInt64("id")
		command := removeauthor.BuildCommand(authorID)

		return runCommand(cmd, command, func(a *app) shell.CommandHandler[removeauthor.Command, core.Author] {
			return removeauthor.NewCommandHandler(a.store, a.repo)
		})
	},
}

var authorListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all authors",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runQuery(cmd, authors.BuildQuery(), func(a *app) shell.QueryHandler[authors.Query, authors.Authors] {
			return authors.NewQueryHandler(a.store, a.repo)
		})
	},
}

func init() {
	authorAddCmd.Flags().String("name", "", "Full name")
	_ = authorAddCmd.MarkFlagRequired("name")

	authorRenameCmd.Flags().Int64("id", 0, "Author ID")
	authorRenameCmd.Flags().String("name", "", "New full name")
	_ = authorRenameCmd.MarkFlagRequired("id")
	_ = authorRenameCmd.MarkFlagRequired("name")

	authorRemoveCmd.Flags().Int64("id", 0, "Author ID")
	_ = authorRemoveCmd.MarkFlagRequired("id")

	authorCmd.AddCommand(authorAddCmd, authorRenameCmd, authorRemoveCmd, authorListCmd)
	RootCmd.AddCommand(authorCmd)
}
