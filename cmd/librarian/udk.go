package main

import (
	"github.com/spf13/cobra"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
	"github.com/AntonStoeckl/library-circulation-go/library/features/command/addudkcode"
	"github.com/AntonStoeckl/library-circulation-go/library/features/command/editudkcode"
	"github.com/AntonStoeckl/library-circulation-go/library/features/command/removeudkcode"
	"github.com/AntonStoeckl/library-circulation-go/library/features/query/udkcodes"
	"github.com/AntonStoeckl/library-circulation-go/library/shell"
)

var udkCmd = &cobra.Command{
	Use:   "udk",
	Short: "Maintain UDK classification codes",
}

var udkAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a UDK code",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		code, _ := cmd.Flags().GetString("code")
		description, _ := cmd.Flags().GetString("description")
		command := addudkcode.BuildCommand(code, description)

		return runCommand(cmd, command, func(a *app) shell.CommandHandler[addudkcode.Command, core.UDKCode] {
			return addudkcode.NewCommandHandler(a.store, a.repo)
		})
	},
}

var udkEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Overwrite a UDK code and its description",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		udkID, _ := cmd.Flags().GetInt64("id")
		code, _ := cmd.Flags().GetString("code")
		description, _ := cmd.Flags().GetString("description")
		command := editudkcode.BuildCommand(udkID, code, description)

		return runCommand(cmd, command, func(a *app) shell.CommandHandler[editudkcode.Command, core.UDKCode] {
			return editudkcode.NewCommandHandler(a.store, a.repo)
		})
	},
}

var udkRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove a UDK code that no book references",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		udkID, _ := cmd.Flags().GetInt64("id")
		command := removeudkcode.BuildCommand(udkID)

		return runCommand(cmd, command, func(a *app) shell.CommandHandler[removeudkcode.Command, core.UDKCode] {
			return removeudkcode.NewCommandHandler(a.store, a.repo)
		})
	},
}

var udkListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all UDK codes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runQuery(cmd, udkcodes.BuildQuery(), func(a *app) shell.QueryHandler[udkcodes.Query, udkcodes.UDKCodes] {
			return udkcodes.NewQueryHandler(a.store, a.repo)
		})
	},
}

func init() {
	udkAddCmd.Flags().String("code", "", "Classification code")
	udkAddCmd.Flags().String("description", "", "Description")
	_ = udkAddCmd.MarkFlagRequired("code")

	udkEditCmd.Flags().Int64("id", 0, "UDK code ID")
	udkEditCmd.Flags().String("code", "", "Classification code")
	udkEditCmd.Flags().String("description", "", "Description")
	_ = udkEditCmd.MarkFlagRequired("id")
	_ = udkEditCmd.MarkFlagRequired("code")

	udkRemoveCmd.Flags().Int64("id", 0, "UDK code ID")
	_ = udkRemoveCmd.MarkFlagRequired("id")

	udkCmd.AddCommand(udkAddCmd, udkEditCmd, udkRemoveCmd, udkListCmd)
	RootCmd.AddCommand(udkCmd)
}
