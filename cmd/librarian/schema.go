package main

import (
	"errors"

	"github.com/spf13/cobra"
)

var errTruncateNotConfirmed = errors.New("truncate deletes all data, pass --yes to confirm")

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Manage the database schema",
}

var schemaEnsureCmd = &cobra.Command{
	Use:   "ensure",
	Short: "Create missing tables and indexes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withApp(cmd, func(a *app) error {
			if err := a.store.EnsureSchema(cmd.Context()); err != nil {
				return err
			}

			return a.render(message{Message: "schema is up to date"})
		})
	},
}

var schemaTruncateCmd = &cobra.Command{
	Use:   "truncate",
	Short: "Delete all rows from all tables",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if confirmed, _ := cmd.Flags().GetBool("yes"); !confirmed {
			return usageError{flag: "yes", err: errTruncateNotConfirmed}
		}

		return withApp(cmd, func(a *app) error {
			if err := a.store.TruncateAll(cmd.Context()); err != nil {
				return err
			}

			return a.render(message{Message: "all tables truncated"})
		})
	},
}

func init() {
	schemaTruncateCmd.Flags().Bool("yes", false, "Confirm deleting all data")

	schemaCmd.AddCommand(schemaEnsureCmd, schemaTruncateCmd)
	RootCmd.AddCommand(schemaCmd)
}
