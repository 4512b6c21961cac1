package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
	"github.com/AntonStoeckl/library-circulation-go/library/features/command/editreader"
	"github.com/AntonStoeckl/library-circulation-go/library/features/command/registerreader"
	"github.com/AntonStoeckl/library-circulation-go/library/features/command/removereader"
	"github.com/AntonStoeckl/library-circulation-go/library/features/query/registeredreaders"
	"github.com/AntonStoeckl/library-circulation-go/library/shell"
)

var readerCmd = &cobra.Command{
	Use:   "reader",
	Short: "Maintain registered readers",
}

var readerRegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a reader",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		attrs, err := readerAttributesFrom(cmd)
		if err != nil {
			return err
		}

		command := registerreader.BuildCommand(attrs.name, attrs.phone, attrs.address, attrs.birthDate, attrs.registered)

		return runCommand(cmd, command, func(a *app) shell.CommandHandler[registerreader.Command, core.Reader] {
			return registerreader.NewCommandHandler(a.store, a.repo)
		})
	},
}

var readerEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Overwrite a reader's attributes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		attrs, err := readerAttributesFrom(cmd)
		if err != nil {
			return err
		}

		readerID, _ := cmd.Flags().GetInt64("id")
		command := editreader.BuildCommand(
			readerID, attrs.name, attrs.phone, attrs.address, attrs.birthDate, attrs.registered,
		)

		return runCommand(cmd, command, func(a *app) shell.CommandHandler[editreader.Command, core.Reader] {
			return editreader.NewCommandHandler(a.store, a.repo)
		})
	},
}

var readerRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove a reader without active loans",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		readerID, _ := cmd.Flags().GetInt64("id")
		command := removereader.BuildCommand(readerID)

		return runCommand(cmd, command, func(a *app) shell.CommandHandler[removereader.Command, core.Reader] {
			return removereader.NewCommandHandler(a.store, a.repo)
		})
	},
}

var readerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all registered readers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		query := registeredreaders.BuildQuery()

		return runQuery(cmd, query, func(a *app) shell.QueryHandler[registeredreaders.Query, registeredreaders.RegisteredReaders] {
			return registeredreaders.NewQueryHandler(a.store, a.repo)
		})
	},
}

type readerAttributes struct {
	name       string
	phone      string
	address    string
	birthDate  time.Time
	registered time.Time
}

func readerAttributesFrom(cmd *cobra.Command) (readerAttributes, error) {
	birthDate, err := dateFlag(cmd, "birth-date", time.Time{})
	if err != nil {
		return readerAttributes{}, err
	}

	registered, err := dateFlag(cmd, "registration-date", time.Time{})
	if err != nil {
		return readerAttributes{}, err
	}

	attrs := readerAttributes{birthDate: birthDate, registered: registered}
	attrs.name, _ = cmd.Flags().GetString("name")
	attrs.phone, _ = cmd.Flags().GetString("phone")
	attrs.address, _ = cmd.Flags().GetString("address")

	return attrs, nil
}

func addReaderAttributeFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "Full name")
	cmd.Flags().String("phone", "", "Phone number, e.g. +375291234567")
	cmd.Flags().String("address", "", "Postal address")
	cmd.Flags().String("birth-date", "", "Birth date (yyyy-mm-dd)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("phone")
	_ = cmd.MarkFlagRequired("birth-date")
}

func init() {
	addReaderAttributeFlags(readerRegisterCmd)
	readerRegisterCmd.Flags().String("registration-date", "", "Registration date (yyyy-mm-dd), defaults to today")

	readerEditCmd.Flags().Int64("id", 0, "Reader ID")
	addReaderAttributeFlags(readerEditCmd)
	readerEditCmd.Flags().String("registration-date", "", "Registration date (yyyy-mm-dd)")
	_ = readerEditCmd.MarkFlagRequired("id")
	_ = readerEditCmd.MarkFlagRequired("registration-date")

	readerRemoveCmd.Flags().Int64("id", 0, "Reader ID")
	_ = readerRemoveCmd.MarkFlagRequired("id")

	readerCmd.AddCommand(readerRegisterCmd, readerEditCmd, readerRemoveCmd, readerListCmd)
	RootCmd.AddCommand(readerCmd)
}
