package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
	"github.com/AntonStoeckl/library-circulation-go/library/features/command/issueinstance"
	"github.com/AntonStoeckl/library-circulation-go/library/features/command/returninstance"
	"github.com/AntonStoeckl/library-circulation-go/library/features/query/overdueloans"
	"github.com/AntonStoeckl/library-circulation-go/library/features/query/readerloans"
	"github.com/AntonStoeckl/library-circulation-go/library/shell"
)

var loanCmd = &cobra.Command{
	Use:   "loan",
	Short: "Issue and return book instances",
}

var loanIssueCmd = &cobra.Command{
	Use:   "issue",
	Short: "Lend an instance that is on the shelf to a reader",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		instanceID, _ := cmd.Flags().GetInt64("instance")
		readerID, _ := cmd.Flags().GetInt64("reader")

		issueDate, err := dateFlag(cmd, "issue-date", today())
		if err != nil {
			return err
		}

		planned, err := plannedReturnDate(cmd, issueDate)
		if err != nil {
			return err
		}

		command := issueinstance.BuildCommand(instanceID, readerID, issueDate, planned)

		return runCommand(cmd, command, func(a *app) shell.CommandHandler[issueinstance.Command, core.Loan] {
			return issueinstance.NewCommandHandler(a.store, a.repo)
		})
	},
}

var loanReturnCmd = &cobra.Command{
	Use:   "return",
	Short: "Take back a lent instance",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		loanID, _ := cmd.Flags().GetInt64("loan")

		returnDate, err := dateFlag(cmd, "date", time.Time{})
		if err != nil {
			return err
		}

		command := returninstance.BuildCommand(loanID, returnDate)

		return runCommand(cmd, command, func(a *app) shell.CommandHandler[returninstance.Command, returninstance.Outcome] {
			return returninstance.NewCommandHandler(a.store, a.repo)
		})
	},
}

var loanListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all loans of a reader with their due or return state",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		readerID, _ := cmd.Flags().GetInt64("reader")
		query := readerloans.BuildQuery(readerID, now())

		return runQuery(cmd, query, func(a *app) shell.QueryHandler[readerloans.Query, readerloans.ReaderLoans] {
			return readerloans.NewQueryHandler(a.store, a.repo)
		})
	},
}

var loanOverdueCmd = &cobra.Command{
	Use:   "overdue",
	Short: "List active loans that are overdue or due soon",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		query := overdueloans.BuildQuery(now())

		return runQuery(cmd, query, func(a *app) shell.QueryHandler[overdueloans.Query, overdueloans.OverdueLoans] {
			return overdueloans.NewQueryHandler(a.store, a.repo)
		})
	},
}

func init() {
	loanIssueCmd.Flags().Int64("instance", 0, "Instance ID")
	loanIssueCmd.Flags().Int64("reader", 0, "Reader ID")
	loanIssueCmd.Flags().String("issue-date", "", "Issue date (yyyy-mm-dd), defaults to today")
	loanIssueCmd.Flags().String("planned-return-date", "", "Planned return date (yyyy-mm-dd), overrides --days")
	loanIssueCmd.Flags().Int("days", defaultLoanDays, "Loan period in days")
	_ = loanIssueCmd.MarkFlagRequired("instance")
	_ = loanIssueCmd.MarkFlagRequired("reader")

	loanReturnCmd.Flags().Int64("loan", 0, "Loan ID")
	loanReturnCmd.Flags().String("date", "", "Return date (yyyy-mm-dd), defaults to today")
	_ = loanReturnCmd.MarkFlagRequired("loan")

	loanListCmd.Flags().Int64("reader", 0, "Reader ID")
	_ = loanListCmd.MarkFlagRequired("reader")

	loanCmd.AddCommand(loanIssueCmd, loanReturnCmd, loanListCmd, loanOverdueCmd)
	RootCmd.AddCommand(loanCmd)
}
