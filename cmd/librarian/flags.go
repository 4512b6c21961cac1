package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
)

// defaultLoanDays is the loan period used when no planned return date is given.
const defaultLoanDays = 14

// now is replaced in tests.
var now = time.Now

// dateFlag parses a yyyy-mm-dd flag, returning fallback when the flag is empty.
func dateFlag(cmd *cobra.Command, name string, fallback time.Time) (time.Time, error) {
	value, err := cmd.Flags().GetString(name)
	if err != nil {
		return time.Time{}, usageError{flag: name, err: err}
	}

	if value == "" {
		return fallback, nil
	}

	date, err := core.ParseDate(value)
	if err != nil {
		return time.Time{}, usageError{flag: name, err: err}
	}

	return date, nil
}

// udkFlag returns nil when no UDK code is given.
func udkFlag(cmd *cobra.Command, name string) (*core.UDKID, error) {
	id, err := cmd.Flags().GetInt64(name)
	if err != nil {
		return nil, usageError{flag: name, err: err}
	}

	if id == 0 {
		return nil, nil
	}

	return &id, nil
}

// plannedReturnDate resolves --planned-return-date, falling back to issueDate plus --days.
func plannedReturnDate(cmd *cobra.Command, issueDate time.Time) (time.Time, error) {
	days, err := cmd.Flags().GetInt("days")
	if err != nil {
		return time.Time{}, usageError{flag: "days", err: err}
	}

	return dateFlag(cmd, "planned-return-date", issueDate.AddDate(0, 0, days))
}

func today() time.Time {
	return core.ToDate(now())
}
