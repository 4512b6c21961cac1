package main

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
)

func Test_ExitCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"no error", nil, exitOK},
		{"validation", core.NewValidationError("title", "must not be blank"), exitValidation},
		{"not found", core.ErrReaderNotFound, exitNotFound},
		{"conflict", fmt.Errorf("issuing: %w", core.ErrConflict), exitConflict},
		{"canceled", context.Canceled, exitCanceled},
		{"timeout", context.DeadlineExceeded, exitCanceled},
		{"usage", usageError{flag: "days", err: errors.New("bad")}, exitValidation},
		{"storage", errors.New("connection refused"), exitFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, exitCode(tc.err))
		})
	}
}

func Test_RootCmd_RegistersAllGroups(t *testing.T) {
	expected := map[string][]string{
		"loan":     {"issue", "return", "list", "overdue"},
		"book":     {"add", "edit", "remove", "catalog", "availability"},
		"instance": {"add", "remove", "list"},
		"author":   {"add", "rename", "remove", "list"},
		"udk":      {"add", "edit", "remove", "list"},
		"reader":   {"register", "edit", "remove", "list"},
		"schema":   {"ensure", "truncate"},
	}

	for group, subcommands := range expected {
		for _, sub := range subcommands {
			found, _, err := RootCmd.Find([]string{group, sub})
			require.NoError(t, err, "%s %s", group, sub)
			assert.Equal(t, sub, found.Name())
			assert.NotNil(t, found.RunE, "%s %s", group, sub)
		}
	}
}

func Test_SchemaTruncate_RequiresConfirmation(t *testing.T) {
	// act
	err := schemaTruncateCmd.RunE(schemaTruncateCmd, nil)

	// assert
	require.ErrorIs(t, err, errTruncateNotConfirmed)
	assert.Equal(t, exitValidation, exitCode(err))
}
