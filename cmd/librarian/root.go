package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
	"github.com/AntonStoeckl/library-circulation-go/library/shell/config"
)

// Exit codes by error kind.
const (
	exitOK         = 0
	exitFailure    = 1
	exitValidation = 2
	exitNotFound   = 3
	exitConflict   = 4
	exitCanceled   = 5
)

var settings *viper.Viper

// RootCmd is the librarian base command.
var RootCmd = &cobra.Command{
	Use:           "librarian",
	Short:         "Library circulation: catalog, readers and loans",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := config.LoadEnvFiles("."); err != nil {
			return err
		}

		settings = config.NewViper()

		return settings.BindPFlags(cmd.Flags())
	},
}

func init() {
	flags := RootCmd.PersistentFlags()
	flags.String(config.KeyDSN, config.DefaultDSN, "PostgreSQL connection string")
	flags.String(config.KeyAdapter, config.DefaultAdapter, "Database adapter: pgx.pool, sql.db or sqlx.db")
	flags.String(config.KeyLogLevel, config.DefaultLogLevel, "Log level: debug, info, warn or error")
	flags.String(config.KeyLogFormat, config.DefaultLogFormat, "Log format: text or json")
	flags.StringP(config.KeyOutput, "o", config.DefaultOutput, "Output format: table or json")
	flags.String(config.KeyMetrics, config.DefaultMetrics, "Metrics and tracing: none, otel or prometheus")
}

// Execute runs the root command and exits with a code derived from the error kind.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := RootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	var usageErr usageError
	if errors.As(err, &usageErr) {
		return exitValidation
	}

	switch core.KindOf(err) {
	case core.KindNone:
		return exitOK
	case core.KindValidation:
		return exitValidation
	case core.KindNotFound:
		return exitNotFound
	case core.KindConflict:
		return exitConflict
	case core.KindCanceled, core.KindTimeout:
		return exitCanceled
	default:
		return exitFailure
	}
}

// usageError reports malformed flag values before any handler runs.
type usageError struct {
	flag string
	err  error
}

func (e usageError) Error() string {
	return fmt.Sprintf("invalid --%s: %v", e.flag, e.err)
}

func (e usageError) Unwrap() error {
	return e.err
}
