package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/AntonStoeckl/library-circulation-go/library/shell"
	"github.com/AntonStoeckl/library-circulation-go/library/shell/config"
	"github.com/AntonStoeckl/library-circulation-go/library/shell/observable"
	"github.com/AntonStoeckl/library-circulation-go/library/shell/repository"
	"github.com/AntonStoeckl/library-circulation-go/store/postgresengine"
)

const logAttrOperationID = "operation_id"

// app is everything one librarian invocation needs. It lives for a single command.
type app struct {
	settings  config.App
	logger    *slog.Logger
	telemetry Telemetry
	store     postgresengine.Store
	repo      repository.Repository
	out       io.Writer
	errOut    io.Writer
	closeDB   func()
}

func openApp(cmd *cobra.Command) (*app, error) {
	if settings == nil {
		return nil, errors.New("settings are not loaded")
	}

	cfg, err := config.Load(settings)
	if err != nil {
		return nil, usageError{flag: "config", err: err}
	}

	handler := newLogHandler(cfg, cmd.ErrOrStderr()).
		WithAttrs([]slog.Attr{slog.String(logAttrOperationID, uuid.NewString())})
	logger := slog.New(handler)

	telemetry, err := NewTelemetry(cfg.Metrics, handler)
	if err != nil {
		return nil, err
	}

	st, closeDB, err := openStore(cmd.Context(), cfg, storeOptions(logger, telemetry)...)
	if err != nil {
		return nil, err
	}

	return &app{
		settings:  cfg,
		logger:    logger,
		telemetry: telemetry,
		store:     st,
		repo:      repository.New(),
		out:       cmd.OutOrStdout(),
		errOut:    cmd.ErrOrStderr(),
		closeDB:   closeDB,
	}, nil
}

// close flushes telemetry and releases the database handle.
func (a *app) close(ctx context.Context) error {
	defer a.closeDB()

	return a.telemetry.Flush(ctx, a.errOut)
}

func (a *app) render(v any) error {
	return render(a.out, a.settings.Output, v)
}

func newLogHandler(cfg config.App, w io.Writer) slog.Handler {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}

	if cfg.LogFormat == config.LogFormatJSON {
		return slog.NewJSONHandler(w, opts)
	}

	return slog.NewTextHandler(w, opts)
}

func storeOptions(logger *slog.Logger, telemetry Telemetry) []postgresengine.Option {
	var options []postgresengine.Option

	if telemetry.ContextualLogger != nil {
		options = append(options, postgresengine.WithContextualLogger(telemetry.ContextualLogger))
	} else {
		options = append(options, postgresengine.WithLogger(logger))
	}

	if telemetry.MetricsCollector != nil {
		options = append(options, postgresengine.WithMetrics(telemetry.MetricsCollector))
	}

	if telemetry.TracingCollector != nil {
		options = append(options, postgresengine.WithTracing(telemetry.TracingCollector))
	}

	return options
}

func openStore(ctx context.Context, cfg config.App, options ...postgresengine.Option) (postgresengine.Store, func(), error) {
	switch cfg.Adapter {
	case config.AdapterSQLDB:
		db, err := config.PostgresSQLDB(ctx, cfg.DSN)
		if err != nil {
			return postgresengine.Store{}, nil, err
		}

		st, err := postgresengine.NewStoreFromSQLDB(db, options...)
		if err != nil {
			_ = db.Close()
			return postgresengine.Store{}, nil, err
		}

		return st, func() { _ = db.Close() }, nil

	case config.AdapterSQLXDB:
		db, err := config.PostgresSQLX(ctx, cfg.DSN)
		if err != nil {
			return postgresengine.Store{}, nil, err
		}

		st, err := postgresengine.NewStoreFromSQLX(db, options...)
		if err != nil {
			_ = db.Close()
			return postgresengine.Store{}, nil, err
		}

		return st, func() { _ = db.Close() }, nil

	case config.AdapterPGXPool:
		pool, err := config.PostgresPGXPool(ctx, cfg.DSN)
		if err != nil {
			return postgresengine.Store{}, nil, err
		}

		st, err := postgresengine.NewStoreFromPGXPool(pool, options...)
		if err != nil {
			pool.Close()
			return postgresengine.Store{}, nil, err
		}

		return st, pool.Close, nil

	default:
		return postgresengine.Store{}, nil, fmt.Errorf("unsupported adapter %q", cfg.Adapter)
	}
}

// runCommand opens the app, runs the command through an observable wrapper and renders the result.
func runCommand[C shell.Command, R any](
	cmd *cobra.Command,
	command C,
	newHandler func(a *app) shell.CommandHandler[C, R],
) error {
	return withApp(cmd, func(a *app) error {
		handler, err := observable.NewCommandWrapper(newHandler(a), commandOptions[C, R](a)...)
		if err != nil {
			return err
		}

		result, err := handler.Handle(cmd.Context(), command)
		if err != nil {
			return err
		}

		return a.render(result)
	})
}

// runQuery opens the app, runs the query through an observable wrapper and renders the result.
func runQuery[Q shell.Query, R any](
	cmd *cobra.Command,
	query Q,
	newHandler func(a *app) shell.QueryHandler[Q, R],
) error {
	return withApp(cmd, func(a *app) error {
		handler, err := observable.NewQueryWrapper(newHandler(a), queryOptions[Q, R](a)...)
		if err != nil {
			return err
		}

		result, err := handler.Handle(cmd.Context(), query)
		if err != nil {
			return err
		}

		return a.render(result)
	})
}

func withApp(cmd *cobra.Command, run func(a *app) error) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}

	runErr := run(a)
	closeErr := a.close(context.WithoutCancel(cmd.Context()))

	if closeErr != nil {
		a.logger.Error("flushing telemetry failed", "error", closeErr)
	}

	return runErr
}

func commandOptions[C shell.Command, R any](a *app) []observable.CommandOption[C, R] {
	options := []observable.CommandOption[C, R]{observable.WithCommandLogging[C, R](a.logger)}

	if a.telemetry.ContextualLogger != nil {
		options = append(options, observable.WithCommandContextualLogging[C, R](a.telemetry.ContextualLogger))
	}

	if a.telemetry.MetricsCollector != nil {
		options = append(options, observable.WithCommandMetrics[C, R](a.telemetry.MetricsCollector))
	}

	if a.telemetry.TracingCollector != nil {
		options = append(options, observable.WithCommandTracing[C, R](a.telemetry.TracingCollector))
	}

	return options
}

func queryOptions[Q shell.Query, R any](a *app) []observable.QueryOption[Q, R] {
	options := []observable.QueryOption[Q, R]{observable.WithQueryLogging[Q, R](a.logger)}

	if a.telemetry.ContextualLogger != nil {
		options = append(options, observable.WithQueryContextualLogging[Q, R](a.telemetry.ContextualLogger))
	}

	if a.telemetry.MetricsCollector != nil {
		options = append(options, observable.WithQueryMetrics[Q, R](a.telemetry.MetricsCollector))
	}

	if a.telemetry.TracingCollector != nil {
		options = append(options, observable.WithQueryTracing[Q, R](a.telemetry.TracingCollector))
	}

	return options
}
