package observable_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
	"github.com/AntonStoeckl/library-circulation-go/library/shell"
	"github.com/AntonStoeckl/library-circulation-go/library/shell/observable"
	"github.com/AntonStoeckl/library-circulation-go/testutil/helper"
)

const testCommandType = "TestCommand"

type testCommand struct {
	BookID core.BookID
}

func (c testCommand) CommandType() string {
	return testCommandType
}

type mockCommandHandler struct {
	err   error
	calls int
}

func (h *mockCommandHandler) Handle(_ context.Context, command testCommand) (core.BookID, error) {
	h.calls++

	if h.err != nil {
		return 0, h.err
	}

	return command.BookID, nil
}

type commandSpies struct {
	metrics *helper.MetricsCollectorSpy
	tracing *helper.TracingCollectorSpy
	logger  *helper.ContextualLoggerSpy
}

func givenObservableCommandWrapper(
	t *testing.T,
	handler shell.CommandHandler[testCommand, core.BookID],
) (*observable.CommandWrapper[testCommand, core.BookID], commandSpies) {
	t.Helper()

	spies := commandSpies{
		metrics: helper.NewMetricsCollectorSpy(true),
		tracing: helper.NewTracingCollectorSpy(true),
		logger:  helper.NewContextualLoggerSpy(true),
	}

	wrapper, err := observable.NewCommandWrapper[testCommand, core.BookID](
		handler,
		observable.WithCommandMetrics[testCommand, core.BookID](spies.metrics),
		observable.WithCommandTracing[testCommand, core.BookID](spies.tracing),
		observable.WithCommandContextualLogging[testCommand, core.BookID](spies.logger),
	)
	require.NoError(t, err)

	return wrapper, spies
}

func Test_CommandWrapper_RejectsNilHandler(t *testing.T) {
	// act
	wrapper, err := observable.NewCommandWrapper[testCommand, core.BookID](nil)

	// assert
	assert.ErrorIs(t, err, observable.ErrNilHandler)
	assert.Nil(t, wrapper)
}

func Test_CommandWrapper_Success_DelegatesAndRecordsEverything(t *testing.T) {
	// arrange
	handler := &mockCommandHandler{}
	wrapper, spies := givenObservableCommandWrapper(t, handler)

	// act
	result, err := wrapper.Handle(context.Background(), testCommand{BookID: 42})

	// assert
	require.NoError(t, err)
	assert.Equal(t, core.BookID(42), result)
	assert.Equal(t, 1, handler.calls)

	assert.True(t, spies.metrics.HasDurationRecordForMetric(shell.CommandHandlerDurationMetric).
		WithLabel(shell.LogAttrCommandType, testCommandType).
		WithStatus(shell.StatusSuccess).
		Assert())
	assert.True(t, spies.metrics.HasCounterRecordForMetric(shell.CommandHandlerCallsMetric).
		WithStatus(shell.StatusSuccess).
		Assert())
	assert.Equal(t, 0, spies.metrics.CountCounterRecordsForMetric(shell.CommandHandlerRejectedMetric))

	assert.True(t, spies.tracing.HasSpanRecordForName(shell.SpanNameCommandHandle).
		WithStartAttribute(shell.LogAttrCommandType, testCommandType).
		WithStatus(shell.StatusSuccess).
		Assert())

	assert.True(t, spies.logger.HasLog("info", shell.LogMsgCommandStarted))
	assert.True(t, spies.logger.HasLogWithArg("info", shell.LogMsgCommandCompleted, shell.LogAttrCommandType, testCommandType))
	assert.Equal(t, 0, spies.logger.CountByLevel("warn"))
	assert.Equal(t, 0, spies.logger.CountByLevel("error"))
}

func Test_CommandWrapper_DomainError_IsRecordedAsRejected(t *testing.T) {
	// arrange
	handler := &mockCommandHandler{err: core.ErrInstanceNotOnShelf}
	wrapper, spies := givenObservableCommandWrapper(t, handler)

	// act
	_, err := wrapper.Handle(context.Background(), testCommand{BookID: 1})

	// assert
	assert.ErrorIs(t, err, core.ErrInstanceNotOnShelf)

	assert.True(t, spies.metrics.HasCounterRecordForMetric(shell.CommandHandlerCallsMetric).
		WithStatus(shell.StatusRejected).
		Assert())
	assert.True(t, spies.metrics.HasCounterRecordForMetric(shell.CommandHandlerRejectedMetric).
		WithLabel(shell.LogAttrErrorKind, string(core.KindConflict)).
		Assert())

	assert.True(t, spies.tracing.HasSpanRecordForName(shell.SpanNameCommandHandle).
		WithStatus(shell.StatusRejected).
		WithEndAttribute(shell.LogAttrErrorKind, string(core.KindConflict)).
		Assert())

	assert.True(t, spies.logger.HasLogWithArg("warn", shell.LogMsgCommandRejected, shell.LogAttrBusinessOutcome, shell.StatusRejected))
	assert.Equal(t, 0, spies.logger.CountByLevel("error"))
}

func Test_CommandWrapper_TechnicalError_IsRecordedAsError(t *testing.T) {
	// arrange
	handler := &mockCommandHandler{err: errors.New("connection reset")}
	wrapper, spies := givenObservableCommandWrapper(t, handler)

	// act
	_, err := wrapper.Handle(context.Background(), testCommand{BookID: 1})

	// assert
	assert.Error(t, err)
	assert.True(t, spies.metrics.HasCounterRecordForMetric(shell.CommandHandlerCallsMetric).
		WithStatus(shell.StatusError).
		Assert())
	assert.Equal(t, 0, spies.metrics.CountCounterRecordsForMetric(shell.CommandHandlerRejectedMetric))
	assert.True(t, spies.tracing.HasSpanRecordForName(shell.SpanNameCommandHandle).
		WithStatus(shell.StatusError).
		WithEndAttribute(shell.LogAttrError, "connection reset").
		Assert())
	assert.True(t, spies.logger.HasLogWithArg("error", shell.LogMsgCommandFailed, shell.LogAttrErrorKind, string(core.KindStorage)))
}

func Test_CommandWrapper_CanceledContext_IsRecordedAsCanceled(t *testing.T) {
	// arrange
	handler := &mockCommandHandler{err: context.Canceled}
	wrapper, spies := givenObservableCommandWrapper(t, handler)

	// act
	_, err := wrapper.Handle(context.Background(), testCommand{BookID: 1})

	// assert
	assert.ErrorIs(t, err, context.Canceled)
	assert.True(t, spies.metrics.HasCounterRecordForMetric(shell.CommandHandlerCanceledMetric).
		WithLabel(shell.LogAttrCommandType, testCommandType).
		Assert())
	assert.Equal(t, 0, spies.metrics.CountCounterRecordsForMetric(shell.CommandHandlerTimeoutMetric))
}

func Test_CommandWrapper_DeadlineExceeded_IsRecordedAsTimeout(t *testing.T) {
	// arrange
	handler := &mockCommandHandler{err: context.DeadlineExceeded}
	wrapper, spies := givenObservableCommandWrapper(t, handler)

	// act
	_, err := wrapper.Handle(context.Background(), testCommand{BookID: 1})

	// assert
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.True(t, spies.metrics.HasCounterRecordForMetric(shell.CommandHandlerTimeoutMetric).
		WithStatus(shell.StatusTimeout).
		Assert())
}

func Test_CommandWrapper_WithoutCollectors_OnlyDelegates(t *testing.T) {
	// arrange
	handler := &mockCommandHandler{}
	wrapper, err := observable.NewCommandWrapper[testCommand, core.BookID](handler)
	require.NoError(t, err)

	// act
	result, err := wrapper.Handle(context.Background(), testCommand{BookID: 7})

	// assert
	require.NoError(t, err)
	assert.Equal(t, core.BookID(7), result)
	assert.Equal(t, 1, handler.calls)
}
