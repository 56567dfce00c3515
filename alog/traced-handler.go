package alog

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// newTracedHandler creates the main handler of the catalog.
// It does not output anything directly and relies on other slog.Handlers to do so.
// If no Handlers are provided via WithHandler, a default JSON handler logs to os.Stderr.
func newTracedHandler(opts ...LoggerOpt) *tracedHandler {
	level := &slog.LevelVar{}
	level.Set(slog.LevelInfo)

	handler := &tracedHandler{
		handlers: []slog.Handler{},
		level:    level,
	}

	for _, opt := range opts {
		opt(handler)
	}

	if len(handler.handlers) == 0 {
		handler.handlers = []slog.Handler{slog.NewJSONHandler(os.Stderr, getDefaultHandlerOptions())}
	}

	return handler
}

var _ slog.Handler = (*tracedHandler)(nil)

// tracedHandler logs to multiple handlers at once and correlates
// every record with the active span of the context.
type tracedHandler struct {
	// level reports the minimum record level that will be logged.
	// The level of individual handlers set via WithHandler is ignored.
	level *slog.LevelVar

	// handlers is a list which all get called with the same log message.
	handlers []slog.Handler
}

func (l *tracedHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= l.level.Level()
}

func (l *tracedHandler) Handle(ctx context.Context, record slog.Record) error {
	span := trace.SpanFromContext(ctx)

	record = addTraceAndSpanIDsToLogs(span, record)

	if attrs, ok := FromContext(ctx); ok {
		record.AddAttrs(attrs...)
	}

	addLogsToActiveSpanAsEvent(span, record)

	var retErr error

	for _, h := range l.handlers {
		err := h.Handle(ctx, record)
		retErr = errors.Join(retErr, err)
	}

	return retErr
}

func (l *tracedHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, len(l.handlers))

	for i, h := range l.handlers {
		handlers[i] = h.WithAttrs(attrs)
	}

	return &tracedHandler{handlers: handlers, level: l.level}
}

func (l *tracedHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, len(l.handlers))

	for i, h := range l.handlers {
		handlers[i] = h.WithGroup(name)
	}

	return &tracedHandler{handlers: handlers, level: l.level}
}

// SetLevel changes the level for all handlers set with WithHandler().
// Even the ones "copied" via any WithX method.
func (l *tracedHandler) SetLevel(level slog.Level) {
	l.level.Set(level)
}

// Level returns the log level of the handler.
func (l *tracedHandler) Level() slog.Level {
	return l.level.Level()
}

func addTraceAndSpanIDsToLogs(span trace.Span, record slog.Record) slog.Record {
	sCtx := span.SpanContext()

	if sCtx.HasTraceID() {
		record.AddAttrs(slog.String("traceID", sCtx.TraceID().String()))
	}

	if sCtx.HasSpanID() {
		record.AddAttrs(slog.String("spanID", sCtx.SpanID().String()))
	}

	return record
}

func addLogsToActiveSpanAsEvent(span trace.Span, record slog.Record) {
	if !span.IsRecording() {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String("log.severity", record.Level.String()),
		attribute.String("log.message", record.Message),
	}

	record.Attrs(func(a slog.Attr) bool {
		attrs = append(attrs, attribute.String(a.Key, a.Value.String()))

		return true // process next attr
	})

	span.AddEvent("log", trace.WithAttributes(attrs...))

	if record.Level >= slog.LevelError {
		span.SetStatus(codes.Error, record.Message)
	}
}

// LevelController offers control over the level of a logger at run time.
// Unwrap a logger to get access to it.
type LevelController interface {
	SetLevel(level slog.Level)
	Level() slog.Level
}

// Unwrap unwraps the given logger and returns its LevelController.
// In case the logger was not created by this package, it returns nil.
func Unwrap(logger Logger) LevelController { //nolint:ireturn // interface required to return a TestLogger and tracedHandler
	if l, ok := logger.(*TestLogger); ok {
		return l
	}

	if l, ok := logger.(*slog.Logger); ok {
		if h, ok := l.Handler().(*tracedHandler); ok {
			return h
		}
	}

	return nil
}
