// Package alog is the structured logging of the catalog, built on log/slog.
//
// All loggers are plain *slog.Logger values, so they can be used with any code
// expecting the standard library logger.
package alog

import (
	"context"
	"log/slog"
	"os"
)

// Logger interface is a subset of slog.Logger, with the aim to:
//  1. encourage the use of the methods offering context.Context, so that tracing information can be correlated.
//  2. encourage the use of the levels `DEBUG` and `INFO` over others, but without preventing them, see:
//     https://dave.cheney.net/2015/11/05/lets-talk-about-logging
type Logger interface {
	Log(ctx context.Context, level slog.Level, msg string, args ...any)
	LogAttrs(ctx context.Context, level slog.Level, msg string, attrs ...slog.Attr)
	DebugContext(ctx context.Context, msg string, args ...any)
	InfoContext(ctx context.Context, msg string, args ...any)

	With(args ...any) *slog.Logger
	WithGroup(name string) *slog.Logger
}

var _ Logger = (*slog.Logger)(nil)

const (
	// LevelInfo is used to see what is going on inside the catalog's infrastructure.
	LevelInfo = slog.Level(-8)

	// LevelDebug is used by developers, if you really want to know what is going on.
	LevelDebug = slog.Level(-12)
)

// MapLogLevelsToName replaces the default name of a custom log level with a speaking name.
func MapLogLevelsToName(_ []string, attr slog.Attr) slog.Attr {
	if attr.Key == slog.LevelKey {
		level, _ := attr.Value.Any().(slog.Level)

		levelLabel, exists := getLevelNames()[level]
		if !exists {
			levelLabel = level.String()
		}

		attr.Value = slog.StringValue(levelLabel)
	}

	return attr
}

// getLevelNames maps the custom log levels to human-readable names.
func getLevelNames() map[slog.Leveler]string {
	return map[slog.Leveler]string{
		LevelInfo:  "CATALOG:INFO",
		LevelDebug: "CATALOG:DEBUG",
	}
}

// LoggerOpt allows to initialise a logger with custom options.
type LoggerOpt func(logger *tracedHandler)

// WithHandler adds a slog.Handler to be logged to.
// You can set as many as you want.
func WithHandler(h slog.Handler) LoggerOpt {
	return func(l *tracedHandler) {
		l.handlers = append(l.handlers, h)
	}
}

// WithLevel initialises the logger with a starting level.
// To change the level at runtime use Unwrap(logger).SetLevel(LevelInfo).
func WithLevel(level slog.Level) LoggerOpt {
	return func(l *tracedHandler) {
		l.level.Set(level)
	}
}

// New returns a production ready logger.
//
// If no options are given it creates a default handler, logging JSON to Stderr.
// Otherwise, use WithHandler to set your own loggers.
func New(opts ...LoggerOpt) *slog.Logger {
	return slog.New(newTracedHandler(opts...))
}

// NewDevelopment returns a logger ready for local development purposes,
// logging human-readable text to Stderr.
func NewDevelopment() *slog.Logger {
	return New(
		WithLevel(slog.LevelDebug),
		WithHandler(slog.NewTextHandler(os.Stderr, getDebugHandlerOptions())),
	)
}

func getDefaultHandlerOptions() *slog.HandlerOptions {
	return &slog.HandlerOptions{
		AddSource:   true,
		Level:       LevelDebug, // this level is ignored, tracedHandler's level is used for all handlers.
		ReplaceAttr: MapLogLevelsToName,
	}
}

// getDebugHandlerOptions is to keep the log output more readable, by removing not essential keys.
func getDebugHandlerOptions() *slog.HandlerOptions {
	opt := getDefaultHandlerOptions()
	opt.AddSource = false

	return opt
}

type ctxKey string

const ctxAttr ctxKey = "catalog.log.attr"

// AddAttr adds an attribute to the context.
// All records logged with this context carry the attribute,
// e.g. a request id set by a middleware.
func AddAttr(ctx context.Context, attr slog.Attr) context.Context {
	attrs, _ := FromContext(ctx)

	return context.WithValue(ctx, ctxAttr, append(attrs[:len(attrs):len(attrs)], attr))
}

// FromContext returns the attributes added via AddAttr.
func FromContext(ctx context.Context) ([]slog.Attr, bool) {
	attrs, ok := ctx.Value(ctxAttr).([]slog.Attr)

	return attrs, ok
}
