package app

import (
	"context"
	"log/slog"

	"github.com/go-arrower/catalog/alog"
)

// NewLoggedRequest logs the start of every call at debug level and its outcome,
// a failure with the error. Each line carries the use case as command, e.g.
// command=pokedex.application.SeedCommand for the seed of the pokedex Context.
// The attributes of the logger, like context=pokedex set by the Context's init, are kept.
func NewLoggedRequest[Req any, Res any](logger alog.Logger, handler Request[Req, Res]) Request[Req, Res] {
	return &requestLoggingDecorator[Req, Res]{
		logger: logger,
		base:   handler,
	}
}

type requestLoggingDecorator[Req any, Res any] struct {
	logger alog.Logger
	base   Request[Req, Res]
}

func (d *requestLoggingDecorator[Req, Res]) H(ctx context.Context, req Req) (Res, error) { //nolint:ireturn,lll // valid use of generics
	cmdName := commandName(req)

	d.logger.DebugContext(ctx, "executing request", slog.String("command", cmdName))

	res, err := d.base.H(ctx, req)
	logResult(ctx, d.logger, "request", cmdName, err)

	return res, err //nolint:wrapcheck // decorate but not change anything
}

// NewLoggedCommand logs like NewLoggedRequest, e.g. for deleting a brand or car.
func NewLoggedCommand[C any](logger alog.Logger, handler Command[C]) Command[C] {
	return &commandLoggingDecorator[C]{
		logger: logger,
		base:   handler,
	}
}

type commandLoggingDecorator[C any] struct {
	logger alog.Logger
	base   Command[C]
}

func (d *commandLoggingDecorator[C]) H(ctx context.Context, cmd C) error {
	cmdName := commandName(cmd)

	d.logger.DebugContext(ctx, "executing command", slog.String("command", cmdName))

	err := d.base.H(ctx, cmd)
	logResult(ctx, d.logger, "command", cmdName, err)

	return err //nolint:wrapcheck // decorate but not change anything
}

func NewLoggedQuery[Q any, Res any](logger alog.Logger, handler Query[Q, Res]) Query[Q, Res] {
	return &queryLoggingDecorator[Q, Res]{
		logger: logger,
		base:   handler,
	}
}

type queryLoggingDecorator[Q any, Res any] struct {
	logger alog.Logger
	base   Query[Q, Res]
}

func (d *queryLoggingDecorator[Q, Res]) H(ctx context.Context, query Q) (Res, error) { //nolint:ireturn,lll // valid use of generics
	cmdName := commandName(query)

	d.logger.DebugContext(ctx, "executing query", slog.String("command", cmdName))

	res, err := d.base.H(ctx, query)
	logResult(ctx, d.logger, "query", cmdName, err)

	return res, err //nolint:wrapcheck // decorate but not change anything
}

func logResult(ctx context.Context, logger alog.Logger, kind string, cmdName string, err error) {
	if err != nil {
		logger.DebugContext(ctx, "failed to execute "+kind,
			slog.String("command", cmdName),
			slog.String("error", err.Error()),
		)

		return
	}

	logger.DebugContext(ctx, kind+" executed successfully", slog.String("command", cmdName))
}
