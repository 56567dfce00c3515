package app

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "catalog.application"

// NewTracedRequest starts a span named usecase for every call, with the
// command attribute set as in the logs, e.g. dealership.application.CreateBrandRequest.
// A span started by otelecho for the HTTP request becomes its parent,
// so a call to POST /api/seed/pokedex shows as one trace. Errors mark the span as failed.
func NewTracedRequest[Req any, Res any](traceProvider trace.TracerProvider, req Request[Req, Res]) Request[Req, Res] {
	return &requestTracingDecorator[Req, Res]{
		tracer: traceProvider.Tracer(instrumentationName),
		base:   req,
	}
}

type requestTracingDecorator[Req any, Res any] struct {
	tracer trace.Tracer
	base   Request[Req, Res]
}

func (d *requestTracingDecorator[Req, Res]) H(ctx context.Context, req Req) (Res, error) { //nolint:ireturn,lll // valid use of generics
	newCtx, span := startSpan(ctx, d.tracer, commandName(req))
	defer span.End()

	result, err := d.base.H(newCtx, req)
	recordError(span, err)

	return result, err //nolint:wrapcheck // decorate but not change anything
}

func NewTracedCommand[C any](traceProvider trace.TracerProvider, cmd Command[C]) Command[C] {
	return &commandTracingDecorator[C]{
		tracer: traceProvider.Tracer(instrumentationName),
		base:   cmd,
	}
}

type commandTracingDecorator[C any] struct {
	tracer trace.Tracer
	base   Command[C]
}

func (d *commandTracingDecorator[C]) H(ctx context.Context, cmd C) error {
	newCtx, span := startSpan(ctx, d.tracer, commandName(cmd))
	defer span.End()

	err := d.base.H(newCtx, cmd)
	recordError(span, err)

	return err //nolint:wrapcheck // decorate but not change anything
}

func NewTracedQuery[Q any, Res any](traceProvider trace.TracerProvider, query Query[Q, Res]) Query[Q, Res] {
	return &queryTracingDecorator[Q, Res]{
		tracer: traceProvider.Tracer(instrumentationName),
		base:   query,
	}
}

type queryTracingDecorator[Q any, Res any] struct {
	tracer trace.Tracer
	base   Query[Q, Res]
}

func (d *queryTracingDecorator[Q, Res]) H(ctx context.Context, query Q) (Res, error) { //nolint:ireturn,lll // valid use of generics
	newCtx, span := startSpan(ctx, d.tracer, commandName(query))
	defer span.End()

	result, err := d.base.H(newCtx, query)
	recordError(span, err)

	return result, err //nolint:wrapcheck // decorate but not change anything
}

func startSpan(ctx context.Context, tracer trace.Tracer, cmdName string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "usecase",
		trace.WithAttributes(attribute.String("command", cmdName)),
	)
}

func recordError(span trace.Span, err error) {
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
	}
}
