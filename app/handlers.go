// Package app provides common decorators for use cases in the application layer.
package app

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/go-arrower/catalog/alog"
)

// Request can produce side effects and return data.
type Request[Req any, Res any] interface {
	H(ctx context.Context, req Req) (Res, error)
}

// Command produces side effects, e.g. mutate state.
type Command[C any] interface {
	H(ctx context.Context, cmd C) error
}

// Query does not produce side effects and returns data.
type Query[Q any, Res any] interface {
	H(ctx context.Context, query Q) (Res, error)
}

// Instrumentation bundles the dependencies every instrumented use case needs.
type Instrumentation struct {
	TraceProvider trace.TracerProvider
	MeterProvider metric.MeterProvider
	Logger        alog.Logger
	Validate      *validator.Validate
}

// NewInstrumentedRequest is a convenience helper for easy dependency setup.
// The order of dependencies represents the order of calling:
// tracing, metering, logging, validation and then the request itself.
func NewInstrumentedRequest[Req any, Res any](in Instrumentation, req Request[Req, Res]) Request[Req, Res] {
	return NewTracedRequest(in.TraceProvider,
		NewMeteredRequest(in.MeterProvider,
			NewLoggedRequest(in.Logger,
				NewValidatedRequest(in.Validate, req))))
}

// NewInstrumentedCommand is a convenience helper for easy dependency setup.
// The order of dependencies represents the order of calling.
func NewInstrumentedCommand[C any](in Instrumentation, cmd Command[C]) Command[C] {
	return NewTracedCommand(in.TraceProvider,
		NewMeteredCommand(in.MeterProvider,
			NewLoggedCommand(in.Logger,
				NewValidatedCommand(in.Validate, cmd))))
}

// NewInstrumentedQuery is a convenience helper for easy dependency setup.
// The order of dependencies represents the order of calling.
func NewInstrumentedQuery[Q any, Res any](in Instrumentation, query Query[Q, Res]) Query[Q, Res] {
	return NewTracedQuery(in.TraceProvider,
		NewMeteredQuery(in.MeterProvider,
			NewLoggedQuery(in.Logger,
				NewValidatedQuery(in.Validate, query))))
}

// commandName extracts a printable name from cmd in the format of: context.packageName.structName.
// If cmd is not defined inside a Context, the format is packageName.structName.
//
// The use case function can not be used, as it is anonymous / a closure returned by the use case constructor.
// Accessing the function name with runtime.Caller(4) will always lead to ".func1".
func commandName(cmd any) string {
	pkgPath := reflect.TypeOf(cmd).PkgPath()

	// example: github.com/go-arrower/catalog/contexts/pokedex/internal/application
	// take string after /contexts/ and then take string before /internal/
	_, afterContexts, hasContext := strings.Cut(pkgPath, "/contexts/")
	if hasContext {
		if context, _, ok := strings.Cut(afterContexts, "/internal/"); ok {
			return fmt.Sprintf("%s.%T", context, cmd)
		}
	}

	return fmt.Sprintf("%T", cmd)
}
