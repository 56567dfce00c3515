package app

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// usecaseMeter records how often and how long use cases run.
type usecaseMeter struct {
	counter  metric.Int64Counter
	duration metric.Float64Histogram
}

func newUsecaseMeter(meterProvider metric.MeterProvider) usecaseMeter {
	meter := meterProvider.Meter(instrumentationName)

	counter, _ := meter.Int64Counter("usecases", metric.WithDescription("number of executed use cases"))
	duration, _ := meter.Float64Histogram("usecases_duration_seconds",
		metric.WithDescription("duration of executed use cases"),
		metric.WithUnit("s"),
	)

	return usecaseMeter{counter: counter, duration: duration}
}

// measure returns a func to be deferred, that records the use case with its outcome.
func (m usecaseMeter) measure(ctx context.Context, cmdName string) func(err error) {
	start := time.Now()

	return func(err error) {
		status := "success"
		if err != nil {
			status = "failure"
		}

		opt := metric.WithAttributes(
			attribute.String("command", cmdName),
			attribute.String("status", status),
		)

		m.counter.Add(ctx, 1, opt)
		m.duration.Record(ctx, time.Since(start).Seconds(), opt)
	}
}

func NewMeteredRequest[Req any, Res any](meterProvider metric.MeterProvider, req Request[Req, Res]) Request[Req, Res] {
	return &requestMeteringDecorator[Req, Res]{
		meter: newUsecaseMeter(meterProvider),
		base:  req,
	}
}

type requestMeteringDecorator[Req any, Res any] struct {
	meter usecaseMeter
	base  Request[Req, Res]
}

func (d *requestMeteringDecorator[Req, Res]) H(ctx context.Context, req Req) (Res, error) { //nolint:ireturn,lll // valid use of generics
	done := d.meter.measure(ctx, commandName(req))

	result, err := d.base.H(ctx, req)
	done(err)

	return result, err //nolint:wrapcheck // decorate but not change anything
}

func NewMeteredCommand[C any](meterProvider metric.MeterProvider, cmd Command[C]) Command[C] {
	return &commandMeteringDecorator[C]{
		meter: newUsecaseMeter(meterProvider),
		base:  cmd,
	}
}

type commandMeteringDecorator[C any] struct {
	meter usecaseMeter
	base  Command[C]
}

func (d *commandMeteringDecorator[C]) H(ctx context.Context, cmd C) error {
	done := d.meter.measure(ctx, commandName(cmd))

	err := d.base.H(ctx, cmd)
	done(err)

	return err //nolint:wrapcheck // decorate but not change anything
}

func NewMeteredQuery[Q any, Res any](meterProvider metric.MeterProvider, query Query[Q, Res]) Query[Q, Res] {
	return &queryMeteringDecorator[Q, Res]{
		meter: newUsecaseMeter(meterProvider),
		base:  query,
	}
}

type queryMeteringDecorator[Q any, Res any] struct {
	meter usecaseMeter
	base  Query[Q, Res]
}

func (d *queryMeteringDecorator[Q, Res]) H(ctx context.Context, query Q) (Res, error) { //nolint:ireturn,lll // valid use of generics
	done := d.meter.measure(ctx, commandName(query))

	res, err := d.base.H(ctx, query)
	done(err)

	return res, err //nolint:wrapcheck // decorate but not change anything
}
