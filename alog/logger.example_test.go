package alog_test

import (
	"context"
	"log/slog"
	"os"

	"go.opentelemetry.io/otel/trace"

	"github.com/go-arrower/catalog/alog"
)

func Example_requestScopedAttributes() {
	// fixed ids, so the output can be asserted
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    trace.TraceID{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef, 0xfe, 0xdc, 0xba, 0x98, 0x76, 0x54, 0x32, 0x10},
		SpanID:     trace.SpanID{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef},
		TraceFlags: trace.FlagsSampled,
	}))
	ctx = alog.AddAttr(ctx, slog.String("request_id", "42"))

	logger := alog.New(
		alog.WithLevel(alog.LevelDebug),
		alog.WithHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{ReplaceAttr: withoutTime})),
	)

	logger.With("context", "pokedex").LogAttrs(ctx, alog.LevelInfo, "seed started",
		slog.String("url", "https://pokeapi.co/api/v2/pokemon"),
	)
	logger.WithGroup("fetch").InfoContext(ctx, "done", slog.Int("status", 200))

	// Output:
	// level=CATALOG:INFO msg="seed started" context=pokedex url=https://pokeapi.co/api/v2/pokemon traceID=0123456789abcdeffedcba9876543210 spanID=0123456789abcdef request_id=42
	// level=INFO msg=done fetch.status=200 fetch.traceID=0123456789abcdeffedcba9876543210 fetch.spanID=0123456789abcdef fetch.request_id=42
}

// withoutTime drops the time to have a deterministic output and names the custom levels.
func withoutTime(groups []string, attr slog.Attr) slog.Attr {
	if attr.Key == slog.TimeKey && len(groups) == 0 {
		return slog.Attr{}
	}

	return alog.MapLogLevelsToName(groups, attr)
}
