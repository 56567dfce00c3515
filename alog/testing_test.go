package alog_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-arrower/catalog/alog"
)

func TestTest(t *testing.T) {
	t.Parallel()

	t.Run("nil panics", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() { alog.Test(nil) })
	})

	t.Run("logs at debug level", func(t *testing.T) {
		t.Parallel()

		logger := alog.Test(t)
		logger.DebugContext(ctx, "seed started")

		assert.Contains(t, logger.String(), `msg="seed started"`)
	})

	t.Run("records groups", func(t *testing.T) {
		t.Parallel()

		logger := alog.Test(t)
		logger.WithGroup("pokedex").DebugContext(ctx, "fetch", "url", "https://pokeapi.co")

		logger.Contains("pokedex.url=https://pokeapi.co")
	})

	t.Run("lines keep their order", func(t *testing.T) {
		t.Parallel()

		logger := alog.Test(t)
		logger.DebugContext(ctx, "brands filled")
		logger.DebugContext(ctx, "cars filled")

		lines := logger.Lines()
		assert.Len(t, lines, 2)
		assert.Contains(t, lines[0], `level=DEBUG msg="brands filled"`)
		assert.Contains(t, lines[1], `level=DEBUG msg="cars filled"`)
	})

	t.Run("level can be raised", func(t *testing.T) {
		t.Parallel()

		logger := alog.Test(t)
		logger.SetLevel(slog.LevelInfo)
		logger.DebugContext(ctx, "hidden")

		assert.Equal(t, slog.LevelInfo, logger.Level())
		logger.Empty()
	})
}

func TestTestLogger_Assertions(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		log    bool
		assert func(l *alog.TestLogger) bool
		pass   bool
	}{
		"empty on empty":       {false, func(l *alog.TestLogger) bool { return l.Empty() }, true},
		"empty on logged":      {true, func(l *alog.TestLogger) bool { return l.Empty() }, false},
		"not empty on empty":   {false, func(l *alog.TestLogger) bool { return l.NotEmpty() }, false},
		"not empty on logged":  {true, func(l *alog.TestLogger) bool { return l.NotEmpty() }, true},
		"contains logged":      {true, func(l *alog.TestLogger) bool { return l.Contains("car created") }, true},
		"contains other":       {true, func(l *alog.TestLogger) bool { return l.Contains("car deleted") }, false},
		"not contains other":   {true, func(l *alog.TestLogger) bool { return l.NotContains("car deleted") }, true},
		"not contains logged":  {true, func(l *alog.TestLogger) bool { return l.NotContains("car created") }, false},
		"total matches":        {true, func(l *alog.TestLogger) bool { return l.Total(1) }, true},
		"total does not match": {true, func(l *alog.TestLogger) bool { return l.Total(2) }, false},
		"total zero on empty":  {false, func(l *alog.TestLogger) bool { return l.Total(0) }, true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			// a separate T, so that failing assertions do not fail this test
			logger := alog.Test(new(testing.T))
			if tt.log {
				logger.InfoContext(ctx, "car created")
			}

			assert.Equal(t, tt.pass, tt.assert(logger))
		})
	}
}
