package alog

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// NewTest returns a logger writing human-readable text into w, at the lowest level.
// Use it in tests that assert on the raw output.
func NewTest(w io.Writer) *slog.Logger {
	return New(
		WithLevel(LevelDebug),
		WithHandler(slog.NewTextHandler(w, getDebugHandlerOptions())),
	)
}

// Test returns a logger for unit tests, that records every line it logs.
// The assertions follow stretchr/testify: each returns whether it passed,
// so a test can decide to stop making further assertions.
func Test(t *testing.T) *TestLogger {
	if t == nil {
		panic("alog: Test needs a *testing.T")
	}

	rec := &lineRecorder{}

	return &TestLogger{
		Logger: NewTest(rec),
		t:      t,
		rec:    rec,
	}
}

// TestLogger can be injected wherever a Logger is expected.
type TestLogger struct {
	*slog.Logger

	t   *testing.T
	rec *lineRecorder
}

var (
	_ Logger          = (*TestLogger)(nil)
	_ LevelController = (*TestLogger)(nil)
)

func (l *TestLogger) SetLevel(level slog.Level) {
	Unwrap(l.Logger).SetLevel(level)
}

func (l *TestLogger) Level() slog.Level {
	return Unwrap(l.Logger).Level()
}

// String returns the whole output logged so far.
func (l *TestLogger) String() string {
	return strings.Join(l.rec.snapshot(), "")
}

// Lines returns each logged line, in the order they were logged.
func (l *TestLogger) Lines() []string {
	return l.rec.snapshot()
}

// Empty asserts that nothing was logged.
func (l *TestLogger) Empty(msgAndArgs ...any) bool {
	l.t.Helper()

	if n := len(l.rec.snapshot()); n > 0 {
		return assert.Fail(l.t, fmt.Sprintf("logger should be empty, but has %d line(s)", n), msgAndArgs...)
	}

	return true
}

// NotEmpty asserts that at least one line was logged.
func (l *TestLogger) NotEmpty(msgAndArgs ...any) bool {
	l.t.Helper()

	if len(l.rec.snapshot()) == 0 {
		return assert.Fail(l.t, "logger should not be empty", msgAndArgs...)
	}

	return true
}

// Contains asserts that at least one line contains substr.
func (l *TestLogger) Contains(substr string, msgAndArgs ...any) bool {
	l.t.Helper()

	if l.rec.find(substr) < 0 {
		return assert.Fail(l.t, "no logged line contains: "+substr, msgAndArgs...)
	}

	return true
}

// NotContains asserts that no line contains substr.
func (l *TestLogger) NotContains(substr string, msgAndArgs ...any) bool {
	l.t.Helper()

	if i := l.rec.find(substr); i >= 0 {
		return assert.Fail(l.t, fmt.Sprintf("line %d should not contain: %s", i, substr), msgAndArgs...)
	}

	return true
}

// Total asserts that exactly total lines were logged.
func (l *TestLogger) Total(total int, msgAndArgs ...any) bool {
	l.t.Helper()

	if n := len(l.rec.snapshot()); n != total {
		return assert.Fail(l.t, fmt.Sprintf("logger should have %d line(s), but has %d", total, n), msgAndArgs...)
	}

	return true
}

// lineRecorder keeps every Write as one line.
// slog handlers write each record with a single call.
type lineRecorder struct {
	mu    sync.Mutex
	lines []string
}

func (r *lineRecorder) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lines = append(r.lines, string(p))

	return len(p), nil
}

func (r *lineRecorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string{}, r.lines...)
}

// find returns the index of the first line containing substr or -1.
func (r *lineRecorder) find(substr string) int {
	for i, line := range r.snapshot() {
		if strings.Contains(line, substr) {
			return i
		}
	}

	return -1
}
