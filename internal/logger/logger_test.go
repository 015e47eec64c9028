package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedLogger(level, format string) (*Logger, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	l := NewLogger(Options{
		Level:  level,
		Format: format,
		Role:   "test-role",
		RunID:  "run-1",
		Stdout: &stdout,
		Stderr: &stderr,
	})
	return l, &stdout, &stderr
}

// stackErr is an error carrying a fake goroutine stack.
type stackErr struct{ stack string }

func (e *stackErr) Error() string { return "panicked" }
func (e *stackErr) Stack() []byte { return []byte(e.stack) }

// ── NewLogger ─────────────────────────────────────────────────────────────────

// TestNewLogger_NotNil verifies that NewLogger returns a non-nil *Logger even
// with zero options.
func TestNewLogger_NotNil(t *testing.T) {
	l := NewLogger(Options{})
	require.NotNil(t, l)
	assert.Equal(t, zerolog.InfoLevel, l.GetLevel())
}

// TestNewLogger_ConsolePrefixes verifies the "[LEVEL] message" layout and the
// stdout/stderr split.
func TestNewLogger_ConsolePrefixes(t *testing.T) {
	l, stdout, stderr := newBufferedLogger(LevelDebug, FormatConsole)

	l.Info().Msg("Using input: in.json")
	l.Debug().Msg("Running at /bin/actor")
	l.Error().Msg("Input file does not exist")

	assert.Equal(t, "[INFO] Using input: in.json\n[DEBUG] Running at /bin/actor\n", stdout.String())
	assert.Equal(t, "[ERROR] Input file does not exist\n", stderr.String())
}

// TestNewLogger_LevelGating verifies which levels each configured level emits.
func TestNewLogger_LevelGating(t *testing.T) {
	tests := []struct {
		level     string
		wantInfo  bool
		wantDebug bool
		wantError bool
	}{
		{LevelSilent, false, false, false},
		{LevelError, false, false, true},
		{LevelInfo, true, false, true},
		{LevelDebug, true, true, true},
		{"DEBUG", true, true, true},
		{"verbose", true, false, true},
		{"", true, false, true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("level=%q", tt.level), func(t *testing.T) {
			l, stdout, stderr := newBufferedLogger(tt.level, FormatConsole)

			l.Info().Msg("info")
			l.Debug().Msg("debug")
			l.Error().Msg("error")

			assert.Equal(t, tt.wantInfo, bytes.Contains(stdout.Bytes(), []byte("[INFO] info")))
			assert.Equal(t, tt.wantDebug, bytes.Contains(stdout.Bytes(), []byte("[DEBUG] debug")))
			assert.Equal(t, tt.wantError, bytes.Contains(stderr.Bytes(), []byte("[ERROR] error")))
		})
	}
}

// TestNewLogger_JSONFormat verifies that json entries carry role, run id and
// timestamp and are still routed by level.
func TestNewLogger_JSONFormat(t *testing.T) {
	l, stdout, stderr := newBufferedLogger(LevelInfo, FormatJSON)

	l.Info().Msg("hello")
	l.Error().Msg("boom")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &entry))
	assert.Equal(t, "test-role", entry["role"])
	assert.Equal(t, "run-1", entry["run_id"])
	assert.Equal(t, "hello", entry["message"])
	_, hasTime := entry["time"]
	assert.True(t, hasTime, "expected 'time' field in log entry")

	require.NoError(t, json.Unmarshal(stderr.Bytes(), &entry))
	assert.Equal(t, "boom", entry["message"])
	assert.Equal(t, "error", entry["level"])
}

// ── ParseLevel / NormalizeLevel ───────────────────────────────────────────────

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.Disabled, ParseLevel("silent"))
	assert.Equal(t, zerolog.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel(" Info "))
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("warn"))
}

func TestNormalizeLevel(t *testing.T) {
	assert.Equal(t, LevelSilent, NormalizeLevel("SILENT"))
	assert.Equal(t, LevelInfo, NormalizeLevel("trace"))
	assert.Equal(t, LevelDebug, NormalizeLevel("debug"))
}

// ── LogError ──────────────────────────────────────────────────────────────────

// TestLogError_NoDetailAtInfo verifies that only the message is written when
// debug is off.
func TestLogError_NoDetailAtInfo(t *testing.T) {
	l, stdout, stderr := newBufferedLogger(LevelInfo, FormatConsole)

	l.LogError(fmt.Errorf("load input: %w", errors.New("permission denied")))

	assert.Empty(t, stdout.String())
	assert.Equal(t, "[ERROR] load input: permission denied\n", stderr.String())
}

// TestLogError_CauseChainAtDebug verifies that the wrapped causes follow the
// error line at debug level.
func TestLogError_CauseChainAtDebug(t *testing.T) {
	l, _, stderr := newBufferedLogger(LevelDebug, FormatConsole)

	l.LogError(fmt.Errorf("load input: %w", errors.New("permission denied")))

	assert.Equal(t,
		"[ERROR] load input: permission denied\n    caused by: permission denied\n",
		stderr.String())
}

// TestLogError_StackAtDebug verifies that a captured stack wins over the
// cause chain.
func TestLogError_StackAtDebug(t *testing.T) {
	l, _, stderr := newBufferedLogger(LevelDebug, FormatConsole)

	l.LogError(fmt.Errorf("item #3: %w", &stackErr{stack: "goroutine 1 [running]:\nmain.main()\n"}))

	assert.Equal(t,
		"[ERROR] item #3: panicked\ngoroutine 1 [running]:\nmain.main()\n",
		stderr.String())
}

// TestLogError_SilentSuppressesAll verifies that silent suppresses errors and
// their detail.
func TestLogError_SilentSuppressesAll(t *testing.T) {
	l, stdout, stderr := newBufferedLogger(LevelSilent, FormatConsole)

	l.LogError(errors.New("boom"))

	assert.Empty(t, stdout.String())
	assert.Empty(t, stderr.String())
}

func TestLogError_Nil(t *testing.T) {
	l, _, stderr := newBufferedLogger(LevelDebug, FormatConsole)
	l.LogError(nil)
	assert.Empty(t, stderr.String())
}

// ── Nop ───────────────────────────────────────────────────────────────────────

// TestNop_DiscardsOutput verifies that a Nop logger produces no output.
func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String(), "Nop logger should produce no output")
	assert.False(t, l.DebugEnabled())
}

// ── Context ───────────────────────────────────────────────────────────────────

// TestFromContext_NotNil verifies that FromContext never returns nil, even
// when no logger has been explicitly attached to the context.
func TestFromContext_NotNil(t *testing.T) {
	l := FromContext(context.Background())
	require.NotNil(t, l)
}

// TestFromContext_ReturnsAttachedLogger verifies the WithContext/FromContext
// round trip keeps both streams.
func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	l, stdout, stderr := newBufferedLogger(LevelDebug, FormatConsole)
	ctx := l.WithContext(context.Background())

	got := FromContext(ctx)
	got.Debug().Msg("from context")
	got.LogError(fmt.Errorf("outer: %w", errors.New("inner")))

	assert.Equal(t, "[DEBUG] from context\n", stdout.String())
	assert.Equal(t, "[ERROR] outer: inner\n    caused by: inner\n", stderr.String())
}
