// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds the
// level vocabulary and stream routing used by the actor CLI.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Error, etc.) are available directly on *Logger. Messages at
// error level go to the error stream, everything else to the output stream.
package logger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Level names accepted in configuration, ordered from quietest to loudest.
const (
	LevelSilent = "silent"
	LevelError  = "error"
	LevelInfo   = "info"
	LevelDebug  = "debug"
)

// Output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Options configures a Logger.
type Options struct {
	// Level is one of silent|error|info|debug. Anything else means info.
	Level string
	// Format is console (default) or json.
	Format string
	// Role is attached to json entries as the "role" field.
	Role string
	// RunID is attached to json entries as the "run_id" field when non-empty.
	RunID string

	Stdout io.Writer
	Stderr io.Writer
}

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger

	errOut io.Writer
}

// NewLogger constructs a *Logger from opts. Nil writers default to
// os.Stdout and os.Stderr.
//
// In console format every entry is rendered as "[LEVEL] message" with no
// timestamp. In json format entries carry "role", "run_id" and a "time"
// field, following the structured layout used by the service loggers.
func NewLogger(opts Options) *Logger {
	stdout, stderr := opts.Stdout, opts.Stderr
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	var out, errOut io.Writer = stdout, stderr
	if !strings.EqualFold(opts.Format, FormatJSON) {
		out, errOut = consoleWriter(stdout), consoleWriter(stderr)
	}

	zl := zerolog.New(streamWriter{out: out, err: errOut}).Level(ParseLevel(opts.Level))
	if strings.EqualFold(opts.Format, FormatJSON) {
		ctx := zl.With().Timestamp()
		if opts.Role != "" {
			ctx = ctx.Str("role", opts.Role)
		}
		if opts.RunID != "" {
			ctx = ctx.Str("run_id", opts.RunID)
		}
		zl = ctx.Logger()
	}

	return &Logger{Logger: zl, errOut: stderr}
}

// ParseLevel maps a configured level name onto a zerolog level. Matching is
// case-insensitive; unknown names fall back to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case LevelSilent:
		return zerolog.Disabled
	case LevelError:
		return zerolog.ErrorLevel
	case LevelInfo:
		return zerolog.InfoLevel
	case LevelDebug:
		return zerolog.DebugLevel
	default:
		return zerolog.InfoLevel
	}
}

// NormalizeLevel returns the canonical level name for level, applying the
// same fallback as [ParseLevel].
func NormalizeLevel(level string) string {
	switch ParseLevel(level) {
	case zerolog.Disabled:
		return LevelSilent
	case zerolog.ErrorLevel:
		return LevelError
	case zerolog.DebugLevel:
		return LevelDebug
	default:
		return LevelInfo
	}
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop(), errOut: io.Discard}
}

// DebugEnabled reports whether debug entries are emitted.
func (l *Logger) DebugEnabled() bool {
	return l.GetLevel() <= zerolog.DebugLevel && zerolog.GlobalLevel() <= zerolog.DebugLevel
}

// LogError emits err at error level. When debug logging is enabled the
// diagnostic detail of err is written to the error stream right after it:
// the stack of a recovered panic if one is attached, otherwise each wrapped
// cause on its own line.
func (l *Logger) LogError(err error) {
	if err == nil {
		return
	}
	l.Error().Msg(err.Error())

	if !l.DebugEnabled() {
		return
	}
	if detail := Detail(err); detail != "" {
		fmt.Fprintln(l.errOut, detail)
	}
}

// stackTracer is implemented by errors that captured a goroutine stack.
type stackTracer interface {
	Stack() []byte
}

// Detail renders the diagnostic detail of err used by [Logger.LogError].
func Detail(err error) string {
	var st stackTracer
	if errors.As(err, &st) {
		if stack := st.Stack(); len(stack) > 0 {
			return strings.TrimRight(string(stack), "\n")
		}
	}

	var lines []string
	for cause := errors.Unwrap(err); cause != nil; cause = errors.Unwrap(cause) {
		lines = append(lines, "    caused by: "+cause.Error())
	}
	return strings.Join(lines, "\n")
}

// WithContext attaches l to ctx so it can later be recovered with
// [FromContext].
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return context.WithValue(l.Logger.WithContext(ctx), errOutKey{}, l.errOut)
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its disabled
// default logger, so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	errOut, ok := ctx.Value(errOutKey{}).(io.Writer)
	if !ok {
		errOut = io.Discard
	}
	return &Logger{Logger: *log.Ctx(ctx), errOut: errOut}
}

type errOutKey struct{}

// streamWriter routes entries to out or err depending on their level.
type streamWriter struct {
	out io.Writer
	err io.Writer
}

func (w streamWriter) Write(p []byte) (int, error) {
	return w.out.Write(p)
}

func (w streamWriter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	if level >= zerolog.ErrorLevel && level != zerolog.NoLevel {
		return w.err.Write(p)
	}
	return w.out.Write(p)
}

func consoleWriter(w io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		PartsOrder: []string{zerolog.LevelFieldName, zerolog.MessageFieldName},
		FormatLevel: func(i any) string {
			level, _ := i.(string)
			return "[" + strings.ToUpper(level) + "]"
		},
	}
}
