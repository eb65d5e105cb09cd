package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/muesli/termenv"
)

// ColorMode selects when log lines are colorized.
type ColorMode int

const (
	// ColorAuto colors output only when the writer is a color-capable terminal.
	// NO_COLOR and CLICOLOR_FORCE are honored.
	ColorAuto ColorMode = iota
	// ColorAlways emits ANSI colors regardless of the writer.
	ColorAlways
	// ColorNever emits plain text.
	ColorNever
)

// ErrUnknownColorMode is returned by ParseColorMode for unsupported names.
var ErrUnknownColorMode = errors.New("unknown color mode")

// String returns the flag spelling of the mode.
func (m ColorMode) String() string {
	switch m {
	case ColorAuto:
		return "auto"
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return fmt.Sprintf("ColorMode(%d)", int(m))
	}
}

// ParseColorMode parses "auto", "always" or "never".
func ParseColorMode(name string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "auto", "":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownColorMode, name)
	}
}

// Config defines options for NewWithConfig.
type Config struct {
	// Output receives one write per log line.
	// Default: nil (standard output)
	Output io.Writer
	// Color selects the colorization policy.
	// Default: ColorAuto
	Color ColorMode
}

// Logger writes timestamped, leveled lines tagged with a fixed context.
// The zero value is not usable; construct with New or NewWithConfig.
type Logger struct {
	context string
	out     io.Writer
	term    *termenv.Output
}

var (
	// Mutex keeping lines from different goroutines whole on a shared writer
	logMutex sync.Mutex

	// now is the clock source for line timestamps.
	now = time.Now
)

// Dependency injection point for testing output.
var outStdout io.Writer = os.Stdout

const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// New returns a Logger for context that writes to standard output.
// Any context is accepted, including the empty string.
func New(context string) *Logger {
	return NewWithConfig(context, Config{})
}

// NewWithConfig returns a Logger for context using cfg.
func NewWithConfig(context string, cfg Config) *Logger {
	out := cfg.Output
	if out == nil {
		out = outStdout
	}
	return &Logger{
		context: context,
		out:     out,
		term:    newTermOutput(out, cfg.Color),
	}
}

func newTermOutput(out io.Writer, mode ColorMode) *termenv.Output {
	switch mode {
	case ColorAlways:
		return termenv.NewOutput(out, termenv.WithProfile(termenv.ANSI))
	case ColorNever:
		return termenv.NewOutput(out, termenv.WithProfile(termenv.Ascii))
	default:
		return termenv.NewOutput(out)
	}
}

// Context returns the label the Logger was created with.
func (l *Logger) Context() string {
	return l.context
}

// Log writes args at LogLevel.
func (l *Logger) Log(args ...any) {
	l.write(LogLevel, FormatArgs(args...))
}

// Debug writes args at DebugLevel.
func (l *Logger) Debug(args ...any) {
	l.write(DebugLevel, FormatArgs(args...))
}

// Info writes args at InfoLevel.
func (l *Logger) Info(args ...any) {
	l.write(InfoLevel, FormatArgs(args...))
}

// Warn writes args at WarnLevel.
func (l *Logger) Warn(args ...any) {
	l.write(WarnLevel, FormatArgs(args...))
}

// Error writes args at ErrorLevel.
func (l *Logger) Error(args ...any) {
	l.write(ErrorLevel, FormatArgs(args...))
}

// formatLine renders "<timestamp> <LEVEL> [<context>] <message>".
// The context and message segments are left out when empty.
func (l *Logger) formatLine(message string, level Level) string {
	parts := make([]string, 0, 4)
	parts = append(parts, now().UTC().Format(timestampLayout), level.String())
	if l.context != "" {
		parts = append(parts, "["+l.context+"]")
	}
	if message != "" {
		parts = append(parts, message)
	}
	return strings.Join(parts, " ")
}

func (l *Logger) write(level Level, message string) {
	line := colorize(l.term, level, l.formatLine(message, level)) + "\n"

	logMutex.Lock()
	defer logMutex.Unlock()
	// Sink failures are not reported to callers.
	_, _ = io.WriteString(l.out, line)
}
