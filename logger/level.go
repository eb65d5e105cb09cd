package logger

import (
	"errors"
	"fmt"
	"strings"

	"github.com/muesli/termenv"
)

// Level is the severity of a log line.
type Level int

const (
	// LogLevel is the general-purpose level used by Logger.Log.
	LogLevel Level = iota
	// DebugLevel marks diagnostic output.
	DebugLevel
	// InfoLevel marks informational output.
	InfoLevel
	// WarnLevel marks warnings.
	WarnLevel
	// ErrorLevel marks errors.
	ErrorLevel
)

// ErrUnknownLevel is returned by ParseLevel for names outside the level set.
var ErrUnknownLevel = errors.New("unknown log level")

// AllLevels returns all supported levels.
func AllLevels() []Level {
	return []Level{
		LogLevel,
		DebugLevel,
		InfoLevel,
		WarnLevel,
		ErrorLevel,
	}
}

// String returns the upper-case tag printed in log lines.
func (l Level) String() string {
	switch l {
	case LogLevel:
		return "LOG"
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// ParseLevel parses a case-insensitive level name such as "info" or "WARN".
func ParseLevel(name string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "LOG":
		return LogLevel, nil
	case "DEBUG":
		return DebugLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "WARN", "WARNING":
		return WarnLevel, nil
	case "ERROR":
		return ErrorLevel, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
	}
}

// levelColors maps each level to the foreground color of its whole line.
var levelColors = map[Level]termenv.ANSIColor{
	LogLevel:   termenv.ANSIWhite,
	InfoLevel:  termenv.ANSIBlue,
	WarnLevel:  termenv.ANSIYellow,
	ErrorLevel: termenv.ANSIRed,
	DebugLevel: termenv.ANSICyan,
}

// colorize wraps text in the color sequence for level.
// Unknown levels and non-color outputs get the text back unchanged.
func colorize(out *termenv.Output, level Level, text string) string {
	color, ok := levelColors[level]
	if !ok {
		return text
	}
	return out.String(text).Foreground(color).String()
}
