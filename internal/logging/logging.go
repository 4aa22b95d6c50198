package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// Level represents logging severity.
type Level int

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
	LevelTrace
)

var (
	currentLevel     = LevelWarn
	currentVerbosity = 0
	std              = log.New(os.Stderr, "winvol: ", log.LstdFlags|log.Lmsgprefix)
)

// SetOutput redirects log output. Diagnostics meant for the user never go
// through this logger.
func SetOutput(w io.Writer) {
	std.SetOutput(w)
}

// SetVerbosity configures logger output from count of -v flags (0-4).
func SetVerbosity(count int) {
	if count < 0 {
		count = 0
	}
	if count > 4 {
		count = 4
	}
	currentVerbosity = count
	switch count {
	case 0:
		currentLevel = LevelWarn
	case 1:
		currentLevel = LevelInfo
	case 2:
		currentLevel = LevelDebug
	default:
		currentLevel = LevelTrace
	}
}

// Verbosity returns the stored -v count.
func Verbosity() int {
	return currentVerbosity
}

// LevelName returns current level label.
func LevelName() string {
	return currentLevel.String()
}

func (l Level) String() string {
	switch l {
	case LevelError:
		return "error"
	case LevelWarn:
		return "warn"
	case LevelInfo:
		return "info"
	case LevelDebug:
		return "debug"
	case LevelTrace:
		return "trace"
	default:
		return "unknown"
	}
}

// ParseLevel returns Level + verbosity count from string.
func ParseLevel(s string) (Level, int, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error":
		return LevelError, 0, nil
	case "warn", "warning":
		return LevelWarn, 0, nil
	case "info":
		return LevelInfo, 1, nil
	case "debug":
		return LevelDebug, 2, nil
	case "trace":
		return LevelTrace, 4, nil
	default:
		return LevelWarn, currentVerbosity, fmt.Errorf("unknown log level %q", s)
	}
}

// SetLevel applies a named level. Error level suppresses warnings as well.
func SetLevel(name string) error {
	l, count, err := ParseLevel(name)
	if err != nil {
		return err
	}
	SetVerbosity(count)
	currentLevel = l
	return nil
}

func enabled(l Level) bool {
	return l <= currentLevel
}

func logf(l Level, prefix, format string, args ...any) {
	if !enabled(l) {
		return
	}
	std.Printf("[%s] %s", strings.ToUpper(prefix), fmt.Sprintf(format, args...))
}

func Warnf(format string, args ...any) {
	logf(LevelWarn, "warn", format, args...)
}

func Infof(format string, args ...any) {
	logf(LevelInfo, "info", format, args...)
}

func Debugf(format string, args ...any) {
	logf(LevelDebug, "dbg", format, args...)
}

func Tracef(format string, args ...any) {
	logf(LevelTrace, "trc", format, args...)
}
