package pillar

import (
	"fmt"
	"log/slog"
	"strings"
)

// Level is the severity of a log record. The ordering is total and fixed:
// Debug < Info < Warning < Error < Critical. Levels select both the console
// color and whether a sink passes the record.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
	LevelCritical
)

// String returns the canonical upper-case level name. "CRITICAL" is the
// longest name at 8 characters and exactly fills the level column.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	case LevelCritical:
		return "CRITICAL"
	default:
		return fmt.Sprintf("LEVEL(%d)", int(l))
	}
}

// ParseLevel converts a level name to its Level. Matching is
// case-insensitive and accepts "WARN" as an alias for "WARNING".
// Unrecognized names return LevelInfo and an error.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LevelDebug, nil
	case "INFO":
		return LevelInfo, nil
	case "WARN", "WARNING":
		return LevelWarning, nil
	case "ERROR":
		return LevelError, nil
	case "CRITICAL":
		return LevelCritical, nil
	default:
		return LevelInfo, fmt.Errorf("invalid log level: %q", s)
	}
}

// ValidLevels returns the five level names in ascending severity order.
func ValidLevels() []string {
	return []string{"DEBUG", "INFO", "WARNING", "ERROR", "CRITICAL"}
}

// slog has no critical level; slot it one step above error, mirroring the
// spacing slog leaves between its named levels.
const slogLevelCritical = slog.LevelError + 4

// toSlog maps a Level onto the slog level scale used by the sinks.
func (l Level) toSlog() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarning:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	case LevelCritical:
		return slogLevelCritical
	default:
		return slog.LevelInfo
	}
}

// levelFromSlog is the inverse of toSlog. Intermediate slog values (from
// foreign slog callers) collapse onto the nearest lower named level.
func levelFromSlog(sl slog.Level) Level {
	switch {
	case sl < slog.LevelInfo:
		return LevelDebug
	case sl < slog.LevelWarn:
		return LevelInfo
	case sl < slog.LevelError:
		return LevelWarning
	case sl < slogLevelCritical:
		return LevelError
	default:
		return LevelCritical
	}
}
