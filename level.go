package tracef

import (
	"os"
	"strings"
)

// TraceLevel orders call-site severity. A Log instance holds one minimum
// level; a call renders only when its level is at or above that minimum.
type TraceLevel uint8

const (
	// LevelAll passes every call site.
	LevelAll TraceLevel = iota
	// LevelTrace defines trace level.
	LevelTrace
	// LevelDebug defines debug level.
	LevelDebug
	// LevelInfo defines info level.
	LevelInfo
	// LevelWarn defines warn level.
	LevelWarn
	// LevelError defines error level.
	LevelError
	// LevelFatal defines fatal level.
	LevelFatal
	// LevelNone suppresses every gated call site; Message still renders.
	LevelNone
)

// ParseLevel converts a textual level into a TraceLevel. It accepts values
// such as "all", "trace", "debug", "info", "warn", "warning", "error",
// "fatal", "none", and "off" (case insensitive).
func ParseLevel(value string) (TraceLevel, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "all":
		return LevelAll, true
	case "trace":
		return LevelTrace, true
	case "debug":
		return LevelDebug, true
	case "info":
		return LevelInfo, true
	case "warn", "warning":
		return LevelWarn, true
	case "error":
		return LevelError, true
	case "fatal":
		return LevelFatal, true
	case "none", "off", "disabled":
		return LevelNone, true
	default:
		return LevelAll, false
	}
}

// LevelString returns the canonical string representation of a TraceLevel.
func LevelString(level TraceLevel) string {
	switch level {
	case LevelAll:
		return "all"
	case LevelTrace:
		return "trace"
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelFatal:
		return "fatal"
	case LevelNone:
		return "none"
	default:
		return "all"
	}
}

// LevelFromEnv looks up key in the environment and parses it into a
// TraceLevel.
func LevelFromEnv(key string) (TraceLevel, bool) {
	if key == "" {
		return LevelAll, false
	}
	value, ok := os.LookupEnv(key)
	if !ok {
		return LevelAll, false
	}
	return ParseLevel(value)
}

// levelTag is the decorated line's level column, uppercase.
func levelTag(level TraceLevel) string {
	switch level {
	case LevelTrace:
		return "TRACE"
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelFatal:
		return "FATAL"
	default:
		return "MESSAGE"
	}
}
