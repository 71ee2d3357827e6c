package tracef

import (
	"bytes"
	"log"
	"strings"
)

// bridgeLit carries a bridged runtime line as a StringRef argument: the line
// is data, never a format source, so stray '%' characters stay inert.
var bridgeLit = Lit("%s")

// LogLogger wraps a Tracer into a stdlib *log.Logger. Each written line is
// classified by its textual level prefix and routed to the matching gated
// call site.
func LogLogger(tracer Tracer) *log.Logger {
	if tracer == nil {
		tracer = noopTracer{}
	}
	return log.New(tracerWriter{tracer: tracer}, "", 0)
}

// LogLoggerWithLevel wraps a Tracer into a stdlib *log.Logger that pins every
// emitted line to level.
func LogLoggerWithLevel(tracer Tracer, level TraceLevel) *log.Logger {
	if tracer == nil {
		tracer = noopTracer{}
	}
	return log.New(levelPinnedWriter{tracer: tracer, level: level}, "", 0)
}

// classifyLineLevel recognises "[warn] msg" and "warn: msg" shapes; anything
// else routes at info.
func classifyLineLevel(line string) (TraceLevel, string) {
	trimmed := strings.TrimSpace(line)
	if strings.HasPrefix(trimmed, "[") {
		if end := strings.IndexRune(trimmed, ']'); end > 1 {
			candidate := trimmed[1:end]
			if level, ok := ParseLevel(candidate); ok {
				msg := strings.TrimSpace(trimmed[end+1:])
				return level, msg
			}
		}
	}
	lowered := strings.ToLower(trimmed)
	trimTail := func(prefixLen int) string {
		tail := strings.TrimSpace(trimmed[prefixLen:])
		tail = strings.TrimLeft(tail, ":- ")
		return strings.TrimSpace(tail)
	}
	switch {
	case strings.HasPrefix(lowered, "trace"):
		return LevelTrace, trimTail(len("trace"))
	case strings.HasPrefix(lowered, "debug"):
		return LevelDebug, trimTail(len("debug"))
	case strings.HasPrefix(lowered, "info"):
		return LevelInfo, trimTail(len("info"))
	case strings.HasPrefix(lowered, "warn"):
		return LevelWarn, trimTail(len("warn"))
	case strings.HasPrefix(lowered, "error"):
		return LevelError, trimTail(len("error"))
	case strings.HasPrefix(lowered, "fatal"):
		return LevelFatal, trimTail(len("fatal"))
	default:
		return LevelInfo, trimmed
	}
}

func emitAtLevel(tracer Tracer, level TraceLevel, msg string) {
	arg := Str(Lit(msg))
	switch level {
	case LevelTrace:
		tracer.Trace(bridgeLit, arg)
	case LevelDebug:
		tracer.Debug(bridgeLit, arg)
	case LevelWarn:
		tracer.Warn(bridgeLit, arg)
	case LevelError:
		tracer.Error(bridgeLit, arg)
	case LevelFatal:
		tracer.Fatal(bridgeLit, arg)
	case LevelNone:
		tracer.Message(bridgeLit, arg)
	default:
		tracer.Info(bridgeLit, arg)
	}
}

type tracerWriter struct {
	tracer Tracer
}

func (w tracerWriter) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if w.tracer == nil {
		return len(p), nil
	}
	lines := bytes.Split(p, []byte{'\n'})
	for _, line := range lines {
		line = bytes.TrimRight(line, "\r")
		trimmed := strings.TrimSpace(string(line))
		if trimmed == "" {
			continue
		}
		level, msg := classifyLineLevel(trimmed)
		emitAtLevel(w.tracer, level, msg)
	}
	return len(p), nil
}

type levelPinnedWriter struct {
	tracer Tracer
	level  TraceLevel
}

func (w levelPinnedWriter) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if w.tracer == nil {
		return len(p), nil
	}
	lines := bytes.Split(p, []byte{'\n'})
	for _, line := range lines {
		line = bytes.TrimSpace(bytes.TrimSuffix(line, []byte{'\r'}))
		if len(line) == 0 {
			continue
		}
		emitAtLevel(w.tracer, w.level, string(line))
	}
	return len(p), nil
}
