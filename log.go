package tracef

import (
	"io"
	"sync"

	"pkt.systems/tracef/ansi"
)

// Tracer is the smallest façade surface library authors can require when
// they want consumers to plug in their own trace destination. *Log satisfies
// it, as does the noop returned for contexts without one.
type Tracer interface {
	// Trace renders lit at trace level.
	Trace(lit Literal, args ...Arg)
	// Debug renders lit at debug level.
	Debug(lit Literal, args ...Arg)
	// Info renders lit at info level.
	Info(lit Literal, args ...Arg)
	// Warn renders lit at warn level.
	Warn(lit Literal, args ...Arg)
	// Error renders lit at error level.
	Error(lit Literal, args ...Arg)
	// Fatal renders lit at fatal level.
	Fatal(lit Literal, args ...Arg)
	// Message renders lit unconditionally, ignoring the minimum level.
	Message(lit Literal, args ...Arg)
}

// Options controls how a Log decorates and filters its output.
type Options struct {
	// Clock supplies elapsed milliseconds for the time tag. When nil, the Log
	// uses NewWallClock.
	Clock Clock

	// MinLevel sets the lowest level that renders. Defaults to LevelAll.
	MinLevel TraceLevel

	// Component tags every line between the level column and the user text.
	Component Literal

	// NoColor forces colour escape codes off regardless of terminal detection.
	NoColor bool

	// ForceColor bypasses terminal detection and emits colour even when the
	// sink is not a TTY. Useful for tests and forced-colour logs.
	ForceColor bool

	// Scheme overrides the highlight scheme for coloured output. When nil,
	// tracef uses ansi.SchemeDefault.
	Scheme *ansi.Scheme
}

// Log is the leveled trace façade: a Formatter, a Clock, a minimum level,
// an optional highlight scheme, and an optional component tag. Every
// decoration is composed from Literals once, so a call site that passes the
// gate pays for one clock read and one render; a suppressed call site does
// nothing at all.
type Log struct {
	sink      Sink
	fmtr      *Formatter
	clock     Clock
	min       TraceLevel
	component Literal
	scheme    ansi.Scheme
	closer    io.Closer

	enabled [LevelNone + 1]bool
	prefix  [LevelNone + 1]Literal
	close   [LevelNone + 1]Literal
	lines   *sync.Map
}

// New constructs a Log writing to sink with default options.
func New(sink Sink) *Log {
	return NewWithOptions(sink, Options{})
}

// NewWriter constructs a Log writing through an io.Writer.
func NewWriter(w io.Writer) *Log {
	return New(NewWriterSink(w))
}

// NewWithOptions builds a Log with explicit settings.
func NewWithOptions(sink Sink, opts Options) *Log {
	if sink == nil {
		sink = Discard
	}
	clock := opts.Clock
	if clock == nil {
		clock = NewWallClock()
	}
	scheme := ansi.SchemeDisabled
	if !opts.NoColor && (opts.ForceColor || sinkIsTerminal(sink)) {
		if opts.Scheme != nil {
			scheme = *opts.Scheme
		} else {
			scheme = ansi.SchemeDefault
		}
		if !scheme.Enabled {
			scheme = ansi.SchemeDisabled
		}
	}
	t := &Log{
		sink:      sink,
		fmtr:      NewFormatter(sink),
		clock:     clock,
		min:       opts.MinLevel,
		component: opts.Component,
		scheme:    scheme,
	}
	t.compose()
	return t
}

// compose resolves the per-level gate booleans and decorated prefix
// literals. It runs once per Log value, never per call.
func (t *Log) compose() {
	for level := LevelTrace; level <= LevelFatal; level++ {
		t.enabled[level] = level >= t.min
		open := ""
		switch level {
		case LevelFatal:
			open = t.scheme.Fatal
		case LevelError:
			open = t.scheme.Error
		case LevelWarn:
			open = t.scheme.Warn
		}
		t.prefix[level] = Concat(
			Lit(open),
			Lit("[%t] "),
			Lit(levelTag(level)),
			Lit(" "),
			t.component,
			Lit(": "),
		)
		if open != "" {
			t.close[level] = Lit(t.scheme.Close)
		} else {
			t.close[level] = Literal{}
		}
	}
	// Message bypasses the gate and never colours.
	t.prefix[LevelNone] = Concat(Lit("[%t] MESSAGE "), t.component, Lit(": "))
	t.close[LevelNone] = Literal{}
	t.lines = &sync.Map{}
}

// derive clones the receiver, applies mutate, and recomposes the clone.
func (t *Log) derive(mutate func(*Log)) *Log {
	clone := *t
	mutate(&clone)
	clone.compose()
	return &clone
}

// LogLevel returns a Log derived from the receiver whose minimum level is
// set to level. The receiver itself is not modified.
func (t *Log) LogLevel(level TraceLevel) *Log {
	return t.derive(func(c *Log) { c.min = level })
}

// LogLevelFromEnv configures the derived Log's level using the value of key
// in the environment. Missing or invalid values leave the level unchanged.
func (t *Log) LogLevelFromEnv(key string) *Log {
	level, ok := LevelFromEnv(key)
	if !ok {
		return t
	}
	return t.LogLevel(level)
}

// WithComponent returns a Log derived from the receiver tagged with
// component.
func (t *Log) WithComponent(component Literal) *Log {
	return t.derive(func(c *Log) { c.component = component })
}

// MinLevel returns the Log's minimum level.
func (t *Log) MinLevel() TraceLevel { return t.min }

// Formatter exposes the Log's renderer for undecorated output through the
// same sink.
func (t *Log) Formatter() *Formatter { return t.fmtr }

// Close releases an output the Log owns (LogFromEnv file destinations).
// Logs over caller-supplied sinks have nothing to close.
func (t *Log) Close() error {
	if t.closer == nil {
		return nil
	}
	return t.closer.Close()
}

// Trace renders lit at trace level.
func (t *Log) Trace(lit Literal, args ...Arg) { t.emit(LevelTrace, lit, args) }

// Debug renders lit at debug level.
func (t *Log) Debug(lit Literal, args ...Arg) { t.emit(LevelDebug, lit, args) }

// Info renders lit at info level.
func (t *Log) Info(lit Literal, args ...Arg) { t.emit(LevelInfo, lit, args) }

// Warn renders lit at warn level.
func (t *Log) Warn(lit Literal, args ...Arg) { t.emit(LevelWarn, lit, args) }

// Error renders lit at error level.
func (t *Log) Error(lit Literal, args ...Arg) { t.emit(LevelError, lit, args) }

// Fatal renders lit at fatal level. It does not terminate the process; the
// severity only orders the gate.
func (t *Log) Fatal(lit Literal, args ...Arg) { t.emit(LevelFatal, lit, args) }

// Message renders lit unconditionally: no level gate, no colour.
func (t *Log) Message(lit Literal, args ...Arg) {
	line := t.composedLine(LevelNone, lit)
	t.fmtr.Printf(line, t.prependTime(args)...)
}

// TraceBuf renders lit at trace level followed by a streamed hex dump of view.
func (t *Log) TraceBuf(lit Literal, view DataBuffer, args ...Arg) {
	t.emitBuf(LevelTrace, lit, view, args)
}

// DebugBuf renders lit at debug level followed by a streamed hex dump of view.
func (t *Log) DebugBuf(lit Literal, view DataBuffer, args ...Arg) {
	t.emitBuf(LevelDebug, lit, view, args)
}

// InfoBuf renders lit at info level followed by a streamed hex dump of view.
func (t *Log) InfoBuf(lit Literal, view DataBuffer, args ...Arg) {
	t.emitBuf(LevelInfo, lit, view, args)
}

// WarnBuf renders lit at warn level followed by a streamed hex dump of view.
func (t *Log) WarnBuf(lit Literal, view DataBuffer, args ...Arg) {
	t.emitBuf(LevelWarn, lit, view, args)
}

// ErrorBuf renders lit at error level followed by a streamed hex dump of view.
func (t *Log) ErrorBuf(lit Literal, view DataBuffer, args ...Arg) {
	t.emitBuf(LevelError, lit, view, args)
}

// FatalBuf renders lit at fatal level followed by a streamed hex dump of view.
func (t *Log) FatalBuf(lit Literal, view DataBuffer, args ...Arg) {
	t.emitBuf(LevelFatal, lit, view, args)
}

// MessageBuf renders lit unconditionally followed by a streamed hex dump of
// view.
func (t *Log) MessageBuf(lit Literal, view DataBuffer, args ...Arg) {
	line := t.composedBufLine(LevelNone, lit)
	t.fmtr.PrintBuffer(line, view, t.prependTime(args)...)
}

func (t *Log) emit(level TraceLevel, lit Literal, args []Arg) {
	if !t.enabled[level] {
		return
	}
	line := t.composedLine(level, lit)
	t.fmtr.Printf(line, t.prependTime(args)...)
}

// emitBuf keeps the colour open inside the streamed prefix and closes it
// with a separate render after the dump, so the dump itself is coloured.
func (t *Log) emitBuf(level TraceLevel, lit Literal, view DataBuffer, args []Arg) {
	if !t.enabled[level] {
		return
	}
	line := t.composedBufLine(level, lit)
	t.fmtr.PrintBuffer(line, view, t.prependTime(args)...)
	if c := t.close[level]; c.Len() > 0 {
		t.fmtr.Printf(c)
	}
}

type lineKey struct {
	level    TraceLevel
	streamed bool
	src      string
}

// composedLine memoizes prefix + user + close + terminator per (level, user
// literal), so composition happens once per distinct pairing.
func (t *Log) composedLine(level TraceLevel, lit Literal) Literal {
	key := lineKey{level: level, src: lit.s}
	if cached, ok := t.lines.Load(key); ok {
		return cached.(Literal)
	}
	line := Concat(t.prefix[level], lit, t.close[level], Lit("\r\n"))
	cached, _ := t.lines.LoadOrStore(key, line)
	return cached.(Literal)
}

// composedBufLine memoizes the streamed-path prefix: no terminator and no
// colour close, both supplied after the dump.
func (t *Log) composedBufLine(level TraceLevel, lit Literal) Literal {
	key := lineKey{level: level, streamed: true, src: lit.s}
	if cached, ok := t.lines.Load(key); ok {
		return cached.(Literal)
	}
	line := t.prefix[level].Append(lit)
	cached, _ := t.lines.LoadOrStore(key, line)
	return cached.(Literal)
}

// prependTime binds the clock reading to the prefix's %t specifier.
func (t *Log) prependTime(args []Arg) []Arg {
	bound := make([]Arg, 0, len(args)+1)
	bound = append(bound, Uint64(t.clock.Now()))
	return append(bound, args...)
}
