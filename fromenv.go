package tracef

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"pkt.systems/tracef/ansi"
)

// LogFromEnvOption customizes LogFromEnv behavior.
type LogFromEnvOption func(*logFromEnvConfig)

type logFromEnvConfig struct {
	prefix  string
	options Options
	sink    Sink
}

// WithEnvPrefix overrides the environment variable prefix used by LogFromEnv.
func WithEnvPrefix(prefix string) LogFromEnvOption {
	return func(cfg *logFromEnvConfig) {
		cfg.prefix = prefix
	}
}

// WithEnvOptions seeds LogFromEnv with explicit Options values.
func WithEnvOptions(opts Options) LogFromEnvOption {
	return func(cfg *logFromEnvConfig) {
		cfg.options = opts
	}
}

// WithEnvSink seeds LogFromEnv with a default sink.
func WithEnvSink(sink Sink) LogFromEnvOption {
	return func(cfg *logFromEnvConfig) {
		cfg.sink = sink
	}
}

// LogFromEnv builds a Log from environment variables, allowing optional
// seeded options and sinks. Environment values override supplied options.
//
// Recognised variables are: {prefix}LEVEL, COMPONENT, NO_COLOR, FORCE_COLOR,
// SCHEME, and OUTPUT. OUTPUT accepts stdout, stderr, default, a file path,
// or stdout+/stderr+/default+<path> to tee. The default prefix is "TRACE_".
func LogFromEnv(opts ...LogFromEnvOption) *Log {
	cfg := logFromEnvConfig{prefix: "TRACE_"}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	resolved := cfg.options
	baseSink := cfg.sink
	if baseSink == nil {
		baseSink = NewWriterSink(os.Stdout)
	}
	prefix := cfg.prefix
	if value, ok := lookupEnv(prefix, "LEVEL"); ok {
		if level, ok := ParseLevel(value); ok {
			resolved.MinLevel = level
		}
	}
	if value, ok := lookupEnv(prefix, "COMPONENT"); ok {
		if parsed := strings.TrimSpace(value); parsed != "" {
			resolved.Component = Lit(parsed)
		}
	}
	if value, ok := lookupEnv(prefix, "NO_COLOR"); ok {
		if parsed, ok := parseEnvBool(value); ok {
			resolved.NoColor = parsed
		}
	}
	if value, ok := lookupEnv(prefix, "FORCE_COLOR"); ok {
		if parsed, ok := parseEnvBool(value); ok {
			resolved.ForceColor = parsed
		}
	}
	if value, ok := lookupEnv(prefix, "SCHEME"); ok {
		resolved.Scheme = ansi.SchemeByName(value)
	}
	outputValue, hasOutput := lookupEnv(prefix, "OUTPUT")
	sink := baseSink
	var closer io.Closer
	var outputErr error
	if hasOutput {
		resolvedSink, resolvedCloser, err := sinkFromEnvOutput(outputValue, baseSink)
		if err != nil {
			outputErr = err
		} else {
			sink = resolvedSink
			closer = resolvedCloser
		}
	}
	logger := NewWithOptions(sink, resolved)
	logger.closer = closer
	if outputErr != nil {
		logger.Error(Lit("trace output %s unavailable"), Str(Lit(strings.TrimSpace(outputValue))))
	}
	return logger
}

func lookupEnv(prefix, key string) (string, bool) {
	if prefix == "" {
		return os.LookupEnv(key)
	}
	return os.LookupEnv(prefix + key)
}

func parseEnvBool(value string) (bool, bool) {
	parsed, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return false, false
	}
	return parsed, true
}

// sinkFromEnvOutput resolves an OUTPUT value into a sink and, for owned file
// destinations, a closer the Log releases on Close.
func sinkFromEnvOutput(value string, base Sink) (Sink, io.Closer, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return base, nil, nil
	}
	if base == nil {
		base = Discard
	}
	lowered := strings.ToLower(trimmed)
	switch lowered {
	case "stdout":
		return NewWriterSink(os.Stdout), nil, nil
	case "stderr":
		return NewWriterSink(os.Stderr), nil, nil
	case "default":
		return base, nil, nil
	}
	const (
		stdoutPrefix  = "stdout+"
		stderrPrefix  = "stderr+"
		defaultPrefix = "default+"
	)
	switch {
	case strings.HasPrefix(lowered, stdoutPrefix):
		return teeSinkTo(trimmed[len(stdoutPrefix):], NewWriterSink(os.Stdout))
	case strings.HasPrefix(lowered, stderrPrefix):
		return teeSinkTo(trimmed[len(stderrPrefix):], NewWriterSink(os.Stderr))
	case strings.HasPrefix(lowered, defaultPrefix):
		return teeSinkTo(trimmed[len(defaultPrefix):], base)
	default:
		file, err := openTraceOutputFile(trimmed)
		if err != nil {
			return base, nil, err
		}
		return NewWriterSink(file), &onceCloser{closer: file}, nil
	}
}

func teeSinkTo(path string, primary Sink) (Sink, io.Closer, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return primary, nil, nil
	}
	file, err := openTraceOutputFile(path)
	if err != nil {
		return primary, nil, err
	}
	return teeSink{sinks: []Sink{primary, NewWriterSink(file)}}, &onceCloser{closer: file}, nil
}

func openTraceOutputFile(path string) (*os.File, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open trace output %q: %w", path, err)
	}
	return file, nil
}

// teeSink forwards each accepted sequence to every destination in order.
type teeSink struct {
	sinks []Sink
}

func (t teeSink) Accept(p []byte) {
	for _, s := range t.sinks {
		s.Accept(p)
	}
}

// onceCloser makes repeated Log.Close calls idempotent for owned files.
type onceCloser struct {
	closer   io.Closer
	closeErr error
	once     sync.Once
}

func (o *onceCloser) Close() error {
	o.once.Do(func() {
		if o.closer != nil {
			o.closeErr = o.closer.Close()
		}
	})
	return o.closeErr
}
