package tracef

import (
	"io"
	"sync/atomic"
)

// Sink is the output capability the renderer requires: one Accept per
// finished character sequence. Implementations must not retain p beyond the
// call. The core assumes no partial-write contract and provides no locking:
// a sink shared across goroutines must serialize on its own.
type Sink interface {
	Accept(p []byte)
}

// SinkFunc adapts a plain function to the Sink interface.
type SinkFunc func(p []byte)

// Accept calls f(p).
func (f SinkFunc) Accept(p []byte) { f(p) }

// Discard is a Sink that drops everything.
var Discard Sink = discardSink{}

type discardSink struct{}

func (discardSink) Accept([]byte) {}

type writerSink struct {
	w io.Writer
}

// NewWriterSink bridges an io.Writer into a Sink. Write errors are dropped;
// a sink that needs loss accounting can wrap the result in an ObservedSink.
func NewWriterSink(w io.Writer) Sink {
	if w == nil {
		return Discard
	}
	return &writerSink{w: w}
}

func (s *writerSink) Accept(p []byte) {
	_, _ = s.w.Write(p)
}

// ObservedSinkStats captures cumulative counters for ObservedSink.
type ObservedSinkStats struct {
	Accepts uint64
	Bytes   uint64
}

// ObservedSink wraps a Sink and counts accepts and bytes so sink traffic can
// be observed without changing call signatures.
type ObservedSink struct {
	dst     Sink
	accepts atomic.Uint64
	bytes   atomic.Uint64
}

// NewObservedSink wraps dst with traffic counters.
func NewObservedSink(dst Sink) *ObservedSink {
	if dst == nil {
		dst = Discard
	}
	return &ObservedSink{dst: dst}
}

func (s *ObservedSink) Accept(p []byte) {
	if s == nil || s.dst == nil {
		return
	}
	s.accepts.Add(1)
	s.bytes.Add(uint64(len(p)))
	s.dst.Accept(p)
}

// Stats returns cumulative accept counters.
func (s *ObservedSink) Stats() ObservedSinkStats {
	if s == nil {
		return ObservedSinkStats{}
	}
	return ObservedSinkStats{
		Accepts: s.accepts.Load(),
		Bytes:   s.bytes.Load(),
	}
}
