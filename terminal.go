package tracef

import (
	"io"

	"golang.org/x/term"
)

type fdWriter interface {
	Fd() uintptr
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(fdWriter)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// sinkIsTerminal reports whether a sink ultimately writes to a terminal.
// Writer-backed sinks are unwrapped; any other sink that exposes Fd() is
// probed directly.
func sinkIsTerminal(s Sink) bool {
	switch v := s.(type) {
	case *writerSink:
		return isTerminal(v.w)
	case fdWriter:
		return term.IsTerminal(int(v.Fd()))
	default:
		return false
	}
}
