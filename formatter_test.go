package tracef_test

import (
	"bytes"
	"strings"
	"testing"

	"pkt.systems/tracef"
)

// captureSink records every accepted sequence separately so tests can assert
// on both content and accept granularity.
type captureSink struct {
	accepts [][]byte
}

func (s *captureSink) Accept(p []byte) {
	s.accepts = append(s.accepts, append([]byte(nil), p...))
}

func (s *captureSink) joined() string {
	var b bytes.Buffer
	for _, a := range s.accepts {
		b.Write(a)
	}
	return b.String()
}

func TestPrintfZeroSpecifiers(t *testing.T) {
	sink := &captureSink{}
	f := tracef.NewFormatter(sink)
	n := f.Printf(tracef.Lit("just text"))
	if n != len("just text") {
		t.Fatalf("count mismatch: got %d", n)
	}
	if len(sink.accepts) != 1 {
		t.Fatalf("expected exactly one accept, got %d", len(sink.accepts))
	}
	if sink.joined() != "just text" {
		t.Fatalf("content altered: %q", sink.joined())
	}
}

func TestPrintfEndToEnd(t *testing.T) {
	sink := &captureSink{}
	f := tracef.NewFormatter(sink)
	n := f.Printf(tracef.Lit("count=%u value=%X"), tracef.Uint8(5), tracef.Uint8(0xA1))
	got := sink.joined()
	if got != "count=5 value=0xA1" {
		t.Fatalf("unexpected output: %q", got)
	}
	if n != len(got) {
		t.Fatalf("count %d disagrees with output length %d", n, len(got))
	}
	if len(sink.accepts) != 1 {
		t.Fatalf("batched path must invoke the sink once, got %d", len(sink.accepts))
	}
}

func TestPrintfAllKinds(t *testing.T) {
	sink := &captureSink{}
	f := tracef.NewFormatter(sink)
	f.Printf(tracef.Lit("%d %u %c%c %s %b"),
		tracef.Int16(-55),
		tracef.Uint32(98765),
		tracef.Char('o'), tracef.Char('k'),
		tracef.Str(tracef.Lit("ref")),
		tracef.Bool(true),
	)
	if got := sink.joined(); got != "-55 98765 ok ref TRUE" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestPrintfWidthPadding(t *testing.T) {
	sink := &captureSink{}
	f := tracef.NewFormatter(sink)
	f.Printf(tracef.Lit("%4u|%4u|%08u|%06d"),
		tracef.Uint16(7),
		tracef.Uint16(12345),
		tracef.Uint32(98765),
		tracef.Int32(-42),
	)
	if got := sink.joined(); got != "0007|12345|00098765|-000042" {
		t.Fatalf("unexpected padding: %q", got)
	}
}

func TestPrintfPointer(t *testing.T) {
	sink := &captureSink{}
	f := tracef.NewFormatter(sink)
	n := f.Printf(tracef.Lit("%p"), tracef.Ptr(0x1234))
	got := sink.joined()
	if !strings.HasPrefix(got, "0x") || !strings.HasSuffix(got, "1234") {
		t.Fatalf("unexpected pointer rendering: %q", got)
	}
	if n != len(got) || strings.ContainsAny(got[2:], "abcdef") {
		t.Fatalf("pointer digits must be uppercase, got %q (n=%d)", got, n)
	}
}

func TestPrintlnAppendsTerminator(t *testing.T) {
	sink := &captureSink{}
	f := tracef.NewFormatter(sink)
	n := f.Println(tracef.Lit("line %u"), tracef.Uint8(1))
	if got := sink.joined(); got != "line 1\r\n" {
		t.Fatalf("unexpected output: %q", got)
	}
	if n != len("line 1\r\n") {
		t.Fatalf("count mismatch: got %d", n)
	}
}

func TestPrintBufferStreamsTokens(t *testing.T) {
	sink := &captureSink{}
	f := tracef.NewFormatter(sink)
	n := f.PrintBuffer(tracef.Lit("dump:"), tracef.DataBuffer{Data: []byte{0xDE, 0xAD, 0x01}})
	if got := sink.joined(); got != "dump: DE AD 01\r\n" {
		t.Fatalf("unexpected output: %q", got)
	}
	// prefix + one accept per byte + terminator
	if len(sink.accepts) != 1+3+1 {
		t.Fatalf("unexpected accept count: %d", len(sink.accepts))
	}
	if n != len("dump:")+3*3+2 {
		t.Fatalf("count mismatch: got %d", n)
	}
}

func TestPrintBufferPrefixArguments(t *testing.T) {
	sink := &captureSink{}
	f := tracef.NewFormatter(sink)
	n := f.PrintBuffer(tracef.Lit("len=%u:"), tracef.DataBuffer{Data: []byte{0xFF}}, tracef.Uint8(1))
	if got := sink.joined(); got != "len=1: FF\r\n" {
		t.Fatalf("unexpected output: %q", got)
	}
	if n != len("len=1: FF\r\n") {
		t.Fatalf("count mismatch: got %d", n)
	}
}

func TestPrintBufferAbsentView(t *testing.T) {
	sink := &captureSink{}
	f := tracef.NewFormatter(sink)
	n := f.PrintBuffer(tracef.Lit("header"), tracef.DataBuffer{})
	if got := sink.joined(); got != "header" {
		t.Fatalf("prefix must still render: %q", got)
	}
	if len(sink.accepts) != 1 {
		t.Fatalf("absent view must issue no per-byte accepts, got %d", len(sink.accepts))
	}
	if n != len("header") {
		t.Fatalf("absent view must contribute zero, got %d", n)
	}
}

func TestPrintBufferAbsentViewNoPrefix(t *testing.T) {
	sink := &captureSink{}
	f := tracef.NewFormatter(sink)
	n := f.PrintBuffer(tracef.Lit(""), tracef.DataBuffer{})
	if n != 0 || len(sink.accepts) != 0 {
		t.Fatalf("expected a no-op, got n=%d accepts=%d", n, len(sink.accepts))
	}
}

func TestPrintBufferEmptyView(t *testing.T) {
	sink := &captureSink{}
	f := tracef.NewFormatter(sink)
	n := f.PrintBuffer(tracef.Lit("none:"), tracef.DataBuffer{Data: []byte{}})
	if got := sink.joined(); got != "none:\r\n" {
		t.Fatalf("empty view still terminates the line: %q", got)
	}
	if n != len("none:")+2 {
		t.Fatalf("count mismatch: got %d", n)
	}
}

func TestPrintfPanicsOnContractViolation(t *testing.T) {
	f := tracef.NewFormatter(tracef.Discard)
	assertPanics := func(name string, fn func()) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Fatalf("%s: expected a panic", name)
			}
		}()
		fn()
	}
	assertPanics("argument count", func() { f.Printf(tracef.Lit("%u")) })
	assertPanics("type mismatch", func() { f.Printf(tracef.Lit("%u"), tracef.Int8(-1)) })
	assertPanics("unknown specifier", func() { f.Printf(tracef.Lit("%z")) })
	assertPanics("illegal width", func() { f.Printf(tracef.Lit("%4b"), tracef.Bool(true)) })
}
