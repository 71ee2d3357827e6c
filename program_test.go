package tracef_test

import (
	"errors"
	"testing"

	"pkt.systems/tracef"
)

func TestCompileSpecifierTable(t *testing.T) {
	p, err := tracef.Compile(tracef.Lit("a%04d b%X c%t"))
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}
	specs := p.Specifiers()
	if len(specs) != 3 {
		t.Fatalf("expected 3 specifiers, got %d", len(specs))
	}
	first := specs[0]
	if first.Kind != tracef.SignedDecimal || first.Width != 4 || first.Offset != 1 || first.Size != 4 {
		t.Fatalf("unexpected first specifier: %+v", first)
	}
	second := specs[1]
	if second.Kind != tracef.UnsignedHex || second.Width != 0 || second.Offset != 7 || second.Size != 2 {
		t.Fatalf("unexpected second specifier: %+v", second)
	}
	third := specs[2]
	if third.Kind != tracef.ElapsedTime || third.Offset != 11 {
		t.Fatalf("unexpected third specifier: %+v", third)
	}
}

func TestCompileLeadingZeroWidth(t *testing.T) {
	p, err := tracef.Compile(tracef.Lit("%08u"))
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}
	specs := p.Specifiers()
	if specs[0].Width != 8 {
		t.Fatalf("expected width 8, got %d", specs[0].Width)
	}
	if specs[0].Size != 4 {
		t.Fatalf("expected token size 4, got %d", specs[0].Size)
	}
}

func TestCompileUnknownSpecifier(t *testing.T) {
	if _, err := tracef.Compile(tracef.Lit("bad %q here")); !errors.Is(err, tracef.ErrUnknownSpecifier) {
		t.Fatalf("expected ErrUnknownSpecifier, got %v", err)
	}
}

func TestCompileMarkerAtEnd(t *testing.T) {
	if _, err := tracef.Compile(tracef.Lit("done 100%")); !errors.Is(err, tracef.ErrUnknownSpecifier) {
		t.Fatalf("expected ErrUnknownSpecifier for trailing marker, got %v", err)
	}
	if _, err := tracef.Compile(tracef.Lit("cut %04")); !errors.Is(err, tracef.ErrUnknownSpecifier) {
		t.Fatalf("expected ErrUnknownSpecifier for digits at end, got %v", err)
	}
}

func TestCompileWidthOnNonDecimal(t *testing.T) {
	for _, src := range []string{"%4X", "%2c", "%3s", "%8p", "%3t", "%5b"} {
		if _, err := tracef.Compile(tracef.Lit(src)); !errors.Is(err, tracef.ErrUnsupportedWidth) {
			t.Fatalf("expected ErrUnsupportedWidth for %q, got %v", src, err)
		}
	}
	for _, src := range []string{"%4d", "%12u"} {
		if _, err := tracef.Compile(tracef.Lit(src)); err != nil {
			t.Fatalf("width on decimal %q should compile, got %v", src, err)
		}
	}
}

func TestCompileMemoizesByContent(t *testing.T) {
	p1, err := tracef.Compile(tracef.Lit("memo %u"))
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}
	p2, err := tracef.Compile(tracef.Concat(tracef.Lit("memo "), tracef.Lit("%u")))
	if err != nil {
		t.Fatalf("recompile failed: %v", err)
	}
	if p1 != p2 {
		t.Fatalf("expected the same program for identical content")
	}
}

func TestCheckArgumentCount(t *testing.T) {
	p := tracef.MustCompile(tracef.Lit("%u and %u"))
	if err := p.Check(tracef.Uint8(1)); !errors.Is(err, tracef.ErrArgumentCount) {
		t.Fatalf("expected ErrArgumentCount, got %v", err)
	}
	if err := p.Check(tracef.Uint8(1), tracef.Uint8(2), tracef.Uint8(3)); !errors.Is(err, tracef.ErrArgumentCount) {
		t.Fatalf("expected ErrArgumentCount for surplus, got %v", err)
	}
	if err := p.Check(tracef.Uint8(1), tracef.Uint8(2)); err != nil {
		t.Fatalf("exact count should pass, got %v", err)
	}
}

func TestCheckTypeContracts(t *testing.T) {
	cases := []struct {
		name string
		src  string
		arg  tracef.Arg
	}{
		{"signed under unsigned", "%u", tracef.Int32(-1)},
		{"unsigned under signed", "%d", tracef.Uint32(1)},
		{"string under hex", "%X", tracef.Str(tracef.Lit("no"))},
		{"bool under pointer", "%p", tracef.Bool(true)},
		{"char under string", "%s", tracef.Char('x')},
		{"pointer under char", "%c", tracef.Ptr(0)},
		{"unsigned under bool", "%b", tracef.Uint8(1)},
		{"narrow unsigned under time", "%t", tracef.Uint16(9)},
	}
	for _, tc := range cases {
		p := tracef.MustCompile(tracef.Lit(tc.src))
		if err := p.Check(tc.arg); !errors.Is(err, tracef.ErrTypeMismatch) {
			t.Fatalf("%s: expected ErrTypeMismatch, got %v", tc.name, err)
		}
	}
}

func TestBudgetBoundsWritten(t *testing.T) {
	type call struct {
		src  string
		args []tracef.Arg
	}
	calls := []call{
		{"plain text", nil},
		{"%d", []tracef.Arg{tracef.Int64(-9223372036854775808)}},
		{"%u bytes", []tracef.Arg{tracef.Uint64(18446744073709551615)}},
		{"%120u", []tracef.Arg{tracef.Uint8(255)}},
		{"%120d", []tracef.Arg{tracef.Int8(-128)}},
		{"dump %X at %p", []tracef.Arg{tracef.Uint32(0xDEADBEEF), tracef.Ptr(^uintptr(0))}},
		{"t=%t b=%b c=%c s=%s", []tracef.Arg{
			tracef.Uint64(18446744073709551615),
			tracef.Bool(false),
			tracef.Char('#'),
			tracef.Str(tracef.Lit("tail")),
		}},
	}
	for _, c := range calls {
		p := tracef.MustCompile(tracef.Lit(c.src))
		budget, err := p.Budget(c.args...)
		if err != nil {
			t.Fatalf("%q: budget failed: %v", c.src, err)
		}
		sink := tracef.NewObservedSink(tracef.Discard)
		n := tracef.NewFormatter(sink).Printf(tracef.Lit(c.src), c.args...)
		if n > budget {
			t.Fatalf("%q: wrote %d bytes over budget %d", c.src, n, budget)
		}
		if stats := sink.Stats(); stats.Bytes != uint64(n) {
			t.Fatalf("%q: count %d disagrees with sink bytes %d", c.src, n, stats.Bytes)
		}
	}
}
