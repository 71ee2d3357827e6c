package tracef

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for contract violations. Each is detectable from the
// literal text, the argument count, and the argument tags alone; none depends
// on a concrete runtime value.
var (
	ErrArgumentCount    = errors.New("specifier count does not match argument count")
	ErrTypeMismatch     = errors.New("argument type fails specifier contract")
	ErrUnsupportedWidth = errors.New("width is only valid on decimal specifiers")
	ErrUnknownSpecifier = errors.New("unknown conversion specifier")
)

// Program is the compiled form of one format Literal: its specifier table and
// raw content, parsed once and never mutated. Programs are memoized by
// literal identity, so each distinct literal pays the scan exactly once no
// matter how many call sites use it.
type Program struct {
	src   string
	raw   []byte
	specs []Specifier
}

var programCache sync.Map // literal content -> *Program

// Compile parses lit's conversion specifiers and validates width legality.
// It returns ErrUnknownSpecifier for a kind letter outside the supported set
// and ErrUnsupportedWidth when width digits decorate a non-decimal kind.
func Compile(lit Literal) (*Program, error) {
	if cached, ok := programCache.Load(lit.s); ok {
		return cached.(*Program), nil
	}
	specs, err := scanSpecifiers(lit.s)
	if err != nil {
		return nil, err
	}
	for _, sp := range specs {
		if sp.Width > 0 && sp.Kind != SignedDecimal && sp.Kind != UnsignedDecimal {
			return nil, fmt.Errorf("%w: width %d on %%%s at offset %d",
				ErrUnsupportedWidth, sp.Width, sp.Kind, sp.Offset)
		}
	}
	p := &Program{src: lit.s, raw: []byte(lit.s), specs: specs}
	cached, _ := programCache.LoadOrStore(lit.s, p)
	return cached.(*Program), nil
}

// MustCompile is Compile for package-level program variables: a contract
// violation fails at initialization instead of surfacing as an error value.
func MustCompile(lit Literal) *Program {
	p, err := Compile(lit)
	if err != nil {
		panic("tracef: " + err.Error())
	}
	return p
}

// Specifiers returns a copy of the program's specifier table in source order.
func (p *Program) Specifiers() []Specifier {
	if len(p.specs) == 0 {
		return nil
	}
	specs := make([]Specifier, len(p.specs))
	copy(specs, p.specs)
	return specs
}

// Check validates args positionally against the specifier table: first the
// count, then each argument's tag against its specifier's contract.
func (p *Program) Check(args ...Arg) error {
	if len(args) != len(p.specs) {
		return fmt.Errorf("%w: %d specifiers, %d arguments", ErrArgumentCount, len(p.specs), len(args))
	}
	for i, sp := range p.specs {
		if err := checkArg(sp, args[i]); err != nil {
			return err
		}
	}
	return nil
}

// Budget returns the exact worst-case output length for rendering args
// through p: the literal's length plus each bound argument's worst case. A
// render call never writes more than this for any concrete values.
func (p *Program) Budget(args ...Arg) (int, error) {
	if err := p.Check(args...); err != nil {
		return 0, err
	}
	return p.budget(args), nil
}

func (p *Program) budget(args []Arg) int {
	total := len(p.src)
	for i, sp := range p.specs {
		total += worstLen(sp, args[i])
	}
	return total
}

// render walks the literal in source order, copying untouched spans verbatim
// and rendering each specifier's argument in place, into one buffer sized
// exactly to the budget. The finished sequence reaches the sink in a single
// accept. A literal with no specifiers short-circuits with its raw content.
func (p *Program) render(sink Sink, args []Arg) (int, error) {
	if err := p.Check(args...); err != nil {
		return 0, err
	}
	if len(p.specs) == 0 {
		if len(p.raw) == 0 {
			return 0, nil
		}
		sink.Accept(p.raw)
		return len(p.raw), nil
	}
	buf := make([]byte, 0, p.budget(args))
	cursor := 0
	for i, sp := range p.specs {
		buf = append(buf, p.src[cursor:sp.Offset]...)
		buf = appendArg(buf, sp, args[i])
		cursor = sp.Offset + sp.Size
	}
	buf = append(buf, p.src[cursor:]...)
	sink.Accept(buf)
	return len(buf), nil
}

// renderBuffer renders the prefix through the batched path, then streams one
// " XX" token per byte straight to the sink and terminates the line. The
// view's length is runtime-determined, which is why this path never folds the
// dump into the prefix buffer. An absent view still renders the prefix but
// contributes nothing: no tokens, no terminator, zero added count.
func (p *Program) renderBuffer(sink Sink, view DataBuffer, args []Arg) (int, error) {
	n, err := p.render(sink, args)
	if err != nil {
		return 0, err
	}
	if view.Data == nil {
		return n, nil
	}
	tok := [3]byte{' ', 0, 0}
	for _, b := range view.Data {
		tok[1] = hexDigit(b >> 4)
		tok[2] = hexDigit(b & 0xF)
		sink.Accept(tok[:])
	}
	sink.Accept(lineEnd)
	return n + 3*len(view.Data) + len(lineEnd), nil
}

// DataBuffer is a borrowed, runtime-length byte view rendered through the
// streamed path. A nil Data marks an absent view, which degrades to a no-op
// contribution rather than a fault.
type DataBuffer struct {
	Data []byte
}

var lineEnd = []byte("\r\n")
