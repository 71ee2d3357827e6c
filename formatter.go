package tracef

// Formatter binds compiled format programs to one Sink. Every contract
// violation a call site can commit (count mismatch, tag mismatch, illegal
// width, unknown specifier) is detected from information fixed at the call
// site and aborts at the first use of the violating literal; see Compile and
// Program.Check for the error-returning surface.
type Formatter struct {
	sink Sink
}

// NewFormatter returns a Formatter writing to sink. A nil sink discards.
func NewFormatter(sink Sink) *Formatter {
	if sink == nil {
		sink = Discard
	}
	return &Formatter{sink: sink}
}

// Sink returns the Formatter's output capability.
func (f *Formatter) Sink() Sink { return f.sink }

// Printf renders lit with args into one exact-size buffer and hands the
// result to the sink in a single accept. It returns the number of characters
// written. A literal with no specifiers short-circuits straight to the sink.
func (f *Formatter) Printf(lit Literal, args ...Arg) int {
	n, err := MustCompile(lit).render(f.sink, args)
	if err != nil {
		panic("tracef: " + err.Error())
	}
	return n
}

// Println renders lit with a line terminator appended, composed by literal
// concatenation before the program compiles.
func (f *Formatter) Println(lit Literal, args ...Arg) int {
	return f.Printf(lit.Append(Lit("\r\n")), args...)
}

// PrintBuffer renders the lit/args prefix through the batched path, then
// streams view byte by byte as " XX" hex tokens followed by a line
// terminator. It returns the characters contributed by the prefix, the
// tokens, and the terminator. An absent view renders the prefix only and
// contributes zero beyond it.
func (f *Formatter) PrintBuffer(lit Literal, view DataBuffer, args ...Arg) int {
	n, err := MustCompile(lit).renderBuffer(f.sink, view, args)
	if err != nil {
		panic("tracef: " + err.Error())
	}
	return n
}
