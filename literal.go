package tracef

import "strings"

// Literal is an immutable text fragment whose length is fixed at the moment
// the fragment is built. Literals are the only format source the renderer
// accepts: every prefix, colour code, component tag, and user template is a
// Literal, and composing them never mutates an operand.
type Literal struct {
	s string
}

// Lit wraps s in a Literal. The wrapped content is never reparsed as a
// specifier source unless the Literal is handed to the renderer as a format
// template, so runtime strings are safe to carry as StringRef arguments.
func Lit(s string) Literal {
	return Literal{s: s}
}

// Concat combines parts left to right into a new Literal. The operands are
// untouched; the result's length is the sum of the operand lengths.
func Concat(parts ...Literal) Literal {
	switch len(parts) {
	case 0:
		return Literal{}
	case 1:
		return parts[0]
	}
	var b strings.Builder
	total := 0
	for _, p := range parts {
		total += len(p.s)
	}
	b.Grow(total)
	for _, p := range parts {
		b.WriteString(p.s)
	}
	return Literal{s: b.String()}
}

// Append returns a new Literal holding the receiver's content followed by
// tail's content.
func (l Literal) Append(tail Literal) Literal {
	if tail.s == "" {
		return l
	}
	if l.s == "" {
		return tail
	}
	return Literal{s: l.s + tail.s}
}

// Len returns the fragment's length in bytes.
func (l Literal) Len() int { return len(l.s) }

// String returns the fragment's content.
func (l Literal) String() string { return l.s }
