package tracef

import "fmt"

// Kind identifies one conversion specifier in the format mini-language.
type Kind uint8

const (
	// KindInvalid marks a marker whose kind letter is outside the supported set.
	KindInvalid Kind = iota
	// SignedDecimal renders a signed integer in base 10 ('d').
	SignedDecimal
	// UnsignedDecimal renders an unsigned integer in base 10 ('u').
	UnsignedDecimal
	// UnsignedHex renders an unsigned integer as 0x-prefixed uppercase hex ('X').
	UnsignedHex
	// Character copies a single byte verbatim ('c').
	Character
	// StringRef copies another Literal's content verbatim ('s').
	StringRef
	// PointerAddress renders an address's bit pattern as fixed-width hex ('p').
	PointerAddress
	// ElapsedTime renders unsigned milliseconds as seconds.millis ('t').
	ElapsedTime
	// Boolean renders TRUE or FALSE ('b').
	Boolean
)

func kindForLetter(c byte) Kind {
	switch c {
	case 'd':
		return SignedDecimal
	case 'u':
		return UnsignedDecimal
	case 'X':
		return UnsignedHex
	case 'c':
		return Character
	case 's':
		return StringRef
	case 'p':
		return PointerAddress
	case 't':
		return ElapsedTime
	case 'b':
		return Boolean
	default:
		return KindInvalid
	}
}

// String returns the kind letter, or "?" for KindInvalid.
func (k Kind) String() string {
	switch k {
	case SignedDecimal:
		return "d"
	case UnsignedDecimal:
		return "u"
	case UnsignedHex:
		return "X"
	case Character:
		return "c"
	case StringRef:
		return "s"
	case PointerAddress:
		return "p"
	case ElapsedTime:
		return "t"
	case Boolean:
		return "b"
	default:
		return "?"
	}
}

// Specifier describes one conversion marker inside a Literal.
type Specifier struct {
	// Kind is the conversion the marker requests.
	Kind Kind
	// Width is the minimum digit count for decimal kinds; 0 means unspecified.
	Width int
	// Offset is the byte index of the '%' marker in the source Literal.
	Offset int
	// Size is the marker token's length: '%', width digits, and the kind letter.
	Size int
}

// scanSpecifiers walks src left to right and records one Specifier per '%'
// occurrence, in source order. A run of decimal digits between the marker and
// the kind letter accumulates as an ordinary unsigned decimal width.
func scanSpecifiers(src string) ([]Specifier, error) {
	var specs []Specifier
	for i := 0; i < len(src); i++ {
		if src[i] != '%' {
			continue
		}
		start := i
		width := 0
		i++
		for i < len(src) && src[i] >= '0' && src[i] <= '9' {
			width = 10*width + int(src[i]-'0')
			i++
		}
		if i >= len(src) {
			return nil, fmt.Errorf("%w: literal ends inside marker at offset %d", ErrUnknownSpecifier, start)
		}
		kind := kindForLetter(src[i])
		if kind == KindInvalid {
			return nil, fmt.Errorf("%w: %q at offset %d", ErrUnknownSpecifier, src[i], start)
		}
		specs = append(specs, Specifier{
			Kind:   kind,
			Width:  width,
			Offset: start,
			Size:   i - start + 1,
		})
	}
	return specs, nil
}
