package tracef

import "math/bits"

// wordBytes is the native word width in bytes; pointer and elapsed-time
// contracts are defined against it.
const wordBytes = bits.UintSize / 8

type argKind uint8

const (
	argInvalid argKind = iota
	argSigned
	argUnsigned
	argChar
	argString
	argPointer
	argBool
)

func (k argKind) String() string {
	switch k {
	case argSigned:
		return "signed"
	case argUnsigned:
		return "unsigned"
	case argChar:
		return "char"
	case argString:
		return "literal"
	case argPointer:
		return "pointer"
	case argBool:
		return "bool"
	default:
		return "invalid"
	}
}

// Arg is one tagged call-site argument: a kind tag, the payload's byte width,
// and the payload itself. Arguments are matched positionally against a
// Literal's specifier table; the tag decides validity, the width decides the
// worst-case rendered length.
type Arg struct {
	kind argKind
	size int
	num  uint64
	lit  Literal
}

// Int tags a native signed integer for a %d specifier.
func Int(v int) Arg { return Arg{kind: argSigned, size: wordBytes, num: uint64(v)} }

// Int8 tags an 8-bit signed integer for a %d specifier.
func Int8(v int8) Arg { return Arg{kind: argSigned, size: 1, num: uint64(int64(v))} }

// Int16 tags a 16-bit signed integer for a %d specifier.
func Int16(v int16) Arg { return Arg{kind: argSigned, size: 2, num: uint64(int64(v))} }

// Int32 tags a 32-bit signed integer for a %d specifier.
func Int32(v int32) Arg { return Arg{kind: argSigned, size: 4, num: uint64(int64(v))} }

// Int64 tags a 64-bit signed integer for a %d specifier.
func Int64(v int64) Arg { return Arg{kind: argSigned, size: 8, num: uint64(v)} }

// Uint tags a native unsigned integer for %u, %X, or %t specifiers.
func Uint(v uint) Arg { return Arg{kind: argUnsigned, size: wordBytes, num: uint64(v)} }

// Uint8 tags an 8-bit unsigned integer for %u or %X specifiers.
func Uint8(v uint8) Arg { return Arg{kind: argUnsigned, size: 1, num: uint64(v)} }

// Uint16 tags a 16-bit unsigned integer for %u or %X specifiers.
func Uint16(v uint16) Arg { return Arg{kind: argUnsigned, size: 2, num: uint64(v)} }

// Uint32 tags a 32-bit unsigned integer for %u or %X specifiers.
func Uint32(v uint32) Arg { return Arg{kind: argUnsigned, size: 4, num: uint64(v)} }

// Uint64 tags a 64-bit unsigned integer for %u, %X, or %t specifiers.
func Uint64(v uint64) Arg { return Arg{kind: argUnsigned, size: 8, num: v} }

// Char tags a single byte for a %c specifier.
func Char(c byte) Arg { return Arg{kind: argChar, size: 1, num: uint64(c)} }

// Str tags a Literal for a %s specifier. The literal's content is copied
// verbatim; it is never reparsed for markers.
func Str(l Literal) Arg { return Arg{kind: argString, size: l.Len(), lit: l} }

// Ptr tags an address value for a %p specifier.
func Ptr(p uintptr) Arg { return Arg{kind: argPointer, size: wordBytes, num: uint64(p)} }

// Bool tags a boolean for a %b specifier.
func Bool(v bool) Arg {
	var n uint64
	if v {
		n = 1
	}
	return Arg{kind: argBool, size: 1, num: n}
}
