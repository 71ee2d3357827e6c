package tracef

import "fmt"

const (
	trueText  = "TRUE"
	falseText = "FALSE"
)

// checkArg validates a bound argument's tag against the specifier's kind.
// These are the per-kind contracts: signed decimals take signed integers,
// unsigned decimals and hex take unsigned integers, %t additionally requires
// at least native word width, %s takes another Literal, %p an address, %c a
// single byte, and %b a boolean.
func checkArg(sp Specifier, a Arg) error {
	switch sp.Kind {
	case SignedDecimal:
		if a.kind != argSigned {
			return contractError(sp, a, "%d takes signed integers")
		}
	case UnsignedDecimal:
		if a.kind != argUnsigned {
			return contractError(sp, a, "%u takes unsigned integers")
		}
	case UnsignedHex:
		if a.kind != argUnsigned {
			return contractError(sp, a, "%X takes unsigned integers")
		}
	case Character:
		if a.kind != argChar {
			return contractError(sp, a, "%c takes a single character")
		}
	case StringRef:
		if a.kind != argString {
			return contractError(sp, a, "%s takes a Literal")
		}
	case PointerAddress:
		if a.kind != argPointer {
			return contractError(sp, a, "%p takes an address")
		}
	case ElapsedTime:
		if a.kind != argUnsigned {
			return contractError(sp, a, "%t takes unsigned integers")
		}
		if a.size < wordBytes {
			return contractError(sp, a, "%t takes at least native word width")
		}
	case Boolean:
		if a.kind != argBool {
			return contractError(sp, a, "%b takes a boolean")
		}
	default:
		return fmt.Errorf("%w: offset %d", ErrUnknownSpecifier, sp.Offset)
	}
	return nil
}

func contractError(sp Specifier, a Arg, contract string) error {
	return fmt.Errorf("%w: %s argument bound to %%%s at offset %d (%s)",
		ErrTypeMismatch, a.kind, sp.Kind, sp.Offset, contract)
}

// decimalWorst is the digit capacity of an unsigned integer of the given byte
// width: 3 digits per byte less half a digit per byte covers every power of
// two up to 64 bits.
func decimalWorst(size int) int {
	return 3*size - size/2
}

// worstLen returns the exact worst-case rendered length of a under sp. A
// requested width can exceed the type's digit capacity, in which case the
// padding dominates; the budget follows whichever is larger so that written
// bytes never exceed it.
func worstLen(sp Specifier, a Arg) int {
	switch sp.Kind {
	case SignedDecimal:
		return max(decimalWorst(a.size), sp.Width) + 1
	case UnsignedDecimal:
		return max(decimalWorst(a.size), sp.Width)
	case UnsignedHex:
		return 2*a.size + 2
	case Character:
		return 1
	case StringRef:
		return a.lit.Len()
	case PointerAddress:
		return 2*wordBytes + 2
	case ElapsedTime:
		return decimalWorst(a.size) + 4
	case Boolean:
		return len(falseText)
	default:
		return 0
	}
}

// appendArg renders one concrete value under sp at the end of buf.
func appendArg(buf []byte, sp Specifier, a Arg) []byte {
	switch sp.Kind {
	case SignedDecimal:
		return appendSigned(buf, int64(a.num), sp.Width)
	case UnsignedDecimal:
		return appendUnsigned(buf, a.num, sp.Width)
	case UnsignedHex:
		return appendHex(buf, a.num, a.size)
	case Character:
		return append(buf, byte(a.num))
	case StringRef:
		return append(buf, a.lit.s...)
	case PointerAddress:
		return appendHex(buf, a.num, wordBytes)
	case ElapsedTime:
		buf = appendUnsigned(buf, a.num/1000, 0)
		buf = append(buf, '.')
		return appendUnsigned(buf, a.num%1000, 3)
	case Boolean:
		if a.num != 0 {
			return append(buf, trueText...)
		}
		return append(buf, falseText...)
	default:
		return buf
	}
}

// appendUnsigned extracts digits by repeated remainder/divide, zero-pads to
// width, and reverses in place. Width is a minimum, never a truncation.
func appendUnsigned(buf []byte, v uint64, width int) []byte {
	start := len(buf)
	for {
		buf = append(buf, byte('0'+v%10))
		v /= 10
		if v == 0 {
			break
		}
	}
	for len(buf)-start < width {
		buf = append(buf, '0')
	}
	reverseBytes(buf[start:])
	return buf
}

// appendSigned mirrors appendUnsigned on the absolute value, with the sign
// prepended after padding so "-0007" comes out of width 4.
func appendSigned(buf []byte, v int64, width int) []byte {
	start := len(buf)
	u := uint64(v)
	if v < 0 {
		// Two's complement negation yields the absolute value even for MinInt64.
		u = uint64(-v)
	}
	for {
		buf = append(buf, byte('0'+u%10))
		u /= 10
		if u == 0 {
			break
		}
	}
	for len(buf)-start < width {
		buf = append(buf, '0')
	}
	if v < 0 {
		buf = append(buf, '-')
	}
	reverseBytes(buf[start:])
	return buf
}

// appendHex writes "0x" followed by exactly 2*size uppercase nibbles, most
// significant first.
func appendHex(buf []byte, v uint64, size int) []byte {
	buf = append(buf, '0', 'x')
	for shift := size*8 - 4; shift >= 0; shift -= 4 {
		buf = append(buf, hexDigit(byte(v>>uint(shift))&0xF))
	}
	return buf
}

func hexDigit(n byte) byte {
	if n < 0xA {
		return '0' + n
	}
	return 'A' + n - 0xA
}

func reverseBytes(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
