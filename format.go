package int128

import (
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"
)

// Align controls where fill characters are placed when a formatted Int128 is
// narrower than FormatOptions.Width.
type Align int

const (
	// AlignRight places the fill before the sign, base prefix and digits.
	AlignRight Align = iota

	// AlignLeft places the fill after the digits.
	AlignLeft

	// AlignInternal places the fill between the sign (or a hex "0x" prefix)
	// and the digits, which is how zero padding is done. Values without a
	// sign or hex prefix are padded as for AlignRight.
	AlignInternal
)

func (a Align) String() string {
	switch a {
	case AlignRight:
		return "right"
	case AlignLeft:
		return "left"
	case AlignInternal:
		return "internal"
	default:
		return "align(" + strconv.Itoa(int(a)) + ")"
	}
}

// FormatOptions configures the text rendering of an Int128. The zero value
// formats plain decimal with no padding, as String does.
type FormatOptions struct {
	// Base is 8, 10 or 16. 0 is treated as 10; anything else panics.
	//
	// Decimal output is signed. Octal and hexadecimal output renders the raw
	// 128-bit pattern as an unsigned number, so -1 is 32 'f's in hex.
	Base int

	// Uppercase selects 'A'-'F' digits and an "0X" prefix for hex.
	Uppercase bool

	// ShowBase prefixes nonzero hex with "0x" and nonzero octal with "0".
	ShowBase bool

	// ShowPlus prefixes non-negative decimal output with '+'.
	ShowPlus bool

	// Width is the minimum number of characters to output.
	Width int

	// Fill pads the output to Width; 0 means ' '.
	Fill rune

	Align Align
}

// chunkFor returns the largest power of base that fits in a uint64, and the
// number of digits each chunk of that size renders to.
func chunkFor(base int) (div uint64, digits int) {
	switch base {
	case 10:
		return 10000000000000000000, 19 // 10^19
	case 16:
		return 0x1000000000000000, 15 // 16^15
	case 8:
		return 01000000000000000000000, 21 // 8^21
	default:
		panic(fmt.Sprintf("int128: illegal base %d", base))
	}
}

// FormatInt128 returns the text representation of v using the options in o.
func FormatInt128(v Int128, o FormatOptions) string {
	var buf [64]byte
	return string(AppendInt128(buf[:0], v, o))
}

// WriteInt128 writes the text representation of v using the options in o
// to w.
func WriteInt128(w io.Writer, v Int128, o FormatOptions) (n int, err error) {
	var buf [64]byte
	return w.Write(AppendInt128(buf[:0], v, o))
}

// AppendInt128 appends the text representation of v using the options in o
// to dst and returns the extended buffer.
func AppendInt128(dst []byte, v Int128, o FormatOptions) []byte {
	base := o.Base
	if base == 0 {
		base = 10
	}
	div, digits := chunkFor(base)

	// At most a sign, or a two character base prefix.
	var headBuf [2]byte
	head := headBuf[:0]

	var mag uint128
	if base == 10 {
		mag = v.absU128()
		if v.hi < 0 {
			head = append(head, '-')
		} else if o.ShowPlus {
			head = append(head, '+')
		}
	} else {
		mag = v.asU128()
		if o.ShowBase && !mag.isZero() {
			head = append(head, '0')
			if base == 16 {
				if o.Uppercase {
					head = append(head, 'X')
				} else {
					head = append(head, 'x')
				}
			}
		}
	}

	// 43 octal digits is the longest rendering of a 128-bit magnitude.
	var digitBuf [48]byte
	body := appendChunks(digitBuf[:0], mag, base, div, digits, o.Uppercase)

	pad := o.Width - len(head) - len(body)
	if pad <= 0 {
		dst = append(dst, head...)
		return append(dst, body...)
	}

	fill := o.Fill
	if fill == 0 {
		fill = ' '
	}

	switch o.Align {
	case AlignLeft:
		dst = append(dst, head...)
		dst = append(dst, body...)
		dst = appendFill(dst, fill, pad)

	case AlignInternal:
		// An octal prefix is a leading zero digit, so it stays attached to
		// the digits.
		if len(head) > 0 && (base == 10 || base == 16) {
			dst = append(dst, head...)
			dst = appendFill(dst, fill, pad)
			dst = append(dst, body...)
		} else {
			dst = appendFill(dst, fill, pad)
			dst = append(dst, head...)
			dst = append(dst, body...)
		}

	default:
		dst = appendFill(dst, fill, pad)
		dst = append(dst, head...)
		dst = append(dst, body...)
	}

	return dst
}

// appendChunks splits mag into three chunks no larger than div and renders
// them high to low; only the most significant nonzero chunk is rendered
// without leading zeros.
func appendChunks(dst []byte, mag uint128, base int, div uint64, digits int, upper bool) []byte {
	by := uint128{lo: div}
	high, low := mag.quoRem(by)
	high, mid := high.quoRem(by)

	if high.lo != 0 {
		dst = appendUint64(dst, high.lo, base, 0, upper)
		dst = appendUint64(dst, mid.lo, base, digits, upper)
	} else if mid.lo != 0 {
		dst = appendUint64(dst, mid.lo, base, 0, upper)
	} else {
		return appendUint64(dst, low.lo, base, 0, upper)
	}
	return appendUint64(dst, low.lo, base, digits, upper)
}

func appendUint64(dst []byte, v uint64, base int, width int, upper bool) []byte {
	var scratch [24]byte
	s := strconv.AppendUint(scratch[:0], v, base)
	for n := len(s); n < width; n++ {
		dst = append(dst, '0')
	}
	if upper {
		for _, c := range s {
			if c >= 'a' && c <= 'f' {
				c -= 'a' - 'A'
			}
			dst = append(dst, c)
		}
		return dst
	}
	return append(dst, s...)
}

func appendFill(dst []byte, fill rune, n int) []byte {
	if fill < utf8.RuneSelf {
		for i := 0; i < n; i++ {
			dst = append(dst, byte(fill))
		}
		return dst
	}
	for i := 0; i < n; i++ {
		dst = utf8.AppendRune(dst, fill)
	}
	return dst
}

func (i Int128) String() string {
	if i.hi == 0 {
		return strconv.FormatUint(i.lo, 10)
	} else if i.hi == -1 && i.lo >= signBit {
		return strconv.FormatInt(int64(i.lo), 10)
	}
	return FormatInt128(i, FormatOptions{})
}

// Text returns the representation of i in the given base, which must be 8,
// 10 or 16. Digits above 9 are lower case; there is no base prefix. Octal and
// hexadecimal render the raw 128-bit pattern; see FormatOptions.
func (i Int128) Text(base int) string {
	return FormatInt128(i, FormatOptions{Base: base})
}

// Format implements fmt.Formatter. It supports the 'd', 'v' and 's' verbs
// for decimal, 'x' and 'X' for hexadecimal and 'o' for octal, along with
// the '+', '#', '-' and '0' flags and a field width:
//
//	fmt.Sprintf("%+d", Int128From64(1))   // "+1"
//	fmt.Sprintf("%#06x", Int128From64(1)) // "0x0001"
//	fmt.Sprintf("%x", Int128From64(-1))   // "ffffffffffffffffffffffffffffffff"
func (i Int128) Format(s fmt.State, c rune) {
	var o FormatOptions
	switch c {
	case 'd', 'v', 's':
		o.Base = 10
	case 'x':
		o.Base = 16
	case 'X':
		o.Base = 16
		o.Uppercase = true
	case 'o':
		o.Base = 8
	default:
		fmt.Fprintf(s, "%%!%c(int128.Int128=%s)", c, i.String())
		return
	}

	o.ShowPlus = s.Flag('+')
	o.ShowBase = s.Flag('#')
	if w, ok := s.Width(); ok {
		o.Width = w
	}
	if s.Flag('-') {
		o.Align = AlignLeft
	} else if s.Flag('0') {
		o.Align = AlignInternal
		o.Fill = '0'
	}

	var buf [64]byte
	_, _ = s.Write(AppendInt128(buf[:0], i, o))
}
