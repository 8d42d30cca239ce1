package int128

import (
	"fmt"
	"math/big"
	"strings"
)

// Int128FromString creates an Int128 from a decimal string. Values outside
// the Int128 range wrap modulo 2^128 and set accurate to 'false'. See
// ParseInt128 for other bases and strict range checking.
func Int128FromString(s string) (out Int128, accurate bool, err error) {
	// This deliberately limits the scope of what we accept as input just in case
	// we decide to hand-roll our own fast decimal-only parser:
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return out, false, syntaxError("int128 string %q", s)
	}
	out, accurate = Int128FromBigInt(b)
	return out, accurate, nil
}

// ParseInt128 interprets s in the given base (0, 8, 10 or 16) and returns
// the corresponding value. It accepts what AppendInt128 produces, apart from
// padding:
//
//   - base 10 takes an optional sign; the value must lie within
//     [Int128Min(), Int128Max()].
//   - base 16 takes an optional "0x" or "0X" prefix and base 8 an optional
//     leading "0"; the digits are the raw unsigned 128-bit pattern, so
//     "ffffffffffffffffffffffffffffffff" parses as -1.
//   - base 0 picks 16 for a "0x" prefix, 8 for a leading "0" and 10 otherwise.
//
// Errors wrap ErrSyntax or ErrRange.
func ParseInt128(s string, base int) (Int128, error) {
	body := s
	if base == 0 {
		base = 10
		if len(body) > 1 && body[0] == '0' {
			base = 8
			if body[1] == 'x' || body[1] == 'X' {
				base = 16
			}
		}
	}

	var neg bool
	switch base {
	case 10:
		if len(body) > 0 && (body[0] == '+' || body[0] == '-') {
			neg = body[0] == '-'
			body = body[1:]
		}
	case 16:
		if strings.HasPrefix(body, "0x") || strings.HasPrefix(body, "0X") {
			body = body[2:]
		}
	case 8:
	default:
		return zeroInt128, syntaxError("base %d", base)
	}

	if body == "" || body[0] == '+' || body[0] == '-' {
		return zeroInt128, syntaxError("parsing %q", s)
	}

	b, ok := new(big.Int).SetString(body, base)
	if !ok {
		return zeroInt128, syntaxError("parsing %q", s)
	}

	if base == 10 {
		if neg {
			b.Neg(b)
		}
		out, accurate := Int128FromBigInt(b)
		if !accurate {
			return zeroInt128, rangeError("parsing %q", s)
		}
		return out, nil
	}

	if b.BitLen() > 128 {
		return zeroInt128, rangeError("parsing %q", s)
	}
	return int128FromBigPattern(b), nil
}

// MustInt128FromString parses a decimal string, panicking if it is invalid or
// out of range. It is intended for constants in tests and initialisers.
func MustInt128FromString(s string) Int128 {
	v, err := ParseInt128(s, 10)
	if err != nil {
		panic(err)
	}
	return v
}

// Scan implements fmt.Scanner. The 'x', 'X' and 'o' verbs read the raw
// unsigned pattern, as printed by Format; every other verb reads a signed
// integer that must fit in an Int128.
func (i *Int128) Scan(state fmt.ScanState, verb rune) error {
	b := new(big.Int)
	if err := b.Scan(state, verb); err != nil {
		return err
	}

	switch verb {
	case 'x', 'X', 'o':
		if b.Sign() >= 0 && b.BitLen() <= 128 {
			*i = int128FromBigPattern(b)
			return nil
		}
	default:
		if v, accurate := Int128FromBigInt(b); accurate {
			*i = v
			return nil
		}
	}
	return rangeError("scanning %s", b)
}
