package int128

// Int128 is a two's complement signed 128-bit integer. The represented value
// is hi * 2^64 + lo; every (hi, lo) pair is a valid value.
//
// The zero value is 0.
type Int128 struct {
	hi int64
	lo uint64
}

const signBit = 0x8000000000000000

// MakeInt128 creates an Int128 from its high and low 64-bit halves. The sign
// is carried in high:
//
//	MakeInt128(1, 0)  == 1 << 64
//	MakeInt128(-1, 0) == -(1 << 64)
//
// This and Int128FromRaw are the only way to construct an Int128 outside the
// range of a 64-bit integer without going through a string or a big.Int. See
// Int128High64 and Int128Low64 for the counterparts.
func MakeInt128(high int64, low uint64) Int128 {
	return Int128{hi: high, lo: low}
}

// Int128FromRaw is the complement to Int128.Raw(); it creates an Int128 from
// two uint64s representing the hi and lo bits.
func Int128FromRaw(hi, lo uint64) Int128 {
	return Int128{hi: int64(hi), lo: lo}
}

// Int128High64 returns the upper 64 bits of v, which carry the sign.
func Int128High64(v Int128) int64 { return v.hi }

// Int128Low64 returns the lower 64 bits of v.
func Int128Low64(v Int128) uint64 { return v.lo }

func Int128From64(v int64) Int128 {
	// Arithmetic shift: -1 for negative v, 0 otherwise.
	return Int128{hi: v >> 63, lo: uint64(v)}
}

func Int128From32(v int32) Int128 { return Int128From64(int64(v)) }
func Int128From16(v int16) Int128 { return Int128From64(int64(v)) }
func Int128From8(v int8) Int128   { return Int128From64(int64(v)) }
func Int128FromInt(v int) Int128  { return Int128From64(int64(v)) }

func Int128FromU64(v uint64) Int128 { return Int128{lo: v} }
func Int128FromU32(v uint32) Int128 { return Int128{lo: uint64(v)} }
func Int128FromU16(v uint16) Int128 { return Int128{lo: uint64(v)} }
func Int128FromU8(v uint8) Int128   { return Int128{lo: uint64(v)} }
func Int128FromUint(v uint) Int128  { return Int128{lo: uint64(v)} }

// Raw returns access to the Int128 as a pair of uint64s. See Int128FromRaw()
// for the counterpart.
func (i Int128) Raw() (hi uint64, lo uint64) { return uint64(i.hi), i.lo }

// High64 returns the upper 64 bits of i. See Int128High64.
func (i Int128) High64() int64 { return i.hi }

// Low64 returns the lower 64 bits of i. See Int128Low64.
func (i Int128) Low64() uint64 { return i.lo }

func (i Int128) IsZero() bool { return i == zeroInt128 }

// IsNeg reports whether the sign bit of i is set.
func (i Int128) IsNeg() bool { return i.hi < 0 }

func (i Int128) Sign() int {
	if i == zeroInt128 {
		return 0
	} else if i.hi < 0 {
		return -1
	}
	return 1
}

// Cmp compares i to n and returns:
//
//	< 0 if i <  n
//	  0 if i == n
//	> 0 if i >  n
//
// The specific value returned by Cmp is undefined, but it is guaranteed to
// satisfy the above constraints.
func (i Int128) Cmp(n Int128) int {
	if i.hi == n.hi {
		if i.lo == n.lo {
			return 0
		} else if i.lo > n.lo {
			return 1
		}
		return -1
	} else if i.hi > n.hi {
		return 1
	}
	return -1
}

func (i Int128) Equal(n Int128) bool {
	return i.hi == n.hi && i.lo == n.lo
}

func (i Int128) GreaterThan(n Int128) bool {
	return i.hi > n.hi || (i.hi == n.hi && i.lo > n.lo)
}

func (i Int128) GreaterOrEqualTo(n Int128) bool {
	return i.hi > n.hi || (i.hi == n.hi && i.lo >= n.lo)
}

func (i Int128) LessThan(n Int128) bool {
	return i.hi < n.hi || (i.hi == n.hi && i.lo < n.lo)
}

func (i Int128) LessOrEqualTo(n Int128) bool {
	return i.hi < n.hi || (i.hi == n.hi && i.lo <= n.lo)
}

func (i Int128) Inc() (v Int128) {
	v.lo = i.lo + 1
	v.hi = i.hi
	if i.lo > v.lo {
		v.hi++
	}
	return v
}

func (i Int128) Dec() (v Int128) {
	v.lo = i.lo - 1
	v.hi = i.hi
	if i.lo < v.lo {
		v.hi--
	}
	return v
}

// Neg returns -i. Negating Int128Min() overflows back to Int128Min(), as it
// does for every two's complement integer.
func (i Int128) Neg() (v Int128) {
	v.hi = ^i.hi
	v.lo = ^i.lo + 1
	if v.lo == 0 { // carry
		v.hi++
	}
	return v
}

// Abs returns |i|. Like Neg, Abs(Int128Min()) overflows to Int128Min().
func (i Int128) Abs() Int128 {
	if i.hi < 0 {
		return i.Neg()
	}
	return i
}

// absU128 returns the magnitude of i as an unsigned 128-bit value; unlike
// Abs, this is exact for Int128Min().
func (i Int128) absU128() uint128 {
	if i.hi < 0 {
		n := i.Neg()
		return uint128{hi: uint64(n.hi), lo: n.lo}
	}
	return uint128{hi: uint64(i.hi), lo: i.lo}
}

// asU128 reinterprets the raw bit pattern of i as unsigned.
func (i Int128) asU128() uint128 {
	return uint128{hi: uint64(i.hi), lo: i.lo}
}
