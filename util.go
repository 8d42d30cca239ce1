package int128

// RandSource is satisfied by *math/rand.Rand, among others.
type RandSource interface {
	Uint64() uint64
}

// RandInt128 generates a non-negative signed 128-bit random integer from an
// external source.
func RandInt128(source RandSource) (out Int128) {
	return Int128{hi: int64(source.Uint64() & maxInt64), lo: source.Uint64()}
}

// RandInt128Full generates a random Int128 drawn from the whole range,
// including negative numbers.
func RandInt128Full(source RandSource) (out Int128) {
	return Int128{hi: int64(source.Uint64()), lo: source.Uint64()}
}

// DifferenceInt128 subtracts the smaller of a and b from the larger. The
// result wraps if the true difference exceeds Int128Max().
func DifferenceInt128(a, b Int128) Int128 {
	if a.hi > b.hi {
		return a.Sub(b)
	} else if a.hi < b.hi {
		return b.Sub(a)
	} else if a.lo > b.lo {
		return a.Sub(b)
	} else if a.lo < b.lo {
		return b.Sub(a)
	}
	return Int128{}
}

func LargerInt128(a, b Int128) Int128 {
	if a.hi > b.hi {
		return a
	} else if a.hi < b.hi {
		return b
	} else if a.lo > b.lo {
		return a
	} else if a.lo < b.lo {
		return b
	}
	return a
}

func SmallerInt128(a, b Int128) Int128 {
	if a.hi < b.hi {
		return a
	} else if a.hi > b.hi {
		return b
	} else if a.lo < b.lo {
		return a
	} else if a.lo > b.lo {
		return b
	}
	return a
}
