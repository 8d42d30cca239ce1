package int128

// DivMod returns the quotient q and remainder r of i divided by by, using
// shift-subtract long division directly on the signed bit pattern. If
// by == 0, a division-by-zero run-time panic occurs.
//
// The division compares and subtracts signed values without first taking
// absolute values, so its results only coincide with ordinary division when
// both operands are non-negative:
//
//	DivMod( 10,   3) ==  3,   1
//	DivMod(-10,   3) ==  0, -10 // 3 > -10: all remainder
//	DivMod( 10,  -3) ==  0,  10 // the divisor can't be aligned below the dividend
//	DivMod( -3, -10) ==  1,   7 // one subtraction step: -3 - -10
//
// Use QuoRem for Go's truncated division.
func (i Int128) DivMod(by Int128) (q, r Int128) {
	if by == zeroInt128 {
		panic("int128: division by zero")
	}

	if by.GreaterThan(i) {
		return zeroInt128, i // it's 100% remainder
	} else if by == i {
		return oneInt128, zeroInt128 // dividend and divisor are the same
	} else if i == zeroInt128 {
		return zeroInt128, zeroInt128 // only reachable when by < 0
	}

	// Left-align the most significant bits of the divisor and the dividend.
	// A negative divisor always has bit 127 set, so a non-negative dividend
	// can't be aligned with it and the whole dividend is the remainder.
	shift := MostSignificantSetBit128(i) - MostSignificantSetBit128(by)
	if shift < 0 {
		return zeroInt128, i
	}
	den := by.Lsh(uint(shift))

	// The remainder is left in i.
	for ; shift >= 0; shift-- {
		q = q.Lsh(1)
		if i.GreaterOrEqualTo(den) {
			i = i.Sub(den)
			q.lo |= 1
		}
		den = den.Rsh(1)
	}

	return q, i
}

// Div returns the quotient of DivMod.
func (i Int128) Div(by Int128) Int128 {
	q, _ := i.DivMod(by)
	return q
}

// Mod returns the remainder of DivMod.
func (i Int128) Mod(by Int128) Int128 {
	_, r := i.DivMod(by)
	return r
}

// QuoRem returns the quotient q and remainder r for by != 0. If by == 0, a
// division-by-zero run-time panic occurs.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = x/y      with the result truncated to zero
//	r = x - y*q
//
// Int128Min().QuoRem(Int128From64(-1)) overflows to Int128Min(), 0, just as
// math.MinInt64 / -1 does.
func (i Int128) QuoRem(by Int128) (q, r Int128) {
	qu, ru := i.absU128().quoRem(by.absU128())
	q, r = qu.asInt128(), ru.asInt128()
	if (i.hi < 0) != (by.hi < 0) {
		q = q.Neg()
	}
	if i.hi < 0 {
		r = r.Neg()
	}
	return q, r
}

// Quo returns the quotient x/y for y != 0. If y == 0, a division-by-zero
// run-time panic occurs. Quo implements truncated division (like Go); see
// QuoRem for more details.
func (i Int128) Quo(by Int128) (q Int128) {
	q, _ = i.QuoRem(by)
	return q
}

// Rem returns the remainder of x%y for y != 0. If y == 0, a division-by-zero
// run-time panic occurs. Rem implements truncated modulus (like Go); see
// QuoRem for more details.
func (i Int128) Rem(by Int128) (r Int128) {
	_, r = i.QuoRem(by)
	return r
}
