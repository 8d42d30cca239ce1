package int128

// uint128 is the unsigned view of a 128-bit pattern. It backs the operations
// that need an unsigned magnitude: truncated division and text formatting,
// where Int128Min() has no positive Int128 counterpart and hex/octal render
// the raw pattern.
type uint128 struct {
	hi, lo uint64
}

func (u uint128) isZero() bool { return u.hi|u.lo == 0 }

func (u uint128) asInt128() Int128 { return Int128{hi: int64(u.hi), lo: u.lo} }

func (u uint128) cmp(n uint128) int {
	if u.hi > n.hi {
		return 1
	} else if u.hi < n.hi {
		return -1
	} else if u.lo > n.lo {
		return 1
	} else if u.lo < n.lo {
		return -1
	}
	return 0
}

func (u uint128) sub(n uint128) (v uint128) {
	v.lo = u.lo - n.lo
	v.hi = u.hi - n.hi
	if u.lo < n.lo {
		v.hi--
	}
	return v
}

func (u uint128) lsh(n uint) (v uint128) {
	if n == 0 {
		return u
	} else if n < 64 {
		v.hi = (u.hi << n) | (u.lo >> (64 - n))
		v.lo = u.lo << n
	} else {
		v.hi = u.lo << (n - 64)
	}
	return v
}

// quoRem divides u by a nonzero divisor using shift-subtract long division,
// one quotient bit per step. If by == 0, a division-by-zero panic occurs.
func (u uint128) quoRem(by uint128) (q, r uint128) {
	if by.isZero() {
		panic("int128: division by zero")
	}

	if u.hi|by.hi == 0 {
		// protected from div/0 because by.lo is guaranteed to be set if by.hi is 0:
		q.lo = u.lo / by.lo
		r.lo = u.lo % by.lo
		return q, r
	}

	if cmp := u.cmp(by); cmp < 0 {
		return q, u // it's 100% remainder
	} else if cmp == 0 {
		q.lo = 1 // dividend and divisor are the same
		return q, r
	}

	return quoRem128bin(u, by)
}

// quoRem128bin expects u > by > 0.
func quoRem128bin(u, by uint128) (q, r uint128) {
	shift := msb128(u.hi, u.lo) - msb128(by.hi, by.lo)
	by = by.lsh(uint(shift))

	for {
		// {{{ Lsh(1)
		q.hi = (q.hi << 1) | (q.lo >> 63)
		q.lo = q.lo << 1
		// }}}

		// performance tweak: simulate greater than or equal by hand-inlining "not less than".
		if !(u.hi < by.hi || (u.hi == by.hi && u.lo < by.lo)) {
			u = u.sub(by)
			q.lo |= 1
		}

		// {{{ Rsh(1)
		by.lo = (by.lo >> 1) | (by.hi << 63)
		by.hi = by.hi >> 1
		// }}}

		if shift <= 0 {
			break
		}
		shift--
	}

	return q, u
}
