package int128

import (
	"math/bits"
)

// Add returns i + n. Overflow wraps around, as for Go's sized integers.
func (i Int128) Add(n Int128) (v Int128) {
	v.lo = i.lo + n.lo
	v.hi = i.hi + n.hi
	if i.lo > v.lo { // carry
		v.hi++
	}
	return v
}

// Sub returns i - n. Overflow wraps around, as for Go's sized integers.
func (i Int128) Sub(n Int128) (v Int128) {
	v.lo = i.lo - n.lo
	v.hi = i.hi - n.hi
	if i.lo < n.lo { // borrow
		v.hi--
	}
	return v
}

// Mul returns the product of two Int128s, discarding any bits above 128.
//
// Overflow wraps around, as for Go's sized integers.
func (i Int128) Mul(n Int128) Int128 {
	var hi, lo uint64
	if nativeMul64 {
		hi, lo = mulNative(uint64(i.hi), i.lo, uint64(n.hi), n.lo)
	} else {
		hi, lo = mulPortable(uint64(i.hi), i.lo, uint64(n.hi), n.lo)
	}
	return Int128{hi: int64(hi), lo: lo}
}

// mulNative multiplies using the widening 64x64->128 multiply from
// math/bits, which is a single instruction on the architectures listed in
// mul_native.go.
func mulNative(uhi, ulo, nhi, nlo uint64) (ohi, olo uint64) {
	ohi, olo = bits.Mul64(ulo, nlo)
	ohi += uhi*nlo + ulo*nhi
	return ohi, olo
}

// mulPortable multiplies using four 32-bit limb partial products of the low
// halves. The cross terms of the high halves only contribute to the upper
// 64 bits, so they are accumulated with plain 64-bit multiplies.
func mulPortable(uhi, ulo, nhi, nlo uint64) (ohi, olo uint64) {
	// Adapted from Warren, Hacker's Delight, p. 132.
	hl := uhi*nlo + ulo*nhi

	olo = ulo * nlo // lower 64 bits are easy

	// break the multiplication into (x1 << 32 + x0)(y1 << 32 + y0)
	// which is x1*y1 << 64 + (x0*y1 + x1*y0) << 32 + x0*y0
	// so now we can do 64 bit multiplication and addition and
	// shift the results into the right place
	x0, x1 := ulo&0x00000000ffffffff, ulo>>32
	y0, y1 := nlo&0x00000000ffffffff, nlo>>32
	t := x1*y0 + (x0*y0)>>32
	w1 := (t & 0x00000000ffffffff) + (x0 * y1)
	ohi = (x1 * y1) + (t >> 32) + (w1 >> 32) + hl
	return ohi, olo
}

// Lsh returns i << n. n must be in [0, 127]; larger amounts shift every bit
// out and return 0.
func (i Int128) Lsh(n uint) (v Int128) {
	if n == 0 {
		return i
	} else if n < 64 {
		v.hi = (i.hi << n) | int64(i.lo>>(64-n))
		v.lo = i.lo << n
	} else {
		// A 64-bit shift by 64 or more can't carry bits across the halves,
		// so the low half moves up whole and shifts by the remainder.
		v.hi = int64(i.lo << (n - 64))
		v.lo = 0
	}
	return v
}

// Rsh returns i >> n using an arithmetic (sign-filling) shift, like a Go
// signed integer. n must be in [0, 127]; larger amounts return 0 or -1.
func (i Int128) Rsh(n uint) (v Int128) {
	if n == 0 {
		return i
	} else if n < 64 {
		v.lo = (i.lo >> n) | (uint64(i.hi) << (64 - n))
		v.hi = i.hi >> n
	} else {
		v.lo = uint64(i.hi >> (n - 64))
		v.hi = i.hi >> 63
	}
	return v
}

func (i Int128) And(n Int128) Int128 {
	return Int128{hi: i.hi & n.hi, lo: i.lo & n.lo}
}

func (i Int128) AndNot(n Int128) Int128 {
	return Int128{hi: i.hi &^ n.hi, lo: i.lo &^ n.lo}
}

func (i Int128) Or(n Int128) Int128 {
	return Int128{hi: i.hi | n.hi, lo: i.lo | n.lo}
}

func (i Int128) Xor(n Int128) Int128 {
	return Int128{hi: i.hi ^ n.hi, lo: i.lo ^ n.lo}
}

// Not returns the bitwise complement ^i.
func (i Int128) Not() Int128 {
	return Int128{hi: ^i.hi, lo: ^i.lo}
}
