package int128

import (
	"math/bits"
)

// CountLeadingZeros32 returns the number of zero bits before the most
// significant set bit of x. The result is 32 for x == 0.
func CountLeadingZeros32(x uint32) int {
	return bits.LeadingZeros32(x)
}

// MostSignificantSetBit128 returns the 0-based index (0-127) of the most
// significant set bit of the raw 128-bit pattern of n:
//
//	MostSignificantSetBit128(Int128From64(5)) == 2 // 0b101
//
// A negative n always returns 127. MostSignificantSetBit128 panics if n is
// zero.
func MostSignificantSetBit128(n Int128) int {
	return msb128(uint64(n.hi), n.lo)
}

// msb128 searches the high half first, then the low half offset by 64. Each
// half is scanned with a full 64-bit leading zero count.
func msb128(hi, lo uint64) int {
	if hi != 0 {
		return 127 - bits.LeadingZeros64(hi)
	}
	if lo == 0 {
		panic("int128: most significant bit of zero")
	}
	return 63 - bits.LeadingZeros64(lo)
}

// LeadingZeros returns the number of leading zero bits in the raw 128-bit
// pattern of i; the result is 128 for 0 and 0 for any negative i.
func (i Int128) LeadingZeros() uint {
	if i.hi == 0 {
		return uint(bits.LeadingZeros64(i.lo)) + 64
	}
	return uint(bits.LeadingZeros64(uint64(i.hi)))
}

// TrailingZeros returns the number of trailing zero bits in i; the result is
// 128 for 0.
func (i Int128) TrailingZeros() uint {
	if i.lo == 0 {
		return uint(bits.TrailingZeros64(uint64(i.hi))) + 64
	}
	return uint(bits.TrailingZeros64(i.lo))
}

// BitLen returns the number of bits required to represent |i|. The result is
// 0 for 0 and 128 for Int128Min().
func (i Int128) BitLen() int {
	m := i.absU128()
	if m.hi != 0 {
		return 128 - bits.LeadingZeros64(m.hi)
	}
	return 64 - bits.LeadingZeros64(m.lo)
}

// Bit returns the value of bit n of the raw pattern of i; n must be in
// [0, 127].
func (i Int128) Bit(n int) uint {
	if n >= 64 {
		return uint(uint64(i.hi)>>uint(n-64)) & 1
	}
	return uint(i.lo>>uint(n)) & 1
}

// SetBit returns i with bit n of the raw pattern set to b (0 or 1); n must be
// in [0, 127].
func (i Int128) SetBit(n int, b uint) Int128 {
	if n >= 64 {
		mask := uint64(1) << uint(n-64)
		h := uint64(i.hi)
		if b == 0 {
			h &^= mask
		} else {
			h |= mask
		}
		i.hi = int64(h)
	} else {
		mask := uint64(1) << uint(n)
		if b == 0 {
			i.lo &^= mask
		} else {
			i.lo |= mask
		}
	}
	return i
}
