package int128

import (
	"encoding/binary"
	"math/big"
)

// AsInt64 truncates the Int128 to fit in a int64. Values outside the range
// will over/underflow, exactly as a hardware narrowing conversion does. See
// IsInt64() if you want to check before you convert.
func (i Int128) AsInt64() int64 { return int64(i.lo) }

func (i Int128) AsInt32() int32 { return int32(i.lo) }
func (i Int128) AsInt16() int16 { return int16(i.lo) }
func (i Int128) AsInt8() int8   { return int8(i.lo) }
func (i Int128) AsInt() int     { return int(i.lo) }

// AsUint64 truncates the Int128 to its low 64 bits. See IsUint64() if you
// want to check before you convert.
func (i Int128) AsUint64() uint64 { return i.lo }

func (i Int128) AsUint32() uint32 { return uint32(i.lo) }
func (i Int128) AsUint16() uint16 { return uint16(i.lo) }
func (i Int128) AsUint8() uint8   { return uint8(i.lo) }
func (i Int128) AsUint() uint     { return uint(i.lo) }

// IsInt64 reports whether i can be represented as a int64.
func (i Int128) IsInt64() bool {
	if i.hi < 0 {
		return i.hi == -1 && i.lo >= signBit
	}
	return i.hi == 0 && i.lo <= maxInt64
}

// IsUint64 reports whether i can be represented as a uint64.
func (i Int128) IsUint64() bool {
	return i.hi == 0
}

// Int128FromBigInt creates an Int128 from a big.Int. Values outside the
// Int128 range wrap modulo 2^128, as a narrowing integer conversion does, and
// set accurate to 'false'.
func Int128FromBigInt(v *big.Int) (out Int128, accurate bool) {
	accurate = v.Cmp(minBigInt128) >= 0 && v.Cmp(maxBigInt128) <= 0
	return int128FromBigPattern(v), accurate
}

// int128FromBigPattern returns the low 128 bits of the two's complement
// representation of v.
func int128FromBigPattern(v *big.Int) Int128 {
	// big.Int's And treats negative numbers as infinitely sign-extended two's
	// complement, so this is exactly the truncated bit pattern.
	var u, lo big.Int
	u.And(v, maxBigU128)
	lo.And(&u, maxBigUint64)
	u.Rsh(&u, 64)
	return Int128{hi: int64(u.Uint64()), lo: lo.Uint64()}
}

// IntoBigInt copies this Int128 into a big.Int, allowing you to retain and
// recycle memory.
func (i Int128) IntoBigInt(b *big.Int) {
	m := i.absU128()
	b.SetUint64(m.hi)
	b.Lsh(b, 64)

	var lo big.Int
	lo.SetUint64(m.lo)
	b.Or(b, &lo)

	if i.hi < 0 {
		b.Neg(b)
	}
}

// AsBigInt allocates a new big.Int and copies this Int128 into it.
func (i Int128) AsBigInt() (b *big.Int) {
	b = new(big.Int)
	i.IntoBigInt(b)
	return b
}

// PutBytesBE stores the raw pattern of i in b in big-endian order. It panics
// if len(b) < 16.
func (i Int128) PutBytesBE(b []byte) {
	binary.BigEndian.PutUint64(b[:8], uint64(i.hi))
	binary.BigEndian.PutUint64(b[8:16], i.lo)
}

// PutBytesLE stores the raw pattern of i in b in little-endian order. It
// panics if len(b) < 16.
func (i Int128) PutBytesLE(b []byte) {
	binary.LittleEndian.PutUint64(b[:8], i.lo)
	binary.LittleEndian.PutUint64(b[8:16], uint64(i.hi))
}

// Int128FromBytesBE is the counterpart to PutBytesBE. It panics if
// len(b) < 16.
func Int128FromBytesBE(b []byte) Int128 {
	return Int128{
		hi: int64(binary.BigEndian.Uint64(b[:8])),
		lo: binary.BigEndian.Uint64(b[8:16]),
	}
}

// Int128FromBytesLE is the counterpart to PutBytesLE. It panics if
// len(b) < 16.
func Int128FromBytesLE(b []byte) Int128 {
	return Int128{
		hi: int64(binary.LittleEndian.Uint64(b[8:16])),
		lo: binary.LittleEndian.Uint64(b[:8]),
	}
}
