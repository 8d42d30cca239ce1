package int128

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AsDecimal converts i to an arbitrary precision decimal with exponent 0.
func (i Int128) AsDecimal() decimal.Decimal {
	return decimal.NewFromBigInt(i.AsBigInt(), 0)
}

// Int128FromDecimal truncates d towards zero and converts the result to an
// Int128. Values outside the Int128 range wrap modulo 2^128. accurate is
// 'false' if d had a fractional part or did not fit.
func Int128FromDecimal(d decimal.Decimal) (out Int128, accurate bool) {
	out, accurate = Int128FromBigInt(d.BigInt())
	return out, accurate && d.IsInteger()
}

// AsUUID reinterprets the raw 128-bit pattern of i as a UUID, most
// significant byte first. No version or variant bits are set.
func (i Int128) AsUUID() (u uuid.UUID) {
	i.PutBytesBE(u[:])
	return u
}

// Int128FromUUID is the counterpart to AsUUID.
func Int128FromUUID(u uuid.UUID) Int128 {
	return Int128FromBytesBE(u[:])
}
