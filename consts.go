package int128

import (
	"math/big"
)

// Numeric properties of Int128. Int128 is a bounded, exact, signed binary
// integer; arithmetic on it wraps modulo 2^128 and never saturates or traps.
const (
	Int128Bits     = 128
	Int128Digits   = 127 // non-sign bits
	Int128Digits10 = 38  // decimal digits representable without change
)

const (
	maxUint64 = 1<<64 - 1
	maxInt64  = 1<<63 - 1
	minInt64  = -1 << 63

	wrapUint64Float = float64(maxUint64) + 1                        // 1 << 64
	wrapInt127Float = float64(170141183460469231731687303715884105728) // 1 << 127
)

var (
	maxInt128 = Int128{hi: maxInt64, lo: maxUint64}
	minInt128 = Int128{hi: minInt64, lo: 0}

	zeroInt128 Int128
	oneInt128  = Int128{lo: 1}

	big0 = new(big.Int).SetInt64(0)
	big1 = new(big.Int).SetInt64(1)

	maxBigUint64 = new(big.Int).SetUint64(maxUint64)

	// maxBigU128 is (1 << 128) - 1; it masks a big.Int down to the raw
	// 128-bit pattern.
	maxBigU128, _ = new(big.Int).SetString("340282366920938463463374607431768211455", 10)

	minBigInt128, _ = new(big.Int).SetString("-170141183460469231731687303715884105728", 10)
	maxBigInt128, _ = new(big.Int).SetString("170141183460469231731687303715884105727", 10)

	// wrapBigU128 is 1 << 128, used to simulate over/underflow:
	wrapBigU128, _ = new(big.Int).SetString("340282366920938463463374607431768211456", 10)
)

// Int128Max returns the largest value representable by an Int128,
// 2^127 - 1.
func Int128Max() Int128 { return maxInt128 }

// Int128Min returns the smallest value representable by an Int128, -2^127.
func Int128Min() Int128 { return minInt128 }
