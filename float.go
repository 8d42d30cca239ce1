// modpos, at the bottom of this file, is a heavily modified version of
// math.Mod that only supports our specific range of values.
//
// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package int128

import (
	"math"
	"math/big"
)

// Int128FromFloat32 creates an Int128 from a float32; see Int128FromFloat64.
func Int128FromFloat32(f float32) (out Int128, inRange bool) {
	return Int128FromFloat64(float64(f))
}

// Int128FromFloat64 creates an Int128 from a float64.
//
// Any fractional portion will be truncated towards zero.
//
// Floats outside the bounds of an Int128 are clamped to Int128Min() or
// Int128Max() and inRange will be set to false.
//
// NaN is treated as 0, inRange is set to false.
func Int128FromFloat64(f float64) (out Int128, inRange bool) {
	if f != f { // f != f == isnan
		return out, false
	}

	neg := f < 0
	if neg {
		f = -f
	}

	if f < wrapUint64Float {
		out = Int128{lo: uint64(f)}

	} else if f < wrapInt127Float {
		// f >= 1<<64 has no fractional part, so the modulus is exact.
		lo := modpos(f, wrapUint64Float)
		out = Int128{hi: int64(f / wrapUint64Float), lo: uint64(lo)}

	} else if neg && f == wrapInt127Float {
		return minInt128, true

	} else if neg {
		return minInt128, false

	} else {
		return maxInt128, false
	}

	if neg {
		out = out.Neg()
	}
	return out, true
}

// AsFloat64 returns the nearest float64 to i. Precision is lost for
// magnitudes above 1<<53.
func (i Int128) AsFloat64() float64 {
	if i.hi == 0 {
		return float64(i.lo)
	} else if i.hi == -1 && i.lo >= signBit {
		return float64(int64(i.lo))
	}

	m := i.absU128()
	f := (float64(m.hi) * wrapUint64Float) + float64(m.lo)
	if i.hi < 0 {
		return -f
	}
	return f
}

func (i Int128) AsBigFloat() (b *big.Float) {
	return new(big.Float).SetInt(i.AsBigInt())
}

// modpos is a very slimmed-down approximation of math.Mod, but without support
// for any of the things we don't need here. It is intended for when x is known
// to be positive. All calls have been hand-inlined for performance.
func modpos(x, y float64) float64 {
	const (
		mask  = 0x7FF
		shift = 64 - 11 - 1
		bias  = 1023
	)

	ybits := math.Float64bits(y)

	bits := ybits
	yexp := int((bits>>shift)&mask) - bias + 1
	bits &^= mask << shift
	bits |= (-1 + bias) << shift
	yfr := math.Float64frombits(bits)

	r := x
	for r >= y {
		bits = math.Float64bits(r)
		rexp := int((bits>>shift)&mask) - bias + 1
		bits &^= mask << shift
		bits |= (-1 + bias) << shift
		rfr := math.Float64frombits(bits)

		if rfr < yfr {
			rexp = rexp - 1
		}

		x := ybits
		exp := (rexp - yexp) + int(x>>shift)&mask - bias
		x &^= mask << shift
		x |= uint64(exp+bias) << shift
		r = r - math.Float64frombits(x)
	}
	return r
}
