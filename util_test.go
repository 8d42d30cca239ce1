package int128

import (
	"fmt"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestDifferenceInt128(t *testing.T) {
	for idx, tc := range []struct {
		a, b, out Int128
	}{
		{i64(1), i64(1), i64(0)},
		{i64(5), i64(2), i64(3)},
		{i64(2), i64(5), i64(3)},
		{i64(-5), i64(2), i64(7)},
		{i64(2), i64(-5), i64(7)},
		{Int128{hi: 1}, i64(1), Int128{lo: maxUint64}},
		{Int128Max(), i64(0), Int128Max()},
		{Int128Min(), i64(-1), Int128Max()},
	} {
		t.Run(fmt.Sprintf("%d/|%s-%s|=%s", idx, tc.a, tc.b, tc.out), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, DifferenceInt128(tc.a, tc.b))
		})
	}
}

func TestLargerSmallerInt128(t *testing.T) {
	for idx, tc := range []struct {
		a, b, larger, smaller Int128
	}{
		{i64(1), i64(2), i64(2), i64(1)},
		{i64(-1), i64(1), i64(1), i64(-1)},
		{i64(-1), i64(-2), i64(-1), i64(-2)},
		{Int128Min(), Int128Max(), Int128Max(), Int128Min()},
		{Int128{hi: 1}, Int128{lo: maxUint64}, Int128{hi: 1}, Int128{lo: maxUint64}},
		{i64(3), i64(3), i64(3), i64(3)},
	} {
		t.Run(fmt.Sprintf("%d/%s,%s", idx, tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.larger, LargerInt128(tc.a, tc.b))
			tt.MustEqual(tc.larger, LargerInt128(tc.b, tc.a))
			tt.MustEqual(tc.smaller, SmallerInt128(tc.a, tc.b))
			tt.MustEqual(tc.smaller, SmallerInt128(tc.b, tc.a))
		})
	}
}

func TestRandInt128(t *testing.T) {
	tt := assert.WrapTB(t)

	var sawNeg bool
	for i := 0; i < 1000; i++ {
		tt.MustAssert(!RandInt128(globalRNG).IsNeg())
		if RandInt128Full(globalRNG).IsNeg() {
			sawNeg = true
		}
	}
	tt.MustAssert(sawNeg)
}
