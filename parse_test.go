package int128

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestInt128FromString(t *testing.T) {
	for idx, tc := range []struct {
		in  string
		out Int128
		acc bool
	}{
		{"0", i64(0), true},
		{"-1", i64(-1), true},
		{"+1", i64(1), true},
		{"18446744073709551616", Int128{hi: 1}, true},
		{"170141183460469231731687303715884105727", Int128Max(), true},
		{"-170141183460469231731687303715884105728", Int128Min(), true},

		// Out of range values wrap:
		{"170141183460469231731687303715884105728", Int128Min(), false},
		{"340282366920938463463374607431768211455", i64(-1), false},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.in), func(t *testing.T) {
			tt := assert.WrapTB(t)
			out, acc, err := Int128FromString(tc.in)
			tt.MustOK(err)
			tt.MustEqual(tc.acc, acc)
			tt.MustEqual(tc.out, out)
		})
	}
}

func TestInt128FromStringInvalid(t *testing.T) {
	for _, in := range []string{"", "-", "1.5", "0x10", "1e3", "abc", " 1"} {
		t.Run(in, func(t *testing.T) {
			tt := assert.WrapTB(t)
			_, _, err := Int128FromString(in)
			tt.MustAssert(errors.Is(err, ErrSyntax), "%v", err)
			tt.MustAssert(Error.Has(err), "%v", err)
		})
	}
}

func TestParseInt128(t *testing.T) {
	for idx, tc := range []struct {
		in   string
		base int
		out  Int128
	}{
		{"0", 10, i64(0)},
		{"-0", 10, i64(0)},
		{"+42", 10, i64(42)},
		{"-42", 10, i64(-42)},
		{"170141183460469231731687303715884105727", 10, Int128Max()},
		{"-170141183460469231731687303715884105728", 10, Int128Min()},

		{"ff", 16, i64(255)},
		{"FF", 16, i64(255)},
		{"0xff", 16, i64(255)},
		{"0XFF", 16, i64(255)},
		{strings.Repeat("f", 32), 16, i64(-1)},
		{"0x80000000000000000000000000000000", 16, Int128Min()},
		{"7fffffffffffffffffffffffffffffff", 16, Int128Max()},

		{"377", 8, i64(255)},
		{"0377", 8, i64(255)},
		{"3" + strings.Repeat("7", 42), 8, i64(-1)},

		{"0x10", 0, i64(16)},
		{"010", 0, i64(8)},
		{"0", 0, i64(0)},
		{"10", 0, i64(10)},
		{"-10", 0, i64(-10)},
	} {
		t.Run(fmt.Sprintf("%d/%s:%d", idx, tc.in, tc.base), func(t *testing.T) {
			tt := assert.WrapTB(t)
			out, err := ParseInt128(tc.in, tc.base)
			tt.MustOK(err)
			tt.MustEqual(tc.out, out)
		})
	}
}

func TestParseInt128Errors(t *testing.T) {
	for idx, tc := range []struct {
		in   string
		base int
		err  error
	}{
		{"", 10, ErrSyntax},
		{"+", 10, ErrSyntax},
		{"+-1", 10, ErrSyntax},
		{"12a", 10, ErrSyntax},
		{"1 2", 10, ErrSyntax},
		{"0x", 16, ErrSyntax},
		{"-ff", 16, ErrSyntax},
		{"+ff", 16, ErrSyntax},
		{"8", 8, ErrSyntax},
		{"-7", 8, ErrSyntax},
		{"1", 2, ErrSyntax},
		{"1", 36, ErrSyntax},

		{"170141183460469231731687303715884105728", 10, ErrRange},
		{"-170141183460469231731687303715884105729", 10, ErrRange},
		{"1" + strings.Repeat("0", 32), 16, ErrRange},
		{"4" + strings.Repeat("0", 42), 8, ErrRange},
	} {
		t.Run(fmt.Sprintf("%d/%s:%d", idx, tc.in, tc.base), func(t *testing.T) {
			tt := assert.WrapTB(t)
			_, err := ParseInt128(tc.in, tc.base)
			tt.MustAssert(err != nil)
			tt.MustAssert(errors.Is(err, tc.err), "%v", err)
		})
	}
}

func TestParseInt128FormatRoundTrip(t *testing.T) {
	tt := assert.WrapTB(t)
	scratch := make([]byte, 16)

	for i := 0; i < 5000; i++ {
		v := randInt128(scratch)
		for _, o := range []FormatOptions{
			{Base: 10},
			{Base: 10, ShowPlus: true},
			{Base: 16},
			{Base: 16, ShowBase: true},
			{Base: 16, ShowBase: true, Uppercase: true},
			{Base: 8},
			{Base: 8, ShowBase: true},
		} {
			s := FormatInt128(v, o)
			out, err := ParseInt128(s, o.Base)
			tt.MustOK(err)
			tt.MustEqual(v, out, "%q", s)
		}
	}
}

func TestMustInt128FromString(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(i64(-5), MustInt128FromString("-5"))

	defer func() {
		r := recover()
		tt.MustAssert(r != nil)
	}()
	MustInt128FromString("nope")
}

func TestInt128Scan(t *testing.T) {
	for idx, tc := range []struct {
		in  string
		f   string
		out Int128
	}{
		{"123", "%d", i64(123)},
		{"-123", "%d", i64(-123)},
		{"-123", "%v", i64(-123)},
		{"0x10", "%v", i64(16)},
		{"170141183460469231731687303715884105727", "%d", Int128Max()},
		{"ff", "%x", i64(255)},
		{strings.Repeat("f", 32), "%x", i64(-1)},
		{"17", "%o", i64(15)},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.in), func(t *testing.T) {
			tt := assert.WrapTB(t)
			var v Int128
			n, err := fmt.Sscanf(tc.in, tc.f, &v)
			tt.MustOK(err)
			tt.MustEqual(1, n)
			tt.MustEqual(tc.out, v)
		})
	}
}

func TestInt128ScanRange(t *testing.T) {
	for _, tc := range []struct {
		in string
		f  string
	}{
		{"170141183460469231731687303715884105728", "%d"},
		{"1" + strings.Repeat("0", 32), "%x"},
		{"-1", "%x"},
	} {
		t.Run(tc.in, func(t *testing.T) {
			tt := assert.WrapTB(t)
			var v Int128
			_, err := fmt.Sscanf(tc.in, tc.f, &v)
			tt.MustAssert(errors.Is(err, ErrRange), "%v", err)
		})
	}
}

func TestInt128ScanMultiple(t *testing.T) {
	tt := assert.WrapTB(t)
	var a, b Int128
	n, err := fmt.Sscan("18446744073709551616 -1", &a, &b)
	tt.MustOK(err)
	tt.MustEqual(2, n)
	tt.MustEqual(Int128{hi: 1}, a)
	tt.MustEqual(i64(-1), b)
}
