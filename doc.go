/*
Package int128 provides a fixed-width, two's complement signed 128-bit integer
(Int128) whose arithmetic, comparison, bitwise, conversion and formatting
behaviour matches a hardware 128-bit integer bit for bit.

Int128 is a value type; all operations return new values. Arithmetic wraps
silently modulo 2^128, exactly like Go's own fixed-width integers:

	a := int128.Int128Max()
	fmt.Println(a.Add(int128.Int128From64(1)) == int128.Int128Min())
	// Output: true

Values beyond the range of a 64-bit literal can only be built from, or broken
into, their two halves:

	MakeInt128(high int64, low uint64) Int128
	Int128High64(v Int128) int64
	Int128Low64(v Int128) uint64

Int128 can be created from a variety of sources:

	Int128From64(v int64) Int128
	Int128From32(v int32) Int128
	Int128From16(v int16) Int128
	Int128From8(v int8) Int128
	Int128FromU64(v uint64) Int128
	Int128FromString(s string) (out Int128, accurate bool, err error)
	ParseInt128(s string, base int) (Int128, error)
	Int128FromBigInt(v *big.Int) (out Int128, accurate bool)
	Int128FromFloat64(f float64) (out Int128, inRange bool)
	Int128FromDecimal(d decimal.Decimal) (out Int128, accurate bool)
	Int128FromUUID(u uuid.UUID) Int128

Text formatting is locale-independent and follows the stream formatting
conventions of radix, uppercase, base prefix, explicit plus sign, field width,
fill character and alignment; see FormatOptions. Hexadecimal and octal output
renders the raw 128-bit pattern, so negative numbers print as their two's
complement bits.

Int128 supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- fmt.Scanner
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler
	- encoding.BinaryMarshaler
	- encoding.BinaryUnmarshaler
	- bin.BinaryMarshaler (github.com/gagliardetto/binary)
	- bin.BinaryUnmarshaler (github.com/gagliardetto/binary)

*/
package int128
