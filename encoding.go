package int128

import (
	"encoding/binary"
	"fmt"

	bin "github.com/gagliardetto/binary"
	"github.com/tidwall/gjson"
)

const binaryLen = 16

// MarshalText implements encoding.TextMarshaler using the decimal form
// returned by String.
func (i Int128) MarshalText() ([]byte, error) {
	return AppendInt128(nil, i, FormatOptions{}), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts the same
// input as ParseInt128 with base 0.
func (i *Int128) UnmarshalText(bts []byte) (err error) {
	v, err := ParseInt128(string(bts), 0)
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// MarshalJSON implements json.Marshaler. The value is written as a quoted
// decimal string, as most JSON consumers cannot hold 128 bits in a number.
func (i Int128) MarshalJSON() ([]byte, error) {
	out := make([]byte, 0, Int128Digits10+4)
	out = append(out, '"')
	out = AppendInt128(out, i, FormatOptions{})
	out = append(out, '"')
	return out, nil
}

// UnmarshalJSON implements json.Unmarshaler. It accepts a quoted string in
// any form UnmarshalText accepts, or a bare JSON integer. null leaves i
// unchanged.
func (i *Int128) UnmarshalJSON(bts []byte) (err error) {
	if !gjson.ValidBytes(bts) {
		return syntaxError("invalid JSON %q", bts)
	}

	res := gjson.ParseBytes(bts)
	switch res.Type {
	case gjson.Null:
		return nil
	case gjson.String:
		return i.UnmarshalText([]byte(res.Str))
	case gjson.Number:
		v, err := ParseInt128(res.Raw, 10)
		if err != nil {
			return err
		}
		*i = v
		return nil
	default:
		return syntaxError("unexpected JSON %s for int128", res.Type)
	}
}

// MarshalBinary implements encoding.BinaryMarshaler. The output is the raw
// 128-bit pattern in big-endian order.
func (i Int128) MarshalBinary() ([]byte, error) {
	out := make([]byte, binaryLen)
	i.PutBytesBE(out)
	return out, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. It is the inverse
// of MarshalBinary and requires exactly 16 bytes.
func (i *Int128) UnmarshalBinary(data []byte) (err error) {
	defer Error.WrapP(&err)

	if len(data) != binaryLen {
		return fmt.Errorf("binary int128 must be %d bytes, found %d", binaryLen, len(data))
	}
	*i = Int128FromBytesBE(data)
	return nil
}

// AsBinInt128 converts i to the Borsh representation used by
// github.com/gagliardetto/binary, which stores the two halves little-endian.
func (i Int128) AsBinInt128() bin.Int128 {
	return bin.Int128{
		Lo:         i.lo,
		Hi:         uint64(i.hi),
		Endianness: binary.LittleEndian,
	}
}

// Int128FromBinInt128 is the counterpart to AsBinInt128.
func Int128FromBinInt128(v bin.Int128) Int128 {
	return Int128{hi: int64(v.Hi), lo: v.Lo}
}

// MarshalWithEncoder implements bin.EncoderDecoder, writing the 16 byte
// little-endian two's complement form Borsh uses for i128.
func (i Int128) MarshalWithEncoder(enc *bin.Encoder) (err error) {
	defer Error.WrapP(&err)

	if err = enc.WriteUint64(i.lo, binary.LittleEndian); err != nil {
		return err
	}
	return enc.WriteUint64(uint64(i.hi), binary.LittleEndian)
}

// UnmarshalWithDecoder implements bin.EncoderDecoder and is the inverse of
// MarshalWithEncoder.
func (i *Int128) UnmarshalWithDecoder(dec *bin.Decoder) (err error) {
	defer Error.WrapP(&err)

	lo, err := dec.ReadUint64(binary.LittleEndian)
	if err != nil {
		return err
	}
	hi, err := dec.ReadUint64(binary.LittleEndian)
	if err != nil {
		return err
	}
	*i = Int128{hi: int64(hi), lo: lo}
	return nil
}
