package abiview

import (
	"bytes"

	"golang.org/x/exp/constraints"
)

// Int128 is a fixed-width 128-bit signed value, the widened result of
// I256View.ToInt128. Like Uint128, this is a fixed pair of machine words,
// not an arbitrary-precision integer.
type Int128 struct {
	Hi int64
	Lo uint64
}

// IsNegative reports whether the value is negative (sign bit of Hi set).
func (i Int128) IsNegative() bool { return i.Hi < 0 }

// IntView is a narrow signed integer decoded from one ABI word.
type IntView[T constraints.Signed] struct {
	value T
}

// Value returns the decoded value.
func (v IntView[T]) Value() T { return v.value }

// I256View borrows exactly 32 bytes, interpreted big-endian two's-complement.
type I256View struct {
	b []byte // exactly 32 bytes, borrowed
}

// AsBytes returns the borrowed 32-byte big-endian two's-complement representation.
func (v I256View) AsBytes() []byte { return v.b }

// IsNegative reports whether the sign bit (top bit of the first byte) is set.
func (v I256View) IsNegative() bool { return v.b[0]&0x80 != 0 }

// Equal reports whether two views borrow equal bytes (spec §4.B: equality
// is defined over borrowed bytes, not pointer identity).
func (v I256View) Equal(o I256View) bool { return bytes.Equal(v.b, o.b) }

// signExtensionByte is the byte every high-order padding byte must equal
// for a valid sign-extended narrowing to w bytes: 0x00 when the top bit of
// the low w bytes is clear, 0xFF when it is set.
func (v I256View) signExtensionByte(w int) byte {
	if v.b[WordSize-w]&0x80 != 0 {
		return 0xFF
	}
	return 0x00
}

// narrowIntBytes checks that the high WordSize-w bytes all equal the sign
// extension byte and, if so, returns the low w bytes.
func narrowIntBytes(v I256View, w int) ([]byte, error) {
	pad := v.b[:WordSize-w]
	sign := v.signExtensionByte(w)
	for _, b := range pad {
		if b != sign {
			return nil, newErr(IntegerOverflow, "high bytes are not a valid sign extension for requested width")
		}
	}
	return v.b[WordSize-w:], nil
}

// ToInt8 narrows to int8, failing with IntegerOverflow if the upper bytes
// are not a valid sign extension of the low byte.
func (v I256View) ToInt8() (int8, error) {
	lo, e := narrowIntBytes(v, 1)
	if e != nil {
		return 0, e
	}
	return int8(lo[0]), nil
}

// ToInt16 narrows to int16.
func (v I256View) ToInt16() (int16, error) {
	lo, e := narrowIntBytes(v, 2)
	if e != nil {
		return 0, e
	}
	return int16(beUint16(lo)), nil
}

// ToInt32 narrows to int32.
func (v I256View) ToInt32() (int32, error) {
	lo, e := narrowIntBytes(v, 4)
	if e != nil {
		return 0, e
	}
	return int32(beUint32(lo)), nil
}

// ToInt64 narrows to int64.
func (v I256View) ToInt64() (int64, error) {
	lo, e := narrowIntBytes(v, 8)
	if e != nil {
		return 0, e
	}
	return int64(beUint64(lo)), nil
}

// ToInt128 narrows to Int128.
func (v I256View) ToInt128() (Int128, error) {
	lo, e := narrowIntBytes(v, 16)
	if e != nil {
		return Int128{}, e
	}
	return Int128{Hi: int64(beUint64(lo[:8])), Lo: beUint64(lo[8:])}, nil
}
