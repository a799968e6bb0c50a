package abiview

import (
	"bytes"

	"golang.org/x/exp/constraints"
)

// Uint128 is a fixed-width 128-bit unsigned value, the widened result of
// U256View.ToUint128. It is a pair of machine words, not an arbitrary
// precision integer — spec §1 explicitly excludes bignum arithmetic from
// this package, and this type never grows beyond two uint64s.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// IsZero reports whether the value is zero.
func (u Uint128) IsZero() bool { return u.Hi == 0 && u.Lo == 0 }

// UintView is a narrow unsigned integer decoded from one ABI word. T is one
// of Go's native unsigned kinds (uint8, uint16, uint32, uint64); 128-bit
// values use Uint128 directly since Go has no native uint128 kind.
type UintView[T constraints.Unsigned] struct {
	value T
}

// Value returns the decoded value. Construction already validated the
// word's padding, so this accessor is infallible.
func (v UintView[T]) Value() T { return v.value }

// U256View borrows exactly 32 bytes, interpreted big-endian unsigned.
// Construction never fails on content (any 32-byte pattern is a valid
// uint256); narrowing can fail independently, per spec §4.B/§7.
type U256View struct {
	b []byte // exactly 32 bytes, borrowed
}

// AsBytes returns the borrowed 32-byte big-endian representation.
func (v U256View) AsBytes() []byte { return v.b }

// IsZero reports whether the value is zero.
func (v U256View) IsZero() bool { return isZero32(v.b) }

// Equal reports whether two views borrow equal bytes (spec §4.B: equality
// is defined over borrowed bytes, not pointer identity).
func (v U256View) Equal(o U256View) bool { return bytes.Equal(v.b, o.b) }

// leadingZeroBytes returns the byte slice left of the trailing w bytes.
func (v U256View) leadingZeroBytes(w int) []byte { return v.b[:WordSize-w] }

// narrowUintBytes checks that the high WordSize-w bytes are all zero and,
// if so, returns the low w bytes as the natural-width unsigned value.
func narrowUintBytes(v U256View, w int) ([]byte, error) {
	if !isZero32(v.leadingZeroBytes(w)) {
		return nil, newErr(IntegerOverflow, "high bytes nonzero for requested width")
	}
	return v.b[WordSize-w:], nil
}

// ToUint8 narrows to uint8, failing with IntegerOverflow if bits outside the width are set.
func (v U256View) ToUint8() (uint8, error) {
	lo, e := narrowUintBytes(v, 1)
	if e != nil {
		return 0, e
	}
	return lo[0], nil
}

// ToUint16 narrows to uint16.
func (v U256View) ToUint16() (uint16, error) {
	lo, e := narrowUintBytes(v, 2)
	if e != nil {
		return 0, e
	}
	return beUint16(lo), nil
}

// ToUint32 narrows to uint32.
func (v U256View) ToUint32() (uint32, error) {
	lo, e := narrowUintBytes(v, 4)
	if e != nil {
		return 0, e
	}
	return beUint32(lo), nil
}

// ToUint64 narrows to uint64.
func (v U256View) ToUint64() (uint64, error) {
	lo, e := narrowUintBytes(v, 8)
	if e != nil {
		return 0, e
	}
	return beUint64(lo), nil
}

// ToUint128 narrows to Uint128.
func (v U256View) ToUint128() (Uint128, error) {
	lo, e := narrowUintBytes(v, 16)
	if e != nil {
		return Uint128{}, e
	}
	return Uint128{Hi: beUint64(lo[:8]), Lo: beUint64(lo[8:])}, nil
}

func beUint16(b []byte) uint16 { return uint16(b[0])<<8 | uint16(b[1]) }

func beUint32(b []byte) uint32 {
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

func beUint64(b []byte) uint64 {
	return uint64(b[0])<<56 | uint64(b[1])<<48 | uint64(b[2])<<40 | uint64(b[3])<<32 |
		uint64(b[4])<<24 | uint64(b[5])<<16 | uint64(b[6])<<8 | uint64(b[7])
}
