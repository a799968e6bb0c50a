package abiview

import (
	"bytes"
	"unsafe"
)

// BytesView is a (len, borrow) pair for a dynamic `bytes` value: len is the
// length word read from the tail, and the borrow is exactly that many
// content bytes immediately following it. ABI zero-padding beyond len, up
// to the next 32-byte multiple, is never part of the borrow.
type BytesView struct {
	b []byte // len(b) == the decoded length, borrowed
}

// Len returns the number of content bytes.
func (v BytesView) Len() int { return len(v.b) }

// IsEmpty reports whether the value has zero content bytes.
func (v BytesView) IsEmpty() bool { return len(v.b) == 0 }

// AsSlice returns the borrowed content, aliasing the input buffer.
func (v BytesView) AsSlice() []byte { return v.b }

// Equal reports whether two views borrow equal bytes (spec §4.B: equality
// is defined over borrowed bytes, not pointer identity).
func (v BytesView) Equal(o BytesView) bool { return bytes.Equal(v.b, o.b) }

// StringView is a BytesView whose bytes are validated UTF-8 at construction.
type StringView struct {
	b BytesView
}

// Len returns the number of content bytes (not runes).
func (v StringView) Len() int { return v.b.Len() }

// IsEmpty reports whether the string is empty.
func (v StringView) IsEmpty() bool { return v.b.IsEmpty() }

// Equal reports whether two views borrow equal bytes (spec §4.B: equality
// is defined over borrowed bytes, not pointer identity).
func (v StringView) Equal(o StringView) bool { return v.b.Equal(o.b) }

// AsStr returns the borrowed content as a string with no copy. This relies
// on the input buffer never being mutated for the lifetime of the
// returned string, the same invariant every other view in this package
// depends on (spec §3 invariant 3).
func (v StringView) AsStr() string {
	b := v.b.AsSlice()
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}
