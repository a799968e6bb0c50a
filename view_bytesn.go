package abiview

import "bytes"

// BytesNView borrows the leading N bytes of a word for a fixed-width
// bytesN ABI type (bytes1..bytes32). N is a runtime field rather than a
// type parameter — see SPEC_FULL.md §9 for why Go's lack of const generics
// makes that the right call here, the same way the teacher's own
// BytesReader carries its extent as a runtime int rather than a type.
type BytesNView struct {
	n int
	b []byte // exactly n bytes, borrowed
}

// Len returns N, the fixed width of this bytesN value.
func (v BytesNView) Len() int { return v.n }

// AsBytes returns the borrowed N-byte slice, aliasing the input buffer.
func (v BytesNView) AsBytes() []byte { return v.b }

// ToBytes copies the N bytes into a freshly allocated, owned slice.
func (v BytesNView) ToBytes() []byte {
	out := make([]byte, v.n)
	copy(out, v.b)
	return out
}

// Equal reports whether two views borrow equal bytes (spec §4.B: equality
// is defined over borrowed bytes, not pointer identity).
func (v BytesNView) Equal(o BytesNView) bool { return bytes.Equal(v.b, o.b) }
