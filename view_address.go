package abiview

// AddressView borrows exactly 20 bytes: an EVM address, stripped of the 12
// leading zero pad bytes that precede it in its 32-byte word.
type AddressView struct {
	b []byte // exactly 20 bytes, borrowed
}

// AsBytes returns the borrowed 20-byte address, aliasing the input buffer.
func (v AddressView) AsBytes() []byte { return v.b }

// ToBytes copies the address into a fresh [20]byte array, for callers that
// need an owned value outliving the input buffer.
func (v AddressView) ToBytes() [20]byte {
	var out [20]byte
	copy(out[:], v.b)
	return out
}

// Equal reports whether two address views borrow equal bytes.
func (v AddressView) Equal(o AddressView) bool {
	if len(v.b) != len(o.b) {
		return false
	}
	for i := range v.b {
		if v.b[i] != o.b[i] {
			return false
		}
	}
	return true
}
