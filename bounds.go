package abiview

import "golang.org/x/exp/constraints"

// WordSize is the width of one ABI word: every static value occupies one,
// every dynamic value's head slot occupies one.
const WordSize = 32

// fits reports whether [off, off+n) lies fully inside a buffer of length
// bufLen, rejecting the additive overflow a naive off+n<=bufLen check would
// miss for attacker-controlled offsets near the int max.
func fits(bufLen, off, n int) bool {
	if off < 0 || n < 0 {
		return false
	}
	end := off + n
	if end < off { // overflow
		return false
	}
	return end <= bufLen
}

// checkRange is the single chokepoint every reader in this package routes
// through before it ever slices the input buffer.
func checkRange(buf []byte, off, n int) error {
	if !fits(len(buf), off, n) {
		return newErr(OutOfBounds, "range exceeds buffer length")
	}
	return nil
}

// checkWord is checkRange specialized to one 32-byte word.
func checkWord(buf []byte, off int) error {
	return checkRange(buf, off, WordSize)
}

// roundUp32 rounds n up to the next multiple of WordSize, the tail-content
// padding rule from spec §6. Mirrors the teacher's own Roundup[T
// constraints.Integer](n, align T) T, specialized to the ABI word size.
func roundUp32[T constraints.Integer](n T) T {
	const align = T(WordSize)
	return (n + (align - 1)) &^ (align - 1)
}

// checkOffsetWord validates a candidate head-word value interpreted as an
// absolute offset into a buffer of length bufLen: it must address a byte
// range that exists (value <= bufLen-32) and it must land on a 32-byte
// boundary. Returns the validated offset as an int.
func checkOffsetWord(bufLen int, value uint64) (int, error) {
	if bufLen < WordSize {
		return 0, newErr(InvalidOffset, "buffer too small to hold any word")
	}
	maxOffset := uint64(bufLen - WordSize)
	if value > maxOffset {
		return 0, newErr(InvalidOffset, "offset exceeds buffer")
	}
	if value%WordSize != 0 {
		return 0, newErr(InvalidOffset, "offset is not 32-byte aligned")
	}
	return int(value), nil
}

// checkElementCount validates a decoded element count against the buffer
// that must hold it, without ever multiplying count*WordSize first: that
// multiplication is exactly the overflow a crafted length word (e.g.
// 2^59+1, which passes ToUint64 cleanly) can wrap back into a small,
// innocent-looking value. Dividing the remaining buffer length instead
// keeps every intermediate value bounded by len(buf).
func checkElementCount(bufLen, elemBase, count int) error {
	if count < 0 {
		return newErr(InvalidLength, "negative element count")
	}
	if elemBase < 0 || elemBase > bufLen {
		return newErr(OutOfBounds, "element region base exceeds buffer")
	}
	maxElems := (bufLen - elemBase) / WordSize
	if count > maxElems {
		return newErr(InvalidLength, "declared element count exceeds remaining buffer")
	}
	return nil
}

// isZero32 reports whether every byte in word is zero.
func isZero32(word []byte) bool {
	for _, b := range word {
		if b != 0 {
			return false
		}
	}
	return true
}
