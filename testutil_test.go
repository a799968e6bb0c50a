package abiview

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

// assertErrorIs is a package-private shorthand for assert.ErrorIs, used in
// subtests where a *testing.T rather than a suite receiver is in scope.
func assertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	assert.ErrorIs(t, err, target)
}

// word returns a 32-byte word with tail placed at the end (left-padded with
// zero), the layout every unsigned/address/bool value uses.
func word(tail ...byte) []byte {
	w := make([]byte, WordSize)
	copy(w[WordSize-len(tail):], tail)
	return w
}

// wordRightPad returns a 32-byte word with head placed at the start
// (right-padded with zero), the layout bytesN values use.
func wordRightPad(head ...byte) []byte {
	w := make([]byte, WordSize)
	copy(w, head)
	return w
}

// wordSigned returns a 32-byte word sign-extended from tail's first byte.
func wordSigned(tail ...byte) []byte {
	w := make([]byte, WordSize)
	sign := byte(0x00)
	if len(tail) > 0 && tail[0]&0x80 != 0 {
		sign = 0xFF
	}
	for i := range w {
		w[i] = sign
	}
	copy(w[WordSize-len(tail):], tail)
	return w
}

// beWord32 big-endian encodes v into a full 32-byte word.
func beWord32(v uint64) []byte {
	w := make([]byte, WordSize)
	for i := 0; i < 8; i++ {
		w[WordSize-1-i] = byte(v >> (8 * i))
	}
	return w
}

func hexString(b []byte) string { return hex.EncodeToString(b) }

func concatWords(words ...[]byte) []byte {
	var out []byte
	for _, w := range words {
		out = append(out, w...)
	}
	return out
}

// decodeConformanceCase dispatches a single static-word fixture by its
// declared type name to the matching reader, rendering the result as a
// plain string so conformance_test.go can compare it against the fixture's
// expected value regardless of the view's concrete Go type.
func decodeConformanceCase(typ string, word []byte) (string, error) {
	switch typ {
	case "uint256":
		v, e := ReadUint256(word, 0)
		if e != nil {
			return "", e
		}
		return new(big.Int).SetBytes(v.AsBytes()).String(), nil
	case "uint8":
		v, e := ReadUint8(word, 0)
		if e != nil {
			return "", e
		}
		return strconv.FormatUint(uint64(v.Value()), 10), nil
	case "int8":
		v, e := ReadInt8(word, 0)
		if e != nil {
			return "", e
		}
		return strconv.FormatInt(int64(v.Value()), 10), nil
	case "bool":
		v, e := ReadBool(word, 0)
		if e != nil {
			return "", e
		}
		return strconv.FormatBool(v.AsBool()), nil
	case "address":
		v, e := ReadAddress(word, 0)
		if e != nil {
			return "", e
		}
		return hex.EncodeToString(v.AsBytes()), nil
	default:
		return "", fmt.Errorf("unknown conformance fixture type %q", typ)
	}
}

// errKindSlug renders a *DecodeError's Kind as the kebab-case slug used in
// vectors.yaml's wantErr field.
func errKindSlug(e error) string {
	de, ok := e.(*DecodeError)
	if !ok {
		return ""
	}
	switch de.Kind {
	case OutOfBounds:
		return "out-of-bounds"
	case InvalidBoolean:
		return "invalid-boolean"
	case InvalidAddressPadding:
		return "invalid-address-padding"
	case InvalidBytesNPadding:
		return "invalid-bytesn-padding"
	case InvalidUtf8:
		return "invalid-utf8"
	case InvalidOffset:
		return "invalid-offset"
	case IntegerOverflow:
		return "integer-overflow"
	case InvalidLength:
		return "invalid-length"
	case InvalidSelector:
		return "invalid-selector"
	default:
		return ""
	}
}
