package abiview

import "unicode/utf8"

// dereferenceHead implements spec §4.E steps 1-2: it reads the head word at
// headOff, narrows it to a machine-width offset, validates it, adds base,
// and validates the resulting absolute offset lies within buf. The
// returned int is the absolute offset of the tail's length word.
func dereferenceHead(buf []byte, headOff, base int) (int, error) {
	head, e := ReadUint256(buf, headOff)
	if e != nil {
		return 0, e
	}
	raw, e := head.ToUint64()
	if e != nil {
		return 0, newErr(InvalidOffset, "offset word does not fit a machine width")
	}
	if _, e := checkOffsetWord(len(buf), raw); e != nil {
		return 0, e
	}
	abs := base + int(raw)
	if abs < base {
		return 0, newErr(InvalidOffset, "offset overflows when added to region base")
	}
	if e := checkWord(buf, abs); e != nil {
		return 0, newErr(InvalidOffset, "dereferenced offset exceeds buffer")
	}
	return abs, nil
}

// readLengthPrefix implements spec §4.E step 3-4's shared prefix: it reads
// the 32-byte length word at the tail base and validates that the declared
// content fits in the remaining buffer. Returns the length and the
// absolute offset immediately after the length word.
func readLengthPrefix(buf []byte, tailBase int) (length, contentOff int, e error) {
	lenView, e := ReadUint256(buf, tailBase)
	if e != nil {
		return 0, 0, e
	}
	raw, e := lenView.ToUint64()
	if e != nil {
		return 0, 0, newErr(InvalidLength, "length word does not fit a machine width")
	}
	contentOff = tailBase + WordSize
	if !fits(len(buf), contentOff, int(raw)) {
		return 0, 0, newErr(InvalidLength, "declared length exceeds remaining buffer")
	}
	return int(raw), contentOff, nil
}

// ReadBytes decodes a dynamic `bytes` value. headOff is the absolute offset
// of the head word (the slot holding the tail's relative offset); base is
// the offset of the enclosing region's first head word (0 for a top-level
// argument list).
func ReadBytes(buf []byte, headOff, base int) (BytesView, error) {
	tailBase, e := dereferenceHead(buf, headOff, base)
	if e != nil {
		return BytesView{}, e
	}
	length, contentOff, e := readLengthPrefix(buf, tailBase)
	if e != nil {
		return BytesView{}, e
	}
	return BytesView{b: buf[contentOff : contentOff+length]}, nil
}

// ReadString decodes a dynamic `string` value: a BytesView whose content
// must additionally be valid UTF-8.
func ReadString(buf []byte, headOff, base int) (StringView, error) {
	bv, e := ReadBytes(buf, headOff, base)
	if e != nil {
		return StringView{}, e
	}
	if !utf8.Valid(bv.AsSlice()) {
		return StringView{}, newErr(InvalidUtf8, "string content is not valid UTF-8")
	}
	return StringView{b: bv}, nil
}

// elementRegionBase locates the start of a dynamic array's element region:
// the tail base dereferenced from headOff, stepped past the length word.
// This is also the `base` that nested dynamic elements dereference against,
// per spec §4.E step 5.
func elementRegionBase(buf []byte, headOff, base int) (elemBase, length int, e error) {
	tailBase, e := dereferenceHead(buf, headOff, base)
	if e != nil {
		return 0, 0, e
	}
	lenView, e := ReadUint256(buf, tailBase)
	if e != nil {
		return 0, 0, e
	}
	raw, e := lenView.ToUint64()
	if e != nil {
		return 0, 0, newErr(InvalidLength, "length word does not fit a machine width")
	}
	return tailBase + WordSize, int(raw), nil
}
