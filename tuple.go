package abiview

// SlotDecoder is the boxed, type-erased form of SlotFunc, used where a
// tuple's field types are only known at a call site building a []SlotDecoder
// table rather than at compile time (spec §4.F, heterogeneous tuples).
type SlotDecoder func(buf []byte, off, base int) (any, error)

// Box adapts a typed SlotFunc into a SlotDecoder for use in a DecodeTuple
// table. The one allocation this introduces is the `any` boxing of the
// decoded value itself, not of the buffer it borrows from.
func Box[T any](f SlotFunc[T]) SlotDecoder {
	return func(buf []byte, off, base int) (any, error) { return f(buf, off, base) }
}

// DecodeTuple decodes a heterogeneous ABI tuple: len(slots) consecutive
// 32-byte head slots starting at base, each dispatched through its own
// SlotDecoder (spec §4.F, §9's "function pointer + stride field"
// polymorphism). It short-circuits on the first field that fails to decode,
// per spec §7 (fail fast, no partial results exposed).
func DecodeTuple(buf []byte, base int, slots []SlotDecoder) ([]any, error) {
	if e := checkRange(buf, base, len(slots)*WordSize); e != nil {
		return nil, newErr(OutOfBounds, "tuple head region exceeds buffer")
	}
	out := make([]any, len(slots))
	for i, decode := range slots {
		off := base + i*WordSize
		v, e := decode(buf, off, base)
		if e != nil {
			return nil, e
		}
		out[i] = v
	}
	return out, nil
}

// DecodeTuple2 decodes a statically known 2-field tuple without boxing,
// for callers who know the field types at compile time.
func DecodeTuple2[A, B any](buf []byte, base int, da SlotFunc[A], db SlotFunc[B]) (a A, b B, e error) {
	if e = checkRange(buf, base, 2*WordSize); e != nil {
		return a, b, newErr(OutOfBounds, "tuple head region exceeds buffer")
	}
	if a, e = da(buf, base, base); e != nil {
		return a, b, e
	}
	if b, e = db(buf, base+WordSize, base); e != nil {
		return a, b, e
	}
	return a, b, nil
}

// DecodeTuple3 decodes a statically known 3-field tuple without boxing.
func DecodeTuple3[A, B, C any](buf []byte, base int, da SlotFunc[A], db SlotFunc[B], dc SlotFunc[C]) (a A, b B, c C, e error) {
	if e = checkRange(buf, base, 3*WordSize); e != nil {
		return a, b, c, newErr(OutOfBounds, "tuple head region exceeds buffer")
	}
	if a, e = da(buf, base, base); e != nil {
		return a, b, c, e
	}
	if b, e = db(buf, base+WordSize, base); e != nil {
		return a, b, c, e
	}
	if c, e = dc(buf, base+2*WordSize, base); e != nil {
		return a, b, c, e
	}
	return a, b, c, nil
}

// DecodeTuple4 decodes a statically known 4-field tuple without boxing.
func DecodeTuple4[A, B, C, D any](buf []byte, base int, da SlotFunc[A], db SlotFunc[B], dc SlotFunc[C], dd SlotFunc[D]) (a A, b B, c C, d D, e error) {
	if e = checkRange(buf, base, 4*WordSize); e != nil {
		return a, b, c, d, newErr(OutOfBounds, "tuple head region exceeds buffer")
	}
	if a, e = da(buf, base, base); e != nil {
		return a, b, c, d, e
	}
	if b, e = db(buf, base+WordSize, base); e != nil {
		return a, b, c, d, e
	}
	if c, e = dc(buf, base+2*WordSize, base); e != nil {
		return a, b, c, d, e
	}
	if d, e = dd(buf, base+3*WordSize, base); e != nil {
		return a, b, c, d, e
	}
	return a, b, c, d, nil
}
