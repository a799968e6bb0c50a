// Package abiview decodes EVM ABI-encoded binary data into typed views that
// borrow from the caller's buffer. No view copies the buffer it was
// constructed from or outlives it: the borrowing accessors (AsBytes,
// AsSlice, AsStr) are zero-allocation reads over a subrange of the original
// bytes. The ToBytes accessors are the exception: they return an owned copy.
//
// The package covers the read side only. Encoding, and deriving decoders
// from schema definitions, are both out of scope — callers that need those
// are expected to build them on top of the primitives here.
package abiview
