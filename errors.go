package abiview

import "fmt"

// Kind discriminates the ways a decode can fail. Every reader in this
// package returns a *DecodeError carrying exactly one Kind; there is no
// other error shape a caller needs to handle.
type Kind uint8

const (
	// OutOfBounds means the requested range exceeds the buffer length.
	OutOfBounds Kind = iota + 1
	// InvalidBoolean means a bool word is not {0,1} with 31 leading zero bytes.
	InvalidBoolean
	// InvalidAddressPadding means the 12 leading bytes of an address word are not all zero.
	InvalidAddressPadding
	// InvalidBytesNPadding means the trailing bytes of a fixed-width bytes word are not all zero.
	InvalidBytesNPadding
	// InvalidUtf8 means string bytes are not valid UTF-8.
	InvalidUtf8
	// InvalidOffset means a head word encodes an offset that is too large, misaligned, or before the region base.
	InvalidOffset
	// IntegerOverflow means narrowing a wide integer view would lose significant bits.
	IntegerOverflow
	// InvalidLength means a dynamic length field exceeds the remaining buffer, or a fixed-length consumer got the wrong length.
	InvalidLength
	// InvalidSelector means calldata is shorter than 4 bytes when a selector is requested.
	InvalidSelector
)

// String renders the Kind the way callers see it in %v/%s.
func (k Kind) String() string {
	switch k {
	case OutOfBounds:
		return "out of bounds"
	case InvalidBoolean:
		return "invalid boolean"
	case InvalidAddressPadding:
		return "invalid address padding"
	case InvalidBytesNPadding:
		return "invalid bytesN padding"
	case InvalidUtf8:
		return "invalid utf8"
	case InvalidOffset:
		return "invalid offset"
	case IntegerOverflow:
		return "integer overflow"
	case InvalidLength:
		return "invalid length"
	case InvalidSelector:
		return "invalid selector"
	default:
		return "unknown decode error"
	}
}

// DecodeError is the single error type every reader in this package returns.
// Context is an optional human-readable detail (e.g. the offending offset);
// it is never part of equality or Is matching, only of the message.
type DecodeError struct {
	Kind    Kind
	Context string
}

func (e *DecodeError) Error() string {
	if e.Context == "" {
		return "abiview: " + e.Kind.String()
	}
	return fmt.Sprintf("abiview: %s: %s", e.Kind, e.Context)
}

// Is lets callers write errors.Is(err, ErrOutOfBounds) etc. regardless of
// which Context a particular DecodeError carries.
func (e *DecodeError) Is(target error) bool {
	other, ok := target.(*DecodeError)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

// newErr builds a *DecodeError with context, used internally by every reader.
func newErr(k Kind, context string) *DecodeError {
	return &DecodeError{Kind: k, Context: context}
}

// Sentinel errors for errors.Is comparisons. Each carries no context; the
// errors actually returned by readers carry additional context but compare
// equal under Is because DecodeError.Is only looks at Kind.
var (
	ErrOutOfBounds           = &DecodeError{Kind: OutOfBounds}
	ErrInvalidBoolean        = &DecodeError{Kind: InvalidBoolean}
	ErrInvalidAddressPadding = &DecodeError{Kind: InvalidAddressPadding}
	ErrInvalidBytesNPadding  = &DecodeError{Kind: InvalidBytesNPadding}
	ErrInvalidUtf8           = &DecodeError{Kind: InvalidUtf8}
	ErrInvalidOffset         = &DecodeError{Kind: InvalidOffset}
	ErrIntegerOverflow       = &DecodeError{Kind: IntegerOverflow}
	ErrInvalidLength         = &DecodeError{Kind: InvalidLength}
	ErrInvalidSelector       = &DecodeError{Kind: InvalidSelector}
)
