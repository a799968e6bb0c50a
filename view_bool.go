package abiview

// BoolView holds the boolean decoded from a word already validated to be
// {0,1} with 31 leading zero bytes, per spec §9's Open Question resolution:
// any other pattern is InvalidBoolean, not some finer-grained padding error.
// It keeps the decoded value, not a borrow of the word.
type BoolView struct {
	value bool
}

// AsBool returns the decoded boolean. Construction already validated the
// word, so this accessor is infallible.
func (v BoolView) AsBool() bool { return v.value }

// Equal reports whether two views decoded the same boolean (spec §4.B:
// equality is defined over borrowed bytes; a bool word has exactly one
// valid byte pattern per value, so comparing the decoded value is
// equivalent to comparing the underlying bytes).
func (v BoolView) Equal(o BoolView) bool { return v.value == o.value }
