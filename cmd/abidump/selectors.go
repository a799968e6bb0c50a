package main

import (
	"github.com/puzpuzpuz/xsync/v4"
)

// selectorRegistry is the lookup table the core package intentionally has
// no equivalent of: abiview's decoders never look up a selector by name,
// since that would require the mutable, shared state spec §5 bans from
// the core. This registry lives here instead, in the CLI, the same way
// the teacher keeps its reflection size cache (fixed.go's sizeCache) as a
// package-level concurrent map rather than plumbing it through Codec.
type selectorRegistry struct {
	names *xsync.Map[[4]byte, string]
}

// newSelectorRegistry builds a registry seeded with the precomputed
// well-known ERC-20/ERC-721 selectors in wellKnownSelectors.
func newSelectorRegistry() *selectorRegistry {
	r := &selectorRegistry{names: xsync.NewMap[[4]byte, string]()}
	for sig, sel := range wellKnownSelectors {
		r.names.Store(sel, sig)
	}
	return r
}

// Register associates a signature with a selector, overwriting any
// previous registration. Safe for concurrent use.
func (r *selectorRegistry) Register(selector [4]byte, signature string) {
	r.names.Store(selector, signature)
}

// Lookup returns the human-readable signature for selector, if known.
func (r *selectorRegistry) Lookup(selector [4]byte) (string, bool) {
	return r.names.Load(selector)
}
