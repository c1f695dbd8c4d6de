// Package bits packs per-element shape summaries into small bitsets so the
// CSS selector matcher can reject a compound selector against an element
// without walking its attribute list.
package bits

import "github.com/bits-and-blooms/bitset"

// filterWidth is the number of bits in an ElementFlags bloom filter. It is
// small on purpose: the filter only needs to cut down the number of
// elements the matcher inspects in detail, not eliminate every miss.
const filterWidth = 128

// ElementFlags is a Bloom filter over an element's tag name, id, and class
// list. A negative answer from MayMatch* is authoritative; a positive
// answer only means the real attribute check still has to run.
type ElementFlags struct {
	bloom *bitset.BitSet
}

// NewElementFlags returns an empty filter.
func NewElementFlags() *ElementFlags {
	return &ElementFlags{bloom: bitset.New(filterWidth)}
}

// Rebuild replaces the filter's contents with the given shape. Bloom filters
// only support adding bits, never safely removing one without rebuilding
// the whole thing (a single shared bit could belong to more than one
// feature), so callers rebuild from scratch whenever an element's tag, id,
// or class list changes rather than trying to clear individual bits.
func (f *ElementFlags) Rebuild(tag, id string, classes []string) {
	f.bloom.ClearAll()
	f.bloom.Set(bitFor("t:" + tag))
	if id != "" {
		f.bloom.Set(bitFor("#" + id))
	}
	for _, c := range classes {
		f.bloom.Set(bitFor("." + c))
	}
}

// MayMatchTag reports whether the element could have the given tag name.
func (f *ElementFlags) MayMatchTag(tag string) bool {
	return f.bloom.Test(bitFor("t:" + tag))
}

// MayMatchID reports whether the element could carry the given id.
func (f *ElementFlags) MayMatchID(id string) bool {
	return f.bloom.Test(bitFor("#" + id))
}

// MayMatchClass reports whether the element could carry the given class.
func (f *ElementFlags) MayMatchClass(class string) bool {
	return f.bloom.Test(bitFor("." + class))
}

func bitFor(key string) uint {
	return uint(fnv1a(key) % filterWidth)
}

// fnv1a is the 32-bit FNV-1a hash; used only to spread filter keys across
// the bitset, not for anything security sensitive.
func fnv1a(s string) uint32 {
	const offsetBasis = 2166136261
	const prime = 16777619
	h := uint32(offsetBasis)
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= prime
	}
	return h
}
