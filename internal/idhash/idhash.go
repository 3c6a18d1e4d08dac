// Package idhash provides pointer-identity hashing for immutable.Map keys.
//
// Grounded on github.com/cs-au-dk/goat's utils/hash.go: the analyzer keys
// its reachable-set and value-map by ir.Node/ir.Definition identity, not by
// structural equality, exactly like the teacher's PointerHasher keyed maps
// of *ssa.Function/cfg.Node.
package idhash

import "reflect"

// PointerHasher hashes and compares pointer-like values (pointers,
// interfaces wrapping pointers) by identity.
type PointerHasher[T any] struct{}

// Hash computes a hash of v's underlying pointer value.
func (PointerHasher[T]) Hash(v T) uint32 {
	p := reflect.ValueOf(v).Pointer()
	return uint32(p ^ (p >> 32))
}

// Equal reports whether a and b are the same pointer.
func (PointerHasher[T]) Equal(a, b T) bool {
	return any(a) == any(b)
}

// HashCombine mixes several hash values into one, using the algorithm
// popularized by Boost's hash_combine.
func HashCombine(hs ...uint32) (seed uint32) {
	for _, v := range hs {
		seed ^= v + 0x9e3779b9 + (seed << 6) + (seed >> 2)
	}
	return
}
