// Package lattice implements the three-level abstract value lattice the
// analyzer propagates: Nothing ⊏ Constant(c, τ) ⊏ NonConst(τ), generic over
// the type-system's abstract type domain τ so lattice, typesystem, and
// analyzer all stay polymorphic over τ via a single type parameter rather
// than an interface object.
//
// Grounded on the tagged-member style of
// github.com/cs-au-dk/goat's analysis/lattice/flat-element.go (FlatBot,
// FlatTop, flatElement with a Join/Leq pair per member), collapsed here to
// one generic struct with an internal tag instead of three Go types, since
// the member set is fixed at three and never grows with a new lattice.
package lattice

import "github.com/cps-opt/sccp/internal/colorize"

type tag int

const (
	tagNothing tag = iota
	tagConstant
	tagNonConst
)

// Value is one member of the abstract value lattice for a single
// definition or expression result. The zero Value is Nothing.
type Value[T comparable] struct {
	tag      tag
	constVal any
	typ      T
}

// Nothing is ⊥: the value a node has before the solver has visited it, or
// that an unreachable node's definitions stay pinned at forever.
func Nothing[T comparable]() Value[T] {
	return Value[T]{tag: tagNothing}
}

// Constant is a single statically known value c of type τ.
func Constant[T comparable](c any, typ T) Value[T] {
	return Value[T]{tag: tagConstant, constVal: c, typ: typ}
}

// NonConstant is ⊤: a value of type τ with no further useful precision —
// reachable, but not foldable.
func NonConstant[T comparable](typ T) Value[T] {
	return Value[T]{tag: tagNonConst, typ: typ}
}

func (v Value[T]) IsNothing() bool  { return v.tag == tagNothing }
func (v Value[T]) IsConstant() bool { return v.tag == tagConstant }
func (v Value[T]) IsNonConst() bool { return v.tag == tagNonConst }

// ConstVal returns the underlying constant and true when v is Constant;
// otherwise it returns nil, false.
func (v Value[T]) ConstVal() (any, bool) {
	if v.tag != tagConstant {
		return nil, false
	}
	return v.constVal, true
}

// Type returns v's τ. Nothing carries no type and returns the zero value
// of T; callers must not call Type on a Nothing value that matters.
func (v Value[T]) Type() T {
	return v.typ
}

// Join computes the least upper bound of a and b in the lattice:
//
//	Nothing ⊔ x            = x
//	Constant(c1,τ1) ⊔ Constant(c2,τ2) = Constant(c1,τ1) if c1==c2 && τ1==τ2
//	                                   = NonConst(τ1 ⊔ τ2) otherwise
//	NonConst(τ1) ⊔ NonConst(τ2)        = NonConst(τ1 ⊔ τ2)
//	anything ⊔ NonConst(τ)             = NonConst(τ ⊔ typeOf(anything))
//
// typeJoin supplies the τ-level join (typesystem.System.Join), kept out of
// this package so lattice never imports typesystem.
func Join[T comparable](a, b Value[T], typeJoin func(T, T) T) Value[T] {
	if a.IsNothing() {
		return b
	}
	if b.IsNothing() {
		return a
	}
	if a.IsConstant() && b.IsConstant() {
		if a.typ == b.typ && a.constVal == b.constVal {
			return a
		}
		return NonConstant(typeJoin(a.typ, b.typ))
	}
	return NonConstant(typeJoin(a.typ, b.typ))
}

// Equal reports whether a and b are the same lattice member: used by the
// solver to detect when re-visiting a node produced no change, so it
// doesn't re-enqueue uses that would never see a different value.
func (v Value[T]) Equal(other Value[T]) bool {
	if v.tag != other.tag {
		return false
	}
	switch v.tag {
	case tagNothing:
		return true
	case tagConstant:
		return v.typ == other.typ && v.constVal == other.constVal
	default:
		return v.typ == other.typ
	}
}

func (v Value[T]) String() string {
	switch v.tag {
	case tagNothing:
		return colorize.Lattice("Nothing")
	case tagConstant:
		return colorize.Lattice("Constant") + "(" + colorize.Value(v.constVal) + ", " + colorize.Type(v.typ) + ")"
	default:
		return colorize.Lattice("NonConst") + "(" + colorize.Type(v.typ) + ")"
	}
}
