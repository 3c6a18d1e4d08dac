// Package typesystem implements the abstract type domain τ the analyzer
// consults, parameterized as a Go type parameter so the lattice and
// analyzer stay polymorphic over τ.
package typesystem

import "github.com/cps-opt/sccp/ir"

// System is the abstract type domain τ consulted by the analyzer: the
// well-known top-level types, a join and a typeOf query, plus the three
// lookups that resolve a call site's static return type.
type System[T any] interface {
	Dynamic() T
	TypeType() T
	Function() T
	Bool() T
	Int() T
	StringType() T
	List() T
	Map() T

	// Join computes the least upper bound of a and b in τ.
	Join(a, b T) T
	// TypeOf returns the static type of a primitive constant value
	// (bool|int64|float64|string|nil).
	TypeOf(value any) T
	// IsDefinitelyBool reports whether every value of t is a boolean and t
	// is non-nullable.
	IsDefinitelyBool(t T) bool

	ReturnType(fn ir.FunctionRef) T
	SelectorReturnType(sel ir.Selector) T
	ParameterType(p *ir.Parameter) T
}

// CoreTypes supplies the handful of well-known type identities the
// TypeOperator visit needs to resolve `is`-checks against: a handle onto
// Null and Object plus a subtype query. Type identities are named by plain
// strings here rather than by a real type-checker's type objects, since
// this package has no type-checker of its own to consult.
type CoreTypes interface {
	Null() string
	Object() string
	IsSubtype(sub, sup string) bool
}
