package analyzer

import (
	"github.com/benbjohnson/immutable"

	"github.com/cps-opt/sccp/ir"
	"github.com/cps-opt/sccp/lattice"
)

// Result is the Analyzer's read-only output: a reachability predicate and
// a node-to-abstract-value map, both consulted by the Transformer.
type Result[T comparable] struct {
	reachable *immutable.Map[ir.Node, struct{}]
	values    *immutable.Map[ir.Node, lattice.Value[T]]
}

// Reachable reports whether n was proven reachable under some execution.
func (r Result[T]) Reachable(n ir.Node) bool {
	_, ok := r.reachable.Get(n)
	return ok
}

// GetType returns n's abstract value, or Nothing if the analyzer never
// visited n (e.g. dead code).
func (r Result[T]) GetType(n ir.Node) lattice.Value[T] {
	if v, ok := r.values.Get(n); ok {
		return v
	}
	return lattice.Nothing[T]()
}
