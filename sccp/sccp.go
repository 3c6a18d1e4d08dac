// Package sccp wires the analyzer and the transformer into the one
// exported operation a caller actually needs: run the pass on a CPS graph
// and get back the same graph, rewritten in place, plus the facts that
// justified each rewrite.
//
// Grounded on the teacher's thin pipeline-wiring idiom — a struct holding
// its collaborators, one exported Run method, constructed through a
// factory rather than a CLI flag struct — mirroring analysis/absint's
// Create()/Elements()/Lattices() factories in factories.go, which build an
// analysis's collaborators once and hand back a ready-to-run value.
package sccp

import (
	"log"

	"github.com/cps-opt/sccp/analyzer"
	"github.com/cps-opt/sccp/constsystem"
	"github.com/cps-opt/sccp/ir"
	"github.com/cps-opt/sccp/transform"
	"github.com/cps-opt/sccp/typesystem"
)

// InternalErrorFunc reports an internal-error-grade invariant violation.
// The default, used when New is called with a nil func, logs via the
// standard log package and then lets the solver panic, matching the
// teacher's pervasive log.Fatalf-at-invariant-violation style.
type InternalErrorFunc = analyzer.InternalErrorFunc

func defaultInternalError(context, message string) {
	log.Printf("sccp: internal error in %s: %s", context, message)
}

// Pass bundles the type system and constant system a single run of the
// pass consults; it holds no per-run state, so one Pass may Run many
// times.
type Pass[T comparable] struct {
	types  typesystem.System[T]
	consts constsystem.System
	core   typesystem.CoreTypes
	onInternalError InternalErrorFunc
}

// New constructs a Pass ready to Run. A nil onInternalError installs the
// log-based default.
func New[T comparable](types typesystem.System[T], consts constsystem.System, core typesystem.CoreTypes, onInternalError InternalErrorFunc) *Pass[T] {
	if onInternalError == nil {
		onInternalError = defaultInternalError
	}
	return &Pass[T]{types: types, consts: consts, core: core, onInternalError: onInternalError}
}

// Run executes the full pass over root: a preparatory parent-pointer walk,
// the analyzer to a fixed point, then the transformer's local rewrites.
// Running on a RootNode with a nil Body leaves the graph unchanged; the
// returned Result reports only the root itself reachable. A nil root
// returns an empty Result.
func (p *Pass[T]) Run(root *ir.RootNode) analyzer.Result[T] {
	// p.types/p.consts/p.core already satisfy analyzer's narrower
	// TypeSystem[T]/ConstSystem/CoreTypes interfaces structurally, so no
	// adapter is needed to cross the import-cycle boundary.
	solver := analyzer.New[T](p.types, p.consts, p.core, p.onInternalError)

	if root == nil {
		return solver.Run(nil)
	}

	ir.SetParents(root)
	result := solver.Run(root)
	transform.Run[T](result, p.types, root)
	return result
}
