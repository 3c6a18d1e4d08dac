// Package analyzer implements the two-worklist fixed-point solver: it
// propagates reachability of nodes and monotonic lattice updates of
// definitions until quiescence, visiting only demonstrably reachable code.
//
// Grounded on the worklist-driven fixed-point shape of
// github.com/cs-au-dk/goat's analysis/absint/static-analysis.go
// (StaticAnalysis's FIXPOINT loop: pop, process, push successors to
// quiescence), simplified to the two plain worklists this solver needs
// instead of a priority queue, since node visit order has no effect on the
// result here.
package analyzer

import (
	"fmt"

	"github.com/benbjohnson/immutable"

	"github.com/cps-opt/sccp/internal/idhash"
	"github.com/cps-opt/sccp/internal/worklist"
	"github.com/cps-opt/sccp/ir"
	"github.com/cps-opt/sccp/lattice"
)

// InternalErrorFunc reports a violated invariant. If it returns, the solver
// panics, so the run is aborted either way.
type InternalErrorFunc func(context, message string)

// Solver runs the fixed-point loop over a single CPS graph rooted at a
// RootNode. A Solver is single-use: construct one per Run.
type Solver[T comparable] struct {
	types  TypeSystem[T]
	consts ConstSystem
	core   CoreTypes

	onInternalError InternalErrorFunc

	reachable *immutable.Map[ir.Node, struct{}]
	values    *immutable.Map[ir.Node, lattice.Value[T]]

	nodeWorklist worklist.Worklist[ir.Node]
	defWorklist  worklist.Worklist[ir.Definition]
	// queued suppresses duplicate defWorklist entries; the node worklist
	// tolerates duplicates naturally since reachable already dedupes
	// pushes in setReachable.
	queued *immutable.Map[ir.Definition, struct{}]
}

// TypeSystem is the subset of typesystem.System[T] the solver consults,
// restated here so this package doesn't import typesystem (avoiding an
// import cycle: typesystem imports ir, analyzer imports ir+lattice and must
// not also require typesystem to import analyzer back).
type TypeSystem[T comparable] interface {
	Dynamic() T
	TypeType() T
	Function() T
	Bool() T
	Int() T
	StringType() T
	List() T
	Map() T
	Join(a, b T) T
	TypeOf(value any) T
	IsDefinitelyBool(t T) bool
	ReturnType(fn ir.FunctionRef) T
	SelectorReturnType(sel ir.Selector) T
	ParameterType(p *ir.Parameter) T
}

// ConstSystem is the subset of constsystem.System the solver consults.
type ConstSystem interface {
	LookupUnary(op string, v any) (any, bool)
	LookupBinary(op string, a, b any) (any, bool)
	IsSubtype(sub, sup string) bool
}

// CoreTypes names the handful of well-known type identities TypeOperator
// needs for `is`-checks.
type CoreTypes interface {
	Null() string
	Object() string
}

func nodeHasher[T any]() immutable.Hasher[T] {
	return idhash.PointerHasher[T]{}
}

// New constructs a Solver ready to Run.
func New[T comparable](types TypeSystem[T], consts ConstSystem, core CoreTypes, onInternalError InternalErrorFunc) *Solver[T] {
	return &Solver[T]{
		types:           types,
		consts:          consts,
		core:            core,
		onInternalError: onInternalError,
		reachable:       immutable.NewMap[ir.Node, struct{}](nodeHasher[ir.Node]()),
		values:          immutable.NewMap[ir.Node, lattice.Value[T]](nodeHasher[ir.Node]()),
		queued:          immutable.NewMap[ir.Definition, struct{}](nodeHasher[ir.Definition]()),
	}
}

func (s *Solver[T]) internalError(context, message string) {
	if s.onInternalError != nil {
		s.onInternalError(context, message)
	}
	panic(fmt.Sprintf("analyzer: internal error in %s: %s", context, message))
}

// Run executes the main loop to quiescence and returns the result.
func (s *Solver[T]) Run(root ir.Node) Result[T] {
	if root == nil {
		return Result[T]{reachable: s.reachable, values: s.values}
	}

	s.setReachable(root)

	for !s.nodeWorklist.IsEmpty() || !s.defWorklist.IsEmpty() {
		if !s.nodeWorklist.IsEmpty() {
			n := s.nodeWorklist.GetNext()
			s.visit(n)
			continue
		}
		d := s.defWorklist.GetNext()
		s.queued = s.queued.Delete(d)
		ir.ForEachUse(d, func(ref *ir.Reference) {
			s.visit(ref.User)
		})
	}

	return Result[T]{reachable: s.reachable, values: s.values}
}

// setReachable marks n reachable and schedules it for a visit, if it isn't
// already known reachable.
func (s *Solver[T]) setReachable(n ir.Node) {
	if n == nil {
		return
	}
	if _, ok := s.reachable.Get(n); ok {
		return
	}
	s.reachable = s.reachable.Set(n, struct{}{})
	s.nodeWorklist.Add(n)
}

// getValue returns the current abstract value of n (Nothing if absent).
func (s *Solver[T]) getValue(n ir.Node) lattice.Value[T] {
	if v, ok := s.values.Get(n); ok {
		return v
	}
	return lattice.Nothing[T]()
}

// setValue joins v into n's current value; if the join produced a strictly
// greater value, stores it and (for definitions) schedules n's uses for
// revisit.
func (s *Solver[T]) setValue(n ir.Node, v lattice.Value[T]) {
	cur := s.getValue(n)
	joined := lattice.Join(cur, v, s.types.Join)
	if joined.Equal(cur) {
		return
	}
	if height(joined) < height(cur) {
		s.internalError("setValue", fmt.Sprintf("value for %v regressed from %s to %s", n, cur, joined))
	}
	s.values = s.values.Set(n, joined)

	if def, ok := n.(ir.Definition); ok {
		if _, queued := s.queued.Get(def); !queued {
			s.queued = s.queued.Set(def, struct{}{})
			s.defWorklist.Add(def)
		}
	}
}

// height returns the lattice element's position in Nothing < Constant <
// NonConst, used only to assert the monotonicity invariant.
func height[T comparable](v lattice.Value[T]) int {
	switch {
	case v.IsNothing():
		return 0
	case v.IsConstant():
		return 1
	default:
		return 2
	}
}
