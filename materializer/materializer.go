// Package materializer turns a folded constant lattice value back into an
// IR node the transformer can splice in place of the expression that
// produced it.
//
// Grounded on the teacher's makeConstant in analysis/absint/absint.go,
// which performs the mirror-image conversion (wrapping a raw Go constant
// into the absint value domain); here the direction runs the other way,
// from the lattice's already-folded Go value back out to an ir.Constant.
package materializer

import (
	"fmt"

	"github.com/cps-opt/sccp/ir"
	"github.com/cps-opt/sccp/lattice"
)

// UnsupportedError reports that v's constant is not one of the primitives
// the IR can re-materialize as a literal. Reaching this path means the
// analyzer folded something it should never have folded, since
// constsystem.System only ever produces bool|int64|float64|string|nil —
// it is an invariant violation, not a recoverable runtime condition.
type UnsupportedError struct {
	Value any
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("materializer: unsupported constant value %v (%T)", e.Value, e.Value)
}

// Materialize converts v, which must be Constant, into a fresh ir.Constant
// carrying the same raw value. It returns an *UnsupportedError if v's
// constant isn't one of bool, int64, float64, string, or nil.
func Materialize[T comparable](v lattice.Value[T]) (ir.Node, error) {
	c, ok := v.ConstVal()
	if !ok {
		return nil, fmt.Errorf("materializer: Materialize called on a non-Constant value")
	}
	switch c.(type) {
	case bool, int64, float64, string, nil:
		return ir.NewConstant(c), nil
	default:
		return nil, &UnsupportedError{Value: c}
	}
}
