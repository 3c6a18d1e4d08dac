// Package constsystem folds primitive operators over the raw Go values the
// analyzer's Constant nodes carry (bool, float64, int64, string, or nil),
// the operand-folding half of what the analyzer needs to constant-fold
// InvokeMethod/ConcatenateStrings/TypeOperator call sites.
//
// Grounded on the constant-wrapping idiom of
// github.com/cs-au-dk/goat's analysis/absint/absint.go (makeConstant wraps
// a raw interface{} value rather than requiring a go/types constant.Value;
// operators fold directly over the wrapped Go value). The teacher folds via
// go/constant.Value because it interprets real Go SSA; this package folds
// over the lattice's own bool|float64|int64|string|nil domain instead,
// since there is no go/constant representation of that domain to reuse.
package constsystem

// System folds a unary or binary primitive operator over constant operands,
// and answers structural subtype queries for TypeOperator `is`-checks.
type System interface {
	// LookupUnary folds op applied to v, returning the result and true if
	// op is known and applicable to v's dynamic type.
	LookupUnary(op string, v any) (any, bool)
	// LookupBinary folds op applied to (a, b), returning the result and
	// true under the same conditions.
	LookupBinary(op string, a, b any) (any, bool)
	// IsSubtype reports whether runtime type name sub is a subtype of sup.
	IsSubtype(sub, sup string) bool
}
