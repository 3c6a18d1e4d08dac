package typesystem

import "github.com/cps-opt/sccp/ir"

// Mask is a bitmask over the primitive runtime shapes a value could have,
// standing in for a compiler's dataflow-inferred type masks. The low bits
// name concrete shapes; MaskNullable is tracked separately so
// IsDefinitelyBool can require non-nullability: a mask is definitely bool
// only when it contains nothing but the bool bit.
//
// Join is bitwise OR, the same "union is join" idiom as the powerset
// lattice's Join (set union) — a finite powerset over an 8-element universe
// of shape bits is exactly what a bitmask is.
type Mask uint16

const (
	MaskBool Mask = 1 << iota
	MaskInt
	MaskDouble
	MaskString
	MaskList
	MaskMapShape
	MaskFunction
	MaskType

	// MaskNullable is an orthogonal bit: it may be combined with any of the
	// shape bits above to mean "this type, or null".
	MaskNullable

	maskDynamic = MaskBool | MaskInt | MaskDouble | MaskString | MaskList |
		MaskMapShape | MaskFunction | MaskType | MaskNullable
)

// MaskTypes is a type-mask implementation of System.
type MaskTypes struct {
	// ParamTypes resolves an *ir.Parameter's TypeHint to a Mask; the front
	// end that built the graph must populate ir.Parameter.TypeHint with
	// whatever key this function understands. A nil ParamTypes makes every
	// parameter Dynamic.
	ParamTypes func(hint any) Mask
	// ReturnTypes resolves an ir.FunctionRef/ir.Selector's ReturnTypeHint to
	// a Mask the same way.
	ReturnTypes func(hint any) Mask
}

var _ System[Mask] = MaskTypes{}

func (MaskTypes) Dynamic() Mask    { return maskDynamic }
func (MaskTypes) TypeType() Mask   { return MaskType }
func (MaskTypes) Function() Mask   { return MaskFunction }
func (MaskTypes) Bool() Mask       { return MaskBool }
func (MaskTypes) Int() Mask        { return MaskInt }
func (MaskTypes) StringType() Mask { return MaskString }
func (MaskTypes) List() Mask       { return MaskList }
func (MaskTypes) Map() Mask        { return MaskMapShape }

// Join is set union over the shape bits, i.e. ordinary bitwise OR.
func (MaskTypes) Join(a, b Mask) Mask { return a | b }

func (MaskTypes) TypeOf(value any) Mask {
	switch value.(type) {
	case bool:
		return MaskBool
	case int64:
		return MaskInt
	case float64:
		return MaskDouble
	case string:
		return MaskString
	case nil:
		return MaskNullable
	default:
		return maskDynamic
	}
}

// IsDefinitelyBool tests that t contains only the bool bit and is not
// nullable.
func (MaskTypes) IsDefinitelyBool(t Mask) bool {
	return t == MaskBool
}

func (m MaskTypes) ReturnType(fn ir.FunctionRef) Mask {
	if m.ReturnTypes == nil {
		return maskDynamic
	}
	return m.ReturnTypes(fn.ReturnTypeHint)
}

func (m MaskTypes) SelectorReturnType(sel ir.Selector) Mask {
	if m.ReturnTypes == nil {
		return maskDynamic
	}
	return m.ReturnTypes(sel.ReturnTypeHint)
}

func (m MaskTypes) ParameterType(p *ir.Parameter) Mask {
	if m.ParamTypes == nil {
		return maskDynamic
	}
	return m.ParamTypes(p.TypeHint)
}
