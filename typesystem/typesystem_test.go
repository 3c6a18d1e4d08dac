package typesystem

import (
	"testing"

	"github.com/cps-opt/sccp/ir"
)

// Unit collapses every type to the single UnitType token, so its whole
// interface is trivially satisfied and IsDefinitelyBool is conservatively
// always false.
func TestUnitJoinAndTypeOfAreTrivial(t *testing.T) {
	u := Unit{}
	if u.Join(u.Bool(), u.Int()) != (UnitType{}) {
		t.Error("expected Unit.Join to always return the single token")
	}
	if u.TypeOf(int64(5)) != (UnitType{}) {
		t.Error("expected Unit.TypeOf to always return the single token")
	}
	if u.IsDefinitelyBool(u.Bool()) {
		t.Error("expected Unit.IsDefinitelyBool to always be false, even for Bool()")
	}
}

func TestUnitReturnAndParameterTypesAreTrivial(t *testing.T) {
	u := Unit{}
	if u.ReturnType(ir.FunctionRef{Name: "f"}) != (UnitType{}) {
		t.Error("expected Unit.ReturnType to always return the single token")
	}
	if u.SelectorReturnType(ir.Selector{Name: "m"}) != (UnitType{}) {
		t.Error("expected Unit.SelectorReturnType to always return the single token")
	}
	if u.ParameterType(ir.NewParameter(true, nil)) != (UnitType{}) {
		t.Error("expected Unit.ParameterType to always return the single token")
	}
}

// Mask's Join is bitwise OR, i.e. set union over shape bits.
func TestMaskJoinIsUnion(t *testing.T) {
	m := MaskTypes{}
	got := m.Join(m.Bool(), m.Int())
	want := MaskBool | MaskInt
	if got != want {
		t.Errorf("Join(Bool, Int) = %b, want %b", got, want)
	}

	// Join is idempotent and commutative.
	if m.Join(got, m.Bool()) != got {
		t.Error("expected joining an already-present bit to be a no-op")
	}
	if m.Join(m.Int(), m.Bool()) != got {
		t.Error("expected Join to be commutative")
	}
}

func TestMaskTypeOf(t *testing.T) {
	m := MaskTypes{}
	tests := []struct {
		name  string
		value any
		want  Mask
	}{
		{"bool", true, MaskBool},
		{"int", int64(5), MaskInt},
		{"double", 3.14, MaskDouble},
		{"string", "s", MaskString},
		{"null", nil, MaskNullable},
		{"unrecognized falls back to Dynamic", struct{}{}, m.Dynamic()},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := m.TypeOf(tc.value); got != tc.want {
				t.Errorf("TypeOf(%v) = %b, want %b", tc.value, got, tc.want)
			}
		})
	}
}

// IsDefinitelyBool requires the mask to contain exactly the bool bit: not
// Dynamic, not bool-or-null.
func TestMaskIsDefinitelyBool(t *testing.T) {
	m := MaskTypes{}
	if !m.IsDefinitelyBool(MaskBool) {
		t.Error("expected a bare MaskBool to be definitely bool")
	}
	if m.IsDefinitelyBool(MaskBool | MaskNullable) {
		t.Error("expected a nullable bool mask not to be definitely bool")
	}
	if m.IsDefinitelyBool(m.Dynamic()) {
		t.Error("expected Dynamic not to be definitely bool")
	}
}

// A nil ParamTypes/ReturnTypes makes every parameter and return type
// Dynamic, rather than panicking on the nil func value.
func TestMaskTypesWithNilResolversDefaultsToDynamic(t *testing.T) {
	m := MaskTypes{}
	p := ir.NewParameter(true, "whatever")
	if got := m.ParameterType(p); got != m.Dynamic() {
		t.Errorf("expected ParameterType with a nil ParamTypes to be Dynamic, got %b", got)
	}
	if got := m.ReturnType(ir.FunctionRef{ReturnTypeHint: "whatever"}); got != m.Dynamic() {
		t.Errorf("expected ReturnType with a nil ReturnTypes to be Dynamic, got %b", got)
	}
	if got := m.SelectorReturnType(ir.Selector{ReturnTypeHint: "whatever"}); got != m.Dynamic() {
		t.Errorf("expected SelectorReturnType with a nil ReturnTypes to be Dynamic, got %b", got)
	}
}

// When ParamTypes/ReturnTypes are supplied, MaskTypes defers to them,
// passing through the node's own hint value.
func TestMaskTypesConsultsSuppliedResolvers(t *testing.T) {
	var m MaskTypes
	m = MaskTypes{
		ParamTypes: func(hint any) Mask {
			if hint == "bool" {
				return MaskBool
			}
			return m.Dynamic()
		},
		ReturnTypes: func(hint any) Mask {
			if hint == "int" {
				return MaskInt
			}
			return m.Dynamic()
		},
	}

	p := ir.NewParameter(true, "bool")
	if got := m.ParameterType(p); got != MaskBool {
		t.Errorf("expected ParameterType to resolve via ParamTypes, got %b", got)
	}

	fn := ir.FunctionRef{ReturnTypeHint: "int"}
	if got := m.ReturnType(fn); got != MaskInt {
		t.Errorf("expected ReturnType to resolve via ReturnTypes, got %b", got)
	}

	sel := ir.Selector{ReturnTypeHint: "int"}
	if got := m.SelectorReturnType(sel); got != MaskInt {
		t.Errorf("expected SelectorReturnType to resolve via ReturnTypes, got %b", got)
	}
}
