package typesystem

import "github.com/cps-opt/sccp/ir"

// UnitType is the single token every type collapses to under Unit.
type UnitType struct{}

// Unit is a trivial type system used when no type inference has run, so
// every type collapses to a single token and Join is trivial.
type Unit struct{}

var _ System[UnitType] = Unit{}

func (Unit) Dynamic() UnitType    { return UnitType{} }
func (Unit) TypeType() UnitType   { return UnitType{} }
func (Unit) Function() UnitType   { return UnitType{} }
func (Unit) Bool() UnitType       { return UnitType{} }
func (Unit) Int() UnitType        { return UnitType{} }
func (Unit) StringType() UnitType { return UnitType{} }
func (Unit) List() UnitType       { return UnitType{} }
func (Unit) Map() UnitType        { return UnitType{} }

func (Unit) Join(UnitType, UnitType) UnitType { return UnitType{} }

func (Unit) TypeOf(any) UnitType { return UnitType{} }

// IsDefinitelyBool is always false: the unit system carries no static
// information to prove boolean-ness from, so the Identical rewrite never
// fires under it. This is conservative, not unsound.
func (Unit) IsDefinitelyBool(UnitType) bool { return false }

func (Unit) ReturnType(ir.FunctionRef) UnitType      { return UnitType{} }
func (Unit) SelectorReturnType(ir.Selector) UnitType { return UnitType{} }
func (Unit) ParameterType(*ir.Parameter) UnitType    { return UnitType{} }
