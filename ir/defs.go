package ir

// Constant holds a statically known primitive value: bool, float64 (double),
// int64, string, or nil (the `null` literal). The analyzer maps it straight
// to lattice.Constant(Value, typeSystem.TypeOf(Value)).
type Constant struct {
	defBase
	Value any
}

func NewConstant(value any) *Constant {
	return &Constant{Value: value}
}

func (*Constant) Kind() Kind { return KindConstant }

// Parameter is either a RootNode parameter (immediately NonConst)
// or a Continuation parameter (a φ-node: its value only accrues through
// InvokeContinuation joins). TypeHint is consulted by
// typesystem.System.ParameterType for root parameters; continuation
// parameters normally leave it nil since their type is whatever the joined
// arguments imply.
type Parameter struct {
	defBase
	IsRootParameter bool
	TypeHint        any
}

func NewParameter(isRootParameter bool, typeHint any) *Parameter {
	return &Parameter{IsRootParameter: isRootParameter, TypeHint: typeHint}
}

func (*Parameter) Kind() Kind { return KindParameter }

// Continuation is a named block of Parameters and a Body, invoked via
// InvokeContinuation. It is simultaneously a Definition (invocation sites
// hold References to it) and a control-flow node (its Body only becomes
// reachable once the continuation itself is reachable).
type Continuation struct {
	defBase
	Name       string
	Parameters []*Parameter
	Body       Node
}

func NewContinuation(name string, params []*Parameter, body Node) *Continuation {
	n := &Continuation{Name: name, Parameters: params, Body: body}
	for _, p := range params {
		link(n, p)
	}
	link(n, body)
	return n
}

func (*Continuation) Kind() Kind { return KindContinuation }

func (n *Continuation) replaceChild(old, replacement Node) {
	if n.Body == old {
		n.Body = replacement
	}
}

// MutableVariable is a boxed, assignable local: read by GetMutableVariable,
// written by LetMutable/SetMutableVariable/DeclareFunction.
type MutableVariable struct {
	defBase
	Name     string
	TypeHint any
}

func NewMutableVariable(name string, typeHint any) *MutableVariable {
	return &MutableVariable{Name: name, TypeHint: typeHint}
}

func (*MutableVariable) Kind() Kind { return KindMutableVariable }

// LiteralList is a list literal. It is always NonConst(list) — a
// constant list instead appears as a Constant node.
type LiteralList struct {
	defBase
	Elements []*Reference
}

func NewLiteralList(elements []Definition) *LiteralList {
	n := &LiteralList{}
	n.Elements = make([]*Reference, len(elements))
	for i, e := range elements {
		n.Elements[i] = Use(e, n)
	}
	return n
}

func (*LiteralList) Kind() Kind { return KindLiteralList }

// MapEntry is one key/value pair of a LiteralMap.
type MapEntry struct {
	Key   *Reference
	Value *Reference
}

// LiteralMap is a map literal, always NonConst(map).
type LiteralMap struct {
	defBase
	Entries []MapEntry
}

func NewLiteralMap(entries [][2]Definition) *LiteralMap {
	n := &LiteralMap{}
	n.Entries = make([]MapEntry, len(entries))
	for i, kv := range entries {
		n.Entries[i] = MapEntry{Key: Use(kv[0], n), Value: Use(kv[1], n)}
	}
	return n
}

func (*LiteralMap) Kind() Kind { return KindLiteralMap }

// CreateFunction closes over Function, producing Constant(FunctionConstant
// (Function), function).
type CreateFunction struct {
	defBase
	Function FunctionRef
}

func NewCreateFunction(function FunctionRef) *CreateFunction {
	return &CreateFunction{Function: function}
}

func (*CreateFunction) Kind() Kind { return KindCreateFunction }

// CreateBox allocates a fresh mutable cell (NonConst).
type CreateBox struct {
	defBase
}

func NewCreateBox() *CreateBox { return &CreateBox{} }

func (*CreateBox) Kind() Kind { return KindCreateBox }

// CreateInstance allocates a fresh instance of ClassName with Arguments as
// field initializers (NonConst).
type CreateInstance struct {
	defBase
	ClassName string
	Arguments []*Reference
}

func NewCreateInstance(className string, args []Definition) *CreateInstance {
	n := &CreateInstance{ClassName: className}
	n.Arguments = make([]*Reference, len(args))
	for i, a := range args {
		n.Arguments[i] = Use(a, n)
	}
	return n
}

func (*CreateInstance) Kind() Kind { return KindCreateInstance }

// GetField reads FieldName off Object (NonConst; recovery of
// constants through fields is explicitly out of scope).
type GetField struct {
	defBase
	Object    *Reference
	FieldName string
}

func NewGetField(object Definition, fieldName string) *GetField {
	n := &GetField{FieldName: fieldName}
	n.Object = Use(object, n)
	return n
}

func (*GetField) Kind() Kind { return KindGetField }

// GetStatic reads a static field (NonConst).
type GetStatic struct {
	defBase
	Target StaticRef
}

func NewGetStatic(target StaticRef) *GetStatic {
	return &GetStatic{Target: target}
}

func (*GetStatic) Kind() Kind { return KindGetStatic }

// GetMutableVariable reads the current value of Variable (NonConst; mutable
// cells are not tracked precisely).
type GetMutableVariable struct {
	defBase
	Variable *Reference
}

func NewGetMutableVariable(variable *MutableVariable) *GetMutableVariable {
	n := &GetMutableVariable{}
	n.Variable = Use(variable, n)
	return n
}

func (*GetMutableVariable) Kind() Kind { return KindGetMutableVariable }

// ReifyTypeVar reifies a generic type variable as a runtime type value.
type ReifyTypeVar struct {
	defBase
	TypeVarName string
}

func NewReifyTypeVar(name string) *ReifyTypeVar { return &ReifyTypeVar{TypeVarName: name} }

func (*ReifyTypeVar) Kind() Kind { return KindReifyTypeVar }

// ReifyRuntimeType reifies Value's runtime type as a first-class type value.
type ReifyRuntimeType struct {
	defBase
	Value *Reference
}

func NewReifyRuntimeType(value Definition) *ReifyRuntimeType {
	n := &ReifyRuntimeType{}
	n.Value = Use(value, n)
	return n
}

func (*ReifyRuntimeType) Kind() Kind { return KindReifyRuntimeType }

// ReadTypeVariable reads a captured type variable from the enclosing
// generic context.
type ReadTypeVariable struct {
	defBase
	TypeVarName string
}

func NewReadTypeVariable(name string) *ReadTypeVariable {
	return &ReadTypeVariable{TypeVarName: name}
}

func (*ReadTypeVariable) Kind() Kind { return KindReadTypeVariable }

// TypeExpression builds a first-class type value out of a static type
// descriptor (e.g. `List<int>`).
type TypeExpression struct {
	defBase
	Descriptor string
}

func NewTypeExpression(descriptor string) *TypeExpression {
	return &TypeExpression{Descriptor: descriptor}
}

func (*TypeExpression) Kind() Kind { return KindTypeExpression }

// Interceptor resolves the runtime interceptor object used to dispatch a
// primitive-typed receiver's method calls.
type Interceptor struct {
	defBase
	Value *Reference
}

func NewInterceptor(value Definition) *Interceptor {
	n := &Interceptor{}
	n.Value = Use(value, n)
	return n
}

func (*Interceptor) Kind() Kind { return KindInterceptor }

// Identical is the low-level reference-equality primitive: folds to
// Constant(bool) when both operands are Constant, otherwise NonConst(bool).
type Identical struct {
	defBase
	Left  *Reference
	Right *Reference
}

func NewIdentical(left, right Definition) *Identical {
	n := &Identical{}
	n.Left = Use(left, n)
	n.Right = Use(right, n)
	return n
}

func (*Identical) Kind() Kind { return KindIdentical }

// CreateInvocationMirror builds a reflective noSuchMethod invocation mirror.
type CreateInvocationMirror struct {
	defBase
	Selector  Selector
	Arguments []*Reference
}

func NewCreateInvocationMirror(selector Selector, args []Definition) *CreateInvocationMirror {
	n := &CreateInvocationMirror{Selector: selector}
	n.Arguments = make([]*Reference, len(args))
	for i, a := range args {
		n.Arguments[i] = Use(a, n)
	}
	return n
}

func (*CreateInvocationMirror) Kind() Kind { return KindCreateInvocationMirror }
