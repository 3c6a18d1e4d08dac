package ir

// RootNode is the program entry: a function body or top-level initializer,
// with zero or more Parameters. Running the pass on a RootNode whose Body
// is nil is a no-op.
type RootNode struct {
	base
	Parameters []*Parameter
	Body       Node
}

func NewRoot(params []*Parameter, body Node) *RootNode {
	n := &RootNode{Parameters: params, Body: body}
	for _, p := range params {
		link(n, p)
	}
	link(n, body)
	return n
}

func (*RootNode) Kind() Kind { return KindRoot }

func (n *RootNode) replaceChild(old, replacement Node) {
	if n.Body == old {
		n.Body = replacement
	}
}

// LetPrim binds the value produced by Primitive, then continues into Body.
type LetPrim struct {
	base
	Primitive Definition
	Body      Node
}

func NewLetPrim(primitive Definition, body Node) *LetPrim {
	n := &LetPrim{Primitive: primitive, Body: body}
	link(n, primitive)
	link(n, body)
	return n
}

func (*LetPrim) Kind() Kind { return KindLetPrim }

func (n *LetPrim) replaceChild(old, replacement Node) {
	if n.Body == old {
		n.Body = replacement
	}
}

// LetCont binds a Continuation in scope for Body.
type LetCont struct {
	base
	Cont *Continuation
	Body Node
}

func NewLetCont(cont *Continuation, body Node) *LetCont {
	n := &LetCont{Cont: cont, Body: body}
	link(n, cont)
	link(n, body)
	return n
}

func (*LetCont) Kind() Kind { return KindLetCont }

func (n *LetCont) replaceChild(old, replacement Node) {
	if n.Body == old {
		n.Body = replacement
	}
}

// LetHandler binds an exception Handler continuation in scope for Body.
type LetHandler struct {
	base
	Handler *Continuation
	Body    Node
}

func NewLetHandler(handler *Continuation, body Node) *LetHandler {
	n := &LetHandler{Handler: handler, Body: body}
	link(n, handler)
	link(n, body)
	return n
}

func (*LetHandler) Kind() Kind { return KindLetHandler }

func (n *LetHandler) replaceChild(old, replacement Node) {
	if n.Body == old {
		n.Body = replacement
	}
}

// LetMutable binds Variable to the value referenced by ValueRef, then
// continues into Body.
type LetMutable struct {
	base
	Variable *MutableVariable
	ValueRef *Reference
	Body     Node
}

func NewLetMutable(variable *MutableVariable, value Definition, body Node) *LetMutable {
	n := &LetMutable{Variable: variable, Body: body}
	n.ValueRef = Use(value, n)
	link(n, variable)
	link(n, body)
	return n
}

func (*LetMutable) Kind() Kind { return KindLetMutable }

func (n *LetMutable) replaceChild(old, replacement Node) {
	if n.Body == old {
		n.Body = replacement
	}
}

// callCommon is embedded by every direct-invocation expression (InvokeStatic,
// InvokeConstructor, InvokeMethodDirectly): they all terminate in a
// continuation carrying the call's result, and may target either a callable
// (IsFieldTarget == false) or a field access masquerading as one, which the
// analyzer always treats as dynamic.
type callCommon struct {
	base
	Target        FunctionRef
	IsFieldTarget bool
	Arguments     []*Reference
	Continuation  *Reference
}

func newCallCommon(n Node, target FunctionRef, isFieldTarget bool, args []Definition, cont *Continuation) callCommon {
	c := callCommon{Target: target, IsFieldTarget: isFieldTarget}
	c.Arguments = make([]*Reference, len(args))
	for i, a := range args {
		c.Arguments[i] = Use(a, n)
	}
	c.Continuation = Use(cont, n)
	return c
}

// InvokeStatic calls a top-level/static function.
type InvokeStatic struct {
	callCommon
}

func NewInvokeStatic(target FunctionRef, args []Definition, cont *Continuation) *InvokeStatic {
	n := &InvokeStatic{}
	n.callCommon = newCallCommon(n, target, false, args, cont)
	return n
}

func (*InvokeStatic) Kind() Kind { return KindInvokeStatic }

// InvokeConstructor calls a constructor, producing a fresh instance.
type InvokeConstructor struct {
	callCommon
}

func NewInvokeConstructor(target FunctionRef, args []Definition, cont *Continuation) *InvokeConstructor {
	n := &InvokeConstructor{}
	n.callCommon = newCallCommon(n, target, false, args, cont)
	return n
}

func (*InvokeConstructor) Kind() Kind { return KindInvokeConstructor }

// InvokeMethodDirectly calls a known, non-virtually-dispatched method on
// Receiver (e.g. a super call).
type InvokeMethodDirectly struct {
	callCommon
	Receiver *Reference
}

func NewInvokeMethodDirectly(receiver Definition, target FunctionRef, args []Definition, cont *Continuation) *InvokeMethodDirectly {
	n := &InvokeMethodDirectly{}
	n.callCommon = newCallCommon(n, target, false, args, cont)
	n.Receiver = Use(receiver, n)
	return n
}

func (*InvokeMethodDirectly) Kind() Kind { return KindInvokeMethodDirectly }

// InvokeMethod performs a virtual call (or primitive operator application)
// on Receiver via Selector. Its abstract value, once computed, is stored
// both under the node itself (so the transformer's constify-expression can
// read it directly) and under the continuation's sole parameter.
type InvokeMethod struct {
	base
	Receiver     *Reference
	Selector     Selector
	Arguments    []*Reference
	Continuation *Reference
}

func NewInvokeMethod(receiver Definition, selector Selector, args []Definition, cont *Continuation) *InvokeMethod {
	n := &InvokeMethod{Selector: selector}
	n.Receiver = Use(receiver, n)
	n.Arguments = make([]*Reference, len(args))
	for i, a := range args {
		n.Arguments[i] = Use(a, n)
	}
	n.Continuation = Use(cont, n)
	return n
}

func (*InvokeMethod) Kind() Kind { return KindInvokeMethod }

// InvokeContinuation transfers control to Continuation, passing Arguments as
// actuals. This is the CPS form of both "return" and "jump"; φ-joins happen
// here, across every InvokeContinuation that targets the same continuation.
type InvokeContinuation struct {
	base
	Continuation *Reference
	Arguments    []*Reference
}

func NewInvokeContinuation(cont *Continuation, args []Definition) *InvokeContinuation {
	n := &InvokeContinuation{}
	n.Continuation = Use(cont, n)
	n.Arguments = make([]*Reference, len(args))
	for i, a := range args {
		n.Arguments[i] = Use(a, n)
	}
	return n
}

func (*InvokeContinuation) Kind() Kind { return KindInvokeContinuation }

// ConcatenateStrings folds Arguments left-to-right into one string,
// continuing into Continuation with the result.
type ConcatenateStrings struct {
	base
	Arguments    []*Reference
	Continuation *Reference
}

func NewConcatenateStrings(args []Definition, cont *Continuation) *ConcatenateStrings {
	n := &ConcatenateStrings{}
	n.Arguments = make([]*Reference, len(args))
	for i, a := range args {
		n.Arguments[i] = Use(a, n)
	}
	n.Continuation = Use(cont, n)
	return n
}

func (*ConcatenateStrings) Kind() Kind { return KindConcatenateStrings }

// TypeOperatorKind distinguishes `as` casts from `is` checks.
type TypeOperatorKind int

const (
	TypeOperatorAs TypeOperatorKind = iota
	TypeOperatorIs
)

// TypeOperator evaluates an `as` cast or an `is` check of Value against
// TargetType, continuing into Continuation with the (possibly folded)
// result.
type TypeOperator struct {
	base
	Operator     TypeOperatorKind
	Value        *Reference
	TargetType   string
	Continuation *Reference
}

func NewTypeOperator(op TypeOperatorKind, value Definition, targetType string, cont *Continuation) *TypeOperator {
	n := &TypeOperator{Operator: op, TargetType: targetType}
	n.Value = Use(value, n)
	n.Continuation = Use(cont, n)
	return n
}

func (*TypeOperator) Kind() Kind { return KindTypeOperator }

// Branch evaluates IsTrue(Condition) and transfers control to TrueCont or
// FalseCont accordingly.
type Branch struct {
	base
	Condition *Reference
	TrueCont  *Reference
	FalseCont *Reference
}

func NewBranch(condition Definition, trueCont, falseCont *Continuation) *Branch {
	n := &Branch{}
	n.Condition = Use(condition, n)
	n.TrueCont = Use(trueCont, n)
	n.FalseCont = Use(falseCont, n)
	return n
}

func (*Branch) Kind() Kind { return KindBranch }

// Throw raises Value as an exception.
type Throw struct {
	base
	Value *Reference
}

func NewThrow(value Definition) *Throw {
	n := &Throw{}
	n.Value = Use(value, n)
	return n
}

func (*Throw) Kind() Kind { return KindThrow }

// Rethrow re-raises the exception currently being handled.
type Rethrow struct {
	base
}

func NewRethrow() *Rethrow { return &Rethrow{} }

func (*Rethrow) Kind() Kind { return KindRethrow }

// NonTailThrow must never reach this pass: it exists only so the analyzer
// can report an internal error if an earlier pass failed to remove it.
type NonTailThrow struct {
	base
	Value *Reference
}

func NewNonTailThrow(value Definition) *NonTailThrow {
	n := &NonTailThrow{}
	n.Value = Use(value, n)
	return n
}

func (*NonTailThrow) Kind() Kind { return KindNonTailThrow }

// SetMutableVariable assigns the value referenced by ValueRef into the
// (previously bound, via LetMutable or DeclareFunction) variable referenced
// by Variable, then continues into Body.
type SetMutableVariable struct {
	base
	Variable *Reference
	ValueRef *Reference
	Body     Node
}

func NewSetMutableVariable(variable *MutableVariable, value Definition, body Node) *SetMutableVariable {
	n := &SetMutableVariable{Body: body}
	n.Variable = Use(variable, n)
	n.ValueRef = Use(value, n)
	link(n, body)
	return n
}

func (*SetMutableVariable) Kind() Kind { return KindSetMutableVariable }

func (n *SetMutableVariable) replaceChild(old, replacement Node) {
	if n.Body == old {
		n.Body = replacement
	}
}

// SetField assigns the value referenced by ValueRef into FieldName on
// Object, then continues into Body.
type SetField struct {
	base
	Object    *Reference
	FieldName string
	ValueRef  *Reference
	Body      Node
}

func NewSetField(object Definition, fieldName string, value Definition, body Node) *SetField {
	n := &SetField{FieldName: fieldName, Body: body}
	n.Object = Use(object, n)
	n.ValueRef = Use(value, n)
	link(n, body)
	return n
}

func (*SetField) Kind() Kind { return KindSetField }

func (n *SetField) replaceChild(old, replacement Node) {
	if n.Body == old {
		n.Body = replacement
	}
}

// SetStatic assigns the value referenced by ValueRef into Target, then
// continues into Body.
type SetStatic struct {
	base
	Target   StaticRef
	ValueRef *Reference
	Body     Node
}

func NewSetStatic(target StaticRef, value Definition, body Node) *SetStatic {
	n := &SetStatic{Target: target, Body: body}
	n.ValueRef = Use(value, n)
	link(n, body)
	return n
}

func (*SetStatic) Kind() Kind { return KindSetStatic }

func (n *SetStatic) replaceChild(old, replacement Node) {
	if n.Body == old {
		n.Body = replacement
	}
}

// DeclareFunction binds Variable to Function (a local function declaration,
// bound letrec-style so Function's own body may refer back to Variable),
// then continues into Body.
type DeclareFunction struct {
	base
	Variable *MutableVariable
	Function *CreateFunction
	Body     Node
}

func NewDeclareFunction(variable *MutableVariable, function *CreateFunction, body Node) *DeclareFunction {
	n := &DeclareFunction{Variable: variable, Function: function, Body: body}
	link(n, variable)
	link(n, function)
	link(n, body)
	return n
}

func (*DeclareFunction) Kind() Kind { return KindDeclareFunction }

func (n *DeclareFunction) replaceChild(old, replacement Node) {
	if n.Body == old {
		n.Body = replacement
	}
}
