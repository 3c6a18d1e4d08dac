package analyzer

import (
	"github.com/cps-opt/sccp/ir"
	"github.com/cps-opt/sccp/lattice"
)

// visit dispatches on n's concrete kind via a single tagged-union switch,
// per the closed, compile-time-known set of node kinds ir defines, rather
// than a visitor-per-type hierarchy.
func (s *Solver[T]) visit(n ir.Node) {
	switch v := n.(type) {

	case *ir.RootNode:
		for _, p := range v.Parameters {
			s.setValue(p, lattice.NonConstant[T](s.types.ParameterType(p)))
		}
		s.setReachable(v.Body)

	case *ir.LetPrim:
		s.visit(v.Primitive)
		s.setReachable(v.Body)

	case *ir.LetCont:
		s.setReachable(v.Body)

	case *ir.LetHandler:
		s.setReachable(v.Handler)
		for _, p := range v.Handler.Parameters {
			s.setValue(p, lattice.NonConstant[T](s.types.Dynamic()))
		}
		s.setReachable(v.Body)

	case *ir.LetMutable:
		s.setValue(v.Variable, s.getValue(v.ValueRef.Def))
		s.setReachable(v.Body)

	case *ir.SetMutableVariable:
		s.setReachable(v.Body)

	case *ir.SetField:
		s.setReachable(v.Body)

	case *ir.SetStatic:
		s.setReachable(v.Body)

	case *ir.DeclareFunction:
		s.visit(v.Function)
		s.visit(v.Variable)
		s.setReachable(v.Body)

	case *ir.Continuation:
		s.setReachable(v.Body)

	case *ir.InvokeContinuation:
		s.visitInvokeContinuation(v)

	case *ir.InvokeStatic:
		s.visitDirectCall(v.Target, v.IsFieldTarget, v.Continuation)

	case *ir.InvokeConstructor:
		s.visitDirectCall(v.Target, v.IsFieldTarget, v.Continuation)

	case *ir.InvokeMethodDirectly:
		s.visitDirectCall(v.Target, v.IsFieldTarget, v.Continuation)

	case *ir.InvokeMethod:
		s.visitInvokeMethod(v)

	case *ir.ConcatenateStrings:
		s.visitConcatenateStrings(v)

	case *ir.TypeOperator:
		s.visitTypeOperator(v)

	case *ir.Branch:
		s.visitBranch(v)

	case *ir.Throw:
		// No successor; nothing to propagate.
	case *ir.Rethrow:
	case *ir.NonTailThrow:
		s.internalError("visit", "encountered a NonTailThrow: must be eliminated before this pass runs")

	case *ir.Identical:
		s.visitIdentical(v)

	case *ir.Constant:
		s.setValue(v, lattice.Constant[T](v.Value, s.types.TypeOf(v.Value)))

	case *ir.CreateFunction:
		s.setValue(v, lattice.Constant[T](v.Function, s.types.Function()))

	case *ir.LiteralList:
		s.setValue(v, lattice.NonConstant[T](s.types.List()))

	case *ir.LiteralMap:
		s.setValue(v, lattice.NonConstant[T](s.types.Map()))

	case *ir.Parameter:
		if v.IsRootParameter {
			s.setValue(v, lattice.NonConstant[T](s.types.ParameterType(v)))
		}
		// Continuation parameters accrue their value only through
		// InvokeContinuation joins.

	case *ir.MutableVariable:
		switch v.Parent().(type) {
		case *ir.LetMutable, *ir.DeclareFunction:
		default:
			s.internalError("visit", "MutableVariable has an unexpected parent")
			return
		}
		s.setValue(v, lattice.NonConstant[T](s.types.Dynamic()))

	case *ir.GetField:
		s.setValue(v, lattice.NonConstant[T](s.types.Dynamic()))

	case *ir.GetStatic:
		s.setValue(v, lattice.NonConstant[T](s.types.Dynamic()))

	case *ir.GetMutableVariable:
		s.setValue(v, lattice.NonConstant[T](s.types.Dynamic()))

	case *ir.CreateBox:
		s.setValue(v, lattice.NonConstant[T](s.types.Dynamic()))

	case *ir.CreateInstance:
		s.setValue(v, lattice.NonConstant[T](s.types.Dynamic()))

	case *ir.Interceptor:
		s.setValue(v, lattice.NonConstant[T](s.types.Dynamic()))

	case *ir.ReadTypeVariable:
		s.setValue(v, lattice.NonConstant[T](s.types.TypeType()))

	case *ir.TypeExpression:
		s.setValue(v, lattice.NonConstant[T](s.types.TypeType()))

	case *ir.ReifyTypeVar:
		s.setValue(v, lattice.NonConstant[T](s.types.TypeType()))

	case *ir.ReifyRuntimeType:
		s.setValue(v, lattice.NonConstant[T](s.types.TypeType()))

	case *ir.CreateInvocationMirror:
		s.setValue(v, lattice.NonConstant[T](s.types.Dynamic()))

	default:
		s.internalError("visit", "unhandled node kind")
	}
}

func (s *Solver[T]) visitInvokeContinuation(v *ir.InvokeContinuation) {
	cont, ok := v.Continuation.Def.(*ir.Continuation)
	if !ok {
		s.internalError("visitInvokeContinuation", "continuation reference does not target a Continuation")
		return
	}
	s.setReachable(cont)
	for i, arg := range v.Arguments {
		if i >= len(cont.Parameters) {
			break
		}
		s.setValue(cont.Parameters[i], s.getValue(arg.Def))
	}
}

func (s *Solver[T]) visitDirectCall(target ir.FunctionRef, isFieldTarget bool, contRef *ir.Reference) {
	cont, ok := contRef.Def.(*ir.Continuation)
	if !ok {
		s.internalError("visitDirectCall", "continuation reference does not target a Continuation")
		return
	}
	s.setReachable(cont)

	retType := s.types.Dynamic()
	if !isFieldTarget {
		retType = s.types.ReturnType(target)
	}
	if len(cont.Parameters) > 0 {
		s.setValue(cont.Parameters[0], lattice.NonConstant[T](retType))
	}
}

func (s *Solver[T]) visitInvokeMethod(v *ir.InvokeMethod) {
	cont, ok := v.Continuation.Def.(*ir.Continuation)
	if !ok {
		s.internalError("visitInvokeMethod", "continuation reference does not target a Continuation")
		return
	}
	s.setReachable(cont)

	lhs := s.getValue(v.Receiver.Def)
	if lhs.IsNothing() {
		return
	}

	var result lattice.Value[T]
	switch {
	case lhs.IsNonConst():
		result = lattice.NonConstant[T](s.types.SelectorReturnType(v.Selector))
	case !v.Selector.IsOperator:
		result = lattice.NonConstant[T](s.types.Dynamic())
	default:
		result = s.foldOperator(v.Selector.Operator, lhs, v.Arguments)
	}

	s.setValue(v, result)
	if len(cont.Parameters) > 0 {
		s.setValue(cont.Parameters[0], result)
	}
}

func (s *Solver[T]) foldOperator(op string, lhs lattice.Value[T], args []*ir.Reference) lattice.Value[T] {
	lhsConst, lhsOk := lhs.ConstVal()
	if !lhsOk {
		return lattice.NonConstant[T](s.types.Dynamic())
	}

	switch len(args) {
	case 0:
		result, folded := s.consts.LookupUnary(op, lhsConst)
		if !folded {
			return lattice.NonConstant[T](s.types.Dynamic())
		}
		return lattice.Constant[T](result, s.types.TypeOf(result))

	case 1:
		rhs := s.getValue(args[0].Def)
		rhsConst, rhsOk := rhs.ConstVal()
		if !rhsOk {
			return lattice.NonConstant[T](s.types.Dynamic())
		}
		result, folded := s.consts.LookupBinary(op, lhsConst, rhsConst)
		if !folded {
			return lattice.NonConstant[T](s.types.Dynamic())
		}
		return lattice.Constant[T](result, s.types.TypeOf(result))

	default:
		return lattice.NonConstant[T](s.types.Dynamic())
	}
}

func (s *Solver[T]) visitConcatenateStrings(v *ir.ConcatenateStrings) {
	cont, ok := v.Continuation.Def.(*ir.Continuation)
	if !ok {
		s.internalError("visitConcatenateStrings", "continuation reference does not target a Continuation")
		return
	}
	s.setReachable(cont)

	parts := make([]string, len(v.Arguments))
	allConstStrings := true
	for i, a := range v.Arguments {
		c, ok := s.getValue(a.Def).ConstVal()
		if !ok {
			allConstStrings = false
			break
		}
		str, ok := c.(string)
		if !ok {
			allConstStrings = false
			break
		}
		parts[i] = str
	}

	var result lattice.Value[T]
	if allConstStrings {
		joined := ""
		for _, p := range parts {
			joined += p
		}
		result = lattice.Constant[T](joined, s.types.StringType())
	} else {
		result = lattice.NonConstant[T](s.types.StringType())
	}

	s.setValue(v, result)
	if len(cont.Parameters) > 0 {
		s.setValue(cont.Parameters[0], result)
	}
}

func (s *Solver[T]) visitTypeOperator(v *ir.TypeOperator) {
	cont, ok := v.Continuation.Def.(*ir.Continuation)
	if !ok {
		s.internalError("visitTypeOperator", "continuation reference does not target a Continuation")
		return
	}
	s.setReachable(cont)

	if v.Operator == ir.TypeOperatorAs {
		result := lattice.NonConstant[T](s.types.Dynamic())
		s.setValue(v, result)
		if len(cont.Parameters) > 0 {
			s.setValue(cont.Parameters[0], result)
		}
		return
	}

	val := s.getValue(v.Value.Def)
	if val.IsNothing() {
		return
	}

	var result lattice.Value[T]
	if val.IsNonConst() {
		result = lattice.NonConstant[T](s.types.Bool())
	} else {
		result = lattice.Constant[T](s.foldIsCheck(val, v.TargetType), s.types.Bool())
	}

	s.setValue(v, result)
	if len(cont.Parameters) > 0 {
		s.setValue(cont.Parameters[0], result)
	}
}

// foldIsCheck decides whether constant value c `is` targetType.
func (s *Solver[T]) foldIsCheck(v lattice.Value[T], targetType string) bool {
	c, _ := v.ConstVal()
	if c == nil {
		return targetType == s.core.Null() || targetType == s.core.Object()
	}
	return s.consts.IsSubtype(runtimeTypeName(c), targetType)
}

func runtimeTypeName(c any) string {
	switch c.(type) {
	case bool:
		return "bool"
	case int64:
		return "int"
	case float64:
		return "double"
	case string:
		return "String"
	default:
		return "Object"
	}
}

func (s *Solver[T]) visitBranch(v *ir.Branch) {
	c := s.getValue(v.Condition.Def)
	switch {
	case c.IsNothing():
		return
	case c.IsNonConst():
		s.setReachable(v.TrueCont.Def)
		s.setReachable(v.FalseCont.Def)
	case c.IsConstant():
		constVal, _ := c.ConstVal()
		b, isBool := constVal.(bool)
		if !isBool {
			s.setReachable(v.TrueCont.Def)
			s.setReachable(v.FalseCont.Def)
			s.setValue(v.Condition.Def, lattice.NonConstant[T](s.types.Bool()))
			return
		}
		if b {
			s.setReachable(v.TrueCont.Def)
		} else {
			s.setReachable(v.FalseCont.Def)
		}
	}
}

func (s *Solver[T]) visitIdentical(v *ir.Identical) {
	a := s.getValue(v.Left.Def)
	b := s.getValue(v.Right.Def)

	if a.IsNothing() || b.IsNothing() {
		return
	}
	if a.IsNonConst() || b.IsNonConst() {
		s.setValue(v, lattice.NonConstant[T](s.types.Bool()))
		return
	}
	av, _ := a.ConstVal()
	bv, _ := b.ConstVal()
	s.setValue(v, lattice.Constant[T](av == bv, s.types.Bool()))
}
