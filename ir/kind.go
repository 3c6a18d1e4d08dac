package ir

// Kind tags every node with its concrete shape so the analyzer and the
// transformer can dispatch on it with a single switch over node kind,
// rather than a visitor-per-type hierarchy. The set of kinds is closed and
// known at compile time.
type Kind int

const (
	KindRoot Kind = iota

	// Expressions.
	KindLetPrim
	KindLetCont
	KindLetHandler
	KindLetMutable
	KindInvokeStatic
	KindInvokeMethod
	KindInvokeMethodDirectly
	KindInvokeConstructor
	KindInvokeContinuation
	KindConcatenateStrings
	KindTypeOperator
	KindBranch
	KindThrow
	KindRethrow
	KindNonTailThrow
	KindSetMutableVariable
	KindSetField
	KindSetStatic
	KindDeclareFunction

	// Primitives / definitions.
	KindConstant
	KindParameter
	KindContinuation
	KindMutableVariable
	KindLiteralList
	KindLiteralMap
	KindCreateFunction
	KindCreateBox
	KindCreateInstance
	KindGetField
	KindGetStatic
	KindGetMutableVariable
	KindReifyTypeVar
	KindReifyRuntimeType
	KindReadTypeVariable
	KindTypeExpression
	KindInterceptor
	KindIdentical
	KindCreateInvocationMirror
)

func (k Kind) String() string {
	switch k {
	case KindRoot:
		return "Root"
	case KindLetPrim:
		return "LetPrim"
	case KindLetCont:
		return "LetCont"
	case KindLetHandler:
		return "LetHandler"
	case KindLetMutable:
		return "LetMutable"
	case KindInvokeStatic:
		return "InvokeStatic"
	case KindInvokeMethod:
		return "InvokeMethod"
	case KindInvokeMethodDirectly:
		return "InvokeMethodDirectly"
	case KindInvokeConstructor:
		return "InvokeConstructor"
	case KindInvokeContinuation:
		return "InvokeContinuation"
	case KindConcatenateStrings:
		return "ConcatenateStrings"
	case KindTypeOperator:
		return "TypeOperator"
	case KindBranch:
		return "Branch"
	case KindThrow:
		return "Throw"
	case KindRethrow:
		return "Rethrow"
	case KindNonTailThrow:
		return "NonTailThrow"
	case KindSetMutableVariable:
		return "SetMutableVariable"
	case KindSetField:
		return "SetField"
	case KindSetStatic:
		return "SetStatic"
	case KindDeclareFunction:
		return "DeclareFunction"
	case KindConstant:
		return "Constant"
	case KindParameter:
		return "Parameter"
	case KindContinuation:
		return "Continuation"
	case KindMutableVariable:
		return "MutableVariable"
	case KindLiteralList:
		return "LiteralList"
	case KindLiteralMap:
		return "LiteralMap"
	case KindCreateFunction:
		return "CreateFunction"
	case KindCreateBox:
		return "CreateBox"
	case KindCreateInstance:
		return "CreateInstance"
	case KindGetField:
		return "GetField"
	case KindGetStatic:
		return "GetStatic"
	case KindGetMutableVariable:
		return "GetMutableVariable"
	case KindReifyTypeVar:
		return "ReifyTypeVar"
	case KindReifyRuntimeType:
		return "ReifyRuntimeType"
	case KindReadTypeVariable:
		return "ReadTypeVariable"
	case KindTypeExpression:
		return "TypeExpression"
	case KindInterceptor:
		return "Interceptor"
	case KindIdentical:
		return "Identical"
	case KindCreateInvocationMirror:
		return "CreateInvocationMirror"
	default:
		return "Kind(?)"
	}
}
