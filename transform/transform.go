// Package transform rewrites a CPS graph in place using the reachability
// and value facts an analyzer.Solver has already computed to a fixed
// point. It performs exactly three local rewrites — constant
// materialization, dead-branch elimination, and the Identical-to-bool
// identity — and nothing else; it never re-derives facts the analyzer
// already owns.
//
// Grounded on the rewrite-after-analysis shape of
// _examples/dominikh-go-tools/ir/lift.go (liftAlloc/rename: a structural
// rewrite driven entirely by already-computed dataflow facts, performed in
// one pass after the analysis that produced those facts has terminated),
// adapted here to splice through ir.Splice/ir.Reference.Retarget instead of
// slice mutation, since this graph tracks uses with an intrusive use-list.
package transform

import (
	"github.com/cps-opt/sccp/analyzer"
	"github.com/cps-opt/sccp/ir"
	"github.com/cps-opt/sccp/materializer"
)

// TypeSystem is the subset of typesystem.System[T] the Identical rewrite
// consults, restated locally so this package doesn't import typesystem.
type TypeSystem[T comparable] interface {
	IsDefinitelyBool(t T) bool
}

// Run walks every node reachable from root and applies the three local
// rewrites wherever result licenses one. It mutates the graph in place;
// root itself is never replaced.
func Run[T comparable](result analyzer.Result[T], types TypeSystem[T], root ir.Node) {
	t := &transformer[T]{result: result, types: types}
	t.walk(root)
}

type transformer[T comparable] struct {
	result analyzer.Result[T]
	types  TypeSystem[T]
}

func (t *transformer[T]) walk(n ir.Node) {
	if n == nil {
		return
	}

	switch v := n.(type) {
	case *ir.RootNode:
		t.walk(v.Body)

	case *ir.LetPrim:
		t.rewriteBinding(v)
		t.walk(v.Body)

	case *ir.LetCont:
		t.walk(v.Cont)
		t.walk(v.Body)

	case *ir.LetHandler:
		t.walk(v.Handler)
		t.walk(v.Body)

	case *ir.LetMutable:
		t.walk(v.Body)

	case *ir.SetMutableVariable:
		t.walk(v.Body)

	case *ir.SetField:
		t.walk(v.Body)

	case *ir.SetStatic:
		t.walk(v.Body)

	case *ir.DeclareFunction:
		t.walk(v.Body)

	case *ir.Continuation:
		t.walk(v.Body)

	case *ir.InvokeMethod:
		if replaced := t.constify(v, v.Receiver, v.Arguments, v.Continuation); replaced != nil {
			t.walk(replaced)
		}

	case *ir.ConcatenateStrings:
		if replaced := t.constify(v, nil, v.Arguments, v.Continuation); replaced != nil {
			t.walk(replaced)
		}

	case *ir.TypeOperator:
		if replaced := t.constify(v, v.Value, nil, v.Continuation); replaced != nil {
			t.walk(replaced)
		}

	case *ir.Branch:
		if replaced := t.rewriteBranch(v); replaced != nil {
			t.walk(replaced)
		}

	case *ir.InvokeContinuation, *ir.InvokeStatic, *ir.InvokeConstructor,
		*ir.InvokeMethodDirectly, *ir.Throw, *ir.Rethrow, *ir.NonTailThrow:
		// Terminal: no structural successor of our own to recurse into.
	}
}

// rewriteBinding inspects a LetPrim's bound definition for the Identical
// rewrite. constifyExpression for InvokeMethod/ConcatenateStrings/
// TypeOperator is handled directly in walk since those kinds aren't
// LetPrim-bound.
func (t *transformer[T]) rewriteBinding(let *ir.LetPrim) {
	ident, ok := let.Primitive.(*ir.Identical)
	if !ok {
		return
	}

	if replacement := t.identityOperand(ident); replacement != nil {
		ir.ForEachUse(ident, func(ref *ir.Reference) {
			ref.Retarget(replacement)
		})
		return
	}

	v := t.result.GetType(ident)
	if !v.IsConstant() {
		return
	}
	materialized, err := materializer.Materialize(v)
	if err != nil {
		return
	}
	constDef := materialized.(ir.Definition)
	ir.ForEachUse(ident, func(ref *ir.Reference) {
		ref.Retarget(constDef)
	})
}

// identityOperand implements `x ≡ true` → `x` when x's static type is
// definitely bool: it returns x's definition when one operand of ident is
// literally Constant(true) and the other's type guarantees bool, or nil if
// the rewrite doesn't apply.
func (t *transformer[T]) identityOperand(ident *ir.Identical) ir.Definition {
	pairs := [2][2]*ir.Reference{{ident.Left, ident.Right}, {ident.Right, ident.Left}}
	for _, pair := range pairs {
		literal, operand := pair[0], pair[1]
		lv := t.result.GetType(literal.Def)
		c, ok := lv.ConstVal()
		if !ok || c != true {
			continue
		}
		ov := t.result.GetType(operand.Def)
		if ov.IsNothing() {
			continue
		}
		if t.types.IsDefinitelyBool(ov.Type()) {
			return operand.Def
		}
	}
	return nil
}

// constify replaces expr with a LetPrim binding the materialized constant
// followed by an unconditional InvokeContinuation, when result proved
// expr's value constant. It returns the replacement node, or nil if expr
// wasn't constant or its constant could not be materialized (in which case
// expr is left untouched and no error is reported).
func (t *transformer[T]) constify(expr ir.Node, receiver *ir.Reference, args []*ir.Reference, contRef *ir.Reference) ir.Node {
	v := t.result.GetType(expr)
	if !v.IsConstant() {
		return nil
	}
	materialized, err := materializer.Materialize(v)
	if err != nil {
		return nil
	}
	constDef := materialized.(ir.Definition)

	cont := contRef.Def.(*ir.Continuation)
	invoke := ir.NewInvokeContinuation(cont, []ir.Definition{constDef})
	replacement := ir.NewLetPrim(constDef, invoke)

	if receiver != nil {
		receiver.Unlink()
	}
	for _, a := range args {
		a.Unlink()
	}
	contRef.Unlink()

	ir.Splice(expr, replacement)
	return replacement
}

// rewriteBranch replaces a Branch whose condition has settled on exactly
// one live successor with an unconditional InvokeContinuation into that
// successor. It returns the replacement, or nil if both successors remain
// live (the runtime test is still required).
func (t *transformer[T]) rewriteBranch(branch *ir.Branch) ir.Node {
	trueReachable := t.result.Reachable(branch.TrueCont.Def)
	falseReachable := t.result.Reachable(branch.FalseCont.Def)
	if trueReachable == falseReachable {
		return nil
	}

	live := branch.FalseCont
	dead := branch.TrueCont
	if trueReachable {
		live, dead = branch.TrueCont, branch.FalseCont
	}

	liveCont := live.Def.(*ir.Continuation)
	replacement := ir.NewInvokeContinuation(liveCont, nil)

	branch.Condition.Unlink()
	live.Unlink()
	dead.Unlink()

	ir.Splice(branch, replacement)
	return replacement
}
