package transform

import (
	"testing"

	"github.com/cps-opt/sccp/analyzer"
	"github.com/cps-opt/sccp/constsystem"
	"github.com/cps-opt/sccp/ir"
	"github.com/cps-opt/sccp/typesystem"
)

type stubCoreTypes struct{}

func (stubCoreTypes) Null() string   { return "Null" }
func (stubCoreTypes) Object() string { return "Object" }

func run(root ir.Node) analyzer.Result[typesystem.Mask] {
	ir.SetParents(root)
	solver := analyzer.New[typesystem.Mask](typesystem.MaskTypes{}, constsystem.Default{}, stubCoreTypes{}, nil)
	return solver.Run(root)
}

func TestRewriteBranchEliminatesDeadContinuation(t *testing.T) {
	kTrue := ir.NewContinuation("true", nil, ir.NewRethrow())
	kFalse := ir.NewContinuation("false", nil, ir.NewRethrow())
	c := ir.NewConstant(true)
	branch := ir.NewBranch(c, kTrue, kFalse)
	root := ir.NewRoot(nil, ir.NewLetCont(kTrue, ir.NewLetCont(kFalse, ir.NewLetPrim(c, branch))))

	result := run(root)
	Run[typesystem.Mask](result, typesystem.MaskTypes{}, root)

	letCont, ok := root.Body.(*ir.LetCont)
	if !ok {
		t.Fatalf("expected root body unchanged (LetCont), got %T", root.Body)
	}
	inner, ok := letCont.Body.(*ir.LetCont)
	if !ok {
		t.Fatalf("expected nested LetCont, got %T", letCont.Body)
	}
	letPrim, ok := inner.Body.(*ir.LetPrim)
	if !ok {
		t.Fatalf("expected LetPrim(c) binding the condition, got %T", inner.Body)
	}
	invoke, ok := letPrim.Body.(*ir.InvokeContinuation)
	if !ok {
		t.Fatalf("expected Branch replaced by InvokeContinuation, got %T", letPrim.Body)
	}
	if invoke.Continuation.Def != ir.Definition(kTrue) {
		t.Error("expected the surviving InvokeContinuation to target the true continuation")
	}
}

func TestConstifyInvokeMethod(t *testing.T) {
	param := ir.NewParameter(false, nil)
	k := ir.NewContinuation("k", []*ir.Parameter{param}, ir.NewRethrow())
	c2 := ir.NewConstant(int64(2))
	c3 := ir.NewConstant(int64(3))
	sel := ir.Selector{Name: "+", Arity: 1, IsOperator: true, Operator: "+"}
	call := ir.NewInvokeMethod(c2, sel, []ir.Definition{c3}, k)
	body := ir.NewLetPrim(c3, call)
	body = ir.NewLetPrim(c2, body)
	root := ir.NewRoot(nil, ir.NewLetCont(k, body))

	result := run(root)
	Run[typesystem.Mask](result, typesystem.MaskTypes{}, root)

	outer, ok := root.Body.(*ir.LetCont)
	if !ok {
		t.Fatalf("expected LetCont at root, got %T", root.Body)
	}
	letC2, ok := outer.Body.(*ir.LetPrim)
	if !ok {
		t.Fatalf("expected outer LetPrim(c2), got %T", outer.Body)
	}
	letC3, ok := letC2.Body.(*ir.LetPrim)
	if !ok {
		t.Fatalf("expected LetPrim(c3), got %T", letC2.Body)
	}
	folded, ok := letC3.Body.(*ir.LetPrim)
	if !ok {
		t.Fatalf("expected InvokeMethod replaced by LetPrim(const), got %T", letC3.Body)
	}
	constDef, ok := folded.Primitive.(*ir.Constant)
	if !ok || constDef.Value != int64(5) {
		t.Errorf("expected folded constant 5, got %#v", folded.Primitive)
	}
	invoke, ok := folded.Body.(*ir.InvokeContinuation)
	if !ok {
		t.Fatalf("expected InvokeContinuation after folded constant, got %T", folded.Body)
	}
	if invoke.Continuation.Def != ir.Definition(k) {
		t.Error("expected the folded call to still invoke k")
	}
}

// ident is Identical(true, true): one operand is Constant(true) and the other
// is definitely bool, so the `x ≡ true` → `x` rewrite retargets ident's uses
// to that operand (itself a Constant(true)).
func TestIdenticalWithTrueOperandRetargetsUses(t *testing.T) {
	a := ir.NewConstant(true)
	b := ir.NewConstant(true)
	ident := ir.NewIdentical(a, b)
	outer := ir.NewIdentical(ident, ir.NewConstant(true))

	letOuter := ir.NewLetPrim(outer, ir.NewRethrow())
	letIdent := ir.NewLetPrim(ident, letOuter)
	root := ir.NewRoot(nil, ir.NewLetPrim(a, ir.NewLetPrim(b, letIdent)))

	result := run(root)
	Run[typesystem.Mask](result, typesystem.MaskTypes{}, root)

	if ident.Uses() != nil {
		t.Error("expected all uses of the rewritten Identical retargeted away, leaving its use-list empty")
	}
	foldedConst, ok := outer.Left.Def.(*ir.Constant)
	if !ok || foldedConst.Value != true {
		t.Errorf("expected outer.Left retargeted to Constant(true), got %#v", outer.Left.Def)
	}
}
