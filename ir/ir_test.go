package ir

import "testing"

// Use links a Reference into the definition's use-list, in head-insertion
// order; Unlink removes it in O(1) and leaves the reference safe to
// double-unlink.
func TestUseListAddAndUnlink(t *testing.T) {
	def := NewConstant(int64(1))
	user := NewRethrow()

	r1 := Use(def, user)
	r2 := Use(def, user)

	var seen []*Reference
	ForEachUse(def, func(r *Reference) { seen = append(seen, r) })
	if len(seen) != 2 || seen[0] != r2 || seen[1] != r1 {
		t.Fatalf("expected use-list [r2, r1] (head-insertion order), got %v", seen)
	}

	r2.Unlink()
	if def.Uses() != r1 {
		t.Fatalf("expected r1 to be the sole remaining use, got %v", def.Uses())
	}
	if r2.Def != nil {
		t.Error("expected Unlink to clear r2.Def")
	}

	// Double-unlink is a harmless no-op.
	r2.Unlink()

	r1.Unlink()
	if def.Uses() != nil {
		t.Errorf("expected an empty use-list, got %v", def.Uses())
	}
}

// Retarget moves a reference from one definition's use-list to another's,
// without touching the reference's User or any other reference.
func TestReferenceRetarget(t *testing.T) {
	oldDef := NewConstant(int64(1))
	newDef := NewConstant(int64(2))
	user := NewRethrow()

	kept := Use(oldDef, user)
	moved := Use(oldDef, user)

	moved.Retarget(newDef)

	if oldDef.Uses() != kept {
		t.Errorf("expected oldDef's use-list to retain only kept, got %v", oldDef.Uses())
	}
	if kept.next != nil || kept.prev != nil {
		t.Error("expected the untouched reference's links to be unaffected")
	}
	if newDef.Uses() != moved {
		t.Errorf("expected newDef's use-list to contain moved, got %v", newDef.Uses())
	}
	if moved.Def != newDef {
		t.Error("expected moved.Def updated to newDef")
	}
	if moved.User != user {
		t.Error("Retarget must not change User")
	}
}

// Retarget from a reference with no current Def (Def == nil) just links
// into the new definition's use-list, without trying to remove from a nil
// use-list.
func TestReferenceRetargetFromNil(t *testing.T) {
	newDef := NewConstant(int64(1))
	user := NewRethrow()
	r := &Reference{User: user}

	r.Retarget(newDef)

	if newDef.Uses() != r {
		t.Fatalf("expected r linked into newDef's use-list, got %v", newDef.Uses())
	}
}

// ForEachUse tolerates fn unlinking the reference it was just called with,
// because it snapshots the next pointer before calling fn.
func TestForEachUseToleratesUnlinkDuringIteration(t *testing.T) {
	def := NewConstant(true)
	user := NewRethrow()
	Use(def, user)
	Use(def, user)
	Use(def, user)

	var visited int
	ForEachUse(def, func(r *Reference) {
		visited++
		r.Unlink()
	})

	if visited != 3 {
		t.Errorf("expected all 3 references visited despite unlinking, got %d", visited)
	}
	if def.Uses() != nil {
		t.Errorf("expected an empty use-list after unlinking every use, got %v", def.Uses())
	}
}

// Splice replaces old in its parent's Body slot and reparents the
// replacement, atomically: the old node's former parent link is irrelevant
// afterward, and the replacement is reachable from the parent exactly where
// old used to be.
func TestSpliceReplacesBodySlotAndReparents(t *testing.T) {
	inner := NewRethrow()
	letPrim := NewLetPrim(NewConstant(int64(1)), inner)
	root := NewRoot(nil, letPrim)
	SetParents(root)

	replacement := NewRethrow()
	Splice(inner, replacement)

	if letPrim.Body != replacement {
		t.Fatalf("expected letPrim.Body to hold the replacement, got %T", letPrim.Body)
	}
	if replacement.Parent() != letPrim {
		t.Errorf("expected replacement's parent set to letPrim, got %v", replacement.Parent())
	}
}

// Splice on a node sitting at the root's Body slot works the same way, via
// RootNode's own replaceChild.
func TestSpliceReplacesRootBody(t *testing.T) {
	body := NewRethrow()
	root := NewRoot(nil, body)
	SetParents(root)

	replacement := NewRethrow()
	Splice(body, replacement)

	if root.Body != replacement {
		t.Fatalf("expected root.Body replaced, got %T", root.Body)
	}
	if replacement.Parent() != root {
		t.Error("expected replacement reparented to root")
	}
}

// Splice on a node whose parent has no body slot at all (e.g. a Branch,
// which transfers control only through continuation References, never
// through a structural Body) panics rather than silently doing nothing.
// No ordinary construction produces this shape — every node the
// constructors structurally link (link, not Use) is only ever parented by
// a bodyHolder — so the scenario is built directly with SetParent.
func TestSpliceOnNonBodyHolderParentPanics(t *testing.T) {
	kTrue := NewContinuation("true", nil, NewRethrow())
	kFalse := NewContinuation("false", nil, NewRethrow())
	branch := NewBranch(NewConstant(true), kTrue, kFalse)
	child := NewRethrow()
	SetParent(child, branch)

	defer func() {
		if recover() == nil {
			t.Error("expected Splice to panic when the target's parent has no body slot")
		}
	}()
	Splice(child, NewRethrow())
}

// SetParents is idempotent: calling it twice over an already-wired graph
// leaves every parent pointer exactly as the first call set it.
func TestSetParentsIsIdempotent(t *testing.T) {
	inner := NewRethrow()
	cont := NewContinuation("k", nil, inner)
	root := NewRoot(nil, NewLetCont(cont, NewRethrow()))

	SetParents(root)
	firstInnerParent := inner.Parent()
	firstContParent := cont.Parent()

	SetParents(root)
	if inner.Parent() != firstInnerParent {
		t.Error("expected inner's parent unchanged by a second SetParents call")
	}
	if cont.Parent() != firstContParent {
		t.Error("expected cont's parent unchanged by a second SetParents call")
	}
	if cont.Parent() != root.Body.(*LetCont) {
		t.Errorf("expected cont's parent to be the LetCont binding it, got %v", cont.Parent())
	}
}

// Walk visits every node reachable via structural children, pre-order,
// including continuation bodies nested inside LetCont.
func TestWalkVisitsEveryStructuralNode(t *testing.T) {
	leaf := NewRethrow()
	cont := NewContinuation("k", nil, leaf)
	letCont := NewLetCont(cont, NewRethrow())
	root := NewRoot(nil, letCont)

	var kinds []Kind
	Walk(root, func(n Node) { kinds = append(kinds, n.Kind()) })

	want := []Kind{KindRoot, KindLetCont, KindContinuation, KindRethrow, KindRethrow}
	if len(kinds) != len(want) {
		t.Fatalf("expected %d nodes visited, got %d: %v", len(want), len(kinds), kinds)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("position %d: expected kind %v, got %v", i, want[i], kinds[i])
		}
	}
}
