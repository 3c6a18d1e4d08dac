package ir

// link sets child's parent to parent. Every expression constructor in this
// package calls it for each Node-typed field it owns, so graphs built
// through the constructors already satisfy the parent-pointer invariant
// without a separate preparatory walk.
//
// sccp.Pass.Run still performs a preparatory walk (SetParents) before
// analysis, to cover graphs assembled by hand rather than exclusively
// through these constructors.
func link(parent Node, child Node) {
	if child != nil {
		child.setParent(parent)
	}
}

// SetParent is the exported form of the same operation, used by the
// preparatory walk and by the transformer when it splices in new nodes.
func SetParent(child, parent Node) {
	link(parent, child)
}

// bodyHolder is implemented by every node kind with a single structural
// Body successor: the handful of binders (LetPrim, LetCont, LetHandler,
// LetMutable, SetMutableVariable, SetField, SetStatic, DeclareFunction),
// Continuation, and the root. Terminal expressions (Branch, the Invoke* family,
// ConcatenateStrings, TypeOperator, Throw/Rethrow) transfer control through
// continuation References instead, so they never appear on the receiving
// end of Splice.
type bodyHolder interface {
	replaceChild(old, replacement Node)
}

// Splice replaces old with replacement in old's parent slot: it points
// replacement's parent at old's former parent, and rewrites whichever field
// of that parent held old to hold replacement instead, atomically from the
// caller's perspective. Every node replacement the transformer makes goes
// through Splice; its Identical rewrites retarget References instead.
func Splice(old, replacement Node) {
	parent := old.Parent()
	replacement.setParent(parent)
	if parent == nil {
		return
	}
	holder, ok := parent.(bodyHolder)
	if !ok {
		panic("ir: Splice called on a node whose parent has no body slot")
	}
	holder.replaceChild(old, replacement)
}
