package ir

// Children returns n's structural (parent-pointer) children: the nodes n
// directly owns, as opposed to the nodes it merely references through a
// Reference. Continuation bodies are reachable this way too, since a
// Continuation's parent is the LetCont/LetHandler that bound it and its
// Body's parent is the Continuation itself.
func Children(n Node) []Node {
	switch v := n.(type) {
	case *RootNode:
		return append(paramNodes(v.Parameters), v.Body)
	case *LetPrim:
		return []Node{v.Primitive, v.Body}
	case *LetCont:
		return []Node{v.Cont, v.Body}
	case *LetHandler:
		return []Node{v.Handler, v.Body}
	case *LetMutable:
		return []Node{v.Variable, v.Body}
	case *SetMutableVariable:
		return []Node{v.Body}
	case *SetField:
		return []Node{v.Body}
	case *SetStatic:
		return []Node{v.Body}
	case *DeclareFunction:
		return []Node{v.Variable, v.Function, v.Body}
	case *Continuation:
		return append(paramNodes(v.Parameters), v.Body)
	default:
		// Terminal expressions (Branch, the Invoke* family,
		// ConcatenateStrings, TypeOperator, Throw, Rethrow, NonTailThrow)
		// and every primitive/Definition own no structural children: they
		// only reference other nodes via Reference edges.
		return nil
	}
}

func paramNodes(params []*Parameter) []Node {
	ns := make([]Node, 0, len(params)+1)
	for _, p := range params {
		ns = append(ns, p)
	}
	return ns
}

// Walk visits n and every node transitively reachable through structural
// children, calling visit once per node. Order is a pre-order traversal.
func Walk(n Node, visit func(Node)) {
	if n == nil {
		return
	}
	visit(n)
	for _, c := range Children(n) {
		Walk(c, visit)
	}
}

// SetParents performs the preparatory walk that assigns every node's parent
// pointer from the structural-child relationship, before analysis begins.
// It is idempotent and safe to call on graphs already wired by this
// package's own constructors.
func SetParents(root Node) {
	Walk(root, func(n Node) {
		for _, c := range Children(n) {
			if c != nil {
				c.setParent(n)
			}
		}
	})
}
