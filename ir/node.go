// Package ir implements the continuation-passing-style program graph
// produced by an existing compiler front end. The analyzer, transformer,
// and materializer packages depend only on the exported interfaces and node
// kinds defined here.
package ir

// Node is the structural unit of the CPS graph: every expression,
// continuation, and primitive implements it. Every node has exactly one
// parent except the root, kept consistent across rewrites.
type Node interface {
	Kind() Kind
	Parent() Node
	setParent(Node)
}

// Definition is a Node that produces a value and therefore accumulates a
// use-list of References: each use of a definition is a reference
// participating in a doubly-linked per-definition use-list.
type Definition interface {
	Node
	// Uses returns the head of the use-list, or nil if unused.
	Uses() *Reference
	useList() *useList
}

// base implements the parent-pointer half of Node. Every concrete node type
// embeds it (directly, or transitively via defBase).
type base struct {
	parent Node
}

func (b *base) Parent() Node        { return b.parent }
func (b *base) setParent(p Node)    { b.parent = p }

// defBase implements Definition on top of base by adding a use-list head.
type defBase struct {
	base
	uses useList
}

func (d *defBase) Uses() *Reference    { return d.uses.first }
func (d *defBase) useList() *useList   { return &d.uses }

// useList is the doubly-linked list of References pointing at one
// Definition. Insertion and removal are both O(1).
type useList struct {
	first *Reference
}

func (u *useList) add(r *Reference) {
	r.prev = nil
	r.next = u.first
	if u.first != nil {
		u.first.prev = r
	}
	u.first = r
}

func (u *useList) remove(r *Reference) {
	if r.prev != nil {
		r.prev.next = r.next
	} else {
		u.first = r.next
	}
	if r.next != nil {
		r.next.prev = r.prev
	}
	r.prev, r.next = nil, nil
}

// Reference is a single use-site of a Definition: a per-use-site doubly
// linked list node. User is the node that owns this reference slot (e.g.
// the InvokeMethod whose Receiver field holds it).
type Reference struct {
	Def  Definition
	User Node

	prev, next *Reference
}

// Use creates a new Reference to def on behalf of user and links it into
// def's use-list. def may be nil, producing a reference with no definition
// (callers must not dereference Def in that case); this is never done by
// this package's own constructors, but is occasionally convenient in tests.
func Use(def Definition, user Node) *Reference {
	r := &Reference{Def: def, User: user}
	if def != nil {
		def.useList().add(r)
	}
	return r
}

// Next returns the next Reference in def's use-list, or nil.
func (r *Reference) Next() *Reference {
	return r.next
}

// Unlink removes r from its definition's use-list in O(1) and clears Def,
// so double-unlinking is a harmless no-op. Required by every rewrite that
// discards an operand or a continuation edge.
func (r *Reference) Unlink() {
	if r.Def == nil {
		return
	}
	r.Def.useList().remove(r)
	r.Def = nil
}

// Retarget unlinks r from its current definition (if any) and relinks it to
// newDef, preserving r's identity and its User. Used by the transformer's
// Identical rewrites, which substitute every use of an Identical node with
// its non-literal operand (`x ≡ true` → `x`) or with a materialized
// constant.
func (r *Reference) Retarget(newDef Definition) {
	if r.Def != nil {
		r.Def.useList().remove(r)
	}
	r.Def = newDef
	if newDef != nil {
		newDef.useList().add(r)
	}
}

// ForEachUse calls fn once for every Reference currently in def's use-list.
// fn may unlink or retarget the current reference (but not others) without
// corrupting the traversal.
func ForEachUse(def Definition, fn func(*Reference)) {
	r := def.Uses()
	for r != nil {
		next := r.next
		fn(r)
		r = next
	}
}
