// Package dotdump renders a snapshot of a CPS graph — reachability and
// folded values annotated — as Graphviz dot text, purely for inspecting
// the solver and the rewritten graph while developing the pass. Nothing in
// sccp.Pass.Run calls it.
//
// Adapted from github.com/cs-au-dk/goat's utils/dot/dot.go
// (DotGraph/DotNode/DotEdge/DotAttrs) and its DotToImage's in-process
// graphviz.ParseBytes path (rendering into a buffer here rather than to a
// file), dropping dot.go's shelling-out path (dotToImageGraphviz) since a pass library has
// no business invoking an external `dot` binary. WriteDot renders
// procedurally rather than through text/template, since the node/edge set
// here is small and fixed-shape enough not to need one.
package dotdump

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/cps-opt/sccp/analyzer"
	"github.com/cps-opt/sccp/ir"
	"github.com/cps-opt/sccp/lattice"
)

// DotAttrs is a set of Graphviz node/edge attributes. String renders keys
// in sorted order so the same graph always renders to the same text,
// unlike the teacher's DotAttrs.List in utils/dot/dot.go, which ranges
// over the map directly — fine for an interactive tool, not for a golden
// test.
type DotAttrs map[string]string

func (a DotAttrs) String() string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	l := make([]string, 0, len(keys))
	for _, k := range keys {
		l = append(l, fmt.Sprintf("%s=%q", k, a[k]))
	}
	return strings.Join(l, " ")
}

// DotNode is one rendered CPS node.
type DotNode struct {
	ID    string
	Attrs DotAttrs
}

// DotEdge is one structural or use edge between two rendered nodes.
type DotEdge struct {
	From, To string
	Attrs    DotAttrs
}

// DotGraph is the whole rendered snapshot, turned into dot text by WriteDot.
type DotGraph struct {
	Title string
	Nodes []*DotNode
	Edges []*DotEdge
}

// WriteDot renders g as dot text: a header, one line per node, one line
// per edge, in the order they were recorded.
func (g *DotGraph) WriteDot() (string, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "digraph SCCP {\n")
	fmt.Fprintf(&buf, "\tlabel=%q;\n", g.Title)
	fmt.Fprintf(&buf, "\tfontname=\"Arial\";\n")
	fmt.Fprintf(&buf, "\trankdir=\"TB\";\n")
	fmt.Fprintf(&buf, "\tnode [shape=\"box\" style=\"filled\" fontname=\"Verdana\"];\n\n")
	for _, n := range g.Nodes {
		fmt.Fprintf(&buf, "\t%q [ %s ];\n", n.ID, n.Attrs)
	}
	buf.WriteString("\n")
	for _, e := range g.Edges {
		fmt.Fprintf(&buf, "\t%q -> %q [ %s ];\n", e.From, e.To, e.Attrs)
	}
	buf.WriteString("}\n")
	return buf.String(), nil
}

type dumper[T comparable] struct {
	result analyzer.Result[T]
	graph  *DotGraph
	ids    map[ir.Node]string
	next   int
}

// Dump walks root's structural tree (binder bodies, bound continuations and
// their bodies) plus each Branch's two target continuations, whether or not
// the analyzer proved them reachable, and renders a DotGraph: reachable
// nodes filled green, unreachable ones gray, with a drawn definition's
// lattice.Value annotated unless it is Nothing. Primitives bound by LetPrim,
// parameters and mutable variables are not drawn.
func Dump[T comparable](root ir.Node, result analyzer.Result[T]) string {
	d := &dumper[T]{result: result, graph: &DotGraph{Title: "sccp"}, ids: map[ir.Node]string{}}
	d.visit(root, nil)
	dot, err := d.graph.WriteDot()
	if err != nil {
		return fmt.Sprintf("# dotdump: %v\n", err)
	}
	return dot
}

// Render uses the goccy/go-graphviz library in-process to turn dot text
// into format (e.g. "svg", "png"), returning the rendered bytes.
func Render(dot string, format string) ([]byte, error) {
	g := graphviz.New()
	graph, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, err
	}
	defer graph.Close()
	defer g.Close()

	var buf bytes.Buffer
	if err := g.Render(graph, graphviz.Format(format), &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (d *dumper[T]) idFor(n ir.Node) string {
	if id, ok := d.ids[n]; ok {
		return id
	}
	id := fmt.Sprintf("n%d_%s", d.next, kindName(n))
	d.next++
	d.ids[n] = id
	return id
}

func (d *dumper[T]) addNode(n ir.Node) string {
	id := d.idFor(n)
	for _, existing := range d.graph.Nodes {
		if existing.ID == id {
			return id
		}
	}
	color := "lightgray"
	if d.result.Reachable(n) {
		color = "darkseagreen"
	}
	label := kindName(n)
	if v, ok := n.(ir.Definition); ok {
		if val := d.result.GetType(v); !val.IsNothing() {
			label += "\n" + valueLabel(val)
		}
	}
	d.graph.Nodes = append(d.graph.Nodes, &DotNode{
		ID:    id,
		Attrs: DotAttrs{"label": label, "fillcolor": color},
	})
	return id
}

func (d *dumper[T]) addEdge(from, to string, label string) {
	d.graph.Edges = append(d.graph.Edges, &DotEdge{From: from, To: to, Attrs: DotAttrs{"label": label}})
}

func (d *dumper[T]) visit(n ir.Node, parentID *string) {
	if n == nil {
		return
	}
	id := d.addNode(n)
	if parentID != nil {
		d.addEdge(*parentID, id, "")
	}

	switch v := n.(type) {
	case *ir.RootNode:
		d.visit(v.Body, &id)
	case *ir.LetPrim:
		d.visit(v.Body, &id)
	case *ir.LetCont:
		d.visit(v.Cont, &id)
		d.visit(v.Body, &id)
	case *ir.LetHandler:
		d.visit(v.Handler, &id)
		d.visit(v.Body, &id)
	case *ir.LetMutable:
		d.visit(v.Body, &id)
	case *ir.SetMutableVariable:
		d.visit(v.Body, &id)
	case *ir.SetField:
		d.visit(v.Body, &id)
	case *ir.SetStatic:
		d.visit(v.Body, &id)
	case *ir.DeclareFunction:
		d.visit(v.Body, &id)
	case *ir.Continuation:
		d.visit(v.Body, &id)
	case *ir.Branch:
		d.visit(v.TrueCont.Def, &id)
		d.visit(v.FalseCont.Def, &id)
	}
}

func valueLabel[T comparable](v lattice.Value[T]) string {
	switch {
	case v.IsConstant():
		c, _ := v.ConstVal()
		return fmt.Sprintf("Constant(%v)", c)
	case v.IsNonConst():
		return "NonConst"
	default:
		return "Nothing"
	}
}

func kindName(n ir.Node) string {
	return fmt.Sprintf("%T", n)[1:]
}
