package ir

// FunctionRef is an opaque handle to a top-level function, static method, or
// constructor target. The front end that builds the graph is responsible
// for populating ReturnTypeHint with whatever it wants its TypeSystem
// implementation to turn into a τ when typesystem.System.ReturnType is
// consulted; this package and the analyzer never interpret the hint
// themselves.
type FunctionRef struct {
	Name           string
	ReturnTypeHint any
}

// StaticRef is an opaque handle to a static field, read by GetStatic and
// written by SetStatic.
type StaticRef struct {
	Name           string
	ReturnTypeHint any
}

// Selector names a virtual call site (method name + arity + whatever
// call-site disambiguators the front end needs), consulted by InvokeMethod.
// IsOperator/Operator identify primitive-operator call sites (`+`, `==`,
// unary `-`, ...) so the analyzer knows to try constsystem folding before
// falling back on typesystem.System.SelectorReturnType.
type Selector struct {
	Name           string
	Arity          int
	IsOperator     bool
	Operator       string
	ReturnTypeHint any
}
