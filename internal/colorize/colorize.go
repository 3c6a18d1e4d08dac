// Package colorize wraps fatih/color so that lattice.Value.String() can
// colorize its output, while still degrading to plain text when colorizing
// is turned off.
//
// Adapted from github.com/cs-au-dk/goat's utils.CanColorize: the teacher
// gates colorizing on a CLI flag (utils.Opts().NoColorize()); this package
// has no CLI of its own, so it gates on the SCCP_NO_COLOR environment
// variable instead, read once at package init.
package colorize

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

var disabled = os.Getenv("SCCP_NO_COLOR") != ""

func wrap(col func(...interface{}) string) func(...interface{}) string {
	if disabled {
		return func(is ...interface{}) string {
			return fmt.Sprint(is...)
		}
	}
	return col
}

var (
	// Lattice colors the name of a lattice element's tag (Nothing, Constant,
	// NonConst).
	Lattice = wrap(color.New(color.FgHiBlue).SprintFunc())
	// Value colors a constant's underlying Go value.
	Value = wrap(color.New(color.FgHiWhite).SprintFunc())
	// Type colors a printed τ.
	Type = wrap(color.New(color.FgCyan).SprintFunc())
	// Node colors an IR node kind name.
	Node = wrap(color.New(color.FgYellow).SprintFunc())
)
