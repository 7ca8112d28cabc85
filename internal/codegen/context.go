// Package codegen dispatches on a production's descriptor string to an
// emit routine that synthesizes the reduction's attribute, writing
// MIPS-style stack-relative assembly into its Instructions list (spec
// component F). Grounded on codegen in
// original_source/semantic_routines.cpp, generalized from that file's
// partial switch-on-descriptor to the complete schema spec.md §4.5
// names, and rewritten as a descriptor-to-func table rather than an
// if/else chain.
package codegen

import (
	"strconv"

	"github.com/LJQ0727/CompilerForC/internal/semantic"
)

// Context owns the code generator's process-wide mutable state: the
// symbol table and the next-label counter (spec.md §5, "Shared mutable
// state ... owned by the code-generation phase").
type Context struct {
	Sym       *semantic.SymbolTable
	nextLabel int
}

// NewContext returns a Context with a fresh global-scope symbol table.
func NewContext() *Context {
	return &Context{Sym: semantic.NewSymbolTable()}
}

// Label allocates and returns the next label name, e.g. "L0", "L1", ...
// (spec.md §4.5, "Label allocation is a monotonic counter").
func (c *Context) Label() string {
	n := c.nextLabel
	c.nextLabel++
	return "L" + strconv.Itoa(n)
}
