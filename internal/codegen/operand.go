package codegen

import (
	"fmt"

	"github.com/LJQ0727/CompilerForC/internal/semantic"
)

// load merges a's own instructions into res (they must run before a's
// value is available) and then emits one instruction that materializes
// a's value into reg: li for a literal, lw from the symbol table for an
// id, lw from the stack slot for an already-computed expression (spec.md
// §4.5, "emit instructions to materialize L into a temporary register").
func (c *Context) load(res *semantic.Attribute, a *semantic.Attribute, reg string) {
	res.Merge(a)
	switch a.Kind {
	case semantic.Literal:
		res.Emit(fmt.Sprintf("li %s, %d", reg, a.Value))
	case semantic.ID:
		res.Emit(fmt.Sprintf("lw %s, %d($sp)", reg, c.Sym.Lookup(a.Name)))
	case semantic.Expression:
		res.Emit(fmt.Sprintf("lw %s, %d($sp)", reg, a.Offset))
	default:
		panic(fmt.Sprintf("codegen: cannot materialize attribute of kind %v", a.Kind))
	}
}

// spill allocates a fresh stack slot, stores reg there, and returns the
// slot's offset.
func (c *Context) spill(res *semantic.Attribute, reg string) int {
	off := c.Sym.AllocateSlot()
	res.Emit(fmt.Sprintf("sw %s, %d($sp)", reg, off))
	return off
}

// binary realizes the "Binary arithmetic/bitwise/relational/shift
// operator" schema in spec.md §4.5: materialize l into $t1, r into $t2,
// run body (which must leave the result in $t0), then spill $t0.
func (c *Context) binary(l, r *semantic.Attribute, body ...string) *semantic.Attribute {
	res := &semantic.Attribute{Kind: semantic.Expression}
	c.load(res, l, "$t1")
	c.load(res, r, "$t2")
	for _, instr := range body {
		res.Emit(instr)
	}
	res.Offset = c.spill(res, "$t0")
	return res
}
