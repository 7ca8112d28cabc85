// Package semantic defines the semantic attribute record attached to
// every symbol on the parser's stack, and the scoped symbol table the
// code generator uses to resolve variable addresses (spec component E).
package semantic

// Kind selects which fields of an Attribute are meaningful (spec.md §3).
type Kind int

const (
	// Terminal attributes carry the raw source lexeme of a shifted
	// token and nothing else.
	Terminal Kind = iota
	// ID attributes carry a variable name to be resolved against the
	// symbol table for an address.
	ID
	// Literal attributes carry a known integer value.
	Literal
	// Expression attributes carry the stack-frame offset holding a
	// computed value.
	Expression
	// Stmt attributes carry no payload beyond accumulated instructions.
	Stmt
	// List attributes carry an ordered sequence of element attributes
	// (SPEC_FULL.md §12's id_list/exp_list read/write argument lists).
	List
)

// Attribute is the tagged record synthesized and propagated on every
// reduction (spec.md §3, "Semantic attribute").
type Attribute struct {
	Kind Kind

	// Text is the meaningful field for Kind == Terminal: the raw lexeme.
	Text string

	// Name is the meaningful field for Kind == ID: a variable name,
	// looked up in the symbol table for its address.
	Name string

	// Value is the meaningful field for Kind == Literal.
	Value int

	// Offset is the meaningful field for Kind == Expression: the
	// stack-frame offset (a negative multiple of the word size) holding
	// the computed value.
	Offset int

	// Instructions accumulates the assembly fragments emitted for this
	// attribute's subtree, in source order.
	Instructions []string

	// Items is the meaningful field for Kind == List: the list's
	// elements in source order.
	Items []*Attribute
}

// Merge appends other's instructions after a's, in source order (spec.md
// §3: "Merging attributes appends instructions in source order").
func (a *Attribute) Merge(other *Attribute) {
	a.Instructions = append(a.Instructions, other.Instructions...)
}

// Emit appends one instruction line to a's accumulated instructions.
func (a *Attribute) Emit(instr string) {
	a.Instructions = append(a.Instructions, instr)
}
