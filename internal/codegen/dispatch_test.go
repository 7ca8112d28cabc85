package codegen

import (
	"strconv"
	"strings"
	"testing"

	"github.com/LJQ0727/CompilerForC/internal/grammar"
	"github.com/LJQ0727/CompilerForC/internal/semantic"
)

func prodWithDescriptor(descriptor string) *grammar.Production {
	return &grammar.Production{Descriptor: descriptor}
}

func term(text string) *semantic.Attribute {
	return &semantic.Attribute{Kind: semantic.Terminal, Text: text}
}

func TestPassThroughSingleChild(t *testing.T) {
	c := NewContext()
	child := &semantic.Attribute{Kind: semantic.Expression, Offset: -8}
	got := c.Generate(prodWithDescriptor(""), []*semantic.Attribute{child})
	if got != child {
		t.Errorf("single-child pass-through should return the child attribute unchanged")
	}
}

func TestPassThroughConcatenatesInstructions(t *testing.T) {
	c := NewContext()
	a := &semantic.Attribute{Kind: semantic.Stmt, Instructions: []string{"x"}}
	b := term(";")
	got := c.Generate(prodWithDescriptor(""), []*semantic.Attribute{a, b})
	if len(got.Instructions) != 1 || got.Instructions[0] != "x" {
		t.Errorf("got instructions %v, want [\"x\"]", got.Instructions)
	}
}

func TestIDDeclInitializesToZero(t *testing.T) {
	c := NewContext()
	got := c.Generate(prodWithDescriptor("id_decl"), []*semantic.Attribute{term("x")})
	if got.Kind != semantic.ID || got.Name != "x" {
		t.Fatalf("got %+v, want an ID attribute named x", got)
	}
	if len(got.Instructions) != 2 || got.Instructions[0] != "li $t0, 0" {
		t.Errorf("got instructions %v, want a zero-init followed by a store", got.Instructions)
	}
	if off := c.Sym.Lookup("x"); off != -WordSizeOf(c) {
		t.Errorf("x resolved to offset %d, want the first slot", off)
	}
}

// WordSizeOf returns semantic.WordSize, the size of one stack slot.
func WordSizeOf(c *Context) int {
	return semantic.WordSize
}

func TestIDDeclArrayReservesConsecutiveSlots(t *testing.T) {
	c := NewContext()
	c.Generate(prodWithDescriptor("id_decl_array"), []*semantic.Attribute{term("a"), nil, term("3"), nil})
	off0 := c.Sym.Lookup("a[0]")
	off1 := c.Sym.Lookup("a[1]")
	if off1 != off0-semantic.WordSize {
		t.Errorf("a[0]=%d a[1]=%d, want consecutive slots", off0, off1)
	}
}

func TestBinaryPlusMaterializesBothOperandsAndSpills(t *testing.T) {
	c := NewContext()
	l := &semantic.Attribute{Kind: semantic.Literal, Value: 1}
	r := &semantic.Attribute{Kind: semantic.Literal, Value: 2}
	got := c.Generate(prodWithDescriptor("plus"), []*semantic.Attribute{l, term("+"), r})
	if got.Kind != semantic.Expression {
		t.Fatalf("got kind %v, want Expression", got.Kind)
	}
	joined := strings.Join(got.Instructions, "\n")
	if !strings.Contains(joined, "li $t1, 1") || !strings.Contains(joined, "li $t2, 2") {
		t.Errorf("expected both operands materialized, got %v", got.Instructions)
	}
	if !strings.Contains(joined, "add $t0, $t1, $t2") {
		t.Errorf("expected an add instruction, got %v", got.Instructions)
	}
	last := got.Instructions[len(got.Instructions)-1]
	if !strings.HasPrefix(last, "sw $t0,") {
		t.Errorf("expected the result to be spilled last, got %q", last)
	}
}

func TestNotExpConstantFolds(t *testing.T) {
	c := NewContext()
	zero := &semantic.Attribute{Kind: semantic.Literal, Value: 0}
	got := c.Generate(prodWithDescriptor("not_exp"), []*semantic.Attribute{term("!"), zero})
	if got.Kind != semantic.Literal || got.Value != 1 {
		t.Errorf("!0 should constant-fold to literal 1, got %+v", got)
	}
	if len(got.Instructions) != 0 {
		t.Errorf("constant-folded not_exp should emit no instructions, got %v", got.Instructions)
	}
}

func TestReturnEmitsBranchToEnd(t *testing.T) {
	c := NewContext()
	got := c.Generate(prodWithDescriptor("return"), nil)
	if len(got.Instructions) != 1 || got.Instructions[0] != "b end" {
		t.Errorf("got %v, want [\"b end\"]", got.Instructions)
	}
}

func TestProgramWrapsWithPrologueAndEpilogue(t *testing.T) {
	c := NewContext()
	body := &semantic.Attribute{Kind: semantic.Stmt, Instructions: []string{"sw $t0, -4($sp)"}}
	got := c.Generate(prodWithDescriptor("program"), []*semantic.Attribute{body})
	want := []string{"main:", "sw $t0, -4($sp)", "end:", "nop"}
	if len(got.Instructions) != len(want) {
		t.Fatalf("got %v, want %v", got.Instructions, want)
	}
	for i := range want {
		if got.Instructions[i] != want[i] {
			t.Errorf("instruction %d = %q, want %q", i, got.Instructions[i], want[i])
		}
	}
}

func TestArrayIndexReadComputesAddressForComputedIndex(t *testing.T) {
	c := NewContext()
	c.Generate(prodWithDescriptor("id_decl_array"), []*semantic.Attribute{term("a"), nil, term("3"), nil})
	base0 := c.Sym.Lookup("a[0]")

	// a[i] where i is itself a computed Expression (e.g. the result of
	// an earlier reduction), not a literal or bare identifier. Before
	// the fix this stringified i's stack offset into a lookup key that
	// DeclareArray never inserted, fabricating a fresh, unwritten slot.
	computedIdx := &semantic.Attribute{Kind: semantic.Expression, Offset: -999}
	got := c.Generate(prodWithDescriptor("exp_id_idx"), []*semantic.Attribute{term("a"), nil, computedIdx, nil})

	if got.Kind != semantic.Expression {
		t.Fatalf("got kind %v, want Expression", got.Kind)
	}
	joined := strings.Join(got.Instructions, "\n")
	if !strings.Contains(joined, "sll $t1, $t1, 2") {
		t.Errorf("expected the index to be scaled by the word size, got %v", got.Instructions)
	}
	if !strings.Contains(joined, "li $t2, "+strconv.Itoa(base0)) {
		t.Errorf("expected the base slot offset %d to be materialized, got %v", base0, got.Instructions)
	}
	if !strings.Contains(joined, "lw $t0, 0($t2)") {
		t.Errorf("expected a load from the computed address, got %v", got.Instructions)
	}
}

func TestLabelsAreMonotonicAndUnique(t *testing.T) {
	c := NewContext()
	a := c.Label()
	b := c.Label()
	if a == b {
		t.Errorf("two calls to Label() returned the same name %q", a)
	}
}
