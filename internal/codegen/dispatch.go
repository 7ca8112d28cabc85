package codegen

import (
	"fmt"
	"strconv"

	"github.com/LJQ0727/CompilerForC/internal/grammar"
	"github.com/LJQ0727/CompilerForC/internal/semantic"
)

// Generate synthesizes the attribute for one reduction by prod, given
// the already-computed attributes of its RHS symbols in source order
// (spec.md §4.4). Bind it to a parser.ReduceFunc with a closure over a
// *Context.
func (c *Context) Generate(prod *grammar.Production, rhs []*semantic.Attribute) *semantic.Attribute {
	if routine, ok := routines[prod.Descriptor]; ok {
		return routine(c, rhs)
	}
	return passThrough(rhs)
}

// passThrough implements spec.md §4.5's "Pass-through productions": the
// synthesized attribute is the lone child's, unchanged; for multiple
// children (wrapper rules whose other symbols are terminals like SEMI or
// COMMA), instructions concatenate in source order.
func passThrough(rhs []*semantic.Attribute) *semantic.Attribute {
	switch len(rhs) {
	case 0:
		return &semantic.Attribute{Kind: semantic.Stmt}
	case 1:
		return rhs[0]
	default:
		res := &semantic.Attribute{Kind: semantic.Stmt}
		for _, a := range rhs {
			res.Merge(a)
		}
		return res
	}
}

type routine func(c *Context, rhs []*semantic.Attribute) *semantic.Attribute

var routines = map[string]routine{
	"id_decl":       genIDDecl,
	"id_decl_init":  genIDDeclInit,
	"id_decl_array": genIDDeclArray,

	"scope_begin": genScopeBegin,
	"scope_end":   genScopeEnd,

	"empty_stmt": func(c *Context, rhs []*semantic.Attribute) *semantic.Attribute {
		return &semantic.Attribute{Kind: semantic.Stmt}
	},

	"assign":       genAssign,
	"array_assign": genArrayAssign,

	"if":       genIf,
	"if_else":  genIfElse,
	"while":    genWhile,
	"do_while": genDoWhile,
	"return":   genReturn,

	"read_list":  genReadList,
	"write_list": genWriteList,

	"id_list_one":   genIDListOne,
	"id_list_more":  genIDListMore,
	"exp_list_one":  genExpListOne,
	"exp_list_more": genExpListMore,

	"exp_int":    genExpInt,
	"exp_id":     genExpID,
	"exp_id_idx": genExpIDIdx,
	"not_exp":    genNotExp,
	"minusexp":   genMinusExp,
	"plusexp":    genPlusExp,
	"parexp":     genParExp,

	"plus":   genPlus,
	"minus":  genMinus,
	"mul":    genMul,
	"div":    genDiv,
	"shl":    genShl,
	"shr":    genShr,
	"bitand": genBitAnd,
	"bitor":  genBitOr,
	"andand": genAndAnd,
	"oror":   genOrOr,
	"eq":     genEq,
	"noteq":  genNotEq,
	"lt":     genLt,
	"gt":     genGt,
	"lteq":   genLtEq,
	"gteq":   genGtEq,

	"program": genProgram,
}

// --- declarations (spec.md §4.5: "Scalar declaration", "Scalar init",
// "Array declaration") ---

func genIDDecl(c *Context, rhs []*semantic.Attribute) *semantic.Attribute {
	name := rhs[0].Text
	off := c.Sym.AllocateSlot()
	c.Sym.Insert(name, off)
	res := &semantic.Attribute{Kind: semantic.ID, Name: name}
	res.Emit("li $t0, 0")
	res.Emit(fmt.Sprintf("sw $t0, %d($sp)", off))
	return res
}

func genIDDeclInit(c *Context, rhs []*semantic.Attribute) *semantic.Attribute {
	name := rhs[0].Text
	val, _ := strconv.Atoi(rhs[2].Text)
	off := c.Sym.AllocateSlot()
	c.Sym.Insert(name, off)
	res := &semantic.Attribute{Kind: semantic.ID, Name: name}
	res.Emit(fmt.Sprintf("li $t0, %d", val))
	res.Emit(fmt.Sprintf("sw $t0, %d($sp)", off))
	return res
}

func genIDDeclArray(c *Context, rhs []*semantic.Attribute) *semantic.Attribute {
	name := rhs[0].Text
	size, _ := strconv.Atoi(rhs[2].Text)
	c.Sym.DeclareArray(name, size)
	return &semantic.Attribute{Kind: semantic.ID, Name: name}
}

// --- scope discipline (spec.md §4.6) ---

func genScopeBegin(c *Context, rhs []*semantic.Attribute) *semantic.Attribute {
	c.Sym.PushScope()
	return &semantic.Attribute{Kind: semantic.Stmt}
}

func genScopeEnd(c *Context, rhs []*semantic.Attribute) *semantic.Attribute {
	// rhs: LBRACE, scope_enter, statements, RBRACE
	c.Sym.PopScope()
	res := &semantic.Attribute{Kind: semantic.Stmt}
	res.Merge(rhs[2])
	return res
}

// --- assignment (spec.md §4.5: "Array assignment") ---

func genAssign(c *Context, rhs []*semantic.Attribute) *semantic.Attribute {
	// rhs: ID, ASSIGN, exp
	name := rhs[0].Text
	off := c.Sym.Lookup(name)
	res := &semantic.Attribute{Kind: semantic.Stmt}
	c.load(res, rhs[2], "$t0")
	res.Emit(fmt.Sprintf("sw $t0, %d($sp)", off))
	return res
}

func genArrayAssign(c *Context, rhs []*semantic.Attribute) *semantic.Attribute {
	// rhs: ID, LSQUARE, exp(index), RSQUARE, ASSIGN, exp(value)
	base := rhs[0].Text
	res := &semantic.Attribute{Kind: semantic.Stmt}
	c.load(res, rhs[5], "$t0")
	c.load(res, rhs[2], "$t1")
	res.Emit("sll $t1, $t1, 2")
	baseOff := c.Sym.Lookup(arrayElementKey(base, 0))
	res.Emit(fmt.Sprintf("li $t2, %d", baseOff))
	res.Emit("addu $t2, $t2, $sp")
	res.Emit("sub $t2, $t2, $t1")
	res.Emit("sw $t0, 0($t2)")
	return res
}

func arrayElementKey(base string, i int) string {
	return base + "[" + strconv.Itoa(i) + "]"
}

// --- control flow (spec.md §4.5: "if", "while", "do...while", "return") ---

func genIf(c *Context, rhs []*semantic.Attribute) *semantic.Attribute {
	// rhs: IF, LPAR, exp, RPAR, code_block
	cond, body := rhs[2], rhs[4]
	res := &semantic.Attribute{Kind: semantic.Stmt}
	c.load(res, cond, "$t0")
	l1, l2 := c.Label(), c.Label()
	res.Emit(fmt.Sprintf("beq $t0, $zero, %s", l2))
	res.Emit(fmt.Sprintf("b %s", l1))
	res.Emit(l1 + ":")
	res.Merge(body)
	res.Emit(l2 + ":")
	return res
}

// genIfElse splices "b L3" in before if_stmt's trailing exit label, then
// appends the else branch and the new exit label (spec.md §4.5: "as
// above, then after the then-branch insert b L3, and emit ⟨C⟩; L3:").
// This relies on genIf always emitting its exit label as the last line.
func genIfElse(c *Context, rhs []*semantic.Attribute) *semantic.Attribute {
	ifAttr, elseAttr := rhs[0], rhs[2]
	l3 := c.Label()

	n := len(ifAttr.Instructions)
	merged := make([]string, 0, n+1+len(elseAttr.Instructions)+1)
	merged = append(merged, ifAttr.Instructions[:n-1]...)
	merged = append(merged, fmt.Sprintf("b %s", l3))
	merged = append(merged, ifAttr.Instructions[n-1])
	merged = append(merged, elseAttr.Instructions...)
	merged = append(merged, l3+":")

	return &semantic.Attribute{Kind: semantic.Stmt, Instructions: merged}
}

func genWhile(c *Context, rhs []*semantic.Attribute) *semantic.Attribute {
	// rhs: WHILE, LPAR, exp, RPAR, code_block
	cond, body := rhs[2], rhs[4]
	res := &semantic.Attribute{Kind: semantic.Stmt}
	l1, l2 := c.Label(), c.Label()
	res.Emit(l1 + ":")
	c.load(res, cond, "$t0")
	res.Emit(fmt.Sprintf("beq $t0, $zero, %s", l2))
	res.Merge(body)
	res.Emit(fmt.Sprintf("b %s", l1))
	res.Emit(l2 + ":")
	return res
}

// genDoWhile preserves the exit-branch shape spec.md §9 flags as
// possibly inverted: beq, not bne, guards the backward branch. The
// descriptor keeps the original shape rather than "fixing" it.
func genDoWhile(c *Context, rhs []*semantic.Attribute) *semantic.Attribute {
	// rhs: DO, code_block, WHILE, LPAR, exp, RPAR
	body, cond := rhs[1], rhs[4]
	res := &semantic.Attribute{Kind: semantic.Stmt}
	l1, l2 := c.Label(), c.Label()
	res.Emit(l1 + ":")
	res.Merge(body)
	c.load(res, cond, "$t0")
	res.Emit(fmt.Sprintf("beq $t0, $zero, %s", l2))
	res.Emit(fmt.Sprintf("b %s", l1))
	res.Emit(l2 + ":")
	return res
}

func genReturn(c *Context, rhs []*semantic.Attribute) *semantic.Attribute {
	res := &semantic.Attribute{Kind: semantic.Stmt}
	res.Emit("b end")
	return res
}

// --- I/O (SPEC_FULL.md §12: list-based scanf/printf) ---

func genReadList(c *Context, rhs []*semantic.Attribute) *semantic.Attribute {
	res := &semantic.Attribute{Kind: semantic.Stmt}
	for _, item := range rhs[2].Items {
		off := c.Sym.Lookup(item.Name)
		res.Emit("li $v0, 5")
		res.Emit("syscall")
		res.Emit(fmt.Sprintf("sw $v0, %d($sp)", off))
	}
	return res
}

func genWriteList(c *Context, rhs []*semantic.Attribute) *semantic.Attribute {
	res := &semantic.Attribute{Kind: semantic.Stmt}
	for _, item := range rhs[2].Items {
		c.load(res, item, "$a0")
		res.Emit("li $v0, 1")
		res.Emit("syscall")
		res.Emit("li $v0, 11")
		res.Emit("li $a0, 10")
		res.Emit("syscall")
	}
	return res
}

func genIDListOne(c *Context, rhs []*semantic.Attribute) *semantic.Attribute {
	return &semantic.Attribute{Kind: semantic.List, Items: []*semantic.Attribute{
		{Kind: semantic.ID, Name: rhs[0].Text},
	}}
}

func genIDListMore(c *Context, rhs []*semantic.Attribute) *semantic.Attribute {
	items := append(append([]*semantic.Attribute(nil), rhs[0].Items...), &semantic.Attribute{Kind: semantic.ID, Name: rhs[2].Text})
	return &semantic.Attribute{Kind: semantic.List, Items: items}
}

func genExpListOne(c *Context, rhs []*semantic.Attribute) *semantic.Attribute {
	return &semantic.Attribute{Kind: semantic.List, Items: []*semantic.Attribute{rhs[0]}}
}

func genExpListMore(c *Context, rhs []*semantic.Attribute) *semantic.Attribute {
	items := append(append([]*semantic.Attribute(nil), rhs[0].Items...), rhs[2])
	return &semantic.Attribute{Kind: semantic.List, Items: items}
}

// --- expressions (spec.md §4.5) ---

func genExpInt(c *Context, rhs []*semantic.Attribute) *semantic.Attribute {
	val, _ := strconv.Atoi(rhs[0].Text)
	return &semantic.Attribute{Kind: semantic.Literal, Value: val, Text: rhs[0].Text}
}

func genExpID(c *Context, rhs []*semantic.Attribute) *semantic.Attribute {
	return &semantic.Attribute{Kind: semantic.ID, Name: rhs[0].Text}
}

// genExpIDIdx computes the element address arithmetically (base slot
// plus 4*index) rather than through the stringified-lexeme lookup key,
// so a computed index reads the same slot genArrayAssign wrote to
// (spec.md §9: read paths must match the write path's address
// arithmetic, unlike the do-while and implicit-declaration warts this
// module preserves verbatim elsewhere).
func genExpIDIdx(c *Context, rhs []*semantic.Attribute) *semantic.Attribute {
	base := rhs[0].Text
	idx := rhs[2]

	res := &semantic.Attribute{Kind: semantic.Expression}
	c.load(res, idx, "$t1")
	res.Emit("sll $t1, $t1, 2")
	baseOff := c.Sym.Lookup(arrayElementKey(base, 0))
	res.Emit(fmt.Sprintf("li $t2, %d", baseOff))
	res.Emit("addu $t2, $t2, $sp")
	res.Emit("sub $t2, $t2, $t1")
	res.Emit("lw $t0, 0($t2)")
	res.Offset = c.spill(res, "$t0")
	return res
}

func genNotExp(c *Context, rhs []*semantic.Attribute) *semantic.Attribute {
	operand := rhs[1]
	if operand.Kind == semantic.Literal {
		v := 0
		if operand.Value == 0 {
			v = 1
		}
		return &semantic.Attribute{Kind: semantic.Literal, Value: v}
	}
	res := &semantic.Attribute{Kind: semantic.Expression}
	c.load(res, operand, "$t0")
	res.Emit("sltiu $t0, $t0, 1")
	res.Offset = c.spill(res, "$t0")
	return res
}

func genMinusExp(c *Context, rhs []*semantic.Attribute) *semantic.Attribute {
	operand := rhs[1]
	if operand.Kind == semantic.Literal {
		return &semantic.Attribute{Kind: semantic.Literal, Value: -operand.Value}
	}
	res := &semantic.Attribute{Kind: semantic.Expression}
	c.load(res, operand, "$t0")
	res.Emit("sub $t0, $zero, $t0")
	res.Offset = c.spill(res, "$t0")
	return res
}

// genPlusExp treats unary plus as identity, matching original_source's
// codegen (which passed the operand through unchanged) even though it
// is a two-child rule, not listed among spec.md §4.5's explicit
// single-child pass-throughs.
func genPlusExp(c *Context, rhs []*semantic.Attribute) *semantic.Attribute {
	return rhs[1]
}

func genParExp(c *Context, rhs []*semantic.Attribute) *semantic.Attribute {
	return rhs[1]
}

func genPlus(c *Context, rhs []*semantic.Attribute) *semantic.Attribute {
	return c.binary(rhs[0], rhs[2], "add $t0, $t1, $t2")
}

func genMinus(c *Context, rhs []*semantic.Attribute) *semantic.Attribute {
	return c.binary(rhs[0], rhs[2], "sub $t0, $t1, $t2")
}

func genMul(c *Context, rhs []*semantic.Attribute) *semantic.Attribute {
	return c.binary(rhs[0], rhs[2], "mul $t0, $t1, $t2")
}

func genDiv(c *Context, rhs []*semantic.Attribute) *semantic.Attribute {
	return c.binary(rhs[0], rhs[2], "div $t0, $t1, $t2")
}

func genShl(c *Context, rhs []*semantic.Attribute) *semantic.Attribute {
	return c.binary(rhs[0], rhs[2], "sllv $t0, $t1, $t2")
}

func genShr(c *Context, rhs []*semantic.Attribute) *semantic.Attribute {
	return c.binary(rhs[0], rhs[2], "srlv $t0, $t1, $t2")
}

func genBitAnd(c *Context, rhs []*semantic.Attribute) *semantic.Attribute {
	return c.binary(rhs[0], rhs[2], "and $t0, $t1, $t2")
}

func genBitOr(c *Context, rhs []*semantic.Attribute) *semantic.Attribute {
	return c.binary(rhs[0], rhs[2], "or $t0, $t1, $t2")
}

// genAndAnd realizes && as !(!L | !R), no short-circuit (spec.md §4.5).
func genAndAnd(c *Context, rhs []*semantic.Attribute) *semantic.Attribute {
	return c.binary(rhs[0], rhs[2],
		"sltiu $t1, $t1, 1",
		"sltiu $t2, $t2, 1",
		"or $t0, $t1, $t2",
		"xori $t0, $t0, 1",
	)
}

// genOrOr realizes || as !(!L & !R), no short-circuit (spec.md §4.5).
func genOrOr(c *Context, rhs []*semantic.Attribute) *semantic.Attribute {
	return c.binary(rhs[0], rhs[2],
		"sltiu $t1, $t1, 1",
		"sltiu $t2, $t2, 1",
		"and $t0, $t1, $t2",
		"xori $t0, $t0, 1",
	)
}

func genEq(c *Context, rhs []*semantic.Attribute) *semantic.Attribute {
	return c.binary(rhs[0], rhs[2], "sub $t0, $t1, $t2", "sltiu $t0, $t0, 1")
}

func genNotEq(c *Context, rhs []*semantic.Attribute) *semantic.Attribute {
	return c.binary(rhs[0], rhs[2], "sub $t0, $t1, $t2", "sltiu $t0, $t0, 1", "xori $t0, $t0, 1")
}

func genLt(c *Context, rhs []*semantic.Attribute) *semantic.Attribute {
	return c.binary(rhs[0], rhs[2], "slt $t0, $t1, $t2")
}

func genGt(c *Context, rhs []*semantic.Attribute) *semantic.Attribute {
	return c.binary(rhs[0], rhs[2], "slt $t0, $t2, $t1")
}

// genLtEq implements l<=r as l < (r+1) (spec.md §4.5).
func genLtEq(c *Context, rhs []*semantic.Attribute) *semantic.Attribute {
	return c.binary(rhs[0], rhs[2], "addi $t2, $t2, 1", "slt $t0, $t1, $t2")
}

// genGtEq implements l>=r as l+1 > r (spec.md §4.5).
func genGtEq(c *Context, rhs []*semantic.Attribute) *semantic.Attribute {
	return c.binary(rhs[0], rhs[2], "addi $t1, $t1, 1", "slt $t0, $t2, $t1")
}

// genProgram wraps the program's declarations and statements with the
// main:/end: labels and a terminating no-op (spec.md §4.5, "Program").
func genProgram(c *Context, rhs []*semantic.Attribute) *semantic.Attribute {
	res := &semantic.Attribute{Kind: semantic.Stmt}
	res.Emit("main:")
	for _, a := range rhs {
		res.Merge(a)
	}
	res.Emit("end:")
	res.Emit("nop")
	return res
}
