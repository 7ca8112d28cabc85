package grammar

import "github.com/LJQ0727/CompilerForC/internal/token"

// NewCGrammar registers the complete hard-coded grammar this module
// accepts, with every production's code-generator descriptor (spec.md §6
// for the EBNF, §4.5 for the emit-routine schema each descriptor names).
// Grounded directly on the register_prod_rule calls in main() in
// original_source/parser.cpp, extended per SPEC_FULL.md §12 (read/write
// argument lists) and §4.6 (an explicit scope_enter marker nonterminal,
// the standard LR trick for running a mid-rule action before a rule's
// remaining symbols are parsed — original_source never needed this
// because its scope push/pop lived outside the grammar entirely).
func NewCGrammar() *Grammar {
	g := NewGrammar()
	t := func(tags ...token.Tag) []token.Tag { return tags }

	g.Register(token.NT_program, t(token.NT_var_declarations, token.NT_statements), "program")
	g.Register(token.NT_program, t(token.NT_statements), "program")

	g.Register(token.NT_var_declarations, t(token.NT_var_declaration), "")
	g.Register(token.NT_var_declarations, t(token.NT_var_declarations, token.NT_var_declaration), "")
	g.Register(token.NT_var_declaration, t(token.INT, token.NT_declaration_list, token.SEMI), "")

	g.Register(token.NT_declaration_list, t(token.NT_declaration), "")
	g.Register(token.NT_declaration_list, t(token.NT_declaration_list, token.COMMA, token.NT_declaration), "")
	g.Register(token.NT_declaration, t(token.ID), "id_decl")
	g.Register(token.NT_declaration, t(token.ID, token.ASSIGN, token.INT_NUM), "id_decl_init")
	g.Register(token.NT_declaration, t(token.ID, token.LSQUARE, token.INT_NUM, token.RSQUARE), "id_decl_array")

	g.Register(token.NT_code_block, t(token.NT_statement), "")
	g.Register(token.NT_code_block, t(token.LBRACE, token.NT_scope_enter, token.NT_statements, token.RBRACE), "scope_end")

	g.Register(token.NT_scope_enter, t(), "scope_begin")

	g.Register(token.NT_statements, t(token.NT_statement), "")
	g.Register(token.NT_statements, t(token.NT_statements, token.NT_statement), "")

	g.Register(token.NT_statement, t(token.NT_assign_statement, token.SEMI), "")
	g.Register(token.NT_statement, t(token.NT_control_statement), "")
	g.Register(token.NT_statement, t(token.NT_read_write_statement, token.SEMI), "")
	g.Register(token.NT_statement, t(token.SEMI), "empty_stmt")

	g.Register(token.NT_control_statement, t(token.NT_if_statement), "")
	g.Register(token.NT_control_statement, t(token.NT_while_statement), "")
	g.Register(token.NT_control_statement, t(token.NT_do_while_statement, token.SEMI), "")
	g.Register(token.NT_control_statement, t(token.NT_return_statement, token.SEMI), "")

	g.Register(token.NT_read_write_statement, t(token.NT_read_statement), "")
	g.Register(token.NT_read_write_statement, t(token.NT_write_statement), "")

	g.Register(token.NT_assign_statement, t(token.ID, token.LSQUARE, token.NT_exp, token.RSQUARE, token.ASSIGN, token.NT_exp), "array_assign")
	g.Register(token.NT_assign_statement, t(token.ID, token.ASSIGN, token.NT_exp), "assign")

	g.Register(token.NT_if_statement, t(token.NT_if_stmt), "")
	g.Register(token.NT_if_statement, t(token.NT_if_stmt, token.ELSE, token.NT_code_block), "if_else")
	g.Register(token.NT_if_stmt, t(token.IF, token.LPAR, token.NT_exp, token.RPAR, token.NT_code_block), "if")

	g.Register(token.NT_while_statement, t(token.WHILE, token.LPAR, token.NT_exp, token.RPAR, token.NT_code_block), "while")
	g.Register(token.NT_do_while_statement, t(token.DO, token.NT_code_block, token.WHILE, token.LPAR, token.NT_exp, token.RPAR), "do_while")
	g.Register(token.NT_return_statement, t(token.RETURN), "return")

	g.Register(token.NT_read_statement, t(token.READ, token.LPAR, token.NT_id_list, token.RPAR), "read_list")
	g.Register(token.NT_write_statement, t(token.WRITE, token.LPAR, token.NT_exp_list, token.RPAR), "write_list")
	g.Register(token.NT_id_list, t(token.ID), "id_list_one")
	g.Register(token.NT_id_list, t(token.NT_id_list, token.COMMA, token.ID), "id_list_more")
	g.Register(token.NT_exp_list, t(token.NT_exp), "exp_list_one")
	g.Register(token.NT_exp_list, t(token.NT_exp_list, token.COMMA, token.NT_exp), "exp_list_more")

	g.Register(token.NT_exp, t(token.INT_NUM), "exp_int")
	g.Register(token.NT_exp, t(token.ID), "exp_id")
	g.Register(token.NT_exp, t(token.ID, token.LSQUARE, token.NT_exp, token.RSQUARE), "exp_id_idx")
	g.Register(token.NT_exp, t(token.NOT_OP, token.NT_exp), "not_exp")
	g.Register(token.NT_exp, t(token.NT_exp, token.PLUS, token.NT_exp), "plus")
	g.Register(token.NT_exp, t(token.NT_exp, token.MINUS, token.NT_exp), "minus")
	g.Register(token.NT_exp, t(token.NT_exp, token.MUL_OP, token.NT_exp), "mul")
	g.Register(token.NT_exp, t(token.NT_exp, token.DIV_OP, token.NT_exp), "div")
	g.Register(token.NT_exp, t(token.NT_exp, token.SHL_OP, token.NT_exp), "shl")
	g.Register(token.NT_exp, t(token.NT_exp, token.SHR_OP, token.NT_exp), "shr")
	g.Register(token.NT_exp, t(token.NT_exp, token.AND_OP, token.NT_exp), "bitand")
	g.Register(token.NT_exp, t(token.NT_exp, token.OR_OP, token.NT_exp), "bitor")
	g.Register(token.NT_exp, t(token.NT_exp, token.ANDAND, token.NT_exp), "andand")
	g.Register(token.NT_exp, t(token.NT_exp, token.OROR, token.NT_exp), "oror")
	g.Register(token.NT_exp, t(token.NT_exp, token.EQ, token.NT_exp), "eq")
	g.Register(token.NT_exp, t(token.NT_exp, token.NOTEQ, token.NT_exp), "noteq")
	g.Register(token.NT_exp, t(token.NT_exp, token.LT, token.NT_exp), "lt")
	g.Register(token.NT_exp, t(token.NT_exp, token.GT, token.NT_exp), "gt")
	g.Register(token.NT_exp, t(token.NT_exp, token.LTEQ, token.NT_exp), "lteq")
	g.Register(token.NT_exp, t(token.NT_exp, token.GTEQ, token.NT_exp), "gteq")
	g.Register(token.NT_exp, t(token.LPAR, token.NT_exp, token.RPAR), "parexp")
	g.Register(token.NT_exp, t(token.MINUS, token.NT_exp), "minusexp")
	g.Register(token.NT_exp, t(token.PLUS, token.NT_exp), "plusexp")

	return g
}

// NewCAutomaton builds the LR(1) state table for NewCGrammar's grammar,
// augmented with the synthetic start rule system_goal -> program SCANEOF
// (spec.md §4.2).
func NewCAutomaton() *Automaton {
	g := NewCGrammar()
	return Build(g, token.NT_system_goal, []token.Tag{token.NT_program, token.SCANEOF})
}
