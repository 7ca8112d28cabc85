package parser

import "github.com/LJQ0727/CompilerForC/internal/token"

// precedence is the operator precedence table used to arbitrate
// shift-reduce conflicts in the ambiguous expression grammar (spec.md
// §4.3). Higher binds tighter. Grounded verbatim on precedence_table in
// original_source/parser.cpp's parse().
var precedence = map[token.Tag]int{
	token.NOT_OP: 14,

	token.MUL_OP: 12,
	token.DIV_OP: 12,

	token.PLUS:  11,
	token.MINUS: 11,

	token.SHL_OP: 10,
	token.SHR_OP: 10,

	token.LT:   8,
	token.GT:   8,
	token.LTEQ: 8,
	token.GTEQ: 8,

	token.EQ:    7,
	token.NOTEQ: 7,

	token.AND_OP: 6,

	token.OR_OP: 4,

	token.ANDAND: 3,
	token.OROR:   2,
}

// Precedence returns t's binding strength, or 0 if t is not an operator.
func Precedence(t token.Tag) int {
	return precedence[t]
}

// IsOperator reports whether t is one of the operator tokens the driver
// tracks on its operator stack for precedence arbitration. Grounded on
// is_operator in original_source/parser.cpp.
func IsOperator(t token.Tag) bool {
	_, ok := precedence[t]
	return ok
}
