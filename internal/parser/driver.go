// Package parser drives the LR(1) state table built by internal/grammar
// over a token stream, resolving the ambiguous expression grammar's
// shift-reduce conflicts at runtime with an explicit operator stack and
// precedence table, and invoking a caller-supplied reduction callback so
// the code generator can synthesize each rule's attribute inline (spec
// component D).
package parser

import (
	"fmt"

	"github.com/LJQ0727/CompilerForC/internal/cerr"
	"github.com/LJQ0727/CompilerForC/internal/grammar"
	"github.com/LJQ0727/CompilerForC/internal/semantic"
	"github.com/LJQ0727/CompilerForC/internal/token"
)

// ReduceFunc synthesizes the attribute for a reduction by prod, given the
// attributes already computed for each of prod's RHS symbols in order
// (spec.md §4.4, "Semantic action dispatch"). It is the hook through
// which internal/codegen's descriptor-dispatch table participates in
// parsing.
type ReduceFunc func(prod *grammar.Production, rhs []*semantic.Attribute) *semantic.Attribute

// Parse drives auto over toks, calling onReduce at every reduction, and
// returns the attribute synthesized for the accepting reduction
// (system_goal -> program SCANEOF). This module performs no error
// recovery (spec.md §7): the first unresolvable token aborts parsing.
//
// Grounded on LROneParser::parse in original_source/parser.cpp: an
// explicit state stack and an explicit operator stack drive the same
// shift/reduce decision the original makes, generalized from the
// original's hardcoded 33-production switch to table lookups against
// auto's State.Goto and State.ReduceCandidates.
func Parse(toks []token.Token, auto *grammar.Automaton, onReduce ReduceFunc) (*semantic.Attribute, error) {
	stateStack := []int{auto.Start}
	attrStack := []*semantic.Attribute{}
	operatorStack := []token.Tag{}

	pos := 0
	next := func() token.Token {
		if pos < len(toks) {
			return toks[pos]
		}
		return token.Token{Tag: token.SCANEOF}
	}

	for {
		cur := auto.States[stateStack[len(stateStack)-1]]
		tok := next()

		shiftTarget, canShift := cur.Goto[tok.Tag]
		candidates := cur.ReduceCandidates(tok.Tag)
		canReduce := len(candidates) > 0

		if !canShift && !canReduce {
			return nil, &cerr.SourceError{
				Kind:  cerr.SyntacticError,
				Row:   tok.Row,
				Col:   tok.Col,
				Cause: fmt.Errorf("unexpected %v", tok),
			}
		}

		doReduce := canReduce && !canShift
		if canShift && canReduce {
			// Ambiguous expression grammar: arbitrate with the operator
			// stack and precedence table (spec.md §4.3 step 3), same
			// tie-to-reduce rule original_source/parser.cpp's parse
			// uses.
			if len(operatorStack) == 0 {
				doReduce = false
			} else {
				top := operatorStack[len(operatorStack)-1]
				doReduce = Precedence(tok.Tag) <= Precedence(top)
			}
		}

		if doReduce {
			prod := candidates[0]
			n := len(prod.RHS)

			rhsAttrs := append([]*semantic.Attribute(nil), attrStack[len(attrStack)-n:]...)
			for _, sym := range prod.RHS {
				if IsOperator(sym) {
					operatorStack = operatorStack[:len(operatorStack)-1]
				}
			}
			attrStack = attrStack[:len(attrStack)-n]
			stateStack = stateStack[:len(stateStack)-n]

			synthesized := onReduce(prod, rhsAttrs)
			if prod.LHS == token.NT_system_goal {
				return synthesized, nil
			}

			gotoState, ok := auto.States[stateStack[len(stateStack)-1]].Goto[prod.LHS]
			if !ok {
				return nil, &cerr.SourceError{
					Kind:  cerr.SyntacticError,
					Row:   tok.Row,
					Col:   tok.Col,
					Cause: fmt.Errorf("no goto on %v after reducing %v", prod.LHS, prod),
				}
			}
			stateStack = append(stateStack, gotoState)
			attrStack = append(attrStack, synthesized)
			continue
		}

		// Shift.
		if IsOperator(tok.Tag) {
			operatorStack = append(operatorStack, tok.Tag)
		}
		stateStack = append(stateStack, shiftTarget)
		attrStack = append(attrStack, &semantic.Attribute{Kind: semantic.Terminal, Text: tok.Lexeme})
		pos++
	}
}
