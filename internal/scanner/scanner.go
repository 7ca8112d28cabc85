// Package scanner populates the automaton kernel with this module's token
// specifications and drives a longest-match scan over source text
// (spec component B).
package scanner

import (
	"fmt"

	"github.com/LJQ0727/CompilerForC/internal/automaton"
	"github.com/LJQ0727/CompilerForC/internal/cerr"
	"github.com/LJQ0727/CompilerForC/internal/token"
)

// BuildDFA assembles the NFA for the integer-literal regex, every reserved
// word, every punctuation/operator symbol, and the identifier regex — in
// that order, with the identifier builder last as spec.md §4.1 requires —
// and converts it to a DFA.
func BuildDFA() *automaton.DFA {
	nfa := automaton.NewNFA()
	nfa.AddIntLiteral(token.INT_NUM)
	for _, kw := range token.Keywords {
		nfa.AddLiteralWord(kw.Text, kw.Tag)
	}
	for _, op := range token.Operators {
		nfa.AddLiteralWord(op.Text, op.Tag)
	}
	nfa.AddIdentifier(token.ID)
	return automaton.Build(nfa)
}

func isWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n', 0:
		return true
	default:
		return false
	}
}

// Scan runs a longest-match scan of src against dfa, returning the token
// stream (always terminated by one token.SCANEOF) and any lexical errors
// encountered. Lexical errors do not abort the scan: the offending byte is
// skipped and scanning resumes at the next position (spec.md §4.1, §7).
//
// The driver mirrors DFA::match_code in original_source/scanner.cpp: drive
// the DFA greedily, remembering the last position at which it was in an
// accepting state; on a failed transition or whitespace, flush the
// remembered accept (if any) as a token and restart the DFA at the
// position right after the flushed lexeme.
func Scan(src []byte, dfa *automaton.DFA) ([]token.Token, cerr.SourceErrors) {
	var toks []token.Token
	var errs cerr.SourceErrors

	row, col := 1, 1
	advance := func(b byte) {
		if b == '\n' {
			row++
			col = 1
		} else {
			col++
		}
	}

	i := 0
	for i < len(src) {
		startRow, startCol := row, col
		state := dfa.Start
		lastAcceptPos := -1
		var lastAcceptTag token.Tag
		j := i

		for j < len(src) {
			b := src[j]
			if isWhitespace(b) {
				break
			}
			next, ok := dfa.Step(state, b)
			if !ok {
				break
			}
			state = next
			j++
			if tag, accepting := dfa.Accepts(state); accepting {
				lastAcceptPos = j
				lastAcceptTag = tag
			}
		}

		if lastAcceptPos > i {
			lexeme := string(src[i:lastAcceptPos])
			toks = append(toks, token.Token{Tag: lastAcceptTag, Lexeme: lexeme, Row: startRow, Col: startCol})
			for k := i; k < lastAcceptPos; k++ {
				advance(src[k])
			}
			i = lastAcceptPos
			continue
		}

		b := src[i]
		if !isWhitespace(b) {
			errs = append(errs, &cerr.SourceError{
				Kind:  cerr.LexicalError,
				Row:   row,
				Col:   col,
				Cause: fmt.Errorf("unrecognized character %q", b),
			})
		}
		advance(b)
		i++
	}

	toks = append(toks, token.Token{Tag: token.SCANEOF, Row: row, Col: col})
	return toks, errs
}
