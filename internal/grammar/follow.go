package grammar

import "github.com/LJQ0727/CompilerForC/internal/token"

// Follow computes FOLLOW(x) over the whole grammar: token.SCANEOF if x is
// the start symbol; the union of FIRST(next symbol) \ {LAMBDA} for every
// position where x appears before some other symbol (continuing to the
// symbol after that while each one derives ε); plus FOLLOW(lhs) for every
// rule where x appears at the end, or is followed only by ε-deriving
// symbols (spec.md §4.2). visited prevents infinite recursion
// through mutually-following nonterminals, mirroring
// ItemSet::get_follow_set in original_source/parser.cpp.
func (g *Grammar) Follow(x token.Tag, startSymbol token.Tag) map[token.Tag]bool {
	return g.follow(x, startSymbol, map[token.Tag]bool{})
}

func (g *Grammar) follow(x token.Tag, startSymbol token.Tag, visited map[token.Tag]bool) map[token.Tag]bool {
	ret := map[token.Tag]bool{}
	if x == startSymbol {
		ret[token.SCANEOF] = true
	}

	for _, p := range g.Productions {
		for i, sym := range p.RHS {
			if sym != x {
				continue
			}
			restFirst, restNullable := g.FirstOfSequence(p.RHS[i+1:])
			for t := range restFirst {
				ret[t] = true
			}
			if restNullable && p.LHS != x && !visited[p.LHS] {
				visited[p.LHS] = true
				for t := range g.follow(p.LHS, startSymbol, visited) {
					ret[t] = true
				}
			}
		}
	}

	return ret
}
