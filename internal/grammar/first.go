package grammar

import "github.com/LJQ0727/CompilerForC/internal/token"

// First computes FIRST(x): {x} if x is terminal; otherwise the union, over
// every production x -> y1...yn, of FIRST(y1), plus FIRST(y2) if y1 derives
// ε, and so on. The result contains token.LAMBDA iff x itself derives ε.
// Self-recursion is broken by skipping productions whose first RHS symbol
// equals x, mirroring ItemSet::get_first_set in
// original_source/parser.cpp.
func (g *Grammar) First(x token.Tag) map[token.Tag]bool {
	nullable := g.Nullable()
	return g.first(x, nullable)
}

func (g *Grammar) first(x token.Tag, nullable map[token.Tag]bool) map[token.Tag]bool {
	ret := map[token.Tag]bool{}
	if nullable[x] {
		ret[token.LAMBDA] = true
	}
	if x.IsTerminal() {
		return map[token.Tag]bool{x: true}
	}

	for _, p := range g.ProductionsWithLHS(x) {
		if len(p.RHS) > 0 && p.RHS[0] == x {
			continue
		}
		for _, sym := range p.RHS {
			symFirst := g.first(sym, nullable)
			hasLambda := symFirst[token.LAMBDA]
			for t := range symFirst {
				if t != token.LAMBDA {
					ret[t] = true
				}
			}
			if !hasLambda {
				break
			}
		}
	}

	for t := range ret {
		if t != token.LAMBDA && !t.IsTerminal() {
			panic("grammar: FIRST set contains a non-terminal tag: " + t.String())
		}
	}
	return ret
}

// FirstOfSequence computes FIRST of a symbol sequence: the union of
// FIRST(seq[0]), plus FIRST(seq[1]) if seq[0] derives ε, and so on.
// nullable reports whether the whole sequence can derive ε (an empty
// sequence is trivially nullable). The returned set never contains
// token.LAMBDA.
func (g *Grammar) FirstOfSequence(seq []token.Tag) (set map[token.Tag]bool, nullable bool) {
	nullableRel := g.Nullable()
	set = map[token.Tag]bool{}
	for _, sym := range seq {
		symFirst := g.first(sym, nullableRel)
		hasLambda := symFirst[token.LAMBDA]
		for t := range symFirst {
			if t != token.LAMBDA {
				set[t] = true
			}
		}
		if !hasLambda {
			return set, false
		}
	}
	return set, true
}
