package grammar

import "github.com/LJQ0727/CompilerForC/internal/token"

// Nullable computes the derives-λ relation by fixed-point iteration: a
// nonterminal derives ε iff it has a production whose right-hand side is
// empty or consists entirely of nonterminals that each derive ε (spec.md
// §4.2). Terminals are never nullable.
func (g *Grammar) Nullable() map[token.Tag]bool {
	nullable := map[token.Tag]bool{}

	changed := true
	for changed {
		changed = false
		for _, p := range g.Productions {
			if nullable[p.LHS] {
				continue
			}
			if len(p.RHS) == 0 {
				nullable[p.LHS] = true
				changed = true
				continue
			}
			allNullable := true
			for _, sym := range p.RHS {
				if sym.IsTerminal() || !nullable[sym] {
					allNullable = false
					break
				}
			}
			if allNullable {
				nullable[p.LHS] = true
				changed = true
			}
		}
	}

	return nullable
}
