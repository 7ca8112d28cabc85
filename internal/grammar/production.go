// Package grammar maintains the production rule registry and computes
// derived structures (derives-λ, FIRST, FOLLOW, LR(1) item-set closures,
// and the state table) from it (spec component C).
package grammar

import (
	"fmt"
	"strings"

	"github.com/LJQ0727/CompilerForC/internal/token"
)

// Production is a registered context-free rule: lhs and an ordered,
// possibly empty, sequence of rhs tags, plus the descriptor naming the
// code generator's emit routine for this rule (spec.md §3, "Production
// rule"). Index is assigned at registration time and never reused.
type Production struct {
	Index      int
	LHS        token.Tag
	RHS        []token.Tag
	Descriptor string
}

func (p *Production) String() string {
	if len(p.RHS) == 0 {
		return fmt.Sprintf("%v -> %v", p.LHS, token.LAMBDA)
	}
	parts := make([]string, len(p.RHS))
	for i, t := range p.RHS {
		parts[i] = t.String()
	}
	return fmt.Sprintf("%v -> %v", p.LHS, strings.Join(parts, " "))
}

// Grammar is the registry of all productions, keyed for FIRST/FOLLOW and
// closure construction.
type Grammar struct {
	Productions []*Production
	byLHS       map[token.Tag][]*Production
}

// NewGrammar returns an empty production registry.
func NewGrammar() *Grammar {
	return &Grammar{byLHS: map[token.Tag][]*Production{}}
}

// Register assigns rhs a stable index and adds it under lhs. descriptor
// names the code generator's emit routine for this rule; pass "" for
// pass-through / wrapper productions (spec.md §4.5's "Pass-through
// productions").
func (g *Grammar) Register(lhs token.Tag, rhs []token.Tag, descriptor string) *Production {
	p := &Production{
		Index:      len(g.Productions),
		LHS:        lhs,
		RHS:        rhs,
		Descriptor: descriptor,
	}
	g.Productions = append(g.Productions, p)
	g.byLHS[lhs] = append(g.byLHS[lhs], p)
	return p
}

// ProductionsWithLHS returns every production whose left-hand side is lhs.
func (g *Grammar) ProductionsWithLHS(lhs token.Tag) []*Production {
	return g.byLHS[lhs]
}
