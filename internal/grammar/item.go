package grammar

import (
	"fmt"
	"sort"
	"strings"

	"github.com/LJQ0727/CompilerForC/internal/token"
)

// Item is an LR(1) item: a production together with a dot position and a
// lookahead set (spec.md §3, "Production rule" — the spec's tuple is what
// most texts call an item; this module keeps that name and attaches the
// dot/lookahead directly to a *Production rather than splitting them into
// separate production/item types, matching ProductionRule in
// original_source/parser.h).
type Item struct {
	Prod      *Production
	Dot       int
	Lookahead map[token.Tag]bool
}

// IsEnd reports whether the dot is at the end of the rule's RHS.
func (it *Item) IsEnd() bool {
	return it.Dot >= len(it.Prod.RHS)
}

// NextSymbol returns the symbol immediately after the dot. Panics if
// IsEnd(); callers must check first, matching ProductionRule::get_next_token's
// assert in original_source/parser.h.
func (it *Item) NextSymbol() token.Tag {
	return it.Prod.RHS[it.Dot]
}

// CoreKey identifies it ignoring its lookahead set: two items are
// core-equivalent iff lhs, rhs, and dot-position all match (spec.md §3).
func (it *Item) CoreKey() string {
	return fmt.Sprintf("%d.%d", it.Prod.Index, it.Dot)
}

// FullKey identifies it including its lookahead set, used by the
// state-equivalence test in Build (spec.md §4.2's "existing-state test").
func (it *Item) FullKey() string {
	terms := make([]string, 0, len(it.Lookahead))
	for t := range it.Lookahead {
		terms = append(terms, t.String())
	}
	sort.Strings(terms)
	return it.CoreKey() + "|" + strings.Join(terms, ",")
}

// Advance returns a new item with the dot moved one position to the
// right, carrying a copy of it's lookahead set.
func (it *Item) Advance() *Item {
	return &Item{Prod: it.Prod, Dot: it.Dot + 1, Lookahead: cloneTagSet(it.Lookahead)}
}

func (it *Item) String() string {
	parts := make([]string, 0, len(it.Prod.RHS)+1)
	for i, sym := range it.Prod.RHS {
		if i == it.Dot {
			parts = append(parts, "·")
		}
		parts = append(parts, sym.String())
	}
	if it.Dot == len(it.Prod.RHS) {
		parts = append(parts, "·")
	}
	la := make([]string, 0, len(it.Lookahead))
	for t := range it.Lookahead {
		la = append(la, t.String())
	}
	sort.Strings(la)
	return fmt.Sprintf("%v -> %v, {%v}", it.Prod.LHS, strings.Join(parts, " "), strings.Join(la, "/"))
}

func cloneTagSet(s map[token.Tag]bool) map[token.Tag]bool {
	c := make(map[token.Tag]bool, len(s))
	for t := range s {
		c[t] = true
	}
	return c
}

// itemSet is a core-keyed map of items, used as both a state's kernel and
// its closure (spec.md §3, "Item set (LR(1) state)").
type itemSet map[string]*Item

func (s itemSet) mergeItem(it *Item) (changed bool) {
	key := it.CoreKey()
	existing, ok := s[key]
	if !ok {
		s[key] = it
		return true
	}
	for t := range it.Lookahead {
		if !existing.Lookahead[t] {
			existing.Lookahead[t] = true
			changed = true
		}
	}
	return changed
}

// fullKeySet returns the set of FullKey values for every item in s, used
// by the dual-subset-test state-equivalence check.
func (s itemSet) fullKeySet() map[string]bool {
	keys := make(map[string]bool, len(s))
	for _, it := range s {
		keys[it.FullKey()] = true
	}
	return keys
}

func isSubsetOfStrings(sub, super map[string]bool) bool {
	for k := range sub {
		if !super[k] {
			return false
		}
	}
	return true
}
