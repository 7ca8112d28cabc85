package grammar

import "github.com/LJQ0727/CompilerForC/internal/token"

// State is an LR(1) item set: its kernel, its closure (kernel plus every
// item transitively derivable by FIRST-of-rest expansion), and the
// transition map keyed by the symbol immediately after each item's dot
// (spec.md §3, "Item set (LR(1) state)").
type State struct {
	Number  int
	Kernel  itemSet
	Closure itemSet
	Goto    map[token.Tag]int
}

// ReduceCandidates returns every item in s's closure whose dot is at the
// end and whose lookahead set contains next — the set of productions the
// parser driver may reduce by on that lookahead (spec.md §4.3 step 2).
func (s *State) ReduceCandidates(next token.Tag) []*Production {
	var out []*Production
	for _, it := range s.Closure {
		if it.IsEnd() && it.Lookahead[next] {
			out = append(out, it.Prod)
		}
	}
	return out
}

// Automaton is the complete LR(1) state table built from a Grammar.
type Automaton struct {
	Grammar *Grammar
	States  []*State
	Start   int
}

// Build constructs the canonical LR(1) state table (spec.md §4.2, "State
// table construction"): starting from the synthetic item
// startLHS -> ·startRHS, {SCANEOF}, it repeatedly advances the dot on
// every symbol that appears after a dot in some item of the current
// state, reusing an existing state when one exists whose kernel and
// closure satisfy the dual-subset equivalence test, and recursing into
// freshly allocated states. Grounded on LROneParser::construct_parser and
// ItemSet::build_closure in original_source/parser.cpp, but computes each
// item's lookahead inline via the canonical closure formula (spec.md
// §4.2) rather than original_source's FOLLOW(lhs)-per-nonterminal
// approximation.
func Build(g *Grammar, startLHS token.Tag, startRHS []token.Tag) *Automaton {
	startProd := g.Register(startLHS, startRHS, "")
	startItem := &Item{
		Prod:      startProd,
		Dot:       0,
		Lookahead: map[token.Tag]bool{token.SCANEOF: true},
	}

	b := &builder{g: g}
	startKernel := itemSet{startItem.CoreKey(): startItem}
	idx, _ := b.addOrQueryState(startKernel)
	b.buildClosure(b.states[idx])

	return &Automaton{Grammar: g, States: b.states, Start: idx}
}

type builder struct {
	g      *Grammar
	states []*State
}

// addOrQueryState implements spec.md §4.2's existing-state test: state t
// is reused for kernel K iff K is a subset of t's closure and t's kernel
// is a subset of K (both tested at full item identity, i.e. including
// lookahead — core-equivalent items with different lookaheads are not
// interchangeable here, matching the std::set<ProductionRule> comparison
// in add_or_query_state in original_source/parser.cpp).
func (b *builder) addOrQueryState(kernel itemSet) (idx int, isNew bool) {
	target := kernel.fullKeySet()
	for _, s := range b.states {
		if isSubsetOfStrings(target, s.Closure.fullKeySet()) && isSubsetOfStrings(s.Kernel.fullKeySet(), target) {
			return s.Number, false
		}
	}
	s := &State{
		Number: len(b.states),
		Kernel: kernel,
		Goto:   map[token.Tag]int{},
	}
	b.states = append(b.states, s)
	return s.Number, true
}

func (b *builder) buildClosure(s *State) {
	closure := itemSet{}
	for k, it := range s.Kernel {
		closure[k] = it
	}

	changed := true
	for changed {
		changed = false
		for _, it := range closure {
			if it.IsEnd() {
				continue
			}
			next := it.NextSymbol()
			if next.IsTerminal() {
				continue
			}
			beta := it.Prod.RHS[it.Dot+1:]
			firstBeta, betaNullable := b.g.FirstOfSequence(beta)
			lookahead := map[token.Tag]bool{}
			for t := range firstBeta {
				lookahead[t] = true
			}
			if betaNullable {
				for t := range it.Lookahead {
					lookahead[t] = true
				}
			}
			for _, prod := range b.g.ProductionsWithLHS(next) {
				newItem := &Item{Prod: prod, Dot: 0, Lookahead: cloneTagSet(lookahead)}
				if closure.mergeItem(newItem) {
					changed = true
				}
			}
		}
	}
	s.Closure = closure

	bySymbol := map[token.Tag]itemSet{}
	for _, it := range closure {
		if it.IsEnd() {
			continue
		}
		sym := it.NextSymbol()
		if bySymbol[sym] == nil {
			bySymbol[sym] = itemSet{}
		}
		bySymbol[sym].mergeItem(it.Advance())
	}

	for sym, kernel := range bySymbol {
		idx, isNew := b.addOrQueryState(kernel)
		s.Goto[sym] = idx
		if isNew {
			b.buildClosure(b.states[idx])
		}
	}
}
