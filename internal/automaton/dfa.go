package automaton

import "github.com/LJQ0727/CompilerForC/internal/token"

// DFAStateID identifies a DFA state by its index in DFA.States.
type DFAStateID int

// DFAState is a deterministic state: the set of NFA states it represents,
// a byte-keyed transition map, and an optional accepting tag (spec.md §3).
type DFAState struct {
	NFAMembers map[StateID]bool
	Trans      map[byte]DFAStateID
	IsFinal    bool
	FinalTag   token.Tag
}

// DFA is the deterministic automaton the scanner drives.
type DFA struct {
	States []DFAState
	Start  DFAStateID
}

func closureEqual(a, b map[StateID]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for s := range a {
		if !b[s] {
			return false
		}
	}
	return true
}

// closureIsSubsetOf reports whether every member of sub is also a member
// of super.
func closureIsSubsetOf(sub, super map[StateID]bool) bool {
	if len(sub) > len(super) {
		return false
	}
	for s := range sub {
		if !super[s] {
			return false
		}
	}
	return true
}

// Build converts nfa to a DFA by subset construction (spec.md §4.1).
//
// The construction computes the ε-closure of every individual NFA state
// (not just the closures reachable by transitions from the start state),
// then discards any closure that is a strict subset of another one,
// treating each surviving closure as one DFA state. This mirrors
// DFA::create_DFA in original_source/scanner.cpp exactly, including its
// known limitation (spec.md §9): it is not the textbook "only closures
// reachable by transition from the start state become DFA states"
// construction, so in pathological automata it can retain states that a
// canonical reachability-based construction would never visit. It is
// correct for this module's hand-built keyword/operator/literal automaton,
// which is the only input this constructor is ever run against.
func Build(nfa *NFA) *DFA {
	closures := make([]map[StateID]bool, len(nfa.States))
	for i := range nfa.States {
		closures[i] = nfa.epsilonClosure(StateID(i))
	}

	isSubset := make([]bool, len(closures))
	for i := range closures {
		for j := range closures {
			if i == j {
				continue
			}
			if closureIsSubsetOf(closures[i], closures[j]) && !closureEqual(closures[i], closures[j]) {
				isSubset[i] = true
				break
			}
			// Equal closures: keep the lower-indexed one only.
			if closureEqual(closures[i], closures[j]) && i > j {
				isSubset[i] = true
				break
			}
		}
	}

	d := &DFA{}
	survivorOf := make(map[int]DFAStateID)
	for i, closure := range closures {
		if isSubset[i] {
			continue
		}
		st := DFAState{
			NFAMembers: closure,
			Trans:      map[byte]DFAStateID{},
		}
		// Accepting tag: prefer the originating NFA state i's own tag if
		// it is final; otherwise take an accepting member of the closure.
		// The closure is a map, so when it holds several accepting
		// members with different tags, which one is taken is not
		// defined. Keyword and operator trunk states have no outgoing
		// ε-edges, so their closure is the state alone and a keyword's
		// final state always carries the keyword's own tag rather than
		// ID.
		if nfa.state(StateID(i)).IsFinal {
			st.IsFinal = true
			st.FinalTag = nfa.state(StateID(i)).FinalTag
		} else {
			for member := range closure {
				if nfa.state(member).IsFinal {
					st.IsFinal = true
					st.FinalTag = nfa.state(member).FinalTag
					break
				}
			}
		}
		d.States = append(d.States, st)
		survivorOf[i] = DFAStateID(len(d.States) - 1)
	}

	// Wire transitions: for each surviving DFA state, take every direct
	// (non-ε) transition of every NFA member and map its byte to the first
	// DFA state whose NFA-member set is a superset of the target's
	// closure. Targets of different members on the same byte are not
	// unioned: the last one matched sets the entry, so the result is only
	// complete when at most one member moves on any given byte, as holds
	// for the automaton BuildDFA constructs. A state matching itself is
	// allowed and expected:
	// the Kleene-star tail of an identifier or int-literal class settles
	// into one representative closure that transitions back to itself on
	// every further repeated byte.
	for i, st := range d.States {
		for member := range st.NFAMembers {
			for _, t := range nfa.state(member).Transitions {
				if t.IsEps {
					continue
				}
				targetClosure := closures[t.To]
				for j, other := range d.States {
					if closureIsSubsetOf(targetClosure, other.NFAMembers) {
						d.States[i].Trans[t.Label] = DFAStateID(j)
						break
					}
				}
			}
		}
	}

	startClosure := nfa.epsilonClosure(nfa.Start)
	for j, st := range d.States {
		if closureIsSubsetOf(startClosure, st.NFAMembers) {
			d.Start = DFAStateID(j)
			break
		}
	}

	return d
}

// Step follows the transition out of state on b, reporting ok=false if no
// such transition exists.
func (d *DFA) Step(state DFAStateID, b byte) (DFAStateID, bool) {
	next, ok := d.States[state].Trans[b]
	return next, ok
}

// Accepts reports whether state is accepting and, if so, which tag.
func (d *DFA) Accepts(state DFAStateID) (token.Tag, bool) {
	st := d.States[state]
	return st.FinalTag, st.IsFinal
}
