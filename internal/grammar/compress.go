package grammar

import (
	"fmt"
	"sort"

	"github.com/LJQ0727/CompilerForC/internal/token"
)

// noGoto marks a (state, tag) cell with no transition in the dense table
// this file compresses, mirroring the teacher's "empty value" convention
// for sparse transition tables.
const noGoto = -1

// CompactGoto is a row-displaced encoding of an Automaton's goto table:
// States rows by token.TagCount columns, the overwhelming majority of
// which are empty (a state only has outgoing edges for the handful of
// symbols that can follow it). Grounded on RowDisplacementTable in the
// teacher's table compressor, rewritten against this module's own
// Automaton/State shape instead of a generic []int entry table.
type CompactGoto struct {
	stateCount int
	entries    []int
	bounds     []int
	displace   []int
}

// CompressGoto builds a's goto table's row-displaced encoding. Rows with
// more outgoing edges are placed first, so later, sparser rows can often
// overlap into the gaps earlier rows left behind.
func CompressGoto(a *Automaton) *CompactGoto {
	type row struct {
		state int
		cols  []int
	}
	rows := make([]row, len(a.States))
	for i, s := range a.States {
		r := row{state: i}
		for tag := range s.Goto {
			r.cols = append(r.cols, int(tag))
		}
		sort.Ints(r.cols)
		rows[i] = r
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return len(rows[i].cols) > len(rows[j].cols)
	})

	width := token.TagCount
	capacity := len(a.States)*width + width
	entries := make([]int, capacity)
	bounds := make([]int, capacity)
	for i := range entries {
		entries[i] = noGoto
		bounds[i] = noGoto
	}

	displace := make([]int, len(a.States))
	top := 0
	for _, r := range rows {
		if len(r.cols) == 0 {
			continue
		}
		d := 0
		for {
			overlap := false
			for _, col := range r.cols {
				if entries[d+col] != noGoto {
					d++
					overlap = true
					break
				}
			}
			if !overlap {
				break
			}
		}
		for _, col := range r.cols {
			entries[d+col] = a.States[r.state].Goto[token.Tag(col)]
			bounds[d+col] = r.state
		}
		displace[r.state] = d
		if d+width > top {
			top = d + width
		}
	}

	return &CompactGoto{
		stateCount: len(a.States),
		entries:    entries[:top],
		bounds:     bounds[:top],
		displace:   displace,
	}
}

// Lookup returns the goto state for (state, tag), and whether a
// transition exists at all.
func (c *CompactGoto) Lookup(state int, tag token.Tag) (int, bool) {
	if state < 0 || state >= c.stateCount {
		return 0, false
	}
	i := c.displace[state] + int(tag)
	if i < 0 || i >= len(c.entries) || c.bounds[i] != state {
		return 0, false
	}
	return c.entries[i], true
}

// Stats reports the dense table's size and the compressed table's size,
// both in entries, for a --dump-states diagnostic (spec.md §6).
func (c *CompactGoto) Stats() (dense, compact int) {
	return c.stateCount * token.TagCount, len(c.entries)
}

func (c *CompactGoto) String() string {
	dense, compact := c.Stats()
	return fmt.Sprintf("%d states, dense=%d compact=%d entries", c.stateCount, dense, compact)
}
