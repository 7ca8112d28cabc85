package semantic

import "strconv"

// WordSize is the size in bytes of one stack slot.
const WordSize = 4

// SymbolTable is a stack of lexical-scope frames mapping variable names to
// stack-frame offsets (spec.md §3, "Symbol table"). Lookup walks from the
// innermost frame outward; insertions target the innermost frame. Grounded
// on SymbolTable in original_source/SourceCode/semantic_routines.h (a
// vector of scope maps plus a shared next-offset counter) and on the
// scope-stack shape of smasonuk-sicpu's pkg/compiler/symtable.go.
type SymbolTable struct {
	scopes     []map[string]int
	nextOffset int
}

// NewSymbolTable returns a table with a single (global) scope and the
// next-offset counter primed to the first stack slot below the frame
// pointer.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		scopes:     []map[string]int{{}},
		nextOffset: -WordSize,
	}
}

// PushScope opens a new, innermost lexical scope.
func (t *SymbolTable) PushScope() {
	t.scopes = append(t.scopes, map[string]int{})
}

// PopScope closes the innermost lexical scope; its declarations become
// invisible to subsequent lookups (spec.md §4.6).
func (t *SymbolTable) PopScope() {
	if len(t.scopes) == 0 {
		panic("semantic: PopScope called with no open scope")
	}
	t.scopes = t.scopes[:len(t.scopes)-1]
}

// Insert explicitly binds name to offset in the innermost scope.
func (t *SymbolTable) Insert(name string, offset int) {
	t.scopes[len(t.scopes)-1][name] = offset
}

// AllocateSlot reserves and returns a fresh stack offset without binding
// it to any name, decrementing the next-offset counter by WordSize (spec.md
// §3's "next-offset counter monotonically decreases" invariant).
func (t *SymbolTable) AllocateSlot() int {
	offset := t.nextOffset
	t.nextOffset -= WordSize
	return offset
}

// Lookup returns the stack offset bound to name, searching from the
// innermost scope outward. On a miss it allocates a fresh slot in the
// innermost scope and returns that — the module's documented
// implicit-declaration behavior (spec.md §4.4, §7 kind 3, §9).
func (t *SymbolTable) Lookup(name string) int {
	for i := len(t.scopes) - 1; i >= 0; i-- {
		if off, ok := t.scopes[i][name]; ok {
			return off
		}
	}
	off := t.AllocateSlot()
	t.Insert(name, off)
	return off
}

// DeclareArray reserves size consecutive slots for base, bound under the
// stringified keys "base[0]".."base[size-1]" (spec.md §4.5's array
// declaration schema; see §9 on the read-path implications of this
// keying scheme). It returns the offset of slot 0.
func (t *SymbolTable) DeclareArray(base string, size int) int {
	var first int
	for i := 0; i < size; i++ {
		off := t.AllocateSlot()
		if i == 0 {
			first = off
		}
		t.Insert(arrayKey(base, i), off)
	}
	return first
}

// arrayKey synthesizes the stringified lookup key for element i of array
// base, e.g. "a[0]". Only ever looked up for i == 0: both the read and
// write paths resolve the base slot's offset this way and then compute
// the target address arithmetically (base + 4*index) from there, so an
// arbitrary index never needs its own entry under this key (spec.md §9).
func arrayKey(base string, i int) string {
	return base + "[" + strconv.Itoa(i) + "]"
}
