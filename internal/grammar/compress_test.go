package grammar

import (
	"testing"

	"github.com/LJQ0727/CompilerForC/internal/token"
)

func TestCompressGotoAgreesWithDenseTable(t *testing.T) {
	auto := NewCAutomaton()
	compact := CompressGoto(auto)

	for _, s := range auto.States {
		for tag := 0; tag < token.TagCount; tag++ {
			want, wantOK := s.Goto[token.Tag(tag)]
			got, gotOK := compact.Lookup(s.Number, token.Tag(tag))
			if gotOK != wantOK {
				t.Fatalf("state %d tag %v: Lookup ok=%v, want %v", s.Number, token.Tag(tag), gotOK, wantOK)
			}
			if wantOK && got != want {
				t.Errorf("state %d tag %v: Lookup = %d, want %d", s.Number, token.Tag(tag), got, want)
			}
		}
	}
}

func TestCompressGotoShrinksTheTable(t *testing.T) {
	auto := NewCAutomaton()
	compact := CompressGoto(auto)
	dense, compressed := compact.Stats()
	if compressed >= dense {
		t.Errorf("compressed table has %d entries, dense table has %d; expected compression on a sparse goto table", compressed, dense)
	}
}

func TestCompressGotoLookupOutOfRangeState(t *testing.T) {
	auto := NewCAutomaton()
	compact := CompressGoto(auto)
	if _, ok := compact.Lookup(-1, token.SEMI); ok {
		t.Errorf("Lookup(-1, ...) should report no transition")
	}
	if _, ok := compact.Lookup(len(auto.States)+100, token.SEMI); ok {
		t.Errorf("Lookup(out of range, ...) should report no transition")
	}
}
