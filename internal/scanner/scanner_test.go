package scanner

import (
	"testing"

	"github.com/LJQ0727/CompilerForC/internal/token"
)

func tagsOf(toks []token.Token) []token.Tag {
	tags := make([]token.Tag, len(toks))
	for i, tok := range toks {
		tags[i] = tok.Tag
	}
	return tags
}

func assertTags(t *testing.T, got []token.Tag, want ...token.Tag) {
	if len(got) != len(want) {
		t.Fatalf("got %d tags %v, want %d tags %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("tag %d = %v, want %v (full: %v)", i, got[i], want[i], got)
		}
	}
}

func TestScanKeywordsAndIdentifiers(t *testing.T) {
	dfa := BuildDFA()
	toks, errs := Scan([]byte("int x; intx = 1;"), dfa)
	if len(errs) != 0 {
		t.Fatalf("unexpected lexical errors: %v", errs)
	}
	assertTags(t, tagsOf(toks),
		token.INT, token.ID, token.SEMI,
		token.ID, token.ASSIGN, token.INT_NUM, token.SEMI,
		token.SCANEOF)

	if toks[3].Lexeme != "intx" {
		t.Errorf("expected the keyword-prefixed identifier to lex whole, got %q", toks[3].Lexeme)
	}
}

func TestMaximalMunch(t *testing.T) {
	dfa := BuildDFA()
	tests := []struct {
		in   string
		want []token.Tag
	}{
		{"<=", []token.Tag{token.LTEQ, token.SCANEOF}},
		{"<", []token.Tag{token.LT, token.SCANEOF}},
		{">>", []token.Tag{token.SHR_OP, token.SCANEOF}},
		{"==", []token.Tag{token.EQ, token.SCANEOF}},
		{"&&", []token.Tag{token.ANDAND, token.SCANEOF}},
		{"&", []token.Tag{token.AND_OP, token.SCANEOF}},
	}
	for _, tt := range tests {
		toks, errs := Scan([]byte(tt.in), dfa)
		if len(errs) != 0 {
			t.Fatalf("Scan(%q): unexpected errors %v", tt.in, errs)
		}
		assertTags(t, tagsOf(toks), tt.want...)
	}
}

func TestEmptyInputIsJustEOF(t *testing.T) {
	dfa := BuildDFA()
	toks, errs := Scan([]byte(""), dfa)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	assertTags(t, tagsOf(toks), token.SCANEOF)
}

func TestLexicalErrorDoesNotAbortScan(t *testing.T) {
	dfa := BuildDFA()
	toks, errs := Scan([]byte("int x $ int y;"), dfa)
	if len(errs) != 1 {
		t.Fatalf("got %d lexical errors, want 1: %v", len(errs), errs)
	}
	assertTags(t, tagsOf(toks),
		token.INT, token.ID,
		token.INT, token.ID, token.SEMI,
		token.SCANEOF)
}

func TestScannerRoundTrip(t *testing.T) {
	dfa := BuildDFA()
	src := "int a[3]; a[0] = 5;"
	toks, errs := Scan([]byte(src), dfa)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}

	lexemes := make([]string, 0, len(toks)-1)
	for _, tok := range toks {
		if tok.Tag == token.SCANEOF {
			continue
		}
		lexemes = append(lexemes, tok.Lexeme)
	}
	rebuilt := ""
	for i, lx := range lexemes {
		if i > 0 {
			rebuilt += " "
		}
		rebuilt += lx
	}

	retoks, reerrs := Scan([]byte(rebuilt), dfa)
	if len(reerrs) != 0 {
		t.Fatalf("unexpected errors on rescan: %v", reerrs)
	}
	if len(retoks) != len(toks) {
		t.Fatalf("rescan produced %d tokens, want %d", len(retoks), len(toks))
	}
	for i := range toks {
		if retoks[i].Tag != toks[i].Tag {
			t.Errorf("rescan tag %d = %v, want %v", i, retoks[i].Tag, toks[i].Tag)
		}
	}
}
