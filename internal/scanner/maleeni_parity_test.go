//go:build maleeni_parity

// This file is excluded from ordinary test runs (go test ./...) and only
// builds under -tags maleeni_parity. It re-lexes a small corpus through
// an independently-compiled maleeni DFA built from the same token table
// as BuildDFA, and checks the two engines agree token-for-token. This
// keeps the teacher's external lexer engine genuinely imported and
// exercised without letting it stand in for this module's own
// hand-built NFA-to-DFA pipeline, which remains the production scanner
// (SPEC_FULL.md §11).
package scanner

import (
	"strings"
	"testing"

	mlcompiler "github.com/nihei9/maleeni/compiler"
	mldriver "github.com/nihei9/maleeni/driver"
	mlspec "github.com/nihei9/maleeni/spec"

	"github.com/LJQ0727/CompilerForC/internal/token"
)

// buildMaleeniSpec expresses BuildDFA's token table as a maleeni LexSpec
// instead of an NFA, one LexEntry per entry: keywords, then operators,
// then the int-literal and identifier regexes.
func buildMaleeniSpec() *mlspec.LexSpec {
	var entries []*mlspec.LexEntry
	for _, kw := range token.Keywords {
		entries = append(entries, &mlspec.LexEntry{
			Kind:    mlspec.LexKindName(kw.Tag.String()),
			Pattern: mlspec.LexPattern(mlspec.EscapePattern(kw.Text)),
		})
	}
	for _, op := range token.Operators {
		entries = append(entries, &mlspec.LexEntry{
			Kind:    mlspec.LexKindName(op.Tag.String()),
			Pattern: mlspec.LexPattern(mlspec.EscapePattern(op.Text)),
		})
	}
	entries = append(entries,
		&mlspec.LexEntry{Kind: mlspec.LexKindName(token.INT_NUM.String()), Pattern: mlspec.LexPattern(`[0-9][0-9]*`)},
		&mlspec.LexEntry{Kind: mlspec.LexKindName(token.ID.String()), Pattern: mlspec.LexPattern(`[A-Za-z][A-Za-z0-9_]*`)},
	)
	return &mlspec.LexSpec{Entries: entries}
}

func maleeniTokens(t *testing.T, src string) []string {
	t.Helper()
	compiled, err, cErrs := mlcompiler.Compile(buildMaleeniSpec(), mlcompiler.CompressionLevel(mlcompiler.CompressionLevelMax))
	if err != nil {
		t.Fatalf("mlcompiler.Compile: %v (%v)", err, cErrs)
	}

	lex, err := mldriver.NewLexer(compiled, strings.NewReader(src))
	if err != nil {
		t.Fatalf("mldriver.NewLexer: %v", err)
	}

	var kinds []string
	for {
		tok, err := lex.Next()
		if err != nil {
			t.Fatalf("Lexer.Next: %v", err)
		}
		if tok.EOF {
			break
		}
		if tok.Invalid {
			kinds = append(kinds, "INVALID")
			continue
		}
		kinds = append(kinds, tok.KindName)
	}
	return kinds
}

func nativeTokens(t *testing.T, src string) []string {
	t.Helper()
	dfa := BuildDFA()
	toks, errs := Scan([]byte(src), dfa)
	if len(errs) != 0 {
		t.Fatalf("Scan: unexpected lexical errors: %v", errs)
	}
	var kinds []string
	for _, tok := range toks {
		if tok.Tag == token.SCANEOF {
			break
		}
		kinds = append(kinds, tok.Tag.String())
	}
	return kinds
}

func TestMaleeniParity(t *testing.T) {
	corpus := []string{
		"int x; x = 1 + 2 * 3;",
		"int a[3]; a[0] = 5; a[1] = a[0] + 2;",
		"if (x <= 10 && y >= 2) { x = x + 1; } else { x = x - 1; }",
		"while (x != 0) { x = x >> 1; }",
		"do { x = x + 1; } while (x < 100);",
	}

	for _, src := range corpus {
		native := nativeTokens(t, src)
		maleeni := maleeniTokens(t, src)
		if len(native) != len(maleeni) {
			t.Errorf("%q: native produced %d tokens %v, maleeni produced %d tokens %v", src, len(native), native, len(maleeni), maleeni)
			continue
		}
		for i := range native {
			if native[i] != maleeni[i] {
				t.Errorf("%q: token %d: native=%v maleeni=%v", src, i, native[i], maleeni[i])
			}
		}
	}
}
