// Package golden runs fixture-file test cases end to end through the
// scanner, parser, and code generator, and checks the emitted assembly
// against a list of required substrings. Grounded on the directory-walk
// and pass/fail reporting shape of Tester/ListTestCases in the teacher's
// tester package, rewritten against this module's own pipeline and a
// much simpler fixture format (the teacher's fixtures describe an
// expected parse tree; these describe expected assembly fragments,
// since this module's "output" is generated code rather than a tree).
package golden

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/LJQ0727/CompilerForC/internal/codegen"
	"github.com/LJQ0727/CompilerForC/internal/grammar"
	"github.com/LJQ0727/CompilerForC/internal/parser"
	"github.com/LJQ0727/CompilerForC/internal/scanner"
)

// Case is one fixture: a source snippet and the assembly substrings a
// correct compile must produce, in any order.
type Case struct {
	Name         string
	Source       string
	WantContains []string
}

// Result is the outcome of running one Case.
type Result struct {
	Case    *Case
	Err     error
	Missing []string
}

func (r *Result) String() string {
	if r.Err != nil {
		return fmt.Sprintf("FAIL %s: %v", r.Case.Name, r.Err)
	}
	if len(r.Missing) > 0 {
		return fmt.Sprintf("FAIL %s: missing %v", r.Case.Name, r.Missing)
	}
	return fmt.Sprintf("PASS %s", r.Case.Name)
}

// Load reads every *.case fixture under dir, in sorted filename order.
// A fixture is "source text\n---\nwant line 1\nwant line 2\n...".
func Load(dir string) ([]*Case, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".case") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var cases []*Case
	for _, name := range names {
		raw, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		parts := strings.SplitN(string(raw), "\n---\n", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("%s: missing \"---\" separator between source and expectations", name)
		}
		var want []string
		for _, line := range strings.Split(strings.TrimRight(parts[1], "\n"), "\n") {
			if line != "" {
				want = append(want, line)
			}
		}
		cases = append(cases, &Case{
			Name:         strings.TrimSuffix(name, ".case"),
			Source:       parts[0],
			WantContains: want,
		})
	}
	return cases, nil
}

// Run compiles c.Source through the full pipeline and checks that every
// line of c.WantContains appears as a substring of some emitted
// instruction.
func Run(c *Case) *Result {
	dfa := scanner.BuildDFA()
	toks, errs := scanner.Scan([]byte(c.Source), dfa)
	if len(errs) != 0 {
		return &Result{Case: c, Err: errs}
	}

	auto := grammar.NewCAutomaton()
	ctx := codegen.NewContext()
	result, err := parser.Parse(toks, auto, ctx.Generate)
	if err != nil {
		return &Result{Case: c, Err: err}
	}

	var missing []string
	for _, want := range c.WantContains {
		found := false
		for _, instr := range result.Instructions {
			if strings.Contains(instr, want) {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, want)
		}
	}
	return &Result{Case: c, Missing: missing}
}
