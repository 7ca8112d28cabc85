package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/LJQ0727/CompilerForC/internal/cerr"
	"github.com/LJQ0727/CompilerForC/internal/codegen"
	"github.com/LJQ0727/CompilerForC/internal/grammar"
	"github.com/LJQ0727/CompilerForC/internal/parser"
	"github.com/LJQ0727/CompilerForC/internal/scanner"
	"github.com/LJQ0727/CompilerForC/internal/semantic"
	"github.com/LJQ0727/CompilerForC/internal/trace"
)

// runCompile runs the whole pipeline against args[0] and writes the
// resulting assembly listing to the configured output. Grounded on the
// read-build-write shape of runCompile in cmd/vartan/compile.go,
// replacing vartan's grammar-spec compile with this module's
// scan/parse/codegen pipeline.
func runCompile(cmd *cobra.Command, args []string) error {
	src, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", args[0], err)
	}

	tr := trace.New(os.Stderr, *rootFlags.trace)

	dfa := scanner.BuildDFA()
	toks, lexErrs := scanner.Scan(src, dfa)
	for _, e := range lexErrs {
		e.FilePath = args[0]
		e.SourceName = args[0]
		fmt.Fprintln(os.Stderr, e.Error())
	}
	tr.Printf("scan", "%d tokens", len(toks))

	auto := grammar.NewCAutomaton()
	if *rootFlags.dumpStates {
		dumpStates(os.Stderr, auto)
	}

	ctx := codegen.NewContext()
	result, err := parser.Parse(toks, auto, ctx.Generate)
	if err != nil {
		if serr, ok := err.(*cerr.SourceError); ok {
			serr.FilePath = args[0]
			serr.SourceName = args[0]
		}
		return err
	}
	tr.Printf("parse", "accepted, %d instructions", len(result.Instructions))

	out := os.Stdout
	if *rootFlags.output != "" {
		f, err := os.OpenFile(*rootFlags.output, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return fmt.Errorf("cannot open %s: %w", *rootFlags.output, err)
		}
		defer f.Close()
		out = f
	}
	writeAssembly(out, result)

	return nil
}

// writeAssembly formats one instruction per line: labels (ending in
// ":") flush-left, everything else indented by one tab (spec.md §6,
// "Output").
func writeAssembly(w *os.File, result *semantic.Attribute) {
	for _, instr := range result.Instructions {
		if len(instr) > 0 && instr[len(instr)-1] == ':' {
			fmt.Fprintln(w, instr)
		} else {
			fmt.Fprintln(w, "\t"+instr)
		}
	}
}

func dumpStates(w *os.File, auto *grammar.Automaton) {
	for _, s := range auto.States {
		fmt.Fprintf(w, "state %d:\n", s.Number)
		for _, it := range s.Kernel {
			fmt.Fprintf(w, "  %v\n", it)
		}
		for sym, target := range s.Goto {
			fmt.Fprintf(w, "  goto %v -> %d\n", sym, target)
		}
	}

	compact := grammar.CompressGoto(auto)
	fmt.Fprintf(w, "goto table: %v\n", compact)
}
