// Command cc compiles a single source file written in the accepted C
// subset into MIPS-style assembly on standard output (spec.md §6).
// Grounded on the cobra root command shape in cmd/vartan/root.go.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "cc [file]",
	Short:         "Compile a source file into MIPS-style assembly",
	Args:          cobra.ExactArgs(1),
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runCompile,
}

var rootFlags = struct {
	output     *string
	trace      *bool
	dumpStates *bool
}{}

func init() {
	rootFlags.output = rootCmd.Flags().StringP("output", "o", "", "output file path (default stdout)")
	rootFlags.trace = rootCmd.Flags().Bool("trace", false, "write parser trace to stderr")
	rootFlags.dumpStates = rootCmd.Flags().Bool("dump-states", false, "write the LR(1) state table to stderr before parsing")
}

// Execute runs the root command, reporting any error to stderr the way
// cmd/vartan/root.go's Execute does.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}
