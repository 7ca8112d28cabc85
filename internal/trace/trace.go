// Package trace provides a minimal sink for the compiler's optional
// diagnostic output (spec.md §6, "Diagnostic/trace output may be
// interleaved on the standard output in trace mode or routed to
// standard error"). No example repo in this module's corpus imports a
// structured-logging library for ambient diagnostics of this kind, so
// this wrapper stays on fmt/io rather than adopting one (SPEC_FULL.md
// §10.3).
package trace

import (
	"fmt"
	"io"
)

// Tracer writes labeled progress lines to an underlying writer, or
// discards them entirely when disabled.
type Tracer struct {
	w       io.Writer
	enabled bool
}

// New returns a Tracer that writes to w when enabled is true, and
// discards all output otherwise.
func New(w io.Writer, enabled bool) *Tracer {
	return &Tracer{w: w, enabled: enabled}
}

// Printf writes one trace line, prefixed with a bracketed tag.
func (t *Tracer) Printf(tag, format string, args ...any) {
	if !t.enabled {
		return
	}
	fmt.Fprintf(t.w, "[%s] "+format+"\n", append([]any{tag}, args...)...)
}

// Enabled reports whether this Tracer actually writes its output.
func (t *Tracer) Enabled() bool {
	return t.enabled
}
