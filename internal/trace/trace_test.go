package trace

import (
	"bytes"
	"testing"
)

func TestDisabledTracerWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	tr := New(&buf, false)
	tr.Printf("scan", "token %d", 1)
	if buf.Len() != 0 {
		t.Errorf("disabled tracer wrote %q, want nothing", buf.String())
	}
	if tr.Enabled() {
		t.Errorf("Enabled() = true for a tracer constructed with enabled=false")
	}
}

func TestEnabledTracerWritesTaggedLine(t *testing.T) {
	var buf bytes.Buffer
	tr := New(&buf, true)
	tr.Printf("parse", "shift %s", "ID")
	want := "[parse] shift ID\n"
	if buf.String() != want {
		t.Errorf("Printf wrote %q, want %q", buf.String(), want)
	}
}

func TestEnabledTracerWritesMultipleLinesInOrder(t *testing.T) {
	var buf bytes.Buffer
	tr := New(&buf, true)
	tr.Printf("a", "one")
	tr.Printf("b", "two")
	want := "[a] one\n[b] two\n"
	if buf.String() != want {
		t.Errorf("Printf wrote %q, want %q", buf.String(), want)
	}
}
