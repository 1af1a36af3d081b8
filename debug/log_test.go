package debug

import (
	"bytes"
	"strings"
	"testing"

	"github.com/signadot/svgc/ir"
)

func TestLogf(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	old := out
	out = buf
	defer func() { out = old }()

	rec := &ir.Record{Attrs: ir.Attrs{{Name: "d", Values: []string{"M0 0"}}}}
	Logf("node %v rec %v n=%d\n", ir.NodeOf("svg", &ir.Record{}), rec, 3)
	got := buf.String()
	for _, want := range []string{"node <svg/>", `<_ d="M0 0"/>`, "n=3"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in %q", want, got)
		}
	}
}

func TestBoolEnv(t *testing.T) {
	t.Setenv("SVGC_TEST_BOOL", "1")
	if !boolEnv("SVGC_TEST_BOOL") {
		t.Error("expected true")
	}
	t.Setenv("SVGC_TEST_BOOL", "nope")
	if boolEnv("SVGC_TEST_BOOL") {
		t.Error("expected false")
	}
	if boolEnv("SVGC_TEST_UNSET") {
		t.Error("expected false for unset")
	}
}
