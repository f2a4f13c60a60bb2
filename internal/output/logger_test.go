package output

import (
	"bytes"
	"strings"
	"testing"
)

func TestConfigureDisabled(t *testing.T) {
	var buf bytes.Buffer
	l := Configure(&buf, false)
	l.Debug("hidden")
	l.Error("hidden too")

	if buf.Len() != 0 {
		t.Errorf("Expected no output, got %q", buf.String())
	}
}

func TestConfigureDebug(t *testing.T) {
	var buf bytes.Buffer
	l := Configure(&buf, true)

	l.Debug("backend failed", "backend", "pdfcpu")

	out := buf.String()
	if !strings.Contains(out, "backend failed") || !strings.Contains(out, "backend=pdfcpu") {
		t.Errorf("Unexpected log output: %q", out)
	}
}
