package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pyhub-apps/pdfpagecount/internal/pdftest"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer
	if args == nil {
		// cobra falls back to os.Args on nil
		args = []string{}
	}

	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootCommandValidPDF(t *testing.T) {
	path := pdftest.WriteFile(t, "three.pdf", pdftest.Build(3))

	stdout, stderr, err := execute(t, path)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if stdout != "3\n" {
		t.Errorf("Expected stdout %q, got %q", "3\n", stdout)
	}
	if stderr != "" {
		t.Errorf("Expected empty stderr, got %q", stderr)
	}
}

func TestRootCommandFailures(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"missing file", "/nonexistent/path.pdf"},
		{"plain text", pdftest.WriteFile(t, "notes.txt", []byte("hello\nworld\n"))},
		{"truncated", pdftest.WriteFile(t, "cut.pdf", pdftest.Truncated(3))},
		{"count larger than kids", pdftest.WriteFile(t, "count9.pdf", pdftest.BuildWithCount(3, "/Count 9"))},
		{"count missing", pdftest.WriteFile(t, "nocount.pdf", pdftest.BuildWithCount(3, ""))},
		{"encrypted", pdftest.WriteFile(t, "locked.pdf", pdftest.Encrypt(t, pdftest.Build(2), "secret"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, err := execute(t, tt.path)
			if err != nil {
				t.Fatalf("Failure must not change the exit status: %v", err)
			}
			if stdout != "0\n" {
				t.Errorf("Expected stdout %q, got %q", "0\n", stdout)
			}
			if !strings.HasPrefix(stderr, "Error reading PDF: ") {
				t.Errorf("Unexpected diagnostic %q", stderr)
			}
			if strings.Count(stderr, "\n") != 1 || !strings.HasSuffix(stderr, "\n") {
				t.Errorf("Expected exactly one diagnostic line, got %q", stderr)
			}
		})
	}
}

func TestRootCommandPassword(t *testing.T) {
	path := pdftest.WriteFile(t, "locked.pdf", pdftest.Encrypt(t, pdftest.Build(2), "secret"))

	stdout, stderr, err := execute(t, "--password", "secret", path)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if stdout != "2\n" {
		t.Errorf("Expected stdout %q, got %q", "2\n", stdout)
	}
	if stderr != "" {
		t.Errorf("Expected empty stderr, got %q", stderr)
	}
}

func TestRootCommandArgs(t *testing.T) {
	if _, _, err := execute(t); err == nil {
		t.Error("Expected an error without arguments")
	}
	if _, _, err := execute(t, "a.pdf", "b.pdf"); err == nil {
		t.Error("Expected an error with two arguments")
	}
}

func TestRootCommandDebug(t *testing.T) {
	path := pdftest.WriteFile(t, "one.pdf", pdftest.Build(1))

	stdout, stderr, err := execute(t, "--debug", path)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if stdout != "1\n" {
		t.Errorf("Expected stdout %q, got %q", "1\n", stdout)
	}
	if !strings.Contains(stderr, "opened document") {
		t.Errorf("Expected debug trace on stderr, got %q", stderr)
	}
}

func TestRootCommandIdempotent(t *testing.T) {
	path := pdftest.WriteFile(t, "doc.pdf", pdftest.Build(4))

	first, _, _ := execute(t, path)
	for i := 0; i < 3; i++ {
		again, _, _ := execute(t, path)
		if again != first {
			t.Fatalf("Run %d printed %q, first run printed %q", i, again, first)
		}
	}
}

func TestReport(t *testing.T) {
	var stdout, stderr bytes.Buffer

	n := Report(&stdout, &stderr, "/nonexistent/path.pdf")
	if n != 0 {
		t.Errorf("Expected 0, got %d", n)
	}
	if stdout.String() != "0\n" {
		t.Errorf("Expected stdout %q, got %q", "0\n", stdout.String())
	}
	if !strings.Contains(stderr.String(), "no such file or directory") {
		t.Errorf("Expected the underlying error in %q", stderr.String())
	}
}

func TestSingleLine(t *testing.T) {
	got := singleLine("first line\nsecond\tline\n")
	if got != "first line second line" {
		t.Errorf("Unexpected result %q", got)
	}
}
