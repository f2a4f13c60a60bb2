package pdftest

import (
	"bytes"
	"strconv"
	"strings"
	"testing"
)

func TestBuildStartXRef(t *testing.T) {
	data := Build(3)

	if !bytes.HasPrefix(data, []byte("%PDF-1.4\n")) {
		t.Fatalf("Missing header: %q", data[:16])
	}

	tail := string(data[bytes.LastIndex(data, []byte("startxref")):])
	lines := strings.Split(tail, "\n")
	if len(lines) < 3 || lines[2] != "%%EOF" {
		t.Fatalf("Unexpected trailer tail: %q", tail)
	}

	offset, err := strconv.Atoi(lines[1])
	if err != nil {
		t.Fatalf("Bad startxref offset %q: %v", lines[1], err)
	}
	if !bytes.HasPrefix(data[offset:], []byte("xref\n0 6\n")) {
		t.Errorf("startxref does not point at the xref table: %q", data[offset:offset+10])
	}
}

func TestBuildObjectOffsets(t *testing.T) {
	data := Build(2)

	xref := bytes.Index(data, []byte("xref\n"))
	entries := strings.Split(string(data[xref:]), "\n")[3:]
	for i := 1; i <= 4; i++ {
		off, err := strconv.Atoi(entries[i-1][:10])
		if err != nil {
			t.Fatalf("Bad entry %q: %v", entries[i-1], err)
		}
		want := strconv.Itoa(i) + " 0 obj"
		if !bytes.HasPrefix(data[off:], []byte(want)) {
			t.Errorf("Entry %d points at %q, want %q", i, data[off:off+len(want)], want)
		}
	}
}

func TestTruncatedHasNoTrailer(t *testing.T) {
	data := Truncated(3)

	if bytes.Contains(data, []byte("startxref")) || bytes.Contains(data, []byte("endobj")) {
		t.Errorf("Truncated document still has complete structure: %q", data)
	}
}

func TestBuildWithCount(t *testing.T) {
	data := BuildWithCount(3, "/Count 9")
	if !bytes.Contains(data, []byte("/Count 9")) {
		t.Errorf("Expected /Count 9 in %q", data)
	}

	data = BuildWithCount(3, "")
	if bytes.Contains(data, []byte("/Count")) {
		t.Errorf("Expected no /Count in %q", data)
	}

	// Offsets stay exact when the dictionary changes length
	offset := bytes.Index(data, []byte("xref\n"))
	tail := string(data[bytes.LastIndex(data, []byte("startxref")):])
	if got := strings.Split(tail, "\n")[1]; got != strconv.Itoa(offset) {
		t.Errorf("startxref %s, xref table at %d", got, offset)
	}
}
