// Package pdftest builds small PDF documents for tests
package pdftest

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Build returns an uncompressed PDF 1.4 document with n empty US Letter
// pages and a classic cross-reference table.
func Build(n int) []byte {
	return BuildWithCount(n, fmt.Sprintf("/Count %d", n))
}

// BuildWithCount is Build with the root page node's /Count entry replaced
// by countEntry. An empty countEntry leaves /Count out.
func BuildWithCount(n int, countEntry string) []byte {
	var buf bytes.Buffer
	var offsets []int

	obj := func(body string) {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", len(offsets), body)
	}

	buf.WriteString("%PDF-1.4\n%\xe2\xe3\xcf\xd3\n")

	obj("<< /Type /Catalog /Pages 2 0 R >>")

	kids := make([]string, n)
	for i := range kids {
		kids[i] = fmt.Sprintf("%d 0 R", i+3)
	}
	obj(fmt.Sprintf("<< /Type /Pages /Kids [%s] %s /MediaBox [0 0 612 792] >>",
		strings.Join(kids, " "), countEntry))

	for i := 0; i < n; i++ {
		obj("<< /Type /Page /Parent 2 0 R /Resources << >> >>")
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(offsets)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(offsets)+1, xref)

	return buf.Bytes()
}

// Truncated returns Build(n) cut off in the middle of the catalog, so no
// complete object, cross-reference table or trailer survives.
func Truncated(n int) []byte {
	data := Build(n)
	return data[:bytes.Index(data, []byte("/Pages 2 0 R"))]
}

// Encrypt returns data encrypted with AES-256 under userPW
func Encrypt(tb testing.TB, data []byte, userPW string) []byte {
	tb.Helper()

	api.DisableConfigDir()
	conf := model.NewAESConfiguration(userPW, userPW+"-owner", 256)

	var buf bytes.Buffer
	if err := api.Encrypt(bytes.NewReader(data), &buf, conf); err != nil {
		tb.Fatalf("Failed to encrypt PDF: %v", err)
	}
	return buf.Bytes()
}

// WriteFile writes data to name inside a temporary directory owned by tb
// and returns the full path.
func WriteFile(tb testing.TB, name string, data []byte) string {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		tb.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}
