package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/pyhub-apps/pdfpagecount/pkg/pdf"
)

// Report counts the pages of the PDF at path and prints the result to
// stdout. On failure it prints 0 and writes one diagnostic line to stderr.
// The printed value is returned.
func Report(stdout, stderr io.Writer, path string, opts ...pdf.Option) int {
	n, err := pdf.CountPages(path, opts...)
	if err != nil {
		fmt.Fprintf(stderr, "Error reading PDF: %s\n", singleLine(err.Error()))
		n = 0
	}

	fmt.Fprintln(stdout, n)
	return n
}

func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
