package main

import (
	"fmt"
	"log"
	"os"
	"sort"
	"time"

	"github.com/pyhub-apps/pdfpagecount"
	"github.com/pyhub-apps/pdfpagecount/pkg/pdf"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: compare_backends <pdf-file>")
		os.Exit(1)
	}

	pdfPath := os.Args[1]
	if _, err := os.Stat(pdfPath); err != nil {
		log.Fatalf("Failed to stat PDF: %v", err)
	}

	fmt.Printf("=== Page count by backend ===\n")
	fmt.Printf("File: %s\n\n", pdfPath)

	counts := map[int][]string{}
	for _, name := range pdf.Backends() {
		start := time.Now()
		n, err := pdfpagecount.CountPages(pdfPath, pdfpagecount.WithBackends(name))
		elapsed := time.Since(start)

		if err != nil {
			fmt.Printf("  %-12s error after %v: %v\n", name, elapsed, err)
			continue
		}
		fmt.Printf("  %-12s %d pages in %v\n", name, n, elapsed)
		counts[n] = append(counts[n], name)
	}

	// Default chain, as used by the pagecount command
	n, err := pdfpagecount.CountPages(pdfPath)
	fmt.Printf("\n=== Summary ===\n")
	if err != nil {
		fmt.Printf("Default chain: error: %v\n", err)
	} else {
		fmt.Printf("Default chain: %d pages\n", n)
	}
	if len(counts) > 1 {
		fmt.Println("Backends disagree:")
		for _, line := range disagreements(counts) {
			fmt.Println(line)
		}
	}
}

// disagreements lists each count with the backends that reported it,
// smallest count first
func disagreements(counts map[int][]string) []string {
	values := make([]int, 0, len(counts))
	for count := range counts {
		values = append(values, count)
	}
	sort.Ints(values)

	lines := make([]string, 0, len(values))
	for _, count := range values {
		lines = append(lines, fmt.Sprintf("  %d: %v", count, counts[count]))
	}
	return lines
}
