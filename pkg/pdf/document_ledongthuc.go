package pdf

import (
	"fmt"

	lpdf "github.com/ledongthuc/pdf"
)

func init() {
	RegisterBackend(ledongthucBackend{})
}

// LedongthucDocument implements the Document interface using ledongthuc/pdf library
type LedongthucDocument struct {
	reader    *lpdf.Reader
	pageCount int
}

type ledongthucBackend struct{}

func (ledongthucBackend) Name() string {
	return "ledongthuc"
}

// Open walks the page tree and checks the leaf count against the root /Count.
// Encrypted documents open only if the empty password unlocks them.
func (ledongthucBackend) Open(r Source, size int64, _ string) (Document, error) {
	reader, err := lpdf.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF with ledongthuc: %w", err)
	}

	n, err := ledongthucPageCount(reader)
	if err != nil {
		return nil, fmt.Errorf("invalid page tree in ledongthuc: %w", err)
	}

	return &LedongthucDocument{
		reader:    reader,
		pageCount: n,
	}, nil
}

// PageCount returns the total number of pages
func (d *LedongthucDocument) PageCount() int {
	return d.pageCount
}

// Close releases resources associated with the document
func (d *LedongthucDocument) Close() error {
	d.reader = nil
	return nil
}

// ledongthucPageCount counts the leaf pages under the root page node. A root
// /Count that is missing or disagrees with the leaves is an error.
func ledongthucPageCount(reader *lpdf.Reader) (int, error) {
	root := reader.Trailer().Key("Root").Key("Pages")
	if root.Kind() != lpdf.Dict {
		return 0, fmt.Errorf("missing page tree root")
	}

	count := root.Key("Count")
	if count.Kind() != lpdf.Integer {
		return 0, fmt.Errorf("missing or invalid /Count in page tree root")
	}

	leaves, err := ledongthucCountLeaves(root, 0)
	if err != nil {
		return 0, err
	}
	if int64(leaves) != count.Int64() {
		return 0, fmt.Errorf("page tree /Count %d does not match %d pages", count.Int64(), leaves)
	}
	return leaves, nil
}

func ledongthucCountLeaves(node lpdf.Value, depth int) (int, error) {
	if depth > maxPageTreeDepth {
		return 0, fmt.Errorf("page tree deeper than %d levels", maxPageTreeDepth)
	}

	kids := node.Key("Kids")
	if kids.Kind() != lpdf.Array {
		if node.Kind() != lpdf.Dict {
			return 0, fmt.Errorf("page tree node is not a dictionary")
		}
		return 1, nil
	}

	total := 0
	for i := 0; i < kids.Len(); i++ {
		n, err := ledongthucCountLeaves(kids.Index(i), depth+1)
		if err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}
