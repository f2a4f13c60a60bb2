package pdf

import (
	"fmt"

	gopdf "github.com/dslipak/pdf"
)

func init() {
	RegisterBackend(dslipakBackend{})
}

// DsliPakDocument implements the Document interface using dslipak/pdf library
type DsliPakDocument struct {
	reader    *gopdf.Reader
	pageCount int
}

type dslipakBackend struct{}

func (dslipakBackend) Name() string {
	return "dslipak"
}

func (dslipakBackend) Open(r Source, size int64, _ string) (Document, error) {
	reader, err := gopdf.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF with dslipak: %w", err)
	}

	n, err := dslipakPageCount(reader)
	if err != nil {
		return nil, fmt.Errorf("invalid page tree in dslipak: %w", err)
	}

	return &DsliPakDocument{
		reader:    reader,
		pageCount: n,
	}, nil
}

// PageCount returns the total number of pages
func (d *DsliPakDocument) PageCount() int {
	return d.pageCount
}

// Close releases resources associated with the document
func (d *DsliPakDocument) Close() error {
	d.reader = nil
	return nil
}

// dslipakPageCount counts the leaf pages under the root page node. A root
// /Count that is missing or disagrees with the leaves is an error.
func dslipakPageCount(reader *gopdf.Reader) (int, error) {
	root := reader.Trailer().Key("Root").Key("Pages")
	if root.Kind() != gopdf.Dict {
		return 0, fmt.Errorf("missing page tree root")
	}

	count := root.Key("Count")
	if count.Kind() != gopdf.Integer {
		return 0, fmt.Errorf("missing or invalid /Count in page tree root")
	}

	leaves, err := dslipakCountLeaves(root, 0)
	if err != nil {
		return 0, err
	}
	if int64(leaves) != count.Int64() {
		return 0, fmt.Errorf("page tree /Count %d does not match %d pages", count.Int64(), leaves)
	}
	return leaves, nil
}

func dslipakCountLeaves(node gopdf.Value, depth int) (int, error) {
	if depth > maxPageTreeDepth {
		return 0, fmt.Errorf("page tree deeper than %d levels", maxPageTreeDepth)
	}

	kids := node.Key("Kids")
	if kids.Kind() != gopdf.Array {
		if node.Kind() != gopdf.Dict {
			return 0, fmt.Errorf("page tree node is not a dictionary")
		}
		return 1, nil
	}

	total := 0
	for i := 0; i < kids.Len(); i++ {
		n, err := dslipakCountLeaves(kids.Index(i), depth+1)
		if err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}
