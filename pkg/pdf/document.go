package pdf

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

func init() {
	// Keep pdfcpu from creating a configuration directory under $HOME
	api.DisableConfigDir()
	RegisterBackend(pdfcpuBackend{})
}

// PDFDocument implements the Document interface using pdfcpu
type PDFDocument struct {
	ctx       *model.Context
	pageCount int
}

type pdfcpuBackend struct{}

func (pdfcpuBackend) Name() string {
	return "pdfcpu"
}

// Open reads and validates the cross-reference table and page tree
func (pdfcpuBackend) Open(r Source, size int64, password string) (Document, error) {
	// Create pdfcpu configuration
	conf := model.NewDefaultConfiguration()
	if password != "" {
		conf.UserPW = password
		conf.OwnerPW = password
	}

	ctx, err := api.ReadContext(r, conf)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF with pdfcpu: %w", err)
	}

	if err := api.ValidateContext(ctx); err != nil {
		return nil, fmt.Errorf("invalid PDF: %w", err)
	}

	if ctx.PageCount < 0 {
		return nil, fmt.Errorf("invalid page count %d", ctx.PageCount)
	}

	return &PDFDocument{
		ctx:       ctx,
		pageCount: ctx.PageCount,
	}, nil
}

// PageCount returns the total number of pages
func (d *PDFDocument) PageCount() int {
	return d.pageCount
}

// Close releases resources associated with the document
func (d *PDFDocument) Close() error {
	d.ctx = nil
	return nil
}
