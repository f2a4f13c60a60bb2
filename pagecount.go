// Package pdfpagecount reports the number of pages in PDF files
package pdfpagecount

import (
	"github.com/pyhub-apps/pdfpagecount/pkg/pdf"
)

// Re-export types from pdf package for public API
type (
	Document = pdf.Document
	Backend  = pdf.Backend
	Source   = pdf.Source
	Option   = pdf.Option
	Error    = pdf.Error
)

// Re-export error kinds
var (
	ErrFileAccess = pdf.ErrFileAccess
	ErrParse      = pdf.ErrParse
	ErrConfig     = pdf.ErrConfig
)

// Re-export option functions
var (
	WithPassword = pdf.WithPassword
	WithBackends = pdf.WithBackends
	WithLogger   = pdf.WithLogger
)

// Open opens a PDF file and returns a Document
func Open(filepath string, opts ...Option) (Document, error) {
	return pdf.Open(filepath, opts...)
}

// OpenReader parses a PDF from an already opened source
func OpenReader(r Source, size int64, opts ...Option) (Document, error) {
	return pdf.OpenReader(r, size, opts...)
}

// CountPages returns the number of pages in the PDF file at filepath
func CountPages(filepath string, opts ...Option) (int, error) {
	return pdf.CountPages(filepath, opts...)
}

// RegisterBackend adds a parsing backend usable with WithBackends
func RegisterBackend(b Backend) {
	pdf.RegisterBackend(b)
}
