package pdf

import (
	"fmt"
	"io"
	"os"
)

// Open opens a PDF file and returns a Document.
//
// The file is opened once and handed to each backend in turn until one of
// them parses it. It is closed before Open returns, whatever the outcome.
func Open(filepath string, opts ...Option) (Document, error) {
	cfg := newOpenConfig(opts...)
	selected, err := lookupBackends(cfg.Backends)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(filepath)
	if err != nil {
		return nil, fileAccessError(filepath, fmt.Errorf("failed to open file: %w", err))
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, fileAccessError(filepath, fmt.Errorf("failed to stat file: %w", err))
	}
	if fi.IsDir() {
		return nil, fileAccessError(filepath, fmt.Errorf("%s is a directory", filepath))
	}

	return openSource(f, fi.Size(), filepath, selected, cfg)
}

// OpenReader parses an already opened source of the given size. The caller
// keeps ownership of r.
func OpenReader(r Source, size int64, opts ...Option) (Document, error) {
	cfg := newOpenConfig(opts...)
	selected, err := lookupBackends(cfg.Backends)
	if err != nil {
		return nil, err
	}
	return openSource(r, size, "", selected, cfg)
}

// CountPages returns the number of pages in the PDF at filepath
func CountPages(filepath string, opts ...Option) (int, error) {
	doc, err := Open(filepath, opts...)
	if err != nil {
		return 0, err
	}
	defer doc.Close()

	return doc.PageCount(), nil
}

// openSource tries each backend in order. When all of them fail the first
// backend's error is reported.
func openSource(r Source, size int64, path string, selected []Backend, cfg *openConfig) (Document, error) {
	var firstErr error
	for _, b := range selected {
		if _, err := r.Seek(0, io.SeekStart); err != nil {
			return nil, fileAccessError(path, fmt.Errorf("failed to rewind file: %w", err))
		}

		doc, err := tryBackend(b, r, size, cfg.Password)
		if err == nil {
			cfg.Logger.Debug("opened document", "backend", b.Name(), "path", path, "pages", doc.PageCount())
			return doc, nil
		}

		cfg.Logger.Debug("backend failed", "backend", b.Name(), "path", path, "error", err)
		if firstErr == nil {
			firstErr = err
		}
	}

	return nil, parseError(path, firstErr)
}

// tryBackend converts a panic inside the parsing library into an error
func tryBackend(b Backend, r Source, size int64, password string) (doc Document, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			doc = nil
			err = fmt.Errorf("%s: malformed PDF: %v", b.Name(), rec)
		}
	}()

	doc, err = b.Open(r, size, password)
	if err == nil && doc == nil {
		err = fmt.Errorf("%s: no document returned", b.Name())
	}
	return doc, err
}
