package pdf

import (
	"io"
)

// Document represents a parsed PDF document. Only the page collection is
// exposed; the object model stays inside the backend library.
type Document interface {
	// PageCount returns the total number of pages
	PageCount() int

	// Close releases resources associated with the document
	Close() error
}

// Source is the random-access input a backend parses. *os.File and
// *bytes.Reader both satisfy it.
type Source interface {
	io.ReadSeeker
	io.ReaderAt
}

// Backend parses a Source into a Document using one PDF library
type Backend interface {
	// Name returns the identifier used with WithBackends
	Name() string

	// Open parses size bytes of r. r is positioned at offset 0.
	// An empty password means the document is opened without one.
	Open(r Source, size int64, password string) (Document, error)
}
