package pdf

import (
	"errors"
)

// Error kinds. Match them with errors.Is.
var (
	// ErrFileAccess reports that the file could not be opened or stat'ed
	ErrFileAccess = errors.New("file access error")

	// ErrParse reports that no backend could read the data as a PDF
	ErrParse = errors.New("parse error")

	// ErrConfig reports an invalid option, such as an unknown backend name
	ErrConfig = errors.New("configuration error")
)

// Error carries the kind of failure together with the path it happened on
// and the underlying cause.
type Error struct {
	Kind error
	Path string
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the kind of this error
func (e *Error) Is(target error) bool {
	return target == e.Kind
}

func fileAccessError(path string, err error) error {
	return &Error{Kind: ErrFileAccess, Path: path, Err: err}
}

func parseError(path string, err error) error {
	return &Error{Kind: ErrParse, Path: path, Err: err}
}

func configError(err error) error {
	return &Error{Kind: ErrConfig, Err: err}
}
