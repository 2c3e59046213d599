package fileio

import (
	"errors"
	"fmt"
)

// Common error variables for file operations.
var (
	// ErrUnsupportedFormat indicates a file extension with no known codec
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrUnknownHashMethod indicates an unrecognized hash method name
	ErrUnknownHashMethod = errors.New("unknown hash method")

	// ErrUnexpectedData indicates data whose type does not fit the target format
	ErrUnexpectedData = errors.New("unexpected data type for format")
)

// UnsupportedFormatError reports a path whose extension maps to no
// supported format.
type UnsupportedFormatError struct {
	// Path is the offending file path
	Path string

	// Ext is the lowercased extension that failed to dispatch
	Ext string
}

// Error implements the error interface.
func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("file %q has unsupported format %q", e.Path, e.Ext)
}

// Unwrap returns the sentinel ErrUnsupportedFormat.
func (e *UnsupportedFormatError) Unwrap() error {
	return ErrUnsupportedFormat
}
