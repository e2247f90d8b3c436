package chunk

import (
	"errors"
	"io/fs"
	"syscall"
)

// errors
var (
	// ErrNotFound is returned from Open when the path does not exist.
	ErrNotFound = errors.New("file not found")
	// ErrPermissionDenied is returned from Open when the file cannot be read.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrInvalidPath is returned from Open when the path exists but does not
	// name a regular file, e.g. a directory.
	ErrInvalidPath = errors.New("not a regular file")
	// ErrIO covers every other failure, including failures while reading.
	ErrIO = errors.New("i/o error")
)

// classify maps an error from opening a file onto one of the sentinel errors.
func classify(err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return ErrNotFound
	case errors.Is(err, fs.ErrPermission):
		return ErrPermissionDenied
	case errors.Is(err, syscall.ENOTDIR), errors.Is(err, syscall.EISDIR):
		return ErrInvalidPath
	default:
		return ErrIO
	}
}
