package main

import (
	"errors"

	"github.com/borud/checksum/pkg/chunk"
	"github.com/borud/checksum/pkg/digest"
)

// process exit codes
const (
	exitOK               = 0
	exitUsage            = 1
	exitNotFound         = 2
	exitPermissionDenied = 3
	exitInvalidPath      = 4
	exitIO               = 5
	exitMismatch         = 6
)

// exitCode maps an error to a process exit code.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, digest.ErrUnknownAlgorithm), errors.Is(err, digest.ErrUnknownEncoding):
		return exitUsage
	case errors.Is(err, chunk.ErrNotFound):
		return exitNotFound
	case errors.Is(err, chunk.ErrPermissionDenied):
		return exitPermissionDenied
	case errors.Is(err, chunk.ErrInvalidPath):
		return exitInvalidPath
	case errors.Is(err, errMismatch):
		return exitMismatch
	default:
		return exitIO
	}
}
