// Package chunk reads files as a sequence of bounded-size chunks.
package chunk

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/afero"
)

// Reader hands out the contents of a single file one chunk at a time.  The
// same buffer is reused for every chunk, so a chunk returned from Next is only
// valid until the next call to Next.
//
// A Reader is not safe for concurrent use.
type Reader struct {
	path   string
	file   afero.File
	size   int64
	offset int64
	buf    []byte
	err    error
	closed bool
}

var errTruncated = errors.New("file shrank while being read")

// Open the file at path on fs for chunked reading.  The chunk size is clamped
// with ClampSize.  The returned error wraps one of ErrNotFound,
// ErrPermissionDenied, ErrInvalidPath or ErrIO along with the underlying
// cause.
func Open(fs afero.Fs, path string, size int) (*Reader, error) {
	// check the type before opening since opening a fifo blocks
	pre, err := fs.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: stat [%s]: %w", classify(err), path, err)
	}
	if !pre.IsDir() && !pre.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: [%s] has mode %s", ErrInvalidPath, path, pre.Mode().Type())
	}

	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open [%s]: %w", classify(err), path, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: stat [%s]: %w", classify(err), path, err)
	}

	if info.IsDir() {
		f.Close()
		return nil, fmt.Errorf("%w: [%s] is a directory", ErrInvalidPath, path)
	}

	if !info.Mode().IsRegular() {
		f.Close()
		return nil, fmt.Errorf("%w: [%s] has mode %s", ErrInvalidPath, path, info.Mode().Type())
	}

	capacity := ClampSize(size)
	slog.Debug("opened file", "path", path, "size", info.Size(), "chunkSize", capacity)

	return &Reader{
		path: path,
		file: f,
		size: info.Size(),
		buf:  make([]byte, capacity),
	}, nil
}

// Next returns the next chunk of at most Capacity() bytes.  It returns io.EOF
// once the whole file has been delivered and never returns an empty chunk
// together with a nil error.  Any failure while reading wraps ErrIO.  Once
// Next has returned an error it keeps returning that error.
func (r *Reader) Next() ([]byte, error) {
	if r.err != nil {
		return nil, r.err
	}

	n, err := io.ReadFull(r.file, r.buf)
	r.offset += int64(n)

	switch {
	case err == nil:
		// full chunk

	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		// a short final chunk is delivered now and end of file is
		// reported by the following call
		r.err = r.eof()
		if n == 0 || r.err != io.EOF {
			return nil, r.err
		}

	default:
		r.err = fmt.Errorf("%w: read [%s] at offset %d: %w", ErrIO, r.path, r.offset, err)
		return nil, r.err
	}

	slog.Debug("chunk", "path", r.path, "offset", r.offset-int64(n), "size", n)
	return r.buf[:n], nil
}

// eof decides what end of file means given how much we have read.  A file
// that ends before the size it had when it was opened has been truncated
// underneath us, which is an error rather than a shorter stream.
func (r *Reader) eof() error {
	if r.offset < r.size {
		return fmt.Errorf("%w: read [%s]: %w: got %d of %d bytes", ErrIO, r.path, errTruncated, r.offset, r.size)
	}
	return io.EOF
}

// Offset returns the number of bytes delivered so far.
func (r *Reader) Offset() int64 {
	return r.offset
}

// Capacity returns the maximum chunk size.
func (r *Reader) Capacity() int {
	return len(r.buf)
}

// Path returns the name the Reader was opened with.
func (r *Reader) Path() string {
	return r.path
}

// Close releases the underlying file.  It is safe to call Close more than once.
func (r *Reader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true

	err := r.file.Close()
	if err != nil {
		return fmt.Errorf("%w: close [%s]: %w", ErrIO, r.path, err)
	}
	return nil
}
