package digest

import (
	"io"
	"log/slog"

	"github.com/borud/checksum/pkg/chunk"
	"github.com/spf13/afero"
)

// Config for a Hasher.  The zero value hashes files on the OS filesystem with
// the DefaultAlgorithm in chunks of chunk.DefaultSize.
type Config struct {
	Fs        afero.Fs
	Algorithm Algorithm
	ChunkSize int
}

// Hasher computes digests of files.
type Hasher struct {
	fs        afero.Fs
	alg       Algorithm
	chunkSize int
}

// NewHasher creates a Hasher, filling in defaults for unset fields in c.
func NewHasher(c Config) *Hasher {
	h := &Hasher{
		fs:        c.Fs,
		alg:       c.Algorithm,
		chunkSize: chunk.ClampSize(c.ChunkSize),
	}

	if h.fs == nil {
		h.fs = afero.NewOsFs()
	}

	if h.alg == nil {
		h.alg = Default()
	}

	return h
}

// Algorithm returns the algorithm the Hasher uses.
func (h *Hasher) Algorithm() Algorithm {
	return h.alg
}

// File computes the digest of the file at path, reading it one chunk at a
// time.  Errors from the chunk package are returned as is, so callers can
// test them with errors.Is against chunk.ErrNotFound and friends.
func (h *Hasher) File(path string) (Digest, error) {
	r, err := chunk.Open(h.fs, path, h.chunkSize)
	if err != nil {
		return Digest{}, err
	}
	defer r.Close()

	e := New(h.alg)
	for {
		c, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Digest{}, err
		}
		e.Update(c)
	}

	// a failing close on a read-only handle does not invalidate what we read
	if err := r.Close(); err != nil {
		slog.Warn("error closing file", "path", path, "err", err)
	}

	d := e.Finalize()
	slog.Debug("digest computed", "path", path, "algorithm", d.Algorithm(), "bytes", e.Written(), "digest", d.Hex())
	return d, nil
}

// ComputeFile computes the digest of the file at path with the default
// configuration.
func ComputeFile(path string) (Digest, error) {
	return NewHasher(Config{}).File(path)
}
