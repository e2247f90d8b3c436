// Package digest computes content digests of files and byte streams.
//
// An Engine folds bytes into the running state of an Algorithm and produces a
// Digest once it is finalized.  The result only depends on the concatenation
// of the bytes that were fed in, never on how they were split between calls
// to Update.
package digest

import (
	"hash"
)

// Engine accumulates hash state for a single digest computation.  It moves
// from fresh to accumulating on Update and to finalized on Finalize.  A
// finalized Engine cannot be used again: calling Update or Finalize on it is a
// programming error and panics.
//
// An Engine is not safe for concurrent use.
type Engine struct {
	algorithm string
	h         hash.Hash
	written   int64
}

// New creates an Engine in the initial state of alg.
func New(alg Algorithm) *Engine {
	return &Engine{
		algorithm: alg.Name(),
		h:         alg.New(),
	}
}

// Update mixes chunk into the hash state.  The Engine does not retain chunk.
func (e *Engine) Update(chunk []byte) {
	if e.h == nil {
		panic("digest: Update called on finalized Engine")
	}

	// hash.Hash implementations never return an error from Write
	e.h.Write(chunk)
	e.written += int64(len(chunk))
}

// Finalize closes out the hash state and returns the digest.
func (e *Engine) Finalize() Digest {
	if e.h == nil {
		panic("digest: Finalize called on finalized Engine")
	}

	d := Digest{
		algorithm: e.algorithm,
		sum:       e.h.Sum(nil),
	}
	e.h = nil
	return d
}

// Written returns the number of bytes fed to the Engine so far.
func (e *Engine) Written() int64 {
	return e.written
}

// Finalized reports whether Finalize has been called.
func (e *Engine) Finalized() bool {
	return e.h == nil
}

// Sum returns the digest of data under alg.
func Sum(alg Algorithm, data []byte) Digest {
	e := New(alg)
	e.Update(data)
	return e.Finalize()
}
