package digest

import (
	"bytes"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// Digest is the finished output of an Engine.  It is immutable: every
// accessor that hands out bytes hands out a copy.
type Digest struct {
	algorithm string
	sum       []byte
}

// Encoding is a textual rendering of a Digest.
type Encoding int

// Supported encodings.
const (
	Hex Encoding = iota
	Base64
)

// errors
var (
	ErrUnknownEncoding = errors.New("unknown encoding")
)

// ParseEncoding parses "hex" or "base64".
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToLower(s) {
	case "hex":
		return Hex, nil
	case "base64":
		return Base64, nil
	default:
		return Hex, fmt.Errorf("%w: %q", ErrUnknownEncoding, s)
	}
}

func (e Encoding) String() string {
	switch e {
	case Hex:
		return "hex"
	case Base64:
		return "base64"
	default:
		return fmt.Sprintf("Encoding(%d)", int(e))
	}
}

// Algorithm returns the name of the algorithm that produced the digest.
func (d Digest) Algorithm() string {
	return d.algorithm
}

// Size returns the width of the digest in bytes.
func (d Digest) Size() int {
	return len(d.sum)
}

// Bytes returns a copy of the raw digest.
func (d Digest) Bytes() []byte {
	return bytes.Clone(d.sum)
}

// Hex returns the digest as lower case hex.
func (d Digest) Hex() string {
	return hex.EncodeToString(d.sum)
}

// Base64 returns the digest in standard, padded base64.
func (d Digest) Base64() string {
	return base64.StdEncoding.EncodeToString(d.sum)
}

// Encode renders the digest with the given encoding.  Unknown encodings
// render as hex.
func (d Digest) Encode(e Encoding) string {
	if e == Base64 {
		return d.Base64()
	}
	return d.Hex()
}

func (d Digest) String() string {
	return d.Hex()
}

// Equal reports whether d and other were produced by the same algorithm and
// hold the same bytes.  The bytes are compared in constant time.
func (d Digest) Equal(other Digest) bool {
	return d.algorithm == other.algorithm && subtle.ConstantTimeCompare(d.sum, other.sum) == 1
}

// Matches reports whether expected is the hex (any case) or base64 rendering
// of d.
func (d Digest) Matches(expected string) bool {
	expected = strings.TrimSpace(expected)

	if b, err := hex.DecodeString(expected); err == nil {
		return subtle.ConstantTimeCompare(d.sum, b) == 1
	}

	if b, err := base64.StdEncoding.DecodeString(expected); err == nil {
		return subtle.ConstantTimeCompare(d.sum, b) == 1
	}

	return false
}
