package digest

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"fmt"
	"hash"
	"hash/adler32"
	"hash/crc32"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Algorithm is a hash function the Engine can run.  New must return a hash in
// its initial state every time it is called.
type Algorithm interface {
	// Name is the canonical, lower case name of the algorithm.
	Name() string
	// Size is the width of the digest in bytes.
	Size() int
	// New returns fresh hash state.
	New() hash.Hash
}

// DefaultAlgorithm is used when nothing else is configured.
const DefaultAlgorithm = "sha256"

// errors
var (
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
)

type algorithm struct {
	name string
	size int
	new  func() hash.Hash
}

func (a algorithm) Name() string   { return a.name }
func (a algorithm) Size() int      { return a.size }
func (a algorithm) New() hash.Hash { return a.new() }
func (a algorithm) String() string { return a.name }

var algorithms = map[string]Algorithm{}

func register(name string, size int, fn func() hash.Hash) {
	algorithms[name] = algorithm{name: name, size: size, new: fn}
}

func init() {
	register("sha256", sha256.Size, sha256.New)
	register("sha512", sha512.Size, sha512.New)
	register("sha1", sha1.Size, sha1.New)
	register("md5", md5.Size, md5.New)
	register("sha3-256", 32, sha3.New256)
	register("blake2b-256", blake2b.Size256, func() hash.Hash {
		// only fails for keys longer than 64 bytes
		h, _ := blake2b.New256(nil)
		return h
	})
	register("blake3", 32, func() hash.Hash { return blake3.New() })
	register("xxh64", 8, func() hash.Hash { return xxhash.New() })
	register("crc32", crc32.Size, func() hash.Hash { return crc32.NewIEEE() })
	register("adler32", adler32.Size, func() hash.Hash { return adler32.New() })
	register("adler64x", adler64xSize, func() hash.Hash { return newAdler64x() })
}

// Lookup an algorithm by name.  Names are case insensitive.
func Lookup(name string) (Algorithm, error) {
	a, ok := algorithms[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q, valid algorithms are %s", ErrUnknownAlgorithm, name, strings.Join(Names(), ", "))
	}
	return a, nil
}

// Default returns the DefaultAlgorithm.
func Default() Algorithm {
	return algorithms[DefaultAlgorithm]
}

// Names returns the sorted names of all known algorithms.
func Names() []string {
	names := make([]string, 0, len(algorithms))
	for name := range algorithms {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
