package digest

import (
	"encoding/binary"
	"hash"
)

// adler64x is Adler-32 (RFC 1950) with a second 32 bit accumulator that sums
// every intermediate s2 modulo a large prime.  The extra word makes
// collisions less likely than with plain Adler-32, although it does not add a
// full 32 bits of strength.  The sum is the extra word followed by the
// regular Adler-32 value, both big endian.
type adler64x struct {
	s1    uint32
	s2    uint32
	extra uint32
}

const (
	adlerMod     = 65521
	extraMod     = 0xFFFEFFF9
	adler64xSize = 8
)

var _ hash.Hash = (*adler64x)(nil)

func newAdler64x() *adler64x {
	a := &adler64x{}
	a.Reset()
	return a
}

func (a *adler64x) Reset() {
	a.s1 = 1
	a.s2 = 0
	a.extra = 0
}

// Write never fails.  All state lives in three words, so there is no partial
// block to carry between calls.
func (a *adler64x) Write(p []byte) (int, error) {
	s1, s2, extra := a.s1, a.s2, a.extra
	for _, b := range p {
		s1 = (s1 + uint32(b)) % adlerMod
		s2 = (s2 + s1) % adlerMod

		// extra < extraMod and s2 < adlerMod, so this cannot overflow
		extra += s2
		if extra >= extraMod {
			extra -= extraMod
		}
	}
	a.s1, a.s2, a.extra = s1, s2, extra
	return len(p), nil
}

func (a *adler64x) Sum(b []byte) []byte {
	b = binary.BigEndian.AppendUint32(b, a.extra)
	return binary.BigEndian.AppendUint32(b, a.s2<<16|a.s1)
}

func (a *adler64x) Size() int      { return adler64xSize }
func (a *adler64x) BlockSize() int { return 1 }
