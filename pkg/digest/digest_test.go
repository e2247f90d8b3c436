package digest

import (
	"crypto/rand"
	mrand "math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

var vectors = []struct {
	algorithm string
	empty     string
	abc       string
}{
	{"sha256", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
	{"sha512", "cf83e1357eefb8bdf1542850d66d8007d620e4050b5715dc83f4a921d36ce9ce47d0d13c5d85f2b0ff8318d2877eec2f63b931bd47417a81a538327af927da3e", "ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f"},
	{"sha1", "da39a3ee5e6b4b0d3255bfef95601890afd80709", "a9993e364706816aba3e25717850c26c9cd0d89d"},
	{"md5", "d41d8cd98f00b204e9800998ecf8427e", "900150983cd24fb0d6963f7d28e17f72"},
	{"sha3-256", "a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a", "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532"},
	{"blake2b-256", "0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8", "bddd813c634239723171ef3fee98579b94964e3bb1cb3e427262c8c068d52319"},
	{"blake3", "af1349b9f5f9a1a6a0404dea36dcc9499bcb25c9adc112b7cc9a93cae41f3262", "6437b3ac38465133ffb63b75273a8db548c558465d79db03fd359c6cd5bd9d85"},
	{"xxh64", "ef46db3751d8e999", "44bc2cf5ad770999"},
	{"crc32", "00000000", "352441c2"},
	{"adler32", "00000001", "024d0127"},
	{"adler64x", "0000000000000001", "000003d5024d0127"},
}

func TestKnownVectors(t *testing.T) {
	require.Len(t, Names(), len(vectors))

	for _, v := range vectors {
		t.Run(v.algorithm, func(t *testing.T) {
			alg, err := Lookup(v.algorithm)
			require.NoError(t, err)
			require.Equal(t, v.algorithm, alg.Name())

			empty := Sum(alg, nil)
			require.Equal(t, v.empty, empty.Hex())
			require.Equal(t, alg.Size(), empty.Size())
			require.Equal(t, v.algorithm, empty.Algorithm())

			abc := Sum(alg, []byte("abc"))
			require.Equal(t, v.abc, abc.Hex())
			require.Equal(t, v.abc, abc.String())
		})
	}
}

func TestChunkBoundaryIndependence(t *testing.T) {
	data := make([]byte, 5000)
	_, err := rand.Read(data)
	require.NoError(t, err)

	for _, name := range Names() {
		alg, err := Lookup(name)
		require.NoError(t, err)

		want := Sum(alg, data)

		for i := 0; i < 20; i++ {
			e := New(alg)
			rest := data
			for len(rest) > 0 {
				n := 1 + mrand.Intn(min(len(rest), 300))
				e.Update(rest[:n])
				rest = rest[n:]
			}
			require.Equal(t, int64(len(data)), e.Written())
			require.True(t, want.Equal(e.Finalize()), name)
		}

		// one byte at a time
		e := New(alg)
		for i := range data {
			e.Update(data[i : i+1])
		}
		require.True(t, want.Equal(e.Finalize()), name)
	}
}

func TestDeterminism(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog")
	for _, name := range Names() {
		alg, err := Lookup(name)
		require.NoError(t, err)
		require.Equal(t, Sum(alg, data).Bytes(), Sum(alg, data).Bytes())
	}
}

func TestEngineFinalizeIsTerminal(t *testing.T) {
	e := New(Default())
	require.False(t, e.Finalized())

	e.Update([]byte("abc"))
	e.Finalize()
	require.True(t, e.Finalized())

	require.Panics(t, func() { e.Update([]byte("more")) })
	require.Panics(t, func() { e.Finalize() })
}

func TestEmptyUpdate(t *testing.T) {
	e := New(Default())
	e.Update(nil)
	e.Update([]byte{})
	require.Equal(t, vectors[0].empty, e.Finalize().Hex())
}

func TestLookup(t *testing.T) {
	alg, err := Lookup(" SHA256 ")
	require.NoError(t, err)
	require.Equal(t, "sha256", alg.Name())
	require.Equal(t, DefaultAlgorithm, Default().Name())

	_, err = Lookup("sha257")
	require.ErrorIs(t, err, ErrUnknownAlgorithm)

	require.IsNonDecreasing(t, Names())
}

func TestDigestValue(t *testing.T) {
	d := Sum(Default(), []byte("abc"))

	// mutating the returned bytes does not touch the digest
	b := d.Bytes()
	b[0] ^= 0xff
	require.Equal(t, vectors[0].abc, d.Hex())

	require.Equal(t, "ungWv48Bz+pBQUDeXa4iI7ADYaOWF3qctBD/YfIAFa0=", d.Base64())
	require.Equal(t, d.Base64(), d.Encode(Base64))
	require.Equal(t, d.Hex(), d.Encode(Hex))

	require.True(t, d.Matches(vectors[0].abc))
	require.True(t, d.Matches("BA7816BF8F01CFEA414140DE5DAE2223B00361A396177A9CB410FF61F20015AD"))
	require.True(t, d.Matches(d.Base64()))
	require.False(t, d.Matches(vectors[0].empty))
	require.False(t, d.Matches(""))
	require.False(t, d.Matches("not a digest"))

	md5, err := Lookup("md5")
	require.NoError(t, err)
	require.False(t, d.Equal(Sum(md5, []byte("abc"))))
	require.True(t, d.Equal(Sum(Default(), []byte("abc"))))
}

func TestParseEncoding(t *testing.T) {
	e, err := ParseEncoding("hex")
	require.NoError(t, err)
	require.Equal(t, Hex, e)

	e, err = ParseEncoding("BASE64")
	require.NoError(t, err)
	require.Equal(t, Base64, e)
	require.Equal(t, "base64", e.String())

	_, err = ParseEncoding("base32")
	require.ErrorIs(t, err, ErrUnknownEncoding)
}
