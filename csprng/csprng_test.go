package csprng_test

import (
	"bytes"
	"errors"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvrand/csprng"
	"github.com/katalvlaran/lvrand/sampler"
)

var errBroken = errors.New("broken device")

// TestSystem_TwoInstancesDiffer draws 1000 samples from two instances.
func TestSystem_TwoInstancesDiffer(t *testing.T) {
	a, err := sampler.NextN(csprng.New(), 1000)
	require.NoError(t, err)
	b, err := sampler.NextN(csprng.New(), 1000)
	require.NoError(t, err)
	require.NotEqual(t, a, b)

	for _, x := range append(a, b...) {
		require.GreaterOrEqual(t, x, 0.0)
		require.Less(t, x, 1.0)
	}
	assert.False(t, csprng.New().Reproducible())
}

// TestSystem_ReadFailure checks that a broken reader is surfaced, not retried.
func TestSystem_ReadFailure(t *testing.T) {
	s := csprng.New(csprng.WithReader(iotest.ErrReader(errBroken)))

	u, err := s.Next()
	require.ErrorIs(t, err, sampler.ErrEntropyUnavailable)
	assert.Zero(t, u)

	_, err = s.Uint32()
	require.ErrorIs(t, err, sampler.ErrEntropyUnavailable)

	_, err = s.Below(10)
	require.ErrorIs(t, err, sampler.ErrEntropyUnavailable)

	xs, err := sampler.NextN(s, 5)
	require.ErrorIs(t, err, sampler.ErrEntropyUnavailable)
	assert.Nil(t, xs)
}

// TestSystem_ShortRead treats a source that runs dry mid-draw as unavailable.
func TestSystem_ShortRead(t *testing.T) {
	s := csprng.New(csprng.WithReader(bytes.NewReader([]byte{1, 2, 3})))
	_, err := s.Next()
	require.ErrorIs(t, err, sampler.ErrEntropyUnavailable)
}

// TestSystem_FixedBytes pins the 53-bit mapping with a known reader.
func TestSystem_FixedBytes(t *testing.T) {
	s := csprng.New(csprng.WithReader(bytes.NewReader(bytes.Repeat([]byte{0xFF}, 16))))
	u, err := s.Next()
	require.NoError(t, err)
	assert.Equal(t, sampler.BelowOne, u)

	w, err := s.Uint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0xFFFFFFFF), w)
}

func TestSystem_Below(t *testing.T) {
	s := csprng.New()
	_, err := s.Below(0)
	require.ErrorIs(t, err, sampler.ErrConfiguration)

	seen := make(map[uint64]bool)
	for i := 0; i < 2000; i++ {
		v, err := s.Below(6)
		require.NoError(t, err)
		require.Less(t, v, uint64(6))
		seen[v] = true
	}
	assert.Len(t, seen, 6)
}

func TestSystem_Tokens(t *testing.T) {
	s := csprng.New()

	b, err := s.TokenBytes(16)
	require.NoError(t, err)
	assert.Len(t, b, 16)

	h, err := s.TokenHex(16)
	require.NoError(t, err)
	assert.Len(t, h, 32)
	assert.Regexp(t, "^[0-9a-f]{32}$", h)

	_, err = s.TokenBytes(-1)
	require.ErrorIs(t, err, sampler.ErrBadCount)

	empty, err := s.TokenBytes(0)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestHashChain_Reference(t *testing.T) {
	h := csprng.NewHashChain(42)
	assert.Equal(t, uint32(170453503), h.Uint32())

	u, err := h.Next()
	require.NoError(t, err)
	assert.Equal(t, float64(8891195728657162)*0x1p-53, u)
	assert.True(t, h.Reproducible())
}

func TestHashChain_Determinism(t *testing.T) {
	a, err := sampler.NextN(csprng.NewHashChain(7), 10000)
	require.NoError(t, err)
	b, err := sampler.NextN(csprng.NewHashChain(7), 10000)
	require.NoError(t, err)
	require.Equal(t, a, b)

	c, err := sampler.NextN(csprng.NewHashChain(8), 10000)
	require.NoError(t, err)
	require.NotEqual(t, a, c)

	for _, x := range a {
		require.GreaterOrEqual(t, x, 0.0)
		require.Less(t, x, 1.0)
	}
}

// TestCounterAES_ZeroKey uses the all-zero key so the first block is the
// FIPS-197 style known answer AES-128(0, 0) = 66e94bd4 ef8a2c3b ...
func TestCounterAES_ZeroKey(t *testing.T) {
	g, err := csprng.NewCounterAES(csprng.WithReader(bytes.NewReader(make([]byte, csprng.KeySize))))
	require.NoError(t, err)

	assert.Equal(t, uint32(0x66e94bd4), g.Uint32())
	assert.Equal(t, uint64(1), g.Counter())
	assert.False(t, g.Reproducible())
}

func TestCounterAES_FreshKeys(t *testing.T) {
	a, err := csprng.NewCounterAES()
	require.NoError(t, err)
	b, err := csprng.NewCounterAES()
	require.NoError(t, err)

	xa, err := sampler.NextN(a, 1000)
	require.NoError(t, err)
	xb, err := sampler.NextN(b, 1000)
	require.NoError(t, err)
	require.NotEqual(t, xa, xb)
	assert.Equal(t, uint64(1000), a.Counter())
}

func TestCounterAES_KeyFailure(t *testing.T) {
	g, err := csprng.NewCounterAES(csprng.WithReader(iotest.ErrReader(errBroken)))
	require.ErrorIs(t, err, sampler.ErrEntropyUnavailable)
	require.Nil(t, g)
}

func TestWithReader_NilPanics(t *testing.T) {
	assert.Panics(t, func() { csprng.WithReader(nil) })
}
