package trng_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvrand/sampler"
	"github.com/katalvlaran/lvrand/trng"
)

func TestHealthCheck(t *testing.T) {
	require.ErrorIs(t, trng.HealthCheck(nil), sampler.ErrInsufficientEntropy)
	require.ErrorIs(t, trng.HealthCheck(make([]int16, 1000)), sampler.ErrInsufficientEntropy)
	require.ErrorIs(t, trng.HealthCheck([]int16{-7, -7, -7}), sampler.ErrInsufficientEntropy)
	require.NoError(t, trng.HealthCheck([]int16{0, 0, 1}))
}

func TestExtractLSB(t *testing.T) {
	got := trng.ExtractLSB([]int16{1, 2, 3, -1}, 2)
	assert.Equal(t, []byte{1, 0, 0, 1, 1, 1, 1, 1}, got)

	assert.Equal(t, []byte{0, 1, 0, 1}, trng.ExtractLSB([]int16{2, 3, 4, 5}, 1))
	assert.Empty(t, trng.ExtractLSB(nil, 4))
}

func TestVonNeumann(t *testing.T) {
	assert.Equal(t, []byte{0, 1}, trng.VonNeumann([]byte{0, 1, 1, 0, 0, 0, 1, 1, 1}))
	assert.Empty(t, trng.VonNeumann([]byte{0, 0, 1, 1, 0, 0}))
	assert.Empty(t, trng.VonNeumann([]byte{1}))
}

// TestExtract_Silent checks that a zero buffer never reaches the conditioner.
func TestExtract_Silent(t *testing.T) {
	bits, err := trng.Extract(make([]int16, 44100), trng.DefaultConfig())
	require.ErrorIs(t, err, sampler.ErrInsufficientEntropy)
	require.Nil(t, bits)
}

// TestExtract_Debias checks that alternating LSB pairs survive debiasing and
// equal pairs are dropped.
func TestExtract_Debias(t *testing.T) {
	cfg := trng.DefaultConfig()
	samples := []int16{0, 1, 1, 0, 2, 2, 3, 3}

	bits, err := trng.Extract(samples, cfg)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 1}, bits)

	cfg.Debias = false
	bits, err = trng.Extract(samples, cfg)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 1, 1, 0, 0, 0, 1, 1}, bits)
}

func TestBitHealth(t *testing.T) {
	require.ErrorIs(t, trng.BitHealth(nil), sampler.ErrInsufficientEntropy)
	require.ErrorIs(t, trng.BitHealth(make([]byte, trng.MaxRun)), sampler.ErrInsufficientEntropy)

	ones := make([]byte, 1000)
	for i := range ones {
		ones[i] = 1
	}
	require.ErrorIs(t, trng.BitHealth(ones), sampler.ErrInsufficientEntropy)

	require.NoError(t, trng.BitHealth(make([]byte, trng.MaxRun-1)))
	require.NoError(t, trng.BitHealth([]byte{0, 1, 1, 0}))

	// one stray set bit does not break up the runs around it
	stuck := make([]byte, 1000)
	stuck[500] = 1
	require.ErrorIs(t, trng.BitHealth(stuck), sampler.ErrInsufficientEntropy)
}

// TestExtract_ConstantLowBits: frames that vary only above the extracted
// bits pass HealthCheck but yield no usable bits.
func TestExtract_ConstantLowBits(t *testing.T) {
	samples := make([]int16, 44100)
	for i := range samples {
		samples[i] = int16(i%50) << 2
	}
	require.NoError(t, trng.HealthCheck(samples))

	for _, debias := range []bool{true, false} {
		cfg := trng.DefaultConfig()
		cfg.Width = 2
		cfg.Debias = debias
		bits, err := trng.Extract(samples, cfg)
		require.ErrorIs(t, err, sampler.ErrInsufficientEntropy, "debias=%v", debias)
		require.Nil(t, bits)
	}
}
