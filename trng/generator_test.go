package trng_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lvrand/analysis"
	"github.com/katalvlaran/lvrand/sampler"
	"github.com/katalvlaran/lvrand/trng"
)

// TestGenerator_SilentBuffer: a zero-amplitude capture must not emit samples.
func TestGenerator_SilentBuffer(t *testing.T) {
	g, err := trng.New(trng.Silent(44100))
	require.NoError(t, err)

	u, err := g.Next()
	require.ErrorIs(t, err, sampler.ErrInsufficientEntropy)
	assert.Zero(t, u)

	xs, err := sampler.NextN(g, 10)
	require.ErrorIs(t, err, sampler.ErrInsufficientEntropy)
	assert.Nil(t, xs)
	assert.Zero(t, g.Pooled())
}

// TestGenerator_StuckLowBits: a near-silent capture with debiasing disabled
// must fail instead of emitting zeros (None) or replayable hash output.
func TestGenerator_StuckLowBits(t *testing.T) {
	frames := make([]int16, 44100)
	frames[100] = 2

	for _, k := range []trng.Conditioner{trng.None, trng.SHA256, trng.BLAKE2b} {
		t.Run(k.String(), func(t *testing.T) {
			g, err := trng.New(trng.NewBuffer(frames), trng.WithDebias(false), trng.WithConditioner(k))
			require.NoError(t, err)

			xs, err := sampler.NextN(g, 5)
			require.ErrorIs(t, err, sampler.ErrInsufficientEntropy)
			assert.Nil(t, xs)
			assert.Zero(t, g.Pooled())
			assert.Equal(t, 1, g.Captures())
		})
	}
}

func TestGenerator_DeviceUnavailable(t *testing.T) {
	rec := trng.RecorderFunc(func(context.Context, trng.Config) (trng.Stream, error) {
		return nil, errors.New("no input device")
	})
	g, err := trng.New(rec)
	require.NoError(t, err, "construction must not touch the device")

	_, err = g.Next()
	require.ErrorIs(t, err, sampler.ErrDeviceUnavailable)
	assert.Zero(t, g.Captures())
}

// TestGenerator_StreamClosedAfterExtractionFailure: the device is released
// even when the captured buffer is rejected afterwards.
func TestGenerator_StreamClosedAfterExtractionFailure(t *testing.T) {
	s := &fakeStream{frames: make([]int16, 500)}
	g, err := trng.New(recorderOf(s))
	require.NoError(t, err)

	_, err = g.Next()
	require.ErrorIs(t, err, sampler.ErrInsufficientEntropy)
	assert.Equal(t, 1, s.closes)
	assert.Equal(t, 1, g.Captures())
}

// TestGenerator_SyntheticRange draws 10,000 samples from synthetic audio.
func TestGenerator_SyntheticRange(t *testing.T) {
	g, err := trng.New(trng.NewSynthetic(1), trng.WithWidth(4))
	require.NoError(t, err)
	require.False(t, g.Reproducible())

	xs := make([]float64, 10000)
	for i := range xs {
		xs[i], err = g.Next()
		require.NoError(t, err)
		require.GreaterOrEqual(t, xs[i], 0.0)
		require.Less(t, xs[i], 1.0)
	}
	assert.InDelta(t, 0.5, stat.Mean(xs, nil), 0.02)

	sum, err := analysis.Analyze(xs, nil)
	require.NoError(t, err)
	assert.True(t, sum.Uniform(1e-4), "chi2 p=%g ks p=%g", sum.ChiSquareP, sum.KSP)

	q := g.Quality()
	assert.Equal(t, 44100, q.Frames)
	assert.Positive(t, q.Words)
	assert.InDelta(t, 0, q.Bias, 0.05)
}

func TestGenerator_NextN(t *testing.T) {
	g, err := trng.New(trng.NewSynthetic(2), trng.WithConditioner(trng.BLAKE2b))
	require.NoError(t, err)

	xs, err := g.NextN(8)
	require.NoError(t, err)
	assert.Len(t, xs, 8)
	assert.Equal(t, 1, g.Captures())

	empty, err := g.NextN(0)
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = g.NextN(-1)
	require.ErrorIs(t, err, sampler.ErrBadCount)
}

// TestGenerator_NextN_TooLarge: a request beyond one capture fails wholesale
// and leaves the pool for later draws.
func TestGenerator_NextN_TooLarge(t *testing.T) {
	g, err := trng.New(trng.NewSynthetic(3))
	require.NoError(t, err)

	xs, err := sampler.NextN(g, 1_000_000)
	require.ErrorIs(t, err, sampler.ErrInsufficientEntropy)
	assert.Nil(t, xs)
	assert.Equal(t, 1, g.Captures())

	pooled := g.Pooled()
	require.Positive(t, pooled)
	_, err = g.Next()
	require.NoError(t, err)
	assert.Equal(t, pooled-1, g.Pooled())
	assert.Equal(t, 1, g.Captures())
}

func TestGenerator_ConditionerNone(t *testing.T) {
	g, err := trng.New(trng.NewSynthetic(4), trng.WithConditioner(trng.None), trng.WithDebias(false))
	require.NoError(t, err)

	xs, err := g.NextN(1000)
	require.NoError(t, err)
	for _, x := range xs {
		require.Less(t, x, 1.0)
	}
	// 44100 raw bits pack into 1378 words.
	assert.Equal(t, 44100/32-1000, g.Pooled())
}

func TestNew_Invalid(t *testing.T) {
	_, err := trng.New(nil)
	require.ErrorIs(t, err, sampler.ErrConfiguration)

	bad := trng.DefaultConfig()
	bad.Channels = 2
	_, err = trng.New(trng.Silent(1), trng.WithConfig(bad))
	require.ErrorIs(t, err, sampler.ErrConfiguration)
}

func TestSynthetic_Deterministic(t *testing.T) {
	cfg := trng.DefaultConfig()
	a, err := trng.Capture(context.Background(), trng.NewSynthetic(9), cfg)
	require.NoError(t, err)
	b, err := trng.Capture(context.Background(), trng.NewSynthetic(9), cfg)
	require.NoError(t, err)
	require.Equal(t, a, b)
	require.Len(t, a, cfg.Frames())
	require.NoError(t, trng.HealthCheck(a))
}

func TestBuffer_Replays(t *testing.T) {
	src := noisy(64)
	buf := trng.NewBuffer(src)
	src[0] = 42 // NewBuffer copies

	cfg := trng.DefaultConfig()
	a, err := trng.Capture(context.Background(), buf, cfg)
	require.NoError(t, err)
	b, err := trng.Capture(context.Background(), buf, cfg)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, noisy(64), a)
}
