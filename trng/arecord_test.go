package trng_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvrand/sampler"
	"github.com/katalvlaran/lvrand/trng"
)

// fakeARecord writes an executable shell script standing in for arecord.
func fakeARecord(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script recorder needs a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "arecord")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return path
}

func TestARecord_Args(t *testing.T) {
	cfg := trng.DefaultConfig()
	cfg.SampleRate = 48000
	cfg.Duration = 1500 * time.Millisecond // rounds up to 2s

	args := trng.ARecord{Device: "hw:1,0"}.Args(cfg)
	assert.Equal(t, []string{
		"-q", "-D", "hw:1,0", "-t", "raw", "-f", "S16_LE",
		"-c", "1", "-r", "48000", "-d", "2",
	}, args)

	assert.Contains(t, trng.ARecord{}.Args(trng.DefaultConfig()), "default")
}

func TestARecord_MissingBinary(t *testing.T) {
	rec := trng.ARecord{Path: filepath.Join(t.TempDir(), "no-arecord")}
	_, err := trng.Capture(context.Background(), rec, trng.DefaultConfig())
	require.ErrorIs(t, err, sampler.ErrDeviceUnavailable)
}

// TestARecord_DecodesS16LE feeds three little-endian frames: 1, 258, -1.
func TestARecord_DecodesS16LE(t *testing.T) {
	path := fakeARecord(t, `printf '\001\000\002\001\377\377'`)

	got, err := trng.Capture(context.Background(), trng.ARecord{Path: path}, trng.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, []int16{1, 258, -1}, got)
}

func TestARecord_DeviceBusy(t *testing.T) {
	path := fakeARecord(t, `echo "arecord: main:831: audio open error: Device or resource busy" >&2; exit 1`)

	_, err := trng.Capture(context.Background(), trng.ARecord{Path: path}, trng.DefaultConfig())
	require.ErrorIs(t, err, sampler.ErrDeviceUnavailable)
	assert.Contains(t, err.Error(), "busy")
}
