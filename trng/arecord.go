// SPDX-License-Identifier: MIT
// Package: lvrand/trng
//
// arecord.go - ALSA capture through the arecord command.
//
// arecord writes raw S16_LE frames to stdout; the process is bound to the
// capture context, so the timeout kills it and unblocks Read.

package trng

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os/exec"
	"strconv"
	"time"

	"github.com/katalvlaran/lvrand/sampler"
)

// ARecord runs `arecord` from alsa-utils.
type ARecord struct {
	// Path is the binary name or path; "arecord" when empty.
	Path string
	// Device is the ALSA PCM name; "default" when empty.
	Device string
}

// Args returns the arecord command line for cfg, without the binary.
func (a ARecord) Args(cfg Config) []string {
	device := a.Device
	if device == "" {
		device = "default"
	}
	secs := int(math.Ceil(cfg.Duration.Seconds()))

	return []string{
		"-q",
		"-D", device,
		"-t", "raw",
		"-f", "S16_LE",
		"-c", strconv.Itoa(cfg.Channels),
		"-r", strconv.Itoa(cfg.SampleRate),
		"-d", strconv.Itoa(secs),
	}
}

// Open implements Recorder. A missing binary or a failed start wraps
// sampler.ErrDeviceUnavailable.
func (a ARecord) Open(ctx context.Context, cfg Config) (Stream, error) {
	path := a.Path
	if path == "" {
		path = "arecord"
	}
	bin, err := exec.LookPath(path)
	if err != nil {
		return nil, fmt.Errorf("trng.ARecord: %w: %v", sampler.ErrDeviceUnavailable, err)
	}

	cmd := exec.CommandContext(ctx, bin, a.Args(cfg)...)
	cmd.WaitDelay = time.Second
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("trng.ARecord: %w: %v", sampler.ErrDeviceUnavailable, err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("trng.ARecord: %w: %v", sampler.ErrDeviceUnavailable, err)
	}

	return &pipeStream{cmd: cmd, r: out, stderr: &stderr}, nil
}

type pipeStream struct {
	cmd    *exec.Cmd
	r      io.Reader
	stderr *bytes.Buffer
	raw    []byte
	frames int

	waited  bool
	waitErr error
}

// Read decodes little-endian frames. If arecord exits before delivering a
// single frame, its exit status is reported as a device failure.
func (p *pipeStream) Read(buf []int16) (int, error) {
	if need := 2 * len(buf); cap(p.raw) < need {
		p.raw = make([]byte, need)
	}
	raw := p.raw[:2*len(buf)]

	n, err := io.ReadFull(p.r, raw)
	frames := n / 2
	for i := 0; i < frames; i++ {
		buf[i] = int16(binary.LittleEndian.Uint16(raw[2*i:]))
	}
	p.frames += frames

	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		if p.frames == 0 {
			if werr := p.wait(); werr != nil {
				return 0, fmt.Errorf("trng.ARecord: %w: %v: %s", sampler.ErrDeviceUnavailable, werr, bytes.TrimSpace(p.stderr.Bytes()))
			}
		}
		err = io.EOF
	}

	return frames, err
}

func (p *pipeStream) wait() error {
	if !p.waited {
		p.waited = true
		p.waitErr = p.cmd.Wait()
	}

	return p.waitErr
}

// Close stops arecord if it is still running and reaps it. An exit caused
// by that stop is not an error.
func (p *pipeStream) Close() error {
	if !p.waited && p.cmd.Process != nil {
		_ = p.cmd.Process.Kill()
	}
	err := p.wait()
	var exit *exec.ExitError
	if errors.As(err, &exit) {
		return nil
	}

	return err
}
