// SPDX-License-Identifier: MIT
// Package: lvrand/trng
//
// backends.go - recorders by name.

package trng

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/lvrand/sampler"
)

// Backend names accepted by NewRecorder.
const (
	BackendARecord   = "arecord"
	BackendSynthetic = "synthetic"
	BackendPortAudio = "portaudio"
)

// backends maps a name to a recorder factory. Build-tagged files add entries
// from init.
var backends = map[string]func(device string, seed int64) Recorder{
	BackendARecord: func(device string, _ int64) Recorder {
		return ARecord{Device: device}
	},
	BackendSynthetic: func(_ string, seed int64) Recorder {
		return NewSynthetic(seed)
	},
}

// NewRecorder returns the recorder registered under name. device is passed
// to device-backed recorders; seed only to Synthetic. The portaudio backend
// exists only in builds tagged "portaudio".
func NewRecorder(name, device string, seed int64) (Recorder, error) {
	mk, ok := backends[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("trng.NewRecorder: unknown backend %q (have %s): %w",
			name, strings.Join(Backends(), ", "), sampler.ErrConfiguration)
	}

	return mk(device, seed), nil
}

// Backends lists the registered backend names, sorted.
func Backends() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}
