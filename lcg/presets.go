// SPDX-License-Identifier: MIT
// Package: lvrand/lcg
//
// presets.go - named parameter regimes.

package lcg

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/lvrand/sampler"
)

// Preset names accepted by Preset and NewPreset.
const (
	PresetGood   = "good"
	PresetPoor   = "poor"
	PresetANSIC  = "ansic"
	PresetMINSTD = "minstd"
	PresetRANDU  = "randu"
)

var presets = map[string]Params{
	// Numerical Recipes constants over 2³²: Hull–Dobell compliant.
	PresetGood: {Multiplier: 1664525, Increment: 1013904223, Modulus: 1 << 32},
	// Full period, but the period is 9.
	PresetPoor: {Multiplier: 4, Increment: 7, Modulus: 9},
	PresetANSIC:  {Multiplier: 1103515245, Increment: 12345, Modulus: 1 << 31},
	PresetMINSTD: {Multiplier: 48271, Increment: 0, Modulus: 1<<31 - 1},
	// Consecutive triples fall on 15 planes.
	PresetRANDU: {Multiplier: 65539, Increment: 0, Modulus: 1 << 31},
}

// Preset returns the parameters registered under name (case-insensitive),
// with a zero seed. Unknown names fail with sampler.ErrConfiguration.
func Preset(name string) (Params, error) {
	p, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Params{}, fmt.Errorf("lcg.Preset: unknown preset %q (have %v): %w", name, Presets(), sampler.ErrConfiguration)
	}

	return p, nil
}

// Presets lists the registered preset names in sorted order.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

// NewPreset builds a generator from a named preset and a seed.
func NewPreset(name string, seed uint64) (*Generator, error) {
	p, err := Preset(name)
	if err != nil {
		return nil, err
	}
	p.Seed = seed

	return New(p)
}
