// SPDX-License-Identifier: MIT
// Package: lvrand/sampler
//
// errors.go - sentinel errors shared by all generator packages.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Engines attach context with fmt.Errorf("<Op>: ...: %w", ErrX).
//   • Engines never panic on user input; option constructors may.
//   • Every error is reported synchronously at construction or draw time and
//     a failed draw never yields a partial result.

package sampler

import "errors"

// ErrConfiguration indicates invalid construction parameters: LCG modulus of
// zero, multiplier or increment outside [0, m), XORShift seed of zero, an
// unknown preset name, and so on. Fatal to that instance; never retried.
var ErrConfiguration = errors.New("sampler: invalid configuration")

// ErrEntropyUnavailable indicates the platform secure random source could
// not be read. Fatal and surfaced to the caller; it is not retried because a
// silently degraded entropy source must not turn into a deterministic one.
var ErrEntropyUnavailable = errors.New("sampler: entropy source unavailable")

// ErrDeviceUnavailable indicates that no audio input device could be opened.
// Recoverable: callers may substitute another generator.
var ErrDeviceUnavailable = errors.New("sampler: audio device unavailable")

// ErrInsufficientEntropy indicates that a capture did not yield enough
// extracted bits for the requested number of samples (a silent or constant
// buffer yields none). Recoverable by re-capturing with a longer duration;
// that decision belongs to the caller.
var ErrInsufficientEntropy = errors.New("sampler: insufficient entropy")

// ErrBadCount indicates a negative sample count.
var ErrBadCount = errors.New("sampler: sample count must be >= 0")
