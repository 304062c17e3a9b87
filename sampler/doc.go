// Package sampler defines the contract shared by every generator in lvrand:
// a lazy, non-restartable stream of samples uniform on [0,1).
//
// What lives here:
//
//   - Sampler       - Next() (float64, error) plus Reproducible() bool.
//   - NextN         - draw exactly n samples, all-or-nothing.
//   - Word32        - engines with a native 32-bit output word.
//   - Source        - adapt a Word32 engine to math/rand/v2.Source, so it can
//     drive gonum distuv distributions or *rand.Rand.
//   - Unit32/Unit53/Normalize - word → [0,1) mappings used by all engines.
//   - The error taxonomy (ErrConfiguration, ErrEntropyUnavailable,
//     ErrDeviceUnavailable, ErrInsufficientEntropy, ErrBadCount).
//
// Replay policy:
//
//	Deterministic engines (lcg, xorshift, mt19937, msm, csprng.HashChain)
//	report Reproducible() == true: re-constructing with the same seed and
//	parameters replays the same sequence bit for bit. There is no runtime
//	reset; restart is a construction-time operation.
//
//	csprng.System, csprng.CounterAES and trng.Generator report false. Their
//	output cannot be reproduced from any seed.
//
// Concurrency:
//
//	Samplers mutate their state on every draw and are not safe for
//	concurrent use. Give each goroutine its own instance.
package sampler
