// Package trng turns ambient audio noise into uniform samples.
//
// 🚀 Pipeline
//
//	Recorder ─Open─▶ Stream ─Capture─▶ []int16 ─Extract─▶ bits ─Condition─▶ []uint32 ─▶ [0,1)
//
//	1. Capture: read rate × duration mono 16-bit frames from a Stream, under
//	   a timeout of duration + grace. The stream is closed on every path.
//	2. Extract: reject a constant buffer (health check), keep the Width least
//	   significant bits of each frame and, by default, von Neumann debias the
//	   resulting bit pairs (01 → 0, 10 → 1, 00/11 dropped). The bits are
//	   refused if empty or if any run of equal bits reaches MaxRun.
//	3. Condition: SHA-256 (default) or BLAKE2b-256 over 512-bit blocks plus a
//	   block counter, a 2:1 compression; or None, which packs bits directly.
//	   Words are normalized by 2³².
//
// ✨ Recorders
//
//	Buffer     fixed samples; replays and tests
//	Synthetic  seeded tone + Gaussian noise; offline runs
//	ARecord    ALSA arecord subprocess, raw S16_LE
//	PortAudio  default input device via PortAudio (build tag "portaudio")
//
// ⚠️ No replay
//
//	A Generator's output cannot be reproduced from a seed: Reproducible
//	reports false. Only Synthetic and Buffer recorders are repeatable, and
//	only at the capture level.
//
// Errors:
//   - sampler.ErrDeviceUnavailable: no input device could be opened.
//     Recoverable; callers usually fall back to csprng.
//   - sampler.ErrInsufficientEntropy: a capture yielded too few bits for the
//     request, including the silent (all-equal) buffer.
//   - sampler.ErrConfiguration: invalid Config.
package trng
