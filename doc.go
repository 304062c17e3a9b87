// Package lvrand builds, runs and statistically compares random number
// generators, from textbook recurrences to physical entropy.
//
// 🚀 What is in lvrand?
//
//	Deterministic engines (seeded, bit-reproducible):
//		• LCG: a·x + c mod m with named presets (good, poor, ansic, minstd, randu)
//		• XORShift: Marsaglia's 32-bit 13/17/5 and 64-bit 13/7/17
//		• Mersenne Twister: MT19937 with an explicit Seeded/Generating/Exhausted cursor
//		• Middle-square: von Neumann's historical baseline
//		• SHA-256 chain: hash-iterated state
//	Entropy-backed engines (never reproducible):
//		• CSPRNG: the platform secure source, plus AES-128 counter mode
//		• TRNG: microphone noise → LSB extraction → von Neumann → SHA-256/BLAKE2b
//
// ✨ One contract
//
//	Every engine is a sampler.Sampler: Next returns a float64 in [0,1), and
//	Reproducible says whether re-seeding replays the sequence. The analysis
//	package consumes equal-length sequences and reports mean, variance,
//	χ² and Kolmogorov–Smirnov tests with p-values, entropy and serial
//	correlation.
//
// Layout:
//
//	sampler/   - Sampler contract, shared errors, [0,1) mappings, math/rand/v2 adapter
//	lcg/       - linear congruential generator + presets
//	xorshift/  - 32/64-bit XORShift
//	mt19937/   - Mersenne Twister
//	msm/       - middle-square method
//	csprng/    - OS entropy, SHA-256 chain, AES-CTR
//	trng/      - capture, extract, condition; arecord, PortAudio, synthetic recorders
//	analysis/  - statistical summaries and comparison tables
//	config/    - LVRAND_* environment configuration (.env aware)
//	suite/     - configuration → engines → comparison table
//	examples/  - runnable comparison program
//
// Quick example:
//
//	g, _ := lcg.NewPreset(lcg.PresetPoor, 42)
//	xs, _ := sampler.NextN(g, 10000)
//	sum, _ := analysis.Analyze(xs, nil)
//	fmt.Println(sum.Uniform(0.01)) // false: nine distinct values
//
// Engines are single-goroutine values; give each goroutine its own instance.
package lvrand
