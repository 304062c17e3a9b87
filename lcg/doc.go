// Package lcg implements the Linear Congruential Generator.
//
// 🚀 What is an LCG?
//
//	The oldest practical PRNG: a single integer of state advanced by
//
//	  x₍ₙ₊₁₎ = (a·xₙ + c) mod m
//
//	and emitted as the sample x₍ₙ₊₁₎ / m ∈ [0,1).
//
//	Its quality is decided entirely by (a, c, m). The Hull–Dobell theorem
//	gives the conditions for the maximal period m (c ≠ 0):
//	  • gcd(c, m) = 1
//	  • a−1 is divisible by every prime factor of m
//	  • a−1 is divisible by 4 when m is
//
// ✨ Presets:
//
//	good    a=1664525     c=1013904223  m=2³²      Hull–Dobell, period 2³²
//	poor    a=4           c=7           m=9        period 9, nine distinct values
//	ansic   a=1103515245  c=12345       m=2³¹      classic C library rand()
//	minstd  a=48271       c=0           m=2³¹−1    Park–Miller multiplicative
//	randu   a=65539       c=0           m=2³¹      IBM RANDU, correlated triples
//
// ⚙️ Usage:
//
//	g, err := lcg.New(lcg.Params{Multiplier: 1103515245, Increment: 12345, Modulus: 1 << 31, Seed: 1})
//	if err != nil {
//	  // errors.Is(err, sampler.ErrConfiguration)
//	}
//	u, _ := g.Next() // 1103527590 / 2³¹
//
//	poor, _ := lcg.NewPreset(lcg.PresetPoor, 42)
//
// Arithmetic is exact for every 64-bit modulus: a·x + c is formed in 128 bits
// (math/bits) before reduction, so no parameter set overflows.
//
// Performance: O(1) time and memory per draw.
package lcg
