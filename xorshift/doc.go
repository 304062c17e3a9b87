// Package xorshift implements Marsaglia's XORShift generators.
//
// The state is a single non-zero word advanced by three shift-xor steps:
//
//	32-bit (13, 17, 5):   x ^= x<<13; x ^= x>>17; x ^= x<<5
//	64-bit (13, 7, 17):   x ^= x<<13; x ^= x>>7;  x ^= x<<17
//
// Both triples give the maximal period 2ʷ−1 over the non-zero states. Zero is
// the fixed point of every shift-xor step, so a zero seed is rejected at
// construction with sampler.ErrConfiguration.
//
// Samples: Gen32 emits x / 2³²; Gen64 emits its top 53 bits / 2⁵³. Both are
// in [0,1) and never reach 1.
//
//	g, err := xorshift.New32(2463534242)
//	u, _ := g.Next()
package xorshift
