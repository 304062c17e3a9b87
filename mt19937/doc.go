// Package mt19937 implements the 32-bit Mersenne Twister (Matsumoto &
// Nishimura, 1998).
//
// 🚀 State machine
//
//	The 624-word state array is served one tempered word at a time and
//	regenerated in bulk ("twisted") when it runs out. The cursor is made
//	explicit as a tagged phase instead of a bare index sentinel:
//
//	  Seeded ──draw──▶ Generating(0) ──…──▶ Generating(623) ──draw──▶ Exhausted
//	                        ▲                                            │
//	                        └───────────────────draw─────────────────────┘
//
//	A draw from Seeded or Exhausted twists the array, increments the
//	generation counter and serves word 0. Draws 1…624 therefore come from
//	generation 1 and draw 625 from generation 2.
//
// Reference: seed 5489 yields 3499211612, 581869302, 3890346734, and its
// 10000th output is 4123659995.
//
// Samples are the tempered word divided by 2³², in [0,1).
package mt19937
