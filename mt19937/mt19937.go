// SPDX-License-Identifier: MIT
// Package: lvrand/mt19937
//
// mt19937.go - initialization, twist, tempering and the phase cursor.

package mt19937

import "github.com/katalvlaran/lvrand/sampler"

const (
	// N is the state size in words.
	N = 624
	// M is the twist offset.
	M = 397
	// DefaultSeed is the reference seed of Matsumoto and Nishimura's mt19937ar.c.
	DefaultSeed uint32 = 5489

	initMultiplier = 1812433253
	matrixA        = 0x9908b0df
	upperMask      = 0x80000000
	lowerMask      = 0x7fffffff

	temperB = 0x9d2c5680
	temperC = 0xefc60000
)

// Phase tags where the generator is in its serve/regenerate cycle.
type Phase uint8

const (
	// Seeded: the array holds the initialization sequence, nothing served yet.
	Seeded Phase = iota
	// Generating: words Index()…N−1 of the current generation remain.
	Generating
	// Exhausted: all N words of the current generation have been served.
	Exhausted
)

// String implements fmt.Stringer.
func (p Phase) String() string {
	switch p {
	case Seeded:
		return "Seeded"
	case Generating:
		return "Generating"
	case Exhausted:
		return "Exhausted"
	default:
		return "Phase(?)"
	}
}

// Generator is one MT19937 instance. Not safe for concurrent use.
type Generator struct {
	mt    [N]uint32
	phase Phase
	index int    // next word to serve while Generating; N when Exhausted
	gen   uint64 // completed twists
}

// New returns a generator initialized from seed. Every uint32 is a valid seed.
func New(seed uint32) *Generator {
	g := &Generator{phase: Seeded}
	g.mt[0] = seed
	for i := 1; i < N; i++ {
		prev := g.mt[i-1]
		g.mt[i] = initMultiplier*(prev^(prev>>30)) + uint32(i)
	}

	return g
}

// NewDefault returns a generator seeded with DefaultSeed.
func NewDefault() *Generator { return New(DefaultSeed) }

// twist regenerates the full state array.
func (g *Generator) twist() {
	for i := 0; i < N; i++ {
		y := (g.mt[i] & upperMask) | (g.mt[(i+1)%N] & lowerMask)
		v := g.mt[(i+M)%N] ^ (y >> 1)
		if y&1 != 0 {
			v ^= matrixA
		}
		g.mt[i] = v
	}
	g.gen++
	g.phase = Generating
	g.index = 0
}

// Uint32 returns the next tempered word, advancing the phase cursor.
func (g *Generator) Uint32() uint32 {
	if g.phase != Generating {
		g.twist()
	}

	y := g.mt[g.index]
	g.index++
	if g.index == N {
		g.phase = Exhausted
	}

	y ^= y >> 11
	y ^= (y << 7) & temperB
	y ^= (y << 15) & temperC
	y ^= y >> 18

	return y
}

// Next returns the next tempered word / 2³². The error is always nil.
func (g *Generator) Next() (float64, error) {
	return sampler.Unit32(g.Uint32()), nil
}

// Reproducible is true.
func (g *Generator) Reproducible() bool { return true }

// Phase reports the current phase tag.
func (g *Generator) Phase() Phase { return g.phase }

// Index reports the cursor: the next word to serve while Generating, N once
// Exhausted, 0 while Seeded.
func (g *Generator) Index() int { return g.index }

// Generation reports how many times the array has been regenerated. The
// words served most recently belong to this generation.
func (g *Generator) Generation() uint64 { return g.gen }
