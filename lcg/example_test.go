package lcg_test

import (
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/lvrand/lcg"
	"github.com/katalvlaran/lvrand/sampler"
)

// ExampleNew reproduces the classic C library recurrence from seed 1.
func ExampleNew() {
	g, err := lcg.New(lcg.Params{Multiplier: 1103515245, Increment: 12345, Modulus: 1 << 31, Seed: 1})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i := 0; i < 3; i++ {
		fmt.Println(g.Uint64())
	}
	// Output:
	// 1103527590
	// 377401575
	// 662824084
}

// ExampleNewPreset shows the nine-value cycle of the poor preset.
func ExampleNewPreset() {
	g, _ := lcg.NewPreset(lcg.PresetPoor, 42)
	for i := 0; i < 10; i++ {
		fmt.Print(g.Uint64(), " ")
	}
	fmt.Println()
	// Output:
	// 4 5 0 7 8 3 1 2 6 4
}

// ExampleGenerator_Uint32 drives a math/rand/v2 Rand from an LCG.
func ExampleGenerator_Uint32() {
	g, _ := lcg.NewPreset(lcg.PresetGood, 42)
	r := rand.New(sampler.Source(g))
	n := r.IntN(6) + 1
	fmt.Println(n >= 1 && n <= 6)
	// Output:
	// true
}
