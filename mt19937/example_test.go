package mt19937_test

import (
	"fmt"

	"github.com/katalvlaran/lvrand/mt19937"
)

func ExampleNew() {
	g := mt19937.New(mt19937.DefaultSeed)
	fmt.Println(g.Phase(), g.Generation())
	fmt.Println(g.Uint32())
	fmt.Println(g.Phase(), g.Index(), g.Generation())
	// Output:
	// Seeded 0
	// 3499211612
	// Generating 1 1
}
