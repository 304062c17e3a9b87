package mt19937_test

import (
	"testing"

	"github.com/katalvlaran/lvrand/mt19937"
)

func BenchmarkNext(b *testing.B) {
	g := mt19937.NewDefault()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Next()
	}
}
