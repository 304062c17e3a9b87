package csprng_test

import (
	"errors"
	"fmt"
	"testing/iotest"

	"github.com/katalvlaran/lvrand/csprng"
	"github.com/katalvlaran/lvrand/sampler"
)

func ExampleNew() {
	s := csprng.New()
	u, err := s.Next()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(u >= 0 && u < 1, s.Reproducible())
	// Output:
	// true false
}

// ExampleWithReader shows how an unreadable source is reported.
func ExampleWithReader() {
	s := csprng.New(csprng.WithReader(iotest.ErrReader(errors.New("no device"))))
	_, err := s.Next()
	fmt.Println(errors.Is(err, sampler.ErrEntropyUnavailable))
	// Output:
	// true
}

func ExampleNewHashChain() {
	h := csprng.NewHashChain(42)
	fmt.Println(h.Uint32())
	// Output:
	// 170453503
}
