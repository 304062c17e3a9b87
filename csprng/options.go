// SPDX-License-Identifier: MIT
// Package: lvrand/csprng
//
// options.go - functional options shared by System and CounterAES.
//
// Option constructors panic on nil input; constructors and draws never panic.

package csprng

import (
	"crypto/rand"
	"io"
)

// Option customizes the entropy source of a generator.
type Option func(*config)

type config struct {
	reader io.Reader
}

func defaultConfig() config {
	return config{reader: rand.Reader}
}

// WithReader replaces crypto/rand.Reader as the entropy source. Intended for
// tests that inject failures or fixed bytes. Panics on nil.
func WithReader(r io.Reader) Option {
	if r == nil {
		panic("csprng: WithReader(nil)")
	}
	return func(c *config) {
		c.reader = r
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
