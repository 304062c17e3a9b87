// Package csprng adapts the platform secure random source to the sampler
// contract, and adds two seeded constructions built from standard
// cryptographic primitives.
//
//	System      crypto/rand; 8 bytes per draw, top 53 bits / 2⁵³.
//	HashChain   state ← SHA-256(state); deterministic from a seed.
//	CounterAES  AES-128(key, counter); key drawn once from the secure source.
//
// System keeps no state. A failed read is reported as
// sampler.ErrEntropyUnavailable and is never retried: a broken entropy source
// must surface rather than quietly degrade.
//
// Helpers mirror the usual secrets toolbox: Uint32, Below, TokenBytes and
// TokenHex.
package csprng
