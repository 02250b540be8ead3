// Package sampling implements the FIPS 203 entropy and derivation
// primitives sitting between raw randomness and ring elements: the
// caller-supplied entropy source, the SHAKE128-driven rejection
// sampler SampleNTT, and the SHAKE256-driven centered binomial sampler
// SamplePolyCBD, plus the hash/XOF wiring (G, H, J, PRF, XOF) spec.md 4.8
// pins to SHA3-512/SHA3-256/SHAKE256/SHAKE128.
package sampling

import (
	"errors"
	"io"
)

// ErrRngFailure is returned when the caller-supplied entropy source
// refuses to produce bytes (spec.md 7).
var ErrRngFailure = errors.New("mlkem: entropy source failed")

// Rng is the abstract entropy capability spec.md 5 requires: callers
// pass one in to KeyGen (to draw d, z) and Encaps (to draw m). Core
// operations never read from any ambient/global randomness source.
//
// Any io.Reader satisfies Rng, including crypto/rand.Reader.
type Rng = io.Reader

// Seed reads exactly len(buf) bytes from rng into buf, wrapping any
// short read or error as ErrRngFailure.
func Seed(rng Rng, buf []byte) error {
	if _, err := io.ReadFull(rng, buf); err != nil {
		return errors.Join(ErrRngFailure, err)
	}
	return nil
}
