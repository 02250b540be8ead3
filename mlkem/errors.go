package mlkem

import (
	"errors"

	"github.com/pqcrypto-go/mlkem/sampling"
)

// Error kinds the core produces (spec.md 7). Deserialization failures
// are reported as one of these at the call site; Decaps itself never
// returns an error for a ciphertext of the correct length — an invalid
// or tampered ciphertext silently yields the implicit-rejection key
// instead (spec.md 7, 8 property 6).
var (
	// ErrInvalidKeyEncoding reports an encaps-key coefficient out of
	// range, or a round-trip mismatch.
	ErrInvalidKeyEncoding = errors.New("mlkem: invalid encapsulation key encoding")

	// ErrInvalidPrivateKey reports a decaps-key length mismatch, or a
	// stored H(ek) that disagrees with the recomputed hash.
	ErrInvalidPrivateKey = errors.New("mlkem: invalid decapsulation key encoding")

	// ErrInvalidCiphertextLength reports a wire-format length mismatch.
	ErrInvalidCiphertextLength = errors.New("mlkem: invalid ciphertext length")

	// ErrRngFailure reports that the caller-supplied entropy source
	// refused to produce bytes.
	ErrRngFailure = sampling.ErrRngFailure
)
