// Package mlkem implements ML-KEM (FIPS 203): KeyGen, Encaps and Decaps
// for ML-KEM-512/768/1024, wrapping K-PKE (package pke) with the
// Fujisaki-Okamoto-like transform spec.md 4.6 describes — implicit
// rejection, full-ciphertext re-encryption check, and constant-time
// selection between the honest shared secret and the pseudorandom
// rejection key.
//
// Randomness is drawn exactly where spec.md 5/9 says it is: the seeds d
// and z at KeyGen, and the message m at Encaps. Decaps is fully
// deterministic given (dk, ct) and consumes no entropy.
package mlkem

import (
	"github.com/pqcrypto-go/mlkem/consttime"
	"github.com/pqcrypto-go/mlkem/pke"
	"github.com/pqcrypto-go/mlkem/sampling"
)

// KeyGen draws fresh seeds from rng and runs KeyGenFromSeed (spec.md 6).
func KeyGen(params Parameters, rng sampling.Rng) (*EncapsulationKey, *DecapsulationKey, error) {
	var d, z [32]byte
	if err := sampling.Seed(rng, d[:]); err != nil {
		return nil, nil, err
	}
	if err := sampling.Seed(rng, z[:]); err != nil {
		return nil, nil, err
	}
	ek, dk := KeyGenFromSeed(params, d, z)
	return ek, dk, nil
}

// KeyGenFromSeed implements FIPS 203 Algorithm 16 deterministically
// from the 32-byte seeds d and z, enabling fixed-seed test vectors
// (spec.md 5, 8).
func KeyGenFromSeed(params Parameters, d, z [32]byte) (*EncapsulationKey, *DecapsulationKey) {
	ekPKE, dkPKE := pke.KeyGen(params.pke, d[:])

	ek := &EncapsulationKey{params: params, raw: ekPKE}
	h := sampling.H(ekPKE)

	dk := &DecapsulationKey{params: params, dkPKE: dkPKE, ek: ek}
	dk.h = h
	dk.z = z

	return ek, dk
}

// Encaps draws a fresh message from rng and runs EncapsFromSeed
// (spec.md 6).
func Encaps(ek *EncapsulationKey, rng sampling.Rng) (*Ciphertext, [32]byte, error) {
	var m [32]byte
	if err := sampling.Seed(rng, m[:]); err != nil {
		return nil, [32]byte{}, err
	}
	ct, k := EncapsFromSeed(ek, m)
	return ct, k, nil
}

// EncapsFromSeed implements FIPS 203 Algorithm 17 deterministically
// from the 32-byte message m. The shared secret K returned is exactly
// the K' the final FIPS 203 standard derives — unlike the pre-standard
// Kyber draft, there is no additional KDF pass wrapping it (spec.md 4.6, 9).
func EncapsFromSeed(ek *EncapsulationKey, m [32]byte) (*Ciphertext, [32]byte) {
	h := sampling.H(ek.raw)
	k, r := sampling.G(m[:], h[:])

	ctBytes := pke.Encrypt(ek.params.pke, ek.raw, m, r[:])
	ct := &Ciphertext{params: ek.params, raw: ctBytes}

	return ct, k
}

// Decaps implements FIPS 203 Algorithm 18: it always returns 32 bytes,
// in constant time with respect to whether ct is honest. An invalid or
// tampered ciphertext silently yields J(z||ct) instead of an error
// (spec.md 4.6, 7, 8 property 6) — this is the single most important
// failure-handling contract in the module.
func Decaps(dk *DecapsulationKey, ct *Ciphertext) [32]byte {
	k, _ := decaps(dk, ct)
	return k
}

// DecapsWithSeed is a diagnostic path exposing the message K-PKE
// recovered from ct, for test and debugging use only — not part of the
// production KEM surface (spec.md 6).
func DecapsWithSeed(dk *DecapsulationKey, ct *Ciphertext) (k [32]byte, mPrime [32]byte) {
	return decaps(dk, ct)
}

func decaps(dk *DecapsulationKey, ct *Ciphertext) (k [32]byte, mPrime [32]byte) {
	mPrime = pke.Decrypt(dk.params.pke, dk.dkPKE, ct.raw)

	kPrime, r := sampling.G(mPrime[:], dk.h[:])
	kBar := sampling.J(dk.z[:], ct.raw)

	ctPrimeBytes := pke.Encrypt(dk.params.pke, dk.ek.raw, mPrime, r[:])

	mask := consttime.Equal(ctPrimeBytes, ct.raw)
	selected := consttime.Select(mask, kPrime[:], kBar[:])
	copy(k[:], selected)
	return k, mPrime
}
