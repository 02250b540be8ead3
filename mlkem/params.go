package mlkem

import "github.com/pqcrypto-go/mlkem/pke"

// Parameters is an immutable, comparable parameter-set value — ML-KEM
// has exactly three (spec.md 3) — selected through a constructor
// rather than a global, so a process can use several parameter sets
// concurrently without interference (mirrors rlwe.Parameters in the
// teacher, which is likewise built once per scheme instance and passed
// by value).
type Parameters struct {
	name string
	pke  pke.Params
}

// MLKEM512 returns the ML-KEM-512 parameter set (k=2).
func MLKEM512() Parameters {
	return Parameters{name: "ML-KEM-512", pke: pke.Params{K: 2, Eta1: 3, Eta2: 2, DU: 10, DV: 4}}
}

// MLKEM768 returns the ML-KEM-768 parameter set (k=3).
func MLKEM768() Parameters {
	return Parameters{name: "ML-KEM-768", pke: pke.Params{K: 3, Eta1: 2, Eta2: 2, DU: 10, DV: 4}}
}

// MLKEM1024 returns the ML-KEM-1024 parameter set (k=4).
func MLKEM1024() Parameters {
	return Parameters{name: "ML-KEM-1024", pke: pke.Params{K: 4, Eta1: 2, Eta2: 2, DU: 11, DV: 5}}
}

// Name returns the parameter set's standard name, e.g. "ML-KEM-768".
func (p Parameters) Name() string { return p.name }

// K returns the module rank.
func (p Parameters) K() int { return p.pke.K }

// SizeEncapsulationKey returns |ek| = 384k+32 bytes.
func (p Parameters) SizeEncapsulationKey() int { return p.pke.SizePublicKey() }

// SizeDecapsulationKey returns |dk| = 768k+96 bytes.
func (p Parameters) SizeDecapsulationKey() int {
	return p.pke.SizePrivateKey() + p.SizeEncapsulationKey() + 32 + 32
}

// SizeCiphertext returns |ct| = 32*(du*k+dv) bytes.
func (p Parameters) SizeCiphertext() int { return p.pke.SizeCiphertext() }

// String implements fmt.Stringer.
func (p Parameters) String() string { return p.name }
