package sampling

import (
	"golang.org/x/crypto/sha3"
)

// G is FIPS 203's G function: SHA3-512 split into two 32-byte halves.
func G(parts ...[]byte) (a, b [32]byte) {
	h := sha3.New512()
	for _, p := range parts {
		h.Write(p)
	}
	sum := h.Sum(nil)
	copy(a[:], sum[:32])
	copy(b[:], sum[32:])
	return
}

// H is FIPS 203's H function: SHA3-256.
func H(parts ...[]byte) (out [32]byte) {
	h := sha3.New256()
	for _, p := range parts {
		h.Write(p)
	}
	copy(out[:], h.Sum(nil))
	return
}

// J is FIPS 203's J function: SHAKE256 squeezed to 32 bytes, used for
// implicit-rejection pseudorandom shared secrets.
func J(parts ...[]byte) (out [32]byte) {
	h := sha3.NewShake256()
	for _, p := range parts {
		h.Write(p)
	}
	h.Read(out[:])
	return
}

// PRF squeezes SHAKE256(s || b) to exactly outLen bytes, the keyed PRF
// spec.md 4.8 defines as PRF_eta(s, b).
func PRF(outLen int, s []byte, b byte) []byte {
	h := sha3.NewShake256()
	h.Write(s)
	h.Write([]byte{b})
	out := make([]byte, outLen)
	h.Read(out)
	return out
}

// XOF is the incrementally-squeezable SHAKE128 instance SampleNTT reads
// 3-byte chunks from, seeded with rho || j || i (spec.md 4.3).
type XOF struct {
	shake sha3.ShakeHash
}

// NewXOF seeds a fresh XOF with rho || j || i.
func NewXOF(rho []byte, j, i byte) *XOF {
	h := sha3.NewShake128()
	h.Write(rho)
	h.Write([]byte{j, i})
	return &XOF{shake: h}
}

// Squeeze3 reads the next 3 bytes from the XOF.
func (x *XOF) Squeeze3() (b [3]byte) {
	x.shake.Read(b[:])
	return
}
