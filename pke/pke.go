// Package pke implements K-PKE, the IND-CPA public-key encryption
// scheme ML-KEM's Fujisaki-Okamoto-style wrapper (package mlkem) builds
// on (spec.md 4.5). K-PKE operates directly on polynomial vectors and
// matrices over Rq; package mlkem owns seed management, implicit
// rejection, and wire-format validation.
package pke

import (
	"github.com/pqcrypto-go/mlkem/codec"
	"github.com/pqcrypto-go/mlkem/ring"
	"github.com/pqcrypto-go/mlkem/sampling"
)

// Params is the subset of an ML-KEM parameter set K-PKE needs: the
// module rank and the three noise/rounding widths (spec.md 3).
type Params struct {
	K    int
	Eta1 int
	Eta2 int
	DU   int
	DV   int
}

// SizePublicKey is |ByteEncode_12(t-hat) || rho|.
func (p Params) SizePublicKey() int { return 384*p.K + 32 }

// SizePrivateKey is |ByteEncode_12(s-hat)|.
func (p Params) SizePrivateKey() int { return 384 * p.K }

// SizeCiphertext is |ByteEncode_du(c1) || ByteEncode_dv(c2)|.
func (p Params) SizeCiphertext() int { return 32 * (p.DU*p.K + p.DV) }

// expandA deterministically derives the public k x k matrix A-hat from
// rho (spec.md 4.5): A-hat[i][j] = SampleNTT(rho, j, i).
func expandA(p Params, rho []byte) ring.Matrix {
	a := ring.NewMatrix(p.K)
	for i := 0; i < p.K; i++ {
		for j := 0; j < p.K; j++ {
			a[i][j] = sampling.SampleNTT(rho, byte(j), byte(i))
		}
	}
	return a
}

// KeyGen implements FIPS 203 Algorithm 13: it derives (ekPKE, dkPKE)
// deterministically from the 32-byte seed d.
func KeyGen(p Params, d []byte) (ekPKE, dkPKE []byte) {
	seed := append(append([]byte{}, d...), byte(p.K))
	rho, sigma := sampling.G(seed)

	a := expandA(p, rho[:])

	nonce := byte(0)
	s := ring.NewVector(p.K)
	for i := range s {
		s[i] = sampling.SamplePolyCBD(p.Eta1, sigma[:], nonce)
		nonce++
	}
	e := ring.NewVector(p.K)
	for i := range e {
		e[i] = sampling.SamplePolyCBD(p.Eta1, sigma[:], nonce)
		nonce++
	}

	sHat := s.NTT()
	eHat := e.NTT()
	tHat := a.MulVec(sHat).Add(eHat)

	ekPKE = make([]byte, 0, p.SizePublicKey())
	for _, poly := range tHat {
		ekPKE = append(ekPKE, codec.EncodePoly(12, poly.Coeffs)...)
	}
	ekPKE = append(ekPKE, rho[:]...)

	dkPKE = make([]byte, 0, p.SizePrivateKey())
	for _, poly := range sHat {
		dkPKE = append(dkPKE, codec.EncodePoly(12, poly.Coeffs)...)
	}

	s.Zeroize()
	sHat.Zeroize()
	e.Zeroize()
	eHat.Zeroize()

	return ekPKE, dkPKE
}

// Encrypt implements FIPS 203 Algorithm 14: it encrypts the 32-byte
// message m under ekPKE using the 32-byte randomness r, returning the
// ciphertext bytes.
func Encrypt(p Params, ekPKE []byte, m [32]byte, r []byte) []byte {
	tHat := decodeNTTVector(p.K, ekPKE[:384*p.K])
	rho := ekPKE[384*p.K : 384*p.K+32]

	a := expandA(p, rho)

	nonce := byte(0)
	y := ring.NewVector(p.K)
	for i := range y {
		y[i] = sampling.SamplePolyCBD(p.Eta1, r, nonce)
		nonce++
	}
	e1 := ring.NewVector(p.K)
	for i := range e1 {
		e1[i] = sampling.SamplePolyCBD(p.Eta2, r, nonce)
		nonce++
	}
	e2 := sampling.SamplePolyCBD(p.Eta2, r, nonce)

	yHat := y.NTT()

	u := a.MulVecTranspose(yHat).InvNTT().Add(e1)

	muBits := codec.ByteDecode(1, m[:])
	mu := codec.DecompressPoly(1, muBits)

	vNTT := tHat.Dot(yHat)
	v := ring.InvNTT(vNTT).Add(e2).Add(ring.Poly{Coeffs: mu})

	ct := make([]byte, 0, p.SizeCiphertext())
	for _, poly := range u {
		ct = append(ct, codec.ByteEncode(p.DU, codec.CompressPoly(p.DU, poly.Coeffs))...)
	}
	ct = append(ct, codec.ByteEncode(p.DV, codec.CompressPoly(p.DV, v.Coeffs))...)

	y.Zeroize()
	yHat.Zeroize()
	e1.Zeroize()
	e2.Zeroize()

	return ct
}

// Decrypt implements FIPS 203 Algorithm 15: it recovers the 32-byte
// message from ct under dkPKE.
func Decrypt(p Params, dkPKE []byte, ct []byte) [32]byte {
	sHat := decodeNTTVector(p.K, dkPKE)

	c1Len := 32 * p.DU * p.K
	c1, c2 := ct[:c1Len], ct[c1Len:]

	u := make(ring.Vector, p.K)
	chunk := 32 * p.DU
	for i := 0; i < p.K; i++ {
		bits := codec.ByteDecode(p.DU, c1[i*chunk:(i+1)*chunk])
		u[i] = ring.Poly{Coeffs: codec.DecompressPoly(p.DU, bits)}
	}
	vBits := codec.ByteDecode(p.DV, c2)
	v := ring.Poly{Coeffs: codec.DecompressPoly(p.DV, vBits)}

	uHat := u.NTT()
	w := v.Sub(ring.InvNTT(sHat.Dot(uHat)))

	var m [32]byte
	copy(m[:], codec.ByteEncode(1, codec.CompressPoly(1, w.Coeffs)))

	uHat.Zeroize()
	return m
}

// decodeNTTVector decodes k consecutive 384-byte ByteEncode_12 chunks
// into an NTT-domain vector (t-hat or s-hat).
func decodeNTTVector(k int, in []byte) ring.NTTVector {
	out := make(ring.NTTVector, k)
	for i := 0; i < k; i++ {
		coeffs := codec.DecodePoly(12, in[i*384:(i+1)*384])
		out[i] = ring.NTTPoly{Coeffs: coeffs}
	}
	return out
}
