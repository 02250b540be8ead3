package sampling

import (
	"github.com/pqcrypto-go/mlkem/field"
	"github.com/pqcrypto-go/mlkem/ring"
)

// SamplePolyCBD implements FIPS 203 Algorithm 8: it consumes 64*eta
// bytes from PRF_eta(sigma, nonce) and returns a polynomial whose
// coefficients follow the centered binomial distribution on
// {-eta,...,eta} reduced mod q. Every step is branchless: the bit
//-counting and subtraction run unconditionally over secret PRF output
// (spec.md 4.3, 5).
func SamplePolyCBD(eta int, sigma []byte, nonce byte) ring.Poly {
	buf := PRF(64*eta, sigma, nonce)

	var p ring.Poly

	// Read the buffer as a stream of 2*eta-bit groups; for each
	// coefficient, x = popcount(first eta bits), y = popcount(next eta
	// bits), result = x - y mod q.
	bitPos := 0
	for i := 0; i < ring.N; i++ {
		x := popcountBits(buf, bitPos, eta)
		bitPos += eta
		y := popcountBits(buf, bitPos, eta)
		bitPos += eta

		p.Coeffs[i] = field.Sub(field.Element(x), field.Element(y))
	}
	return p
}

// popcountBits counts the set bits among the `count` bits of buf
// starting at bit offset `start` (little-endian bit order within each
// byte, per spec.md 4.4's byte/coefficient convention). count is at
// most eta in {2,3}, always a compile-time-bounded public constant, so
// the loop bound itself is not secret-dependent even though the bits
// it reads are.
func popcountBits(buf []byte, start, count int) int {
	sum := 0
	for k := 0; k < count; k++ {
		pos := start + k
		byteIdx := pos / 8
		bitIdx := uint(pos % 8)
		sum += int((buf[byteIdx] >> bitIdx) & 1)
	}
	return sum
}
