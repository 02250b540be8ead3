// Package ring implements Rq = Z_q[x]/(x^256+1) polynomial arithmetic:
// the NTT, its inverse, and base multiplication of NTT-domain
// polynomials, plus the vector/matrix shapes K-PKE builds on top of a
// single polynomial.
//
// The domain a polynomial lives in — coefficient ("normal") space or
// NTT space — is encoded as a distinct Go type rather than a runtime
// flag (spec.md 9): Poly and NTTPoly are different types, and the only
// way to move between them is NTT/InvNTT. Ring-level multiplication
// (BaseMulAdd) only accepts NTTPoly operands, so a caller cannot
// accidentally multiply coefficient-domain polynomials the way base
// multiplication expects NTT-domain ones.
package ring

import "github.com/pqcrypto-go/mlkem/field"

// N is the ring degree, fixed by FIPS 203 for every parameter set.
const N = 256

// Poly is a polynomial in Rq in normal (coefficient) domain.
type Poly struct {
	Coeffs [N]field.Element
}

// NTTPoly is the NTT-domain image of a Poly: 128 independent degree-1
// pairs, one per quadratic factor of x^256+1.
type NTTPoly struct {
	Coeffs [N]field.Element
}

// Add returns p+q coefficient-wise.
func (p Poly) Add(q Poly) (r Poly) {
	for i := range r.Coeffs {
		r.Coeffs[i] = field.Add(p.Coeffs[i], q.Coeffs[i])
	}
	return
}

// Sub returns p-q coefficient-wise.
func (p Poly) Sub(q Poly) (r Poly) {
	for i := range r.Coeffs {
		r.Coeffs[i] = field.Sub(p.Coeffs[i], q.Coeffs[i])
	}
	return
}

// Add returns p+q coefficient-wise in the NTT domain.
func (p NTTPoly) Add(q NTTPoly) (r NTTPoly) {
	for i := range r.Coeffs {
		r.Coeffs[i] = field.Add(p.Coeffs[i], q.Coeffs[i])
	}
	return
}

// Sub returns p-q coefficient-wise in the NTT domain.
func (p NTTPoly) Sub(q NTTPoly) (r NTTPoly) {
	for i := range r.Coeffs {
		r.Coeffs[i] = field.Sub(p.Coeffs[i], q.Coeffs[i])
	}
	return
}

// Zeroize overwrites a secret-bearing polynomial's coefficients, per
// spec.md 9's zeroization requirement for intermediate secret
// polynomials. Public-only polynomials need not call this.
func (p *Poly) Zeroize() {
	for i := range p.Coeffs {
		p.Coeffs[i] = 0
	}
}

// Zeroize overwrites a secret-bearing NTT-domain polynomial's
// coefficients.
func (p *NTTPoly) Zeroize() {
	for i := range p.Coeffs {
		p.Coeffs[i] = 0
	}
}
