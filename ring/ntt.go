package ring

import "github.com/pqcrypto-go/mlkem/field"

// zeta is the primitive 256th root of unity mod q fixed by FIPS 203.
const zeta = 17

// zetasMont[k] = (zeta^BitRev7(k) mod q), pre-scaled into Montgomery
// form, for k in [0,128): the table NTT and InvNTT walk in
// increasing/decreasing order respectively (spec.md 4.2). Butterflies
// multiply by these with field.MontMul, so the repeated
// twiddle-factor multiplications use Montgomery reduction while
// additions/subtractions stay in canonical form. Base multiplication
// uses Barrett (field.Mul) for the coefficient products and Montgomery
// for the multiplication by gammasMont below (spec.md 4.1: Montgomery
// for multiplications by precomputed constants, Barrett elsewhere).
//
// gammasMont[i] is zeta^(2*BitRev7(i)+1) mod q, Montgomery-scaled, the
// per-pair constant BaseMulAdd reduces modulo (x^2 - gammas[i]).
//
// Both tables are computed once at package init time by modular
// exponentiation rather than transcribed as literals: the values are a
// pure function of (zeta, q, BitRev7), and computing them in code keeps
// that relationship checkable instead of trusting a 128-entry magic
// table.
var zetasMont [128]int32
var gammasMont [128]int32

func init() {
	for k := 0; k < 128; k++ {
		zetasMont[k] = montForm(powMod(zeta, bitRev7(uint8(k))))
		gammasMont[k] = montForm(powMod(zeta, 2*bitRev7(uint8(k))+1))
	}
}

// montForm lifts a canonical field element into the Montgomery-scaled
// representative field.MontMul expects as its second operand.
func montForm(a field.Element) int32 {
	return int32(field.ToMontgomery(a))
}

// bitRev7 reverses the low 7 bits of x.
func bitRev7(x uint8) int {
	var r int
	for i := 0; i < 7; i++ {
		r = (r << 1) | int((x>>uint(i))&1)
	}
	return r
}

// powMod computes base^exp mod q via square-and-multiply. exp is always
// a small public compile-time-derived value (an NTT table index), never
// secret, so this need not be constant time.
func powMod(base field.Element, exp int) field.Element {
	r := field.Element(1)
	b := base
	for exp > 0 {
		if exp&1 == 1 {
			r = field.Mul(r, b)
		}
		b = field.Mul(b, b)
		exp >>= 1
	}
	return r
}

// NTT maps p into its NTT-domain image using the Cooley-Tukey
// decimation-in-time butterfly network from FIPS 203 Algorithm 9.
func NTT(p Poly) (out NTTPoly) {
	out.Coeffs = p.Coeffs
	f := out.Coeffs[:]

	k := 1
	for length := 128; length >= 2; length >>= 1 {
		for start := 0; start < N; start += 2 * length {
			z := zetasMont[k]
			k++
			for j := start; j < start+length; j++ {
				t := field.MontMul(f[j+length], z)
				f[j+length] = field.Sub(f[j], t)
				f[j] = field.Add(f[j], t)
			}
		}
	}
	return
}

// nInv is 128^-1 mod q, the final scaling factor InvNTT applies.
const nInv = field.Element(3303)

// InvNTT maps an NTT-domain polynomial back to the coefficient domain
// using the Gentleman-Sande butterfly network from FIPS 203 Algorithm 10.
func InvNTT(p NTTPoly) (out Poly) {
	out.Coeffs = p.Coeffs
	f := out.Coeffs[:]

	k := 127
	for length := 2; length <= 128; length <<= 1 {
		for start := 0; start < N; start += 2 * length {
			z := zetasMont[k]
			k--
			for j := start; j < start+length; j++ {
				t := f[j]
				f[j] = field.Add(t, f[j+length])
				f[j+length] = field.MontMul(field.Sub(f[j+length], t), z)
			}
		}
	}
	for i := range f {
		f[i] = field.Mul(f[i], nInv)
	}
	return
}

// BaseMulAdd computes acc += a (x) b, the NTT-domain product of a and
// b, via 128 independent degree-1-by-degree-1 multiplications modulo
// (x^2 - gammas[i]) (spec.md 4.2). Accumulating in place lets callers
// build a dot product of polynomial vectors without an intermediate
// allocation per term.
func BaseMulAdd(acc *NTTPoly, a, b NTTPoly) {
	for i := 0; i < 128; i++ {
		a0, a1 := a.Coeffs[2*i], a.Coeffs[2*i+1]
		b0, b1 := b.Coeffs[2*i], b.Coeffs[2*i+1]

		c0 := field.Add(field.Mul(a0, b0), field.MontMul(field.Mul(a1, b1), gammasMont[i]))
		c1 := field.Add(field.Mul(a0, b1), field.Mul(a1, b0))

		acc.Coeffs[2*i] = field.Add(acc.Coeffs[2*i], c0)
		acc.Coeffs[2*i+1] = field.Add(acc.Coeffs[2*i+1], c1)
	}
}

// BaseMul computes the NTT-domain product a (x) b.
func BaseMul(a, b NTTPoly) (r NTTPoly) {
	BaseMulAdd(&r, a, b)
	return
}
