package field

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mod(x int32) int32 {
	r := x % Q
	if r < 0 {
		r += Q
	}
	return r
}

func TestAddSubMatchSchoolbook(t *testing.T) {
	for a := int32(0); a < Q; a += 37 {
		for b := int32(0); b < Q; b += 41 {
			got := Add(Element(a), Element(b))
			require.Equal(t, Element(mod(a+b)), got)

			got = Sub(Element(a), Element(b))
			require.Equal(t, Element(mod(a-b)), got)
		}
	}
}

func TestMulMatchesSchoolbook(t *testing.T) {
	for a := int32(0); a < Q; a += 13 {
		for b := int32(0); b < Q; b += 17 {
			got := Mul(Element(a), Element(b))
			require.Equal(t, Element(mod(a*b)), got)
		}
	}
}

func TestNeg(t *testing.T) {
	for a := int32(0); a < Q; a += 19 {
		got := Neg(Element(a))
		require.Equal(t, Element(mod(-a)), got)
		require.Equal(t, Element(0), Add(Element(a), got))
	}
}

func TestBarrettReduceInRange(t *testing.T) {
	for _, x := range []int32{0, 1, Q - 1, Q, Q + 1, (Q - 1) * (Q - 1), -(Q - 1)} {
		r := BarrettReduce(x)
		require.Less(t, int32(r), Q)
		require.GreaterOrEqual(t, int32(r), int32(0))
		require.Equal(t, mod(x), int32(r))
	}
}

func TestMontgomeryRoundTrip(t *testing.T) {
	for a := int32(0); a < Q; a += 7 {
		e := Element(a)
		mont := int32(ToMontgomery(e))
		// MontMul(1, mont) should recover a, since
		// MontgomeryReduce(1 * a*R) = a*R*R^-1 = a mod Q.
		got := MontMul(Element(1), mont)
		require.Equal(t, e, got, "a=%d", a)
	}
}

func TestMontMulMatchesSchoolbook(t *testing.T) {
	for a := int32(1); a < Q; a += 29 {
		for b := int32(1); b < Q; b += 31 {
			bMont := int32(ToMontgomery(Element(b)))
			got := MontMul(Element(a), bMont)
			require.Equal(t, Element(mod(a*b)), got)
		}
	}
}
