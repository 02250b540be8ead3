package sampling

import (
	"testing"

	"github.com/pqcrypto-go/mlkem/field"
	"github.com/stretchr/testify/require"
)

func TestSampleNTTAllCoefficientsInRange(t *testing.T) {
	rho := make([]byte, 32)
	for i := range rho {
		rho[i] = byte(i)
	}
	p := SampleNTT(rho, 1, 2)
	for _, c := range p.Coeffs {
		require.Less(t, uint32(c), uint32(field.Q))
	}
}

func TestSampleNTTDeterministic(t *testing.T) {
	rho := make([]byte, 32)
	p1 := SampleNTT(rho, 0, 0)
	p2 := SampleNTT(rho, 0, 0)
	require.Equal(t, p1, p2)

	p3 := SampleNTT(rho, 0, 1)
	require.NotEqual(t, p1, p3)
}

func TestSamplePolyCBDBounded(t *testing.T) {
	sigma := make([]byte, 32)
	for _, eta := range []int{2, 3} {
		p := SamplePolyCBD(eta, sigma, 0)
		for _, c := range p.Coeffs {
			v := int32(c)
			if v > int32(field.Q)/2 {
				v -= int32(field.Q)
			}
			require.LessOrEqual(t, v, int32(eta))
			require.GreaterOrEqual(t, v, -int32(eta))
		}
	}
}

func TestPRFLength(t *testing.T) {
	out := PRF(64*3, make([]byte, 32), 5)
	require.Len(t, out, 192)
}

func TestGSplitsIntoTwoHalves(t *testing.T) {
	a, b := G([]byte("hello"))
	require.NotEqual(t, a, b)
}
