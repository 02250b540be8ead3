package sampling

import (
	"github.com/pqcrypto-go/mlkem/field"
	"github.com/pqcrypto-go/mlkem/ring"
)

// SampleNTT implements FIPS 203 Algorithm 7: it rejection-samples an
// NTT-domain polynomial from SHAKE128(rho || j || i), accepting any
// 12-bit lane strictly less than q. rho is always public (it is the
// matrix seed embedded in the encapsulation key), so branching on
// acceptance here does not leak anything the spec requires hiding
// (spec.md 4.3).
func SampleNTT(rho []byte, j, i byte) ring.NTTPoly {
	xof := NewXOF(rho, j, i)

	var p ring.NTTPoly
	count := 0
	for count < ring.N {
		b := xof.Squeeze3()

		d1 := uint16(b[0]) | (uint16(b[1]&0x0F) << 8)
		d2 := (uint16(b[1]) >> 4) | (uint16(b[2]) << 4)

		if uint32(d1) < uint32(field.Q) {
			p.Coeffs[count] = field.Element(d1)
			count++
		}
		if count < ring.N && uint32(d2) < uint32(field.Q) {
			p.Coeffs[count] = field.Element(d2)
			count++
		}
	}
	return p
}
