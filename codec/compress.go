package codec

import "github.com/pqcrypto-go/mlkem/field"

// Compress maps a canonical field element x in [0,q) to a d-bit value
// y = round(2^d/q * x) mod 2^d, ties rounded toward +infinity (spec.md
// 4.4). Implemented with exact integer arithmetic: adding q/2 before
// flooring the division turns floor-division into round-half-up.
func Compress(d int, x field.Element) uint16 {
	num := uint64(x) << uint(d)
	num += uint64(field.Q) / 2
	y := num / uint64(field.Q)
	return uint16(y) & ((1 << uint(d)) - 1)
}

// Decompress maps a d-bit value y back to a field element
// round(q/2^d * y), the right inverse of Compress within the rounding
// error bound spec.md 8 (property 5) states.
func Decompress(d int, y uint16) field.Element {
	num := uint64(y) * uint64(field.Q)
	num += 1 << uint(d-1)
	x := num >> uint(d)
	return field.Element(x)
}

// CompressPoly applies Compress coefficient-wise.
func CompressPoly(d int, coeffs [256]field.Element) (out [256]uint16) {
	for i, c := range coeffs {
		out[i] = Compress(d, c)
	}
	return
}

// DecompressPoly applies Decompress coefficient-wise.
func DecompressPoly(d int, values [256]uint16) (out [256]field.Element) {
	for i, v := range values {
		out[i] = Decompress(d, v)
	}
	return
}
