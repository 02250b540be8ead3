// Package codec implements the byte<->coefficient encodings FIPS 203
// needs around the ring: ByteEncode_d/ByteDecode_d bit-packing (spec.md
// 4.4) and the lossy Compress_d/Decompress_d rounding maps (spec.md
// 4.4). d ranges over {1,4,5,6,10,11,12} across the three parameter
// sets and the message encoding.
package codec

import "github.com/pqcrypto-go/mlkem/field"

// ByteEncode packs 256 d-bit values (each < 2^d) into 32*d bytes,
// little-endian low-bit-first within each d-bit field, per spec.md
// 4.4/6.
func ByteEncode(d int, values [256]uint16) []byte {
	out := make([]byte, 32*d)
	bitPos := 0
	for i := 0; i < 256; i++ {
		v := values[i]
		for b := 0; b < d; b++ {
			bit := (v >> uint(b)) & 1
			if bit != 0 {
				out[bitPos/8] |= 1 << uint(bitPos%8)
			}
			bitPos++
		}
	}
	return out
}

// ByteDecode unpacks 32*d bytes into 256 d-bit values. For d==12 the
// returned values are NOT further reduced mod q here — the d=12
// encaps-key validation in package mlkem is the layer that rejects
// lanes >= q (spec.md 4.4/4.7); callers that need reduced field
// elements (t-hat/s-hat decoding, via DecodePoly) call ByteDecodeMod
// instead. Ciphertext decoding uses ByteDecode followed by Decompress.
func ByteDecode(d int, in []byte) (values [256]uint16) {
	bitPos := 0
	for i := 0; i < 256; i++ {
		var v uint16
		for b := 0; b < d; b++ {
			byteIdx := bitPos / 8
			bitIdx := uint(bitPos % 8)
			bit := (in[byteIdx] >> bitIdx) & 1
			v |= uint16(bit) << uint(b)
			bitPos++
		}
		values[i] = v
	}
	return
}

// ByteDecodeMod decodes then reduces every lane mod q, for d==12
// private-key decoding and any other context that wants field elements
// rather than raw bit-widths.
func ByteDecodeMod(d int, in []byte) (values [256]field.Element) {
	raw := ByteDecode(d, in)
	for i, v := range raw {
		values[i] = field.Element(uint32(v) % uint32(field.Q))
	}
	return
}

// EncodePoly encodes a polynomial's canonical coefficients with
// ByteEncode_d.
func EncodePoly(d int, coeffs [256]field.Element) []byte {
	var v [256]uint16
	for i, c := range coeffs {
		v[i] = uint16(c)
	}
	return ByteEncode(d, v)
}

// DecodePoly decodes 32*d bytes into a polynomial's coefficients,
// reducing mod q (used for d==12 private-key/public-key coefficients).
func DecodePoly(d int, in []byte) (coeffs [256]field.Element) {
	return ByteDecodeMod(d, in)
}
