package mlkem

import (
	"fmt"

	"github.com/pqcrypto-go/mlkem/codec"
	"github.com/pqcrypto-go/mlkem/field"
	"github.com/pqcrypto-go/mlkem/sampling"
)

// EncapsulationKey is ek = ByteEncode_12(t-hat) || rho (spec.md 3, 6).
type EncapsulationKey struct {
	params Parameters
	raw    []byte
}

// Parameters returns the parameter set this key was created under.
func (ek *EncapsulationKey) Parameters() Parameters { return ek.params }

// Bytes returns the wire encoding of ek. The returned slice aliases
// ek's internal storage and must not be mutated.
func (ek *EncapsulationKey) Bytes() []byte { return ek.raw }

// ToBytes returns a copy of the wire encoding of ek (spec.md 6).
func (ek *EncapsulationKey) ToBytes() []byte {
	out := make([]byte, len(ek.raw))
	copy(out, ek.raw)
	return out
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (ek *EncapsulationKey) MarshalBinary() ([]byte, error) { return ek.ToBytes(), nil }

// String implements fmt.Stringer.
func (ek *EncapsulationKey) String() string {
	return fmt.Sprintf("mlkem.EncapsulationKey(%s)", ek.params)
}

// EncapsulationKeyFromBytes parses and validates an encapsulation key
// (spec.md 4.7): every 12-bit lane of the decoded t-hat must be < q,
// equivalent to requiring ByteEncode_12(ByteDecode_12(b)) == b.
func EncapsulationKeyFromBytes(params Parameters, b []byte) (*EncapsulationKey, error) {
	if len(b) != params.SizeEncapsulationKey() {
		return nil, fmt.Errorf("%w: want %d bytes, got %d", ErrInvalidKeyEncoding, params.SizeEncapsulationKey(), len(b))
	}
	if err := validateEncodedT(params.K(), b[:384*params.K()]); err != nil {
		return nil, err
	}
	raw := make([]byte, len(b))
	copy(raw, b)
	return &EncapsulationKey{params: params, raw: raw}, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler against the
// receiver's existing Parameters.
func (ek *EncapsulationKey) UnmarshalBinary(b []byte) error {
	parsed, err := EncapsulationKeyFromBytes(ek.params, b)
	if err != nil {
		return err
	}
	*ek = *parsed
	return nil
}

// validateEncodedT checks that every ByteEncode_12 lane across k
// consecutive 384-byte chunks is a canonical value < q.
func validateEncodedT(k int, b []byte) error {
	for i := 0; i < k; i++ {
		raw := codec.ByteDecode(12, b[i*384:(i+1)*384])
		for _, lane := range raw {
			if uint32(lane) >= uint32(field.Q) {
				return ErrInvalidKeyEncoding
			}
		}
	}
	return nil
}

// DecapsulationKey is dk = dkPKE || ek || H(ek) || z (spec.md 3, 6).
type DecapsulationKey struct {
	params Parameters
	dkPKE  []byte
	ek     *EncapsulationKey
	h      [32]byte
	z      [32]byte
}

// Parameters returns the parameter set this key was created under.
func (dk *DecapsulationKey) Parameters() Parameters { return dk.params }

// EncapsulationKey returns the encapsulation key embedded in dk, as
// Decaps needs to recompute ct' (spec.md 3).
func (dk *DecapsulationKey) EncapsulationKey() *EncapsulationKey { return dk.ek }

// ToBytes returns the wire encoding of dk (spec.md 6). The caller takes
// ownership of zeroizing the returned secret bytes (spec.md 9).
func (dk *DecapsulationKey) ToBytes() []byte {
	out := make([]byte, 0, dk.params.SizeDecapsulationKey())
	out = append(out, dk.dkPKE...)
	out = append(out, dk.ek.raw...)
	out = append(out, dk.h[:]...)
	out = append(out, dk.z[:]...)
	return out
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (dk *DecapsulationKey) MarshalBinary() ([]byte, error) { return dk.ToBytes(), nil }

// UnmarshalBinary implements encoding.BinaryUnmarshaler against the
// receiver's existing Parameters.
func (dk *DecapsulationKey) UnmarshalBinary(b []byte) error {
	parsed, err := DecapsulationKeyFromBytes(dk.params, b)
	if err != nil {
		return err
	}
	*dk = *parsed
	return nil
}

// String implements fmt.Stringer. It never prints key material.
func (dk *DecapsulationKey) String() string {
	return fmt.Sprintf("mlkem.DecapsulationKey(%s)", dk.params)
}

// Zeroize clears dk's secret material (spec.md 9). The embedded ek and
// h are public and are not scrubbed.
func (dk *DecapsulationKey) Zeroize() {
	for i := range dk.dkPKE {
		dk.dkPKE[i] = 0
	}
	for i := range dk.z {
		dk.z[i] = 0
	}
}

// DecapsulationKeyFromBytes parses and validates a decapsulation key
// (spec.md 4.7): the length must match, the embedded H(ek) must match
// SHA3-256 of the embedded ek bytes, and the embedded ek must itself
// pass encapsulation-key validation.
func DecapsulationKeyFromBytes(params Parameters, b []byte) (*DecapsulationKey, error) {
	if len(b) != params.SizeDecapsulationKey() {
		return nil, fmt.Errorf("%w: want %d bytes, got %d", ErrInvalidPrivateKey, params.SizeDecapsulationKey(), len(b))
	}

	skLen := 384 * params.K()
	ekLen := params.SizeEncapsulationKey()

	dkPKE := b[:skLen]
	ekBytes := b[skLen : skLen+ekLen]
	hBytes := b[skLen+ekLen : skLen+ekLen+32]
	zBytes := b[skLen+ekLen+32 : skLen+ekLen+64]

	gotH := sampling.H(ekBytes)
	if !bytesEqual(gotH[:], hBytes) {
		return nil, fmt.Errorf("%w: H(ek) mismatch", ErrInvalidPrivateKey)
	}

	ek, err := EncapsulationKeyFromBytes(params, ekBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: embedded ek invalid: %v", ErrInvalidPrivateKey, err)
	}

	dkPKECopy := make([]byte, len(dkPKE))
	copy(dkPKECopy, dkPKE)

	dk := &DecapsulationKey{params: params, dkPKE: dkPKECopy, ek: ek}
	copy(dk.h[:], hBytes)
	copy(dk.z[:], zBytes)
	return dk, nil
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Ciphertext is ct = ByteEncode_du(Compress_du(u)) || ByteEncode_dv(Compress_dv(v))
// (spec.md 3, 6).
type Ciphertext struct {
	params Parameters
	raw    []byte
}

// Bytes returns the wire encoding of ct. The returned slice aliases
// ct's internal storage and must not be mutated.
func (ct *Ciphertext) Bytes() []byte { return ct.raw }

// ToBytes returns a copy of the wire encoding of ct (spec.md 6).
func (ct *Ciphertext) ToBytes() []byte {
	out := make([]byte, len(ct.raw))
	copy(out, ct.raw)
	return out
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (ct *Ciphertext) MarshalBinary() ([]byte, error) { return ct.ToBytes(), nil }

// UnmarshalBinary implements encoding.BinaryUnmarshaler against the
// receiver's existing Parameters.
func (ct *Ciphertext) UnmarshalBinary(b []byte) error {
	parsed, err := CiphertextFromBytes(ct.params, b)
	if err != nil {
		return err
	}
	*ct = *parsed
	return nil
}

// String implements fmt.Stringer.
func (ct *Ciphertext) String() string {
	return fmt.Sprintf("mlkem.Ciphertext(%s)", ct.params)
}

// CiphertextFromBytes parses a ciphertext, checking only its length
// (spec.md 4.7 — every d_u/d_v lane is in-range by construction of the
// fixed-width decoder, so no further validation is possible or needed).
func CiphertextFromBytes(params Parameters, b []byte) (*Ciphertext, error) {
	if len(b) != params.SizeCiphertext() {
		return nil, fmt.Errorf("%w: want %d bytes, got %d", ErrInvalidCiphertextLength, params.SizeCiphertext(), len(b))
	}
	raw := make([]byte, len(b))
	copy(raw, b)
	return &Ciphertext{params: params, raw: raw}, nil
}
