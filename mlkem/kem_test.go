package mlkem

import (
	"crypto/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pqcrypto-go/mlkem/sampling"
	"github.com/stretchr/testify/require"
)

func allParams() []Parameters {
	return []Parameters{MLKEM512(), MLKEM768(), MLKEM1024()}
}

// scenario (a): fixed all-zero seeds are deterministic and reproducible
// across runs.
func TestDeterministicFixedSeeds(t *testing.T) {
	var d, z, m [32]byte // all-zero

	for _, params := range allParams() {
		t.Run(params.Name(), func(t *testing.T) {
			ek1, dk1 := KeyGenFromSeed(params, d, z)
			ek2, dk2 := KeyGenFromSeed(params, d, z)
			require.Equal(t, ek1.Bytes(), ek2.Bytes())
			require.Equal(t, dk1.ToBytes(), dk2.ToBytes())

			ct1, k1 := EncapsFromSeed(ek1, m)
			ct2, k2 := EncapsFromSeed(ek2, m)
			require.Equal(t, ct1.Bytes(), ct2.Bytes())
			require.Equal(t, k1, k2)
		})
	}
}

// scenario (b): honest flow produces matching shared secrets.
func TestHonestFlow(t *testing.T) {
	for _, params := range allParams() {
		t.Run(params.Name(), func(t *testing.T) {
			ek, dk, err := KeyGen(params, rand.Reader)
			require.NoError(t, err)

			ct, k, err := Encaps(ek, rand.Reader)
			require.NoError(t, err)

			kPrime := Decaps(dk, ct)
			require.Equal(t, k, kPrime)
		})
	}
}

// scenario (c): tampering with a single bit of ct triggers implicit
// rejection, yielding J(z||ct') rather than the honest key.
func TestTamperedCiphertextImplicitRejection(t *testing.T) {
	params := MLKEM768()
	var d, z, m [32]byte
	for i := range z {
		z[i] = 0x42
	}

	ek, dk := KeyGenFromSeed(params, d, z)
	ct, k := EncapsFromSeed(ek, m)

	tampered := ct.ToBytes()
	tampered[0] ^= 0x01
	ctPrime, err := CiphertextFromBytes(params, tampered)
	require.NoError(t, err)

	got := Decaps(dk, ctPrime)
	require.NotEqual(t, k, got)

	want := sampling.J(z[:], ctPrime.Bytes())
	require.Equal(t, want, got)
}

// scenario (d): decapsulating under the wrong key yields an unrelated,
// non-erroring result.
func TestWrongKeyNoError(t *testing.T) {
	params := MLKEM1024()
	var d1, z1, d2, z2, m [32]byte
	d2[0] = 1
	z2[0] = 1

	ek1, _ := KeyGenFromSeed(params, d1, z1)
	_, dk2 := KeyGenFromSeed(params, d2, z2)

	ct, k := EncapsFromSeed(ek1, m)
	got := Decaps(dk2, ct)

	require.NotEqual(t, k, got)
}

// scenario (e): a too-short ciphertext buffer is rejected by length,
// never panics.
func TestCiphertextLengthMismatch(t *testing.T) {
	params := MLKEM512()
	short := make([]byte, params.SizeCiphertext()-1)
	_, err := CiphertextFromBytes(params, short)
	require.ErrorIs(t, err, ErrInvalidCiphertextLength)
}

// scenario (f): an out-of-range 12-bit coefficient in an encapsulation
// key is rejected.
func TestEncapsulationKeyOutOfRangeCoefficient(t *testing.T) {
	params := MLKEM512()
	var d, z [32]byte
	ek, _ := KeyGenFromSeed(params, d, z)

	b := ek.ToBytes()
	// Force the first 12-bit lane to 3329 (== q), out of range.
	b[0] = 0x01
	b[1] = 0x0D // low nibble 0xD -> lane = 0x01 | (0x0D&0xF)<<8 = 0x0D01 = 3329

	_, err := EncapsulationKeyFromBytes(params, b)
	require.ErrorIs(t, err, ErrInvalidKeyEncoding)
}

// dk integrity: mutating the embedded H(ek) field of a serialized dk
// causes parsing to fail.
func TestDecapsulationKeyHashMismatch(t *testing.T) {
	params := MLKEM512()
	var d, z [32]byte
	_, dk := KeyGenFromSeed(params, d, z)

	b := dk.ToBytes()
	hOffset := 384*params.K() + params.SizeEncapsulationKey()
	b[hOffset] ^= 0xFF

	_, err := DecapsulationKeyFromBytes(params, b)
	require.ErrorIs(t, err, ErrInvalidPrivateKey)
}

func TestKeyAndCiphertextRoundTrip(t *testing.T) {
	for _, params := range allParams() {
		t.Run(params.Name(), func(t *testing.T) {
			ek, dk, err := KeyGen(params, rand.Reader)
			require.NoError(t, err)

			ekBytes := ek.ToBytes()
			ek2, err := EncapsulationKeyFromBytes(params, ekBytes)
			require.NoError(t, err)
			if diff := cmp.Diff(ekBytes, ek2.ToBytes()); diff != "" {
				t.Fatalf("encapsulation key round-trip mismatch (-want +got):\n%s", diff)
			}

			dkBytes := dk.ToBytes()
			dk2, err := DecapsulationKeyFromBytes(params, dkBytes)
			require.NoError(t, err)
			if diff := cmp.Diff(dkBytes, dk2.ToBytes()); diff != "" {
				t.Fatalf("decapsulation key round-trip mismatch (-want +got):\n%s", diff)
			}

			ct, k, err := Encaps(ek2, rand.Reader)
			require.NoError(t, err)

			ctBytes := ct.ToBytes()
			ct2, err := CiphertextFromBytes(params, ctBytes)
			require.NoError(t, err)

			got := Decaps(dk2, ct2)
			require.Equal(t, k, got)
		})
	}
}

func TestDecapsWithSeedRecoversMessage(t *testing.T) {
	params := MLKEM768()
	var d, z, m [32]byte
	m[0] = 7

	ek, dk := KeyGenFromSeed(params, d, z)
	ct, k := EncapsFromSeed(ek, m)

	gotK, gotM := DecapsWithSeed(dk, ct)
	require.Equal(t, k, gotK)
	require.Equal(t, m, gotM)
}
