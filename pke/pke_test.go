package pke

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

var allParams = []Params{
	{K: 2, Eta1: 3, Eta2: 2, DU: 10, DV: 4}, // ML-KEM-512
	{K: 3, Eta1: 2, Eta2: 2, DU: 10, DV: 4}, // ML-KEM-768
	{K: 4, Eta1: 2, Eta2: 2, DU: 11, DV: 5}, // ML-KEM-1024
}

func randomBytes(n int) []byte {
	b := make([]byte, n)
	rand.Read(b)
	return b
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	for _, p := range allParams {
		d := randomBytes(32)
		ekPKE, dkPKE := KeyGen(p, d)
		require.Len(t, ekPKE, p.SizePublicKey())
		require.Len(t, dkPKE, p.SizePrivateKey())

		var m [32]byte
		copy(m[:], randomBytes(32))
		r := randomBytes(32)

		ct := Encrypt(p, ekPKE, m, r)
		require.Len(t, ct, p.SizeCiphertext())

		got := Decrypt(p, dkPKE, ct)
		require.Equal(t, m, got)
	}
}

func TestEncryptIsDeterministicGivenCoins(t *testing.T) {
	p := allParams[1]
	d := make([]byte, 32)
	ekPKE, _ := KeyGen(p, d)

	var m [32]byte
	r := make([]byte, 32)

	ct1 := Encrypt(p, ekPKE, m, r)
	ct2 := Encrypt(p, ekPKE, m, r)
	require.Equal(t, ct1, ct2)
}
