package consttime

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEqual(t *testing.T) {
	a := []byte{1, 2, 3, 4}
	b := []byte{1, 2, 3, 4}
	c := []byte{1, 2, 3, 5}

	require.Equal(t, byte(0xFF), Equal(a, b))
	require.Equal(t, byte(0x00), Equal(a, c))
}

func TestSelect(t *testing.T) {
	a := []byte{0xAA, 0xBB}
	b := []byte{0x11, 0x22}

	require.Equal(t, a, Select(0xFF, a, b))
	require.Equal(t, b, Select(0x00, a, b))
}
