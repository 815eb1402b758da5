package combo

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	orig := []int{1, 7, 23, 54, -3}

	b, err := Encode(orig)
	require.NoError(t, err)
	assert.Len(t, b, len(orig)*4)

	decoded, err := Decode(b)
	require.NoError(t, err)
	assert.Equal(t, orig, decoded)
}

func TestEncodeDecode_Empty(t *testing.T) {
	b, err := Encode(nil)
	require.NoError(t, err)
	assert.Empty(t, b)

	v, err := Decode(nil)
	require.NoError(t, err)
	assert.Empty(t, v)
}

func TestDecode_InvalidLength(t *testing.T) {
	_, err := Decode([]byte{1, 2, 3})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidEncoding))
}

func TestEncode_OutOfRange(t *testing.T) {
	_, err := Encode([]int{1 << 40})
	assert.Error(t, err)
}
