package combo

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// ErrInvalidEncoding is returned when a BLOB cannot be decoded into a
// combination.
var ErrInvalidEncoding = errors.New("combo: invalid encoding")

// Encode encodes a combination into a BLOB suitable for storage in SQLite.
// The encoding is a little-endian sequence of int32 values without a length
// prefix; the length is derived from the BLOB size on decode.
func Encode(combination []int) ([]byte, error) {
	if len(combination) == 0 {
		return nil, nil
	}
	b := make([]byte, len(combination)*4)
	for i, v := range combination {
		if v < math.MinInt32 || v > math.MaxInt32 {
			return nil, fmt.Errorf("combo: value %d out of int32 range", v)
		}
		binary.LittleEndian.PutUint32(b[i*4:], uint32(int32(v)))
	}
	return b, nil
}

// Decode decodes a BLOB produced by Encode back into a combination.
func Decode(b []byte) ([]int, error) {
	if len(b) == 0 {
		return nil, nil
	}
	if len(b)%4 != 0 {
		return nil, fmt.Errorf("%w: blob length %d (not multiple of 4)", ErrInvalidEncoding, len(b))
	}
	n := len(b) / 4
	out := make([]int, n)
	for i := 0; i < n; i++ {
		out[i] = int(int32(binary.LittleEndian.Uint32(b[i*4:])))
	}
	return out, nil
}
