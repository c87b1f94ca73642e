package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemainingLengthRoundTrip(t *testing.T) {
	cases := []int{0, 1, 127, 128, 16383, 16384, 2097151, 2097152, MaxRemainingLength}
	for _, n := range cases {
		encoded := encodeRemainingLength(nil, n)
		decoded, consumed, err := decodeRemainingLength(NewSliceReader(encoded))
		require.NoError(t, err)
		assert.Equal(t, n, decoded)
		assert.Equal(t, len(encoded), consumed)
	}
}

func TestRemainingLengthNormativeVectors(t *testing.T) {
	// §6/§8 boundary vectors.
	n, _, err := decodeRemainingLength(NewSliceReader([]byte{0x00}))
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	_, _, err = decodeRemainingLength(NewSliceReader([]byte{0x80, 0x00}))
	assertSpecViolation(t, err)

	n, _, err = decodeRemainingLength(NewSliceReader([]byte{0xFF, 0xFF, 0xFF, 0x7F}))
	require.NoError(t, err)
	assert.Equal(t, MaxRemainingLength, n)

	_, _, err = decodeRemainingLength(NewSliceReader([]byte{0xFF, 0xFF, 0xFF, 0xFF}))
	assertSpecViolation(t, err)
}

func TestRemainingLengthTruncated(t *testing.T) {
	_, _, err := decodeRemainingLength(NewSliceReader([]byte{0x80}))
	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, KindTruncated, kind)
}

func TestRemainingLengthEncodePanicsOnOverflow(t *testing.T) {
	assert.Panics(t, func() {
		encodeRemainingLength(nil, MaxRemainingLength+1)
	})
}

func TestBytesFieldLength0xFFFFRoundTrips(t *testing.T) {
	payload := make([]byte, 0xFFFF)
	for i := range payload {
		payload[i] = byte(i)
	}
	enc := NewEncoder().Bytes(payload).Out()

	dec := NewDecoder(NewSliceReader(enc))
	got, err := dec.Bytes(newTestBuf())
	require.NoError(t, err)
	assert.Equal(t, payload, got.AsSlice())
}

func assertSpecViolation(t *testing.T, err error) {
	t.Helper()
	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, KindSpecViolation, kind)
}
