package wire

import "testing"

func FuzzRemainingLengthRoundTrip(f *testing.F) {
	for _, n := range []int{0, 1, 127, 128, 16383, 16384, 2097151, 2097152, MaxRemainingLength} {
		f.Add(n)
	}
	f.Fuzz(func(t *testing.T, n int) {
		if n < 0 || n > MaxRemainingLength {
			t.Skip()
		}
		encoded := encodeRemainingLength(nil, n)
		decoded, consumed, err := decodeRemainingLength(NewSliceReader(encoded))
		if err != nil {
			t.Fatalf("decode(encode(%d)) failed: %v", n, err)
		}
		if decoded != n {
			t.Fatalf("round-trip mismatch: encoded %d, decoded %d", n, decoded)
		}
		if consumed != len(encoded) {
			t.Fatalf("consumed %d bytes, expected %d", consumed, len(encoded))
		}
	})
}

func FuzzDecodeRemainingLength(f *testing.F) {
	f.Add([]byte{0x00})
	f.Add([]byte{0x7F})
	f.Add([]byte{0x80, 0x01})
	f.Add([]byte{0x80, 0x00})
	f.Add([]byte{0x80, 0x80, 0x00})
	f.Add([]byte{0xFF, 0xFF, 0xFF, 0x7F})
	f.Add([]byte{0xFF, 0xFF, 0xFF, 0xFF})
	f.Add([]byte{0x80, 0x80, 0x80, 0x80})
	f.Fuzz(func(t *testing.T, data []byte) {
		// Must never panic; every outcome is either a value plus a byte
		// count that does not exceed len(data), or a typed error.
		n, consumed, err := decodeRemainingLength(NewSliceReader(data))
		if err == nil {
			if n < 0 || n > MaxRemainingLength {
				t.Fatalf("accepted out-of-range value %d", n)
			}
			if consumed > len(data) || consumed > 4 {
				t.Fatalf("consumed %d bytes from %d-byte input", consumed, len(data))
			}
		}
	})
}
