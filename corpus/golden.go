package corpus

import "context"

// Golden returns the six normative end-to-end scenarios from spec.md §8,
// as hex-decoded wire captures ready to feed into packet.Decode or a
// fuzz seed corpus.
func Golden() []Vector {
	return []Vector{
		{Name: "puback", Kind: "PUBACK", Wire: []byte{0x40, 0x02, 0x04, 0x07}},
		{Name: "disconnect", Kind: "DISCONNECT", Wire: []byte{0xE0, 0x00}},
		{
			Name: "connect-basic", Kind: "CONNECT",
			Wire: []byte{
				0x10, 0x10,
				0x00, 0x04, 'M', 'Q', 'T', 'T', 0x04,
				0x00,
				0x00, 0x1E,
				0x00, 0x04, 't', 'e', 's', 't',
			},
		},
		{
			Name: "connect-full", Kind: "CONNECT",
			Wire: []byte{
				0x10, 0x3D,
				0x00, 0x04, 'M', 'Q', 'T', 'T', 0x04,
				0xEE,
				0xFF, 0xFF,
				0x00, 0x08, 'c', 'l', 'i', 'e', 'n', 't', 'i', 'd',
				0x00, 0x08, 'l', 'a', 's', 't', 'w', 'i', 'l', 'l',
				0x00, 0x09, 't', 'e', 's', 't', 'o', 'l', 'o', 'p', 'e',
				0x00, 0x08, 'u', 's', 'e', 'r', 'n', 'a', 'm', 'e',
				0x00, 0x08, 'p', 'a', 's', 's', 'w', 'o', 'r', 'd',
			},
		},
		{
			Name: "publish-qos2", Kind: "PUBLISH",
			Wire: []byte{
				0x34, 0x0D,
				0x00, 0x04, 'T', 'e', 's', 't',
				0x04, 0x07,
				'O', 'l', 'o', 'p', 'e',
			},
		},
		{
			Name: "subscribe-two-topic", Kind: "SUBSCRIBE",
			Wire: []byte{
				0x82, 0x11,
				0x04, 0x07,
				0x00, 0x04, 't', 'e', 's', 't', 0x01,
				0x00, 0x05, 'o', 'l', 'o', 'p', 'e', 0x02,
			},
		},
	}
}

// Negative returns the five scenarios spec.md §8 requires the decoder to
// reject, alongside the expected wire.Kind (as a string, so this package
// doesn't need to import wire just for a label).
func Negative() []Vector {
	return []Vector{
		{Name: "connack-bad-length", Kind: "SpecViolation", Wire: []byte{0x20, 0x01, 0x00}},
		{
			Name: "connect-wrong-protocol-name", Kind: "SpecViolation",
			Wire: []byte{
				0x10, 0x10,
				0x00, 0x04, 'M', 'Q', 'T', 'P', 0x04,
				0x00,
				0x00, 0x1E,
				0x00, 0x04, 't', 'e', 's', 't',
			},
		},
		{
			Name: "connect-wrong-protocol-level", Kind: "UnsupportedVersion",
			Wire: []byte{
				0x10, 0x10,
				0x00, 0x04, 'M', 'Q', 'T', 'T', 0x05,
				0x00,
				0x00, 0x1E,
				0x00, 0x04, 't', 'e', 's', 't',
			},
		},
		{
			Name: "subscribe-wrong-flag-nibble", Kind: "SpecViolation",
			Wire: []byte{
				0x80, 0x0E,
				0x04, 0x07,
				0x00, 0x09, 't', 'e', 's', 't', 'o', 'l', 'o', 'p', 'e', 0x01,
			},
		},
		{Name: "unknown-packet-type", Kind: "SpecViolation", Wire: []byte{0xF0, 0x00}},
	}
}

// Seed saves every Golden vector into s under its scenario Name.
func Seed(ctx context.Context, s Store[Vector]) error {
	for _, v := range Golden() {
		if err := s.Save(ctx, v.Name, v); err != nil {
			return err
		}
	}
	return nil
}
