package wire

// LengthMeter mirrors the Encoder's surface but only sums lengths, so a
// packet's Encode method can pre-compute the remaining-length field before
// emitting header, length, and body — no scratch buffer or double pass over
// the body bytes is needed. Shares Encoder's panic conditions.
type LengthMeter struct {
	total int
}

// NewLengthMeter returns a zero LengthMeter.
func NewLengthMeter() *LengthMeter {
	return &LengthMeter{}
}

// Raw accounts for len(b) bytes.
func (m *LengthMeter) Raw(b []byte) *LengthMeter {
	m.total += len(b)
	return m
}

// U8 accounts for one byte.
func (m *LengthMeter) U8(byte) *LengthMeter {
	m.total++
	return m
}

// U16 accounts for two bytes.
func (m *LengthMeter) U16(uint16) *LengthMeter {
	m.total += 2
	return m
}

// Bytes accounts for a u16 length prefix plus len(b) bytes.
//
// Panics if len(b) > 65535.
func (m *LengthMeter) Bytes(b []byte) *LengthMeter {
	if len(b) > maxFieldLen {
		panic("wire: byte field exceeds 65535 bytes")
	}
	m.total += 2 + len(b)
	return m
}

// Bitmap accounts for one byte.
func (m *LengthMeter) Bitmap([8]bool) *LengthMeter {
	m.total++
	return m
}

// Header accounts for one byte.
//
// Panics if typ > 15.
func (m *LengthMeter) Header(typ uint8, _ [4]bool) *LengthMeter {
	if typ > 15 {
		panic("wire: packet type is too large")
	}
	m.total++
	return m
}

// PacketLen accounts for the 1-4 bytes the remaining-length field of n
// would occupy.
//
// Panics if n >= 2^28.
func (m *LengthMeter) PacketLen(n int) *LengthMeter {
	m.total += sizeRemainingLength(n)
	return m
}

// OptionalU16 accounts for two bytes iff v is non-nil.
func (m *LengthMeter) OptionalU16(v *uint16) *LengthMeter {
	if v != nil {
		return m.U16(*v)
	}
	return m
}

// OptionalBytes accounts for b as a length-prefixed field iff present.
func (m *LengthMeter) OptionalBytes(b []byte, present bool) *LengthMeter {
	if present {
		return m.Bytes(b)
	}
	return m
}

// Topics accounts for each topic as a length-prefixed field.
func (m *LengthMeter) Topics(topics [][]byte) *LengthMeter {
	for _, t := range topics {
		m.Bytes(t)
	}
	return m
}

// TopicsQos accounts for each (topic, QoS) pair.
func (m *LengthMeter) TopicsQos(subs []Subscription) *LengthMeter {
	for _, s := range subs {
		m.Bytes(s.Topic)
		m.U8(s.QoS)
	}
	return m
}

// Total returns the accumulated length.
func (m *LengthMeter) Total() int {
	return m.total
}
