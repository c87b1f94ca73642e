package wire

// maxFieldLen is the largest length a u16-length-prefixed field can carry.
const maxFieldLen = 0xFFFF

// Subscription is a topic paired with a requested QoS, as carried by
// SUBSCRIBE's topic+QoS sequence.
type Subscription struct {
	Topic []byte
	QoS   uint8
}

// Encoder builds an MQTT byte sequence. Every method appends to an internal
// buffer and returns the same Encoder so calls chain; this is the idiomatic
// Go rendering of the reference's consuming, iterator-chaining Encoder —
// materialization happens eagerly into the buffer rather than lazily on
// iteration, which is one of the realizations DESIGN NOTES explicitly
// sanctions ("a precomputed buffer ... the observable behavior is
// identical").
//
// Encoding never fails: a packet's fields were already validated (and, if
// needed, capacity-checked) when they were built or decoded, so Encoder
// only ever panics on programmer misuse (oversized fields), never returns
// an error.
type Encoder struct {
	buf []byte
}

// NewEncoder returns an empty Encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Raw appends b unchanged.
func (e *Encoder) Raw(b []byte) *Encoder {
	e.buf = append(e.buf, b...)
	return e
}

// U8 appends a single byte.
func (e *Encoder) U8(b byte) *Encoder {
	e.buf = append(e.buf, b)
	return e
}

// U16 appends v big-endian.
func (e *Encoder) U16(v uint16) *Encoder {
	e.buf = append(e.buf, byte(v>>8), byte(v))
	return e
}

// Bytes appends a u16 length followed by b.
//
// Panics if len(b) > 65535.
func (e *Encoder) Bytes(b []byte) *Encoder {
	if len(b) > maxFieldLen {
		panic("wire: byte field exceeds 65535 bytes")
	}
	return e.U16(uint16(len(b))).Raw(b)
}

// Bitmap packs 8 booleans into one byte, most-significant bit first.
func (e *Encoder) Bitmap(bits [8]bool) *Encoder {
	var b byte
	for i, set := range bits {
		if set {
			b |= 1 << (7 - uint(i))
		}
	}
	return e.U8(b)
}

// Header appends the fixed-header byte.
//
// Panics if typ > 15.
func (e *Encoder) Header(typ uint8, flags [4]bool) *Encoder {
	if typ > 15 {
		panic("wire: packet type is too large")
	}
	b := typ << 4
	if flags[0] {
		b |= 0x08
	}
	if flags[1] {
		b |= 0x04
	}
	if flags[2] {
		b |= 0x02
	}
	if flags[3] {
		b |= 0x01
	}
	return e.U8(b)
}

// PacketLen appends the 1-4 heptet remaining-length encoding of n.
//
// Panics if n >= 2^28.
func (e *Encoder) PacketLen(n int) *Encoder {
	e.buf = encodeRemainingLength(e.buf, n)
	return e
}

// OptionalU16 appends v if non-nil; otherwise it appends nothing.
func (e *Encoder) OptionalU16(v *uint16) *Encoder {
	if v != nil {
		return e.U16(*v)
	}
	return e
}

// OptionalBytes appends b as a length-prefixed field iff present is true.
func (e *Encoder) OptionalBytes(b []byte, present bool) *Encoder {
	if present {
		return e.Bytes(b)
	}
	return e
}

// Topics appends each topic as a length-prefixed field, concatenated with
// no count or separator.
//
// Panics if any topic exceeds 65535 bytes.
func (e *Encoder) Topics(topics [][]byte) *Encoder {
	for _, t := range topics {
		e.Bytes(t)
	}
	return e
}

// TopicsQos appends each (topic, QoS) pair as a length-prefixed topic
// followed by one QoS byte.
//
// Panics if any topic exceeds 65535 bytes.
func (e *Encoder) TopicsQos(subs []Subscription) *Encoder {
	for _, s := range subs {
		e.Bytes(s.Topic)
		e.U8(s.QoS)
	}
	return e
}

// Out materializes the accumulated byte sequence.
func (e *Encoder) Out() []byte {
	return e.buf
}
