// Package wire implements the streaming primitive codec: a pull-based
// Decoder, a push-based Encoder, and a LengthMeter that mirrors the
// Encoder's surface but only sums lengths. All three expose the same
// primitive set (u8, raw, u16, bitmap, header, packet length, length-
// prefixed bytes, optional variants, topic sequences, greedy remainder) so
// a packet type can predict its own encoded length before emitting it.
package wire

import "github.com/axmq/mqttwire/container"

// Decoder pulls MQTT primitives from a byte Reader.
type Decoder struct {
	src Reader
}

// NewDecoder wraps src for decoding.
func NewDecoder(src Reader) *Decoder {
	return &Decoder{src: src}
}

// U8 reads one byte, or reports KindTruncated.
func (d *Decoder) U8() (byte, error) {
	b, ok := d.src.Next()
	if !ok {
		return 0, ErrTruncated("expected one byte")
	}
	return b, nil
}

// Raw reads exactly n bytes, or reports KindTruncated.
func (d *Decoder) Raw(n int) ([]byte, error) {
	buf := make([]byte, n)
	for i := range buf {
		b, ok := d.src.Next()
		if !ok {
			return nil, ErrTruncated("raw field ended before all bytes were read")
		}
		buf[i] = b
	}
	return buf, nil
}

// U16 reads a big-endian 16-bit integer.
func (d *Decoder) U16() (uint16, error) {
	hi, err := d.U8()
	if err != nil {
		return 0, err
	}
	lo, err := d.U8()
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

// Bitmap reads one byte and unpacks it into 8 booleans, most-significant
// bit first.
func (d *Decoder) Bitmap() ([8]bool, error) {
	var bits [8]bool
	b, err := d.U8()
	if err != nil {
		return bits, err
	}
	for i := range bits {
		bits[i] = b&(1<<(7-uint(i))) != 0
	}
	return bits, nil
}

// Header reads the fixed-header byte, returning the type nibble and the
// four flag bits in [bit3, bit2, bit1, bit0] order.
func (d *Decoder) Header() (uint8, [4]bool, error) {
	b, err := d.U8()
	if err != nil {
		return 0, [4]bool{}, err
	}
	flags := [4]bool{
		b&0x08 != 0,
		b&0x04 != 0,
		b&0x02 != 0,
		b&0x01 != 0,
	}
	return b >> 4, flags, nil
}

// PacketLen reads the 1-4 heptet remaining-length field. See
// decodeRemainingLength for the exact acceptance/rejection rules.
func (d *Decoder) PacketLen() (int, error) {
	n, _, err := decodeRemainingLength(d.src)
	return n, err
}

// Bytes reads a u16 length followed by that many raw bytes into dst,
// extending it atomically. Length 0 yields an untouched (empty) dst.
func (d *Decoder) Bytes(dst container.ByteBuf) (container.ByteBuf, error) {
	n, err := d.U16()
	if err != nil {
		return dst, err
	}
	if n == 0 {
		return dst, nil
	}
	raw, err := d.Raw(int(n))
	if err != nil {
		return dst, err
	}
	if err := dst.Extend(raw); err != nil {
		return dst, ErrCapacityExhausted(err)
	}
	return dst, nil
}

// OptionalU16 reads a u16 iff cond is true; otherwise it consumes nothing
// and returns nil.
func (d *Decoder) OptionalU16(cond bool) (*uint16, error) {
	if !cond {
		return nil, nil
	}
	v, err := d.U16()
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// OptionalBytes reads a length-prefixed byte field into dst iff cond is
// true; otherwise it consumes nothing.
func (d *Decoder) OptionalBytes(cond bool, dst container.ByteBuf) (container.ByteBuf, error) {
	if !cond {
		return dst, nil
	}
	return d.Bytes(dst)
}

// RawRemainder greedily reads until the source is exhausted, appending
// every byte to dst. It is meant to be called only on a length-limited
// view (see Limit), since an unlimited source never reports exhaustion.
func (d *Decoder) RawRemainder(dst container.ByteBuf) (container.ByteBuf, error) {
	for {
		b, ok := d.src.Next()
		if !ok {
			return dst, nil
		}
		if err := dst.Push(b); err != nil {
			return dst, ErrCapacityExhausted(err)
		}
	}
}

// Limit returns a new Decoder that exposes only the next n bytes of d and
// appears exhausted beyond that. d itself must not be used again until the
// limited view has been fully consumed or discarded; Go has no linear-type
// enforcement for this, so it is an ownership-transfer discipline the
// caller must honor, exactly as in the reference implementation.
func (d *Decoder) Limit(n int) *Decoder {
	return &Decoder{src: &limitedReader{inner: d.src, remaining: n}}
}

// Peekable upgrades d to a PeekableDecoder, which additionally offers
// IsEmpty and PeekU8.
func (d *Decoder) Peekable() *PeekableDecoder {
	p := newPeekableReader(d.src)
	return &PeekableDecoder{Decoder: Decoder{src: p}, peek: p}
}

// PeekableDecoder is a Decoder with one-byte lookahead, required by topic
// sequence reads (which must know when the enclosing region is exhausted)
// and by type-erased dispatch (which must inspect the header byte without
// consuming it).
type PeekableDecoder struct {
	Decoder
	peek *peekableReader
}

// IsEmpty reports whether the source has no more bytes.
func (d *PeekableDecoder) IsEmpty() bool {
	return d.peek.IsEmpty()
}

// PeekU8 returns the next byte without consuming it.
func (d *PeekableDecoder) PeekU8() (byte, bool) {
	return d.peek.Peek()
}

// Topics reads topic (length-prefixed bytes, no QoS) entries until the
// source is exhausted, pushing each into seq. newTopic is called once per
// entry to obtain the ByteBuf backend that entry decodes into.
func (d *PeekableDecoder) Topics(seq container.Seq[container.ByteBuf], newTopic func() container.ByteBuf) error {
	for !d.IsEmpty() {
		topic, err := d.Bytes(newTopic())
		if err != nil {
			return err
		}
		if err := seq.Push(topic); err != nil {
			return ErrCapacityExhausted(err)
		}
	}
	return nil
}

// TopicsQos reads topic+QoS entries until the source is exhausted, pushing
// each into seq.
func (d *PeekableDecoder) TopicsQos(seq container.Seq[container.TopicQoS], newTopic func() container.ByteBuf) error {
	for !d.IsEmpty() {
		topic, err := d.Bytes(newTopic())
		if err != nil {
			return err
		}
		qos, err := d.U8()
		if err != nil {
			return err
		}
		if err := seq.Push(container.TopicQoS{Topic: topic, QoS: qos}); err != nil {
			return ErrCapacityExhausted(err)
		}
	}
	return nil
}
