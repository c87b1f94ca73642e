package packet

import "github.com/axmq/mqttwire/wire"

// Publish carries application data. PacketID is present iff QoS > 0.
type Publish struct {
	Dup      bool
	QoS      uint8
	Retain   bool
	Topic    []byte
	PacketID *uint16
	Payload  []byte
}

// NewPublish builds a QoS-0 PUBLISH with no packet ID.
func NewPublish(topic []byte, retain bool) *Publish {
	return &Publish{Topic: topic, Retain: retain}
}

// WithQoS returns a copy enriched with a non-zero QoS and its packet ID.
func (p *Publish) WithQoS(qos uint8, packetID uint16, dup bool) *Publish {
	cp := *p
	cp.Dup = dup
	cp.QoS = qos
	cp.PacketID = &packetID
	return &cp
}

// WithPayload returns a copy carrying payload.
func (p *Publish) WithPayload(payload []byte) *Publish {
	cp := *p
	cp.Payload = payload
	return &cp
}

func (p *Publish) Type() Type { return TypePublish }

func (p *Publish) Encode() []byte {
	flags := [4]bool{p.Dup, p.QoS>>1 != 0, p.QoS&1 != 0, p.Retain}

	body := wire.NewLengthMeter().
		Bytes(p.Topic).
		OptionalU16(p.PacketID).
		Raw(p.Payload).
		Total()

	return wire.NewEncoder().
		Header(uint8(TypePublish), flags).
		PacketLen(body).
		Bytes(p.Topic).
		OptionalU16(p.PacketID).
		Raw(p.Payload).
		Out()
}

// DecodePublish reads a PUBLISH: dup/qos/retain live in the header flags,
// then topic, an optional packet ID present iff qos>0, then payload
// greedily reading to the end of the remaining-length-limited region.
func DecodePublish(d *wire.PeekableDecoder) (*Publish, error) {
	typ, flags, err := d.Header()
	if err != nil {
		return nil, err
	}
	if Type(typ) != TypePublish {
		return nil, wire.ErrSpecViolation("header type does not match PUBLISH")
	}
	dup, qos0, qos1, retain := flags[0], flags[1], flags[2], flags[3]
	qos := uint8(0)
	if qos0 {
		qos |= 0x02
	}
	if qos1 {
		qos |= 0x01
	}

	n, err := d.PacketLen()
	if err != nil {
		return nil, err
	}
	limited := d.Limit(n)

	topicBuf, err := limited.Bytes(newBytes())
	if err != nil {
		return nil, err
	}
	packetID, err := limited.OptionalU16(qos > 0)
	if err != nil {
		return nil, err
	}
	payloadBuf, err := limited.RawRemainder(newBytes())
	if err != nil {
		return nil, err
	}

	return &Publish{
		Dup:      dup,
		QoS:      qos,
		Retain:   retain,
		Topic:    topicBuf.AsSlice(),
		PacketID: packetID,
		Payload:  payloadBuf.AsSlice(),
	}, nil
}
