package packet

import "github.com/axmq/mqttwire/wire"

// subscribeFlags is the fixed literal flag nibble 0010 required by both
// SUBSCRIBE and UNSUBSCRIBE, on encode and decode alike.
var subscribeFlags = [4]bool{false, false, true, false}

// Subscribe carries a packet ID and a topic filter + requested-QoS
// sequence, read greedily until the remaining-length-limited region is
// exhausted.
type Subscribe struct {
	PacketID uint16
	Topics   []wire.Subscription
}

// NewSubscribe builds a SUBSCRIBE.
func NewSubscribe(packetID uint16, topics []wire.Subscription) *Subscribe {
	return &Subscribe{PacketID: packetID, Topics: topics}
}

func (s *Subscribe) Type() Type { return TypeSubscribe }

func (s *Subscribe) Encode() []byte {
	body := wire.NewLengthMeter().U16(s.PacketID).TopicsQos(s.Topics).Total()
	return wire.NewEncoder().
		Header(uint8(TypeSubscribe), subscribeFlags).
		PacketLen(body).
		U16(s.PacketID).
		TopicsQos(s.Topics).
		Out()
}

// DecodeSubscribe reads a SUBSCRIBE. The header flag nibble must be
// exactly 0010; any other value is a SpecViolation.
func DecodeSubscribe(d *wire.PeekableDecoder) (*Subscribe, error) {
	typ, flags, err := d.Header()
	if err != nil {
		return nil, err
	}
	if Type(typ) != TypeSubscribe {
		return nil, wire.ErrSpecViolation("header type does not match SUBSCRIBE")
	}
	if flags != subscribeFlags {
		return nil, wire.ErrSpecViolation("SUBSCRIBE header flag nibble must be 0010")
	}

	n, err := d.PacketLen()
	if err != nil {
		return nil, err
	}
	limited := d.Limit(n).Peekable()

	packetID, err := limited.U16()
	if err != nil {
		return nil, err
	}
	seq := newTopicQosSeq()
	if err := limited.TopicsQos(seq, newBytes); err != nil {
		return nil, err
	}

	topics := make([]wire.Subscription, 0, seq.Len())
	for _, tq := range seq.AsSlice() {
		topics = append(topics, wire.Subscription{Topic: tq.Topic.AsSlice(), QoS: tq.QoS})
	}

	return &Subscribe{PacketID: packetID, Topics: topics}, nil
}
