package packet

import "github.com/axmq/mqttwire/wire"

// Unsubscribe carries a packet ID and a bare topic-filter sequence, read
// greedily until the remaining-length-limited region is exhausted.
type Unsubscribe struct {
	PacketID uint16
	Topics   [][]byte
}

// NewUnsubscribe builds an UNSUBSCRIBE.
func NewUnsubscribe(packetID uint16, topics [][]byte) *Unsubscribe {
	return &Unsubscribe{PacketID: packetID, Topics: topics}
}

func (u *Unsubscribe) Type() Type { return TypeUnsubscribe }

func (u *Unsubscribe) Encode() []byte {
	body := wire.NewLengthMeter().U16(u.PacketID).Topics(u.Topics).Total()
	return wire.NewEncoder().
		Header(uint8(TypeUnsubscribe), subscribeFlags).
		PacketLen(body).
		U16(u.PacketID).
		Topics(u.Topics).
		Out()
}

// DecodeUnsubscribe reads an UNSUBSCRIBE. The header flag nibble must be
// exactly 0010; any other value is a SpecViolation.
func DecodeUnsubscribe(d *wire.PeekableDecoder) (*Unsubscribe, error) {
	typ, flags, err := d.Header()
	if err != nil {
		return nil, err
	}
	if Type(typ) != TypeUnsubscribe {
		return nil, wire.ErrSpecViolation("header type does not match UNSUBSCRIBE")
	}
	if flags != subscribeFlags {
		return nil, wire.ErrSpecViolation("UNSUBSCRIBE header flag nibble must be 0010")
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
	seq := newTopicSeq()
	if err := limited.Topics(seq, newBytes); err != nil {
		return nil, err
	}

	topics := make([][]byte, 0, seq.Len())
	for _, t := range seq.AsSlice() {
		topics = append(topics, t.AsSlice())
	}

	return &Unsubscribe{PacketID: packetID, Topics: topics}, nil
}
