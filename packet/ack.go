package packet

import "github.com/axmq/mqttwire/wire"

// Ack is the shared record for every ACK-like packet: PUBACK, PUBREC,
// PUBREL, PUBCOMP, SUBACK, and UNSUBACK carry nothing but a 16-bit packet
// identifier and a zero flag nibble, so one record and one codec pair
// serve all six — the Go rendering of the reference's acklike! template.
// This also means SUBACK and UNSUBACK never carry the per-topic
// return-code/granted-QoS list a production MQTT 3.1.1 stack would
// attach; that simplification is carried over from the reference on
// purpose, not an oversight.
type Ack struct {
	typ      Type
	PacketID uint16
}

// NewPuback builds a PUBACK for packetID.
func NewPuback(packetID uint16) *Ack { return &Ack{typ: TypePuback, PacketID: packetID} }

// NewPubrec builds a PUBREC for packetID.
func NewPubrec(packetID uint16) *Ack { return &Ack{typ: TypePubrec, PacketID: packetID} }

// NewPubrel builds a PUBREL for packetID.
func NewPubrel(packetID uint16) *Ack { return &Ack{typ: TypePubrel, PacketID: packetID} }

// NewPubcomp builds a PUBCOMP for packetID.
func NewPubcomp(packetID uint16) *Ack { return &Ack{typ: TypePubcomp, PacketID: packetID} }

// NewSuback builds a SUBACK for packetID.
func NewSuback(packetID uint16) *Ack { return &Ack{typ: TypeSuback, PacketID: packetID} }

// NewUnsuback builds an UNSUBACK for packetID.
func NewUnsuback(packetID uint16) *Ack { return &Ack{typ: TypeUnsuback, PacketID: packetID} }

// Type reports which of the six ACK-like packets this value represents.
func (a *Ack) Type() Type { return a.typ }

// Encode renders the packet: header, remaining length 2, packet ID.
func (a *Ack) Encode() []byte {
	return wire.NewEncoder().
		Header(uint8(a.typ), [4]bool{false, false, false, false}).
		PacketLen(2).
		U16(a.PacketID).
		Out()
}

// decodeAckLike reads an ACK-like packet and asserts its type matches
// want. Remaining length must be exactly 2; any other value is a
// SpecViolation.
func decodeAckLike(d *wire.PeekableDecoder, want Type) (*Ack, error) {
	typ, _, err := d.Header()
	if err != nil {
		return nil, err
	}
	if Type(typ) != want {
		return nil, wire.ErrSpecViolation("header type does not match the dispatched ack-like variant")
	}
	n, err := d.PacketLen()
	if err != nil {
		return nil, err
	}
	if n != 2 {
		return nil, wire.ErrSpecViolation("ack-like remaining length must be 2")
	}
	packetID, err := d.U16()
	if err != nil {
		return nil, err
	}
	return &Ack{typ: want, PacketID: packetID}, nil
}
