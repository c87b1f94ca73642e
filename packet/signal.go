package packet

import "github.com/axmq/mqttwire/wire"

// Signal is the shared record for every signal-like packet: DISCONNECT,
// PINGREQ, and PINGRESP carry no body at all. The Go rendering of the
// reference's emptylike! template.
type Signal struct {
	typ Type
}

// NewDisconnect builds a DISCONNECT packet.
func NewDisconnect() *Signal { return &Signal{typ: TypeDisconnect} }

// NewPingreq builds a PINGREQ packet.
func NewPingreq() *Signal { return &Signal{typ: TypePingreq} }

// NewPingresp builds a PINGRESP packet.
func NewPingresp() *Signal { return &Signal{typ: TypePingresp} }

// Type reports which of the three signal-like packets this value represents.
func (s *Signal) Type() Type { return s.typ }

// Encode renders the packet: header, remaining length 0.
func (s *Signal) Encode() []byte {
	return wire.NewEncoder().
		Header(uint8(s.typ), [4]bool{false, false, false, false}).
		PacketLen(0).
		Out()
}

// decodeSignalLike reads a signal-like packet and asserts its type matches
// want. Remaining length must be exactly 0; any other value is a
// SpecViolation.
func decodeSignalLike(d *wire.PeekableDecoder, want Type) (*Signal, error) {
	typ, _, err := d.Header()
	if err != nil {
		return nil, err
	}
	if Type(typ) != want {
		return nil, wire.ErrSpecViolation("header type does not match the dispatched signal-like variant")
	}
	n, err := d.PacketLen()
	if err != nil {
		return nil, err
	}
	if n != 0 {
		return nil, wire.ErrSpecViolation("signal-like remaining length must be 0")
	}
	return &Signal{typ: want}, nil
}
