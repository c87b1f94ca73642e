// Package packet implements the fourteen MQTT v3.1.1 control packets as
// plain data records plus two operations: decode from a byte source,
// encode to a byte sequence. Small packets (ACK-like, signal-like) share a
// template (ack.go, signal.go); CONNECT, CONNACK, PUBLISH, SUBSCRIBE, and
// UNSUBSCRIBE are explicit. Decode dispatches on the fixed header's type
// nibble via a peekable decoder, exactly as the reference's
// TryFromIterator dispatch does.
package packet

import "github.com/axmq/mqttwire/wire"

// Type is the 4-bit packet-type code carried in the high nibble of the
// fixed header's first byte.
type Type uint8

const (
	TypeConnect     Type = 1
	TypeConnack     Type = 2
	TypePublish     Type = 3
	TypePuback      Type = 4
	TypePubrec      Type = 5
	TypePubrel      Type = 6
	TypePubcomp     Type = 7
	TypeSubscribe   Type = 8
	TypeSuback      Type = 9
	TypeUnsubscribe Type = 10
	TypeUnsuback    Type = 11
	TypePingreq     Type = 12
	TypePingresp    Type = 13
	TypeDisconnect  Type = 14
)

func (t Type) String() string {
	switch t {
	case TypeConnect:
		return "CONNECT"
	case TypeConnack:
		return "CONNACK"
	case TypePublish:
		return "PUBLISH"
	case TypePuback:
		return "PUBACK"
	case TypePubrec:
		return "PUBREC"
	case TypePubrel:
		return "PUBREL"
	case TypePubcomp:
		return "PUBCOMP"
	case TypeSubscribe:
		return "SUBSCRIBE"
	case TypeSuback:
		return "SUBACK"
	case TypeUnsubscribe:
		return "UNSUBSCRIBE"
	case TypeUnsuback:
		return "UNSUBACK"
	case TypePingreq:
		return "PINGREQ"
	case TypePingresp:
		return "PINGRESP"
	case TypeDisconnect:
		return "DISCONNECT"
	default:
		return "RESERVED"
	}
}

// Packet is the type-erased union over the fourteen control packets.
type Packet interface {
	// Type reports the packet's wire type code.
	Type() Type
	// Encode renders the packet to its wire bytes.
	Encode() []byte
}

// Decode reads one packet from src. It peeks the fixed header's type
// nibble to pick the matching variant decoder, then lets that decoder
// consume the (still-unread) header byte itself, exactly as the
// reference's dispatcher "pushes the byte back" via a peekable adapter.
// An unrecognized type nibble is a SpecViolation.
func Decode(src wire.Reader) (Packet, error) {
	d := wire.NewDecoder(src).Peekable()

	b, ok := d.PeekU8()
	if !ok {
		return nil, wire.ErrTruncated("stream ended before a packet header")
	}

	switch Type(b >> 4) {
	case TypeConnect:
		return DecodeConnect(d)
	case TypeConnack:
		return DecodeConnack(d)
	case TypePublish:
		return DecodePublish(d)
	case TypePuback:
		return decodeAckLike(d, TypePuback)
	case TypePubrec:
		return decodeAckLike(d, TypePubrec)
	case TypePubrel:
		return decodeAckLike(d, TypePubrel)
	case TypePubcomp:
		return decodeAckLike(d, TypePubcomp)
	case TypeSubscribe:
		return DecodeSubscribe(d)
	case TypeSuback:
		return decodeAckLike(d, TypeSuback)
	case TypeUnsubscribe:
		return DecodeUnsubscribe(d)
	case TypeUnsuback:
		return decodeAckLike(d, TypeUnsuback)
	case TypePingreq:
		return decodeSignalLike(d, TypePingreq)
	case TypePingresp:
		return decodeSignalLike(d, TypePingresp)
	case TypeDisconnect:
		return decodeSignalLike(d, TypeDisconnect)
	default:
		return nil, wire.ErrSpecViolation("unknown packet type nibble")
	}
}
