package packet

import "github.com/axmq/mqttwire/wire"

// Connack is the broker's response to CONNECT.
type Connack struct {
	// SessionPresent is bit 0 of the ack-flags byte; bits 1..7 are
	// reserved and always emitted as zero.
	SessionPresent bool
	ReturnCode     uint8
}

// NewConnack builds a CONNACK.
func NewConnack(sessionPresent bool, returnCode uint8) *Connack {
	return &Connack{SessionPresent: sessionPresent, ReturnCode: returnCode}
}

func (c *Connack) Type() Type { return TypeConnack }

func (c *Connack) Encode() []byte {
	flags := [8]bool{false, false, false, false, false, false, false, c.SessionPresent}
	body := wire.NewLengthMeter().Bitmap(flags).U8(c.ReturnCode).Total()
	return wire.NewEncoder().
		Header(uint8(TypeConnack), [4]bool{false, false, false, false}).
		PacketLen(body).
		Bitmap(flags).
		U8(c.ReturnCode).
		Out()
}

// DecodeConnack reads a CONNACK. Remaining length must be exactly 2;
// only bit 0 of the ack-flags byte is inspected, the rest are ignored.
func DecodeConnack(d *wire.PeekableDecoder) (*Connack, error) {
	typ, _, err := d.Header()
	if err != nil {
		return nil, err
	}
	if Type(typ) != TypeConnack {
		return nil, wire.ErrSpecViolation("header type does not match CONNACK")
	}
	n, err := d.PacketLen()
	if err != nil {
		return nil, err
	}
	if n != 2 {
		return nil, wire.ErrSpecViolation("CONNACK remaining length must be 2")
	}
	flags, err := d.Bitmap()
	if err != nil {
		return nil, err
	}
	returnCode, err := d.U8()
	if err != nil {
		return nil, err
	}
	return &Connack{SessionPresent: flags[7], ReturnCode: returnCode}, nil
}
