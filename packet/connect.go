package packet

import (
	"bytes"

	"github.com/axmq/mqttwire/wire"
)

// protocolName and protocolLevel are the fixed literal bytes every
// CONNECT packet carries: 00 04 "MQTT" 04.
var protocolName = []byte{0x00, 0x04, 'M', 'Q', 'T', 'T'}

const protocolLevel = 0x04

// Will is a CONNECT packet's optional last-will group. Both Topic and
// Message are present iff the will flag is set; decoding reads both or
// neither, irrespective of QoS bits.
type Will struct {
	Topic   []byte
	Message []byte
	QoS     uint8
	Retain  bool
}

// Connect is the client's session-establishment packet.
type Connect struct {
	KeepAliveSecs uint16
	CleanSession  bool
	ClientID      []byte
	Will          *Will
	Username      []byte
	HasUsername   bool
	Password      []byte
	HasPassword   bool
}

// NewConnect builds a bare CONNECT with no will and no credentials.
func NewConnect(clientID []byte, keepAliveSecs uint16, cleanSession bool) *Connect {
	return &Connect{ClientID: clientID, KeepAliveSecs: keepAliveSecs, CleanSession: cleanSession}
}

// WithWill returns a copy enriched with a last-will group.
func (c *Connect) WithWill(topic, message []byte, qos uint8, retain bool) *Connect {
	cp := *c
	cp.Will = &Will{Topic: topic, Message: message, QoS: qos, Retain: retain}
	return &cp
}

// WithUsername returns a copy enriched with a username.
func (c *Connect) WithUsername(username []byte) *Connect {
	cp := *c
	cp.Username = username
	cp.HasUsername = true
	return &cp
}

// WithPassword returns a copy enriched with a password.
func (c *Connect) WithPassword(password []byte) *Connect {
	cp := *c
	cp.Password = password
	cp.HasPassword = true
	return &cp
}

func (c *Connect) Type() Type { return TypeConnect }

func (c *Connect) connectFlags() [8]bool {
	willFlag := c.Will != nil
	var willRetain, willQosHi, willQosLo bool
	if willFlag {
		willRetain = c.Will.Retain
		willQosHi = c.Will.QoS>>1 != 0
		willQosLo = c.Will.QoS&1 != 0
	}
	// MSB->LSB: [user, pass, will_retain, will_qos_hi, will_qos_lo, will_flag, clean_session, 0]
	return [8]bool{
		c.HasUsername,
		c.HasPassword,
		willRetain,
		willQosHi,
		willQosLo,
		willFlag,
		c.CleanSession,
		false,
	}
}

func (c *Connect) Encode() []byte {
	flags := c.connectFlags()

	meter := wire.NewLengthMeter().
		Raw(protocolName).
		U8(protocolLevel).
		Bitmap(flags).
		U16(c.KeepAliveSecs).
		Bytes(c.ClientID)
	if c.Will != nil {
		meter = meter.Bytes(c.Will.Topic).Bytes(c.Will.Message)
	}
	meter = meter.OptionalBytes(c.Username, c.HasUsername).OptionalBytes(c.Password, c.HasPassword)
	body := meter.Total()

	enc := wire.NewEncoder().
		Header(uint8(TypeConnect), [4]bool{false, false, false, false}).
		PacketLen(body).
		Raw(protocolName).
		U8(protocolLevel).
		Bitmap(flags).
		U16(c.KeepAliveSecs).
		Bytes(c.ClientID)
	if c.Will != nil {
		enc = enc.Bytes(c.Will.Topic).Bytes(c.Will.Message)
	}
	enc = enc.OptionalBytes(c.Username, c.HasUsername).OptionalBytes(c.Password, c.HasPassword)
	return enc.Out()
}

// DecodeConnect reads a CONNECT. The protocol name must match "MQTT"
// exactly (else SpecViolation); the protocol level must be 0x04 (else
// UnsupportedVersion, a distinct kind so a server can answer CONNACK with
// the protocol-mismatch return code instead of dropping the connection).
// will_topic and will_message are both read iff the will flag is set;
// per an explicit open question, no stricter error is invented for a
// will-flagged peer that sends only one of the two fields — the
// remaining-length limit naturally surfaces that as Truncated.
func DecodeConnect(d *wire.PeekableDecoder) (*Connect, error) {
	typ, _, err := d.Header()
	if err != nil {
		return nil, err
	}
	if Type(typ) != TypeConnect {
		return nil, wire.ErrSpecViolation("header type does not match CONNECT")
	}

	n, err := d.PacketLen()
	if err != nil {
		return nil, err
	}
	limited := d.Limit(n)

	name, err := limited.Raw(len(protocolName))
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(name, protocolName) {
		return nil, wire.ErrSpecViolation("CONNECT protocol name must be \"MQTT\"")
	}

	level, err := limited.U8()
	if err != nil {
		return nil, err
	}
	if level != protocolLevel {
		return nil, wire.ErrUnsupportedVersion("CONNECT protocol level is not 3.1.1")
	}

	flags, err := limited.Bitmap()
	if err != nil {
		return nil, err
	}
	hasUsername, hasPassword, willRetain, willQosHi, willQosLo, willFlag, cleanSession := flags[0], flags[1], flags[2], flags[3], flags[4], flags[5], flags[6]
	willQos := uint8(0)
	if willQosHi {
		willQos |= 0x02
	}
	if willQosLo {
		willQos |= 0x01
	}

	keepAlive, err := limited.U16()
	if err != nil {
		return nil, err
	}
	clientIDBuf, err := limited.Bytes(newBytes())
	if err != nil {
		return nil, err
	}

	c := &Connect{
		KeepAliveSecs: keepAlive,
		CleanSession:  cleanSession,
		ClientID:      clientIDBuf.AsSlice(),
	}

	if willFlag {
		willTopicBuf, err := limited.Bytes(newBytes())
		if err != nil {
			return nil, err
		}
		willMessageBuf, err := limited.Bytes(newBytes())
		if err != nil {
			return nil, err
		}
		c.Will = &Will{
			Topic:   willTopicBuf.AsSlice(),
			Message: willMessageBuf.AsSlice(),
			QoS:     willQos,
			Retain:  willRetain,
		}
	}

	if hasUsername {
		usernameBuf, err := limited.Bytes(newBytes())
		if err != nil {
			return nil, err
		}
		c.Username = usernameBuf.AsSlice()
		c.HasUsername = true
	}
	if hasPassword {
		passwordBuf, err := limited.Bytes(newBytes())
		if err != nil {
			return nil, err
		}
		c.Password = passwordBuf.AsSlice()
		c.HasPassword = true
	}

	return c, nil
}
