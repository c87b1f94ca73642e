package packet

import (
	"testing"

	"github.com/axmq/mqttwire/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// roundTrip encodes p, decodes the result, and asserts the decoded value
// re-encodes to the same bytes (idempotence, §8 property 6).
func roundTrip(t *testing.T, p Packet) []byte {
	t.Helper()
	encoded := p.Encode()

	decoded, err := Decode(wire.NewSliceReader(encoded))
	require.NoError(t, err)
	assert.Equal(t, encoded, decoded.Encode())
	return encoded
}

func TestRoundTripAllAckLikeVariants(t *testing.T) {
	variants := []*Ack{
		NewPuback(1), NewPubrec(2), NewPubrel(3),
		NewPubcomp(4), NewSuback(5), NewUnsuback(6),
	}
	for _, v := range variants {
		roundTrip(t, v)
	}
}

func TestRoundTripAllSignalLikeVariants(t *testing.T) {
	variants := []*Signal{NewDisconnect(), NewPingreq(), NewPingresp()}
	for _, v := range variants {
		roundTrip(t, v)
	}
}

func TestRoundTripConnack(t *testing.T) {
	roundTrip(t, NewConnack(true, 0))
	roundTrip(t, NewConnack(false, 5))
}

func TestRoundTripConnectMinimal(t *testing.T) {
	roundTrip(t, NewConnect([]byte("c"), 0, true))
}

func TestRoundTripConnectWithWillAndCreds(t *testing.T) {
	c := NewConnect([]byte("client"), 60, false).
		WithWill([]byte("lwt/topic"), []byte("bye"), 2, true).
		WithUsername([]byte("u")).
		WithPassword([]byte("p"))
	roundTrip(t, c)
}

func TestRoundTripPublishQos0NoPacketID(t *testing.T) {
	p := NewPublish([]byte("a/b"), false).WithPayload([]byte("hello"))
	encoded := roundTrip(t, p)

	decoded, err := Decode(wire.NewSliceReader(encoded))
	require.NoError(t, err)
	assert.Nil(t, decoded.(*Publish).PacketID)
}

func TestRoundTripPublishQos1WithPacketID(t *testing.T) {
	p := NewPublish([]byte("a/b"), true).WithQoS(1, 99, true).WithPayload(nil)
	roundTrip(t, p)
}

func TestRoundTripSubscribeEmptyList(t *testing.T) {
	roundTrip(t, NewSubscribe(1, nil))
}

func TestRoundTripSubscribeMultipleTopics(t *testing.T) {
	subs := []wire.Subscription{
		{Topic: []byte("a"), QoS: 0},
		{Topic: []byte("b/c"), QoS: 2},
	}
	roundTrip(t, NewSubscribe(42, subs))
}

func TestRoundTripUnsubscribeEmptyList(t *testing.T) {
	roundTrip(t, NewUnsubscribe(1, nil))
}

func TestRoundTripUnsubscribeMultipleTopics(t *testing.T) {
	roundTrip(t, NewUnsubscribe(7, [][]byte{[]byte("x"), []byte("y/z")}))
}

func TestLengthAgreementAcrossVariants(t *testing.T) {
	packets := []Packet{
		NewPuback(1),
		NewDisconnect(),
		NewConnack(true, 1),
		NewConnect([]byte("id"), 10, true),
		NewPublish([]byte("t"), false).WithPayload([]byte("x")),
		NewSubscribe(1, []wire.Subscription{{Topic: []byte("t"), QoS: 1}}),
		NewUnsubscribe(1, [][]byte{[]byte("t")}),
	}
	for _, p := range packets {
		encoded := p.Encode()

		d := wire.NewDecoder(wire.NewSliceReader(encoded))
		_, err := d.U8()
		require.NoError(t, err)
		n, err := d.PacketLen()
		require.NoError(t, err)

		body, err := d.RawRemainder(newBytes())
		require.NoError(t, err)
		assert.Equal(t, n, body.Len(), "remaining-length field disagrees with actual body size")
	}
}
