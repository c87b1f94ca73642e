package main

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/axmq/mqttwire/corpus"
	"github.com/axmq/mqttwire/packet"
	"github.com/axmq/mqttwire/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	conn := packet.NewConnect([]byte("dev-1"), 30, true)
	assert.Contains(t, summarize(conn), `client_id="dev-1"`)

	pub := packet.NewPublish([]byte("a/b"), false).WithPayload([]byte("hi"))
	assert.Contains(t, summarize(pub), `topic="a/b"`)
	assert.Contains(t, summarize(pub), "payload_len=2")

	ack := packet.NewPuback(7)
	assert.Equal(t, "packet_id=7", summarize(ack))

	disc := packet.NewDisconnect()
	assert.Equal(t, "", summarize(disc))
}

func TestDumpLogsEachPacket(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.NewSlogLogger(slog.LevelDebug, buf)

	puback := packet.NewPuback(4).Encode()
	disconnect := packet.NewDisconnect().Encode()

	dump(log, append(append([]byte{}, puback...), disconnect...))

	output := buf.String()
	assert.Contains(t, output, "PUBACK")
	assert.Contains(t, output, "DISCONNECT")
}

func TestDumpWarnsOnMalformedTrailer(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.NewSlogLogger(slog.LevelDebug, buf)

	dump(log, []byte{0xF0, 0x00})

	assert.Contains(t, buf.String(), "malformed packet")
}

func TestOpenCorpusMemoryDefault(t *testing.T) {
	store, err := openCorpus("")
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, corpus.Seed(ctx, store))

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(len(corpus.Golden())), count)
}

func TestOpenCorpusUnrecognizedSpec(t *testing.T) {
	_, err := openCorpus("bogus://x")
	assert.Error(t, err)
}
