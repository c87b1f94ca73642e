// Command mqttwiredump is a thin driver over wire/packet/corpus: it
// decodes a sequence of MQTT control packets from a hex string or a
// binary capture file and prints one summary line per packet, the way a
// developer would sanity-check a capture by hand. It is not part of the
// library surface; it exists to exercise the codec end to end.
package main

import (
	"context"
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/axmq/mqttwire/corpus"
	"github.com/axmq/mqttwire/packet"
	"github.com/axmq/mqttwire/pkg/logger"
	"github.com/axmq/mqttwire/wire"
)

func main() {
	var (
		hexInput   = flag.String("hex", "", "hex-encoded bytes containing one or more back-to-back packets")
		file       = flag.String("file", "", "path to a binary capture file containing one or more back-to-back packets")
		corpusSpec = flag.String("corpus", "", "conformance-vector store to seed and list: memory (default), pebble:<path>, or redis://host:port[/prefix]")
		seed       = flag.Bool("seed", false, "seed the corpus store with the built-in golden vectors before dumping")
	)
	flag.Parse()

	log := logger.NewDefault()

	if *corpusSpec != "" || *seed {
		if err := runCorpus(log, *corpusSpec, *seed); err != nil {
			log.Error("corpus operation failed", "err", err)
			os.Exit(1)
		}
	}

	var data []byte
	switch {
	case *hexInput != "":
		decoded, err := hex.DecodeString(strings.TrimSpace(*hexInput))
		if err != nil {
			log.Error("invalid -hex input", "err", err)
			os.Exit(1)
		}
		data = decoded
	case *file != "":
		raw, err := os.ReadFile(*file)
		if err != nil {
			log.Error("failed to read -file", "err", err)
			os.Exit(1)
		}
		data = raw
	default:
		return
	}

	dump(log, data)
}

// dump decodes back-to-back packets from data, logging a summary line for
// each. It stops at the first packet that fails to decode; the packets
// before it have already been logged, so one bad packet doesn't hide the
// ones that decoded fine. The failure is logged as a Warn, except a
// KindTruncated failure after at least one good packet, which is taken
// as the end of the capture and logged as nothing: a packet cut off at
// the end of the data therefore ends the dump without a Warn.
func dump(log logger.Logger, data []byte) {
	src := wire.NewSliceReader(data)
	for i := 0; ; i++ {
		p, err := packet.Decode(src)
		if err != nil {
			if kind, ok := wire.KindOf(err); ok && kind == wire.KindTruncated && i > 0 {
				return
			}
			log.Warn("malformed packet in capture", "index", i, "err", err)
			return
		}
		log.Info("decoded packet", "index", i, "type", p.Type().String(), "summary", summarize(p))
	}
}

func summarize(p packet.Packet) string {
	switch v := p.(type) {
	case *packet.Connect:
		return fmt.Sprintf("client_id=%q keep_alive=%d clean_session=%v", v.ClientID, v.KeepAliveSecs, v.CleanSession)
	case *packet.Connack:
		return fmt.Sprintf("session_present=%v return_code=%d", v.SessionPresent, v.ReturnCode)
	case *packet.Publish:
		return fmt.Sprintf("topic=%q qos=%d retain=%v payload_len=%d", v.Topic, v.QoS, v.Retain, len(v.Payload))
	case *packet.Subscribe:
		return fmt.Sprintf("packet_id=%d topics=%d", v.PacketID, len(v.Topics))
	case *packet.Unsubscribe:
		return fmt.Sprintf("packet_id=%d topics=%d", v.PacketID, len(v.Topics))
	case *packet.Ack:
		return fmt.Sprintf("packet_id=%d", v.PacketID)
	default:
		return ""
	}
}

// runCorpus opens the requested conformance-vector store, optionally
// seeds it with the golden vectors, and logs its current contents.
func runCorpus(log logger.Logger, spec string, seed bool) error {
	ctx := context.Background()

	store, err := openCorpus(spec)
	if err != nil {
		return err
	}
	defer store.Close()

	if seed {
		if err := corpus.Seed(ctx, store); err != nil {
			return fmt.Errorf("seeding corpus: %w", err)
		}
		log.Info("seeded corpus store", "vectors", len(corpus.Golden()))
	}

	keys, err := store.List(ctx)
	if err != nil {
		return fmt.Errorf("listing corpus: %w", err)
	}
	log.Info("corpus contents", "count", len(keys), "keys", strings.Join(keys, ","))
	return nil
}

func openCorpus(spec string) (corpus.Store[corpus.Vector], error) {
	switch {
	case spec == "" || spec == "memory":
		return corpus.NewMemoryVectorStore(), nil
	case strings.HasPrefix(spec, "redis://"):
		addr := strings.TrimPrefix(spec, "redis://")
		prefix := "vector:"
		if idx := strings.Index(addr, "/"); idx >= 0 {
			prefix = addr[idx+1:] + ":"
			addr = addr[:idx]
		}
		return corpus.NewRedisVectorStore(corpus.RedisStoreConfig{Addr: addr, Prefix: prefix})
	case strings.HasPrefix(spec, "pebble:"):
		path := strings.TrimPrefix(spec, "pebble:")
		return corpus.NewPebbleVectorStore(corpus.PebbleStoreConfig{Path: path})
	default:
		return nil, fmt.Errorf("unrecognized -corpus spec %q", spec)
	}
}
