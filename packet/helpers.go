package packet

import "github.com/axmq/mqttwire/container"

// newBytes allocates the container.ByteBuf backend the running build was
// configured with (see container's config_*.go files), used for every
// variable-length field a packet decodes into.
func newBytes() container.ByteBuf {
	return container.DefaultBytes()
}

func newTopicSeq() container.Seq[container.ByteBuf] {
	return container.DefaultSeq[container.ByteBuf]()
}

func newTopicQosSeq() container.Seq[container.TopicQoS] {
	return container.DefaultSeq[container.TopicQoS]()
}
