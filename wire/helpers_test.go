package wire

import "github.com/axmq/mqttwire/container"

func newTestBuf() container.ByteBuf {
	return container.NewHeap()
}
