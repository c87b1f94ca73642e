//go:build !container_fixed && !container_bounded

package container

// DefaultBytes constructs the ByteBuf backend selected at build time. With
// neither container_fixed nor container_bounded set, the heap-growing
// backend is used — the pragmatic zero-tag default for a library build
// without embedded-target constraints.
func DefaultBytes() ByteBuf {
	return NewHeap()
}

// DefaultSeq constructs the Seq[T] backend selected at build time.
func DefaultSeq[T any]() Seq[T] {
	return NewHeapSeq[T]()
}
