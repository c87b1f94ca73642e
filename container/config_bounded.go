//go:build container_bounded && !container_fixed

package container

// DefaultCapacity bounds every field allocated through DefaultBytes/
// DefaultSeq when the container_bounded build tag selects the
// bounded-heap backend.
const DefaultCapacity = 65536

// DefaultBytes constructs the ByteBuf backend selected at build time.
func DefaultBytes() ByteBuf {
	return NewBounded(DefaultCapacity)
}

// DefaultSeq constructs the Seq[T] backend selected at build time.
func DefaultSeq[T any]() Seq[T] {
	return NewBoundedSeq[T](DefaultCapacity)
}
