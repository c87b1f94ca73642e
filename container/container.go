// Package container provides the storage-capability abstraction shared by
// the wire and packet layers: a minimal contract that heap-growing,
// fixed-capacity, and bounded-heap backends all satisfy, so the codec logic
// above never needs to know which one it is talking to.
package container

import "errors"

// ErrCapacityExhausted is the only failure kind a container backend may
// report. Fixed and bounded backends return it from Push/Extend/Insert when
// they cannot accept more data; the heap backend never returns it.
var ErrCapacityExhausted = errors.New("container: capacity exhausted")

// ByteBuf is the capability surface required of a byte container: default
// (the zero value), push, extend, as-slice, and move-iterate (expressed in
// Go as ranging over the slice AsSlice returns).
type ByteBuf interface {
	// Push appends a single byte, or reports ErrCapacityExhausted.
	Push(b byte) error
	// Extend appends data atomically: either every byte is appended, or
	// none are and ErrCapacityExhausted is returned.
	Extend(data []byte) error
	// AsSlice exposes the current contents in insertion order.
	AsSlice() []byte
	// Len reports the number of bytes currently held.
	Len() int
}

// Seq is the same capability surface generalized over an element type T.
// It backs topic sequences (Seq[ByteBuf]) and topic+QoS sequences
// (Seq[TopicQoS]).
type Seq[T any] interface {
	// Push appends a single element, or reports ErrCapacityExhausted.
	Push(e T) error
	// Extend appends elements atomically.
	Extend(items []T) error
	// Insert places e at index i. Per the reference implementation, i > Len()
	// is tolerated and clamped to an append rather than treated as an error;
	// this is an intentional compatibility decision, not an oversight.
	Insert(i int, e T) error
	// AsSlice exposes the current contents in insertion order.
	AsSlice() []T
	// Len reports the number of elements currently held.
	Len() int
}

// TopicQoS is the element type of a topic+QoS sequence, as carried by
// SUBSCRIBE packets.
type TopicQoS struct {
	Topic ByteBuf
	QoS   uint8
}
