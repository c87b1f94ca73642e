package container

// Heap is the unbounded, heap-growing ByteBuf backend: a thin wrapper over a
// Go slice that never reports ErrCapacityExhausted. This is the backend
// DefaultBytes/DefaultSeq return when neither the container_fixed nor the
// container_bounded build tag is set (the default), and the type is always
// available unconditionally, so tests don't need to depend on which tag is
// active.
type Heap struct {
	data []byte
}

// NewHeap returns an empty Heap-backed ByteBuf.
func NewHeap() *Heap {
	return &Heap{}
}

func (h *Heap) Push(b byte) error {
	h.data = append(h.data, b)
	return nil
}

func (h *Heap) Extend(data []byte) error {
	h.data = append(h.data, data...)
	return nil
}

func (h *Heap) AsSlice() []byte {
	if h.data == nil {
		return []byte{}
	}
	return h.data
}

func (h *Heap) Len() int {
	return len(h.data)
}

// HeapSeq is the unbounded, heap-growing Seq[T] backend.
type HeapSeq[T any] struct {
	data []T
}

// NewHeapSeq returns an empty Heap-backed Seq[T].
func NewHeapSeq[T any]() *HeapSeq[T] {
	return &HeapSeq[T]{}
}

func (s *HeapSeq[T]) Push(e T) error {
	s.data = append(s.data, e)
	return nil
}

func (s *HeapSeq[T]) Extend(items []T) error {
	s.data = append(s.data, items...)
	return nil
}

func (s *HeapSeq[T]) Insert(i int, e T) error {
	// i > Len() is clamped to append rather than treated as an error,
	// matching the reference's tolerant insert behavior.
	if i > len(s.data) || i < 0 {
		i = len(s.data)
	}
	s.data = append(s.data, e)
	copy(s.data[i+1:], s.data[i:])
	s.data[i] = e
	return nil
}

func (s *HeapSeq[T]) AsSlice() []T {
	if s.data == nil {
		return []T{}
	}
	return s.data
}

func (s *HeapSeq[T]) Len() int {
	return len(s.data)
}
