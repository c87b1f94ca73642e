package container_test

import (
	"testing"

	"github.com/axmq/mqttwire/container"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeapByteBufGrowsUnbounded(t *testing.T) {
	buf := container.NewHeap()
	require.NoError(t, buf.Push(1))
	require.NoError(t, buf.Extend([]byte{2, 3, 4}))
	assert.Equal(t, []byte{1, 2, 3, 4}, buf.AsSlice())
	assert.Equal(t, 4, buf.Len())
}

func TestFixedByteBufReportsCapacityExhausted(t *testing.T) {
	buf := container.NewFixed(2)
	require.NoError(t, buf.Push(1))
	require.NoError(t, buf.Push(2))
	assert.ErrorIs(t, buf.Push(3), container.ErrCapacityExhausted)
	assert.Equal(t, []byte{1, 2}, buf.AsSlice())
}

func TestFixedByteBufExtendIsAtomic(t *testing.T) {
	buf := container.NewFixed(3)
	require.NoError(t, buf.Push(1))
	err := buf.Extend([]byte{2, 3, 4})
	assert.ErrorIs(t, err, container.ErrCapacityExhausted)
	// Nothing from the failing Extend call is visible.
	assert.Equal(t, []byte{1}, buf.AsSlice())
}

func TestBoundedByteBufReportsCapacityExhausted(t *testing.T) {
	buf := container.NewBounded(1)
	require.NoError(t, buf.Push(1))
	assert.ErrorIs(t, buf.Push(2), container.ErrCapacityExhausted)
}

func TestSeqInsertOutOfBoundsClampsToAppend(t *testing.T) {
	seq := container.NewHeapSeq[int]()
	require.NoError(t, seq.Extend([]int{1, 2, 3}))
	// Index far beyond Len() is tolerated and clamped to append, matching
	// the reference's tolerant insert behavior rather than erroring.
	require.NoError(t, seq.Insert(100, 4))
	assert.Equal(t, []int{1, 2, 3, 4}, seq.AsSlice())
}

func TestSeqInsertInBoundsShiftsTail(t *testing.T) {
	seq := container.NewHeapSeq[int]()
	require.NoError(t, seq.Extend([]int{1, 2, 4}))
	require.NoError(t, seq.Insert(2, 3))
	assert.Equal(t, []int{1, 2, 3, 4}, seq.AsSlice())
}

func TestFixedSeqCapacityExhausted(t *testing.T) {
	seq := container.NewFixedSeq[int](2)
	require.NoError(t, seq.Push(1))
	require.NoError(t, seq.Push(2))
	assert.ErrorIs(t, seq.Push(3), container.ErrCapacityExhausted)
}

func TestDefaultBackendIsUsable(t *testing.T) {
	buf := container.DefaultBytes()
	require.NoError(t, buf.Push(0xAB))
	assert.Equal(t, []byte{0xAB}, buf.AsSlice())

	seq := container.DefaultSeq[int]()
	require.NoError(t, seq.Push(7))
	assert.Equal(t, []int{7}, seq.AsSlice())
}
