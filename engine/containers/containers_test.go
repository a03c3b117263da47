package containers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRingQueueWrapsAround(t *testing.T) {
	q := NewRingQueue[int](2)
	require.NoError(t, q.Enqueue(1))
	require.NoError(t, q.Enqueue(2))
	assert.ErrorIs(t, q.Enqueue(3), ErrQueueFull)

	v, err := q.Dequeue()
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	require.NoError(t, q.Enqueue(3))
	p, err := q.Peek()
	require.NoError(t, err)
	assert.Equal(t, 2, p)
	assert.Equal(t, 2, q.Len())

	v, _ = q.Dequeue()
	assert.Equal(t, 2, v)
	v, _ = q.Dequeue()
	assert.Equal(t, 3, v)

	_, err = q.Dequeue()
	assert.ErrorIs(t, err, ErrQueueEmpty)
	assert.True(t, q.IsEmpty())
}

func TestBitMaskPopsLowestFirst(t *testing.T) {
	var m BitMask[uint32]
	assert.Equal(t, -1, m.PopLowest())

	m.Set(5)
	m.Set(0)
	m.Set(31)
	assert.True(t, m.Has(5))

	var order []int
	for !m.IsZero() {
		order = append(order, m.PopLowest())
	}
	assert.Equal(t, []int{0, 5, 31}, order)
}

func TestBitMaskClearAndReset(t *testing.T) {
	var m BitMask[uint8]
	m.Set(1)
	m.Set(2)
	m.Clear(1)
	assert.False(t, m.Has(1))
	assert.Equal(t, uint8(4), m.Bits())
	m.Reset()
	assert.True(t, m.IsZero())
}
