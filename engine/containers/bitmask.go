package containers

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// BitMask tracks a small set of dirty indices.
type BitMask[T constraints.Unsigned] struct {
	bits T
}

func (m *BitMask[T]) Set(index int) {
	m.bits |= T(1) << uint(index)
}

func (m *BitMask[T]) Clear(index int) {
	m.bits &^= T(1) << uint(index)
}

func (m *BitMask[T]) Has(index int) bool {
	return m.bits&(T(1)<<uint(index)) != 0
}

func (m *BitMask[T]) IsZero() bool {
	return m.bits == 0
}

func (m *BitMask[T]) Reset() {
	m.bits = 0
}

func (m *BitMask[T]) Bits() T {
	return m.bits
}

// PopLowest clears the lowest set bit and returns its index, or -1 when the
// mask is empty.
func (m *BitMask[T]) PopLowest() int {
	if m.bits == 0 {
		return -1
	}
	index := bits.TrailingZeros64(uint64(m.bits))
	m.bits &= m.bits - 1
	return index
}
