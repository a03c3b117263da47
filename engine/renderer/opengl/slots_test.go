package opengl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/glrhi/engine/core"
	"github.com/spaghettifunk/glrhi/engine/renderer/gl"
)

func TestSamplerSlotsAreStablePerLocation(t *testing.T) {
	fake := newFakeGL()
	slots := newResourceSlotAllocator(fake, false, nil)

	assert.Equal(t, 0, slots.fetchSamplerSlot(7, 1))
	assert.Equal(t, 1, slots.fetchSamplerSlot(7, 2))
	assert.Equal(t, 0, slots.fetchSamplerSlot(7, 1))
	assert.Equal(t, 2, slots.fetchSamplerSlot(8, 1))
}

func TestSamplerDirtyOnlyOnChange(t *testing.T) {
	fake := newFakeGL()
	counters := &core.FrameCounters{}
	slots := newResourceSlotAllocator(fake, false, counters)

	slots.setTextureWithSampler(7, 3, gl.TEXTURE_2D, 100, 200)
	assert.Equal(t, uint32(1), slots.dirty.Bits())
	assert.Empty(t, fake.calls)

	require.Equal(t, 1, slots.commit())
	assert.Equal(t, []string{
		"BindTextureUnit(0, 100)",
		"BindSampler(0, 200)",
		"ProgramUniformiv(7, 3, 1, [0])",
	}, fake.trace())
	assert.Equal(t, 1, counters.SamplerBinds)
	fake.reset()

	slots.setTextureWithSampler(7, 3, gl.TEXTURE_2D, 100, 200)
	assert.True(t, slots.dirty.IsZero())
	assert.Zero(t, slots.commit())
	assert.Empty(t, fake.calls)

	slots.setSampler(7, 3, 201)
	assert.True(t, slots.dirty.Has(0))
}

func TestSamplerImmediateCommit(t *testing.T) {
	fake := newFakeGL()
	slots := newResourceSlotAllocator(fake, true, nil)

	slots.setTexture(7, 3, gl.TEXTURE_2D, 100)
	assert.Equal(t, []string{"BindTextureUnit", "BindSampler", "ProgramUniformiv"}, fake.names())
	assert.True(t, slots.dirty.IsZero())
}

func TestSamplerCommitLowestFirst(t *testing.T) {
	fake := newFakeGL()
	slots := newResourceSlotAllocator(fake, false, nil)

	slots.setTexture(7, 1, gl.TEXTURE_2D, 100)
	slots.setTexture(7, 2, gl.TEXTURE_2D, 101)
	slots.setTexture(7, 3, gl.TEXTURE_2D, 102)
	slots.dirty.Clear(1)

	assert.Equal(t, 2, slots.commit())
	units := fake.find("BindTextureUnit")
	require.Len(t, units, 2)
	assert.Equal(t, "BindTextureUnit(0, 100)", units[0].String())
	assert.Equal(t, "BindTextureUnit(2, 102)", units[1].String())
}

func TestImageSlotSkipsTextureUnit(t *testing.T) {
	fake := newFakeGL()
	slots := newResourceSlotAllocator(fake, false, nil)

	slots.setImage(7, 4, 100, 0, true, 0, gl.READ_WRITE, gl.RGBA32F)
	assert.True(t, fake.called("BindImageTexture", 0, 100, 0, true, 0, gl.READ_WRITE, gl.RGBA32F))

	slots.setSampler(7, 4, 300)
	fake.reset()
	slots.commit()
	assert.Equal(t, []string{"ProgramUniformiv"}, fake.names())
}

func TestSamplerSlotOverflow(t *testing.T) {
	fake := newFakeGL()
	slots := newResourceSlotAllocator(fake, false, nil)

	for i := 0; i < MAX_SAMPLER_SLOTS; i++ {
		require.Equal(t, i, slots.fetchSamplerSlot(1, int32(i)))
	}
	assert.Equal(t, IndexNone, slots.fetchSamplerSlot(1, 99))

	slots.setTexture(1, 99, gl.TEXTURE_2D, 5)
	assert.True(t, slots.dirty.IsZero())
	assert.Empty(t, fake.calls)
}

func TestBufferPoolFetch(t *testing.T) {
	var pool bufferBindingPool

	assert.Equal(t, 0, pool.fetchSlot(3, 1, 50))
	assert.Equal(t, IndexNone, pool.fetchSlot(3, 1, 50))
	assert.Equal(t, 0, pool.fetchSlot(3, 1, 51))
	assert.Equal(t, 1, pool.fetchSlot(3, 2, 50))
	assert.Equal(t, IndexNone, pool.fetchSlot(0x10000, 1, 50))
}

func TestBufferPoolOverflow(t *testing.T) {
	var pool bufferBindingPool
	for i := 0; i < MAX_BUFFER_BINDING_SLOTS; i++ {
		require.Equal(t, i, pool.fetchSlot(1, int32(i), 9))
	}
	assert.Equal(t, IndexNone, pool.fetchSlot(1, MAX_BUFFER_BINDING_SLOTS, 9))
}

func TestUniformAndStorageBuffers(t *testing.T) {
	fake := newFakeGL()
	counters := &core.FrameCounters{}
	slots := newResourceSlotAllocator(fake, false, counters)

	slots.setUniformBuffer(3, 0, 50)
	slots.setUniformBuffer(3, 0, 50)
	slots.setStorageBuffer(3, 0, 60)
	slots.setAtomicCounterBuffer(2, 70)

	assert.Equal(t, []string{
		"UniformBlockBinding(3, 0, 0)",
		"BindBufferBase(35345, 0, 50)",
		"ShaderStorageBlockBinding(3, 0, 0)",
		"BindBufferBase(37074, 0, 60)",
		"BindBufferBase(37568, 2, 70)",
	}, fake.trace())
	assert.Equal(t, 3, counters.BufferBinds)
}

func TestResetBindIndex(t *testing.T) {
	fake := newFakeGL()
	slots := newResourceSlotAllocator(fake, false, nil)

	slots.setTexture(7, 1, gl.TEXTURE_2D, 100)
	slots.setUniformBuffer(3, 0, 50)
	slots.setStorageBuffer(3, 0, 60)
	slots.reset()

	assert.Zero(t, slots.nextSampler)
	assert.True(t, slots.dirty.IsZero())
	for _, pool := range slots.buffers {
		assert.Zero(t, pool.nextSlot)
	}
	assert.Equal(t, 0, slots.fetchSamplerSlot(9, 9))
}
