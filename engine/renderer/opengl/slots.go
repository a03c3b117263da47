package opengl

import (
	"github.com/spaghettifunk/glrhi/engine/containers"
	"github.com/spaghettifunk/glrhi/engine/core"
	"github.com/spaghettifunk/glrhi/engine/renderer/gl"
)

const (
	// IndexNone marks a slot fetch that needs no driver call or failed.
	IndexNone = -1

	MAX_SAMPLER_SLOTS        = 16
	MAX_BUFFER_BINDING_SLOTS = 128
)

type samplerSlot struct {
	loc         int32
	shader      uint32
	textureType gl.Enum
	texture     uint32
	sampler     uint32
	// image units bind through BindImageTexture, not the texture unit path
	write bool
}

type bufferBindingType int

const (
	bufferBindingUniform bufferBindingType = iota
	bufferBindingStorage
	bufferBindingTypeCount
)

type bufferBindingSlot struct {
	key    uint32
	handle uint32
}

type bufferBindingPool struct {
	nextSlot int
	slots    [MAX_BUFFER_BINDING_SLOTS]bufferBindingSlot
}

// fetchSlot returns the binding slot for (shader, loc), or IndexNone when the
// slot already holds handle.
func (p *bufferBindingPool) fetchSlot(shader uint32, loc int32, handle uint32) int {
	if shader&0xffff0000 != 0 || uint32(loc)&0xffff0000 != 0 {
		core.LogError("buffer binding key out of range: shader=%d loc=%d", shader, loc)
		return IndexNone
	}
	key := shader<<16 | uint32(loc)
	for i := 0; i < p.nextSlot; i++ {
		slot := &p.slots[i]
		if slot.key != key {
			continue
		}
		if slot.handle == handle {
			return IndexNone
		}
		slot.handle = handle
		return i
	}

	if p.nextSlot >= MAX_BUFFER_BINDING_SLOTS {
		core.LogError("buffer binding slots exhausted (max=%d)", MAX_BUFFER_BINDING_SLOTS)
		return IndexNone
	}
	index := p.nextSlot
	p.nextSlot++
	p.slots[index] = bufferBindingSlot{key: key, handle: handle}
	return index
}

/**
 * @brief Maps (shader, location) pairs to texture units and buffer binding
 * points for the lifetime of one shader binding.
 */
type ResourceSlotAllocator struct {
	fns       gl.Functions
	immediate bool
	counters  *core.FrameCounters

	samplers    [MAX_SAMPLER_SLOTS]samplerSlot
	nextSampler int
	dirty       containers.BitMask[uint32]

	buffers [bufferBindingTypeCount]bufferBindingPool
}

func newResourceSlotAllocator(fns gl.Functions, immediate bool, counters *core.FrameCounters) *ResourceSlotAllocator {
	return &ResourceSlotAllocator{
		fns:       fns,
		immediate: immediate,
		counters:  counters,
	}
}

// fetchSamplerSlot finds or allocates the unit of (shader, loc).
func (a *ResourceSlotAllocator) fetchSamplerSlot(shader uint32, loc int32) int {
	for i := 0; i < a.nextSampler; i++ {
		if a.samplers[i].shader == shader && a.samplers[i].loc == loc {
			return i
		}
	}
	if a.nextSampler >= MAX_SAMPLER_SLOTS {
		core.LogError("sampler slots exhausted (max=%d): shader=%d loc=%d", MAX_SAMPLER_SLOTS, shader, loc)
		return IndexNone
	}
	index := a.nextSampler
	a.nextSampler++
	a.samplers[index] = samplerSlot{loc: loc, shader: shader}
	return index
}

func (a *ResourceSlotAllocator) markDirty(index int) {
	a.dirty.Set(index)
	if a.immediate {
		a.commit()
	}
}

func (a *ResourceSlotAllocator) setTexture(shader uint32, loc int32, textureType gl.Enum, texture uint32) {
	index := a.fetchSamplerSlot(shader, loc)
	if index == IndexNone {
		return
	}
	slot := &a.samplers[index]
	if slot.textureType != textureType || slot.texture != texture || slot.write {
		slot.textureType = textureType
		slot.texture = texture
		slot.write = false
		a.markDirty(index)
	}
}

func (a *ResourceSlotAllocator) setTextureWithSampler(shader uint32, loc int32, textureType gl.Enum, texture, sampler uint32) {
	index := a.fetchSamplerSlot(shader, loc)
	if index == IndexNone {
		return
	}
	slot := &a.samplers[index]
	if slot.textureType != textureType || slot.texture != texture || slot.sampler != sampler || slot.write {
		slot.textureType = textureType
		slot.texture = texture
		slot.sampler = sampler
		slot.write = false
		a.markDirty(index)
	}
}

func (a *ResourceSlotAllocator) setSampler(shader uint32, loc int32, sampler uint32) {
	index := a.fetchSamplerSlot(shader, loc)
	if index == IndexNone {
		return
	}
	slot := &a.samplers[index]
	if slot.sampler != sampler {
		slot.sampler = sampler
		a.markDirty(index)
	}
}

// setImage binds texture to the image unit of (shader, loc) right away.
func (a *ResourceSlotAllocator) setImage(shader uint32, loc int32, texture uint32, level int32, layered bool, layer int32, access, format gl.Enum) {
	index := a.fetchSamplerSlot(shader, loc)
	if index == IndexNone {
		return
	}
	a.samplers[index].write = true
	a.samplers[index].texture = texture
	a.fns.BindImageTexture(uint32(index), texture, level, layered, layer, access, format)
	a.fns.ProgramUniformiv(shader, loc, 1, []int32{int32(index)})
}

// commit issues the bindings of every dirty sampler slot, lowest first.
func (a *ResourceSlotAllocator) commit() int {
	issued := 0
	for index := a.dirty.PopLowest(); index >= 0; index = a.dirty.PopLowest() {
		slot := &a.samplers[index]
		if !slot.write {
			a.fns.BindTextureUnit(uint32(index), slot.texture)
			a.fns.BindSampler(uint32(index), slot.sampler)
		}
		a.fns.ProgramUniformiv(slot.shader, slot.loc, 1, []int32{int32(index)})
		issued++
	}
	if a.counters != nil {
		a.counters.SamplerBinds += issued
	}
	return issued
}

func (a *ResourceSlotAllocator) setUniformBuffer(shader uint32, loc int32, buffer uint32) {
	index := a.buffers[bufferBindingUniform].fetchSlot(shader, loc, buffer)
	if index == IndexNone {
		return
	}
	a.fns.UniformBlockBinding(shader, uint32(loc), uint32(index))
	a.fns.BindBufferBase(gl.UNIFORM_BUFFER, uint32(index), buffer)
	a.countBufferBind()
}

func (a *ResourceSlotAllocator) setStorageBuffer(shader uint32, loc int32, buffer uint32) {
	index := a.buffers[bufferBindingStorage].fetchSlot(shader, loc, buffer)
	if index == IndexNone {
		return
	}
	a.fns.ShaderStorageBlockBinding(shader, uint32(loc), uint32(index))
	a.fns.BindBufferBase(gl.SHADER_STORAGE_BUFFER, uint32(index), buffer)
	a.countBufferBind()
}

// setAtomicCounterBuffer binds at the declared binding point, no pooling.
func (a *ResourceSlotAllocator) setAtomicCounterBuffer(loc int32, buffer uint32) {
	a.fns.BindBufferBase(gl.ATOMIC_COUNTER_BUFFER, uint32(loc), buffer)
	a.countBufferBind()
}

func (a *ResourceSlotAllocator) countBufferBind() {
	if a.counters != nil {
		a.counters.BufferBinds++
	}
}

// reset forgets every slot assignment. Called whenever a new shader binds.
func (a *ResourceSlotAllocator) reset() {
	a.nextSampler = 0
	a.dirty.Reset()
	for i := range a.buffers {
		a.buffers[i].nextSlot = 0
	}
}
