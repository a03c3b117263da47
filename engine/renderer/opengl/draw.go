package opengl

import (
	gomath "math"

	"github.com/spaghettifunk/glrhi/engine/core"
	"github.com/spaghettifunk/glrhi/engine/renderer/gl"
	"github.com/spaghettifunk/glrhi/engine/renderer/rhi"
)

func (c *Context) commitInputStream() {
	c.input.commit(c.shaders.UseShaderPath())
}

// commitPrimitiveState translates the primitive and sets the patch size for
// patch lists.
func (c *Context) commitPrimitiveState(primitive rhi.PrimitiveType) gl.Enum {
	mode, patchSize := translatePrimitive(primitive)
	if patchSize > 0 {
		c.fns.PatchParameteri(gl.PATCH_VERTICES, patchSize)
	}
	return mode
}

func (c *Context) countDraw() {
	if c.counters != nil {
		c.counters.Draws++
	}
}

// prepareDraw runs every commit a buffer backed draw needs and returns the
// primitive mode.
func (c *Context) prepareDraw(primitive rhi.PrimitiveType) gl.Enum {
	c.commitInputStream()
	c.commitGraphicStates()
	c.countDraw()
	return c.commitPrimitiveState(primitive)
}

func (c *Context) DrawPrimitive(primitive rhi.PrimitiveType, start, numVertices int32) {
	mode := c.prepareDraw(primitive)
	c.fns.DrawArrays(mode, start, numVertices)
}

// DrawIndexedPrimitive draws from the bound index buffer. Nothing is drawn
// without one.
func (c *Context) DrawIndexedPrimitive(primitive rhi.PrimitiveType, indexStart, numIndices int32, baseVertex int32) {
	if c.indexBuffer == nil {
		return
	}
	mode := c.prepareDraw(primitive)
	typ, offset := c.bindIndexBuffer(indexStart)
	if baseVertex != 0 {
		c.fns.DrawElementsBaseVertex(mode, numIndices, typ, offset, baseVertex)
	} else {
		c.fns.DrawElements(mode, numIndices, typ, offset)
	}
	c.fns.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)
}

func (c *Context) DrawPrimitiveInstanced(primitive rhi.PrimitiveType, start, numVertices int32, numInstances, baseInstance uint32) {
	mode := c.prepareDraw(primitive)
	if baseInstance != 0 {
		c.fns.DrawArraysInstancedBaseInstance(mode, start, numVertices, int32(numInstances), baseInstance)
	} else {
		c.fns.DrawArraysInstanced(mode, start, numVertices, int32(numInstances))
	}
}

func (c *Context) DrawIndexedPrimitiveInstanced(primitive rhi.PrimitiveType, indexStart, numIndices int32, numInstances uint32, baseVertex int32, baseInstance uint32) {
	if c.indexBuffer == nil {
		return
	}
	mode := c.prepareDraw(primitive)
	typ, offset := c.bindIndexBuffer(indexStart)
	instances := int32(numInstances)
	switch {
	case baseVertex != 0 && baseInstance != 0:
		c.fns.DrawElementsInstancedBaseVertexBaseInstance(mode, numIndices, typ, offset, instances, baseVertex, baseInstance)
	case baseVertex != 0:
		c.fns.DrawElementsInstancedBaseVertex(mode, numIndices, typ, offset, instances, baseVertex)
	case baseInstance != 0:
		c.fns.DrawElementsInstancedBaseInstance(mode, numIndices, typ, offset, instances, baseInstance)
	default:
		c.fns.DrawElementsInstanced(mode, numIndices, typ, offset, instances)
	}
	c.fns.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)
}

// bindIndexBuffer binds the current index buffer and returns its index type
// and the byte offset of index start.
func (c *Context) bindIndexBuffer(start int32) (gl.Enum, int) {
	c.fns.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, c.indexBuffer.Handle())
	elementSize := c.indexBuffer.ElementSize()
	return indexType(elementSize), int(elementSize) * int(start)
}

// DrawPrimitiveIndirect reads numCommand draw commands from commands at
// offset. More than one command uses the multi draw entry point.
func (c *Context) DrawPrimitiveIndirect(primitive rhi.PrimitiveType, commands rhi.Buffer, offset int, numCommand, stride int32) {
	if commands == nil {
		core.LogWarn("indirect draw without a command buffer")
		return
	}
	mode := c.prepareDraw(primitive)
	c.fns.BindBuffer(gl.DRAW_INDIRECT_BUFFER, commands.Handle())
	if numCommand > 1 {
		c.fns.MultiDrawArraysIndirect(mode, offset, numCommand, stride)
	} else {
		c.fns.DrawArraysIndirect(mode, offset)
	}
	c.fns.BindBuffer(gl.DRAW_INDIRECT_BUFFER, 0)
}

func (c *Context) DrawIndexedPrimitiveIndirect(primitive rhi.PrimitiveType, commands rhi.Buffer, offset int, numCommand, stride int32) {
	if c.indexBuffer == nil {
		return
	}
	if commands == nil {
		core.LogWarn("indirect draw without a command buffer")
		return
	}
	mode := c.prepareDraw(primitive)
	typ, _ := c.bindIndexBuffer(0)
	c.fns.BindBuffer(gl.DRAW_INDIRECT_BUFFER, commands.Handle())
	if numCommand > 1 {
		c.fns.MultiDrawElementsIndirect(mode, typ, offset, numCommand, stride)
	} else {
		c.fns.DrawElementsIndirect(mode, typ, offset)
	}
	c.fns.BindBuffer(gl.DRAW_INDIRECT_BUFFER, 0)
	c.fns.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)
}

// DrawPrimitiveUP draws vertex data from client memory through the pending
// input layout.
func (c *Context) DrawPrimitiveUP(primitive rhi.PrimitiveType, numVertices int32, data []rhi.VertexDataInfo, numInstances uint32) {
	c.input.commitUP(c.shaders.UseShaderPath(), data)
	c.commitGraphicStates()
	c.countDraw()
	mode := c.commitPrimitiveState(primitive)
	if numInstances != 1 {
		c.fns.DrawArraysInstanced(mode, 0, numVertices, int32(numInstances))
	} else {
		c.fns.DrawArrays(mode, 0, numVertices)
	}
}

// DrawIndexedPrimitiveUP draws client vertex data with 32 bit client
// indices. A nil index slice draws nothing.
func (c *Context) DrawIndexedPrimitiveUP(primitive rhi.PrimitiveType, numVertices int32, data []rhi.VertexDataInfo, indices []uint32, numInstances uint32) {
	if indices == nil {
		return
	}
	c.input.commitUP(c.shaders.UseShaderPath(), data)
	c.commitGraphicStates()
	c.countDraw()
	mode := c.commitPrimitiveState(primitive)
	c.input.transient.uploadIndices(rhi.AsBytes(indices))
	if numInstances != 1 {
		c.fns.DrawElementsInstanced(mode, int32(len(indices)), gl.UNSIGNED_INT, 0, int32(numInstances))
	} else {
		c.fns.DrawElements(mode, int32(len(indices)), gl.UNSIGNED_INT, 0)
	}
	c.fns.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)
}

// DrawMeshTasks launches x*y*z task groups, split into batches no larger
// than the driver's task count limit.
func (c *Context) DrawMeshTasks(numGroupX, numGroupY, numGroupZ uint32) {
	limit := c.caps.MaxDrawMeshTasksCount
	if limit == 0 {
		core.LogError("mesh tasks drawn without mesh shader support")
		return
	}
	// task ids are 32 bit on the driver side
	total := uint64(numGroupX) * uint64(numGroupY) * uint64(numGroupZ)
	if total > gomath.MaxUint32 {
		core.LogError("mesh task count %dx%dx%d exceeds the 32 bit task range", numGroupX, numGroupY, numGroupZ)
		return
	}
	c.commitGraphicStates()
	c.countDraw()

	count := uint32(total)
	var start uint32
	for count > limit {
		c.fns.DrawMeshTasksNV(start, limit)
		start += limit
		count -= limit
	}
	if count > 0 {
		c.fns.DrawMeshTasksNV(start, count)
	}
}

func (c *Context) DrawMeshTasksIndirect(commands rhi.Buffer, offset int, numCommand, stride int32) {
	if commands == nil {
		core.LogWarn("indirect mesh draw without a command buffer")
		return
	}
	c.commitGraphicStates()
	c.countDraw()
	c.fns.BindBuffer(gl.DRAW_INDIRECT_BUFFER, commands.Handle())
	if numCommand > 1 {
		c.fns.MultiDrawMeshTasksIndirectNV(offset, numCommand, stride)
	} else {
		c.fns.DrawMeshTasksIndirectNV(offset)
	}
	c.fns.BindBuffer(gl.DRAW_INDIRECT_BUFFER, 0)
}

// DispatchCompute commits pending sampler slots then dispatches the bound
// compute shader.
func (c *Context) DispatchCompute(numGroupX, numGroupY, numGroupZ uint32) {
	c.commitSamplerStates()
	if c.counters != nil {
		c.counters.Dispatches++
	}
	c.fns.DispatchCompute(numGroupX, numGroupY, numGroupZ)
}
