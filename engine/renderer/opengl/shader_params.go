package opengl

import (
	"github.com/spaghettifunk/glrhi/engine/core"
	"github.com/spaghettifunk/glrhi/engine/math"
	"github.com/spaghettifunk/glrhi/engine/renderer/gl"
	"github.com/spaghettifunk/glrhi/engine/renderer/rhi"
)

// The setters below address a parameter through the program that owns it:
// a ShaderProgram, or the separable Shader of one pipeline stage. Unbound
// parameters are ignored.

func (c *Context) SetShaderInt(owner rhi.Resource, param rhi.ShaderParameter, values ...int32) {
	if !param.IsBound() || len(values) == 0 {
		return
	}
	c.fns.ProgramUniformiv(owner.Handle(), param.Loc, 1, values)
}

func (c *Context) SetShaderFloat(owner rhi.Resource, param rhi.ShaderParameter, values ...float32) {
	if !param.IsBound() || len(values) == 0 {
		return
	}
	c.fns.ProgramUniformfv(owner.Handle(), param.Loc, 1, values)
}

func (c *Context) SetShaderVec2(owner rhi.Resource, param rhi.ShaderParameter, v math.Vec2) {
	if !param.IsBound() {
		return
	}
	c.fns.ProgramUniformfv(owner.Handle(), param.Loc, 2, []float32{v.X, v.Y})
}

func (c *Context) SetShaderVec3(owner rhi.Resource, param rhi.ShaderParameter, v math.Vec3) {
	if !param.IsBound() {
		return
	}
	c.fns.ProgramUniformfv(owner.Handle(), param.Loc, 3, []float32{v.X, v.Y, v.Z})
}

func (c *Context) SetShaderVec4(owner rhi.Resource, param rhi.ShaderParameter, v math.Vec4) {
	if !param.IsBound() {
		return
	}
	c.fns.ProgramUniformfv(owner.Handle(), param.Loc, 4, []float32{v.X, v.Y, v.Z, v.W})
}

func (c *Context) SetShaderColor(owner rhi.Resource, param rhi.ShaderParameter, color math.LinearColor) {
	if !param.IsBound() {
		return
	}
	rgba := color.Array()
	c.fns.ProgramUniformfv(owner.Handle(), param.Loc, 4, rgba[:])
}

func (c *Context) SetShaderMatrix4(owner rhi.Resource, param rhi.ShaderParameter, m math.Mat4) {
	if !param.IsBound() {
		return
	}
	c.fns.ProgramUniformMatrixfv(owner.Handle(), param.Loc, 4, 4, false, m.Data[:])
}

// SetShaderTexture assigns texture to the sampler parameter, keeping the
// sampler object previously set on the same slot.
func (c *Context) SetShaderTexture(owner rhi.Resource, param rhi.ShaderParameter, texture rhi.Texture) {
	if !param.IsBound() {
		return
	}
	if texture == nil {
		c.slots.setTexture(owner.Handle(), param.Loc, 0, 0)
		return
	}
	c.slots.setTexture(owner.Handle(), param.Loc, translateTextureType(texture.Type()), texture.Handle())
}

func (c *Context) SetShaderTextureWithSampler(owner rhi.Resource, param rhi.ShaderParameter, texture rhi.Texture, sampler rhi.Sampler) {
	if !param.IsBound() {
		return
	}
	var textureType gl.Enum = gl.TEXTURE_2D
	var textureHandle, samplerHandle uint32
	if texture != nil {
		textureType = translateTextureType(texture.Type())
		textureHandle = texture.Handle()
	}
	if sampler != nil {
		samplerHandle = sampler.Handle()
	}
	c.slots.setTextureWithSampler(owner.Handle(), param.Loc, textureType, textureHandle, samplerHandle)
}

func (c *Context) SetShaderSampler(owner rhi.Resource, param rhi.ShaderParameter, sampler rhi.Sampler) {
	if !param.IsBound() {
		return
	}
	var handle uint32
	if sampler != nil {
		handle = sampler.Handle()
	}
	c.slots.setSampler(owner.Handle(), param.Loc, handle)
}

func (c *Context) SetShaderResourceView(owner rhi.Resource, param rhi.ShaderParameter, view rhi.ShaderResourceView) {
	if !param.IsBound() {
		return
	}
	c.slots.setTexture(owner.Handle(), param.Loc, translateTextureType(view.Type), view.Handle)
}

// SetShaderRWTexture binds mip level 0 of texture as a read/write image.
func (c *Context) SetShaderRWTexture(owner rhi.Resource, param rhi.ShaderParameter, texture rhi.Texture, access rhi.AccessOp) {
	c.SetShaderRWSubTexture(owner, param, texture, 0, access)
}

func (c *Context) SetShaderRWSubTexture(owner rhi.Resource, param rhi.ShaderParameter, texture rhi.Texture, level int32, access rhi.AccessOp) {
	if !param.IsBound() {
		return
	}
	if texture == nil {
		core.LogWarn("read/write texture parameter %d set to nil", param.Loc)
		return
	}
	internal, _, _ := translateTextureFormat(texture.Format())
	layered := texture.Type() != rhi.TEXTURE_TYPE_2D && texture.Type() != rhi.TEXTURE_TYPE_1D
	c.slots.setImage(owner.Handle(), param.Loc, texture.Handle(), level, layered, 0, translateAccessOp(access), internal)
}

// ClearShaderUAV detaches any image bound to the parameter.
func (c *Context) ClearShaderUAV(owner rhi.Resource, param rhi.ShaderParameter) {
	if !param.IsBound() {
		return
	}
	c.slots.setImage(owner.Handle(), param.Loc, 0, 0, false, 0, gl.READ_WRITE, gl.R32UI)
}

func (c *Context) SetShaderUniformBuffer(owner rhi.Resource, param rhi.ShaderParameter, buffer rhi.Buffer) {
	if !param.IsBound() || buffer == nil {
		return
	}
	c.slots.setUniformBuffer(owner.Handle(), param.Loc, buffer.Handle())
}

func (c *Context) SetShaderStorageBuffer(owner rhi.Resource, param rhi.ShaderParameter, buffer rhi.Buffer) {
	if !param.IsBound() || buffer == nil {
		return
	}
	c.slots.setStorageBuffer(owner.Handle(), param.Loc, buffer.Handle())
}

// SetShaderAtomicCounterBuffer binds at the binding point declared by the
// parameter rather than a pooled slot.
func (c *Context) SetShaderAtomicCounterBuffer(param rhi.ShaderParameter, buffer rhi.Buffer) {
	if !param.IsBound() || buffer == nil {
		return
	}
	c.slots.setAtomicCounterBuffer(param.Loc, buffer.Handle())
}
