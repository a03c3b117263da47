// Package native binds gl.Functions to the system OpenGL library through
// go-gl. A compatibility profile is loaded so legacy client state stays
// reachable next to the 4.x entry points.
package native

import (
	"fmt"
	"strings"
	"unsafe"

	ogl "github.com/go-gl/gl/v4.6-compatibility/gl"

	"github.com/spaghettifunk/glrhi/engine/renderer/gl"
)

// Driver issues every call directly against the current context.
type Driver struct {
	debug gl.DebugCallback
}

var _ gl.Functions = (*Driver)(nil)

// Load resolves the entry points of the current context. It must run on the
// thread that owns the context, after the context was made current.
func Load() (*Driver, error) {
	if err := ogl.Init(); err != nil {
		return nil, fmt.Errorf("failed to load OpenGL entry points: %w", err)
	}
	return &Driver{}, nil
}

func enum(e gl.Enum) uint32 { return uint32(e) }

func cstr(s string) *uint8 {
	if !strings.HasSuffix(s, "\x00") {
		s += "\x00"
	}
	return ogl.Str(s)
}

func bytesPtr(b []byte) unsafe.Pointer {
	if len(b) == 0 {
		return nil
	}
	return unsafe.Pointer(&b[0])
}

func (d *Driver) Enable(cap gl.Enum)                   { ogl.Enable(enum(cap)) }
func (d *Driver) Disable(cap gl.Enum)                  { ogl.Disable(enum(cap)) }
func (d *Driver) Enablei(cap gl.Enum, index uint32)    { ogl.Enablei(enum(cap), index) }
func (d *Driver) Disablei(cap gl.Enum, index uint32)   { ogl.Disablei(enum(cap), index) }
func (d *Driver) PolygonMode(face, mode gl.Enum)       { ogl.PolygonMode(enum(face), enum(mode)) }
func (d *Driver) FrontFace(mode gl.Enum)               { ogl.FrontFace(enum(mode)) }
func (d *Driver) CullFace(mode gl.Enum)                { ogl.CullFace(enum(mode)) }
func (d *Driver) ColorMask(r, g, b, a bool)            { ogl.ColorMask(r, g, b, a) }
func (d *Driver) ColorMaski(i uint32, r, g, b, a bool) { ogl.ColorMaski(i, r, g, b, a) }
func (d *Driver) BlendFunc(src, dst gl.Enum)           { ogl.BlendFunc(enum(src), enum(dst)) }

func (d *Driver) BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha gl.Enum) {
	ogl.BlendFuncSeparate(enum(srcRGB), enum(dstRGB), enum(srcAlpha), enum(dstAlpha))
}

func (d *Driver) BlendFunci(buf uint32, src, dst gl.Enum) {
	ogl.BlendFunci(buf, enum(src), enum(dst))
}

func (d *Driver) BlendFuncSeparatei(buf uint32, srcRGB, dstRGB, srcAlpha, dstAlpha gl.Enum) {
	ogl.BlendFuncSeparatei(buf, enum(srcRGB), enum(dstRGB), enum(srcAlpha), enum(dstAlpha))
}

func (d *Driver) BlendEquation(mode gl.Enum) { ogl.BlendEquation(enum(mode)) }

func (d *Driver) BlendEquationSeparate(modeRGB, modeAlpha gl.Enum) {
	ogl.BlendEquationSeparate(enum(modeRGB), enum(modeAlpha))
}

func (d *Driver) BlendEquationi(buf uint32, mode gl.Enum) { ogl.BlendEquationi(buf, enum(mode)) }

func (d *Driver) BlendEquationSeparatei(buf uint32, modeRGB, modeAlpha gl.Enum) {
	ogl.BlendEquationSeparatei(buf, enum(modeRGB), enum(modeAlpha))
}

func (d *Driver) DepthMask(flag bool)     { ogl.DepthMask(flag) }
func (d *Driver) DepthFunc(fn gl.Enum)    { ogl.DepthFunc(enum(fn)) }
func (d *Driver) StencilMask(mask uint32) { ogl.StencilMask(mask) }

func (d *Driver) StencilOp(sfail, dpfail, dppass gl.Enum) {
	ogl.StencilOp(enum(sfail), enum(dpfail), enum(dppass))
}

func (d *Driver) StencilOpSeparate(face, sfail, dpfail, dppass gl.Enum) {
	ogl.StencilOpSeparate(enum(face), enum(sfail), enum(dpfail), enum(dppass))
}

func (d *Driver) StencilFunc(fn gl.Enum, ref int32, mask uint32) {
	ogl.StencilFunc(enum(fn), ref, mask)
}

func (d *Driver) StencilFuncSeparate(face, fn gl.Enum, ref int32, mask uint32) {
	ogl.StencilFuncSeparate(enum(face), enum(fn), ref, mask)
}

func (d *Driver) Viewport(x, y, width, height int32) { ogl.Viewport(x, y, width, height) }
func (d *Driver) DepthRange(near, far float64)       { ogl.DepthRange(near, far) }

func (d *Driver) ViewportIndexedf(index uint32, x, y, width, height float32) {
	ogl.ViewportIndexedf(index, x, y, width, height)
}

func (d *Driver) DepthRangeIndexed(index uint32, near, far float64) {
	ogl.DepthRangeIndexed(index, near, far)
}

func (d *Driver) Scissor(x, y, width, height int32)          { ogl.Scissor(x, y, width, height) }
func (d *Driver) PatchParameteri(pname gl.Enum, value int32) { ogl.PatchParameteri(enum(pname), value) }

func (d *Driver) ClearColor(r, g, b, a float32) { ogl.ClearColor(r, g, b, a) }
func (d *Driver) ClearDepth(depth float64)      { ogl.ClearDepth(depth) }
func (d *Driver) ClearStencil(s int32)          { ogl.ClearStencil(s) }
func (d *Driver) Clear(mask gl.Enum)            { ogl.Clear(enum(mask)) }

func (d *Driver) ClearBufferfv(buffer gl.Enum, drawBuffer int32, value []float32) {
	if len(value) == 0 {
		return
	}
	ogl.ClearBufferfv(enum(buffer), drawBuffer, &value[0])
}

func (d *Driver) Flush()  { ogl.Flush() }
func (d *Driver) Finish() { ogl.Finish() }

func (d *Driver) GetError() gl.Enum { return gl.Enum(ogl.GetError()) }

func (d *Driver) GetString(name gl.Enum) string {
	s := ogl.GetString(enum(name))
	if s == nil {
		return ""
	}
	return ogl.GoStr(s)
}

func (d *Driver) GetStringi(name gl.Enum, index uint32) string {
	s := ogl.GetStringi(enum(name), index)
	if s == nil {
		return ""
	}
	return ogl.GoStr(s)
}

func (d *Driver) GetInteger(pname gl.Enum) int32 {
	var v int32
	ogl.GetIntegerv(enum(pname), &v)
	return v
}

// DebugMessageCallback installs cb as the debug output receiver. The driver
// may invoke it from any thread while the context is live.
func (d *Driver) DebugMessageCallback(cb gl.DebugCallback) {
	d.debug = cb
	if cb == nil {
		ogl.DebugMessageCallback(nil, nil)
		return
	}
	ogl.DebugMessageCallback(func(source, gltype, id, severity uint32, _ int32, message string, _ unsafe.Pointer) {
		d.debug(gl.Enum(source), gl.Enum(gltype), id, gl.Enum(severity), message)
	}, nil)
}

func (d *Driver) GenVertexArray() uint32 {
	var vao uint32
	ogl.GenVertexArrays(1, &vao)
	return vao
}

func (d *Driver) DeleteVertexArray(vao uint32) { ogl.DeleteVertexArrays(1, &vao) }
func (d *Driver) BindVertexArray(vao uint32)   { ogl.BindVertexArray(vao) }

func (d *Driver) BindVertexBuffer(binding, buffer uint32, offset int, stride int32) {
	ogl.BindVertexBuffer(binding, buffer, offset, stride)
}

func (d *Driver) EnableVertexAttribArray(index uint32)  { ogl.EnableVertexAttribArray(index) }
func (d *Driver) DisableVertexAttribArray(index uint32) { ogl.DisableVertexAttribArray(index) }

func (d *Driver) VertexAttribFormat(index uint32, size int32, typ gl.Enum, normalized bool, relativeOffset uint32) {
	ogl.VertexAttribFormat(index, size, enum(typ), normalized, relativeOffset)
}

func (d *Driver) VertexAttribIFormat(index uint32, size int32, typ gl.Enum, relativeOffset uint32) {
	ogl.VertexAttribIFormat(index, size, enum(typ), relativeOffset)
}

func (d *Driver) VertexAttribBinding(index, binding uint32)    { ogl.VertexAttribBinding(index, binding) }
func (d *Driver) VertexBindingDivisor(binding, divisor uint32) { ogl.VertexBindingDivisor(binding, divisor) }
func (d *Driver) VertexAttribDivisor(index, divisor uint32)    { ogl.VertexAttribDivisor(index, divisor) }

func (d *Driver) VertexAttribPointer(index uint32, size int32, typ gl.Enum, normalized bool, stride int32, offset int) {
	ogl.VertexAttribPointer(index, size, enum(typ), normalized, stride, ogl.PtrOffset(offset))
}

func (d *Driver) VertexAttribfv(index uint32, v []float32) {
	switch len(v) {
	case 1:
		ogl.VertexAttrib1fv(index, &v[0])
	case 2:
		ogl.VertexAttrib2fv(index, &v[0])
	case 3:
		ogl.VertexAttrib3fv(index, &v[0])
	case 4:
		ogl.VertexAttrib4fv(index, &v[0])
	}
}

func (d *Driver) VertexAttribIiv(index uint32, v []int32) {
	switch len(v) {
	case 1:
		ogl.VertexAttribI1iv(index, &v[0])
	case 2:
		ogl.VertexAttribI2iv(index, &v[0])
	case 3:
		ogl.VertexAttribI3iv(index, &v[0])
	case 4:
		ogl.VertexAttribI4iv(index, &v[0])
	}
}

func (d *Driver) EnableClientState(array gl.Enum)     { ogl.EnableClientState(enum(array)) }
func (d *Driver) DisableClientState(array gl.Enum)    { ogl.DisableClientState(enum(array)) }
func (d *Driver) ClientActiveTexture(texture gl.Enum) { ogl.ClientActiveTexture(enum(texture)) }

func (d *Driver) VertexPointer(size int32, typ gl.Enum, stride int32, offset int) {
	ogl.VertexPointer(size, enum(typ), stride, ogl.PtrOffset(offset))
}

func (d *Driver) NormalPointer(typ gl.Enum, stride int32, offset int) {
	ogl.NormalPointer(enum(typ), stride, ogl.PtrOffset(offset))
}

func (d *Driver) ColorPointer(size int32, typ gl.Enum, stride int32, offset int) {
	ogl.ColorPointer(size, enum(typ), stride, ogl.PtrOffset(offset))
}

func (d *Driver) SecondaryColorPointer(size int32, typ gl.Enum, stride int32, offset int) {
	ogl.SecondaryColorPointer(size, enum(typ), stride, ogl.PtrOffset(offset))
}

func (d *Driver) TexCoordPointer(size int32, typ gl.Enum, stride int32, offset int) {
	ogl.TexCoordPointer(size, enum(typ), stride, ogl.PtrOffset(offset))
}

func (d *Driver) Color4fv(v [4]float32)     { ogl.Color4fv(&v[0]) }
func (d *Driver) MatrixMode(mode gl.Enum)   { ogl.MatrixMode(enum(mode)) }
func (d *Driver) LoadIdentity()             { ogl.LoadIdentity() }
func (d *Driver) LoadMatrixf(m [16]float32) { ogl.LoadMatrixf(&m[0]) }
func (d *Driver) ActiveTexture(tex gl.Enum) { ogl.ActiveTexture(enum(tex)) }

func (d *Driver) BindTexture(target gl.Enum, texture uint32) {
	ogl.BindTexture(enum(target), texture)
}

func (d *Driver) GenBuffer() uint32 {
	var buffer uint32
	ogl.GenBuffers(1, &buffer)
	return buffer
}

func (d *Driver) DeleteBuffer(buffer uint32)               { ogl.DeleteBuffers(1, &buffer) }
func (d *Driver) BindBuffer(target gl.Enum, buffer uint32) { ogl.BindBuffer(enum(target), buffer) }

// BufferData allocates size bytes. When data is shorter than size the store
// is allocated empty and data is uploaded into its head.
func (d *Driver) BufferData(target gl.Enum, data []byte, size int, usage gl.Enum) {
	if len(data) >= size {
		ogl.BufferData(enum(target), size, bytesPtr(data), enum(usage))
		return
	}
	ogl.BufferData(enum(target), size, nil, enum(usage))
	if len(data) > 0 {
		ogl.BufferSubData(enum(target), 0, len(data), bytesPtr(data))
	}
}

func (d *Driver) BufferSubData(target gl.Enum, offset int, data []byte) {
	if len(data) == 0 {
		return
	}
	ogl.BufferSubData(enum(target), offset, len(data), bytesPtr(data))
}

func (d *Driver) BindBufferBase(target gl.Enum, index, buffer uint32) {
	ogl.BindBufferBase(enum(target), index, buffer)
}

func (d *Driver) GenTexture() uint32 {
	var texture uint32
	ogl.GenTextures(1, &texture)
	return texture
}

func (d *Driver) DeleteTexture(texture uint32) { ogl.DeleteTextures(1, &texture) }

func (d *Driver) TexImage2D(target gl.Enum, level, internalFormat, width, height int32, format, typ gl.Enum, pixels []byte) {
	ogl.TexImage2D(enum(target), level, internalFormat, width, height, 0, enum(format), enum(typ), bytesPtr(pixels))
}

func (d *Driver) TexParameteri(target, pname gl.Enum, param int32) {
	ogl.TexParameteri(enum(target), enum(pname), param)
}

func (d *Driver) GenSampler() uint32 {
	var sampler uint32
	ogl.GenSamplers(1, &sampler)
	return sampler
}

func (d *Driver) DeleteSampler(sampler uint32) { ogl.DeleteSamplers(1, &sampler) }

func (d *Driver) SamplerParameteri(sampler uint32, pname gl.Enum, param int32) {
	ogl.SamplerParameteri(sampler, enum(pname), param)
}

func (d *Driver) BindTextureUnit(unit, texture uint32) { ogl.BindTextureUnit(unit, texture) }
func (d *Driver) BindSampler(unit, sampler uint32)     { ogl.BindSampler(unit, sampler) }

func (d *Driver) BindImageTexture(unit, texture uint32, level int32, layered bool, layer int32, access, format gl.Enum) {
	ogl.BindImageTexture(unit, texture, level, layered, layer, enum(access), enum(format))
}

func (d *Driver) CreateShader(typ gl.Enum) uint32 { return ogl.CreateShader(enum(typ)) }

func (d *Driver) ShaderSource(shader uint32, source string) {
	csources, free := ogl.Strs(source + "\x00")
	defer free()
	ogl.ShaderSource(shader, 1, csources, nil)
}

func (d *Driver) CompileShader(shader uint32) { ogl.CompileShader(shader) }

func (d *Driver) GetShaderi(shader uint32, pname gl.Enum) int32 {
	var v int32
	ogl.GetShaderiv(shader, enum(pname), &v)
	return v
}

func (d *Driver) GetShaderInfoLog(shader uint32) string {
	var length int32
	ogl.GetShaderiv(shader, ogl.INFO_LOG_LENGTH, &length)
	if length <= 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(length+1))
	ogl.GetShaderInfoLog(shader, length, nil, ogl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (d *Driver) DeleteShader(shader uint32)          { ogl.DeleteShader(shader) }
func (d *Driver) CreateProgram() uint32               { return ogl.CreateProgram() }
func (d *Driver) AttachShader(program, shader uint32) { ogl.AttachShader(program, shader) }

func (d *Driver) ProgramParameteri(program uint32, pname gl.Enum, value int32) {
	ogl.ProgramParameteri(program, enum(pname), value)
}

func (d *Driver) LinkProgram(program uint32) { ogl.LinkProgram(program) }

func (d *Driver) GetProgrami(program uint32, pname gl.Enum) int32 {
	var v int32
	ogl.GetProgramiv(program, enum(pname), &v)
	return v
}

func (d *Driver) GetProgramInfoLog(program uint32) string {
	var length int32
	ogl.GetProgramiv(program, ogl.INFO_LOG_LENGTH, &length)
	if length <= 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(length+1))
	ogl.GetProgramInfoLog(program, length, nil, ogl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (d *Driver) DeleteProgram(program uint32) { ogl.DeleteProgram(program) }
func (d *Driver) UseProgram(program uint32)    { ogl.UseProgram(program) }

func (d *Driver) GetUniformLocation(program uint32, name string) int32 {
	return ogl.GetUniformLocation(program, cstr(name))
}

func (d *Driver) GetUniformBlockIndex(program uint32, name string) uint32 {
	return ogl.GetUniformBlockIndex(program, cstr(name))
}

// ProgramUniformiv uploads v as an array of vectors with the given number
// of components.
func (d *Driver) ProgramUniformiv(program uint32, location int32, components int, v []int32) {
	if components < 1 || len(v) < components {
		return
	}
	count := int32(len(v) / components)
	switch components {
	case 1:
		ogl.ProgramUniform1iv(program, location, count, &v[0])
	case 2:
		ogl.ProgramUniform2iv(program, location, count, &v[0])
	case 3:
		ogl.ProgramUniform3iv(program, location, count, &v[0])
	case 4:
		ogl.ProgramUniform4iv(program, location, count, &v[0])
	}
}

func (d *Driver) ProgramUniformfv(program uint32, location int32, components int, v []float32) {
	if components < 1 || len(v) < components {
		return
	}
	count := int32(len(v) / components)
	switch components {
	case 1:
		ogl.ProgramUniform1fv(program, location, count, &v[0])
	case 2:
		ogl.ProgramUniform2fv(program, location, count, &v[0])
	case 3:
		ogl.ProgramUniform3fv(program, location, count, &v[0])
	case 4:
		ogl.ProgramUniform4fv(program, location, count, &v[0])
	}
}

func (d *Driver) ProgramUniformMatrixfv(program uint32, location int32, cols, rows int, transpose bool, v []float32) {
	if cols*rows == 0 || len(v) < cols*rows {
		return
	}
	count := int32(len(v) / (cols * rows))
	switch {
	case cols == 2 && rows == 2:
		ogl.ProgramUniformMatrix2fv(program, location, count, transpose, &v[0])
	case cols == 3 && rows == 3:
		ogl.ProgramUniformMatrix3fv(program, location, count, transpose, &v[0])
	case cols == 4 && rows == 4:
		ogl.ProgramUniformMatrix4fv(program, location, count, transpose, &v[0])
	case cols == 2 && rows == 3:
		ogl.ProgramUniformMatrix2x3fv(program, location, count, transpose, &v[0])
	case cols == 3 && rows == 2:
		ogl.ProgramUniformMatrix3x2fv(program, location, count, transpose, &v[0])
	case cols == 2 && rows == 4:
		ogl.ProgramUniformMatrix2x4fv(program, location, count, transpose, &v[0])
	case cols == 4 && rows == 2:
		ogl.ProgramUniformMatrix4x2fv(program, location, count, transpose, &v[0])
	case cols == 3 && rows == 4:
		ogl.ProgramUniformMatrix3x4fv(program, location, count, transpose, &v[0])
	case cols == 4 && rows == 3:
		ogl.ProgramUniformMatrix4x3fv(program, location, count, transpose, &v[0])
	}
}

func (d *Driver) UniformBlockBinding(program, blockIndex, binding uint32) {
	ogl.UniformBlockBinding(program, blockIndex, binding)
}

func (d *Driver) ShaderStorageBlockBinding(program, blockIndex, binding uint32) {
	ogl.ShaderStorageBlockBinding(program, blockIndex, binding)
}

func (d *Driver) GenProgramPipeline() uint32 {
	var pipeline uint32
	ogl.GenProgramPipelines(1, &pipeline)
	return pipeline
}

func (d *Driver) DeleteProgramPipeline(pipeline uint32) { ogl.DeleteProgramPipelines(1, &pipeline) }
func (d *Driver) BindProgramPipeline(pipeline uint32)   { ogl.BindProgramPipeline(pipeline) }

func (d *Driver) UseProgramStages(pipeline uint32, stages gl.Enum, program uint32) {
	ogl.UseProgramStages(pipeline, enum(stages), program)
}

func (d *Driver) GenFramebuffer() uint32 {
	var fbo uint32
	ogl.GenFramebuffers(1, &fbo)
	return fbo
}

func (d *Driver) DeleteFramebuffer(fbo uint32)               { ogl.DeleteFramebuffers(1, &fbo) }
func (d *Driver) BindFramebuffer(target gl.Enum, fbo uint32) { ogl.BindFramebuffer(enum(target), fbo) }

func (d *Driver) FramebufferTexture2D(target, attachment, texTarget gl.Enum, texture uint32, level int32) {
	ogl.FramebufferTexture2D(enum(target), enum(attachment), enum(texTarget), texture, level)
}

func (d *Driver) ReadBuffer(src gl.Enum) { ogl.ReadBuffer(enum(src)) }
func (d *Driver) DrawBuffer(buf gl.Enum) { ogl.DrawBuffer(enum(buf)) }

func (d *Driver) BlitFramebuffer(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1 int32, mask, filter gl.Enum) {
	ogl.BlitFramebuffer(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1, enum(mask), enum(filter))
}

func (d *Driver) ReadPixels(x, y, width, height int32, format, typ gl.Enum, pixels []byte) {
	ogl.ReadPixels(x, y, width, height, enum(format), enum(typ), bytesPtr(pixels))
}

func (d *Driver) DrawArrays(mode gl.Enum, first, count int32) {
	ogl.DrawArrays(enum(mode), first, count)
}

func (d *Driver) DrawArraysInstanced(mode gl.Enum, first, count, instances int32) {
	ogl.DrawArraysInstanced(enum(mode), first, count, instances)
}

func (d *Driver) DrawArraysInstancedBaseInstance(mode gl.Enum, first, count, instances int32, baseInstance uint32) {
	ogl.DrawArraysInstancedBaseInstance(enum(mode), first, count, instances, baseInstance)
}

func (d *Driver) DrawElements(mode gl.Enum, count int32, typ gl.Enum, offset int) {
	ogl.DrawElements(enum(mode), count, enum(typ), ogl.PtrOffset(offset))
}

func (d *Driver) DrawElementsBaseVertex(mode gl.Enum, count int32, typ gl.Enum, offset int, baseVertex int32) {
	ogl.DrawElementsBaseVertex(enum(mode), count, enum(typ), ogl.PtrOffset(offset), baseVertex)
}

func (d *Driver) DrawElementsInstanced(mode gl.Enum, count int32, typ gl.Enum, offset int, instances int32) {
	ogl.DrawElementsInstanced(enum(mode), count, enum(typ), ogl.PtrOffset(offset), instances)
}

func (d *Driver) DrawElementsInstancedBaseVertex(mode gl.Enum, count int32, typ gl.Enum, offset int, instances, baseVertex int32) {
	ogl.DrawElementsInstancedBaseVertex(enum(mode), count, enum(typ), ogl.PtrOffset(offset), instances, baseVertex)
}

func (d *Driver) DrawElementsInstancedBaseInstance(mode gl.Enum, count int32, typ gl.Enum, offset int, instances int32, baseInstance uint32) {
	ogl.DrawElementsInstancedBaseInstance(enum(mode), count, enum(typ), ogl.PtrOffset(offset), instances, baseInstance)
}

func (d *Driver) DrawElementsInstancedBaseVertexBaseInstance(mode gl.Enum, count int32, typ gl.Enum, offset int, instances, baseVertex int32, baseInstance uint32) {
	ogl.DrawElementsInstancedBaseVertexBaseInstance(enum(mode), count, enum(typ), ogl.PtrOffset(offset), instances, baseVertex, baseInstance)
}

func (d *Driver) DrawArraysIndirect(mode gl.Enum, offset int) {
	ogl.DrawArraysIndirect(enum(mode), ogl.PtrOffset(offset))
}

func (d *Driver) MultiDrawArraysIndirect(mode gl.Enum, offset int, drawCount, stride int32) {
	ogl.MultiDrawArraysIndirect(enum(mode), ogl.PtrOffset(offset), drawCount, stride)
}

func (d *Driver) DrawElementsIndirect(mode, typ gl.Enum, offset int) {
	ogl.DrawElementsIndirect(enum(mode), enum(typ), ogl.PtrOffset(offset))
}

func (d *Driver) MultiDrawElementsIndirect(mode, typ gl.Enum, offset int, drawCount, stride int32) {
	ogl.MultiDrawElementsIndirect(enum(mode), enum(typ), ogl.PtrOffset(offset), drawCount, stride)
}

func (d *Driver) DrawMeshTasksNV(first, count uint32) { ogl.DrawMeshTasksNV(first, count) }
func (d *Driver) DrawMeshTasksIndirectNV(offset int)  { ogl.DrawMeshTasksIndirectNV(offset) }

func (d *Driver) MultiDrawMeshTasksIndirectNV(offset int, drawCount, stride int32) {
	ogl.MultiDrawMeshTasksIndirectNV(offset, drawCount, stride)
}

func (d *Driver) DispatchCompute(x, y, z uint32) { ogl.DispatchCompute(x, y, z) }
