package opengl

import (
	"fmt"
	"strings"

	"github.com/spaghettifunk/glrhi/engine/renderer/gl"
)

// glCall is one recorded driver entry point invocation.
type glCall struct {
	name string
	args []interface{}
}

func (c glCall) String() string {
	// integers of any type render the same so untyped enum constants compare
	parts := make([]string, len(c.args))
	for i, a := range c.args {
		parts[i] = fmt.Sprint(a)
	}
	return c.name + "(" + strings.Join(parts, ", ") + ")"
}

// fakeGL records every call issued through gl.Functions. Object creation
// hands out increasing names starting at 1000.
type fakeGL struct {
	calls  []glCall
	handle uint32

	errors        []gl.Enum
	strings       map[gl.Enum]string
	extensions    []string
	integers      map[gl.Enum]int32
	uniforms      map[string]int32
	failCompile   bool
	failLink      bool
	debugCallback gl.DebugCallback
	framebuffer   []byte
}

var _ gl.Functions = (*fakeGL)(nil)

func newFakeGL() *fakeGL {
	return &fakeGL{
		handle:   1000,
		strings:  map[gl.Enum]string{},
		integers: map[gl.Enum]int32{},
		uniforms: map[string]int32{},
	}
}

func (f *fakeGL) record(name string, args ...interface{}) {
	f.calls = append(f.calls, glCall{name: name, args: args})
}

func (f *fakeGL) nextHandle() uint32 {
	f.handle++
	return f.handle
}

// reset forgets the recorded calls.
func (f *fakeGL) reset() {
	f.calls = nil
}

// names lists the recorded entry points in order.
func (f *fakeGL) names() []string {
	names := make([]string, len(f.calls))
	for i, c := range f.calls {
		names[i] = c.name
	}
	return names
}

// trace renders every recorded call with its arguments.
func (f *fakeGL) trace() []string {
	trace := make([]string, len(f.calls))
	for i, c := range f.calls {
		trace[i] = c.String()
	}
	return trace
}

// count returns how many times an entry point was called.
func (f *fakeGL) count(name string) int {
	n := 0
	for _, c := range f.calls {
		if c.name == name {
			n++
		}
	}
	return n
}

// find returns the recorded calls of one entry point.
func (f *fakeGL) find(name string) []glCall {
	var found []glCall
	for _, c := range f.calls {
		if c.name == name {
			found = append(found, c)
		}
	}
	return found
}

// called reports whether the entry point was invoked with exactly args.
func (f *fakeGL) called(name string, args ...interface{}) bool {
	want := glCall{name: name, args: args}.String()
	for _, c := range f.calls {
		if c.name == name && c.String() == want {
			return true
		}
	}
	return false
}

func (f *fakeGL) Enable(cap gl.Enum) {
	f.record("Enable", cap)
}

func (f *fakeGL) Disable(cap gl.Enum) {
	f.record("Disable", cap)
}

func (f *fakeGL) Enablei(cap gl.Enum, index uint32) {
	f.record("Enablei", cap, index)
}

func (f *fakeGL) Disablei(cap gl.Enum, index uint32) {
	f.record("Disablei", cap, index)
}

func (f *fakeGL) PolygonMode(face gl.Enum, mode gl.Enum) {
	f.record("PolygonMode", face, mode)
}

func (f *fakeGL) FrontFace(mode gl.Enum) {
	f.record("FrontFace", mode)
}

func (f *fakeGL) CullFace(mode gl.Enum) {
	f.record("CullFace", mode)
}

func (f *fakeGL) ColorMask(r bool, g bool, b bool, a bool) {
	f.record("ColorMask", r, g, b, a)
}

func (f *fakeGL) ColorMaski(index uint32, r bool, g bool, b bool, a bool) {
	f.record("ColorMaski", index, r, g, b, a)
}

func (f *fakeGL) BlendFunc(src gl.Enum, dst gl.Enum) {
	f.record("BlendFunc", src, dst)
}

func (f *fakeGL) BlendFuncSeparate(srcRGB gl.Enum, dstRGB gl.Enum, srcAlpha gl.Enum, dstAlpha gl.Enum) {
	f.record("BlendFuncSeparate", srcRGB, dstRGB, srcAlpha, dstAlpha)
}

func (f *fakeGL) BlendFunci(buf uint32, src gl.Enum, dst gl.Enum) {
	f.record("BlendFunci", buf, src, dst)
}

func (f *fakeGL) BlendFuncSeparatei(buf uint32, srcRGB gl.Enum, dstRGB gl.Enum, srcAlpha gl.Enum, dstAlpha gl.Enum) {
	f.record("BlendFuncSeparatei", buf, srcRGB, dstRGB, srcAlpha, dstAlpha)
}

func (f *fakeGL) BlendEquation(mode gl.Enum) {
	f.record("BlendEquation", mode)
}

func (f *fakeGL) BlendEquationSeparate(modeRGB gl.Enum, modeAlpha gl.Enum) {
	f.record("BlendEquationSeparate", modeRGB, modeAlpha)
}

func (f *fakeGL) BlendEquationi(buf uint32, mode gl.Enum) {
	f.record("BlendEquationi", buf, mode)
}

func (f *fakeGL) BlendEquationSeparatei(buf uint32, modeRGB gl.Enum, modeAlpha gl.Enum) {
	f.record("BlendEquationSeparatei", buf, modeRGB, modeAlpha)
}

func (f *fakeGL) DepthMask(flag bool) {
	f.record("DepthMask", flag)
}

func (f *fakeGL) DepthFunc(fn gl.Enum) {
	f.record("DepthFunc", fn)
}

func (f *fakeGL) StencilMask(mask uint32) {
	f.record("StencilMask", mask)
}

func (f *fakeGL) StencilOp(sfail gl.Enum, dpfail gl.Enum, dppass gl.Enum) {
	f.record("StencilOp", sfail, dpfail, dppass)
}

func (f *fakeGL) StencilOpSeparate(face gl.Enum, sfail gl.Enum, dpfail gl.Enum, dppass gl.Enum) {
	f.record("StencilOpSeparate", face, sfail, dpfail, dppass)
}

func (f *fakeGL) StencilFunc(fn gl.Enum, ref int32, mask uint32) {
	f.record("StencilFunc", fn, ref, mask)
}

func (f *fakeGL) StencilFuncSeparate(face gl.Enum, fn gl.Enum, ref int32, mask uint32) {
	f.record("StencilFuncSeparate", face, fn, ref, mask)
}

func (f *fakeGL) Viewport(x int32, y int32, width int32, height int32) {
	f.record("Viewport", x, y, width, height)
}

func (f *fakeGL) DepthRange(near float64, far float64) {
	f.record("DepthRange", near, far)
}

func (f *fakeGL) ViewportIndexedf(index uint32, x float32, y float32, width float32, height float32) {
	f.record("ViewportIndexedf", index, x, y, width, height)
}

func (f *fakeGL) DepthRangeIndexed(index uint32, near float64, far float64) {
	f.record("DepthRangeIndexed", index, near, far)
}

func (f *fakeGL) Scissor(x int32, y int32, width int32, height int32) {
	f.record("Scissor", x, y, width, height)
}

func (f *fakeGL) PatchParameteri(pname gl.Enum, value int32) {
	f.record("PatchParameteri", pname, value)
}

func (f *fakeGL) ClearColor(r float32, g float32, b float32, a float32) {
	f.record("ClearColor", r, g, b, a)
}

func (f *fakeGL) ClearDepth(depth float64) {
	f.record("ClearDepth", depth)
}

func (f *fakeGL) ClearStencil(s int32) {
	f.record("ClearStencil", s)
}

func (f *fakeGL) Clear(mask gl.Enum) {
	f.record("Clear", mask)
}

func (f *fakeGL) ClearBufferfv(buffer gl.Enum, drawBuffer int32, value []float32) {
	f.record("ClearBufferfv", buffer, drawBuffer, value)
}

func (f *fakeGL) Flush() {
	f.record("Flush")
}

func (f *fakeGL) Finish() {
	f.record("Finish")
}

func (f *fakeGL) GetError() gl.Enum {
	f.record("GetError")
	if len(f.errors) == 0 {
		return gl.NO_ERROR
	}
	e := f.errors[0]
	f.errors = f.errors[1:]
	return e
}

func (f *fakeGL) GetString(name gl.Enum) string {
	f.record("GetString", name)
	return f.strings[name]
}

func (f *fakeGL) GetStringi(name gl.Enum, index uint32) string {
	f.record("GetStringi", name, index)
	if int(index) < len(f.extensions) {
		return f.extensions[index]
	}
	return ""
}

func (f *fakeGL) GetInteger(pname gl.Enum) int32 {
	f.record("GetInteger", pname)
	if pname == gl.NUM_EXTENSIONS {
		return int32(len(f.extensions))
	}
	return f.integers[pname]
}

func (f *fakeGL) DebugMessageCallback(cb gl.DebugCallback) {
	f.record("DebugMessageCallback")
	f.debugCallback = cb
}

func (f *fakeGL) GenVertexArray() uint32 {
	f.record("GenVertexArray")
	return f.nextHandle()
}

func (f *fakeGL) DeleteVertexArray(vao uint32) {
	f.record("DeleteVertexArray", vao)
}

func (f *fakeGL) BindVertexArray(vao uint32) {
	f.record("BindVertexArray", vao)
}

func (f *fakeGL) BindVertexBuffer(binding uint32, buffer uint32, offset int, stride int32) {
	f.record("BindVertexBuffer", binding, buffer, offset, stride)
}

func (f *fakeGL) EnableVertexAttribArray(index uint32) {
	f.record("EnableVertexAttribArray", index)
}

func (f *fakeGL) DisableVertexAttribArray(index uint32) {
	f.record("DisableVertexAttribArray", index)
}

func (f *fakeGL) VertexAttribFormat(index uint32, size int32, typ gl.Enum, normalized bool, relativeOffset uint32) {
	f.record("VertexAttribFormat", index, size, typ, normalized, relativeOffset)
}

func (f *fakeGL) VertexAttribIFormat(index uint32, size int32, typ gl.Enum, relativeOffset uint32) {
	f.record("VertexAttribIFormat", index, size, typ, relativeOffset)
}

func (f *fakeGL) VertexAttribBinding(index uint32, binding uint32) {
	f.record("VertexAttribBinding", index, binding)
}

func (f *fakeGL) VertexBindingDivisor(binding uint32, divisor uint32) {
	f.record("VertexBindingDivisor", binding, divisor)
}

func (f *fakeGL) VertexAttribDivisor(index uint32, divisor uint32) {
	f.record("VertexAttribDivisor", index, divisor)
}

func (f *fakeGL) VertexAttribPointer(index uint32, size int32, typ gl.Enum, normalized bool, stride int32, offset int) {
	f.record("VertexAttribPointer", index, size, typ, normalized, stride, offset)
}

func (f *fakeGL) VertexAttribfv(index uint32, v []float32) {
	f.record("VertexAttribfv", index, v)
}

func (f *fakeGL) VertexAttribIiv(index uint32, v []int32) {
	f.record("VertexAttribIiv", index, v)
}

func (f *fakeGL) EnableClientState(array gl.Enum) {
	f.record("EnableClientState", array)
}

func (f *fakeGL) DisableClientState(array gl.Enum) {
	f.record("DisableClientState", array)
}

func (f *fakeGL) ClientActiveTexture(texture gl.Enum) {
	f.record("ClientActiveTexture", texture)
}

func (f *fakeGL) VertexPointer(size int32, typ gl.Enum, stride int32, offset int) {
	f.record("VertexPointer", size, typ, stride, offset)
}

func (f *fakeGL) NormalPointer(typ gl.Enum, stride int32, offset int) {
	f.record("NormalPointer", typ, stride, offset)
}

func (f *fakeGL) ColorPointer(size int32, typ gl.Enum, stride int32, offset int) {
	f.record("ColorPointer", size, typ, stride, offset)
}

func (f *fakeGL) SecondaryColorPointer(size int32, typ gl.Enum, stride int32, offset int) {
	f.record("SecondaryColorPointer", size, typ, stride, offset)
}

func (f *fakeGL) TexCoordPointer(size int32, typ gl.Enum, stride int32, offset int) {
	f.record("TexCoordPointer", size, typ, stride, offset)
}

func (f *fakeGL) Color4fv(v [4]float32) {
	f.record("Color4fv", v)
}

func (f *fakeGL) MatrixMode(mode gl.Enum) {
	f.record("MatrixMode", mode)
}

func (f *fakeGL) LoadIdentity() {
	f.record("LoadIdentity")
}

func (f *fakeGL) LoadMatrixf(m [16]float32) {
	f.record("LoadMatrixf", m)
}

func (f *fakeGL) ActiveTexture(texture gl.Enum) {
	f.record("ActiveTexture", texture)
}

func (f *fakeGL) BindTexture(target gl.Enum, texture uint32) {
	f.record("BindTexture", target, texture)
}

func (f *fakeGL) GenBuffer() uint32 {
	f.record("GenBuffer")
	return f.nextHandle()
}

func (f *fakeGL) DeleteBuffer(buffer uint32) {
	f.record("DeleteBuffer", buffer)
}

func (f *fakeGL) BindBuffer(target gl.Enum, buffer uint32) {
	f.record("BindBuffer", target, buffer)
}

func (f *fakeGL) BufferData(target gl.Enum, data []byte, size int, usage gl.Enum) {
	f.record("BufferData", target, append([]byte(nil), data...), size, usage)
}

func (f *fakeGL) BufferSubData(target gl.Enum, offset int, data []byte) {
	f.record("BufferSubData", target, offset, data)
}

func (f *fakeGL) BindBufferBase(target gl.Enum, index uint32, buffer uint32) {
	f.record("BindBufferBase", target, index, buffer)
}

func (f *fakeGL) GenTexture() uint32 {
	f.record("GenTexture")
	return f.nextHandle()
}

func (f *fakeGL) DeleteTexture(texture uint32) {
	f.record("DeleteTexture", texture)
}

func (f *fakeGL) TexImage2D(target gl.Enum, level int32, internalFormat int32, width int32, height int32, format gl.Enum, typ gl.Enum, pixels []byte) {
	f.record("TexImage2D", target, level, internalFormat, width, height, format, typ, pixels)
}

func (f *fakeGL) TexParameteri(target gl.Enum, pname gl.Enum, param int32) {
	f.record("TexParameteri", target, pname, param)
}

func (f *fakeGL) GenSampler() uint32 {
	f.record("GenSampler")
	return f.nextHandle()
}

func (f *fakeGL) DeleteSampler(sampler uint32) {
	f.record("DeleteSampler", sampler)
}

func (f *fakeGL) SamplerParameteri(sampler uint32, pname gl.Enum, param int32) {
	f.record("SamplerParameteri", sampler, pname, param)
}

func (f *fakeGL) BindTextureUnit(unit uint32, texture uint32) {
	f.record("BindTextureUnit", unit, texture)
}

func (f *fakeGL) BindSampler(unit uint32, sampler uint32) {
	f.record("BindSampler", unit, sampler)
}

func (f *fakeGL) BindImageTexture(unit uint32, texture uint32, level int32, layered bool, layer int32, access gl.Enum, format gl.Enum) {
	f.record("BindImageTexture", unit, texture, level, layered, layer, access, format)
}

func (f *fakeGL) CreateShader(typ gl.Enum) uint32 {
	f.record("CreateShader", typ)
	return f.nextHandle()
}

func (f *fakeGL) ShaderSource(shader uint32, source string) {
	f.record("ShaderSource", shader, source)
}

func (f *fakeGL) CompileShader(shader uint32) {
	f.record("CompileShader", shader)
}

func (f *fakeGL) GetShaderi(shader uint32, pname gl.Enum) int32 {
	f.record("GetShaderi", shader, pname)
	if pname == gl.COMPILE_STATUS && f.failCompile {
		return gl.FALSE
	}
	return gl.TRUE
}

func (f *fakeGL) GetShaderInfoLog(shader uint32) string {
	f.record("GetShaderInfoLog", shader)
	return "compile error"
}

func (f *fakeGL) DeleteShader(shader uint32) {
	f.record("DeleteShader", shader)
}

func (f *fakeGL) CreateProgram() uint32 {
	f.record("CreateProgram")
	return f.nextHandle()
}

func (f *fakeGL) AttachShader(program uint32, shader uint32) {
	f.record("AttachShader", program, shader)
}

func (f *fakeGL) ProgramParameteri(program uint32, pname gl.Enum, value int32) {
	f.record("ProgramParameteri", program, pname, value)
}

func (f *fakeGL) LinkProgram(program uint32) {
	f.record("LinkProgram", program)
}

func (f *fakeGL) GetProgrami(program uint32, pname gl.Enum) int32 {
	f.record("GetProgrami", program, pname)
	if pname == gl.LINK_STATUS && f.failLink {
		return gl.FALSE
	}
	return gl.TRUE
}

func (f *fakeGL) GetProgramInfoLog(program uint32) string {
	f.record("GetProgramInfoLog", program)
	return "link error"
}

func (f *fakeGL) DeleteProgram(program uint32) {
	f.record("DeleteProgram", program)
}

func (f *fakeGL) UseProgram(program uint32) {
	f.record("UseProgram", program)
}

func (f *fakeGL) GetUniformLocation(program uint32, name string) int32 {
	f.record("GetUniformLocation", program, name)
	if loc, ok := f.uniforms[name]; ok {
		return loc
	}
	return -1
}

func (f *fakeGL) GetUniformBlockIndex(program uint32, name string) uint32 {
	f.record("GetUniformBlockIndex", program, name)
	if loc, ok := f.uniforms[name]; ok {
		return uint32(loc)
	}
	return gl.INVALID_INDEX
}

func (f *fakeGL) ProgramUniformiv(program uint32, location int32, components int, v []int32) {
	f.record("ProgramUniformiv", program, location, components, v)
}

func (f *fakeGL) ProgramUniformfv(program uint32, location int32, components int, v []float32) {
	f.record("ProgramUniformfv", program, location, components, v)
}

func (f *fakeGL) ProgramUniformMatrixfv(program uint32, location int32, cols int, rows int, transpose bool, v []float32) {
	f.record("ProgramUniformMatrixfv", program, location, cols, rows, transpose, v)
}

func (f *fakeGL) UniformBlockBinding(program uint32, blockIndex uint32, binding uint32) {
	f.record("UniformBlockBinding", program, blockIndex, binding)
}

func (f *fakeGL) ShaderStorageBlockBinding(program uint32, blockIndex uint32, binding uint32) {
	f.record("ShaderStorageBlockBinding", program, blockIndex, binding)
}

func (f *fakeGL) GenProgramPipeline() uint32 {
	f.record("GenProgramPipeline")
	return f.nextHandle()
}

func (f *fakeGL) DeleteProgramPipeline(pipeline uint32) {
	f.record("DeleteProgramPipeline", pipeline)
}

func (f *fakeGL) BindProgramPipeline(pipeline uint32) {
	f.record("BindProgramPipeline", pipeline)
}

func (f *fakeGL) UseProgramStages(pipeline uint32, stages gl.Enum, program uint32) {
	f.record("UseProgramStages", pipeline, stages, program)
}

func (f *fakeGL) GenFramebuffer() uint32 {
	f.record("GenFramebuffer")
	return f.nextHandle()
}

func (f *fakeGL) DeleteFramebuffer(fbo uint32) {
	f.record("DeleteFramebuffer", fbo)
}

func (f *fakeGL) BindFramebuffer(target gl.Enum, fbo uint32) {
	f.record("BindFramebuffer", target, fbo)
}

func (f *fakeGL) FramebufferTexture2D(target gl.Enum, attachment gl.Enum, texTarget gl.Enum, texture uint32, level int32) {
	f.record("FramebufferTexture2D", target, attachment, texTarget, texture, level)
}

func (f *fakeGL) ReadBuffer(src gl.Enum) {
	f.record("ReadBuffer", src)
}

func (f *fakeGL) DrawBuffer(buf gl.Enum) {
	f.record("DrawBuffer", buf)
}

func (f *fakeGL) BlitFramebuffer(srcX0 int32, srcY0 int32, srcX1 int32, srcY1 int32, dstX0 int32, dstY0 int32, dstX1 int32, dstY1 int32, mask gl.Enum, filter gl.Enum) {
	f.record("BlitFramebuffer", srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1, mask, filter)
}

func (f *fakeGL) ReadPixels(x int32, y int32, width int32, height int32, format gl.Enum, typ gl.Enum, pixels []byte) {
	f.record("ReadPixels", x, y, width, height, format, typ, len(pixels))
	copy(pixels, f.framebuffer)
}

func (f *fakeGL) DrawArrays(mode gl.Enum, first int32, count int32) {
	f.record("DrawArrays", mode, first, count)
}

func (f *fakeGL) DrawArraysInstanced(mode gl.Enum, first int32, count int32, instances int32) {
	f.record("DrawArraysInstanced", mode, first, count, instances)
}

func (f *fakeGL) DrawArraysInstancedBaseInstance(mode gl.Enum, first int32, count int32, instances int32, baseInstance uint32) {
	f.record("DrawArraysInstancedBaseInstance", mode, first, count, instances, baseInstance)
}

func (f *fakeGL) DrawElements(mode gl.Enum, count int32, typ gl.Enum, offset int) {
	f.record("DrawElements", mode, count, typ, offset)
}

func (f *fakeGL) DrawElementsBaseVertex(mode gl.Enum, count int32, typ gl.Enum, offset int, baseVertex int32) {
	f.record("DrawElementsBaseVertex", mode, count, typ, offset, baseVertex)
}

func (f *fakeGL) DrawElementsInstanced(mode gl.Enum, count int32, typ gl.Enum, offset int, instances int32) {
	f.record("DrawElementsInstanced", mode, count, typ, offset, instances)
}

func (f *fakeGL) DrawElementsInstancedBaseVertex(mode gl.Enum, count int32, typ gl.Enum, offset int, instances int32, baseVertex int32) {
	f.record("DrawElementsInstancedBaseVertex", mode, count, typ, offset, instances, baseVertex)
}

func (f *fakeGL) DrawElementsInstancedBaseInstance(mode gl.Enum, count int32, typ gl.Enum, offset int, instances int32, baseInstance uint32) {
	f.record("DrawElementsInstancedBaseInstance", mode, count, typ, offset, instances, baseInstance)
}

func (f *fakeGL) DrawElementsInstancedBaseVertexBaseInstance(mode gl.Enum, count int32, typ gl.Enum, offset int, instances int32, baseVertex int32, baseInstance uint32) {
	f.record("DrawElementsInstancedBaseVertexBaseInstance", mode, count, typ, offset, instances, baseVertex, baseInstance)
}

func (f *fakeGL) DrawArraysIndirect(mode gl.Enum, offset int) {
	f.record("DrawArraysIndirect", mode, offset)
}

func (f *fakeGL) MultiDrawArraysIndirect(mode gl.Enum, offset int, drawCount int32, stride int32) {
	f.record("MultiDrawArraysIndirect", mode, offset, drawCount, stride)
}

func (f *fakeGL) DrawElementsIndirect(mode gl.Enum, typ gl.Enum, offset int) {
	f.record("DrawElementsIndirect", mode, typ, offset)
}

func (f *fakeGL) MultiDrawElementsIndirect(mode gl.Enum, typ gl.Enum, offset int, drawCount int32, stride int32) {
	f.record("MultiDrawElementsIndirect", mode, typ, offset, drawCount, stride)
}

func (f *fakeGL) DrawMeshTasksNV(first uint32, count uint32) {
	f.record("DrawMeshTasksNV", first, count)
}

func (f *fakeGL) DrawMeshTasksIndirectNV(offset int) {
	f.record("DrawMeshTasksIndirectNV", offset)
}

func (f *fakeGL) MultiDrawMeshTasksIndirectNV(offset int, drawCount int32, stride int32) {
	f.record("MultiDrawMeshTasksIndirectNV", offset, drawCount, stride)
}

func (f *fakeGL) DispatchCompute(x uint32, y uint32, z uint32) {
	f.record("DispatchCompute", x, y, z)
}
