// Package gl is the driver binding layer used by the OpenGL command context.
// Handles are plain GL object names, enums are GL enum values and buffer
// offsets are byte offsets into the currently bound buffer object.
package gl

// INVALID_INDEX is returned by block index queries for unknown names.
const INVALID_INDEX = 0xFFFFFFFF

// DebugCallback receives messages from the driver debug output.
type DebugCallback func(source, typ Enum, id uint32, severity Enum, message string)

// Functions is the set of driver entry points the command context issues.
// The native implementation lives in the native sub package.
type Functions interface {
	// Fixed function state
	Enable(cap Enum)
	Disable(cap Enum)
	Enablei(cap Enum, index uint32)
	Disablei(cap Enum, index uint32)
	PolygonMode(face, mode Enum)
	FrontFace(mode Enum)
	CullFace(mode Enum)
	ColorMask(r, g, b, a bool)
	ColorMaski(index uint32, r, g, b, a bool)
	BlendFunc(src, dst Enum)
	BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha Enum)
	BlendFunci(buf uint32, src, dst Enum)
	BlendFuncSeparatei(buf uint32, srcRGB, dstRGB, srcAlpha, dstAlpha Enum)
	BlendEquation(mode Enum)
	BlendEquationSeparate(modeRGB, modeAlpha Enum)
	BlendEquationi(buf uint32, mode Enum)
	BlendEquationSeparatei(buf uint32, modeRGB, modeAlpha Enum)
	DepthMask(flag bool)
	DepthFunc(fn Enum)
	StencilMask(mask uint32)
	StencilOp(sfail, dpfail, dppass Enum)
	StencilOpSeparate(face, sfail, dpfail, dppass Enum)
	StencilFunc(fn Enum, ref int32, mask uint32)
	StencilFuncSeparate(face, fn Enum, ref int32, mask uint32)
	Viewport(x, y, width, height int32)
	DepthRange(near, far float64)
	ViewportIndexedf(index uint32, x, y, width, height float32)
	DepthRangeIndexed(index uint32, near, far float64)
	Scissor(x, y, width, height int32)
	PatchParameteri(pname Enum, value int32)

	// Clearing and synchronisation
	ClearColor(r, g, b, a float32)
	ClearDepth(depth float64)
	ClearStencil(s int32)
	Clear(mask Enum)
	ClearBufferfv(buffer Enum, drawBuffer int32, value []float32)
	Flush()
	Finish()

	// Queries
	GetError() Enum
	GetString(name Enum) string
	GetStringi(name Enum, index uint32) string
	GetInteger(pname Enum) int32
	DebugMessageCallback(cb DebugCallback)

	// Vertex specification
	GenVertexArray() uint32
	DeleteVertexArray(vao uint32)
	BindVertexArray(vao uint32)
	BindVertexBuffer(binding, buffer uint32, offset int, stride int32)
	EnableVertexAttribArray(index uint32)
	DisableVertexAttribArray(index uint32)
	VertexAttribFormat(index uint32, size int32, typ Enum, normalized bool, relativeOffset uint32)
	VertexAttribIFormat(index uint32, size int32, typ Enum, relativeOffset uint32)
	VertexAttribBinding(index, binding uint32)
	VertexBindingDivisor(binding, divisor uint32)
	VertexAttribDivisor(index, divisor uint32)
	VertexAttribPointer(index uint32, size int32, typ Enum, normalized bool, stride int32, offset int)
	VertexAttribfv(index uint32, v []float32)
	VertexAttribIiv(index uint32, v []int32)

	// Legacy client state, only reachable on compatibility contexts
	EnableClientState(array Enum)
	DisableClientState(array Enum)
	ClientActiveTexture(texture Enum)
	VertexPointer(size int32, typ Enum, stride int32, offset int)
	NormalPointer(typ Enum, stride int32, offset int)
	ColorPointer(size int32, typ Enum, stride int32, offset int)
	SecondaryColorPointer(size int32, typ Enum, stride int32, offset int)
	TexCoordPointer(size int32, typ Enum, stride int32, offset int)
	Color4fv(v [4]float32)
	MatrixMode(mode Enum)
	LoadIdentity()
	LoadMatrixf(m [16]float32)
	ActiveTexture(texture Enum)
	BindTexture(target Enum, texture uint32)

	// Buffers
	GenBuffer() uint32
	DeleteBuffer(buffer uint32)
	BindBuffer(target Enum, buffer uint32)
	BufferData(target Enum, data []byte, size int, usage Enum)
	BufferSubData(target Enum, offset int, data []byte)
	BindBufferBase(target Enum, index, buffer uint32)

	// Textures and samplers
	GenTexture() uint32
	DeleteTexture(texture uint32)
	TexImage2D(target Enum, level, internalFormat, width, height int32, format, typ Enum, pixels []byte)
	TexParameteri(target, pname Enum, param int32)
	GenSampler() uint32
	DeleteSampler(sampler uint32)
	SamplerParameteri(sampler uint32, pname Enum, param int32)
	BindTextureUnit(unit, texture uint32)
	BindSampler(unit, sampler uint32)
	BindImageTexture(unit, texture uint32, level int32, layered bool, layer int32, access, format Enum)

	// Programs and pipelines
	CreateShader(typ Enum) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	GetShaderi(shader uint32, pname Enum) int32
	GetShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)
	CreateProgram() uint32
	AttachShader(program, shader uint32)
	ProgramParameteri(program uint32, pname Enum, value int32)
	LinkProgram(program uint32)
	GetProgrami(program uint32, pname Enum) int32
	GetProgramInfoLog(program uint32) string
	DeleteProgram(program uint32)
	UseProgram(program uint32)
	GetUniformLocation(program uint32, name string) int32
	GetUniformBlockIndex(program uint32, name string) uint32
	ProgramUniformiv(program uint32, location int32, components int, v []int32)
	ProgramUniformfv(program uint32, location int32, components int, v []float32)
	ProgramUniformMatrixfv(program uint32, location int32, cols, rows int, transpose bool, v []float32)
	UniformBlockBinding(program, blockIndex, binding uint32)
	ShaderStorageBlockBinding(program, blockIndex, binding uint32)
	GenProgramPipeline() uint32
	DeleteProgramPipeline(pipeline uint32)
	BindProgramPipeline(pipeline uint32)
	UseProgramStages(pipeline uint32, stages Enum, program uint32)

	// Framebuffers
	GenFramebuffer() uint32
	DeleteFramebuffer(fbo uint32)
	BindFramebuffer(target Enum, fbo uint32)
	FramebufferTexture2D(target, attachment, texTarget Enum, texture uint32, level int32)
	ReadBuffer(src Enum)
	DrawBuffer(buf Enum)
	BlitFramebuffer(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1 int32, mask, filter Enum)
	ReadPixels(x, y, width, height int32, format, typ Enum, pixels []byte)

	// Draws and dispatches
	DrawArrays(mode Enum, first, count int32)
	DrawArraysInstanced(mode Enum, first, count, instances int32)
	DrawArraysInstancedBaseInstance(mode Enum, first, count, instances int32, baseInstance uint32)
	DrawElements(mode Enum, count int32, typ Enum, offset int)
	DrawElementsBaseVertex(mode Enum, count int32, typ Enum, offset int, baseVertex int32)
	DrawElementsInstanced(mode Enum, count int32, typ Enum, offset int, instances int32)
	DrawElementsInstancedBaseVertex(mode Enum, count int32, typ Enum, offset int, instances, baseVertex int32)
	DrawElementsInstancedBaseInstance(mode Enum, count int32, typ Enum, offset int, instances int32, baseInstance uint32)
	DrawElementsInstancedBaseVertexBaseInstance(mode Enum, count int32, typ Enum, offset int, instances, baseVertex int32, baseInstance uint32)
	DrawArraysIndirect(mode Enum, offset int)
	MultiDrawArraysIndirect(mode Enum, offset int, drawCount, stride int32)
	DrawElementsIndirect(mode, typ Enum, offset int)
	MultiDrawElementsIndirect(mode, typ Enum, offset int, drawCount, stride int32)
	DrawMeshTasksNV(first, count uint32)
	DrawMeshTasksIndirectNV(offset int)
	MultiDrawMeshTasksIndirectNV(offset int, drawCount, stride int32)
	DispatchCompute(x, y, z uint32)
}

// ErrorString names a GL error code.
func ErrorString(code Enum) string {
	switch code {
	case NO_ERROR:
		return "GL_NO_ERROR"
	case INVALID_ENUM:
		return "GL_INVALID_ENUM"
	case INVALID_VALUE:
		return "GL_INVALID_VALUE"
	case INVALID_OPERATION:
		return "GL_INVALID_OPERATION"
	case STACK_OVERFLOW:
		return "GL_STACK_OVERFLOW"
	case STACK_UNDERFLOW:
		return "GL_STACK_UNDERFLOW"
	case OUT_OF_MEMORY:
		return "GL_OUT_OF_MEMORY"
	case INVALID_FRAMEBUFFER_OPERATION:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	}
	return "GL_UNKNOWN_ERROR"
}
