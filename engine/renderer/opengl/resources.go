package opengl

import (
	"fmt"

	"github.com/spaghettifunk/glrhi/engine/core"
	"github.com/spaghettifunk/glrhi/engine/renderer/gl"
	"github.com/spaghettifunk/glrhi/engine/renderer/rhi"
)

/**
 * @brief A buffer object bound to a single default target.
 */
type Buffer struct {
	fns          gl.Functions
	handle       uint32
	target       gl.Enum
	usage        gl.Enum
	elementSize  uint32
	elementCount uint32
}

func newBuffer(fns gl.Functions, target gl.Enum, elementSize, elementCount uint32, usage rhi.BufferUsage, data []byte) (*Buffer, error) {
	size := int(elementSize * elementCount)
	if size == 0 {
		return nil, fmt.Errorf("buffer of zero size (element=%d count=%d): %w", elementSize, elementCount, core.ErrDriver)
	}
	if data != nil && len(data) < size {
		return nil, fmt.Errorf("buffer data too short (want=%d got=%d): %w", size, len(data), core.ErrDriver)
	}
	b := &Buffer{
		fns:          fns,
		handle:       fns.GenBuffer(),
		target:       target,
		usage:        translateBufferUsage(usage),
		elementSize:  elementSize,
		elementCount: elementCount,
	}
	fns.BindBuffer(target, b.handle)
	if data != nil {
		data = data[:size]
	}
	fns.BufferData(target, data, size, b.usage)
	fns.BindBuffer(target, 0)
	if err := verifyStatus(fns); err != nil {
		fns.DeleteBuffer(b.handle)
		return nil, err
	}
	return b, nil
}

func (b *Buffer) Handle() uint32       { return b.handle }
func (b *Buffer) ElementSize() uint32  { return b.elementSize }
func (b *Buffer) ElementCount() uint32 { return b.elementCount }
func (b *Buffer) Size() uint32         { return b.elementSize * b.elementCount }

func (b *Buffer) Bind() {
	b.fns.BindBuffer(b.target, b.handle)
}

func (b *Buffer) Unbind() {
	b.fns.BindBuffer(b.target, 0)
}

// Update writes data at the given element offset.
func (b *Buffer) Update(start uint32, data []byte) {
	offset := int(start * b.elementSize)
	if offset+len(data) > int(b.Size()) {
		core.LogError("buffer update out of range: offset=%d len=%d size=%d", offset, len(data), b.Size())
		return
	}
	b.fns.BindBuffer(b.target, b.handle)
	b.fns.BufferSubData(b.target, offset, data)
	b.fns.BindBuffer(b.target, 0)
}

func (b *Buffer) Release() {
	if b.handle != 0 {
		b.fns.DeleteBuffer(b.handle)
		b.handle = 0
	}
}

/**
 * @brief A single shader stage linked into its own separable program, so it
 * can be attached to program pipelines and receive ProgramUniform calls.
 */
type Shader struct {
	fns    gl.Functions
	handle uint32
	typ    rhi.ShaderType
}

func compileShader(fns gl.Functions, typ rhi.ShaderType, source string) (uint32, error) {
	shader := fns.CreateShader(translateShaderType(typ))
	fns.ShaderSource(shader, source)
	fns.CompileShader(shader)
	if fns.GetShaderi(shader, gl.COMPILE_STATUS) == gl.FALSE {
		info := fns.GetShaderInfoLog(shader)
		fns.DeleteShader(shader)
		return 0, fmt.Errorf("%s shader: %s: %w", typ, info, core.ErrShaderCompile)
	}
	return shader, nil
}

func linkProgram(fns gl.Functions, separable bool, shaders ...uint32) (uint32, error) {
	program := fns.CreateProgram()
	if separable {
		fns.ProgramParameteri(program, gl.PROGRAM_SEPARABLE, gl.TRUE)
	}
	for _, shader := range shaders {
		fns.AttachShader(program, shader)
	}
	fns.LinkProgram(program)
	for _, shader := range shaders {
		fns.DeleteShader(shader)
	}
	if fns.GetProgrami(program, gl.LINK_STATUS) == gl.FALSE {
		info := fns.GetProgramInfoLog(program)
		fns.DeleteProgram(program)
		return 0, fmt.Errorf("link: %s: %w", info, core.ErrShaderCompile)
	}
	return program, nil
}

func newShader(fns gl.Functions, typ rhi.ShaderType, source string) (*Shader, error) {
	stage, err := compileShader(fns, typ, source)
	if err != nil {
		return nil, err
	}
	program, err := linkProgram(fns, true, stage)
	if err != nil {
		return nil, fmt.Errorf("%s shader %w", typ, err)
	}
	return &Shader{fns: fns, handle: program, typ: typ}, nil
}

func (s *Shader) Handle() uint32       { return s.handle }
func (s *Shader) Type() rhi.ShaderType { return s.typ }

// Bind makes the stage's program current. Only compute shaders are bound
// this way, graphics stages go through pipelines.
func (s *Shader) Bind() {
	s.fns.UseProgram(s.handle)
}

func (s *Shader) Unbind() {
	s.fns.UseProgram(0)
}

func (s *Shader) Parameter(name string) rhi.ShaderParameter {
	return uniformParameter(s.fns, s.handle, name)
}

func (s *Shader) BlockParameter(name string) rhi.ShaderParameter {
	return blockParameter(s.fns, s.handle, name)
}

func (s *Shader) Release() {
	if s.handle != 0 {
		s.fns.DeleteProgram(s.handle)
		s.handle = 0
	}
}

/**
 * @brief A program linked from several stages, bound with UseProgram.
 */
type ShaderProgram struct {
	fns    gl.Functions
	handle uint32
}

/** @brief Source of one stage of a shader program. */
type ShaderSource struct {
	Type rhi.ShaderType
	Code string
}

func newShaderProgram(fns gl.Functions, sources ...ShaderSource) (*ShaderProgram, error) {
	stages := make([]uint32, 0, len(sources))
	for _, source := range sources {
		stage, err := compileShader(fns, source.Type, source.Code)
		if err != nil {
			for _, compiled := range stages {
				fns.DeleteShader(compiled)
			}
			return nil, err
		}
		stages = append(stages, stage)
	}
	program, err := linkProgram(fns, false, stages...)
	if err != nil {
		return nil, fmt.Errorf("shader program %w", err)
	}
	return &ShaderProgram{fns: fns, handle: program}, nil
}

func (p *ShaderProgram) Handle() uint32 { return p.handle }

func (p *ShaderProgram) Bind() {
	p.fns.UseProgram(p.handle)
}

func (p *ShaderProgram) Unbind() {
	p.fns.UseProgram(0)
}

func (p *ShaderProgram) Parameter(name string) rhi.ShaderParameter {
	return uniformParameter(p.fns, p.handle, name)
}

func (p *ShaderProgram) BlockParameter(name string) rhi.ShaderParameter {
	return blockParameter(p.fns, p.handle, name)
}

func (p *ShaderProgram) Release() {
	if p.handle != 0 {
		p.fns.DeleteProgram(p.handle)
		p.handle = 0
	}
}

func uniformParameter(fns gl.Functions, program uint32, name string) rhi.ShaderParameter {
	loc := fns.GetUniformLocation(program, name)
	if loc < 0 {
		return rhi.NoParameter
	}
	return rhi.ShaderParameter{Loc: loc}
}

func blockParameter(fns gl.Functions, program uint32, name string) rhi.ShaderParameter {
	index := fns.GetUniformBlockIndex(program, name)
	if index == gl.INVALID_INDEX {
		return rhi.NoParameter
	}
	return rhi.ShaderParameter{Loc: int32(index)}
}

/**
 * @brief A texture object with immutable dimensions.
 */
type Texture struct {
	fns    gl.Functions
	handle uint32
	typ    rhi.TextureType
	format rhi.TextureFormat
	width  int32
	height int32
}

func newTexture2D(fns gl.Functions, format rhi.TextureFormat, width, height int32, pixels []byte) (*Texture, error) {
	t := &Texture{
		fns:    fns,
		handle: fns.GenTexture(),
		typ:    rhi.TEXTURE_TYPE_2D,
		format: format,
		width:  width,
		height: height,
	}
	internal, pixelFormat, componentType := translateTextureFormat(format)
	fns.BindTexture(gl.TEXTURE_2D, t.handle)
	fns.TexImage2D(gl.TEXTURE_2D, 0, int32(internal), width, height, pixelFormat, componentType, pixels)
	fns.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	fns.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	fns.BindTexture(gl.TEXTURE_2D, 0)
	if err := verifyStatus(fns); err != nil {
		fns.DeleteTexture(t.handle)
		return nil, fmt.Errorf("texture %dx%d: %w", width, height, err)
	}
	return t, nil
}

func (t *Texture) Handle() uint32            { return t.handle }
func (t *Texture) Type() rhi.TextureType     { return t.typ }
func (t *Texture) Format() rhi.TextureFormat { return t.format }
func (t *Texture) Size() (int32, int32)      { return t.width, t.height }

func (t *Texture) Release() {
	if t.handle != 0 {
		t.fns.DeleteTexture(t.handle)
		t.handle = 0
	}
}

/**
 * @brief A sampler object, bound to texture units next to textures.
 */
type Sampler struct {
	fns    gl.Functions
	handle uint32
}

func newSampler(fns gl.Functions, filter rhi.SamplerFilter, address rhi.SamplerAddressMode) *Sampler {
	s := &Sampler{fns: fns, handle: fns.GenSampler()}
	minFilter, magFilter := translateSamplerFilter(filter)
	wrap := int32(translateAddressMode(address))
	fns.SamplerParameteri(s.handle, gl.TEXTURE_MIN_FILTER, int32(minFilter))
	fns.SamplerParameteri(s.handle, gl.TEXTURE_MAG_FILTER, int32(magFilter))
	fns.SamplerParameteri(s.handle, gl.TEXTURE_WRAP_S, wrap)
	fns.SamplerParameteri(s.handle, gl.TEXTURE_WRAP_T, wrap)
	fns.SamplerParameteri(s.handle, gl.TEXTURE_WRAP_R, wrap)
	return s
}

func (s *Sampler) Handle() uint32 { return s.handle }

func (s *Sampler) Release() {
	if s.handle != 0 {
		s.fns.DeleteSampler(s.handle)
		s.handle = 0
	}
}

/**
 * @brief A framebuffer object with up to MAX_BLEND_TARGETS color textures.
 */
type FrameBuffer struct {
	fns         gl.Functions
	handle      uint32
	textures    []rhi.Texture
	multisample bool
}

func newFrameBuffer(fns gl.Functions) *FrameBuffer {
	return &FrameBuffer{fns: fns, handle: fns.GenFramebuffer()}
}

func (f *FrameBuffer) Handle() uint32      { return f.handle }
func (f *FrameBuffer) IsMultisample() bool { return f.multisample }

func (f *FrameBuffer) Bind() {
	f.fns.BindFramebuffer(gl.FRAMEBUFFER, f.handle)
}

func (f *FrameBuffer) Unbind() {
	f.fns.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

// AddTexture attaches texture as the next color target.
func (f *FrameBuffer) AddTexture(texture rhi.Texture) int {
	index := len(f.textures)
	if index >= rhi.MAX_BLEND_TARGETS {
		core.LogError("framebuffer color targets exhausted (max=%d)", rhi.MAX_BLEND_TARGETS)
		return IndexNone
	}
	target := translateTextureType(texture.Type())
	f.fns.BindFramebuffer(gl.FRAMEBUFFER, f.handle)
	f.fns.FramebufferTexture2D(gl.FRAMEBUFFER, gl.Enum(gl.COLOR_ATTACHMENT0+uint32(index)), target, texture.Handle(), 0)
	f.fns.BindFramebuffer(gl.FRAMEBUFFER, 0)
	f.textures = append(f.textures, texture)
	if texture.Type() == rhi.TEXTURE_TYPE_2D_MULTISAMPLE {
		f.multisample = true
	}
	return index
}

func (f *FrameBuffer) Release() {
	if f.handle != 0 {
		f.fns.DeleteFramebuffer(f.handle)
		f.handle = 0
	}
	f.textures = nil
}
