package opengl

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/glrhi/engine/core"
	"github.com/spaghettifunk/glrhi/engine/renderer/gl"
	"github.com/spaghettifunk/glrhi/engine/renderer/rhi"
)

func TestBufferCreation(t *testing.T) {
	fake := newFakeGL()
	buffer, err := newBuffer(fake, gl.ARRAY_BUFFER, 16, 4, rhi.BUFFER_USAGE_STATIC, make([]byte, 80))
	require.NoError(t, err)
	assert.Equal(t, uint32(64), buffer.Size())
	assert.Equal(t, []string{"GenBuffer", "BindBuffer", "BufferData", "BindBuffer", "GetError"}, fake.names())
	// data beyond the buffer size is not uploaded
	assert.Equal(t, 64, fake.find("BufferData")[0].args[2])
}

func TestBufferRejectsBadSizes(t *testing.T) {
	fake := newFakeGL()

	_, err := newBuffer(fake, gl.ARRAY_BUFFER, 16, 0, rhi.BUFFER_USAGE_STATIC, nil)
	assert.True(t, errors.Is(err, core.ErrDriver))
	_, err = newBuffer(fake, gl.ARRAY_BUFFER, 16, 4, rhi.BUFFER_USAGE_STATIC, make([]byte, 8))
	assert.True(t, errors.Is(err, core.ErrDriver))
	assert.Empty(t, fake.calls)
}

func TestBufferDriverErrorDeletes(t *testing.T) {
	fake := newFakeGL()
	fake.errors = []gl.Enum{gl.OUT_OF_MEMORY}

	buffer, err := newBuffer(fake, gl.UNIFORM_BUFFER, 256, 1, rhi.BUFFER_USAGE_DYNAMIC, nil)
	assert.Nil(t, buffer)
	assert.True(t, errors.Is(err, core.ErrDriver))
	assert.True(t, fake.called("DeleteBuffer", 1001))
}

func TestBufferUpdateRange(t *testing.T) {
	fake := newFakeGL()
	buffer, err := newBuffer(fake, gl.ARRAY_BUFFER, 4, 4, rhi.BUFFER_USAGE_DYNAMIC, nil)
	require.NoError(t, err)
	fake.reset()

	buffer.Update(3, make([]byte, 8))
	assert.Empty(t, fake.calls)

	buffer.Update(1, make([]byte, 8))
	assert.Equal(t, []string{"BindBuffer", "BufferSubData", "BindBuffer"}, fake.names())
	assert.Equal(t, 4, fake.find("BufferSubData")[0].args[1])
}

func TestShaderCompileFailure(t *testing.T) {
	fake := newFakeGL()
	fake.failCompile = true

	shader, err := newShader(fake, rhi.SHADER_TYPE_VERTEX, "broken")
	assert.Nil(t, shader)
	assert.True(t, errors.Is(err, core.ErrShaderCompile))
	assert.Contains(t, err.Error(), "compile error")
	assert.True(t, fake.called("DeleteShader", 1001))
	assert.Zero(t, fake.count("CreateProgram"))
}

func TestShaderIsSeparable(t *testing.T) {
	fake := newFakeGL()

	shader, err := newShader(fake, rhi.SHADER_TYPE_PIXEL, "void main() {}")
	require.NoError(t, err)
	assert.Equal(t, uint32(1002), shader.Handle())
	assert.True(t, fake.called("ProgramParameteri", 1002, gl.PROGRAM_SEPARABLE, gl.TRUE))
	// the stage object is dropped once linked
	assert.True(t, fake.called("DeleteShader", 1001))
}

func TestShaderProgramLinkFailure(t *testing.T) {
	fake := newFakeGL()
	fake.failLink = true

	program, err := newShaderProgram(fake,
		ShaderSource{Type: rhi.SHADER_TYPE_VERTEX, Code: "v"},
		ShaderSource{Type: rhi.SHADER_TYPE_PIXEL, Code: "p"},
	)
	assert.Nil(t, program)
	assert.True(t, errors.Is(err, core.ErrShaderCompile))
	assert.Contains(t, err.Error(), "link error")
	assert.True(t, fake.called("DeleteProgram", 1003))
	assert.Zero(t, fake.count("ProgramParameteri"))
}

func TestShaderParameterLookup(t *testing.T) {
	fake := newFakeGL()
	fake.uniforms["Albedo"] = 3
	fake.uniforms["Globals"] = 1
	program := &ShaderProgram{fns: fake, handle: 40}

	assert.Equal(t, rhi.ShaderParameter{Loc: 3}, program.Parameter("Albedo"))
	assert.Equal(t, rhi.NoParameter, program.Parameter("Missing"))
	assert.False(t, program.Parameter("Missing").IsBound())
	assert.Equal(t, rhi.ShaderParameter{Loc: 1}, program.BlockParameter("Globals"))
	assert.Equal(t, rhi.NoParameter, program.BlockParameter("Missing"))
}

func TestFrameBufferAttachments(t *testing.T) {
	fake := newFakeGL()
	fb := newFrameBuffer(fake)
	assert.False(t, fb.IsMultisample())

	index := fb.AddTexture(&testTexture{handle: 70, typ: rhi.TEXTURE_TYPE_2D})
	assert.Equal(t, 0, index)
	assert.False(t, fb.IsMultisample())

	index = fb.AddTexture(&testTexture{handle: 71, typ: rhi.TEXTURE_TYPE_2D_MULTISAMPLE})
	assert.Equal(t, 1, index)
	assert.True(t, fb.IsMultisample())
	assert.True(t, fake.called("FramebufferTexture2D", gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0+1, gl.TEXTURE_2D_MULTISAMPLE, 71, 0))

	for i := 2; i < rhi.MAX_BLEND_TARGETS; i++ {
		fb.AddTexture(&testTexture{handle: uint32(72 + i), typ: rhi.TEXTURE_TYPE_2D})
	}
	fake.reset()
	assert.Equal(t, IndexNone, fb.AddTexture(&testTexture{handle: 99, typ: rhi.TEXTURE_TYPE_2D}))
	assert.Empty(t, fake.calls)

	fb.Release()
	assert.Equal(t, []string{"DeleteFramebuffer(1001)"}, fake.trace())
	assert.Zero(t, fb.Handle())
}

func TestSamplerParameters(t *testing.T) {
	fake := newFakeGL()
	sampler := newSampler(fake, rhi.SAMPLER_FILTER_POINT, rhi.SAMPLER_ADDRESS_CLAMP)

	assert.Equal(t, uint32(1001), sampler.Handle())
	assert.Equal(t, 5, fake.count("SamplerParameteri"))
	assert.True(t, fake.called("SamplerParameteri", 1001, gl.TEXTURE_MIN_FILTER, gl.NEAREST))
	assert.True(t, fake.called("SamplerParameteri", 1001, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE))
}
