package opengl

import (
	"github.com/spaghettifunk/glrhi/engine/renderer/gl"
	"github.com/spaghettifunk/glrhi/engine/renderer/rhi"
)

// translatePrimitive maps a topology to its GL mode and the patch size, which
// is zero for everything but patches.
func translatePrimitive(p rhi.PrimitiveType) (gl.Enum, int32) {
	switch p {
	case rhi.PRIMITIVE_TYPE_TRIANGLE_LIST:
		return gl.TRIANGLES, 0
	case rhi.PRIMITIVE_TYPE_TRIANGLE_STRIP:
		return gl.TRIANGLE_STRIP, 0
	case rhi.PRIMITIVE_TYPE_TRIANGLE_FAN:
		return gl.TRIANGLE_FAN, 0
	case rhi.PRIMITIVE_TYPE_LINE_LIST:
		return gl.LINES, 0
	case rhi.PRIMITIVE_TYPE_LINE_STRIP:
		return gl.LINE_STRIP, 0
	case rhi.PRIMITIVE_TYPE_LINE_LOOP:
		return gl.LINE_LOOP, 0
	case rhi.PRIMITIVE_TYPE_TRIANGLE_ADJACENCY:
		return gl.TRIANGLES_ADJACENCY, 0
	case rhi.PRIMITIVE_TYPE_QUAD:
		return gl.QUADS, 0
	case rhi.PRIMITIVE_TYPE_POLYGON:
		return gl.POLYGON, 0
	case rhi.PRIMITIVE_TYPE_POINTS:
		return gl.POINTS, 0
	}
	if p.IsPatch() {
		return gl.PATCHES, int32(p.PatchPoints())
	}
	return gl.POINTS, 0
}

func translateFillMode(m rhi.FillMode) gl.Enum {
	switch m {
	case rhi.FILL_MODE_WIREFRAME:
		return gl.LINE
	case rhi.FILL_MODE_POINT:
		return gl.POINT
	}
	return gl.FILL
}

func translateCullMode(m rhi.CullMode) gl.Enum {
	if m == rhi.CULL_MODE_FRONT {
		return gl.FRONT
	}
	return gl.BACK
}

func translateFrontFace(f rhi.FrontFace) gl.Enum {
	if f == rhi.FRONT_FACE_INVERSE {
		return gl.CCW
	}
	return gl.CW
}

func translateBlendFactor(f rhi.BlendFactor) gl.Enum {
	switch f {
	case rhi.BLEND_ZERO:
		return gl.ZERO
	case rhi.BLEND_ONE:
		return gl.ONE
	case rhi.BLEND_SRC_COLOR:
		return gl.SRC_COLOR
	case rhi.BLEND_ONE_MINUS_SRC_COLOR:
		return gl.ONE_MINUS_SRC_COLOR
	case rhi.BLEND_SRC_ALPHA:
		return gl.SRC_ALPHA
	case rhi.BLEND_ONE_MINUS_SRC_ALPHA:
		return gl.ONE_MINUS_SRC_ALPHA
	case rhi.BLEND_DEST_ALPHA:
		return gl.DST_ALPHA
	case rhi.BLEND_ONE_MINUS_DEST_ALPHA:
		return gl.ONE_MINUS_DST_ALPHA
	case rhi.BLEND_DEST_COLOR:
		return gl.DST_COLOR
	case rhi.BLEND_ONE_MINUS_DEST_COLOR:
		return gl.ONE_MINUS_DST_COLOR
	}
	return gl.ONE
}

func translateBlendOp(op rhi.BlendOp) gl.Enum {
	switch op {
	case rhi.BLEND_OP_SUB:
		return gl.FUNC_SUBTRACT
	case rhi.BLEND_OP_REVERSE_SUB:
		return gl.FUNC_REVERSE_SUBTRACT
	case rhi.BLEND_OP_MIN:
		return gl.MIN
	case rhi.BLEND_OP_MAX:
		return gl.MAX
	}
	return gl.FUNC_ADD
}

func translateCompareFunc(f rhi.CompareFunc) gl.Enum {
	switch f {
	case rhi.COMPARE_NEVER:
		return gl.NEVER
	case rhi.COMPARE_LESS:
		return gl.LESS
	case rhi.COMPARE_EQUAL:
		return gl.EQUAL
	case rhi.COMPARE_NOT_EQUAL:
		return gl.NOTEQUAL
	case rhi.COMPARE_LESS_EQUAL:
		return gl.LEQUAL
	case rhi.COMPARE_GREATER:
		return gl.GREATER
	case rhi.COMPARE_GREATER_EQUAL:
		return gl.GEQUAL
	}
	return gl.ALWAYS
}

func translateStencilOp(op rhi.StencilOp) gl.Enum {
	switch op {
	case rhi.STENCIL_OP_ZERO:
		return gl.ZERO
	case rhi.STENCIL_OP_REPLACE:
		return gl.REPLACE
	case rhi.STENCIL_OP_INCR:
		return gl.INCR
	case rhi.STENCIL_OP_INCR_WRAP:
		return gl.INCR_WRAP
	case rhi.STENCIL_OP_DECR:
		return gl.DECR
	case rhi.STENCIL_OP_DECR_WRAP:
		return gl.DECR_WRAP
	case rhi.STENCIL_OP_INVERT:
		return gl.INVERT
	}
	return gl.KEEP
}

func translateAccessOp(op rhi.AccessOp) gl.Enum {
	switch op {
	case rhi.ACCESS_READ_ONLY:
		return gl.READ_ONLY
	case rhi.ACCESS_WRITE_ONLY:
		return gl.WRITE_ONLY
	}
	return gl.READ_WRITE
}

func translateComponentType(t rhi.ComponentType) gl.Enum {
	switch t {
	case rhi.COMPONENT_TYPE_FLOAT:
		return gl.FLOAT
	case rhi.COMPONENT_TYPE_HALF:
		return gl.HALF_FLOAT
	case rhi.COMPONENT_TYPE_UINT:
		return gl.UNSIGNED_INT
	case rhi.COMPONENT_TYPE_INT:
		return gl.INT
	case rhi.COMPONENT_TYPE_USHORT:
		return gl.UNSIGNED_SHORT
	case rhi.COMPONENT_TYPE_SHORT:
		return gl.SHORT
	case rhi.COMPONENT_TYPE_UBYTE:
		return gl.UNSIGNED_BYTE
	case rhi.COMPONENT_TYPE_BYTE:
		return gl.BYTE
	}
	return gl.FLOAT
}

func translateTextureType(t rhi.TextureType) gl.Enum {
	switch t {
	case rhi.TEXTURE_TYPE_1D:
		return gl.TEXTURE_1D
	case rhi.TEXTURE_TYPE_3D:
		return gl.TEXTURE_3D
	case rhi.TEXTURE_TYPE_CUBE:
		return gl.TEXTURE_CUBE_MAP
	case rhi.TEXTURE_TYPE_2D_ARRAY:
		return gl.TEXTURE_2D_ARRAY
	case rhi.TEXTURE_TYPE_2D_MULTISAMPLE:
		return gl.TEXTURE_2D_MULTISAMPLE
	}
	return gl.TEXTURE_2D
}

// translateTextureFormat returns the sized internal format plus the pixel
// format and type used for uploads.
func translateTextureFormat(f rhi.TextureFormat) (internal, format, typ gl.Enum) {
	switch f {
	case rhi.TEXTURE_FORMAT_RGBA16F:
		return gl.RGBA16F, gl.RGBA, gl.HALF_FLOAT
	case rhi.TEXTURE_FORMAT_RGBA32F:
		return gl.RGBA32F, gl.RGBA, gl.FLOAT
	case rhi.TEXTURE_FORMAT_R8:
		return gl.R8, gl.RED, gl.UNSIGNED_BYTE
	case rhi.TEXTURE_FORMAT_R32F:
		return gl.R32F, gl.RED, gl.FLOAT
	case rhi.TEXTURE_FORMAT_R32I:
		return gl.R32I, gl.RED_INTEGER, gl.INT
	case rhi.TEXTURE_FORMAT_R32U:
		return gl.R32UI, gl.RED_INTEGER, gl.UNSIGNED_INT
	}
	return gl.RGBA8, gl.RGBA, gl.UNSIGNED_BYTE
}

func translateShaderType(t rhi.ShaderType) gl.Enum {
	switch t {
	case rhi.SHADER_TYPE_VERTEX:
		return gl.VERTEX_SHADER
	case rhi.SHADER_TYPE_PIXEL:
		return gl.FRAGMENT_SHADER
	case rhi.SHADER_TYPE_GEOMETRY:
		return gl.GEOMETRY_SHADER
	case rhi.SHADER_TYPE_HULL:
		return gl.TESS_CONTROL_SHADER
	case rhi.SHADER_TYPE_DOMAIN:
		return gl.TESS_EVALUATION_SHADER
	case rhi.SHADER_TYPE_COMPUTE:
		return gl.COMPUTE_SHADER
	case rhi.SHADER_TYPE_TASK:
		return gl.TASK_SHADER_NV
	case rhi.SHADER_TYPE_MESH:
		return gl.MESH_SHADER_NV
	}
	return gl.VERTEX_SHADER
}

// stageBit is the UseProgramStages bit of a shader type.
func stageBit(t rhi.ShaderType) gl.Enum {
	switch t {
	case rhi.SHADER_TYPE_VERTEX:
		return gl.VERTEX_SHADER_BIT
	case rhi.SHADER_TYPE_PIXEL:
		return gl.FRAGMENT_SHADER_BIT
	case rhi.SHADER_TYPE_GEOMETRY:
		return gl.GEOMETRY_SHADER_BIT
	case rhi.SHADER_TYPE_HULL:
		return gl.TESS_CONTROL_SHADER_BIT
	case rhi.SHADER_TYPE_DOMAIN:
		return gl.TESS_EVALUATION_SHADER_BIT
	case rhi.SHADER_TYPE_COMPUTE:
		return gl.COMPUTE_SHADER_BIT
	case rhi.SHADER_TYPE_TASK:
		return gl.TASK_SHADER_BIT_NV
	case rhi.SHADER_TYPE_MESH:
		return gl.MESH_SHADER_BIT_NV
	}
	return 0
}

func translateSamplerFilter(f rhi.SamplerFilter) (min, mag gl.Enum) {
	switch f {
	case rhi.SAMPLER_FILTER_POINT:
		return gl.NEAREST, gl.NEAREST
	case rhi.SAMPLER_FILTER_TRILINEAR:
		return gl.LINEAR_MIPMAP_LINEAR, gl.LINEAR
	}
	return gl.LINEAR, gl.LINEAR
}

func translateAddressMode(m rhi.SamplerAddressMode) gl.Enum {
	switch m {
	case rhi.SAMPLER_ADDRESS_CLAMP:
		return gl.CLAMP_TO_EDGE
	case rhi.SAMPLER_ADDRESS_MIRROR:
		return gl.MIRRORED_REPEAT
	}
	return gl.REPEAT
}

func translateBufferUsage(u rhi.BufferUsage) gl.Enum {
	switch u {
	case rhi.BUFFER_USAGE_DYNAMIC:
		return gl.DYNAMIC_DRAW
	case rhi.BUFFER_USAGE_STREAM:
		return gl.STREAM_DRAW
	}
	return gl.STATIC_DRAW
}

// indexType maps an index buffer element size to its GL type.
func indexType(elementSize uint32) gl.Enum {
	if elementSize == 2 {
		return gl.UNSIGNED_SHORT
	}
	return gl.UNSIGNED_INT
}
