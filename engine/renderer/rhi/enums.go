package rhi

/** @brief Primitive topology of a draw call. */
type PrimitiveType uint8

const (
	PRIMITIVE_TYPE_TRIANGLE_LIST PrimitiveType = iota
	PRIMITIVE_TYPE_TRIANGLE_STRIP
	PRIMITIVE_TYPE_TRIANGLE_FAN
	PRIMITIVE_TYPE_LINE_LIST
	PRIMITIVE_TYPE_LINE_STRIP
	PRIMITIVE_TYPE_LINE_LOOP
	PRIMITIVE_TYPE_TRIANGLE_ADJACENCY
	PRIMITIVE_TYPE_QUAD
	PRIMITIVE_TYPE_POLYGON
	PRIMITIVE_TYPE_POINTS
	/** @brief Tessellation patch with a single control point. Patches with N points are PATCH_POINT_1 + N - 1. */
	PRIMITIVE_TYPE_PATCH_POINT_1
)

// MAX_PATCH_POINTS bounds the control point count of a patch primitive.
const MAX_PATCH_POINTS = 32

// PatchPrimitive returns the patch primitive with the given control point count.
func PatchPrimitive(points int) PrimitiveType {
	if points < 1 {
		points = 1
	}
	if points > MAX_PATCH_POINTS {
		points = MAX_PATCH_POINTS
	}
	return PRIMITIVE_TYPE_PATCH_POINT_1 + PrimitiveType(points-1)
}

// IsPatch reports whether the primitive is a tessellation patch.
func (p PrimitiveType) IsPatch() bool {
	return p >= PRIMITIVE_TYPE_PATCH_POINT_1
}

// PatchPoints is the control point count of a patch primitive, 0 otherwise.
func (p PrimitiveType) PatchPoints() int {
	if !p.IsPatch() {
		return 0
	}
	return 1 + int(p-PRIMITIVE_TYPE_PATCH_POINT_1)
}

type FillMode uint8

const (
	FILL_MODE_SOLID FillMode = iota
	FILL_MODE_WIREFRAME
	FILL_MODE_POINT
)

type CullMode uint8

const (
	CULL_MODE_NONE CullMode = iota
	CULL_MODE_FRONT
	CULL_MODE_BACK
)

type FrontFace uint8

const (
	/** @brief Clockwise winding is front facing. */
	FRONT_FACE_DEFAULT FrontFace = iota
	/** @brief Counter clockwise winding is front facing. */
	FRONT_FACE_INVERSE
)

type BlendFactor uint8

const (
	BLEND_ZERO BlendFactor = iota
	BLEND_ONE
	BLEND_SRC_COLOR
	BLEND_ONE_MINUS_SRC_COLOR
	BLEND_SRC_ALPHA
	BLEND_ONE_MINUS_SRC_ALPHA
	BLEND_DEST_ALPHA
	BLEND_ONE_MINUS_DEST_ALPHA
	BLEND_DEST_COLOR
	BLEND_ONE_MINUS_DEST_COLOR
)

type BlendOp uint8

const (
	BLEND_OP_ADD BlendOp = iota
	BLEND_OP_SUB
	BLEND_OP_REVERSE_SUB
	BLEND_OP_MIN
	BLEND_OP_MAX
)

type CompareFunc uint8

const (
	COMPARE_NEVER CompareFunc = iota
	COMPARE_LESS
	COMPARE_EQUAL
	COMPARE_NOT_EQUAL
	COMPARE_LESS_EQUAL
	COMPARE_GREATER
	COMPARE_GREATER_EQUAL
	COMPARE_ALWAYS
)

type StencilOp uint8

const (
	STENCIL_OP_KEEP StencilOp = iota
	STENCIL_OP_ZERO
	STENCIL_OP_REPLACE
	STENCIL_OP_INCR
	STENCIL_OP_INCR_WRAP
	STENCIL_OP_DECR
	STENCIL_OP_DECR_WRAP
	STENCIL_OP_INVERT
)

/**
 * @brief Channels written by a render target.
 * Can be combined together.
 */
type ColorWriteMask uint8

const (
	COLOR_WRITE_NONE ColorWriteMask = 0x0
	COLOR_WRITE_R    ColorWriteMask = 0x1
	COLOR_WRITE_G    ColorWriteMask = 0x2
	COLOR_WRITE_B    ColorWriteMask = 0x4
	COLOR_WRITE_A    ColorWriteMask = 0x8
	COLOR_WRITE_RGB  ColorWriteMask = COLOR_WRITE_R | COLOR_WRITE_G | COLOR_WRITE_B
	COLOR_WRITE_RGBA ColorWriteMask = COLOR_WRITE_RGB | COLOR_WRITE_A
)

type AccessOp uint8

const (
	ACCESS_READ_ONLY AccessOp = iota
	ACCESS_WRITE_ONLY
	ACCESS_READ_AND_WRITE
)

/**
 * @brief The buffers cleared by ClearRenderTargets.
 * Can be combined together.
 */
type ClearBits uint8

const (
	CLEAR_NONE    ClearBits = 0x0
	CLEAR_COLOR   ClearBits = 0x1
	CLEAR_DEPTH   ClearBits = 0x2
	CLEAR_STENCIL ClearBits = 0x4
	CLEAR_ALL     ClearBits = CLEAR_COLOR | CLEAR_DEPTH | CLEAR_STENCIL
)

type ShaderType uint8

const (
	SHADER_TYPE_VERTEX ShaderType = iota
	SHADER_TYPE_PIXEL
	SHADER_TYPE_GEOMETRY
	SHADER_TYPE_HULL
	SHADER_TYPE_DOMAIN
	SHADER_TYPE_COMPUTE
	SHADER_TYPE_TASK
	SHADER_TYPE_MESH
)

func (t ShaderType) String() string {
	switch t {
	case SHADER_TYPE_VERTEX:
		return "vertex"
	case SHADER_TYPE_PIXEL:
		return "pixel"
	case SHADER_TYPE_GEOMETRY:
		return "geometry"
	case SHADER_TYPE_HULL:
		return "hull"
	case SHADER_TYPE_DOMAIN:
		return "domain"
	case SHADER_TYPE_COMPUTE:
		return "compute"
	case SHADER_TYPE_TASK:
		return "task"
	case SHADER_TYPE_MESH:
		return "mesh"
	}
	return "unknown"
}

type TextureType uint8

const (
	TEXTURE_TYPE_1D TextureType = iota
	TEXTURE_TYPE_2D
	TEXTURE_TYPE_3D
	TEXTURE_TYPE_CUBE
	TEXTURE_TYPE_2D_ARRAY
	TEXTURE_TYPE_2D_MULTISAMPLE
)

type TextureFormat uint8

const (
	TEXTURE_FORMAT_RGBA8 TextureFormat = iota
	TEXTURE_FORMAT_RGBA16F
	TEXTURE_FORMAT_RGBA32F
	TEXTURE_FORMAT_R8
	TEXTURE_FORMAT_R32F
	TEXTURE_FORMAT_R32I
	TEXTURE_FORMAT_R32U
)

type SamplerFilter uint8

const (
	SAMPLER_FILTER_POINT SamplerFilter = iota
	SAMPLER_FILTER_BILINEAR
	SAMPLER_FILTER_TRILINEAR
)

type SamplerAddressMode uint8

const (
	SAMPLER_ADDRESS_WRAP SamplerAddressMode = iota
	SAMPLER_ADDRESS_CLAMP
	SAMPLER_ADDRESS_MIRROR
)

type BufferUsage uint8

const (
	BUFFER_USAGE_STATIC BufferUsage = iota
	BUFFER_USAGE_DYNAMIC
	BUFFER_USAGE_STREAM
)
