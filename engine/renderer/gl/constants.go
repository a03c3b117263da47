package gl

type Enum uint32

const (
	FALSE = 0
	TRUE  = 1
	ZERO  = 0
	ONE   = 1

	NO_ERROR                      = 0x0
	INVALID_ENUM                  = 0x0500
	INVALID_VALUE                 = 0x0501
	INVALID_OPERATION             = 0x0502
	STACK_OVERFLOW                = 0x0503
	STACK_UNDERFLOW               = 0x0504
	OUT_OF_MEMORY                 = 0x0505
	INVALID_FRAMEBUFFER_OPERATION = 0x0506

	BYTE           = 0x1400
	UNSIGNED_BYTE  = 0x1401
	SHORT          = 0x1402
	UNSIGNED_SHORT = 0x1403
	INT            = 0x1404
	UNSIGNED_INT   = 0x1405
	FLOAT          = 0x1406
	DOUBLE         = 0x140A
	HALF_FLOAT     = 0x140B

	POINTS                   = 0x0000
	LINES                    = 0x0001
	LINE_LOOP                = 0x0002
	LINE_STRIP               = 0x0003
	TRIANGLES                = 0x0004
	TRIANGLE_STRIP           = 0x0005
	TRIANGLE_FAN             = 0x0006
	QUADS                    = 0x0007
	POLYGON                  = 0x0009
	LINES_ADJACENCY          = 0x000A
	LINE_STRIP_ADJACENCY     = 0x000B
	TRIANGLES_ADJACENCY      = 0x000C
	TRIANGLE_STRIP_ADJACENCY = 0x000D
	PATCHES                  = 0x000E
	PATCH_VERTICES           = 0x8E72

	NEVER    = 0x0200
	LESS     = 0x0201
	EQUAL    = 0x0202
	LEQUAL   = 0x0203
	GREATER  = 0x0204
	NOTEQUAL = 0x0205
	GEQUAL   = 0x0206
	ALWAYS   = 0x0207

	KEEP      = 0x1E00
	REPLACE   = 0x1E01
	INCR      = 0x1E02
	DECR      = 0x1E03
	INVERT    = 0x150A
	INCR_WRAP = 0x8507
	DECR_WRAP = 0x8508

	SRC_COLOR                = 0x0300
	ONE_MINUS_SRC_COLOR      = 0x0301
	SRC_ALPHA                = 0x0302
	ONE_MINUS_SRC_ALPHA      = 0x0303
	DST_ALPHA                = 0x0304
	ONE_MINUS_DST_ALPHA      = 0x0305
	DST_COLOR                = 0x0306
	ONE_MINUS_DST_COLOR      = 0x0307
	SRC_ALPHA_SATURATE       = 0x0308
	CONSTANT_COLOR           = 0x8001
	ONE_MINUS_CONSTANT_COLOR = 0x8002
	CONSTANT_ALPHA           = 0x8003
	ONE_MINUS_CONSTANT_ALPHA = 0x8004

	FUNC_ADD              = 0x8006
	MIN                   = 0x8007
	MAX                   = 0x8008
	FUNC_SUBTRACT         = 0x800A
	FUNC_REVERSE_SUBTRACT = 0x800B

	FRONT          = 0x0404
	BACK           = 0x0405
	FRONT_AND_BACK = 0x0408
	CW             = 0x0900
	CCW            = 0x0901
	POINT          = 0x1B00
	LINE           = 0x1B01
	FILL           = 0x1B02

	CULL_FACE                 = 0x0B44
	DEPTH_TEST                = 0x0B71
	STENCIL_TEST              = 0x0B90
	BLEND                     = 0x0BE2
	SCISSOR_TEST              = 0x0C11
	MULTISAMPLE               = 0x809D
	SAMPLE_ALPHA_TO_COVERAGE  = 0x809E
	PROGRAM_POINT_SIZE        = 0x8642
	TEXTURE_CUBE_MAP_SEAMLESS = 0x884F
	DEBUG_OUTPUT              = 0x92E0
	DEBUG_OUTPUT_SYNCHRONOUS  = 0x8242

	ARRAY_BUFFER          = 0x8892
	ELEMENT_ARRAY_BUFFER  = 0x8893
	UNIFORM_BUFFER        = 0x8A11
	SHADER_STORAGE_BUFFER = 0x90D2
	ATOMIC_COUNTER_BUFFER = 0x92C0
	DRAW_INDIRECT_BUFFER  = 0x8F3F
	STREAM_DRAW           = 0x88E0
	STATIC_DRAW           = 0x88E4
	DYNAMIC_DRAW          = 0x88E8
	DYNAMIC_READ          = 0x88E9

	DEPTH_BUFFER_BIT   = 0x00000100
	STENCIL_BUFFER_BIT = 0x00000400
	COLOR_BUFFER_BIT   = 0x00004000
	COLOR              = 0x1800

	VENDOR                   = 0x1F00
	RENDERER                 = 0x1F01
	VERSION                  = 0x1F02
	EXTENSIONS               = 0x1F03
	NUM_EXTENSIONS           = 0x821D
	SHADING_LANGUAGE_VERSION = 0x8B8C

	MAX_VERTEX_ATTRIBS                 = 0x8869
	MAX_COMBINED_TEXTURE_IMAGE_UNITS   = 0x8B4D
	MAX_UNIFORM_BUFFER_BINDINGS        = 0x8A2F
	MAX_SHADER_STORAGE_BUFFER_BINDINGS = 0x90DD
	MAX_VIEWPORTS                      = 0x825B
	MAX_DRAW_MESH_TASKS_COUNT_NV       = 0x953D
	MAX_MESH_OUTPUT_VERTICES_NV        = 0x9538
	MAX_MESH_OUTPUT_PRIMITIVES_NV      = 0x9539

	VERTEX_SHADER_BIT          = 0x00000001
	FRAGMENT_SHADER_BIT        = 0x00000002
	GEOMETRY_SHADER_BIT        = 0x00000004
	TESS_CONTROL_SHADER_BIT    = 0x00000008
	TESS_EVALUATION_SHADER_BIT = 0x00000010
	COMPUTE_SHADER_BIT         = 0x00000020
	MESH_SHADER_BIT_NV         = 0x00000040
	TASK_SHADER_BIT_NV         = 0x00000080

	FRAGMENT_SHADER        = 0x8B30
	VERTEX_SHADER          = 0x8B31
	GEOMETRY_SHADER        = 0x8DD9
	TESS_EVALUATION_SHADER = 0x8E87
	TESS_CONTROL_SHADER    = 0x8E88
	COMPUTE_SHADER         = 0x91B9
	MESH_SHADER_NV         = 0x9559
	TASK_SHADER_NV         = 0x955A

	COMPILE_STATUS    = 0x8B81
	LINK_STATUS       = 0x8B82
	VALIDATE_STATUS   = 0x8B83
	INFO_LOG_LENGTH   = 0x8B84
	PROGRAM_SEPARABLE = 0x8258

	READ_ONLY  = 0x88B8
	WRITE_ONLY = 0x88B9
	READ_WRITE = 0x88BA

	RED         = 0x1903
	RED_INTEGER = 0x8D94
	RGB         = 0x1907
	RGBA        = 0x1908
	R8          = 0x8229
	R32F        = 0x822E
	R32I        = 0x8235
	R32UI       = 0x8236
	RGBA8       = 0x8058
	RGBA16F     = 0x881A
	RGBA32F     = 0x8814
	RGBA8UI     = 0x8D7C
	RGBA32UI    = 0x8D70
	RGBA32I     = 0x8D82

	TEXTURE_1D             = 0x0DE0
	TEXTURE_2D             = 0x0DE1
	TEXTURE_3D             = 0x806F
	TEXTURE_CUBE_MAP       = 0x8513
	TEXTURE_2D_ARRAY       = 0x8C1A
	TEXTURE_2D_MULTISAMPLE = 0x9100
	TEXTURE0               = 0x84C0

	TEXTURE_MAG_FILTER   = 0x2800
	TEXTURE_MIN_FILTER   = 0x2801
	TEXTURE_WRAP_S       = 0x2802
	TEXTURE_WRAP_T       = 0x2803
	TEXTURE_WRAP_R       = 0x8072
	NEAREST              = 0x2600
	LINEAR               = 0x2601
	LINEAR_MIPMAP_LINEAR = 0x2703
	REPEAT               = 0x2901
	CLAMP_TO_EDGE        = 0x812F
	MIRRORED_REPEAT      = 0x8370

	FRAMEBUFFER       = 0x8D40
	READ_FRAMEBUFFER  = 0x8CA8
	DRAW_FRAMEBUFFER  = 0x8CA9
	COLOR_ATTACHMENT0 = 0x8CE0

	VERTEX_ARRAY          = 0x8074
	NORMAL_ARRAY          = 0x8075
	COLOR_ARRAY           = 0x8076
	TEXTURE_COORD_ARRAY   = 0x8078
	SECONDARY_COLOR_ARRAY = 0x845E
	MODELVIEW             = 0x1700
	PROJECTION            = 0x1701

	DEBUG_SEVERITY_HIGH         = 0x9146
	DEBUG_SEVERITY_MEDIUM       = 0x9147
	DEBUG_SEVERITY_LOW          = 0x9148
	DEBUG_SEVERITY_NOTIFICATION = 0x826B
	DEBUG_TYPE_ERROR            = 0x824C
	DEBUG_TYPE_PERFORMANCE      = 0x8250
	DEBUG_TYPE_OTHER            = 0x8251

	PACK_ALIGNMENT   = 0x0D05
	UNPACK_ALIGNMENT = 0x0CF5
)
