package rhi

// Resource is any driver object addressed by a GL name.
type Resource interface {
	Handle() uint32
}

// Bindable resources can attach themselves to their default binding point.
type Bindable interface {
	Resource
	Bind()
	Unbind()
}

type Buffer interface {
	Bindable
	/** @brief Byte size of one element: the vertex stride of a vertex buffer, 2 or 4 for index buffers. */
	ElementSize() uint32
	/** @brief Number of elements stored. */
	ElementCount() uint32
	/** @brief Total byte size of the buffer. */
	Size() uint32
}

type Texture interface {
	Resource
	Type() TextureType
	Format() TextureFormat
	/** @brief Width and height of mip level 0. */
	Size() (int32, int32)
}

/** @brief A texture as seen through a shader resource binding. */
type ShaderResourceView struct {
	Handle uint32
	Type   TextureType
}

// ViewOf returns the default view of a texture.
func ViewOf(t Texture) ShaderResourceView {
	return ShaderResourceView{Handle: t.Handle(), Type: t.Type()}
}

type Sampler interface {
	Resource
}

type Shader interface {
	Bindable
	Type() ShaderType
}

type ShaderProgram interface {
	Bindable
}

type FrameBuffer interface {
	Bindable
	/** @brief Whether the attached color targets are multisampled. */
	IsMultisample() bool
}

/** @brief A uniform location, or a block index for buffer parameters. */
type ShaderParameter struct {
	Loc int32
}

// NoParameter is a parameter that did not resolve in its shader.
var NoParameter = ShaderParameter{Loc: -1}

func (p ShaderParameter) IsBound() bool {
	return p.Loc >= 0
}

/** @brief Stages of a separable graphics pipeline. Nil stages are skipped. */
type GraphicsShaderStateDesc struct {
	Vertex   Shader
	Pixel    Shader
	Geometry Shader
	Hull     Shader
	Domain   Shader
}

/** @brief Stages of a mesh pipeline. Nil stages are skipped. */
type MeshShaderStateDesc struct {
	Task  Shader
	Mesh  Shader
	Pixel Shader
}
