package loaders

import "github.com/spaghettifunk/glrhi/engine/renderer/rhi"

type ResourceType uint8

const (
	ResourceTypeNone ResourceType = iota
	ResourceTypeShader
	ResourceTypeImage
)

func (t ResourceType) String() string {
	switch t {
	case ResourceTypeShader:
		return "shader"
	case ResourceTypeImage:
		return "image"
	}
	return "none"
}

type Resource struct {
	Name     string
	FullPath string
	Type     ResourceType
	DataSize uint64
	// *ShaderData or *ImageData depending on Type.
	Data interface{}
}

/** @brief GLSL source of a single stage, ready for CreateShader. */
type ShaderData struct {
	Stage rhi.ShaderType
	Code  string
}

/** @brief Tightly packed RGBA8 pixels, first row at the bottom when flipped. */
type ImageData struct {
	Width  int32
	Height int32
	Pixels []byte
}

type ImageParams struct {
	// Store rows bottom first, as texture uploads expect.
	FlipY bool
}
