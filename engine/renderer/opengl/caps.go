package opengl

import (
	"strings"

	"github.com/spaghettifunk/glrhi/engine/renderer/gl"
)

type DeviceVendor int

const (
	DEVICE_VENDOR_UNKNOWN DeviceVendor = iota
	DEVICE_VENDOR_NVIDIA
	DEVICE_VENDOR_ATI
	DEVICE_VENDOR_INTEL
)

func (v DeviceVendor) String() string {
	switch v {
	case DEVICE_VENDOR_NVIDIA:
		return "NVIDIA"
	case DEVICE_VENDOR_ATI:
		return "ATI"
	case DEVICE_VENDOR_INTEL:
		return "Intel"
	}
	return "Unknown"
}

func vendorOf(name string) DeviceVendor {
	switch {
	case strings.Contains(name, "NVIDIA"):
		return DEVICE_VENDOR_NVIDIA
	case strings.Contains(name, "ATI"):
		return DEVICE_VENDOR_ATI
	case strings.Contains(name, "Intel"):
		return DEVICE_VENDOR_INTEL
	}
	return DEVICE_VENDOR_UNKNOWN
}

const (
	EXTENSION_NV_MESH_SHADER              = "GL_NV_mesh_shader"
	EXTENSION_SHADER_VIEWPORT_LAYER_ARRAY = "GL_ARB_shader_viewport_layer_array"
)

/**
 * @brief Read-only description of the device, filled once at initialization.
 */
type Capabilities struct {
	Version  string
	Vendor   DeviceVendor
	Renderer string

	Extensions map[string]struct{}

	/** @brief NV mesh shaders are usable. Only reported on NVIDIA drivers. */
	SupportMeshShader bool
	/** @brief Viewport and layer index can be written from any stage feeding the rasterizer. */
	SupportViewportLayerFromAnyStage bool

	MaxDrawMeshTasksCount    uint32
	MaxMeshOutputVertices    int32
	MaxMeshOutputPrimitives  int32
	MaxVertexAttribs         int32
	MaxTextureUnits          int32
	MaxUniformBufferBindings int32
	MaxStorageBufferBindings int32
	MaxViewports             int32
}

func (c *Capabilities) HasExtension(name string) bool {
	_, ok := c.Extensions[name]
	return ok
}

// queryCapabilities reads the device description through fns. The context
// must be current.
func queryCapabilities(fns gl.Functions) *Capabilities {
	caps := &Capabilities{
		Version:    fns.GetString(gl.VERSION),
		Renderer:   fns.GetString(gl.RENDERER),
		Extensions: make(map[string]struct{}),
	}
	caps.Vendor = vendorOf(fns.GetString(gl.VENDOR))

	numExtensions := fns.GetInteger(gl.NUM_EXTENSIONS)
	for i := int32(0); i < numExtensions; i++ {
		caps.Extensions[fns.GetStringi(gl.EXTENSIONS, uint32(i))] = struct{}{}
	}

	caps.MaxVertexAttribs = fns.GetInteger(gl.MAX_VERTEX_ATTRIBS)
	caps.MaxTextureUnits = fns.GetInteger(gl.MAX_COMBINED_TEXTURE_IMAGE_UNITS)
	caps.MaxUniformBufferBindings = fns.GetInteger(gl.MAX_UNIFORM_BUFFER_BINDINGS)
	caps.MaxStorageBufferBindings = fns.GetInteger(gl.MAX_SHADER_STORAGE_BUFFER_BINDINGS)
	caps.MaxViewports = fns.GetInteger(gl.MAX_VIEWPORTS)

	if caps.Vendor == DEVICE_VENDOR_NVIDIA {
		caps.SupportMeshShader = caps.HasExtension(EXTENSION_NV_MESH_SHADER)
		caps.SupportViewportLayerFromAnyStage = caps.HasExtension(EXTENSION_SHADER_VIEWPORT_LAYER_ARRAY)
	}
	if caps.SupportMeshShader {
		caps.MaxDrawMeshTasksCount = uint32(fns.GetInteger(gl.MAX_DRAW_MESH_TASKS_COUNT_NV))
		caps.MaxMeshOutputVertices = fns.GetInteger(gl.MAX_MESH_OUTPUT_VERTICES_NV)
		caps.MaxMeshOutputPrimitives = fns.GetInteger(gl.MAX_MESH_OUTPUT_PRIMITIVES_NV)
	}
	return caps
}
