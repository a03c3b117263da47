package renderer

import "github.com/spaghettifunk/glrhi/engine/renderer/opengl"

// Backend is the device a Renderer brackets every frame with.
type Backend interface {
	Initialize() error
	BeginRender() error
	EndRender(present bool)
	Shutdown()
}

var _ Backend = (*opengl.System)(nil)
