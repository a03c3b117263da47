package renderer

import (
	"fmt"

	"github.com/spaghettifunk/glrhi/engine/config"
	"github.com/spaghettifunk/glrhi/engine/core"
	"github.com/spaghettifunk/glrhi/engine/renderer/gl"
	"github.com/spaghettifunk/glrhi/engine/renderer/gl/native"
	"github.com/spaghettifunk/glrhi/engine/renderer/opengl"
)

type RendererType uint8

const (
	Vulkan RendererType = iota
	DirectX
	Metal
	OpenGL
)

func (t RendererType) String() string {
	switch t {
	case Vulkan:
		return "vulkan"
	case DirectX:
		return "directx"
	case Metal:
		return "metal"
	case OpenGL:
		return "opengl"
	}
	return fmt.Sprintf("RendererType(%d)", uint8(t))
}

// DriverLoader resolves the driver entry points once a context is current.
type DriverLoader func() (gl.Functions, error)

func loadNative() (gl.Functions, error) {
	return native.Load()
}

type Renderer struct {
	typ     RendererType
	backend Backend
	system  *opengl.System

	width  uint32
	height uint32
}

// New creates the renderer for typ on surface. Only the OpenGL backend is
// available; the surface context must be current.
func New(typ RendererType, surface opengl.Surface, cfg *config.Config, metrics *core.Metrics) (*Renderer, error) {
	return newWithLoader(typ, surface, cfg, metrics, loadNative)
}

func newWithLoader(typ RendererType, surface opengl.Surface, cfg *config.Config, metrics *core.Metrics, load DriverLoader) (*Renderer, error) {
	if typ != OpenGL {
		return nil, fmt.Errorf("%s: %w", typ, core.ErrUnsupportedBackend)
	}
	if cfg == nil {
		cfg = config.Default()
	}
	fns, err := load()
	if err != nil {
		return nil, err
	}
	opts := []opengl.SystemOption{opengl.WithMetrics(metrics)}
	if surface != nil {
		opts = append(opts, opengl.WithSurface(surface))
	}
	system := opengl.NewSystem(fns, cfg, opts...)
	return &Renderer{
		typ:     typ,
		backend: system,
		system:  system,
		width:   cfg.Window.Width,
		height:  cfg.Window.Height,
	}, nil
}

func (r *Renderer) Type() RendererType {
	return r.typ
}

func (r *Renderer) Initialize() error {
	if err := r.backend.Initialize(); err != nil {
		return err
	}
	core.LogInfo("%s renderer initialized (%dx%d)", r.typ, r.width, r.height)
	return nil
}

func (r *Renderer) Shutdown() error {
	r.backend.Shutdown()
	return nil
}

// System returns the OpenGL device, nil for other backends.
func (r *Renderer) System() *opengl.System {
	return r.system
}

func (r *Renderer) OnResize(width, height uint32) {
	r.width, r.height = width, height
}

func (r *Renderer) Size() (uint32, uint32) {
	return r.width, r.height
}

// DrawFrame brackets render between BeginRender and EndRender. A failed
// render still ends the frame but skips the present.
func (r *Renderer) DrawFrame(deltaTime float64, render func(deltaTime float64) error) error {
	if err := r.backend.BeginRender(); err != nil {
		core.LogError(err.Error())
		return err
	}
	if err := render(deltaTime); err != nil {
		r.backend.EndRender(false)
		core.LogError("render failed: %s", err)
		return err
	}
	r.backend.EndRender(true)
	return nil
}
