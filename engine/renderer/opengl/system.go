package opengl

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/spaghettifunk/glrhi/engine/config"
	"github.com/spaghettifunk/glrhi/engine/core"
	"github.com/spaghettifunk/glrhi/engine/renderer/gl"
	"github.com/spaghettifunk/glrhi/engine/renderer/rhi"
)

const (
	// default stencil reference applied at the start of a frame
	DEFAULT_STENCIL_REF = 0xff

	MAX_STATE_OBJECTS = 256
)

// Surface owns the GL context and the swap chain of a window.
type Surface interface {
	MakeCurrent() error
	SwapBuffers()
}

type SystemOption func(*System)

// WithSurface presents through s. Without a surface BeginRender assumes the
// context is already current and EndRender never swaps.
func WithSurface(s Surface) SystemOption {
	return func(sys *System) {
		sys.surface = s
	}
}

// WithMetrics records frame counters into m instead of a private instance.
func WithMetrics(m *core.Metrics) SystemOption {
	return func(sys *System) {
		sys.metrics = m
	}
}

/**
 * @brief The OpenGL device. Owns the command context, the pipeline cache and
 * every object created through it.
 */
type System struct {
	id      uuid.UUID
	fns     gl.Functions
	cfg     config.DeviceConfig
	surface Surface
	metrics *core.Metrics

	caps      *Capabilities
	pipelines *PipelineCache
	context   *Context
	debug     *debugOutput

	stateIDs     *core.IdentifierPool
	layoutIDs    *core.IdentifierPool
	inputLayouts []*InputLayout

	defaultRasterizer   *RasterizerState
	defaultBlend        *BlendState
	defaultDepthStencil *DepthStencilState

	initialized bool
}

func NewSystem(fns gl.Functions, cfg *config.Config, opts ...SystemOption) *System {
	if cfg == nil {
		cfg = config.Default()
	}
	s := &System{
		id:        uuid.New(),
		fns:       fns,
		cfg:       cfg.Device,
		stateIDs:  core.NewIdentifierPool(MAX_STATE_OBJECTS),
		layoutIDs: core.NewIdentifierPool(MAX_STATE_OBJECTS),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.metrics == nil {
		s.metrics = core.NewMetrics()
	}
	return s
}

func (s *System) ID() uuid.UUID {
	return s.id
}

// Initialize reads the device capabilities and builds the command context.
// The GL context must be current on the calling thread.
func (s *System) Initialize() error {
	if s.initialized {
		return nil
	}
	if s.surface != nil {
		if err := s.surface.MakeCurrent(); err != nil {
			return fmt.Errorf("%w: %w", core.ErrContextNotCurrent, err)
		}
	}

	s.caps = queryCapabilities(s.fns)
	core.LogInfo("[%s] OpenGL version = %s", s.id, s.caps.Version)
	core.LogInfo("[%s] OpenGL vendor = %s, renderer = %s", s.id, s.caps.Vendor, s.caps.Renderer)
	if s.caps.SupportMeshShader {
		core.LogInfo("[%s] mesh shaders supported (max tasks=%d)", s.id, s.caps.MaxDrawMeshTasksCount)
	}

	if s.cfg.Debug {
		s.debug = newDebugOutput()
		s.fns.DebugMessageCallback(s.debug.callback)
		s.fns.Enable(gl.DEBUG_OUTPUT)
		s.fns.Enable(gl.DEBUG_OUTPUT_SYNCHRONOUS)
	}
	s.fns.Enable(gl.PROGRAM_POINT_SIZE)
	s.fns.Enable(gl.TEXTURE_CUBE_MAP_SEAMLESS)

	s.pipelines = NewPipelineCache(s.fns, &s.metrics.Frame)
	s.context = newContext(s.fns, s.caps, ContextConfig{
		ImmediateCommit:        s.cfg.ImmediateCommit,
		FixedPipelineUseShader: s.cfg.FixedPipelineUseShader,
	}, s.pipelines, &s.metrics.Frame)
	s.context.initialize()

	s.defaultRasterizer = s.CreateRasterizerState(rhi.DefaultRasterizerState())
	s.defaultBlend = s.CreateBlendState(rhi.DefaultBlendState())
	s.defaultDepthStencil = s.CreateDepthStencilState(rhi.DefaultDepthStencilState())

	s.initialized = true
	return nil
}

func (s *System) Capabilities() *Capabilities {
	return s.caps
}

func (s *System) Context() *Context {
	return s.context
}

func (s *System) Metrics() *core.Metrics {
	return s.metrics
}

// BeginRender makes the context current and resets the default states.
// With force_init_on_begin every default is re-applied even when the cache
// believes it is already set.
func (s *System) BeginRender() error {
	if !s.initialized {
		return fmt.Errorf("begin render before initialize: %w", core.ErrContextNotCurrent)
	}
	if s.surface != nil {
		if err := s.surface.MakeCurrent(); err != nil {
			return fmt.Errorf("%w: %w", core.ErrContextNotCurrent, err)
		}
	}
	s.metrics.BeginFrame()

	apply := func() {
		s.context.SetDepthStencilState(s.defaultDepthStencil, DEFAULT_STENCIL_REF)
		s.context.SetBlendState(s.defaultBlend)
		s.context.SetRasterizerState(s.defaultRasterizer)
		if !s.cfg.ImmediateCommit {
			s.context.countStateCommits(s.context.state.commitDepthStencil() + s.context.state.commitBlend() + s.context.state.commitRasterizer())
		}
	}
	if s.cfg.ForceInitOnBegin {
		s.context.state.withForceInit(apply)
	} else {
		apply()
	}
	return nil
}

// EndRender flushes queued commands and presents when present is set.
func (s *System) EndRender(present bool) {
	s.context.FlushCommand()
	s.FlushDebugMessages()
	if present && s.surface != nil {
		s.surface.SwapBuffers()
	}
}

// FlushDebugMessages logs the driver messages queued since the last call.
func (s *System) FlushDebugMessages() int {
	if s.debug == nil {
		return 0
	}
	return s.debug.flush()
}

func (s *System) CreateRasterizerState(desc rhi.RasterizerStateInitializer) *RasterizerState {
	state := newRasterizerState(0, desc)
	state.id = s.stateIDs.Acquire(state)
	return state
}

func (s *System) CreateBlendState(desc rhi.BlendStateInitializer) *BlendState {
	state := newBlendState(0, desc)
	state.id = s.stateIDs.Acquire(state)
	return state
}

func (s *System) CreateDepthStencilState(desc rhi.DepthStencilStateInitializer) *DepthStencilState {
	state := newDepthStencilState(0, desc)
	state.id = s.stateIDs.Acquire(state)
	return state
}

// CreateInputLayout validates desc and registers the layout. Its vertex
// array objects are created lazily on first bind.
func (s *System) CreateInputLayout(desc rhi.InputLayoutDesc) (*InputLayout, error) {
	if desc.IsEmpty() {
		return nil, fmt.Errorf("no elements: %w", core.ErrInvalidInputLayout)
	}
	for _, e := range desc.Elements {
		if int(e.StreamIndex) >= rhi.MAX_INPUT_STREAMS {
			return nil, fmt.Errorf("stream %d out of range: %w", e.StreamIndex, core.ErrInvalidInputLayout)
		}
		if e.Attribute != rhi.ATTRIBUTE_UNUSED && int(e.Attribute) >= rhi.MAX_VERTEX_ATTRIBUTES {
			return nil, fmt.Errorf("attribute %d out of range: %w", e.Attribute, core.ErrInvalidInputLayout)
		}
	}
	layout := newInputLayout(s.fns, 0, desc)
	layout.id = s.layoutIDs.Acquire(layout)
	s.inputLayouts = append(s.inputLayouts, layout)
	return layout, nil
}

// ReleaseInputLayout deletes the layout's vertex arrays and frees its id.
func (s *System) ReleaseInputLayout(layout *InputLayout) {
	for i, l := range s.inputLayouts {
		if l == layout {
			s.inputLayouts = append(s.inputLayouts[:i], s.inputLayouts[i+1:]...)
			break
		}
	}
	layout.Release()
	if err := s.layoutIDs.Release(layout.id); err != nil {
		core.LogWarn(err.Error())
	}
}

func (s *System) CreateVertexBuffer(vertexSize, numVertices uint32, usage rhi.BufferUsage, data []byte) (*Buffer, error) {
	return newBuffer(s.fns, gl.ARRAY_BUFFER, vertexSize, numVertices, usage, data)
}

// CreateIndexBuffer creates a buffer of 16 or 32 bit indices.
func (s *System) CreateIndexBuffer(numIndices uint32, intIndex bool, usage rhi.BufferUsage, data []byte) (*Buffer, error) {
	elementSize := uint32(2)
	if intIndex {
		elementSize = 4
	}
	return newBuffer(s.fns, gl.ELEMENT_ARRAY_BUFFER, elementSize, numIndices, usage, data)
}

func (s *System) CreateUniformBuffer(size uint32, usage rhi.BufferUsage, data []byte) (*Buffer, error) {
	return newBuffer(s.fns, gl.UNIFORM_BUFFER, size, 1, usage, data)
}

func (s *System) CreateStorageBuffer(elementSize, numElements uint32, usage rhi.BufferUsage, data []byte) (*Buffer, error) {
	return newBuffer(s.fns, gl.SHADER_STORAGE_BUFFER, elementSize, numElements, usage, data)
}

// CreateIndirectBuffer creates a buffer of numCommands draw commands.
func (s *System) CreateIndirectBuffer(commandSize, numCommands uint32, data []byte) (*Buffer, error) {
	return newBuffer(s.fns, gl.DRAW_INDIRECT_BUFFER, commandSize, numCommands, rhi.BUFFER_USAGE_STATIC, data)
}

func (s *System) CreateShader(typ rhi.ShaderType, source string) (*Shader, error) {
	if (typ == rhi.SHADER_TYPE_TASK || typ == rhi.SHADER_TYPE_MESH) && !s.caps.SupportMeshShader {
		return nil, fmt.Errorf("%s shader: %w", typ, core.ErrUnsupportedBackend)
	}
	return newShader(s.fns, typ, source)
}

func (s *System) CreateShaderProgram(sources ...ShaderSource) (*ShaderProgram, error) {
	return newShaderProgram(s.fns, sources...)
}

func (s *System) CreateTexture2D(format rhi.TextureFormat, width, height int32, pixels []byte) (*Texture, error) {
	return newTexture2D(s.fns, format, width, height, pixels)
}

func (s *System) CreateSampler(filter rhi.SamplerFilter, address rhi.SamplerAddressMode) *Sampler {
	return newSampler(s.fns, filter, address)
}

func (s *System) CreateFrameBuffer() *FrameBuffer {
	return newFrameBuffer(s.fns)
}

// Shutdown releases the context, every registered input layout and the
// pipeline cache.
func (s *System) Shutdown() {
	if !s.initialized {
		return
	}
	s.context.shutdown()
	for _, layout := range s.inputLayouts {
		layout.Release()
	}
	s.inputLayouts = nil
	s.pipelines.Release()
	s.FlushDebugMessages()
	s.initialized = false
	core.LogInfo("[%s] OpenGL system shut down", s.id)
}
