package opengl

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/glrhi/engine/config"
	"github.com/spaghettifunk/glrhi/engine/core"
	"github.com/spaghettifunk/glrhi/engine/renderer/gl"
	"github.com/spaghettifunk/glrhi/engine/renderer/rhi"
)

type testSurface struct {
	err     error
	current int
	swaps   int
}

func (s *testSurface) MakeCurrent() error {
	s.current++
	return s.err
}

func (s *testSurface) SwapBuffers() {
	s.swaps++
}

func nvidiaGL() *fakeGL {
	fake := newFakeGL()
	fake.strings[gl.VENDOR] = "NVIDIA Corporation"
	fake.strings[gl.RENDERER] = "NVIDIA GeForce RTX 3080/PCIe/SSE2"
	fake.strings[gl.VERSION] = "4.6.0 NVIDIA 535.54.03"
	fake.extensions = []string{"GL_ARB_debug_output", EXTENSION_NV_MESH_SHADER, EXTENSION_SHADER_VIEWPORT_LAYER_ARRAY}
	fake.integers[gl.MAX_DRAW_MESH_TASKS_COUNT_NV] = 65535
	fake.integers[gl.MAX_VERTEX_ATTRIBS] = 16
	return fake
}

func newTestSystem(t *testing.T, fake *fakeGL, mutate func(*config.Config), opts ...SystemOption) *System {
	t.Helper()
	cfg := config.Default()
	if mutate != nil {
		mutate(cfg)
	}
	s := NewSystem(fake, cfg, opts...)
	require.NoError(t, s.Initialize())
	return s
}

func TestVendorOf(t *testing.T) {
	tests := []struct {
		name string
		want DeviceVendor
	}{
		{"NVIDIA Corporation", DEVICE_VENDOR_NVIDIA},
		{"ATI Technologies Inc.", DEVICE_VENDOR_ATI},
		{"Intel", DEVICE_VENDOR_INTEL},
		{"Mesa/X.org", DEVICE_VENDOR_UNKNOWN},
		{"", DEVICE_VENDOR_UNKNOWN},
	}
	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, vendorOf(tt.name))
		})
	}
}

func TestCapabilitiesOnNvidia(t *testing.T) {
	s := newTestSystem(t, nvidiaGL(), nil)
	caps := s.Capabilities()

	assert.Equal(t, DEVICE_VENDOR_NVIDIA, caps.Vendor)
	assert.Equal(t, "4.6.0 NVIDIA 535.54.03", caps.Version)
	assert.True(t, caps.HasExtension("GL_ARB_debug_output"))
	assert.True(t, caps.SupportMeshShader)
	assert.True(t, caps.SupportViewportLayerFromAnyStage)
	assert.Equal(t, uint32(65535), caps.MaxDrawMeshTasksCount)
	assert.Equal(t, int32(16), caps.MaxVertexAttribs)
}

func TestMeshShadersRequireNvidia(t *testing.T) {
	fake := nvidiaGL()
	fake.strings[gl.VENDOR] = "Intel"
	s := newTestSystem(t, fake, nil)

	assert.True(t, s.Capabilities().HasExtension(EXTENSION_NV_MESH_SHADER))
	assert.False(t, s.Capabilities().SupportMeshShader)
	assert.Zero(t, s.Capabilities().MaxDrawMeshTasksCount)
	assert.False(t, fake.called("GetInteger", gl.MAX_DRAW_MESH_TASKS_COUNT_NV))

	shader, err := s.CreateShader(rhi.SHADER_TYPE_MESH, "void main() {}")
	assert.Nil(t, shader)
	assert.True(t, errors.Is(err, core.ErrUnsupportedBackend))
}

func TestInitializeCreatesResolveFrameBuffers(t *testing.T) {
	fake := nvidiaGL()
	newTestSystem(t, fake, nil)

	assert.Equal(t, 2, fake.count("GenFramebuffer"))
	assert.True(t, fake.called("Enable", gl.PROGRAM_POINT_SIZE))
	assert.True(t, fake.called("Enable", gl.TEXTURE_CUBE_MAP_SEAMLESS))
	assert.Zero(t, fake.count("DebugMessageCallback"))
}

func TestDebugOutputQueuesUntilFlush(t *testing.T) {
	fake := nvidiaGL()
	s := newTestSystem(t, fake, func(cfg *config.Config) { cfg.Device.Debug = true })

	require.NotNil(t, fake.debugCallback)
	assert.True(t, fake.called("Enable", gl.DEBUG_OUTPUT))
	assert.True(t, fake.called("Enable", gl.DEBUG_OUTPUT_SYNCHRONOUS))

	fake.debugCallback(0, gl.DEBUG_TYPE_OTHER, 1, gl.DEBUG_SEVERITY_LOW, "buffer info")
	fake.debugCallback(0, gl.DEBUG_TYPE_ERROR, 2, gl.DEBUG_SEVERITY_NOTIFICATION, "note")
	fake.debugCallback(0, gl.DEBUG_TYPE_ERROR, 3, gl.DEBUG_SEVERITY_HIGH, "invalid enum")
	fake.debugCallback(0, gl.DEBUG_TYPE_PERFORMANCE, 4, gl.DEBUG_SEVERITY_MEDIUM, "recompiled")
	assert.Equal(t, 2, s.FlushDebugMessages())
	assert.Zero(t, s.FlushDebugMessages())

	for i := 0; i < DEBUG_MESSAGE_QUEUE_SIZE+10; i++ {
		fake.debugCallback(0, gl.DEBUG_TYPE_ERROR, uint32(i), gl.DEBUG_SEVERITY_HIGH, "spam")
	}
	assert.Equal(t, DEBUG_MESSAGE_QUEUE_SIZE, s.FlushDebugMessages())
}

func TestFlushDebugMessagesWithoutDebug(t *testing.T) {
	s := newTestSystem(t, nvidiaGL(), nil)
	assert.Zero(t, s.FlushDebugMessages())
}

func TestBeginRenderBeforeInitialize(t *testing.T) {
	s := NewSystem(newFakeGL(), nil)
	err := s.BeginRender()
	assert.True(t, errors.Is(err, core.ErrContextNotCurrent))
}

func TestBeginRenderForceInit(t *testing.T) {
	fake := nvidiaGL()
	s := newTestSystem(t, fake, nil)
	require.NoError(t, s.BeginRender())
	fake.reset()

	// every default is reissued even though nothing changed
	require.NoError(t, s.BeginRender())
	assert.True(t, fake.called("Enable", gl.DEPTH_TEST))
	assert.True(t, fake.called("DepthFunc", gl.LEQUAL))
	assert.NotZero(t, fake.count("PolygonMode"))
	assert.False(t, s.Context().state.forceInit)
}

func TestBeginRenderWithoutForceInit(t *testing.T) {
	fake := nvidiaGL()
	s := newTestSystem(t, fake, func(cfg *config.Config) { cfg.Device.ForceInitOnBegin = false })
	require.NoError(t, s.BeginRender())
	fake.reset()

	require.NoError(t, s.BeginRender())
	assert.Empty(t, fake.calls)
}

func TestBeginRenderDeferredCommitsDefaults(t *testing.T) {
	fake := nvidiaGL()
	s := newTestSystem(t, fake, func(cfg *config.Config) { cfg.Device.ImmediateCommit = false })
	fake.reset()

	require.NoError(t, s.BeginRender())
	assert.True(t, fake.called("Enable", gl.DEPTH_TEST))
	assert.NotZero(t, s.Metrics().Frame.StateCommits)
}

func TestBeginRenderFoldsFrameCounters(t *testing.T) {
	s := newTestSystem(t, nvidiaGL(), nil)
	require.NoError(t, s.BeginRender())
	s.Context().DrawPrimitive(rhi.PRIMITIVE_TYPE_TRIANGLE_LIST, 0, 3)
	s.Context().DrawPrimitive(rhi.PRIMITIVE_TYPE_TRIANGLE_LIST, 0, 3)
	assert.Equal(t, 2, s.Metrics().Frame.Draws)

	require.NoError(t, s.BeginRender())
	assert.Zero(t, s.Metrics().Frame.Draws)
	assert.Equal(t, 2, s.Metrics().Total.Draws)
}

func TestSurfaceLifecycle(t *testing.T) {
	surface := &testSurface{}
	fake := nvidiaGL()
	s := newTestSystem(t, fake, nil, WithSurface(surface))
	assert.Equal(t, 1, surface.current)

	require.NoError(t, s.BeginRender())
	assert.Equal(t, 2, surface.current)
	fake.reset()

	s.EndRender(false)
	assert.Zero(t, surface.swaps)
	assert.Equal(t, []string{"Flush()"}, fake.trace())

	s.EndRender(true)
	assert.Equal(t, 1, surface.swaps)
}

func TestSurfaceNotCurrent(t *testing.T) {
	surface := &testSurface{err: errors.New("no display")}
	s := NewSystem(nvidiaGL(), nil, WithSurface(surface))

	err := s.Initialize()
	assert.True(t, errors.Is(err, core.ErrContextNotCurrent))
	assert.Nil(t, s.Context())
}

func TestWithMetricsSharesCounters(t *testing.T) {
	metrics := core.NewMetrics()
	s := newTestSystem(t, nvidiaGL(), nil, WithMetrics(metrics))
	s.Context().DispatchCompute(1, 1, 1)
	assert.Same(t, metrics, s.Metrics())
	assert.Equal(t, 1, metrics.Frame.Dispatches)
}

func TestCreateInputLayoutValidates(t *testing.T) {
	s := newTestSystem(t, nvidiaGL(), nil)
	tests := []struct {
		name string
		desc rhi.InputLayoutDesc
	}{
		{"empty", rhi.InputLayoutDesc{}},
		{"stream out of range", rhi.InputLayoutDesc{Elements: []rhi.InputElement{
			{StreamIndex: rhi.MAX_INPUT_STREAMS, Attribute: rhi.ATTRIBUTE_POSITION},
		}}},
		{"attribute out of range", rhi.InputLayoutDesc{Elements: []rhi.InputElement{
			{Attribute: rhi.MAX_VERTEX_ATTRIBUTES},
		}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout, err := s.CreateInputLayout(tt.desc)
			assert.Nil(t, layout)
			assert.True(t, errors.Is(err, core.ErrInvalidInputLayout))
		})
	}
}

func TestInputLayoutIDsAreReused(t *testing.T) {
	s := newTestSystem(t, nvidiaGL(), nil)
	var desc rhi.InputLayoutDesc
	desc.AddElement(0, rhi.ATTRIBUTE_POSITION, rhi.VERTEX_FORMAT_FLOAT3, false)

	first, err := s.CreateInputLayout(desc)
	require.NoError(t, err)
	second, err := s.CreateInputLayout(desc)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID(), second.ID())

	s.ReleaseInputLayout(first)
	third, err := s.CreateInputLayout(desc)
	require.NoError(t, err)
	assert.Equal(t, first.ID(), third.ID())
}

func TestShutdownReleasesEverything(t *testing.T) {
	fake := nvidiaGL()
	s := newTestSystem(t, fake, nil)
	c := s.Context()

	var desc rhi.InputLayoutDesc
	desc.AddElement(0, rhi.ATTRIBUTE_POSITION, rhi.VERTEX_FORMAT_FLOAT3, false)
	layout, err := s.CreateInputLayout(desc)
	require.NoError(t, err)
	c.SetShaderProgram(&ShaderProgram{fns: fake, handle: 40})
	c.SetInputStream(layout, []rhi.InputStreamInfo{rhi.NewInputStream(&testBuffer{handle: 10, elementSize: 12}, 0)})
	c.DrawPrimitive(rhi.PRIMITIVE_TYPE_TRIANGLE_LIST, 0, 3)
	require.NoError(t, c.SetGraphicsPipeline(rhi.GraphicsShaderStateDesc{
		Vertex: testStage(fake, 20, rhi.SHADER_TYPE_VERTEX),
	}))
	fake.reset()

	s.Shutdown()
	assert.Equal(t, 2, fake.count("DeleteFramebuffer"))
	assert.Equal(t, 1, fake.count("DeleteProgramPipeline"))
	assert.Equal(t, 1, fake.count("DeleteVertexArray"))
	assert.True(t, fake.called("BindProgramPipeline", 0))
	assert.Zero(t, layout.CachedVertexArrays())

	// a second shutdown is a no-op
	fake.reset()
	s.Shutdown()
	assert.Empty(t, fake.calls)
}
