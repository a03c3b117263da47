package testbed

import (
	"fmt"
	gomath "math"

	"github.com/spaghettifunk/glrhi/engine"
	"github.com/spaghettifunk/glrhi/engine/assets"
	"github.com/spaghettifunk/glrhi/engine/assets/loaders"
	"github.com/spaghettifunk/glrhi/engine/core"
	"github.com/spaghettifunk/glrhi/engine/math"
	"github.com/spaghettifunk/glrhi/engine/renderer"
	"github.com/spaghettifunk/glrhi/engine/renderer/opengl"
	"github.com/spaghettifunk/glrhi/engine/renderer/rhi"
)

const quadVertexShader = `#version 430 core
layout(location = 0) in vec3 in_position;
layout(location = 3) in vec4 in_color;
uniform mat4 u_transform;
out vec4 v_color;
void main() {
	v_color = in_color;
	gl_Position = u_transform * vec4(in_position, 1.0);
}
`

const quadPixelShader = `#version 430 core
in vec4 v_color;
uniform vec4 u_tint;
out vec4 out_color;
void main() {
	out_color = v_color * u_tint;
}
`

// quadVertex matches the layout: float3 position then normalized ubyte4 color.
type quadVertex struct {
	X, Y, Z float32
	Color   [4]uint8
}

type overlayVertex struct {
	X, Y, Z float32
	U, V    float32
}

type TestGame struct {
	*engine.Game
}

type gameState struct {
	assetsDir string
	assets    *assets.AssetManager

	width  uint32
	height uint32

	angle  float32
	frames uint64

	// Frame after which the back buffer is written to screenshotPath.
	screenshotFrame uint64
	screenshotPath  string
	screenshotTaken bool

	program      *opengl.ShaderProgram
	transform    rhi.ShaderParameter
	tint         rhi.ShaderParameter
	quadLayout   *opengl.InputLayout
	quadVertices *opengl.Buffer
	quadIndices  *opengl.Buffer

	overlayLayout  *opengl.InputLayout
	overlayStride  uint32
	overlayTexture *opengl.Texture
	overlaySampler *opengl.Sampler

	rasterizer   *opengl.RasterizerState
	depthStencil *opengl.DepthStencilState
	opaque       *opengl.BlendState
	alphaBlend   *opengl.BlendState
}

// NewTestGame builds the demo scene. Shaders and the overlay texture are read
// from assetsDir when present. A non-empty screenshotPath writes the frame
// rendered after screenshotFrame frames as a BMP file.
func NewTestGame(configPath, assetsDir, screenshotPath string, screenshotFrame uint64) *TestGame {
	tg := &TestGame{
		Game: &engine.Game{
			ApplicationConfig: &engine.ApplicationConfig{
				Name:       "glrhi testbed",
				ConfigPath: configPath,
				HotReload:  true,
				Renderer:   renderer.OpenGL,
			},
			State: &gameState{
				assetsDir:       assetsDir,
				screenshotPath:  screenshotPath,
				screenshotFrame: screenshotFrame,
			},
		},
	}

	tg.FnInitialize = tg.Initialize
	tg.FnUpdate = tg.Update
	tg.FnRender = tg.Render
	tg.FnOnResize = tg.OnResize
	tg.FnShutdown = tg.Shutdown

	return tg
}

func (g *TestGame) state() *gameState {
	return g.State.(*gameState)
}

func (g *TestGame) Initialize() error {
	core.LogDebug("TestGame Initialize fn....")

	if g.Renderer == nil || g.Renderer.System() == nil {
		return fmt.Errorf("the engine is not yet initialized with an OpenGL renderer")
	}
	sys := g.Renderer.System()
	state := g.state()

	if state.assetsDir != "" {
		am, err := assets.NewAssetManager()
		if err != nil {
			return err
		}
		if err := am.Initialize(state.assetsDir); err != nil {
			core.LogWarn("assets in %s unavailable, using built in resources: %s", state.assetsDir, err)
			am.Shutdown()
		} else {
			state.assets = am
		}
	}

	if err := g.buildProgram(); err != nil {
		return err
	}

	var err error
	var quadDesc rhi.InputLayoutDesc
	quadDesc.
		AddElement(0, rhi.ATTRIBUTE_POSITION, rhi.VERTEX_FORMAT_FLOAT3, false).
		AddElement(0, rhi.ATTRIBUTE_COLOR, rhi.VERTEX_FORMAT_UBYTE4, true)
	if state.quadLayout, err = sys.CreateInputLayout(quadDesc); err != nil {
		return err
	}

	vertices := []quadVertex{
		{-0.5, -0.5, 0, [4]uint8{255, 0, 0, 255}},
		{0.5, -0.5, 0, [4]uint8{0, 255, 0, 255}},
		{0.5, 0.5, 0, [4]uint8{0, 0, 255, 255}},
		{-0.5, 0.5, 0, [4]uint8{255, 255, 255, 255}},
	}
	state.quadVertices, err = sys.CreateVertexBuffer(quadDesc.VertexSize(0), uint32(len(vertices)), rhi.BUFFER_USAGE_STATIC, rhi.AsBytes(vertices))
	if err != nil {
		return err
	}
	indices := []uint16{0, 1, 2, 2, 3, 0}
	state.quadIndices, err = sys.CreateIndexBuffer(uint32(len(indices)), false, rhi.BUFFER_USAGE_STATIC, rhi.AsBytes(indices))
	if err != nil {
		return err
	}

	var overlayDesc rhi.InputLayoutDesc
	overlayDesc.
		AddElement(0, rhi.ATTRIBUTE_POSITION, rhi.VERTEX_FORMAT_FLOAT3, false).
		AddElement(0, rhi.ATTRIBUTE_TEXCOORD, rhi.VERTEX_FORMAT_FLOAT2, false)
	if state.overlayLayout, err = sys.CreateInputLayout(overlayDesc); err != nil {
		return err
	}
	state.overlayStride = overlayDesc.VertexSize(0)
	if state.overlayTexture, err = g.loadOverlayTexture(); err != nil {
		return err
	}
	state.overlaySampler = sys.CreateSampler(rhi.SAMPLER_FILTER_POINT, rhi.SAMPLER_ADDRESS_CLAMP)

	raster := rhi.DefaultRasterizerState()
	raster.CullMode = rhi.CULL_MODE_NONE
	state.rasterizer = sys.CreateRasterizerState(raster)
	state.depthStencil = sys.CreateDepthStencilState(rhi.DefaultDepthStencilState())
	state.opaque = sys.CreateBlendState(rhi.DefaultBlendState())
	state.alphaBlend = sys.CreateBlendState(rhi.NewBlendState(rhi.BlendTarget{
		WriteMask: rhi.COLOR_WRITE_RGBA,
		Op:        rhi.BLEND_OP_ADD,
		SrcColor:  rhi.BLEND_SRC_ALPHA,
		DestColor: rhi.BLEND_ONE_MINUS_SRC_ALPHA,
		OpAlpha:   rhi.BLEND_OP_ADD,
		SrcAlpha:  rhi.BLEND_ONE,
		DestAlpha: rhi.BLEND_ONE_MINUS_SRC_ALPHA,
	}))

	return nil
}

func (g *TestGame) Update(deltaTime float64) error {
	state := g.state()
	if state.assets != nil {
		g.reloadChangedAssets()
	}
	state.angle += float32(0.5 * deltaTime)
	if state.angle > 2*gomath.Pi {
		state.angle -= 2 * gomath.Pi
	}
	return nil
}

func (g *TestGame) Render(deltaTime float64) error {
	state := g.state()
	ctx := g.Renderer.System().Context()

	ctx.SetFrameBuffer(nil)
	ctx.SetViewport(math.Viewport{Width: float32(state.width), Height: float32(state.height), ZFar: 1})
	ctx.ClearRenderTargets(rhi.CLEAR_COLOR|rhi.CLEAR_DEPTH, []math.LinearColor{math.NewLinearColor(0.1, 0.1, 0.12, 1)}, 1, 0)

	// shader path: spinning indexed quad
	ctx.SetRasterizerState(state.rasterizer)
	ctx.SetDepthStencilState(state.depthStencil, 0)
	ctx.SetBlendState(state.opaque)
	ctx.SetShaderProgram(state.program)
	ctx.SetShaderMatrix4(state.program, state.transform, math.NewMat4EulerZ(state.angle))
	ctx.SetShaderColor(state.program, state.tint, math.NewLinearColor(1, 1, 1, 1))
	ctx.SetInputStream(state.quadLayout, []rhi.InputStreamInfo{rhi.NewInputStream(state.quadVertices, 0)})
	ctx.SetIndexBuffer(state.quadIndices)
	ctx.DrawIndexedPrimitive(rhi.PRIMITIVE_TYPE_TRIANGLE_LIST, 0, int32(state.quadIndices.ElementCount()), 0)

	// fixed function path: textured overlay from client memory
	aspect := float32(state.width) / float32(max(state.height, 1))
	ortho := math.NewMat4Orthographic(-aspect, aspect, -1, 1, -1, 1)
	ctx.SetBlendState(state.alphaBlend)
	ctx.SetFixedShaderPipelineState(ortho, math.NewLinearColor(1, 1, 1, 0.75), state.overlayTexture, state.overlaySampler)
	ctx.SetInputStream(state.overlayLayout, nil)
	overlay := []overlayVertex{
		{-aspect, -1, 0, 0, 0},
		{-aspect + 0.4, -1, 0, 1, 0},
		{-aspect, -0.6, 0, 0, 1},
		{-aspect + 0.4, -0.6, 0, 1, 1},
	}
	ctx.DrawPrimitiveUP(rhi.PRIMITIVE_TYPE_TRIANGLE_STRIP, int32(len(overlay)), []rhi.VertexDataInfo{
		rhi.NewVertexData(overlay, state.overlayStride),
	}, 1)

	state.frames++
	if state.screenshotPath != "" && !state.screenshotTaken && state.frames >= state.screenshotFrame {
		state.screenshotTaken = true
		img := ctx.ReadPixels(math.Rect{Width: int32(state.width), Height: int32(state.height)})
		if err := writeScreenshot(state.screenshotPath, img); err != nil {
			core.LogError("screenshot failed: %s", err)
		} else {
			core.LogInfo("screenshot written to %s", state.screenshotPath)
		}
	}
	return nil
}

func (g *TestGame) OnResize(width, height uint32) error {
	state := g.state()
	state.width = width
	state.height = height
	return nil
}

func (g *TestGame) Shutdown() error {
	state := g.state()
	if state.assets != nil {
		if err := state.assets.Shutdown(); err != nil {
			core.LogError(err.Error())
		}
	}
	// input layouts and states are owned by the system
	if state.program != nil {
		state.program.Release()
	}
	if state.quadVertices != nil {
		state.quadVertices.Release()
	}
	if state.quadIndices != nil {
		state.quadIndices.Release()
	}
	if state.overlayTexture != nil {
		state.overlayTexture.Release()
	}
	if state.overlaySampler != nil {
		state.overlaySampler.Release()
	}
	return nil
}

// buildProgram compiles the quad program, from the assets directory when it
// holds both stages. The previous program is kept when compilation fails.
func (g *TestGame) buildProgram() error {
	state := g.state()
	sources := []opengl.ShaderSource{
		{Type: rhi.SHADER_TYPE_VERTEX, Code: quadVertexShader},
		{Type: rhi.SHADER_TYPE_PIXEL, Code: quadPixelShader},
	}
	if state.assets != nil {
		for i, name := range []string{"shaders/quad.vert", "shaders/quad.frag"} {
			res, err := state.assets.LoadAsset(name, nil)
			if err != nil {
				core.LogDebug("%s not loaded, using the built in stage: %s", name, err)
				continue
			}
			sources[i].Code = res.Data.(*loaders.ShaderData).Code
		}
	}

	program, err := g.Renderer.System().CreateShaderProgram(sources...)
	if err != nil {
		return err
	}
	if state.program != nil {
		state.program.Release()
	}
	state.program = program
	state.transform = program.Parameter("u_transform")
	state.tint = program.Parameter("u_tint")
	return nil
}

func (g *TestGame) loadOverlayTexture() (*opengl.Texture, error) {
	state := g.state()
	sys := g.Renderer.System()
	if state.assets != nil {
		res, err := state.assets.LoadAsset("textures/overlay.bmp", &loaders.ImageParams{FlipY: true})
		if err == nil {
			img := res.Data.(*loaders.ImageData)
			return sys.CreateTexture2D(rhi.TEXTURE_FORMAT_RGBA8, img.Width, img.Height, img.Pixels)
		}
		core.LogDebug("overlay texture not loaded, using a checkerboard: %s", err)
	}
	return sys.CreateTexture2D(rhi.TEXTURE_FORMAT_RGBA8, 2, 2, checkerPixels())
}

func (g *TestGame) reloadChangedAssets() {
	state := g.state()
	for {
		select {
		case rel := <-state.assets.Changed():
			if _, ok := loaders.ShaderStageOf(rel); !ok {
				continue
			}
			if err := g.buildProgram(); err != nil {
				core.LogWarn("shader reload failed, keeping the previous program: %s", err)
				continue
			}
			core.LogInfo("reloaded quad program after %s changed", rel)
		default:
			return
		}
	}
}

// checkerPixels is a 2x2 RGBA checkerboard.
func checkerPixels() []byte {
	return []byte{
		255, 255, 255, 255, 40, 40, 40, 255,
		40, 40, 40, 255, 255, 255, 255, 255,
	}
}
