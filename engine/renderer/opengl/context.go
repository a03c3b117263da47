package opengl

import (
	"github.com/spaghettifunk/glrhi/engine/core"
	"github.com/spaghettifunk/glrhi/engine/math"
	"github.com/spaghettifunk/glrhi/engine/renderer/gl"
	"github.com/spaghettifunk/glrhi/engine/renderer/rhi"
)

/** @brief Commit policy of a context, fixed when the device is initialized. */
type ContextConfig struct {
	/** @brief Apply state and sampler changes on every set call instead of at draw time. */
	ImmediateCommit bool
	/** @brief Emulate the fixed function path with simple shader programs. */
	FixedPipelineUseShader bool
}

/** @brief Parameters of the emulated fixed function pipeline. */
type FixedShaderParams struct {
	Transform math.Mat4
	Color     math.LinearColor
	Texture   rhi.Texture
	Sampler   rhi.Sampler
}

func defaultFixedShaderParams() FixedShaderParams {
	return FixedShaderParams{
		Transform: math.NewMat4Identity(),
		Color:     math.NewLinearColor(1, 1, 1, 1),
	}
}

/**
 * @brief The device command context. Translates state, binding and draw
 * calls into the minimal sequence of driver calls.
 */
type Context struct {
	fns      gl.Functions
	caps     *Capabilities
	cfg      ContextConfig
	counters *core.FrameCounters

	state   *DeviceStateCache
	slots   *ResourceSlotAllocator
	input   *InputBindingManager
	shaders *ShaderBindingController
	simple  *simplePrograms

	indexBuffer rhi.Buffer
	frameBuffer rhi.FrameBuffer
	fixed       FixedShaderParams

	resolveFrameBuffers [2]uint32
}

func newContext(fns gl.Functions, caps *Capabilities, cfg ContextConfig, pipelines *PipelineCache, counters *core.FrameCounters) *Context {
	slots := newResourceSlotAllocator(fns, cfg.ImmediateCommit, counters)
	c := &Context{
		fns:      fns,
		caps:     caps,
		cfg:      cfg,
		counters: counters,
		state:    newDeviceStateCache(fns),
		slots:    slots,
		input:    newInputBindingManager(fns, cfg.FixedPipelineUseShader, counters),
		shaders:  newShaderBindingController(pipelines, slots),
		simple:   newSimplePrograms(fns),
		fixed:    defaultFixedShaderParams(),
	}
	return c
}

// initialize allocates the objects the context owns for its lifetime.
func (c *Context) initialize() {
	for i := range c.resolveFrameBuffers {
		c.resolveFrameBuffers[i] = c.fns.GenFramebuffer()
	}
}

func (c *Context) shutdown() {
	c.shaders.clear()
	c.frameBuffer = nil
	c.indexBuffer = nil
	c.input.release()
	c.simple.release()
	for i, handle := range c.resolveFrameBuffers {
		if handle != 0 {
			c.fns.DeleteFramebuffer(handle)
			c.resolveFrameBuffers[i] = 0
		}
	}
}

func (c *Context) Capabilities() *Capabilities {
	return c.caps
}

func (c *Context) countStateCommits(groups int) {
	if c.counters != nil {
		c.counters.StateCommits += groups
	}
}

func (c *Context) SetRasterizerState(state *RasterizerState) {
	c.state.setRasterizerPending(state)
	if c.cfg.ImmediateCommit {
		c.countStateCommits(c.state.commitRasterizer())
	}
}

func (c *Context) SetBlendState(state *BlendState) {
	c.state.setBlendPending(state)
	if c.cfg.ImmediateCommit {
		c.countStateCommits(c.state.commitBlend())
	}
}

func (c *Context) SetDepthStencilState(state *DepthStencilState, stencilRef uint32) {
	c.state.setDepthStencilPending(state, stencilRef)
	if c.cfg.ImmediateCommit {
		c.countStateCommits(c.state.commitDepthStencil())
	}
}

func (c *Context) SetViewport(viewport math.Viewport) {
	c.fns.Viewport(int32(viewport.X), int32(viewport.Y), int32(viewport.Width), int32(viewport.Height))
	c.fns.DepthRange(float64(math.Clamp(viewport.ZNear, 0, 1)), float64(math.Clamp(viewport.ZFar, 0, 1)))
}

// SetViewports sets indexed viewports starting at index 0.
func (c *Context) SetViewports(viewports []math.Viewport) {
	for i, vp := range viewports {
		c.fns.ViewportIndexedf(uint32(i), vp.X, vp.Y, vp.Width, vp.Height)
		c.fns.DepthRangeIndexed(uint32(i), float64(math.Clamp(vp.ZNear, 0, 1)), float64(math.Clamp(vp.ZFar, 0, 1)))
	}
}

func (c *Context) SetScissorRect(rect math.Rect) {
	c.fns.Scissor(rect.X, rect.Y, rect.Width, rect.Height)
}

// SetFrameBuffer binds frameBuffer, or the default framebuffer when nil.
func (c *Context) SetFrameBuffer(frameBuffer rhi.FrameBuffer) {
	if c.frameBuffer != nil {
		c.frameBuffer.Unbind()
	}
	c.frameBuffer = frameBuffer
	if frameBuffer != nil {
		enableState(c.fns, gl.MULTISAMPLE, frameBuffer.IsMultisample())
		frameBuffer.Bind()
	}
}

// ClearRenderTargets clears the bound targets. A single color uses the clear
// color, several colors clear each draw buffer separately.
func (c *Context) ClearRenderTargets(bits rhi.ClearBits, colors []math.LinearColor, depth float32, stencil uint8) {
	var mask gl.Enum
	if bits&rhi.CLEAR_COLOR != 0 {
		if len(colors) == 1 {
			c.fns.ClearColor(colors[0].R, colors[0].G, colors[0].B, colors[0].A)
			mask |= gl.COLOR_BUFFER_BIT
		} else {
			for i, color := range colors {
				rgba := color.Array()
				c.fns.ClearBufferfv(gl.COLOR, int32(i), rgba[:])
			}
		}
	}
	if bits&rhi.CLEAR_DEPTH != 0 {
		c.fns.ClearDepth(float64(depth))
		mask |= gl.DEPTH_BUFFER_BIT
	}
	if bits&rhi.CLEAR_STENCIL != 0 {
		c.fns.ClearStencil(int32(stencil))
		mask |= gl.STENCIL_BUFFER_BIT
	}
	if mask != 0 {
		c.fns.Clear(mask)
	}
}

func (c *Context) SetInputStream(layout *InputLayout, streams []rhi.InputStreamInfo) {
	c.input.setInputStream(layout, streams)
}

func (c *Context) SetIndexBuffer(buffer rhi.Buffer) {
	c.indexBuffer = buffer
}

// ResolveTexture blits a multisampled 2D texture into a regular one.
func (c *Context) ResolveTexture(dest rhi.Texture, destLevel int32, src rhi.Texture, srcLevel int32) {
	if dest.Type() != rhi.TEXTURE_TYPE_2D {
		core.LogWarn("resolve target must be a 2D texture, got %d", dest.Type())
		return
	}
	if src.Type() != rhi.TEXTURE_TYPE_2D && src.Type() != rhi.TEXTURE_TYPE_2D_MULTISAMPLE {
		core.LogWarn("resolve source must be a 2D texture, got %d", src.Type())
		return
	}
	srcWidth, srcHeight := src.Size()
	dstWidth, dstHeight := dest.Size()
	read, draw := c.resolveFrameBuffers[0], c.resolveFrameBuffers[1]
	c.fns.BindFramebuffer(gl.READ_FRAMEBUFFER, read)
	c.fns.BindFramebuffer(gl.DRAW_FRAMEBUFFER, draw)
	c.fns.FramebufferTexture2D(gl.READ_FRAMEBUFFER, gl.COLOR_ATTACHMENT0, translateTextureType(src.Type()), src.Handle(), srcLevel)
	c.fns.FramebufferTexture2D(gl.DRAW_FRAMEBUFFER, gl.COLOR_ATTACHMENT0+1, gl.TEXTURE_2D, dest.Handle(), destLevel)
	c.fns.ReadBuffer(gl.COLOR_ATTACHMENT0)
	c.fns.DrawBuffer(gl.COLOR_ATTACHMENT0 + 1)
	c.fns.BlitFramebuffer(0, 0, srcWidth, srcHeight, 0, 0, dstWidth, dstHeight, gl.COLOR_BUFFER_BIT, gl.NEAREST)
	c.fns.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)
	c.fns.BindFramebuffer(gl.DRAW_FRAMEBUFFER, 0)
}

func (c *Context) FlushCommand() {
	c.fns.Flush()
}

// SetFixedShaderPipelineState routes the next draws through the fixed
// function path with the given transform, color and optional texture.
func (c *Context) SetFixedShaderPipelineState(transform math.Mat4, color math.LinearColor, texture rhi.Texture, sampler rhi.Sampler) {
	if c.cfg.FixedPipelineUseShader {
		c.fixed = FixedShaderParams{Transform: transform, Color: color, Texture: texture, Sampler: sampler}
		c.shaders.dropToFixedPath()
		return
	}

	c.SetShaderProgram(nil)
	c.fns.MatrixMode(gl.PROJECTION)
	c.fns.LoadIdentity()
	c.fns.MatrixMode(gl.MODELVIEW)
	c.fns.LoadMatrixf(transform.Data)
	c.fns.Color4fv(color.Array())
	if texture == nil {
		c.fns.Disable(gl.TEXTURE_2D)
		return
	}
	c.fns.Enable(gl.TEXTURE_2D)
	c.fns.ActiveTexture(gl.TEXTURE0)
	c.fns.BindTexture(gl.TEXTURE_2D, texture.Handle())
	var samplerHandle uint32
	if sampler != nil {
		samplerHandle = sampler.Handle()
	}
	c.fns.BindSampler(0, samplerHandle)
}

// commitFixedShaderState binds the simple program matching the committed
// layout while the fixed function path is emulated.
func (c *Context) commitFixedShaderState() {
	if c.shaders.UseShaderPath() || !c.cfg.FixedPipelineUseShader {
		return
	}
	layout := c.input.committedLayout()
	if layout == nil {
		return
	}
	program := c.simple.get(layout.AttributeMask(), c.fixed.Texture != nil)
	if program == nil {
		return
	}
	c.SetShaderProgram(program)
	program.setParameters(c, c.fixed)
}

// commitGraphicStates applies deferred state before a draw. Samplers go last
// so textures set by the fixed function emulation are included.
func (c *Context) commitGraphicStates() {
	if !c.cfg.ImmediateCommit {
		groups := c.state.commitRasterizer()
		groups += c.state.commitDepthStencil()
		groups += c.state.commitBlend()
		c.countStateCommits(groups)
	}
	c.commitFixedShaderState()
	if !c.cfg.ImmediateCommit {
		c.slots.commit()
	}
}

func (c *Context) commitSamplerStates() {
	c.slots.commit()
}

func (c *Context) SetShaderProgram(program rhi.ShaderProgram) {
	c.shaders.setShaderProgram(program)
}

// SetGraphicsPipeline binds the cached pipeline for desc. On failure the
// context is left without a shader and the error is returned.
func (c *Context) SetGraphicsPipeline(desc rhi.GraphicsShaderStateDesc) error {
	return c.shaders.setGraphicsPipeline(desc)
}

func (c *Context) SetMeshPipeline(desc rhi.MeshShaderStateDesc) error {
	return c.shaders.setMeshPipeline(desc)
}

func (c *Context) SetComputeShader(shader rhi.Shader) {
	c.shaders.setComputeShader(shader)
}

func (c *Context) ShaderBindMode() ShaderBindMode {
	return c.shaders.Mode()
}
