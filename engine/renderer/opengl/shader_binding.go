package opengl

import (
	"github.com/spaghettifunk/glrhi/engine/core"
	"github.com/spaghettifunk/glrhi/engine/renderer/rhi"
)

type ShaderBindMode int

const (
	/** @brief No shader is bound, draws use the fixed function path. */
	SHADER_BIND_NONE ShaderBindMode = iota
	/** @brief A linked program is bound with UseProgram. */
	SHADER_BIND_PROGRAM
	/** @brief A program pipeline of separable stages is bound. */
	SHADER_BIND_PIPELINE
	/** @brief A compute shader is bound for dispatch. */
	SHADER_BIND_COMPUTE
)

func (m ShaderBindMode) String() string {
	switch m {
	case SHADER_BIND_PROGRAM:
		return "program"
	case SHADER_BIND_PIPELINE:
		return "pipeline"
	case SHADER_BIND_COMPUTE:
		return "compute"
	}
	return "none"
}

/**
 * @brief Keeps exactly one of program, pipeline or compute shader bound and
 * resets slot assignment whenever the bound shader changes.
 */
type ShaderBindingController struct {
	pipelines *PipelineCache
	slots     *ResourceSlotAllocator

	mode          ShaderBindMode
	program       rhi.ShaderProgram
	pipeline      *ShaderPipeline
	compute       rhi.Shader
	useShaderPath bool
}

func newShaderBindingController(pipelines *PipelineCache, slots *ResourceSlotAllocator) *ShaderBindingController {
	return &ShaderBindingController{
		pipelines: pipelines,
		slots:     slots,
	}
}

func (c *ShaderBindingController) Mode() ShaderBindMode {
	return c.mode
}

func (c *ShaderBindingController) UseShaderPath() bool {
	return c.useShaderPath
}

// clear unbinds whatever is active. Nothing is bound off the shader path.
func (c *ShaderBindingController) clear() {
	if !c.useShaderPath {
		return
	}
	switch c.mode {
	case SHADER_BIND_PIPELINE:
		c.pipeline.Unbind()
	case SHADER_BIND_COMPUTE:
		c.compute.Unbind()
	case SHADER_BIND_PROGRAM:
		c.program.Unbind()
	}
	c.mode = SHADER_BIND_NONE
	c.program = nil
	c.pipeline = nil
	c.compute = nil
}

func (c *ShaderBindingController) setShaderProgram(program rhi.ShaderProgram) {
	c.clear()
	if program == nil {
		c.mode = SHADER_BIND_NONE
		c.useShaderPath = false
		return
	}
	program.Bind()
	c.slots.reset()
	c.program = program
	c.mode = SHADER_BIND_PROGRAM
	c.useShaderPath = true
}

func (c *ShaderBindingController) setGraphicsPipeline(desc rhi.GraphicsShaderStateDesc) error {
	c.clear()
	pipeline, err := c.pipelines.Graphics(desc)
	return c.bindPipeline(pipeline, err)
}

func (c *ShaderBindingController) setMeshPipeline(desc rhi.MeshShaderStateDesc) error {
	c.clear()
	pipeline, err := c.pipelines.Mesh(desc)
	return c.bindPipeline(pipeline, err)
}

func (c *ShaderBindingController) bindPipeline(pipeline *ShaderPipeline, err error) error {
	if err != nil {
		core.LogWarn("shader pipeline not bound: %s", err)
		c.mode = SHADER_BIND_NONE
		c.useShaderPath = false
		return err
	}
	pipeline.Bind()
	c.slots.reset()
	c.pipeline = pipeline
	c.mode = SHADER_BIND_PIPELINE
	c.useShaderPath = true
	return nil
}

func (c *ShaderBindingController) setComputeShader(shader rhi.Shader) {
	c.clear()
	if shader == nil {
		c.useShaderPath = false
		return
	}
	shader.Bind()
	c.slots.reset()
	c.compute = shader
	c.mode = SHADER_BIND_COMPUTE
	c.useShaderPath = true
}

// dropToFixedPath leaves the current binding alone but routes the next draws
// through the fixed function emulation.
func (c *ShaderBindingController) dropToFixedPath() {
	c.useShaderPath = false
}
