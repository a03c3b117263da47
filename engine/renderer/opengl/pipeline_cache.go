package opengl

import (
	"fmt"

	"golang.org/x/exp/maps"

	"github.com/spaghettifunk/glrhi/engine/core"
	"github.com/spaghettifunk/glrhi/engine/renderer/gl"
	"github.com/spaghettifunk/glrhi/engine/renderer/rhi"
)

type pipelineKind uint8

const (
	pipelineKindGraphics pipelineKind = iota
	pipelineKindMesh
)

const maxPipelineStages = 5

type pipelineStage struct {
	bit    gl.Enum
	shader rhi.Shader
}

// pipelineKey identifies a pipeline by the handles of its stages, in a fixed
// stage order per kind.
type pipelineKey struct {
	kind    pipelineKind
	handles [maxPipelineStages]uint32
}

func newPipelineKey(kind pipelineKind, stages []pipelineStage) (pipelineKey, bool) {
	key := pipelineKey{kind: kind}
	valid := false
	for i, stage := range stages {
		if stage.shader == nil {
			continue
		}
		key.handles[i] = stage.shader.Handle()
		valid = true
	}
	return key, valid
}

func graphicsStages(desc rhi.GraphicsShaderStateDesc) []pipelineStage {
	return []pipelineStage{
		{gl.VERTEX_SHADER_BIT, desc.Vertex},
		{gl.FRAGMENT_SHADER_BIT, desc.Pixel},
		{gl.GEOMETRY_SHADER_BIT, desc.Geometry},
		{gl.TESS_CONTROL_SHADER_BIT, desc.Hull},
		{gl.TESS_EVALUATION_SHADER_BIT, desc.Domain},
	}
}

func meshStages(desc rhi.MeshShaderStateDesc) []pipelineStage {
	return []pipelineStage{
		{gl.TASK_SHADER_BIT_NV, desc.Task},
		{gl.MESH_SHADER_BIT_NV, desc.Mesh},
		{gl.FRAGMENT_SHADER_BIT, desc.Pixel},
	}
}

/**
 * @brief A program pipeline object combining separable shader stages.
 */
type ShaderPipeline struct {
	fns    gl.Functions
	handle uint32
}

func (p *ShaderPipeline) Handle() uint32 {
	return p.handle
}

func (p *ShaderPipeline) Bind() {
	p.fns.BindProgramPipeline(p.handle)
}

func (p *ShaderPipeline) Unbind() {
	p.fns.BindProgramPipeline(0)
}

/**
 * @brief Deduplicates program pipelines by stage handle combination. Entries
 * live until Release.
 */
type PipelineCache struct {
	fns       gl.Functions
	counters  *core.FrameCounters
	pipelines map[pipelineKey]*ShaderPipeline
}

func NewPipelineCache(fns gl.Functions, counters *core.FrameCounters) *PipelineCache {
	return &PipelineCache{
		fns:       fns,
		counters:  counters,
		pipelines: make(map[pipelineKey]*ShaderPipeline),
	}
}

// Graphics returns the pipeline for a vertex/pixel/geometry/hull/domain
// combination, creating it on first use.
func (c *PipelineCache) Graphics(desc rhi.GraphicsShaderStateDesc) (*ShaderPipeline, error) {
	return c.getOrCreate(pipelineKindGraphics, graphicsStages(desc))
}

// Mesh returns the pipeline for a task/mesh/pixel combination.
func (c *PipelineCache) Mesh(desc rhi.MeshShaderStateDesc) (*ShaderPipeline, error) {
	return c.getOrCreate(pipelineKindMesh, meshStages(desc))
}

func (c *PipelineCache) getOrCreate(kind pipelineKind, stages []pipelineStage) (*ShaderPipeline, error) {
	key, ok := newPipelineKey(kind, stages)
	if !ok {
		return nil, fmt.Errorf("no shader stages bound: %w", core.ErrPipelineUnavailable)
	}
	if pipeline, ok := c.pipelines[key]; ok {
		if c.counters != nil {
			c.counters.PipelineHits++
		}
		return pipeline, nil
	}

	pipeline := &ShaderPipeline{fns: c.fns, handle: c.fns.GenProgramPipeline()}
	if pipeline.handle == 0 {
		return nil, fmt.Errorf("program pipeline allocation: %w", core.ErrPipelineUnavailable)
	}
	for _, stage := range stages {
		if stage.shader != nil {
			c.fns.UseProgramStages(pipeline.handle, stage.bit, stage.shader.Handle())
		}
	}
	if err := verifyStatus(c.fns); err != nil {
		c.fns.DeleteProgramPipeline(pipeline.handle)
		return nil, fmt.Errorf("program pipeline %v: %w: %w", key.handles, core.ErrPipelineUnavailable, err)
	}

	c.pipelines[key] = pipeline
	if c.counters != nil {
		c.counters.PipelineMisses++
	}
	return pipeline, nil
}

func (c *PipelineCache) Len() int {
	return len(c.pipelines)
}

// Release deletes every cached pipeline.
func (c *PipelineCache) Release() {
	for _, pipeline := range c.pipelines {
		c.fns.DeleteProgramPipeline(pipeline.handle)
	}
	maps.Clear(c.pipelines)
}
