package opengl

import (
	_ "embed"
	"strings"

	"github.com/spaghettifunk/glrhi/engine/core"
	"github.com/spaghettifunk/glrhi/engine/renderer/gl"
	"github.com/spaghettifunk/glrhi/engine/renderer/rhi"
)

//go:embed shaders/simple_pipeline.vert
var simplePipelineVertexSource string

//go:embed shaders/simple_pipeline.frag
var simplePipelineFragmentSource string

const simplePipelineVersion = "#version 430 core\n"

type simplePermutation uint8

const (
	simpleVertexColor simplePermutation = 1 << iota
	simpleTexcoord
	simplePermutationCount = 1 << 2
)

func (p simplePermutation) defines() string {
	var sb strings.Builder
	sb.WriteString(simplePipelineVersion)
	if p&simpleVertexColor != 0 {
		sb.WriteString("#define HAVE_VERTEX_COLOR 1\n")
	}
	if p&simpleTexcoord != 0 {
		sb.WriteString("#define HAVE_TEXCOORD 1\n")
	}
	return sb.String()
}

// simplePermutationOf picks the permutation fed by a layout's attribute mask.
// Texture coordinates are only read when a texture is set.
func simplePermutationOf(attributeMask uint32, useTexture bool) simplePermutation {
	var p simplePermutation
	if attributeMask&(1<<rhi.ATTRIBUTE_COLOR) != 0 {
		p |= simpleVertexColor
	}
	if useTexture && attributeMask&(1<<rhi.ATTRIBUTE_TEXCOORD) != 0 {
		p |= simpleTexcoord
	}
	return p
}

// simplePipelineProgram emulates the fixed function transform, color and
// single texture stage.
type simplePipelineProgram struct {
	*ShaderProgram
	permutation simplePermutation

	xform   rhi.ShaderParameter
	color   rhi.ShaderParameter
	texture rhi.ShaderParameter
}

func newSimplePipelineProgram(fns gl.Functions, p simplePermutation) (*simplePipelineProgram, error) {
	header := p.defines()
	program, err := newShaderProgram(fns,
		ShaderSource{Type: rhi.SHADER_TYPE_VERTEX, Code: header + simplePipelineVertexSource},
		ShaderSource{Type: rhi.SHADER_TYPE_PIXEL, Code: header + simplePipelineFragmentSource},
	)
	if err != nil {
		return nil, err
	}
	return &simplePipelineProgram{
		ShaderProgram: program,
		permutation:   p,
		xform:         program.Parameter("XForm"),
		color:         program.Parameter("Color"),
		texture:       program.Parameter("Texture"),
	}, nil
}

func (s *simplePipelineProgram) setParameters(c *Context, params FixedShaderParams) {
	c.SetShaderMatrix4(s, s.xform, params.Transform)
	c.SetShaderColor(s, s.color, params.Color)
	if s.permutation&simpleTexcoord != 0 {
		c.SetShaderTextureWithSampler(s, s.texture, params.Texture, params.Sampler)
	}
}

// simplePrograms compiles permutations lazily. A permutation that failed to
// build is not retried.
type simplePrograms struct {
	fns      gl.Functions
	programs [simplePermutationCount]*simplePipelineProgram
	failed   [simplePermutationCount]bool
}

func newSimplePrograms(fns gl.Functions) *simplePrograms {
	return &simplePrograms{fns: fns}
}

func (s *simplePrograms) get(attributeMask uint32, useTexture bool) *simplePipelineProgram {
	p := simplePermutationOf(attributeMask, useTexture)
	if program := s.programs[p]; program != nil {
		return program
	}
	if s.failed[p] {
		return nil
	}
	program, err := newSimplePipelineProgram(s.fns, p)
	if err != nil {
		core.LogError("simple pipeline program %d: %s", p, err)
		s.failed[p] = true
		return nil
	}
	s.programs[p] = program
	return program
}

func (s *simplePrograms) release() {
	for i, program := range s.programs {
		if program != nil {
			program.Release()
			s.programs[i] = nil
		}
		s.failed[i] = false
	}
}
