package opengl

import (
	"github.com/spaghettifunk/glrhi/engine/renderer/gl"
	"github.com/spaghettifunk/glrhi/engine/renderer/rhi"
)

type rasterizerValue struct {
	fillMode          gl.Enum
	cullFace          gl.Enum
	frontFace         gl.Enum
	enableCull        bool
	enableScissor     bool
	enableMultisample bool
}

// defaultRasterizerValue mirrors the driver state of a fresh context.
func defaultRasterizerValue() rasterizerValue {
	return rasterizerValue{
		fillMode:  gl.FILL,
		cullFace:  gl.BACK,
		frontFace: gl.CW,
	}
}

/** @brief Immutable rasterizer state with its driver values precomputed. */
type RasterizerState struct {
	id    uint32
	desc  rhi.RasterizerStateInitializer
	value rasterizerValue
}

func newRasterizerState(id uint32, desc rhi.RasterizerStateInitializer) *RasterizerState {
	return &RasterizerState{
		id:   id,
		desc: desc,
		value: rasterizerValue{
			fillMode:          translateFillMode(desc.FillMode),
			cullFace:          translateCullMode(desc.CullMode),
			frontFace:         translateFrontFace(desc.FrontFace),
			enableCull:        desc.CullMode != rhi.CULL_MODE_NONE,
			enableScissor:     desc.EnableScissor,
			enableMultisample: desc.EnableMultisample,
		},
	}
}

func (s *RasterizerState) ID() uint32 {
	return s.id
}

func (s *RasterizerState) Desc() rhi.RasterizerStateInitializer {
	return s.desc
}

type blendTargetValue struct {
	writeMask rhi.ColorWriteMask
	enable    bool
	separate  bool
	srcColor  gl.Enum
	destColor gl.Enum
	srcAlpha  gl.Enum
	destAlpha gl.Enum
	op        gl.Enum
	opAlpha   gl.Enum
}

func defaultBlendTargetValue() blendTargetValue {
	return blendTargetValue{
		writeMask: rhi.COLOR_WRITE_RGBA,
		srcColor:  gl.ONE,
		destColor: gl.ZERO,
		srcAlpha:  gl.ONE,
		destAlpha: gl.ZERO,
		op:        gl.FUNC_ADD,
		opAlpha:   gl.FUNC_ADD,
	}
}

type blendValue struct {
	enableAlphaToCoverage bool
	enableIndependent     bool
	targets               [rhi.MAX_BLEND_TARGETS]blendTargetValue
}

func defaultBlendValue() blendValue {
	var v blendValue
	for i := range v.targets {
		v.targets[i] = defaultBlendTargetValue()
	}
	return v
}

/** @brief Immutable blend state with its driver values precomputed. */
type BlendState struct {
	id    uint32
	desc  rhi.BlendStateInitializer
	value blendValue
}

func newBlendState(id uint32, desc rhi.BlendStateInitializer) *BlendState {
	value := defaultBlendValue()
	value.enableAlphaToCoverage = desc.EnableAlphaToCoverage
	value.enableIndependent = desc.EnableIndependent
	// a uniform state only describes its first target
	for i := 0; i < desc.TargetCount(); i++ {
		t := desc.Targets[i]
		value.targets[i] = blendTargetValue{
			writeMask: t.WriteMask,
			enable:    t.IsEnabled(),
			separate:  t.IsSeparate(),
			srcColor:  translateBlendFactor(t.SrcColor),
			destColor: translateBlendFactor(t.DestColor),
			srcAlpha:  translateBlendFactor(t.SrcAlpha),
			destAlpha: translateBlendFactor(t.DestAlpha),
			op:        translateBlendOp(t.Op),
			opAlpha:   translateBlendOp(t.OpAlpha),
		}
	}
	return &BlendState{id: id, desc: desc, value: value}
}

func (s *BlendState) ID() uint32 {
	return s.id
}

func (s *BlendState) Desc() rhi.BlendStateInitializer {
	return s.desc
}

type depthStencilValue struct {
	enableDepthTest        bool
	writeDepth             bool
	depthFunc              gl.Enum
	enableStencilTest      bool
	useSeparateStencilOp   bool
	useSeparateStencilFunc bool
	stencilFunc            gl.Enum
	stencilFuncBack        gl.Enum
	stencilFailOp          gl.Enum
	zFailOp                gl.Enum
	zPassOp                gl.Enum
	stencilFailOpBack      gl.Enum
	zFailOpBack            gl.Enum
	zPassOpBack            gl.Enum
	stencilReadMask        uint32
	stencilWriteMask       uint32
	stencilRef             int32
}

// defaultDepthStencilValue mirrors a fresh context. The reference starts at
// -1 so the first stencil function is always issued.
func defaultDepthStencilValue() depthStencilValue {
	return depthStencilValue{
		depthFunc:         gl.LESS,
		stencilFunc:       gl.ALWAYS,
		stencilFuncBack:   gl.ALWAYS,
		stencilFailOp:     gl.KEEP,
		zFailOp:           gl.KEEP,
		zPassOp:           gl.KEEP,
		stencilFailOpBack: gl.KEEP,
		zFailOpBack:       gl.KEEP,
		zPassOpBack:       gl.KEEP,
		stencilReadMask:   0xffffffff,
		stencilWriteMask:  0xffffffff,
		stencilRef:        -1,
	}
}

/** @brief Immutable depth stencil state with its driver values precomputed. */
type DepthStencilState struct {
	id    uint32
	desc  rhi.DepthStencilStateInitializer
	value depthStencilValue
}

func newDepthStencilState(id uint32, desc rhi.DepthStencilStateInitializer) *DepthStencilState {
	return &DepthStencilState{
		id:   id,
		desc: desc,
		value: depthStencilValue{
			enableDepthTest:        desc.IsDepthEnabled(),
			writeDepth:             desc.WriteDepth,
			depthFunc:              translateCompareFunc(desc.DepthFunc),
			enableStencilTest:      desc.EnableStencilTest,
			useSeparateStencilOp:   desc.UseSeparateStencilOp(),
			useSeparateStencilFunc: desc.UseSeparateStencilFunc(),
			stencilFunc:            translateCompareFunc(desc.StencilFunc),
			stencilFuncBack:        translateCompareFunc(desc.StencilFuncBack),
			stencilFailOp:          translateStencilOp(desc.StencilFailOp),
			zFailOp:                translateStencilOp(desc.ZFailOp),
			zPassOp:                translateStencilOp(desc.ZPassOp),
			stencilFailOpBack:      translateStencilOp(desc.StencilFailOpBack),
			zFailOpBack:            translateStencilOp(desc.ZFailOpBack),
			zPassOpBack:            translateStencilOp(desc.ZPassOpBack),
			stencilReadMask:        desc.StencilReadMask,
			stencilWriteMask:       desc.StencilWriteMask,
		},
	}
}

func (s *DepthStencilState) ID() uint32 {
	return s.id
}

func (s *DepthStencilState) Desc() rhi.DepthStencilStateInitializer {
	return s.desc
}
