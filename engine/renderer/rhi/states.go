package rhi

// MAX_BLEND_TARGETS is the number of render targets a blend state describes.
const MAX_BLEND_TARGETS = 8

/** @brief Describes how primitives are rasterized. */
type RasterizerStateInitializer struct {
	FillMode          FillMode
	CullMode          CullMode
	FrontFace         FrontFace
	EnableScissor     bool
	EnableMultisample bool
}

// DefaultRasterizerState culls back faces, fills solid and enables multisampling.
func DefaultRasterizerState() RasterizerStateInitializer {
	return RasterizerStateInitializer{
		FillMode:          FILL_MODE_SOLID,
		CullMode:          CULL_MODE_BACK,
		FrontFace:         FRONT_FACE_DEFAULT,
		EnableMultisample: true,
	}
}

/** @brief Describes depth and stencil testing. Back face values are used when they differ from the front face ones. */
type DepthStencilStateInitializer struct {
	DepthFunc         CompareFunc
	WriteDepth        bool
	EnableStencilTest bool

	StencilFunc   CompareFunc
	StencilFailOp StencilOp
	ZFailOp       StencilOp
	ZPassOp       StencilOp

	StencilFuncBack   CompareFunc
	StencilFailOpBack StencilOp
	ZFailOpBack       StencilOp
	ZPassOpBack       StencilOp

	StencilReadMask  uint32
	StencilWriteMask uint32
}

// DefaultDepthStencilState writes depth with a less-equal test and leaves stencil off.
func DefaultDepthStencilState() DepthStencilStateInitializer {
	return DepthStencilStateInitializer{
		DepthFunc:         COMPARE_LESS_EQUAL,
		WriteDepth:        true,
		StencilFunc:       COMPARE_ALWAYS,
		StencilFailOp:     STENCIL_OP_KEEP,
		ZFailOp:           STENCIL_OP_KEEP,
		ZPassOp:           STENCIL_OP_KEEP,
		StencilFuncBack:   COMPARE_ALWAYS,
		StencilFailOpBack: STENCIL_OP_KEEP,
		ZFailOpBack:       STENCIL_OP_KEEP,
		ZPassOpBack:       STENCIL_OP_KEEP,
		StencilReadMask:   0xffffffff,
		StencilWriteMask:  0xffffffff,
	}
}

// IsDepthEnabled reports whether the depth test has any effect.
func (d DepthStencilStateInitializer) IsDepthEnabled() bool {
	return d.DepthFunc != COMPARE_ALWAYS || d.WriteDepth
}

// UseSeparateStencilOp reports whether front and back faces use different stencil operations.
func (d DepthStencilStateInitializer) UseSeparateStencilOp() bool {
	return d.StencilFailOp != d.StencilFailOpBack || d.ZFailOp != d.ZFailOpBack || d.ZPassOp != d.ZPassOpBack
}

// UseSeparateStencilFunc reports whether front and back faces use different stencil functions.
func (d DepthStencilStateInitializer) UseSeparateStencilFunc() bool {
	return d.StencilFunc != d.StencilFuncBack
}

/** @brief Blend configuration of a single render target. */
type BlendTarget struct {
	WriteMask ColorWriteMask
	Op        BlendOp
	SrcColor  BlendFactor
	DestColor BlendFactor
	OpAlpha   BlendOp
	SrcAlpha  BlendFactor
	DestAlpha BlendFactor
}

// DefaultBlendTarget writes every channel without blending.
func DefaultBlendTarget() BlendTarget {
	return BlendTarget{
		WriteMask: COLOR_WRITE_RGBA,
		Op:        BLEND_OP_ADD,
		SrcColor:  BLEND_ONE,
		DestColor: BLEND_ZERO,
		OpAlpha:   BLEND_OP_ADD,
		SrcAlpha:  BLEND_ONE,
		DestAlpha: BLEND_ZERO,
	}
}

// IsEnabled reports whether the factors differ from a plain overwrite.
func (t BlendTarget) IsEnabled() bool {
	return t.SrcColor != BLEND_ONE || t.SrcAlpha != BLEND_ONE || t.DestColor != BLEND_ZERO || t.DestAlpha != BLEND_ZERO
}

// IsSeparate reports whether the alpha channel blends differently from color.
func (t BlendTarget) IsSeparate() bool {
	return t.SrcColor != t.SrcAlpha || t.DestColor != t.DestAlpha || t.Op != t.OpAlpha
}

/** @brief Describes output merging for up to MAX_BLEND_TARGETS render targets. */
type BlendStateInitializer struct {
	EnableAlphaToCoverage bool
	/** @brief When false only Targets[0] is used and applies to every render target. */
	EnableIndependent bool
	Targets           [MAX_BLEND_TARGETS]BlendTarget
}

// DefaultBlendState disables blending on every target.
func DefaultBlendState() BlendStateInitializer {
	var b BlendStateInitializer
	for i := range b.Targets {
		b.Targets[i] = DefaultBlendTarget()
	}
	return b
}

// NewBlendState returns a uniform blend state driven by a single target.
func NewBlendState(target BlendTarget) BlendStateInitializer {
	b := DefaultBlendState()
	b.Targets[0] = target
	return b
}

// TargetCount is the number of targets a state actually describes.
func (b BlendStateInitializer) TargetCount() int {
	if b.EnableIndependent {
		return MAX_BLEND_TARGETS
	}
	return 1
}
