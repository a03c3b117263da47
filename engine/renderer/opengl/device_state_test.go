package opengl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/glrhi/engine/renderer/gl"
	"github.com/spaghettifunk/glrhi/engine/renderer/rhi"
)

func newTestStateCache() (*DeviceStateCache, *fakeGL) {
	fake := newFakeGL()
	return newDeviceStateCache(fake), fake
}

func TestRasterizerSameObjectIssuesNothing(t *testing.T) {
	cache, fake := newTestStateCache()
	state := newRasterizerState(1, rhi.DefaultRasterizerState())

	cache.setRasterizerPending(state)
	assert.NotZero(t, cache.commitRasterizer())
	fake.reset()

	cache.setRasterizerPending(state)
	assert.Zero(t, cache.commitRasterizer())
	assert.Empty(t, fake.calls)
}

func TestRasterizerOnlyDifferingFields(t *testing.T) {
	cache, fake := newTestStateCache()

	desc := rhi.RasterizerStateInitializer{CullMode: rhi.CULL_MODE_NONE}
	cache.setRasterizerPending(newRasterizerState(1, desc))
	// matches the fresh context defaults
	assert.Zero(t, cache.commitRasterizer())
	assert.Empty(t, fake.calls)

	desc.EnableScissor = true
	cache.setRasterizerPending(newRasterizerState(2, desc))
	cache.commitRasterizer()
	assert.Equal(t, []string{"Enable(3089)"}, fake.trace())
}

func TestRasterizerFaceChangeWhileCulling(t *testing.T) {
	cache, fake := newTestStateCache()

	cache.setRasterizerPending(newRasterizerState(1, rhi.RasterizerStateInitializer{
		CullMode:  rhi.CULL_MODE_FRONT,
		FrontFace: rhi.FRONT_FACE_INVERSE,
	}))
	cache.commitRasterizer()
	assert.True(t, fake.called("Enable", gl.CULL_FACE))
	assert.True(t, fake.called("FrontFace", gl.CCW))
	assert.True(t, fake.called("CullFace", gl.FRONT))
	fake.reset()

	// culling stays on, only the face moves
	cache.setRasterizerPending(newRasterizerState(2, rhi.RasterizerStateInitializer{
		CullMode:  rhi.CULL_MODE_BACK,
		FrontFace: rhi.FRONT_FACE_INVERSE,
	}))
	assert.Equal(t, 1, cache.commitRasterizer())
	assert.Equal(t, []string{"CullFace(1029)"}, fake.trace())
	fake.reset()

	cache.setRasterizerPending(newRasterizerState(3, rhi.RasterizerStateInitializer{
		CullMode: rhi.CULL_MODE_BACK,
	}))
	cache.commitRasterizer()
	assert.Equal(t, []string{"FrontFace(2304)"}, fake.trace())
}

func TestForceInitReissuesEverything(t *testing.T) {
	cache, fake := newTestStateCache()
	state := newRasterizerState(1, rhi.RasterizerStateInitializer{CullMode: rhi.CULL_MODE_NONE})

	cache.setRasterizerPending(state)
	cache.commitRasterizer()
	require.Empty(t, fake.calls)

	cache.withForceInit(func() {
		cache.setRasterizerPending(state)
		cache.commitRasterizer()
	})
	assert.Equal(t, []string{"PolygonMode", "Disable", "Disable", "Disable", "FrontFace", "CullFace"}, fake.names())
	assert.False(t, cache.forceInit)
}

func TestDepthStencilDefaults(t *testing.T) {
	cache, fake := newTestStateCache()

	cache.withForceInit(func() {
		cache.setDepthStencilPending(newDepthStencilState(1, rhi.DefaultDepthStencilState()), 0xff)
		cache.commitDepthStencil()
	})
	assert.Equal(t, []string{
		"Enable(2929)",
		"DepthMask(true)",
		"DepthFunc(515)",
		"Disable(2960)",
		"StencilMask(4294967295)",
	}, fake.trace())
}

func TestStencilRefOnlyChange(t *testing.T) {
	cache, fake := newTestStateCache()
	desc := rhi.DefaultDepthStencilState()
	desc.EnableStencilTest = true
	desc.StencilFunc = rhi.COMPARE_EQUAL
	desc.StencilFuncBack = rhi.COMPARE_EQUAL
	desc.StencilReadMask = 0x0f
	state := newDepthStencilState(1, desc)

	cache.setDepthStencilPending(state, 1)
	cache.commitDepthStencil()
	assert.True(t, fake.called("StencilFunc", gl.EQUAL, 1, 0x0f))
	fake.reset()

	cache.setDepthStencilPending(state, 1)
	assert.Zero(t, cache.commitDepthStencil())
	assert.Empty(t, fake.calls)

	cache.setDepthStencilPending(state, 7)
	assert.Equal(t, 1, cache.commitDepthStencil())
	assert.Equal(t, []string{"StencilFunc(514, 7, 15)"}, fake.trace())
}

func TestDepthStencilSameObjectIssuesNothing(t *testing.T) {
	tests := []struct {
		name    string
		stencil bool
	}{
		{"stencil off", false},
		{"stencil on", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache, fake := newTestStateCache()
			desc := rhi.DefaultDepthStencilState()
			desc.EnableStencilTest = tt.stencil
			state := newDepthStencilState(1, desc)

			cache.setDepthStencilPending(state, 0xff)
			cache.commitDepthStencil()
			fake.reset()

			cache.setDepthStencilPending(state, 0xff)
			assert.Zero(t, cache.commitDepthStencil())
			assert.Empty(t, fake.calls)
		})
	}
}

func TestStencilRefHeldWhileStencilOff(t *testing.T) {
	cache, fake := newTestStateCache()
	off := newDepthStencilState(1, rhi.DefaultDepthStencilState())

	cache.setDepthStencilPending(off, 0xff)
	cache.commitDepthStencil()
	cache.setDepthStencilPending(off, 3)
	assert.Zero(t, cache.commitDepthStencil())
	fake.reset()

	desc := rhi.DefaultDepthStencilState()
	desc.EnableStencilTest = true
	cache.setDepthStencilPending(newDepthStencilState(2, desc), 3)
	cache.commitDepthStencil()
	assert.True(t, fake.called("StencilFunc", gl.ALWAYS, 3, 0xffffffff))
}

func TestStencilSeparateToggleForcesGroup(t *testing.T) {
	cache, fake := newTestStateCache()
	desc := rhi.DefaultDepthStencilState()
	desc.EnableStencilTest = true
	cache.setDepthStencilPending(newDepthStencilState(1, desc), 0)
	cache.commitDepthStencil()
	fake.reset()

	desc.ZPassOpBack = rhi.STENCIL_OP_REPLACE
	cache.setDepthStencilPending(newDepthStencilState(2, desc), 0)
	cache.commitDepthStencil()
	ops := fake.find("StencilOpSeparate")
	require.Len(t, ops, 2)
	assert.Equal(t, "StencilOpSeparate(1029, 7680, 7680, 7681)", ops[1].String())
	assert.Zero(t, fake.count("StencilFunc"))
}

func TestDepthFieldsSkippedWhileDepthOff(t *testing.T) {
	cache, fake := newTestStateCache()
	desc := rhi.DefaultDepthStencilState()
	desc.DepthFunc = rhi.COMPARE_ALWAYS
	desc.WriteDepth = false

	cache.setDepthStencilPending(newDepthStencilState(1, desc), 0xff)
	cache.commitDepthStencil()
	assert.Zero(t, fake.count("DepthFunc"))
	assert.Zero(t, fake.count("DepthMask"))
	// the committed function still holds the fresh context value
	assert.Equal(t, gl.Enum(gl.LESS), cache.depthStencil.depthFunc)
}

func TestBlendUniformTarget(t *testing.T) {
	cache, fake := newTestStateCache()
	alpha := rhi.DefaultBlendTarget()
	alpha.SrcColor = rhi.BLEND_SRC_ALPHA
	alpha.DestColor = rhi.BLEND_ONE_MINUS_SRC_ALPHA
	alpha.SrcAlpha = rhi.BLEND_SRC_ALPHA
	alpha.DestAlpha = rhi.BLEND_ONE_MINUS_SRC_ALPHA

	cache.setBlendPending(newBlendState(1, rhi.NewBlendState(alpha)))
	cache.commitBlend()
	assert.Equal(t, []string{"Enable(3042)", "BlendFunc(770, 771)"}, fake.trace())
}

func TestBlendMaxOpIsMax(t *testing.T) {
	cache, fake := newTestStateCache()
	target := rhi.DefaultBlendTarget()
	target.SrcColor = rhi.BLEND_ONE
	target.DestColor = rhi.BLEND_ONE
	target.Op = rhi.BLEND_OP_MAX
	target.OpAlpha = rhi.BLEND_OP_MAX

	cache.setBlendPending(newBlendState(1, rhi.NewBlendState(target)))
	cache.commitBlend()
	assert.True(t, fake.called("BlendEquation", gl.MAX))
}

func TestBlendZeroWriteMaskSkipsTarget(t *testing.T) {
	cache, fake := newTestStateCache()
	target := rhi.DefaultBlendTarget()
	target.WriteMask = rhi.COLOR_WRITE_NONE
	target.SrcColor = rhi.BLEND_SRC_ALPHA

	cache.setBlendPending(newBlendState(1, rhi.NewBlendState(target)))
	cache.commitBlend()
	assert.Equal(t, []string{"ColorMask"}, fake.names())
}

func TestBlendIndependentToggleReappliesAllTargets(t *testing.T) {
	cache, fake := newTestStateCache()
	desc := rhi.DefaultBlendState()
	desc.EnableIndependent = true

	cache.setBlendPending(newBlendState(1, desc))
	cache.commitBlend()

	assert.Equal(t, rhi.MAX_BLEND_TARGETS, fake.count("ColorMaski"))
	assert.Equal(t, rhi.MAX_BLEND_TARGETS, fake.count("Disablei"))
	assert.Zero(t, fake.count("BlendFunci"))
	fake.reset()

	// identical values under a new object produce no calls
	cache.setBlendPending(newBlendState(2, desc))
	cache.commitBlend()
	assert.Empty(t, fake.calls)
}

func TestBlendSameObjectIssuesNothing(t *testing.T) {
	cache, fake := newTestStateCache()
	target := rhi.DefaultBlendTarget()
	target.SrcColor = rhi.BLEND_SRC_ALPHA
	target.DestColor = rhi.BLEND_ONE_MINUS_SRC_ALPHA
	state := newBlendState(1, rhi.NewBlendState(target))

	cache.setBlendPending(state)
	assert.NotZero(t, cache.commitBlend())
	fake.reset()

	cache.setBlendPending(state)
	assert.Zero(t, cache.commitBlend())
	assert.Empty(t, fake.calls)
}

func TestBlendCoverageToggle(t *testing.T) {
	cache, fake := newTestStateCache()
	desc := rhi.DefaultBlendState()
	desc.EnableAlphaToCoverage = true

	cache.setBlendPending(newBlendState(1, desc))
	cache.commitBlend()
	assert.Equal(t, []string{"Enable(32926)"}, fake.trace())
}
