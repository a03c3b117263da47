package opengl

import (
	"github.com/spaghettifunk/glrhi/engine/renderer/gl"
	"github.com/spaghettifunk/glrhi/engine/renderer/rhi"
)

// stateField is one comparable member of a translated state value.
type stateField[V any] struct {
	equal func(committed, pending *V) bool
	copy  func(committed, pending *V)
}

// field builds a stateField from an accessor returning the member address.
func field[V any, T comparable](get func(*V) *T) stateField[V] {
	return stateField[V]{
		equal: func(committed, pending *V) bool { return *get(committed) == *get(pending) },
		copy:  func(committed, pending *V) { *get(committed) = *get(pending) },
	}
}

func fieldsDirty[V any](fields []stateField[V], committed, pending *V, force bool) bool {
	if force {
		return true
	}
	for _, f := range fields {
		if !f.equal(committed, pending) {
			return true
		}
	}
	return false
}

func commitFields[V any](fields []stateField[V], committed, pending *V) {
	for _, f := range fields {
		f.copy(committed, pending)
	}
}

// stateRule re-issues one group of driver calls when any of its fields differ.
// A rule whose gate rejects the pending value is skipped and its committed
// fields are left untouched.
type stateRule[V any] struct {
	fields []stateField[V]
	gate   func(pending *V) bool
	apply  func(fns gl.Functions, pending *V)
}

func commitRules[V any](fns gl.Functions, rules []stateRule[V], committed, pending *V, force bool) int {
	issued := 0
	for i := range rules {
		r := &rules[i]
		if r.gate != nil && !r.gate(pending) {
			continue
		}
		if !fieldsDirty(r.fields, committed, pending, force) {
			continue
		}
		commitFields(r.fields, committed, pending)
		r.apply(fns, pending)
		issued++
	}
	return issued
}

func enableState(fns gl.Functions, cap gl.Enum, enable bool) {
	if enable {
		fns.Enable(cap)
	} else {
		fns.Disable(cap)
	}
}

func enableStateIndex(fns gl.Functions, cap gl.Enum, index uint32, enable bool) {
	if enable {
		fns.Enablei(cap, index)
	} else {
		fns.Disablei(cap, index)
	}
}

var rasterizerRules = []stateRule[rasterizerValue]{
	{
		fields: []stateField[rasterizerValue]{field(func(v *rasterizerValue) *gl.Enum { return &v.fillMode })},
		apply: func(fns gl.Functions, p *rasterizerValue) {
			fns.PolygonMode(gl.FRONT_AND_BACK, p.fillMode)
		},
	},
	{
		fields: []stateField[rasterizerValue]{field(func(v *rasterizerValue) *bool { return &v.enableScissor })},
		apply: func(fns gl.Functions, p *rasterizerValue) {
			enableState(fns, gl.SCISSOR_TEST, p.enableScissor)
		},
	},
	{
		fields: []stateField[rasterizerValue]{field(func(v *rasterizerValue) *bool { return &v.enableMultisample })},
		apply: func(fns gl.Functions, p *rasterizerValue) {
			enableState(fns, gl.MULTISAMPLE, p.enableMultisample)
		},
	},
	{
		fields: []stateField[rasterizerValue]{field(func(v *rasterizerValue) *bool { return &v.enableCull })},
		apply: func(fns gl.Functions, p *rasterizerValue) {
			enableState(fns, gl.CULL_FACE, p.enableCull)
		},
	},
	{
		fields: []stateField[rasterizerValue]{field(func(v *rasterizerValue) *gl.Enum { return &v.frontFace })},
		apply: func(fns gl.Functions, p *rasterizerValue) {
			fns.FrontFace(p.frontFace)
		},
	},
	{
		fields: []stateField[rasterizerValue]{field(func(v *rasterizerValue) *gl.Enum { return &v.cullFace })},
		apply: func(fns gl.Functions, p *rasterizerValue) {
			fns.CullFace(p.cullFace)
		},
	},
}

func depthTestOn(p *depthStencilValue) bool   { return p.enableDepthTest }
func stencilTestOn(p *depthStencilValue) bool { return p.enableStencilTest }

var depthStencilRules = []stateRule[depthStencilValue]{
	{
		fields: []stateField[depthStencilValue]{field(func(v *depthStencilValue) *bool { return &v.enableDepthTest })},
		apply: func(fns gl.Functions, p *depthStencilValue) {
			enableState(fns, gl.DEPTH_TEST, p.enableDepthTest)
		},
	},
	{
		fields: []stateField[depthStencilValue]{field(func(v *depthStencilValue) *bool { return &v.writeDepth })},
		gate:   depthTestOn,
		apply: func(fns gl.Functions, p *depthStencilValue) {
			fns.DepthMask(p.writeDepth)
		},
	},
	{
		fields: []stateField[depthStencilValue]{field(func(v *depthStencilValue) *gl.Enum { return &v.depthFunc })},
		gate:   depthTestOn,
		apply: func(fns gl.Functions, p *depthStencilValue) {
			fns.DepthFunc(p.depthFunc)
		},
	},
	{
		fields: []stateField[depthStencilValue]{field(func(v *depthStencilValue) *bool { return &v.enableStencilTest })},
		apply: func(fns gl.Functions, p *depthStencilValue) {
			enableState(fns, gl.STENCIL_TEST, p.enableStencilTest)
		},
	},
	{
		fields: []stateField[depthStencilValue]{field(func(v *depthStencilValue) *uint32 { return &v.stencilWriteMask })},
		apply: func(fns gl.Functions, p *depthStencilValue) {
			fns.StencilMask(p.stencilWriteMask)
		},
	},
	{
		// the separate toggle is part of the group so flipping it re-issues the ops
		fields: []stateField[depthStencilValue]{
			field(func(v *depthStencilValue) *bool { return &v.useSeparateStencilOp }),
			field(func(v *depthStencilValue) *gl.Enum { return &v.stencilFailOp }),
			field(func(v *depthStencilValue) *gl.Enum { return &v.zFailOp }),
			field(func(v *depthStencilValue) *gl.Enum { return &v.zPassOp }),
			field(func(v *depthStencilValue) *gl.Enum { return &v.stencilFailOpBack }),
			field(func(v *depthStencilValue) *gl.Enum { return &v.zFailOpBack }),
			field(func(v *depthStencilValue) *gl.Enum { return &v.zPassOpBack }),
		},
		gate: stencilTestOn,
		apply: func(fns gl.Functions, p *depthStencilValue) {
			if p.useSeparateStencilOp {
				fns.StencilOpSeparate(gl.FRONT, p.stencilFailOp, p.zFailOp, p.zPassOp)
				fns.StencilOpSeparate(gl.BACK, p.stencilFailOpBack, p.zFailOpBack, p.zPassOpBack)
			} else {
				fns.StencilOp(p.stencilFailOp, p.zFailOp, p.zPassOp)
			}
		},
	},
	{
		fields: []stateField[depthStencilValue]{
			field(func(v *depthStencilValue) *bool { return &v.useSeparateStencilFunc }),
			field(func(v *depthStencilValue) *gl.Enum { return &v.stencilFunc }),
			field(func(v *depthStencilValue) *gl.Enum { return &v.stencilFuncBack }),
			field(func(v *depthStencilValue) *uint32 { return &v.stencilReadMask }),
			field(func(v *depthStencilValue) *int32 { return &v.stencilRef }),
		},
		gate: stencilTestOn,
		apply: func(fns gl.Functions, p *depthStencilValue) {
			if p.useSeparateStencilFunc {
				fns.StencilFuncSeparate(gl.FRONT, p.stencilFunc, p.stencilRef, p.stencilReadMask)
				fns.StencilFuncSeparate(gl.BACK, p.stencilFuncBack, p.stencilRef, p.stencilReadMask)
			} else {
				fns.StencilFunc(p.stencilFunc, p.stencilRef, p.stencilReadMask)
			}
		},
	},
}

var (
	blendCoverageFields = []stateField[blendValue]{
		field(func(v *blendValue) *bool { return &v.enableAlphaToCoverage }),
	}
	blendIndependentFields = []stateField[blendValue]{
		field(func(v *blendValue) *bool { return &v.enableIndependent }),
	}
	blendMaskFields = []stateField[blendTargetValue]{
		field(func(v *blendTargetValue) *rhi.ColorWriteMask { return &v.writeMask }),
	}
	blendEnableFields = []stateField[blendTargetValue]{
		field(func(v *blendTargetValue) *bool { return &v.enable }),
	}
	blendFuncFields = []stateField[blendTargetValue]{
		field(func(v *blendTargetValue) *bool { return &v.separate }),
		field(func(v *blendTargetValue) *gl.Enum { return &v.srcColor }),
		field(func(v *blendTargetValue) *gl.Enum { return &v.destColor }),
		field(func(v *blendTargetValue) *gl.Enum { return &v.srcAlpha }),
		field(func(v *blendTargetValue) *gl.Enum { return &v.destAlpha }),
	}
	blendEquationFields = []stateField[blendTargetValue]{
		field(func(v *blendTargetValue) *gl.Enum { return &v.op }),
		field(func(v *blendTargetValue) *gl.Enum { return &v.opAlpha }),
	}
)

/**
 * @brief Tracks the pending and committed fixed function state objects and
 * the driver values last issued for each of them.
 */
type DeviceStateCache struct {
	fns gl.Functions
	// every field compares dirty while set
	forceInit bool

	rasterizerPending   *RasterizerState
	rasterizerCommitted *RasterizerState
	rasterizer          rasterizerValue

	blendPending   *BlendState
	blendCommitted *BlendState
	blend          blendValue

	depthStencilPending   *DepthStencilState
	depthStencilCommitted *DepthStencilState
	depthStencil          depthStencilValue
	stencilRefPending     int32
}

func newDeviceStateCache(fns gl.Functions) *DeviceStateCache {
	return &DeviceStateCache{
		fns:               fns,
		rasterizer:        defaultRasterizerValue(),
		blend:             defaultBlendValue(),
		depthStencil:      defaultDepthStencilValue(),
		stencilRefPending: 0xff,
	}
}

// withForceInit runs fn with every state field treated as dirty.
func (d *DeviceStateCache) withForceInit(fn func()) {
	prev := d.forceInit
	d.forceInit = true
	defer func() { d.forceInit = prev }()
	fn()
}

func (d *DeviceStateCache) setRasterizerPending(s *RasterizerState) {
	d.rasterizerPending = s
}

func (d *DeviceStateCache) setBlendPending(s *BlendState) {
	d.blendPending = s
}

func (d *DeviceStateCache) setDepthStencilPending(s *DepthStencilState, stencilRef uint32) {
	d.depthStencilPending = s
	d.stencilRefPending = int32(stencilRef)
}

// checkObjectDirty adopts pending as committed when it differs or force is set.
func checkObjectDirty[T any](committed **T, pending *T, force bool) bool {
	if pending == nil {
		return false
	}
	if !force && *committed == pending {
		return false
	}
	*committed = pending
	return true
}

// commitRasterizer returns the number of driver call groups issued.
func (d *DeviceStateCache) commitRasterizer() int {
	if !checkObjectDirty(&d.rasterizerCommitted, d.rasterizerPending, d.forceInit) {
		return 0
	}
	pending := d.rasterizerPending.value
	return commitRules(d.fns, rasterizerRules, &d.rasterizer, &pending, d.forceInit)
}

func (d *DeviceStateCache) commitDepthStencil() int {
	if !checkObjectDirty(&d.depthStencilCommitted, d.depthStencilPending, d.forceInit) {
		// same object, only the reference can have moved. With the stencil test
		// off the reference stays pending for the next state that enables it.
		if d.depthStencilCommitted != nil && d.depthStencil.enableStencilTest &&
			d.depthStencil.stencilRef != d.stencilRefPending {
			d.depthStencil.stencilRef = d.stencilRefPending
			d.fns.StencilFunc(d.depthStencil.stencilFunc, d.stencilRefPending, d.depthStencil.stencilReadMask)
			return 1
		}
		return 0
	}
	pending := d.depthStencilPending.value
	pending.stencilRef = d.stencilRefPending
	return commitRules(d.fns, depthStencilRules, &d.depthStencil, &pending, d.forceInit)
}

func (d *DeviceStateCache) commitBlend() int {
	if !checkObjectDirty(&d.blendCommitted, d.blendPending, d.forceInit) {
		return 0
	}
	pending := &d.blendPending.value
	committed := &d.blend
	issued := 0

	if fieldsDirty(blendCoverageFields, committed, pending, d.forceInit) {
		commitFields(blendCoverageFields, committed, pending)
		enableState(d.fns, gl.SAMPLE_ALPHA_TO_COVERAGE, pending.enableAlphaToCoverage)
		issued++
	}
	// switching between uniform and independent targets reapplies everything
	forceAll := false
	if fieldsDirty(blendIndependentFields, committed, pending, d.forceInit) {
		commitFields(blendIndependentFields, committed, pending)
		forceAll = true
	}

	if pending.enableIndependent {
		for i := range pending.targets {
			issued += d.commitBlendTarget(uint32(i), true, &committed.targets[i], &pending.targets[i], forceAll)
		}
	} else {
		issued += d.commitBlendTarget(0, false, &committed.targets[0], &pending.targets[0], forceAll)
	}
	return issued
}

func (d *DeviceStateCache) commitBlendTarget(index uint32, indexed bool, committed, pending *blendTargetValue, forceAll bool) int {
	fns := d.fns
	force := forceAll || d.forceInit
	issued := 0

	// a new write mask invalidates the blend function as well
	forceFunc := false
	if fieldsDirty(blendMaskFields, committed, pending, force) {
		forceFunc = true
		commitFields(blendMaskFields, committed, pending)
		r := pending.writeMask&rhi.COLOR_WRITE_R != 0
		g := pending.writeMask&rhi.COLOR_WRITE_G != 0
		b := pending.writeMask&rhi.COLOR_WRITE_B != 0
		a := pending.writeMask&rhi.COLOR_WRITE_A != 0
		if indexed {
			fns.ColorMaski(index, r, g, b, a)
		} else {
			fns.ColorMask(r, g, b, a)
		}
		issued++
	}

	if !forceAll && pending.writeMask == 0 {
		return issued
	}

	if fieldsDirty(blendEnableFields, committed, pending, force) {
		commitFields(blendEnableFields, committed, pending)
		if indexed {
			enableStateIndex(fns, gl.BLEND, index, pending.enable)
		} else {
			enableState(fns, gl.BLEND, pending.enable)
		}
		issued++
	}

	if !pending.enable {
		return issued
	}

	if fieldsDirty(blendFuncFields, committed, pending, force || forceFunc) {
		commitFields(blendFuncFields, committed, pending)
		switch {
		case indexed && pending.separate:
			fns.BlendFuncSeparatei(index, pending.srcColor, pending.destColor, pending.srcAlpha, pending.destAlpha)
		case indexed:
			fns.BlendFunci(index, pending.srcColor, pending.destColor)
		case pending.separate:
			fns.BlendFuncSeparate(pending.srcColor, pending.destColor, pending.srcAlpha, pending.destAlpha)
		default:
			fns.BlendFunc(pending.srcColor, pending.destColor)
		}
		issued++
	}

	if fieldsDirty(blendEquationFields, committed, pending, force || forceFunc) {
		commitFields(blendEquationFields, committed, pending)
		separate := pending.op != pending.opAlpha
		switch {
		case indexed && separate:
			fns.BlendEquationSeparatei(index, pending.op, pending.opAlpha)
		case indexed:
			fns.BlendEquationi(index, pending.op)
		case separate:
			fns.BlendEquationSeparate(pending.op, pending.opAlpha)
		default:
			fns.BlendEquation(pending.op)
		}
		issued++
	}
	return issued
}
