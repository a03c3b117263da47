package opengl

import (
	"github.com/spaghettifunk/glrhi/engine/core"
	"github.com/spaghettifunk/glrhi/engine/renderer/gl"
	"github.com/spaghettifunk/glrhi/engine/renderer/rhi"
)

// transient data is packed at this alignment so every stream starts on a
// boundary any component type can be read from
const transientAlignment = 16

// transientGeometry holds the context owned objects that per draw vertex and
// index data is copied into. The driver never sees Go memory.
type transientGeometry struct {
	fns         gl.Functions
	vao         uint32
	vertices    uint32
	indices     uint32
	staging     []byte
	vertexBytes int
	indexBytes  int
}

func (t *transientGeometry) ensure() {
	if t.vao != 0 {
		return
	}
	t.vao = t.fns.GenVertexArray()
	t.vertices = t.fns.GenBuffer()
	t.indices = t.fns.GenBuffer()
}

// uploadVertices copies every strided stream into the transient vertex buffer
// and returns the byte offset of each stream. Zero stride streams are not
// uploaded.
func (t *transientGeometry) uploadVertices(data []rhi.VertexDataInfo) []uint32 {
	t.ensure()
	offsets := make([]uint32, len(data))
	t.staging = t.staging[:0]
	for i, info := range data {
		if info.Stride == 0 {
			continue
		}
		for len(t.staging)%transientAlignment != 0 {
			t.staging = append(t.staging, 0)
		}
		offsets[i] = uint32(len(t.staging))
		size := int(info.Size)
		if size == 0 || size > len(info.Data) {
			size = len(info.Data)
		}
		t.staging = append(t.staging, info.Data[:size]...)
	}
	if len(t.staging) > 0 {
		t.fns.BindBuffer(gl.ARRAY_BUFFER, t.vertices)
		t.fns.BufferData(gl.ARRAY_BUFFER, t.staging, len(t.staging), gl.STREAM_DRAW)
		t.fns.BindBuffer(gl.ARRAY_BUFFER, 0)
		t.vertexBytes += len(t.staging)
	}
	return offsets
}

// uploadIndices copies indices into the transient index buffer and leaves it
// bound to ELEMENT_ARRAY_BUFFER.
func (t *transientGeometry) uploadIndices(indices []byte) {
	t.ensure()
	t.fns.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, t.indices)
	t.fns.BufferData(gl.ELEMENT_ARRAY_BUFFER, indices, len(indices), gl.STREAM_DRAW)
	t.indexBytes += len(indices)
}

func (t *transientGeometry) release() {
	if t.vao == 0 {
		return
	}
	t.fns.DeleteVertexArray(t.vao)
	t.fns.DeleteBuffer(t.vertices)
	t.fns.DeleteBuffer(t.indices)
	*t = transientGeometry{fns: t.fns}
}

/**
 * @brief Tracks the pending and committed vertex input of a context and binds
 * the vertex array object cached by the committed layout.
 */
type InputBindingManager struct {
	fns                    gl.Functions
	counters               *core.FrameCounters
	fixedPipelineUseShader bool

	layoutPending      *InputLayout
	layoutCommitted    *InputLayout
	streamsPending     [rhi.MAX_INPUT_STREAMS]rhi.InputStreamInfo
	streamCountPending int
	hasStreamsPending  bool

	stateCommitted InputStreamState
	vaoCommitted   uint32
	wasBindAttrib  bool

	transient transientGeometry
}

func newInputBindingManager(fns gl.Functions, fixedPipelineUseShader bool, counters *core.FrameCounters) *InputBindingManager {
	return &InputBindingManager{
		fns:                    fns,
		counters:               counters,
		fixedPipelineUseShader: fixedPipelineUseShader,
		transient:              transientGeometry{fns: fns},
	}
}

// setInputStream records the pending layout and streams. Nothing reaches the
// driver until commit.
func (m *InputBindingManager) setInputStream(layout *InputLayout, streams []rhi.InputStreamInfo) {
	if len(streams) > rhi.MAX_INPUT_STREAMS {
		core.LogError("input streams exceed the maximum (max=%d, got=%d)", rhi.MAX_INPUT_STREAMS, len(streams))
		streams = streams[:rhi.MAX_INPUT_STREAMS]
	}
	m.layoutPending = layout
	m.streamCountPending = copy(m.streamsPending[:], streams)
	m.hasStreamsPending = true
}

// checkDirty reports whether the committed binding no longer matches the
// pending one. A dirty binding unbinds the committed layout and adopts the
// pending one.
func (m *InputBindingManager) checkDirty(useShaderPath, force bool) bool {
	dirty := force || m.layoutPending != m.layoutCommitted || m.bindAttribFor(useShaderPath) != m.wasBindAttrib

	committedCount := m.stateCommitted.count
	if m.hasStreamsPending {
		if m.stateCommitted.update(m.streamsPending[:m.streamCountPending]) {
			dirty = true
		}
	}
	if !dirty {
		return false
	}

	if m.layoutCommitted != nil {
		switch {
		case m.vaoCommitted != 0:
			m.fns.BindVertexArray(0)
			m.vaoCommitted = 0
		case m.wasBindAttrib:
			m.layoutCommitted.unbindAttrib(committedCount)
		default:
			m.layoutCommitted.unbindPointer()
		}
	}
	m.layoutCommitted = m.layoutPending
	return true
}

// commit binds the vertex array of the pending layout and streams when they
// differ from the committed ones. It reports whether a bind was issued.
func (m *InputBindingManager) commit(useShaderPath bool) bool {
	if !m.checkDirty(useShaderPath, false) || m.layoutCommitted == nil {
		return false
	}
	m.wasBindAttrib = m.bindAttribFor(useShaderPath)
	vao, hit := m.layoutCommitted.bindVertexArray(&m.stateCommitted, !m.wasBindAttrib)
	m.vaoCommitted = vao
	if m.counters != nil {
		if hit {
			m.counters.VAOCacheHits++
		} else {
			m.counters.VAOCacheMisses++
		}
	}
	return true
}

// commitUP binds per draw vertex data. Zero stride streams are constant
// attributes and force a rebind every time.
func (m *InputBindingManager) commitUP(useShaderPath bool, data []rhi.VertexDataInfo) bool {
	if m.layoutPending == nil {
		return false
	}
	if len(data) > rhi.MAX_INPUT_STREAMS {
		core.LogError("vertex data streams exceed the maximum (max=%d, got=%d)", rhi.MAX_INPUT_STREAMS, len(data))
		data = data[:rhi.MAX_INPUT_STREAMS]
	}

	offsets := m.transient.uploadVertices(data)
	force := false
	for i, info := range data {
		m.streamsPending[i] = rhi.InputStreamInfo{Offset: offsets[i], Stride: int32(info.Stride)}
		if info.Stride == 0 {
			force = true
		}
	}
	m.streamCountPending = len(data)
	m.hasStreamsPending = true

	if !m.checkDirty(useShaderPath, force) {
		return false
	}
	m.wasBindAttrib = m.bindAttribFor(useShaderPath)
	m.fns.BindVertexArray(m.transient.vao)
	if m.wasBindAttrib {
		m.layoutCommitted.bindAttribUP(&m.stateCommitted, data, m.transient.vertices)
	} else {
		m.layoutCommitted.bindPointerUP(&m.stateCommitted, data, m.transient.vertices)
	}
	return true
}

// bindAttribFor reports whether generic attributes feed the draw. Emulated
// fixed function draws read them through the simple programs.
func (m *InputBindingManager) bindAttribFor(useShaderPath bool) bool {
	return useShaderPath || m.fixedPipelineUseShader
}

func (m *InputBindingManager) committedLayout() *InputLayout {
	return m.layoutCommitted
}

// release drops the transient objects. Layout VAOs are owned by the layouts.
func (m *InputBindingManager) release() {
	if m.vaoCommitted != 0 {
		m.fns.BindVertexArray(0)
		m.vaoCommitted = 0
	}
	m.layoutPending = nil
	m.layoutCommitted = nil
	m.stateCommitted = InputStreamState{}
	m.hasStreamsPending = false
	m.transient.release()
}
