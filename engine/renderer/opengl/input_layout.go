package opengl

import (
	"encoding/binary"
	"math"

	"github.com/spaghettifunk/glrhi/engine/core"
	"github.com/spaghettifunk/glrhi/engine/renderer/gl"
	"github.com/spaghettifunk/glrhi/engine/renderer/rhi"
)

type inputStreamEntry struct {
	buffer      uint32
	elementSize uint32
	offset      uint32
	stride      int32
}

// InputStreamState is the committed set of vertex streams. It is a plain
// value so it can key the vertex array cache of a layout.
type InputStreamState struct {
	streams [rhi.MAX_INPUT_STREAMS]inputStreamEntry
	count   int
}

// update copies streams in and reports whether anything changed.
func (s *InputStreamState) update(streams []rhi.InputStreamInfo) bool {
	next := InputStreamState{count: len(streams)}
	for i, info := range streams {
		if info.Buffer != nil {
			next.streams[i].buffer = info.Buffer.Handle()
			next.streams[i].elementSize = info.Buffer.ElementSize()
		}
		next.streams[i].offset = info.Offset
		next.streams[i].stride = info.Stride
	}
	if next == *s {
		return false
	}
	*s = next
	return true
}

// strideOf resolves the stride used by the attribute path, -1 meaning the
// buffer's element size.
func (e inputStreamEntry) strideOf() int32 {
	if e.stride >= 0 {
		return e.stride
	}
	return int32(e.elementSize)
}

type layoutElement struct {
	componentType    gl.Enum
	componentNum     int32
	stride           uint32
	offset           uint32
	instanceStepRate uint32
	streamIndex      uint8
	attribute        rhi.VertexAttribute
	normalized       bool
	instanceData     bool
	intType          bool
}

/**
 * @brief Driver side input layout: elements sorted by stream plus a cache of
 * vertex array objects keyed by the stream state they were built for.
 */
type InputLayout struct {
	id            uint32
	fns           gl.Functions
	desc          rhi.InputLayoutDesc
	elements      []layoutElement
	attributeMask uint32
	vaos          map[vertexArrayKey]uint32
}

// pointer and attribute bindings of the same streams are different objects
type vertexArrayKey struct {
	state   InputStreamState
	pointer bool
}

func newInputLayout(fns gl.Functions, id uint32, desc rhi.InputLayoutDesc) *InputLayout {
	l := &InputLayout{
		id:   id,
		fns:  fns,
		desc: desc,
		vaos: make(map[vertexArrayKey]uint32),
	}
	for _, e := range desc.SortedElements() {
		if e.Attribute == rhi.ATTRIBUTE_UNUSED {
			continue
		}
		componentType := e.Format.ComponentType()
		l.elements = append(l.elements, layoutElement{
			componentType:    translateComponentType(componentType),
			componentNum:     int32(e.Format.ComponentNum()),
			stride:           desc.VertexSize(int(e.StreamIndex)),
			offset:           uint32(e.Offset),
			instanceStepRate: uint32(e.InstanceStepRate),
			streamIndex:      e.StreamIndex,
			attribute:        e.Attribute,
			normalized:       e.Normalized,
			instanceData:     e.InstanceData,
			intType:          !e.Normalized && componentType.IsInteger(),
		})
		l.attributeMask |= 1 << uint(e.Attribute)
	}
	return l
}

func (l *InputLayout) ID() uint32 {
	return l.id
}

func (l *InputLayout) Desc() rhi.InputLayoutDesc {
	return l.desc
}

// AttributeMask has bit n set when attribute n is fed by the layout.
func (l *InputLayout) AttributeMask() uint32 {
	return l.attributeMask
}

// CachedVertexArrays is the number of vertex array objects built so far.
func (l *InputLayout) CachedVertexArrays() int {
	return len(l.vaos)
}

// Release deletes every cached vertex array object.
func (l *InputLayout) Release() {
	for key, vao := range l.vaos {
		l.fns.DeleteVertexArray(vao)
		delete(l.vaos, key)
	}
}

// bindVertexArray binds the VAO built for state, creating and filling it on
// a miss. It also reports whether the cache was hit.
func (l *InputLayout) bindVertexArray(state *InputStreamState, pointer bool) (uint32, bool) {
	key := vertexArrayKey{state: *state, pointer: pointer}
	if vao, ok := l.vaos[key]; ok {
		l.fns.BindVertexArray(vao)
		return vao, true
	}
	vao := l.fns.GenVertexArray()
	l.vaos[key] = vao
	l.fns.BindVertexArray(vao)
	if pointer {
		l.bindPointer(state)
	} else {
		l.bindAttrib(state)
	}
	return vao, false
}

func (l *InputLayout) bindAttrib(state *InputStreamState) {
	fns := l.fns
	for i := 0; i < state.count; i++ {
		stream := state.streams[i]
		fns.BindVertexBuffer(uint32(i), stream.buffer, int(stream.offset), stream.strideOf())
	}
	for _, e := range l.elements {
		attribute := uint32(e.attribute)
		fns.EnableVertexAttribArray(attribute)
		if e.intType {
			fns.VertexAttribIFormat(attribute, e.componentNum, e.componentType, e.offset)
		} else {
			fns.VertexAttribFormat(attribute, e.componentNum, e.componentType, e.normalized, e.offset)
		}
		fns.VertexAttribBinding(attribute, uint32(e.streamIndex))
		if e.instanceData {
			fns.VertexBindingDivisor(uint32(e.streamIndex), e.instanceStepRate)
		}
	}
}

// unbindAttrib disables the attributes fed by the first numStreams streams.
func (l *InputLayout) unbindAttrib(numStreams int) {
	for _, e := range l.elements {
		if int(e.streamIndex) >= numStreams {
			break
		}
		if e.instanceData {
			l.fns.VertexAttribDivisor(uint32(e.attribute), 0)
		}
		l.fns.DisableVertexAttribArray(uint32(e.attribute))
	}
}

func (l *InputLayout) bindPointer(state *InputStreamState) {
	haveTex := false
	index := 0
	for stream := 0; stream < state.count; stream++ {
		entry := state.streams[stream]
		l.fns.BindBuffer(gl.ARRAY_BUFFER, entry.buffer)
		for ; index < len(l.elements); index++ {
			e := l.elements[index]
			if int(e.streamIndex) > stream {
				break
			}
			stride := e.stride
			if entry.stride > 0 {
				stride = uint32(entry.stride)
			}
			l.bindElementPointer(e, int(entry.offset), int32(stride), &haveTex)
		}
		l.fns.BindBuffer(gl.ARRAY_BUFFER, 0)
	}
}

func texcoordUnit(attribute rhi.VertexAttribute) gl.Enum {
	return gl.Enum(gl.TEXTURE0 + uint32(attribute-rhi.ATTRIBUTE_TEXCOORD))
}

// bindElementPointer feeds a semantic attribute through the client state
// arrays. offset is relative to the bound ARRAY_BUFFER.
func (l *InputLayout) bindElementPointer(e layoutElement, offset int, stride int32, haveTex *bool) {
	fns := l.fns
	offset += int(e.offset)
	switch {
	case e.attribute == rhi.ATTRIBUTE_POSITION:
		fns.EnableClientState(gl.VERTEX_ARRAY)
		fns.VertexPointer(e.componentNum, e.componentType, stride, offset)
	case e.attribute == rhi.ATTRIBUTE_NORMAL:
		fns.EnableClientState(gl.NORMAL_ARRAY)
		fns.NormalPointer(e.componentType, stride, offset)
	case e.attribute == rhi.ATTRIBUTE_COLOR:
		fns.EnableClientState(gl.COLOR_ARRAY)
		fns.ColorPointer(e.componentNum, e.componentType, stride, offset)
	case e.attribute == rhi.ATTRIBUTE_COLOR2:
		fns.EnableClientState(gl.SECONDARY_COLOR_ARRAY)
		fns.SecondaryColorPointer(e.componentNum, e.componentType, stride, offset)
	case e.attribute >= rhi.ATTRIBUTE_TEXCOORD && e.attribute <= rhi.ATTRIBUTE_TANGENT:
		fns.ClientActiveTexture(texcoordUnit(e.attribute))
		fns.EnableClientState(gl.TEXTURE_COORD_ARRAY)
		fns.TexCoordPointer(e.componentNum, e.componentType, stride, offset)
		*haveTex = true
	default:
		core.LogWarn("attribute %d has no fixed function semantic", e.attribute)
	}
}

func (l *InputLayout) unbindPointer() {
	fns := l.fns
	haveTex := false
	for _, e := range l.elements {
		switch {
		case e.attribute == rhi.ATTRIBUTE_POSITION:
			fns.DisableClientState(gl.VERTEX_ARRAY)
		case e.attribute == rhi.ATTRIBUTE_NORMAL:
			fns.DisableClientState(gl.NORMAL_ARRAY)
		case e.attribute == rhi.ATTRIBUTE_COLOR:
			fns.DisableClientState(gl.COLOR_ARRAY)
		case e.attribute == rhi.ATTRIBUTE_COLOR2:
			fns.DisableClientState(gl.SECONDARY_COLOR_ARRAY)
		case e.attribute >= rhi.ATTRIBUTE_TEXCOORD && e.attribute <= rhi.ATTRIBUTE_TANGENT:
			haveTex = true
			fns.ClientActiveTexture(texcoordUnit(e.attribute))
			fns.DisableClientState(gl.TEXTURE_COORD_ARRAY)
		}
	}
	if haveTex {
		fns.ClientActiveTexture(gl.TEXTURE0)
	}
}

// bindAttribUP feeds the attributes from data uploaded to buffer. Streams with
// a zero stride are applied as constant attribute values from data.
func (l *InputLayout) bindAttribUP(state *InputStreamState, data []rhi.VertexDataInfo, buffer uint32) {
	fns := l.fns
	for i := 0; i < state.count; i++ {
		if entry := state.streams[i]; entry.stride > 0 {
			fns.BindVertexBuffer(uint32(i), buffer, int(entry.offset), entry.stride)
		}
	}
	for _, e := range l.elements {
		stream := int(e.streamIndex)
		if stream >= state.count {
			continue
		}
		attribute := uint32(e.attribute)
		if state.streams[stream].stride > 0 {
			fns.EnableVertexAttribArray(attribute)
			if e.intType {
				fns.VertexAttribIFormat(attribute, e.componentNum, e.componentType, e.offset)
			} else {
				fns.VertexAttribFormat(attribute, e.componentNum, e.componentType, e.normalized, e.offset)
			}
			fns.VertexAttribBinding(attribute, uint32(stream))
			if e.instanceData {
				fns.VertexBindingDivisor(uint32(stream), e.instanceStepRate)
			}
			continue
		}
		raw := elementBytes(data[stream].Data, e)
		switch e.componentType {
		case gl.FLOAT:
			fns.VertexAttribfv(attribute, decodeFloats(raw, int(e.componentNum)))
		case gl.INT, gl.UNSIGNED_INT:
			fns.VertexAttribIiv(attribute, decodeInts(raw, int(e.componentNum)))
		default:
			core.LogWarn("constant attribute %d: component type 0x%X not supported", e.attribute, uint32(e.componentType))
		}
	}
}

// bindPointerUP is the client state variant of bindAttribUP. Only the color
// semantic can be given as a constant.
func (l *InputLayout) bindPointerUP(state *InputStreamState, data []rhi.VertexDataInfo, buffer uint32) {
	haveTex := false
	l.fns.BindBuffer(gl.ARRAY_BUFFER, buffer)
	for _, e := range l.elements {
		stream := int(e.streamIndex)
		if stream >= state.count {
			continue
		}
		entry := state.streams[stream]
		if entry.stride > 0 {
			l.bindElementPointer(e, int(entry.offset), entry.stride, &haveTex)
			continue
		}
		if e.attribute == rhi.ATTRIBUTE_COLOR && e.componentType == gl.FLOAT {
			color := [4]float32{1, 1, 1, 1}
			copy(color[:], decodeFloats(elementBytes(data[stream].Data, e), int(e.componentNum)))
			l.fns.Color4fv(color)
			continue
		}
		core.LogWarn("constant attribute %d not supported on the fixed function path", e.attribute)
	}
	l.fns.BindBuffer(gl.ARRAY_BUFFER, 0)
}

func elementBytes(data []byte, e layoutElement) []byte {
	start := int(e.offset)
	end := start + int(e.componentNum)*4
	if end > len(data) {
		return nil
	}
	return data[start:end]
}

func decodeFloats(raw []byte, num int) []float32 {
	values := make([]float32, 0, num)
	for i := 0; i+4 <= len(raw) && len(values) < num; i += 4 {
		values = append(values, math.Float32frombits(binary.LittleEndian.Uint32(raw[i:])))
	}
	return values
}

func decodeInts(raw []byte, num int) []int32 {
	values := make([]int32, 0, num)
	for i := 0; i+4 <= len(raw) && len(values) < num; i += 4 {
		values = append(values, int32(binary.LittleEndian.Uint32(raw[i:])))
	}
	return values
}
