package rhi

import (
	"sort"
	"unsafe"
)

// MAX_INPUT_STREAMS is the number of vertex streams a draw can read from.
const MAX_INPUT_STREAMS = 8

type ComponentType uint8

const (
	COMPONENT_TYPE_FLOAT ComponentType = iota
	COMPONENT_TYPE_HALF
	COMPONENT_TYPE_UINT
	COMPONENT_TYPE_INT
	COMPONENT_TYPE_USHORT
	COMPONENT_TYPE_SHORT
	COMPONENT_TYPE_UBYTE
	COMPONENT_TYPE_BYTE
)

// Size is the byte size of one component.
func (c ComponentType) Size() uint32 {
	switch c {
	case COMPONENT_TYPE_FLOAT, COMPONENT_TYPE_UINT, COMPONENT_TYPE_INT:
		return 4
	case COMPONENT_TYPE_HALF, COMPONENT_TYPE_USHORT, COMPONENT_TYPE_SHORT:
		return 2
	case COMPONENT_TYPE_UBYTE, COMPONENT_TYPE_BYTE:
		return 1
	}
	return 0
}

// IsInteger reports whether the component is read as an integer by shaders.
func (c ComponentType) IsInteger() bool {
	return c != COMPONENT_TYPE_FLOAT && c != COMPONENT_TYPE_HALF
}

/**
 * @brief Format of a vertex element: the component type in the upper bits and
 * the component count minus one in the two lowest bits.
 */
type VertexFormat uint8

func encodeVertexFormat(t ComponentType, num uint8) VertexFormat {
	return VertexFormat(uint8(t)<<2 | (num - 1))
}

const (
	VERTEX_FORMAT_FLOAT1  = VertexFormat(COMPONENT_TYPE_FLOAT)<<2 | 0
	VERTEX_FORMAT_FLOAT2  = VertexFormat(COMPONENT_TYPE_FLOAT)<<2 | 1
	VERTEX_FORMAT_FLOAT3  = VertexFormat(COMPONENT_TYPE_FLOAT)<<2 | 2
	VERTEX_FORMAT_FLOAT4  = VertexFormat(COMPONENT_TYPE_FLOAT)<<2 | 3
	VERTEX_FORMAT_HALF2   = VertexFormat(COMPONENT_TYPE_HALF)<<2 | 1
	VERTEX_FORMAT_HALF4   = VertexFormat(COMPONENT_TYPE_HALF)<<2 | 3
	VERTEX_FORMAT_UINT1   = VertexFormat(COMPONENT_TYPE_UINT)<<2 | 0
	VERTEX_FORMAT_UINT2   = VertexFormat(COMPONENT_TYPE_UINT)<<2 | 1
	VERTEX_FORMAT_UINT3   = VertexFormat(COMPONENT_TYPE_UINT)<<2 | 2
	VERTEX_FORMAT_UINT4   = VertexFormat(COMPONENT_TYPE_UINT)<<2 | 3
	VERTEX_FORMAT_INT1    = VertexFormat(COMPONENT_TYPE_INT)<<2 | 0
	VERTEX_FORMAT_INT2    = VertexFormat(COMPONENT_TYPE_INT)<<2 | 1
	VERTEX_FORMAT_INT3    = VertexFormat(COMPONENT_TYPE_INT)<<2 | 2
	VERTEX_FORMAT_INT4    = VertexFormat(COMPONENT_TYPE_INT)<<2 | 3
	VERTEX_FORMAT_USHORT2 = VertexFormat(COMPONENT_TYPE_USHORT)<<2 | 1
	VERTEX_FORMAT_USHORT4 = VertexFormat(COMPONENT_TYPE_USHORT)<<2 | 3
	VERTEX_FORMAT_SHORT2  = VertexFormat(COMPONENT_TYPE_SHORT)<<2 | 1
	VERTEX_FORMAT_SHORT4  = VertexFormat(COMPONENT_TYPE_SHORT)<<2 | 3
	VERTEX_FORMAT_UBYTE4  = VertexFormat(COMPONENT_TYPE_UBYTE)<<2 | 3
	VERTEX_FORMAT_BYTE4   = VertexFormat(COMPONENT_TYPE_BYTE)<<2 | 3
)

// VertexFormatOf builds a format from a component type and count (1 to 4).
func VertexFormatOf(t ComponentType, num int) VertexFormat {
	if num < 1 {
		num = 1
	}
	if num > 4 {
		num = 4
	}
	return encodeVertexFormat(t, uint8(num))
}

func (f VertexFormat) ComponentNum() int {
	return int(f&0x3) + 1
}

func (f VertexFormat) ComponentType() ComponentType {
	return ComponentType(f >> 2)
}

// Size is the byte size of one element of this format.
func (f VertexFormat) Size() uint32 {
	return uint32(f.ComponentNum()) * f.ComponentType().Size()
}

/** @brief Shader attribute slot a vertex element feeds. */
type VertexAttribute uint8

const (
	ATTRIBUTE0 VertexAttribute = iota
	ATTRIBUTE1
	ATTRIBUTE2
	ATTRIBUTE3
	ATTRIBUTE4
	ATTRIBUTE5
	ATTRIBUTE6
	ATTRIBUTE7
	ATTRIBUTE8
	ATTRIBUTE9
	ATTRIBUTE10
	ATTRIBUTE11
	ATTRIBUTE12
	ATTRIBUTE13
	ATTRIBUTE14
	ATTRIBUTE15

	/** @brief The element occupies space in the vertex but feeds no attribute. */
	ATTRIBUTE_UNUSED VertexAttribute = 0xff

	ATTRIBUTE_POSITION    = ATTRIBUTE0
	ATTRIBUTE_NORMAL      = ATTRIBUTE2
	ATTRIBUTE_COLOR       = ATTRIBUTE3
	ATTRIBUTE_COLOR2      = ATTRIBUTE4
	ATTRIBUTE_BONEINDEX   = ATTRIBUTE6
	ATTRIBUTE_BLENDWEIGHT = ATTRIBUTE7
	ATTRIBUTE_TEXCOORD    = ATTRIBUTE8
	ATTRIBUTE_TEXCOORD1   = ATTRIBUTE9
	ATTRIBUTE_TEXCOORD2   = ATTRIBUTE10
	ATTRIBUTE_TEXCOORD3   = ATTRIBUTE11
	ATTRIBUTE_TEXCOORD4   = ATTRIBUTE12
	ATTRIBUTE_TEXCOORD5   = ATTRIBUTE13
	ATTRIBUTE_TEXCOORD6   = ATTRIBUTE14
	ATTRIBUTE_TANGENT     = ATTRIBUTE15
)

// MAX_VERTEX_ATTRIBUTES is the number of addressable attribute slots.
const MAX_VERTEX_ATTRIBUTES = 16

/** @brief A single element of a vertex stream. */
type InputElement struct {
	/** @brief Byte offset of the element within its stream's vertex. */
	Offset uint16
	/** @brief Instances advanced per element step, only used for instance data. */
	InstanceStepRate uint16
	StreamIndex      uint8
	Attribute        VertexAttribute
	Format           VertexFormat
	Normalized       bool
	InstanceData     bool
}

/** @brief Ordered vertex element list plus the per stream vertex sizes it implies. */
type InputLayoutDesc struct {
	Elements    []InputElement
	VertexSizes [MAX_INPUT_STREAMS]uint8
}

// AddElement appends a per-vertex element at the end of the stream's vertex.
func (d *InputLayoutDesc) AddElement(stream uint8, attribute VertexAttribute, format VertexFormat, normalized bool) *InputLayoutDesc {
	return d.add(InputElement{
		StreamIndex: stream,
		Attribute:   attribute,
		Format:      format,
		Normalized:  normalized,
	})
}

// AddInstanceElement appends an element advanced once every stepRate instances.
func (d *InputLayoutDesc) AddInstanceElement(stream uint8, attribute VertexAttribute, format VertexFormat, stepRate uint16) *InputLayoutDesc {
	if stepRate == 0 {
		stepRate = 1
	}
	return d.add(InputElement{
		StreamIndex:      stream,
		Attribute:        attribute,
		Format:           format,
		InstanceData:     true,
		InstanceStepRate: stepRate,
	})
}

func (d *InputLayoutDesc) add(e InputElement) *InputLayoutDesc {
	if int(e.StreamIndex) >= MAX_INPUT_STREAMS {
		return d
	}
	e.Offset = uint16(d.VertexSizes[e.StreamIndex])
	d.VertexSizes[e.StreamIndex] += uint8(e.Format.Size())
	d.Elements = append(d.Elements, e)
	return d
}

func (d *InputLayoutDesc) IsEmpty() bool {
	return len(d.Elements) == 0
}

// VertexSize is the byte stride of one vertex in the given stream.
func (d *InputLayoutDesc) VertexSize(stream int) uint32 {
	if stream < 0 || stream >= MAX_INPUT_STREAMS {
		return 0
	}
	return uint32(d.VertexSizes[stream])
}

// FindElement returns the element that feeds attribute, or nil.
func (d *InputLayoutDesc) FindElement(attribute VertexAttribute) *InputElement {
	for i := range d.Elements {
		if d.Elements[i].Attribute == attribute {
			return &d.Elements[i]
		}
	}
	return nil
}

// SetElementUnused keeps the element's storage but stops it feeding attribute.
func (d *InputLayoutDesc) SetElementUnused(attribute VertexAttribute) {
	if e := d.FindElement(attribute); e != nil {
		e.Attribute = ATTRIBUTE_UNUSED
	}
}

// SortedElements returns a copy of the elements ordered by stream index,
// keeping insertion order within a stream.
func (d *InputLayoutDesc) SortedElements() []InputElement {
	elements := make([]InputElement, len(d.Elements))
	copy(elements, d.Elements)
	sort.SliceStable(elements, func(i, j int) bool {
		return elements[i].StreamIndex < elements[j].StreamIndex
	})
	return elements
}

/** @brief A vertex buffer bound to a stream. A Stride of -1 uses the buffer's element size. */
type InputStreamInfo struct {
	Buffer Buffer
	Offset uint32
	Stride int32
}

// NewInputStream binds buffer at offset with the buffer's own element stride.
func NewInputStream(buffer Buffer, offset uint32) InputStreamInfo {
	return InputStreamInfo{Buffer: buffer, Offset: offset, Stride: -1}
}

/**
 * @brief Client memory vertex data for user pointer draws. A Stride of 0 marks
 * the data as a constant attribute shared by every vertex.
 */
type VertexDataInfo struct {
	Data   []byte
	Size   uint32
	Stride uint32
}

// NewVertexData wraps a typed slice as vertex data with the given stride.
func NewVertexData[T any](data []T, stride uint32) VertexDataInfo {
	b := AsBytes(data)
	return VertexDataInfo{Data: b, Size: uint32(len(b)), Stride: stride}
}

// AsBytes reinterprets a slice of plain values as its backing bytes.
func AsBytes[T any](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	var zero T
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), len(data)*int(unsafe.Sizeof(zero)))
}
