package gpu

import (
	"github.com/vkngwrapper/forge/hal"
)

const (
	MaxDescriptorSets = 4
	MaxBindings       = 32
	MaxVertexBuffers  = 4
	PushConstantSize  = 128
)

type dirtyFlags uint32

const (
	dirtyVertexInput dirtyFlags = 1 << iota
	dirtyIndexState
	dirtyVertexState
	dirtyPushConstant
)

type VertexAttribute struct {
	Location int
	Binding  int
	Format   hal.Format
	Offset   int
}

type VertexBinding struct {
	Stride int
}

// VertexInput describes vertex fetch. An attribute's Binding indexes into Bindings.
type VertexInput struct {
	Attributes []VertexAttribute
	Bindings   []VertexBinding
}

func (v VertexInput) empty() bool {
	return len(v.Attributes) == 0 && len(v.Bindings) == 0
}

func (v VertexInput) clone() VertexInput {
	return VertexInput{
		Attributes: append([]VertexAttribute(nil), v.Attributes...),
		Bindings:   append([]VertexBinding(nil), v.Bindings...),
	}
}

type DepthState struct {
	Enable    bool
	Write     bool
	CompareOp hal.CompareOp
}

func DefaultDepthState() DepthState {
	return DepthState{CompareOp: hal.CompareOpAlways}
}

// RenderingAttachment is one attachment of BeginRendering. The image is rendered through its
// default view. An undefined Layout is replaced by the attachment optimal layout for the role.
type RenderingAttachment struct {
	Image   *Image
	Layout  hal.ImageLayout
	LoadOp  hal.AttachmentLoadOp
	StoreOp hal.AttachmentStoreOp
	Clear   hal.ClearValue
}

// ColorAttachment returns a color attachment that clears to opaque black and stores.
func ColorAttachment(image *Image) RenderingAttachment {
	return RenderingAttachment{
		Image:   image,
		Layout:  hal.ImageLayoutColorAttachmentOptimal,
		LoadOp:  hal.AttachmentLoadOpClear,
		StoreOp: hal.AttachmentStoreOpStore,
		Clear:   hal.ClearValue{Color: [4]float32{0, 0, 0, 1}},
	}
}

// DepthAttachment returns a depth attachment that clears to 1.0 and discards its contents.
func DepthAttachment(image *Image) RenderingAttachment {
	return RenderingAttachment{
		Image:   image,
		Layout:  hal.ImageLayoutDepthStencilAttachmentOptimal,
		LoadOp:  hal.AttachmentLoadOpClear,
		StoreOp: hal.AttachmentStoreOpDontCare,
		Clear:   hal.ClearValue{Depth: 1},
	}
}

// BlitRegion is one side of a blit. A zero Extent covers the whole mip level and a zero
// LayerCount means one layer.
type BlitRegion struct {
	Offset     hal.Offset3D
	Extent     hal.Extent3D
	MipLevel   int
	BaseLayer  int
	LayerCount int
}

type graphicsState struct {
	vertexInput    VertexInput
	hasVertexInput bool
	topology       hal.PrimitiveTopology

	indexBuffer *Buffer
	indexOffset int
	indexType   hal.IndexType

	vertexBuffers [MaxVertexBuffers]*Buffer
	vertexOffsets [MaxVertexBuffers]int
	vertexDirty   uint32

	cullMode    hal.CullModeFlags
	frontFace   hal.FrontFace
	polygonMode hal.PolygonMode
	depth       DepthState

	colorAttachmentCount int
	sampleCount          hal.SampleCountFlags
}

// resourceBindings is the classic descriptor state. setBindings marks every binding that holds
// content, dirtyBindings the ones not yet written to the set.
type resourceBindings struct {
	setMask       uint32
	setBindings   [MaxDescriptorSets]uint32
	dirtyBindings [MaxDescriptorSets]uint32
	bindings      [MaxDescriptorSets][MaxBindings]DescriptorUpdateInfo
	sets          [MaxDescriptorSets]*DescriptorSet
	pushConstants [PushConstantSize]byte
}

type commandState struct {
	graphics graphicsState
	bindings resourceBindings
	program  *ShaderProgram
	dirty    dirtyFlags

	bindlessBound      [2]bool
	bindlessGeneration [2]uint64
}

func newCommandState() commandState {
	return commandState{
		graphics: graphicsState{
			topology:    hal.PrimitiveTopologyTriangleList,
			cullMode:    hal.CullModeNone,
			frontFace:   hal.FrontFaceCounterClockwise,
			polygonMode: hal.PolygonModeFill,
			depth:       DefaultDepthState(),
			sampleCount: hal.SampleCount1,
		},
	}
}

var defaultBlendEquation = hal.ColorBlendEquation{
	SrcColorBlendFactor: hal.BlendFactorOne,
	DstColorBlendFactor: hal.BlendFactorZero,
	ColorBlendOp:        hal.BlendOpAdd,
	SrcAlphaBlendFactor: hal.BlendFactorOne,
	DstAlphaBlendFactor: hal.BlendFactorZero,
	AlphaBlendOp:        hal.BlendOpAdd,
}

// renderState expands the recorded graphics state into the full dynamic state of a draw.
func (g *graphicsState) renderState() hal.RenderState {
	state := hal.RenderState{
		PolygonMode:          g.polygonMode,
		CullMode:             g.cullMode,
		FrontFace:            g.frontFace,
		LineWidth:            1,
		RasterizationSamples: g.sampleCount,
		SampleMask:           ^uint32(0),
		DepthTestEnable:      g.depth.Enable,
		DepthWriteEnable:     g.depth.Write,
		DepthCompareOp:       g.depth.CompareOp,
		ColorAttachments:     make([]hal.ColorAttachmentState, g.colorAttachmentCount),
	}
	for i := range state.ColorAttachments {
		state.ColorAttachments[i] = hal.ColorAttachmentState{
			Equation:  defaultBlendEquation,
			WriteMask: hal.ColorComponentAll,
		}
	}
	return state
}
