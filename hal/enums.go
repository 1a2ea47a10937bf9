package hal

// Format is a texel or vertex attribute format.
type Format int32

const (
	FormatUndefined              Format = 0
	FormatR8Unorm                Format = 9
	FormatR8Uint                 Format = 13
	FormatR8G8Unorm              Format = 16
	FormatR8G8B8A8Unorm          Format = 37
	FormatR8G8B8A8Srgb           Format = 43
	FormatB8G8R8A8Unorm          Format = 44
	FormatB8G8R8A8Srgb           Format = 50
	FormatA2B10G10R10UnormPack32 Format = 64
	FormatR16Uint                Format = 74
	FormatR16Sfloat              Format = 76
	FormatR16G16Sfloat           Format = 83
	FormatR16G16B16A16Unorm      Format = 91
	FormatR16G16B16A16Sfloat     Format = 97
	FormatR32Uint                Format = 98
	FormatR32Sfloat              Format = 100
	FormatR32G32Uint             Format = 101
	FormatR32G32Sfloat           Format = 103
	FormatR32G32B32Uint          Format = 104
	FormatR32G32B32Sfloat        Format = 106
	FormatR32G32B32A32Uint       Format = 107
	FormatR32G32B32A32Sfloat     Format = 109
	FormatB10G11R11UfloatPack32  Format = 122
	FormatD16Unorm               Format = 124
	FormatD32Sfloat              Format = 126
	FormatS8Uint                 Format = 127
	FormatD24UnormS8Uint         Format = 129
	FormatD32SfloatS8Uint        Format = 130
)

var formatMapping = make(map[Format]string)

func init() {
	formatMapping[FormatUndefined] = "Undefined"
	formatMapping[FormatR8Unorm] = "R8Unorm"
	formatMapping[FormatR8Uint] = "R8Uint"
	formatMapping[FormatR8G8Unorm] = "R8G8Unorm"
	formatMapping[FormatR8G8B8A8Unorm] = "R8G8B8A8Unorm"
	formatMapping[FormatR8G8B8A8Srgb] = "R8G8B8A8Srgb"
	formatMapping[FormatB8G8R8A8Unorm] = "B8G8R8A8Unorm"
	formatMapping[FormatB8G8R8A8Srgb] = "B8G8R8A8Srgb"
	formatMapping[FormatA2B10G10R10UnormPack32] = "A2B10G10R10UnormPack32"
	formatMapping[FormatR16Uint] = "R16Uint"
	formatMapping[FormatR16Sfloat] = "R16Sfloat"
	formatMapping[FormatR16G16Sfloat] = "R16G16Sfloat"
	formatMapping[FormatR16G16B16A16Unorm] = "R16G16B16A16Unorm"
	formatMapping[FormatR16G16B16A16Sfloat] = "R16G16B16A16Sfloat"
	formatMapping[FormatR32Uint] = "R32Uint"
	formatMapping[FormatR32Sfloat] = "R32Sfloat"
	formatMapping[FormatR32G32Uint] = "R32G32Uint"
	formatMapping[FormatR32G32Sfloat] = "R32G32Sfloat"
	formatMapping[FormatR32G32B32Uint] = "R32G32B32Uint"
	formatMapping[FormatR32G32B32Sfloat] = "R32G32B32Sfloat"
	formatMapping[FormatR32G32B32A32Uint] = "R32G32B32A32Uint"
	formatMapping[FormatR32G32B32A32Sfloat] = "R32G32B32A32Sfloat"
	formatMapping[FormatB10G11R11UfloatPack32] = "B10G11R11UfloatPack32"
	formatMapping[FormatD16Unorm] = "D16Unorm"
	formatMapping[FormatD32Sfloat] = "D32Sfloat"
	formatMapping[FormatS8Uint] = "S8Uint"
	formatMapping[FormatD24UnormS8Uint] = "D24UnormS8Uint"
	formatMapping[FormatD32SfloatS8Uint] = "D32SfloatS8Uint"
}

func (f Format) String() string {
	str, ok := formatMapping[f]
	if !ok {
		return "unknown"
	}
	return str
}

// IsDepth reports whether the format carries a depth aspect.
func (f Format) IsDepth() bool {
	switch f {
	case FormatD16Unorm, FormatD32Sfloat, FormatD24UnormS8Uint, FormatD32SfloatS8Uint:
		return true
	}
	return false
}

// IsStencil reports whether the format carries a stencil aspect.
func (f Format) IsStencil() bool {
	switch f {
	case FormatS8Uint, FormatD24UnormS8Uint, FormatD32SfloatS8Uint:
		return true
	}
	return false
}

// Aspects returns the aspect mask covering every aspect of the format.
func (f Format) Aspects() ImageAspectFlags {
	var aspects ImageAspectFlags
	if f.IsDepth() {
		aspects |= ImageAspectDepth
	}
	if f.IsStencil() {
		aspects |= ImageAspectStencil
	}
	if aspects == 0 {
		aspects = ImageAspectColor
	}
	return aspects
}

type ImageType int32

const (
	ImageType1D ImageType = iota
	ImageType2D
	ImageType3D
)

type ImageViewType int32

const (
	ImageViewType1D ImageViewType = iota
	ImageViewType2D
	ImageViewType3D
	ImageViewTypeCube
	ImageViewType1DArray
	ImageViewType2DArray
	ImageViewTypeCubeArray
)

type ImageTiling int32

const (
	ImageTilingOptimal ImageTiling = iota
	ImageTilingLinear
)

// ImageLayout is the arrangement of an image's texels in memory.
type ImageLayout int32

const (
	ImageLayoutUndefined                     ImageLayout = 0
	ImageLayoutGeneral                       ImageLayout = 1
	ImageLayoutColorAttachmentOptimal        ImageLayout = 2
	ImageLayoutDepthStencilAttachmentOptimal ImageLayout = 3
	ImageLayoutDepthStencilReadOnlyOptimal   ImageLayout = 4
	ImageLayoutShaderReadOnlyOptimal         ImageLayout = 5
	ImageLayoutTransferSrcOptimal            ImageLayout = 6
	ImageLayoutTransferDstOptimal            ImageLayout = 7
	ImageLayoutPresentSrc                    ImageLayout = 1000001002
)

var imageLayoutMapping = make(map[ImageLayout]string)

func init() {
	imageLayoutMapping[ImageLayoutUndefined] = "Undefined"
	imageLayoutMapping[ImageLayoutGeneral] = "General"
	imageLayoutMapping[ImageLayoutColorAttachmentOptimal] = "ColorAttachmentOptimal"
	imageLayoutMapping[ImageLayoutDepthStencilAttachmentOptimal] = "DepthStencilAttachmentOptimal"
	imageLayoutMapping[ImageLayoutDepthStencilReadOnlyOptimal] = "DepthStencilReadOnlyOptimal"
	imageLayoutMapping[ImageLayoutShaderReadOnlyOptimal] = "ShaderReadOnlyOptimal"
	imageLayoutMapping[ImageLayoutTransferSrcOptimal] = "TransferSrcOptimal"
	imageLayoutMapping[ImageLayoutTransferDstOptimal] = "TransferDstOptimal"
	imageLayoutMapping[ImageLayoutPresentSrc] = "PresentSrc"
}

func (l ImageLayout) String() string {
	str, ok := imageLayoutMapping[l]
	if !ok {
		return "unknown"
	}
	return str
}

type Filter int32

const (
	FilterNearest Filter = iota
	FilterLinear
)

type SamplerMipmapMode int32

const (
	SamplerMipmapModeNearest SamplerMipmapMode = iota
	SamplerMipmapModeLinear
)

type SamplerAddressMode int32

const (
	SamplerAddressModeRepeat SamplerAddressMode = iota
	SamplerAddressModeMirroredRepeat
	SamplerAddressModeClampToEdge
	SamplerAddressModeClampToBorder
)

type CompareOp int32

const (
	CompareOpNever CompareOp = iota
	CompareOpLess
	CompareOpEqual
	CompareOpLessOrEqual
	CompareOpGreater
	CompareOpNotEqual
	CompareOpGreaterOrEqual
	CompareOpAlways
)

type BorderColor int32

const (
	BorderColorFloatTransparentBlack BorderColor = iota
	BorderColorIntTransparentBlack
	BorderColorFloatOpaqueBlack
	BorderColorIntOpaqueBlack
	BorderColorFloatOpaqueWhite
	BorderColorIntOpaqueWhite
)

// LodClampNone disables the upper clamp on a sampler's level of detail.
const LodClampNone float32 = 1000.0

// DescriptorType is the kind of resource a descriptor binding refers to.
type DescriptorType int32

const (
	DescriptorTypeSampler              DescriptorType = 0
	DescriptorTypeCombinedImageSampler DescriptorType = 1
	DescriptorTypeSampledImage         DescriptorType = 2
	DescriptorTypeStorageImage         DescriptorType = 3
	DescriptorTypeUniformTexelBuffer   DescriptorType = 4
	DescriptorTypeStorageTexelBuffer   DescriptorType = 5
	DescriptorTypeUniformBuffer        DescriptorType = 6
	DescriptorTypeStorageBuffer        DescriptorType = 7
	DescriptorTypeUniformBufferDynamic DescriptorType = 8
	DescriptorTypeStorageBufferDynamic DescriptorType = 9
	DescriptorTypeInputAttachment      DescriptorType = 10
)

var descriptorTypeMapping = make(map[DescriptorType]string)

func init() {
	descriptorTypeMapping[DescriptorTypeSampler] = "Sampler"
	descriptorTypeMapping[DescriptorTypeCombinedImageSampler] = "CombinedImageSampler"
	descriptorTypeMapping[DescriptorTypeSampledImage] = "SampledImage"
	descriptorTypeMapping[DescriptorTypeStorageImage] = "StorageImage"
	descriptorTypeMapping[DescriptorTypeUniformTexelBuffer] = "UniformTexelBuffer"
	descriptorTypeMapping[DescriptorTypeStorageTexelBuffer] = "StorageTexelBuffer"
	descriptorTypeMapping[DescriptorTypeUniformBuffer] = "UniformBuffer"
	descriptorTypeMapping[DescriptorTypeStorageBuffer] = "StorageBuffer"
	descriptorTypeMapping[DescriptorTypeUniformBufferDynamic] = "UniformBufferDynamic"
	descriptorTypeMapping[DescriptorTypeStorageBufferDynamic] = "StorageBufferDynamic"
	descriptorTypeMapping[DescriptorTypeInputAttachment] = "InputAttachment"
}

func (t DescriptorType) String() string {
	str, ok := descriptorTypeMapping[t]
	if !ok {
		return "unknown"
	}
	return str
}

// IsDynamic reports whether a descriptor of this type consumes a dynamic offset at bind time.
func (t DescriptorType) IsDynamic() bool {
	return t == DescriptorTypeUniformBufferDynamic || t == DescriptorTypeStorageBufferDynamic
}

type QueryType int32

const (
	QueryTypeOcclusion QueryType = iota
	QueryTypePipelineStatistics
	QueryTypeTimestamp
)

var queryTypeMapping = make(map[QueryType]string)

func init() {
	queryTypeMapping[QueryTypeOcclusion] = "Occlusion"
	queryTypeMapping[QueryTypePipelineStatistics] = "PipelineStatistics"
	queryTypeMapping[QueryTypeTimestamp] = "Timestamp"
}

func (t QueryType) String() string {
	str, ok := queryTypeMapping[t]
	if !ok {
		return "unknown"
	}
	return str
}

type IndexType int32

const (
	IndexTypeUint16 IndexType = iota
	IndexTypeUint32
)

type PipelineBindPoint int32

const (
	PipelineBindPointGraphics PipelineBindPoint = iota
	PipelineBindPointCompute
)

type PrimitiveTopology int32

const (
	PrimitiveTopologyPointList PrimitiveTopology = iota
	PrimitiveTopologyLineList
	PrimitiveTopologyLineStrip
	PrimitiveTopologyTriangleList
	PrimitiveTopologyTriangleStrip
	PrimitiveTopologyTriangleFan
)

type PolygonMode int32

const (
	PolygonModeFill PolygonMode = iota
	PolygonModeLine
	PolygonModePoint
)

type CullModeFlags int32

const (
	CullModeNone         CullModeFlags = 0
	CullModeFront        CullModeFlags = 1
	CullModeBack         CullModeFlags = 2
	CullModeFrontAndBack CullModeFlags = 3
)

type FrontFace int32

const (
	FrontFaceCounterClockwise FrontFace = iota
	FrontFaceClockwise
)

type AttachmentLoadOp int32

const (
	AttachmentLoadOpLoad AttachmentLoadOp = iota
	AttachmentLoadOpClear
	AttachmentLoadOpDontCare
)

type AttachmentStoreOp int32

const (
	AttachmentStoreOpStore AttachmentStoreOp = iota
	AttachmentStoreOpDontCare
)

type VertexInputRate int32

const (
	VertexInputRateVertex VertexInputRate = iota
	VertexInputRateInstance
)

type BlendFactor int32

const (
	BlendFactorZero BlendFactor = iota
	BlendFactorOne
	BlendFactorSrcColor
	BlendFactorOneMinusSrcColor
	BlendFactorDstColor
	BlendFactorOneMinusDstColor
	BlendFactorSrcAlpha
	BlendFactorOneMinusSrcAlpha
	BlendFactorDstAlpha
	BlendFactorOneMinusDstAlpha
)

type BlendOp int32

const (
	BlendOpAdd BlendOp = iota
	BlendOpSubtract
	BlendOpReverseSubtract
	BlendOpMin
	BlendOpMax
)

type PhysicalDeviceType int32

const (
	PhysicalDeviceTypeOther PhysicalDeviceType = iota
	PhysicalDeviceTypeIntegratedGPU
	PhysicalDeviceTypeDiscreteGPU
	PhysicalDeviceTypeVirtualGPU
	PhysicalDeviceTypeCPU
)
