package hal

// QueueFamilyIgnored marks a barrier that does not transfer queue ownership.
const QueueFamilyIgnored = -1

// WholeSize extends a buffer range to the end of the buffer.
const WholeSize = -1

// RemainingMipLevels and RemainingArrayLayers extend a subresource range to the end of the image.
const (
	RemainingMipLevels   = -1
	RemainingArrayLayers = -1
)

type Extent2D struct {
	Width  int
	Height int
}

type Extent3D struct {
	Width  int
	Height int
	Depth  int
}

type Offset2D struct {
	X int
	Y int
}

type Offset3D struct {
	X int
	Y int
	Z int
}

type Rect2D struct {
	Offset Offset2D
	Extent Extent2D
}

type Viewport struct {
	X        float32
	Y        float32
	Width    float32
	Height   float32
	MinDepth float32
	MaxDepth float32
}

type DeviceLimits struct {
	MaxImageDimension2D             int
	MaxPushConstantsSize            int
	MaxBoundDescriptorSets          int
	MaxSamplerAnisotropy            float32
	MinUniformBufferOffsetAlignment int
	MinStorageBufferOffsetAlignment int
	NonCoherentAtomSize             int
	TimestampPeriod                 float32
	MaxDescriptorSetSampledImages   int
	MaxDescriptorSetSamplers        int
}

type PhysicalDeviceProperties struct {
	DeviceName    string
	DeviceType    PhysicalDeviceType
	VendorID      uint32
	DeviceID      uint32
	APIVersion    uint32
	DriverVersion uint32
	Limits        DeviceLimits
}

// PhysicalDeviceFeatures records the optional capabilities a device supports.
type PhysicalDeviceFeatures struct {
	SamplerAnisotropy     bool
	TessellationShader    bool
	GeometryShader        bool
	MultiDrawIndirect     bool
	PipelineStatistics    bool
	TaskShader            bool
	MeshShader            bool
	RayTracing            bool
	ShaderObject          bool
	ExtendedDynamicState3 bool
	DynamicRendering      bool
	DescriptorIndexing    bool
	BufferDeviceAddress   bool
	DebugUtils            bool
}

type MemoryType struct {
	PropertyFlags MemoryPropertyFlags
	HeapIndex     int
}

type MemoryHeap struct {
	Size  int
	Flags MemoryHeapFlags
}

type MemoryProperties struct {
	MemoryTypes []MemoryType
	MemoryHeaps []MemoryHeap
}

type QueueFamilyProperties struct {
	QueueFlags         QueueFlags
	QueueCount         int
	TimestampValidBits int
}

type MemoryRequirements struct {
	Size           int
	Alignment      int
	MemoryTypeBits uint32
}

type BufferCreateInfo struct {
	Size  int
	Usage BufferUsageFlags
}

type ImageCreateInfo struct {
	Flags         ImageCreateFlags
	ImageType     ImageType
	Format        Format
	Extent        Extent3D
	MipLevels     int
	ArrayLayers   int
	Samples       SampleCountFlags
	Tiling        ImageTiling
	Usage         ImageUsageFlags
	InitialLayout ImageLayout
}

type ImageSubresourceRange struct {
	AspectMask     ImageAspectFlags
	BaseMipLevel   int
	LevelCount     int
	BaseArrayLayer int
	LayerCount     int
}

type ImageSubresourceLayers struct {
	AspectMask     ImageAspectFlags
	MipLevel       int
	BaseArrayLayer int
	LayerCount     int
}

type ImageViewCreateInfo struct {
	Image            Image
	ViewType         ImageViewType
	Format           Format
	SubresourceRange ImageSubresourceRange
}

type SamplerCreateInfo struct {
	MagFilter               Filter
	MinFilter               Filter
	MipmapMode              SamplerMipmapMode
	AddressModeU            SamplerAddressMode
	AddressModeV            SamplerAddressMode
	AddressModeW            SamplerAddressMode
	MipLodBias              float32
	AnisotropyEnable        bool
	MaxAnisotropy           float32
	CompareEnable           bool
	CompareOp               CompareOp
	MinLod                  float32
	MaxLod                  float32
	BorderColor             BorderColor
	UnnormalizedCoordinates bool
}

type MemoryAllocateInfo struct {
	Size            int
	MemoryTypeIndex int
	// DeviceAddress requests memory that can back buffers queried for a GPU virtual address.
	DeviceAddress bool
}

type MappedMemoryRange struct {
	Memory DeviceMemory
	Offset int
	Size   int
}

type DescriptorSetLayoutBinding struct {
	Binding         int
	DescriptorType  DescriptorType
	DescriptorCount int
	StageFlags      ShaderStageFlags
	BindingFlags    DescriptorBindingFlags
}

type DescriptorSetLayoutCreateInfo struct {
	Flags    DescriptorSetLayoutCreateFlags
	Bindings []DescriptorSetLayoutBinding
}

type DescriptorPoolSize struct {
	Type            DescriptorType
	DescriptorCount int
}

type DescriptorPoolCreateInfo struct {
	Flags     DescriptorPoolCreateFlags
	MaxSets   int
	PoolSizes []DescriptorPoolSize
}

type DescriptorImageInfo struct {
	Sampler     Sampler
	ImageView   ImageView
	ImageLayout ImageLayout
}

type DescriptorBufferInfo struct {
	Buffer Buffer
	Offset int
	Range  int
}

type WriteDescriptorSet struct {
	DstSet          DescriptorSet
	DstBinding      int
	DstArrayElement int
	DescriptorType  DescriptorType
	ImageInfo       []DescriptorImageInfo
	BufferInfo      []DescriptorBufferInfo
}

type PushConstantRange struct {
	StageFlags ShaderStageFlags
	Offset     int
	Size       int
}

type PipelineLayoutCreateInfo struct {
	SetLayouts         []DescriptorSetLayout
	PushConstantRanges []PushConstantRange
}

// ShaderCreateInfo describes a linkable shader object for a single stage.
type ShaderCreateInfo struct {
	Stage              ShaderStageFlags
	NextStage          ShaderStageFlags
	Code               []uint32
	EntryPoint         string
	SetLayouts         []DescriptorSetLayout
	PushConstantRanges []PushConstantRange
}

type QueryPoolCreateInfo struct {
	QueryType          QueryType
	QueryCount         int
	PipelineStatistics QueryPipelineStatisticFlags
}

type CommandPoolCreateInfo struct {
	Flags            CommandPoolCreateFlags
	QueueFamilyIndex int
}

type SubmitInfo struct {
	WaitSemaphores   []Semaphore
	WaitDstStageMask []PipelineStageFlags
	CommandBuffers   []CommandBuffer
	SignalSemaphores []Semaphore
}

type BufferMemoryBarrier struct {
	SrcAccessMask       AccessFlags
	DstAccessMask       AccessFlags
	SrcQueueFamilyIndex int
	DstQueueFamilyIndex int
	Buffer              Buffer
	Offset              int
	Size                int
}

type ImageMemoryBarrier struct {
	SrcAccessMask       AccessFlags
	DstAccessMask       AccessFlags
	OldLayout           ImageLayout
	NewLayout           ImageLayout
	SrcQueueFamilyIndex int
	DstQueueFamilyIndex int
	Image               Image
	SubresourceRange    ImageSubresourceRange
}

type BufferCopy struct {
	SrcOffset int
	DstOffset int
	Size      int
}

type BufferImageCopy struct {
	BufferOffset      int
	BufferRowLength   int
	BufferImageHeight int
	ImageSubresource  ImageSubresourceLayers
	ImageOffset       Offset3D
	ImageExtent       Extent3D
}

type ImageCopy struct {
	SrcSubresource ImageSubresourceLayers
	SrcOffset      Offset3D
	DstSubresource ImageSubresourceLayers
	DstOffset      Offset3D
	Extent         Extent3D
}

type ImageBlit struct {
	SrcSubresource ImageSubresourceLayers
	SrcOffsets     [2]Offset3D
	DstSubresource ImageSubresourceLayers
	DstOffsets     [2]Offset3D
}

type VertexInputBinding struct {
	Binding   int
	Stride    int
	InputRate VertexInputRate
	Divisor   int
}

type VertexInputAttribute struct {
	Location int
	Binding  int
	Format   Format
	Offset   int
}

type ColorBlendEquation struct {
	SrcColorBlendFactor BlendFactor
	DstColorBlendFactor BlendFactor
	ColorBlendOp        BlendOp
	SrcAlphaBlendFactor BlendFactor
	DstAlphaBlendFactor BlendFactor
	AlphaBlendOp        BlendOp
}

type ColorAttachmentState struct {
	BlendEnable bool
	Equation    ColorBlendEquation
	WriteMask   ColorComponentFlags
}

type StencilOpState struct {
	FailOp      int
	PassOp      int
	DepthFailOp int
	CompareOp   CompareOp
	CompareMask uint32
	WriteMask   uint32
	Reference   uint32
}

// RenderState is the complete dynamic rasterization, depth and blend state applied before a draw.
type RenderState struct {
	RasterizerDiscardEnable bool
	PolygonMode             PolygonMode
	CullMode                CullModeFlags
	FrontFace               FrontFace
	LineWidth               float32
	DepthClampEnable        bool
	DepthBiasEnable         bool

	RasterizationSamples  SampleCountFlags
	SampleMask            uint32
	AlphaToCoverageEnable bool
	AlphaToOneEnable      bool

	DepthTestEnable       bool
	DepthWriteEnable      bool
	DepthCompareOp        CompareOp
	DepthBoundsTestEnable bool
	StencilTestEnable     bool
	StencilFront          StencilOpState
	StencilBack           StencilOpState

	LogicOpEnable    bool
	ColorAttachments []ColorAttachmentState
}

type ClearValue struct {
	Color   [4]float32
	Depth   float32
	Stencil uint32
}

type RenderingAttachmentInfo struct {
	ImageView   ImageView
	ImageLayout ImageLayout
	LoadOp      AttachmentLoadOp
	StoreOp     AttachmentStoreOp
	ClearValue  ClearValue
}

type RenderingInfo struct {
	RenderArea        Rect2D
	LayerCount        int
	ColorAttachments  []RenderingAttachmentInfo
	DepthAttachment   *RenderingAttachmentInfo
	StencilAttachment *RenderingAttachmentInfo
}

type DebugLabel struct {
	Name  string
	Color [4]float32
}
