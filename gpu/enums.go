package gpu

import (
	"github.com/vkngwrapper/core/v3/common"
)

// QueueType is the class of hardware queue a command buffer is recorded for.
type QueueType int32

const (
	QueueGraphics QueueType = iota
	QueueCompute
	QueueTransfer

	queueTypeCount = 3
)

var queueTypeMapping = make(map[QueueType]string)

func init() {
	queueTypeMapping[QueueGraphics] = "Graphics"
	queueTypeMapping[QueueCompute] = "Compute"
	queueTypeMapping[QueueTransfer] = "Transfer"
}

func (t QueueType) String() string {
	str, ok := queueTypeMapping[t]
	if !ok {
		return "unknown"
	}
	return str
}

// MemoryDomain is the residency intent of a buffer or image. The device allocator translates it
// into concrete memory property requirements.
type MemoryDomain int32

const (
	MemoryDomainAuto MemoryDomain = iota
	MemoryDomainDevice
	MemoryDomainUpload
	MemoryDomainReadback
	MemoryDomainHost
)

var memoryDomainMapping = make(map[MemoryDomain]string)

func init() {
	memoryDomainMapping[MemoryDomainAuto] = "Auto"
	memoryDomainMapping[MemoryDomainDevice] = "Device"
	memoryDomainMapping[MemoryDomainUpload] = "Upload"
	memoryDomainMapping[MemoryDomainReadback] = "Readback"
	memoryDomainMapping[MemoryDomainHost] = "Host"
}

func (d MemoryDomain) String() string {
	str, ok := memoryDomainMapping[d]
	if !ok {
		return "unknown"
	}
	return str
}

type PipelineType int32

const (
	PipelineTypeUndefined PipelineType = iota
	PipelineTypeGeometry
	PipelineTypeMesh
	PipelineTypeCompute
)

var pipelineTypeMapping = make(map[PipelineType]string)

func init() {
	pipelineTypeMapping[PipelineTypeUndefined] = "Undefined"
	pipelineTypeMapping[PipelineTypeGeometry] = "Geometry"
	pipelineTypeMapping[PipelineTypeMesh] = "Mesh"
	pipelineTypeMapping[PipelineTypeCompute] = "Compute"
}

func (t PipelineType) String() string {
	str, ok := pipelineTypeMapping[t]
	if !ok {
		return "unknown"
	}
	return str
}

type CommandBufferState int32

const (
	CommandBufferStateInitial CommandBufferState = iota
	CommandBufferStateRecording
	CommandBufferStateExecutable
)

var commandBufferStateMapping = make(map[CommandBufferState]string)

func init() {
	commandBufferStateMapping[CommandBufferStateInitial] = "Initial"
	commandBufferStateMapping[CommandBufferStateRecording] = "Recording"
	commandBufferStateMapping[CommandBufferStateExecutable] = "Executable"
}

func (s CommandBufferState) String() string {
	str, ok := commandBufferStateMapping[s]
	if !ok {
		return "unknown"
	}
	return str
}

// CommandBufferUsage is how often a command buffer is submitted between resets.
type CommandBufferUsage int32

const (
	CommandBufferUsageOneTime CommandBufferUsage = iota
	CommandBufferUsageReusable
	CommandBufferUsagePersistent
)

var commandBufferUsageMapping = make(map[CommandBufferUsage]string)

func init() {
	commandBufferUsageMapping[CommandBufferUsageOneTime] = "OneTime"
	commandBufferUsageMapping[CommandBufferUsageReusable] = "Reusable"
	commandBufferUsageMapping[CommandBufferUsagePersistent] = "Persistent"
}

func (u CommandBufferUsage) String() string {
	str, ok := commandBufferUsageMapping[u]
	if !ok {
		return "unknown"
	}
	return str
}

// ResourceState describes how a resource is being accessed. Barriers translate a pair of states
// into access masks, image layouts and pipeline stages.
type ResourceState int32

var resourceStateMapping = common.NewFlagStringMapping[ResourceState]()

func (f ResourceState) Register(str string) {
	resourceStateMapping.Register(f, str)
}
func (f ResourceState) String() string {
	return resourceStateMapping.FlagsToString(f)
}

const (
	ResourceStateUndefined        ResourceState = 0
	ResourceStateGeneral          ResourceState = 0x1
	ResourceStateUniformBuffer    ResourceState = 0x2
	ResourceStateVertexBuffer     ResourceState = 0x4
	ResourceStateIndexBuffer      ResourceState = 0x8
	ResourceStateIndirectArgument ResourceState = 0x10
	ResourceStateShaderResource   ResourceState = 0x20
	ResourceStateUnorderedAccess  ResourceState = 0x40
	ResourceStateRenderTarget     ResourceState = 0x80
	ResourceStateDepthStencil     ResourceState = 0x100
	ResourceStateStreamOut        ResourceState = 0x200
	ResourceStateCopyDest         ResourceState = 0x400
	ResourceStateCopySource       ResourceState = 0x800
	ResourceStateResolveDest      ResourceState = 0x1000
	ResourceStateResolveSource    ResourceState = 0x2000
	ResourceStatePresent          ResourceState = 0x4000
	ResourceStateAccelStructRead  ResourceState = 0x8000
	ResourceStateAccelStructWrite ResourceState = 0x10000
)

func init() {
	ResourceStateGeneral.Register("General")
	ResourceStateUniformBuffer.Register("UniformBuffer")
	ResourceStateVertexBuffer.Register("VertexBuffer")
	ResourceStateIndexBuffer.Register("IndexBuffer")
	ResourceStateIndirectArgument.Register("IndirectArgument")
	ResourceStateShaderResource.Register("ShaderResource")
	ResourceStateUnorderedAccess.Register("UnorderedAccess")
	ResourceStateRenderTarget.Register("RenderTarget")
	ResourceStateDepthStencil.Register("DepthStencil")
	ResourceStateStreamOut.Register("StreamOut")
	ResourceStateCopyDest.Register("CopyDest")
	ResourceStateCopySource.Register("CopySource")
	ResourceStateResolveDest.Register("ResolveDest")
	ResourceStateResolveSource.Register("ResolveSource")
	ResourceStatePresent.Register("Present")
	ResourceStateAccelStructRead.Register("AccelStructRead")
	ResourceStateAccelStructWrite.Register("AccelStructWrite")
}

// TimeUnit selects the unit TimeQueryResults reports in.
type TimeUnit int32

const (
	TimeUnitSeconds TimeUnit = iota
	TimeUnitMilliseconds
	TimeUnitMicroseconds
	TimeUnitNanoseconds
)

var timeUnitMapping = make(map[TimeUnit]string)

func init() {
	timeUnitMapping[TimeUnitSeconds] = "s"
	timeUnitMapping[TimeUnitMilliseconds] = "ms"
	timeUnitMapping[TimeUnitMicroseconds] = "us"
	timeUnitMapping[TimeUnitNanoseconds] = "ns"
}

func (u TimeUnit) String() string {
	str, ok := timeUnitMapping[u]
	if !ok {
		return "unknown"
	}
	return str
}

// ResourceType names a kind of device object for statistics and debug names.
type ResourceType int32

const (
	ResourceTypeBuffer ResourceType = iota
	ResourceTypeImage
	ResourceTypeImageView
	ResourceTypeSampler
	ResourceTypeShader
	ResourceTypeShaderProgram
	ResourceTypeDescriptorSetLayout
	ResourceTypeDescriptorSet
	ResourceTypePipelineLayout
	ResourceTypeQueryPool
	ResourceTypeFence
	ResourceTypeSemaphore
	ResourceTypeCommandPool
	ResourceTypeCommandBuffer

	resourceTypeCount = 14
)

var resourceTypeMapping = make(map[ResourceType]string)

func init() {
	resourceTypeMapping[ResourceTypeBuffer] = "Buffer"
	resourceTypeMapping[ResourceTypeImage] = "Image"
	resourceTypeMapping[ResourceTypeImageView] = "ImageView"
	resourceTypeMapping[ResourceTypeSampler] = "Sampler"
	resourceTypeMapping[ResourceTypeShader] = "Shader"
	resourceTypeMapping[ResourceTypeShaderProgram] = "ShaderProgram"
	resourceTypeMapping[ResourceTypeDescriptorSetLayout] = "DescriptorSetLayout"
	resourceTypeMapping[ResourceTypeDescriptorSet] = "DescriptorSet"
	resourceTypeMapping[ResourceTypePipelineLayout] = "PipelineLayout"
	resourceTypeMapping[ResourceTypeQueryPool] = "QueryPool"
	resourceTypeMapping[ResourceTypeFence] = "Fence"
	resourceTypeMapping[ResourceTypeSemaphore] = "Semaphore"
	resourceTypeMapping[ResourceTypeCommandPool] = "CommandPool"
	resourceTypeMapping[ResourceTypeCommandBuffer] = "CommandBuffer"
}

func (t ResourceType) String() string {
	str, ok := resourceTypeMapping[t]
	if !ok {
		return "unknown"
	}
	return str
}
