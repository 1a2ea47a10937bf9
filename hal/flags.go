package hal

import "github.com/vkngwrapper/core/v3/common"

// BufferUsageFlags specifies how a buffer may be used by the device.
type BufferUsageFlags int32

var bufferUsageFlagsMapping = common.NewFlagStringMapping[BufferUsageFlags]()

func (f BufferUsageFlags) Register(str string) {
	bufferUsageFlagsMapping.Register(f, str)
}
func (f BufferUsageFlags) String() string {
	return bufferUsageFlagsMapping.FlagsToString(f)
}

const (
	BufferUsageTransferSrc         BufferUsageFlags = 0x1
	BufferUsageTransferDst         BufferUsageFlags = 0x2
	BufferUsageUniformBuffer       BufferUsageFlags = 0x10
	BufferUsageStorageBuffer       BufferUsageFlags = 0x20
	BufferUsageIndexBuffer         BufferUsageFlags = 0x40
	BufferUsageVertexBuffer        BufferUsageFlags = 0x80
	BufferUsageIndirectBuffer      BufferUsageFlags = 0x100
	BufferUsageShaderDeviceAddress BufferUsageFlags = 0x20000
)

// ImageUsageFlags specifies how an image may be used by the device.
type ImageUsageFlags int32

var imageUsageFlagsMapping = common.NewFlagStringMapping[ImageUsageFlags]()

func (f ImageUsageFlags) Register(str string) {
	imageUsageFlagsMapping.Register(f, str)
}
func (f ImageUsageFlags) String() string {
	return imageUsageFlagsMapping.FlagsToString(f)
}

const (
	ImageUsageTransferSrc            ImageUsageFlags = 0x1
	ImageUsageTransferDst            ImageUsageFlags = 0x2
	ImageUsageSampled                ImageUsageFlags = 0x4
	ImageUsageStorage                ImageUsageFlags = 0x8
	ImageUsageColorAttachment        ImageUsageFlags = 0x10
	ImageUsageDepthStencilAttachment ImageUsageFlags = 0x20
	ImageUsageTransientAttachment    ImageUsageFlags = 0x40
	ImageUsageInputAttachment        ImageUsageFlags = 0x80
)

// ImageCreateFlags selects optional image capabilities.
type ImageCreateFlags int32

var imageCreateFlagsMapping = common.NewFlagStringMapping[ImageCreateFlags]()

func (f ImageCreateFlags) Register(str string) {
	imageCreateFlagsMapping.Register(f, str)
}
func (f ImageCreateFlags) String() string {
	return imageCreateFlagsMapping.FlagsToString(f)
}

const (
	ImageCreateMutableFormat     ImageCreateFlags = 0x8
	ImageCreateCubeCompatible    ImageCreateFlags = 0x10
	ImageCreate2DArrayCompatible ImageCreateFlags = 0x20
)

// MemoryPropertyFlags describes a memory type.
type MemoryPropertyFlags int32

var memoryPropertyFlagsMapping = common.NewFlagStringMapping[MemoryPropertyFlags]()

func (f MemoryPropertyFlags) Register(str string) {
	memoryPropertyFlagsMapping.Register(f, str)
}
func (f MemoryPropertyFlags) String() string {
	return memoryPropertyFlagsMapping.FlagsToString(f)
}

const (
	MemoryPropertyDeviceLocal     MemoryPropertyFlags = 0x1
	MemoryPropertyHostVisible     MemoryPropertyFlags = 0x2
	MemoryPropertyHostCoherent    MemoryPropertyFlags = 0x4
	MemoryPropertyHostCached      MemoryPropertyFlags = 0x8
	MemoryPropertyLazilyAllocated MemoryPropertyFlags = 0x10
)

// MemoryHeapFlags describes a memory heap.
type MemoryHeapFlags int32

const (
	MemoryHeapDeviceLocal MemoryHeapFlags = 0x1
)

// AccessFlags is a set of memory access types used in barriers.
type AccessFlags int32

var accessFlagsMapping = common.NewFlagStringMapping[AccessFlags]()

func (f AccessFlags) Register(str string) {
	accessFlagsMapping.Register(f, str)
}
func (f AccessFlags) String() string {
	return accessFlagsMapping.FlagsToString(f)
}

const (
	AccessIndirectCommandRead         AccessFlags = 0x1
	AccessIndexRead                   AccessFlags = 0x2
	AccessVertexAttributeRead         AccessFlags = 0x4
	AccessUniformRead                 AccessFlags = 0x8
	AccessInputAttachmentRead         AccessFlags = 0x10
	AccessShaderRead                  AccessFlags = 0x20
	AccessShaderWrite                 AccessFlags = 0x40
	AccessColorAttachmentRead         AccessFlags = 0x80
	AccessColorAttachmentWrite        AccessFlags = 0x100
	AccessDepthStencilAttachmentRead  AccessFlags = 0x200
	AccessDepthStencilAttachmentWrite AccessFlags = 0x400
	AccessTransferRead                AccessFlags = 0x800
	AccessTransferWrite               AccessFlags = 0x1000
	AccessHostRead                    AccessFlags = 0x2000
	AccessHostWrite                   AccessFlags = 0x4000
	AccessMemoryRead                  AccessFlags = 0x8000
	AccessMemoryWrite                 AccessFlags = 0x10000
	AccessAccelerationStructureRead   AccessFlags = 0x200000
	AccessAccelerationStructureWrite  AccessFlags = 0x400000
)

// PipelineStageFlags is a set of pipeline stages used in barriers and timestamps.
type PipelineStageFlags int32

var pipelineStageFlagsMapping = common.NewFlagStringMapping[PipelineStageFlags]()

func (f PipelineStageFlags) Register(str string) {
	pipelineStageFlagsMapping.Register(f, str)
}
func (f PipelineStageFlags) String() string {
	return pipelineStageFlagsMapping.FlagsToString(f)
}

const (
	PipelineStageTopOfPipe                    PipelineStageFlags = 0x1
	PipelineStageDrawIndirect                 PipelineStageFlags = 0x2
	PipelineStageVertexInput                  PipelineStageFlags = 0x4
	PipelineStageVertexShader                 PipelineStageFlags = 0x8
	PipelineStageTessellationControlShader    PipelineStageFlags = 0x10
	PipelineStageTessellationEvaluationShader PipelineStageFlags = 0x20
	PipelineStageGeometryShader               PipelineStageFlags = 0x40
	PipelineStageFragmentShader               PipelineStageFlags = 0x80
	PipelineStageEarlyFragmentTests           PipelineStageFlags = 0x100
	PipelineStageLateFragmentTests            PipelineStageFlags = 0x200
	PipelineStageColorAttachmentOutput        PipelineStageFlags = 0x400
	PipelineStageComputeShader                PipelineStageFlags = 0x800
	PipelineStageTransfer                     PipelineStageFlags = 0x1000
	PipelineStageBottomOfPipe                 PipelineStageFlags = 0x2000
	PipelineStageHost                         PipelineStageFlags = 0x4000
	PipelineStageAllGraphics                  PipelineStageFlags = 0x8000
	PipelineStageAllCommands                  PipelineStageFlags = 0x10000
	PipelineStageTaskShader                   PipelineStageFlags = 0x80000
	PipelineStageMeshShader                   PipelineStageFlags = 0x100000
	PipelineStageRayTracingShader             PipelineStageFlags = 0x200000
	PipelineStageAccelerationStructureBuild   PipelineStageFlags = 0x2000000
)

// ShaderStageFlags is a set of shader stages.
type ShaderStageFlags int32

var shaderStageFlagsMapping = common.NewFlagStringMapping[ShaderStageFlags]()

func (f ShaderStageFlags) Register(str string) {
	shaderStageFlagsMapping.Register(f, str)
}
func (f ShaderStageFlags) String() string {
	return shaderStageFlagsMapping.FlagsToString(f)
}

const (
	ShaderStageVertex                 ShaderStageFlags = 0x1
	ShaderStageTessellationControl    ShaderStageFlags = 0x2
	ShaderStageTessellationEvaluation ShaderStageFlags = 0x4
	ShaderStageGeometry               ShaderStageFlags = 0x8
	ShaderStageFragment               ShaderStageFlags = 0x10
	ShaderStageCompute                ShaderStageFlags = 0x20
	ShaderStageTask                   ShaderStageFlags = 0x40
	ShaderStageMesh                   ShaderStageFlags = 0x80

	ShaderStageAllGraphics ShaderStageFlags = 0x1f
	ShaderStageAll         ShaderStageFlags = 0x7fffffff
)

// ImageAspectFlags selects the aspects of an image a view or barrier covers.
type ImageAspectFlags int32

var imageAspectFlagsMapping = common.NewFlagStringMapping[ImageAspectFlags]()

func (f ImageAspectFlags) Register(str string) {
	imageAspectFlagsMapping.Register(f, str)
}
func (f ImageAspectFlags) String() string {
	return imageAspectFlagsMapping.FlagsToString(f)
}

const (
	ImageAspectColor   ImageAspectFlags = 0x1
	ImageAspectDepth   ImageAspectFlags = 0x2
	ImageAspectStencil ImageAspectFlags = 0x4
)

// QueueFlags describes the capabilities of a queue family.
type QueueFlags int32

var queueFlagsMapping = common.NewFlagStringMapping[QueueFlags]()

func (f QueueFlags) Register(str string) {
	queueFlagsMapping.Register(f, str)
}
func (f QueueFlags) String() string {
	return queueFlagsMapping.FlagsToString(f)
}

const (
	QueueGraphics QueueFlags = 0x1
	QueueCompute  QueueFlags = 0x2
	QueueTransfer QueueFlags = 0x4
)

// SampleCountFlags is a sample count or set of sample counts.
type SampleCountFlags int32

const (
	SampleCount1  SampleCountFlags = 0x1
	SampleCount2  SampleCountFlags = 0x2
	SampleCount4  SampleCountFlags = 0x4
	SampleCount8  SampleCountFlags = 0x8
	SampleCount16 SampleCountFlags = 0x10
)

// DescriptorBindingFlags alters the validity rules of a descriptor binding.
type DescriptorBindingFlags int32

var descriptorBindingFlagsMapping = common.NewFlagStringMapping[DescriptorBindingFlags]()

func (f DescriptorBindingFlags) Register(str string) {
	descriptorBindingFlagsMapping.Register(f, str)
}
func (f DescriptorBindingFlags) String() string {
	return descriptorBindingFlagsMapping.FlagsToString(f)
}

const (
	DescriptorBindingUpdateAfterBind          DescriptorBindingFlags = 0x1
	DescriptorBindingUpdateUnusedWhilePending DescriptorBindingFlags = 0x2
	DescriptorBindingPartiallyBound           DescriptorBindingFlags = 0x4
	DescriptorBindingVariableDescriptorCount  DescriptorBindingFlags = 0x8
)

type DescriptorSetLayoutCreateFlags int32

const (
	DescriptorSetLayoutCreateUpdateAfterBindPool DescriptorSetLayoutCreateFlags = 0x2
)

type DescriptorPoolCreateFlags int32

const (
	DescriptorPoolCreateFreeDescriptorSet DescriptorPoolCreateFlags = 0x1
	DescriptorPoolCreateUpdateAfterBind   DescriptorPoolCreateFlags = 0x2
)

type CommandPoolCreateFlags int32

var commandPoolCreateFlagsMapping = common.NewFlagStringMapping[CommandPoolCreateFlags]()

func (f CommandPoolCreateFlags) Register(str string) {
	commandPoolCreateFlagsMapping.Register(f, str)
}
func (f CommandPoolCreateFlags) String() string {
	return commandPoolCreateFlagsMapping.FlagsToString(f)
}

const (
	CommandPoolCreateTransient          CommandPoolCreateFlags = 0x1
	CommandPoolCreateResetCommandBuffer CommandPoolCreateFlags = 0x2
)

type CommandBufferUsageFlags int32

const (
	CommandBufferUsageOneTimeSubmit      CommandBufferUsageFlags = 0x1
	CommandBufferUsageRenderPassContinue CommandBufferUsageFlags = 0x2
	CommandBufferUsageSimultaneousUse    CommandBufferUsageFlags = 0x4
)

// QueryPipelineStatisticFlags selects the counters a pipeline statistics query records.
type QueryPipelineStatisticFlags int32

var queryPipelineStatisticFlagsMapping = common.NewFlagStringMapping[QueryPipelineStatisticFlags]()

func (f QueryPipelineStatisticFlags) Register(str string) {
	queryPipelineStatisticFlagsMapping.Register(f, str)
}
func (f QueryPipelineStatisticFlags) String() string {
	return queryPipelineStatisticFlagsMapping.FlagsToString(f)
}

const (
	QueryPipelineStatisticInputAssemblyVertices     QueryPipelineStatisticFlags = 0x1
	QueryPipelineStatisticInputAssemblyPrimitives   QueryPipelineStatisticFlags = 0x2
	QueryPipelineStatisticVertexShaderInvocations   QueryPipelineStatisticFlags = 0x4
	QueryPipelineStatisticGeometryShaderInvocations QueryPipelineStatisticFlags = 0x8
	QueryPipelineStatisticGeometryShaderPrimitives  QueryPipelineStatisticFlags = 0x10
	QueryPipelineStatisticClippingInvocations       QueryPipelineStatisticFlags = 0x20
	QueryPipelineStatisticClippingPrimitives        QueryPipelineStatisticFlags = 0x40
	QueryPipelineStatisticFragmentShaderInvocations QueryPipelineStatisticFlags = 0x80
	QueryPipelineStatisticComputeShaderInvocations  QueryPipelineStatisticFlags = 0x400
)

// ColorComponentFlags selects the color channels written by an attachment.
type ColorComponentFlags int32

const (
	ColorComponentR ColorComponentFlags = 0x1
	ColorComponentG ColorComponentFlags = 0x2
	ColorComponentB ColorComponentFlags = 0x4
	ColorComponentA ColorComponentFlags = 0x8

	ColorComponentAll = ColorComponentR | ColorComponentG | ColorComponentB | ColorComponentA
)

func init() {
	BufferUsageTransferSrc.Register("TransferSrc")
	BufferUsageTransferDst.Register("TransferDst")
	BufferUsageUniformBuffer.Register("UniformBuffer")
	BufferUsageStorageBuffer.Register("StorageBuffer")
	BufferUsageIndexBuffer.Register("IndexBuffer")
	BufferUsageVertexBuffer.Register("VertexBuffer")
	BufferUsageIndirectBuffer.Register("IndirectBuffer")
	BufferUsageShaderDeviceAddress.Register("ShaderDeviceAddress")

	ImageUsageTransferSrc.Register("TransferSrc")
	ImageUsageTransferDst.Register("TransferDst")
	ImageUsageSampled.Register("Sampled")
	ImageUsageStorage.Register("Storage")
	ImageUsageColorAttachment.Register("ColorAttachment")
	ImageUsageDepthStencilAttachment.Register("DepthStencilAttachment")
	ImageUsageTransientAttachment.Register("TransientAttachment")
	ImageUsageInputAttachment.Register("InputAttachment")

	ImageCreateMutableFormat.Register("MutableFormat")
	ImageCreateCubeCompatible.Register("CubeCompatible")
	ImageCreate2DArrayCompatible.Register("2DArrayCompatible")

	MemoryPropertyDeviceLocal.Register("DeviceLocal")
	MemoryPropertyHostVisible.Register("HostVisible")
	MemoryPropertyHostCoherent.Register("HostCoherent")
	MemoryPropertyHostCached.Register("HostCached")
	MemoryPropertyLazilyAllocated.Register("LazilyAllocated")

	AccessIndirectCommandRead.Register("IndirectCommandRead")
	AccessIndexRead.Register("IndexRead")
	AccessVertexAttributeRead.Register("VertexAttributeRead")
	AccessUniformRead.Register("UniformRead")
	AccessInputAttachmentRead.Register("InputAttachmentRead")
	AccessShaderRead.Register("ShaderRead")
	AccessShaderWrite.Register("ShaderWrite")
	AccessColorAttachmentRead.Register("ColorAttachmentRead")
	AccessColorAttachmentWrite.Register("ColorAttachmentWrite")
	AccessDepthStencilAttachmentRead.Register("DepthStencilAttachmentRead")
	AccessDepthStencilAttachmentWrite.Register("DepthStencilAttachmentWrite")
	AccessTransferRead.Register("TransferRead")
	AccessTransferWrite.Register("TransferWrite")
	AccessHostRead.Register("HostRead")
	AccessHostWrite.Register("HostWrite")
	AccessMemoryRead.Register("MemoryRead")
	AccessMemoryWrite.Register("MemoryWrite")
	AccessAccelerationStructureRead.Register("AccelerationStructureRead")
	AccessAccelerationStructureWrite.Register("AccelerationStructureWrite")

	PipelineStageTopOfPipe.Register("TopOfPipe")
	PipelineStageDrawIndirect.Register("DrawIndirect")
	PipelineStageVertexInput.Register("VertexInput")
	PipelineStageVertexShader.Register("VertexShader")
	PipelineStageTessellationControlShader.Register("TessellationControlShader")
	PipelineStageTessellationEvaluationShader.Register("TessellationEvaluationShader")
	PipelineStageGeometryShader.Register("GeometryShader")
	PipelineStageFragmentShader.Register("FragmentShader")
	PipelineStageEarlyFragmentTests.Register("EarlyFragmentTests")
	PipelineStageLateFragmentTests.Register("LateFragmentTests")
	PipelineStageColorAttachmentOutput.Register("ColorAttachmentOutput")
	PipelineStageComputeShader.Register("ComputeShader")
	PipelineStageTransfer.Register("Transfer")
	PipelineStageBottomOfPipe.Register("BottomOfPipe")
	PipelineStageHost.Register("Host")
	PipelineStageAllGraphics.Register("AllGraphics")
	PipelineStageAllCommands.Register("AllCommands")
	PipelineStageTaskShader.Register("TaskShader")
	PipelineStageMeshShader.Register("MeshShader")
	PipelineStageRayTracingShader.Register("RayTracingShader")
	PipelineStageAccelerationStructureBuild.Register("AccelerationStructureBuild")

	ShaderStageVertex.Register("Vertex")
	ShaderStageTessellationControl.Register("TessellationControl")
	ShaderStageTessellationEvaluation.Register("TessellationEvaluation")
	ShaderStageGeometry.Register("Geometry")
	ShaderStageFragment.Register("Fragment")
	ShaderStageCompute.Register("Compute")
	ShaderStageTask.Register("Task")
	ShaderStageMesh.Register("Mesh")

	ImageAspectColor.Register("Color")
	ImageAspectDepth.Register("Depth")
	ImageAspectStencil.Register("Stencil")

	QueueGraphics.Register("Graphics")
	QueueCompute.Register("Compute")
	QueueTransfer.Register("Transfer")

	DescriptorBindingUpdateAfterBind.Register("UpdateAfterBind")
	DescriptorBindingUpdateUnusedWhilePending.Register("UpdateUnusedWhilePending")
	DescriptorBindingPartiallyBound.Register("PartiallyBound")
	DescriptorBindingVariableDescriptorCount.Register("VariableDescriptorCount")

	CommandPoolCreateTransient.Register("Transient")
	CommandPoolCreateResetCommandBuffer.Register("ResetCommandBuffer")

	QueryPipelineStatisticInputAssemblyVertices.Register("InputAssemblyVertices")
	QueryPipelineStatisticInputAssemblyPrimitives.Register("InputAssemblyPrimitives")
	QueryPipelineStatisticVertexShaderInvocations.Register("VertexShaderInvocations")
	QueryPipelineStatisticGeometryShaderInvocations.Register("GeometryShaderInvocations")
	QueryPipelineStatisticGeometryShaderPrimitives.Register("GeometryShaderPrimitives")
	QueryPipelineStatisticClippingInvocations.Register("ClippingInvocations")
	QueryPipelineStatisticClippingPrimitives.Register("ClippingPrimitives")
	QueryPipelineStatisticFragmentShaderInvocations.Register("FragmentShaderInvocations")
	QueryPipelineStatisticComputeShaderInvocations.Register("ComputeShaderInvocations")
}
