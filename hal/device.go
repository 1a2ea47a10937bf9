package hal

//go:generate mockgen -source device.go -destination ./mocks/device.go -package mocks

import (
	"time"
	"unsafe"
)

// Device is a logical device together with its command recording entry points. Methods that
// can fail report errors built with the result package, so callers can branch on result.CodeOf.
type Device interface {
	Properties() PhysicalDeviceProperties
	Features() PhysicalDeviceFeatures
	MemoryProperties() MemoryProperties
	QueueFamilies() []QueueFamilyProperties
	GetQueue(familyIndex int, queueIndex int) Queue
	WaitIdle() error
	Destroy()
	SetDebugName(objectType ObjectType, handle uint64, name string) error

	CreateBuffer(info BufferCreateInfo) (Buffer, error)
	DestroyBuffer(buffer Buffer)
	GetBufferMemoryRequirements(buffer Buffer) MemoryRequirements
	GetBufferDeviceAddress(buffer Buffer) (uint64, error)
	CreateImage(info ImageCreateInfo) (Image, error)
	DestroyImage(image Image)
	GetImageMemoryRequirements(image Image) MemoryRequirements
	CreateImageView(info ImageViewCreateInfo) (ImageView, error)
	DestroyImageView(view ImageView)
	CreateSampler(info SamplerCreateInfo) (Sampler, error)
	DestroySampler(sampler Sampler)

	AllocateMemory(info MemoryAllocateInfo) (DeviceMemory, error)
	FreeMemory(memory DeviceMemory)
	BindBufferMemory(buffer Buffer, memory DeviceMemory, offset int) error
	BindImageMemory(image Image, memory DeviceMemory, offset int) error
	MapMemory(memory DeviceMemory, offset int, size int) (unsafe.Pointer, error)
	UnmapMemory(memory DeviceMemory)
	FlushMappedMemoryRanges(ranges ...MappedMemoryRange) error
	InvalidateMappedMemoryRanges(ranges ...MappedMemoryRange) error

	CreateDescriptorSetLayout(info DescriptorSetLayoutCreateInfo) (DescriptorSetLayout, error)
	DestroyDescriptorSetLayout(layout DescriptorSetLayout)
	CreateDescriptorPool(info DescriptorPoolCreateInfo) (DescriptorPool, error)
	DestroyDescriptorPool(pool DescriptorPool)
	AllocateDescriptorSet(pool DescriptorPool, layout DescriptorSetLayout) (DescriptorSet, error)
	FreeDescriptorSet(pool DescriptorPool, set DescriptorSet) error
	UpdateDescriptorSets(writes ...WriteDescriptorSet) error
	CreatePipelineLayout(info PipelineLayoutCreateInfo) (PipelineLayout, error)
	DestroyPipelineLayout(layout PipelineLayout)
	CreateShader(info ShaderCreateInfo) (Shader, error)
	DestroyShader(shader Shader)

	CreateFence(signaled bool) (Fence, error)
	DestroyFence(fence Fence)
	ResetFences(fences ...Fence) error
	WaitForFences(waitAll bool, timeout time.Duration, fences ...Fence) error
	GetFenceStatus(fence Fence) (bool, error)
	CreateSemaphore() (Semaphore, error)
	DestroySemaphore(semaphore Semaphore)

	CreateQueryPool(info QueryPoolCreateInfo) (QueryPool, error)
	DestroyQueryPool(pool QueryPool)
	GetQueryPoolResults(pool QueryPool, firstQuery int, queryCount int, wait bool) ([]uint64, error)

	CreateCommandPool(info CommandPoolCreateInfo) (CommandPool, error)
	DestroyCommandPool(pool CommandPool)
	ResetCommandPool(pool CommandPool, releaseResources bool) error
	TrimCommandPool(pool CommandPool)
	AllocateCommandBuffers(pool CommandPool, count int) ([]CommandBuffer, error)
	FreeCommandBuffers(pool CommandPool, buffers ...CommandBuffer)

	QueueSubmit(queue Queue, fence Fence, submits ...SubmitInfo) error
	QueueWaitIdle(queue Queue) error

	BeginCommandBuffer(commandBuffer CommandBuffer, flags CommandBufferUsageFlags) error
	EndCommandBuffer(commandBuffer CommandBuffer) error
	ResetCommandBuffer(commandBuffer CommandBuffer, releaseResources bool) error

	CmdSetRenderState(commandBuffer CommandBuffer, state RenderState) error
	CmdSetVertexInput(commandBuffer CommandBuffer, bindings []VertexInputBinding, attributes []VertexInputAttribute) error
	CmdSetInputAssembly(commandBuffer CommandBuffer, topology PrimitiveTopology, primitiveRestart bool) error
	CmdSetViewports(commandBuffer CommandBuffer, viewports []Viewport)
	CmdSetScissors(commandBuffer CommandBuffer, scissors []Rect2D)
	CmdBindVertexBuffers(commandBuffer CommandBuffer, firstBinding int, buffers []Buffer, offsets []int)
	CmdBindIndexBuffer(commandBuffer CommandBuffer, buffer Buffer, offset int, indexType IndexType)
	CmdBindShaders(commandBuffer CommandBuffer, stages []ShaderStageFlags, shaders []Shader) error
	CmdBindDescriptorSets(commandBuffer CommandBuffer, bindPoint PipelineBindPoint, layout PipelineLayout, firstSet int, sets []DescriptorSet, dynamicOffsets []int)
	CmdPushConstants(commandBuffer CommandBuffer, layout PipelineLayout, stages ShaderStageFlags, offset int, data []byte)

	CmdDraw(commandBuffer CommandBuffer, vertexCount int, instanceCount int, firstVertex int, firstInstance int)
	CmdDrawIndexed(commandBuffer CommandBuffer, indexCount int, instanceCount int, firstIndex int, vertexOffset int, firstInstance int)
	CmdDrawIndirect(commandBuffer CommandBuffer, buffer Buffer, offset int, drawCount int, stride int)
	CmdDrawIndexedIndirect(commandBuffer CommandBuffer, buffer Buffer, offset int, drawCount int, stride int)
	CmdDrawMeshTasks(commandBuffer CommandBuffer, groupCountX int, groupCountY int, groupCountZ int) error
	CmdDispatch(commandBuffer CommandBuffer, groupCountX int, groupCountY int, groupCountZ int)
	CmdDispatchIndirect(commandBuffer CommandBuffer, buffer Buffer, offset int)

	CmdPipelineBarrier(commandBuffer CommandBuffer, srcStageMask PipelineStageFlags, dstStageMask PipelineStageFlags, bufferBarriers []BufferMemoryBarrier, imageBarriers []ImageMemoryBarrier) error
	CmdCopyBuffer(commandBuffer CommandBuffer, src Buffer, dst Buffer, regions ...BufferCopy) error
	CmdCopyBufferToImage(commandBuffer CommandBuffer, src Buffer, dst Image, dstLayout ImageLayout, regions ...BufferImageCopy) error
	CmdCopyImage(commandBuffer CommandBuffer, src Image, srcLayout ImageLayout, dst Image, dstLayout ImageLayout, regions ...ImageCopy) error
	CmdBlitImage(commandBuffer CommandBuffer, src Image, srcLayout ImageLayout, dst Image, dstLayout ImageLayout, filter Filter, regions ...ImageBlit) error
	CmdUpdateBuffer(commandBuffer CommandBuffer, buffer Buffer, offset int, data []byte)

	CmdResetQueryPool(commandBuffer CommandBuffer, pool QueryPool, firstQuery int, queryCount int)
	CmdWriteTimestamp(commandBuffer CommandBuffer, stage PipelineStageFlags, pool QueryPool, query int)
	CmdBeginQuery(commandBuffer CommandBuffer, pool QueryPool, query int, precise bool)
	CmdEndQuery(commandBuffer CommandBuffer, pool QueryPool, query int)

	CmdBeginRendering(commandBuffer CommandBuffer, info RenderingInfo) error
	CmdEndRendering(commandBuffer CommandBuffer) error
	CmdBeginDebugLabel(commandBuffer CommandBuffer, label DebugLabel)
	CmdEndDebugLabel(commandBuffer CommandBuffer)
	CmdInsertDebugLabel(commandBuffer CommandBuffer, label DebugLabel)
}
