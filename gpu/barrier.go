package gpu

import (
	"github.com/vkngwrapper/forge/hal"
)

// BufferBarrier declares a state transition of a whole buffer.
type BufferBarrier struct {
	Buffer       *Buffer
	CurrentState ResourceState
	NewState     ResourceState
	// Acquire and Release mark one half of a queue family ownership transfer. Queue is the type
	// of the queue on the other side of the transfer.
	Acquire bool
	Release bool
	Queue   QueueType
}

// ImageBarrier declares a state transition of an image. With SubresourceBarrier set only the
// mip level and array layer named are transitioned.
type ImageBarrier struct {
	Image              *Image
	CurrentState       ResourceState
	NewState           ResourceState
	Acquire            bool
	Release            bool
	Queue              QueueType
	SubresourceBarrier bool
	MipLevel           int
	ArrayLayer         int
}

// AccessFlags returns the memory accesses implied by the state.
func (f ResourceState) AccessFlags() hal.AccessFlags {
	var access hal.AccessFlags

	if f&ResourceStateCopySource != 0 {
		access |= hal.AccessTransferRead
	}
	if f&ResourceStateCopyDest != 0 {
		access |= hal.AccessTransferWrite
	}
	if f&ResourceStateVertexBuffer != 0 {
		access |= hal.AccessVertexAttributeRead
	}
	if f&ResourceStateUniformBuffer != 0 {
		access |= hal.AccessUniformRead
	}
	if f&ResourceStateIndexBuffer != 0 {
		access |= hal.AccessIndexRead
	}
	if f&ResourceStateUnorderedAccess != 0 {
		access |= hal.AccessShaderRead | hal.AccessShaderWrite
	}
	if f&ResourceStateIndirectArgument != 0 {
		access |= hal.AccessIndirectCommandRead
	}
	if f&ResourceStateRenderTarget != 0 {
		access |= hal.AccessColorAttachmentRead | hal.AccessColorAttachmentWrite
	}
	if f&ResourceStateDepthStencil != 0 {
		access |= hal.AccessDepthStencilAttachmentWrite
	}
	if f&ResourceStateShaderResource != 0 {
		access |= hal.AccessShaderRead
	}
	if f&ResourceStatePresent != 0 {
		access |= hal.AccessMemoryRead
	}
	if f&ResourceStateAccelStructRead != 0 {
		access |= hal.AccessAccelerationStructureRead
	}
	if f&ResourceStateAccelStructWrite != 0 {
		access |= hal.AccessAccelerationStructureWrite
	}

	return access
}

// ImageLayout returns the layout an image must be in for the state. The first matching state
// bit wins.
func (f ResourceState) ImageLayout() hal.ImageLayout {
	switch {
	case f&ResourceStateCopySource != 0:
		return hal.ImageLayoutTransferSrcOptimal
	case f&ResourceStateCopyDest != 0:
		return hal.ImageLayoutTransferDstOptimal
	case f&ResourceStateRenderTarget != 0:
		return hal.ImageLayoutColorAttachmentOptimal
	case f&ResourceStateDepthStencil != 0:
		return hal.ImageLayoutDepthStencilAttachmentOptimal
	case f&ResourceStateUnorderedAccess != 0:
		return hal.ImageLayoutGeneral
	case f&ResourceStateShaderResource != 0:
		return hal.ImageLayoutShaderReadOnlyOptimal
	case f&ResourceStatePresent != 0:
		return hal.ImageLayoutPresentSrc
	case f&ResourceStateGeneral != 0:
		return hal.ImageLayoutGeneral
	}
	return hal.ImageLayoutUndefined
}

const (
	vertexInputAccess = hal.AccessIndexRead | hal.AccessVertexAttributeRead
	shaderAccess      = hal.AccessUniformRead | hal.AccessShaderRead | hal.AccessShaderWrite
	colorAccess       = hal.AccessColorAttachmentRead | hal.AccessColorAttachmentWrite
	depthAccess       = hal.AccessDepthStencilAttachmentRead | hal.AccessDepthStencilAttachmentWrite
	transferAccess    = hal.AccessTransferRead | hal.AccessTransferWrite
	hostAccess        = hal.AccessHostRead | hal.AccessHostWrite
)

// derivePipelineStages returns the narrowest stage mask that covers access on a queue of the
// given type.
func derivePipelineStages(access hal.AccessFlags, queueType QueueType, features hal.PhysicalDeviceFeatures) hal.PipelineStageFlags {
	var stages hal.PipelineStageFlags

	switch queueType {
	case QueueGraphics:
		if access&vertexInputAccess != 0 {
			stages |= hal.PipelineStageVertexInput
		}
		if access&shaderAccess != 0 {
			stages |= hal.PipelineStageVertexShader | hal.PipelineStageFragmentShader
			if features.TessellationShader {
				stages |= hal.PipelineStageTessellationControlShader | hal.PipelineStageTessellationEvaluationShader
			}
			stages |= hal.PipelineStageComputeShader
			if features.RayTracing {
				stages |= hal.PipelineStageRayTracingShader
			}
		}
		if access&hal.AccessInputAttachmentRead != 0 {
			stages |= hal.PipelineStageFragmentShader
		}
		if access&colorAccess != 0 {
			stages |= hal.PipelineStageColorAttachmentOutput
		}
		if access&depthAccess != 0 {
			stages |= hal.PipelineStageEarlyFragmentTests | hal.PipelineStageLateFragmentTests
		}
	case QueueCompute:
		if access&(vertexInputAccess|hal.AccessInputAttachmentRead|colorAccess|depthAccess) != 0 {
			return hal.PipelineStageAllCommands
		}
		if access&shaderAccess != 0 {
			stages |= hal.PipelineStageComputeShader
		}
	case QueueTransfer:
		return hal.PipelineStageAllCommands
	}

	if access&hal.AccessIndirectCommandRead != 0 {
		stages |= hal.PipelineStageDrawIndirect
	}
	if access&transferAccess != 0 {
		stages |= hal.PipelineStageTransfer
	}
	if access&hostAccess != 0 {
		stages |= hal.PipelineStageHost
	}
	if stages == 0 {
		stages = hal.PipelineStageTopOfPipe
	}

	return stages
}

func (c *CommandBuffer) queueFamilies(acquire, release bool, other QueueType) (src, dst int, err error) {
	if !acquire && !release {
		return hal.QueueFamilyIgnored, hal.QueueFamilyIgnored, nil
	}

	otherQueue := c.device.Queue(other)
	err = c.device.assertf(otherQueue != nil, "ownership transfer with a %s queue, which the device does not have", other)
	if err != nil {
		return 0, 0, err
	}

	if acquire {
		return otherQueue.FamilyIndex(), c.queue.FamilyIndex(), nil
	}
	return c.queue.FamilyIndex(), otherQueue.FamilyIndex(), nil
}

// InsertBarrier records one pipeline barrier covering every buffer and image transition. The
// stage masks are derived from the combined access masks for this command buffer's queue.
func (c *CommandBuffer) InsertBarrier(buffers []BufferBarrier, images []ImageBarrier) error {
	err := c.assertRecording("InsertBarrier")
	if err != nil {
		return err
	}

	var srcAccess, dstAccess hal.AccessFlags
	bufferBarriers := make([]hal.BufferMemoryBarrier, 0, len(buffers))
	imageBarriers := make([]hal.ImageMemoryBarrier, 0, len(images))

	for _, barrier := range buffers {
		err = c.device.assertf(barrier.Buffer != nil, "buffer barriers require a buffer")
		if err != nil {
			return err
		}

		native := hal.BufferMemoryBarrier{
			SrcAccessMask: barrier.CurrentState.AccessFlags(),
			DstAccessMask: barrier.NewState.AccessFlags(),
			Buffer:        barrier.Buffer.native,
			Offset:        0,
			Size:          hal.WholeSize,
		}
		if barrier.CurrentState == ResourceStateUnorderedAccess && barrier.NewState == ResourceStateUnorderedAccess {
			native.SrcAccessMask = hal.AccessShaderWrite
			native.DstAccessMask = hal.AccessShaderWrite | hal.AccessShaderRead
		}

		native.SrcQueueFamilyIndex, native.DstQueueFamilyIndex, err = c.queueFamilies(barrier.Acquire, barrier.Release, barrier.Queue)
		if err != nil {
			return err
		}

		srcAccess |= native.SrcAccessMask
		dstAccess |= native.DstAccessMask
		bufferBarriers = append(bufferBarriers, native)
	}

	for _, barrier := range images {
		err = c.device.assertf(barrier.Image != nil, "image barriers require an image")
		if err != nil {
			return err
		}

		native := hal.ImageMemoryBarrier{
			SrcAccessMask: barrier.CurrentState.AccessFlags(),
			DstAccessMask: barrier.NewState.AccessFlags(),
			OldLayout:     barrier.CurrentState.ImageLayout(),
			NewLayout:     barrier.NewState.ImageLayout(),
			Image:         barrier.Image.native,
			SubresourceRange: hal.ImageSubresourceRange{
				AspectMask: barrier.Image.Format().Aspects(),
				LevelCount: hal.RemainingMipLevels,
				LayerCount: hal.RemainingArrayLayers,
			},
		}
		if barrier.CurrentState == ResourceStateUnorderedAccess && barrier.NewState == ResourceStateUnorderedAccess {
			native.SrcAccessMask = hal.AccessShaderWrite
			native.DstAccessMask = hal.AccessShaderWrite | hal.AccessShaderRead
			native.OldLayout = hal.ImageLayoutGeneral
			native.NewLayout = hal.ImageLayoutGeneral
		}
		if barrier.SubresourceBarrier {
			native.SubresourceRange.BaseMipLevel = barrier.MipLevel
			native.SubresourceRange.LevelCount = 1
			native.SubresourceRange.BaseArrayLayer = barrier.ArrayLayer
			native.SubresourceRange.LayerCount = 1
		}

		// An image with undefined contents has nothing to hand over.
		native.SrcQueueFamilyIndex, native.DstQueueFamilyIndex = hal.QueueFamilyIgnored, hal.QueueFamilyIgnored
		if barrier.CurrentState != ResourceStateUndefined {
			native.SrcQueueFamilyIndex, native.DstQueueFamilyIndex, err = c.queueFamilies(barrier.Acquire, barrier.Release, barrier.Queue)
			if err != nil {
				return err
			}
		}

		srcAccess |= native.SrcAccessMask
		dstAccess |= native.DstAccessMask
		imageBarriers = append(imageBarriers, native)
	}

	if len(bufferBarriers) == 0 && len(imageBarriers) == 0 {
		return nil
	}

	features := c.device.features.Enabled
	srcStages := derivePipelineStages(srcAccess, c.queue.queueType, features)
	dstStages := derivePipelineStages(dstAccess, c.queue.queueType, features)

	c.record("Barrier(%d buffers, %d images)", len(bufferBarriers), len(imageBarriers))
	return c.driver.CmdPipelineBarrier(c.native, srcStages, dstStages, bufferBarriers, imageBarriers)
}

// TransitionImageLayout moves mip level 0, layer 0 of image from currentState to newState.
func (c *CommandBuffer) TransitionImageLayout(image *Image, currentState, newState ResourceState) error {
	return c.InsertBarrier(nil, []ImageBarrier{{
		Image:              image,
		CurrentState:       currentState,
		NewState:           newState,
		SubresourceBarrier: true,
	}})
}
