package gpu

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/forge/hal"
	"go.uber.org/mock/gomock"
)

func TestResourceStateAccessFlags(t *testing.T) {
	require.Equal(t, hal.AccessFlags(0), ResourceStateUndefined.AccessFlags())
	require.Equal(t, hal.AccessTransferWrite, ResourceStateCopyDest.AccessFlags())
	require.Equal(t, hal.AccessShaderRead|hal.AccessShaderWrite, ResourceStateUnorderedAccess.AccessFlags())
	require.Equal(t, hal.AccessVertexAttributeRead|hal.AccessIndexRead,
		(ResourceStateVertexBuffer | ResourceStateIndexBuffer).AccessFlags())
	require.Equal(t, hal.AccessMemoryRead, ResourceStatePresent.AccessFlags())
}

func TestResourceStateImageLayout(t *testing.T) {
	testCases := []struct {
		state  ResourceState
		layout hal.ImageLayout
	}{
		{ResourceStateUndefined, hal.ImageLayoutUndefined},
		{ResourceStateCopySource, hal.ImageLayoutTransferSrcOptimal},
		{ResourceStateCopyDest, hal.ImageLayoutTransferDstOptimal},
		{ResourceStateRenderTarget, hal.ImageLayoutColorAttachmentOptimal},
		{ResourceStateDepthStencil, hal.ImageLayoutDepthStencilAttachmentOptimal},
		{ResourceStateUnorderedAccess, hal.ImageLayoutGeneral},
		{ResourceStateShaderResource, hal.ImageLayoutShaderReadOnlyOptimal},
		{ResourceStatePresent, hal.ImageLayoutPresentSrc},
		{ResourceStateGeneral, hal.ImageLayoutGeneral},
		// Copy states take priority over shader reads.
		{ResourceStateCopySource | ResourceStateShaderResource, hal.ImageLayoutTransferSrcOptimal},
	}

	for _, testCase := range testCases {
		t.Run(testCase.state.String(), func(t *testing.T) {
			require.Equal(t, testCase.layout, testCase.state.ImageLayout())
		})
	}
}

func TestDerivePipelineStages(t *testing.T) {
	shaderStages := hal.PipelineStageVertexShader | hal.PipelineStageFragmentShader | hal.PipelineStageComputeShader

	testCases := []struct {
		name      string
		access    hal.AccessFlags
		queueType QueueType
		features  hal.PhysicalDeviceFeatures
		stages    hal.PipelineStageFlags
	}{
		{"NoAccess", 0, QueueGraphics, hal.PhysicalDeviceFeatures{}, hal.PipelineStageTopOfPipe},
		{"VertexInput", hal.AccessIndexRead, QueueGraphics, hal.PhysicalDeviceFeatures{}, hal.PipelineStageVertexInput},
		{"ShaderRead", hal.AccessShaderRead, QueueGraphics, hal.PhysicalDeviceFeatures{}, shaderStages},
		{"ShaderReadTessellation", hal.AccessShaderRead, QueueGraphics, hal.PhysicalDeviceFeatures{TessellationShader: true},
			shaderStages | hal.PipelineStageTessellationControlShader | hal.PipelineStageTessellationEvaluationShader},
		{"ShaderReadRayTracing", hal.AccessUniformRead, QueueGraphics, hal.PhysicalDeviceFeatures{RayTracing: true},
			shaderStages | hal.PipelineStageRayTracingShader},
		{"ColorAttachment", hal.AccessColorAttachmentWrite, QueueGraphics, hal.PhysicalDeviceFeatures{}, hal.PipelineStageColorAttachmentOutput},
		{"DepthAttachment", hal.AccessDepthStencilAttachmentWrite, QueueGraphics, hal.PhysicalDeviceFeatures{},
			hal.PipelineStageEarlyFragmentTests | hal.PipelineStageLateFragmentTests},
		{"Transfer", hal.AccessTransferRead, QueueGraphics, hal.PhysicalDeviceFeatures{}, hal.PipelineStageTransfer},
		{"IndirectAndHost", hal.AccessIndirectCommandRead | hal.AccessHostWrite, QueueGraphics, hal.PhysicalDeviceFeatures{},
			hal.PipelineStageDrawIndirect | hal.PipelineStageHost},
		{"ComputeShader", hal.AccessShaderWrite, QueueCompute, hal.PhysicalDeviceFeatures{}, hal.PipelineStageComputeShader},
		{"ComputeTransfer", hal.AccessTransferWrite, QueueCompute, hal.PhysicalDeviceFeatures{}, hal.PipelineStageTransfer},
		{"ComputeGraphicsAccess", hal.AccessColorAttachmentRead, QueueCompute, hal.PhysicalDeviceFeatures{}, hal.PipelineStageAllCommands},
		{"TransferQueue", hal.AccessTransferWrite, QueueTransfer, hal.PhysicalDeviceFeatures{}, hal.PipelineStageAllCommands},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			require.Equal(t, testCase.stages, derivePipelineStages(testCase.access, testCase.queueType, testCase.features))
		})
	}
}

func TestInsertBufferBarrier(t *testing.T) {
	ctrl := gomock.NewController(t)

	driver, device := readyDevice(t, ctrl, defaultDeviceSetup())
	cmd := recordingCommandBuffer(t, driver, device, QueueGraphics)
	buffer := &Buffer{native: 3}

	driver.EXPECT().CmdPipelineBarrier(hal.CommandBuffer(31),
		hal.PipelineStageTransfer,
		hal.PipelineStageVertexShader|hal.PipelineStageFragmentShader|hal.PipelineStageComputeShader,
		[]hal.BufferMemoryBarrier{{
			SrcAccessMask:       hal.AccessTransferWrite,
			DstAccessMask:       hal.AccessShaderRead,
			SrcQueueFamilyIndex: hal.QueueFamilyIgnored,
			DstQueueFamilyIndex: hal.QueueFamilyIgnored,
			Buffer:              3,
			Size:                hal.WholeSize,
		}},
		[]hal.ImageMemoryBarrier{}).Return(nil)

	require.NoError(t, cmd.InsertBarrier([]BufferBarrier{{
		Buffer:       buffer,
		CurrentState: ResourceStateCopyDest,
		NewState:     ResourceStateShaderResource,
	}}, nil))

	// Nothing to transition records nothing.
	require.NoError(t, cmd.InsertBarrier(nil, nil))
	require.Error(t, cmd.InsertBarrier([]BufferBarrier{{NewState: ResourceStateCopyDest}}, nil))

	expectCommandPoolDestroy(driver)
	expectDeviceDestroy(driver)
	require.NoError(t, device.Destroy())
}

func asyncComputeSetup() DeviceSetup {
	setup := defaultDeviceSetup()
	setup.QueueFamilies = []hal.QueueFamilyProperties{
		{QueueFlags: hal.QueueGraphics | hal.QueueCompute | hal.QueueTransfer, QueueCount: 1, TimestampValidBits: 64},
		{QueueFlags: hal.QueueCompute | hal.QueueTransfer, QueueCount: 1, TimestampValidBits: 64},
	}
	return setup
}

func TestInsertUnorderedAccessImageBarrier(t *testing.T) {
	ctrl := gomock.NewController(t)

	driver, device := readyDevice(t, ctrl, asyncComputeSetup())
	cmd := recordingCommandBuffer(t, driver, device, QueueCompute)
	image := &Image{native: 5, info: ImageCreateInfo{Format: hal.FormatR8G8B8A8Unorm}}

	driver.EXPECT().CmdPipelineBarrier(hal.CommandBuffer(31),
		hal.PipelineStageComputeShader,
		hal.PipelineStageComputeShader,
		[]hal.BufferMemoryBarrier{},
		[]hal.ImageMemoryBarrier{{
			SrcAccessMask:       hal.AccessShaderWrite,
			DstAccessMask:       hal.AccessShaderWrite | hal.AccessShaderRead,
			OldLayout:           hal.ImageLayoutGeneral,
			NewLayout:           hal.ImageLayoutGeneral,
			SrcQueueFamilyIndex: hal.QueueFamilyIgnored,
			DstQueueFamilyIndex: hal.QueueFamilyIgnored,
			Image:               5,
			SubresourceRange: hal.ImageSubresourceRange{
				AspectMask: hal.ImageAspectColor,
				LevelCount: hal.RemainingMipLevels,
				LayerCount: hal.RemainingArrayLayers,
			},
		}}).Return(nil)

	require.NoError(t, cmd.InsertBarrier(nil, []ImageBarrier{{
		Image:        image,
		CurrentState: ResourceStateUnorderedAccess,
		NewState:     ResourceStateUnorderedAccess,
	}}))

	expectCommandPoolDestroy(driver)
	expectDeviceDestroy(driver)
	require.NoError(t, device.Destroy())
}

func TestTransitionImageLayout(t *testing.T) {
	ctrl := gomock.NewController(t)

	driver, device := readyDevice(t, ctrl, defaultDeviceSetup())
	cmd := recordingCommandBuffer(t, driver, device, QueueGraphics)
	image := &Image{native: 5, info: ImageCreateInfo{Format: hal.FormatD24UnormS8Uint}}

	driver.EXPECT().CmdPipelineBarrier(hal.CommandBuffer(31),
		hal.PipelineStageTopOfPipe,
		hal.PipelineStageEarlyFragmentTests|hal.PipelineStageLateFragmentTests,
		[]hal.BufferMemoryBarrier{},
		[]hal.ImageMemoryBarrier{{
			DstAccessMask:       hal.AccessDepthStencilAttachmentWrite,
			OldLayout:           hal.ImageLayoutUndefined,
			NewLayout:           hal.ImageLayoutDepthStencilAttachmentOptimal,
			SrcQueueFamilyIndex: hal.QueueFamilyIgnored,
			DstQueueFamilyIndex: hal.QueueFamilyIgnored,
			Image:               5,
			SubresourceRange: hal.ImageSubresourceRange{
				AspectMask: hal.ImageAspectDepth | hal.ImageAspectStencil,
				LevelCount: 1,
				LayerCount: 1,
			},
		}}).Return(nil)

	require.NoError(t, cmd.TransitionImageLayout(image, ResourceStateUndefined, ResourceStateDepthStencil))

	expectCommandPoolDestroy(driver)
	expectDeviceDestroy(driver)
	require.NoError(t, device.Destroy())
}

func TestQueueOwnershipTransfer(t *testing.T) {
	ctrl := gomock.NewController(t)

	driver, device := readyDevice(t, ctrl, asyncComputeSetup())
	require.Equal(t, 1, device.Queue(QueueCompute).FamilyIndex())

	cmd := recordingCommandBuffer(t, driver, device, QueueGraphics)
	buffer := &Buffer{native: 3}
	image := &Image{native: 5, info: ImageCreateInfo{Format: hal.FormatR8G8B8A8Unorm}}

	var buffers []hal.BufferMemoryBarrier
	var images []hal.ImageMemoryBarrier
	driver.EXPECT().CmdPipelineBarrier(hal.CommandBuffer(31), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(cb hal.CommandBuffer, src, dst hal.PipelineStageFlags, bufferBarriers []hal.BufferMemoryBarrier, imageBarriers []hal.ImageMemoryBarrier) error {
			buffers = bufferBarriers
			images = imageBarriers
			return nil
		})

	require.NoError(t, cmd.InsertBarrier(
		[]BufferBarrier{{
			Buffer:       buffer,
			CurrentState: ResourceStateUnorderedAccess,
			NewState:     ResourceStateVertexBuffer,
			Acquire:      true,
			Queue:        QueueCompute,
		}},
		[]ImageBarrier{
			{
				Image:        image,
				CurrentState: ResourceStateShaderResource,
				NewState:     ResourceStateUnorderedAccess,
				Release:      true,
				Queue:        QueueCompute,
			},
			{
				Image:    image,
				NewState: ResourceStateCopyDest,
				Release:  true,
				Queue:    QueueCompute,
			},
		}))

	require.Len(t, buffers, 1)
	require.Equal(t, 1, buffers[0].SrcQueueFamilyIndex)
	require.Equal(t, 0, buffers[0].DstQueueFamilyIndex)

	require.Len(t, images, 2)
	require.Equal(t, 0, images[0].SrcQueueFamilyIndex)
	require.Equal(t, 1, images[0].DstQueueFamilyIndex)
	// Undefined contents are never handed over.
	require.Equal(t, hal.QueueFamilyIgnored, images[1].SrcQueueFamilyIndex)
	require.Equal(t, hal.QueueFamilyIgnored, images[1].DstQueueFamilyIndex)

	expectCommandPoolDestroy(driver)
	expectDeviceDestroy(driver)
	require.NoError(t, device.Destroy())
}
