package gpu

import (
	"io"
	"log/slog"
	"testing"
	"time"
	"unsafe"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/forge/fatal"
	"github.com/vkngwrapper/forge/hal"
	"github.com/vkngwrapper/forge/hal/mocks"
	"github.com/vkngwrapper/forge/result"
	"go.uber.org/mock/gomock"
)

type DeviceSetup struct {
	Features      hal.PhysicalDeviceFeatures
	Limits        hal.DeviceLimits
	MemoryTypes   []hal.MemoryType
	QueueFamilies []hal.QueueFamilyProperties
	Options       CreateOptions
	PreNewMock    func(driver *mocks.MockDevice)
}

func requiredFeatures() hal.PhysicalDeviceFeatures {
	return hal.PhysicalDeviceFeatures{
		ShaderObject:          true,
		DynamicRendering:      true,
		ExtendedDynamicState3: true,
		DescriptorIndexing:    true,
		BufferDeviceAddress:   true,
	}
}

func testOptions() CreateOptions {
	options := DefaultCreateOptions()
	options.ErrorHandler = fatal.Discard()
	options.CreateSamplerPresets = false
	options.Bindless.Enabled = false
	options.QueryPools = QueryPoolAllocationConfig{}
	return options
}

func defaultDeviceSetup() DeviceSetup {
	return DeviceSetup{
		Features: requiredFeatures(),
		Limits: hal.DeviceLimits{
			MaxImageDimension2D:             16384,
			MaxPushConstantsSize:            128,
			MaxBoundDescriptorSets:          8,
			MaxSamplerAnisotropy:            16,
			MinUniformBufferOffsetAlignment: 64,
			MinStorageBufferOffsetAlignment: 16,
			NonCoherentAtomSize:             64,
			TimestampPeriod:                 1,
		},
		MemoryTypes: []hal.MemoryType{
			{PropertyFlags: hal.MemoryPropertyDeviceLocal, HeapIndex: 0},
			{PropertyFlags: hal.MemoryPropertyHostVisible | hal.MemoryPropertyHostCoherent, HeapIndex: 1},
		},
		QueueFamilies: []hal.QueueFamilyProperties{
			{QueueFlags: hal.QueueGraphics | hal.QueueCompute | hal.QueueTransfer, QueueCount: 1, TimestampValidBits: 64},
		},
		Options: testOptions(),
	}
}

func readyDevice(t *testing.T, ctrl *gomock.Controller, setup DeviceSetup) (*mocks.MockDevice, *Device) {
	driver := mocks.NewMockDevice(ctrl)
	driver.EXPECT().Features().Return(setup.Features).AnyTimes()
	driver.EXPECT().Properties().Return(hal.PhysicalDeviceProperties{
		DeviceName: "Mock Device",
		Limits:     setup.Limits,
	}).AnyTimes()
	driver.EXPECT().MemoryProperties().Return(hal.MemoryProperties{
		MemoryTypes: setup.MemoryTypes,
		MemoryHeaps: []hal.MemoryHeap{
			{Size: 1 << 30, Flags: hal.MemoryHeapDeviceLocal},
			{Size: 1 << 28},
		},
	}).AnyTimes()
	driver.EXPECT().QueueFamilies().Return(setup.QueueFamilies).AnyTimes()
	driver.EXPECT().GetQueue(gomock.Any(), 0).DoAndReturn(func(familyIndex, queueIndex int) hal.Queue {
		return hal.Queue(100 + familyIndex)
	}).AnyTimes()

	if setup.PreNewMock != nil {
		setup.PreNewMock(driver)
	}

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	device, err := NewDevice(logger, driver, setup.Options)
	require.NoError(t, err)

	return driver, device
}

func expectDeviceDestroy(driver *mocks.MockDevice) {
	driver.EXPECT().WaitIdle().Return(nil)
	driver.EXPECT().Destroy()
}

// mockBuffer is the native side of one buffer. data backs host visible memory and is nil for
// device local buffers.
type mockBuffer struct {
	native  hal.Buffer
	memory  hal.DeviceMemory
	address uint64
	data    []byte
}

func expectCreateBuffer(driver *mocks.MockDevice, buffer mockBuffer, size int) {
	driver.EXPECT().CreateBuffer(gomock.Any()).Return(buffer.native, nil)
	driver.EXPECT().GetBufferMemoryRequirements(buffer.native).Return(hal.MemoryRequirements{
		Size:           size,
		Alignment:      16,
		MemoryTypeBits: 0xffffffff,
	})
	driver.EXPECT().AllocateMemory(gomock.Any()).Return(buffer.memory, nil)
	if buffer.data != nil {
		driver.EXPECT().MapMemory(buffer.memory, 0, -1).Return(unsafe.Pointer(&buffer.data[0]), nil)
	}
	driver.EXPECT().BindBufferMemory(buffer.native, buffer.memory, 0).Return(nil)
	driver.EXPECT().GetBufferDeviceAddress(buffer.native).Return(buffer.address, nil)
}

func expectDestroyBuffer(driver *mocks.MockDevice, buffer mockBuffer) {
	driver.EXPECT().DestroyBuffer(buffer.native)
	if buffer.data != nil {
		driver.EXPECT().UnmapMemory(buffer.memory)
	}
	driver.EXPECT().FreeMemory(buffer.memory)
}

func TestNewDeviceMissingCriticalFeature(t *testing.T) {
	ctrl := gomock.NewController(t)

	features := requiredFeatures()
	features.ShaderObject = false

	driver := mocks.NewMockDevice(ctrl)
	driver.EXPECT().Features().Return(features)

	_, err := NewDevice(nil, driver, testOptions())
	require.Error(t, err)
	require.Equal(t, result.FeatureNotPresent, result.CodeOf(err))
}

func TestNewDeviceNoGraphicsQueue(t *testing.T) {
	ctrl := gomock.NewController(t)

	driver := mocks.NewMockDevice(ctrl)
	driver.EXPECT().Features().Return(requiredFeatures())
	driver.EXPECT().Properties().Return(hal.PhysicalDeviceProperties{})
	driver.EXPECT().QueueFamilies().Return([]hal.QueueFamilyProperties{
		{QueueFlags: hal.QueueCompute | hal.QueueTransfer, QueueCount: 1},
	})
	driver.EXPECT().GetQueue(0, 0).Return(hal.Queue(100)).AnyTimes()

	_, err := NewDevice(nil, driver, testOptions())
	require.Error(t, err)
	require.Equal(t, result.FeatureNotPresent, result.CodeOf(err))
}

func TestDeviceQueueFallback(t *testing.T) {
	ctrl := gomock.NewController(t)

	driver, device := readyDevice(t, ctrl, defaultDeviceSetup())

	graphics := device.Queue(QueueGraphics)
	require.NotNil(t, graphics)
	require.Same(t, graphics, device.Queue(QueueCompute))
	require.Same(t, graphics, device.Queue(QueueTransfer))
	require.Nil(t, device.Queue(QueueType(7)))

	expectDeviceDestroy(driver)
	require.NoError(t, device.Destroy())
}

func TestDeviceDedicatedQueues(t *testing.T) {
	ctrl := gomock.NewController(t)

	setup := defaultDeviceSetup()
	setup.QueueFamilies = []hal.QueueFamilyProperties{
		{QueueFlags: hal.QueueGraphics | hal.QueueCompute | hal.QueueTransfer, QueueCount: 1},
		{QueueFlags: hal.QueueCompute | hal.QueueTransfer, QueueCount: 2},
		{QueueFlags: hal.QueueTransfer, QueueCount: 1},
	}
	driver, device := readyDevice(t, ctrl, setup)

	require.Equal(t, 0, device.Queue(QueueGraphics).FamilyIndex())
	require.Equal(t, 1, device.Queue(QueueCompute).FamilyIndex())
	require.Equal(t, 2, device.Queue(QueueTransfer).FamilyIndex())
	require.Equal(t, hal.Queue(102), device.Queue(QueueTransfer).Native())

	expectDeviceDestroy(driver)
	require.NoError(t, device.Destroy())
}

func TestDeviceDestroyTwice(t *testing.T) {
	ctrl := gomock.NewController(t)

	driver, device := readyDevice(t, ctrl, defaultDeviceSetup())

	expectDeviceDestroy(driver)
	require.NoError(t, device.Destroy())

	err := device.Destroy()
	require.Error(t, err)
	require.Equal(t, result.RuntimeError, result.CodeOf(err))
}

func TestCreateDestroyBuffer(t *testing.T) {
	ctrl := gomock.NewController(t)

	driver, device := readyDevice(t, ctrl, defaultDeviceSetup())

	native := mockBuffer{native: 1, memory: 2, address: 0x10000}
	driver.EXPECT().CreateBuffer(hal.BufferCreateInfo{
		Size:  256,
		Usage: hal.BufferUsageVertexBuffer | hal.BufferUsageShaderDeviceAddress,
	}).Return(native.native, nil)
	driver.EXPECT().GetBufferMemoryRequirements(native.native).Return(hal.MemoryRequirements{
		Size:           256,
		Alignment:      16,
		MemoryTypeBits: 0xffffffff,
	})
	driver.EXPECT().AllocateMemory(hal.MemoryAllocateInfo{
		Size:            256,
		MemoryTypeIndex: 0,
		DeviceAddress:   true,
	}).Return(native.memory, nil)
	driver.EXPECT().BindBufferMemory(native.native, native.memory, 0).Return(nil)
	driver.EXPECT().GetBufferDeviceAddress(native.native).Return(native.address, nil)

	buffer, err := device.CreateBuffer(BufferCreateInfo{
		Size:   256,
		Usage:  hal.BufferUsageVertexBuffer,
		Domain: MemoryDomainDevice,
	}, "Vertices")
	require.NoError(t, err)
	require.True(t, buffer.IsValid())
	require.Equal(t, "Vertices", buffer.DebugName())
	require.Equal(t, uint64(0x10000), buffer.DeviceAddress())
	require.Equal(t, 1, device.Stats().Active(ResourceTypeBuffer))
	require.Equal(t, 1, device.Allocator().AllocationCount())

	expectDestroyBuffer(driver, native)
	require.NoError(t, device.DestroyBuffer(buffer))
	require.False(t, buffer.IsValid())
	require.Equal(t, 0, device.Stats().Active(ResourceTypeBuffer))
	require.Equal(t, 0, device.Allocator().AllocationCount())

	err = device.DestroyBuffer(buffer)
	require.Error(t, err)
	require.Equal(t, result.RuntimeError, result.CodeOf(err))

	expectDeviceDestroy(driver)
	require.NoError(t, device.Destroy())
}

func TestCreateBufferZeroSize(t *testing.T) {
	ctrl := gomock.NewController(t)

	driver, device := readyDevice(t, ctrl, defaultDeviceSetup())

	_, err := device.CreateBuffer(BufferCreateInfo{Usage: hal.BufferUsageUniformBuffer}, "Empty")
	require.Error(t, err)

	expectDeviceDestroy(driver)
	require.NoError(t, device.Destroy())
}

func TestCreateImageDefaultView(t *testing.T) {
	ctrl := gomock.NewController(t)

	driver, device := readyDevice(t, ctrl, defaultDeviceSetup())

	driver.EXPECT().CreateImage(hal.ImageCreateInfo{
		ImageType:     hal.ImageType2D,
		Format:        hal.FormatR8G8B8A8Unorm,
		Extent:        hal.Extent3D{Width: 64, Height: 32, Depth: 1},
		MipLevels:     3,
		ArrayLayers:   1,
		Samples:       hal.SampleCount1,
		Tiling:        hal.ImageTilingOptimal,
		Usage:         hal.ImageUsageSampled | hal.ImageUsageTransferDst,
		InitialLayout: hal.ImageLayoutUndefined,
	}).Return(hal.Image(5), nil)
	driver.EXPECT().GetImageMemoryRequirements(hal.Image(5)).Return(hal.MemoryRequirements{
		Size:           8192,
		Alignment:      256,
		MemoryTypeBits: 0xffffffff,
	})
	driver.EXPECT().AllocateMemory(hal.MemoryAllocateInfo{Size: 8192}).Return(hal.DeviceMemory(6), nil)
	driver.EXPECT().BindImageMemory(hal.Image(5), hal.DeviceMemory(6), 0).Return(nil)
	driver.EXPECT().CreateImageView(hal.ImageViewCreateInfo{
		Image:    5,
		ViewType: hal.ImageViewType2D,
		Format:   hal.FormatR8G8B8A8Unorm,
		SubresourceRange: hal.ImageSubresourceRange{
			AspectMask: hal.ImageAspectColor,
			LevelCount: 3,
			LayerCount: 1,
		},
	}).Return(hal.ImageView(7), nil)

	image, err := device.CreateImage(ImageCreateInfo{
		Extent:    hal.Extent3D{Width: 64, Height: 32},
		Usage:     hal.ImageUsageSampled | hal.ImageUsageTransferDst,
		ImageType: hal.ImageType2D,
		Format:    hal.FormatR8G8B8A8Unorm,
		MipLevels: 3,
	}, "Albedo")
	require.NoError(t, err)
	require.NotNil(t, image.View())
	require.Equal(t, hal.ImageView(7), image.View().Native())
	require.Equal(t, 1, image.Depth())
	require.Equal(t, 1, image.ArraySize())

	err = device.DestroyImageView(image.View())
	require.Error(t, err)

	driver.EXPECT().DestroyImageView(hal.ImageView(7))
	driver.EXPECT().DestroyImage(hal.Image(5))
	driver.EXPECT().FreeMemory(hal.DeviceMemory(6))
	require.NoError(t, device.DestroyImage(image))
	require.Equal(t, 0, device.Stats().Active(ResourceTypeImageView))

	expectDeviceDestroy(driver)
	require.NoError(t, device.Destroy())
}

func TestCreateDepthImageViewAspect(t *testing.T) {
	ctrl := gomock.NewController(t)

	driver, device := readyDevice(t, ctrl, defaultDeviceSetup())

	driver.EXPECT().CreateImage(gomock.Any()).Return(hal.Image(5), nil)
	driver.EXPECT().GetImageMemoryRequirements(hal.Image(5)).Return(hal.MemoryRequirements{
		Size:           4096,
		Alignment:      256,
		MemoryTypeBits: 0xffffffff,
	})
	driver.EXPECT().AllocateMemory(gomock.Any()).Return(hal.DeviceMemory(6), nil)
	driver.EXPECT().BindImageMemory(hal.Image(5), hal.DeviceMemory(6), 0).Return(nil)

	var viewInfo hal.ImageViewCreateInfo
	driver.EXPECT().CreateImageView(gomock.Any()).DoAndReturn(func(info hal.ImageViewCreateInfo) (hal.ImageView, error) {
		viewInfo = info
		return hal.ImageView(7), nil
	})

	image, err := device.CreateImage(ImageCreateInfo{
		Extent:    hal.Extent3D{Width: 32, Height: 32},
		Usage:     hal.ImageUsageDepthStencilAttachment,
		ImageType: hal.ImageType2D,
		Format:    hal.FormatD24UnormS8Uint,
	}, "Depth")
	require.NoError(t, err)
	require.Equal(t, hal.ImageAspectDepth, viewInfo.SubresourceRange.AspectMask)

	// Left for teardown to release.
	driver.EXPECT().DestroyImageView(hal.ImageView(7))
	driver.EXPECT().DestroyImage(hal.Image(5))
	driver.EXPECT().FreeMemory(hal.DeviceMemory(6))
	expectDeviceDestroy(driver)
	require.NoError(t, device.Destroy())
	require.False(t, image.IsValid())
	require.Equal(t, 0, device.Stats().Active(ResourceTypeImage))
}

func TestCreateImageInvalid(t *testing.T) {
	ctrl := gomock.NewController(t)

	driver, device := readyDevice(t, ctrl, defaultDeviceSetup())

	_, err := device.CreateImage(ImageCreateInfo{
		Extent: hal.Extent3D{Width: 0, Height: 32},
		Usage:  hal.ImageUsageSampled,
		Format: hal.FormatR8G8B8A8Unorm,
	}, "NoWidth")
	require.Error(t, err)

	_, err = device.CreateImage(ImageCreateInfo{
		Extent: hal.Extent3D{Width: 32, Height: 32},
		Usage:  hal.ImageUsageSampled,
	}, "NoFormat")
	require.Error(t, err)

	expectDeviceDestroy(driver)
	require.NoError(t, device.Destroy())
}

func TestCreatePipelineLayoutPushConstants(t *testing.T) {
	ctrl := gomock.NewController(t)

	driver, device := readyDevice(t, ctrl, defaultDeviceSetup())

	_, err := device.CreatePipelineLayout(PipelineLayoutCreateInfo{
		PushConstantRange: hal.PushConstantRange{StageFlags: hal.ShaderStageAll, Offset: 64, Size: 128},
	}, "TooLarge")
	require.Error(t, err)

	_, err = device.CreatePipelineLayout(PipelineLayoutCreateInfo{
		PushConstantRange: hal.PushConstantRange{StageFlags: hal.ShaderStageAll, Offset: 2, Size: 16},
	}, "Misaligned")
	require.Error(t, err)

	driver.EXPECT().CreatePipelineLayout(hal.PipelineLayoutCreateInfo{
		SetLayouts: []hal.DescriptorSetLayout{},
	}).Return(hal.PipelineLayout(9), nil)

	layout, err := device.CreatePipelineLayout(PipelineLayoutCreateInfo{}, "Empty")
	require.NoError(t, err)
	require.Equal(t, 0, layout.SetLayoutCount())
	require.Nil(t, layout.SetLayout(0))

	driver.EXPECT().DestroyPipelineLayout(hal.PipelineLayout(9))
	require.NoError(t, device.DestroyPipelineLayout(layout))

	expectDeviceDestroy(driver)
	require.NoError(t, device.Destroy())
}

func TestProgramType(t *testing.T) {
	testCases := []struct {
		name     string
		stages   hal.ShaderStageFlags
		expected PipelineType
	}{
		{"Compute", hal.ShaderStageCompute, PipelineTypeCompute},
		{"VertexFragment", hal.ShaderStageVertex | hal.ShaderStageFragment, PipelineTypeGeometry},
		{"Geometry", hal.ShaderStageVertex | hal.ShaderStageGeometry | hal.ShaderStageFragment, PipelineTypeGeometry},
		{"Tessellation", hal.ShaderStageVertex | tessellationStages | hal.ShaderStageFragment, PipelineTypeGeometry},
		{"HalfTessellation", hal.ShaderStageVertex | hal.ShaderStageTessellationControl | hal.ShaderStageFragment, PipelineTypeUndefined},
		{"Mesh", hal.ShaderStageMesh | hal.ShaderStageFragment, PipelineTypeMesh},
		{"TaskMesh", hal.ShaderStageTask | hal.ShaderStageMesh | hal.ShaderStageFragment, PipelineTypeMesh},
		{"TaskWithoutMesh", hal.ShaderStageTask | hal.ShaderStageFragment, PipelineTypeUndefined},
		{"VertexOnly", hal.ShaderStageVertex, PipelineTypeUndefined},
		{"ComputeAndVertex", hal.ShaderStageCompute | hal.ShaderStageVertex | hal.ShaderStageFragment, PipelineTypeUndefined},
		{"MeshAndVertex", hal.ShaderStageVertex | hal.ShaderStageMesh | hal.ShaderStageFragment, PipelineTypeUndefined},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			require.Equal(t, testCase.expected, programType(testCase.stages))
		})
	}
}

func createTestLayout(t *testing.T, driver *mocks.MockDevice, device *Device, native hal.PipelineLayout) *PipelineLayout {
	driver.EXPECT().CreatePipelineLayout(gomock.Any()).Return(native, nil)
	layout, err := device.CreatePipelineLayout(PipelineLayoutCreateInfo{
		PushConstantRange: hal.PushConstantRange{StageFlags: hal.ShaderStageAll, Size: 64},
	}, "Layout")
	require.NoError(t, err)
	return layout
}

func createTestShader(t *testing.T, device *Device, stage hal.ShaderStageFlags) *Shader {
	shader, err := device.CreateShader(ShaderCreateInfo{
		Stage: stage,
		Code:  []uint32{0x07230203, uint32(stage)},
	}, stage.String())
	require.NoError(t, err)
	return shader
}

func TestCreateProgramLinksStages(t *testing.T) {
	ctrl := gomock.NewController(t)

	driver, device := readyDevice(t, ctrl, defaultDeviceSetup())
	layout := createTestLayout(t, driver, device, 9)

	fragment := createTestShader(t, device, hal.ShaderStageFragment)
	vertex := createTestShader(t, device, hal.ShaderStageVertex)
	require.Equal(t, "main", vertex.EntryPoint())

	var created []hal.ShaderCreateInfo
	driver.EXPECT().CreateShader(gomock.Any()).DoAndReturn(func(info hal.ShaderCreateInfo) (hal.Shader, error) {
		created = append(created, info)
		return hal.Shader(20 + len(created)), nil
	}).Times(2)

	program, err := device.CreateProgram(ProgramCreateInfo{
		Shaders:        []*Shader{fragment, vertex},
		PipelineLayout: layout,
	}, "Forward")
	require.NoError(t, err)
	require.Equal(t, PipelineTypeGeometry, program.PipelineType())
	require.Equal(t, []hal.ShaderStageFlags{hal.ShaderStageVertex, hal.ShaderStageFragment}, program.Stages())

	require.Len(t, created, 2)
	require.Equal(t, hal.ShaderStageVertex, created[0].Stage)
	require.Equal(t, hal.ShaderStageFragment, created[0].NextStage)
	require.Equal(t, hal.ShaderStageFragment, created[1].Stage)
	require.Equal(t, hal.ShaderStageFlags(0), created[1].NextStage)
	require.Equal(t, []hal.PushConstantRange{{StageFlags: hal.ShaderStageAll, Size: 64}}, created[0].PushConstantRanges)
	require.Equal(t, hal.Shader(21), program.ShaderObject(hal.ShaderStageVertex))
	require.Equal(t, hal.Shader(0), program.ShaderObject(hal.ShaderStageCompute))

	driver.EXPECT().DestroyShader(hal.Shader(21))
	driver.EXPECT().DestroyShader(hal.Shader(22))
	require.NoError(t, device.DestroyProgram(program))
	require.True(t, vertex.IsValid())
	require.True(t, layout.IsValid())

	require.Error(t, device.DestroyProgram(program))

	driver.EXPECT().DestroyPipelineLayout(hal.PipelineLayout(9))
	expectDeviceDestroy(driver)
	require.NoError(t, device.Destroy())
	require.False(t, vertex.IsValid())
	require.Empty(t, device.Stats().Leaks())
}

func TestCreateProgramRejectsCombinations(t *testing.T) {
	ctrl := gomock.NewController(t)

	driver, device := readyDevice(t, ctrl, defaultDeviceSetup())
	layout := createTestLayout(t, driver, device, 9)

	vertex := createTestShader(t, device, hal.ShaderStageVertex)
	secondVertex := createTestShader(t, device, hal.ShaderStageVertex)
	compute := createTestShader(t, device, hal.ShaderStageCompute)
	mesh := createTestShader(t, device, hal.ShaderStageMesh)
	fragment := createTestShader(t, device, hal.ShaderStageFragment)

	_, err := device.CreateProgram(ProgramCreateInfo{
		Shaders:        []*Shader{vertex, secondVertex},
		PipelineLayout: layout,
	}, "Duplicate")
	require.Error(t, err)
	require.Equal(t, result.RuntimeError, result.CodeOf(err))

	_, err = device.CreateProgram(ProgramCreateInfo{
		Shaders:        []*Shader{vertex, compute},
		PipelineLayout: layout,
	}, "Mixed")
	require.Error(t, err)
	require.Equal(t, result.RuntimeError, result.CodeOf(err))

	_, err = device.CreateProgram(ProgramCreateInfo{
		Shaders:        []*Shader{mesh, fragment},
		PipelineLayout: layout,
	}, "Mesh")
	require.Error(t, err)
	require.Equal(t, result.FeatureNotPresent, result.CodeOf(err))

	_, err = device.CreateProgram(ProgramCreateInfo{
		Shaders: []*Shader{compute},
	}, "NoLayout")
	require.Error(t, err)

	driver.EXPECT().DestroyPipelineLayout(hal.PipelineLayout(9))
	expectDeviceDestroy(driver)
	require.NoError(t, device.Destroy())
}

func TestCreateProgramShaderFailureRollsBack(t *testing.T) {
	ctrl := gomock.NewController(t)

	driver, device := readyDevice(t, ctrl, defaultDeviceSetup())
	layout := createTestLayout(t, driver, device, 9)

	vertex := createTestShader(t, device, hal.ShaderStageVertex)
	fragment := createTestShader(t, device, hal.ShaderStageFragment)

	driver.EXPECT().CreateShader(gomock.Any()).Return(hal.Shader(21), nil)
	driver.EXPECT().CreateShader(gomock.Any()).Return(hal.Shader(0), result.New(result.OutOfMemory, "out of device memory"))
	driver.EXPECT().DestroyShader(hal.Shader(21))

	_, err := device.CreateProgram(ProgramCreateInfo{
		Shaders:        []*Shader{vertex, fragment},
		PipelineLayout: layout,
	}, "Broken")
	require.Error(t, err)
	require.Equal(t, 0, device.Stats().Active(ResourceTypeShaderProgram))

	driver.EXPECT().DestroyPipelineLayout(hal.PipelineLayout(9))
	expectDeviceDestroy(driver)
	require.NoError(t, device.Destroy())
}

func TestCreateShaderRequiresOneStage(t *testing.T) {
	ctrl := gomock.NewController(t)

	driver, device := readyDevice(t, ctrl, defaultDeviceSetup())

	_, err := device.CreateShader(ShaderCreateInfo{
		Stage: hal.ShaderStageVertex | hal.ShaderStageFragment,
		Code:  []uint32{1},
	}, "TwoStages")
	require.Error(t, err)

	_, err = device.CreateShader(ShaderCreateInfo{Stage: hal.ShaderStageVertex}, "NoCode")
	require.Error(t, err)

	expectDeviceDestroy(driver)
	require.NoError(t, device.Destroy())
}

func TestCreateDescriptorSetLayoutValidation(t *testing.T) {
	ctrl := gomock.NewController(t)

	driver, device := readyDevice(t, ctrl, defaultDeviceSetup())

	_, err := device.CreateDescriptorSetLayout(DescriptorSetLayoutCreateInfo{
		Bindings: []hal.DescriptorSetLayoutBinding{
			{Binding: 1, DescriptorType: hal.DescriptorTypeUniformBuffer, DescriptorCount: 1},
			{Binding: 1, DescriptorType: hal.DescriptorTypeSampler, DescriptorCount: 1},
		},
	}, "Twice")
	require.Error(t, err)

	_, err = device.CreateDescriptorSetLayout(DescriptorSetLayoutCreateInfo{
		Bindings: []hal.DescriptorSetLayoutBinding{
			{Binding: MaxBindings, DescriptorType: hal.DescriptorTypeUniformBuffer, DescriptorCount: 1},
		},
	}, "OutOfRange")
	require.Error(t, err)

	_, err = device.CreateDescriptorSetLayout(DescriptorSetLayoutCreateInfo{}, "Empty")
	require.Error(t, err)

	expectDeviceDestroy(driver)
	require.NoError(t, device.Destroy())
}

func TestExecuteCommand(t *testing.T) {
	ctrl := gomock.NewController(t)

	setup := defaultDeviceSetup()
	setup.Options.EnableBreadcrumbs = true
	driver, device := readyDevice(t, ctrl, setup)

	driver.EXPECT().CreateCommandPool(hal.CommandPoolCreateInfo{
		Flags:            hal.CommandPoolCreateResetCommandBuffer | hal.CommandPoolCreateTransient,
		QueueFamilyIndex: 0,
	}).Return(hal.CommandPool(30), nil)
	driver.EXPECT().AllocateCommandBuffers(hal.CommandPool(30), 1).Return([]hal.CommandBuffer{31}, nil)
	driver.EXPECT().BeginCommandBuffer(hal.CommandBuffer(31), hal.CommandBufferUsageOneTimeSubmit).Return(nil)
	driver.EXPECT().EndCommandBuffer(hal.CommandBuffer(31)).Return(nil)
	driver.EXPECT().CreateFence(false).Return(hal.Fence(32), nil)
	driver.EXPECT().QueueSubmit(hal.Queue(100), hal.Fence(32), hal.SubmitInfo{
		CommandBuffers: []hal.CommandBuffer{31},
	}).Return(nil)
	driver.EXPECT().WaitForFences(true, time.Duration(1<<63-1), hal.Fence(32)).Return(nil)
	driver.EXPECT().ResetFences(hal.Fence(32)).Return(nil)

	var recorded *CommandBuffer
	err := device.ExecuteCommand(QueueTransfer, func(cmd *CommandBuffer) error {
		recorded = cmd
		require.Equal(t, CommandBufferStateRecording, cmd.State())
		cmd.InsertDebugLabel(hal.DebugLabel{Name: "Upload"})
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, CommandBufferStateExecutable, recorded.State())
	require.Equal(t, []Breadcrumb{{Name: "Upload", Scope: -1, State: BreadcrumbCompleted}}, recorded.Breadcrumbs().Records())
	require.Equal(t, 0, device.CommandBuffers().ActiveCount())

	driver.EXPECT().FreeCommandBuffers(hal.CommandPool(30), hal.CommandBuffer(31))
	driver.EXPECT().DestroyCommandPool(hal.CommandPool(30))
	driver.EXPECT().DestroyFence(hal.Fence(32))
	expectDeviceDestroy(driver)
	require.NoError(t, device.Destroy())
}

func TestExecuteCommandRecordFailure(t *testing.T) {
	ctrl := gomock.NewController(t)

	driver, device := readyDevice(t, ctrl, defaultDeviceSetup())

	driver.EXPECT().CreateCommandPool(gomock.Any()).Return(hal.CommandPool(30), nil)
	driver.EXPECT().AllocateCommandBuffers(hal.CommandPool(30), 1).Return([]hal.CommandBuffer{31}, nil)
	driver.EXPECT().BeginCommandBuffer(hal.CommandBuffer(31), hal.CommandBufferUsageOneTimeSubmit).Return(nil)

	err := device.ExecuteCommand(QueueGraphics, func(cmd *CommandBuffer) error {
		return result.New(result.ArgumentOutOfRange, "bad upload")
	})
	require.Error(t, err)
	require.Equal(t, result.ArgumentOutOfRange, result.CodeOf(err))
	require.Equal(t, 0, device.CommandBuffers().ActiveCount())

	require.Error(t, device.ExecuteCommand(QueueGraphics, nil))

	driver.EXPECT().FreeCommandBuffers(hal.CommandPool(30), hal.CommandBuffer(31))
	driver.EXPECT().DestroyCommandPool(hal.CommandPool(30))
	expectDeviceDestroy(driver)
	require.NoError(t, device.Destroy())
}

func TestTimeQueryResults(t *testing.T) {
	ctrl := gomock.NewController(t)

	setup := defaultDeviceSetup()
	setup.Limits.TimestampPeriod = 2
	driver, device := readyDevice(t, ctrl, setup)

	driver.EXPECT().CreateQueryPool(hal.QueryPoolCreateInfo{
		QueryType:  hal.QueryTypeTimestamp,
		QueryCount: 4,
	}).Return(hal.QueryPool(40), nil)

	pool, err := device.CreateQueryPool(QueryPoolCreateInfo{Type: hal.QueryTypeTimestamp, QueryCount: 4}, "Timings")
	require.NoError(t, err)

	driver.EXPECT().GetQueryPoolResults(hal.QueryPool(40), 0, 1, true).Return([]uint64{1000}, nil).Times(2)
	driver.EXPECT().GetQueryPoolResults(hal.QueryPool(40), 1, 1, true).Return([]uint64{3501000}, nil).Times(2)

	elapsed, err := device.TimeQueryResults(pool, 0, 1, TimeUnitMilliseconds)
	require.NoError(t, err)
	require.InDelta(t, 7.0, elapsed, 1e-9)

	elapsed, err = device.TimeQueryResults(pool, 0, 1, TimeUnitNanoseconds)
	require.NoError(t, err)
	require.InDelta(t, 7000000.0, elapsed, 1e-6)

	_, err = device.TimeQueryResults(pool, 0, 4, TimeUnitSeconds)
	require.Error(t, err)

	driver.EXPECT().DestroyQueryPool(hal.QueryPool(40))
	require.NoError(t, device.DestroyQueryPool(pool))

	expectDeviceDestroy(driver)
	require.NoError(t, device.Destroy())
}

func TestCreateStatisticsQueryPoolWithoutFeature(t *testing.T) {
	ctrl := gomock.NewController(t)

	driver, device := readyDevice(t, ctrl, defaultDeviceSetup())

	_, err := device.CreateQueryPool(QueryPoolCreateInfo{
		Type:               hal.QueryTypePipelineStatistics,
		QueryCount:         4,
		PipelineStatistics: hal.QueryPipelineStatisticVertexShaderInvocations,
	}, "Statistics")
	require.Error(t, err)
	require.Equal(t, result.FeatureNotPresent, result.CodeOf(err))

	expectDeviceDestroy(driver)
	require.NoError(t, device.Destroy())
}

func TestSetDebugObjectName(t *testing.T) {
	ctrl := gomock.NewController(t)

	setup := defaultDeviceSetup()
	setup.Features.DebugUtils = true
	driver, device := readyDevice(t, ctrl, setup)

	driver.EXPECT().SetDebugName(hal.ObjectTypeQueryPool, uint64(40), "Named").Return(nil)
	driver.EXPECT().CreateQueryPool(gomock.Any()).Return(hal.QueryPool(40), nil)
	_, err := device.CreateQueryPool(QueryPoolCreateInfo{Type: hal.QueryTypeOcclusion, QueryCount: 1}, "Named")
	require.NoError(t, err)

	require.NoError(t, device.SetDebugObjectName(hal.ObjectTypeBuffer, 0, "Null"))
	require.NoError(t, device.SetDebugObjectName(hal.ObjectTypeBuffer, 12, ""))

	driver.EXPECT().DestroyQueryPool(hal.QueryPool(40))
	expectDeviceDestroy(driver)
	require.NoError(t, device.Destroy())
}

func TestDeviceDestroyReleasesLeaks(t *testing.T) {
	ctrl := gomock.NewController(t)

	driver, device := readyDevice(t, ctrl, defaultDeviceSetup())

	upload := mockBuffer{native: 1, memory: 2, address: 0x2000, data: make([]byte, 128)}
	expectCreateBuffer(driver, upload, 128)
	_, err := device.CreateBuffer(BufferCreateInfo{
		Size:   128,
		Usage:  hal.BufferUsageTransferSrc,
		Domain: MemoryDomainUpload,
	}, "Staging")
	require.NoError(t, err)
	require.Equal(t, []ResourceType{ResourceTypeBuffer}, device.Stats().Leaks())
	require.Contains(t, device.GenerateReport(), "Potential Leaks")

	expectDestroyBuffer(driver, upload)
	expectDeviceDestroy(driver)
	require.NoError(t, device.Destroy())
	require.Empty(t, device.Stats().Leaks())
	require.Equal(t, 0, device.Allocator().AllocationCount())
}
