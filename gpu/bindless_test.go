package gpu

import (
	"encoding/binary"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/forge/hal"
	"github.com/vkngwrapper/forge/hal/mocks"
	"github.com/vkngwrapper/forge/result"
	"go.uber.org/mock/gomock"
)

func bindlessDeviceSetup(addressTable mockBuffer) DeviceSetup {
	setup := defaultDeviceSetup()
	setup.Options.Bindless = BindlessOptions{
		Enabled:          true,
		MaxImages:        4,
		MaxSamplers:      2,
		AddressTableSize: len(addressTable.data),
	}
	setup.PreNewMock = func(driver *mocks.MockDevice) {
		driver.EXPECT().CreateDescriptorSetLayout(gomock.Any()).Return(hal.DescriptorSetLayout(80), nil)
		driver.EXPECT().CreateDescriptorSetLayout(gomock.Any()).Return(hal.DescriptorSetLayout(81), nil)
		driver.EXPECT().CreateDescriptorPool(gomock.Any()).Return(hal.DescriptorPool(90), nil)
		driver.EXPECT().AllocateDescriptorSet(hal.DescriptorPool(90), hal.DescriptorSetLayout(80)).Return(hal.DescriptorSet(95), nil)
		driver.EXPECT().CreateDescriptorPool(gomock.Any()).Return(hal.DescriptorPool(91), nil)
		driver.EXPECT().AllocateDescriptorSet(hal.DescriptorPool(91), hal.DescriptorSetLayout(81)).Return(hal.DescriptorSet(96), nil)
		expectCreateBuffer(driver, addressTable, len(addressTable.data))
		driver.EXPECT().UpdateDescriptorSets(hal.WriteDescriptorSet{
			DstSet:         96,
			DstBinding:     bindlessAddressBinding,
			DescriptorType: hal.DescriptorTypeStorageBuffer,
			BufferInfo:     []hal.DescriptorBufferInfo{{Buffer: addressTable.native, Range: hal.WholeSize}},
		}).Return(nil)
		driver.EXPECT().CreatePipelineLayout(gomock.Any()).Return(hal.PipelineLayout(85), nil)
	}
	return setup
}

func expectBindlessClear(driver *mocks.MockDevice, addressTable mockBuffer) {
	expectDestroyBuffer(driver, addressTable)
	driver.EXPECT().DestroyPipelineLayout(hal.PipelineLayout(85))
	driver.EXPECT().DestroyDescriptorPool(hal.DescriptorPool(91))
	driver.EXPECT().DestroyDescriptorSetLayout(hal.DescriptorSetLayout(81))
	driver.EXPECT().DestroyDescriptorPool(hal.DescriptorPool(90))
	driver.EXPECT().DestroyDescriptorSetLayout(hal.DescriptorSetLayout(80))
}

func handleWrite(buffer hal.Buffer) hal.WriteDescriptorSet {
	return hal.WriteDescriptorSet{
		DstSet:         95,
		DstBinding:     0,
		DescriptorType: hal.DescriptorTypeUniformBufferDynamic,
		BufferInfo:     []hal.DescriptorBufferInfo{{Buffer: buffer, Range: hal.WholeSize}},
	}
}

func TestDataBuilder(t *testing.T) {
	_, err := NewDataBuilder(3)
	require.Error(t, err)

	builder, err := NewDataBuilder(4)
	require.NoError(t, err)

	require.Equal(t, 0, builder.AddBytes([]byte{1, 2}))
	require.Equal(t, 4, builder.AddUint32(0x0a0b0c0d))
	require.Equal(t, 8, builder.AddBytes([]byte{7}))
	require.Equal(t, 9, builder.Size())
	require.Equal(t, []byte{1, 2, 0, 0, 0x0d, 0x0c, 0x0b, 0x0a, 7}, builder.Data())

	builder.Reset()
	require.Equal(t, 0, builder.Size())
	require.Equal(t, 0, builder.AddUint32(5))
}

func TestValidHandleName(t *testing.T) {
	require.True(t, validHandleName("albedo"))
	require.True(t, validHandleName("_shadow_map2"))
	require.False(t, validHandleName(""))
	require.False(t, validHandleName("2d"))
	require.False(t, validHandleName("light-buffer"))
	require.False(t, validHandleName("name with space"))
}

func TestBindlessHandles(t *testing.T) {
	ctrl := gomock.NewController(t)

	addressTable := mockBuffer{native: 70, memory: 170, data: make([]byte, 32)}
	driver, device := readyDevice(t, ctrl, bindlessDeviceSetup(addressTable))
	bindless := device.Bindless()
	require.NotNil(t, bindless)
	require.True(t, bindless.ResourceLayout().IsBindless())
	require.False(t, bindless.HandleLayout().IsBindless())
	require.Nil(t, bindless.HandleBuffer())

	positions, positionsMock := createDeviceBuffer(t, driver, device, 1, hal.BufferUsageStorageBuffer)
	normals, normalsMock := createDeviceBuffer(t, driver, device, 2, hal.BufferUsageStorageBuffer)

	id, err := bindless.UpdateBuffer(positions)
	require.NoError(t, err)
	require.Equal(t, HandleID(0), id)
	id, err = bindless.UpdateBuffer(normals)
	require.NoError(t, err)
	require.Equal(t, HandleID(1), id)
	id, err = bindless.UpdateBuffer(positions)
	require.NoError(t, err)
	require.Equal(t, HandleID(0), id)

	require.Equal(t, positions.DeviceAddress(), binary.LittleEndian.Uint64(addressTable.data[0:]))
	require.Equal(t, normals.DeviceAddress(), binary.LittleEndian.Uint64(addressTable.data[8:]))

	driver.EXPECT().CreateSampler(gomock.Any()).Return(hal.Sampler(7), nil)
	sampler, err := device.CreateSampler(DefaultSamplerCreateInfo(), "Linear")
	require.NoError(t, err)

	offset, err := bindless.UpdateNamed("linearSampler", sampler)
	require.NoError(t, err)
	require.Equal(t, 0, offset)
	offset, err = bindless.UpdateNamed("normals", normals)
	require.NoError(t, err)
	require.Equal(t, 4, offset)
	offset, err = bindless.UpdateNamed("normals", normals)
	require.NoError(t, err)
	require.Equal(t, 4, offset)

	_, err = bindless.UpdateNamed("normals", positions)
	require.Error(t, err)
	require.Equal(t, result.RuntimeError, result.CodeOf(err))
	_, err = bindless.UpdateNamed("2normals", positions)
	require.Error(t, err)
	require.Equal(t, result.ArgumentOutOfRange, result.CodeOf(err))

	require.Equal(t, 1, bindless.PendingUpdateCount())

	source := bindless.GenerateHandleSource()
	require.Contains(t, source, "struct HandleData\n{\n    uint linearSampler;\n    uint normals;\n};")
	require.Contains(t, source, "[[vk::binding(0, 1)]] ConstantBuffer<HandleData> handleData;")
	require.Contains(t, source, "Sampler linearSampler() { return Sampler(handleData.linearSampler); }")
	require.Contains(t, source, "Buffer normals() { return Buffer(handleData.normals); }")

	handles := mockBuffer{native: 71, memory: 171, data: make([]byte, 8)}
	expectCreateBuffer(driver, handles, 8)
	driver.EXPECT().UpdateDescriptorSets(handleWrite(71)).Return(nil)
	driver.EXPECT().UpdateDescriptorSets(hal.WriteDescriptorSet{
		DstSet:         96,
		DstBinding:     bindlessSamplerBinding,
		DescriptorType: hal.DescriptorTypeSampler,
		ImageInfo:      []hal.DescriptorImageInfo{{Sampler: 7}},
	}).Return(nil)
	require.NoError(t, bindless.build())

	require.Equal(t, []byte{0, 0, 0, 0, 1, 0, 0, 0}, handles.data)
	require.Equal(t, hal.Buffer(71), bindless.HandleBuffer().Native())
	require.Equal(t, uint64(1), bindless.handleGeneration())
	require.Equal(t, 0, bindless.PendingUpdateCount())

	// Nothing changed, so nothing is rebuilt.
	require.NoError(t, bindless.build())
	require.Equal(t, uint64(1), bindless.handleGeneration())

	// A new name replaces the handle buffer.
	offset, err = bindless.UpdateNamed("positions", positions)
	require.NoError(t, err)
	require.Equal(t, 8, offset)

	grown := mockBuffer{native: 72, memory: 172, data: make([]byte, 12)}
	expectDestroyBuffer(driver, handles)
	expectCreateBuffer(driver, grown, 12)
	driver.EXPECT().UpdateDescriptorSets(handleWrite(72)).Return(nil)
	require.NoError(t, bindless.build())
	require.Equal(t, []byte{0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0}, grown.data)
	require.Equal(t, uint64(2), bindless.handleGeneration())

	expectDestroyBuffer(driver, grown)
	expectBindlessClear(driver, addressTable)
	expectDestroyBuffer(driver, positionsMock)
	expectDestroyBuffer(driver, normalsMock)
	driver.EXPECT().DestroySampler(hal.Sampler(7))
	expectDeviceDestroy(driver)
	require.NoError(t, device.Destroy())
}

func TestBindlessTableLimits(t *testing.T) {
	ctrl := gomock.NewController(t)

	addressTable := mockBuffer{native: 70, memory: 170, data: make([]byte, 8)}
	driver, device := readyDevice(t, ctrl, bindlessDeviceSetup(addressTable))
	bindless := device.Bindless()

	first, firstMock := createDeviceBuffer(t, driver, device, 1, hal.BufferUsageStorageBuffer)
	second, secondMock := createDeviceBuffer(t, driver, device, 2, hal.BufferUsageStorageBuffer)

	_, err := bindless.UpdateBuffer(first)
	require.NoError(t, err)
	id, err := bindless.UpdateBuffer(second)
	require.Error(t, err)
	require.Equal(t, InvalidHandleID, id)

	expectDestroyBuffer(driver, secondMock)
	require.NoError(t, device.DestroyBuffer(second))
	_, err = bindless.UpdateBuffer(second)
	require.Error(t, err)

	expectBindlessClear(driver, addressTable)
	expectDestroyBuffer(driver, firstMock)
	expectDeviceDestroy(driver)
	require.NoError(t, device.Destroy())
}

func TestBindlessDispatchBindsSets(t *testing.T) {
	ctrl := gomock.NewController(t)

	addressTable := mockBuffer{native: 70, memory: 170, data: make([]byte, 32)}
	driver, device := readyDevice(t, ctrl, bindlessDeviceSetup(addressTable))
	bindless := device.Bindless()

	compute := createTestShader(t, device, hal.ShaderStageCompute)
	driver.EXPECT().CreateShader(gomock.Any()).Return(hal.Shader(23), nil)
	program, err := device.CreateProgram(ProgramCreateInfo{
		Shaders:        []*Shader{compute},
		PipelineLayout: bindless.PipelineLayout(),
	}, "Culling")
	require.NoError(t, err)

	globals, globalsMock := createDeviceBuffer(t, driver, device, 1, hal.BufferUsageStorageBuffer)
	cmd := recordingCommandBuffer(t, driver, device, QueueCompute)
	require.NoError(t, cmd.SetProgram(program))

	driver.EXPECT().CmdBindShaders(hal.CommandBuffer(31), []hal.ShaderStageFlags{hal.ShaderStageCompute}, []hal.Shader{23}).Return(nil).Times(3)
	driver.EXPECT().CmdDispatch(hal.CommandBuffer(31), 1, 1, 1).Times(3)

	driver.EXPECT().CmdBindDescriptorSets(hal.CommandBuffer(31), hal.PipelineBindPointCompute, hal.PipelineLayout(85),
		BindlessResourceSetIndex, []hal.DescriptorSet{96}, []int{})
	driver.EXPECT().CmdBindDescriptorSets(hal.CommandBuffer(31), hal.PipelineBindPointCompute, hal.PipelineLayout(85),
		BindlessHandleSetIndex, []hal.DescriptorSet{95}, []int{0})
	driver.EXPECT().CmdPushConstants(hal.CommandBuffer(31), hal.PipelineLayout(85), hal.ShaderStageAll, 0, make([]byte, PushConstantSize))
	require.NoError(t, cmd.Dispatch(1, 1, 1))

	// Both sets stay bound while the handle buffer is unchanged.
	require.NoError(t, cmd.Dispatch(1, 1, 1))

	_, err = bindless.UpdateNamed("globals", globals)
	require.NoError(t, err)

	handles := mockBuffer{native: 71, memory: 171, data: make([]byte, 4)}
	expectCreateBuffer(driver, handles, 4)
	driver.EXPECT().UpdateDescriptorSets(handleWrite(71)).Return(nil)
	driver.EXPECT().CmdBindDescriptorSets(hal.CommandBuffer(31), hal.PipelineBindPointCompute, hal.PipelineLayout(85),
		BindlessHandleSetIndex, []hal.DescriptorSet{95}, []int{0})
	require.NoError(t, cmd.Dispatch(1, 1, 1))

	expectCommandPoolDestroy(driver)
	expectDestroyBuffer(driver, handles)
	expectBindlessClear(driver, addressTable)
	driver.EXPECT().DestroyShader(hal.Shader(23))
	expectDestroyBuffer(driver, globalsMock)
	expectDeviceDestroy(driver)
	require.NoError(t, device.Destroy())
}

func createSampledImage(t *testing.T, driver *mocks.MockDevice, device *Device, native hal.Image, name string) *Image {
	driver.EXPECT().CreateImage(gomock.Any()).Return(native, nil)
	driver.EXPECT().GetImageMemoryRequirements(native).Return(hal.MemoryRequirements{
		Size:           4096,
		Alignment:      256,
		MemoryTypeBits: 0xffffffff,
	})
	driver.EXPECT().AllocateMemory(gomock.Any()).Return(hal.DeviceMemory(native+100), nil)
	driver.EXPECT().BindImageMemory(native, hal.DeviceMemory(native+100), 0).Return(nil)
	driver.EXPECT().CreateImageView(gomock.Any()).Return(hal.ImageView(native+200), nil)

	image, err := device.CreateImage(ImageCreateInfo{
		Extent:    hal.Extent3D{Width: 32, Height: 32},
		Usage:     hal.ImageUsageSampled,
		ImageType: hal.ImageType2D,
		Format:    hal.FormatR8G8B8A8Unorm,
	}, name)
	require.NoError(t, err)
	return image
}

func expectDestroySampledImage(driver *mocks.MockDevice, native hal.Image) {
	driver.EXPECT().DestroyImageView(hal.ImageView(native + 200))
	driver.EXPECT().DestroyImage(native)
	driver.EXPECT().FreeMemory(hal.DeviceMemory(native + 100))
}

func TestBindlessNamedImages(t *testing.T) {
	ctrl := gomock.NewController(t)

	addressTable := mockBuffer{native: 70, memory: 170, data: make([]byte, 32)}
	driver, device := readyDevice(t, ctrl, bindlessDeviceSetup(addressTable))
	bindless := device.Bindless()

	natives := []hal.Image{10, 11, 12}
	names := []string{"albedo", "normal", "ao"}
	var images []*Image
	for index, native := range natives {
		image := createSampledImage(t, driver, device, native, names[index])
		images = append(images, image)

		offset, err := bindless.UpdateNamed(names[index], image)
		require.NoError(t, err)
		require.Equal(t, index*4, offset)
	}

	// Seeing an image again returns its handle without queuing another write.
	for range 3 {
		id, err := bindless.UpdateImage(images[0])
		require.NoError(t, err)
		require.Equal(t, HandleID(0), id)
	}
	require.Equal(t, 3, bindless.PendingUpdateCount())

	source := bindless.GenerateHandleSource()
	require.Equal(t, 3, strings.Count(source, "    uint "))
	require.Equal(t, 3, strings.Count(source, "    Texture "))
	require.Contains(t, source, "Texture normal() { return Texture(handleData.normal); }")

	handles := mockBuffer{native: 73, memory: 173, data: make([]byte, 12)}
	expectCreateBuffer(driver, handles, 12)
	driver.EXPECT().UpdateDescriptorSets(handleWrite(73)).Return(nil)
	for index, native := range natives {
		driver.EXPECT().UpdateDescriptorSets(hal.WriteDescriptorSet{
			DstSet:          96,
			DstBinding:      bindlessImageBinding,
			DstArrayElement: index,
			DescriptorType:  hal.DescriptorTypeSampledImage,
			ImageInfo: []hal.DescriptorImageInfo{{
				ImageView:   hal.ImageView(native + 200),
				ImageLayout: hal.ImageLayoutShaderReadOnlyOptimal,
			}},
		}).Return(nil)
	}
	require.NoError(t, bindless.build())
	require.Equal(t, 0, bindless.PendingUpdateCount())
	require.Equal(t, []byte{0, 0, 0, 0, 1, 0, 0, 0, 2, 0, 0, 0}, handles.data)

	expectDestroyBuffer(driver, handles)
	expectBindlessClear(driver, addressTable)
	for _, native := range natives {
		expectDestroySampledImage(driver, native)
	}
	expectDeviceDestroy(driver)
	require.NoError(t, device.Destroy())
}

func TestBindlessConcurrentUpdates(t *testing.T) {
	ctrl := gomock.NewController(t)

	addressTable := mockBuffer{native: 70, memory: 170, data: make([]byte, 32)}
	driver, device := readyDevice(t, ctrl, bindlessDeviceSetup(addressTable))
	bindless := device.Bindless()

	natives := []hal.Image{10, 11, 12, 13}
	names := []string{"albedo", "normal", "ao", "emissive"}
	images := make([]*Image, len(natives))
	for index, native := range natives {
		images[index] = createSampledImage(t, driver, device, native, names[index])
	}

	const workers = 8
	ids := make([][]HandleID, workers)
	offsets := make([][]int, workers)
	failures := make([]error, workers)
	sharedOffsets := make([]int, workers)
	sharedErrs := make([]error, workers)

	var wg sync.WaitGroup
	for worker := range workers {
		ids[worker] = make([]HandleID, len(images))
		offsets[worker] = make([]int, len(images))

		wg.Add(1)
		go func() {
			defer wg.Done()

			// Workers race for the same name with two different images.
			sharedOffsets[worker], sharedErrs[worker] = bindless.UpdateNamed("shared", images[worker%2])

			for step := range len(images) {
				index := (worker + step) % len(images)
				id, err := bindless.UpdateImage(images[index])
				if err != nil {
					failures[worker] = err
					return
				}
				ids[worker][index] = id

				offset, err := bindless.UpdateNamed(names[index], images[index])
				if err != nil {
					failures[worker] = err
					return
				}
				offsets[worker][index] = offset
			}
		}()
	}
	wg.Wait()

	seenIDs := map[HandleID]struct{}{}
	seenOffsets := map[int]struct{}{}
	for index := range images {
		for worker := range workers {
			require.NoError(t, failures[worker])
			require.Equal(t, ids[0][index], ids[worker][index])
			require.Equal(t, offsets[0][index], offsets[worker][index])
		}
		seenIDs[ids[0][index]] = struct{}{}
		seenOffsets[offsets[0][index]] = struct{}{}
	}
	require.Len(t, seenIDs, len(images))
	require.Equal(t, len(images), bindless.PendingUpdateCount())

	winner := -1
	for worker := range workers {
		if sharedErrs[worker] != nil {
			require.Equal(t, result.RuntimeError, result.CodeOf(sharedErrs[worker]))
			continue
		}
		if winner < 0 {
			winner = worker
		}
		require.Equal(t, winner%2, worker%2)
		require.Equal(t, sharedOffsets[winner], sharedOffsets[worker])
	}
	require.GreaterOrEqual(t, winner, 0)
	seenOffsets[sharedOffsets[winner]] = struct{}{}
	require.Len(t, seenOffsets, len(images)+1)
	for offset := range seenOffsets {
		require.Zero(t, offset%4)
		require.Less(t, offset, (len(images)+1)*4)
	}

	_, err := bindless.UpdateNamed("shared", images[(winner+1)%2])
	require.Equal(t, result.RuntimeError, result.CodeOf(err))

	expectBindlessClear(driver, addressTable)
	for _, native := range natives {
		expectDestroySampledImage(driver, native)
	}
	expectDeviceDestroy(driver)
	require.NoError(t, device.Destroy())
}

func TestBindlessRequiresFeatures(t *testing.T) {
	ctrl := gomock.NewController(t)

	setup := defaultDeviceSetup()
	setup.Features.DescriptorIndexing = false
	setup.Options.Bindless = DefaultBindlessOptions()
	setup.Options.FeatureRequirements = []FeatureRequirement{}

	driver := mocks.NewMockDevice(ctrl)
	driver.EXPECT().Features().Return(setup.Features).AnyTimes()
	driver.EXPECT().Properties().Return(hal.PhysicalDeviceProperties{Limits: setup.Limits}).AnyTimes()
	driver.EXPECT().MemoryProperties().Return(hal.MemoryProperties{MemoryTypes: setup.MemoryTypes}).AnyTimes()
	driver.EXPECT().QueueFamilies().Return(setup.QueueFamilies).AnyTimes()
	driver.EXPECT().GetQueue(0, 0).Return(hal.Queue(100)).AnyTimes()

	_, err := NewDevice(nil, driver, setup.Options)
	require.Error(t, err)
}
