package gpu

import (
	"io"
	"log/slog"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/forge/fatal"
	"github.com/vkngwrapper/forge/gpu/internal/objpool"
	"github.com/vkngwrapper/forge/hal"
	"github.com/vkngwrapper/forge/hal/mocks"
	"github.com/vkngwrapper/forge/result"
	"go.uber.org/mock/gomock"
)

type AllocatorSetup struct {
	MemoryTypes         []hal.MemoryType
	NonCoherentAtomSize int
}

func defaultAllocatorSetup() AllocatorSetup {
	return AllocatorSetup{
		MemoryTypes: []hal.MemoryType{
			{PropertyFlags: hal.MemoryPropertyDeviceLocal, HeapIndex: 0},
			{PropertyFlags: hal.MemoryPropertyHostVisible | hal.MemoryPropertyHostCoherent, HeapIndex: 1},
			{PropertyFlags: hal.MemoryPropertyHostVisible | hal.MemoryPropertyHostCoherent | hal.MemoryPropertyHostCached, HeapIndex: 1},
			{PropertyFlags: hal.MemoryPropertyHostVisible, HeapIndex: 1},
		},
		NonCoherentAtomSize: 64,
	}
}

func readyAllocator(t *testing.T, ctrl *gomock.Controller, setup AllocatorSetup) (*mocks.MockDevice, *DeviceAllocator) {
	driver := mocks.NewMockDevice(ctrl)
	driver.EXPECT().Properties().Return(hal.PhysicalDeviceProperties{
		Limits: hal.DeviceLimits{NonCoherentAtomSize: setup.NonCoherentAtomSize},
	}).AnyTimes()
	driver.EXPECT().MemoryProperties().Return(hal.MemoryProperties{
		MemoryTypes: setup.MemoryTypes,
		MemoryHeaps: []hal.MemoryHeap{{Size: 1 << 30, Flags: hal.MemoryHeapDeviceLocal}, {Size: 1 << 28}},
	}).AnyTimes()

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	allocator := newDeviceAllocator(logger, driver, fatal.Discard(), true)
	require.NotNil(t, allocator)

	return driver, allocator
}

func testBuffer(pool *objpool.Pool[Buffer], native hal.Buffer, size int, domain MemoryDomain) *Buffer {
	buffer := &Buffer{native: native, info: BufferCreateInfo{Size: size, Usage: hal.BufferUsageStorageBuffer, Domain: domain}}
	buffer.name = "TestBuffer"
	buffer.handle = pool.Insert(buffer)
	return buffer
}

func TestPreferencesForDomain(t *testing.T) {
	device := preferencesForDomain(MemoryDomainDevice)
	require.Equal(t, hal.MemoryPropertyDeviceLocal, device.required)
	require.False(t, device.mapped)
	require.Equal(t, device, preferencesForDomain(MemoryDomainAuto))

	upload := preferencesForDomain(MemoryDomainUpload)
	require.Equal(t, hal.MemoryPropertyHostVisible|hal.MemoryPropertyHostCoherent, upload.required)
	require.Equal(t, hal.MemoryPropertyHostCached, upload.notPreferred)
	require.True(t, upload.mapped)

	readback := preferencesForDomain(MemoryDomainReadback)
	require.Equal(t, hal.MemoryPropertyHostCached, readback.preferred)
	require.Equal(t, hostPatternRandom, readback.access)
}

func TestFindMemoryTypeIndex(t *testing.T) {
	ctrl := gomock.NewController(t)

	_, allocator := readyAllocator(t, ctrl, defaultAllocatorSetup())

	testCases := []struct {
		name     string
		domain   MemoryDomain
		bits     uint32
		expected int
	}{
		{"Device", MemoryDomainDevice, 0xffffffff, 0},
		{"Upload", MemoryDomainUpload, 0xffffffff, 1},
		{"Readback", MemoryDomainReadback, 0xffffffff, 2},
		{"Host", MemoryDomainHost, 0xffffffff, 2},
		{"HostRestricted", MemoryDomainHost, 0b1000, 3},
		{"UploadFallsBackToCached", MemoryDomainUpload, 0b0100, 2},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			index, err := allocator.findMemoryTypeIndex(testCase.bits, preferencesForDomain(testCase.domain))
			require.NoError(t, err)
			require.Equal(t, testCase.expected, index)
		})
	}

	_, err := allocator.findMemoryTypeIndex(0b0001, preferencesForDomain(MemoryDomainUpload))
	require.Error(t, err)
	require.Equal(t, result.FeatureNotPresent, result.CodeOf(err))
}

func TestAllocateBufferDevice(t *testing.T) {
	ctrl := gomock.NewController(t)

	driver, allocator := readyAllocator(t, ctrl, defaultAllocatorSetup())
	pool := objpool.New[Buffer](4)
	buffer := testBuffer(pool, 1, 1000, MemoryDomainDevice)

	driver.EXPECT().GetBufferMemoryRequirements(hal.Buffer(1)).Return(hal.MemoryRequirements{
		Size:           1024,
		Alignment:      256,
		MemoryTypeBits: 0xffffffff,
	})
	driver.EXPECT().AllocateMemory(hal.MemoryAllocateInfo{Size: 1024, MemoryTypeIndex: 0}).Return(hal.DeviceMemory(2), nil)
	driver.EXPECT().BindBufferMemory(hal.Buffer(1), hal.DeviceMemory(2), 0).Return(nil)

	require.NoError(t, allocator.AllocateBuffer(buffer))
	require.Equal(t, 1, allocator.AllocationCount())
	require.Equal(t, 1024, allocator.AllocatedBytes())

	_, err := allocator.Map(buffer)
	require.Error(t, err)
	require.Equal(t, result.RuntimeError, result.CodeOf(err))

	// Device local memory needs no flush.
	require.NoError(t, allocator.Flush(buffer, 0, 0))

	driver.EXPECT().FreeMemory(hal.DeviceMemory(2))
	require.NoError(t, allocator.Free(buffer))
	require.Equal(t, 0, allocator.AllocationCount())
	require.Equal(t, 0, allocator.AllocatedBytes())

	err = allocator.Free(buffer)
	require.Error(t, err)
	require.Equal(t, result.RuntimeError, result.CodeOf(err))
}

func TestAllocateBufferBindFailure(t *testing.T) {
	ctrl := gomock.NewController(t)

	driver, allocator := readyAllocator(t, ctrl, defaultAllocatorSetup())
	pool := objpool.New[Buffer](4)
	buffer := testBuffer(pool, 1, 256, MemoryDomainUpload)

	data := make([]byte, 256)
	driver.EXPECT().GetBufferMemoryRequirements(hal.Buffer(1)).Return(hal.MemoryRequirements{
		Size:           256,
		Alignment:      16,
		MemoryTypeBits: 0xffffffff,
	})
	driver.EXPECT().AllocateMemory(hal.MemoryAllocateInfo{Size: 256, MemoryTypeIndex: 1}).Return(hal.DeviceMemory(2), nil)
	driver.EXPECT().MapMemory(hal.DeviceMemory(2), 0, -1).Return(unsafe.Pointer(&data[0]), nil)
	driver.EXPECT().BindBufferMemory(hal.Buffer(1), hal.DeviceMemory(2), 0).Return(result.ErrOutOfMemory)
	driver.EXPECT().UnmapMemory(hal.DeviceMemory(2))
	driver.EXPECT().FreeMemory(hal.DeviceMemory(2))

	err := allocator.AllocateBuffer(buffer)
	require.Error(t, err)
	require.Equal(t, result.OutOfMemory, result.CodeOf(err))
	require.Equal(t, 0, allocator.AllocationCount())
}

func TestPersistentMapping(t *testing.T) {
	ctrl := gomock.NewController(t)

	driver, allocator := readyAllocator(t, ctrl, defaultAllocatorSetup())
	pool := objpool.New[Buffer](4)
	buffer := testBuffer(pool, 1, 256, MemoryDomainUpload)

	data := make([]byte, 256)
	driver.EXPECT().GetBufferMemoryRequirements(hal.Buffer(1)).Return(hal.MemoryRequirements{
		Size:           256,
		Alignment:      16,
		MemoryTypeBits: 0xffffffff,
	})
	driver.EXPECT().AllocateMemory(gomock.Any()).Return(hal.DeviceMemory(2), nil)
	driver.EXPECT().MapMemory(hal.DeviceMemory(2), 0, -1).Return(unsafe.Pointer(&data[0]), nil)
	driver.EXPECT().BindBufferMemory(hal.Buffer(1), hal.DeviceMemory(2), 0).Return(nil)
	require.NoError(t, allocator.AllocateBuffer(buffer))

	first, err := allocator.Map(buffer)
	require.NoError(t, err)
	second, err := allocator.Map(buffer)
	require.NoError(t, err)
	require.Equal(t, unsafe.Pointer(&data[0]), first)
	require.Equal(t, first, second)

	*(*byte)(first) = 7
	require.Equal(t, byte(7), data[0])

	// Persistent maps stay mapped when the count drops to zero.
	require.NoError(t, allocator.Unmap(buffer))
	require.NoError(t, allocator.Unmap(buffer))

	err = allocator.Unmap(buffer)
	require.Error(t, err)
	require.Equal(t, result.RuntimeError, result.CodeOf(err))

	require.Contains(t, allocator.BuildStatsString(), `"Mapped":true`)

	driver.EXPECT().UnmapMemory(hal.DeviceMemory(2))
	driver.EXPECT().FreeMemory(hal.DeviceMemory(2))
	require.NoError(t, allocator.Free(buffer))
}

func TestLazyMapping(t *testing.T) {
	ctrl := gomock.NewController(t)

	setup := defaultAllocatorSetup()
	setup.MemoryTypes = []hal.MemoryType{
		{PropertyFlags: hal.MemoryPropertyDeviceLocal | hal.MemoryPropertyHostVisible | hal.MemoryPropertyHostCoherent},
	}
	driver, allocator := readyAllocator(t, ctrl, setup)
	pool := objpool.New[Buffer](4)
	buffer := testBuffer(pool, 1, 128, MemoryDomainDevice)

	driver.EXPECT().GetBufferMemoryRequirements(hal.Buffer(1)).Return(hal.MemoryRequirements{
		Size:           128,
		Alignment:      16,
		MemoryTypeBits: 0x1,
	})
	driver.EXPECT().AllocateMemory(gomock.Any()).Return(hal.DeviceMemory(2), nil)
	driver.EXPECT().BindBufferMemory(hal.Buffer(1), hal.DeviceMemory(2), 0).Return(nil)
	require.NoError(t, allocator.AllocateBuffer(buffer))

	data := make([]byte, 128)
	driver.EXPECT().MapMemory(hal.DeviceMemory(2), 0, -1).Return(unsafe.Pointer(&data[0]), nil)
	_, err := allocator.Map(buffer)
	require.NoError(t, err)
	_, err = allocator.Map(buffer)
	require.NoError(t, err)

	require.NoError(t, allocator.Unmap(buffer))
	driver.EXPECT().UnmapMemory(hal.DeviceMemory(2))
	require.NoError(t, allocator.Unmap(buffer))

	driver.EXPECT().FreeMemory(hal.DeviceMemory(2))
	require.NoError(t, allocator.Free(buffer))
}

func TestFlushNonCoherentRange(t *testing.T) {
	ctrl := gomock.NewController(t)

	driver, allocator := readyAllocator(t, ctrl, defaultAllocatorSetup())
	pool := objpool.New[Buffer](4)
	buffer := testBuffer(pool, 1, 1000, MemoryDomainHost)

	data := make([]byte, 1024)
	driver.EXPECT().GetBufferMemoryRequirements(hal.Buffer(1)).Return(hal.MemoryRequirements{
		Size:           1024,
		Alignment:      16,
		MemoryTypeBits: 0b1000,
	})
	driver.EXPECT().AllocateMemory(hal.MemoryAllocateInfo{Size: 1024, MemoryTypeIndex: 3}).Return(hal.DeviceMemory(2), nil)
	driver.EXPECT().MapMemory(hal.DeviceMemory(2), 0, -1).Return(unsafe.Pointer(&data[0]), nil)
	driver.EXPECT().BindBufferMemory(hal.Buffer(1), hal.DeviceMemory(2), 0).Return(nil)
	require.NoError(t, allocator.AllocateBuffer(buffer))

	driver.EXPECT().FlushMappedMemoryRanges(hal.MappedMemoryRange{Memory: 2, Offset: 64, Size: 128}).Return(nil)
	require.NoError(t, allocator.Flush(buffer, 100, 50))

	driver.EXPECT().InvalidateMappedMemoryRanges(hal.MappedMemoryRange{Memory: 2, Offset: 0, Size: 1024}).Return(nil)
	require.NoError(t, allocator.Invalidate(buffer, 0, 0))

	driver.EXPECT().FlushMappedMemoryRanges(hal.MappedMemoryRange{Memory: 2, Offset: 960, Size: 64}).Return(nil)
	require.NoError(t, allocator.Flush(buffer, 1000, 24))

	err := allocator.Flush(buffer, 2000, 0)
	require.Error(t, err)
	require.Equal(t, result.ArgumentOutOfRange, result.CodeOf(err))

	err = allocator.Flush(buffer, 1000, 100)
	require.Error(t, err)
	require.Equal(t, result.ArgumentOutOfRange, result.CodeOf(err))

	driver.EXPECT().UnmapMemory(hal.DeviceMemory(2))
	driver.EXPECT().FreeMemory(hal.DeviceMemory(2))
	allocator.destroy()
	require.Equal(t, 0, allocator.AllocationCount())
}

func TestAllocateImage(t *testing.T) {
	ctrl := gomock.NewController(t)

	driver, allocator := readyAllocator(t, ctrl, defaultAllocatorSetup())
	pool := objpool.New[Image](4)
	image := &Image{native: 5, info: ImageCreateInfo{Format: hal.FormatR8G8B8A8Unorm}}
	image.name = "Texture"
	image.handle = pool.Insert(image)

	driver.EXPECT().GetImageMemoryRequirements(hal.Image(5)).Return(hal.MemoryRequirements{
		Size:           4096,
		Alignment:      1024,
		MemoryTypeBits: 0xffffffff,
	})
	driver.EXPECT().AllocateMemory(hal.MemoryAllocateInfo{Size: 4096}).Return(hal.DeviceMemory(6), nil)
	driver.EXPECT().BindImageMemory(hal.Image(5), hal.DeviceMemory(6), 0).Return(nil)
	require.NoError(t, allocator.AllocateImage(image))

	stats := allocator.BuildStatsString()
	require.Contains(t, stats, `"TotalBytes":4096`)
	require.Contains(t, stats, `"Name":"Texture"`)
	require.Contains(t, stats, `"Type":"Image"`)

	driver.EXPECT().FreeMemory(hal.DeviceMemory(6))
	require.NoError(t, allocator.Free(image))
}
