package gpu

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/forge/hal"
	"github.com/vkngwrapper/forge/hal/mocks"
	"github.com/vkngwrapper/forge/result"
	"go.uber.org/mock/gomock"
)

func queryDeviceSetup() DeviceSetup {
	setup := defaultDeviceSetup()
	setup.Options.QueryPools = QueryPoolAllocationConfig{
		TimestampPoolCount:   2,
		TimestampQueryCount:  4,
		OcclusionPoolCount:   1,
		OcclusionQueryCount:  2,
		StatisticsPoolCount:  1,
		StatisticsQueryCount: 4,
	}
	setup.PreNewMock = func(driver *mocks.MockDevice) {
		timestamps := hal.QueryPoolCreateInfo{QueryType: hal.QueryTypeTimestamp, QueryCount: 4}
		driver.EXPECT().CreateQueryPool(timestamps).Return(hal.QueryPool(40), nil)
		driver.EXPECT().CreateQueryPool(timestamps).Return(hal.QueryPool(41), nil)
		driver.EXPECT().CreateQueryPool(hal.QueryPoolCreateInfo{QueryType: hal.QueryTypeOcclusion, QueryCount: 2}).Return(hal.QueryPool(42), nil)
	}
	return setup
}

func TestQueryPoolAllocatorAcquire(t *testing.T) {
	ctrl := gomock.NewController(t)

	driver, device := readyDevice(t, ctrl, queryDeviceSetup())
	allocator := device.QueryPools()

	require.Equal(t, 2, allocator.FreeCount(hal.QueryTypeTimestamp))
	require.Equal(t, 1, allocator.FreeCount(hal.QueryTypeOcclusion))
	// Statistics pools need the pipeline statistics feature.
	require.Equal(t, 0, allocator.FreeCount(hal.QueryTypePipelineStatistics))
	require.Nil(t, allocator.Acquire(hal.QueryTypePipelineStatistics))

	first := allocator.Acquire(hal.QueryTypeTimestamp)
	require.NotNil(t, first)
	require.Equal(t, hal.QueryTypeTimestamp, first.Type())
	require.Equal(t, 4, first.QueryCount())
	second := allocator.Acquire(hal.QueryTypeTimestamp)
	require.NotNil(t, second)
	require.NotSame(t, first, second)
	require.Nil(t, allocator.Acquire(hal.QueryTypeTimestamp))

	require.NoError(t, allocator.Release(first))
	require.Equal(t, 1, allocator.FreeCount(hal.QueryTypeTimestamp))
	require.Same(t, first, allocator.Acquire(hal.QueryTypeTimestamp))

	require.NoError(t, allocator.Release(nil))
	err := allocator.Release(&QueryPool{info: QueryPoolCreateInfo{Type: hal.QueryTypeTimestamp, QueryCount: 4}})
	require.Error(t, err)
	require.Equal(t, result.RuntimeError, result.CodeOf(err))

	driver.EXPECT().DestroyQueryPool(hal.QueryPool(40))
	driver.EXPECT().DestroyQueryPool(hal.QueryPool(41))
	driver.EXPECT().DestroyQueryPool(hal.QueryPool(42))
	expectDeviceDestroy(driver)
	require.NoError(t, device.Destroy())
	require.Equal(t, 0, device.Stats().Active(ResourceTypeQueryPool))
}

func TestQueryPoolAllocatorResetAll(t *testing.T) {
	ctrl := gomock.NewController(t)

	driver, device := readyDevice(t, ctrl, queryDeviceSetup())
	allocator := device.QueryPools()
	require.NotNil(t, allocator.Acquire(hal.QueryTypeTimestamp))

	cmd := recordingCommandBuffer(t, driver, device, QueueGraphics)

	// Acquired pools are reset along with free ones.
	driver.EXPECT().CmdResetQueryPool(hal.CommandBuffer(31), hal.QueryPool(40), 0, 4)
	driver.EXPECT().CmdResetQueryPool(hal.CommandBuffer(31), hal.QueryPool(41), 0, 4)
	require.NoError(t, allocator.ResetAll(hal.QueryTypeTimestamp, cmd))
	require.NoError(t, allocator.ResetAll(hal.QueryTypePipelineStatistics, cmd))

	driver.EXPECT().DestroyQueryPool(gomock.Any()).Times(3)
	expectCommandPoolDestroy(driver)
	expectDeviceDestroy(driver)
	require.NoError(t, device.Destroy())
}

func TestQueryPoolAllocatorCreateFailure(t *testing.T) {
	ctrl := gomock.NewController(t)

	setup := queryDeviceSetup()
	setup.PreNewMock = func(driver *mocks.MockDevice) {
		driver.EXPECT().CreateQueryPool(gomock.Any()).Return(hal.QueryPool(40), nil)
		driver.EXPECT().CreateQueryPool(gomock.Any()).Return(hal.QueryPool(0), result.ErrOutOfMemory)
		driver.EXPECT().DestroyQueryPool(hal.QueryPool(40))
	}

	driver := mocks.NewMockDevice(ctrl)
	driver.EXPECT().Features().Return(setup.Features).AnyTimes()
	driver.EXPECT().Properties().Return(hal.PhysicalDeviceProperties{Limits: setup.Limits}).AnyTimes()
	driver.EXPECT().MemoryProperties().Return(hal.MemoryProperties{MemoryTypes: setup.MemoryTypes}).AnyTimes()
	driver.EXPECT().QueueFamilies().Return(setup.QueueFamilies).AnyTimes()
	driver.EXPECT().GetQueue(0, 0).Return(hal.Queue(100)).AnyTimes()
	setup.PreNewMock(driver)

	_, err := NewDevice(nil, driver, setup.Options)
	require.Error(t, err)
	require.Equal(t, result.RuntimeError, result.CodeOf(err))
	require.ErrorIs(t, err, result.ErrOutOfMemory)
}
