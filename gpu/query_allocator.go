package gpu

import (
	"fmt"
	"log/slog"

	"github.com/vkngwrapper/forge/hal"
	"github.com/vkngwrapper/forge/internal/utils"
	"github.com/vkngwrapper/forge/result"
	"golang.org/x/exp/slices"
)

// QueryPoolAllocationConfig sets how many pools of each query type are created up front and how
// many queries each pool holds.
type QueryPoolAllocationConfig struct {
	TimestampPoolCount   int
	TimestampQueryCount  int
	OcclusionPoolCount   int
	OcclusionQueryCount  int
	StatisticsPoolCount  int
	StatisticsQueryCount int

	PipelineStatistics hal.QueryPipelineStatisticFlags
}

func DefaultQueryPoolAllocationConfig() QueryPoolAllocationConfig {
	return QueryPoolAllocationConfig{
		TimestampPoolCount:   32,
		TimestampQueryCount:  128,
		OcclusionPoolCount:   8,
		OcclusionQueryCount:  64,
		StatisticsPoolCount:  4,
		StatisticsQueryCount: 32,
		PipelineStatistics: hal.QueryPipelineStatisticInputAssemblyVertices |
			hal.QueryPipelineStatisticVertexShaderInvocations |
			hal.QueryPipelineStatisticFragmentShaderInvocations,
	}
}

type queryPoolList struct {
	free      []*QueryPool
	allocated []*QueryPool
}

// QueryPoolAllocator hands out preallocated query pools by query type.
type QueryPoolAllocator struct {
	logger *slog.Logger
	device *Device
	config QueryPoolAllocationConfig

	mutex utils.Guard
	lists map[hal.QueryType]*queryPoolList
}

func newQueryPoolAllocator(device *Device, config QueryPoolAllocationConfig) (*QueryPoolAllocator, error) {
	a := &QueryPoolAllocator{
		logger: device.logger,
		device: device,
		config: config,
		mutex:  utils.Guard{Enabled: device.options.Synchronized},
		lists:  make(map[hal.QueryType]*queryPoolList),
	}

	err := a.createPools(hal.QueryTypeTimestamp, config.TimestampPoolCount, config.TimestampQueryCount, 0)
	if err == nil {
		err = a.createPools(hal.QueryTypeOcclusion, config.OcclusionPoolCount, config.OcclusionQueryCount, 0)
	}
	if err == nil && device.features.Enabled.PipelineStatistics {
		err = a.createPools(hal.QueryTypePipelineStatistics, config.StatisticsPoolCount, config.StatisticsQueryCount, config.PipelineStatistics)
	}
	if err != nil {
		a.destroy()
		return nil, err
	}

	return a, nil
}

func (a *QueryPoolAllocator) createPools(queryType hal.QueryType, poolCount, queryCount int, statistics hal.QueryPipelineStatisticFlags) error {
	list := &queryPoolList{}
	a.lists[queryType] = list

	if poolCount <= 0 || queryCount <= 0 {
		return nil
	}

	for i := 0; i < poolCount; i++ {
		pool, err := a.device.CreateQueryPool(QueryPoolCreateInfo{
			Type:               queryType,
			QueryCount:         queryCount,
			PipelineStatistics: statistics,
		}, fmt.Sprintf("QueryPool_%s_%d", queryType, i))
		if err != nil {
			return err
		}
		list.free = append(list.free, pool)
	}

	return nil
}

// Acquire returns a free pool of queryType, or nil when every pool of that type is in use.
func (a *QueryPoolAllocator) Acquire(queryType hal.QueryType) *QueryPool {
	a.logger.Debug("QueryPoolAllocator::Acquire")

	a.mutex.Lock()
	defer a.mutex.Unlock()

	list, ok := a.lists[queryType]
	if !ok || len(list.free) == 0 {
		a.logger.Warn("QueryPoolAllocator::Acquire", slog.String("type", queryType.String()), slog.String("message", "no free query pools"))
		return nil
	}

	last := len(list.free) - 1
	pool := list.free[last]
	list.free = list.free[:last]
	list.allocated = append(list.allocated, pool)
	return pool
}

// Release returns pool to the free list. Releasing nil does nothing.
func (a *QueryPoolAllocator) Release(pool *QueryPool) error {
	a.logger.Debug("QueryPoolAllocator::Release")

	if pool == nil {
		return nil
	}

	a.mutex.Lock()
	defer a.mutex.Unlock()

	list, ok := a.lists[pool.Type()]
	if !ok {
		return result.Newf(result.RuntimeError, "no query pools of type %s are allocated", pool.Type())
	}

	index := slices.Index(list.allocated, pool)
	if index < 0 {
		return result.Newf(result.RuntimeError, "query pool %q was not acquired from this allocator", pool.name)
	}

	list.allocated = slices.Delete(list.allocated, index, index+1)
	list.free = append(list.free, pool)
	return nil
}

// ResetAll records a reset of every pool of queryType into cmd, acquired or not.
func (a *QueryPoolAllocator) ResetAll(queryType hal.QueryType, cmd *CommandBuffer) error {
	a.mutex.Lock()
	pools := a.poolsLocked(queryType)
	a.mutex.Unlock()

	for _, pool := range pools {
		err := cmd.ResetQueryPool(pool, 0, pool.QueryCount())
		if err != nil {
			return err
		}
	}
	return nil
}

func (a *QueryPoolAllocator) poolsLocked(queryType hal.QueryType) []*QueryPool {
	list, ok := a.lists[queryType]
	if !ok {
		return nil
	}
	pools := make([]*QueryPool, 0, len(list.free)+len(list.allocated))
	pools = append(pools, list.free...)
	return append(pools, list.allocated...)
}

// FreeCount returns the number of pools of queryType available to Acquire.
func (a *QueryPoolAllocator) FreeCount(queryType hal.QueryType) int {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	list, ok := a.lists[queryType]
	if !ok {
		return 0
	}
	return len(list.free)
}

func (a *QueryPoolAllocator) destroy() {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	for queryType := range a.lists {
		for _, pool := range a.poolsLocked(queryType) {
			err := a.device.DestroyQueryPool(pool)
			if err != nil {
				a.logger.Warn("QueryPoolAllocator::destroy", slog.String("message", "failed to destroy query pool"), slog.Any("error", err))
			}
		}
	}
	clear(a.lists)
}
