package vulkan

import (
	"encoding/binary"
	"time"

	"github.com/vkngwrapper/core/v3/common"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/core/v3/core1_1"
	"github.com/vkngwrapper/forge/hal"
	"github.com/vkngwrapper/forge/result"
)

func (d *Device) CreateFence(signaled bool) (hal.Fence, error) {
	var createInfo core1_0.FenceCreateInfo
	if signaled {
		createInfo.Flags = core1_0.FenceCreateSignaled
	}
	fence, res, err := d.driver.CreateFence(nil, createInfo)
	if err := check(res, err, "CreateFence"); err != nil {
		return 0, err
	}
	return hal.Fence(d.fences.insert(fence)), nil
}

func (d *Device) DestroyFence(fence hal.Fence) {
	native, ok := d.fences.remove(uint64(fence))
	if !ok {
		return
	}
	d.driver.DestroyFence(native, nil)
}

func (d *Device) ResetFences(fences ...hal.Fence) error {
	res, err := d.driver.ResetFences(d.fences.lookup(handles(fences))...)
	return check(res, err, "ResetFences")
}

func (d *Device) WaitForFences(waitAll bool, timeout time.Duration, fences ...hal.Fence) error {
	if timeout < 0 {
		timeout = common.NoTimeout
	}
	res, err := d.driver.WaitForFences(waitAll, timeout, d.fences.lookup(handles(fences))...)
	if err == nil && res == core1_0.VKTimeout {
		return result.New(result.Timeout, "WaitForFences")
	}
	return check(res, err, "WaitForFences")
}

func (d *Device) GetFenceStatus(fence hal.Fence) (bool, error) {
	native, ok := d.fences.get(uint64(fence))
	if !ok {
		return false, result.New(result.RuntimeError, "GetFenceStatus: unknown fence")
	}
	res, err := d.driver.GetFenceStatus(native)
	if err == nil && res == core1_0.VKNotReady {
		return false, nil
	}
	if err := check(res, err, "GetFenceStatus"); err != nil {
		return false, err
	}
	return true, nil
}

func (d *Device) CreateSemaphore() (hal.Semaphore, error) {
	semaphore, res, err := d.driver.CreateSemaphore(nil, core1_0.SemaphoreCreateInfo{})
	if err := check(res, err, "CreateSemaphore"); err != nil {
		return 0, err
	}
	return hal.Semaphore(d.semaphores.insert(semaphore)), nil
}

func (d *Device) DestroySemaphore(semaphore hal.Semaphore) {
	native, ok := d.semaphores.remove(uint64(semaphore))
	if !ok {
		return
	}
	d.driver.DestroySemaphore(native, nil)
}

func (d *Device) CreateQueryPool(info hal.QueryPoolCreateInfo) (hal.QueryPool, error) {
	pool, res, err := d.driver.CreateQueryPool(nil, core1_0.QueryPoolCreateInfo{
		QueryType:          core1_0.QueryType(info.QueryType),
		QueryCount:         info.QueryCount,
		PipelineStatistics: core1_0.QueryPipelineStatisticFlags(info.PipelineStatistics),
	})
	if err := check(res, err, "CreateQueryPool"); err != nil {
		return 0, err
	}
	return hal.QueryPool(d.queryPools.insert(pool)), nil
}

func (d *Device) DestroyQueryPool(pool hal.QueryPool) {
	native, ok := d.queryPools.remove(uint64(pool))
	if !ok {
		return
	}
	d.driver.DestroyQueryPool(native, nil)
}

func (d *Device) GetQueryPoolResults(pool hal.QueryPool, firstQuery int, queryCount int, wait bool) ([]uint64, error) {
	native, ok := d.queryPools.get(uint64(pool))
	if !ok {
		return nil, result.New(result.RuntimeError, "GetQueryPoolResults: unknown query pool")
	}

	flags := core1_0.QueryResult64Bit
	if wait {
		flags |= core1_0.QueryResultWait
	}

	const stride = 8
	data := make([]byte, queryCount*stride)
	res, err := d.driver.GetQueryPoolResults(native, firstQuery, queryCount, data, stride, flags)
	if err == nil && res == core1_0.VKNotReady {
		return nil, result.New(result.NotReady, "GetQueryPoolResults")
	}
	if err := check(res, err, "GetQueryPoolResults"); err != nil {
		return nil, err
	}

	values := make([]uint64, queryCount)
	for i := range values {
		values[i] = binary.LittleEndian.Uint64(data[i*stride:])
	}
	return values, nil
}

func (d *Device) CreateCommandPool(info hal.CommandPoolCreateInfo) (hal.CommandPool, error) {
	pool, res, err := d.driver.CreateCommandPool(nil, core1_0.CommandPoolCreateInfo{
		Flags:            core1_0.CommandPoolCreateFlags(info.Flags),
		QueueFamilyIndex: info.QueueFamilyIndex,
	})
	if err := check(res, err, "CreateCommandPool"); err != nil {
		return 0, err
	}
	return hal.CommandPool(d.commandPools.insert(pool)), nil
}

func (d *Device) DestroyCommandPool(pool hal.CommandPool) {
	native, ok := d.commandPools.remove(uint64(pool))
	if !ok {
		return
	}
	d.driver.DestroyCommandPool(native, nil)
}

func (d *Device) ResetCommandPool(pool hal.CommandPool, releaseResources bool) error {
	native, _ := d.commandPools.get(uint64(pool))
	var flags core1_0.CommandPoolResetFlags
	if releaseResources {
		flags = core1_0.CommandPoolResetReleaseResources
	}
	res, err := d.driver.ResetCommandPool(native, flags)
	return check(res, err, "ResetCommandPool")
}

func (d *Device) TrimCommandPool(pool hal.CommandPool) {
	trimDriver, ok := d.driver.(trimCommandPoolDriver)
	if !ok {
		return
	}
	native, ok := d.commandPools.get(uint64(pool))
	if !ok {
		return
	}
	trimDriver.TrimCommandPool(native, core1_1.CommandPoolTrimFlags(0))
}

func (d *Device) AllocateCommandBuffers(pool hal.CommandPool, count int) ([]hal.CommandBuffer, error) {
	native, _ := d.commandPools.get(uint64(pool))
	buffers, res, err := d.driver.AllocateCommandBuffers(core1_0.CommandBufferAllocateInfo{
		CommandPool:        native,
		Level:              core1_0.CommandBufferLevelPrimary,
		CommandBufferCount: count,
	})
	if err := check(res, err, "AllocateCommandBuffers"); err != nil {
		return nil, err
	}

	out := make([]hal.CommandBuffer, 0, len(buffers))
	for _, buffer := range buffers {
		out = append(out, hal.CommandBuffer(d.commandBuffers.insert(buffer)))
	}
	return out, nil
}

func (d *Device) FreeCommandBuffers(pool hal.CommandPool, buffers ...hal.CommandBuffer) {
	natives := make([]core1_0.CommandBuffer, 0, len(buffers))
	for _, buffer := range buffers {
		if native, ok := d.commandBuffers.remove(uint64(buffer)); ok {
			natives = append(natives, native)
		}
	}
	if len(natives) == 0 {
		return
	}
	d.driver.FreeCommandBuffers(natives...)
}

func (d *Device) QueueSubmit(queue hal.Queue, fence hal.Fence, submits ...hal.SubmitInfo) error {
	nativeQueue, _ := d.queues.get(uint64(queue))

	var nativeFence *core1_0.Fence
	if fence != 0 {
		if f, ok := d.fences.get(uint64(fence)); ok {
			nativeFence = &f
		}
	}

	nativeSubmits := make([]core1_0.SubmitInfo, 0, len(submits))
	for _, submit := range submits {
		stages := make([]core1_0.PipelineStageFlags, 0, len(submit.WaitDstStageMask))
		for _, stage := range submit.WaitDstStageMask {
			stages = append(stages, core1_0.PipelineStageFlags(stage))
		}
		nativeSubmits = append(nativeSubmits, core1_0.SubmitInfo{
			WaitSemaphores:   d.semaphores.lookup(handles(submit.WaitSemaphores)),
			WaitDstStageMask: stages,
			CommandBuffers:   d.commandBuffers.lookup(handles(submit.CommandBuffers)),
			SignalSemaphores: d.semaphores.lookup(handles(submit.SignalSemaphores)),
		})
	}

	res, err := d.driver.QueueSubmit(nativeQueue, nativeFence, nativeSubmits...)
	return check(res, err, "QueueSubmit")
}

func (d *Device) QueueWaitIdle(queue hal.Queue) error {
	native, _ := d.queues.get(uint64(queue))
	res, err := d.driver.QueueWaitIdle(native)
	return check(res, err, "QueueWaitIdle")
}

func (d *Device) BeginCommandBuffer(commandBuffer hal.CommandBuffer, flags hal.CommandBufferUsageFlags) error {
	native, _ := d.commandBuffers.get(uint64(commandBuffer))
	res, err := d.driver.BeginCommandBuffer(native, core1_0.CommandBufferBeginInfo{
		Flags: core1_0.CommandBufferUsageFlags(flags),
	})
	return check(res, err, "BeginCommandBuffer")
}

func (d *Device) EndCommandBuffer(commandBuffer hal.CommandBuffer) error {
	native, _ := d.commandBuffers.get(uint64(commandBuffer))
	res, err := d.driver.EndCommandBuffer(native)
	return check(res, err, "EndCommandBuffer")
}

func (d *Device) ResetCommandBuffer(commandBuffer hal.CommandBuffer, releaseResources bool) error {
	native, _ := d.commandBuffers.get(uint64(commandBuffer))
	var flags core1_0.CommandBufferResetFlags
	if releaseResources {
		flags = core1_0.CommandBufferResetReleaseResources
	}
	res, err := d.driver.ResetCommandBuffer(native, flags)
	return check(res, err, "ResetCommandBuffer")
}
