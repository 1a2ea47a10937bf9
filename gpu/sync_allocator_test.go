package gpu

import (
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/forge/hal"
	"github.com/vkngwrapper/forge/hal/mocks"
	"github.com/vkngwrapper/forge/result"
	"go.uber.org/mock/gomock"
)

func readySyncAllocator(ctrl *gomock.Controller) (*mocks.MockDevice, *SyncPrimitiveAllocator) {
	driver := mocks.NewMockDevice(ctrl)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return driver, newSyncPrimitiveAllocator(logger, driver, NewResourceStats(), true)
}

func TestFenceRecycling(t *testing.T) {
	ctrl := gomock.NewController(t)

	driver, allocator := readySyncAllocator(ctrl)

	driver.EXPECT().CreateFence(false).Return(hal.Fence(1), nil)
	fence, err := allocator.AcquireFence(false)
	require.NoError(t, err)
	require.True(t, allocator.FenceExists(fence))

	driver.EXPECT().ResetFences(hal.Fence(1)).Return(nil)
	require.NoError(t, allocator.ReleaseFence(fence))

	err = allocator.ReleaseFence(fence)
	require.Error(t, err)
	require.Equal(t, result.RuntimeError, result.CodeOf(err))

	recycled, err := allocator.AcquireFence(false)
	require.NoError(t, err)
	require.Same(t, fence, recycled)

	driver.EXPECT().CreateFence(true).Return(hal.Fence(2), nil)
	signaled, err := allocator.AcquireFence(true)
	require.NoError(t, err)
	require.NotSame(t, fence, signaled)
	require.Equal(t, 2, allocator.stats.Active(ResourceTypeFence))

	driver.EXPECT().DestroyFence(hal.Fence(1))
	driver.EXPECT().DestroyFence(hal.Fence(2))
	allocator.destroy()
	require.False(t, allocator.FenceExists(fence))
	require.Equal(t, 0, allocator.stats.Active(ResourceTypeFence))
}

func TestReleaseForeignFence(t *testing.T) {
	ctrl := gomock.NewController(t)

	driver, allocator := readySyncAllocator(ctrl)

	err := allocator.ReleaseFence(&Fence{native: 9, device: driver, inUse: true})
	require.Error(t, err)
	require.Equal(t, result.RuntimeError, result.CodeOf(err))

	err = allocator.ReleaseFence(nil)
	require.Error(t, err)
}

func TestFenceWait(t *testing.T) {
	ctrl := gomock.NewController(t)

	driver := mocks.NewMockDevice(ctrl)
	fence := &Fence{native: 3, device: driver}

	driver.EXPECT().GetFenceStatus(hal.Fence(3)).Return(false, nil)
	err := fence.Wait(0)
	require.Error(t, err)
	require.Equal(t, result.NotReady, result.CodeOf(err))

	driver.EXPECT().GetFenceStatus(hal.Fence(3)).Return(true, nil)
	require.NoError(t, fence.Wait(0))

	driver.EXPECT().WaitForFences(true, time.Second, hal.Fence(3)).Return(result.ErrTimeout)
	err = fence.Wait(time.Second)
	require.Equal(t, result.Timeout, result.CodeOf(err))

	driver.EXPECT().WaitForFences(true, time.Duration(1<<63-1), hal.Fence(3)).Return(nil)
	require.NoError(t, fence.Wait(-1))

	driver.EXPECT().GetFenceStatus(hal.Fence(3)).Return(true, nil)
	signaled, err := fence.Signaled()
	require.NoError(t, err)
	require.True(t, signaled)
}

func TestSemaphoreRecycling(t *testing.T) {
	ctrl := gomock.NewController(t)

	driver, allocator := readySyncAllocator(ctrl)

	driver.EXPECT().CreateSemaphore().Return(hal.Semaphore(1), nil)
	driver.EXPECT().CreateSemaphore().Return(hal.Semaphore(2), nil)
	semaphores, err := allocator.AcquireSemaphores(2)
	require.NoError(t, err)
	require.Len(t, semaphores, 2)
	require.Equal(t, hal.Semaphore(1), semaphores[0].Native())
	require.Equal(t, hal.Semaphore(2), semaphores[1].Native())

	allocator.ReleaseSemaphores(semaphores[0])
	// Releasing twice or releasing a foreign semaphore is skipped.
	allocator.ReleaseSemaphores(semaphores[0], &Semaphore{native: 7, inUse: true}, nil)

	recycled, err := allocator.AcquireSemaphore()
	require.NoError(t, err)
	require.Same(t, semaphores[0], recycled)

	driver.EXPECT().CreateSemaphore().Return(hal.Semaphore(3), nil)
	fresh, err := allocator.AcquireSemaphore()
	require.NoError(t, err)
	require.Equal(t, hal.Semaphore(3), fresh.Native())
	require.True(t, allocator.SemaphoreExists(fresh))

	driver.EXPECT().DestroySemaphore(hal.Semaphore(1))
	driver.EXPECT().DestroySemaphore(hal.Semaphore(2))
	driver.EXPECT().DestroySemaphore(hal.Semaphore(3))
	allocator.destroy()
	require.False(t, allocator.SemaphoreExists(fresh))
}

func TestSyncPrimitivesConcurrentRecycling(t *testing.T) {
	ctrl := gomock.NewController(t)

	driver, allocator := readySyncAllocator(ctrl)

	var fenceCount, semaphoreCount atomic.Uint64
	driver.EXPECT().CreateFence(false).DoAndReturn(func(bool) (hal.Fence, error) {
		return hal.Fence(fenceCount.Add(1)), nil
	}).AnyTimes()
	driver.EXPECT().ResetFences(gomock.Any()).Return(nil).AnyTimes()
	driver.EXPECT().CreateSemaphore().DoAndReturn(func() (hal.Semaphore, error) {
		return hal.Semaphore(semaphoreCount.Add(1)), nil
	}).AnyTimes()

	// held tracks what is handed out. Entries are removed before the primitive goes back to
	// the allocator, so a second holder is always a double hand out.
	var heldMutex sync.Mutex
	held := map[any]struct{}{}
	var doubleHandOuts atomic.Int32
	hold := func(primitive any) {
		heldMutex.Lock()
		defer heldMutex.Unlock()
		if _, ok := held[primitive]; ok {
			doubleHandOuts.Add(1)
		}
		held[primitive] = struct{}{}
	}
	drop := func(primitive any) {
		heldMutex.Lock()
		defer heldMutex.Unlock()
		delete(held, primitive)
	}

	const workers = 8
	const rounds = 50
	failures := make([]error, workers)
	var wg sync.WaitGroup
	for worker := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range rounds {
				fence, err := allocator.AcquireFence(false)
				if err != nil {
					failures[worker] = err
					return
				}
				hold(fence)

				semaphores, err := allocator.AcquireSemaphores(2)
				if err != nil {
					failures[worker] = err
					return
				}
				for _, semaphore := range semaphores {
					hold(semaphore)
				}

				for _, semaphore := range semaphores {
					drop(semaphore)
				}
				allocator.ReleaseSemaphores(semaphores...)

				drop(fence)
				err = allocator.ReleaseFence(fence)
				if err != nil {
					failures[worker] = err
					return
				}
			}
		}()
	}
	wg.Wait()

	for worker := range workers {
		require.NoError(t, failures[worker])
	}
	require.Zero(t, doubleHandOuts.Load())
	require.Empty(t, held)

	// Every primitive is back in its free queue exactly once.
	created := int(fenceCount.Load())
	require.LessOrEqual(t, created, workers)
	require.Len(t, allocator.freeFences, created)
	seenFences := map[*Fence]struct{}{}
	for _, fence := range allocator.freeFences {
		require.False(t, fence.inUse)
		seenFences[fence] = struct{}{}
	}
	require.Len(t, seenFences, created)

	createdSemaphores := int(semaphoreCount.Load())
	require.LessOrEqual(t, createdSemaphores, 2*workers)
	require.Len(t, allocator.freeSemaphores, createdSemaphores)
	seenSemaphores := map[*Semaphore]struct{}{}
	for _, semaphore := range allocator.freeSemaphores {
		require.False(t, semaphore.inUse)
		seenSemaphores[semaphore] = struct{}{}
	}
	require.Len(t, seenSemaphores, createdSemaphores)

	driver.EXPECT().DestroyFence(gomock.Any()).Times(created)
	driver.EXPECT().DestroySemaphore(gomock.Any()).Times(createdSemaphores)
	allocator.destroy()
}

func TestAcquireSemaphoresFailureReturnsPartial(t *testing.T) {
	ctrl := gomock.NewController(t)

	driver, allocator := readySyncAllocator(ctrl)

	driver.EXPECT().CreateSemaphore().Return(hal.Semaphore(1), nil)
	driver.EXPECT().CreateSemaphore().Return(hal.Semaphore(0), result.ErrOutOfMemory)

	_, err := allocator.AcquireSemaphores(2)
	require.Error(t, err)
	require.Equal(t, result.OutOfMemory, result.CodeOf(err))

	// The semaphore created before the failure is free for the next request.
	semaphore, err := allocator.AcquireSemaphore()
	require.NoError(t, err)
	require.Equal(t, hal.Semaphore(1), semaphore.Native())
}

func TestQueueSubmit(t *testing.T) {
	ctrl := gomock.NewController(t)

	driver, device := readyDevice(t, ctrl, defaultDeviceSetup())
	queue := device.Queue(QueueGraphics)

	cmd := &CommandBuffer{native: 11, state: CommandBufferStateExecutable, breadcrumbs: NewBreadcrumbTracker(true)}
	cmd.breadcrumbs.Record("Draw")
	wait := &Semaphore{native: 12}
	signal := &Semaphore{native: 13}

	driver.EXPECT().QueueSubmit(hal.Queue(100), hal.Fence(0), hal.SubmitInfo{
		WaitSemaphores:   []hal.Semaphore{12},
		WaitDstStageMask: []hal.PipelineStageFlags{hal.PipelineStageAllCommands},
		CommandBuffers:   []hal.CommandBuffer{11},
		SignalSemaphores: []hal.Semaphore{13},
	}).Return(nil)

	err := queue.Submit([]QueueSubmitInfo{{
		CommandBuffers:   []*CommandBuffer{cmd},
		WaitSemaphores:   []*Semaphore{wait},
		SignalSemaphores: []*Semaphore{signal},
	}}, nil)
	require.NoError(t, err)
	require.Equal(t, BreadcrumbInProgress, cmd.breadcrumbs.Records()[0].State)

	err = queue.Submit([]QueueSubmitInfo{{
		CommandBuffers: []*CommandBuffer{cmd},
		WaitSemaphores: []*Semaphore{wait},
		WaitStages:     []hal.PipelineStageFlags{hal.PipelineStageTransfer, hal.PipelineStageHost},
	}}, nil)
	require.Error(t, err)
	require.Equal(t, result.ArgumentOutOfRange, result.CodeOf(err))

	cmd.state = CommandBufferStateRecording
	err = queue.Submit([]QueueSubmitInfo{{CommandBuffers: []*CommandBuffer{cmd}}}, nil)
	require.Error(t, err)
	require.Equal(t, result.RuntimeError, result.CodeOf(err))

	driver.EXPECT().QueueWaitIdle(hal.Queue(100)).Return(nil)
	require.NoError(t, queue.WaitIdle())

	expectDeviceDestroy(driver)
	require.NoError(t, device.Destroy())
}
