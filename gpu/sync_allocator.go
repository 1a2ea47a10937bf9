package gpu

import (
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
	"github.com/vkngwrapper/forge/hal"
	"github.com/vkngwrapper/forge/internal/utils"
	"github.com/vkngwrapper/forge/result"
)

// SyncPrimitiveAllocator recycles fences and semaphores. A primitive is either handed out or
// waiting in its free queue, never both.
type SyncPrimitiveAllocator struct {
	logger *slog.Logger
	device hal.Device
	stats  *ResourceStats

	fenceMutex utils.Guard
	freeFences []*Fence
	allFences  *swiss.Map[*Fence, struct{}]

	semaphoreMutex utils.Guard
	freeSemaphores []*Semaphore
	allSemaphores  *swiss.Map[*Semaphore, struct{}]
}

func newSyncPrimitiveAllocator(logger *slog.Logger, device hal.Device, stats *ResourceStats, synchronized bool) *SyncPrimitiveAllocator {
	return &SyncPrimitiveAllocator{
		logger:         logger,
		device:         device,
		stats:          stats,
		fenceMutex:     utils.Guard{Enabled: synchronized},
		allFences:      swiss.NewMap[*Fence, struct{}](16),
		semaphoreMutex: utils.Guard{Enabled: synchronized},
		allSemaphores:  swiss.NewMap[*Semaphore, struct{}](16),
	}
}

// AcquireFence returns an unused fence. Recycled fences are unsignaled, so a request for a
// signaled fence always creates a new one.
func (a *SyncPrimitiveAllocator) AcquireFence(signaled bool) (*Fence, error) {
	a.logger.Debug("SyncPrimitiveAllocator::AcquireFence")

	a.fenceMutex.Lock()
	defer a.fenceMutex.Unlock()

	if !signaled && len(a.freeFences) > 0 {
		last := len(a.freeFences) - 1
		fence := a.freeFences[last]
		a.freeFences = a.freeFences[:last]
		fence.inUse = true
		return fence, nil
	}

	native, err := a.device.CreateFence(signaled)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fence")
	}
	a.stats.trackCreated(ResourceTypeFence)

	fence := &Fence{native: native, device: a.device, inUse: true}
	a.allFences.Put(fence, struct{}{})
	return fence, nil
}

// ReleaseFence resets fence and returns it to the free queue.
func (a *SyncPrimitiveAllocator) ReleaseFence(fence *Fence) error {
	a.logger.Debug("SyncPrimitiveAllocator::ReleaseFence")

	a.fenceMutex.Lock()
	defer a.fenceMutex.Unlock()

	if fence == nil || !a.allFences.Has(fence) {
		return result.New(result.RuntimeError, "fence is not owned by this allocator")
	}
	if !fence.inUse {
		return result.New(result.RuntimeError, "fence was already released")
	}

	err := fence.Reset()
	if err != nil {
		return err
	}

	fence.inUse = false
	a.freeFences = append(a.freeFences, fence)
	return nil
}

func (a *SyncPrimitiveAllocator) FenceExists(fence *Fence) bool {
	a.fenceMutex.Lock()
	defer a.fenceMutex.Unlock()
	return a.allFences.Has(fence)
}

// AcquireSemaphores returns count unused semaphores, creating new ones when the free queue runs
// dry.
func (a *SyncPrimitiveAllocator) AcquireSemaphores(count int) ([]*Semaphore, error) {
	a.logger.Debug("SyncPrimitiveAllocator::AcquireSemaphores")

	a.semaphoreMutex.Lock()
	defer a.semaphoreMutex.Unlock()

	semaphores := make([]*Semaphore, 0, count)
	for len(semaphores) < count {
		if len(a.freeSemaphores) > 0 {
			last := len(a.freeSemaphores) - 1
			semaphore := a.freeSemaphores[last]
			a.freeSemaphores = a.freeSemaphores[:last]
			semaphore.inUse = true
			semaphores = append(semaphores, semaphore)
			continue
		}

		native, err := a.device.CreateSemaphore()
		if err != nil {
			a.releaseSemaphoresLocked(semaphores)
			return nil, errors.Wrap(err, "failed to create semaphore")
		}
		a.stats.trackCreated(ResourceTypeSemaphore)

		semaphore := &Semaphore{native: native, inUse: true}
		a.allSemaphores.Put(semaphore, struct{}{})
		semaphores = append(semaphores, semaphore)
	}

	return semaphores, nil
}

func (a *SyncPrimitiveAllocator) AcquireSemaphore() (*Semaphore, error) {
	semaphores, err := a.AcquireSemaphores(1)
	if err != nil {
		return nil, err
	}
	return semaphores[0], nil
}

// ReleaseSemaphores returns semaphores to the free queue. Semaphores this allocator does not own
// are skipped.
func (a *SyncPrimitiveAllocator) ReleaseSemaphores(semaphores ...*Semaphore) {
	a.logger.Debug("SyncPrimitiveAllocator::ReleaseSemaphores")

	a.semaphoreMutex.Lock()
	defer a.semaphoreMutex.Unlock()

	a.releaseSemaphoresLocked(semaphores)
}

func (a *SyncPrimitiveAllocator) releaseSemaphoresLocked(semaphores []*Semaphore) {
	for _, semaphore := range semaphores {
		if semaphore == nil || !a.allSemaphores.Has(semaphore) || !semaphore.inUse {
			a.logger.Warn("SyncPrimitiveAllocator::ReleaseSemaphores", slog.String("message", "semaphore is not held from this allocator"))
			continue
		}
		semaphore.inUse = false
		a.freeSemaphores = append(a.freeSemaphores, semaphore)
	}
}

func (a *SyncPrimitiveAllocator) SemaphoreExists(semaphore *Semaphore) bool {
	a.semaphoreMutex.Lock()
	defer a.semaphoreMutex.Unlock()
	return a.allSemaphores.Has(semaphore)
}

func (a *SyncPrimitiveAllocator) destroy() {
	a.fenceMutex.Lock()
	a.allFences.Iter(func(fence *Fence, _ struct{}) bool {
		a.device.DestroyFence(fence.native)
		a.stats.trackDestroyed(ResourceTypeFence)
		return false
	})
	a.allFences.Clear()
	a.freeFences = nil
	a.fenceMutex.Unlock()

	a.semaphoreMutex.Lock()
	a.allSemaphores.Iter(func(semaphore *Semaphore, _ struct{}) bool {
		a.device.DestroySemaphore(semaphore.native)
		a.stats.trackDestroyed(ResourceTypeSemaphore)
		return false
	})
	a.allSemaphores.Clear()
	a.freeSemaphores = nil
	a.semaphoreMutex.Unlock()
}
