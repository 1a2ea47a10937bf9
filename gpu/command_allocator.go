package gpu

import (
	"log/slog"
	"sync/atomic"

	"github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
	"github.com/vkngwrapper/forge/hal"
	"github.com/vkngwrapper/forge/internal/utils"
)

// RecordingContext identifies one recording thread of the application. Each context gets its own
// command pool per queue type, so a context must not acquire from two goroutines at once.
type RecordingContext uint64

// ThreadCommandPool is a command pool owned by one RecordingContext. Buffers may be released from
// any goroutine.
type ThreadCommandPool struct {
	logger    *slog.Logger
	device    *Device
	native    hal.CommandPool
	queue     *Queue
	transient bool

	mutex     utils.Guard
	buffers   []*CommandBuffer
	available []*CommandBuffer
	active    *swiss.Map[*CommandBuffer, struct{}]
}

func newThreadCommandPool(device *Device, queue *Queue, transient bool) (*ThreadCommandPool, error) {
	flags := hal.CommandPoolCreateResetCommandBuffer
	if transient {
		flags |= hal.CommandPoolCreateTransient
	}

	native, err := device.driver.CreateCommandPool(hal.CommandPoolCreateInfo{
		Flags:            flags,
		QueueFamilyIndex: queue.familyIndex,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create command pool for the %s queue", queue.queueType)
	}
	device.stats.trackCreated(ResourceTypeCommandPool)

	return &ThreadCommandPool{
		logger:    device.logger,
		device:    device,
		native:    native,
		queue:     queue,
		transient: transient,
		mutex:     utils.Guard{Enabled: device.options.Synchronized},
		active:    swiss.NewMap[*CommandBuffer, struct{}](8),
	}, nil
}

func (p *ThreadCommandPool) Native() hal.CommandPool { return p.native }
func (p *ThreadCommandPool) Queue() *Queue           { return p.queue }

func (p *ThreadCommandPool) allocate(count int) ([]*CommandBuffer, error) {
	natives, err := p.device.driver.AllocateCommandBuffers(p.native, count)
	if err != nil {
		return nil, errors.Wrap(err, "failed to allocate command buffers")
	}

	buffers := make([]*CommandBuffer, 0, count)
	for _, native := range natives {
		buffers = append(buffers, newCommandBuffer(p.device, p, native))
		p.device.stats.trackCreated(ResourceTypeCommandBuffer)
	}
	p.buffers = append(p.buffers, buffers...)
	return buffers, nil
}

// Acquire returns a command buffer in the Initial state, reusing a released one when possible.
func (p *ThreadCommandPool) Acquire(usage CommandBufferUsage) (*CommandBuffer, error) {
	p.logger.Debug("ThreadCommandPool::Acquire")

	p.mutex.Lock()
	defer p.mutex.Unlock()

	var cmd *CommandBuffer
	if len(p.available) > 0 {
		last := len(p.available) - 1
		cmd = p.available[last]
		p.available = p.available[:last]

		err := cmd.Reset()
		if err != nil {
			p.available = append(p.available, cmd)
			return nil, err
		}
	} else {
		allocated, err := p.allocate(1)
		if err != nil {
			return nil, err
		}
		cmd = allocated[0]
	}

	cmd.usage = usage
	p.active.Put(cmd, struct{}{})
	return cmd, nil
}

// Release returns cmd for reuse. It reports whether cmd was active in this pool.
func (p *ThreadCommandPool) Release(cmd *CommandBuffer) bool {
	p.logger.Debug("ThreadCommandPool::Release")

	p.mutex.Lock()
	defer p.mutex.Unlock()

	if !p.active.Has(cmd) {
		p.logger.Warn("ThreadCommandPool::Release", slog.String("message", "command buffer is not active in this pool"))
		return false
	}

	p.active.Delete(cmd)
	p.available = append(p.available, cmd)
	return true
}

// Reset resets every buffer of the pool to the Initial state and makes it available again.
// With releaseResources the buffers are freed instead and the pool returns its memory.
func (p *ThreadCommandPool) Reset(releaseResources bool) error {
	p.logger.Debug("ThreadCommandPool::Reset")

	p.mutex.Lock()
	defer p.mutex.Unlock()

	if releaseResources {
		p.freeAllLocked()
	}

	err := p.device.driver.ResetCommandPool(p.native, releaseResources)
	if err != nil {
		return errors.Wrap(err, "failed to reset command pool")
	}

	for _, cmd := range p.buffers {
		cmd.resetState()
	}
	p.active.Clear()
	p.available = append(p.available[:0], p.buffers...)
	return nil
}

// Trim returns unused pool memory to the driver.
func (p *ThreadCommandPool) Trim() {
	p.logger.Debug("ThreadCommandPool::Trim")

	p.mutex.Lock()
	defer p.mutex.Unlock()

	p.device.driver.TrimCommandPool(p.native)
}

func (p *ThreadCommandPool) ActiveCount() int {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return p.active.Count()
}

func (p *ThreadCommandPool) freeAllLocked() {
	if len(p.buffers) == 0 {
		return
	}

	natives := make([]hal.CommandBuffer, 0, len(p.buffers))
	for _, cmd := range p.buffers {
		cmd.releaseDescriptorSets()
		natives = append(natives, cmd.native)
		p.device.stats.trackDestroyed(ResourceTypeCommandBuffer)
	}
	p.device.driver.FreeCommandBuffers(p.native, natives...)

	p.buffers = nil
	p.available = nil
	p.active.Clear()
}

func (p *ThreadCommandPool) destroy() {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	p.freeAllLocked()
	p.device.driver.DestroyCommandPool(p.native)
	p.device.stats.trackDestroyed(ResourceTypeCommandPool)
}

type CommandBufferAllocatorOptions struct {
	// TransientPools creates pools for short-lived buffers that are reset after every use.
	TransientPools bool
}

type commandPoolKey struct {
	context   RecordingContext
	queueType QueueType
}

// CommandBufferAllocator hands out command buffers from pools keyed by recording context and
// queue type.
type CommandBufferAllocator struct {
	logger  *slog.Logger
	device  *Device
	options CommandBufferAllocatorOptions

	mutex       utils.Guard
	pools       *swiss.Map[commandPoolKey, *ThreadCommandPool]
	activeCount atomic.Int64
}

func newCommandBufferAllocator(device *Device, options CommandBufferAllocatorOptions) *CommandBufferAllocator {
	return &CommandBufferAllocator{
		logger:  device.logger,
		device:  device,
		options: options,
		mutex:   utils.Guard{Enabled: device.options.Synchronized},
		pools:   swiss.NewMap[commandPoolKey, *ThreadCommandPool](8),
	}
}

func (a *CommandBufferAllocator) pool(context RecordingContext, queueType QueueType) (*ThreadCommandPool, error) {
	key := commandPoolKey{context: context, queueType: queueType}

	a.mutex.RLock()
	pool, ok := a.pools.Get(key)
	a.mutex.RUnlock()
	if ok {
		return pool, nil
	}

	a.mutex.Lock()
	defer a.mutex.Unlock()

	pool, ok = a.pools.Get(key)
	if ok {
		return pool, nil
	}

	queue := a.device.Queue(queueType)
	err := a.device.assertf(queue != nil, "the device has no queue for %s work", queueType)
	if err != nil {
		return nil, err
	}

	pool, err = newThreadCommandPool(a.device, queue, a.options.TransientPools)
	if err != nil {
		return nil, err
	}
	a.pools.Put(key, pool)
	return pool, nil
}

// Acquire returns a command buffer for queueType from context's pool.
func (a *CommandBufferAllocator) Acquire(context RecordingContext, queueType QueueType, usage CommandBufferUsage) (*CommandBuffer, error) {
	a.logger.Debug("CommandBufferAllocator::Acquire")

	pool, err := a.pool(context, queueType)
	if err != nil {
		return nil, err
	}

	cmd, err := pool.Acquire(usage)
	if err != nil {
		return nil, err
	}

	a.activeCount.Add(1)
	return cmd, nil
}

// Release returns cmd to the pool it was allocated from, whichever goroutine calls it.
func (a *CommandBufferAllocator) Release(cmd *CommandBuffer) {
	a.logger.Debug("CommandBufferAllocator::Release")

	if cmd == nil || cmd.pool == nil {
		a.logger.Warn("CommandBufferAllocator::Release", slog.String("message", "command buffer was not acquired from this allocator"))
		return
	}

	if cmd.pool.Release(cmd) {
		a.activeCount.Add(-1)
	}
}

// Reset resets and trims every pool, returning all of their command buffers to the Initial
// state. Outstanding command buffers must not be pending execution.
func (a *CommandBufferAllocator) Reset() error {
	a.logger.Debug("CommandBufferAllocator::Reset")

	a.mutex.Lock()
	defer a.mutex.Unlock()

	var resetErr error
	a.pools.Iter(func(_ commandPoolKey, pool *ThreadCommandPool) bool {
		resetErr = pool.Reset(false)
		if resetErr != nil {
			return true
		}
		pool.Trim()
		return false
	})
	if resetErr != nil {
		return resetErr
	}

	a.activeCount.Store(0)
	return nil
}

// ActiveCount returns the number of acquired command buffers not yet released.
func (a *CommandBufferAllocator) ActiveCount() int {
	return int(a.activeCount.Load())
}

func (a *CommandBufferAllocator) PoolCount() int {
	a.mutex.RLock()
	defer a.mutex.RUnlock()
	return a.pools.Count()
}

func (a *CommandBufferAllocator) destroy() {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	a.pools.Iter(func(_ commandPoolKey, pool *ThreadCommandPool) bool {
		pool.destroy()
		return false
	})
	a.pools.Clear()
	a.activeCount.Store(0)
}
