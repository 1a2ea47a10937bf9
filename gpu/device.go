package gpu

import (
	"io"
	"log/slog"
	"math"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/forge/fatal"
	"github.com/vkngwrapper/forge/gpu/internal/objpool"
	"github.com/vkngwrapper/forge/hal"
	"github.com/vkngwrapper/forge/result"
)

// executeContext is the recording context reserved for ExecuteCommand.
const executeContext = RecordingContext(math.MaxUint64)

// Device owns every object created through it along with the allocators that back them. It is
// created once per logical device and destroyed last.
type Device struct {
	logger       *slog.Logger
	driver       hal.Device
	options      CreateOptions
	errorHandler *fatal.ErrorHandler
	properties   hal.PhysicalDeviceProperties
	features     FeatureSet
	stats        *ResourceStats

	queues [queueTypeCount]*Queue

	allocator *DeviceAllocator
	sync      *SyncPrimitiveAllocator
	commands  *CommandBufferAllocator
	samplers  *SamplerPool
	queries   *QueryPoolAllocator
	bindless  *BindlessResource

	buffers         *objpool.Pool[Buffer]
	images          *objpool.Pool[Image]
	imageViews      *objpool.Pool[ImageView]
	samplerObjects  *objpool.Pool[Sampler]
	shaders         *objpool.Pool[Shader]
	programs        *objpool.Pool[ShaderProgram]
	setLayouts      *objpool.Pool[DescriptorSetLayout]
	pipelineLayouts *objpool.Pool[PipelineLayout]
	queryPools      *objpool.Pool[QueryPool]

	executeMutex sync.Mutex
	destroyed    bool
}

// NewDevice builds a Device on top of driver. A nil logger discards all output.
func NewDevice(logger *slog.Logger, driver hal.Device, options CreateOptions) (*Device, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if options.ErrorHandler == nil {
		options.ErrorHandler = fatal.Default()
	}
	if options.FeatureRequirements == nil {
		options.FeatureRequirements = DefaultFeatureRequirements()
	}

	features, err := ValidateFeatures(logger, options.FeatureRequirements, driver.Features())
	if err != nil {
		return nil, err
	}

	d := &Device{
		logger:          logger,
		driver:          driver,
		options:         options,
		errorHandler:    options.ErrorHandler,
		properties:      driver.Properties(),
		features:        features,
		buffers:         objpool.New[Buffer](64),
		images:          objpool.New[Image](64),
		imageViews:      objpool.New[ImageView](64),
		samplerObjects:  objpool.New[Sampler](32),
		shaders:         objpool.New[Shader](32),
		programs:        objpool.New[ShaderProgram](32),
		setLayouts:      objpool.New[DescriptorSetLayout](16),
		pipelineLayouts: objpool.New[PipelineLayout](16),
		queryPools:      objpool.New[QueryPool](64),
	}
	if options.TrackResourceStats {
		d.stats = NewResourceStats()
	}

	err = d.discoverQueues()
	if err != nil {
		return nil, err
	}

	d.allocator = newDeviceAllocator(logger, driver, d.errorHandler, options.Synchronized)
	d.sync = newSyncPrimitiveAllocator(logger, driver, d.stats, options.Synchronized)
	d.commands = newCommandBufferAllocator(d, options.Commands)

	err = d.initialize()
	if err != nil {
		d.teardown()
		return nil, err
	}

	logger.Debug("Device::NewDevice",
		slog.String("device", d.properties.DeviceName),
		slog.Any("extensions", features.Extensions))
	return d, nil
}

func (d *Device) initialize() error {
	var err error
	if d.options.CreateSamplerPresets {
		d.samplers, err = newSamplerPool(d.logger, d)
		if err != nil {
			return err
		}
	}

	d.queries, err = newQueryPoolAllocator(d, d.options.QueryPools)
	if err != nil {
		return err
	}

	if d.options.Bindless.Enabled {
		err = d.assertf(d.features.Enabled.DescriptorIndexing && d.features.Enabled.BufferDeviceAddress,
			"bindless resources require descriptor indexing and buffer device addresses")
		if err != nil {
			return err
		}
		d.bindless, err = newBindlessResource(d, d.options.Bindless)
		if err != nil {
			return err
		}
	}

	return nil
}

// discoverQueues picks the first graphics family, plus compute and transfer families that are
// dedicated to that work when the device has them.
func (d *Device) discoverQueues() error {
	families := d.driver.QueueFamilies()

	pick := func(queueType QueueType, required, excluded hal.QueueFlags) {
		for index, family := range families {
			if family.QueueCount == 0 || family.QueueFlags&required != required || family.QueueFlags&excluded != 0 {
				continue
			}
			d.queues[queueType] = &Queue{
				logger:      d.logger,
				device:      d.driver,
				native:      d.driver.GetQueue(index, 0),
				queueType:   queueType,
				familyIndex: index,
			}
			return
		}
	}

	pick(QueueGraphics, hal.QueueGraphics, 0)
	pick(QueueCompute, hal.QueueCompute, hal.QueueGraphics)
	pick(QueueTransfer, hal.QueueTransfer, hal.QueueGraphics|hal.QueueCompute)

	if d.queues[QueueGraphics] == nil {
		return result.New(result.FeatureNotPresent, "the device has no graphics queue family")
	}
	return nil
}

// Queue returns the queue for queueType. A missing transfer queue falls back to compute and then
// graphics, and a missing compute queue falls back to graphics.
func (d *Device) Queue(queueType QueueType) *Queue {
	if queueType < 0 || queueType >= queueTypeCount {
		return nil
	}

	switch queueType {
	case QueueTransfer:
		if d.queues[QueueTransfer] != nil {
			return d.queues[QueueTransfer]
		}
		fallthrough
	case QueueCompute:
		if d.queues[QueueCompute] != nil {
			return d.queues[QueueCompute]
		}
	}
	return d.queues[QueueGraphics]
}

func (d *Device) assertf(condition bool, format string, args ...any) error {
	if d.errorHandler.Assertf(condition, format, args...) {
		return nil
	}
	return result.Newf(result.RuntimeError, format, args...)
}

func (d *Device) Driver() hal.Device                       { return d.driver }
func (d *Device) Logger() *slog.Logger                     { return d.logger }
func (d *Device) Properties() hal.PhysicalDeviceProperties { return d.properties }
func (d *Device) Features() FeatureSet                     { return d.features }
func (d *Device) ErrorHandler() *fatal.ErrorHandler        { return d.errorHandler }
func (d *Device) Allocator() *DeviceAllocator              { return d.allocator }
func (d *Device) SyncPrimitives() *SyncPrimitiveAllocator  { return d.sync }
func (d *Device) CommandBuffers() *CommandBufferAllocator  { return d.commands }
func (d *Device) QueryPools() *QueryPoolAllocator          { return d.queries }

// Stats returns the device's resource statistics, or nil when tracking is disabled.
func (d *Device) Stats() *ResourceStats { return d.stats }

// Bindless returns the bindless resource, or nil when bindless support is disabled.
func (d *Device) Bindless() *BindlessResource { return d.bindless }

// SamplerPool returns the preset samplers, or nil when presets were not created.
func (d *Device) SamplerPool() *SamplerPool { return d.samplers }

// SetDebugObjectName attaches name to a native object. It does nothing without debug utils.
func (d *Device) SetDebugObjectName(objectType hal.ObjectType, handle uint64, name string) error {
	if !d.features.Enabled.DebugUtils || name == "" || handle == 0 {
		return nil
	}
	return d.driver.SetDebugName(objectType, handle, name)
}

func (d *Device) nameObject(objectType hal.ObjectType, handle uint64, name string) {
	err := d.SetDebugObjectName(objectType, handle, name)
	if err != nil {
		d.logger.Warn("Device::SetDebugObjectName", slog.String("name", name), slog.String("message", "failed to set debug name"), slog.Any("error", err))
	}
}

func (d *Device) WaitIdle() error {
	d.logger.Debug("Device::WaitIdle")
	return d.driver.WaitIdle()
}

// ExecuteCommand records a one-off command buffer with record, submits it to the queue for
// queueType and blocks until it completes.
func (d *Device) ExecuteCommand(queueType QueueType, record func(cmd *CommandBuffer) error) error {
	d.logger.Debug("Device::ExecuteCommand")

	err := d.assertf(record != nil, "ExecuteCommand requires a recording function")
	if err != nil {
		return err
	}

	queue := d.Queue(queueType)
	err = d.assertf(queue != nil, "the device has no queue for %s work", queueType)
	if err != nil {
		return err
	}

	d.executeMutex.Lock()
	defer d.executeMutex.Unlock()

	cmd, err := d.commands.Acquire(executeContext, queueType, CommandBufferUsageOneTime)
	if err != nil {
		return err
	}
	defer d.commands.Release(cmd)

	err = cmd.Begin()
	if err != nil {
		return err
	}
	err = record(cmd)
	if err != nil {
		return err
	}
	err = cmd.End()
	if err != nil {
		return err
	}

	fence, err := d.sync.AcquireFence(false)
	if err != nil {
		return err
	}
	defer func() {
		if releaseErr := d.sync.ReleaseFence(fence); releaseErr != nil {
			d.logger.Warn("Device::ExecuteCommand", slog.String("message", "failed to release fence"), slog.Any("error", releaseErr))
		}
	}()

	err = queue.Submit([]QueueSubmitInfo{{CommandBuffers: []*CommandBuffer{cmd}}}, fence)
	if err != nil {
		return err
	}

	err = fence.Wait(-1)
	if err != nil {
		return errors.Wrap(err, "failed waiting for executed command")
	}
	cmd.breadcrumbs.MarkCompleted()
	return nil
}

// TimeQueryResults returns the time between two timestamp queries of pool in unit. It waits for
// both results to be available.
func (d *Device) TimeQueryResults(pool *QueryPool, firstQuery, secondQuery int, unit TimeUnit) (float64, error) {
	err := d.assertf(pool != nil && pool.Type() == hal.QueryTypeTimestamp, "TimeQueryResults requires a timestamp pool")
	if err != nil {
		return 0, err
	}
	err = d.assertf(firstQuery >= 0 && firstQuery < pool.QueryCount() && secondQuery >= 0 && secondQuery < pool.QueryCount(),
		"queries %d and %d must be in range of a pool with %d queries", firstQuery, secondQuery, pool.QueryCount())
	if err != nil {
		return 0, err
	}

	first, err := d.driver.GetQueryPoolResults(pool.native, firstQuery, 1, true)
	if err != nil {
		return 0, errors.Wrap(err, "failed to read timestamp query")
	}
	second, err := d.driver.GetQueryPoolResults(pool.native, secondQuery, 1, true)
	if err != nil {
		return 0, errors.Wrap(err, "failed to read timestamp query")
	}

	nanoseconds := float64(second[0]-first[0]) * float64(d.properties.Limits.TimestampPeriod)

	switch unit {
	case TimeUnitSeconds:
		return nanoseconds * 1e-9, nil
	case TimeUnitMilliseconds:
		return nanoseconds * 1e-6, nil
	case TimeUnitMicroseconds:
		return nanoseconds * 1e-3, nil
	case TimeUnitNanoseconds:
		return nanoseconds, nil
	}
	return 0, result.Newf(result.ArgumentOutOfRange, "unknown time unit %d", unit)
}

// Destroy waits for the device to go idle and releases everything it owns. Objects the
// application never destroyed are released as leaks.
func (d *Device) Destroy() error {
	d.logger.Debug("Device::Destroy")

	if d.destroyed {
		return d.assertf(false, "device was already destroyed")
	}

	err := d.WaitIdle()
	if err != nil {
		d.logger.Warn("Device::Destroy", slog.String("message", "failed to wait for idle before teardown"), slog.Any("error", err))
	}

	d.teardown()
	d.driver.Destroy()
	return nil
}

func (d *Device) teardown() {
	d.destroyed = true

	d.commands.destroy()
	if d.bindless != nil {
		d.bindless.clear()
		d.bindless = nil
	}
	if d.queries != nil {
		d.queries.destroy()
		d.queries = nil
	}
	if d.samplers != nil {
		d.samplers.destroy(d)
		d.samplers = nil
	}
	d.sync.destroy()

	if d.stats != nil {
		for _, kind := range d.stats.Leaks() {
			d.logger.Warn("Device::Destroy", slog.String("type", kind.String()), slog.Int("active", d.stats.Active(kind)), slog.String("message", "objects were not destroyed before teardown"))
		}
	}

	d.drainPools()
	d.allocator.destroy()
}

// drainPools releases every object still owned by the device, dependents first.
func (d *Device) drainPools() {
	for _, program := range d.programs.Drain() {
		d.releaseProgram(program)
	}
	for _, shader := range d.shaders.Drain() {
		shader.handle = objpool.Handle{}
		d.stats.trackDestroyed(ResourceTypeShader)
	}
	for _, layout := range d.pipelineLayouts.Drain() {
		d.releasePipelineLayout(layout)
	}
	for _, layout := range d.setLayouts.Drain() {
		d.releaseDescriptorSetLayout(layout)
	}
	for _, view := range d.imageViews.Drain() {
		d.releaseImageView(view)
	}
	for _, image := range d.images.Drain() {
		d.releaseImage(image)
	}
	for _, buffer := range d.buffers.Drain() {
		d.releaseBuffer(buffer)
	}
	for _, sampler := range d.samplerObjects.Drain() {
		d.releaseSampler(sampler)
	}
	for _, pool := range d.queryPools.Drain() {
		d.releaseQueryPool(pool)
	}
}

// GenerateReport summarizes live objects and allocations.
func (d *Device) GenerateReport() string {
	if d.stats == nil {
		return "resource statistics are disabled"
	}
	return d.stats.GenerateReport()
}
