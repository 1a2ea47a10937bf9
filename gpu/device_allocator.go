package gpu

import (
	"log/slog"
	"math"
	"math/bits"
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/forge/fatal"
	"github.com/vkngwrapper/forge/gpu/internal/objpool"
	"github.com/vkngwrapper/forge/hal"
	"github.com/vkngwrapper/forge/internal/utils"
	"github.com/vkngwrapper/forge/result"
	"golang.org/x/exp/slices"
)

// Allocatable is a resource whose backing memory comes from a DeviceAllocator: a *Buffer or an
// *Image.
type Allocatable interface {
	allocationKey() allocationKey
	allocationName() string
	allocationType() ResourceType
}

// allocationKey identifies an allocation by the pool slot of the resource it backs.
type allocationKey struct {
	kind   ResourceType
	handle objpool.Handle
}

type hostAccessPattern int

const (
	hostPatternNone hostAccessPattern = iota
	hostPatternSequentialWrite
	hostPatternRandom
)

// memoryPreferences is the memory property selection for a MemoryDomain.
type memoryPreferences struct {
	required     hal.MemoryPropertyFlags
	preferred    hal.MemoryPropertyFlags
	notPreferred hal.MemoryPropertyFlags
	access       hostAccessPattern
	dedicated    bool
	mapped       bool
}

func preferencesForDomain(domain MemoryDomain) memoryPreferences {
	switch domain {
	case MemoryDomainHost:
		return memoryPreferences{
			required:  hal.MemoryPropertyHostVisible,
			preferred: hal.MemoryPropertyHostCached | hal.MemoryPropertyHostCoherent,
			access:    hostPatternSequentialWrite,
			mapped:    true,
		}
	case MemoryDomainUpload:
		return memoryPreferences{
			required:     hal.MemoryPropertyHostVisible | hal.MemoryPropertyHostCoherent,
			notPreferred: hal.MemoryPropertyHostCached,
			access:       hostPatternSequentialWrite,
			mapped:       true,
		}
	case MemoryDomainReadback:
		return memoryPreferences{
			required:  hal.MemoryPropertyHostVisible | hal.MemoryPropertyHostCoherent,
			preferred: hal.MemoryPropertyHostCached,
			access:    hostPatternRandom,
			mapped:    true,
		}
	}

	return memoryPreferences{
		required:  hal.MemoryPropertyDeviceLocal,
		dedicated: true,
	}
}

type allocation struct {
	key             allocationKey
	name            string
	memory          hal.DeviceMemory
	memoryTypeIndex int
	size            int
	domain          MemoryDomain
	access          hostAccessPattern

	mapCount   int
	persistent bool
	mapped     unsafe.Pointer
}

// DeviceAllocator backs buffers and images with device memory. Every resource receives its own
// allocation, selected from the memory types that satisfy the resource's MemoryDomain.
type DeviceAllocator struct {
	logger       *slog.Logger
	device       hal.Device
	errorHandler *fatal.ErrorHandler

	memoryProperties    hal.MemoryProperties
	nonCoherentAtomSize int

	mutex       utils.Guard
	allocations *swiss.Map[allocationKey, *allocation]
	totalBytes  int
}

func newDeviceAllocator(logger *slog.Logger, device hal.Device, errorHandler *fatal.ErrorHandler, synchronized bool) *DeviceAllocator {
	atomSize := device.Properties().Limits.NonCoherentAtomSize
	if atomSize <= 0 {
		atomSize = 1
	}

	return &DeviceAllocator{
		logger:              logger,
		device:              device,
		errorHandler:        errorHandler,
		memoryProperties:    device.MemoryProperties(),
		nonCoherentAtomSize: atomSize,
		mutex:               utils.Guard{Enabled: synchronized},
		allocations:         swiss.NewMap[allocationKey, *allocation](64),
	}
}

// findMemoryTypeIndex returns the allowed memory type that has every required flag and misses
// the fewest preferences.
func (a *DeviceAllocator) findMemoryTypeIndex(memoryTypeBits uint32, prefs memoryPreferences) (int, error) {
	bestMemoryTypeIndex := -1
	minCost := math.MaxInt

	for memTypeIndex, memType := range a.memoryProperties.MemoryTypes {
		memTypeBit := uint32(1) << memTypeIndex
		if memTypeBit&memoryTypeBits == 0 {
			continue
		}

		flags := memType.PropertyFlags
		if prefs.required&flags != prefs.required {
			continue
		}

		missingPreferredFlags := prefs.preferred & ^flags
		presentNotPreferredFlags := prefs.notPreferred & flags
		cost := bits.OnesCount32(uint32(missingPreferredFlags)) + bits.OnesCount32(uint32(presentNotPreferredFlags))
		if cost == 0 {
			return memTypeIndex, nil
		} else if cost < minCost {
			bestMemoryTypeIndex = memTypeIndex
			minCost = cost
		}
	}

	if bestMemoryTypeIndex < 0 {
		return -1, result.Newf(result.FeatureNotPresent, "no memory type satisfies %s", prefs.required)
	}

	return bestMemoryTypeIndex, nil
}

func (a *DeviceAllocator) isHostNonCoherent(memoryTypeIndex int) bool {
	flags := a.memoryProperties.MemoryTypes[memoryTypeIndex].PropertyFlags
	return flags&(hal.MemoryPropertyHostVisible|hal.MemoryPropertyHostCoherent) == hal.MemoryPropertyHostVisible
}

func (a *DeviceAllocator) isHostVisible(memoryTypeIndex int) bool {
	return a.memoryProperties.MemoryTypes[memoryTypeIndex].PropertyFlags&hal.MemoryPropertyHostVisible != 0
}

// AllocateBuffer allocates and binds memory for buffer according to its domain.
func (a *DeviceAllocator) AllocateBuffer(buffer *Buffer) error {
	a.logger.Debug("DeviceAllocator::AllocateBuffer")

	requirements := a.device.GetBufferMemoryRequirements(buffer.native)
	deviceAddress := buffer.info.Usage&hal.BufferUsageShaderDeviceAddress != 0

	alloc, err := a.allocate(buffer, requirements, buffer.info.Domain, deviceAddress)
	if err != nil {
		return err
	}

	err = a.device.BindBufferMemory(buffer.native, alloc.memory, 0)
	if err != nil {
		a.release(alloc)
		return errors.Wrapf(err, "failed to bind memory for buffer %q", buffer.name)
	}

	return a.register(alloc)
}

// AllocateImage allocates and binds memory for image according to its domain.
func (a *DeviceAllocator) AllocateImage(image *Image) error {
	a.logger.Debug("DeviceAllocator::AllocateImage")

	requirements := a.device.GetImageMemoryRequirements(image.native)

	alloc, err := a.allocate(image, requirements, image.info.Domain, false)
	if err != nil {
		return err
	}

	err = a.device.BindImageMemory(image.native, alloc.memory, 0)
	if err != nil {
		a.release(alloc)
		return errors.Wrapf(err, "failed to bind memory for image %q", image.name)
	}

	return a.register(alloc)
}

func (a *DeviceAllocator) allocate(resource Allocatable, requirements hal.MemoryRequirements, domain MemoryDomain, deviceAddress bool) (*allocation, error) {
	prefs := preferencesForDomain(domain)

	memoryTypeIndex, err := a.findMemoryTypeIndex(requirements.MemoryTypeBits, prefs)
	if err != nil {
		return nil, err
	}

	memory, err := a.device.AllocateMemory(hal.MemoryAllocateInfo{
		Size:            requirements.Size,
		MemoryTypeIndex: memoryTypeIndex,
		DeviceAddress:   deviceAddress,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to allocate %d bytes of %s memory", requirements.Size, domain)
	}

	alloc := &allocation{
		key:             resource.allocationKey(),
		name:            resource.allocationName(),
		memory:          memory,
		memoryTypeIndex: memoryTypeIndex,
		size:            requirements.Size,
		domain:          domain,
		access:          prefs.access,
	}

	// Persistent maps are dropped silently when the chosen type is not host visible.
	if prefs.mapped && a.isHostVisible(memoryTypeIndex) {
		ptr, err := a.device.MapMemory(memory, 0, -1)
		if err != nil {
			a.device.FreeMemory(memory)
			return nil, errors.Wrapf(err, "failed to persistently map %s memory", domain)
		}
		alloc.persistent = true
		alloc.mapped = ptr
	}

	return alloc, nil
}

func (a *DeviceAllocator) register(alloc *allocation) error {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	if a.allocations.Has(alloc.key) {
		a.errorHandler.Assertf(false, "%s %q already has backing memory", alloc.key.kind, alloc.name)
		a.release(alloc)
		return result.Newf(result.RuntimeError, "%s %q already has backing memory", alloc.key.kind, alloc.name)
	}

	a.allocations.Put(alloc.key, alloc)
	a.totalBytes += alloc.size
	return nil
}

func (a *DeviceAllocator) release(alloc *allocation) {
	if alloc.mapped != nil {
		a.device.UnmapMemory(alloc.memory)
		alloc.mapped = nil
	}
	a.device.FreeMemory(alloc.memory)
}

func (a *DeviceAllocator) lookup(resource Allocatable) (*allocation, error) {
	alloc, ok := a.allocations.Get(resource.allocationKey())
	if !ok {
		a.errorHandler.Assertf(false, "%s %q has no allocation owned by this allocator", resource.allocationType(), resource.allocationName())
		return nil, result.Newf(result.RuntimeError, "%s %q has no allocation owned by this allocator", resource.allocationType(), resource.allocationName())
	}
	return alloc, nil
}

// Free releases the memory backing resource. Freeing a resource this allocator did not back is
// an assertion failure.
func (a *DeviceAllocator) Free(resource Allocatable) error {
	a.logger.Debug("DeviceAllocator::Free")

	a.mutex.Lock()
	defer a.mutex.Unlock()

	alloc, err := a.lookup(resource)
	if err != nil {
		return err
	}

	if alloc.mapCount > 0 {
		a.logger.Warn("DeviceAllocator::Free",
			slog.String("resource", alloc.name),
			slog.Int("mapCount", alloc.mapCount),
			slog.String("message", "freeing memory that is still mapped"))
	}

	a.allocations.Delete(alloc.key)
	a.totalBytes -= alloc.size
	a.release(alloc)
	return nil
}

// Map returns a host pointer to the start of resource's memory. Maps are reference counted and
// every Map must be paired with an Unmap.
func (a *DeviceAllocator) Map(resource Allocatable) (unsafe.Pointer, error) {
	a.logger.Debug("DeviceAllocator::Map")

	a.mutex.Lock()
	defer a.mutex.Unlock()

	alloc, err := a.lookup(resource)
	if err != nil {
		return nil, err
	}

	if !a.isHostVisible(alloc.memoryTypeIndex) {
		return nil, result.Newf(result.RuntimeError, "attempted to map %s %q, whose memory is not host visible", resource.allocationType(), alloc.name)
	}

	if alloc.mapped == nil {
		ptr, err := a.device.MapMemory(alloc.memory, 0, -1)
		if err != nil {
			return nil, err
		}
		alloc.mapped = ptr
	}

	alloc.mapCount++
	return alloc.mapped, nil
}

func (a *DeviceAllocator) Unmap(resource Allocatable) error {
	a.logger.Debug("DeviceAllocator::Unmap")

	a.mutex.Lock()
	defer a.mutex.Unlock()

	alloc, err := a.lookup(resource)
	if err != nil {
		return err
	}

	if alloc.mapCount == 0 {
		return result.Newf(result.RuntimeError, "attempted to unmap %s %q, which is not mapped", resource.allocationType(), alloc.name)
	}

	alloc.mapCount--
	if alloc.mapCount == 0 && !alloc.persistent {
		a.device.UnmapMemory(alloc.memory)
		alloc.mapped = nil
	}
	return nil
}

// Flush makes host writes in [offset, offset+size) visible to the device. A size of zero or
// less covers the rest of the allocation. Coherent memory needs no flush.
func (a *DeviceAllocator) Flush(resource Allocatable, offset, size int) error {
	a.logger.Debug("DeviceAllocator::Flush")

	a.mutex.RLock()
	defer a.mutex.RUnlock()

	alloc, err := a.lookup(resource)
	if err != nil {
		return err
	}

	memRange, ok, err := a.flushOrInvalidateRange(alloc, offset, size)
	if err != nil || !ok {
		return err
	}
	return a.device.FlushMappedMemoryRanges(memRange)
}

// Invalidate makes device writes in [offset, offset+size) visible to the host.
func (a *DeviceAllocator) Invalidate(resource Allocatable, offset, size int) error {
	a.logger.Debug("DeviceAllocator::Invalidate")

	a.mutex.RLock()
	defer a.mutex.RUnlock()

	alloc, err := a.lookup(resource)
	if err != nil {
		return err
	}

	memRange, ok, err := a.flushOrInvalidateRange(alloc, offset, size)
	if err != nil || !ok {
		return err
	}
	return a.device.InvalidateMappedMemoryRanges(memRange)
}

func (a *DeviceAllocator) flushOrInvalidateRange(alloc *allocation, offset, size int) (hal.MappedMemoryRange, bool, error) {
	if !a.isHostNonCoherent(alloc.memoryTypeIndex) {
		return hal.MappedMemoryRange{}, false, nil
	}

	if offset > alloc.size {
		return hal.MappedMemoryRange{}, false, result.Newf(result.ArgumentOutOfRange, "offset %d is past the end of the allocation, which is size %d", offset, alloc.size)
	}
	if size > 0 && offset+size > alloc.size {
		return hal.MappedMemoryRange{}, false, result.Newf(result.ArgumentOutOfRange, "offset %d places the end of the range %d past the end of the allocation, which is size %d", offset, offset+size, alloc.size)
	}

	memRange := hal.MappedMemoryRange{
		Memory: alloc.memory,
		Offset: utils.AlignDown(offset, a.nonCoherentAtomSize),
	}
	memRange.Size = alloc.size - memRange.Offset
	if size > 0 {
		alignedSize := utils.AlignUp(size+(offset-memRange.Offset), a.nonCoherentAtomSize)
		if alignedSize < memRange.Size {
			memRange.Size = alignedSize
		}
	}

	return memRange, true, nil
}

// AllocationCount returns the number of live allocations.
func (a *DeviceAllocator) AllocationCount() int {
	a.mutex.RLock()
	defer a.mutex.RUnlock()
	return a.allocations.Count()
}

func (a *DeviceAllocator) AllocatedBytes() int {
	a.mutex.RLock()
	defer a.mutex.RUnlock()
	return a.totalBytes
}

func (a *DeviceAllocator) sortedAllocations() []*allocation {
	allocs := make([]*allocation, 0, a.allocations.Count())
	a.allocations.Iter(func(_ allocationKey, alloc *allocation) bool {
		allocs = append(allocs, alloc)
		return false
	})
	slices.SortFunc(allocs, func(left, right *allocation) int {
		if left.key.kind != right.key.kind {
			return int(left.key.kind) - int(right.key.kind)
		}
		return int(left.key.handle.Index()) - int(right.key.handle.Index())
	})
	return allocs
}

// BuildStatsString renders the live allocations as JSON.
func (a *DeviceAllocator) BuildStatsString() string {
	a.mutex.RLock()
	defer a.mutex.RUnlock()

	writer := jwriter.NewWriter()
	obj := writer.Object()

	obj.Name("TotalBytes").Int(a.totalBytes)
	obj.Name("AllocationCount").Int(a.allocations.Count())

	types := obj.Name("MemoryTypes").Array()
	for index, memType := range a.memoryProperties.MemoryTypes {
		o := types.Object()
		o.Name("Index").Int(index)
		o.Name("HeapIndex").Int(memType.HeapIndex)
		o.Name("Flags").String(memType.PropertyFlags.String())
		o.End()
	}
	types.End()

	allocs := obj.Name("Allocations").Array()
	for _, alloc := range a.sortedAllocations() {
		o := allocs.Object()
		o.Name("Type").String(alloc.key.kind.String())
		o.Name("Size").Int(alloc.size)
		o.Name("Domain").String(alloc.domain.String())
		o.Name("MemoryTypeIndex").Int(alloc.memoryTypeIndex)
		o.Name("Mapped").Bool(alloc.mapped != nil)
		if alloc.name != "" {
			o.Name("Name").String(alloc.name)
		}
		o.End()
	}
	allocs.End()

	obj.End()
	return string(writer.Bytes())
}

// destroy frees every remaining allocation. Each one is a leak and is logged as such.
func (a *DeviceAllocator) destroy() {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	for _, alloc := range a.sortedAllocations() {
		a.logger.Warn("DeviceAllocator::Destroy",
			slog.String("type", alloc.key.kind.String()),
			slog.String("name", alloc.name),
			slog.Int("size", alloc.size),
			slog.String("message", "allocation was not freed before teardown"))
		a.release(alloc)
	}
	a.allocations.Clear()
	a.totalBytes = 0
}
