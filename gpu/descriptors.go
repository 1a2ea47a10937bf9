package gpu

import (
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
	"github.com/vkngwrapper/forge/hal"
	"github.com/vkngwrapper/forge/internal/utils"
	"github.com/vkngwrapper/forge/result"
	"golang.org/x/exp/slices"
)

// descriptorSetsPerPool is the number of sets each lazily created descriptor pool can hold.
const descriptorSetsPerPool = 16

type DescriptorSetLayoutCreateInfo struct {
	Flags    hal.DescriptorSetLayoutCreateFlags
	Bindings []hal.DescriptorSetLayoutBinding
}

type descriptorPool struct {
	native    hal.DescriptorPool
	allocated int
}

// DescriptorSetLayout is a set schema together with the pools its sets are allocated from.
type DescriptorSetLayout struct {
	resource
	native hal.DescriptorSetLayout
	info   DescriptorSetLayoutCreateInfo

	logger       *slog.Logger
	device       hal.Device
	stats        *ResourceStats
	poolSizes    []hal.DescriptorPoolSize
	dynamicCount int

	mutex       utils.Guard
	pools       []descriptorPool
	currentPool int
	sets        *swiss.Map[hal.DescriptorSet, int]
}

func newDescriptorSetLayout(logger *slog.Logger, device hal.Device, native hal.DescriptorSetLayout, info DescriptorSetLayoutCreateInfo, stats *ResourceStats, synchronized bool) *DescriptorSetLayout {
	layout := &DescriptorSetLayout{
		native: native,
		info:   info,
		logger: logger,
		device: device,
		stats:  stats,
		mutex:  utils.Guard{Enabled: synchronized},
		sets:   swiss.NewMap[hal.DescriptorSet, int](descriptorSetsPerPool),
	}

	counts := make(map[hal.DescriptorType]int)
	for _, binding := range info.Bindings {
		counts[binding.DescriptorType] += binding.DescriptorCount * descriptorSetsPerPool
		if binding.DescriptorType.IsDynamic() {
			layout.dynamicCount += binding.DescriptorCount
		}
	}
	for descriptorType, count := range counts {
		layout.poolSizes = append(layout.poolSizes, hal.DescriptorPoolSize{Type: descriptorType, DescriptorCount: count})
	}
	slices.SortFunc(layout.poolSizes, func(left, right hal.DescriptorPoolSize) int {
		return int(left.Type) - int(right.Type)
	})

	return layout
}

func (l *DescriptorSetLayout) Native() hal.DescriptorSetLayout           { return l.native }
func (l *DescriptorSetLayout) CreateInfo() DescriptorSetLayoutCreateInfo { return l.info }
func (l *DescriptorSetLayout) Bindings() []hal.DescriptorSetLayoutBinding {
	return l.info.Bindings
}

// IsBindless reports whether sets of this layout may be updated after they are bound.
func (l *DescriptorSetLayout) IsBindless() bool {
	return l.info.Flags&hal.DescriptorSetLayoutCreateUpdateAfterBindPool != 0
}

// DynamicDescriptorCount is the number of dynamic offsets a bind of this layout's sets takes.
func (l *DescriptorSetLayout) DynamicDescriptorCount() int { return l.dynamicCount }

func (l *DescriptorSetLayout) Binding(binding int) (hal.DescriptorSetLayoutBinding, bool) {
	index := slices.IndexFunc(l.info.Bindings, func(b hal.DescriptorSetLayoutBinding) bool {
		return b.Binding == binding
	})
	if index < 0 {
		return hal.DescriptorSetLayoutBinding{}, false
	}
	return l.info.Bindings[index], true
}

// AllocatedSetCount returns the number of sets currently allocated from this layout's pools.
func (l *DescriptorSetLayout) AllocatedSetCount() int {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	return l.sets.Count()
}

func (l *DescriptorSetLayout) createPool() (int, error) {
	native, err := l.device.CreateDescriptorPool(hal.DescriptorPoolCreateInfo{
		Flags:     hal.DescriptorPoolCreateFreeDescriptorSet | hal.DescriptorPoolCreateUpdateAfterBind,
		MaxSets:   descriptorSetsPerPool,
		PoolSizes: l.poolSizes,
	})
	if err != nil {
		return -1, errors.Wrap(err, "failed to create descriptor pool")
	}

	l.pools = append(l.pools, descriptorPool{native: native})
	return len(l.pools) - 1, nil
}

// AllocateSet allocates a set from the first pool with room, creating a new pool when all are
// full.
func (l *DescriptorSetLayout) AllocateSet() (*DescriptorSet, error) {
	l.logger.Debug("DescriptorSetLayout::AllocateSet")

	l.mutex.Lock()
	defer l.mutex.Unlock()

	var poolIndex int
	if l.currentPool < len(l.pools) && l.pools[l.currentPool].allocated < descriptorSetsPerPool {
		poolIndex = l.currentPool
	} else {
		poolIndex = slices.IndexFunc(l.pools, func(pool descriptorPool) bool {
			return pool.allocated < descriptorSetsPerPool
		})
	}

	if poolIndex < 0 {
		var err error
		poolIndex, err = l.createPool()
		if err != nil {
			return nil, err
		}
	}

	pool := &l.pools[poolIndex]
	native, err := l.device.AllocateDescriptorSet(pool.native, l.native)
	if err != nil {
		return nil, errors.Wrap(err, "failed to allocate descriptor set")
	}

	pool.allocated++
	l.currentPool = poolIndex
	l.sets.Put(native, poolIndex)
	l.stats.trackCreated(ResourceTypeDescriptorSet)

	return &DescriptorSet{native: native, layout: l}, nil
}

// FreeSet returns set to the pool it came from.
func (l *DescriptorSetLayout) FreeSet(set *DescriptorSet) error {
	l.logger.Debug("DescriptorSetLayout::FreeSet")

	l.mutex.Lock()
	defer l.mutex.Unlock()

	if set == nil {
		return result.New(result.RuntimeError, "descriptor set free error")
	}

	poolIndex, ok := l.sets.Get(set.native)
	if !ok {
		return result.New(result.RuntimeError, "descriptor set free error")
	}

	err := l.device.FreeDescriptorSet(l.pools[poolIndex].native, set.native)
	if err != nil {
		return errors.Wrap(err, "failed to free descriptor set")
	}

	l.sets.Delete(set.native)
	l.pools[poolIndex].allocated--
	l.currentPool = poolIndex
	set.native = 0
	l.stats.trackDestroyed(ResourceTypeDescriptorSet)
	return nil
}

// UpdateSet writes the resources in update to the binding it names.
func (l *DescriptorSetLayout) UpdateSet(set *DescriptorSet, update DescriptorUpdateInfo) error {
	binding, ok := l.Binding(update.Binding)
	if !ok {
		return result.Newf(result.ArgumentOutOfRange, "binding %d is not part of the set layout", update.Binding)
	}

	write := hal.WriteDescriptorSet{
		DstSet:          set.native,
		DstBinding:      update.Binding,
		DstArrayElement: update.ArrayOffset,
		DescriptorType:  binding.DescriptorType,
	}

	switch binding.DescriptorType {
	case hal.DescriptorTypeSampler:
		for _, sampler := range update.Samplers {
			write.ImageInfo = append(write.ImageInfo, hal.DescriptorImageInfo{Sampler: sampler.native})
		}
	case hal.DescriptorTypeSampledImage:
		for _, image := range update.Images {
			write.ImageInfo = append(write.ImageInfo, imageDescriptor(image, hal.ImageLayoutShaderReadOnlyOptimal))
		}
	case hal.DescriptorTypeCombinedImageSampler:
		if len(update.Samplers) == 0 {
			return result.Newf(result.ArgumentOutOfRange, "binding %d combines images with samplers, but no sampler was provided", update.Binding)
		}
		for index, image := range update.Images {
			info := imageDescriptor(image, hal.ImageLayoutShaderReadOnlyOptimal)
			info.Sampler = update.Samplers[min(index, len(update.Samplers)-1)].native
			write.ImageInfo = append(write.ImageInfo, info)
		}
	case hal.DescriptorTypeStorageImage:
		for _, image := range update.Images {
			write.ImageInfo = append(write.ImageInfo, imageDescriptor(image, hal.ImageLayoutGeneral))
		}
	case hal.DescriptorTypeUniformBuffer, hal.DescriptorTypeStorageBuffer,
		hal.DescriptorTypeUniformBufferDynamic, hal.DescriptorTypeStorageBufferDynamic:
		for _, buffer := range update.Buffers {
			write.BufferInfo = append(write.BufferInfo, hal.DescriptorBufferInfo{
				Buffer: buffer.native,
				Offset: 0,
				Range:  hal.WholeSize,
			})
		}
	default:
		return result.Newf(result.RuntimeError, "unsupported descriptor type %s", binding.DescriptorType)
	}

	if len(write.ImageInfo) == 0 && len(write.BufferInfo) == 0 {
		return nil
	}

	return l.device.UpdateDescriptorSets(write)
}

func imageDescriptor(image *Image, layout hal.ImageLayout) hal.DescriptorImageInfo {
	info := hal.DescriptorImageInfo{ImageLayout: layout}
	if image.view != nil {
		info.ImageView = image.view.native
	}
	return info
}

func (l *DescriptorSetLayout) destroy() {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	for _, pool := range l.pools {
		l.device.DestroyDescriptorPool(pool.native)
	}
	for i := l.sets.Count(); i > 0; i-- {
		l.stats.trackDestroyed(ResourceTypeDescriptorSet)
	}
	l.pools = nil
	l.sets.Clear()
	l.device.DestroyDescriptorSetLayout(l.native)
}

// DescriptorSet is a set allocated from a DescriptorSetLayout's pools.
type DescriptorSet struct {
	native hal.DescriptorSet
	layout *DescriptorSetLayout
}

func (s *DescriptorSet) Native() hal.DescriptorSet              { return s.native }
func (s *DescriptorSet) Layout() *DescriptorSetLayout           { return s.layout }
func (s *DescriptorSet) Update(info DescriptorUpdateInfo) error { return s.layout.UpdateSet(s, info) }

// DescriptorUpdateInfo is the content of one binding: Images, Samplers or Buffers depending on
// the binding's descriptor type, written from ArrayOffset on.
type DescriptorUpdateInfo struct {
	Binding     int
	ArrayOffset int
	Images      []*Image
	Samplers    []*Sampler
	Buffers     []*Buffer
}

func (i DescriptorUpdateInfo) Equal(other DescriptorUpdateInfo) bool {
	return i.Binding == other.Binding &&
		i.ArrayOffset == other.ArrayOffset &&
		slices.Equal(i.Images, other.Images) &&
		slices.Equal(i.Samplers, other.Samplers) &&
		slices.Equal(i.Buffers, other.Buffers)
}

func (i DescriptorUpdateInfo) empty() bool {
	return len(i.Images) == 0 && len(i.Samplers) == 0 && len(i.Buffers) == 0
}
