// Package vulkan implements hal.Device over vkngwrapper's core driver.
package vulkan

import (
	"log/slog"
	"sync"

	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/core/v3/core1_1"
	"github.com/vkngwrapper/core/v3/core1_2"
	"github.com/vkngwrapper/forge/hal"
)

type Options struct {
	Extensions Extensions
	// EnabledFeatures lists features that were enabled at device creation but that the core
	// driver cannot report, such as descriptor indexing.
	EnabledFeatures hal.PhysicalDeviceFeatures
}

type bufferDeviceAddressDriver interface {
	GetBufferDeviceAddress(o core1_2.BufferDeviceAddressInfo) (uint64, error)
}

type trimCommandPoolDriver interface {
	TrimCommandPool(commandPool core1_0.CommandPool, flags core1_1.CommandPoolTrimFlags)
}

type queueKey struct {
	family int
	index  int
}

// Device implements hal.Device.
type Device struct {
	logger         *slog.Logger
	driver         core1_0.DeviceDriver
	physicalDevice core1_0.PhysicalDevice
	extensions     Extensions

	properties       hal.PhysicalDeviceProperties
	features         hal.PhysicalDeviceFeatures
	memoryProperties hal.MemoryProperties
	queueFamilies    []hal.QueueFamilyProperties

	queueMutex  sync.Mutex
	queueLookup map[queueKey]hal.Queue

	queues          *handleTable[core1_0.Queue]
	buffers         *handleTable[core1_0.Buffer]
	images          *handleTable[core1_0.Image]
	imageViews      *handleTable[core1_0.ImageView]
	samplers        *handleTable[core1_0.Sampler]
	memories        *handleTable[core1_0.DeviceMemory]
	setLayouts      *handleTable[core1_0.DescriptorSetLayout]
	descriptorPools *handleTable[core1_0.DescriptorPool]
	descriptorSets  *handleTable[core1_0.DescriptorSet]
	pipelineLayouts *handleTable[core1_0.PipelineLayout]
	shaders         *handleTable[ShaderObject]
	fences          *handleTable[core1_0.Fence]
	semaphores      *handleTable[core1_0.Semaphore]
	queryPools      *handleTable[core1_0.QueryPool]
	commandPools    *handleTable[core1_0.CommandPool]
	commandBuffers  *handleTable[core1_0.CommandBuffer]
}

var _ hal.Device = (*Device)(nil)

// NewDevice wraps an already created logical device. instanceDriver is the driver of the
// instance physicalDevice was enumerated from. The Device takes ownership of driver and destroys
// it in Destroy.
func NewDevice(logger *slog.Logger, instanceDriver core1_0.CoreInstanceDriver, driver core1_0.DeviceDriver, physicalDevice core1_0.PhysicalDevice, options Options) (*Device, error) {
	properties, err := instanceDriver.GetPhysicalDeviceProperties(physicalDevice)
	if err != nil {
		return nil, check(core1_0.VKErrorUnknown, err, "GetPhysicalDeviceProperties")
	}

	device := &Device{
		logger:         logger,
		driver:         driver,
		physicalDevice: physicalDevice,
		extensions:     options.Extensions,
		queueLookup:    make(map[queueKey]hal.Queue),

		queues:          newHandleTable[core1_0.Queue](8),
		buffers:         newHandleTable[core1_0.Buffer](256),
		images:          newHandleTable[core1_0.Image](256),
		imageViews:      newHandleTable[core1_0.ImageView](256),
		samplers:        newHandleTable[core1_0.Sampler](32),
		memories:        newHandleTable[core1_0.DeviceMemory](512),
		setLayouts:      newHandleTable[core1_0.DescriptorSetLayout](32),
		descriptorPools: newHandleTable[core1_0.DescriptorPool](32),
		descriptorSets:  newHandleTable[core1_0.DescriptorSet](128),
		pipelineLayouts: newHandleTable[core1_0.PipelineLayout](32),
		shaders:         newHandleTable[ShaderObject](64),
		fences:          newHandleTable[core1_0.Fence](32),
		semaphores:      newHandleTable[core1_0.Semaphore](32),
		queryPools:      newHandleTable[core1_0.QueryPool](64),
		commandPools:    newHandleTable[core1_0.CommandPool](16),
		commandBuffers:  newHandleTable[core1_0.CommandBuffer](64),
	}

	device.properties = hal.PhysicalDeviceProperties{
		DeviceName:    properties.DriverName,
		DeviceType:    hal.PhysicalDeviceType(properties.DriverType),
		VendorID:      uint32(properties.VendorID),
		DeviceID:      uint32(properties.DeviceID),
		APIVersion:    uint32(properties.APIVersion),
		DriverVersion: uint32(properties.DriverVersion),
	}
	if limits := properties.Limits; limits != nil {
		device.properties.Limits = hal.DeviceLimits{
			MaxImageDimension2D:             int(limits.MaxImageDimension2D),
			MaxPushConstantsSize:            int(limits.MaxPushConstantsSize),
			MaxBoundDescriptorSets:          int(limits.MaxBoundDescriptorSets),
			MaxSamplerAnisotropy:            float32(limits.MaxSamplerAnisotropy),
			MinUniformBufferOffsetAlignment: int(limits.MinUniformBufferOffsetAlignment),
			MinStorageBufferOffsetAlignment: int(limits.MinStorageBufferOffsetAlignment),
			NonCoherentAtomSize:             int(limits.NonCoherentAtomSize),
			TimestampPeriod:                 float32(limits.TimestampPeriod),
			MaxDescriptorSetSampledImages:   int(limits.MaxDescriptorSetSampledImages),
			MaxDescriptorSetSamplers:        int(limits.MaxDescriptorSetSamplers),
		}
	}

	memoryProperties := instanceDriver.GetPhysicalDeviceMemoryProperties(physicalDevice)
	for _, memoryType := range memoryProperties.MemoryTypes {
		device.memoryProperties.MemoryTypes = append(device.memoryProperties.MemoryTypes, hal.MemoryType{
			PropertyFlags: hal.MemoryPropertyFlags(memoryType.PropertyFlags),
			HeapIndex:     int(memoryType.HeapIndex),
		})
	}
	for _, heap := range memoryProperties.MemoryHeaps {
		device.memoryProperties.MemoryHeaps = append(device.memoryProperties.MemoryHeaps, hal.MemoryHeap{
			Size:  int(heap.Size),
			Flags: hal.MemoryHeapFlags(heap.Flags),
		})
	}

	for _, family := range instanceDriver.GetPhysicalDeviceQueueFamilyProperties(physicalDevice) {
		device.queueFamilies = append(device.queueFamilies, hal.QueueFamilyProperties{
			QueueFlags:         hal.QueueFlags(family.QueueFlags),
			QueueCount:         int(family.QueueCount),
			TimestampValidBits: int(family.TimestampValidBits),
		})
	}

	coreFeatures := instanceDriver.GetPhysicalDeviceFeatures(physicalDevice)
	features := options.EnabledFeatures
	if coreFeatures != nil {
		features.SamplerAnisotropy = features.SamplerAnisotropy || coreFeatures.SamplerAnisotropy
		features.TessellationShader = features.TessellationShader || coreFeatures.TessellationShader
		features.GeometryShader = features.GeometryShader || coreFeatures.GeometryShader
		features.MultiDrawIndirect = features.MultiDrawIndirect || coreFeatures.MultiDrawIndirect
		features.PipelineStatistics = features.PipelineStatistics || coreFeatures.PipelineStatisticsQuery
	}
	if _, ok := driver.(bufferDeviceAddressDriver); !ok {
		features.BufferDeviceAddress = false
	}
	features.ShaderObject = options.Extensions.ShaderObjects != nil
	features.ExtendedDynamicState3 = options.Extensions.DynamicState != nil
	features.DynamicRendering = options.Extensions.DynamicRendering != nil
	mesh := options.Extensions.MeshShading != nil
	features.MeshShader = features.MeshShader && mesh
	features.TaskShader = features.TaskShader && mesh
	features.DebugUtils = options.Extensions.DebugUtils != nil
	device.features = features

	logger.Debug("Device::NewDevice", slog.String("name", device.properties.DeviceName))
	return device, nil
}

func (d *Device) Properties() hal.PhysicalDeviceProperties {
	return d.properties
}

func (d *Device) Features() hal.PhysicalDeviceFeatures {
	return d.features
}

func (d *Device) MemoryProperties() hal.MemoryProperties {
	return d.memoryProperties
}

func (d *Device) QueueFamilies() []hal.QueueFamilyProperties {
	return d.queueFamilies
}

func (d *Device) GetQueue(familyIndex int, queueIndex int) hal.Queue {
	d.queueMutex.Lock()
	defer d.queueMutex.Unlock()

	key := queueKey{family: familyIndex, index: queueIndex}
	if queue, ok := d.queueLookup[key]; ok {
		return queue
	}

	queue := hal.Queue(d.queues.insert(d.driver.GetQueue(familyIndex, queueIndex)))
	d.queueLookup[key] = queue
	return queue
}

func (d *Device) WaitIdle() error {
	res, err := d.driver.DeviceWaitIdle()
	return check(res, err, "DeviceWaitIdle")
}

func (d *Device) Destroy() {
	d.logger.Debug("Device::Destroy")
	d.driver.DestroyDevice(nil)
}

func (d *Device) SetDebugName(objectType hal.ObjectType, handle uint64, name string) error {
	if d.extensions.ObjectNames == nil {
		return nil
	}

	var object any
	var ok bool
	switch objectType {
	case hal.ObjectTypeQueue:
		object, ok = d.queues.get(handle)
	case hal.ObjectTypeBuffer:
		object, ok = d.buffers.get(handle)
	case hal.ObjectTypeImage:
		object, ok = d.images.get(handle)
	case hal.ObjectTypeImageView:
		object, ok = d.imageViews.get(handle)
	case hal.ObjectTypeSampler:
		object, ok = d.samplers.get(handle)
	case hal.ObjectTypeDeviceMemory:
		object, ok = d.memories.get(handle)
	case hal.ObjectTypeDescriptorSetLayout:
		object, ok = d.setLayouts.get(handle)
	case hal.ObjectTypeDescriptorPool:
		object, ok = d.descriptorPools.get(handle)
	case hal.ObjectTypeDescriptorSet:
		object, ok = d.descriptorSets.get(handle)
	case hal.ObjectTypePipelineLayout:
		object, ok = d.pipelineLayouts.get(handle)
	case hal.ObjectTypeShader:
		object, ok = d.shaders.get(handle)
	case hal.ObjectTypeFence:
		object, ok = d.fences.get(handle)
	case hal.ObjectTypeSemaphore:
		object, ok = d.semaphores.get(handle)
	case hal.ObjectTypeQueryPool:
		object, ok = d.queryPools.get(handle)
	case hal.ObjectTypeCommandPool:
		object, ok = d.commandPools.get(handle)
	case hal.ObjectTypeCommandBuffer:
		object, ok = d.commandBuffers.get(handle)
	}
	if !ok {
		return nil
	}

	return d.extensions.ObjectNames.SetObjectName(objectType, object, name)
}
