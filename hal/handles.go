// Package hal is the native graphics boundary. Everything above it speaks in these opaque
// handles and plain descriptor structs; a backend such as hal/vulkan resolves them to driver
// objects. Enum and flag values match their Vulkan counterparts.
package hal

// Handles are opaque. The zero value of each is the null handle.
type (
	Queue               uint64
	Buffer              uint64
	Image               uint64
	ImageView           uint64
	Sampler             uint64
	DeviceMemory        uint64
	DescriptorSetLayout uint64
	DescriptorPool      uint64
	DescriptorSet       uint64
	PipelineLayout      uint64
	Shader              uint64
	Fence               uint64
	Semaphore           uint64
	QueryPool           uint64
	CommandPool         uint64
	CommandBuffer       uint64
)

// ObjectType names the kind of object a debug name is attached to.
type ObjectType int32

const (
	ObjectTypeUnknown             ObjectType = 0
	ObjectTypeQueue               ObjectType = 4
	ObjectTypeSemaphore           ObjectType = 5
	ObjectTypeCommandBuffer       ObjectType = 6
	ObjectTypeFence               ObjectType = 7
	ObjectTypeDeviceMemory        ObjectType = 8
	ObjectTypeBuffer              ObjectType = 9
	ObjectTypeImage               ObjectType = 10
	ObjectTypeQueryPool           ObjectType = 12
	ObjectTypeImageView           ObjectType = 14
	ObjectTypePipelineLayout      ObjectType = 17
	ObjectTypeDescriptorSetLayout ObjectType = 20
	ObjectTypeSampler             ObjectType = 21
	ObjectTypeDescriptorPool      ObjectType = 22
	ObjectTypeDescriptorSet       ObjectType = 23
	ObjectTypeCommandPool         ObjectType = 25
	ObjectTypeShader              ObjectType = 1000482000
)

var objectTypeMapping = make(map[ObjectType]string)

func init() {
	objectTypeMapping[ObjectTypeUnknown] = "Unknown"
	objectTypeMapping[ObjectTypeQueue] = "Queue"
	objectTypeMapping[ObjectTypeSemaphore] = "Semaphore"
	objectTypeMapping[ObjectTypeCommandBuffer] = "CommandBuffer"
	objectTypeMapping[ObjectTypeFence] = "Fence"
	objectTypeMapping[ObjectTypeDeviceMemory] = "DeviceMemory"
	objectTypeMapping[ObjectTypeBuffer] = "Buffer"
	objectTypeMapping[ObjectTypeImage] = "Image"
	objectTypeMapping[ObjectTypeQueryPool] = "QueryPool"
	objectTypeMapping[ObjectTypeImageView] = "ImageView"
	objectTypeMapping[ObjectTypePipelineLayout] = "PipelineLayout"
	objectTypeMapping[ObjectTypeDescriptorSetLayout] = "DescriptorSetLayout"
	objectTypeMapping[ObjectTypeSampler] = "Sampler"
	objectTypeMapping[ObjectTypeDescriptorPool] = "DescriptorPool"
	objectTypeMapping[ObjectTypeDescriptorSet] = "DescriptorSet"
	objectTypeMapping[ObjectTypeCommandPool] = "CommandPool"
	objectTypeMapping[ObjectTypeShader] = "Shader"
}

func (t ObjectType) String() string {
	str, ok := objectTypeMapping[t]
	if !ok {
		return "unknown"
	}
	return str
}
