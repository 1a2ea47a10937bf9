package gpu

import (
	"encoding/binary"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"sync/atomic"
	"unsafe"

	"github.com/dolthub/swiss"
	"github.com/vkngwrapper/forge/gpu/internal/objpool"
	"github.com/vkngwrapper/forge/hal"
	"github.com/vkngwrapper/forge/internal/utils"
	"github.com/vkngwrapper/forge/result"
)

// Set indices reserved for bindless programs.
const (
	BindlessResourceSetIndex = 0
	BindlessHandleSetIndex   = 1
)

const (
	bindlessImageBinding   = 0
	bindlessAddressBinding = 1
	bindlessSamplerBinding = 2

	// handleAlignment packs handle fields as consecutive uints.
	handleAlignment = 4
)

type BindlessOptions struct {
	Enabled     bool
	MaxImages   int
	MaxSamplers int
	// AddressTableSize is the size in bytes of the table of buffer device addresses. Each
	// registered buffer takes 8 bytes.
	AddressTableSize int
}

func DefaultBindlessOptions() BindlessOptions {
	return BindlessOptions{
		Enabled:          true,
		MaxImages:        1024,
		MaxSamplers:      64,
		AddressTableSize: 4096,
	}
}

// HandleID is the index of a resource in its bindless table.
type HandleID uint32

const InvalidHandleID HandleID = math.MaxUint32

// Bindable is a resource that can be registered with a BindlessResource: an *Image, *Buffer or
// *Sampler.
type Bindable interface {
	bindlessKind() ResourceType
	bindlessHandle() objpool.Handle
}

func (i *Image) bindlessKind() ResourceType       { return ResourceTypeImage }
func (i *Image) bindlessHandle() objpool.Handle   { return i.handle }
func (b *Buffer) bindlessKind() ResourceType      { return ResourceTypeBuffer }
func (b *Buffer) bindlessHandle() objpool.Handle  { return b.handle }
func (s *Sampler) bindlessKind() ResourceType     { return ResourceTypeSampler }
func (s *Sampler) bindlessHandle() objpool.Handle { return s.handle }

// DataBuilder packs values into a byte slice. Every value starts at a multiple of the builder's
// alignment.
type DataBuilder struct {
	data         []byte
	minAlignment int
}

func NewDataBuilder(minAlignment int) (*DataBuilder, error) {
	err := utils.CheckPow2(minAlignment, "minAlignment")
	if err != nil {
		return nil, err
	}
	return &DataBuilder{minAlignment: minAlignment}, nil
}

// AddBytes appends data and returns the offset it was written at.
func (b *DataBuilder) AddBytes(data []byte) int {
	offset := utils.AlignUp(len(b.data), b.minAlignment)
	if size := offset + len(data); size > len(b.data) {
		b.data = append(b.data, make([]byte, size-len(b.data))...)
	}
	copy(b.data[offset:], data)
	return offset
}

func (b *DataBuilder) AddUint32(value uint32) int {
	return b.AddBytes(binary.LittleEndian.AppendUint32(nil, value))
}

func (b *DataBuilder) Data() []byte { return b.data }
func (b *DataBuilder) Size() int    { return len(b.data) }
func (b *DataBuilder) Reset()       { b.data = b.data[:0] }

type bindlessName struct {
	name   string
	kind   ResourceType
	handle objpool.Handle
	offset int
}

func (n bindlessName) offsetFor(resource Bindable) (int, error) {
	if n.kind != resource.bindlessKind() || n.handle != resource.bindlessHandle() {
		return -1, result.Newf(result.RuntimeError, "handle name %q is already bound to another %s", n.name, n.kind)
	}
	return n.offset, nil
}

// BindlessResource lets shaders reach images, buffers and samplers through small integer
// handles. Images and samplers live in descriptor arrays of the resource set; buffers are
// reached through a table of device addresses. Named handles are gathered into a uniform
// buffer bound as the handle set.
//
// Handles are never reclaimed: a resource keeps its HandleID for the lifetime of the
// BindlessResource.
type BindlessResource struct {
	logger  *slog.Logger
	device  *Device
	options BindlessOptions

	resourceLayout *DescriptorSetLayout
	resourceSet    *DescriptorSet
	handleLayout   *DescriptorSetLayout
	handleSet      *DescriptorSet
	pipelineLayout *PipelineLayout
	addressTable   *Buffer
	addresses      []uint64

	handleMutex  utils.Guard
	handleData   *DataBuilder
	handleBuffer *Buffer
	handleDirty  bool
	generation   atomic.Uint64

	resourceMutex utils.Guard
	imageIDs      *swiss.Map[objpool.Handle, HandleID]
	bufferIDs     *swiss.Map[objpool.Handle, HandleID]
	samplerIDs    *swiss.Map[objpool.Handle, HandleID]

	nameMutex utils.Guard
	names     []bindlessName
	nameIndex *swiss.Map[string, int]

	updateMutex    utils.Guard
	pendingUpdates []DescriptorUpdateInfo
}

func newBindlessResource(device *Device, options BindlessOptions) (*BindlessResource, error) {
	handleData, err := NewDataBuilder(handleAlignment)
	if err != nil {
		return nil, err
	}

	synchronized := device.options.Synchronized
	b := &BindlessResource{
		logger:        device.logger,
		device:        device,
		options:       options,
		handleMutex:   utils.Guard{Enabled: synchronized},
		handleData:    handleData,
		resourceMutex: utils.Guard{Enabled: synchronized},
		imageIDs:      swiss.NewMap[objpool.Handle, HandleID](uint32(options.MaxImages)),
		bufferIDs:     swiss.NewMap[objpool.Handle, HandleID](64),
		samplerIDs:    swiss.NewMap[objpool.Handle, HandleID](uint32(options.MaxSamplers)),
		nameMutex:     utils.Guard{Enabled: synchronized},
		nameIndex:     swiss.NewMap[string, int](64),
		updateMutex:   utils.Guard{Enabled: synchronized},
	}

	err = b.initialize()
	if err != nil {
		b.clear()
		return nil, err
	}
	return b, nil
}

func (b *BindlessResource) initialize() error {
	bindless := hal.DescriptorBindingUpdateAfterBind | hal.DescriptorBindingPartiallyBound

	var err error
	b.handleLayout, err = b.device.CreateDescriptorSetLayout(DescriptorSetLayoutCreateInfo{
		Bindings: []hal.DescriptorSetLayoutBinding{{
			Binding:         0,
			DescriptorType:  hal.DescriptorTypeUniformBufferDynamic,
			DescriptorCount: 1,
			StageFlags:      hal.ShaderStageAll,
		}},
	}, "Bindless Handle Layout")
	if err != nil {
		return err
	}

	b.resourceLayout, err = b.device.CreateDescriptorSetLayout(DescriptorSetLayoutCreateInfo{
		Flags: hal.DescriptorSetLayoutCreateUpdateAfterBindPool,
		Bindings: []hal.DescriptorSetLayoutBinding{
			{
				Binding:         bindlessImageBinding,
				DescriptorType:  hal.DescriptorTypeSampledImage,
				DescriptorCount: b.options.MaxImages,
				StageFlags:      hal.ShaderStageAll,
				BindingFlags:    bindless,
			},
			{
				Binding:         bindlessAddressBinding,
				DescriptorType:  hal.DescriptorTypeStorageBuffer,
				DescriptorCount: 1,
				StageFlags:      hal.ShaderStageAll,
				BindingFlags:    bindless,
			},
			{
				Binding:         bindlessSamplerBinding,
				DescriptorType:  hal.DescriptorTypeSampler,
				DescriptorCount: b.options.MaxSamplers,
				StageFlags:      hal.ShaderStageAll,
				BindingFlags:    bindless,
			},
		},
	}, "Bindless Resource Layout")
	if err != nil {
		return err
	}

	b.handleSet, err = b.handleLayout.AllocateSet()
	if err != nil {
		return err
	}
	b.resourceSet, err = b.resourceLayout.AllocateSet()
	if err != nil {
		return err
	}

	b.addressTable, err = b.device.CreateBuffer(BufferCreateInfo{
		Size:   b.options.AddressTableSize,
		Usage:  hal.BufferUsageStorageBuffer,
		Domain: MemoryDomainHost,
	}, "Bindless Address Table")
	if err != nil {
		return err
	}

	ptr, err := b.device.allocator.Map(b.addressTable)
	if err != nil {
		return err
	}
	b.addresses = unsafe.Slice((*uint64)(ptr), b.options.AddressTableSize/8)

	err = b.resourceSet.Update(DescriptorUpdateInfo{
		Binding: bindlessAddressBinding,
		Buffers: []*Buffer{b.addressTable},
	})
	if err != nil {
		return err
	}

	pushConstantSize := min(PushConstantSize, b.device.properties.Limits.MaxPushConstantsSize)
	b.pipelineLayout, err = b.device.CreatePipelineLayout(PipelineLayoutCreateInfo{
		SetLayouts: []*DescriptorSetLayout{b.resourceLayout, b.handleLayout},
		PushConstantRange: hal.PushConstantRange{
			StageFlags: hal.ShaderStageAll,
			Size:       pushConstantSize,
		},
	}, "Bindless Pipeline Layout")
	return err
}

func (b *BindlessResource) ResourceLayout() *DescriptorSetLayout { return b.resourceLayout }
func (b *BindlessResource) HandleLayout() *DescriptorSetLayout   { return b.handleLayout }
func (b *BindlessResource) ResourceSet() *DescriptorSet          { return b.resourceSet }
func (b *BindlessResource) HandleSet() *DescriptorSet            { return b.handleSet }
func (b *BindlessResource) PipelineLayout() *PipelineLayout      { return b.pipelineLayout }

// handleGeneration changes every time build replaces the handle buffer.
func (b *BindlessResource) handleGeneration() uint64 { return b.generation.Load() }

// register returns the id of handle in ids, assigning the next id when it is new.
func (b *BindlessResource) register(ids *swiss.Map[objpool.Handle, HandleID], handle objpool.Handle, limit int, kind ResourceType) (HandleID, bool, error) {
	b.resourceMutex.RLock()
	id, ok := ids.Get(handle)
	b.resourceMutex.RUnlock()
	if ok {
		return id, false, nil
	}

	b.resourceMutex.Lock()
	defer b.resourceMutex.Unlock()

	id, ok = ids.Get(handle)
	if ok {
		return id, false, nil
	}

	next := ids.Count()
	err := b.device.assertf(next < limit, "bindless %s table is full at %d entries", kind, limit)
	if err != nil {
		return InvalidHandleID, false, err
	}

	id = HandleID(next)
	ids.Put(handle, id)
	return id, true, nil
}

// UpdateBuffer returns buffer's handle, writing its device address into the address table the
// first time the buffer is seen.
func (b *BindlessResource) UpdateBuffer(buffer *Buffer) (HandleID, error) {
	err := b.device.assertf(buffer != nil && buffer.IsValid(), "bindless buffers must be live")
	if err != nil {
		return InvalidHandleID, err
	}

	err = b.device.assertf(buffer.address != 0, "buffer %q has no device address", buffer.name)
	if err != nil {
		return InvalidHandleID, err
	}

	id, created, err := b.register(b.bufferIDs, buffer.handle, len(b.addresses), ResourceTypeBuffer)
	if err != nil || !created {
		return id, err
	}

	b.addresses[id] = buffer.address
	err = b.device.allocator.Flush(b.addressTable, int(id)*8, 8)
	if err != nil {
		return InvalidHandleID, err
	}
	return id, nil
}

// UpdateImage returns image's handle. The first time the image is seen a write of its default
// view into the image array is queued for the next build.
func (b *BindlessResource) UpdateImage(image *Image) (HandleID, error) {
	err := b.device.assertf(image != nil && image.IsValid(), "bindless images must be live")
	if err != nil {
		return InvalidHandleID, err
	}

	id, created, err := b.register(b.imageIDs, image.handle, b.options.MaxImages, ResourceTypeImage)
	if err != nil || !created {
		return id, err
	}

	b.queueUpdate(DescriptorUpdateInfo{
		Binding:     bindlessImageBinding,
		ArrayOffset: int(id),
		Images:      []*Image{image},
	})
	return id, nil
}

// UpdateSampler returns sampler's handle, queuing a write into the sampler array the first time
// the sampler is seen.
func (b *BindlessResource) UpdateSampler(sampler *Sampler) (HandleID, error) {
	err := b.device.assertf(sampler != nil && sampler.IsValid(), "bindless samplers must be live")
	if err != nil {
		return InvalidHandleID, err
	}

	id, created, err := b.register(b.samplerIDs, sampler.handle, b.options.MaxSamplers, ResourceTypeSampler)
	if err != nil || !created {
		return id, err
	}

	b.queueUpdate(DescriptorUpdateInfo{
		Binding:     bindlessSamplerBinding,
		ArrayOffset: int(id),
		Samplers:    []*Sampler{sampler},
	})
	return id, nil
}

func (b *BindlessResource) queueUpdate(update DescriptorUpdateInfo) {
	b.updateMutex.Lock()
	defer b.updateMutex.Unlock()
	b.pendingUpdates = append(b.pendingUpdates, update)
}

// PendingUpdateCount returns the number of descriptor writes waiting for the next build.
func (b *BindlessResource) PendingUpdateCount() int {
	b.updateMutex.Lock()
	defer b.updateMutex.Unlock()
	return len(b.pendingUpdates)
}

func validHandleName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

// UpdateNamed registers resource under name and returns the byte offset of its handle in the
// handle buffer. Registering the same resource under the same name again returns the same
// offset; binding a name to a second resource is an error.
func (b *BindlessResource) UpdateNamed(name string, resource Bindable) (int, error) {
	b.logger.Debug("BindlessResource::UpdateNamed")

	if !validHandleName(name) {
		return -1, result.Newf(result.ArgumentOutOfRange, "%q is not a valid handle name", name)
	}

	b.nameMutex.RLock()
	index, ok := b.nameIndex.Get(name)
	var existing bindlessName
	if ok {
		existing = b.names[index]
	}
	b.nameMutex.RUnlock()
	if ok {
		return existing.offsetFor(resource)
	}

	var id HandleID
	var err error
	switch typed := resource.(type) {
	case *Image:
		id, err = b.UpdateImage(typed)
	case *Buffer:
		id, err = b.UpdateBuffer(typed)
	case *Sampler:
		id, err = b.UpdateSampler(typed)
	default:
		return -1, result.Newf(result.ArgumentOutOfRange, "%T cannot be bound bindlessly", resource)
	}
	if err != nil {
		return -1, err
	}

	b.nameMutex.Lock()
	defer b.nameMutex.Unlock()

	// Another goroutine may have bound name while the resource was registered.
	if index, ok := b.nameIndex.Get(name); ok {
		return b.names[index].offsetFor(resource)
	}

	b.handleMutex.Lock()
	offset := b.handleData.AddUint32(uint32(id))
	b.handleDirty = true
	b.handleMutex.Unlock()

	b.nameIndex.Put(name, len(b.names))
	b.names = append(b.names, bindlessName{
		name:   name,
		kind:   resource.bindlessKind(),
		handle: resource.bindlessHandle(),
		offset: offset,
	})
	return offset, nil
}

// build uploads the handle buffer if it changed and applies the queued descriptor writes. It is
// called before every bindless draw or dispatch.
func (b *BindlessResource) build() error {
	err := b.buildHandles()
	if err != nil {
		return err
	}

	b.updateMutex.Lock()
	updates := b.pendingUpdates
	b.pendingUpdates = nil
	b.updateMutex.Unlock()

	for index, update := range updates {
		err = b.resourceSet.Update(update)
		if err != nil {
			b.updateMutex.Lock()
			b.pendingUpdates = append(updates[index:], b.pendingUpdates...)
			b.updateMutex.Unlock()
			return err
		}
	}
	return nil
}

func (b *BindlessResource) buildHandles() error {
	b.handleMutex.Lock()
	defer b.handleMutex.Unlock()

	if !b.handleDirty {
		return nil
	}

	if b.handleBuffer != nil {
		err := b.device.DestroyBuffer(b.handleBuffer)
		if err != nil {
			return err
		}
		b.handleBuffer = nil
	}

	generation := b.generation.Load() + 1
	buffer, err := b.device.CreateBuffer(BufferCreateInfo{
		Size:   b.handleData.Size(),
		Usage:  hal.BufferUsageUniformBuffer,
		Domain: MemoryDomainHost,
	}, fmt.Sprintf("Bindless Handle Buffer %d", generation))
	if err != nil {
		return err
	}

	err = b.writeHandles(buffer)
	if err != nil {
		_ = b.device.DestroyBuffer(buffer)
		return err
	}

	err = b.handleSet.Update(DescriptorUpdateInfo{
		Binding: 0,
		Buffers: []*Buffer{buffer},
	})
	if err != nil {
		_ = b.device.DestroyBuffer(buffer)
		return err
	}

	b.handleBuffer = buffer
	b.handleDirty = false
	b.generation.Store(generation)
	return nil
}

func (b *BindlessResource) writeHandles(buffer *Buffer) error {
	ptr, err := b.device.allocator.Map(buffer)
	if err != nil {
		return err
	}

	copy(unsafe.Slice((*byte)(ptr), b.handleData.Size()), b.handleData.Data())

	err = b.device.allocator.Flush(buffer, 0, -1)
	if err != nil {
		_ = b.device.allocator.Unmap(buffer)
		return err
	}
	return b.device.allocator.Unmap(buffer)
}

// HandleBuffer returns the buffer backing the handle set, or nil before the first build.
func (b *BindlessResource) HandleBuffer() *Buffer {
	b.handleMutex.Lock()
	defer b.handleMutex.Unlock()
	return b.handleBuffer
}

func handleAccessorType(kind ResourceType) string {
	switch kind {
	case ResourceTypeImage:
		return "Texture"
	case ResourceTypeBuffer:
		return "Buffer"
	}
	return "Sampler"
}

// GenerateHandleSource emits the shader declarations matching the handle buffer: a struct with
// one uint per registered name in registration order, the constant buffer bound at the handle
// set, and one typed accessor per name.
func (b *BindlessResource) GenerateHandleSource() string {
	b.nameMutex.RLock()
	names := append([]bindlessName(nil), b.names...)
	b.nameMutex.RUnlock()

	var sb strings.Builder
	sb.WriteString("struct HandleData\n{\n")
	for _, entry := range names {
		fmt.Fprintf(&sb, "    uint %s;\n", entry.name)
	}
	sb.WriteString("};\n\n")
	fmt.Fprintf(&sb, "[[vk::binding(0, %d)]] ConstantBuffer<HandleData> handleData;\n\n", BindlessHandleSetIndex)

	sb.WriteString("namespace handle\n{\n")
	for _, entry := range names {
		accessor := handleAccessorType(entry.kind)
		fmt.Fprintf(&sb, "    %s %s() { return %s(handleData.%s); }\n", accessor, entry.name, accessor, entry.name)
	}
	sb.WriteString("}\n")

	return sb.String()
}

// clear releases every object the BindlessResource created. The objects are detached under the
// locks and destroyed after they are released.
func (b *BindlessResource) clear() {
	b.handleMutex.Lock()
	b.resourceMutex.Lock()
	b.nameMutex.Lock()
	b.updateMutex.Lock()

	handleBuffer := b.handleBuffer
	addressTable := b.addressTable
	pipelineLayout := b.pipelineLayout
	resourceLayout := b.resourceLayout
	handleLayout := b.handleLayout

	b.handleBuffer = nil
	b.addressTable = nil
	b.addresses = nil
	b.pipelineLayout = nil
	b.resourceLayout = nil
	b.handleLayout = nil
	b.resourceSet = nil
	b.handleSet = nil
	b.handleData.Reset()
	b.handleDirty = false
	b.imageIDs.Clear()
	b.bufferIDs.Clear()
	b.samplerIDs.Clear()
	b.names = nil
	b.nameIndex.Clear()
	b.pendingUpdates = nil

	b.updateMutex.Unlock()
	b.nameMutex.Unlock()
	b.resourceMutex.Unlock()
	b.handleMutex.Unlock()

	logFailure := func(err error) {
		if err != nil {
			b.logger.Warn("BindlessResource::clear", slog.String("message", "failed to release bindless object"), slog.Any("error", err))
		}
	}

	if handleBuffer != nil {
		logFailure(b.device.DestroyBuffer(handleBuffer))
	}
	if addressTable != nil {
		logFailure(b.device.allocator.Unmap(addressTable))
		logFailure(b.device.DestroyBuffer(addressTable))
	}
	if pipelineLayout != nil {
		logFailure(b.device.DestroyPipelineLayout(pipelineLayout))
	}
	if resourceLayout != nil {
		logFailure(b.device.DestroyDescriptorSetLayout(resourceLayout))
	}
	if handleLayout != nil {
		logFailure(b.device.DestroyDescriptorSetLayout(handleLayout))
	}
}
