package vulkan

import (
	"unsafe"

	"github.com/vkngwrapper/core/v3/common"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/core/v3/core1_1"
	"github.com/vkngwrapper/core/v3/core1_2"
	"github.com/vkngwrapper/forge/hal"
)

func (d *Device) CreateBuffer(info hal.BufferCreateInfo) (hal.Buffer, error) {
	buffer, res, err := d.driver.CreateBuffer(nil, core1_0.BufferCreateInfo{
		Size:        info.Size,
		Usage:       core1_0.BufferUsageFlags(info.Usage),
		SharingMode: core1_0.SharingModeExclusive,
	})
	if err := check(res, err, "CreateBuffer"); err != nil {
		return 0, err
	}
	return hal.Buffer(d.buffers.insert(buffer)), nil
}

func (d *Device) DestroyBuffer(buffer hal.Buffer) {
	native, ok := d.buffers.remove(uint64(buffer))
	if !ok {
		return
	}
	d.driver.DestroyBuffer(native, nil)
}

func (d *Device) GetBufferMemoryRequirements(buffer hal.Buffer) hal.MemoryRequirements {
	native, ok := d.buffers.get(uint64(buffer))
	if !ok {
		return hal.MemoryRequirements{}
	}
	requirements := d.driver.GetBufferMemoryRequirements(native)
	return hal.MemoryRequirements{
		Size:           requirements.Size,
		Alignment:      requirements.Alignment,
		MemoryTypeBits: requirements.MemoryTypeBits,
	}
}

func (d *Device) GetBufferDeviceAddress(buffer hal.Buffer) (uint64, error) {
	addressDriver, ok := d.driver.(bufferDeviceAddressDriver)
	if !ok {
		return 0, featureNotPresent("buffer device address")
	}
	native, ok := d.buffers.get(uint64(buffer))
	if !ok {
		return 0, nil
	}
	address, err := addressDriver.GetBufferDeviceAddress(core1_2.BufferDeviceAddressInfo{
		Buffer: native,
	})
	if err != nil {
		return 0, check(core1_0.VKErrorUnknown, err, "GetBufferDeviceAddress")
	}
	return address, nil
}

func (d *Device) CreateImage(info hal.ImageCreateInfo) (hal.Image, error) {
	image, res, err := d.driver.CreateImage(nil, core1_0.ImageCreateInfo{
		Flags:     core1_0.ImageCreateFlags(info.Flags),
		ImageType: core1_0.ImageType(info.ImageType),
		Format:    core1_0.Format(info.Format),
		Extent: core1_0.Extent3D{
			Width:  info.Extent.Width,
			Height: info.Extent.Height,
			Depth:  info.Extent.Depth,
		},
		MipLevels:     info.MipLevels,
		ArrayLayers:   info.ArrayLayers,
		Samples:       core1_0.SampleCountFlags(info.Samples),
		Tiling:        core1_0.ImageTiling(info.Tiling),
		Usage:         core1_0.ImageUsageFlags(info.Usage),
		SharingMode:   core1_0.SharingModeExclusive,
		InitialLayout: core1_0.ImageLayout(info.InitialLayout),
	})
	if err := check(res, err, "CreateImage"); err != nil {
		return 0, err
	}
	return hal.Image(d.images.insert(image)), nil
}

func (d *Device) DestroyImage(image hal.Image) {
	native, ok := d.images.remove(uint64(image))
	if !ok {
		return
	}
	d.driver.DestroyImage(native, nil)
}

func (d *Device) GetImageMemoryRequirements(image hal.Image) hal.MemoryRequirements {
	native, ok := d.images.get(uint64(image))
	if !ok {
		return hal.MemoryRequirements{}
	}
	requirements := d.driver.GetImageMemoryRequirements(native)
	return hal.MemoryRequirements{
		Size:           requirements.Size,
		Alignment:      requirements.Alignment,
		MemoryTypeBits: requirements.MemoryTypeBits,
	}
}

func subresourceRange(r hal.ImageSubresourceRange) core1_0.ImageSubresourceRange {
	return core1_0.ImageSubresourceRange{
		AspectMask:     core1_0.ImageAspectFlags(r.AspectMask),
		BaseMipLevel:   r.BaseMipLevel,
		LevelCount:     r.LevelCount,
		BaseArrayLayer: r.BaseArrayLayer,
		LayerCount:     r.LayerCount,
	}
}

func subresourceLayers(l hal.ImageSubresourceLayers) core1_0.ImageSubresourceLayers {
	return core1_0.ImageSubresourceLayers{
		AspectMask:     core1_0.ImageAspectFlags(l.AspectMask),
		MipLevel:       l.MipLevel,
		BaseArrayLayer: l.BaseArrayLayer,
		LayerCount:     l.LayerCount,
	}
}

func (d *Device) CreateImageView(info hal.ImageViewCreateInfo) (hal.ImageView, error) {
	image, ok := d.images.get(uint64(info.Image))
	if !ok {
		return 0, featureNotPresent("image view of an unknown image")
	}
	view, res, err := d.driver.CreateImageView(nil, core1_0.ImageViewCreateInfo{
		Image:            image,
		ViewType:         core1_0.ImageViewType(info.ViewType),
		Format:           core1_0.Format(info.Format),
		SubresourceRange: subresourceRange(info.SubresourceRange),
	})
	if err := check(res, err, "CreateImageView"); err != nil {
		return 0, err
	}
	return hal.ImageView(d.imageViews.insert(view)), nil
}

func (d *Device) DestroyImageView(view hal.ImageView) {
	native, ok := d.imageViews.remove(uint64(view))
	if !ok {
		return
	}
	d.driver.DestroyImageView(native, nil)
}

func (d *Device) CreateSampler(info hal.SamplerCreateInfo) (hal.Sampler, error) {
	sampler, res, err := d.driver.CreateSampler(nil, core1_0.SamplerCreateInfo{
		MagFilter:               core1_0.Filter(info.MagFilter),
		MinFilter:               core1_0.Filter(info.MinFilter),
		MipmapMode:              core1_0.SamplerMipmapMode(info.MipmapMode),
		AddressModeU:            core1_0.SamplerAddressMode(info.AddressModeU),
		AddressModeV:            core1_0.SamplerAddressMode(info.AddressModeV),
		AddressModeW:            core1_0.SamplerAddressMode(info.AddressModeW),
		MipLodBias:              info.MipLodBias,
		AnisotropyEnable:        info.AnisotropyEnable,
		MaxAnisotropy:           info.MaxAnisotropy,
		CompareEnable:           info.CompareEnable,
		CompareOp:               core1_0.CompareOp(info.CompareOp),
		MinLod:                  info.MinLod,
		MaxLod:                  info.MaxLod,
		BorderColor:             core1_0.BorderColor(info.BorderColor),
		UnnormalizedCoordinates: info.UnnormalizedCoordinates,
	})
	if err := check(res, err, "CreateSampler"); err != nil {
		return 0, err
	}
	return hal.Sampler(d.samplers.insert(sampler)), nil
}

func (d *Device) DestroySampler(sampler hal.Sampler) {
	native, ok := d.samplers.remove(uint64(sampler))
	if !ok {
		return
	}
	d.driver.DestroySampler(native, nil)
}

func (d *Device) AllocateMemory(info hal.MemoryAllocateInfo) (hal.DeviceMemory, error) {
	var allocInfo core1_0.MemoryAllocateInfo
	allocInfo.AllocationSize = info.Size
	allocInfo.MemoryTypeIndex = info.MemoryTypeIndex

	if info.DeviceAddress && d.features.BufferDeviceAddress {
		var allocFlagsInfo core1_1.MemoryAllocateFlagsInfo
		allocFlagsInfo.Flags = core1_2.MemoryAllocateDeviceAddress
		allocFlagsInfo.Next = allocInfo.Next
		allocInfo.Next = allocFlagsInfo
	}

	memory, res, err := d.driver.AllocateMemory(nil, allocInfo)
	if err := check(res, err, "AllocateMemory"); err != nil {
		return 0, err
	}
	return hal.DeviceMemory(d.memories.insert(memory)), nil
}

func (d *Device) FreeMemory(memory hal.DeviceMemory) {
	native, ok := d.memories.remove(uint64(memory))
	if !ok {
		return
	}
	d.driver.FreeMemory(native, nil)
}

func (d *Device) BindBufferMemory(buffer hal.Buffer, memory hal.DeviceMemory, offset int) error {
	nativeBuffer, _ := d.buffers.get(uint64(buffer))
	nativeMemory, _ := d.memories.get(uint64(memory))
	res, err := d.driver.BindBufferMemory(nativeBuffer, nativeMemory, offset)
	return check(res, err, "BindBufferMemory")
}

func (d *Device) BindImageMemory(image hal.Image, memory hal.DeviceMemory, offset int) error {
	nativeImage, _ := d.images.get(uint64(image))
	nativeMemory, _ := d.memories.get(uint64(memory))
	res, err := d.driver.BindImageMemory(nativeImage, nativeMemory, offset)
	return check(res, err, "BindImageMemory")
}

func (d *Device) MapMemory(memory hal.DeviceMemory, offset int, size int) (unsafe.Pointer, error) {
	native, _ := d.memories.get(uint64(memory))
	if size <= 0 {
		size = common.WholeSize
	}
	data, res, err := d.driver.MapMemory(native, offset, size, 0)
	if err := check(res, err, "MapMemory"); err != nil {
		return nil, err
	}
	return data, nil
}

func (d *Device) UnmapMemory(memory hal.DeviceMemory) {
	native, ok := d.memories.get(uint64(memory))
	if !ok {
		return
	}
	d.driver.UnmapMemory(native)
}

func (d *Device) mappedRanges(ranges []hal.MappedMemoryRange) []core1_0.MappedMemoryRange {
	out := make([]core1_0.MappedMemoryRange, 0, len(ranges))
	for _, r := range ranges {
		native, ok := d.memories.get(uint64(r.Memory))
		if !ok {
			continue
		}
		out = append(out, core1_0.MappedMemoryRange{
			Memory: native,
			Offset: r.Offset,
			Size:   r.Size,
		})
	}
	return out
}

func (d *Device) FlushMappedMemoryRanges(ranges ...hal.MappedMemoryRange) error {
	res, err := d.driver.FlushMappedMemoryRanges(d.mappedRanges(ranges)...)
	return check(res, err, "FlushMappedMemoryRanges")
}

func (d *Device) InvalidateMappedMemoryRanges(ranges ...hal.MappedMemoryRange) error {
	res, err := d.driver.InvalidateMappedMemoryRanges(d.mappedRanges(ranges)...)
	return check(res, err, "InvalidateMappedMemoryRanges")
}
