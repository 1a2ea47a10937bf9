package gpu

import (
	"github.com/vkngwrapper/forge/hal"
)

// SamplerCreateInfo describes a sampler. MinLod and MaxLod are only honored, and only take part
// in Equal, when SetLodRange is true. Otherwise the LOD range is derived from MipmapMode.
type SamplerCreateInfo struct {
	MagFilter     hal.Filter
	MinFilter     hal.Filter
	MipmapMode    hal.SamplerMipmapMode
	AddressModeU  hal.SamplerAddressMode
	AddressModeV  hal.SamplerAddressMode
	AddressModeW  hal.SamplerAddressMode
	MipLodBias    float32
	MaxAnisotropy float32
	CompareOp     hal.CompareOp

	SetLodRange bool
	MinLod      float32
	MaxLod      float32
}

// DefaultSamplerCreateInfo returns trilinear filtering with clamp-to-edge addressing.
func DefaultSamplerCreateInfo() SamplerCreateInfo {
	return SamplerCreateInfo{
		MagFilter:    hal.FilterLinear,
		MinFilter:    hal.FilterLinear,
		MipmapMode:   hal.SamplerMipmapModeLinear,
		AddressModeU: hal.SamplerAddressModeClampToEdge,
		AddressModeV: hal.SamplerAddressModeClampToEdge,
		AddressModeW: hal.SamplerAddressModeClampToEdge,
		CompareOp:    hal.CompareOpNever,
	}
}

func (i SamplerCreateInfo) Equal(other SamplerCreateInfo) bool {
	if i.MagFilter != other.MagFilter || i.MinFilter != other.MinFilter || i.MipmapMode != other.MipmapMode {
		return false
	}
	if i.AddressModeU != other.AddressModeU || i.AddressModeV != other.AddressModeV || i.AddressModeW != other.AddressModeW {
		return false
	}
	if i.MipLodBias != other.MipLodBias || i.MaxAnisotropy != other.MaxAnisotropy || i.CompareOp != other.CompareOp {
		return false
	}
	if i.SetLodRange != other.SetLodRange {
		return false
	}
	if i.SetLodRange {
		return i.MinLod == other.MinLod && i.MaxLod == other.MaxLod
	}
	return true
}

func (i SamplerCreateInfo) toNative(features hal.PhysicalDeviceFeatures) hal.SamplerCreateInfo {
	info := hal.SamplerCreateInfo{
		MagFilter:        i.MagFilter,
		MinFilter:        i.MinFilter,
		MipmapMode:       i.MipmapMode,
		AddressModeU:     i.AddressModeU,
		AddressModeV:     i.AddressModeV,
		AddressModeW:     i.AddressModeW,
		MipLodBias:       i.MipLodBias,
		AnisotropyEnable: i.MaxAnisotropy > 0 && features.SamplerAnisotropy,
		MaxAnisotropy:    i.MaxAnisotropy,
		CompareEnable:    i.CompareOp != hal.CompareOpNever,
		CompareOp:        i.CompareOp,
		BorderColor:      hal.BorderColorFloatTransparentBlack,
	}

	if i.SetLodRange {
		info.MinLod = i.MinLod
		info.MaxLod = i.MaxLod
	} else if i.MipmapMode == hal.SamplerMipmapModeLinear {
		info.MaxLod = hal.LodClampNone
	}

	if !info.AnisotropyEnable {
		info.MaxAnisotropy = 0
	}

	return info
}

type Sampler struct {
	resource
	native hal.Sampler
	info   SamplerCreateInfo
	preset bool
}

func (s *Sampler) Native() hal.Sampler           { return s.native }
func (s *Sampler) CreateInfo() SamplerCreateInfo { return s.info }

// IsPreset reports whether the sampler belongs to the device's sampler pool. Preset samplers are
// destroyed with the device and ignore DestroySampler.
func (s *Sampler) IsPreset() bool { return s.preset }
