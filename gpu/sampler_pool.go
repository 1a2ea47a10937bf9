package gpu

import (
	"log/slog"

	"github.com/vkngwrapper/forge/hal"
)

// SamplerPreset names one of the samplers the device creates up front.
type SamplerPreset int32

const (
	SamplerLinearClampMipmap SamplerPreset = iota
	SamplerLinearWrapMipmap
	SamplerLinearMirrorMipmap
	SamplerNearestClampMipmap
	SamplerNearestWrapMipmap
	SamplerAnisotropicClamp
	SamplerAnisotropicWrap
	SamplerShadowPCF
	SamplerShadowESM
	SamplerCubemap
	SamplerCubemapLow
	SamplerPointClamp

	samplerPresetCount = 12
)

var samplerPresetMapping = make(map[SamplerPreset]string)

func init() {
	samplerPresetMapping[SamplerLinearClampMipmap] = "LinearClampMipmap"
	samplerPresetMapping[SamplerLinearWrapMipmap] = "LinearWrapMipmap"
	samplerPresetMapping[SamplerLinearMirrorMipmap] = "LinearMirrorMipmap"
	samplerPresetMapping[SamplerNearestClampMipmap] = "NearestClampMipmap"
	samplerPresetMapping[SamplerNearestWrapMipmap] = "NearestWrapMipmap"
	samplerPresetMapping[SamplerAnisotropicClamp] = "AnisotropicClamp"
	samplerPresetMapping[SamplerAnisotropicWrap] = "AnisotropicWrap"
	samplerPresetMapping[SamplerShadowPCF] = "ShadowPCF"
	samplerPresetMapping[SamplerShadowESM] = "ShadowESM"
	samplerPresetMapping[SamplerCubemap] = "Cubemap"
	samplerPresetMapping[SamplerCubemapLow] = "CubemapLow"
	samplerPresetMapping[SamplerPointClamp] = "PointClamp"
}

func (p SamplerPreset) String() string {
	str, ok := samplerPresetMapping[p]
	if !ok {
		return "unknown"
	}
	return str
}

func samplerPresetAddressing(info SamplerCreateInfo, mode hal.SamplerAddressMode) SamplerCreateInfo {
	info.AddressModeU = mode
	info.AddressModeV = mode
	info.AddressModeW = mode
	return info
}

func samplerPresetFiltering(info SamplerCreateInfo, filter hal.Filter, mipmapMode hal.SamplerMipmapMode) SamplerCreateInfo {
	info.MagFilter = filter
	info.MinFilter = filter
	info.MipmapMode = mipmapMode
	return info
}

// SamplerPresetInfo returns the create info a preset is built from.
func SamplerPresetInfo(preset SamplerPreset) SamplerCreateInfo {
	info := DefaultSamplerCreateInfo()
	info.SetLodRange = true
	info.MinLod = 0
	info.MaxLod = 16

	linear := samplerPresetFiltering(info, hal.FilterLinear, hal.SamplerMipmapModeLinear)
	nearest := samplerPresetFiltering(info, hal.FilterNearest, hal.SamplerMipmapModeNearest)

	switch preset {
	case SamplerLinearClampMipmap:
		return samplerPresetAddressing(linear, hal.SamplerAddressModeClampToEdge)
	case SamplerLinearWrapMipmap:
		return samplerPresetAddressing(linear, hal.SamplerAddressModeRepeat)
	case SamplerLinearMirrorMipmap:
		return samplerPresetAddressing(linear, hal.SamplerAddressModeMirroredRepeat)
	case SamplerNearestClampMipmap:
		return samplerPresetAddressing(nearest, hal.SamplerAddressModeClampToEdge)
	case SamplerNearestWrapMipmap:
		return samplerPresetAddressing(nearest, hal.SamplerAddressModeRepeat)
	case SamplerAnisotropicClamp:
		linear.MaxAnisotropy = 16
		return samplerPresetAddressing(linear, hal.SamplerAddressModeClampToEdge)
	case SamplerAnisotropicWrap:
		linear.MaxAnisotropy = 16
		return samplerPresetAddressing(linear, hal.SamplerAddressModeRepeat)
	case SamplerShadowPCF:
		shadow := samplerPresetFiltering(info, hal.FilterLinear, hal.SamplerMipmapModeNearest)
		shadow.CompareOp = hal.CompareOpLessOrEqual
		shadow.MaxLod = 0
		return samplerPresetAddressing(shadow, hal.SamplerAddressModeClampToEdge)
	case SamplerShadowESM:
		shadow := samplerPresetFiltering(info, hal.FilterLinear, hal.SamplerMipmapModeNearest)
		shadow.MaxLod = 0
		return samplerPresetAddressing(shadow, hal.SamplerAddressModeClampToEdge)
	case SamplerCubemap:
		return samplerPresetAddressing(linear, hal.SamplerAddressModeClampToEdge)
	case SamplerCubemapLow:
		low := samplerPresetFiltering(info, hal.FilterLinear, hal.SamplerMipmapModeNearest)
		low.MaxLod = 4
		return samplerPresetAddressing(low, hal.SamplerAddressModeClampToEdge)
	case SamplerPointClamp:
		nearest.MaxLod = 0
		return samplerPresetAddressing(nearest, hal.SamplerAddressModeClampToEdge)
	}

	return info
}

// SamplerPool holds the preset samplers. It is read-only once the device is built.
type SamplerPool struct {
	logger   *slog.Logger
	samplers [samplerPresetCount]*Sampler
}

func newSamplerPool(logger *slog.Logger, device *Device) (*SamplerPool, error) {
	pool := &SamplerPool{logger: logger}

	for preset := SamplerPreset(0); preset < samplerPresetCount; preset++ {
		sampler, err := device.createSamplerObject(SamplerPresetInfo(preset), "PoolSampler_"+preset.String())
		if err != nil {
			pool.destroy(device)
			return nil, err
		}
		sampler.preset = true
		pool.samplers[preset] = sampler
	}

	return pool, nil
}

// GetSampler returns the preset sampler, or nil for an unknown preset.
func (p *SamplerPool) GetSampler(preset SamplerPreset) *Sampler {
	if preset < 0 || preset >= samplerPresetCount {
		p.logger.Warn("SamplerPool::GetSampler", slog.String("preset", preset.String()), slog.String("message", "invalid sampler preset"))
		return nil
	}
	return p.samplers[preset]
}

// FindMatchingSampler returns the preset whose create info equals info, or nil.
func (p *SamplerPool) FindMatchingSampler(info SamplerCreateInfo) *Sampler {
	for _, sampler := range p.samplers {
		if sampler != nil && sampler.info.Equal(info) {
			return sampler
		}
	}
	return nil
}

func (p *SamplerPool) destroy(device *Device) {
	for preset, sampler := range p.samplers {
		if sampler == nil {
			continue
		}
		device.destroySamplerObject(sampler)
		p.samplers[preset] = nil
	}
}
