package gpu

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/forge/hal"
	"github.com/vkngwrapper/forge/hal/mocks"
	"go.uber.org/mock/gomock"
)

func TestSamplerCreateInfoEqual(t *testing.T) {
	left := DefaultSamplerCreateInfo()
	right := DefaultSamplerCreateInfo()
	require.True(t, left.Equal(right))

	// The LOD range only counts once it is set.
	right.MaxLod = 4
	require.True(t, left.Equal(right))
	right.SetLodRange = true
	require.False(t, left.Equal(right))
	left.SetLodRange = true
	left.MaxLod = 4
	require.True(t, left.Equal(right))

	right.AddressModeW = hal.SamplerAddressModeRepeat
	require.False(t, left.Equal(right))
}

func TestSamplerToNative(t *testing.T) {
	info := DefaultSamplerCreateInfo()
	info.MaxAnisotropy = 8

	native := info.toNative(hal.PhysicalDeviceFeatures{})
	require.False(t, native.AnisotropyEnable)
	require.Equal(t, float32(0), native.MaxAnisotropy)
	require.Equal(t, hal.LodClampNone, native.MaxLod)
	require.False(t, native.CompareEnable)

	native = info.toNative(hal.PhysicalDeviceFeatures{SamplerAnisotropy: true})
	require.True(t, native.AnisotropyEnable)
	require.Equal(t, float32(8), native.MaxAnisotropy)

	shadow := SamplerPresetInfo(SamplerShadowPCF).toNative(hal.PhysicalDeviceFeatures{})
	require.True(t, shadow.CompareEnable)
	require.Equal(t, hal.CompareOpLessOrEqual, shadow.CompareOp)
	require.Equal(t, float32(0), shadow.MaxLod)
	require.Equal(t, hal.SamplerMipmapModeNearest, shadow.MipmapMode)

	nearest := DefaultSamplerCreateInfo()
	nearest.MipmapMode = hal.SamplerMipmapModeNearest
	require.Equal(t, float32(0), nearest.toNative(hal.PhysicalDeviceFeatures{}).MaxLod)
}

func TestSamplerPresetInfo(t *testing.T) {
	wrap := SamplerPresetInfo(SamplerLinearWrapMipmap)
	require.Equal(t, hal.SamplerAddressModeRepeat, wrap.AddressModeU)
	require.Equal(t, hal.FilterLinear, wrap.MinFilter)
	require.True(t, wrap.SetLodRange)
	require.Equal(t, float32(16), wrap.MaxLod)

	require.Equal(t, float32(16), SamplerPresetInfo(SamplerAnisotropicClamp).MaxAnisotropy)
	require.Equal(t, float32(4), SamplerPresetInfo(SamplerCubemapLow).MaxLod)
	require.Equal(t, hal.FilterNearest, SamplerPresetInfo(SamplerPointClamp).MagFilter)

	// Every preset is distinct so lookups by create info are unambiguous, except the cubemap
	// preset which shares its settings with LinearClampMipmap.
	for left := SamplerPreset(0); left < samplerPresetCount; left++ {
		for right := left + 1; right < samplerPresetCount; right++ {
			if left == SamplerLinearClampMipmap && right == SamplerCubemap {
				continue
			}
			require.False(t, SamplerPresetInfo(left).Equal(SamplerPresetInfo(right)), "%s and %s", left, right)
		}
	}
}

func TestSamplerPool(t *testing.T) {
	ctrl := gomock.NewController(t)

	setup := defaultDeviceSetup()
	setup.Options.CreateSamplerPresets = true
	setup.PreNewMock = func(driver *mocks.MockDevice) {
		next := hal.Sampler(0)
		driver.EXPECT().CreateSampler(gomock.Any()).DoAndReturn(func(info hal.SamplerCreateInfo) (hal.Sampler, error) {
			next++
			return next, nil
		}).Times(int(samplerPresetCount))
	}
	driver, device := readyDevice(t, ctrl, setup)
	pool := device.SamplerPool()
	require.NotNil(t, pool)

	point := pool.GetSampler(SamplerPointClamp)
	require.NotNil(t, point)
	require.True(t, point.IsPreset())
	require.Equal(t, hal.Sampler(SamplerPointClamp+1), point.Native())
	require.Nil(t, pool.GetSampler(SamplerPreset(samplerPresetCount)))
	require.Nil(t, pool.GetSampler(SamplerPreset(-1)))

	shadow, err := device.CreateSampler(SamplerPresetInfo(SamplerShadowPCF), "Shadow")
	require.NoError(t, err)
	require.Same(t, pool.GetSampler(SamplerShadowPCF), shadow)
	require.NoError(t, device.DestroySampler(shadow))
	require.Equal(t, int(samplerPresetCount), device.Stats().Active(ResourceTypeSampler))

	custom := DefaultSamplerCreateInfo()
	custom.MipLodBias = 0.5
	require.Nil(t, pool.FindMatchingSampler(custom))

	driver.EXPECT().CreateSampler(gomock.Any()).Return(hal.Sampler(50), nil)
	sampler, err := device.CreateSampler(custom, "Biased")
	require.NoError(t, err)
	require.False(t, sampler.IsPreset())

	driver.EXPECT().DestroySampler(hal.Sampler(50))
	require.NoError(t, device.DestroySampler(sampler))
	require.Error(t, device.DestroySampler(sampler))

	driver.EXPECT().DestroySampler(gomock.Any()).Times(int(samplerPresetCount))
	expectDeviceDestroy(driver)
	require.NoError(t, device.Destroy())
	require.Equal(t, 0, device.Stats().Active(ResourceTypeSampler))
}
