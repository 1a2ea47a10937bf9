package gpu

import (
	"log/slog"

	"github.com/vkngwrapper/forge/hal"
	"github.com/vkngwrapper/forge/result"
	"golang.org/x/exp/slices"
)

// FeatureRequirement is one row of the feature table a device is validated against. A row that
// is required but unsupported fails validation when Critical and is logged otherwise.
type FeatureRequirement struct {
	Name        string
	IsRequired  bool
	IsSupported func(features hal.PhysicalDeviceFeatures) bool
	Enable      func(features *hal.PhysicalDeviceFeatures)
	Extensions  []string
	Critical    bool
}

// FeatureSet is the outcome of ValidateFeatures.
type FeatureSet struct {
	Enabled    hal.PhysicalDeviceFeatures
	Extensions []string
	// Missing lists required rows the device could not provide.
	Missing []string
}

func (s FeatureSet) IsEnabled(name string, requirements []FeatureRequirement) bool {
	index := slices.IndexFunc(requirements, func(r FeatureRequirement) bool { return r.Name == name })
	if index < 0 {
		return false
	}
	return requirements[index].IsSupported(s.Enabled)
}

// DefaultFeatureRequirements is the table the device is built against: shader objects, dynamic
// rendering, descriptor indexing and buffer device addresses are mandatory, the rest is enabled
// when present.
func DefaultFeatureRequirements() []FeatureRequirement {
	return []FeatureRequirement{
		{
			Name:        "ShaderObject",
			IsRequired:  true,
			IsSupported: func(f hal.PhysicalDeviceFeatures) bool { return f.ShaderObject },
			Enable:      func(f *hal.PhysicalDeviceFeatures) { f.ShaderObject = true },
			Extensions:  []string{"VK_EXT_shader_object"},
			Critical:    true,
		},
		{
			Name:        "DynamicRendering",
			IsRequired:  true,
			IsSupported: func(f hal.PhysicalDeviceFeatures) bool { return f.DynamicRendering },
			Enable:      func(f *hal.PhysicalDeviceFeatures) { f.DynamicRendering = true },
			Critical:    true,
		},
		{
			Name:        "ExtendedDynamicState3",
			IsRequired:  true,
			IsSupported: func(f hal.PhysicalDeviceFeatures) bool { return f.ExtendedDynamicState3 },
			Enable:      func(f *hal.PhysicalDeviceFeatures) { f.ExtendedDynamicState3 = true },
			Extensions:  []string{"VK_EXT_extended_dynamic_state3"},
			Critical:    true,
		},
		{
			Name:        "DescriptorIndexing",
			IsRequired:  true,
			IsSupported: func(f hal.PhysicalDeviceFeatures) bool { return f.DescriptorIndexing },
			Enable:      func(f *hal.PhysicalDeviceFeatures) { f.DescriptorIndexing = true },
			Extensions:  []string{"VK_EXT_descriptor_indexing"},
			Critical:    true,
		},
		{
			Name:        "BufferDeviceAddress",
			IsRequired:  true,
			IsSupported: func(f hal.PhysicalDeviceFeatures) bool { return f.BufferDeviceAddress },
			Enable:      func(f *hal.PhysicalDeviceFeatures) { f.BufferDeviceAddress = true },
			Extensions:  []string{"VK_KHR_buffer_device_address"},
			Critical:    true,
		},
		{
			Name:        "SamplerAnisotropy",
			IsSupported: func(f hal.PhysicalDeviceFeatures) bool { return f.SamplerAnisotropy },
			Enable:      func(f *hal.PhysicalDeviceFeatures) { f.SamplerAnisotropy = true },
		},
		{
			Name:        "TessellationShader",
			IsSupported: func(f hal.PhysicalDeviceFeatures) bool { return f.TessellationShader },
			Enable:      func(f *hal.PhysicalDeviceFeatures) { f.TessellationShader = true },
		},
		{
			Name:        "GeometryShader",
			IsSupported: func(f hal.PhysicalDeviceFeatures) bool { return f.GeometryShader },
			Enable:      func(f *hal.PhysicalDeviceFeatures) { f.GeometryShader = true },
		},
		{
			Name:        "MultiDrawIndirect",
			IsSupported: func(f hal.PhysicalDeviceFeatures) bool { return f.MultiDrawIndirect },
			Enable:      func(f *hal.PhysicalDeviceFeatures) { f.MultiDrawIndirect = true },
		},
		{
			Name:        "PipelineStatistics",
			IsSupported: func(f hal.PhysicalDeviceFeatures) bool { return f.PipelineStatistics },
			Enable:      func(f *hal.PhysicalDeviceFeatures) { f.PipelineStatistics = true },
		},
		{
			Name:        "MeshShader",
			IsSupported: func(f hal.PhysicalDeviceFeatures) bool { return f.MeshShader && f.TaskShader },
			Enable: func(f *hal.PhysicalDeviceFeatures) {
				f.MeshShader = true
				f.TaskShader = true
			},
			Extensions: []string{"VK_EXT_mesh_shader"},
		},
		{
			Name:        "RayTracing",
			IsSupported: func(f hal.PhysicalDeviceFeatures) bool { return f.RayTracing },
			Enable:      func(f *hal.PhysicalDeviceFeatures) { f.RayTracing = true },
			Extensions: []string{
				"VK_KHR_acceleration_structure",
				"VK_KHR_ray_tracing_pipeline",
				"VK_KHR_deferred_host_operations",
			},
		},
		{
			Name:        "DebugUtils",
			IsSupported: func(f hal.PhysicalDeviceFeatures) bool { return f.DebugUtils },
			Enable:      func(f *hal.PhysicalDeviceFeatures) { f.DebugUtils = true },
		},
	}
}

// ValidateFeatures walks requirements against supported and returns what should be enabled.
// The first critical row that cannot be met fails validation with result.FeatureNotPresent.
func ValidateFeatures(logger *slog.Logger, requirements []FeatureRequirement, supported hal.PhysicalDeviceFeatures) (FeatureSet, error) {
	var set FeatureSet

	for _, requirement := range requirements {
		if requirement.IsSupported(supported) {
			requirement.Enable(&set.Enabled)
			for _, extension := range requirement.Extensions {
				if !slices.Contains(set.Extensions, extension) {
					set.Extensions = append(set.Extensions, extension)
				}
			}
			continue
		}

		if !requirement.IsRequired {
			logger.Debug("ValidateFeatures", slog.String("feature", requirement.Name), slog.String("message", "optional feature not supported"))
			continue
		}

		set.Missing = append(set.Missing, requirement.Name)
		if requirement.Critical {
			return set, result.Newf(result.FeatureNotPresent, "required feature %s is not supported", requirement.Name)
		}
		logger.Warn("ValidateFeatures", slog.String("feature", requirement.Name), slog.String("message", "required feature not supported"))
	}

	return set, nil
}
