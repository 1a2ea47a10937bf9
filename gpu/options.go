package gpu

import (
	"github.com/vkngwrapper/forge/config"
	"github.com/vkngwrapper/forge/fatal"
)

// CreateOptions configures NewDevice.
type CreateOptions struct {
	// ErrorHandler receives assertion failures. Defaults to fatal.Default().
	ErrorHandler *fatal.ErrorHandler
	// Synchronized guards the device's internal tables with mutexes. Disable only when a single
	// goroutine owns the device.
	Synchronized         bool
	TrackResourceStats   bool
	EnableBreadcrumbs    bool
	CreateSamplerPresets bool
	// FeatureRequirements defaults to DefaultFeatureRequirements().
	FeatureRequirements []FeatureRequirement

	Bindless   BindlessOptions
	QueryPools QueryPoolAllocationConfig
	Commands   CommandBufferAllocatorOptions
}

func DefaultCreateOptions() CreateOptions {
	return CreateOptions{
		Synchronized:         true,
		TrackResourceStats:   true,
		CreateSamplerPresets: true,
		Bindless:             DefaultBindlessOptions(),
		QueryPools:           DefaultQueryPoolAllocationConfig(),
		Commands:             CommandBufferAllocatorOptions{TransientPools: true},
	}
}

// OptionsFromConfig builds CreateOptions from a loaded config. The config's fatal error action is
// applied to handler, which becomes the options' ErrorHandler.
func OptionsFromConfig(cfg config.DeviceConfig, handler *fatal.ErrorHandler) (CreateOptions, error) {
	if err := cfg.Validate(); err != nil {
		return CreateOptions{}, err
	}

	action, err := fatal.ParseAction(cfg.Device.FatalErrorAction)
	if err != nil {
		return CreateOptions{}, err
	}
	if handler == nil {
		handler = fatal.Default()
	}
	handler.SetFatalErrorAction(action)

	options := DefaultCreateOptions()
	options.ErrorHandler = handler
	options.Synchronized = cfg.Device.Synchronized
	options.TrackResourceStats = cfg.Device.TrackResourceStats
	options.EnableBreadcrumbs = cfg.Device.EnableBreadcrumbs
	options.CreateSamplerPresets = cfg.Samplers.CreatePresets

	options.Bindless = BindlessOptions{
		Enabled:          cfg.Bindless.Enabled,
		MaxImages:        cfg.Bindless.MaxImages,
		MaxSamplers:      cfg.Bindless.MaxSamplers,
		AddressTableSize: cfg.Bindless.AddressTableSize,
	}

	q := cfg.QueryPools
	options.QueryPools.TimestampPoolCount = q.TimestampPools
	options.QueryPools.TimestampQueryCount = q.TimestampQueries
	options.QueryPools.OcclusionPoolCount = q.OcclusionPools
	options.QueryPools.OcclusionQueryCount = q.OcclusionQueries
	options.QueryPools.StatisticsPoolCount = q.PipelineStatisticsPools
	options.QueryPools.StatisticsQueryCount = q.PipelineStatsQueries

	options.Commands.TransientPools = cfg.Commands.TransientPools
	return options, nil
}
