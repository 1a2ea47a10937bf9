// Package config loads device construction presets from TOML.
package config

import (
	"bytes"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
)

type DeviceConfig struct {
	Device     DeviceSection    `toml:"device"`
	Bindless   BindlessSection  `toml:"bindless"`
	Samplers   SamplerSection   `toml:"samplers"`
	QueryPools QueryPoolSection `toml:"query_pools"`
	Commands   CommandSection   `toml:"commands"`
}

type DeviceSection struct {
	// FatalErrorAction is one of "abort", "continue" or "custom".
	FatalErrorAction string `toml:"fatal_error_action"`
	// Synchronized guards internal tables with mutexes. Disable only when a single goroutine
	// owns the device.
	Synchronized       bool `toml:"synchronized"`
	TrackResourceStats bool `toml:"track_resource_stats"`
	EnableBreadcrumbs  bool `toml:"enable_breadcrumbs"`
}

type BindlessSection struct {
	Enabled     bool `toml:"enabled"`
	MaxImages   int  `toml:"max_images"`
	MaxSamplers int  `toml:"max_samplers"`
	// AddressTableSize is the byte size of the buffer address table. Each buffer handle takes 8 bytes.
	AddressTableSize int `toml:"address_table_size"`
}

type SamplerSection struct {
	CreatePresets bool `toml:"create_presets"`
}

type QueryPoolSection struct {
	TimestampPools          int `toml:"timestamp_pools"`
	TimestampQueries        int `toml:"timestamp_queries"`
	OcclusionPools          int `toml:"occlusion_pools"`
	OcclusionQueries        int `toml:"occlusion_queries"`
	PipelineStatisticsPools int `toml:"pipeline_statistics_pools"`
	PipelineStatsQueries    int `toml:"pipeline_statistics_queries"`
}

type CommandSection struct {
	// TransientPools creates command pools whose buffers are expected to be short-lived.
	TransientPools bool `toml:"transient_pools"`
}

// Default returns the configuration used when no file is supplied.
func Default() DeviceConfig {
	return DeviceConfig{
		Device: DeviceSection{
			FatalErrorAction:   "abort",
			Synchronized:       true,
			TrackResourceStats: true,
			EnableBreadcrumbs:  false,
		},
		Bindless: BindlessSection{
			Enabled:          true,
			MaxImages:        1024,
			MaxSamplers:      64,
			AddressTableSize: 4096,
		},
		Samplers: SamplerSection{
			CreatePresets: true,
		},
		QueryPools: QueryPoolSection{
			TimestampPools:          32,
			TimestampQueries:        128,
			OcclusionPools:          8,
			OcclusionQueries:        64,
			PipelineStatisticsPools: 4,
			PipelineStatsQueries:    32,
		},
		Commands: CommandSection{
			TransientPools: true,
		},
	}
}

// Load decodes a TOML document on top of Default, so absent keys keep their default values.
func Load(r io.Reader) (DeviceConfig, error) {
	cfg := Default()
	decoder := toml.NewDecoder(r).DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		return DeviceConfig{}, errors.Wrap(err, "failed to decode device config")
	}
	if err := cfg.Validate(); err != nil {
		return DeviceConfig{}, err
	}
	return cfg, nil
}

func LoadFile(path string) (DeviceConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DeviceConfig{}, errors.Wrapf(err, "failed to read device config %s", path)
	}
	return Load(bytes.NewReader(data))
}

// Marshal encodes cfg as TOML.
func Marshal(cfg DeviceConfig) ([]byte, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode device config")
	}
	return data, nil
}

func (c DeviceConfig) Validate() error {
	switch c.Device.FatalErrorAction {
	case "abort", "continue", "custom":
	default:
		return errors.Newf("unknown fatal_error_action %q", c.Device.FatalErrorAction)
	}

	if c.Bindless.Enabled {
		if c.Bindless.MaxImages <= 0 || c.Bindless.MaxSamplers <= 0 {
			return errors.New("bindless max_images and max_samplers must be positive")
		}
		if c.Bindless.AddressTableSize < 8 || c.Bindless.AddressTableSize%8 != 0 {
			return errors.Newf("bindless address_table_size must be a positive multiple of 8, got %d", c.Bindless.AddressTableSize)
		}
	}

	q := c.QueryPools
	for _, count := range []int{q.TimestampPools, q.TimestampQueries, q.OcclusionPools, q.OcclusionQueries, q.PipelineStatisticsPools, q.PipelineStatsQueries} {
		if count < 0 {
			return errors.New("query pool counts cannot be negative")
		}
	}
	return nil
}
