// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cache

import (
	"time"

	"github.com/BOXFoundation/repod/eventbus"
)

// Config defines the cache configuration
type Config struct {
	// CapacityMb is the total byte budget of the cache in megabytes.
	CapacityMb uint32 `mapstructure:"capacity_mb"`

	// ReferenceTTL is how long references may be served from the cache. A
	// zero or negative value disables the reference cache entirely.
	ReferenceTTL time.Duration `mapstructure:"reference_ttl"`

	// ReferenceNegativeTTL is how long "not found" reference answers may be
	// served from the cache. A zero or negative value disables negative
	// reference entries.
	ReferenceNegativeTTL time.Duration `mapstructure:"reference_negative_ttl"`

	// MaxObjSize bounds the encoded size of a cached object, 0 means
	// unlimited. Oversized objects are simply not cached.
	MaxObjSize int `mapstructure:"max_obj_size"`

	// EnableMetrics publishes hit/miss/load/eviction counters and the
	// capacity gauge. When false no statistics are kept at all.
	EnableMetrics bool `mapstructure:"enable_metrics"`

	// ClockNanos is the monotonic clock of the cache. Tests inject a
	// deterministic one; nil falls back to the wall clock.
	ClockNanos func() int64 `mapstructure:"-"`

	// Bus carries peer invalidations. A nil bus keeps invalidations local.
	Bus eventbus.Bus `mapstructure:"-"`
}

// prepare fills in defaults, leaving the passed config untouched.
func (cfg *Config) prepare() Config {
	c := *cfg
	if c.ClockNanos == nil {
		c.ClockNanos = func() int64 {
			return time.Now().UnixNano()
		}
	}
	return c
}

// capacityBytes is the byte budget of the cache.
func (cfg *Config) capacityBytes() int64 {
	return int64(cfg.CapacityMb) * 1024 * 1024
}
