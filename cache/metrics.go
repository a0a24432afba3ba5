// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cache

import (
	"github.com/BOXFoundation/repod/metrics"
	gometrics "github.com/rcrowley/go-metrics"
)

// cacheStats publishes the cache counters. All methods are nil safe so a
// disabled cache pays nothing for statistics.
type cacheStats struct {
	hits      gometrics.Counter
	misses    gometrics.Counter
	loads     gometrics.Counter
	evictions gometrics.Counter
}

func newCacheStats() *cacheStats {
	return &cacheStats{
		hits:      metrics.NewCounter("repod.cache.hits"),
		misses:    metrics.NewCounter("repod.cache.misses"),
		loads:     metrics.NewCounter("repod.cache.loads"),
		evictions: metrics.NewCounter("repod.cache.evictions"),
	}
}

func (s *cacheStats) hit() {
	if s != nil {
		s.hits.Inc(1)
	}
}

func (s *cacheStats) miss() {
	if s != nil {
		s.misses.Inc(1)
	}
}

func (s *cacheStats) load() {
	if s != nil {
		s.loads.Inc(1)
	}
}

func (s *cacheStats) evict() {
	if s != nil {
		s.evictions.Inc(1)
	}
}
