// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package cache is the object/reference cache layer between the version
// control logic and the persistence backends. One CacheBackend multiplexes
// any number of repositories over one weight bounded store; Wrap turns any
// persist.Persist into its caching facade.
package cache

import (
	"github.com/BOXFoundation/repod/codec"
	"github.com/BOXFoundation/repod/core/types"
	"github.com/BOXFoundation/repod/eventbus"
	"github.com/BOXFoundation/repod/log"
	"github.com/BOXFoundation/repod/metrics"
	"github.com/BOXFoundation/repod/persist"
)

var logger = log.NewLogger("cache")

// NotFoundObjSentinel is returned by Get for ids previously marked "not
// found" via PutNegative. It is only for cache-internal purposes and must
// never escape the caching persist facade.
var NotFoundObjSentinel types.Obj = notFoundObj{}

type notFoundObj struct{}

func (notFoundObj) Type() types.ObjType { panic("sentinel object") }
func (notFoundObj) ID() types.ObjId     { panic("sentinel object") }
func (notFoundObj) Referenced() int64   { panic("sentinel object") }
func (notFoundObj) WithReferenced(referenced int64) types.Obj {
	panic("sentinel object")
}
func (notFoundObj) Marshal() ([]byte, error) { panic("sentinel object") }

// NonExistentReferenceSentinel is returned by GetReference for names
// previously marked "not found" via PutReferenceNegative.
var NonExistentReferenceSentinel = types.NewReference("NON_EXISTENT", types.ZeroLengthObjId, false, -1, nil)

// CacheBackend provides the cache primitives for a caching persist facade,
// suitable for multiple repositories sharing one process.
type CacheBackend interface {
	// Get returns the cached object, NotFoundObjSentinel for an id marked
	// "not found", or nil on a miss.
	Get(repositoryID string, id types.ObjId) types.Obj

	// Put adds the object to the local cache and sends an invalidation
	// message to peers.
	Put(repositoryID string, obj types.Obj)

	// PutLocal adds the object only to the local cache, it does not send
	// an invalidation message.
	PutLocal(repositoryID string, obj types.Obj)

	// PutNegative records the "not found" marker for the id. A nil typ
	// behaves like Remove.
	PutNegative(repositoryID string, id types.ObjId, typ types.ObjType)

	// Remove invalidates the entry and sends an invalidation message to
	// peers.
	Remove(repositoryID string, id types.ObjId)

	// Clear invalidates every entry of the repository.
	Clear(repositoryID string)

	// Wrap returns a caching facade over the given persist.
	Wrap(p persist.Persist) persist.Persist

	// GetReference returns the cached reference, the
	// NonExistentReferenceSentinel for a name marked "not found", or nil
	// on a miss.
	GetReference(repositoryID string, name string) *types.Reference

	// PutReference adds the reference to the local cache and sends an
	// invalidation message to peers.
	PutReference(repositoryID string, ref *types.Reference)

	// PutReferenceLocal adds the reference only to the local cache.
	PutReferenceLocal(repositoryID string, ref *types.Reference)

	// PutReferenceNegative records the "not found" marker for the name.
	PutReferenceNegative(repositoryID string, name string)

	// RemoveReference invalidates the entry and sends an invalidation
	// message to peers.
	RemoveReference(repositoryID string, name string)
}

type cacheBackend struct {
	cfg   Config
	store *weightedStore
	bus   eventbus.Bus

	refTTLNanos         int64
	refNegativeTTLNanos int64
}

var _ CacheBackend = (*cacheBackend)(nil)

// New creates a cache backend from the given configuration.
func New(config *Config) CacheBackend {
	cfg := config.prepare()

	var stats *cacheStats
	if cfg.EnableMetrics {
		stats = newCacheStats()
		metrics.NewGauge("repod.cache.capacity.mb").Update(int64(cfg.CapacityMb))
	}

	return &cacheBackend{
		cfg:                 cfg,
		store:               newWeightedStore(cfg.capacityBytes(), cfg.ClockNanos, stats),
		bus:                 cfg.Bus,
		refTTLNanos:         cfg.ReferenceTTL.Nanoseconds(),
		refNegativeTTLNanos: cfg.ReferenceNegativeTTL.Nanoseconds(),
	}
}

// clockMicros adapts the nanos clock to the micros policy boundary.
func (b *cacheBackend) clockMicros() int64 {
	return b.cfg.ClockNanos() / 1000
}

// expiresAtNanos converts a policy result from micros to nanos. The
// CacheUnlimited sentinel passes through untouched.
func expiresAtNanos(expiresAtMicros int64) int64 {
	if expiresAtMicros == types.CacheUnlimited {
		return expireNever
	}
	return expiresAtMicros * 1000
}

func (b *cacheBackend) Get(repositoryID string, id types.ObjId) types.Obj {
	value, negative, ok := b.store.get(cacheKeyOf(repositoryID, id))
	if !ok {
		return nil
	}
	if negative {
		return NotFoundObjSentinel
	}
	obj, err := codec.DeserializeObj(id, 0, value, nil)
	if err != nil {
		// an undecodable entry is useless, drop it
		logger.Errorf("Dropping undecodable cache entry %s/%s: %v", repositoryID, id, err)
		b.store.remove(cacheKeyOf(repositoryID, id))
		return nil
	}
	return obj
}

func (b *cacheBackend) Put(repositoryID string, obj types.Obj) {
	b.PutLocal(repositoryID, obj)
	b.sendObjInvalidation(repositoryID, obj.ID())
}

func (b *cacheBackend) PutLocal(repositoryID string, obj types.Obj) {
	expiresAt := obj.Type().CachedObjExpiresAtMicros(obj, b.clockMicros)
	if expiresAt == types.NotCached {
		return
	}

	serialized, err := codec.SerializeObj(obj, b.cfg.MaxObjSize)
	if err != nil {
		// oversized or broken objects are served from persistence only
		logger.Warnf("Not caching object %s/%s: %v", repositoryID, obj.ID(), err)
		return
	}
	b.store.put(cacheKeyOf(repositoryID, obj.ID()), serialized, false, expiresAtNanos(expiresAt))
}

func (b *cacheBackend) PutNegative(repositoryID string, id types.ObjId, typ types.ObjType) {
	if typ == nil {
		b.Remove(repositoryID, id)
		return
	}

	expiresAt := typ.NegativeCacheExpiresAtMicros(b.clockMicros)
	if expiresAt == types.NotCached {
		b.Remove(repositoryID, id)
		return
	}

	b.store.put(cacheKeyOf(repositoryID, id), nil, true, expiresAtNanos(expiresAt))
}

func (b *cacheBackend) Remove(repositoryID string, id types.ObjId) {
	b.store.remove(cacheKeyOf(repositoryID, id))
	b.sendObjInvalidation(repositoryID, id)
}

func (b *cacheBackend) Clear(repositoryID string) {
	b.store.removeIf(func(k cacheKey) bool {
		return k.repositoryID == repositoryID
	})
}

func (b *cacheBackend) Wrap(p persist.Persist) persist.Persist {
	return newCachingPersist(p, b)
}

// refObjId derives the cache id of a reference name. The "r:" prefix cannot
// collide with a content hash, which has fixed non textual form.
func refObjId(name string) types.ObjId {
	return types.ObjId("r:" + name)
}

func (b *cacheBackend) GetReference(repositoryID string, name string) *types.Reference {
	if b.refTTLNanos <= 0 {
		return nil
	}
	value, negative, ok := b.store.get(cacheKeyOf(repositoryID, refObjId(name)))
	if !ok {
		return nil
	}
	if negative {
		return NonExistentReferenceSentinel
	}
	ref, err := codec.DeserializeReference(value)
	if err != nil {
		logger.Errorf("Dropping undecodable reference entry %s/%s: %v", repositoryID, name, err)
		b.store.remove(cacheKeyOf(repositoryID, refObjId(name)))
		return nil
	}
	return ref
}

func (b *cacheBackend) PutReference(repositoryID string, ref *types.Reference) {
	b.PutReferenceLocal(repositoryID, ref)
	b.sendReferenceInvalidation(repositoryID, ref.Name)
}

func (b *cacheBackend) PutReferenceLocal(repositoryID string, ref *types.Reference) {
	if b.refTTLNanos <= 0 {
		return
	}
	serialized, err := codec.SerializeReference(ref)
	if err != nil {
		logger.Warnf("Not caching reference %s/%s: %v", repositoryID, ref.Name, err)
		return
	}
	expiresAt := b.cfg.ClockNanos() + b.refTTLNanos
	b.store.put(cacheKeyOf(repositoryID, refObjId(ref.Name)), serialized, false, expiresAt)
}

func (b *cacheBackend) PutReferenceNegative(repositoryID string, name string) {
	if b.refTTLNanos <= 0 || b.refNegativeTTLNanos <= 0 {
		return
	}
	expiresAt := b.cfg.ClockNanos() + b.refNegativeTTLNanos
	b.store.put(cacheKeyOf(repositoryID, refObjId(name)), nil, true, expiresAt)
}

func (b *cacheBackend) RemoveReference(repositoryID string, name string) {
	if b.refTTLNanos <= 0 {
		return
	}
	b.store.remove(cacheKeyOf(repositoryID, refObjId(name)))
	b.sendReferenceInvalidation(repositoryID, name)
}

// Invalidations go out after the local mutation is visible and outside any
// store lock.
func (b *cacheBackend) sendObjInvalidation(repositoryID string, id types.ObjId) {
	if b.bus == nil {
		return
	}
	b.bus.Publish(eventbus.TopicInvalidateObj, repositoryID, id)
}

func (b *cacheBackend) sendReferenceInvalidation(repositoryID string, name string) {
	if b.bus == nil {
		return
	}
	b.bus.Publish(eventbus.TopicInvalidateReference, repositoryID, name)
}
