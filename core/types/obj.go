// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package types

import (
	"math"
)

// Expiry results returned by ObjType callbacks. Values are absolute
// microseconds since epoch unless one of the two sentinels.
const (
	// CacheUnlimited keeps a cache entry alive until replaced or evicted.
	CacheUnlimited = int64(math.MaxInt64)

	// NotCached tells the cache to not cache at all.
	NotCached = int64(0)
)

// defaultNegativeTTLMicros is how long the built-in kinds allow a "not found"
// answer to be served from the cache.
const defaultNegativeTTLMicros = int64(60 * 1000 * 1000)

// ObjType classifies an object and supplies its caching policy and payload
// decoder. The two expiry callbacks receive and return microseconds.
type ObjType interface {
	// Name is the stable kind name stored in the serialized envelope.
	Name() string

	// CachedObjExpiresAtMicros returns the absolute time the cached object
	// expires at, CacheUnlimited or NotCached.
	CachedObjExpiresAtMicros(obj Obj, now func() int64) int64

	// NegativeCacheExpiresAtMicros returns the absolute time a cached
	// "not found" marker expires at, CacheUnlimited or NotCached.
	NegativeCacheExpiresAtMicros(now func() int64) int64

	// DecodeObj rebuilds an object of this kind from its serialized payload.
	DecodeObj(id ObjId, generation int64, payload []byte) (Obj, error)
}

// Obj is an immutable content addressed object.
type Obj interface {
	// Type returns the object kind.
	Type() ObjType

	// ID returns the content hash id.
	ID() ObjId

	// Referenced returns the micros timestamp the object was last known to
	// be referenced, 0 if never stamped.
	Referenced() int64

	// WithReferenced returns a copy carrying the given referenced stamp.
	WithReferenced(referenced int64) Obj

	// Marshal serializes the kind specific payload.
	Marshal() ([]byte, error)
}

var kinds = make(map[string]ObjType)

// RegisterKind registers an object kind for payload decoding.
func RegisterKind(t ObjType) {
	kinds[t.Name()] = t
}

// KindByName resolves a registered kind, nil if unknown.
func KindByName(name string) ObjType {
	return kinds[name]
}
