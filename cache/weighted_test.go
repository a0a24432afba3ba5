// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cache

import (
	"fmt"
	"testing"
	"time"

	"github.com/BOXFoundation/repod/core/types"
	"github.com/facebookgo/ensure"
)

// fakeClock is a deterministic nanos clock.
type fakeClock struct {
	now int64
}

func (c *fakeClock) nanos() int64 {
	return c.now
}

func (c *fakeClock) advance(d time.Duration) {
	c.now += d.Nanoseconds()
}

func testKeyOf(repo, id string) cacheKey {
	return cacheKeyOf(repo, types.ObjId(id))
}

func TestStorePutGet(t *testing.T) {
	clock := &fakeClock{}
	s := newWeightedStore(1024*1024, clock.nanos, nil)

	k := testKeyOf("r1", "a")
	s.put(k, []byte("value"), false, expireNever)

	v, negative, ok := s.get(k)
	ensure.True(t, ok)
	ensure.False(t, negative)
	ensure.DeepEqual(t, v, []byte("value"))

	_, _, ok = s.get(testKeyOf("r2", "a"))
	ensure.False(t, ok)
}

func TestStoreNegativeEntry(t *testing.T) {
	clock := &fakeClock{}
	s := newWeightedStore(1024*1024, clock.nanos, nil)

	k := testKeyOf("r1", "a")
	s.put(k, nil, true, expireNever)

	v, negative, ok := s.get(k)
	ensure.True(t, ok)
	ensure.True(t, negative)
	ensure.True(t, v == nil)
}

func TestStoreExpiry(t *testing.T) {
	clock := &fakeClock{}
	s := newWeightedStore(1024*1024, clock.nanos, nil)

	k := testKeyOf("r1", "a")
	s.put(k, []byte("v"), false, clock.nanos()+int64(10*time.Second))

	clock.advance(5 * time.Second)
	_, _, ok := s.get(k)
	ensure.True(t, ok)

	// reading must not extend the remaining life
	clock.advance(5 * time.Second)
	_, _, ok = s.get(k)
	ensure.False(t, ok)
}

func TestStoreExpiredPutIsDropped(t *testing.T) {
	clock := &fakeClock{now: int64(time.Hour)}
	s := newWeightedStore(1024*1024, clock.nanos, nil)

	k := testKeyOf("r1", "a")
	s.put(k, []byte("old"), false, expireNever)

	// a put that is already expired replaces the entry with nothing
	s.put(k, []byte("new"), false, clock.nanos())
	_, _, ok := s.get(k)
	ensure.False(t, ok)
	ensure.DeepEqual(t, s.entries(), 0)
}

func TestStoreReplaceKeepsSingleEntry(t *testing.T) {
	clock := &fakeClock{}
	s := newWeightedStore(1024*1024, clock.nanos, nil)

	// equal keys with different expiries land on the same entry
	k := testKeyOf("r1", "a")
	s.put(k, []byte("v1"), false, clock.nanos()+int64(time.Second))
	s.put(k, []byte("v2"), false, expireNever)

	ensure.DeepEqual(t, s.entries(), 1)
	v, _, ok := s.get(k)
	ensure.True(t, ok)
	ensure.DeepEqual(t, v, []byte("v2"))

	clock.advance(time.Hour)
	v, _, ok = s.get(k)
	ensure.True(t, ok)
	ensure.DeepEqual(t, v, []byte("v2"))
}

func TestStoreWeightEviction(t *testing.T) {
	clock := &fakeClock{}

	value := make([]byte, 100)
	entrySize := weigh(testKeyOf("r1", "id-0"), value)

	// room for exactly three entries
	s := newWeightedStore(3*entrySize, clock.nanos, nil)

	for i := 0; i < 4; i++ {
		s.put(testKeyOf("r1", fmt.Sprintf("id-%d", i)), value, false, expireNever)
		ensure.True(t, s.currentWeight() <= 3*entrySize)
	}

	var present int
	for i := 0; i < 4; i++ {
		if _, _, ok := s.get(testKeyOf("r1", fmt.Sprintf("id-%d", i))); ok {
			present++
		}
	}
	ensure.True(t, present <= 3)
	ensure.True(t, present > 0)
}

func TestStoreEvictionPrefersCold(t *testing.T) {
	clock := &fakeClock{}

	value := make([]byte, 100)
	entrySize := weigh(testKeyOf("r1", "id-0"), value)
	s := newWeightedStore(3*entrySize, clock.nanos, nil)

	for i := 0; i < 3; i++ {
		s.put(testKeyOf("r1", fmt.Sprintf("id-%d", i)), value, false, expireNever)
	}

	// touch id-0 so id-1 is the coldest untouched entry
	_, _, ok := s.get(testKeyOf("r1", "id-0"))
	ensure.True(t, ok)

	s.put(testKeyOf("r1", "id-3"), value, false, expireNever)

	_, _, ok = s.get(testKeyOf("r1", "id-0"))
	ensure.True(t, ok)
	_, _, ok = s.get(testKeyOf("r1", "id-1"))
	ensure.False(t, ok)
}

func TestStoreEvictionDropsExpiredFirst(t *testing.T) {
	clock := &fakeClock{}

	value := make([]byte, 100)
	entrySize := weigh(testKeyOf("r1", "id-0"), value)
	s := newWeightedStore(3*entrySize, clock.nanos, nil)

	s.put(testKeyOf("r1", "id-0"), value, false, clock.nanos()+int64(time.Second))
	s.put(testKeyOf("r1", "id-1"), value, false, expireNever)
	s.put(testKeyOf("r1", "id-2"), value, false, expireNever)

	clock.advance(2 * time.Second)
	s.put(testKeyOf("r1", "id-3"), value, false, expireNever)

	// the expired entry went first, the live ones survived
	_, _, ok := s.get(testKeyOf("r1", "id-1"))
	ensure.True(t, ok)
	_, _, ok = s.get(testKeyOf("r1", "id-2"))
	ensure.True(t, ok)
	_, _, ok = s.get(testKeyOf("r1", "id-3"))
	ensure.True(t, ok)
}

func TestStoreRemove(t *testing.T) {
	clock := &fakeClock{}
	s := newWeightedStore(1024*1024, clock.nanos, nil)

	k := testKeyOf("r1", "a")
	s.put(k, []byte("v"), false, expireNever)
	s.remove(k)

	_, _, ok := s.get(k)
	ensure.False(t, ok)
	ensure.DeepEqual(t, s.currentWeight(), int64(0))
}

func TestStoreRemoveIf(t *testing.T) {
	clock := &fakeClock{}
	s := newWeightedStore(1024*1024, clock.nanos, nil)

	s.put(testKeyOf("r1", "a"), []byte("v"), false, expireNever)
	s.put(testKeyOf("r1", "b"), []byte("v"), false, expireNever)
	s.put(testKeyOf("r2", "a"), []byte("v"), false, expireNever)

	s.removeIf(func(k cacheKey) bool {
		return k.repositoryID == "r1"
	})

	_, _, ok := s.get(testKeyOf("r1", "a"))
	ensure.False(t, ok)
	_, _, ok = s.get(testKeyOf("r1", "b"))
	ensure.False(t, ok)
	_, _, ok = s.get(testKeyOf("r2", "a"))
	ensure.True(t, ok)
}

func TestStoreWeightAccounting(t *testing.T) {
	clock := &fakeClock{}
	s := newWeightedStore(1024*1024, clock.nanos, nil)

	k1 := testKeyOf("r1", "a")
	k2 := testKeyOf("r1", "bb")
	s.put(k1, []byte("v1"), false, expireNever)
	s.put(k2, nil, true, expireNever)

	expect := weigh(k1, []byte("v1")) + weigh(k2, nil)
	ensure.DeepEqual(t, s.currentWeight(), expect)

	s.remove(k1)
	s.remove(k2)
	ensure.DeepEqual(t, s.currentWeight(), int64(0))
}
