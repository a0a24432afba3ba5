// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cache

import (
	"math"
	"sync"
	"sync/atomic"
)

// expireNever marks entries that only leave the store via eviction or
// replacement.
const expireNever = int64(math.MaxInt64)

const (
	inactive int32 = iota
	active
)

// entry is both the hash table value and a node of the recency list.
// value nil together with negative marks a "not found" entry; equality of
// entries is by the negative tag, never by byte content.
type entry struct {
	key      cacheKey
	value    []byte
	negative bool

	// expiresAt is absolute nanos, expireNever for unlimited life.
	expiresAt int64

	// active has concurrent atomic access with read lock acquired, or
	// exclusive access with write lock acquired.
	active int32

	prev, next *entry
}

func (e *entry) expired(now int64) bool {
	return e.expiresAt != expireNever && now >= e.expiresAt
}

func (e *entry) setActive()     { atomic.StoreInt32(&e.active, active) }
func (e *entry) isActive() bool { return atomic.LoadInt32(&e.active) == active }

// weightedStore is a byte bounded associative store with per entry absolute
// expiry. Eviction approximates LRU with one round of second chance for
// entries touched since they were last considered. Reads take the shared
// lock only; recency is recorded with an atomic touch bit the way hot items
// survive a shrink without write locking every lookup.
type weightedStore struct {
	mu       sync.RWMutex
	capacity int64
	weight   int64
	clock    func() int64
	table    map[cacheKey]*entry
	stats    *cacheStats

	// Fake nodes. Real nodes are between them; fakeHead.next is the
	// coldest entry, all new entries attach before fakeTail.
	fakeHead *entry
	fakeTail *entry
}

func newWeightedStore(capacity int64, clock func() int64, stats *cacheStats) *weightedStore {
	s := &weightedStore{
		capacity: capacity,
		clock:    clock,
		table:    make(map[cacheKey]*entry),
		stats:    stats,
		fakeHead: &entry{},
		fakeTail: &entry{},
	}
	link(s.fakeHead, s.fakeTail)
	return s
}

func link(a, b *entry) { a.next, b.prev = b, a }

// get returns the stored value and its negative tag. Reading does not extend
// the remaining life of the entry.
func (s *weightedStore) get(k cacheKey) (value []byte, negative bool, ok bool) {
	s.mu.RLock()
	e, ok := s.table[k]
	if !ok || e.expired(s.clock()) {
		s.mu.RUnlock()
		s.stats.miss()
		return nil, false, false
	}
	e.setActive()
	value, negative = e.value, e.negative
	s.mu.RUnlock()
	s.stats.hit()
	return value, negative, true
}

// put inserts or replaces the entry for k. expiresAt is absolute nanos,
// expireNever for unlimited life; an expiresAt at or before now drops the
// entry instead.
func (s *weightedStore) put(k cacheKey, value []byte, negative bool, expiresAt int64) {
	now := s.clock()

	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.table[k]; ok {
		s.unlink(old)
	}
	if expiresAt != expireNever && expiresAt <= now {
		return
	}

	e := &entry{
		key:       k,
		value:     value,
		negative:  negative,
		expiresAt: expiresAt,
	}
	s.table[k] = e
	link(s.fakeTail.prev, e)
	link(e, s.fakeTail)
	s.weight += weigh(k, value)
	s.stats.load()

	if s.weight > s.capacity {
		s.shrink(now)
	}
}

// remove drops the entry for k if present.
func (s *weightedStore) remove(k cacheKey) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.table[k]; ok {
		s.unlink(e)
	}
}

// removeIf drops every entry whose key matches pred.
func (s *weightedStore) removeIf(pred func(cacheKey) bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for k, e := range s.table {
		if pred(k) {
			s.unlink(e)
		}
	}
}

// shrink walks from the cold end until the weight fits again. Expired
// entries met on the walk are dropped without counting as evictions; entries
// touched since the last consideration get one more round at the hot end.
// An expired entry further from the cold end is not preferred over a cold
// live one.
func (s *weightedStore) shrink(now int64) {
	for s.weight > s.capacity {
		e := s.fakeHead.next
		if e == s.fakeTail {
			return
		}
		if e.expired(now) {
			s.unlink(e)
			continue
		}
		if e.isActive() {
			e.active = inactive
			e.prev.next = e.next
			e.next.prev = e.prev
			link(s.fakeTail.prev, e)
			link(e, s.fakeTail)
			continue
		}
		s.unlink(e)
		s.stats.evict()
	}
}

// unlink detaches the entry and forgets it, the write lock must be held.
func (s *weightedStore) unlink(e *entry) {
	e.prev.next = e.next
	e.next.prev = e.prev
	delete(s.table, e.key)
	s.weight -= weigh(e.key, e.value)
}

// entries returns the number of live entries.
func (s *weightedStore) entries() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.table)
}

// currentWeight returns the summed weigher cost of all live entries.
func (s *weightedStore) currentWeight() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.weight
}
