// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package memdb

import (
	"bytes"
	"context"

	storage "github.com/BOXFoundation/repod/storage"
)

type mtable struct {
	*memorydb

	prefix string
}

var _ storage.Table = (*mtable)(nil)

// create a new write batch
func (t *mtable) NewBatch() storage.Batch {
	return &mbatch{
		memorydb: t.memorydb,
		prefix:   t.prefix,
	}
}

// create a new transaction
func (t *mtable) NewTransaction() (storage.Transaction, error) {
	return newTransaction(t.memorydb, t.prefix)
}

func (t *mtable) realkey(key []byte) []byte {
	var k = make([]byte, len(t.prefix)+len(key))
	copy(k, []byte(t.prefix))
	copy(k[len(t.prefix):], key)

	return k
}

// put the value to entry associate with the key
func (t *mtable) Put(key, value []byte) error {
	return t.memorydb.Put(t.realkey(key), value)
}

// delete the entry associate with the key in the Storage
func (t *mtable) Del(key []byte) error {
	return t.memorydb.Del(t.realkey(key))
}

// return value associate with the key in the Storage
func (t *mtable) Get(key []byte) ([]byte, error) {
	return t.memorydb.Get(t.realkey(key))
}

// return values associate with the keys in the Storage
func (t *mtable) MultiGet(key ...[]byte) ([][]byte, error) {
	realkeys := make([][]byte, len(key))
	for i, k := range key {
		realkeys[i] = t.realkey(k)
	}
	return t.memorydb.MultiGet(realkeys...)
}

// check if the entry associate with key exists
func (t *mtable) Has(key []byte) (bool, error) {
	return t.memorydb.Has(t.realkey(key))
}

// return a set of keys in the Storage
func (t *mtable) Keys() [][]byte {
	t.sm.RLock()
	defer t.sm.RUnlock()

	var keys [][]byte
	for key := range t.db {
		if bytes.HasPrefix([]byte(key), []byte(t.prefix)) {
			keys = append(keys, []byte(key)[len(t.prefix):])
		}
	}

	return keys
}

// return a set of keys with specified prefix in the Storage
func (t *mtable) KeysWithPrefix(prefix []byte) [][]byte {
	keys := t.memorydb.KeysWithPrefix(t.realkey(prefix))

	var out [][]byte
	for _, k := range keys {
		out = append(out, k[len(t.prefix):])
	}
	return out
}

// return a chan to iter all keys with specified prefix
func (t *mtable) IterKeysWithPrefix(ctx context.Context, prefix []byte) <-chan []byte {
	keys := t.KeysWithPrefix(prefix)

	out := make(chan []byte)
	go func() {
		defer close(out)

		for _, k := range keys {
			select {
			case out <- k:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}
