// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dbtest

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	storage "github.com/BOXFoundation/repod/storage"
	"github.com/facebookgo/ensure"
)

// StoragePutGetDel is a dbtest helper method
func StoragePutGetDel(t *testing.T, s storage.Table) {
	var k = []byte("kkk")
	var v = []byte("vvvvvvvvv")

	ensure.Nil(t, s.Put(k, v))

	value, err := s.Get(k)
	ensure.Nil(t, err)
	ensure.DeepEqual(t, value, v)

	exists, err := s.Has(k)
	ensure.Nil(t, err)
	ensure.True(t, exists)

	ensure.Nil(t, s.Del(k))

	value, err = s.Get(k)
	ensure.Nil(t, err)
	ensure.True(t, value == nil)

	exists, err = s.Has(k)
	ensure.Nil(t, err)
	ensure.False(t, exists)
}

// StorageMultiGet is a dbtest helper method
func StorageMultiGet(t *testing.T, s storage.Table) {
	var keys [][]byte
	var values [][]byte
	for i := 0; i < 10; i++ {
		k := []byte(fmt.Sprintf("k-%d", i))
		v := []byte(fmt.Sprintf("v-%d", i))
		keys = append(keys, k)
		values = append(values, v)
		ensure.Nil(t, s.Put(k, v))
	}

	query := [][]byte{keys[3], []byte("absent"), keys[7]}
	out, err := s.MultiGet(query...)
	ensure.Nil(t, err)
	ensure.DeepEqual(t, len(out), 3)
	ensure.DeepEqual(t, out[0], values[3])
	ensure.True(t, out[1] == nil)
	ensure.DeepEqual(t, out[2], values[7])
}

// StorageBatch is a dbtest helper method
func StorageBatch(t *testing.T, s storage.Table) {
	var batch = s.NewBatch()
	defer batch.Close()

	var kvs = map[string][]byte{}
	for i := 0; i < 100; i++ {
		k := fmt.Sprintf("bk-%d", i)
		v := []byte(fmt.Sprintf("bv-%d", i))
		batch.Put([]byte(k), v)
		kvs[k] = v
	}
	batch.Del([]byte("bk-0"))
	delete(kvs, "bk-0")

	ensure.DeepEqual(t, batch.Count(), 101)
	ensure.Nil(t, batch.Write())

	for k, v := range kvs {
		value, err := s.Get([]byte(k))
		ensure.Nil(t, err)
		ensure.DeepEqual(t, value, v)
	}

	value, err := s.Get([]byte("bk-0"))
	ensure.Nil(t, err)
	ensure.True(t, value == nil)
}

// StorageKeys is a dbtest helper method
func StorageKeys(t *testing.T, s storage.Table) {
	var keys = map[string]struct{}{}
	for i := 0; i < 32; i++ {
		k := fmt.Sprintf("key-%d", i)
		ensure.Nil(t, s.Put([]byte(k), []byte{0x00}))
		keys[k] = struct{}{}
	}

	var got = s.Keys()
	ensure.DeepEqual(t, len(got), len(keys))
	for _, k := range got {
		_, ok := keys[string(k)]
		ensure.True(t, ok)
	}
}

// StoragePrefixKeys is a dbtest helper method
func StoragePrefixKeys(t *testing.T, s storage.Table, count int) {
	var prefix = []byte("/p/")
	var keys = map[string]struct{}{}
	for i := 0; i < count; i++ {
		k := []byte(fmt.Sprintf("/p/key-%d", i))
		if rand.Intn(2) == 0 {
			k = []byte(fmt.Sprintf("/q/key-%d", i))
		}
		ensure.Nil(t, s.Put(k, []byte{0x00}))
		if string(k[:3]) == string(prefix) {
			keys[string(k)] = struct{}{}
		}
	}

	var got = s.KeysWithPrefix(prefix)
	ensure.DeepEqual(t, len(got), len(keys))
	for _, k := range got {
		_, ok := keys[string(k)]
		ensure.True(t, ok)
	}
}

// StorageIterKeysWithPrefix is a dbtest helper method
func StorageIterKeysWithPrefix(t *testing.T, s storage.Table) {
	var keys = map[string]struct{}{}
	for i := 0; i < 16; i++ {
		k := fmt.Sprintf("/iter/key-%d", i)
		ensure.Nil(t, s.Put([]byte(k), []byte{0x00}))
		keys[k] = struct{}{}
	}

	var n int
	for k := range s.IterKeysWithPrefix(context.Background(), []byte("/iter/")) {
		_, ok := keys[string(k)]
		ensure.True(t, ok)
		n++
	}
	ensure.DeepEqual(t, n, len(keys))
}

// StorageTransOps is a dbtest helper method
func StorageTransOps(t *testing.T, s storage.Table) {
	tx, err := s.NewTransaction()
	ensure.Nil(t, err)
	ensure.NotNil(t, tx)

	ensure.Nil(t, tx.Put([]byte("tk1"), []byte("tv1")))
	ensure.Nil(t, tx.Put([]byte("tk2"), []byte("tv2")))
	ensure.Nil(t, tx.Commit())

	v, err := s.Get([]byte("tk1"))
	ensure.Nil(t, err)
	ensure.DeepEqual(t, v, []byte("tv1"))

	// a discarded transaction must not write
	tx2, err := s.NewTransaction()
	ensure.Nil(t, err)
	ensure.Nil(t, tx2.Put([]byte("tk3"), []byte("tv3")))
	tx2.Discard()

	v, err = s.Get([]byte("tk3"))
	ensure.Nil(t, err)
	ensure.True(t, v == nil)
}

// StorageTransClosed is a dbtest helper method
func StorageTransClosed(t *testing.T, s storage.Table) {
	tx, err := s.NewTransaction()
	ensure.Nil(t, err)
	ensure.NotNil(t, tx)
	tx.Discard()

	ensure.DeepEqual(t, tx.Put([]byte{0x00}, []byte{0x00}), storage.ErrTransactionClosed)
	_, err = tx.Get([]byte{0x00})
	ensure.DeepEqual(t, err, storage.ErrTransactionClosed)
	_, err = tx.Has([]byte{0x00})
	ensure.DeepEqual(t, err, storage.ErrTransactionClosed)
}
