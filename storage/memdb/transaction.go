// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package memdb

import (
	"context"
	"sync"

	storage "github.com/BOXFoundation/repod/storage"
)

// mtx buffers writes in a batch and holds the db write lock until Commit or
// Discard, so concurrent writers wait for the transaction outcome.
type mtx struct {
	txsm      sync.Mutex
	db        storage.Operations
	batch     *mbatch
	closed    bool
	writeLock chan struct{}
}

var _ storage.Transaction = (*mtx)(nil)

func newTransaction(db *memorydb, prefix string) (storage.Transaction, error) {
	// acquire the write lock until the transaction is closed
	db.writeLock <- struct{}{}

	var reader storage.Operations = db
	if prefix != "" {
		reader = &mtable{memorydb: db, prefix: prefix}
	}
	return &mtx{
		db:        reader,
		batch:     &mbatch{memorydb: db, prefix: prefix},
		writeLock: db.writeLock,
	}, nil
}

// put the value to entry associate with the key
func (tx *mtx) Put(key, value []byte) error {
	tx.txsm.Lock()
	defer tx.txsm.Unlock()

	if tx.closed {
		return storage.ErrTransactionClosed
	}

	tx.batch.Put(key, value)
	return nil
}

// delete the entry associate with the key in the Storage
func (tx *mtx) Del(key []byte) error {
	tx.txsm.Lock()
	defer tx.txsm.Unlock()

	if tx.closed {
		return storage.ErrTransactionClosed
	}

	tx.batch.Del(key)
	return nil
}

// return value associate with the key in the Storage
func (tx *mtx) Get(key []byte) ([]byte, error) {
	tx.txsm.Lock()
	defer tx.txsm.Unlock()

	if tx.closed {
		return nil, storage.ErrTransactionClosed
	}

	return tx.db.Get(key)
}

// return values associate with the keys in the Storage
func (tx *mtx) MultiGet(key ...[]byte) ([][]byte, error) {
	tx.txsm.Lock()
	defer tx.txsm.Unlock()

	if tx.closed {
		return nil, storage.ErrTransactionClosed
	}

	return tx.db.MultiGet(key...)
}

// check if the entry associate with key exists
func (tx *mtx) Has(key []byte) (bool, error) {
	tx.txsm.Lock()
	defer tx.txsm.Unlock()

	if tx.closed {
		return false, storage.ErrTransactionClosed
	}

	return tx.db.Has(key)
}

// return a set of keys in the Storage
func (tx *mtx) Keys() [][]byte {
	tx.txsm.Lock()
	defer tx.txsm.Unlock()

	if tx.closed {
		return nil
	}

	return tx.db.Keys()
}

// return a set of keys with specified prefix in the Storage
func (tx *mtx) KeysWithPrefix(prefix []byte) [][]byte {
	tx.txsm.Lock()
	defer tx.txsm.Unlock()

	if tx.closed {
		return nil
	}

	return tx.db.KeysWithPrefix(prefix)
}

// return a chan to iter all keys with specified prefix
func (tx *mtx) IterKeysWithPrefix(ctx context.Context, prefix []byte) <-chan []byte {
	tx.txsm.Lock()
	defer tx.txsm.Unlock()

	if tx.closed {
		out := make(chan []byte)
		close(out)
		return out
	}

	return tx.db.IterKeysWithPrefix(ctx, prefix)
}

// atomic writes all buffered put/delete
func (tx *mtx) Commit() error {
	tx.txsm.Lock()
	defer tx.txsm.Unlock()

	if tx.closed {
		return storage.ErrTransactionClosed
	}

	tx.batch.sm.Lock()
	err := tx.batch.write()
	tx.batch.sm.Unlock()

	tx.closed = true
	<-tx.writeLock
	return err
}

// Discard discards the transaction, it must be called to close the transaction
func (tx *mtx) Discard() {
	tx.txsm.Lock()
	defer tx.txsm.Unlock()

	if tx.closed {
		return
	}

	tx.closed = true
	<-tx.writeLock
}
