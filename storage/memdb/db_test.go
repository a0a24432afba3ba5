// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package memdb

import (
	"testing"

	dbtest "github.com/BOXFoundation/repod/storage/dbtest"
	"github.com/facebookgo/ensure"
)

func TestDBPutGetDel(t *testing.T) {
	var db, err = NewMemoryDB("", nil)
	ensure.Nil(t, err)
	defer db.Close()

	dbtest.StoragePutGetDel(t, db)
}

func TestDBBatch(t *testing.T) {
	var db, err = NewMemoryDB("", nil)
	ensure.Nil(t, err)
	defer db.Close()

	dbtest.StorageBatch(t, db)
}

func TestDBKeys(t *testing.T) {
	var db, err = NewMemoryDB("", nil)
	ensure.Nil(t, err)
	defer db.Close()

	dbtest.StorageKeys(t, db)
}

func TestDBTransaction(t *testing.T) {
	var db, err = NewMemoryDB("", nil)
	ensure.Nil(t, err)
	defer db.Close()

	dbtest.StorageTransOps(t, db)
}
