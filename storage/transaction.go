// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package storage

// Transaction defines a transaction on database/table. Writes are buffered
// until Commit, reads observe the state the transaction started from.
type Transaction interface {
	Operations

	// atomic writes all buffered put/delete
	Commit() error

	// discard the transaction, it must be called to close the transaction
	Discard()
}
