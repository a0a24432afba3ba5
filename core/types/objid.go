// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package types

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
)

const (
	// ObjIdSize is the length of a content hash id
	ObjIdSize = 32

	// objIdOverhead approximates the heap bookkeeping bytes of one ObjId
	// (slice header plus allocation header).
	objIdOverhead = 40
)

// ObjId is the identity of a content addressed object. A content hash id has
// fixed ObjIdSize length; derived ids (see the cache reference keyspace) may
// have any length.
type ObjId []byte

// NewObjId hashes the serialized payload into a content hash id.
func NewObjId(data []byte) ObjId {
	digest := sha256.Sum256(data)
	return ObjId(digest[:])
}

// ObjIdFromBytes constructs an id from a raw byte slice.
func ObjIdFromBytes(b []byte) ObjId {
	id := make(ObjId, len(b))
	copy(id, b)
	return id
}

// ObjIdFromHex decodes an id from its hex form.
func ObjIdFromHex(s string) (ObjId, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, err
	}
	return ObjId(b), nil
}

// ZeroLengthObjId is the empty id used by sentinel values.
var ZeroLengthObjId = ObjId{}

// Hex returns the hex encoded id.
func (id ObjId) Hex() string {
	return hex.EncodeToString(id)
}

func (id ObjId) String() string {
	return id.Hex()
}

// Equal checks equality of two ids by byte content.
func (id ObjId) Equal(other ObjId) bool {
	return bytes.Equal(id, other)
}

// IsZero tells whether the id is empty.
func (id ObjId) IsZero() bool {
	return len(id) == 0
}

// HeapSize is the approximate heap cost of the id, used by the cache weigher.
func (id ObjId) HeapSize() int {
	return objIdOverhead + len(id)
}
