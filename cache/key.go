// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cache

import (
	"fmt"

	"github.com/BOXFoundation/repod/core/types"
)

// cacheKey identifies one cached entry. Equality and hashing use only
// (repositoryID, id) so an update replaces the older entry no matter what
// expiration either one carries.
type cacheKey struct {
	repositoryID string
	id           string
}

func cacheKeyOf(repositoryID string, id types.ObjId) cacheKey {
	return cacheKey{
		repositoryID: repositoryID,
		id:           string(id),
	}
}

func (k cacheKey) objID() types.ObjId {
	return types.ObjId(k.id)
}

func (k cacheKey) String() string {
	return fmt.Sprintf("{%s, %s}", k.repositoryID, k.objID().Hex())
}

// Weigher constants. These approximate per entry heap cost (headers, map
// cell, list links); tuning values, not correctness values.
const (
	// stringOverhead is the heap cost of one string header plus allocation.
	stringOverhead = 32

	// arrayOverhead is the heap cost of one byte slice header plus allocation.
	arrayOverhead = 40

	// entryOverhead covers the entry struct, its map cell and list links.
	entryOverhead = 128
)

// heapSize is the approximate heap cost of the key.
func (k cacheKey) heapSize() int {
	size := stringOverhead + len(k.repositoryID)
	size += k.objID().HeapSize()
	return size
}

// weigh computes the byte cost of one entry. A nil value is the negative
// marker, it only costs its key and the entry overhead.
func weigh(k cacheKey, value []byte) int64 {
	size := k.heapSize()
	if value != nil {
		size += arrayOverhead + len(value)
	}
	size += entryOverhead
	return int64(size)
}
