// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package types

import (
	"testing"

	"github.com/facebookgo/ensure"
)

func TestNewObjId(t *testing.T) {
	id := NewObjId([]byte("some payload"))
	ensure.DeepEqual(t, len(id), ObjIdSize)

	same := NewObjId([]byte("some payload"))
	ensure.True(t, id.Equal(same))

	other := NewObjId([]byte("other payload"))
	ensure.False(t, id.Equal(other))
}

func TestObjIdHexRoundTrip(t *testing.T) {
	id := NewObjId([]byte("x"))
	decoded, err := ObjIdFromHex(id.Hex())
	ensure.Nil(t, err)
	ensure.True(t, id.Equal(decoded))

	_, err = ObjIdFromHex("zz")
	ensure.NotNil(t, err)
}

func TestObjIdZero(t *testing.T) {
	ensure.True(t, ZeroLengthObjId.IsZero())
	ensure.False(t, NewObjId([]byte("x")).IsZero())
}

func TestObjIdHeapSize(t *testing.T) {
	short := ObjIdFromBytes([]byte("ab"))
	long := NewObjId([]byte("x"))
	ensure.True(t, long.HeapSize() > short.HeapSize())
	ensure.DeepEqual(t, long.HeapSize()-short.HeapSize(), ObjIdSize-2)
}
