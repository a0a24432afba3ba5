// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package types

import (
	"testing"

	"github.com/facebookgo/ensure"
)

func TestReferenceMarshalRoundTrip(t *testing.T) {
	ref := NewReference("main", NewObjId([]byte("head")), false, 7, []byte{0x01, 0x02})

	data, err := ref.Marshal()
	ensure.Nil(t, err)

	got := new(Reference)
	ensure.Nil(t, got.Unmarshal(data))
	ensure.True(t, got.Equal(ref))
	ensure.DeepEqual(t, got.ExtendedInfo, ref.ExtendedInfo)
}

func TestReferenceWithPointer(t *testing.T) {
	ref := NewReference("main", NewObjId([]byte("a")), false, 1, nil)
	next := NewObjId([]byte("b"))

	updated := ref.WithPointer(next)
	ensure.True(t, updated.Pointer.Equal(next))
	ensure.DeepEqual(t, updated.Generation, int64(2))
	// the original is untouched
	ensure.DeepEqual(t, ref.Generation, int64(1))
}

func TestReferenceWithDeleted(t *testing.T) {
	ref := NewReference("main", NewObjId([]byte("a")), false, 1, nil)
	gone := ref.WithDeleted()
	ensure.True(t, gone.Deleted)
	ensure.DeepEqual(t, gone.Generation, int64(2))
	ensure.False(t, ref.Deleted)
}

func TestReferenceEqual(t *testing.T) {
	a := NewReference("main", NewObjId([]byte("a")), false, 1, nil)
	b := NewReference("main", NewObjId([]byte("a")), false, 1, []byte("extra"))
	ensure.True(t, a.Equal(b))

	c := NewReference("main", NewObjId([]byte("a")), false, 2, nil)
	ensure.False(t, a.Equal(c))
	ensure.False(t, a.Equal(nil))
}
