// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package types

import (
	"testing"

	"github.com/facebookgo/ensure"
)

func TestKindRegistry(t *testing.T) {
	ensure.True(t, KindByName("data") == DataObjType)
	ensure.True(t, KindByName("commit") == CommitObjType)
	ensure.True(t, KindByName("session") == SessionObjType)
	ensure.True(t, KindByName("nope") == nil)
}

func TestDataObjRoundTrip(t *testing.T) {
	obj := NewDataObj([]byte("blob"))

	payload, err := obj.Marshal()
	ensure.Nil(t, err)

	decoded, err := DataObjType.DecodeObj(obj.ID(), 0, payload)
	ensure.Nil(t, err)
	ensure.DeepEqual(t, decoded.(*DataObj).Payload, obj.Payload)
	ensure.True(t, decoded.ID().Equal(obj.ID()))
}

func TestCommitObjRoundTrip(t *testing.T) {
	parent := NewObjId([]byte("parent"))
	obj := NewCommitObj(parent, "message", 1234)

	payload, err := obj.Marshal()
	ensure.Nil(t, err)

	decoded, err := CommitObjType.DecodeObj(obj.ID(), 0, payload)
	ensure.Nil(t, err)
	commit := decoded.(*CommitObj)
	ensure.True(t, commit.Parent.Equal(parent))
	ensure.DeepEqual(t, commit.Message, "message")
	ensure.DeepEqual(t, commit.CreatedMicros, int64(1234))
}

func TestWithReferenced(t *testing.T) {
	obj := NewDataObj([]byte("x"))
	stamped := obj.WithReferenced(99)
	ensure.DeepEqual(t, stamped.Referenced(), int64(99))
	ensure.DeepEqual(t, obj.Referenced(), int64(0))
	ensure.True(t, stamped.ID().Equal(obj.ID()))
}

func TestImmutableKindPolicies(t *testing.T) {
	now := func() int64 { return 1000 }

	obj := NewDataObj([]byte("x"))
	ensure.DeepEqual(t, DataObjType.CachedObjExpiresAtMicros(obj, now), CacheUnlimited)
	ensure.True(t, DataObjType.NegativeCacheExpiresAtMicros(now) > 1000)

	commit := NewCommitObj(nil, "m", 1)
	ensure.DeepEqual(t, CommitObjType.CachedObjExpiresAtMicros(commit, now), CacheUnlimited)
}

func TestSessionKindPolicy(t *testing.T) {
	now := func() int64 { return 1000 }

	leased := NewSessionObj([]byte("s"), 5000)
	ensure.DeepEqual(t, SessionObjType.CachedObjExpiresAtMicros(leased, now), int64(5000))

	unleased := NewSessionObj([]byte("s"), 0)
	ensure.DeepEqual(t, SessionObjType.CachedObjExpiresAtMicros(unleased, now), NotCached)

	ensure.DeepEqual(t, SessionObjType.NegativeCacheExpiresAtMicros(now), int64(1000+5*1000*1000))
}
