// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cache

import (
	"testing"
	"time"

	"github.com/BOXFoundation/repod/core"
	"github.com/BOXFoundation/repod/core/types"
	"github.com/BOXFoundation/repod/persist"
	"github.com/BOXFoundation/repod/persist/kv"
	"github.com/BOXFoundation/repod/storage/memdb"
	"github.com/facebookgo/ensure"
)

func newWrapped(t *testing.T, clock *fakeClock) (persist.Persist, persist.Persist, CacheBackend) {
	db, err := memdb.NewMemoryDB("", nil)
	ensure.Nil(t, err)

	p, err := kv.NewPersist(db, &persist.Config{RepositoryID: "r1"})
	ensure.Nil(t, err)

	b := newTestBackend(clock, withRefTTL(time.Minute, time.Minute))
	return b.Wrap(p), p, b
}

func TestAdapterReadThrough(t *testing.T) {
	clock := &fakeClock{}
	wrapped, p, b := newWrapped(t, clock)

	obj := types.NewDataObj([]byte("payload"))
	ensure.Nil(t, p.WriteObj(obj))

	got, err := wrapped.GetObj(obj.ID())
	ensure.Nil(t, err)
	ensure.DeepEqual(t, got.(*types.DataObj).Payload, obj.Payload)

	// the read populated the cache
	cached := b.Get("r1", obj.ID())
	ensure.NotNil(t, cached)

	// served from the cache even when the store loses the row
	ensure.Nil(t, p.DeleteObj(obj.ID()))
	got, err = wrapped.GetObj(obj.ID())
	ensure.Nil(t, err)
	ensure.DeepEqual(t, got.(*types.DataObj).Payload, obj.Payload)
}

func TestAdapterNegativeCoherence(t *testing.T) {
	clock := &fakeClock{}
	wrapped, _, b := newWrapped(t, clock)

	id := types.NewObjId([]byte("absent"))
	_, err := wrapped.GetObj(id)
	ensure.DeepEqual(t, err, core.ErrObjNotFound)

	// the miss was recorded as a negative entry
	ensure.True(t, b.Get("r1", id) == NotFoundObjSentinel)

	// and the negative entry answers the next read
	_, err = wrapped.GetObj(id)
	ensure.DeepEqual(t, err, core.ErrObjNotFound)
}

func TestAdapterWriteThrough(t *testing.T) {
	clock := &fakeClock{}
	wrapped, p, b := newWrapped(t, clock)

	obj := types.NewDataObj([]byte("written"))

	// a write makes earlier negative knowledge stale
	_, err := wrapped.GetObj(obj.ID())
	ensure.DeepEqual(t, err, core.ErrObjNotFound)

	ensure.Nil(t, wrapped.WriteObj(obj))

	got, err := wrapped.GetObj(obj.ID())
	ensure.Nil(t, err)
	ensure.DeepEqual(t, got.(*types.DataObj).Payload, obj.Payload)

	// underlying store and cache agree
	ensure.NotNil(t, b.Get("r1", obj.ID()))
	stored, err := p.GetObj(obj.ID())
	ensure.Nil(t, err)
	ensure.True(t, stored.ID().Equal(obj.ID()))
}

func TestAdapterDelete(t *testing.T) {
	clock := &fakeClock{}
	wrapped, _, b := newWrapped(t, clock)

	obj := types.NewDataObj([]byte("doomed"))
	ensure.Nil(t, wrapped.WriteObj(obj))
	ensure.NotNil(t, b.Get("r1", obj.ID()))

	ensure.Nil(t, wrapped.DeleteObj(obj.ID()))
	ensure.True(t, b.Get("r1", obj.ID()) == nil)

	_, err := wrapped.GetObj(obj.ID())
	ensure.DeepEqual(t, err, core.ErrObjNotFound)
}

func TestAdapterTypedRead(t *testing.T) {
	clock := &fakeClock{}
	wrapped, p, _ := newWrapped(t, clock)

	obj := types.NewCommitObj(nil, "first", 42)
	ensure.Nil(t, p.WriteObj(obj))

	got, err := wrapped.GetTypedObj(obj.ID(), types.CommitObjType)
	ensure.Nil(t, err)
	ensure.DeepEqual(t, got.(*types.CommitObj).Message, "first")

	// a cached object of another kind reads as not found
	_, err = wrapped.GetTypedObj(obj.ID(), types.DataObjType)
	ensure.DeepEqual(t, err, core.ErrObjNotFound)
}

func TestAdapterBatchRead(t *testing.T) {
	clock := &fakeClock{}
	wrapped, p, _ := newWrapped(t, clock)

	a := types.NewDataObj([]byte("batch-a"))
	b2 := types.NewDataObj([]byte("batch-b"))
	ensure.Nil(t, p.WriteObj(a))
	ensure.Nil(t, p.WriteObj(b2))

	// warm one of the two
	_, err := wrapped.GetObj(a.ID())
	ensure.Nil(t, err)

	absent := types.NewObjId([]byte("batch-absent"))
	objs, err := wrapped.GetObjs([]types.ObjId{a.ID(), absent, b2.ID()})
	ensure.Nil(t, err)
	ensure.DeepEqual(t, len(objs), 3)
	ensure.True(t, objs[0].ID().Equal(a.ID()))
	ensure.True(t, objs[1] == nil)
	ensure.True(t, objs[2].ID().Equal(b2.ID()))

	// the batch populated the cache, a second round trips over it entirely
	objs, err = wrapped.GetObjs([]types.ObjId{a.ID(), absent, b2.ID()})
	ensure.Nil(t, err)
	ensure.True(t, objs[0] != nil)
	ensure.True(t, objs[1] == nil)
	ensure.True(t, objs[2] != nil)
}

func TestAdapterReferenceReadThrough(t *testing.T) {
	clock := &fakeClock{}
	wrapped, p, _ := newWrapped(t, clock)

	head := types.NewDataObj([]byte("ref-head"))
	ref := types.NewReference("main", head.ID(), false, 1, nil)
	_, err := p.AddReference(ref)
	ensure.Nil(t, err)

	got, err := wrapped.FindReference("main")
	ensure.Nil(t, err)
	ensure.True(t, got.Equal(ref))

	// served from the cache even when the store loses the row
	stale, _ := p.FindReference("main")
	ensure.Nil(t, p.DeleteReference(stale))
	got, err = wrapped.FindReference("main")
	ensure.Nil(t, err)
	ensure.True(t, got.Equal(ref))
}

func TestAdapterReferenceNegative(t *testing.T) {
	clock := &fakeClock{}
	wrapped, _, b := newWrapped(t, clock)

	_, err := wrapped.FindReference("ghost")
	ensure.DeepEqual(t, err, core.ErrRefNotFound)

	ensure.True(t, b.GetReference("r1", "ghost") == NonExistentReferenceSentinel)

	_, err = wrapped.FindReference("ghost")
	ensure.DeepEqual(t, err, core.ErrRefNotFound)
}

func TestAdapterReferenceWrite(t *testing.T) {
	clock := &fakeClock{}
	wrapped, _, b := newWrapped(t, clock)

	head := types.NewDataObj([]byte("w-head"))
	added, err := wrapped.AddReference(types.NewReference("dev", head.ID(), false, 1, nil))
	ensure.Nil(t, err)

	// the write refreshed the cache
	ensure.True(t, b.GetReference("r1", "dev").Equal(added))

	next := types.NewDataObj([]byte("w-next"))
	updated, err := wrapped.UpdateReference(added, next.ID())
	ensure.Nil(t, err)
	ensure.True(t, b.GetReference("r1", "dev").Equal(updated))

	ensure.Nil(t, wrapped.DeleteReference(updated))
	ensure.True(t, b.GetReference("r1", "dev") == nil)

	_, err = wrapped.FindReference("dev")
	ensure.DeepEqual(t, err, core.ErrRefNotFound)
}

func TestAdapterErase(t *testing.T) {
	clock := &fakeClock{}
	wrapped, _, b := newWrapped(t, clock)

	obj := types.NewDataObj([]byte("erase-me"))
	ensure.Nil(t, wrapped.WriteObj(obj))
	ensure.NotNil(t, b.Get("r1", obj.ID()))

	// another repository's entry survives the erase
	other := newObj(unlimitedKind, "other-repo-obj")
	b.PutLocal("r2", other)

	ensure.Nil(t, wrapped.Erase())
	ensure.True(t, b.Get("r1", obj.ID()) == nil)
	ensure.NotNil(t, b.Get("r2", other.id))

	_, err := wrapped.GetObj(obj.ID())
	ensure.DeepEqual(t, err, core.ErrObjNotFound)
}

func TestAdapterErrorsPassThrough(t *testing.T) {
	clock := &fakeClock{}
	wrapped, _, _ := newWrapped(t, clock)

	head := types.NewDataObj([]byte("cas-head"))
	added, err := wrapped.AddReference(types.NewReference("main", head.ID(), false, 1, nil))
	ensure.Nil(t, err)

	// duplicate add surfaces unchanged
	_, err = wrapped.AddReference(types.NewReference("main", head.ID(), false, 1, nil))
	ensure.DeepEqual(t, err, core.ErrRefAlreadyExists)

	// stale CAS surfaces unchanged
	stale := types.NewReference("main", types.NewObjId([]byte("stale")), false, 9, nil)
	_, err = wrapped.UpdateReference(stale, head.ID())
	ensure.DeepEqual(t, err, core.ErrRefConditionFailed)

	// the cache still serves the true state
	got, err := wrapped.FindReference("main")
	ensure.Nil(t, err)
	ensure.True(t, got.Equal(added))
}
