// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cache

import (
	"context"

	"github.com/BOXFoundation/repod/core"
	"github.com/BOXFoundation/repod/core/types"
	"github.com/BOXFoundation/repod/persist"
)

// cachingPersist is the caching facade over a persist.Persist. It is the
// coherence boundary: the only component talking to both the cache backend
// and the underlying persistence. Underlying errors pass through unchanged
// and never populate the cache; sentinel hits are translated back into the
// underlying "not found" errors so callers see identical semantics whether
// the answer came from the cache or the store.
type cachingPersist struct {
	p    persist.Persist
	c    CacheBackend
	repo string
}

var _ persist.Persist = (*cachingPersist)(nil)

func newCachingPersist(p persist.Persist, c CacheBackend) persist.Persist {
	return &cachingPersist{
		p:    p,
		c:    c,
		repo: p.Config().RepositoryID,
	}
}

// Config returns the persistence configuration.
func (cp *cachingPersist) Config() *persist.Config {
	return cp.p.Config()
}

// GetObj returns the object with the given id.
func (cp *cachingPersist) GetObj(id types.ObjId) (types.Obj, error) {
	if obj := cp.c.Get(cp.repo, id); obj != nil {
		if obj == NotFoundObjSentinel {
			return nil, core.ErrObjNotFound
		}
		return obj, nil
	}

	obj, err := cp.p.GetObj(id)
	if err != nil {
		if err == core.ErrObjNotFound {
			cp.c.PutNegative(cp.repo, id, types.GenericObjType)
		}
		return nil, err
	}
	cp.c.PutLocal(cp.repo, obj)
	return obj, nil
}

// GetTypedObj returns the object with the given id if it has the given kind.
func (cp *cachingPersist) GetTypedObj(id types.ObjId, typ types.ObjType) (types.Obj, error) {
	if obj := cp.c.Get(cp.repo, id); obj != nil {
		if obj == NotFoundObjSentinel {
			return nil, core.ErrObjNotFound
		}
		if typ != nil && obj.Type() != typ {
			return nil, core.ErrObjNotFound
		}
		return obj, nil
	}

	obj, err := cp.p.GetTypedObj(id, typ)
	if err != nil {
		if err == core.ErrObjNotFound {
			cp.c.PutNegative(cp.repo, id, typ)
		}
		return nil, err
	}
	cp.c.PutLocal(cp.repo, obj)
	return obj, nil
}

// GetObjs returns the objects with the given ids, aligned with the ids.
func (cp *cachingPersist) GetObjs(ids []types.ObjId) ([]types.Obj, error) {
	objs := make([]types.Obj, len(ids))

	var missIdx []int
	var missIds []types.ObjId
	for i, id := range ids {
		obj := cp.c.Get(cp.repo, id)
		switch {
		case obj == NotFoundObjSentinel:
			// known to not exist, leave the slot nil
		case obj != nil:
			objs[i] = obj
		default:
			missIdx = append(missIdx, i)
			missIds = append(missIds, id)
		}
	}
	if len(missIds) == 0 {
		return objs, nil
	}

	fetched, err := cp.p.GetObjs(missIds)
	if err != nil {
		return nil, err
	}
	for i, obj := range fetched {
		if obj == nil {
			cp.c.PutNegative(cp.repo, missIds[i], types.GenericObjType)
			continue
		}
		cp.c.PutLocal(cp.repo, obj)
		objs[missIdx[i]] = obj
	}
	return objs, nil
}

// WriteObj creates or updates the object.
func (cp *cachingPersist) WriteObj(obj types.Obj) error {
	if err := cp.p.WriteObj(obj); err != nil {
		return err
	}
	cp.c.Put(cp.repo, obj)
	return nil
}

// DeleteObj removes the object with the given id.
func (cp *cachingPersist) DeleteObj(id types.ObjId) error {
	if err := cp.p.DeleteObj(id); err != nil {
		return err
	}
	cp.c.Remove(cp.repo, id)
	return nil
}

// FindReference returns the live reference with the given name.
func (cp *cachingPersist) FindReference(name string) (*types.Reference, error) {
	if ref := cp.c.GetReference(cp.repo, name); ref != nil {
		if ref == NonExistentReferenceSentinel {
			return nil, core.ErrRefNotFound
		}
		return ref, nil
	}

	ref, err := cp.p.FindReference(name)
	if err != nil {
		if err == core.ErrRefNotFound {
			cp.c.PutReferenceNegative(cp.repo, name)
		}
		return nil, err
	}
	cp.c.PutReferenceLocal(cp.repo, ref)
	return ref, nil
}

// ListReferenceNames returns a chan to iter the names of all live references.
func (cp *cachingPersist) ListReferenceNames(ctx context.Context) <-chan string {
	return cp.p.ListReferenceNames(ctx)
}

// AddReference creates the reference.
func (cp *cachingPersist) AddReference(ref *types.Reference) (*types.Reference, error) {
	added, err := cp.p.AddReference(ref)
	if err != nil {
		return nil, err
	}
	cp.c.PutReference(cp.repo, added)
	return added, nil
}

// UpdateReference points the reference at newPointer if its current state
// equals expected.
func (cp *cachingPersist) UpdateReference(expected *types.Reference, newPointer types.ObjId) (*types.Reference, error) {
	updated, err := cp.p.UpdateReference(expected, newPointer)
	if err != nil {
		return nil, err
	}
	cp.c.PutReference(cp.repo, updated)
	return updated, nil
}

// DeleteReference marks the reference deleted if its current state equals
// expected.
func (cp *cachingPersist) DeleteReference(expected *types.Reference) error {
	if err := cp.p.DeleteReference(expected); err != nil {
		return err
	}
	cp.c.RemoveReference(cp.repo, expected.Name)
	return nil
}

// Erase drops everything stored for the repository.
func (cp *cachingPersist) Erase() error {
	if err := cp.p.Erase(); err != nil {
		return err
	}
	cp.c.Clear(cp.repo)
	return nil
}

func (cp *cachingPersist) Close() error {
	return cp.p.Close()
}
