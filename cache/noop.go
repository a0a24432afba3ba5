// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cache

import (
	"github.com/BOXFoundation/repod/core/types"
	"github.com/BOXFoundation/repod/persist"
)

// noopCacheBackend is used when caching is administratively disabled, so
// callers need not branch. Every get is a miss and Wrap returns its
// argument unchanged.
type noopCacheBackend struct{}

var _ CacheBackend = noopCacheBackend{}

var noopInstance CacheBackend = noopCacheBackend{}

// NoopCacheBackend returns the backend used when caching is disabled.
func NoopCacheBackend() CacheBackend {
	return noopInstance
}

func (noopCacheBackend) Get(repositoryID string, id types.ObjId) types.Obj { return nil }

func (noopCacheBackend) Put(repositoryID string, obj types.Obj) {}

func (noopCacheBackend) PutLocal(repositoryID string, obj types.Obj) {}

func (noopCacheBackend) PutNegative(repositoryID string, id types.ObjId, typ types.ObjType) {}

func (noopCacheBackend) Remove(repositoryID string, id types.ObjId) {}

func (noopCacheBackend) Clear(repositoryID string) {}

func (noopCacheBackend) Wrap(p persist.Persist) persist.Persist { return p }

func (noopCacheBackend) GetReference(repositoryID string, name string) *types.Reference {
	return nil
}

func (noopCacheBackend) PutReference(repositoryID string, ref *types.Reference) {}

func (noopCacheBackend) PutReferenceLocal(repositoryID string, ref *types.Reference) {}

func (noopCacheBackend) PutReferenceNegative(repositoryID string, name string) {}

func (noopCacheBackend) RemoveReference(repositoryID string, name string) {}
