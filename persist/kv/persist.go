// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package kv implements persist.Persist on top of a storage.Table. Objects
// live under "/obj/<hex id>", references under "/ref/<name>"; a reference
// delete leaves a tombstone so generations stay monotonic.
package kv

import (
	"context"
	"fmt"
	"strings"

	"github.com/BOXFoundation/repod/codec"
	"github.com/BOXFoundation/repod/core"
	"github.com/BOXFoundation/repod/core/types"
	"github.com/BOXFoundation/repod/log"
	"github.com/BOXFoundation/repod/persist"
	storage "github.com/BOXFoundation/repod/storage"
	key "github.com/BOXFoundation/repod/storage/key"
)

var logger = log.NewLogger("persist")

const refKeyPrefix = "/ref/"

type kvPersist struct {
	cfg   persist.Config
	db    storage.Storage
	table storage.Table
}

var _ persist.Persist = (*kvPersist)(nil)

// NewPersist creates a Persist for one repository over the given database.
func NewPersist(db storage.Storage, cfg *persist.Config) (persist.Persist, error) {
	table, err := db.Table(tableName(cfg.RepositoryID))
	if err != nil {
		return nil, err
	}
	return &kvPersist{
		cfg:   *cfg,
		db:    db,
		table: table,
	}, nil
}

func tableName(repositoryID string) string {
	return fmt.Sprintf("repo:%s", repositoryID)
}

func objKey(id types.ObjId) []byte {
	return key.NewKeyWithPaths("obj", id.Hex()).Bytes()
}

func refKey(name string) []byte {
	return key.NewKeyWithPaths("ref", name).Bytes()
}

// Config returns the persistence configuration.
func (p *kvPersist) Config() *persist.Config {
	return &p.cfg
}

// GetObj returns the object with the given id.
func (p *kvPersist) GetObj(id types.ObjId) (types.Obj, error) {
	return p.getObj(id, nil)
}

// GetTypedObj returns the object with the given id if it has the given kind.
func (p *kvPersist) GetTypedObj(id types.ObjId, typ types.ObjType) (types.Obj, error) {
	obj, err := p.getObj(id, typ)
	if err != nil {
		return nil, err
	}
	if typ != nil && obj.Type() != typ {
		return nil, core.ErrObjNotFound
	}
	return obj, nil
}

func (p *kvPersist) getObj(id types.ObjId, hint types.ObjType) (types.Obj, error) {
	value, err := p.table.Get(objKey(id))
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, core.ErrObjNotFound
	}
	return codec.DeserializeObj(id, 0, value, hint)
}

// GetObjs returns the objects with the given ids, aligned with the ids.
func (p *kvPersist) GetObjs(ids []types.ObjId) ([]types.Obj, error) {
	keys := make([][]byte, len(ids))
	for i, id := range ids {
		keys[i] = objKey(id)
	}

	values, err := p.table.MultiGet(keys...)
	if err != nil {
		return nil, err
	}

	objs := make([]types.Obj, len(ids))
	for i, value := range values {
		if value == nil {
			continue
		}
		obj, err := codec.DeserializeObj(ids[i], 0, value, nil)
		if err != nil {
			return nil, err
		}
		objs[i] = obj
	}
	return objs, nil
}

// WriteObj creates or updates the object.
func (p *kvPersist) WriteObj(obj types.Obj) error {
	raw, err := codec.SerializeObj(obj, 0)
	if err != nil {
		return err
	}
	return p.table.Put(objKey(obj.ID()), raw)
}

// DeleteObj removes the object with the given id.
func (p *kvPersist) DeleteObj(id types.ObjId) error {
	return p.table.Del(objKey(id))
}

// FindReference returns the live reference with the given name.
func (p *kvPersist) FindReference(name string) (*types.Reference, error) {
	value, err := p.table.Get(refKey(name))
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, core.ErrRefNotFound
	}
	ref, err := codec.DeserializeReference(value)
	if err != nil {
		return nil, err
	}
	if ref.Deleted {
		return nil, core.ErrRefNotFound
	}
	return ref, nil
}

// ListReferenceNames returns a chan to iter the names of all live references.
func (p *kvPersist) ListReferenceNames(ctx context.Context) <-chan string {
	out := make(chan string)
	go func() {
		defer close(out)

		for k := range p.table.IterKeysWithPrefix(ctx, []byte(refKeyPrefix)) {
			name := strings.TrimPrefix(string(k), refKeyPrefix)
			if ref, err := p.FindReference(name); err != nil || ref == nil {
				continue
			}
			select {
			case out <- name:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

// AddReference creates the reference.
func (p *kvPersist) AddReference(ref *types.Reference) (*types.Reference, error) {
	tx, err := p.table.NewTransaction()
	if err != nil {
		return nil, err
	}
	defer tx.Discard()

	value, err := tx.Get(refKey(ref.Name))
	if err != nil {
		return nil, err
	}

	toStore := *ref
	if value != nil {
		current, err := codec.DeserializeReference(value)
		if err != nil {
			return nil, err
		}
		if !current.Deleted {
			return nil, core.ErrRefAlreadyExists
		}
		// revive over the tombstone, generations stay monotonic
		toStore.Generation = current.Generation + 1
	}

	raw, err := codec.SerializeReference(&toStore)
	if err != nil {
		return nil, err
	}
	if err := tx.Put(refKey(ref.Name), raw); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &toStore, nil
}

// UpdateReference points the reference at newPointer if its current state
// equals expected.
func (p *kvPersist) UpdateReference(expected *types.Reference, newPointer types.ObjId) (*types.Reference, error) {
	tx, err := p.table.NewTransaction()
	if err != nil {
		return nil, err
	}
	defer tx.Discard()

	current, err := p.currentReference(tx, expected.Name)
	if err != nil {
		return nil, err
	}
	if !current.Equal(expected) {
		return nil, core.ErrRefConditionFailed
	}

	updated := current.WithPointer(newPointer)
	raw, err := codec.SerializeReference(updated)
	if err != nil {
		return nil, err
	}
	if err := tx.Put(refKey(expected.Name), raw); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteReference marks the reference deleted if its current state equals
// expected.
func (p *kvPersist) DeleteReference(expected *types.Reference) error {
	tx, err := p.table.NewTransaction()
	if err != nil {
		return err
	}
	defer tx.Discard()

	current, err := p.currentReference(tx, expected.Name)
	if err != nil {
		return err
	}
	if !current.Equal(expected) {
		return core.ErrRefConditionFailed
	}

	raw, err := codec.SerializeReference(current.WithDeleted())
	if err != nil {
		return err
	}
	if err := tx.Put(refKey(expected.Name), raw); err != nil {
		return err
	}
	return tx.Commit()
}

func (p *kvPersist) currentReference(tx storage.Transaction, name string) (*types.Reference, error) {
	value, err := tx.Get(refKey(name))
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, core.ErrRefNotFound
	}
	current, err := codec.DeserializeReference(value)
	if err != nil {
		return nil, err
	}
	if current.Deleted {
		return nil, core.ErrRefNotFound
	}
	return current, nil
}

// Erase drops everything stored for the repository.
func (p *kvPersist) Erase() error {
	logger.Infof("Erase repository %s", p.cfg.RepositoryID)
	return p.db.DropTable(tableName(p.cfg.RepositoryID))
}

func (p *kvPersist) Close() error {
	return nil
}
