// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package persist defines the repository scoped persistence surface the
// higher level version control logic talks to. Implementations store
// content addressed objects and named references of exactly one repository.
package persist

import (
	"context"

	"github.com/BOXFoundation/repod/core/types"
)

// Config defines the persistence configuration
type Config struct {
	RepositoryID string `mapstructure:"repository_id"`
}

// Persist wraps object and reference operations of one repository.
//
// "Not found" conditions are reported via core.ErrObjNotFound and
// core.ErrRefNotFound so callers and caching wrappers can tell them apart
// from real failures.
type Persist interface {
	// Config returns the persistence configuration.
	Config() *Config

	// GetObj returns the object with the given id.
	GetObj(id types.ObjId) (types.Obj, error)

	// GetTypedObj returns the object with the given id if it has the given
	// kind, core.ErrObjNotFound otherwise.
	GetTypedObj(id types.ObjId, typ types.ObjType) (types.Obj, error)

	// GetObjs returns the objects with the given ids, aligned with the ids,
	// nil elements for objects that do not exist.
	GetObjs(ids []types.ObjId) ([]types.Obj, error)

	// WriteObj creates or updates the object.
	WriteObj(obj types.Obj) error

	// DeleteObj removes the object with the given id.
	DeleteObj(id types.ObjId) error

	// FindReference returns the live reference with the given name.
	FindReference(name string) (*types.Reference, error)

	// ListReferenceNames returns a chan to iter the names of all live
	// references.
	ListReferenceNames(ctx context.Context) <-chan string

	// AddReference creates the reference, core.ErrRefAlreadyExists if a
	// live reference with the same name exists. Returns the reference as
	// stored, which may carry a later generation than the argument.
	AddReference(ref *types.Reference) (*types.Reference, error)

	// UpdateReference points the reference at newPointer if its current
	// state equals expected, core.ErrRefConditionFailed otherwise. Returns
	// the updated reference.
	UpdateReference(expected *types.Reference, newPointer types.ObjId) (*types.Reference, error)

	// DeleteReference marks the reference deleted if its current state
	// equals expected, core.ErrRefConditionFailed otherwise.
	DeleteReference(expected *types.Reference) error

	// Erase drops everything stored for the repository.
	Erase() error

	Close() error
}
