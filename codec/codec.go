// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package codec serializes objects and references to the opaque byte blobs
// kept by the persistence layer and the cache. Objects travel inside a kind
// tagged envelope so that any registered kind can be rebuilt from raw bytes.
package codec

import (
	"github.com/BOXFoundation/repod/core"
	corepb "github.com/BOXFoundation/repod/core/pb"
	"github.com/BOXFoundation/repod/core/types"
	proto "github.com/gogo/protobuf/proto"
)

// SerializeObj serializes an object into its storage envelope. A positive
// maxSize bounds the encoded size, zero means unlimited.
func SerializeObj(obj types.Obj, maxSize int) ([]byte, error) {
	payload, err := obj.Marshal()
	if err != nil {
		return nil, err
	}
	raw, err := proto.Marshal(&corepb.Obj{
		Kind:       obj.Type().Name(),
		Id:         obj.ID(),
		Referenced: obj.Referenced(),
		Payload:    payload,
	})
	if err != nil {
		return nil, err
	}
	if maxSize > 0 && len(raw) > maxSize {
		return nil, core.ErrObjTooLarge
	}
	return raw, nil
}

// DeserializeObj rebuilds an object from its storage envelope. A non zero id
// overrides the envelope id. The kind hint, when it matches the envelope,
// skips the registry lookup; generation is passed through to the kind decoder,
// which tolerates any value since the envelope carries its own stamps.
func DeserializeObj(id types.ObjId, generation int64, data []byte, hint types.ObjType) (types.Obj, error) {
	msg := &corepb.Obj{}
	if err := proto.Unmarshal(data, msg); err != nil {
		return nil, err
	}

	kind := hint
	if kind == nil || kind.Name() != msg.Kind {
		kind = types.KindByName(msg.Kind)
	}
	if kind == nil {
		return nil, core.ErrUnknownObjKind
	}

	oid := id
	if oid.IsZero() {
		oid = types.ObjId(msg.Id)
	}

	obj, err := kind.DecodeObj(oid, generation, msg.Payload)
	if err != nil {
		return nil, err
	}
	if msg.Referenced != 0 {
		obj = obj.WithReferenced(msg.Referenced)
	}
	return obj, nil
}

// SerializeReference serializes a reference.
func SerializeReference(ref *types.Reference) ([]byte, error) {
	return ref.Marshal()
}

// DeserializeReference rebuilds a reference from its serialized form.
func DeserializeReference(data []byte) (*types.Reference, error) {
	ref := new(types.Reference)
	if err := ref.Unmarshal(data); err != nil {
		return nil, err
	}
	return ref, nil
}
