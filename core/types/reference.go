// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/BOXFoundation/repod/core"
	conv "github.com/BOXFoundation/repod/core/convert"
	corepb "github.com/BOXFoundation/repod/core/pb"
	proto "github.com/gogo/protobuf/proto"
)

// Reference is a named mutable pointer (branch or tag) of a repository.
type Reference struct {
	Name         string
	Pointer      ObjId
	Deleted      bool
	Generation   int64
	ExtendedInfo []byte
}

var _ conv.Convertible = (*Reference)(nil)
var _ conv.Serializable = (*Reference)(nil)

// NewReference creates a reference.
func NewReference(name string, pointer ObjId, deleted bool, generation int64, extendedInfo []byte) *Reference {
	return &Reference{
		Name:         name,
		Pointer:      pointer,
		Deleted:      deleted,
		Generation:   generation,
		ExtendedInfo: extendedInfo,
	}
}

// WithPointer returns a copy pointing at the given id with a bumped generation.
func (ref *Reference) WithPointer(pointer ObjId) *Reference {
	c := *ref
	c.Pointer = pointer
	c.Generation = ref.Generation + 1
	return &c
}

// WithDeleted returns a copy marked deleted with a bumped generation.
func (ref *Reference) WithDeleted() *Reference {
	c := *ref
	c.Deleted = true
	c.Generation = ref.Generation + 1
	return &c
}

// Equal checks equality of two references.
func (ref *Reference) Equal(other *Reference) bool {
	if other == nil {
		return false
	}
	return ref.Name == other.Name &&
		ref.Pointer.Equal(other.Pointer) &&
		ref.Deleted == other.Deleted &&
		ref.Generation == other.Generation
}

// ToProtoMessage converts the reference to proto message.
func (ref *Reference) ToProtoMessage() (proto.Message, error) {
	return &corepb.Reference{
		Name:         ref.Name,
		Pointer:      ref.Pointer,
		Deleted:      ref.Deleted,
		Generation:   ref.Generation,
		ExtendedInfo: ref.ExtendedInfo,
	}, nil
}

// FromProtoMessage converts proto message to the reference.
func (ref *Reference) FromProtoMessage(message proto.Message) error {
	if message, ok := message.(*corepb.Reference); ok {
		if message != nil {
			ref.Name = message.Name
			ref.Pointer = ObjId(message.Pointer)
			ref.Deleted = message.Deleted
			ref.Generation = message.Generation
			ref.ExtendedInfo = message.ExtendedInfo
			return nil
		}
		return core.ErrEmptyProtoMessage
	}

	return core.ErrInvalidRefProtoMessage
}

// Marshal method marshal Reference object to binary
func (ref *Reference) Marshal() (data []byte, err error) {
	return conv.MarshalConvertible(ref)
}

// Unmarshal method unmarshal binary data to Reference object
func (ref *Reference) Unmarshal(data []byte) error {
	msg := &corepb.Reference{}
	if err := proto.Unmarshal(data, msg); err != nil {
		return err
	}
	return ref.FromProtoMessage(msg)
}
