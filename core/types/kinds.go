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

// Built-in object kinds.
var (
	// DataObjType is the kind of opaque blob objects.
	DataObjType ObjType = dataObjType{}

	// CommitObjType is the kind of commit objects.
	CommitObjType ObjType = commitObjType{}

	// SessionObjType is the kind of short lived session objects carrying
	// their own cache deadline.
	SessionObjType ObjType = sessionObjType{}

	// GenericObjType is the fallback policy for reads that do not know the
	// kind in advance. It is never stored in an envelope.
	GenericObjType ObjType = genericObjType{}
)

func init() {
	RegisterKind(DataObjType)
	RegisterKind(CommitObjType)
	RegisterKind(SessionObjType)
}

////////////////////////////////////////////////////////////////
// data

// DataObj is an immutable opaque blob.
type DataObj struct {
	Oid          ObjId
	ReferencedAt int64
	Payload      []byte
}

var _ Obj = (*DataObj)(nil)
var _ conv.Serializable = (*DataObj)(nil)

// NewDataObj creates a data object, its id is the content hash of the payload.
func NewDataObj(data []byte) *DataObj {
	o := &DataObj{Payload: data}
	raw, _ := o.Marshal()
	o.Oid = NewObjId(raw)
	return o
}

// Type returns the object kind.
func (o *DataObj) Type() ObjType { return DataObjType }

// ID returns the content hash id.
func (o *DataObj) ID() ObjId { return o.Oid }

// Referenced returns the referenced stamp in micros.
func (o *DataObj) Referenced() int64 { return o.ReferencedAt }

// WithReferenced returns a copy carrying the given referenced stamp.
func (o *DataObj) WithReferenced(referenced int64) Obj {
	c := *o
	c.ReferencedAt = referenced
	return &c
}

// Marshal method marshal DataObj payload to binary
func (o *DataObj) Marshal() ([]byte, error) {
	return proto.Marshal(&corepb.DataPayload{Data: o.Payload})
}

// Unmarshal method unmarshal binary data to DataObj payload
func (o *DataObj) Unmarshal(data []byte) error {
	msg := &corepb.DataPayload{}
	if err := proto.Unmarshal(data, msg); err != nil {
		return err
	}
	o.Payload = msg.Data
	return nil
}

type dataObjType struct{}

func (dataObjType) Name() string { return "data" }

func (dataObjType) CachedObjExpiresAtMicros(obj Obj, now func() int64) int64 {
	return CacheUnlimited
}

func (dataObjType) NegativeCacheExpiresAtMicros(now func() int64) int64 {
	return now() + defaultNegativeTTLMicros
}

func (dataObjType) DecodeObj(id ObjId, generation int64, payload []byte) (Obj, error) {
	o := &DataObj{Oid: id}
	if err := o.Unmarshal(payload); err != nil {
		return nil, err
	}
	return o, nil
}

////////////////////////////////////////////////////////////////
// commit

// CommitObj records one commit of a repository.
type CommitObj struct {
	Oid           ObjId
	ReferencedAt  int64
	Parent        ObjId
	Message       string
	CreatedMicros int64
}

var _ Obj = (*CommitObj)(nil)
var _ conv.Serializable = (*CommitObj)(nil)

// NewCommitObj creates a commit object, its id is the content hash of the payload.
func NewCommitObj(parent ObjId, message string, createdMicros int64) *CommitObj {
	o := &CommitObj{Parent: parent, Message: message, CreatedMicros: createdMicros}
	raw, _ := o.Marshal()
	o.Oid = NewObjId(raw)
	return o
}

// Type returns the object kind.
func (o *CommitObj) Type() ObjType { return CommitObjType }

// ID returns the content hash id.
func (o *CommitObj) ID() ObjId { return o.Oid }

// Referenced returns the referenced stamp in micros.
func (o *CommitObj) Referenced() int64 { return o.ReferencedAt }

// WithReferenced returns a copy carrying the given referenced stamp.
func (o *CommitObj) WithReferenced(referenced int64) Obj {
	c := *o
	c.ReferencedAt = referenced
	return &c
}

// Marshal method marshal CommitObj payload to binary
func (o *CommitObj) Marshal() ([]byte, error) {
	return proto.Marshal(&corepb.CommitPayload{
		Parent:        o.Parent,
		Message:       o.Message,
		CreatedMicros: o.CreatedMicros,
	})
}

// Unmarshal method unmarshal binary data to CommitObj payload
func (o *CommitObj) Unmarshal(data []byte) error {
	msg := &corepb.CommitPayload{}
	if err := proto.Unmarshal(data, msg); err != nil {
		return err
	}
	o.Parent = ObjId(msg.Parent)
	o.Message = msg.Message
	o.CreatedMicros = msg.CreatedMicros
	return nil
}

type commitObjType struct{}

func (commitObjType) Name() string { return "commit" }

func (commitObjType) CachedObjExpiresAtMicros(obj Obj, now func() int64) int64 {
	return CacheUnlimited
}

func (commitObjType) NegativeCacheExpiresAtMicros(now func() int64) int64 {
	return now() + defaultNegativeTTLMicros
}

func (commitObjType) DecodeObj(id ObjId, generation int64, payload []byte) (Obj, error) {
	o := &CommitObj{Oid: id}
	if err := o.Unmarshal(payload); err != nil {
		return nil, err
	}
	return o, nil
}

////////////////////////////////////////////////////////////////
// session

// sessionNegativeTTLMicros keeps "not found" session answers short lived.
const sessionNegativeTTLMicros = int64(5 * 1000 * 1000)

// SessionObj is a short lived object carrying its own cache deadline.
type SessionObj struct {
	Oid              ObjId
	ReferencedAt     int64
	Payload          []byte
	LeaseUntilMicros int64
}

var _ Obj = (*SessionObj)(nil)
var _ conv.Serializable = (*SessionObj)(nil)

// NewSessionObj creates a session object, its id is the content hash of the payload.
func NewSessionObj(data []byte, leaseUntilMicros int64) *SessionObj {
	o := &SessionObj{Payload: data, LeaseUntilMicros: leaseUntilMicros}
	raw, _ := o.Marshal()
	o.Oid = NewObjId(raw)
	return o
}

// Type returns the object kind.
func (o *SessionObj) Type() ObjType { return SessionObjType }

// ID returns the content hash id.
func (o *SessionObj) ID() ObjId { return o.Oid }

// Referenced returns the referenced stamp in micros.
func (o *SessionObj) Referenced() int64 { return o.ReferencedAt }

// WithReferenced returns a copy carrying the given referenced stamp.
func (o *SessionObj) WithReferenced(referenced int64) Obj {
	c := *o
	c.ReferencedAt = referenced
	return &c
}

// Marshal method marshal SessionObj payload to binary
func (o *SessionObj) Marshal() ([]byte, error) {
	return proto.Marshal(&corepb.SessionPayload{
		Data:             o.Payload,
		LeaseUntilMicros: o.LeaseUntilMicros,
	})
}

// Unmarshal method unmarshal binary data to SessionObj payload
func (o *SessionObj) Unmarshal(data []byte) error {
	msg := &corepb.SessionPayload{}
	if err := proto.Unmarshal(data, msg); err != nil {
		return err
	}
	o.Payload = msg.Data
	o.LeaseUntilMicros = msg.LeaseUntilMicros
	return nil
}

type sessionObjType struct{}

func (sessionObjType) Name() string { return "session" }

// Sessions expire at their own lease deadline, a zero lease is not cached.
func (sessionObjType) CachedObjExpiresAtMicros(obj Obj, now func() int64) int64 {
	s, ok := obj.(*SessionObj)
	if !ok || s.LeaseUntilMicros == 0 {
		return NotCached
	}
	return s.LeaseUntilMicros
}

func (sessionObjType) NegativeCacheExpiresAtMicros(now func() int64) int64 {
	return now() + sessionNegativeTTLMicros
}

func (sessionObjType) DecodeObj(id ObjId, generation int64, payload []byte) (Obj, error) {
	o := &SessionObj{Oid: id}
	if err := o.Unmarshal(payload); err != nil {
		return nil, err
	}
	return o, nil
}

////////////////////////////////////////////////////////////////
// generic

type genericObjType struct{}

func (genericObjType) Name() string { return "generic" }

func (genericObjType) CachedObjExpiresAtMicros(obj Obj, now func() int64) int64 {
	return CacheUnlimited
}

func (genericObjType) NegativeCacheExpiresAtMicros(now func() int64) int64 {
	return now() + defaultNegativeTTLMicros
}

func (genericObjType) DecodeObj(id ObjId, generation int64, payload []byte) (Obj, error) {
	return nil, core.ErrUnknownObjKind
}
