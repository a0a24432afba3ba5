// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package codec

import (
	"testing"

	"github.com/BOXFoundation/repod/core"
	"github.com/BOXFoundation/repod/core/types"
	"github.com/facebookgo/ensure"
)

func TestObjEnvelopeRoundTrip(t *testing.T) {
	obj := types.NewDataObj([]byte("roundtrip")).WithReferenced(77)

	raw, err := SerializeObj(obj, 0)
	ensure.Nil(t, err)

	decoded, err := DeserializeObj(nil, 0, raw, nil)
	ensure.Nil(t, err)
	ensure.True(t, decoded.ID().Equal(obj.ID()))
	ensure.DeepEqual(t, decoded.(*types.DataObj).Payload, []byte("roundtrip"))
	ensure.DeepEqual(t, decoded.Referenced(), int64(77))
}

func TestObjDeserializeWithIdOverride(t *testing.T) {
	obj := types.NewCommitObj(nil, "msg", 5)
	raw, err := SerializeObj(obj, 0)
	ensure.Nil(t, err)

	override := types.NewObjId([]byte("override"))
	decoded, err := DeserializeObj(override, 0, raw, nil)
	ensure.Nil(t, err)
	ensure.True(t, decoded.ID().Equal(override))
}

func TestObjDeserializeWithHint(t *testing.T) {
	obj := types.NewCommitObj(nil, "hinted", 5)
	raw, err := SerializeObj(obj, 0)
	ensure.Nil(t, err)

	// a matching hint is honored, a wrong one falls back to the registry
	decoded, err := DeserializeObj(nil, 0, raw, types.CommitObjType)
	ensure.Nil(t, err)
	ensure.DeepEqual(t, decoded.Type(), types.CommitObjType)

	decoded, err = DeserializeObj(nil, 0, raw, types.DataObjType)
	ensure.Nil(t, err)
	ensure.DeepEqual(t, decoded.Type(), types.CommitObjType)
}

func TestObjSizeLimit(t *testing.T) {
	obj := types.NewDataObj(make([]byte, 4096))

	_, err := SerializeObj(obj, 128)
	ensure.DeepEqual(t, err, core.ErrObjTooLarge)

	// the limit is on the encoded envelope, unlimited always passes
	raw, err := SerializeObj(obj, 0)
	ensure.Nil(t, err)
	ensure.True(t, len(raw) > 4096)
}

func TestUnknownKind(t *testing.T) {
	obj := types.NewDataObj([]byte("x"))
	raw, err := SerializeObj(obj, 0)
	ensure.Nil(t, err)

	// the generic fallback kind decodes no payload
	_, err = types.GenericObjType.DecodeObj(obj.ID(), 0, nil)
	ensure.DeepEqual(t, err, core.ErrUnknownObjKind)

	// garbage never decodes
	_, err = DeserializeObj(nil, 0, append(raw, 0xff, 0xff, 0xff), nil)
	ensure.NotNil(t, err)
}

func TestReferenceRoundTrip(t *testing.T) {
	ref := types.NewReference("main", types.NewObjId([]byte("head")), false, 3, nil)

	raw, err := SerializeReference(ref)
	ensure.Nil(t, err)

	decoded, err := DeserializeReference(raw)
	ensure.Nil(t, err)
	ensure.True(t, decoded.Equal(ref))
}
