// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package core

import "errors"

//error
var (
	ErrObjNotFound            = errors.New("object not found")
	ErrObjTooLarge            = errors.New("serialized object exceeds size limit")
	ErrRefNotFound            = errors.New("reference not found")
	ErrRefAlreadyExists       = errors.New("reference already exists")
	ErrRefConditionFailed     = errors.New("reference pointer condition failed")
	ErrUnknownObjKind         = errors.New("unknown object kind")
	ErrEmptyProtoMessage      = errors.New("empty proto message")
	ErrInvalidObjProtoMessage = errors.New("invalid object proto message")
	ErrInvalidRefProtoMessage = errors.New("invalid reference proto message")
)
