// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eventbus

const (
	// TopicInvalidateObj is topic for notifying peers that a cached object
	// of a repository has been written or removed.
	TopicInvalidateObj = "cache:invalidate:obj"

	// TopicInvalidateReference is topic for notifying peers that a cached
	// reference of a repository has been written or removed.
	TopicInvalidateReference = "cache:invalidate:ref"
)
