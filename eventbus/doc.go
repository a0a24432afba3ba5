// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package eventbus provides the pub/sub message model used to fan cache
// invalidations out to whatever peer transport is attached. There may be
// multiple subscribers subscribed to one topic.
//
// New a EventBus:
//
//   var bus = New()
//
// Get a global default EventBus:
//
//   var bus = Default()
//
// Subscriber:
//
//   func handler(repo string, id types.ObjId) {
//   	// forward to peers
//   }
//
//   bus.Subscribe(TopicInvalidateObj, handler)
//
// or handler will be triggerred async:
//
//   bus.SubscribeAsync(TopicInvalidateObj, handler, false)
//
// Publisher:
//
//   bus.Publish(TopicInvalidateObj, "repo", id)

package eventbus
