// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eventbus

import (
	"sync"
	"testing"

	"github.com/facebookgo/ensure"
)

func TestNew(t *testing.T) {
	bus := New()
	if bus == nil {
		t.Log("New EventBus not created!")
		t.Fail()
	}
}

func TestHasSubscriber(t *testing.T) {
	bus := New()
	bus.Subscribe("topic", func() {})
	ensure.False(t, bus.HasSubscriber("topic_topic"))
	ensure.True(t, bus.HasSubscriber("topic"))
}

func TestSubscribe(t *testing.T) {
	bus := New()
	ensure.Nil(t, bus.Subscribe("topic", func() {}))
	ensure.NotNil(t, bus.Subscribe("topic", "String"))
}

func TestSubscribeOnceAndManySubscribe(t *testing.T) {
	bus := New()
	event := "topic"
	flag := 0
	fn := func() { flag++ }
	bus.SubscribeOnce(event, fn)
	bus.Subscribe(event, fn)
	bus.Subscribe(event, fn)
	bus.Publish(event)

	ensure.DeepEqual(t, flag, 3)
}

func TestUnsubscribe(t *testing.T) {
	bus := New()
	handler := func() {}
	handler2 := func() {}
	bus.Subscribe("topic", handler)
	bus.Subscribe("topic", handler2)
	ensure.Nil(t, bus.Unsubscribe("topic", handler))

	bus.Subscribe("topic2", handler)
	ensure.Nil(t, bus.Unsubscribe("topic2", handler))
	ensure.NotNil(t, bus.Unsubscribe("topic2", handler))
}

func TestPublish(t *testing.T) {
	bus := New()
	bus.Subscribe("topic", func(a int, b int) {
		ensure.DeepEqual(t, a, b)
	})
	bus.Publish("topic", 10, 10)
}

func TestPublishAsync(t *testing.T) {
	bus := New()
	var sm sync.Mutex
	results := make([]string, 0)
	bus.SubscribeAsync(TopicInvalidateObj, func(repo string) {
		sm.Lock()
		defer sm.Unlock()
		results = append(results, repo)
	}, true)

	bus.Publish(TopicInvalidateObj, "r1")
	bus.Publish(TopicInvalidateObj, "r2")
	bus.WaitAsync()

	ensure.DeepEqual(t, len(results), 2)
}
