package events

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, ch <-chan Event) Event {
	t.Helper()
	select {
	case evt := <-ch:
		return evt
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestPublishDeliversToTopicSubscriber(t *testing.T) {
	bus := NewBus()
	ch, unsub := bus.Subscribe(TopicServiceRequests)
	defer unsub()

	ownerID := uuid.New()
	bus.Publish(Event{Topic: TopicServiceRequests, Action: "created", OwnerID: ownerID})

	evt := receive(t, ch)
	assert.Equal(t, TopicServiceRequests, evt.Topic)
	assert.Equal(t, "created", evt.Action)
	assert.Equal(t, ownerID, evt.OwnerID)
	assert.False(t, evt.At.IsZero())
}

func TestPublishFiltersByTopic(t *testing.T) {
	bus := NewBus()
	tasks, unsub := bus.Subscribe(TopicServiceTasks)
	defer unsub()

	bus.Publish(Event{Topic: TopicServiceCredits})
	bus.Publish(Event{Topic: TopicServiceTasks})

	evt := receive(t, tasks)
	assert.Equal(t, TopicServiceTasks, evt.Topic)

	select {
	case extra := <-tasks:
		t.Fatalf("unexpected extra event: %+v", extra)
	default:
	}
}

func TestSubscribeAllTopics(t *testing.T) {
	bus := NewBus()
	all, unsub := bus.Subscribe()
	defer unsub()

	bus.Publish(Event{Topic: TopicServiceRequests})
	bus.Publish(Event{Topic: TopicInvoices})

	assert.Equal(t, TopicServiceRequests, receive(t, all).Topic)
	assert.Equal(t, TopicInvoices, receive(t, all).Topic)
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	bus := NewBus()
	ch, unsub := bus.Subscribe(TopicServiceRequests)

	unsub()
	// double unsubscribe must not panic
	unsub()

	_, open := <-ch
	require.False(t, open)

	// publishing after unsubscribe must not panic either
	bus.Publish(Event{Topic: TopicServiceRequests})
}

func TestSlowSubscriberDropsInsteadOfBlocking(t *testing.T) {
	bus := NewBus()
	_, unsub := bus.Subscribe(TopicServiceRequests)
	defer unsub()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 200; i++ {
			bus.Publish(Event{Topic: TopicServiceRequests})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publisher blocked on a slow subscriber")
	}
}
