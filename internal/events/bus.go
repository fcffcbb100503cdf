// Package events is an in-process publish/subscribe bus with one topic per
// entity type. Views that depend on an entity subscribe to its topic instead
// of pattern-matching cache keys.
package events

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Topics, one per entity type whose mutations downstream views care about.
const (
	TopicServiceRequests = "service-requests"
	TopicServiceTasks    = "service-tasks"
	TopicServiceCredits  = "service-credits"
	TopicInvoices        = "invoices"
)

// Event describes a mutation on one entity. OwnerID scopes delivery to the
// affected owner's views; AircraftID is set when the entity belongs to an
// aircraft.
type Event struct {
	Topic      string    `json:"topic"`
	Action     string    `json:"action"` // created, updated, deleted
	EntityID   uuid.UUID `json:"entity_id"`
	OwnerID    uuid.UUID `json:"owner_id"`
	AircraftID uuid.UUID `json:"aircraft_id,omitempty"`
	At         time.Time `json:"at"`
}

type subscriber struct {
	topics map[string]bool
	ch     chan Event
}

// Bus fans events out to subscribers. Slow subscribers drop events rather
// than block publishers.
type Bus struct {
	mu   sync.RWMutex
	subs map[*subscriber]bool
}

func NewBus() *Bus {
	return &Bus{subs: make(map[*subscriber]bool)}
}

// Subscribe registers interest in the given topics (all topics when none are
// given) and returns the event channel plus an unsubscribe func.
func (b *Bus) Subscribe(topics ...string) (<-chan Event, func()) {
	sub := &subscriber{
		topics: make(map[string]bool, len(topics)),
		ch:     make(chan Event, 64),
	}
	for _, t := range topics {
		sub.topics[t] = true
	}

	b.mu.Lock()
	b.subs[sub] = true
	b.mu.Unlock()

	unsubscribe := func() {
		b.mu.Lock()
		if b.subs[sub] {
			delete(b.subs, sub)
			close(sub.ch)
		}
		b.mu.Unlock()
	}
	return sub.ch, unsubscribe
}

// Publish delivers the event to every subscriber of its topic. Never blocks.
func (b *Bus) Publish(evt Event) {
	if evt.At.IsZero() {
		evt.At = time.Now()
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	for sub := range b.subs {
		if len(sub.topics) > 0 && !sub.topics[evt.Topic] {
			continue
		}
		select {
		case sub.ch <- evt:
		default:
			// subscriber buffer full, drop
		}
	}
}
