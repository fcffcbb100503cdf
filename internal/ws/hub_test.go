package ws

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/skyharboraero/flightline-backend/internal/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(userID uuid.UUID, admin bool) *Client {
	return &Client{
		send:    make(chan []byte, 8),
		userID:  userID,
		isAdmin: admin,
	}
}

func expectMessage(t *testing.T, client *Client) Message {
	t.Helper()
	select {
	case payload := <-client.send:
		var msg Message
		require.NoError(t, json.Unmarshal(payload, &msg))
		return msg
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for ws message")
		return Message{}
	}
}

func expectNothing(t *testing.T, client *Client) {
	t.Helper()
	select {
	case payload := <-client.send:
		t.Fatalf("unexpected message: %s", payload)
	default:
	}
}

func TestBroadcastScopesToOwner(t *testing.T) {
	hub := NewHub(events.NewBus())

	ownerID := uuid.New()
	owner := newTestClient(ownerID, false)
	other := newTestClient(uuid.New(), false)
	hub.register(owner)
	hub.register(other)

	hub.broadcast(events.Event{
		Topic:   events.TopicServiceRequests,
		Action:  "created",
		OwnerID: ownerID,
	})

	msg := expectMessage(t, owner)
	assert.Equal(t, "service-requests-changed", msg.Type)
	expectNothing(t, other)
}

func TestBroadcastAdminSeesEverything(t *testing.T) {
	hub := NewHub(events.NewBus())

	admin := newTestClient(uuid.New(), true)
	hub.register(admin)

	hub.broadcast(events.Event{Topic: events.TopicServiceCredits, OwnerID: uuid.New()})
	msg := expectMessage(t, admin)
	assert.Equal(t, "service-credits-changed", msg.Type)
}

func TestRegisterUnregisterCount(t *testing.T) {
	hub := NewHub(events.NewBus())
	assert.Equal(t, 0, hub.ClientCount())

	client := newTestClient(uuid.New(), false)
	hub.register(client)
	assert.Equal(t, 1, hub.ClientCount())

	hub.unregister(client)
	assert.Equal(t, 0, hub.ClientCount())

	_, open := <-client.send
	assert.False(t, open)
}

func TestRunForwardsBusEvents(t *testing.T) {
	bus := events.NewBus()
	hub := NewHub(bus)

	done := make(chan struct{})
	defer close(done)
	go hub.Run(done)

	ownerID := uuid.New()
	client := newTestClient(ownerID, false)
	hub.register(client)

	// give Run a beat to subscribe before publishing
	time.Sleep(10 * time.Millisecond)
	bus.Publish(events.Event{Topic: events.TopicServiceTasks, OwnerID: ownerID})

	select {
	case payload := <-client.send:
		var msg Message
		require.NoError(t, json.Unmarshal(payload, &msg))
		assert.Equal(t, "service-tasks-changed", msg.Type)
	case <-time.After(time.Second):
		t.Fatal("event was not forwarded to the client")
	}
}
