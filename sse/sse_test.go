package sse

import (
	"encoding/json"
	"testing"

	"travel-concierge/api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func register(t *testing.T, sessionID string) *ClientStream {
	t.Helper()
	stream := &ClientStream{
		Messages: make(chan string, 10),
		Done:     make(chan struct{}, 1),
	}
	Mu.Lock()
	Connections[sessionID] = stream
	Mu.Unlock()
	t.Cleanup(func() {
		Mu.Lock()
		delete(Connections, sessionID)
		Mu.Unlock()
	})
	return stream
}

func eventPayload(t *testing.T, event models.AgentEvent) string {
	t.Helper()
	data, err := json.Marshal(event)
	require.NoError(t, err)
	return string(data)
}

func TestSendEventToClient(t *testing.T) {
	stream := register(t, "session-1")

	payload := eventPayload(t, models.AgentEvent{SessionID: "session-1", Text: "hello"})
	SendEventToClient("session-1", payload)

	select {
	case msg := <-stream.Messages:
		assert.Equal(t, payload, msg)
	default:
		t.Fatal("expected a message on the stream")
	}
}

func TestSendEventToClientLastMessage(t *testing.T) {
	stream := register(t, "session-2")

	payload := eventPayload(t, models.AgentEvent{SessionID: "session-2", LastMessage: true})
	SendEventToClient("session-2", payload)

	select {
	case msg := <-stream.Messages:
		assert.Equal(t, "[DONE]", msg)
	default:
		t.Fatal("expected [DONE] on the stream")
	}

	select {
	case <-stream.Done:
	default:
		t.Fatal("expected done signal")
	}
}

func TestSendEventToClientNoSubscriber(t *testing.T) {
	// Must not panic or block.
	SendEventToClient("nobody-home", `{"session_id":"nobody-home"}`)
}

func TestSendEventToClientBadPayload(t *testing.T) {
	stream := register(t, "session-3")

	SendEventToClient("session-3", "not json")

	select {
	case <-stream.Messages:
		t.Fatal("malformed payload must not be forwarded")
	default:
	}
}
