package sse

import (
	"encoding/json"
	"sync"

	"travel-concierge/api/logger"
	"travel-concierge/api/models"

	"go.uber.org/zap"
)

// ClientStream is one subscriber waiting on agent events for a session.
type ClientStream struct {
	Messages chan string
	Done     chan struct{}
}

var (
	Connections = make(map[string]*ClientStream)
	Mu          sync.RWMutex
)

// SendEventToClient routes one agent event, encoded as JSON, to the stream
// registered for its session. Events for sessions with no subscriber are
// dropped. A final event signals the stream to close.
func SendEventToClient(sessionID string, payload string) {
	Mu.RLock()
	clientStream, ok := Connections[sessionID]
	Mu.RUnlock()
	if !ok {
		logger.Get().Debug("no client stream for session",
			zap.String("session_id", sessionID))
		return
	}

	var event models.AgentEvent
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		logger.Get().Error("failed to unmarshal agent event",
			zap.String("session_id", sessionID),
			zap.Error(err))
		return
	}

	if event.LastMessage {
		select {
		case clientStream.Messages <- "[DONE]":
		default:
			logger.Get().Warn("message channel full, [DONE] not delivered",
				zap.String("session_id", sessionID))
		}

		select {
		case clientStream.Done <- struct{}{}:
		default:
			logger.Get().Warn("done channel full, close signal not delivered",
				zap.String("session_id", sessionID))
		}
		return
	}

	select {
	case clientStream.Messages <- payload:
	default:
		logger.Get().Warn("message channel full, event dropped",
			zap.String("session_id", sessionID))
	}
}
