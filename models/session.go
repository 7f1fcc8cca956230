package models

import (
	"time"

	"github.com/google/uuid"
)

// Session is one conversation with a remote agent, recorded in Postgres.
type Session struct {
	ID        uuid.UUID `json:"id"`
	UserID    string    `json:"user_id"`
	AgentType string    `json:"agent_type"`
	RemoteID  string    `json:"remote_id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

type NewSessionRequest struct {
	AgentType string `json:"agent_type"`
	Message   string `json:"message"`
}

type StreamRequest struct {
	Content   string `json:"content"`
	AgentType string `json:"agent_type"`
}

// AgentEvent is one chunk of streamed agent output. Events arrive from the
// hosted runtime over Kafka and are fanned out to SSE subscribers.
type AgentEvent struct {
	SessionID   string `json:"session_id" bson:"session_id"`
	UserID      string `json:"user_id" bson:"user_id"`
	Text        string `json:"message" bson:"message"`
	Sender      string `json:"sender" bson:"sender"`
	Error       bool   `json:"error" bson:"error"`
	Timestamp   int64  `json:"timestamp" bson:"timestamp"`
	LastMessage bool   `json:"last_message" bson:"last_message"`
}
