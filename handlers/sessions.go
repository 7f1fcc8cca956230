package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"

	"travel-concierge/api/agent"
	"travel-concierge/api/db"
	"travel-concierge/api/kafka"
	"travel-concierge/api/llm"
	"travel-concierge/api/models"
	"travel-concierge/api/reasoning"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// queryEventPayload is the record of a user query published to the query
// topic for downstream consumers.
func queryEventPayload(session *models.Session, userID, content string) ([]byte, error) {
	return json.Marshal(models.AgentEvent{
		SessionID: session.ID.String(),
		UserID:    userID,
		Text:      content,
		Sender:    "UserMessage",
		Timestamp: time.Now().Unix(),
	})
}

// HandleCreateSession opens a session on the reasoning engine, titles it from
// the first message, and records it in Postgres.
func HandleCreateSession(c *gin.Context) {
	claims, ok := userClaims(c)
	if !ok {
		return
	}

	var req models.NewSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("Error binding JSON: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := agent.Lookup(req.AgentType); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	remoteID, err := reasoning.Engine.CreateSession(c.Request.Context(), req.AgentType, claims.Sub)
	if err != nil {
		log.Printf("Error creating remote session for user %s: %v", claims.Sub, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	title, err := llm.GenerateSessionTitle(req.Message)
	if err != nil {
		log.Printf("Error generating session title: %v", err)
		title = "New Session"
	}

	session, err := db.CreateSession(claims.Sub, req.AgentType, remoteID, title)
	if err != nil {
		log.Printf("Error creating session for user %s: %v", claims.Sub, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	log.Printf("Successfully created session %s for user %s", session.ID, claims.Sub)
	c.JSON(http.StatusOK, gin.H{
		"session_id":    session.ID,
		"session_title": session.Title,
	})
}

func HandleGetSessions(c *gin.Context) {
	claims, ok := userClaims(c)
	if !ok {
		return
	}

	sessions, err := db.GetSessionsByUserID(claims.Sub)
	if err != nil {
		log.Printf("Error fetching sessions for user %s: %v", claims.Sub, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, sessions)
}

func HandleDeleteSession(c *gin.Context) {
	claims, ok := userClaims(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return
	}

	session, err := db.GetSessionByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	if session.UserID != claims.Sub {
		c.JSON(http.StatusForbidden, gin.H{"error": "session does not belong to user"})
		return
	}

	if err := db.DeleteSession(id); err != nil {
		log.Printf("Error deleting session %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Session deleted"})
}

// HandleStreamQuery forwards one user message to the reasoning engine and
// relays the engine's SSE stream back verbatim. Upstream errors become a
// single SSE error event rather than an HTTP error, since headers are already
// out by then.
func HandleStreamQuery(c *gin.Context) {
	claims, ok := userClaims(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return
	}

	session, err := db.GetSessionByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	if session.UserID != claims.Sub {
		c.JSON(http.StatusForbidden, gin.H{"error": "session does not belong to user"})
		return
	}

	var req models.StreamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("Error binding JSON: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Publish the user query before relaying; consumers downstream see the
	// full exchange in order. A produce failure degrades to relay-only.
	if payload, err := queryEventPayload(session, claims.Sub, req.Content); err != nil {
		log.Printf("Error marshaling query event for session %s: %v", id, err)
	} else if err := kafka.ProduceMessage(kafka.QueryTopic, payload); err != nil {
		log.Printf("Error producing query event for session %s: %v", id, err)
	}

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.String(http.StatusInternalServerError, "Streaming unsupported!")
		return
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	err = reasoning.Engine.StreamQuery(c.Request.Context(),
		session.AgentType, claims.Sub, session.RemoteID, req.Content,
		func(data []byte) error {
			if _, err := c.Writer.Write([]byte("data: ")); err != nil {
				return err
			}
			if _, err := c.Writer.Write(data); err != nil {
				return err
			}
			if _, err := c.Writer.Write([]byte("\n\n")); err != nil {
				return err
			}
			flusher.Flush()
			return nil
		})
	if err != nil && err != io.EOF {
		log.Printf("Error streaming query for session %s: %v", id, err)
		c.Writer.Write([]byte(`data: {"error": true, "message": "stream failed"}` + "\n\n"))
		flusher.Flush()
	}
}
