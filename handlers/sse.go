package handlers

import (
	"io"
	"log"
	"net/http"

	"travel-concierge/api/sse"

	"github.com/gin-gonic/gin"
)

// HandleSSE subscribes the client to the agent events for a session. Events
// arrive through the Kafka worker pipeline; the stream ends on [DONE], client
// disconnect, or the done signal.
func HandleSSE(c *gin.Context) {
	if _, err := authenticateSSE(c); err != nil {
		log.Printf("Authentication failed: %v", err)
		return
	}

	sessionID := c.Param("id")

	messageChan := make(chan string, 100)
	doneChan := make(chan struct{})

	clientStream := &sse.ClientStream{
		Messages: messageChan,
		Done:     doneChan,
	}

	sse.Mu.Lock()
	sse.Connections[sessionID] = clientStream
	sse.Mu.Unlock()

	log.Printf("SSE connection established for session: %s", sessionID)

	// Automatically remove connection when client disconnects
	defer func() {
		sse.Mu.Lock()
		delete(sse.Connections, sessionID)
		sse.Mu.Unlock()
		log.Printf("SSE connection closed for session: %s", sessionID)
	}()

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.String(http.StatusInternalServerError, "Streaming unsupported!")
		return
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case msg, ok := <-messageChan:
			if !ok {
				return false
			}
			c.Writer.Write([]byte("data: " + msg + "\n\n"))
			flusher.Flush()
			return true
		case <-c.Request.Context().Done():
			log.Println("context done:", c.Request.Context().Err())
			return false
		case <-doneChan:
			log.Printf("Done signal received for session: %s", sessionID)
			return false
		}
	})
}
