package handlers

import (
	"log"
	"net/http"
	"sync"
	"time"

	"travel-concierge/api/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins in development
	},
}

var (
	connections = make(map[string]*websocket.Conn)
	connMu      sync.Mutex
)

func storeConnection(userID string, conn *websocket.Conn) {
	connMu.Lock()
	connections[userID] = conn
	connMu.Unlock()
}

// dropConnection removes the user's connection from the registry and returns
// it for closing by the caller.
func dropConnection(userID string) (*websocket.Conn, bool) {
	connMu.Lock()
	defer connMu.Unlock()
	conn, ok := connections[userID]
	if ok {
		delete(connections, userID)
	}
	return conn, ok
}

// HandleCreateWebsocketConnection upgrades the request and tracks the
// connection per user so the relay can push agent output to it.
func HandleCreateWebsocketConnection(c *gin.Context) {
	user, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	claims, ok := user.(*models.UserClaims)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user claims"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade connection: %v", err)
		return
	}

	log.Printf("WebSocket connection established from %s", c.Request.RemoteAddr)
	storeConnection(claims.Sub, conn)

	go monitorConnection(claims.Sub, conn)
}

func HandleCloseWebsocketConnection(c *gin.Context) {
	claims, ok := userClaims(c)
	if !ok {
		return
	}

	if conn, exists := dropConnection(claims.Sub); exists {
		conn.Close()
	}
	c.JSON(http.StatusOK, gin.H{"message": "WebSocket connection closed"})
}

func monitorConnection(userID string, conn *websocket.Conn) {
	defer func() {
		conn.Close()
		dropConnection(userID)
		log.Printf("Connection closed for user %s", userID)
	}()

	for {
		err := conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		if err != nil {
			log.Printf("Error setting read deadline: %v", err)
			return
		}

		_, _, err = conn.ReadMessage()
		if err != nil {
			log.Printf("Connection error for user %s: %v", userID, err)
			return
		}
	}
}
