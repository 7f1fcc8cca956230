package handlers

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConnectionRegistryConcurrentAccess(t *testing.T) {
	const users = 50

	var wg sync.WaitGroup
	for i := 0; i < users; i++ {
		userID := fmt.Sprintf("user-%d", i)
		wg.Add(2)
		go func() {
			defer wg.Done()
			storeConnection(userID, nil)
		}()
		go func() {
			defer wg.Done()
			dropConnection(userID)
		}()
	}
	wg.Wait()

	// Drain whatever the drops raced past; the registry must end empty.
	for i := 0; i < users; i++ {
		dropConnection(fmt.Sprintf("user-%d", i))
	}

	connMu.Lock()
	defer connMu.Unlock()
	assert.Empty(t, connections)
}

func TestDropConnectionMissingUser(t *testing.T) {
	conn, ok := dropConnection("nobody")
	assert.False(t, ok)
	assert.Nil(t, conn)
}
