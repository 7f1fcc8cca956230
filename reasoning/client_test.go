package reasoning

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(url string) *Client {
	return &Client{
		baseURL: url,
		http:    &http.Client{Timeout: 5 * time.Second},
		stream:  &http.Client{Timeout: 5 * time.Second},
	}
}

func TestInitClientTimeouts(t *testing.T) {
	t.Setenv("REASONING_ENGINE_URL", "http://engine.local")

	require.NoError(t, InitClient())

	assert.Equal(t, 120*time.Second, Engine.http.Timeout)
	// The streaming client must not cap the stream's lifetime; long agent
	// runs are cancelled through the request context only.
	assert.Zero(t, Engine.stream.Timeout)
}

func TestCreateSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/apps/travel_concierge/users/user-1/sessions", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{"id": "remote-123"})
	}))
	defer server.Close()

	id, err := testClient(server.URL).CreateSession(context.Background(), "travel_concierge", "user-1")
	require.NoError(t, err)
	assert.Equal(t, "remote-123", id)
}

func TestCreateSessionUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := testClient(server.URL).CreateSession(context.Background(), "travel_concierge", "user-1")
	assert.Error(t, err)
}

func TestListApps(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/list-apps", r.URL.Path)
		json.NewEncoder(w).Encode([]string{"expense_agent", "travel_concierge"})
	}))
	defer server.Close()

	apps, err := testClient(server.URL).ListApps(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"expense_agent", "travel_concierge"}, apps)
}

func TestRunSSE(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		w.Write([]byte("data: {\"message\":\"one\"}\n\n"))
		w.Write([]byte(": comment line ignored\n"))
		w.Write([]byte("data: {\"message\":\"two\"}\n\n"))
	}))
	defer server.Close()

	var got []string
	err := testClient(server.URL).RunSSE(context.Background(), "/run_sse", json.RawMessage(`{}`),
		func(data []byte) error {
			got = append(got, string(data))
			return nil
		})
	require.NoError(t, err)
	assert.Equal(t, []string{`{"message":"one"}`, `{"message":"two"}`}, got)
}
