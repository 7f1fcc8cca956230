// Package reasoning is the HTTP client for the hosted reasoning engine that
// actually runs the agents. This service only relays: it creates remote
// sessions, forwards user queries, and streams the engine's SSE events back.
package reasoning

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"travel-concierge/api/logger"

	"go.uber.org/zap"
)

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	// stream carries SSE requests. It has no client-level timeout: agent
	// runs can stream well past two minutes, so cancellation comes from
	// the request context instead.
	stream *http.Client
}

// Engine is the process-wide client, initialized once in main.
var Engine *Client

func InitClient() error {
	baseURL := os.Getenv("REASONING_ENGINE_URL")
	if baseURL == "" {
		return fmt.Errorf("REASONING_ENGINE_URL environment variable not set")
	}
	Engine = &Client{
		baseURL: baseURL,
		apiKey:  os.Getenv("REASONING_ENGINE_API_KEY"),
		http:    &http.Client{Timeout: 120 * time.Second},
		stream:  &http.Client{},
	}
	logger.Get().Info("reasoning engine client initialized",
		zap.String("base_url", baseURL))
	return nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var buf io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		buf = bytes.NewBuffer(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	return req, nil
}

// CreateSession opens a session on the engine for the given agent and returns
// the engine's session id.
func (c *Client) CreateSession(ctx context.Context, agentType, userID string) (string, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/apps/"+agentType+"/users/"+userID+"/sessions", map[string]any{})
	if err != nil {
		return "", err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to create remote session: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("reasoning engine returned %d: %s", resp.StatusCode, string(body))
	}

	var created struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return "", fmt.Errorf("failed to decode session response: %w", err)
	}
	if created.ID == "" {
		return "", fmt.Errorf("reasoning engine returned no session id")
	}
	return created.ID, nil
}

// ListApps returns the agent app names the engine hosts.
func (c *Client) ListApps(ctx context.Context) ([]string, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/list-apps", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to list apps: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("reasoning engine returned %d: %s", resp.StatusCode, string(body))
	}

	var apps []string
	if err := json.NewDecoder(resp.Body).Decode(&apps); err != nil {
		return nil, fmt.Errorf("failed to decode app list: %w", err)
	}
	return apps, nil
}

// Run forwards a non-streaming run request and returns the engine's response
// body verbatim.
func (c *Client) Run(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/run", payload)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to run query: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("reasoning engine returned %d: %s", resp.StatusCode, string(body))
	}
	return body, nil
}

// RunSSE forwards a streaming run request and calls emit once per SSE data
// line, verbatim. It returns when the upstream stream ends or emit fails.
func (c *Client) RunSSE(ctx context.Context, path string, payload json.RawMessage, emit func(data []byte) error) error {
	req, err := c.newRequest(ctx, http.MethodPost, path, payload)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "text/event-stream")

	resp, err := c.stream.Do(req)
	if err != nil {
		return fmt.Errorf("failed to open stream: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("reasoning engine returned %d: %s", resp.StatusCode, string(body))
	}

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if !bytes.HasPrefix(line, []byte("data: ")) {
			continue
		}
		data := bytes.TrimPrefix(line, []byte("data: "))
		if err := emit(append([]byte(nil), data...)); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// StreamQuery runs one user message against an existing remote session,
// streaming SSE data lines through emit.
func (c *Client) StreamQuery(ctx context.Context, agentType, userID, remoteSessionID, message string, emit func(data []byte) error) error {
	payload, err := json.Marshal(map[string]any{
		"app_name":   agentType,
		"user_id":    userID,
		"session_id": remoteSessionID,
		"new_message": map[string]any{
			"role":  "user",
			"parts": []map[string]string{{"text": message}},
		},
		"streaming": true,
	})
	if err != nil {
		return err
	}
	return c.RunSSE(ctx, "/run_sse", payload, emit)
}
