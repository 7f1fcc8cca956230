package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"travel-concierge/api/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestHandleDashboardRangeValidation(t *testing.T) {
	router := gin.New()
	router.GET("/api/expense/dashboard/range", HandleDashboardRange)

	cases := []struct {
		name  string
		query string
	}{
		{"missing both", ""},
		{"missing end", "?start_date=2025-03-01"},
		{"malformed start", "?start_date=bad&end_date=2025-03-31"},
		{"malformed end", "?start_date=2025-03-01&end_date=31-03-2025"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/expense/dashboard/range"+tc.query, nil)
			router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestHandleListAgents(t *testing.T) {
	router := gin.New()
	router.GET("/api/agents", HandleListAgents)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/agents", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var agents []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &agents))
	assert.Len(t, agents, 4)
}

func TestHandleGetAgent(t *testing.T) {
	router := gin.New()
	router.GET("/api/agents/:name", HandleGetAgent)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/agents/travel_concierge", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Agent struct {
			Name string `json:"name"`
		} `json:"agent"`
		SystemPrompt string `json:"system_prompt"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "travel_concierge", resp.Agent.Name)
	assert.Contains(t, resp.SystemPrompt, "Today's date is")

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/agents/unknown", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleInvokeToolPure(t *testing.T) {
	router := gin.New()
	router.POST("/api/agents/:name/tools/:tool", HandleInvokeTool)

	body := strings.NewReader(`{"items": ["t-shirt", "passport", "phone charger"], "trip_duration": 3}`)
	req := httptest.NewRequest(http.MethodPost, "/api/agents/packing_concierge/tools/analyze_packing_efficiency", body)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Result struct {
			TotalItems int `json:"total_items"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Result.TotalItems)
}

func TestHandleInvokeToolUnknown(t *testing.T) {
	router := gin.New()
	router.POST("/api/agents/:name/tools/:tool", HandleInvokeTool)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost,
		"/api/agents/packing_concierge/tools/no_such_tool", strings.NewReader("{}")))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost,
		"/api/agents/no_such_agent/tools/analyze_packing_efficiency", strings.NewReader("{}")))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestQueryEventPayload(t *testing.T) {
	session := &models.Session{ID: uuid.New(), UserID: "user-1", AgentType: "travel_concierge"}

	payload, err := queryEventPayload(session, "user-1", "plan a trip to Goa")
	require.NoError(t, err)

	var event models.AgentEvent
	require.NoError(t, json.Unmarshal(payload, &event))
	assert.Equal(t, session.ID.String(), event.SessionID)
	assert.Equal(t, "user-1", event.UserID)
	assert.Equal(t, "plan a trip to Goa", event.Text)
	assert.Equal(t, "UserMessage", event.Sender)
	assert.False(t, event.LastMessage)
	assert.InDelta(t, time.Now().Unix(), event.Timestamp, 5)
}

func TestHandleInvokeToolBadArgs(t *testing.T) {
	router := gin.New()
	router.POST("/api/agents/:name/tools/:tool", HandleInvokeTool)

	// Empty packing list is a handler error, surfaced as 500 with a JSON body.
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost,
		"/api/agents/packing_concierge/tools/analyze_packing_efficiency", strings.NewReader(`{"items": []}`)))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}
