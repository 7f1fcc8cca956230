package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"

	"travel-concierge/api/analysis"
	"travel-concierge/api/mongodb"
	"travel-concierge/api/reasoning"

	"github.com/gin-gonic/gin"
)

// HandleListApps proxies the reasoning engine's app list.
func HandleListApps(c *gin.Context) {
	apps, err := reasoning.Engine.ListApps(c.Request.Context())
	if err != nil {
		log.Printf("Error listing apps: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, apps)
}

// HandleRun forwards a non-streaming run request to the reasoning engine and
// returns its response verbatim.
func HandleRun(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := reasoning.Engine.Run(c.Request.Context(), payload)
	if err != nil {
		log.Printf("Error running query: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "application/json", result)
}

// HandleRunSSE forwards a streaming run request, relaying SSE events back as
// they arrive.
func HandleRunSSE(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.String(http.StatusInternalServerError, "Streaming unsupported!")
		return
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	err = reasoning.Engine.RunSSE(c.Request.Context(), "/run_sse", json.RawMessage(payload),
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
	if err != nil {
		log.Printf("Error relaying SSE stream: %v", err)
		c.Writer.Write([]byte(`data: {"error": true, "message": "stream failed"}` + "\n\n"))
		flusher.Flush()
	}
}

// HandleDashboard aggregates every recorded expense into the dashboard
// payload: grand total, per-category sums, and a capped preview list.
func HandleDashboard(c *gin.Context) {
	expenses, err := mongodb.GetExpenses(c.Request.Context(), mongodb.ExpenseFilter{})
	if err != nil {
		log.Printf("Error fetching expenses for dashboard: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, analysis.BuildDashboard(expenses, "", ""))
}

// HandleDashboardRange is the dashboard restricted to an inclusive date range.
// Both bounds are required and must be YYYY-MM-DD.
func HandleDashboardRange(c *gin.Context) {
	startDate := c.Query("start_date")
	endDate := c.Query("end_date")
	if startDate == "" || endDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start_date and end_date are required"})
		return
	}
	if _, err := time.Parse("2006-01-02", startDate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date, expected YYYY-MM-DD"})
		return
	}
	if _, err := time.Parse("2006-01-02", endDate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end_date, expected YYYY-MM-DD"})
		return
	}

	expenses, err := mongodb.GetExpenses(c.Request.Context(), mongodb.ExpenseFilter{
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		log.Printf("Error fetching expenses for dashboard range: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, analysis.BuildDashboard(expenses, startDate, endDate))
}
