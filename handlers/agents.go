package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"travel-concierge/api/agent"

	"github.com/gin-gonic/gin"
)

// HandleListAgents returns every registered agent configuration.
func HandleListAgents(c *gin.Context) {
	c.JSON(http.StatusOK, agent.List())
}

// HandleGetAgent returns one agent's configuration by name, along with the
// date anchor the runtime prepends to the instruction.
func HandleGetAgent(c *gin.Context) {
	a, err := agent.Lookup(c.Param("name"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"agent":         a,
		"system_prompt": agent.DateSystemPrompt(),
	})
}

// HandleInvokeTool is the callback surface the hosted runtime uses to execute
// a tool. The request body is passed to the handler as raw JSON arguments.
func HandleInvokeTool(c *gin.Context) {
	a, err := agent.Lookup(c.Param("name"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	tool, ok := a.FindTool(c.Param("tool"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown tool " + c.Param("tool")})
		return
	}

	args, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(args) == 0 {
		args = []byte("{}")
	}

	result, err := tool.Handler(c.Request.Context(), json.RawMessage(args))
	if err != nil {
		log.Printf("Error invoking tool %s/%s: %v", a.Name, tool.Name, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}
