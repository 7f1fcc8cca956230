package agent

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	agents := List()
	require.Len(t, agents, 4)

	// Sorted by name.
	names := make([]string, 0, len(agents))
	for _, a := range agents {
		names = append(names, a.Name)
	}
	assert.Equal(t, []string{"budget_optimizer", "expense_agent", "packing_concierge", "travel_concierge"}, names)

	_, err := Lookup("expense_agent")
	assert.NoError(t, err)

	_, err = Lookup("nonexistent")
	assert.Error(t, err)
}

func TestSubAgentToolsVisible(t *testing.T) {
	optimizer, err := Lookup("budget_optimizer")
	require.NoError(t, err)

	// The coordinator has no tools of its own, only sub-agent tools.
	assert.Empty(t, optimizer.Tools)
	assert.NotEmpty(t, optimizer.AllTools())

	tool, ok := optimizer.FindTool("compare_budget_vs_actual")
	require.True(t, ok)
	assert.NotNil(t, tool.Handler)

	_, ok = optimizer.FindTool("save_itinerary")
	assert.False(t, ok)
}

func TestExpenseAgentToolSurface(t *testing.T) {
	a, err := Lookup("expense_agent")
	require.NoError(t, err)
	assert.Len(t, a.Tools, 13)

	for _, name := range []string{"add_expense", "get_expense_summary", "update_budget"} {
		_, ok := a.FindTool(name)
		assert.True(t, ok, "missing tool %s", name)
	}
}

func TestToolHandlersHiddenFromJSON(t *testing.T) {
	a, err := Lookup("packing_concierge")
	require.NoError(t, err)

	data, err := json.Marshal(a)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "Handler")
	assert.Contains(t, string(data), "analyze_packing_efficiency")
}

func TestPureToolInvocation(t *testing.T) {
	a, err := Lookup("packing_concierge")
	require.NoError(t, err)

	tool, ok := a.FindTool("analyze_packing_efficiency")
	require.True(t, ok)

	args := json.RawMessage(`{"items": ["t-shirt", "passport"], "trip_duration": 2}`)
	result, err := tool.Handler(context.Background(), args)
	require.NoError(t, err)
	assert.NotNil(t, result)

	_, err = tool.Handler(context.Background(), json.RawMessage(`{"items": []}`))
	assert.Error(t, err)
}

func TestDateSystemPrompt(t *testing.T) {
	prompt := DateSystemPrompt()
	assert.Contains(t, prompt, time.Now().Format("2006-01-02"))
}
