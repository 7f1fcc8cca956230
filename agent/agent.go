// Package agent declares the conversational agents as configuration: a model
// name, an instruction prompt, and a list of callable tools. The reasoning
// loop itself runs on the hosted engine; this package only registers what the
// engine may call back into.
package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

// ToolFunc executes one tool call with JSON-encoded arguments.
type ToolFunc func(ctx context.Context, args json.RawMessage) (any, error)

type Tool struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Handler     ToolFunc `json:"-"`
}

type Agent struct {
	Name        string   `json:"name"`
	Model       string   `json:"model"`
	Description string   `json:"description"`
	Instruction string   `json:"instruction"`
	Tools       []Tool   `json:"tools"`
	SubAgents   []*Agent `json:"sub_agents,omitempty"`
}

// AllTools flattens the agent's own tools with those of its sub-agents.
func (a *Agent) AllTools() []Tool {
	tools := append([]Tool{}, a.Tools...)
	for _, sub := range a.SubAgents {
		tools = append(tools, sub.AllTools()...)
	}
	return tools
}

// FindTool resolves a tool by name across the agent and its sub-agents.
func (a *Agent) FindTool(name string) (Tool, bool) {
	for _, tool := range a.AllTools() {
		if tool.Name == name {
			return tool, true
		}
	}
	return Tool{}, false
}

var registry = map[string]*Agent{}

func register(a *Agent) *Agent {
	registry[a.Name] = a
	return a
}

// Lookup returns a registered agent by name.
func Lookup(name string) (*Agent, error) {
	a, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown agent %q", name)
	}
	return a, nil
}

// List returns all registered agents, sorted by name.
func List() []*Agent {
	agents := make([]*Agent, 0, len(registry))
	for _, a := range registry {
		agents = append(agents, a)
	}
	sort.Slice(agents, func(i, j int) bool { return agents[i].Name < agents[j].Name })
	return agents
}

// DateSystemPrompt anchors the model on the current date so relative dates
// ("yesterday", "next weekend") resolve correctly.
func DateSystemPrompt() string {
	return "Today's date is " + time.Now().Format("2006-01-02") +
		". Please use this date for all finding relative other dates. Example: finding yesterday, tomorrow, weekend."
}
