// Package models defines the data structures shared between the tracefire
// service and its clients.
package models

import "encoding/json"

// ModelCall is one recorded model invocation by an agent: an LLM call, a
// transcription, an image generation, and so on. Entries are immutable once
// fetched; the only local change is removal after a successful delete.
type ModelCall struct {
	ID        string        `json:"id,omitempty"`
	Type      string        `json:"type"`
	CreatedAt int64         `json:"createdAt"` // epoch millis
	Message   string        `json:"message,omitempty"`
	Details   string        `json:"details,omitempty"`
	RoomID    string        `json:"roomId,omitempty"`
	Body      ModelCallBody `json:"body"`
}

// ModelCallBody carries the invocation payload. Params and Response are
// arbitrary JSON as produced by the agent runtime.
type ModelCallBody struct {
	ModelType string          `json:"modelType"`
	ModelKey  string          `json:"modelKey,omitempty"`
	Params    json.RawMessage `json:"params,omitempty"`
	Response  json.RawMessage `json:"response,omitempty"`
	Usage     *TokenUsage     `json:"usage,omitempty"`
}

// TokenUsage is the token breakdown for a single invocation, when the
// provider reported one.
type TokenUsage struct {
	Prompt     int64 `json:"prompt"`
	Completion int64 `json:"completion"`
	Total      int64 `json:"total"`
}

// AgentStats aggregates an agent's recorded activity per model.
type AgentStats struct {
	AgentID     string       `json:"agentId"`
	TotalCalls  int64        `json:"totalCalls"`
	TotalTokens int64        `json:"totalTokens"`
	Models      []ModelStats `json:"models"`
}

// ModelStats summarises recorded calls for one model key.
type ModelStats struct {
	ModelKey    string `json:"modelKey"`
	ModelType   string `json:"modelType"`
	Calls       int64  `json:"calls"`
	TotalTokens int64  `json:"totalTokens"`
}
