package domain

import "encoding/json"

// ToolCall is a named, argument-carrying instruction issued by the LLM
// and applied to a script via the mutation engine.
type ToolCall struct {
	ID   string          `json:"id,omitempty"`
	Name string          `json:"name"`
	Args json.RawMessage `json:"args"`
}

// ToolCallStatus records the outcome of one tool call in a sequence.
type ToolCallStatus string

const (
	// ToolCallApplied: the call validated and produced a new document.
	ToolCallApplied ToolCallStatus = "APPLIED"
	// ToolCallRejected: unknown tool or invalid arguments; the document
	// was returned unchanged.
	ToolCallRejected ToolCallStatus = "REJECTED"
	// ToolCallBlocked: the policy engine vetoed the call before it
	// reached the mutation engine.
	ToolCallBlocked ToolCallStatus = "BLOCKED"
)

// ToolCallResult is the per-call outcome of ApplyToolCalls.
type ToolCallResult struct {
	Name   string         `json:"name"`
	Status ToolCallStatus `json:"status"`
	Reason string         `json:"reason,omitempty"`
}
