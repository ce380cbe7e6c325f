// Package llm provides the client abstraction for the generation
// backend. The studio core never talks to the network itself; it hands
// a chat completion request to this interface and consumes the returned
// content or tool calls after the call resolves.
package llm

import "context"

// LLMClient defines the interface for LLM API operations.
type LLMClient interface {
	// CreateChatCompletion sends a chat completion request.
	CreateChatCompletion(ctx context.Context, req *ChatCompletionRequest) (*ChatCompletionResponse, error)
}

// Ensure both implementations satisfy the interface.
var (
	_ LLMClient = (*Client)(nil)
	_ LLMClient = (*MockClient)(nil)
)
