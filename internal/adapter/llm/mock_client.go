package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// MockClient is a deterministic LLMClient for tests and offline runs.
type MockClient struct{}

// NewMockClient creates a new mock LLM client.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// CreateChatCompletion returns a canned response. When the request
// declares tools the mock answers with a single update_script_settings
// tool call; otherwise it returns a lyrics payload as JSON content, the
// shape the conversation service parses from real completions.
func (m *MockClient) CreateChatCompletion(ctx context.Context, req *ChatCompletionRequest) (*ChatCompletionResponse, error) {
	prompt := ""
	for i := len(req.Messages) - 1; i >= 0; i-- {
		if req.Messages[i].Role == "user" {
			prompt = req.Messages[i].Content
			break
		}
	}

	message := &ChatMessage{Role: "assistant"}
	if len(req.Tools) > 0 {
		args, _ := json.Marshal(map[string]any{"globalPrompt": prompt})
		message.ToolCalls = []ToolCall{
			{
				ID:   fmt.Sprintf("call_mock_%d", time.Now().UnixNano()),
				Type: "function",
				Function: ToolCallFunction{
					Name:      "update_script_settings",
					Arguments: string(args),
				},
			},
		}
	} else {
		payload, _ := json.Marshal(map[string]any{
			"title":      "Mock Song",
			"style":      "synth pop",
			"commentary": "A placeholder arrangement.",
			"body":       "[Verse]\n" + prompt + "\n[Chorus]\nla la la",
			"duration":   120,
		})
		message.Content = string(payload)
	}

	return &ChatCompletionResponse{
		ID:      fmt.Sprintf("mock-chatcmpl-%d", time.Now().UnixNano()),
		Object:  "chat.completion",
		Created: time.Now().Unix(),
		Model:   req.Model,
		Choices: []Choice{
			{Index: 0, Message: message, FinishReason: "stop"},
		},
		Usage: &Usage{PromptTokens: len(prompt) / 4, CompletionTokens: 32, TotalTokens: len(prompt)/4 + 32},
	}, nil
}
