package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/kamilio/song-builder-sub001/internal/adapter/llm"
	"github.com/kamilio/song-builder-sub001/internal/domain"
	"github.com/kamilio/song-builder-sub001/internal/scripttools"
	"github.com/kamilio/song-builder-sub001/policy"
)

const scriptSystemPrompt = `You are a video script editor. Modify the script below using the provided tools only. Issue one tool call per edit; do not answer in prose.`

func (s *Service) CreateScript(ctx context.Context, title string) (*domain.Script, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("title is required")
	}
	script := &domain.Script{Title: title}
	if err := s.repo.CreateScript(ctx, script); err != nil {
		return nil, fmt.Errorf("failed to create script: %w", s.notifyCapacity(err))
	}
	return script, nil
}

func (s *Service) GetScripts(ctx context.Context) ([]domain.Script, error) {
	scripts, err := s.repo.ListScripts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get scripts: %w", err)
	}
	return scripts, nil
}

func (s *Service) GetScript(ctx context.Context, id string) (*domain.Script, error) {
	script, err := s.repo.GetScript(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get script: %w", err)
	}
	return script, nil
}

func (s *Service) DeleteScript(ctx context.Context, id string) (bool, error) {
	existed, err := s.repo.DeleteScript(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete script: %w", s.notifyCapacity(err))
	}
	return existed, nil
}

// ApplyToolCalls runs a sequence of tool calls against a script. Each
// call is first checked against the policy engine, then handed to the
// mutation engine; a call that validates produces a new document and the
// next call runs against it. Invalid calls leave the document untouched.
// The script is persisted once, and only if at least one call applied.
func (s *Service) ApplyToolCalls(ctx context.Context, scriptID string, calls []domain.ToolCall) (*domain.Script, []domain.ToolCallResult, error) {
	script, err := s.repo.GetScript(ctx, scriptID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get script: %w", err)
	}
	if script == nil {
		return nil, nil, fmt.Errorf("script %s: %w", scriptID, ErrNotFound)
	}

	current := script
	results := make([]domain.ToolCallResult, 0, len(calls))
	for _, call := range calls {
		var args map[string]any
		if len(call.Args) > 0 {
			if err := json.Unmarshal(call.Args, &args); err != nil {
				log.Printf("WARN: tool call %s has malformed args: %v", call.Name, err)
				args = nil
			}
		}

		decision, reason, err := s.policyEngine.Evaluate(ctx, map[string]any{
			"tool_name": call.Name,
			"args":      args,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("policy evaluation failed: %w", err)
		}
		if decision == policy.DecisionBlock {
			results = append(results, domain.ToolCallResult{
				Name:   call.Name,
				Status: domain.ToolCallBlocked,
				Reason: reason,
			})
			continue
		}

		next := scripttools.Apply(current, call.Name, args)
		if next == current {
			results = append(results, domain.ToolCallResult{
				Name:   call.Name,
				Status: domain.ToolCallRejected,
				Reason: "unknown tool or invalid arguments",
			})
			continue
		}
		current = next
		results = append(results, domain.ToolCallResult{Name: call.Name, Status: domain.ToolCallApplied})
	}

	if current == script {
		return script, results, nil
	}

	saved, err := s.repo.SaveScript(ctx, current)
	if err != nil {
		return nil, results, fmt.Errorf("failed to save script: %w", s.notifyCapacity(err))
	}
	s.publish(domain.EventTypeScriptUpdated, map[string]string{"scriptId": scriptID})
	return saved, results, nil
}

// GenerateScriptEdits asks the LLM to edit a script with the mutation
// tools and applies whatever calls it returns.
func (s *Service) GenerateScriptEdits(ctx context.Context, scriptID, prompt string) (*domain.Script, []domain.ToolCallResult, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, nil, fmt.Errorf("prompt is required")
	}
	script, err := s.repo.GetScript(ctx, scriptID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get script: %w", err)
	}
	if script == nil {
		return nil, nil, fmt.Errorf("script %s: %w", scriptID, ErrNotFound)
	}

	scriptJSON, err := json.Marshal(script)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode script: %w", err)
	}

	resp, err := s.llmClient.CreateChatCompletion(ctx, &llm.ChatCompletionRequest{
		Model: s.config.LLMModel,
		Messages: []llm.ChatMessage{
			{Role: "system", Content: scriptSystemPrompt + "\n\nCurrent script:\n" + string(scriptJSON)},
			{Role: "user", Content: prompt},
		},
		Tools: scriptToolDefs(),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate edits: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message == nil {
		return nil, nil, fmt.Errorf("empty completion response")
	}

	toolCalls := resp.Choices[0].Message.ToolCalls
	calls := make([]domain.ToolCall, 0, len(toolCalls))
	for _, tc := range toolCalls {
		calls = append(calls, domain.ToolCall{
			ID:   tc.ID,
			Name: tc.Function.Name,
			Args: json.RawMessage(tc.Function.Arguments),
		})
	}
	return s.ApplyToolCalls(ctx, scriptID, calls)
}

// scriptToolDefs describes the mutation tools in OpenAI function form.
func scriptToolDefs() []llm.Tool {
	str := map[string]any{"type": "string"}
	boolean := map[string]any{"type": "boolean"}
	obj := func(props map[string]any, required ...string) map[string]any {
		schema := map[string]any{"type": "object", "properties": props}
		if len(required) > 0 {
			schema["required"] = required
		}
		return schema
	}

	defs := []llm.ToolFunction{
		{
			Name:        "update_shot_prompt",
			Description: "Replace the visual prompt of a shot.",
			Parameters:  obj(map[string]any{"shotId": str, "prompt": str}, "shotId", "prompt"),
		},
		{
			Name:        "update_shot_narration",
			Description: "Update a shot's narration text, enabled flag or audio source.",
			Parameters: obj(map[string]any{
				"shotId":      str,
				"text":        str,
				"enabled":     boolean,
				"audioSource": map[string]any{"type": "string", "enum": []string{"tts", "upload", "none"}},
			}, "shotId"),
		},
		{
			Name:        "update_shot_subtitles",
			Description: "Toggle subtitles on a shot.",
			Parameters:  obj(map[string]any{"shotId": str, "subtitles": boolean}, "shotId", "subtitles"),
		},
		{
			Name:        "add_shot",
			Description: "Insert a new shot, after afterShotId when given, else at the end.",
			Parameters:  obj(map[string]any{"title": str, "prompt": str, "afterShotId": str}, "title", "prompt"),
		},
		{
			Name:        "delete_shot",
			Description: "Remove a shot from the script.",
			Parameters:  obj(map[string]any{"shotId": str}, "shotId"),
		},
		{
			Name:        "reorder_shots",
			Description: "Reorder all shots. shotIds must list every existing shot id exactly once.",
			Parameters: obj(map[string]any{
				"shotIds": map[string]any{"type": "array", "items": str},
			}, "shotIds"),
		},
		{
			Name:        "update_script_settings",
			Description: "Update script-wide settings such as the global prompt or narration defaults.",
			Parameters: obj(map[string]any{
				"narrationEnabled":   boolean,
				"subtitles":          boolean,
				"defaultAudioSource": map[string]any{"type": "string", "enum": []string{"tts", "upload", "none"}},
				"defaultDuration":    map[string]any{"type": "number"},
				"globalPrompt":       str,
			}),
		},
	}

	tools := make([]llm.Tool, len(defs))
	for i, fn := range defs {
		tools[i] = llm.Tool{Type: "function", Function: fn}
	}
	return tools
}
