package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kamilio/song-builder-sub001/internal/adapter/llm"
	"github.com/kamilio/song-builder-sub001/internal/conversation"
	"github.com/kamilio/song-builder-sub001/internal/domain"
)

const lyricsSystemPrompt = `You are a songwriting assistant. Given the conversation so far, write the next version of the song. Respond with a JSON object with the keys "title", "style", "commentary", "body" and "duration" (seconds). The body uses [Verse]/[Chorus] section markers.`

// lyricsPayload is the JSON shape the model is asked to produce.
type lyricsPayload struct {
	Title      string `json:"title"`
	Style      string `json:"style"`
	Commentary string `json:"commentary"`
	Body       string `json:"body"`
	Duration   int    `json:"duration"`
}

// SubmitResult pairs the persisted user message with the assistant reply
// generated for it.
type SubmitResult struct {
	UserMessage      *domain.Message `json:"userMessage"`
	AssistantMessage *domain.Message `json:"assistantMessage"`
}

func (s *Service) GetMessages(ctx context.Context) ([]domain.Message, error) {
	messages, err := s.repo.ListMessages(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messages: %w", err)
	}
	return messages, nil
}

func (s *Service) GetMessage(ctx context.Context, id string) (*domain.Message, error) {
	msg, err := s.repo.GetMessage(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get message: %w", err)
	}
	return msg, nil
}

// SubmitMessage appends a user message under parentID (nil starts a new
// root) and asks the LLM for the assistant reply. Both messages are
// persisted; the assistant message becomes a child of the user message.
func (s *Service) SubmitMessage(ctx context.Context, parentID *string, content string) (*SubmitResult, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("content is required")
	}
	if parentID != nil {
		parent, err := s.repo.GetMessage(ctx, *parentID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve parent: %w", err)
		}
		if parent == nil {
			return nil, fmt.Errorf("parent message %s: %w", *parentID, ErrNotFound)
		}
	}

	userMsg := &domain.Message{
		Role:     domain.RoleUser,
		Content:  content,
		ParentID: parentID,
	}
	if err := s.repo.CreateMessage(ctx, userMsg); err != nil {
		return nil, fmt.Errorf("failed to create message: %w", s.notifyCapacity(err))
	}

	reply, err := s.generateReply(ctx, userMsg.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate reply: %w", err)
	}

	assistantMsg := &domain.Message{
		Role:       domain.RoleAssistant,
		Content:    reply.Commentary,
		ParentID:   &userMsg.ID,
		Title:      reply.Title,
		Style:      reply.Style,
		Commentary: reply.Commentary,
		Body:       reply.Body,
		Duration:   reply.Duration,
	}
	if err := s.repo.CreateMessage(ctx, assistantMsg); err != nil {
		return nil, fmt.Errorf("failed to create assistant message: %w", s.notifyCapacity(err))
	}

	s.publish(domain.EventTypeMessageCreated, map[string]string{
		"userMessageId":      userMsg.ID,
		"assistantMessageId": assistantMsg.ID,
	})

	return &SubmitResult{UserMessage: userMsg, AssistantMessage: assistantMsg}, nil
}

// generateReply builds the root-to-leaf prompt chain for the message and
// runs one chat completion against it.
func (s *Service) generateReply(ctx context.Context, messageID string) (*lyricsPayload, error) {
	all, err := s.repo.AllMessages(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load conversation: %w", err)
	}
	chain := conversation.Ancestors(all, messageID)
	if chain == nil {
		return nil, fmt.Errorf("message not found: %s", messageID)
	}

	chatMessages := make([]llm.ChatMessage, 0, len(chain)+1)
	chatMessages = append(chatMessages, llm.ChatMessage{Role: "system", Content: lyricsSystemPrompt})
	for _, m := range chain {
		content := m.Content
		if m.Role == domain.RoleAssistant && m.Body != "" {
			content = m.Body
		}
		chatMessages = append(chatMessages, llm.ChatMessage{Role: string(m.Role), Content: content})
	}

	resp, err := s.llmClient.CreateChatCompletion(ctx, &llm.ChatCompletionRequest{
		Model:          s.config.LLMModel,
		Messages:       chatMessages,
		ResponseFormat: map[string]interface{}{"type": "json_object"},
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message == nil {
		return nil, fmt.Errorf("empty completion response")
	}

	content := resp.Choices[0].Message.Content
	var payload lyricsPayload
	if err := json.Unmarshal([]byte(content), &payload); err != nil || payload.Body == "" {
		// Not the shape we asked for; keep the raw text as the body so
		// nothing the model said is lost.
		payload = lyricsPayload{Body: content}
	}
	return &payload, nil
}

// EditMessage applies an inline field edit. Returns nil when the message
// is unknown.
func (s *Service) EditMessage(ctx context.Context, id string, edit domain.MessageEdit) (*domain.Message, error) {
	msg, err := s.repo.UpdateMessage(ctx, id, edit)
	if err != nil {
		return nil, fmt.Errorf("failed to update message: %w", s.notifyCapacity(err))
	}
	if msg != nil {
		s.publish(domain.EventTypeMessageUpdated, map[string]string{"messageId": id})
	}
	return msg, nil
}

// DeleteMessage soft-deletes a message. The node stays in the tree so
// descendants keep their ancestry.
func (s *Service) DeleteMessage(ctx context.Context, id string) (*domain.Message, error) {
	msg, err := s.repo.SoftDeleteMessage(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete message: %w", s.notifyCapacity(err))
	}
	return msg, nil
}

// Ancestors returns the root-first chain ending at id, nil when unknown.
func (s *Service) Ancestors(ctx context.Context, id string) ([]domain.Message, error) {
	all, err := s.repo.AllMessages(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load conversation: %w", err)
	}
	return conversation.Ancestors(all, id), nil
}

// LatestLeaf returns the newest leaf in the subtree rooted at id.
func (s *Service) LatestLeaf(ctx context.Context, id string) (*domain.Message, error) {
	all, err := s.repo.AllMessages(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load conversation: %w", err)
	}
	return conversation.LatestLeaf(all, id), nil
}

// IsCheckpoint reports whether the message has a strictly newer
// descendant leaf, i.e. the UI is viewing a non-latest node.
func (s *Service) IsCheckpoint(ctx context.Context, id string) (bool, error) {
	all, err := s.repo.AllMessages(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to load conversation: %w", err)
	}
	return conversation.IsCheckpoint(all, id), nil
}
