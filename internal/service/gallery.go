package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/kamilio/song-builder-sub001/internal/domain"
)

func (s *Service) CreateSession(ctx context.Context, title string) (*domain.Session, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("title is required")
	}
	session := &domain.Session{Title: title}
	if err := s.repo.CreateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", s.notifyCapacity(err))
	}
	return session, nil
}

func (s *Service) GetSessions(ctx context.Context) ([]domain.Session, error) {
	sessions, err := s.repo.ListSessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get sessions: %w", err)
	}
	return sessions, nil
}

func (s *Service) GetSession(ctx context.Context, id string) (*domain.Session, error) {
	session, err := s.repo.GetSession(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return session, nil
}

func (s *Service) DeleteSession(ctx context.Context, id string) (*domain.Session, error) {
	session, err := s.repo.SoftDeleteSession(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete session: %w", s.notifyCapacity(err))
	}
	return session, nil
}

// GenerationResult pairs a generation step with the items it produced.
type GenerationResult struct {
	Generation *domain.Generation `json:"generation"`
	Items      []domain.Item      `json:"items"`
}

// CreateGeneration records a prompt step in a session together with the
// image URLs it produced. The step number is assigned by the repository.
func (s *Service) CreateGeneration(ctx context.Context, sessionID, prompt string, urls []string) (*GenerationResult, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, fmt.Errorf("prompt is required")
	}
	session, err := s.repo.GetSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve session: %w", err)
	}
	if session == nil {
		return nil, fmt.Errorf("session %s: %w", sessionID, ErrNotFound)
	}

	gen := &domain.Generation{SessionID: sessionID, Prompt: prompt}
	if err := s.repo.CreateGeneration(ctx, gen); err != nil {
		return nil, fmt.Errorf("failed to create generation: %w", s.notifyCapacity(err))
	}
	items, err := s.repo.CreateItems(ctx, gen.ID, urls)
	if err != nil {
		return nil, fmt.Errorf("failed to create items: %w", s.notifyCapacity(err))
	}

	s.publish(domain.EventTypeGenerationCreated, map[string]any{
		"sessionId":    sessionID,
		"generationId": gen.ID,
		"stepId":       gen.StepID,
	})
	return &GenerationResult{Generation: gen, Items: items}, nil
}

func (s *Service) GenerationsForSession(ctx context.Context, sessionID string) ([]domain.Generation, error) {
	gens, err := s.repo.GenerationsForSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get generations: %w", err)
	}
	return gens, nil
}

func (s *Service) ItemsForGeneration(ctx context.Context, generationID string) ([]domain.Item, error) {
	items, err := s.repo.ItemsForGeneration(ctx, generationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get items: %w", err)
	}
	return items, nil
}

func (s *Service) PinItem(ctx context.Context, id string, pinned bool) (*domain.Item, error) {
	item, err := s.repo.SetItemPinned(ctx, id, pinned)
	if err != nil {
		return nil, fmt.Errorf("failed to pin item: %w", s.notifyCapacity(err))
	}
	return item, nil
}

func (s *Service) DeleteItem(ctx context.Context, id string) (*domain.Item, error) {
	item, err := s.repo.SoftDeleteItem(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete item: %w", s.notifyCapacity(err))
	}
	return item, nil
}
