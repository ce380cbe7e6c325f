package repository

import (
	"context"
	"time"

	"github.com/kamilio/song-builder-sub001/internal/domain"
)

// AllMessages returns every stored message including soft-deleted ones.
// Tree queries need the full forest; list views filter separately.
func (s *Store) AllMessages(ctx context.Context) ([]domain.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return readList[domain.Message](ctx, s.kv, keyMessages)
}

// ListMessages returns messages for list views, excluding soft-deleted
// nodes.
func (s *Store) ListMessages(ctx context.Context) ([]domain.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	messages, err := readList[domain.Message](ctx, s.kv, keyMessages)
	if err != nil {
		return nil, err
	}
	visible := make([]domain.Message, 0, len(messages))
	for _, m := range messages {
		if !m.Deleted {
			visible = append(visible, m)
		}
	}
	return visible, nil
}

// GetMessage returns the message with the given id, or nil when unknown.
func (s *Store) GetMessage(ctx context.Context, id string) (*domain.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	messages, err := readList[domain.Message](ctx, s.kv, keyMessages)
	if err != nil {
		return nil, err
	}
	for i := range messages {
		if messages[i].ID == id {
			return &messages[i], nil
		}
	}
	return nil, nil
}

// CreateMessage appends a message. The store assigns the id when empty
// and always assigns CreatedAt, strictly after every stored timestamp so
// that latest-leaf comparisons are never ambiguous.
func (s *Store) CreateMessage(ctx context.Context, m *domain.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	messages, err := readList[domain.Message](ctx, s.kv, keyMessages)
	if err != nil {
		return err
	}

	var latest time.Time
	for _, existing := range messages {
		if existing.CreatedAt.After(latest) {
			latest = existing.CreatedAt
		}
	}

	if m.ID == "" {
		m.ID = newID("msg")
	}
	m.CreatedAt = monotonicNow(latest)

	return writeList(ctx, s.kv, keyMessages, append(messages, *m))
}

// UpdateMessage applies an inline field edit. Returns the updated message
// or nil when the id is unknown.
func (s *Store) UpdateMessage(ctx context.Context, id string, edit domain.MessageEdit) (*domain.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	messages, err := readList[domain.Message](ctx, s.kv, keyMessages)
	if err != nil {
		return nil, err
	}
	for i := range messages {
		if messages[i].ID != id {
			continue
		}
		m := &messages[i]
		if edit.Content != nil {
			m.Content = *edit.Content
		}
		if edit.Title != nil {
			m.Title = *edit.Title
		}
		if edit.Style != nil {
			m.Style = *edit.Style
		}
		if edit.Commentary != nil {
			m.Commentary = *edit.Commentary
		}
		if edit.Body != nil {
			m.Body = *edit.Body
		}
		if edit.Duration != nil {
			m.Duration = *edit.Duration
		}
		updated := *m
		if err := writeList(ctx, s.kv, keyMessages, messages); err != nil {
			return nil, err
		}
		return &updated, nil
	}
	return nil, nil
}

// SoftDeleteMessage flags a message as deleted. The node stays in the
// tree; only list views drop it. Returns the flagged message or nil.
func (s *Store) SoftDeleteMessage(ctx context.Context, id string) (*domain.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	messages, err := readList[domain.Message](ctx, s.kv, keyMessages)
	if err != nil {
		return nil, err
	}
	for i := range messages {
		if messages[i].ID != id {
			continue
		}
		messages[i].Deleted = true
		deleted := messages[i]
		if err := writeList(ctx, s.kv, keyMessages, messages); err != nil {
			return nil, err
		}
		return &deleted, nil
	}
	return nil, nil
}
