package repository

import (
	"context"
	"sort"
	"time"

	"github.com/kamilio/song-builder-sub001/internal/domain"
)

// CreateSession stores a new gallery session.
func (s *Store) CreateSession(ctx context.Context, session *domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessions, err := readList[domain.Session](ctx, s.kv, keySessions)
	if err != nil {
		return err
	}
	if session.ID == "" {
		session.ID = newID("ses")
	}
	session.CreatedAt = time.Now().UTC()
	return writeList(ctx, s.kv, keySessions, append(sessions, *session))
}

// ListSessions returns sessions for list views, excluding soft-deleted
// ones.
func (s *Store) ListSessions(ctx context.Context) ([]domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessions, err := readList[domain.Session](ctx, s.kv, keySessions)
	if err != nil {
		return nil, err
	}
	visible := make([]domain.Session, 0, len(sessions))
	for _, session := range sessions {
		if !session.Deleted {
			visible = append(visible, session)
		}
	}
	return visible, nil
}

// GetSession returns the session with the given id, or nil.
func (s *Store) GetSession(ctx context.Context, id string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessions, err := readList[domain.Session](ctx, s.kv, keySessions)
	if err != nil {
		return nil, err
	}
	for i := range sessions {
		if sessions[i].ID == id {
			return &sessions[i], nil
		}
	}
	return nil, nil
}

// SoftDeleteSession flags a session as deleted. Returns it or nil.
func (s *Store) SoftDeleteSession(ctx context.Context, id string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessions, err := readList[domain.Session](ctx, s.kv, keySessions)
	if err != nil {
		return nil, err
	}
	for i := range sessions {
		if sessions[i].ID != id {
			continue
		}
		sessions[i].Deleted = true
		deleted := sessions[i]
		if err := writeList(ctx, s.kv, keySessions, sessions); err != nil {
			return nil, err
		}
		return &deleted, nil
	}
	return nil, nil
}

// CreateGeneration appends a prompt step to a session. StepID is the
// running max across the session's generations plus one, so steps stay
// totally ordered even after external edits to the stored array.
func (s *Store) CreateGeneration(ctx context.Context, gen *domain.Generation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	generations, err := readList[domain.Generation](ctx, s.kv, keyGenerations)
	if err != nil {
		return err
	}
	maxStep := 0
	for _, existing := range generations {
		if existing.SessionID == gen.SessionID && existing.StepID > maxStep {
			maxStep = existing.StepID
		}
	}
	if gen.ID == "" {
		gen.ID = newID("gen")
	}
	gen.StepID = maxStep + 1
	gen.CreatedAt = time.Now().UTC()
	return writeList(ctx, s.kv, keyGenerations, append(generations, *gen))
}

// GenerationsForSession lists a session's generations ordered by step.
func (s *Store) GenerationsForSession(ctx context.Context, sessionID string) ([]domain.Generation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	generations, err := readList[domain.Generation](ctx, s.kv, keyGenerations)
	if err != nil {
		return nil, err
	}
	matched := make([]domain.Generation, 0, len(generations))
	for _, gen := range generations {
		if gen.SessionID == sessionID {
			matched = append(matched, gen)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].StepID < matched[j].StepID })
	return matched, nil
}

// CreateItems stores the images produced by one generation step.
func (s *Store) CreateItems(ctx context.Context, generationID string, urls []string) ([]domain.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := readList[domain.Item](ctx, s.kv, keyItems)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	created := make([]domain.Item, 0, len(urls))
	for _, url := range urls {
		created = append(created, domain.Item{
			ID:           newID("item"),
			GenerationID: generationID,
			URL:          url,
			CreatedAt:    now,
		})
	}
	if err := writeList(ctx, s.kv, keyItems, append(items, created...)); err != nil {
		return nil, err
	}
	return created, nil
}

// ItemsForGeneration lists a generation's items, excluding soft-deleted
// ones.
func (s *Store) ItemsForGeneration(ctx context.Context, generationID string) ([]domain.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := readList[domain.Item](ctx, s.kv, keyItems)
	if err != nil {
		return nil, err
	}
	matched := make([]domain.Item, 0, len(items))
	for _, item := range items {
		if item.GenerationID == generationID && !item.Deleted {
			matched = append(matched, item)
		}
	}
	return matched, nil
}

// SetItemPinned toggles the pin flag of an item. Returns it or nil.
func (s *Store) SetItemPinned(ctx context.Context, id string, pinned bool) (*domain.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := readList[domain.Item](ctx, s.kv, keyItems)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID != id {
			continue
		}
		items[i].Pinned = pinned
		updated := items[i]
		if err := writeList(ctx, s.kv, keyItems, items); err != nil {
			return nil, err
		}
		return &updated, nil
	}
	return nil, nil
}

// SoftDeleteItem flags an item as deleted. Returns it or nil.
func (s *Store) SoftDeleteItem(ctx context.Context, id string) (*domain.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := readList[domain.Item](ctx, s.kv, keyItems)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID != id {
			continue
		}
		items[i].Deleted = true
		deleted := items[i]
		if err := writeList(ctx, s.kv, keyItems, items); err != nil {
			return nil, err
		}
		return &deleted, nil
	}
	return nil, nil
}
