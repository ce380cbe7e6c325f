package repository

import (
	"context"
	"time"

	"github.com/kamilio/song-builder-sub001/internal/domain"
)

// CreateScript stores a new script document. The store assigns the id
// when empty and stamps CreatedAt/UpdatedAt.
func (s *Store) CreateScript(ctx context.Context, script *domain.Script) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	scripts, err := readList[domain.Script](ctx, s.kv, keyScripts)
	if err != nil {
		return err
	}
	if script.ID == "" {
		script.ID = newID("scr")
	}
	if script.Shots == nil {
		script.Shots = []domain.Shot{}
	}
	now := time.Now().UTC()
	script.CreatedAt = now
	script.UpdatedAt = now
	return writeList(ctx, s.kv, keyScripts, append(scripts, *script))
}

// ListScripts returns every stored script.
func (s *Store) ListScripts(ctx context.Context) ([]domain.Script, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return readList[domain.Script](ctx, s.kv, keyScripts)
}

// GetScript returns the script with the given id, or nil when unknown.
func (s *Store) GetScript(ctx context.Context, id string) (*domain.Script, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	scripts, err := readList[domain.Script](ctx, s.kv, keyScripts)
	if err != nil {
		return nil, err
	}
	for i := range scripts {
		if scripts[i].ID == id {
			return &scripts[i], nil
		}
	}
	return nil, nil
}

// SaveScript replaces the stored script with the same id and bumps
// UpdatedAt. Returns the saved script or nil when the id is unknown.
func (s *Store) SaveScript(ctx context.Context, script *domain.Script) (*domain.Script, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	scripts, err := readList[domain.Script](ctx, s.kv, keyScripts)
	if err != nil {
		return nil, err
	}
	for i := range scripts {
		if scripts[i].ID != script.ID {
			continue
		}
		updated := *script
		updated.UpdatedAt = time.Now().UTC()
		scripts[i] = updated
		if err := writeList(ctx, s.kv, keyScripts, scripts); err != nil {
			return nil, err
		}
		return &updated, nil
	}
	return nil, nil
}

// DeleteScript removes a script document. Reports whether it existed.
func (s *Store) DeleteScript(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	scripts, err := readList[domain.Script](ctx, s.kv, keyScripts)
	if err != nil {
		return false, err
	}
	for i := range scripts {
		if scripts[i].ID != id {
			continue
		}
		remaining := append(scripts[:i:i], scripts[i+1:]...)
		if err := writeList(ctx, s.kv, keyScripts, remaining); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}
