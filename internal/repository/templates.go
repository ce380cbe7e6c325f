package repository

import (
	"context"
	"errors"

	"github.com/kamilio/song-builder-sub001/internal/domain"
)

// ErrTemplateExists is returned when creating a template whose name is
// already taken. Names are the identity of global templates.
var ErrTemplateExists = errors.New("template name already exists")

// ListTemplates returns every global template.
func (s *Store) ListTemplates(ctx context.Context) ([]domain.GlobalTemplate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return readList[domain.GlobalTemplate](ctx, s.kv, keyTemplates)
}

// GetTemplate returns the template with the given name, or nil.
func (s *Store) GetTemplate(ctx context.Context, name string) (*domain.GlobalTemplate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	templates, err := readList[domain.GlobalTemplate](ctx, s.kv, keyTemplates)
	if err != nil {
		return nil, err
	}
	for i := range templates {
		if templates[i].Name == name {
			return &templates[i], nil
		}
	}
	return nil, nil
}

// CreateTemplate stores a new global template.
func (s *Store) CreateTemplate(ctx context.Context, tpl *domain.GlobalTemplate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	templates, err := readList[domain.GlobalTemplate](ctx, s.kv, keyTemplates)
	if err != nil {
		return err
	}
	for _, existing := range templates {
		if existing.Name == tpl.Name {
			return ErrTemplateExists
		}
	}
	return writeList(ctx, s.kv, keyTemplates, append(templates, *tpl))
}

// UpdateTemplate replaces the category and value of an existing template.
// Returns the updated template or nil when the name is unknown.
func (s *Store) UpdateTemplate(ctx context.Context, tpl *domain.GlobalTemplate) (*domain.GlobalTemplate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	templates, err := readList[domain.GlobalTemplate](ctx, s.kv, keyTemplates)
	if err != nil {
		return nil, err
	}
	for i := range templates {
		if templates[i].Name != tpl.Name {
			continue
		}
		templates[i] = *tpl
		if err := writeList(ctx, s.kv, keyTemplates, templates); err != nil {
			return nil, err
		}
		return &templates[i], nil
	}
	return nil, nil
}

// DeleteTemplate removes a template by name. Reports whether it existed.
func (s *Store) DeleteTemplate(ctx context.Context, name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	templates, err := readList[domain.GlobalTemplate](ctx, s.kv, keyTemplates)
	if err != nil {
		return false, err
	}
	for i := range templates {
		if templates[i].Name != name {
			continue
		}
		remaining := append(templates[:i:i], templates[i+1:]...)
		if err := writeList(ctx, s.kv, keyTemplates, remaining); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}
