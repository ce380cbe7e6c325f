package service

import (
	"context"
	"fmt"

	"github.com/kamilio/song-builder-sub001/internal/domain"
	"github.com/kamilio/song-builder-sub001/internal/templates"
)

func (s *Service) GetTemplates(ctx context.Context) ([]domain.GlobalTemplate, error) {
	list, err := s.repo.ListTemplates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get templates: %w", err)
	}
	return list, nil
}

func (s *Service) CreateTemplate(ctx context.Context, name, category, value string) (*domain.GlobalTemplate, error) {
	if err := templates.ValidateName(name); err != nil {
		return nil, err
	}
	if !domain.ValidTemplateCategory(category) {
		return nil, fmt.Errorf("invalid template category: %q", category)
	}

	tpl := &domain.GlobalTemplate{
		Name:     name,
		Category: domain.TemplateCategory(category),
		Value:    value,
	}
	if err := s.repo.CreateTemplate(ctx, tpl); err != nil {
		return nil, s.notifyCapacity(err)
	}
	s.publish(domain.EventTypeTemplateChanged, map[string]string{"name": name, "action": "created"})
	return tpl, nil
}

// UpdateTemplate replaces a template's category and value. The name is
// the identity and cannot change. Returns nil when unknown.
func (s *Service) UpdateTemplate(ctx context.Context, name, category, value string) (*domain.GlobalTemplate, error) {
	if !domain.ValidTemplateCategory(category) {
		return nil, fmt.Errorf("invalid template category: %q", category)
	}
	tpl, err := s.repo.UpdateTemplate(ctx, &domain.GlobalTemplate{
		Name:     name,
		Category: domain.TemplateCategory(category),
		Value:    value,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update template: %w", s.notifyCapacity(err))
	}
	if tpl != nil {
		s.publish(domain.EventTypeTemplateChanged, map[string]string{"name": name, "action": "updated"})
	}
	return tpl, nil
}

func (s *Service) DeleteTemplate(ctx context.Context, name string) (bool, error) {
	existed, err := s.repo.DeleteTemplate(ctx, name)
	if err != nil {
		return false, fmt.Errorf("failed to delete template: %w", s.notifyCapacity(err))
	}
	if existed {
		s.publish(domain.EventTypeTemplateChanged, map[string]string{"name": name, "action": "deleted"})
	}
	return existed, nil
}

// TemplateUsageSummary reports where a template's {{name}} placeholder
// appears across all scripts, plus the human-readable rendering the UI
// shows in delete confirmations.
type TemplateUsageSummary struct {
	Usage domain.TemplateUsage `json:"usage"`
	Lines []string             `json:"lines"`
}

func (s *Service) TemplateUsage(ctx context.Context, name string) (*TemplateUsageSummary, error) {
	scripts, err := s.repo.ListScripts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get scripts: %w", err)
	}
	usage := templates.ComputeUsage(name, scripts)
	return &TemplateUsageSummary{
		Usage: usage,
		Lines: templates.FormatUsage(usage),
	}, nil
}
