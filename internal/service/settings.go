package service

import (
	"context"
	"encoding/json"
	"fmt"
)

// Settings are stored as opaque JSON objects owned by the UI; the
// service only guards the shape.

func (s *Service) LyricsSettings(ctx context.Context) (json.RawMessage, error) {
	raw, err := s.repo.LyricsSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get lyrics settings: %w", err)
	}
	return raw, nil
}

func (s *Service) SetLyricsSettings(ctx context.Context, raw json.RawMessage) error {
	if !json.Valid(raw) {
		return fmt.Errorf("settings must be valid JSON")
	}
	if err := s.repo.SetLyricsSettings(ctx, raw); err != nil {
		return fmt.Errorf("failed to set lyrics settings: %w", s.notifyCapacity(err))
	}
	return nil
}

func (s *Service) GallerySettings(ctx context.Context) (json.RawMessage, error) {
	raw, err := s.repo.GallerySettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get gallery settings: %w", err)
	}
	return raw, nil
}

func (s *Service) SetGallerySettings(ctx context.Context, raw json.RawMessage) error {
	if !json.Valid(raw) {
		return fmt.Errorf("settings must be valid JSON")
	}
	if err := s.repo.SetGallerySettings(ctx, raw); err != nil {
		return fmt.Errorf("failed to set gallery settings: %w", s.notifyCapacity(err))
	}
	return nil
}
