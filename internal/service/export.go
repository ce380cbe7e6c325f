package service

import (
	"context"
	"fmt"

	"github.com/kamilio/song-builder-sub001/internal/domain"
)

func (s *Service) ExportLyrics(ctx context.Context) (*domain.LyricsExport, error) {
	doc, err := s.repo.ExportLyrics(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to export lyrics: %w", err)
	}
	return doc, nil
}

func (s *Service) ImportLyrics(ctx context.Context, doc *domain.LyricsExport) error {
	if err := s.repo.ImportLyrics(ctx, doc); err != nil {
		return fmt.Errorf("failed to import lyrics: %w", s.notifyCapacity(err))
	}
	return nil
}

func (s *Service) ResetLyrics(ctx context.Context) error {
	if err := s.repo.ResetLyrics(ctx); err != nil {
		return fmt.Errorf("failed to reset lyrics: %w", err)
	}
	return nil
}

func (s *Service) ExportVideo(ctx context.Context) (*domain.VideoExport, error) {
	doc, err := s.repo.ExportVideo(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to export video: %w", err)
	}
	return doc, nil
}

func (s *Service) ImportVideo(ctx context.Context, doc *domain.VideoExport) error {
	if err := s.repo.ImportVideo(ctx, doc); err != nil {
		return fmt.Errorf("failed to import video: %w", s.notifyCapacity(err))
	}
	return nil
}

func (s *Service) ResetVideo(ctx context.Context) error {
	if err := s.repo.ResetVideo(ctx); err != nil {
		return fmt.Errorf("failed to reset video: %w", err)
	}
	return nil
}

func (s *Service) ExportGallery(ctx context.Context) (*domain.GalleryExport, error) {
	doc, err := s.repo.ExportGallery(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to export gallery: %w", err)
	}
	return doc, nil
}

func (s *Service) ImportGallery(ctx context.Context, doc *domain.GalleryExport) error {
	if err := s.repo.ImportGallery(ctx, doc); err != nil {
		return fmt.Errorf("failed to import gallery: %w", s.notifyCapacity(err))
	}
	return nil
}

func (s *Service) ResetGallery(ctx context.Context) error {
	if err := s.repo.ResetGallery(ctx); err != nil {
		return fmt.Errorf("failed to reset gallery: %w", err)
	}
	return nil
}
