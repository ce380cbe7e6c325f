package service

import (
	"context"
	"fmt"

	"github.com/kamilio/song-builder-sub001/internal/domain"
)

// AttachSong records a generated audio URL against a message.
func (s *Service) AttachSong(ctx context.Context, messageID, url string) (*domain.Song, error) {
	if url == "" {
		return nil, fmt.Errorf("url is required")
	}
	msg, err := s.repo.GetMessage(ctx, messageID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve message: %w", err)
	}
	if msg == nil {
		return nil, fmt.Errorf("message %s: %w", messageID, ErrNotFound)
	}

	song := &domain.Song{MessageID: messageID, URL: url}
	if err := s.repo.CreateSong(ctx, song); err != nil {
		return nil, fmt.Errorf("failed to create song: %w", s.notifyCapacity(err))
	}
	return song, nil
}

func (s *Service) SongsForMessage(ctx context.Context, messageID string) ([]domain.Song, error) {
	songs, err := s.repo.SongsForMessage(ctx, messageID)
	if err != nil {
		return nil, fmt.Errorf("failed to get songs: %w", err)
	}
	return songs, nil
}

func (s *Service) PinSong(ctx context.Context, id string, pinned bool) (*domain.Song, error) {
	song, err := s.repo.SetSongPinned(ctx, id, pinned)
	if err != nil {
		return nil, fmt.Errorf("failed to pin song: %w", s.notifyCapacity(err))
	}
	return song, nil
}

func (s *Service) DeleteSong(ctx context.Context, id string) (*domain.Song, error) {
	song, err := s.repo.SoftDeleteSong(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete song: %w", s.notifyCapacity(err))
	}
	return song, nil
}
