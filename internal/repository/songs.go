package repository

import (
	"context"

	"github.com/kamilio/song-builder-sub001/internal/domain"
)

// CreateSong attaches a generated song to a message.
func (s *Store) CreateSong(ctx context.Context, song *domain.Song) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	songs, err := readList[domain.Song](ctx, s.kv, keySongs)
	if err != nil {
		return err
	}
	if song.ID == "" {
		song.ID = newID("song")
	}
	var latest = song.CreatedAt
	for _, existing := range songs {
		if existing.CreatedAt.After(latest) {
			latest = existing.CreatedAt
		}
	}
	song.CreatedAt = monotonicNow(latest)
	return writeList(ctx, s.kv, keySongs, append(songs, *song))
}

// SongsForMessage lists the songs attached to a message, excluding
// soft-deleted ones.
func (s *Store) SongsForMessage(ctx context.Context, messageID string) ([]domain.Song, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	songs, err := readList[domain.Song](ctx, s.kv, keySongs)
	if err != nil {
		return nil, err
	}
	matched := make([]domain.Song, 0, len(songs))
	for _, song := range songs {
		if song.MessageID == messageID && !song.Deleted {
			matched = append(matched, song)
		}
	}
	return matched, nil
}

// SetSongPinned toggles the pin flag. Returns the song or nil when
// unknown.
func (s *Store) SetSongPinned(ctx context.Context, id string, pinned bool) (*domain.Song, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	songs, err := readList[domain.Song](ctx, s.kv, keySongs)
	if err != nil {
		return nil, err
	}
	for i := range songs {
		if songs[i].ID != id {
			continue
		}
		songs[i].Pinned = pinned
		updated := songs[i]
		if err := writeList(ctx, s.kv, keySongs, songs); err != nil {
			return nil, err
		}
		return &updated, nil
	}
	return nil, nil
}

// SoftDeleteSong flags a song as deleted. Returns the song or nil.
func (s *Store) SoftDeleteSong(ctx context.Context, id string) (*domain.Song, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	songs, err := readList[domain.Song](ctx, s.kv, keySongs)
	if err != nil {
		return nil, err
	}
	for i := range songs {
		if songs[i].ID != id {
			continue
		}
		songs[i].Deleted = true
		deleted := songs[i]
		if err := writeList(ctx, s.kv, keySongs, songs); err != nil {
			return nil, err
		}
		return &deleted, nil
	}
	return nil, nil
}
