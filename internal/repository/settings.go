package repository

import (
	"context"
	"encoding/json"
)

// Settings blobs are opaque to the core; the UI owns their shape. They
// are stored verbatim per vertical and default to an empty object.

// LyricsSettings returns the lyrics vertical settings object.
func (s *Store) LyricsSettings(ctx context.Context) (json.RawMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readRaw(ctx, keyLyricsSettings, "{}")
}

// SetLyricsSettings stores the lyrics vertical settings object.
func (s *Store) SetLyricsSettings(ctx context.Context, raw json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.kv.Write(ctx, keyLyricsSettings, raw)
}

// GallerySettings returns the image vertical settings object.
func (s *Store) GallerySettings(ctx context.Context) (json.RawMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readRaw(ctx, keyGallerySettings, "{}")
}

// SetGallerySettings stores the image vertical settings object.
func (s *Store) SetGallerySettings(ctx context.Context, raw json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.kv.Write(ctx, keyGallerySettings, raw)
}
