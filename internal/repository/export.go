package repository

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/kamilio/song-builder-sub001/internal/domain"
)

// Export/import works on the raw persisted arrays so a round trip is
// byte-faithful. An import applies a field iff it is present and has the
// expected JSON shape; everything else is left untouched in the store,
// so a partial document never clears unrelated families.

func isJSONArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}

func isPresent(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}

// readRaw returns the stored value at key, or fallback when absent.
func (s *Store) readRaw(ctx context.Context, key string, fallback string) (json.RawMessage, error) {
	raw, ok, err := s.kv.Read(ctx, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		if fallback == "" {
			return nil, nil
		}
		return json.RawMessage(fallback), nil
	}
	return raw, nil
}

// ExportLyrics snapshots the lyrics vertical.
func (s *Store) ExportLyrics(ctx context.Context) (*domain.LyricsExport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := &domain.LyricsExport{}
	var err error
	if doc.Settings, err = s.readRaw(ctx, keyLyricsSettings, ""); err != nil {
		return nil, err
	}
	if doc.Messages, err = s.readRaw(ctx, keyMessages, "[]"); err != nil {
		return nil, err
	}
	if doc.Songs, err = s.readRaw(ctx, keySongs, "[]"); err != nil {
		return nil, err
	}
	return doc, nil
}

// ImportLyrics writes each well-shaped field of the document verbatim.
func (s *Store) ImportLyrics(ctx context.Context, doc *domain.LyricsExport) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if isPresent(doc.Settings) {
		if err := s.kv.Write(ctx, keyLyricsSettings, doc.Settings); err != nil {
			return err
		}
	}
	if isJSONArray(doc.Messages) {
		if err := s.kv.Write(ctx, keyMessages, doc.Messages); err != nil {
			return err
		}
	}
	if isJSONArray(doc.Songs) {
		if err := s.kv.Write(ctx, keySongs, doc.Songs); err != nil {
			return err
		}
	}
	return nil
}

// ResetLyrics removes every key of the lyrics vertical.
func (s *Store) ResetLyrics(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range []string{keyLyricsSettings, keyMessages, keySongs} {
		if err := s.kv.Delete(ctx, key); err != nil {
			return err
		}
	}
	return nil
}

// ExportVideo snapshots the video-script vertical.
func (s *Store) ExportVideo(ctx context.Context) (*domain.VideoExport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := &domain.VideoExport{}
	var err error
	if doc.Scripts, err = s.readRaw(ctx, keyScripts, "[]"); err != nil {
		return nil, err
	}
	if doc.Templates, err = s.readRaw(ctx, keyTemplates, "[]"); err != nil {
		return nil, err
	}
	return doc, nil
}

// ImportVideo writes each well-shaped field of the document verbatim.
func (s *Store) ImportVideo(ctx context.Context, doc *domain.VideoExport) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if isJSONArray(doc.Scripts) {
		if err := s.kv.Write(ctx, keyScripts, doc.Scripts); err != nil {
			return err
		}
	}
	if isJSONArray(doc.Templates) {
		if err := s.kv.Write(ctx, keyTemplates, doc.Templates); err != nil {
			return err
		}
	}
	return nil
}

// ResetVideo removes every key of the video-script vertical.
func (s *Store) ResetVideo(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range []string{keyScripts, keyTemplates} {
		if err := s.kv.Delete(ctx, key); err != nil {
			return err
		}
	}
	return nil
}

// ExportGallery snapshots the image vertical.
func (s *Store) ExportGallery(ctx context.Context) (*domain.GalleryExport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := &domain.GalleryExport{}
	var err error
	if doc.Sessions, err = s.readRaw(ctx, keySessions, "[]"); err != nil {
		return nil, err
	}
	if doc.Generations, err = s.readRaw(ctx, keyGenerations, "[]"); err != nil {
		return nil, err
	}
	if doc.Items, err = s.readRaw(ctx, keyItems, "[]"); err != nil {
		return nil, err
	}
	if doc.Settings, err = s.readRaw(ctx, keyGallerySettings, ""); err != nil {
		return nil, err
	}
	return doc, nil
}

// ImportGallery writes each well-shaped field of the document verbatim.
func (s *Store) ImportGallery(ctx context.Context, doc *domain.GalleryExport) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if isJSONArray(doc.Sessions) {
		if err := s.kv.Write(ctx, keySessions, doc.Sessions); err != nil {
			return err
		}
	}
	if isJSONArray(doc.Generations) {
		if err := s.kv.Write(ctx, keyGenerations, doc.Generations); err != nil {
			return err
		}
	}
	if isJSONArray(doc.Items) {
		if err := s.kv.Write(ctx, keyItems, doc.Items); err != nil {
			return err
		}
	}
	if isPresent(doc.Settings) {
		if err := s.kv.Write(ctx, keyGallerySettings, doc.Settings); err != nil {
			return err
		}
	}
	return nil
}

// ResetGallery removes every key of the image vertical.
func (s *Store) ResetGallery(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range []string{keySessions, keyGenerations, keyItems, keyGallerySettings} {
		if err := s.kv.Delete(ctx, key); err != nil {
			return err
		}
	}
	return nil
}
