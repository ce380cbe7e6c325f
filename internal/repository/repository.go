// Package repository provides typed persistence for the studio's entity
// families. Each family is one JSON array stored under a single key in
// the key-value store; every mutation reads the whole array, computes a
// new one, and writes it back. A store-wide mutex serializes those
// read-modify-write cycles, which stands in for the single browser
// thread the original access pattern relied on.
package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kamilio/song-builder-sub001/internal/storage"
)

// Store keys, one per entity family.
const (
	keyMessages        = "lyrics.messages"
	keySongs           = "lyrics.songs"
	keyLyricsSettings  = "lyrics.settings"
	keyScripts         = "video.scripts"
	keyTemplates       = "video.templates"
	keySessions        = "gallery.sessions"
	keyGenerations     = "gallery.generations"
	keyItems           = "gallery.items"
	keyGallerySettings = "gallery.settings"
)

// Store persists all studio entity families in a shared key-value store.
type Store struct {
	kv *storage.KV
	mu sync.Mutex
}

// New creates a store over the given key-value backend.
func New(kv *storage.KV) *Store {
	return &Store{kv: kv}
}

// Close closes the underlying key-value store.
func (s *Store) Close() error {
	return s.kv.Close()
}

// readList loads a whole entity family. An absent key is an empty family.
func readList[T any](ctx context.Context, kv *storage.KV, key string) ([]T, error) {
	raw, ok, err := kv.Read(ctx, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		// Valid JSON of the wrong shape; same contract as corrupt data.
		return nil, nil
	}
	return items, nil
}

// writeList persists a whole entity family back under its key.
func writeList[T any](ctx context.Context, kv *storage.KV, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	return kv.Write(ctx, key, raw)
}

// newID returns a fresh prefixed entity id.
func newID(prefix string) string {
	return prefix + "_" + uuid.New().String()
}

// monotonicNow returns the current time, bumped past latest so that
// timestamps assigned by consecutive writes are strictly increasing even
// when the wall clock does not move between them.
func monotonicNow(latest time.Time) time.Time {
	now := time.Now().UTC()
	if !now.After(latest) {
		now = latest.Add(time.Millisecond)
	}
	return now
}
