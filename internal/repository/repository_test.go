package repository

import (
	"context"
	"testing"

	"github.com/kamilio/song-builder-sub001/internal/domain"
	"github.com/kamilio/song-builder-sub001/internal/storage"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	kv, err := storage.NewKV(":memory:", 0)
	if err != nil {
		t.Fatalf("failed to create kv store: %v", err)
	}
	store := New(kv)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestCreateMessageAssignsIDAndMonotonicTimestamps(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	first := &domain.Message{Role: domain.RoleUser, Content: "write me a song"}
	if err := store.CreateMessage(ctx, first); err != nil {
		t.Fatalf("CreateMessage failed: %v", err)
	}
	if first.ID == "" {
		t.Fatal("expected an assigned id")
	}

	second := &domain.Message{Role: domain.RoleAssistant, Content: "here you go", ParentID: &first.ID}
	if err := store.CreateMessage(ctx, second); err != nil {
		t.Fatalf("CreateMessage failed: %v", err)
	}
	if !second.CreatedAt.After(first.CreatedAt) {
		t.Fatalf("timestamps not strictly increasing: %v then %v", first.CreatedAt, second.CreatedAt)
	}
}

func TestSoftDeleteMessageStaysInForest(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	msg := &domain.Message{Role: domain.RoleUser, Content: "verse one"}
	if err := store.CreateMessage(ctx, msg); err != nil {
		t.Fatalf("CreateMessage failed: %v", err)
	}
	if _, err := store.SoftDeleteMessage(ctx, msg.ID); err != nil {
		t.Fatalf("SoftDeleteMessage failed: %v", err)
	}

	visible, err := store.ListMessages(ctx)
	if err != nil {
		t.Fatalf("ListMessages failed: %v", err)
	}
	if len(visible) != 0 {
		t.Fatalf("expected deleted message hidden from list view, got %d", len(visible))
	}

	all, err := store.AllMessages(ctx)
	if err != nil {
		t.Fatalf("AllMessages failed: %v", err)
	}
	if len(all) != 1 || !all[0].Deleted {
		t.Fatalf("expected deleted message to stay in storage, got %+v", all)
	}
}

func TestGetMessageNotFound(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	msg, err := store.GetMessage(ctx, "msg_missing")
	if err != nil {
		t.Fatalf("GetMessage failed: %v", err)
	}
	if msg != nil {
		t.Fatalf("expected nil for unknown id, got %+v", msg)
	}
}

func TestSongsForMessageFiltersDeleted(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	keep := &domain.Song{MessageID: "msg_1", URL: "https://cdn/a.mp3"}
	drop := &domain.Song{MessageID: "msg_1", URL: "https://cdn/b.mp3"}
	other := &domain.Song{MessageID: "msg_2", URL: "https://cdn/c.mp3"}
	for _, song := range []*domain.Song{keep, drop, other} {
		if err := store.CreateSong(ctx, song); err != nil {
			t.Fatalf("CreateSong failed: %v", err)
		}
	}
	if _, err := store.SoftDeleteSong(ctx, drop.ID); err != nil {
		t.Fatalf("SoftDeleteSong failed: %v", err)
	}

	songs, err := store.SongsForMessage(ctx, "msg_1")
	if err != nil {
		t.Fatalf("SongsForMessage failed: %v", err)
	}
	if len(songs) != 1 || songs[0].ID != keep.ID {
		t.Fatalf("unexpected songs: %+v", songs)
	}
}

func TestGenerationStepIDIsRunningMaxPlusOne(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	session := &domain.Session{Title: "robots"}
	if err := store.CreateSession(ctx, session); err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	first := &domain.Generation{SessionID: session.ID, Prompt: "a robot"}
	if err := store.CreateGeneration(ctx, first); err != nil {
		t.Fatalf("CreateGeneration failed: %v", err)
	}
	second := &domain.Generation{SessionID: session.ID, Prompt: "a taller robot"}
	if err := store.CreateGeneration(ctx, second); err != nil {
		t.Fatalf("CreateGeneration failed: %v", err)
	}
	if first.StepID != 1 || second.StepID != 2 {
		t.Fatalf("expected steps 1,2 got %d,%d", first.StepID, second.StepID)
	}

	// Steps in another session count independently.
	otherSession := &domain.Session{Title: "cats"}
	if err := store.CreateSession(ctx, otherSession); err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	other := &domain.Generation{SessionID: otherSession.ID, Prompt: "a cat"}
	if err := store.CreateGeneration(ctx, other); err != nil {
		t.Fatalf("CreateGeneration failed: %v", err)
	}
	if other.StepID != 1 {
		t.Fatalf("expected step 1 in fresh session, got %d", other.StepID)
	}
}

func TestScriptSaveAndDelete(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	script := &domain.Script{Title: "launch video"}
	if err := store.CreateScript(ctx, script); err != nil {
		t.Fatalf("CreateScript failed: %v", err)
	}

	script.Title = "launch video v2"
	saved, err := store.SaveScript(ctx, script)
	if err != nil {
		t.Fatalf("SaveScript failed: %v", err)
	}
	if saved == nil || saved.Title != "launch video v2" {
		t.Fatalf("unexpected saved script: %+v", saved)
	}

	existed, err := store.DeleteScript(ctx, script.ID)
	if err != nil || !existed {
		t.Fatalf("DeleteScript failed: existed=%v err=%v", existed, err)
	}
	got, err := store.GetScript(ctx, script.ID)
	if err != nil || got != nil {
		t.Fatalf("expected script gone, got %+v err=%v", got, err)
	}
}

func TestCreateTemplateRejectsDuplicateName(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	tpl := &domain.GlobalTemplate{Name: "Maya", Category: domain.TemplateCategoryCharacter, Value: "a weathered sea captain"}
	if err := store.CreateTemplate(ctx, tpl); err != nil {
		t.Fatalf("CreateTemplate failed: %v", err)
	}
	err := store.CreateTemplate(ctx, &domain.GlobalTemplate{Name: "Maya", Category: domain.TemplateCategoryStyle})
	if err != ErrTemplateExists {
		t.Fatalf("expected ErrTemplateExists, got %v", err)
	}
}
