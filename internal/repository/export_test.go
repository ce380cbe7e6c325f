package repository

import (
	"context"
	"encoding/json"
	"reflect"
	"testing"

	"github.com/kamilio/song-builder-sub001/internal/domain"
)

func TestLyricsExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	source := newTestStore(t)

	root := &domain.Message{Role: domain.RoleUser, Content: "a song about rain"}
	if err := source.CreateMessage(ctx, root); err != nil {
		t.Fatalf("CreateMessage failed: %v", err)
	}
	reply := &domain.Message{Role: domain.RoleAssistant, Content: "Rain Song", ParentID: &root.ID, Title: "Rain Song", Body: "drip drop"}
	if err := source.CreateMessage(ctx, reply); err != nil {
		t.Fatalf("CreateMessage failed: %v", err)
	}
	if err := source.CreateSong(ctx, &domain.Song{MessageID: reply.ID, URL: "https://cdn/rain.mp3"}); err != nil {
		t.Fatalf("CreateSong failed: %v", err)
	}
	if err := source.SetLyricsSettings(ctx, json.RawMessage(`{"model":"default"}`)); err != nil {
		t.Fatalf("SetLyricsSettings failed: %v", err)
	}

	doc, err := source.ExportLyrics(ctx)
	if err != nil {
		t.Fatalf("ExportLyrics failed: %v", err)
	}

	target := newTestStore(t)
	if err := target.ImportLyrics(ctx, doc); err != nil {
		t.Fatalf("ImportLyrics failed: %v", err)
	}

	want, err := source.AllMessages(ctx)
	if err != nil {
		t.Fatalf("AllMessages failed: %v", err)
	}
	got, err := target.AllMessages(ctx)
	if err != nil {
		t.Fatalf("AllMessages failed: %v", err)
	}
	if !reflect.DeepEqual(want, got) {
		t.Fatalf("messages differ after round trip:\nwant %+v\ngot  %+v", want, got)
	}

	settings, err := target.LyricsSettings(ctx)
	if err != nil {
		t.Fatalf("LyricsSettings failed: %v", err)
	}
	if string(settings) != `{"model":"default"}` {
		t.Fatalf("settings differ after round trip: %s", settings)
	}
}

func TestImportIgnoresWrongShapedFields(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	if err := store.CreateMessage(ctx, &domain.Message{Role: domain.RoleUser, Content: "keep"}); err != nil {
		t.Fatalf("CreateMessage failed: %v", err)
	}

	// Messages is an object, songs is null, settings absent: nothing may
	// be applied.
	doc := &domain.LyricsExport{
		Messages: json.RawMessage(`{"oops":true}`),
		Songs:    json.RawMessage(`null`),
	}
	if err := store.ImportLyrics(ctx, doc); err != nil {
		t.Fatalf("ImportLyrics failed: %v", err)
	}

	messages, err := store.AllMessages(ctx)
	if err != nil {
		t.Fatalf("AllMessages failed: %v", err)
	}
	if len(messages) != 1 || messages[0].Content != "keep" {
		t.Fatalf("wrong-shaped import clobbered messages: %+v", messages)
	}
}

func TestImportIsPartial(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	if err := store.CreateSong(ctx, &domain.Song{MessageID: "msg_1", URL: "https://cdn/keep.mp3"}); err != nil {
		t.Fatalf("CreateSong failed: %v", err)
	}

	doc := &domain.LyricsExport{Messages: json.RawMessage(`[]`)}
	if err := store.ImportLyrics(ctx, doc); err != nil {
		t.Fatalf("ImportLyrics failed: %v", err)
	}

	songs, err := store.SongsForMessage(ctx, "msg_1")
	if err != nil {
		t.Fatalf("SongsForMessage failed: %v", err)
	}
	if len(songs) != 1 {
		t.Fatalf("partial import cleared an unspecified family: %+v", songs)
	}
}

func TestVideoAndGalleryReset(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	if err := store.CreateScript(ctx, &domain.Script{Title: "teaser"}); err != nil {
		t.Fatalf("CreateScript failed: %v", err)
	}
	if err := store.ResetVideo(ctx); err != nil {
		t.Fatalf("ResetVideo failed: %v", err)
	}
	scripts, err := store.ListScripts(ctx)
	if err != nil {
		t.Fatalf("ListScripts failed: %v", err)
	}
	if len(scripts) != 0 {
		t.Fatalf("expected empty scripts after reset, got %+v", scripts)
	}

	session := &domain.Session{Title: "gone"}
	if err := store.CreateSession(ctx, session); err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	if err := store.ResetGallery(ctx); err != nil {
		t.Fatalf("ResetGallery failed: %v", err)
	}
	sessions, err := store.ListSessions(ctx)
	if err != nil {
		t.Fatalf("ListSessions failed: %v", err)
	}
	if len(sessions) != 0 {
		t.Fatalf("expected empty sessions after reset, got %+v", sessions)
	}
}
