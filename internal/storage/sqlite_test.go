package storage

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func newTestKV(t *testing.T, capacity int) *KV {
	t.Helper()
	kv, err := NewKV(":memory:", capacity)
	if err != nil {
		t.Fatalf("failed to create kv store: %v", err)
	}
	t.Cleanup(func() { kv.Close() })
	return kv
}

func TestKVReadWrite(t *testing.T) {
	ctx := context.Background()
	kv := newTestKV(t, 0)

	if _, ok, err := kv.Read(ctx, "lyrics.messages"); err != nil || ok {
		t.Fatalf("expected absent key, got ok=%v err=%v", ok, err)
	}

	value := json.RawMessage(`[{"id":"msg_1"}]`)
	if err := kv.Write(ctx, "lyrics.messages", value); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	got, ok, err := kv.Read(ctx, "lyrics.messages")
	if err != nil || !ok {
		t.Fatalf("Read failed: ok=%v err=%v", ok, err)
	}
	if string(got) != string(value) {
		t.Fatalf("expected %s, got %s", value, got)
	}
}

func TestKVCorruptValueTreatedAsAbsent(t *testing.T) {
	ctx := context.Background()
	kv := newTestKV(t, 0)

	if err := kv.Write(ctx, "video.scripts", json.RawMessage(`{not json`)); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	if _, ok, err := kv.Read(ctx, "video.scripts"); err != nil || ok {
		t.Fatalf("expected corrupt value to read as absent, got ok=%v err=%v", ok, err)
	}
}

func TestKVCapacityExceededLeavesValueIntact(t *testing.T) {
	ctx := context.Background()
	kv := newTestKV(t, 32)

	original := json.RawMessage(`["keep me"]`)
	if err := kv.Write(ctx, "gallery.items", original); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	huge := json.RawMessage(`["` + string(make([]byte, 64)) + `"]`)
	err := kv.Write(ctx, "gallery.items", huge)
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("expected ErrCapacityExceeded, got %v", err)
	}

	got, ok, err := kv.Read(ctx, "gallery.items")
	if err != nil || !ok {
		t.Fatalf("Read failed: ok=%v err=%v", ok, err)
	}
	if string(got) != string(original) {
		t.Fatalf("prior value was clobbered: %s", got)
	}
}

func TestKVDelete(t *testing.T) {
	ctx := context.Background()
	kv := newTestKV(t, 0)

	if err := kv.Write(ctx, "lyrics.songs", json.RawMessage(`[]`)); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := kv.Delete(ctx, "lyrics.songs"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, ok, _ := kv.Read(ctx, "lyrics.songs"); ok {
		t.Fatal("expected key to be gone")
	}
	if err := kv.Delete(ctx, "lyrics.songs"); err != nil {
		t.Fatalf("deleting a missing key should not fail: %v", err)
	}
}
