package scripttools

import (
	"testing"

	"github.com/kamilio/song-builder-sub001/internal/domain"
)

func testScript() *domain.Script {
	return &domain.Script{
		ID:    "scr_1",
		Title: "launch video",
		Settings: domain.ScriptSettings{
			NarrationEnabled:   true,
			Subtitles:          true,
			DefaultAudioSource: domain.AudioSourceTTS,
			DefaultDuration:    5,
			GlobalPrompt:       "cinematic",
		},
		Shots: []domain.Shot{
			{
				ID:     "shot_a",
				Title:  "opening",
				Prompt: "{{hero}} walks into frame",
				Narration: domain.Narration{
					Enabled:     true,
					Text:        "our story begins",
					AudioSource: domain.AudioSourceTTS,
				},
				Subtitles: true,
				Duration:  5,
				Video:     domain.ShotVideo{Takes: []domain.Take{{URL: "https://cdn/a1.mp4"}}},
			},
			{
				ID:     "shot_b",
				Title:  "closing",
				Prompt: "sunset over the city",
				Duration: 4,
			},
		},
	}
}

// snapshot captures identity and content of the shots so tests can prove
// the input document was not written through.
func snapshot(s *domain.Script) []domain.Shot {
	shots := make([]domain.Shot, len(s.Shots))
	copy(shots, s.Shots)
	return shots
}

func assertUntouched(t *testing.T, s *domain.Script, before []domain.Shot) {
	t.Helper()
	if len(s.Shots) != len(before) {
		t.Fatalf("input shots length changed: %d != %d", len(s.Shots), len(before))
	}
	for i := range before {
		if s.Shots[i].Prompt != before[i].Prompt ||
			s.Shots[i].Narration != before[i].Narration ||
			s.Shots[i].Subtitles != before[i].Subtitles ||
			s.Shots[i].ID != before[i].ID {
			t.Fatalf("input shot %d mutated: %+v", i, s.Shots[i])
		}
	}
}

func TestInvalidCallsReturnSameReference(t *testing.T) {
	script := testScript()
	cases := []struct {
		name string
		tool string
		args map[string]any
	}{
		{"unknown tool", "make_it_pop", map[string]any{}},
		{"empty tool name", "", map[string]any{}},
		{"prompt missing shotId", "update_shot_prompt", map[string]any{"prompt": "x"}},
		{"prompt missing prompt", "update_shot_prompt", map[string]any{"shotId": "shot_a"}},
		{"prompt wrong-typed shotId", "update_shot_prompt", map[string]any{"shotId": 7.0, "prompt": "x"}},
		{"prompt unknown shot", "update_shot_prompt", map[string]any{"shotId": "shot_zz", "prompt": "x"}},
		{"narration missing shotId", "update_shot_narration", map[string]any{"enabled": true}},
		{"narration unknown shot", "update_shot_narration", map[string]any{"shotId": "shot_zz"}},
		{"subtitles wrong-typed flag", "update_shot_subtitles", map[string]any{"shotId": "shot_a", "subtitles": "yes"}},
		{"add missing title", "add_shot", map[string]any{"prompt": "x"}},
		{"add wrong-typed prompt", "add_shot", map[string]any{"title": "t", "prompt": 1.0}},
		{"delete missing shotId", "delete_shot", map[string]any{}},
		{"delete unknown shot", "delete_shot", map[string]any{"shotId": "shot_zz"}},
		{"reorder not a list", "reorder_shots", map[string]any{"shotIds": "shot_a,shot_b"}},
		{"reorder partial list", "reorder_shots", map[string]any{"shotIds": []any{"shot_a"}}},
		{"reorder padded with non-strings", "reorder_shots", map[string]any{"shotIds": []any{"shot_a", 2.0}}},
		{"reorder duplicate ids", "reorder_shots", map[string]any{"shotIds": []any{"shot_a", "shot_a"}}},
		{"reorder unknown id", "reorder_shots", map[string]any{"shotIds": []any{"shot_a", "shot_zz"}}},
		{"nil args", "update_shot_prompt", nil},
	}

	for _, tc := range cases {
		before := snapshot(script)
		got := Apply(script, tc.tool, tc.args)
		if got != script {
			t.Fatalf("%s: expected the exact input reference back", tc.name)
		}
		assertUntouched(t, script, before)
	}
}

func TestUpdateShotPrompt(t *testing.T) {
	script := testScript()
	before := snapshot(script)

	got := Apply(script, "update_shot_prompt", map[string]any{"shotId": "shot_b", "prompt": "dawn over the city"})
	if got == script {
		t.Fatal("expected a new document")
	}
	if got.Shots[1].Prompt != "dawn over the city" {
		t.Fatalf("prompt not updated: %+v", got.Shots[1])
	}
	assertUntouched(t, script, before)
}

func TestUpdateShotNarrationMergesProvidedFields(t *testing.T) {
	script := testScript()

	got := Apply(script, "update_shot_narration", map[string]any{
		"shotId":      "shot_a",
		"text":        "a new beginning",
		"audioSource": "laser-disc", // not in the enum: ignored, not rejected
		"enabled":     "yep",        // wrong-typed optional: ignored
	})
	if got == script {
		t.Fatal("expected a new document")
	}
	narration := got.Shots[0].Narration
	if narration.Text != "a new beginning" {
		t.Fatalf("text not merged: %+v", narration)
	}
	if narration.AudioSource != domain.AudioSourceTTS {
		t.Fatalf("invalid audio source applied: %+v", narration)
	}
	if !narration.Enabled {
		t.Fatalf("wrong-typed enabled overwrote the flag: %+v", narration)
	}
}

func TestUpdateShotSubtitles(t *testing.T) {
	script := testScript()
	got := Apply(script, "update_shot_subtitles", map[string]any{"shotId": "shot_a", "subtitles": false})
	if got == script || got.Shots[0].Subtitles {
		t.Fatalf("subtitles flag not cleared: %+v", got.Shots[0])
	}
}

func TestAddShotInheritsSettingsAndInserts(t *testing.T) {
	script := testScript()

	got := Apply(script, "add_shot", map[string]any{
		"title":       "middle",
		"prompt":      "a tense pause",
		"afterShotId": "shot_a",
	})
	if got == script {
		t.Fatal("expected a new document")
	}
	if len(got.Shots) != 3 {
		t.Fatalf("expected 3 shots, got %d", len(got.Shots))
	}
	added := got.Shots[1]
	if added.Title != "middle" || added.Prompt != "a tense pause" {
		t.Fatalf("unexpected inserted shot: %+v", added)
	}
	if added.ID == "" || added.ID == "shot_a" || added.ID == "shot_b" {
		t.Fatalf("expected a fresh id, got %q", added.ID)
	}
	if !added.Narration.Enabled || added.Narration.AudioSource != domain.AudioSourceTTS {
		t.Fatalf("narration defaults not inherited: %+v", added.Narration)
	}
	if !added.Subtitles || added.Duration != 5 {
		t.Fatalf("shot defaults not inherited: %+v", added)
	}
	if len(added.Video.Takes) != 0 {
		t.Fatalf("expected empty take history: %+v", added.Video)
	}
}

func TestAddShotAppendsWhenAfterMissing(t *testing.T) {
	script := testScript()

	got := Apply(script, "add_shot", map[string]any{"title": "tail", "prompt": "credits roll", "afterShotId": "shot_zz"})
	if got == script || got.Shots[len(got.Shots)-1].Title != "tail" {
		t.Fatalf("expected append at end: %+v", got.Shots)
	}

	got = Apply(script, "add_shot", map[string]any{"title": "tail2", "prompt": "fade out"})
	if got.Shots[len(got.Shots)-1].Title != "tail2" {
		t.Fatalf("expected append at end without afterShotId: %+v", got.Shots)
	}
}

func TestDeleteShot(t *testing.T) {
	script := testScript()
	got := Apply(script, "delete_shot", map[string]any{"shotId": "shot_a"})
	if got == script {
		t.Fatal("expected a new document")
	}
	if len(got.Shots) != 1 || got.Shots[0].ID != "shot_b" {
		t.Fatalf("unexpected shots after delete: %+v", got.Shots)
	}
	if len(script.Shots) != 2 {
		t.Fatal("input document lost a shot")
	}
}

func TestReorderShots(t *testing.T) {
	script := testScript()
	got := Apply(script, "reorder_shots", map[string]any{"shotIds": []any{"shot_b", "shot_a"}})
	if got == script {
		t.Fatal("expected a new document")
	}
	if got.Shots[0].ID != "shot_b" || got.Shots[1].ID != "shot_a" {
		t.Fatalf("unexpected order: %+v", got.Shots)
	}
	if script.Shots[0].ID != "shot_a" {
		t.Fatal("input order mutated")
	}
}

func TestUpdateScriptSettingsFieldByField(t *testing.T) {
	script := testScript()
	got := Apply(script, "update_script_settings", map[string]any{
		"narrationEnabled":   false,
		"subtitles":          "maybe",  // wrong-typed: ignored
		"defaultAudioSource": "upload",
		"defaultDuration":    8.0,
		"globalPrompt":       "noir",
	})
	if got == script {
		t.Fatal("expected a new document")
	}
	if got.Settings.NarrationEnabled {
		t.Fatalf("narrationEnabled not applied: %+v", got.Settings)
	}
	if !got.Settings.Subtitles {
		t.Fatalf("wrong-typed subtitles overwrote the flag: %+v", got.Settings)
	}
	if got.Settings.DefaultAudioSource != domain.AudioSourceUpload || got.Settings.DefaultDuration != 8 {
		t.Fatalf("shot defaults not applied: %+v", got.Settings)
	}
	if got.Settings.GlobalPrompt != "noir" {
		t.Fatalf("globalPrompt not applied: %+v", got.Settings)
	}
	if script.Settings.GlobalPrompt != "cinematic" {
		t.Fatal("input settings mutated")
	}
}

func TestApplySequenceEachAgainstPrevious(t *testing.T) {
	script := testScript()

	cur := Apply(script, "update_shot_prompt", map[string]any{"shotId": "shot_a", "prompt": "step one"})
	cur = Apply(cur, "bogus_tool", map[string]any{})
	cur = Apply(cur, "update_shot_subtitles", map[string]any{"shotId": "shot_b", "subtitles": true})

	if cur.Shots[0].Prompt != "step one" || !cur.Shots[1].Subtitles {
		t.Fatalf("sequence not applied cumulatively: %+v", cur.Shots)
	}
	if script.Shots[0].Prompt != "{{hero}} walks into frame" {
		t.Fatal("original document mutated by sequence")
	}
}
