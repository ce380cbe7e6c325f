package scripttools

import (
	"github.com/google/uuid"

	"github.com/kamilio/song-builder-sub001/internal/domain"
)

func init() {
	MustRegister("update_shot_prompt", updateShotPrompt)
	MustRegister("update_shot_narration", updateShotNarration)
	MustRegister("update_shot_subtitles", updateShotSubtitles)
	MustRegister("add_shot", addShot)
	MustRegister("delete_shot", deleteShot)
	MustRegister("reorder_shots", reorderShots)
	MustRegister("update_script_settings", updateScriptSettings)
}

// stringArg returns args[key] when present as a string.
func stringArg(args map[string]any, key string) (string, bool) {
	v, ok := args[key].(string)
	return v, ok
}

// boolArg returns args[key] when present as a bool.
func boolArg(args map[string]any, key string) (bool, bool) {
	v, ok := args[key].(bool)
	return v, ok
}

// clone returns a copy of the script with a fresh shots slice so the
// input document is never written through. Untouched shot sub-trees
// stay shared.
func clone(script *domain.Script) *domain.Script {
	next := *script
	next.Shots = make([]domain.Shot, len(script.Shots))
	copy(next.Shots, script.Shots)
	return &next
}

// shotIndex finds a shot by id, -1 when absent.
func shotIndex(shots []domain.Shot, id string) int {
	for i := range shots {
		if shots[i].ID == id {
			return i
		}
	}
	return -1
}

func updateShotPrompt(script *domain.Script, args map[string]any) *domain.Script {
	shotID, ok := stringArg(args, "shotId")
	if !ok {
		return script
	}
	prompt, ok := stringArg(args, "prompt")
	if !ok {
		return script
	}
	i := shotIndex(script.Shots, shotID)
	if i < 0 {
		return script
	}
	next := clone(script)
	next.Shots[i].Prompt = prompt
	return next
}

func updateShotNarration(script *domain.Script, args map[string]any) *domain.Script {
	shotID, ok := stringArg(args, "shotId")
	if !ok {
		return script
	}
	i := shotIndex(script.Shots, shotID)
	if i < 0 {
		return script
	}
	next := clone(script)
	narration := &next.Shots[i].Narration
	if enabled, ok := boolArg(args, "enabled"); ok {
		narration.Enabled = enabled
	}
	if text, ok := stringArg(args, "text"); ok {
		narration.Text = text
	}
	// An unknown audio source value is ignored, not a rejection.
	if source, ok := stringArg(args, "audioSource"); ok && domain.ValidAudioSource(source) {
		narration.AudioSource = domain.AudioSource(source)
	}
	return next
}

func updateShotSubtitles(script *domain.Script, args map[string]any) *domain.Script {
	shotID, ok := stringArg(args, "shotId")
	if !ok {
		return script
	}
	subtitles, ok := boolArg(args, "subtitles")
	if !ok {
		return script
	}
	i := shotIndex(script.Shots, shotID)
	if i < 0 {
		return script
	}
	next := clone(script)
	next.Shots[i].Subtitles = subtitles
	return next
}

func addShot(script *domain.Script, args map[string]any) *domain.Script {
	title, ok := stringArg(args, "title")
	if !ok {
		return script
	}
	prompt, ok := stringArg(args, "prompt")
	if !ok {
		return script
	}

	shot := domain.Shot{
		ID:     "shot_" + uuid.New().String(),
		Title:  title,
		Prompt: prompt,
		Narration: domain.Narration{
			Enabled:     script.Settings.NarrationEnabled,
			AudioSource: script.Settings.DefaultAudioSource,
		},
		Subtitles: script.Settings.Subtitles,
		Duration:  script.Settings.DefaultDuration,
	}

	at := len(script.Shots)
	if afterID, ok := stringArg(args, "afterShotId"); ok {
		if i := shotIndex(script.Shots, afterID); i >= 0 {
			at = i + 1
		}
	}

	next := *script
	next.Shots = make([]domain.Shot, 0, len(script.Shots)+1)
	next.Shots = append(next.Shots, script.Shots[:at]...)
	next.Shots = append(next.Shots, shot)
	next.Shots = append(next.Shots, script.Shots[at:]...)
	return &next
}

func deleteShot(script *domain.Script, args map[string]any) *domain.Script {
	shotID, ok := stringArg(args, "shotId")
	if !ok {
		return script
	}
	i := shotIndex(script.Shots, shotID)
	if i < 0 {
		return script
	}
	next := *script
	next.Shots = make([]domain.Shot, 0, len(script.Shots)-1)
	next.Shots = append(next.Shots, script.Shots[:i]...)
	next.Shots = append(next.Shots, script.Shots[i+1:]...)
	return &next
}

func reorderShots(script *domain.Script, args map[string]any) *domain.Script {
	rawIDs, ok := args["shotIds"].([]any)
	if !ok {
		return script
	}

	// Keep string entries that name existing shots, dropping duplicates.
	// The surviving list must cover every current shot, otherwise a
	// partial or malformed reorder would silently lose shots.
	seen := make(map[string]bool, len(script.Shots))
	order := make([]string, 0, len(rawIDs))
	for _, raw := range rawIDs {
		id, ok := raw.(string)
		if !ok || seen[id] {
			continue
		}
		if shotIndex(script.Shots, id) < 0 {
			continue
		}
		seen[id] = true
		order = append(order, id)
	}
	if len(order) != len(script.Shots) {
		return script
	}

	next := *script
	next.Shots = make([]domain.Shot, 0, len(script.Shots))
	for _, id := range order {
		next.Shots = append(next.Shots, script.Shots[shotIndex(script.Shots, id)])
	}
	return &next
}

func updateScriptSettings(script *domain.Script, args map[string]any) *domain.Script {
	next := clone(script)
	// Each field is type-checked on its own; a wrong-typed value leaves
	// that field as it was.
	if enabled, ok := boolArg(args, "narrationEnabled"); ok {
		next.Settings.NarrationEnabled = enabled
	}
	if subtitles, ok := boolArg(args, "subtitles"); ok {
		next.Settings.Subtitles = subtitles
	}
	// An unknown audio source value is ignored, not a rejection.
	if source, ok := stringArg(args, "defaultAudioSource"); ok && domain.ValidAudioSource(source) {
		next.Settings.DefaultAudioSource = domain.AudioSource(source)
	}
	if duration, ok := args["defaultDuration"].(float64); ok && duration > 0 {
		next.Settings.DefaultDuration = int(duration)
	}
	if prompt, ok := stringArg(args, "globalPrompt"); ok {
		next.Settings.GlobalPrompt = prompt
	}
	return next
}
