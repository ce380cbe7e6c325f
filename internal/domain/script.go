package domain

import "time"

// AudioSource selects where a shot's narration audio comes from.
type AudioSource string

const (
	AudioSourceTTS    AudioSource = "tts"
	AudioSourceUpload AudioSource = "upload"
	AudioSourceNone   AudioSource = "none"
)

// ValidAudioSource reports whether s is one of the known audio sources.
func ValidAudioSource(s string) bool {
	switch AudioSource(s) {
	case AudioSourceTTS, AudioSourceUpload, AudioSourceNone:
		return true
	}
	return false
}

// Script is a video-script document: an ordered list of shots plus
// script-wide settings and local template variables. Shot order is the
// array order and shot ids are unique within a script.
type Script struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	Shots     []Shot            `json:"shots"`
	Settings  ScriptSettings    `json:"settings"`
	Templates map[string]string `json:"templates,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// ScriptSettings holds script-wide defaults applied to new shots.
type ScriptSettings struct {
	NarrationEnabled   bool        `json:"narrationEnabled"`
	Subtitles          bool        `json:"subtitles"`
	DefaultAudioSource AudioSource `json:"defaultAudioSource"`
	DefaultDuration    int         `json:"defaultDuration"`
	GlobalPrompt       string      `json:"globalPrompt"`
}

// Shot is a single entry of a script. Its prompt may embed {{name}}
// placeholders that reference global or local template variables.
type Shot struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Prompt    string    `json:"prompt"`
	Narration Narration `json:"narration"`
	Subtitles bool      `json:"subtitles"`
	Duration  int       `json:"duration"`
	Video     ShotVideo `json:"video"`
}

// Narration configures the voice track of a shot.
type Narration struct {
	Enabled     bool        `json:"enabled"`
	Text        string      `json:"text"`
	AudioSource AudioSource `json:"audioSource"`
}

// ShotVideo tracks the selected take and the ordered generation history.
type ShotVideo struct {
	SelectedURL string `json:"selectedUrl,omitempty"`
	Takes       []Take `json:"takes,omitempty"`
}

// Take is one generated video take for a shot.
type Take struct {
	URL       string    `json:"url"`
	Pinned    bool      `json:"pinned,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
