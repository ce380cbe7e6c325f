package domain

import "encoding/json"

// Export documents hold the raw persisted arrays of one vertical. Fields
// are json.RawMessage so an import can write them back verbatim: a field
// is applied iff it is present and has the expected JSON shape (arrays
// must be arrays, settings must be a non-null object); everything else is
// left untouched in the store. Partial imports are allowed.

// LyricsExport is the export document of the lyrics vertical.
type LyricsExport struct {
	Settings json.RawMessage `json:"settings,omitempty"`
	Messages json.RawMessage `json:"messages,omitempty"`
	Songs    json.RawMessage `json:"songs,omitempty"`
}

// VideoExport is the export document of the video-script vertical.
type VideoExport struct {
	Scripts   json.RawMessage `json:"scripts,omitempty"`
	Templates json.RawMessage `json:"templates,omitempty"`
}

// GalleryExport is the export document of the image vertical.
type GalleryExport struct {
	Sessions    json.RawMessage `json:"sessions,omitempty"`
	Generations json.RawMessage `json:"generations,omitempty"`
	Items       json.RawMessage `json:"items,omitempty"`
	Settings    json.RawMessage `json:"settings,omitempty"`
}
