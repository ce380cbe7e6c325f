package domain

import "time"

// Session groups the ordered prompt steps of the image vertical.
type Session struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
	Deleted   bool      `json:"deleted,omitempty"`
}

// Generation is one prompt step inside a session. StepID is a running
// counter: the max StepID across the session's generations plus one.
type Generation struct {
	ID        string    `json:"id"`
	SessionID string    `json:"sessionId"`
	StepID    int       `json:"stepId"`
	Prompt    string    `json:"prompt"`
	CreatedAt time.Time `json:"createdAt"`
}

// Item is a generated image produced by a generation step.
type Item struct {
	ID           string    `json:"id"`
	GenerationID string    `json:"generationId"`
	URL          string    `json:"url"`
	Pinned       bool      `json:"pinned,omitempty"`
	Deleted      bool      `json:"deleted,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}
