// Package domain defines the core domain models for the studio.
package domain

import "time"

// Role identifies who authored a conversation message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a node in the lyrics conversation tree. Nodes are linked by
// ParentID; a nil ParentID marks a root. Messages are never hard-deleted,
// only flagged, so the tree stays intact across soft deletes.
type Message struct {
	ID       string  `json:"id"`
	Role     Role    `json:"role"`
	Content  string  `json:"content"`
	ParentID *string `json:"parentId"`

	// Lyrics payload, populated on assistant nodes that carry a generated song.
	Title      string `json:"title,omitempty"`
	Style      string `json:"style,omitempty"`
	Commentary string `json:"commentary,omitempty"`
	Body       string `json:"body,omitempty"`
	Duration   int    `json:"duration,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	Deleted   bool      `json:"deleted,omitempty"`
}

// MessageEdit carries an inline field edit. Nil fields are left untouched.
type MessageEdit struct {
	Content    *string `json:"content,omitempty"`
	Title      *string `json:"title,omitempty"`
	Style      *string `json:"style,omitempty"`
	Commentary *string `json:"commentary,omitempty"`
	Body       *string `json:"body,omitempty"`
	Duration   *int    `json:"duration,omitempty"`
}

// Song is a generated audio artifact attached to a conversation message.
// Many songs can reference the same message.
type Song struct {
	ID        string    `json:"id"`
	MessageID string    `json:"messageId"`
	URL       string    `json:"url"`
	Pinned    bool      `json:"pinned,omitempty"`
	Deleted   bool      `json:"deleted,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
