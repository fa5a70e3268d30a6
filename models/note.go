package models

import (
	"strings"
	"time"
)

// Note is the central domain entity: a single user-owned note.
//
// The server is the sole authority for notes; clients hold cached copies only.
// ID is assigned by the server on first save and is zero for drafts that have
// never been persisted.
type Note struct {
	// ID is the server-assigned unique identifier of the note.
	// Zero means the note has not been persisted yet.
	ID int64 `json:"id"`

	// UserID identifies the owner. Notes are never shared between users.
	UserID int64 `json:"user_id"`

	// Title is the note heading. A note cannot be persisted without one.
	Title string `json:"title"`

	// Content is the note body. May be empty.
	Content string `json:"content"`

	// Summary is a short excerpt derived from Content by the server for
	// list display. Read-only for clients.
	Summary string `json:"summary"`

	// Tags is a comma-separated label string, e.g. "work, ideas".
	// Semantically a set of short labels; order is not significant and
	// duplicates carry no meaning.
	Tags string `json:"tags"`

	// CreatedAt is the server-side creation timestamp.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the server-side timestamp of the last update.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}

// NoteDraft carries the user-editable fields of a note for create and
// update requests. Server-derived fields (id, summary, timestamps) are
// intentionally absent.
type NoteDraft struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Tags    string `json:"tags"`
}

// SplitTags parses a comma-separated tag string into trimmed, de-duplicated
// labels, preserving first-occurrence order. Blank entries are dropped.
func SplitTags(tags string) []string {
	if strings.TrimSpace(tags) == "" {
		return nil
	}

	seen := make(map[string]struct{})
	var out []string
	for _, raw := range strings.Split(tags, ",") {
		tag := strings.TrimSpace(raw)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}

	return out
}

// Summarize derives the short list-display excerpt for content: the first
// limit whitespace-separated words followed by an ellipsis. Empty content
// yields an empty summary.
func Summarize(content string, limit int) string {
	if strings.TrimSpace(content) == "" {
		return ""
	}

	words := strings.Fields(content)
	if len(words) <= limit {
		return strings.Join(words, " ") + "..."
	}
	return strings.Join(words[:limit], " ") + "..."
}
