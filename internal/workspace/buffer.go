package workspace

import "notewell/models"

// editorBuffer is the single in-flight draft. boundNoteID zero means create
// mode; non-zero means the buffer edits an existing note. The buffer is
// independent of the list filter: switching filters never touches an unsaved
// draft.
type editorBuffer struct {
	boundNoteID int64

	title   string
	content string
	tags    string
}

// loadFrom enters edit mode for note, replacing the draft fields.
func (b *editorBuffer) loadFrom(note models.Note) {
	b.boundNoteID = note.ID
	b.title = note.Title
	b.content = note.Content
	b.tags = note.Tags
}

// reset enters create mode with an empty draft.
func (b *editorBuffer) reset() {
	b.boundNoteID = 0
	b.title = ""
	b.content = ""
	b.tags = ""
}

// bind records the server-assigned ID after a successful first save,
// transitioning the buffer from create to edit mode.
func (b *editorBuffer) bind(noteID int64) {
	b.boundNoteID = noteID
}

// editing reports whether the buffer is bound to a persisted note.
func (b *editorBuffer) editing() bool {
	return b.boundNoteID != 0
}

// draft snapshots the user-editable fields.
func (b *editorBuffer) draft() models.NoteDraft {
	return models.NoteDraft{
		Title:   b.title,
		Content: b.content,
		Tags:    b.tags,
	}
}
