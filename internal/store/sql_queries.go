package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"notewell/models"
)

// noteColumns is the canonical column order used by every note query and the
// row scanners in repository_note.go.
var noteColumns = []string{
	"note_id",
	"user_id",
	"title",
	"content",
	"summary",
	"tags",
	"created_at",
	"updated_at",
}

const notesReturning = "RETURNING note_id, user_id, title, content, summary, tags, created_at, updated_at"

func buildListNotesQuery(b sq.StatementBuilderType, userID int64, tag string) (string, []any, error) {
	q := b.Select(noteColumns...).
		From("notes").
		Where(sq.Eq{"user_id": userID})

	if tag != "" {
		q = q.Where(sq.Like{"tags": "%" + tag + "%"})
	}

	return q.OrderBy("created_at DESC", "note_id DESC").ToSql()
}

func buildSearchNotesQuery(b sq.StatementBuilderType, userID int64, query string) (string, []any, error) {
	pattern := "%" + query + "%"

	return b.Select(noteColumns...).
		From("notes").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Or{
			sq.Like{"title": pattern},
			sq.Like{"content": pattern},
		}).
		OrderBy("created_at DESC", "note_id DESC").
		ToSql()
}

func buildSelectTagsQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select("tags").
		From("notes").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.NotEq{"tags": ""}).
		ToSql()
}

func buildGetNoteQuery(b sq.StatementBuilderType, userID, noteID int64) (string, []any, error) {
	return b.Select(noteColumns...).
		From("notes").
		Where(sq.Eq{"user_id": userID, "note_id": noteID}).
		ToSql()
}

func buildInsertNoteQuery(b sq.StatementBuilderType, note models.Note, now time.Time) (string, []any, error) {
	return b.Insert("notes").
		Columns("user_id", "title", "content", "summary", "tags", "created_at", "updated_at").
		Values(note.UserID, note.Title, note.Content, note.Summary, note.Tags, now, now).
		Suffix(notesReturning).
		ToSql()
}

func buildUpdateNoteQuery(b sq.StatementBuilderType, note models.Note, now time.Time) (string, []any, error) {
	return b.Update("notes").
		Set("title", note.Title).
		Set("content", note.Content).
		Set("summary", note.Summary).
		Set("tags", note.Tags).
		Set("updated_at", now).
		Where(sq.Eq{"user_id": note.UserID, "note_id": note.ID}).
		Suffix(notesReturning).
		ToSql()
}

func buildDeleteNoteQuery(b sq.StatementBuilderType, userID, noteID int64) (string, []any, error) {
	return b.Delete("notes").
		Where(sq.Eq{"user_id": userID, "note_id": noteID}).
		ToSql()
}
