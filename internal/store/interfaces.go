package store

import (
	"context"

	"notewell/models"
)

// UserRepository persists user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// NoteRepository persists notes. All operations are scoped to a single owner
// via userID; a note belonging to another user behaves as if it did not exist.
type NoteRepository interface {
	// ListNotes returns the user's notes ordered by creation time, newest
	// first. A non-empty tag narrows the result to notes whose tags column
	// contains the given substring.
	ListNotes(ctx context.Context, userID int64, tag string) ([]models.Note, error)

	// SearchNotes returns notes whose title or content contains the query
	// text, ordered by creation time, newest first.
	SearchNotes(ctx context.Context, userID int64, query string) ([]models.Note, error)

	// ListTags returns the distinct tags appearing across the user's notes,
	// sorted alphabetically.
	ListTags(ctx context.Context, userID int64) ([]string, error)

	GetNote(ctx context.Context, userID, noteID int64) (models.Note, error)
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)
	UpdateNote(ctx context.Context, note models.Note) (models.Note, error)
	DeleteNote(ctx context.Context, userID, noteID int64) error
}
