package service

import (
	"context"

	"notewell/models"
)

// AuthService manages user accounts and JWT token lifecycle.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// NoteService implements the note operations exposed by the HTTP API.
// All operations are scoped to the owning user.
type NoteService interface {
	ListNotes(ctx context.Context, userID int64, tag string) ([]models.Note, error)
	SearchNotes(ctx context.Context, userID int64, query string) ([]models.Note, error)
	ListTags(ctx context.Context, userID int64) ([]string, error)
	GetNote(ctx context.Context, userID, noteID int64) (models.Note, error)
	CreateNote(ctx context.Context, userID int64, draft models.NoteDraft) (models.Note, error)
	UpdateNote(ctx context.Context, userID, noteID int64, draft models.NoteDraft) (models.Note, error)
	DeleteNote(ctx context.Context, userID, noteID int64) error
}

// AIService proxies text-generation requests to an upstream generative
// language model and enriches them with the user's notes where relevant.
type AIService interface {
	// Enabled reports whether an upstream service is configured. When false,
	// every other method returns ErrAIUnavailable.
	Enabled() bool

	Summarize(ctx context.Context, content string) (string, error)
	ExpandContent(ctx context.Context, content string) (string, error)
	ScrapeAndSummarize(ctx context.Context, url string) (string, error)
	ChatWithNotes(ctx context.Context, userID int64, message string) (string, error)
}
