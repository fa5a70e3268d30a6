// Package adapter provides transport-layer abstractions for communicating with
// the notewell server.
//
// The primary abstractions are [NoteGateway] and [AIGateway], which decouple
// the workspace and TUI layers from the underlying protocol. The package ships
// an HTTP/REST implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"notewell/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/gateway_mock.go -package=mock

// NoteGateway defines transport-agnostic communication with the notewell
// server for account and note operations. Implementations are responsible for
// serialisation, authentication header management, and mapping transport-level
// errors to the sentinel values defined in this package.
type NoteGateway interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. It should be called immediately after a
	// successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register sends a registration request with the provided credentials.
	// On success it stores the returned bearer token via SetToken and returns
	// the user value with the server-assigned ID filled in.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login authenticates the user with the server. On success it stores the
	// returned bearer token via SetToken and returns the user value with the
	// server-assigned ID filled in.
	Login(ctx context.Context, user models.User) (models.User, error)

	// ListNotes fetches the authenticated user's notes, newest first.
	// A non-empty tag restricts the result to notes carrying that tag.
	ListNotes(ctx context.Context, tag string) ([]models.Note, error)

	// SearchNotes fetches notes whose title or content contains query.
	SearchNotes(ctx context.Context, query string) ([]models.Note, error)

	// ListTags fetches the sorted distinct tags across the user's notes.
	ListTags(ctx context.Context) ([]string, error)

	// GetNote fetches a single note by its server-assigned ID.
	GetNote(ctx context.Context, noteID int64) (models.Note, error)

	// CreateNote persists a new note and returns the created record,
	// including the server-assigned ID and derived summary.
	CreateNote(ctx context.Context, draft models.NoteDraft) (models.Note, error)

	// UpdateNote replaces the editable fields of an existing note and returns
	// the updated record. Returns [ErrNotFound] (wrapped) if the note does
	// not exist for the authenticated user.
	UpdateNote(ctx context.Context, noteID int64, draft models.NoteDraft) (models.Note, error)

	// DeleteNote removes a note. Returns [ErrNotFound] (wrapped) if the note
	// does not exist for the authenticated user.
	DeleteNote(ctx context.Context, noteID int64) error
}

// AIGateway defines the client side of the server's AI proxy endpoints.
// All calls require a bearer token to have been set on the shared adapter.
type AIGateway interface {
	// Summarize asks the server for a concise summary of text.
	Summarize(ctx context.Context, text string) (string, error)

	// ExpandContent asks the server to expand an idea or bullet list into
	// coherent prose.
	ExpandContent(ctx context.Context, text string) (string, error)

	// ScrapeAndSummarize asks the server to fetch the page at url, extract
	// its readable text, and summarize it.
	ScrapeAndSummarize(ctx context.Context, url string) (string, error)

	// ChatWithNotes asks a question that the server answers from the user's
	// own notes.
	ChatWithNotes(ctx context.Context, query string) (string, error)
}

// ServerAdapter bundles all gateway surfaces implemented by a single
// transport connection.
type ServerAdapter interface {
	NoteGateway
	AIGateway
}
