package service

import (
	"context"

	"notewell/models"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createFn func(ctx context.Context, user models.User) (models.User, error)
	findFn   func(ctx context.Context, email string) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findFn != nil {
		return m.findFn(ctx, email)
	}
	return models.User{}, nil
}

// ─────────────────────────────────────────────
// Mock: store.NoteRepository
// ─────────────────────────────────────────────

type mockNoteRepository struct {
	listFn     func(ctx context.Context, userID int64, tag string) ([]models.Note, error)
	searchFn   func(ctx context.Context, userID int64, query string) ([]models.Note, error)
	listTagsFn func(ctx context.Context, userID int64) ([]string, error)
	getFn      func(ctx context.Context, userID, noteID int64) (models.Note, error)
	createFn   func(ctx context.Context, note models.Note) (models.Note, error)
	updateFn   func(ctx context.Context, note models.Note) (models.Note, error)
	deleteFn   func(ctx context.Context, userID, noteID int64) error
}

func (m *mockNoteRepository) ListNotes(ctx context.Context, userID int64, tag string) ([]models.Note, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID, tag)
	}
	return nil, nil
}

func (m *mockNoteRepository) SearchNotes(ctx context.Context, userID int64, query string) ([]models.Note, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, userID, query)
	}
	return nil, nil
}

func (m *mockNoteRepository) ListTags(ctx context.Context, userID int64) ([]string, error) {
	if m.listTagsFn != nil {
		return m.listTagsFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockNoteRepository) GetNote(ctx context.Context, userID, noteID int64) (models.Note, error) {
	if m.getFn != nil {
		return m.getFn(ctx, userID, noteID)
	}
	return models.Note{}, nil
}

func (m *mockNoteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	if m.createFn != nil {
		return m.createFn(ctx, note)
	}
	return note, nil
}

func (m *mockNoteRepository) UpdateNote(ctx context.Context, note models.Note) (models.Note, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, note)
	}
	return note, nil
}

func (m *mockNoteRepository) DeleteNote(ctx context.Context, userID, noteID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID, noteID)
	}
	return nil
}
