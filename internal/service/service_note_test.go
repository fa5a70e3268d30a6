package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notewell/internal/logger"
	"notewell/internal/store"
	"notewell/internal/validators"
	"notewell/models"
)

func TestCreateNote_Success(t *testing.T) {
	var captured models.Note
	repo := &mockNoteRepository{
		createFn: func(ctx context.Context, note models.Note) (models.Note, error) {
			captured = note
			note.ID = 10
			return note, nil
		},
	}
	svc := NewNoteService(repo, validators.NewNoteDraftValidator(), logger.Nop())

	saved, err := svc.CreateNote(context.Background(), 42, models.NoteDraft{
		Title:   "  groceries  ",
		Content: "buy milk and eggs and bread for the weekend breakfast plans",
		Tags:    "shopping, home,shopping",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(10), saved.ID)
	assert.Equal(t, int64(42), captured.UserID)
	assert.Equal(t, "groceries", captured.Title, "title should be trimmed")
	assert.Equal(t, "shopping,home", captured.Tags, "tags should be deduplicated and rejoined")
	assert.Equal(t, "buy milk and eggs and bread for the weekend breakfast plans...", captured.Summary)
}

func TestCreateNote_SummaryTruncated(t *testing.T) {
	var captured models.Note
	repo := &mockNoteRepository{
		createFn: func(ctx context.Context, note models.Note) (models.Note, error) {
			captured = note
			return note, nil
		},
	}
	svc := NewNoteService(repo, validators.NewNoteDraftValidator(), logger.Nop())

	_, err := svc.CreateNote(context.Background(), 42, models.NoteDraft{
		Title: "long",
		Content: "one two three four five six seven eight nine ten " +
			"eleven twelve thirteen fourteen fifteen sixteen seventeen",
	})

	require.NoError(t, err)
	assert.Equal(t,
		"one two three four five six seven eight nine ten eleven twelve thirteen fourteen fifteen...",
		captured.Summary)
}

func TestCreateNote_EmptyTitle(t *testing.T) {
	called := false
	repo := &mockNoteRepository{
		createFn: func(ctx context.Context, note models.Note) (models.Note, error) {
			called = true
			return note, nil
		},
	}
	svc := NewNoteService(repo, validators.NewNoteDraftValidator(), logger.Nop())

	tests := []string{"", "   ", "\t\n"}
	for _, title := range tests {
		_, err := svc.CreateNote(context.Background(), 42, models.NoteDraft{Title: title, Content: "body"})
		assert.ErrorIs(t, err, validators.ErrEmptyTitle)
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	}
	assert.False(t, called, "repository must not be touched for invalid drafts")
}

func TestUpdateNote_Success(t *testing.T) {
	var captured models.Note
	repo := &mockNoteRepository{
		updateFn: func(ctx context.Context, note models.Note) (models.Note, error) {
			captured = note
			return note, nil
		},
	}
	svc := NewNoteService(repo, validators.NewNoteDraftValidator(), logger.Nop())

	_, err := svc.UpdateNote(context.Background(), 42, 5, models.NoteDraft{
		Title:   "updated",
		Content: "new body",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(5), captured.ID)
	assert.Equal(t, int64(42), captured.UserID)
	assert.Equal(t, "new body...", captured.Summary)
}

func TestUpdateNote_NotFound(t *testing.T) {
	repo := &mockNoteRepository{
		updateFn: func(ctx context.Context, note models.Note) (models.Note, error) {
			return models.Note{}, store.ErrNoteNotFound
		},
	}
	svc := NewNoteService(repo, validators.NewNoteDraftValidator(), logger.Nop())

	_, err := svc.UpdateNote(context.Background(), 42, 99, models.NoteDraft{Title: "t"})
	assert.ErrorIs(t, err, store.ErrNoteNotFound)
}

func TestDeleteNote_Success(t *testing.T) {
	var gotUserID, gotNoteID int64
	repo := &mockNoteRepository{
		deleteFn: func(ctx context.Context, userID, noteID int64) error {
			gotUserID, gotNoteID = userID, noteID
			return nil
		},
	}
	svc := NewNoteService(repo, validators.NewNoteDraftValidator(), logger.Nop())

	require.NoError(t, svc.DeleteNote(context.Background(), 42, 5))
	assert.Equal(t, int64(42), gotUserID)
	assert.Equal(t, int64(5), gotNoteID)
}

func TestDeleteNote_Error(t *testing.T) {
	repo := &mockNoteRepository{
		deleteFn: func(ctx context.Context, userID, noteID int64) error {
			return store.ErrNoteNotFound
		},
	}
	svc := NewNoteService(repo, validators.NewNoteDraftValidator(), logger.Nop())

	err := svc.DeleteNote(context.Background(), 42, 5)
	assert.ErrorIs(t, err, store.ErrNoteNotFound)
}

func TestListNotes_TrimsTag(t *testing.T) {
	var gotTag string
	repo := &mockNoteRepository{
		listFn: func(ctx context.Context, userID int64, tag string) ([]models.Note, error) {
			gotTag = tag
			return []models.Note{}, nil
		},
	}
	svc := NewNoteService(repo, validators.NewNoteDraftValidator(), logger.Nop())

	_, err := svc.ListNotes(context.Background(), 42, "  work ")
	require.NoError(t, err)
	assert.Equal(t, "work", gotTag)
}

func TestSearchNotes_EmptyQueryFallsBackToList(t *testing.T) {
	listCalled := false
	searchCalled := false
	repo := &mockNoteRepository{
		listFn: func(ctx context.Context, userID int64, tag string) ([]models.Note, error) {
			listCalled = true
			return nil, nil
		},
		searchFn: func(ctx context.Context, userID int64, query string) ([]models.Note, error) {
			searchCalled = true
			return nil, nil
		},
	}
	svc := NewNoteService(repo, validators.NewNoteDraftValidator(), logger.Nop())

	_, err := svc.SearchNotes(context.Background(), 42, "   ")
	require.NoError(t, err)
	assert.True(t, listCalled)
	assert.False(t, searchCalled)
}

func TestSearchNotes_DelegatesQuery(t *testing.T) {
	var gotQuery string
	repo := &mockNoteRepository{
		searchFn: func(ctx context.Context, userID int64, query string) ([]models.Note, error) {
			gotQuery = query
			return []models.Note{{ID: 1}}, nil
		},
	}
	svc := NewNoteService(repo, validators.NewNoteDraftValidator(), logger.Nop())

	notes, err := svc.SearchNotes(context.Background(), 42, " milk ")
	require.NoError(t, err)
	assert.Equal(t, "milk", gotQuery)
	assert.Len(t, notes, 1)
}

func TestListTags_Error(t *testing.T) {
	repoErr := errors.New("boom")
	repo := &mockNoteRepository{
		listTagsFn: func(ctx context.Context, userID int64) ([]string, error) {
			return nil, repoErr
		},
	}
	svc := NewNoteService(repo, validators.NewNoteDraftValidator(), logger.Nop())

	_, err := svc.ListTags(context.Background(), 42)
	assert.ErrorIs(t, err, repoErr)
}

func TestGetNote_Delegates(t *testing.T) {
	repo := &mockNoteRepository{
		getFn: func(ctx context.Context, userID, noteID int64) (models.Note, error) {
			return models.Note{ID: noteID, UserID: userID}, nil
		},
	}
	svc := NewNoteService(repo, validators.NewNoteDraftValidator(), logger.Nop())

	note, err := svc.GetNote(context.Background(), 42, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), note.ID)
}
