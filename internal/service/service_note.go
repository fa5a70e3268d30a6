package service

import (
	"context"
	"fmt"
	"strings"

	"notewell/internal/logger"
	"notewell/internal/store"
	"notewell/internal/validators"
	"notewell/models"
)

// summaryWordLimit is the number of leading content words kept in the
// automatically generated note summary.
const summaryWordLimit = 15

// noteService is the concrete implementation of NoteService. It validates
// and normalises incoming drafts, derives the stored summary from the note
// content, and delegates persistence to a NoteRepository.
type noteService struct {
	noteRepository store.NoteRepository
	validator      validators.Validator
	logger         *logger.Logger
}

// NewNoteService constructs a NoteService backed by the given repository and
// draft validator.
func NewNoteService(noteRepository store.NoteRepository, validator validators.Validator, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		validator:      validator,
		logger:         logger,
	}
}

func (s *noteService) ListNotes(ctx context.Context, userID int64, tag string) ([]models.Note, error) {
	notes, err := s.noteRepository.ListNotes(ctx, userID, strings.TrimSpace(tag))
	if err != nil {
		return nil, fmt.Errorf("listing notes failed: %w", err)
	}

	return notes, nil
}

func (s *noteService) SearchNotes(ctx context.Context, userID int64, query string) ([]models.Note, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		// An empty query matches everything, same as an unfiltered list.
		return s.ListNotes(ctx, userID, "")
	}

	notes, err := s.noteRepository.SearchNotes(ctx, userID, query)
	if err != nil {
		return nil, fmt.Errorf("searching notes failed: %w", err)
	}

	return notes, nil
}

func (s *noteService) ListTags(ctx context.Context, userID int64) ([]string, error) {
	tags, err := s.noteRepository.ListTags(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing tags failed: %w", err)
	}

	return tags, nil
}

func (s *noteService) GetNote(ctx context.Context, userID, noteID int64) (models.Note, error) {
	note, err := s.noteRepository.GetNote(ctx, userID, noteID)
	if err != nil {
		return models.Note{}, fmt.Errorf("getting note failed: %w", err)
	}

	return note, nil
}

func (s *noteService) CreateNote(ctx context.Context, userID int64, draft models.NoteDraft) (models.Note, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, draft); err != nil {
		log.Error().Int64("user_id", userID).Msg("invalid note draft")
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	saved, err := s.noteRepository.CreateNote(ctx, buildNote(userID, draft))
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("note creation ended with error")
		return models.Note{}, fmt.Errorf("note creation ended with error: %w", err)
	}

	return saved, nil
}

func (s *noteService) UpdateNote(ctx context.Context, userID, noteID int64, draft models.NoteDraft) (models.Note, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, draft); err != nil {
		log.Error().Int64("user_id", userID).Int64("note_id", noteID).Msg("invalid note draft")
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	note := buildNote(userID, draft)
	note.ID = noteID

	saved, err := s.noteRepository.UpdateNote(ctx, note)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Int64("note_id", noteID).Msg("note update ended with error")
		return models.Note{}, fmt.Errorf("note update ended with error: %w", err)
	}

	return saved, nil
}

func (s *noteService) DeleteNote(ctx context.Context, userID, noteID int64) error {
	log := logger.FromContext(ctx)

	if err := s.noteRepository.DeleteNote(ctx, userID, noteID); err != nil {
		log.Err(err).Int64("user_id", userID).Int64("note_id", noteID).Msg("note deletion ended with error")
		return fmt.Errorf("note deletion ended with error: %w", err)
	}

	return nil
}

// buildNote normalises a validated draft into a persistable note. The title
// is trimmed, tags are deduplicated and rejoined in canonical comma-separated
// form, and the summary is derived from the leading words of the content.
func buildNote(userID int64, draft models.NoteDraft) models.Note {
	return models.Note{
		UserID:  userID,
		Title:   strings.TrimSpace(draft.Title),
		Content: draft.Content,
		Summary: models.Summarize(draft.Content, summaryWordLimit),
		Tags:    strings.Join(models.SplitTags(draft.Tags), ","),
	}
}
