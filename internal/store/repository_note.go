package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"notewell/internal/logger"
	"notewell/models"
)

// noteRepository is the SQL-backed implementation of [NoteRepository]. It
// executes all note CRUD operations against the "notes" table using the
// embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (user_id, note_id, etc.).
type noteRepository struct {
	*DB
	logger *logger.Logger
}

// NewNoteRepository constructs a [NoteRepository] backed by the provided
// database connection and logger.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("NoteRepository created")
	return &noteRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *noteRepository) ListNotes(ctx context.Context, userID int64, tag string) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListNotesQuery(r.builder, userID, tag)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.ListNotes").
			Int64("user_id", userID).
			Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryNotes(ctx, "noteRepository.ListNotes", userID, query, args)
}

func (r *noteRepository) SearchNotes(ctx context.Context, userID int64, searchQuery string) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSearchNotesQuery(r.builder, userID, searchQuery)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.SearchNotes").
			Int64("user_id", userID).
			Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryNotes(ctx, "noteRepository.SearchNotes", userID, query, args)
}

// ListTags collects the tags columns of the user's notes, splits the
// comma-separated values and returns the distinct set sorted alphabetically.
func (r *noteRepository) ListTags(ctx context.Context, userID int64) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectTagsQuery(r.builder, userID)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.ListTags").
			Int64("user_id", userID).
			Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.queryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.ListTags").
			Int64("user_id", userID).
			Msg("failed to execute tags query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	seen := make(map[string]struct{})
	for rows.Next() {
		var tags string
		if scanErr := rows.Scan(&tags); scanErr != nil {
			log.Err(scanErr).
				Str("func", "noteRepository.ListTags").
				Int64("user_id", userID).
				Msg("failed to scan tags row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		for _, tag := range models.SplitTags(tags) {
			seen[tag] = struct{}{}
		}
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "noteRepository.ListTags").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	result := make([]string, 0, len(seen))
	for tag := range seen {
		result = append(result, tag)
	}
	sort.Strings(result)

	return result, nil
}

func (r *noteRepository) GetNote(ctx context.Context, userID, noteID int64) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetNoteQuery(r.builder, userID, noteID)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.GetNote").
			Int64("user_id", userID).
			Int64("note_id", noteID).
			Msg("failed to build query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	note, err := r.scanNoteRowRetrying(ctx, query, args)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotFound
		}
		log.Err(err).
			Str("func", "noteRepository.GetNote").
			Int64("user_id", userID).
			Int64("note_id", noteID).
			Msg("failed to scan note row")
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return note, nil
}

func (r *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertNoteQuery(r.builder, note, time.Now().UTC())
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.CreateNote").
			Int64("user_id", note.UserID).
			Msg("failed to build query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	saved, err := r.scanNoteRowRetrying(ctx, query, args)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotSaved
		}
		log.Err(err).
			Str("func", "noteRepository.CreateNote").
			Int64("user_id", note.UserID).
			Msg("failed to insert note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return saved, nil
}

func (r *noteRepository) UpdateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateNoteQuery(r.builder, note, time.Now().UTC())
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.UpdateNote").
			Int64("user_id", note.UserID).
			Int64("note_id", note.ID).
			Msg("failed to build query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	saved, err := r.scanNoteRowRetrying(ctx, query, args)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotFound
		}
		log.Err(err).
			Str("func", "noteRepository.UpdateNote").
			Int64("user_id", note.UserID).
			Int64("note_id", note.ID).
			Msg("failed to update note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return saved, nil
}

func (r *noteRepository) DeleteNote(ctx context.Context, userID, noteID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteNoteQuery(r.builder, userID, noteID)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.DeleteNote").
			Int64("user_id", userID).
			Int64("note_id", noteID).
			Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.execContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.DeleteNote").
			Int64("user_id", userID).
			Int64("note_id", noteID).
			Msg("failed to delete note")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}

// queryNotes runs a multi-row note query and scans the full result set.
func (r *noteRepository) queryNotes(ctx context.Context, funcName string, userID int64, query string, args []any) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	rows, err := r.queryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", funcName).
			Int64("user_id", userID).
			Msg("failed to execute notes query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0, 50)

	for rows.Next() {
		var note models.Note

		scanErr := rows.Scan(
			&note.ID,
			&note.UserID,
			&note.Title,
			&note.Content,
			&note.Summary,
			&note.Tags,
			&note.CreatedAt,
			&note.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", funcName).
				Int64("user_id", userID).
				Msg("failed to scan note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		notes = append(notes, note)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", funcName).
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return notes, nil
}

// scanNoteRowRetrying runs a single-row note query under the connection's
// transient-error retry policy. Row errors surface on Scan, so the query and
// the scan retry as one unit.
func (r *noteRepository) scanNoteRowRetrying(ctx context.Context, query string, args []any) (models.Note, error) {
	var note models.Note
	err := r.retry(ctx, func() error {
		var scanErr error
		note, scanErr = r.scanNoteRow(r.DB.QueryRowContext(ctx, query, args...))
		return scanErr
	})

	return note, err
}

func (r *noteRepository) scanNoteRow(row *sql.Row) (models.Note, error) {
	var note models.Note
	err := row.Scan(
		&note.ID,
		&note.UserID,
		&note.Title,
		&note.Content,
		&note.Summary,
		&note.Tags,
		&note.CreatedAt,
		&note.UpdatedAt,
	)

	return note, err
}
