package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"notewell/internal/logger"
	"notewell/models"
)

type userRepository struct {
	*DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("UserRepository created")
	return &userRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Insert("users").
		Columns("email", "password_hash").
		Values(user.Email, user.PasswordHash).
		Suffix("RETURNING user_id, email, password_hash, created_at").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "userRepository.CreateUser").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	saved, err := r.scanUserRowRetrying(ctx, query, args)
	if err != nil {
		if isUniqueViolation(err) {
			return models.User{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "userRepository.CreateUser").Msg("failed to insert user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return saved, nil
}

func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select("user_id", "email", "password_hash", "created_at").
		From("users").
		Where("email = ?", email).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "userRepository.FindUserByEmail").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	found, err := r.scanUserRowRetrying(ctx, query, args)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "userRepository.FindUserByEmail").Msg("failed to scan user row")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// scanUserRowRetrying runs a single-row user query under the connection's
// transient-error retry policy.
func (r *userRepository) scanUserRowRetrying(ctx context.Context, query string, args []any) (models.User, error) {
	var user models.User
	err := r.retry(ctx, func() error {
		row := r.DB.QueryRowContext(ctx, query, args...)
		return row.Scan(&user.UserID, &user.Email, &user.PasswordHash, &user.CreatedAt)
	})

	return user, err
}
