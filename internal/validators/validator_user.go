package validators

import (
	"context"

	"notewell/models"
)

const (
	FieldEmail    = "email"
	FieldPassword = "password"
)

// bcryptMaxPasswordLength is the longest password bcrypt will hash. Longer
// inputs are rejected up front instead of surfacing as a hashing error.
const bcryptMaxPasswordLength = 72

// CredentialsValidator enforces the rules for registration and login
// credentials carried in a [models.User].
type CredentialsValidator struct {
}

func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateCredentials(ctx, value, fields...)
	case *models.User:
		return v.validateCredentials(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialsValidator) validateCredentials(_ context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, field := range fields {
		switch field {
		case FieldEmail:
			if user.Email == "" {
				return ErrEmptyEmail
			}
		case FieldPassword:
			if user.Password == "" {
				return ErrEmptyPassword
			}
			if len(user.Password) > bcryptMaxPasswordLength {
				return ErrPasswordTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
