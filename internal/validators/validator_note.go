package validators

import (
	"context"
	"strings"

	"notewell/models"
)

const (
	FieldTitle   = "title"
	FieldContent = "content"
	FieldTags    = "tags"
)

// NoteDraftValidator enforces the business rules for user-submitted note
// drafts. Content and tags accept any value: content may be empty and tags
// are normalised downstream, so only the title carries a hard rule.
type NoteDraftValidator struct {
}

func NewNoteDraftValidator() Validator {
	return &NoteDraftValidator{}
}

func (v *NoteDraftValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.NoteDraft:
		return v.validateDraft(ctx, value, fields...)
	case *models.NoteDraft:
		return v.validateDraft(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *NoteDraftValidator) validateDraft(_ context.Context, draft models.NoteDraft, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldContent, FieldTags}
	}

	for _, field := range fields {
		switch field {
		case FieldTitle:
			if strings.TrimSpace(draft.Title) == "" {
				return ErrEmptyTitle
			}
		case FieldContent, FieldTags:
			// no constraints
		default:
			return ErrUnknownField
		}
	}

	return nil
}
