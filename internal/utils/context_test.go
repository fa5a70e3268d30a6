package utils

import (
	"context"
	"testing"
)

func TestGetUserIDFromContext_Found(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, int64(42))

	id, ok := GetUserIDFromContext(ctx)
	if !ok {
		t.Fatal("expected user ID to be found")
	}
	if id != 42 {
		t.Errorf("expected 42, got %d", id)
	}
}

func TestGetUserIDFromContext_Missing(t *testing.T) {
	_, ok := GetUserIDFromContext(context.Background())
	if ok {
		t.Error("expected ok to be false for empty context")
	}
}

func TestGetUserIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, "42")

	_, ok := GetUserIDFromContext(ctx)
	if ok {
		t.Error("expected ok to be false for non-int64 value")
	}
}

func TestContextKey_String(t *testing.T) {
	if UserIDCtxKey.String() != "userID" {
		t.Errorf("expected 'userID', got %q", UserIDCtxKey.String())
	}
}
