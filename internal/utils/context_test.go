// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/calm-companion/models"
)

func TestContextKeyString(t *testing.T) {
	if UserIDCtxKey.String() != "userID" {
		t.Errorf("expected 'userID', got '%s'", UserIDCtxKey.String())
	}
	if RoleCtxKey.String() != "role" {
		t.Errorf("expected 'role', got '%s'", RoleCtxKey.String())
	}
}

func TestWithUser(t *testing.T) {
	ctx := WithUser(context.Background(), 42, models.RoleAdmin)

	userID, ok := GetUserIDFromContext(ctx)
	if !ok || userID != 42 {
		t.Errorf("expected userID=42, got %d (ok=%v)", userID, ok)
	}

	role, ok := GetRoleFromContext(ctx)
	if !ok || role != models.RoleAdmin {
		t.Errorf("expected role admin, got %q (ok=%v)", role, ok)
	}
}

func TestGetUserIDFromContext_Missing(t *testing.T) {
	if _, ok := GetUserIDFromContext(context.Background()); ok {
		t.Fatal("expected ok=false, got true")
	}
	if _, ok := GetRoleFromContext(context.Background()); ok {
		t.Fatal("expected ok=false, got true")
	}
}

func TestGetUserIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, "not-an-int64")
	ctx = context.WithValue(ctx, RoleCtxKey, "admin")

	if _, ok := GetUserIDFromContext(ctx); ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
	if _, ok := GetRoleFromContext(ctx); ok {
		t.Fatal("expected ok=false for untyped role, got true")
	}
}
