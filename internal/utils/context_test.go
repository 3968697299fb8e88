// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-contact-manager/models"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestSessionCtxKey(t *testing.T) {
	if SessionCtxKey.String() != "session" {
		t.Errorf("expected 'session', got '%s'", SessionCtxKey.String())
	}
}

func TestGetSessionFromContext_Success(t *testing.T) {
	want := models.Session{Token: "token-1", UserID: 42, Username: "rcnj"}
	ctx := context.WithValue(context.Background(), SessionCtxKey, want)

	session, ok := GetSessionFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if session.UserID != 42 || session.Username != "rcnj" {
		t.Errorf("expected stored session, got %+v", session)
	}
}

func TestGetSessionFromContext_Missing(t *testing.T) {
	ctx := context.Background()

	session, ok := GetSessionFromContext(ctx)

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if session.Token != "" {
		t.Errorf("expected zero session, got %+v", session)
	}
}

func TestGetSessionFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), SessionCtxKey, "not-a-session")

	_, ok := GetSessionFromContext(ctx)

	if ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
}

func TestGetSessionFromContext_DifferentKey(t *testing.T) {
	otherKey := contextKey("otherKey")
	ctx := context.WithValue(context.Background(), otherKey, models.Session{Token: "token-1"})

	_, ok := GetSessionFromContext(ctx)

	if ok {
		t.Fatal("expected ok=false for different key, got true")
	}
}
