// BuyMove - Vehicle Marketplace Backend
// Copyright 2026 BuyMove Team
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/buymove/backend

package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/buymove/backend/internal/models"
)

// fakeUserResolver serves a single in-memory user keyed by hex ID.
type fakeUserResolver struct {
	user *models.User
	err  error
}

func (f *fakeUserResolver) ByID(_ context.Context, id string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.user != nil && f.user.ID.Hex() == id {
		return f.user, nil
	}
	return nil, nil
}

func authTestSetup(t *testing.T) (*JWTManager, *models.User) {
	t.Helper()
	m := testJWTManager(t, time.Hour)
	user := &models.User{
		ID:    primitive.NewObjectID(),
		Email: "alice@example.com",
		Roles: []string{models.RoleCustomer},
	}
	return m, user
}

func TestAuthenticate_ValidToken(t *testing.T) {
	m, user := authTestSetup(t)
	mw := NewMiddleware(m, &fakeUserResolver{user: user})

	token, err := m.GenerateToken(user.ID.Hex())
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	var gotUser *models.User
	handler := mw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser = CurrentUser(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if gotUser == nil || gotUser.ID != user.ID {
		t.Error("Expected authenticated user in request context")
	}
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	m, user := authTestSetup(t)
	mw := NewMiddleware(m, &fakeUserResolver{user: user})

	handler := mw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("Handler should not run without a token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401, got %d", rec.Code)
	}
	if rec.Header().Get("WWW-Authenticate") != "Bearer" {
		t.Error("Expected WWW-Authenticate: Bearer header")
	}
}

func TestAuthenticate_MalformedHeader(t *testing.T) {
	m, user := authTestSetup(t)
	mw := NewMiddleware(m, &fakeUserResolver{user: user})

	handler := mw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("Handler should not run with a malformed header")
	}))

	for _, header := range []string{"Basic dXNlcjpwYXNz", "Bearer", "token-without-scheme"} {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("Header %q: expected 401, got %d", header, rec.Code)
		}
	}
}

func TestAuthenticate_DeletedUser(t *testing.T) {
	m, user := authTestSetup(t)
	// Resolver knows nobody; the token subject no longer exists
	mw := NewMiddleware(m, &fakeUserResolver{})

	token, err := m.GenerateToken(user.ID.Hex())
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	handler := mw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("Handler should not run for a deleted user")
	}))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401, got %d", rec.Code)
	}
}

func TestAuthenticate_ResolverError(t *testing.T) {
	m, user := authTestSetup(t)
	mw := NewMiddleware(m, &fakeUserResolver{err: errors.New("connection reset")})

	token, err := m.GenerateToken(user.ID.Hex())
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	handler := mw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("Handler should not run when the resolver fails")
	}))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401, got %d", rec.Code)
	}
}

func TestCurrentUser_EmptyContext(t *testing.T) {
	if CurrentUser(context.Background()) != nil {
		t.Error("Expected nil user for bare context")
	}
}
