// BuyMove - Vehicle Marketplace Backend
// Copyright 2026 BuyMove Team
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/buymove/backend

package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/buymove/backend/internal/logging"
	"github.com/buymove/backend/internal/models"
)

type contextKey string

// userContextKey carries the authenticated *models.User through the
// request context.
const userContextKey contextKey = "current_user"

// UserResolver resolves a token subject to a stored account. Implemented
// by the user store.
type UserResolver interface {
	ByID(ctx context.Context, id string) (*models.User, error)
}

// Middleware enforces bearer authentication on protected routes.
type Middleware struct {
	jwt   *JWTManager
	users UserResolver
}

// NewMiddleware creates the authentication middleware.
func NewMiddleware(jwt *JWTManager, users UserResolver) *Middleware {
	return &Middleware{jwt: jwt, users: users}
}

// Authenticate rejects requests without a valid bearer token whose
// subject resolves to an existing account. The account is stored in the
// request context for handlers.
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok {
			writeUnauthorized(w, "Missing bearer token")
			return
		}

		subject, err := m.jwt.ValidateToken(token)
		if err != nil {
			logging.Debug().Err(err).Msg("Token validation failed")
			writeUnauthorized(w, "Invalid or expired token")
			return
		}

		user, err := m.users.ByID(r.Context(), subject)
		if err != nil {
			logging.Error().Err(err).Msg("Failed to resolve token subject")
			writeUnauthorized(w, "Could not validate credentials")
			return
		}
		if user == nil {
			writeUnauthorized(w, "Could not validate credentials")
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// bearerToken extracts the token from an Authorization header.
func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	return strings.TrimSpace(header[len(prefix):]), true
}

// CurrentUser returns the authenticated user stored in the context, or
// nil outside an authenticated request.
func CurrentUser(ctx context.Context) *models.User {
	if user, ok := ctx.Value(userContextKey).(*models.User); ok {
		return user
	}
	return nil
}

// ContextWithUser stores a user in the context. Exposed for handler
// tests.
func ContextWithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// writeUnauthorized writes a 401 in the API envelope shape without
// importing the api package.
func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("WWW-Authenticate", "Bearer")
	w.WriteHeader(http.StatusUnauthorized)

	body := map[string]interface{}{
		"success": false,
		"error": map[string]string{
			"code":    "UNAUTHORIZED",
			"message": message,
		},
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.Error().Err(err).Msg("Failed to encode unauthorized response")
	}
}
