// BuyMove - Vehicle Marketplace Backend
// Copyright 2026 BuyMove Team
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/buymove/backend

package api

import (
	"net/http"

	"github.com/buymove/backend/internal/auth"
	"github.com/buymove/backend/internal/models"
)

// Register handles POST /api/v1/auth/register.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req RegisterRequest
	if !decodeAndValidate(rw, r, &req) {
		return
	}

	user, err := h.users.Create(r.Context(), models.NewUser{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Phone:    req.Phone,
		Document: req.Document,
	})
	if err != nil {
		h.storeError(rw, err)
		return
	}

	rw.Created(user)
}

// Login handles POST /api/v1/auth/login. Credential failures are
// reported uniformly so the response does not reveal whether the
// email is registered.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req LoginRequest
	if !decodeAndValidate(rw, r, &req) {
		return
	}

	user, err := h.users.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		h.storeError(rw, err)
		return
	}

	token, err := h.jwt.GenerateToken(user.ID.Hex())
	if err != nil {
		rw.InternalError("Could not issue access token")
		return
	}

	rw.Success(TokenResponse{AccessToken: token, TokenType: "bearer"})
}

// Me handles GET /api/v1/auth/me and GET /api/v1/users/me. The
// authentication middleware has already resolved the caller.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	user := auth.CurrentUser(r.Context())
	if user == nil {
		rw.Unauthorized("Not authenticated")
		return
	}

	rw.Success(user.Public())
}
