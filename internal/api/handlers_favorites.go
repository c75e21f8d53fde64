// BuyMove - Vehicle Marketplace Backend
// Copyright 2026 BuyMove Team
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/buymove/backend

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/buymove/backend/internal/auth"
)

// ListFavorites handles GET /api/v1/favorites. Each entry embeds the
// current vehicle document, or null when the vehicle has been deleted
// since it was favorited.
func (h *Handler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	user := auth.CurrentUser(r.Context())
	if user == nil {
		rw.Unauthorized("Not authenticated")
		return
	}

	favorites, err := h.favorites.List(r.Context(), user.ID.Hex())
	if err != nil {
		h.storeError(rw, err)
		return
	}

	rw.Success(favorites)
}

// AddFavorite handles POST /api/v1/favorites. Adding a vehicle that is
// already favorited returns the existing entry rather than an error.
func (h *Handler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	user := auth.CurrentUser(r.Context())
	if user == nil {
		rw.Unauthorized("Not authenticated")
		return
	}

	var req AddFavoriteRequest
	if !decodeAndValidate(rw, r, &req) {
		return
	}

	favorite, err := h.favorites.Add(r.Context(), user.ID.Hex(), req.VehicleID)
	if err != nil {
		h.storeError(rw, err)
		return
	}

	rw.Created(favorite)
}

// RemoveFavorite handles DELETE /api/v1/favorites/{vehicleID}.
func (h *Handler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	user := auth.CurrentUser(r.Context())
	if user == nil {
		rw.Unauthorized("Not authenticated")
		return
	}

	err := h.favorites.Remove(r.Context(), user.ID.Hex(), chi.URLParam(r, "vehicleID"))
	if err != nil {
		h.storeError(rw, err)
		return
	}

	rw.NoContent()
}
