// BuyMove - Vehicle Marketplace Backend
// Copyright 2026 BuyMove Team
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/buymove/backend

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/buymove/backend/internal/auth"
	"github.com/buymove/backend/internal/models"
	"github.com/buymove/backend/internal/store"
)

// ListVehicles handles GET /api/v1/vehicles. All filters are optional
// and combine with AND semantics; the free-text query searches title,
// description, brand and model.
func (h *Handler) ListVehicles(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	q := r.URL.Query()
	req := ListVehiclesRequest{
		Query:    q.Get("q"),
		Brand:    q.Get("brand"),
		Color:    q.Get("color"),
		Location: q.Get("location"),
		Page:     1,
		PageSize: h.cfg.API.DefaultPageSize,
	}

	var ok bool
	if req.Doors, ok = queryInt(rw, r, "doors"); !ok {
		return
	}
	if req.MinPrice, ok = queryFloat(rw, r, "min_price"); !ok {
		return
	}
	if req.MaxPrice, ok = queryFloat(rw, r, "max_price"); !ok {
		return
	}
	if page, ok := queryInt(rw, r, "page"); !ok {
		return
	} else if page != nil {
		req.Page = *page
	}
	if size, ok := queryInt(rw, r, "page_size"); !ok {
		return
	} else if size != nil {
		req.PageSize = *size
	}

	if err := validateQuery(rw, &req); err != nil {
		return
	}

	items, total, err := h.vehicles.Search(r.Context(), store.SearchCriteria{
		Query:    req.Query,
		Brand:    req.Brand,
		Color:    req.Color,
		Location: req.Location,
		Doors:    req.Doors,
		MinPrice: req.MinPrice,
		MaxPrice: req.MaxPrice,
	}, req.Page, req.PageSize)
	if err != nil {
		h.storeError(rw, err)
		return
	}

	rw.Success(VehicleListResponse{Items: items, Total: total})
}

// GetVehicle handles GET /api/v1/vehicles/{id}.
func (h *Handler) GetVehicle(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	vehicle, err := h.vehicles.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.storeError(rw, err)
		return
	}

	rw.Success(vehicle)
}

// CreateVehicle handles POST /api/v1/vehicles. The authenticated
// caller becomes the seller regardless of any seller_id in the body.
func (h *Handler) CreateVehicle(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	user := auth.CurrentUser(r.Context())
	if user == nil {
		rw.Unauthorized("Not authenticated")
		return
	}

	var req CreateVehicleRequest
	if !decodeAndValidate(rw, r, &req) {
		return
	}

	vehicle, err := h.vehicles.Create(r.Context(), models.NewVehicle{
		Title:        req.Title,
		Brand:        req.Brand,
		Model:        req.Model,
		Version:      req.Version,
		Year:         *req.Year,
		Price:        *req.Price,
		Mileage:      *req.Mileage,
		Color:        req.Color,
		FuelType:     req.FuelType,
		Transmission: req.Transmission,
		Doors:        req.Doors,
		Location:     req.Location,
		Description:  req.Description,
		Images:       req.Images,
		Features:     req.Features,
		SellerID:     req.SellerID,
	}, user.ID.Hex())
	if err != nil {
		h.storeError(rw, err)
		return
	}

	rw.Created(vehicle)
}

// UpdateVehicle handles PATCH /api/v1/vehicles/{id}. Ownership is
// checked before any field is touched.
func (h *Handler) UpdateVehicle(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	user := auth.CurrentUser(r.Context())
	if user == nil {
		rw.Unauthorized("Not authenticated")
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.vehicles.EnsureOwnership(r.Context(), id, user); err != nil {
		h.storeError(rw, err)
		return
	}

	var req UpdateVehicleRequest
	if !decodeAndValidate(rw, r, &req) {
		return
	}

	vehicle, err := h.vehicles.Update(r.Context(), id, models.VehiclePatch{
		Title:        req.Title,
		Brand:        req.Brand,
		Model:        req.Model,
		Version:      req.Version,
		Year:         req.Year,
		Price:        req.Price,
		Mileage:      req.Mileage,
		Color:        req.Color,
		FuelType:     req.FuelType,
		Transmission: req.Transmission,
		Doors:        req.Doors,
		Location:     req.Location,
		Description:  req.Description,
		Images:       req.Images,
		Features:     req.Features,
	})
	if err != nil {
		h.storeError(rw, err)
		return
	}

	rw.Success(vehicle)
}

// DeleteVehicle handles DELETE /api/v1/vehicles/{id}.
func (h *Handler) DeleteVehicle(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	user := auth.CurrentUser(r.Context())
	if user == nil {
		rw.Unauthorized("Not authenticated")
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.vehicles.EnsureOwnership(r.Context(), id, user); err != nil {
		h.storeError(rw, err)
		return
	}

	if err := h.vehicles.Delete(r.Context(), id); err != nil {
		h.storeError(rw, err)
		return
	}

	rw.NoContent()
}

// RecommendVehicles handles GET /api/v1/vehicles/{id}/recommendations.
func (h *Handler) RecommendVehicles(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	items, err := h.vehicles.Recommend(r.Context(), chi.URLParam(r, "id"), h.cfg.API.RecommendLimit)
	if err != nil {
		h.storeError(rw, err)
		return
	}

	rw.Success(items)
}
