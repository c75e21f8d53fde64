// BuyMove - Vehicle Marketplace Backend
// Copyright 2026 BuyMove Team
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/buymove/backend

// Package api implements the HTTP handlers for the marketplace REST API.
package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/goccy/go-json"

	"github.com/buymove/backend/internal/auth"
	"github.com/buymove/backend/internal/config"
	"github.com/buymove/backend/internal/models"
	"github.com/buymove/backend/internal/store"
	"github.com/buymove/backend/internal/validation"
)

// UserStore is the subset of the user store the handlers need.
type UserStore interface {
	Create(ctx context.Context, input models.NewUser) (*models.PublicUser, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
}

// VehicleStore is the subset of the vehicle store the handlers need.
type VehicleStore interface {
	Search(ctx context.Context, criteria store.SearchCriteria, page, pageSize int) ([]*models.PublicVehicle, int64, error)
	Get(ctx context.Context, id string) (*models.PublicVehicle, error)
	Create(ctx context.Context, input models.NewVehicle, ownerID string) (*models.PublicVehicle, error)
	Update(ctx context.Context, id string, patch models.VehiclePatch) (*models.PublicVehicle, error)
	Delete(ctx context.Context, id string) error
	Recommend(ctx context.Context, id string, limit int) ([]*models.PublicVehicle, error)
	EnsureOwnership(ctx context.Context, vehicleID string, caller *models.User) error
}

// FavoriteStore is the subset of the favorite store the handlers need.
type FavoriteStore interface {
	Add(ctx context.Context, userID, vehicleID string) (*models.PublicFavorite, error)
	List(ctx context.Context, userID string) ([]*models.PublicFavorite, error)
	Remove(ctx context.Context, userID, vehicleID string) error
}

// Pinger reports backing store connectivity for health checks.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler holds the dependencies shared by all HTTP handlers.
type Handler struct {
	users     UserStore
	vehicles  VehicleStore
	favorites FavoriteStore
	jwt       *auth.JWTManager
	cfg       *config.Config
	pinger    Pinger
	startTime time.Time
}

// NewHandler creates a Handler wired to the given stores.
func NewHandler(users UserStore, vehicles VehicleStore, favorites FavoriteStore, jwt *auth.JWTManager, cfg *config.Config, pinger Pinger) *Handler {
	return &Handler{
		users:     users,
		vehicles:  vehicles,
		favorites: favorites,
		jwt:       jwt,
		cfg:       cfg,
		pinger:    pinger,
		startTime: time.Now(),
	}
}

// storeError translates store sentinel errors into HTTP responses.
// Unknown errors are logged and reported as a generic database error.
func (h *Handler) storeError(rw *ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrInvalidID):
		rw.BadRequest("Invalid identifier format")
	case errors.Is(err, store.ErrNotFound):
		rw.NotFound("Resource not found")
	case errors.Is(err, store.ErrConflict):
		rw.Conflict("Resource already exists")
	case errors.Is(err, store.ErrInvalidCredentials):
		rw.Unauthorized("Incorrect email or password")
	case errors.Is(err, store.ErrForbidden):
		rw.Forbidden("Not enough permissions to modify this vehicle")
	default:
		rw.DatabaseError(err)
	}
}

// decodeAndValidate decodes the request body into dst and runs struct
// validation. It writes the error response itself and reports whether
// the request may proceed.
func decodeAndValidate(rw *ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		rw.BadRequest("Invalid JSON in request body")
		return false
	}
	if err := validation.ValidateStruct(dst); err != nil {
		var reqErr *validation.RequestValidationError
		if errors.As(err, &reqErr) {
			rw.ValidationError("Request validation failed", reqErr.Fields())
			return false
		}
		rw.BadRequest("Invalid request body")
		return false
	}
	return true
}

// contextWithPingTimeout bounds health-check pings so a wedged Mongo
// connection cannot stall the probe.
func contextWithPingTimeout(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), 2*time.Second)
}

// validateQuery runs struct validation over parsed query parameters
// and writes the error response on failure.
func validateQuery(rw *ResponseWriter, dst interface{}) error {
	err := validation.ValidateStruct(dst)
	if err == nil {
		return nil
	}
	var reqErr *validation.RequestValidationError
	if errors.As(err, &reqErr) {
		rw.ValidationError("Query parameter validation failed", reqErr.Fields())
	} else {
		rw.BadRequest("Invalid query parameters")
	}
	return err
}

// queryInt parses an optional integer query parameter. The boolean
// result is false when the parameter is present but malformed, in
// which case an error response has already been written.
func queryInt(rw *ResponseWriter, r *http.Request, name string) (*int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		rw.BadRequest("Query parameter '" + name + "' must be an integer")
		return nil, false
	}
	return &v, true
}

// queryFloat parses an optional float query parameter.
func queryFloat(rw *ResponseWriter, r *http.Request, name string) (*float64, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		rw.BadRequest("Query parameter '" + name + "' must be a number")
		return nil, false
	}
	return &v, true
}
