// BuyMove - Vehicle Marketplace Backend
// Copyright 2026 BuyMove Team
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/buymove/backend

// Package api provides HTTP routing using the Chi router.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/buymove/backend/internal/auth"
	"github.com/buymove/backend/internal/config"
	"github.com/buymove/backend/internal/middleware"
)

// Router assembles the HTTP routing tree from the handlers and
// middleware stack.
type Router struct {
	handler *Handler
	authmw  *auth.Middleware
	cfg     *config.Config
}

// NewRouter creates a Router.
func NewRouter(handler *Handler, authmw *auth.Middleware, cfg *config.Config) *Router {
	return &Router{handler: handler, authmw: authmw, cfg: cfg}
}

// Setup builds the full routing tree. Vehicle reads are public;
// every mutation and any per-user resource requires a bearer token.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   router.cfg.Security.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(middleware.PrometheusMetrics)

	if !router.cfg.Security.RateLimitDisabled {
		r.Use(httprate.LimitByIP(
			router.cfg.Security.RateLimitReqs,
			router.cfg.Security.RateLimitWindow,
		))
	}

	r.Get("/", router.handler.Root)
	r.Get("/health", router.handler.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", router.handler.Register)

			// Login gets its own stricter limit against brute force.
			login := r.With()
			if !router.cfg.Security.RateLimitDisabled {
				login = r.With(httprate.LimitByIP(
					router.cfg.Security.LoginRateLimitReqs,
					router.cfg.Security.LoginRateLimitWindow,
				))
			}
			login.Post("/login", router.handler.Login)

			r.With(router.authmw.Authenticate).Get("/me", router.handler.Me)
		})

		r.With(router.authmw.Authenticate).Get("/users/me", router.handler.Me)

		r.Route("/vehicles", func(r chi.Router) {
			r.Get("/", router.handler.ListVehicles)
			r.Get("/{id}", router.handler.GetVehicle)
			r.Get("/{id}/recommendations", router.handler.RecommendVehicles)

			r.Group(func(r chi.Router) {
				r.Use(router.authmw.Authenticate)
				r.Post("/", router.handler.CreateVehicle)
				r.Patch("/{id}", router.handler.UpdateVehicle)
				r.Delete("/{id}", router.handler.DeleteVehicle)
			})
		})

		r.Route("/favorites", func(r chi.Router) {
			r.Use(router.authmw.Authenticate)
			r.Get("/", router.handler.ListFavorites)
			r.Post("/", router.handler.AddFavorite)
			r.Delete("/{vehicleID}", router.handler.RemoveFavorite)
		})
	})

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		NewResponseWriter(w, req).NotFound("Endpoint not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		NewResponseWriter(w, req).Error(http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, "Method not allowed")
	})

	return r
}
