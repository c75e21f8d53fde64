// BuyMove - Vehicle Marketplace Backend
// Copyright 2026 BuyMove Team
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/buymove/backend

package api

import (
	"net/http"
	"time"
)

// HealthResponse is the payload of GET /health.
type HealthResponse struct {
	Status      string `json:"status"`
	Environment string `json:"environment"`
	Uptime      string `json:"uptime"`
	Database    string `json:"database"`
}

// Root handles GET /. It returns a small service banner so load
// balancer probes and humans hitting the bare host get a sane answer.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	rw.Success(map[string]string{
		"service": h.cfg.App.Name,
		"message": "BuyMove vehicle marketplace API",
	})
}

// Health handles GET /health. Database connectivity is reported but
// does not fail the check; the API can still serve cached or static
// responses while Mongo is unreachable.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	dbStatus := "ok"
	if h.pinger != nil {
		ctx, cancel := contextWithPingTimeout(r)
		defer cancel()
		if err := h.pinger.Ping(ctx); err != nil {
			dbStatus = "unreachable"
		}
	} else {
		dbStatus = "unconfigured"
	}

	rw.Success(HealthResponse{
		Status:      "healthy",
		Environment: h.cfg.App.Environment,
		Uptime:      time.Since(h.startTime).Round(time.Second).String(),
		Database:    dbStatus,
	})
}
