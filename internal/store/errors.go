// BuyMove - Vehicle Marketplace Backend
// Copyright 2026 BuyMove Team
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/buymove/backend

package store

import "errors"

// Sentinel errors returned by store operations. Callers match them with
// errors.Is; the api layer translates them to HTTP status codes.
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidID indicates a malformed ObjectID in a request path or body.
	ErrInvalidID = errors.New("invalid identifier")

	// ErrConflict indicates a unique-constraint violation, e.g. a
	// duplicate email at registration.
	ErrConflict = errors.New("conflict")

	// ErrInvalidCredentials is the uniform authentication failure. It is
	// returned for unknown email and wrong password alike, so responses
	// do not leak account existence.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrForbidden indicates the caller is authenticated but not
	// permitted to mutate the entity.
	ErrForbidden = errors.New("forbidden")
)
