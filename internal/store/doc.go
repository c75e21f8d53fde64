// BuyMove - Vehicle Marketplace Backend
// Copyright 2026 BuyMove Team
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/buymove/backend

// Package store implements the persistence layer over MongoDB: user
// accounts, vehicle listings with dynamic search filters and
// recommendations, and the per-user favorites relation.
//
// Query construction (filter.go, recommend.go) is pure and unit-tested
// independently of the database. Store methods return sentinel errors
// from errors.go; the api layer maps them to HTTP status codes.
package store
