// BuyMove - Vehicle Marketplace Backend
// Copyright 2026 BuyMove Team
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/buymove/backend

// Package models defines the persisted entities (User, Vehicle, Favorite)
// and their public API views.
//
// Stored documents carry bson tags and MongoDB ObjectIDs; public views
// render identifiers as opaque strings and never include credential
// material. The Public() conversions are pure: the same document always
// produces the same view.
package models
