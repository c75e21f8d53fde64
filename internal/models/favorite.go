// BuyMove - Vehicle Marketplace Backend
// Copyright 2026 BuyMove Team
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/buymove/backend

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Favorite links a user to a bookmarked vehicle. The (user_id,
// vehicle_id) pair is unique, enforced by a compound index.
//
// Vehicle is only populated when the document comes out of the listing
// aggregation ($lookup against the vehicles collection); it is nil when
// the referenced vehicle has been deleted.
type Favorite struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    primitive.ObjectID `bson:"user_id"`
	VehicleID primitive.ObjectID `bson:"vehicle_id"`
	CreatedAt time.Time          `bson:"created_at"`
	Vehicle   *Vehicle           `bson:"vehicle,omitempty"`
}

// PublicFavorite is the API-safe view of a Favorite joined with its
// vehicle's current data. Vehicle is null when the listing no longer
// exists.
type PublicFavorite struct {
	ID        string         `json:"id"`
	VehicleID string         `json:"vehicle_id"`
	CreatedAt time.Time      `json:"created_at"`
	Vehicle   *PublicVehicle `json:"vehicle"`
}

// Public converts the stored favorite to its API view, joined with the
// given vehicle document (may be nil).
func (f *Favorite) Public(vehicle *Vehicle) *PublicFavorite {
	pub := &PublicFavorite{
		ID:        f.ID.Hex(),
		VehicleID: f.VehicleID.Hex(),
		CreatedAt: f.CreatedAt,
	}
	if vehicle != nil {
		pub.Vehicle = vehicle.Public()
	}
	return pub
}
