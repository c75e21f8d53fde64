// BuyMove - Vehicle Marketplace Backend
// Copyright 2026 BuyMove Team
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/buymove/backend

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Vehicle is a stored listing document. SellerID is optional: listings
// imported without an owner stay ownerless and may be mutated by anyone
// authenticated.
type Vehicle struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty"`
	Title        string              `bson:"title"`
	Brand        string              `bson:"brand"`
	Model        string              `bson:"model"`
	Version      string              `bson:"version,omitempty"`
	Year         int                 `bson:"year"`
	Price        float64             `bson:"price"`
	Mileage      int                 `bson:"mileage"`
	Color        string              `bson:"color,omitempty"`
	FuelType     string              `bson:"fuel_type,omitempty"`
	Transmission string              `bson:"transmission,omitempty"`
	Doors        int                 `bson:"doors,omitempty"`
	Location     string              `bson:"location,omitempty"`
	Description  string              `bson:"description,omitempty"`
	Images       []string            `bson:"images"`
	Features     []string            `bson:"features"`
	SellerID     *primitive.ObjectID `bson:"seller_id,omitempty"`
	CreatedAt    time.Time           `bson:"created_at"`
	UpdatedAt    time.Time           `bson:"updated_at"`
}

// NewVehicle is the input for listing creation. SellerID may carry an
// explicit owner from the payload; the authenticated caller takes
// precedence when both are present.
type NewVehicle struct {
	Title        string
	Brand        string
	Model        string
	Version      string
	Year         int
	Price        float64
	Mileage      int
	Color        string
	FuelType     string
	Transmission string
	Doors        int
	Location     string
	Description  string
	Images       []string
	Features     []string
	SellerID     string
}

// VehiclePatch is a partial update. Nil fields are left untouched;
// non-nil fields replace the stored value.
type VehiclePatch struct {
	Title        *string
	Brand        *string
	Model        *string
	Version      *string
	Year         *int
	Price        *float64
	Mileage      *int
	Color        *string
	FuelType     *string
	Transmission *string
	Doors        *int
	Location     *string
	Description  *string
	Images       *[]string
	Features     *[]string
}

// IsEmpty reports whether the patch sets no fields at all. An empty
// patch is treated as a plain read.
func (p *VehiclePatch) IsEmpty() bool {
	return p.Title == nil && p.Brand == nil && p.Model == nil &&
		p.Version == nil && p.Year == nil && p.Price == nil &&
		p.Mileage == nil && p.Color == nil && p.FuelType == nil &&
		p.Transmission == nil && p.Doors == nil && p.Location == nil &&
		p.Description == nil && p.Images == nil && p.Features == nil
}

// PublicVehicle is the API-safe view of a Vehicle. Identifiers are hex
// strings; the seller reference is omitted when the listing is ownerless.
type PublicVehicle struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Brand        string    `json:"brand"`
	Model        string    `json:"model"`
	Version      string    `json:"version,omitempty"`
	Year         int       `json:"year"`
	Price        float64   `json:"price"`
	Mileage      int       `json:"mileage"`
	Color        string    `json:"color,omitempty"`
	FuelType     string    `json:"fuel_type,omitempty"`
	Transmission string    `json:"transmission,omitempty"`
	Doors        int       `json:"doors,omitempty"`
	Location     string    `json:"location,omitempty"`
	Description  string    `json:"description,omitempty"`
	Images       []string  `json:"images"`
	Features     []string  `json:"features"`
	SellerID     string    `json:"seller_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Public converts the stored document to its API view. Array fields are
// never rendered as null.
func (v *Vehicle) Public() *PublicVehicle {
	images := v.Images
	if images == nil {
		images = []string{}
	}
	features := v.Features
	if features == nil {
		features = []string{}
	}

	pub := &PublicVehicle{
		ID:           v.ID.Hex(),
		Title:        v.Title,
		Brand:        v.Brand,
		Model:        v.Model,
		Version:      v.Version,
		Year:         v.Year,
		Price:        v.Price,
		Mileage:      v.Mileage,
		Color:        v.Color,
		FuelType:     v.FuelType,
		Transmission: v.Transmission,
		Doors:        v.Doors,
		Location:     v.Location,
		Description:  v.Description,
		Images:       images,
		Features:     features,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
	if v.SellerID != nil {
		pub.SellerID = v.SellerID.Hex()
	}
	return pub
}
