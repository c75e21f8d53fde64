// BuyMove - Vehicle Marketplace Backend
// Copyright 2026 BuyMove Team
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/buymove/backend

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/buymove/backend/internal/database"
	"github.com/buymove/backend/internal/models"
)

// updatedAtDesc orders listings newest-updated first, the order used by
// search and recommendations alike.
var updatedAtDesc = bson.D{{Key: "updated_at", Value: -1}}

// Vehicles provides listing persistence, search and recommendations.
type Vehicles struct {
	coll            *mongo.Collection
	defaultPageSize int
	maxPageSize     int
}

// NewVehicles creates the vehicle store over the given database with the
// configured pagination policy.
func NewVehicles(db *database.Mongo, defaultPageSize, maxPageSize int) *Vehicles {
	return &Vehicles{
		coll:            db.Vehicles(),
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
}

// Search applies the filter, counts all matches and returns one page
// ordered by most-recently-updated first. Pages are 1-based; the page
// size is clamped to the configured ceiling.
func (s *Vehicles) Search(ctx context.Context, c SearchCriteria, page, pageSize int) ([]*models.PublicVehicle, int64, error) {
	filter := BuildVehicleFilter(c)

	total, err := s.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count vehicles: %w", err)
	}

	skip, limit := pageWindow(page, pageSize, s.defaultPageSize, s.maxPageSize)
	opts := options.Find().
		SetSort(updatedAtDesc).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query vehicles: %w", err)
	}

	var vehicles []models.Vehicle
	if err := cursor.All(ctx, &vehicles); err != nil {
		return nil, 0, fmt.Errorf("failed to decode vehicles: %w", err)
	}

	items := make([]*models.PublicVehicle, 0, len(vehicles))
	for i := range vehicles {
		items = append(items, vehicles[i].Public())
	}
	return items, total, nil
}

// Get returns one listing. A malformed identifier fails with
// ErrInvalidID, a missing one with ErrNotFound.
func (s *Vehicles) Get(ctx context.Context, id string) (*models.PublicVehicle, error) {
	vehicle, err := s.byID(ctx, id)
	if err != nil {
		return nil, err
	}
	return vehicle.Public(), nil
}

// byID fetches the raw document for internal reuse.
func (s *Vehicles) byID(ctx context.Context, id string) (*models.Vehicle, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("vehicle id %q: %w", id, ErrInvalidID)
	}

	var vehicle models.Vehicle
	err = s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&vehicle)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("vehicle %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find vehicle: %w", err)
	}
	return &vehicle, nil
}

// Create persists a new listing. The authenticated caller becomes the
// seller; an explicit seller id in the payload is only honored when the
// caller id is empty.
func (s *Vehicles) Create(ctx context.Context, input models.NewVehicle, ownerID string) (*models.PublicVehicle, error) {
	now := time.Now().UTC()

	vehicle := models.Vehicle{
		Title:        input.Title,
		Brand:        input.Brand,
		Model:        input.Model,
		Version:      input.Version,
		Year:         input.Year,
		Price:        input.Price,
		Mileage:      input.Mileage,
		Color:        input.Color,
		FuelType:     input.FuelType,
		Transmission: input.Transmission,
		Doors:        input.Doors,
		Location:     input.Location,
		Description:  input.Description,
		Images:       input.Images,
		Features:     input.Features,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if vehicle.Images == nil {
		vehicle.Images = []string{}
	}
	if vehicle.Features == nil {
		vehicle.Features = []string{}
	}

	seller := ownerID
	if seller == "" {
		seller = input.SellerID
	}
	if oid, err := primitive.ObjectIDFromHex(seller); err == nil {
		vehicle.SellerID = &oid
	}

	res, err := s.coll.InsertOne(ctx, vehicle)
	if err != nil {
		return nil, fmt.Errorf("failed to insert vehicle: %w", err)
	}

	vehicle.ID = res.InsertedID.(primitive.ObjectID)
	return vehicle.Public(), nil
}

// Update merges the non-nil patch fields into the listing and refreshes
// updated_at. An empty patch is a plain read.
func (s *Vehicles) Update(ctx context.Context, id string, patch models.VehiclePatch) (*models.PublicVehicle, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("vehicle id %q: %w", id, ErrInvalidID)
	}

	if patch.IsEmpty() {
		return s.Get(ctx, id)
	}

	set := patchDocument(patch)
	set["updated_at"] = time.Now().UTC()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Vehicle
	err = s.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("vehicle %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update vehicle: %w", err)
	}
	return updated.Public(), nil
}

// patchDocument translates a partial update into a $set document
// containing only the provided fields.
func patchDocument(p models.VehiclePatch) bson.M {
	set := bson.M{}

	if p.Title != nil {
		set["title"] = *p.Title
	}
	if p.Brand != nil {
		set["brand"] = *p.Brand
	}
	if p.Model != nil {
		set["model"] = *p.Model
	}
	if p.Version != nil {
		set["version"] = *p.Version
	}
	if p.Year != nil {
		set["year"] = *p.Year
	}
	if p.Price != nil {
		set["price"] = *p.Price
	}
	if p.Mileage != nil {
		set["mileage"] = *p.Mileage
	}
	if p.Color != nil {
		set["color"] = *p.Color
	}
	if p.FuelType != nil {
		set["fuel_type"] = *p.FuelType
	}
	if p.Transmission != nil {
		set["transmission"] = *p.Transmission
	}
	if p.Doors != nil {
		set["doors"] = *p.Doors
	}
	if p.Location != nil {
		set["location"] = *p.Location
	}
	if p.Description != nil {
		set["description"] = *p.Description
	}
	if p.Images != nil {
		set["images"] = *p.Images
	}
	if p.Features != nil {
		set["features"] = *p.Features
	}

	return set
}

// Delete removes a listing. A malformed identifier fails with
// ErrInvalidID; deleting nothing fails with ErrNotFound.
func (s *Vehicles) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("vehicle id %q: %w", id, ErrInvalidID)
	}

	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("vehicle %s: %w", id, ErrNotFound)
	}
	return nil
}

// Recommend returns up to limit listings similar to the base vehicle:
// same brand within the price band, newest-updated first. When fewer
// similar listings exist, the remainder is filled with the
// newest-updated other vehicles, without duplicates and never including
// the base vehicle itself.
func (s *Vehicles) Recommend(ctx context.Context, id string, limit int) ([]*models.PublicVehicle, error) {
	base, err := s.byID(ctx, id)
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = DefaultRecommendLimit
	}

	primary, err := s.findSorted(ctx, recommendationFilter(base), int64(limit))
	if err != nil {
		return nil, err
	}

	merged := primary
	if len(primary) < limit {
		fallback, err := s.findSorted(ctx, bson.M{"_id": bson.M{"$ne": base.ID}}, int64(limit))
		if err != nil {
			return nil, err
		}
		merged = mergePrimaryAndFallback(primary, fallback, limit)
	}

	items := make([]*models.PublicVehicle, 0, len(merged))
	for i := range merged {
		items = append(items, merged[i].Public())
	}
	return items, nil
}

// findSorted runs a limited find ordered by updated_at descending.
func (s *Vehicles) findSorted(ctx context.Context, filter bson.M, limit int64) ([]models.Vehicle, error) {
	opts := options.Find().SetSort(updatedAtDesc).SetLimit(limit)
	cursor, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query vehicles: %w", err)
	}

	var vehicles []models.Vehicle
	if err := cursor.All(ctx, &vehicles); err != nil {
		return nil, fmt.Errorf("failed to decode vehicles: %w", err)
	}
	return vehicles, nil
}

// EnsureOwnership authorizes a mutation of the given listing by the
// caller. A malformed identifier fails with ErrInvalidID before any
// permission check. Ownerless listings and admin callers are always
// allowed; otherwise the caller must be the seller.
func (s *Vehicles) EnsureOwnership(ctx context.Context, id string, caller *models.User) error {
	vehicle, err := s.byID(ctx, id)
	if err != nil {
		return err
	}

	if vehicle.SellerID == nil || caller.IsAdmin() {
		return nil
	}

	if caller.ID != *vehicle.SellerID {
		return fmt.Errorf("vehicle %s owned by another user: %w", id, ErrForbidden)
	}
	return nil
}
