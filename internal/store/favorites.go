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

	"github.com/buymove/backend/internal/database"
	"github.com/buymove/backend/internal/models"
)

// Favorites provides the user-to-vehicle bookmark relation.
type Favorites struct {
	favorites *mongo.Collection
	vehicles  *mongo.Collection
}

// NewFavorites creates the favorites store over the given database.
func NewFavorites(db *database.Mongo) *Favorites {
	return &Favorites{
		favorites: db.Favorites(),
		vehicles:  db.Vehicles(),
	}
}

// Add bookmarks a vehicle for the user. Adding an existing (user,
// vehicle) pair is idempotent: the stored favorite is returned and no
// duplicate is inserted. The unique compound index resolves the
// check-then-insert race; a duplicate-key error on insert also returns
// the existing favorite.
func (s *Favorites) Add(ctx context.Context, userID, vehicleID string) (*models.PublicFavorite, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("user id %q: %w", userID, ErrInvalidID)
	}
	vid, err := primitive.ObjectIDFromHex(vehicleID)
	if err != nil {
		return nil, fmt.Errorf("vehicle id %q: %w", vehicleID, ErrInvalidID)
	}

	var vehicle models.Vehicle
	err = s.vehicles.FindOne(ctx, bson.M{"_id": vid}).Decode(&vehicle)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("vehicle %s: %w", vehicleID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find vehicle: %w", err)
	}

	pair := bson.M{"user_id": uid, "vehicle_id": vid}

	existing, err := s.findPair(ctx, pair)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing.Public(&vehicle), nil
	}

	favorite := models.Favorite{
		UserID:    uid,
		VehicleID: vid,
		CreatedAt: time.Now().UTC(),
	}

	res, err := s.favorites.InsertOne(ctx, favorite)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// Lost the race against a concurrent insert of the same pair;
			// the index guarantees exactly one row exists now.
			existing, err := s.findPair(ctx, pair)
			if err != nil {
				return nil, err
			}
			if existing != nil {
				return existing.Public(&vehicle), nil
			}
			return nil, fmt.Errorf("favorite %s/%s vanished after duplicate insert: %w",
				userID, vehicleID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to insert favorite: %w", err)
	}

	favorite.ID = res.InsertedID.(primitive.ObjectID)
	return favorite.Public(&vehicle), nil
}

// findPair fetches a favorite by its (user, vehicle) pair, nil when absent.
func (s *Favorites) findPair(ctx context.Context, pair bson.M) (*models.Favorite, error) {
	var favorite models.Favorite
	err := s.favorites.FindOne(ctx, pair).Decode(&favorite)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find favorite: %w", err)
	}
	return &favorite, nil
}

// List returns all of the user's favorites newest first, each joined
// with the vehicle's current data. A favorite whose vehicle was deleted
// keeps a null vehicle instead of being dropped.
func (s *Favorites) List(ctx context.Context, userID string) ([]*models.PublicFavorite, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("user id %q: %w", userID, ErrInvalidID)
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"user_id": uid}}},
		{{Key: "$sort", Value: bson.M{"created_at": -1}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         database.CollVehicles,
			"localField":   "vehicle_id",
			"foreignField": "_id",
			"as":           "vehicle",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$vehicle",
			"preserveNullAndEmptyArrays": true,
		}}},
	}

	cursor, err := s.favorites.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}

	var favorites []models.Favorite
	if err := cursor.All(ctx, &favorites); err != nil {
		return nil, fmt.Errorf("failed to decode favorites: %w", err)
	}

	items := make([]*models.PublicFavorite, 0, len(favorites))
	for i := range favorites {
		items = append(items, favorites[i].Public(favorites[i].Vehicle))
	}
	return items, nil
}

// Remove deletes the favorite keyed by the (user, vehicle) pair. A
// malformed vehicle id fails with ErrInvalidID; a missing favorite with
// ErrNotFound.
func (s *Favorites) Remove(ctx context.Context, userID, vehicleID string) error {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return fmt.Errorf("user id %q: %w", userID, ErrInvalidID)
	}
	vid, err := primitive.ObjectIDFromHex(vehicleID)
	if err != nil {
		return fmt.Errorf("vehicle id %q: %w", vehicleID, ErrInvalidID)
	}

	res, err := s.favorites.DeleteOne(ctx, bson.M{"user_id": uid, "vehicle_id": vid})
	if err != nil {
		return fmt.Errorf("failed to delete favorite: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("favorite for vehicle %s: %w", vehicleID, ErrNotFound)
	}
	return nil
}
