// BuyMove - Vehicle Marketplace Backend
// Copyright 2026 BuyMove Team
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/buymove/backend

// Package database owns the MongoDB client lifecycle.
//
// The connection is constructed once in main and passed into each
// component; nothing connects lazily. The pooled client is safe for
// concurrent use across requests.
package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/buymove/backend/internal/config"
	"github.com/buymove/backend/internal/logging"
)

// Collection names used by the store layer.
const (
	CollUsers     = "users"
	CollVehicles  = "vehicles"
	CollFavorites = "favorites"
)

// Mongo wraps the process-wide MongoDB client and the application database.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect creates the MongoDB client and verifies connectivity with a
// ping. A failed ping is logged but does not abort startup: the driver
// reconnects once the store becomes reachable, and requests fail with a
// server error until then.
func Connect(ctx context.Context, cfg config.MongoConfig) (*Mongo, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerSelectionTimeout(cfg.Timeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	m := &Mongo{
		client: client,
		db:     client.Database(cfg.Database),
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		logging.Warn().Err(err).Str("uri", cfg.URI).
			Msg("MongoDB unreachable at startup, continuing in degraded mode")
	} else {
		logging.Info().Str("database", cfg.Database).Msg("Connected to MongoDB")
	}

	return m, nil
}

// Database returns the application database handle.
func (m *Mongo) Database() *mongo.Database {
	return m.db
}

// Users returns the users collection.
func (m *Mongo) Users() *mongo.Collection {
	return m.db.Collection(CollUsers)
}

// Vehicles returns the vehicles collection.
func (m *Mongo) Vehicles() *mongo.Collection {
	return m.db.Collection(CollVehicles)
}

// Favorites returns the favorites collection.
func (m *Mongo) Favorites() *mongo.Collection {
	return m.db.Collection(CollFavorites)
}

// Ping verifies store connectivity, for health reporting.
func (m *Mongo) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client. Called once at shutdown by the host
// process.
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// EnsureIndexes creates the indexes the API depends on. CreateMany is
// idempotent: creating an index that already exists is a no-op.
//
// The unique index on favorites (user_id, vehicle_id) is the authority
// for the one-favorite-per-pair invariant; the store's duplicate check
// alone cannot guarantee it under concurrent inserts.
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := m.Users().Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "document", Value: 1}},
			Options: options.Index().SetSparse(true),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create user indexes: %w", err)
	}

	_, err = m.Vehicles().Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "brand", Value: 1}}},
		{Keys: bson.D{{Key: "model", Value: 1}}},
		{Keys: bson.D{{Key: "location", Value: 1}}},
		{Keys: bson.D{{Key: "price", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create vehicle indexes: %w", err)
	}

	_, err = m.Favorites().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "vehicle_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create favorite indexes: %w", err)
	}

	logging.Info().Msg("MongoDB indexes ensured")
	return nil
}
