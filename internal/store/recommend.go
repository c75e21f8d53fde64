// BuyMove - Vehicle Marketplace Backend
// Copyright 2026 BuyMove Team
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/buymove/backend

package store

import (
	"math"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/buymove/backend/internal/models"
)

// DefaultRecommendLimit is the number of recommendations returned when
// the caller does not specify a limit.
const DefaultRecommendLimit = 6

// Price band for similar listings: within 20% of the base price, but at
// least 5000 in absolute terms so cheap vehicles still get a usable band.
const (
	recommendPriceMarginPct = 0.2
	recommendPriceMarginMin = 5000.0
)

// recommendationFilter builds the primary similarity filter for a base
// vehicle: same brand (when set), price within the margin band, and the
// base vehicle itself excluded.
func recommendationFilter(base *models.Vehicle) bson.M {
	filter := bson.M{"_id": bson.M{"$ne": base.ID}}

	if base.Brand != "" {
		filter["brand"] = base.Brand
	}

	margin := math.Max(base.Price*recommendPriceMarginPct, recommendPriceMarginMin)
	filter["price"] = bson.M{
		"$gte": math.Max(base.Price-margin, 0),
		"$lte": base.Price + margin,
	}

	return filter
}

// mergePrimaryAndFallback fills the primary similarity results up to
// limit with fallback vehicles, preserving primary order, skipping
// duplicates and never exceeding limit.
func mergePrimaryAndFallback(primary, fallback []models.Vehicle, limit int) []models.Vehicle {
	merged := make([]models.Vehicle, 0, limit)
	seen := make(map[string]struct{}, limit)

	for _, v := range primary {
		if len(merged) == limit {
			return merged
		}
		key := v.ID.Hex()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		merged = append(merged, v)
	}

	for _, v := range fallback {
		if len(merged) == limit {
			break
		}
		key := v.ID.Hex()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		merged = append(merged, v)
	}

	return merged
}
