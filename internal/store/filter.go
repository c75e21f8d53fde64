// BuyMove - Vehicle Marketplace Backend
// Copyright 2026 BuyMove Team
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/buymove/backend

package store

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
)

// SearchCriteria are the optional vehicle search filters. Nil pointer
// fields mean "not filtered".
type SearchCriteria struct {
	// Query matches as a case-insensitive substring across title,
	// description, brand and model (OR semantics).
	Query string

	// Brand, Color and Location match as case-insensitive substrings on
	// their fields. Doors is an exact match. All non-query criteria
	// combine with AND semantics.
	Brand    string
	Color    string
	Location string
	Doors    *int

	// MinPrice and MaxPrice bound the price range, inclusive on both
	// ends. Either side may be set alone.
	MinPrice *float64
	MaxPrice *float64
}

// BuildVehicleFilter translates search criteria into a MongoDB filter
// document. It is deterministic and side-effect free: no criteria yields
// an empty filter matching everything, and every added criterion only
// narrows the result set.
func BuildVehicleFilter(c SearchCriteria) bson.M {
	var clauses []bson.M

	if c.Query != "" {
		regex := containsPattern(c.Query)
		clauses = append(clauses, bson.M{"$or": []bson.M{
			{"title": regex},
			{"description": regex},
			{"brand": regex},
			{"model": regex},
		}})
	}

	if c.Brand != "" {
		clauses = append(clauses, bson.M{"brand": containsPattern(c.Brand)})
	}

	if c.Color != "" {
		clauses = append(clauses, bson.M{"color": containsPattern(c.Color)})
	}

	if c.Location != "" {
		clauses = append(clauses, bson.M{"location": containsPattern(c.Location)})
	}

	if c.Doors != nil {
		clauses = append(clauses, bson.M{"doors": *c.Doors})
	}

	priceRange := bson.M{}
	if c.MinPrice != nil {
		priceRange["$gte"] = *c.MinPrice
	}
	if c.MaxPrice != nil {
		priceRange["$lte"] = *c.MaxPrice
	}
	if len(priceRange) > 0 {
		clauses = append(clauses, bson.M{"price": priceRange})
	}

	switch len(clauses) {
	case 0:
		return bson.M{}
	case 1:
		return clauses[0]
	default:
		return bson.M{"$and": clauses}
	}
}

// containsPattern builds a case-insensitive substring matcher. User
// input is quoted so regex metacharacters match literally.
func containsPattern(value string) bson.M {
	return bson.M{"$regex": regexp.QuoteMeta(value), "$options": "i"}
}

// pageWindow converts 1-based page parameters into a skip/limit window.
// Pages below 1 clamp to the first page; page sizes outside [1, maxSize]
// clamp to the bounds, and 0 selects defaultSize.
func pageWindow(page, pageSize, defaultSize, maxSize int) (skip, limit int64) {
	if pageSize == 0 {
		pageSize = defaultSize
	}
	if pageSize < 1 {
		pageSize = 1
	}
	if pageSize > maxSize {
		pageSize = maxSize
	}
	if page < 1 {
		page = 1
	}
	return int64(page-1) * int64(pageSize), int64(pageSize)
}
