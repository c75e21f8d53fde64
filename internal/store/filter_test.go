// BuyMove - Vehicle Marketplace Backend
// Copyright 2026 BuyMove Team
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/buymove/backend

package store

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestBuildVehicleFilter_Empty(t *testing.T) {
	filter := BuildVehicleFilter(SearchCriteria{})

	if len(filter) != 0 {
		t.Errorf("Expected empty filter for empty criteria, got %v", filter)
	}
}

func TestBuildVehicleFilter_SingleClauseNotWrapped(t *testing.T) {
	filter := BuildVehicleFilter(SearchCriteria{Doors: intPtr(4)})

	// A single criterion must be the bare clause, not wrapped in $and
	if _, ok := filter["$and"]; ok {
		t.Errorf("Single clause should not be wrapped in $and: %v", filter)
	}
	if filter["doors"] != 4 {
		t.Errorf("Expected doors=4, got %v", filter["doors"])
	}
}

func TestBuildVehicleFilter_QuerySearchesFourFields(t *testing.T) {
	filter := BuildVehicleFilter(SearchCriteria{Query: "civic"})

	or, ok := filter["$or"].([]bson.M)
	if !ok {
		t.Fatalf("Expected $or clause, got %v", filter)
	}
	if len(or) != 4 {
		t.Fatalf("Expected 4 $or branches, got %d", len(or))
	}

	fields := make(map[string]bool)
	for _, branch := range or {
		for field, cond := range branch {
			fields[field] = true
			regex, ok := cond.(bson.M)
			if !ok {
				t.Fatalf("Expected regex condition on %s, got %v", field, cond)
			}
			if regex["$regex"] != "civic" || regex["$options"] != "i" {
				t.Errorf("Field %s: expected case-insensitive 'civic' regex, got %v", field, regex)
			}
		}
	}
	for _, want := range []string{"title", "description", "brand", "model"} {
		if !fields[want] {
			t.Errorf("Expected $or to cover field %s", want)
		}
	}
}

func TestBuildVehicleFilter_MultipleClausesUseAnd(t *testing.T) {
	filter := BuildVehicleFilter(SearchCriteria{
		Brand:    "Honda",
		Color:    "blue",
		Doors:    intPtr(4),
		MinPrice: floatPtr(10000),
		MaxPrice: floatPtr(50000),
	})

	and, ok := filter["$and"].([]bson.M)
	if !ok {
		t.Fatalf("Expected $and wrapper, got %v", filter)
	}
	if len(and) != 4 {
		t.Fatalf("Expected 4 clauses (brand, color, doors, price), got %d", len(and))
	}

	var price bson.M
	for _, clause := range and {
		if p, ok := clause["price"].(bson.M); ok {
			price = p
		}
	}
	if price == nil {
		t.Fatal("Expected a price clause")
	}
	if price["$gte"] != 10000.0 || price["$lte"] != 50000.0 {
		t.Errorf("Expected price range [10000, 50000], got %v", price)
	}
}

func TestBuildVehicleFilter_PriceBoundsIndependent(t *testing.T) {
	minOnly := BuildVehicleFilter(SearchCriteria{MinPrice: floatPtr(5000)})
	price, ok := minOnly["price"].(bson.M)
	if !ok {
		t.Fatalf("Expected bare price clause, got %v", minOnly)
	}
	if price["$gte"] != 5000.0 {
		t.Errorf("Expected $gte=5000, got %v", price)
	}
	if _, ok := price["$lte"]; ok {
		t.Errorf("Did not expect $lte with only a lower bound: %v", price)
	}

	maxOnly := BuildVehicleFilter(SearchCriteria{MaxPrice: floatPtr(20000)})
	price, ok = maxOnly["price"].(bson.M)
	if !ok {
		t.Fatalf("Expected bare price clause, got %v", maxOnly)
	}
	if price["$lte"] != 20000.0 {
		t.Errorf("Expected $lte=20000, got %v", price)
	}
}

func TestBuildVehicleFilter_QuotesRegexMetacharacters(t *testing.T) {
	filter := BuildVehicleFilter(SearchCriteria{Brand: "C++ (turbo)"})

	brand, ok := filter["brand"].(bson.M)
	if !ok {
		t.Fatalf("Expected brand clause, got %v", filter)
	}
	want := `C\+\+ \(turbo\)`
	if brand["$regex"] != want {
		t.Errorf("Expected quoted pattern %q, got %q", want, brand["$regex"])
	}
}

func TestBuildVehicleFilter_Deterministic(t *testing.T) {
	c := SearchCriteria{Query: "suv", Brand: "Toyota", Doors: intPtr(4)}

	a := BuildVehicleFilter(c)
	b := BuildVehicleFilter(c)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("Same criteria produced different filters:\n%v\n%v", a, b)
	}
}

func TestPageWindow(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		pageSize  int
		wantSkip  int64
		wantLimit int64
	}{
		{"first page default size", 1, 0, 0, 12},
		{"explicit size", 2, 20, 20, 20},
		{"third page", 3, 12, 24, 12},
		{"page below one clamps", 0, 12, 0, 12},
		{"negative page clamps", -5, 12, 0, 12},
		{"size above max clamps", 1, 500, 0, 60},
		{"negative size clamps to one", 1, -3, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			skip, limit := pageWindow(tt.page, tt.pageSize, 12, 60)
			if skip != tt.wantSkip || limit != tt.wantLimit {
				t.Errorf("pageWindow(%d, %d) = (%d, %d), want (%d, %d)",
					tt.page, tt.pageSize, skip, limit, tt.wantSkip, tt.wantLimit)
			}
		})
	}
}
