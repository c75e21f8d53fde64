// BuyMove - Vehicle Marketplace Backend
// Copyright 2026 BuyMove Team
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/buymove/backend

package models

import (
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUserPublic_NeverExposesPasswordHash(t *testing.T) {
	user := User{
		ID:             primitive.NewObjectID(),
		Email:          "alice@example.com",
		FullName:       "Alice",
		Roles:          []string{RoleCustomer},
		HashedPassword: "$2a$10$secrethash",
	}

	data, err := json.Marshal(user.Public())
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	if strings.Contains(string(data), "secrethash") {
		t.Errorf("Public user view leaked the password hash: %s", data)
	}
	if strings.Contains(string(data), "hashed_password") {
		t.Errorf("Public user view has a hashed_password field: %s", data)
	}
}

func TestUserPublic_HexIDAndRoleDefaults(t *testing.T) {
	id := primitive.NewObjectID()
	user := User{ID: id, Email: "bob@example.com"}

	pub := user.Public()

	if pub.ID != id.Hex() {
		t.Errorf("Expected hex ID %s, got %s", id.Hex(), pub.ID)
	}
	if pub.Roles == nil {
		t.Error("Expected non-nil roles slice for user without roles")
	}
}

func TestUserRoles(t *testing.T) {
	admin := User{Roles: []string{RoleCustomer, RoleAdmin}}
	customer := User{Roles: []string{RoleCustomer}}

	if !admin.IsAdmin() {
		t.Error("Expected admin role to be detected")
	}
	if customer.IsAdmin() {
		t.Error("Customer should not be admin")
	}
	if !customer.HasRole(RoleCustomer) {
		t.Error("Expected customer role to be detected")
	}
}

func TestVehiclePublic_NilSlicesBecomeEmpty(t *testing.T) {
	vehicle := Vehicle{ID: primitive.NewObjectID(), Title: "Test"}

	pub := vehicle.Public()

	if pub.Images == nil || pub.Features == nil {
		t.Error("Expected non-nil images and features slices")
	}

	data, err := json.Marshal(pub)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if strings.Contains(string(data), `"images":null`) {
		t.Errorf("Images rendered as null: %s", data)
	}
}

func TestVehiclePublic_SellerID(t *testing.T) {
	sellerID := primitive.NewObjectID()
	owned := Vehicle{ID: primitive.NewObjectID(), SellerID: &sellerID}
	ownerless := Vehicle{ID: primitive.NewObjectID()}

	if got := owned.Public().SellerID; got != sellerID.Hex() {
		t.Errorf("Expected seller ID %s, got %s", sellerID.Hex(), got)
	}
	if got := ownerless.Public().SellerID; got != "" {
		t.Errorf("Expected empty seller ID for ownerless vehicle, got %s", got)
	}

	// Ownerless listings omit the field entirely
	data, err := json.Marshal(ownerless.Public())
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if strings.Contains(string(data), "seller_id") {
		t.Errorf("Expected seller_id omitted for ownerless vehicle: %s", data)
	}
}

func TestVehiclePatch_IsEmpty(t *testing.T) {
	empty := VehiclePatch{}
	if !empty.IsEmpty() {
		t.Error("Zero patch should be empty")
	}

	title := "New title"
	patch := VehiclePatch{Title: &title}
	if patch.IsEmpty() {
		t.Error("Patch with a field set should not be empty")
	}
}

func TestFavoritePublic_NullVehicleWhenDeleted(t *testing.T) {
	fav := Favorite{
		ID:        primitive.NewObjectID(),
		UserID:    primitive.NewObjectID(),
		VehicleID: primitive.NewObjectID(),
	}

	pub := fav.Public(nil)

	if pub.Vehicle != nil {
		t.Error("Expected nil vehicle for deleted listing")
	}
	if pub.VehicleID != fav.VehicleID.Hex() {
		t.Errorf("Expected vehicle ID %s, got %s", fav.VehicleID.Hex(), pub.VehicleID)
	}

	// The vehicle key must stay present as an explicit null
	data, err := json.Marshal(pub)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !strings.Contains(string(data), `"vehicle":null`) {
		t.Errorf("Expected explicit null vehicle field: %s", data)
	}
}

func TestFavoritePublic_JoinedVehicle(t *testing.T) {
	vehicle := Vehicle{ID: primitive.NewObjectID(), Title: "Joined"}
	fav := Favorite{
		ID:        primitive.NewObjectID(),
		VehicleID: vehicle.ID,
	}

	pub := fav.Public(&vehicle)

	if pub.Vehicle == nil {
		t.Fatal("Expected joined vehicle")
	}
	if pub.Vehicle.Title != "Joined" {
		t.Errorf("Expected joined vehicle title, got %s", pub.Vehicle.Title)
	}
}
