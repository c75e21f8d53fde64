// BuyMove - Vehicle Marketplace Backend
// Copyright 2026 BuyMove Team
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/buymove/backend

// Package api provides HTTP request validation structs with
// go-playground/validator tags. Structural validation (required fields,
// numeric ranges) runs before any store access.
package api

// RegisterRequest is the body for POST /auth/register.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name" validate:"omitempty,max=120"`
	Phone    string `json:"phone" validate:"omitempty,max=32"`
	Document string `json:"document" validate:"omitempty,max=32"`
}

// LoginRequest is the body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse is the success payload of POST /auth/login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// CreateVehicleRequest is the body for POST /vehicles.
//
// Year, price and mileage are pointers so that an absent field is
// rejected while an explicit zero passes.
type CreateVehicleRequest struct {
	Title        string   `json:"title" validate:"required,max=200"`
	Brand        string   `json:"brand" validate:"required,max=100"`
	Model        string   `json:"model" validate:"required,max=100"`
	Version      string   `json:"version" validate:"omitempty,max=100"`
	Year         *int     `json:"year" validate:"required,gte=0"`
	Price        *float64 `json:"price" validate:"required,gte=0"`
	Mileage      *int     `json:"mileage" validate:"required,gte=0"`
	Color        string   `json:"color" validate:"omitempty,max=50"`
	FuelType     string   `json:"fuel_type" validate:"omitempty,max=50"`
	Transmission string   `json:"transmission" validate:"omitempty,max=50"`
	Doors        int      `json:"doors" validate:"omitempty,gte=2,lte=6"`
	Location     string   `json:"location" validate:"omitempty,max=120"`
	Description  string   `json:"description" validate:"omitempty,max=5000"`
	Images       []string `json:"images"`
	Features     []string `json:"features"`
	SellerID     string   `json:"seller_id" validate:"omitempty,len=24,hexadecimal"`
}

// UpdateVehicleRequest is the body for PATCH /vehicles/{id}. Nil fields
// are left untouched; a body setting no fields is a pure read.
type UpdateVehicleRequest struct {
	Title        *string   `json:"title" validate:"omitempty,max=200"`
	Brand        *string   `json:"brand" validate:"omitempty,max=100"`
	Model        *string   `json:"model" validate:"omitempty,max=100"`
	Version      *string   `json:"version" validate:"omitempty,max=100"`
	Year         *int      `json:"year" validate:"omitempty,gte=0"`
	Price        *float64  `json:"price" validate:"omitempty,gte=0"`
	Mileage      *int      `json:"mileage" validate:"omitempty,gte=0"`
	Color        *string   `json:"color" validate:"omitempty,max=50"`
	FuelType     *string   `json:"fuel_type" validate:"omitempty,max=50"`
	Transmission *string   `json:"transmission" validate:"omitempty,max=50"`
	Doors        *int      `json:"doors" validate:"omitempty,gte=2,lte=6"`
	Location     *string   `json:"location" validate:"omitempty,max=120"`
	Description  *string   `json:"description" validate:"omitempty,max=5000"`
	Images       *[]string `json:"images"`
	Features     *[]string `json:"features"`
}

// ListVehiclesRequest holds the validated query parameters of GET /vehicles.
type ListVehiclesRequest struct {
	Query    string   `validate:"omitempty,max=200"`
	Brand    string   `validate:"omitempty,max=100"`
	Color    string   `validate:"omitempty,max=50"`
	Location string   `validate:"omitempty,max=120"`
	Doors    *int     `validate:"omitempty,gte=2,lte=6"`
	MinPrice *float64 `validate:"omitempty,gte=0"`
	MaxPrice *float64 `validate:"omitempty,gte=0"`
	Page     int      `validate:"gte=1"`
	PageSize int      `validate:"gte=1,lte=60"`
}

// VehicleListResponse is the payload of GET /vehicles.
type VehicleListResponse struct {
	Items interface{} `json:"items"`
	Total int64       `json:"total"`
}

// AddFavoriteRequest is the body for POST /favorites.
type AddFavoriteRequest struct {
	VehicleID string `json:"vehicle_id" validate:"required"`
}
