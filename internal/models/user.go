// BuyMove - Vehicle Marketplace Backend
// Copyright 2026 BuyMove Team
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/buymove/backend

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RoleCustomer is the default role assigned to new accounts.
const RoleCustomer = "customer"

// RoleAdmin marks elevated accounts that may mutate any vehicle.
const RoleAdmin = "admin"

// User is a stored account document. The email is unique (lowercase,
// enforced by index) and the password hash never leaves the store layer.
type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Email          string             `bson:"email"`
	FullName       string             `bson:"full_name,omitempty"`
	Phone          string             `bson:"phone,omitempty"`
	Document       string             `bson:"document,omitempty"`
	Roles          []string           `bson:"roles"`
	HashedPassword string             `bson:"hashed_password"`
	CreatedAt      time.Time          `bson:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at"`
}

// NewUser is the input for account creation. The password arrives in
// plaintext and is hashed before it is persisted.
type NewUser struct {
	Email    string
	Password string
	FullName string
	Phone    string
	Document string
	Roles    []string
}

// PublicUser is the API-safe view of a User. It never carries the
// password hash.
type PublicUser struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Document  string    `json:"document,omitempty"`
	Roles     []string  `json:"roles"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasRole reports whether the user holds the given role.
func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.HasRole(RoleAdmin)
}

// Public converts the stored document to its API view, rendering the
// identifier as a hex string and stripping the credential hash.
func (u *User) Public() *PublicUser {
	roles := u.Roles
	if roles == nil {
		roles = []string{}
	}

	return &PublicUser{
		ID:        u.ID.Hex(),
		Email:     u.Email,
		FullName:  u.FullName,
		Phone:     u.Phone,
		Document:  u.Document,
		Roles:     roles,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
