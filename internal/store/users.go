// BuyMove - Vehicle Marketplace Backend
// Copyright 2026 BuyMove Team
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/buymove/backend

package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/buymove/backend/internal/auth"
	"github.com/buymove/backend/internal/database"
	"github.com/buymove/backend/internal/models"
)

// Users provides account persistence and credential verification.
type Users struct {
	coll *mongo.Collection
}

// NewUsers creates the user store over the given database.
func NewUsers(db *database.Mongo) *Users {
	return &Users{coll: db.Users()}
}

// Create registers a new account. The email is lowercased before the
// uniqueness check so lookups stay case-insensitive; a duplicate email
// fails with ErrConflict. The password is hashed before persistence and
// the returned view never carries the hash.
func (s *Users) Create(ctx context.Context, input models.NewUser) (*models.PublicUser, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	existing := s.coll.FindOne(ctx, bson.M{"email": email})
	if err := existing.Err(); err == nil {
		return nil, fmt.Errorf("email %s already registered: %w", email, ErrConflict)
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	roles := input.Roles
	if len(roles) == 0 {
		roles = []string{models.RoleCustomer}
	}

	now := time.Now().UTC()
	user := models.User{
		Email:          email,
		FullName:       input.FullName,
		Phone:          input.Phone,
		Document:       input.Document,
		Roles:          roles,
		HashedPassword: hash,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	res, err := s.coll.InsertOne(ctx, user)
	if err != nil {
		// The unique email index is the real authority; the read above
		// only provides the friendly error on the common path.
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("email %s already registered: %w", email, ErrConflict)
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	user.ID = res.InsertedID.(primitive.ObjectID)
	return user.Public(), nil
}

// ByEmail looks up an account case-insensitively. Absence is not an
// error: a missing account returns (nil, nil).
func (s *Users) ByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.coll.FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return &user, nil
}

// ByID looks up an account by its hex identifier. Malformed identifiers
// are treated as absent rather than an error.
func (s *Users) ByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var user models.User
	err = s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user by id: %w", err)
	}
	return &user, nil
}

// Authenticate verifies the credential for the given email. Unknown
// email and wrong password both fail with ErrInvalidCredentials so the
// response does not reveal whether the account exists.
func (s *Users) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.ByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if !auth.VerifyPassword(password, user.HashedPassword) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
