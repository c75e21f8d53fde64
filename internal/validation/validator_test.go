// BuyMove - Vehicle Marketplace Backend
// Copyright 2026 BuyMove Team
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/buymove/backend

package validation

import (
	"strings"
	"testing"
)

type sampleRequest struct {
	Email    string  `validate:"required,email"`
	Password string  `validate:"required,min=8"`
	Doors    int     `validate:"omitempty,gte=2,lte=6"`
	Price    float64 `validate:"gte=0"`
}

func TestValidateStruct_Valid(t *testing.T) {
	req := sampleRequest{
		Email:    "alice@example.com",
		Password: "supersecret1",
		Doors:    4,
	}

	if err := ValidateStruct(&req); err != nil {
		t.Errorf("Expected valid struct, got: %v", err)
	}
}

func TestValidateStruct_CollectsAllFailures(t *testing.T) {
	req := sampleRequest{
		Email:    "not-an-email",
		Password: "short",
		Doors:    9,
		Price:    -1,
	}

	err := ValidateStruct(&req)
	if err == nil {
		t.Fatal("Expected validation errors")
	}

	fields := err.Fields()
	if len(fields) != 4 {
		t.Fatalf("Expected 4 field errors, got %d: %v", len(fields), fields)
	}

	byField := make(map[string]FieldError)
	for _, f := range fields {
		byField[f.Field] = f
	}

	if f, ok := byField["Email"]; !ok || f.Tag != "email" {
		t.Errorf("Expected email tag failure, got %+v", f)
	}
	if f, ok := byField["Password"]; !ok || !strings.Contains(f.Message, "at least 8 characters") {
		t.Errorf("Expected min-length message for password, got %+v", f)
	}
	if f, ok := byField["Doors"]; !ok || f.Tag != "lte" {
		t.Errorf("Expected lte failure for doors, got %+v", f)
	}
}

func TestValidateStruct_RequiredMessages(t *testing.T) {
	err := ValidateStruct(&sampleRequest{})
	if err == nil {
		t.Fatal("Expected validation errors for zero struct")
	}

	if !strings.Contains(err.Error(), "Email is required") {
		t.Errorf("Expected required message for Email, got: %v", err)
	}
}

func TestGetValidator_Singleton(t *testing.T) {
	if GetValidator() != GetValidator() {
		t.Error("Expected the same validator instance")
	}
}
