// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

// IdentityPayload is the body the identity provider posts after a
// successful registration.
type IdentityPayload struct {
	ID     string         `json:"id" validate:"required,uuid"`
	Traits IdentityTraits `json:"traits" validate:"required"`
}

type IdentityTraits struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"max=200"`
	Role  string `json:"role" validate:"omitempty,oneof=landlord propertymanager tenant vendor"`
}

// Registration is the user to provision.
type Registration struct {
	ID    string
	Email string
	Name  string
	Role  string
}
