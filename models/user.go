// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// UserProfile is the caller-owned part of a user account: everything that is
// copied verbatim on create and replaced as a whole on update.
//
// It deliberately has no identifier and no timestamps. Those are assigned by
// the persistence layer and only ever appear on [User].
type UserProfile struct {
	// LoginName is the unique, case-sensitive secondary key of the account.
	LoginName string `json:"login_name" validate:"required,max=255,nospace"`

	// EmailAddress is the contact address of the account holder.
	EmailAddress string `json:"email_address" validate:"required,email,max=255"`

	// FirstName is the given name of the account holder.
	FirstName string `json:"first_name" validate:"required,max=255"`

	// LastName is the family name of the account holder.
	LastName string `json:"last_name" validate:"required,max=255"`
}

// User is a persisted user account.
//
// ID, CreatedAt and UpdatedAt are system-managed: ID never changes once
// assigned, CreatedAt survives every update and UpdatedAt is refreshed on each
// successful update, so UpdatedAt >= CreatedAt always holds.
type User struct {
	// ID is the system-assigned numeric identifier.
	ID int64 `json:"id"`

	UserProfile

	// CreatedAt is the moment the account was first persisted (UTC).
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the moment of the last successful write (UTC).
	UpdatedAt time.Time `json:"updated_at"`
}
