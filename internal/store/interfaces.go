// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/campus-coffee/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserDataService is the persistence port of the user service.
//
// Implementations own the system-managed fields of [models.User]: they assign
// the ID on Insert and set CreatedAt/UpdatedAt. Login names are unique and
// compared case-sensitively.
type UserDataService interface {
	// Clear removes every stored user.
	Clear(ctx context.Context) error

	// GetAll returns all users ordered by ID. The result is never nil.
	GetAll(ctx context.Context) ([]models.User, error)

	// GetByID returns [ErrUserNotFound] when no user has the given ID.
	GetByID(ctx context.Context, id int64) (models.User, error)

	// GetByLoginName returns [ErrUserNotFound] when no user has the given login name.
	GetByLoginName(ctx context.Context, loginName string) (models.User, error)

	// Insert persists a new user and returns it with ID and timestamps set.
	// Returns [ErrLoginAlreadyExists] when the login name is taken.
	Insert(ctx context.Context, profile models.UserProfile) (models.User, error)

	// Update replaces the profile of user id, keeps CreatedAt and refreshes
	// UpdatedAt. Returns [ErrUserNotFound] or [ErrLoginAlreadyExists].
	Update(ctx context.Context, id int64, profile models.UserProfile) (models.User, error)

	// Delete removes user id. Returns [ErrUserNotFound] when it does not exist.
	Delete(ctx context.Context, id int64) error
}
