// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UpsertRequest is a tagged create-or-update request.
//
// A request built with [NewUser] asks for a new account; one built with
// [ExistingUser] asks to replace the profile of the account with the given ID.
// The zero value is a creation request with an empty profile.
type UpsertRequest struct {
	id       int64
	existing bool

	// Profile is the full set of caller-owned fields to persist.
	Profile UserProfile
}

// NewUser returns a request to create a user from profile.
func NewUser(profile UserProfile) UpsertRequest {
	return UpsertRequest{Profile: profile}
}

// ExistingUser returns a request to replace the profile of user id.
func ExistingUser(id int64, profile UserProfile) UpsertRequest {
	return UpsertRequest{id: id, existing: true, Profile: profile}
}

// ID returns the target identifier and true for update requests,
// or 0 and false for creation requests.
func (r UpsertRequest) ID() (int64, bool) {
	return r.id, r.existing
}

// IsCreate reports whether r asks for a new user.
func (r UpsertRequest) IsCreate() bool {
	return !r.existing
}
