// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced while decoding a request, before the service layer
// is reached. All of them map to 400 Bad Request.
var (
	// ErrInvalidJSON is returned when the request body is not a valid user
	// payload.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidUserID is returned when the {id} path segment is not an integer.
	ErrInvalidUserID = errors.New("user id must be an integer")

	// ErrUnexpectedUserID is returned when a creation payload carries an id.
	ErrUnexpectedUserID = errors.New("user id must not be set on create")

	// ErrUserIDMismatch is returned when an update payload carries an id that
	// differs from the one in the path.
	ErrUserIDMismatch = errors.New("user id in body does not match path")
)
