// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user input before it reaches the user service.
//
// The service layer receives a [Validator] and calls it from its validation
// wrapper, so transports and storage never see a malformed profile or login
// name.
package validators

import "context"

// Validator checks a value and returns a descriptive error when it is invalid.
// The optional field names restrict validation to those fields of a struct.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
