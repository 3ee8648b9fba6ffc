// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/MKhiriev/campus-coffee/models"
	"github.com/go-playground/validator/v10"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldUserID targets the identifier of an existing user in an update request.
	FieldUserID = "id"

	// FieldLoginName targets the unique login name.
	FieldLoginName = "login_name"

	// FieldProfile targets every tagged field of a user profile.
	FieldProfile = "profile"
)

// profileFieldErrors maps a struct field name of models.UserProfile to the
// sentinel reported when its tag rule fails.
var profileFieldErrors = map[string]error{
	"LoginName":    ErrInvalidLoginName,
	"EmailAddress": ErrInvalidEmail,
	"FirstName":    ErrInvalidFirstName,
	"LastName":     ErrInvalidLastName,
}

// UserValidator implements Validator for user payloads: models.UserProfile,
// models.UpsertRequest and bare login names passed as string.
//
// Struct-level rules come from the `validate` tags on models.UserProfile and
// are evaluated by go-playground/validator.
type UserValidator struct {
	validate *validator.Validate
}

// NewUserValidator constructs a UserValidator with the custom rules registered.
func NewUserValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// registration only fails for an empty tag or a nil func
	_ = v.RegisterValidation("nospace", noSpace)

	return &UserValidator{validate: v}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms of each model are accepted.
//
// Supported types:
//   - models.UserProfile / *models.UserProfile
//   - models.UpsertRequest / *models.UpsertRequest
//   - string (a login name)
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.UserProfile:
		return v.validateProfile(ctx, value, fields...)
	case *models.UserProfile:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateProfile(ctx, *value, fields...)
	case models.UpsertRequest:
		return v.validateUpsertRequest(ctx, value, fields...)
	case *models.UpsertRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateUpsertRequest(ctx, *value, fields...)
	case string:
		return v.validateLoginName(value)
	default:
		return ErrUnsupportedType
	}
}

// validateProfile validates a profile.
//
// Default validated fields: Profile (all tagged fields).
func (v *UserValidator) validateProfile(ctx context.Context, profile models.UserProfile, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldProfile}
	}

	for _, f := range fields {
		switch f {
		case FieldProfile:
			if err := v.validate.StructCtx(ctx, profile); err != nil {
				return translate(err)
			}
		case FieldLoginName:
			if err := v.validateLoginName(profile.LoginName); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateUpsertRequest validates both variants of the upsert request.
//
// Default validated fields: UserID (update requests only), Profile.
func (v *UserValidator) validateUpsertRequest(ctx context.Context, request models.UpsertRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldProfile}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if id, ok := request.ID(); ok && id <= 0 {
				return ErrInvalidUserID
			}
		case FieldProfile, FieldLoginName:
			if err := v.validateProfile(ctx, request.Profile, f); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserValidator) validateLoginName(loginName string) error {
	if err := v.validate.Var(loginName, "required,max=255,nospace"); err != nil {
		return ErrInvalidLoginName
	}
	return nil
}

// translate converts go-playground validation errors into the package
// sentinels, keeping the rule that failed in the message.
func translate(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return err
	}

	first := validationErrors[0]
	sentinel, ok := profileFieldErrors[first.StructField()]
	if !ok {
		return err
	}

	return fmt.Errorf("%w: failed on '%s' rule", sentinel, first.Tag())
}

func noSpace(fl validator.FieldLevel) bool {
	return !strings.ContainsFunc(fl.Field().String(), unicode.IsSpace)
}
