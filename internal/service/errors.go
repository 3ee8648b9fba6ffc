package service

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound            = errors.New("not found")
	ErrDuplication         = errors.New("duplication")
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// NotFoundError describes which entity lookup came back empty.
// It matches ErrNotFound with errors.Is.
type NotFoundError struct {
	Entity string
	Field  string
	Value  any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with %s %v not found", e.Entity, e.Field, e.Value)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// DuplicationError describes the unique field that is already taken.
// It matches ErrDuplication with errors.Is.
type DuplicationError struct {
	Entity string
	Field  string
	Value  any
}

func (e *DuplicationError) Error() string {
	return fmt.Sprintf("%s with %s %v already exists", e.Entity, e.Field, e.Value)
}

func (e *DuplicationError) Is(target error) bool {
	return target == ErrDuplication
}

const (
	entityUser     = "user"
	fieldID        = "id"
	fieldLoginName = "login name"
)

func userNotFoundByID(id int64) error {
	return &NotFoundError{Entity: entityUser, Field: fieldID, Value: id}
}

func userNotFoundByLoginName(loginName string) error {
	return &NotFoundError{Entity: entityUser, Field: fieldLoginName, Value: loginName}
}

func loginNameTaken(loginName string) error {
	return &DuplicationError{Entity: entityUser, Field: fieldLoginName, Value: loginName}
}
