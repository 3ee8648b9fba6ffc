package service

import (
	"context"

	"github.com/MKhiriev/campus-coffee/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=UserServiceWrapper

// UserService is the primary port for managing users.
//
// Login names are unique and matched case-sensitively. An update replaces the
// whole profile; ID and CreatedAt are never changed by callers.
type UserService interface {
	// Clear removes every user. Destructive; meant for tests and administration.
	Clear(ctx context.Context) error

	// GetAll returns all users. The slice is never nil.
	GetAll(ctx context.Context) ([]models.User, error)

	// GetByID fails with ErrNotFound when the user does not exist.
	GetByID(ctx context.Context, id int64) (models.User, error)

	// GetByLoginName fails with ErrNotFound when no user has the login name
	// and with ErrInvalidDataProvided when it is empty.
	GetByLoginName(ctx context.Context, loginName string) (models.User, error)

	// Upsert creates the user when the request carries no ID and updates it
	// otherwise. Fails with ErrDuplication when the login name belongs to
	// another user and with ErrNotFound when updating a missing user.
	Upsert(ctx context.Context, request models.UpsertRequest) (models.User, error)

	// Delete fails with ErrNotFound when the user does not exist.
	Delete(ctx context.Context, id int64) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// UserServiceWrapper defines middleware composition for UserService.
// Implementations wrap an existing UserService to add behavior such as
// validation.
type UserServiceWrapper interface {
	Wrap(UserService) UserService
}
